package bank

// #region category

// Category identifies a trait axis that accumulates answer scores.
type Category string

// Reflection bank categories. Declaration order is the tie-break order used
// by the selector, so do not reorder.
const (
	CategoryStructure      Category = "structure"
	CategoryAnalytical     Category = "analytical"
	CategorySocial         Category = "social"
	CategoryEmpathy        Category = "empathy"
	CategoryCuriosity      Category = "curiosity"
	CategoryFocus          Category = "focus"
	CategoryCivic          Category = "civic"
	CategoryResponsibility Category = "responsibility"
	CategoryDecisiveness   Category = "decisiveness"
	CategoryAdaptability   Category = "adaptability"

	// CategoryBalanced is the designated fallback when no category stands out
	// or a lookup key is unknown. It never appears in question weights.
	CategoryBalanced Category = "balanced"
)

// Seedling bank trait dimensions. Declaration order matters as above.
const (
	DimExecution  Category = "exec"
	DimAnalytical Category = "anal"
	DimSocial     Category = "soc"
	DimEmpathy    Category = "emp"
	DimCuriosity  Category = "cur"
)

// #endregion category

// #region scale

// Scale is the inclusive ordinal range of valid answer values.
type Scale struct {
	Lo int
	Hi int
}

// Contains reports whether v is a valid answer on this scale.
func (s Scale) Contains(v int) bool {
	return v >= s.Lo && v <= s.Hi
}

// Invert reflects v across the scale midpoint: Lo maps to Hi and back.
// Used for negative-weight (polarity-inverted) questions.
func (s Scale) Invert(v int) int {
	return s.Hi + s.Lo - v
}

// #endregion scale

// #region question

// Question is one assessment item. Weights maps each contributing category
// to a signed weight: positive weights score the raw answer value, negative
// weights score the inverted value. Category membership is always explicit
// here, never inferred from position.
type Question struct {
	ID        string
	Text      string
	Weights   map[Category]float64
	Superhero bool // themed display variant, no scoring effect
}

// #endregion question

// #region bank

// Bank is an immutable, ordered question set with localized display text.
// Question IDs, ordering, and weights are identical across locales; only
// Text differs, so an answer map keyed by ID stays valid when the locale
// changes mid-session.
type Bank struct {
	Name          string
	Scale         Scale
	Categories    []Category // declaration order = selector tie-break order
	DefaultLocale string
	locales       map[string][]Question
	localeOrder   []string
}

// Questions returns the ordered question list for a locale, falling back to
// the bank's default locale when the requested one is unknown.
func (b *Bank) Questions(locale string) []Question {
	if qs, ok := b.locales[locale]; ok {
		return qs
	}
	return b.locales[b.DefaultLocale]
}

// Question looks up a single question by ID in the default locale.
func (b *Bank) Question(id string) (Question, bool) {
	for _, q := range b.locales[b.DefaultLocale] {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// HasLocale reports whether the bank carries text for the given locale.
func (b *Bank) HasLocale(locale string) bool {
	_, ok := b.locales[locale]
	return ok
}

// Locales returns the bank's locale codes in declaration order.
func (b *Bank) Locales() []string {
	return append([]string(nil), b.localeOrder...)
}

// #endregion bank

// #region registry

// ByName resolves a bank by its registered name.
func ByName(name string) (*Bank, bool) {
	switch name {
	case BankReflection:
		return Reflection(), true
	case BankSeedling:
		return Seedling(), true
	}
	return nil, false
}

// Registered bank names.
const (
	BankReflection = "reflection"
	BankSeedling   = "seedling"
)

// #endregion registry
