package scoring

import "github.com/seedlinghq/seedling-engine/internal/bank"

// #region style

// Style is a named outcome of the seedling style matrix.
type Style string

// Declaration order doubles as the tie-break order of the style selector, so
// do not reorder.
const (
	StyleExecutive Style = "Executive"
	StyleExplorer  Style = "Explorer"
	StyleConnector Style = "Connector"
	StyleAnalyst   Style = "Analyst"
	StyleBuilder   Style = "Builder"
)

// Styles lists all styles in declaration order.
var Styles = []Style{
	StyleExecutive,
	StyleExplorer,
	StyleConnector,
	StyleAnalyst,
	StyleBuilder,
}

// styleMatrix holds the fixed linear coefficients mapping trait dimensions
// to style scores. Keep these in sync with the published assessment; they
// are a contract, not tuning knobs.
var styleMatrix = map[Style]map[bank.Category]float64{
	StyleExecutive: {bank.DimExecution: 1.2, bank.DimAnalytical: 0.5, bank.DimSocial: 0.3},
	StyleExplorer:  {bank.DimCuriosity: 1.2, bank.DimAnalytical: 0.4},
	StyleConnector: {bank.DimEmpathy: 1.0, bank.DimSocial: 1.0, bank.DimExecution: 0.2},
	StyleAnalyst:   {bank.DimAnalytical: 1.25, bank.DimExecution: 0.25},
	StyleBuilder:   {bank.DimCuriosity: 0.6, bank.DimExecution: 0.6, bank.DimAnalytical: 0.2},
}

// #endregion style

// #region style-select

// StyleScores applies the style matrix to a dimension map.
func StyleScores(dims map[bank.Category]float64) map[Style]float64 {
	out := make(map[Style]float64, len(styleMatrix))
	for style, coeffs := range styleMatrix {
		var sum float64
		for dim, c := range coeffs {
			sum += c * dims[dim]
		}
		out[style] = sum
	}
	return out
}

// SelectStyles returns the primary and secondary style for a dimension map.
// Strict greater-than comparison over declaration order means ties resolve
// to the earliest declared style; an empty or all-zero map yields Executive.
func SelectStyles(dims map[bank.Category]float64) (primary, secondary Style) {
	scores := StyleScores(dims)

	primary = StyleExecutive
	best := -1.0
	for _, s := range Styles {
		if scores[s] > best {
			best = scores[s]
			primary = s
		}
	}

	secondary = primary
	second := -1.0
	for _, s := range Styles {
		if s == primary {
			continue
		}
		if scores[s] > second {
			second = scores[s]
			secondary = s
		}
	}
	return primary, secondary
}

// #endregion style-select
