package gate

import (
	"fmt"
	"sort"

	"github.com/seedlinghq/seedling-engine/internal/bank"
)

// #region gate
// Gate evaluates whether an answer set is fit for scoring. Hard vetoes
// (unknown question, out-of-range value, unknown locale) reject the set;
// completeness is scored as a soft signal.
type Gate struct {
	config GateConfig
}

// NewGate creates a gate with the given configuration.
func NewGate(config GateConfig) *Gate {
	return &Gate{config: config}
}

// Evaluate checks hard vetoes first, then scores completeness. Answers are
// validated against the bank the session was collected on, never against a
// locale's possibly shorter question list.
func (g *Gate) Evaluate(b *bank.Bank, answers bank.AnswerSet, locale string) Decision {
	var vetoes []VetoSignal

	// --- Hard veto pass ---

	// 1. Locale must be one the bank or its default can serve. The request
	// is not silently rewritten here; the caller decides on fallback.
	if locale != "" && !b.HasLocale(locale) {
		vetoes = append(vetoes, VetoSignal{
			Type:   VetoUnknownLocale,
			Reason: fmt.Sprintf("locale %q not in bank %s", locale, b.Name),
		})
	}

	// 2. Every value must sit on the bank's scale. Walking the bank's
	// question order (not the answer map) keeps multi-veto output stable
	// across runs.
	for _, q := range b.Questions(b.DefaultLocale) {
		v, ok := answers[q.ID]
		if !ok {
			continue
		}
		if !b.Scale.Contains(v) {
			vetoes = append(vetoes, VetoSignal{
				Type:   VetoOutOfRange,
				Reason: fmt.Sprintf("answer %d for %q outside scale %d..%d", v, q.ID, b.Scale.Lo, b.Scale.Hi),
			})
		}
	}

	// 3. Every answered ID must exist in the bank; unknown IDs report in
	// sorted order for the same reason.
	var unknown []string
	for id := range answers {
		if _, ok := b.Question(id); !ok {
			unknown = append(unknown, id)
		}
	}
	sort.Strings(unknown)
	for _, id := range unknown {
		vetoes = append(vetoes, VetoSignal{
			Type:   VetoUnknownQuestion,
			Reason: fmt.Sprintf("question %q not in bank %s", id, b.Name),
		})
	}

	// 4. Completeness floor.
	total := len(b.Questions(b.DefaultLocale))
	answered := countKnown(b, answers)
	completeness := 0.0
	if total > 0 {
		completeness = float64(answered) / float64(total)
	}
	if answered == 0 {
		vetoes = append(vetoes, VetoSignal{
			Type:   VetoEmptyAnswers,
			Reason: "no answers provided",
		})
	} else if !g.config.AllowPartial && answered < total {
		vetoes = append(vetoes, VetoSignal{
			Type:   VetoEmptyAnswers,
			Reason: fmt.Sprintf("partial set: %d of %d answered", answered, total),
		})
	} else if g.config.MinCompleteness > 0 && completeness < g.config.MinCompleteness {
		vetoes = append(vetoes, VetoSignal{
			Type:   VetoEmptyAnswers,
			Reason: fmt.Sprintf("completeness %.2f below floor %.2f", completeness, g.config.MinCompleteness),
		})
	}

	if len(vetoes) > 0 {
		return Decision{
			Action:      "reject",
			Reason:      fmt.Sprintf("hard veto: %s", vetoes[0].Reason),
			Vetoed:      true,
			VetoSignals: vetoes,
			SoftScore:   0,
		}
	}

	return Decision{
		Action:    "accept",
		Reason:    fmt.Sprintf("passed gate: completeness=%.4f", completeness),
		Vetoed:    false,
		SoftScore: completeness,
	}
}

// #endregion gate

// #region helpers

// countKnown counts answered IDs that exist in the bank, so an unknown ID
// never inflates the completeness score.
func countKnown(b *bank.Bank, answers bank.AnswerSet) int {
	n := 0
	for id := range answers {
		if _, ok := b.Question(id); ok {
			n++
		}
	}
	return n
}

// #endregion helpers
