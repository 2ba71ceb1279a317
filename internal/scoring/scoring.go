// Package scoring implements the pure result pipeline: weighted-mean
// aggregation of answers into category values, percentage normalization, and
// deterministic primary/secondary selection. Everything here is a pure
// function of (bank, answers); no clock, no randomness, no I/O.
package scoring

import (
	"math"
	"sort"

	"github.com/seedlinghq/seedling-engine/internal/bank"
)

// #region types

// CategoryScore is one category's aggregated outcome.
type CategoryScore struct {
	Category   bank.Category `json:"category"`
	Value      float64       `json:"value"`      // weighted mean in scale units
	Percentage int           `json:"percentage"` // 0..100
}

// Result is the full deterministic outcome for one answer set.
type Result struct {
	Bank      string          `json:"bank"`
	Scores    []CategoryScore `json:"scores"` // category declaration order
	Primary   bank.Category   `json:"primary"`
	Secondary bank.Category   `json:"secondary"`
}

// #endregion types

// #region aggregate

// Compute folds an answer set into per-category weighted means. For each
// answered question and each (category, weight) pair: a positive weight
// contributes w*v to the numerator, a negative weight contributes
// |w|*invert(v), and the denominator always accumulates |w|. Unanswered
// questions touch neither side, so partial sets average over what was
// answered. A category whose weight sum is zero scores 0. A set that answers
// nothing selects the balanced fallback rather than a ranked category.
//
// The fold visits questions in bank order but is order-invariant: it is a
// sum of independent per-question contributions.
func Compute(b *bank.Bank, answers bank.AnswerSet) Result {
	num := make(map[bank.Category]float64, len(b.Categories))
	den := make(map[bank.Category]float64, len(b.Categories))

	answered := false
	for _, q := range b.Questions(b.DefaultLocale) {
		v, ok := answers[q.ID]
		if !ok {
			continue
		}
		answered = true
		for cat, w := range q.Weights {
			if w < 0 {
				num[cat] += -w * float64(b.Scale.Invert(v))
				den[cat] += -w
			} else {
				num[cat] += w * float64(v)
				den[cat] += w
			}
		}
	}

	scores := make([]CategoryScore, 0, len(b.Categories))
	for _, cat := range b.Categories {
		var val float64
		if den[cat] > 0 {
			val = num[cat] / den[cat]
		}
		scores = append(scores, CategoryScore{
			Category:   cat,
			Value:      val,
			Percentage: Percentage(val, float64(b.Scale.Hi)),
		})
	}

	primary, secondary := selectTop(scores)
	if !answered {
		primary, secondary = bank.CategoryBalanced, bank.CategoryBalanced
	}
	return Result{
		Bank:      b.Name,
		Scores:    scores,
		Primary:   primary,
		Secondary: secondary,
	}
}

// Percentage normalizes val against max on a 0..100 scale, rounding half up
// and clamping. A zero or negative max is defined as 0.
func Percentage(val, max float64) int {
	if max <= 0 {
		return 0
	}
	p := int(math.Floor(val/max*100 + 0.5))
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// #endregion aggregate

// #region select

// selectTop orders scores by value descending. Ties keep category declaration
// order (the incoming slice order), which makes selection deterministic. An
// answered all-zero slate still yields the first declared category; Compute
// overrides both picks with balanced when nothing was answered.
func selectTop(scores []CategoryScore) (primary, secondary bank.Category) {
	if len(scores) == 0 {
		return bank.CategoryBalanced, bank.CategoryBalanced
	}

	ranked := make([]CategoryScore, len(scores))
	copy(ranked, scores)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Value > ranked[j].Value
	})

	primary = ranked[0].Category
	secondary = primary
	if len(ranked) > 1 {
		secondary = ranked[1].Category
	}
	return primary, secondary
}

// Dims extracts the category→value map from a result, the shape the style
// matrix and the insight builders consume.
func (r Result) Dims() map[bank.Category]float64 {
	out := make(map[bank.Category]float64, len(r.Scores))
	for _, s := range r.Scores {
		out[s.Category] = s.Value
	}
	return out
}

// Score returns the entry for one category, zero-valued when absent.
func (r Result) Score(cat bank.Category) CategoryScore {
	for _, s := range r.Scores {
		if s.Category == cat {
			return s
		}
	}
	return CategoryScore{Category: cat}
}

// #endregion select
