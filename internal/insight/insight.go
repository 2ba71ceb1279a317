// Package insight derives display signals from a scoring result: trait
// meter rows for the result screen and the learning-mode sentence.
package insight

import (
	"strings"

	"github.com/seedlinghq/seedling-engine/internal/bank"
	"github.com/seedlinghq/seedling-engine/internal/scoring"
)

// #region meters

// Meter is one trait row rendered as a 0..100 bar.
type Meter struct {
	Category   bank.Category `json:"category"`
	Label      string        `json:"label"`
	Percentage int           `json:"percentage"`
}

// meterLabels are the published display names for the seedling dimensions.
// The copy-text builder renders these verbatim, so treat them as a contract.
var meterLabels = map[bank.Category]string{
	bank.DimExecution:  "Structure & Execution",
	bank.DimAnalytical: "Analytical Thinking",
	bank.DimSocial:     "Social Initiative",
	bank.DimEmpathy:    "Empathy & Cooperation",
	bank.DimCuriosity:  "Curiosity & Experimentation",
}

// Meters builds the trait rows in category declaration order. Categories
// without a display label (the reflection bank's axes) fall back to the
// category name itself.
func Meters(res scoring.Result) []Meter {
	out := make([]Meter, 0, len(res.Scores))
	for _, s := range res.Scores {
		label, ok := meterLabels[s.Category]
		if !ok {
			label = string(s.Category)
		}
		out = append(out, Meter{
			Category:   s.Category,
			Label:      label,
			Percentage: s.Percentage,
		})
	}
	return out
}

// #endregion meters

// #region learning-mode

// learningModeThreshold is the dimension value above which a learning
// preference is considered pronounced.
const learningModeThreshold = 3.6

// learningModeParts pairs each dimension with its phrase, in the order the
// sentence assembles them.
var learningModeParts = []struct {
	dim    bank.Category
	phrase string
}{
	{bank.DimExecution, "clear steps, checklists, and timelines"},
	{bank.DimAnalytical, "understanding the ‘why’ with real examples"},
	{bank.DimCuriosity, "trying variations and learning by experimentation"},
	{bank.DimSocial, "group learning, discussion, and collaboration"},
	{bank.DimEmpathy, "supportive environments with feedback"},
}

// LearningMode renders the learning-preference sentence for a dimension map.
// At most three phrases are kept; with no dimension above threshold the
// fixed fallback sentence is returned.
func LearningMode(dims map[bank.Category]float64) string {
	var parts []string
	for _, p := range learningModeParts {
		if dims[p.dim] >= learningModeThreshold {
			parts = append(parts, p.phrase)
		}
	}
	if len(parts) == 0 {
		return "a balanced mix of explanation and practice with real examples."
	}
	if len(parts) > 3 {
		parts = parts[:3]
	}
	return "You learn best with " + strings.Join(parts, ", ") + "."
}

// #endregion learning-mode
