// Package summary renders the shareable plain-text blocks. Field order and
// wording are a published contract; the tests pin them with golden text.
package summary

import (
	"fmt"
	"strings"

	"github.com/seedlinghq/seedling-engine/internal/bank"
	"github.com/seedlinghq/seedling-engine/internal/challenge"
	"github.com/seedlinghq/seedling-engine/internal/profile"
	"github.com/seedlinghq/seedling-engine/internal/scoring"
)

// #region copy-text

// CopyText renders the seedling result block for the clipboard.
func CopyText(sp profile.StyleProfile, dims map[bank.Category]float64) string {
	max := float64(bank.Seedling().Scale.Hi)
	lines := []string{
		"SEEDLING RESULT",
		fmt.Sprintf("Style: %s", sp.Style),
		"",
		"Hidden strengths:",
	}
	for _, s := range sp.Strengths {
		lines = append(lines, "- "+s)
	}
	lines = append(lines,
		"",
		fmt.Sprintf("Watch-out: %s", sp.Watchout),
		"",
		"Resume summary:",
		sp.Resume,
		"",
		"Bullet bank:",
	)
	for _, b := range sp.Bullets {
		lines = append(lines, "- "+b)
	}
	lines = append(lines,
		"",
		"Trait signals:",
		fmt.Sprintf("- Structure & Execution: %d/100", scoring.Percentage(dims[bank.DimExecution], max)),
		fmt.Sprintf("- Analytical Thinking: %d/100", scoring.Percentage(dims[bank.DimAnalytical], max)),
		fmt.Sprintf("- Social Initiative: %d/100", scoring.Percentage(dims[bank.DimSocial], max)),
		fmt.Sprintf("- Empathy & Cooperation: %d/100", scoring.Percentage(dims[bank.DimEmpathy], max)),
		fmt.Sprintf("- Curiosity & Experimentation: %d/100", scoring.Percentage(dims[bank.DimCuriosity], max)),
	)
	return strings.Join(lines, "\n")
}

// #endregion copy-text

// #region reflection-summary

// ReflectionSummary renders the reflection-and-action block produced after
// completing a micro-challenge.
func ReflectionSummary(primary profile.Profile, ch challenge.Challenge, response string) string {
	strength := ""
	if len(primary.Strengths) > 0 {
		strength = primary.Strengths[0]
	}
	return fmt.Sprintf(`🌱 Seedling - My Reflection & Action

Primary Style: %s
%s

Challenge Completed: %s
%s

My Response:
%s

Key Strength: %s
Next Step: %s

---
Completed via Seedling - Self-Reflection Tool`,
		primary.Title, primary.Description,
		ch.Title, ch.Description,
		response,
		strength, primary.NextSteps)
}

// #endregion reflection-summary
