// Package integrity cross-checks the static data the engine ships: question
// banks, narrative catalogs, and the style matrix. The checks run in tests
// and at server startup; a failure means the binary was built with broken
// data, not that a request was bad.
package integrity

import (
	"fmt"

	"github.com/seedlinghq/seedling-engine/internal/bank"
	"github.com/seedlinghq/seedling-engine/internal/profile"
	"github.com/seedlinghq/seedling-engine/internal/scoring"
)

// #region checker
// Checker runs the static data validation suite.
type Checker struct{}

// NewChecker creates a checker.
func NewChecker() *Checker {
	return &Checker{}
}

// Run validates one bank and its catalogs. Hard failures cover dangling
// weight keys, duplicate question IDs, zero-weight questions, and catalog
// gaps; locale parity mismatches surface as warnings only.
func (c *Checker) Run(b *bank.Bank) Result {
	var metrics []Metric
	var warnings []string
	passed := true
	var failReasons []string

	declared := make(map[bank.Category]bool, len(b.Categories))
	for _, cat := range b.Categories {
		declared[cat] = true
	}

	// 1. Every weight key must be a declared category.
	dangling := 0
	for _, q := range b.Questions(b.DefaultLocale) {
		for cat := range q.Weights {
			if !declared[cat] {
				dangling++
				failReasons = append(failReasons, fmt.Sprintf("%s weights undeclared category %q", q.ID, cat))
			}
		}
	}
	metrics = append(metrics, Metric{Name: "dangling_weight_keys", Value: float64(dangling), Pass: dangling == 0})
	if dangling > 0 {
		passed = false
	}

	// 2. Question IDs unique, weights non-empty.
	seen := map[string]bool{}
	dupes, unweighted := 0, 0
	for _, q := range b.Questions(b.DefaultLocale) {
		if seen[q.ID] {
			dupes++
			failReasons = append(failReasons, fmt.Sprintf("duplicate question id %q", q.ID))
		}
		seen[q.ID] = true
		if len(q.Weights) == 0 {
			unweighted++
			failReasons = append(failReasons, fmt.Sprintf("%s has no weights", q.ID))
		}
	}
	metrics = append(metrics, Metric{Name: "duplicate_ids", Value: float64(dupes), Pass: dupes == 0})
	metrics = append(metrics, Metric{Name: "unweighted_questions", Value: float64(unweighted), Pass: unweighted == 0})
	if dupes > 0 || unweighted > 0 {
		passed = false
	}

	// 3. Catalog coverage. The reflection bank's categories must resolve in
	// every catalog locale; the seedling bank's styles must all have
	// narratives. Fallback keys must resolve too.
	missing := c.catalogGaps(b)
	metrics = append(metrics, Metric{Name: "catalog_gaps", Value: float64(len(missing)), Pass: len(missing) == 0})
	if len(missing) > 0 {
		passed = false
		failReasons = append(failReasons, missing...)
	}

	// 4. Locale parity: informational, the shipped te set is known-short.
	want := len(b.Questions(b.DefaultLocale))
	for _, locale := range b.Locales() {
		if got := len(b.Questions(locale)); got != want {
			warnings = append(warnings, fmt.Sprintf("locale %s has %d questions, default has %d", locale, got, want))
		}
	}

	reason := "all checks passed"
	if !passed {
		reason = fmt.Sprintf("integrity failed: %s", failReasons[0])
		if len(failReasons) > 1 {
			reason = fmt.Sprintf("integrity failed: %d checks: %s", len(failReasons), failReasons[0])
		}
	}

	return Result{
		Passed:   passed,
		Metrics:  metrics,
		Warnings: warnings,
		Reason:   reason,
	}
}

// #endregion checker

// #region helpers

// catalogGaps reports keys whose narrative lookup falls through to the
// fallback when it should resolve directly.
func (c *Checker) catalogGaps(b *bank.Bank) []string {
	var gaps []string
	switch b.Name {
	case bank.BankReflection:
		keys := append([]bank.Category{}, b.Categories...)
		keys = append(keys, bank.CategoryBalanced)
		for _, locale := range profile.Locales() {
			for _, cat := range keys {
				if p := profile.Lookup(cat, locale); p.Key != cat {
					gaps = append(gaps, fmt.Sprintf("catalog %s missing %q", locale, cat))
				}
			}
		}
	case bank.BankSeedling:
		for _, s := range scoring.Styles {
			if p := profile.Style(s); p.Style != s {
				gaps = append(gaps, fmt.Sprintf("style catalog missing %q", s))
			}
		}
	}
	return gaps
}

// #endregion helpers
