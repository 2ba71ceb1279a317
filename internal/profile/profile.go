// Package profile holds the static narrative catalogs keyed by scoring
// outcome. Lookups always land somewhere: unknown keys resolve to the
// balanced profile, unknown locales to English.
package profile

import (
	"github.com/seedlinghq/seedling-engine/internal/bank"
	"github.com/seedlinghq/seedling-engine/internal/scoring"
)

// #region types

// Profile is the narrative for one reflection category. The career, growth,
// and archetype sections are optional; only the en catalog carries them.
type Profile struct {
	Key         bank.Category `json:"key"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Strengths   []string      `json:"strengths"`
	WatchOuts   []string      `json:"watch_outs"`
	Patterns    string        `json:"patterns"`
	NextSteps   string        `json:"next_steps"`
	CareerPaths []string      `json:"career_paths,omitempty"`
	GrowthAreas []GrowthArea  `json:"growth_areas,omitempty"`
	Archetype   *Archetype    `json:"archetype,omitempty"`
}

// GrowthArea is one targeted improvement suggestion.
type GrowthArea struct {
	Area string `json:"area"`
	Tip  string `json:"tip"`
	Why  string `json:"why"`
}

// Archetype is the playful persona attached to a category.
type Archetype struct {
	Name     string `json:"name"`
	Motto    string `json:"motto"`
	Power    string `json:"power"`
	Strength string `json:"strength"`
}

// StyleProfile is the narrative for one seedling style, including the
// resume-ready material.
type StyleProfile struct {
	Style     scoring.Style `json:"style"`
	Headline  string        `json:"headline"`
	Strengths []string      `json:"strengths"`
	Watchout  string        `json:"watchout"`
	Resume    string        `json:"resume"`
	Bullets   []string      `json:"bullets"`
}

// #endregion types

// #region lookup

// Lookup resolves a category profile for a locale. Unknown locales fall back
// to en, unknown categories to balanced. The result is never zero-valued.
func Lookup(key bank.Category, locale string) Profile {
	cat, ok := catalogs[locale]
	if !ok {
		cat = catalogs["en"]
	}
	if p, ok := cat[key]; ok {
		return p
	}
	return cat[bank.CategoryBalanced]
}

// Style resolves a seedling style profile, defaulting to Executive for
// unknown keys.
func Style(s scoring.Style) StyleProfile {
	if p, ok := styleCatalog[s]; ok {
		return p
	}
	return styleCatalog[scoring.StyleExecutive]
}

// Locales returns the locales the category catalog is translated into.
func Locales() []string {
	return []string{"en", "hi", "te"}
}

var catalogs = map[string]map[bank.Category]Profile{
	"en": catalogEN,
	"hi": catalogHI,
	"te": catalogTE,
}

// #endregion lookup
