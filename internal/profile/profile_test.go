package profile

import (
	"testing"

	"github.com/seedlinghq/seedling-engine/internal/bank"
	"github.com/seedlinghq/seedling-engine/internal/scoring"
)

// #region lookup

func TestLookupKnownCategory(t *testing.T) {
	p := Lookup(bank.CategoryStructure, "en")
	if p.Title != "The Planner" {
		t.Errorf("title = %q, want The Planner", p.Title)
	}
	if len(p.Strengths) == 0 || p.NextSteps == "" {
		t.Errorf("profile missing narrative fields: %+v", p)
	}
}

func TestLookupUnknownKeyFallsBackToBalanced(t *testing.T) {
	p := Lookup(bank.Category("mystery"), "en")
	if p.Key != bank.CategoryBalanced {
		t.Errorf("key = %s, want balanced", p.Key)
	}
	if p.Title == "" {
		t.Error("fallback profile is empty")
	}
}

func TestLookupUnknownLocaleFallsBackToEnglish(t *testing.T) {
	p := Lookup(bank.CategoryEmpathy, "fr")
	if p.Title != "The Supporter" {
		t.Errorf("title = %q, want en text", p.Title)
	}
}

func TestLookupLocalizedText(t *testing.T) {
	if got := Lookup(bank.CategoryStructure, "hi").Title; got != "योजनाकार" {
		t.Errorf("hi title = %q", got)
	}
	if got := Lookup(bank.CategoryStructure, "te").Title; got != "ప్లానర్" {
		t.Errorf("te title = %q", got)
	}
}

func TestEveryLocaleCoversEveryCategory(t *testing.T) {
	cats := append([]bank.Category{}, bank.Reflection().Categories...)
	cats = append(cats, bank.CategoryBalanced)
	for _, locale := range Locales() {
		for _, cat := range cats {
			p := Lookup(cat, locale)
			if p.Key != cat {
				t.Errorf("%s/%s resolved to %s", locale, cat, p.Key)
			}
		}
	}
}

func TestEnglishCatalogCarriesOptionalSections(t *testing.T) {
	cats := append([]bank.Category{}, bank.Reflection().Categories...)
	cats = append(cats, bank.CategoryBalanced)
	for _, cat := range cats {
		p := Lookup(cat, "en")
		if len(p.CareerPaths) == 0 {
			t.Errorf("%s: no career paths", cat)
		}
		if len(p.GrowthAreas) == 0 {
			t.Errorf("%s: no growth areas", cat)
		}
		if p.Archetype == nil || p.Archetype.Name == "" || p.Archetype.Motto == "" {
			t.Errorf("%s: archetype incomplete", cat)
		}
	}
	for _, ga := range Lookup(bank.CategoryStructure, "en").GrowthAreas {
		if ga.Area == "" || ga.Tip == "" || ga.Why == "" {
			t.Errorf("growth area incomplete: %+v", ga)
		}
	}
}

// #endregion lookup

// #region styles

func TestStyleKnown(t *testing.T) {
	p := Style(scoring.StyleExplorer)
	if p.Headline == "" || p.Resume == "" || len(p.Bullets) != 3 {
		t.Errorf("explorer profile incomplete: %+v", p)
	}
}

func TestStyleUnknownFallsBackToExecutive(t *testing.T) {
	p := Style(scoring.Style("Wizard"))
	if p.Style != scoring.StyleExecutive {
		t.Errorf("fallback style = %s, want Executive", p.Style)
	}
}

func TestStyleCatalogCoversAllStyles(t *testing.T) {
	for _, s := range scoring.Styles {
		p := Style(s)
		if p.Style != s {
			t.Errorf("style %s resolved to %s", s, p.Style)
		}
		if len(p.Strengths) != 3 || p.Watchout == "" {
			t.Errorf("style %s narrative incomplete", s)
		}
	}
}

// #endregion styles
