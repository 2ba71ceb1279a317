package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/seedlinghq/seedling-engine/internal/bank"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture: one recorded
// answer set plus the outcome the pipeline must reproduce.
type Fixture struct {
	Description string          `json:"description"`
	Bank        string          `json:"bank"`
	Locale      string          `json:"locale"`
	Answers     json.RawMessage `json:"answers"` // id-keyed map or positional array
	Expected    FixtureExpected `json:"expected"`
}

// FixtureExpected pins the deterministic outputs. Dims and Percentages are
// optional; when present every listed entry must match.
type FixtureExpected struct {
	Primary     string             `json:"primary"`
	Secondary   string             `json:"secondary"`
	Style       string             `json:"style,omitempty"`           // seedling only
	SecondStyle string             `json:"secondary_style,omitempty"` // seedling only
	Gate        string             `json:"gate,omitempty"`            // "accept" | "reject", default accept
	Dims        map[string]float64 `json:"dims,omitempty"`
	Percentages map[string]int     `json:"percentages,omitempty"`
}

// #endregion fixture-types

// #region load

// LoadFixture reads and validates a fixture JSON file.
func LoadFixture(path string) (Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("read fixture: %w", err)
	}

	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return Fixture{}, fmt.Errorf("parse fixture %s: %w", path, err)
	}

	if _, ok := bank.ByName(f.Bank); !ok {
		return Fixture{}, fmt.Errorf("fixture %s: unknown bank %q", path, f.Bank)
	}
	if len(f.Answers) == 0 {
		return Fixture{}, fmt.Errorf("fixture %s: no answers", path)
	}
	if f.Expected.Primary == "" && f.Expected.Gate != "reject" {
		return Fixture{}, fmt.Errorf("fixture %s: no expected primary", path)
	}
	return f, nil
}

// WriteFixture serializes a fixture to disk, for the export tool.
func WriteFixture(f Fixture, path string) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal fixture: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// #endregion load
