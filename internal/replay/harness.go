package replay

import (
	"fmt"
	"math"

	"github.com/seedlinghq/seedling-engine/internal/bank"
	"github.com/seedlinghq/seedling-engine/internal/gate"
	"github.com/seedlinghq/seedling-engine/internal/scoring"
)

// #region types

// Result captures the outcome of replaying one fixture through the full
// pipeline: gate → scoring → style selection, compared against expectations.
type Result struct {
	Description string
	Passed      bool
	Mismatches  []string

	GateDecision gate.Decision
	Scored       scoring.Result
}

// Summary provides aggregate stats from a replay run.
type Summary struct {
	Total  int
	Passed int
	Failed int
}

// #endregion types

// #region replay

// dimTolerance absorbs float formatting differences in fixture files.
const dimTolerance = 1e-6

// Replay runs one fixture through the pipeline and diffs the outcome
// against the fixture's expectations. Operates entirely in-memory.
func Replay(f Fixture) (Result, error) {
	b, ok := bank.ByName(f.Bank)
	if !ok {
		return Result{}, fmt.Errorf("unknown bank %q", f.Bank)
	}

	answers, err := bank.ParseAnswers(b, f.Answers)
	if err != nil {
		return Result{}, fmt.Errorf("fixture answers: %w", err)
	}

	res := Result{Description: f.Description}

	res.GateDecision = gate.NewGate(gate.DefaultGateConfig()).Evaluate(b, answers, f.Locale)
	wantGate := f.Expected.Gate
	if wantGate == "" {
		wantGate = "accept"
	}
	if res.GateDecision.Action != wantGate {
		res.Mismatches = append(res.Mismatches,
			fmt.Sprintf("gate: got %s (%s), want %s", res.GateDecision.Action, res.GateDecision.Reason, wantGate))
		res.Passed = len(res.Mismatches) == 0
		return res, nil
	}
	if wantGate == "reject" {
		res.Passed = true
		return res, nil
	}

	res.Scored = scoring.Compute(b, answers)

	if got := string(res.Scored.Primary); got != f.Expected.Primary {
		res.Mismatches = append(res.Mismatches, fmt.Sprintf("primary: got %s, want %s", got, f.Expected.Primary))
	}
	if f.Expected.Secondary != "" {
		if got := string(res.Scored.Secondary); got != f.Expected.Secondary {
			res.Mismatches = append(res.Mismatches, fmt.Sprintf("secondary: got %s, want %s", got, f.Expected.Secondary))
		}
	}

	if f.Expected.Style != "" || f.Expected.SecondStyle != "" {
		primary, secondary := scoring.SelectStyles(res.Scored.Dims())
		if f.Expected.Style != "" && string(primary) != f.Expected.Style {
			res.Mismatches = append(res.Mismatches, fmt.Sprintf("style: got %s, want %s", primary, f.Expected.Style))
		}
		if f.Expected.SecondStyle != "" && string(secondary) != f.Expected.SecondStyle {
			res.Mismatches = append(res.Mismatches, fmt.Sprintf("secondary style: got %s, want %s", secondary, f.Expected.SecondStyle))
		}
	}

	for cat, want := range f.Expected.Dims {
		got := res.Scored.Score(bank.Category(cat)).Value
		if math.Abs(got-want) > dimTolerance {
			res.Mismatches = append(res.Mismatches, fmt.Sprintf("dim %s: got %v, want %v", cat, got, want))
		}
	}
	for cat, want := range f.Expected.Percentages {
		if got := res.Scored.Score(bank.Category(cat)).Percentage; got != want {
			res.Mismatches = append(res.Mismatches, fmt.Sprintf("pct %s: got %d, want %d", cat, got, want))
		}
	}

	res.Passed = len(res.Mismatches) == 0
	return res, nil
}

// Summarize computes aggregate stats from replay results.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.Passed {
			s.Passed++
		} else {
			s.Failed++
		}
	}
	return s
}

// #endregion replay
