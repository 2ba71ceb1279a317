package gate

import (
	"reflect"
	"testing"

	"github.com/seedlinghq/seedling-engine/internal/bank"
)

func fullAnswers(b *bank.Bank, v int) bank.AnswerSet {
	out := bank.AnswerSet{}
	for _, q := range b.Questions(b.DefaultLocale) {
		out[q.ID] = v
	}
	return out
}

func TestGateAcceptOnCleanAnswers(t *testing.T) {
	g := NewGate(DefaultGateConfig())
	b := bank.Seedling()

	decision := g.Evaluate(b, fullAnswers(b, 3), "en")

	if decision.Action != "accept" {
		t.Fatalf("expected accept, got %s: %s", decision.Action, decision.Reason)
	}
	if decision.Vetoed {
		t.Fatal("should not be vetoed")
	}
	if decision.SoftScore != 1.0 {
		t.Fatalf("completeness = %.4f, want 1.0", decision.SoftScore)
	}
}

func TestGateRejectOnUnknownQuestion(t *testing.T) {
	g := NewGate(DefaultGateConfig())
	b := bank.Reflection()

	decision := g.Evaluate(b, bank.AnswerSet{"q1": 2, "q99": 1}, "en")

	if decision.Action != "reject" {
		t.Fatalf("expected reject, got %s", decision.Action)
	}
	if !decision.Vetoed {
		t.Fatal("should be vetoed")
	}
	if len(decision.VetoSignals) == 0 {
		t.Fatal("expected veto signals")
	}
	if decision.VetoSignals[0].Type != VetoUnknownQuestion {
		t.Fatalf("expected VetoUnknownQuestion, got %s", decision.VetoSignals[0].Type)
	}
}

func TestGateRejectOnOutOfRangeValue(t *testing.T) {
	g := NewGate(DefaultGateConfig())
	b := bank.Reflection()

	decision := g.Evaluate(b, bank.AnswerSet{"q1": 7}, "en")

	if decision.Action != "reject" {
		t.Fatalf("expected reject, got %s", decision.Action)
	}
	if decision.VetoSignals[0].Type != VetoOutOfRange {
		t.Fatalf("expected VetoOutOfRange, got %s", decision.VetoSignals[0].Type)
	}
}

func TestGateRejectOnNegativeValue(t *testing.T) {
	g := NewGate(DefaultGateConfig())
	b := bank.Seedling()

	decision := g.Evaluate(b, bank.AnswerSet{"q1": -1}, "en")

	if decision.Action != "reject" {
		t.Fatalf("expected reject, got %s", decision.Action)
	}
	if decision.VetoSignals[0].Type != VetoOutOfRange {
		t.Fatalf("expected VetoOutOfRange, got %s", decision.VetoSignals[0].Type)
	}
}

func TestGateRejectOnUnknownLocale(t *testing.T) {
	g := NewGate(DefaultGateConfig())
	b := bank.Reflection()

	decision := g.Evaluate(b, fullAnswers(b, 2), "xx")

	if decision.Action != "reject" {
		t.Fatalf("expected reject, got %s", decision.Action)
	}
	if decision.VetoSignals[0].Type != VetoUnknownLocale {
		t.Fatalf("expected VetoUnknownLocale, got %s", decision.VetoSignals[0].Type)
	}
}

func TestGateEmptyLocaleSkipsLocaleCheck(t *testing.T) {
	g := NewGate(DefaultGateConfig())
	b := bank.Reflection()

	decision := g.Evaluate(b, fullAnswers(b, 2), "")

	if decision.Action != "accept" {
		t.Fatalf("expected accept, got %s: %s", decision.Action, decision.Reason)
	}
}

func TestGateRejectOnEmptyAnswers(t *testing.T) {
	g := NewGate(DefaultGateConfig())
	b := bank.Seedling()

	decision := g.Evaluate(b, bank.AnswerSet{}, "en")

	if decision.Action != "reject" {
		t.Fatalf("expected reject, got %s", decision.Action)
	}
	if decision.VetoSignals[0].Type != VetoEmptyAnswers {
		t.Fatalf("expected VetoEmptyAnswers, got %s", decision.VetoSignals[0].Type)
	}
}

func TestGatePartialAnswersAcceptedWithSoftScore(t *testing.T) {
	g := NewGate(DefaultGateConfig())
	b := bank.Reflection()

	decision := g.Evaluate(b, bank.AnswerSet{"q1": 3, "q2": 2, "q3": 1}, "en")

	if decision.Action != "accept" {
		t.Fatalf("expected accept, got %s: %s", decision.Action, decision.Reason)
	}
	if decision.SoftScore != 0.25 {
		t.Fatalf("completeness = %.4f, want 0.25", decision.SoftScore)
	}
}

func TestGatePartialRejectedWhenNotAllowed(t *testing.T) {
	config := DefaultGateConfig()
	config.AllowPartial = false
	g := NewGate(config)
	b := bank.Reflection()

	decision := g.Evaluate(b, bank.AnswerSet{"q1": 3}, "en")

	if decision.Action != "reject" {
		t.Fatalf("expected reject for partial set, got %s", decision.Action)
	}
}

func TestGateCompletenessFloor(t *testing.T) {
	config := DefaultGateConfig()
	config.MinCompleteness = 0.5
	g := NewGate(config)
	b := bank.Reflection()

	decision := g.Evaluate(b, bank.AnswerSet{"q1": 3, "q2": 2}, "en")

	if decision.Action != "reject" {
		t.Fatalf("expected reject below completeness floor, got %s", decision.Action)
	}
}

func TestGateMultipleVetoes(t *testing.T) {
	g := NewGate(DefaultGateConfig())
	b := bank.Reflection()

	decision := g.Evaluate(b, bank.AnswerSet{"q99": 1, "q1": 9}, "xx")

	if decision.Action != "reject" {
		t.Fatalf("expected reject, got %s", decision.Action)
	}
	if len(decision.VetoSignals) < 3 {
		t.Fatalf("expected at least 3 veto signals, got %d", len(decision.VetoSignals))
	}
}

func TestGateMultiVetoOutputIsStable(t *testing.T) {
	g := NewGate(DefaultGateConfig())
	b := bank.Seedling()
	answers := bank.AnswerSet{"q98": 1, "q99": 1, "q3": 9, "q17": 0}

	first := g.Evaluate(b, answers, "en")
	for i := 0; i < 20; i++ {
		again := g.Evaluate(b, answers, "en")
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs:\n%+v\nvs\n%+v", i, first, again)
		}
	}

	// Out-of-range signals come in bank question order, then unknown IDs
	// sorted, so the headline reason is always the same.
	if first.VetoSignals[0].Type != VetoOutOfRange {
		t.Errorf("first signal = %s, want out_of_range", first.VetoSignals[0].Type)
	}
}
