package integrity

import (
	"strings"
	"testing"

	"github.com/seedlinghq/seedling-engine/internal/bank"
)

func TestShippedBanksPass(t *testing.T) {
	c := NewChecker()
	for _, name := range []string{bank.BankReflection, bank.BankSeedling} {
		b, ok := bank.ByName(name)
		if !ok {
			t.Fatalf("bank %s not registered", name)
		}
		res := c.Run(b)
		if !res.Passed {
			t.Errorf("%s: %s", name, res.Reason)
		}
	}
}

func TestTelaguParityReportedAsWarning(t *testing.T) {
	res := NewChecker().Run(bank.Reflection())
	if !res.Passed {
		t.Fatalf("parity gap must not hard-fail: %s", res.Reason)
	}
	found := false
	for _, w := range res.Warnings {
		if strings.Contains(w, "locale te") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a te parity warning, got %v", res.Warnings)
	}
}

func TestMetricNamesStable(t *testing.T) {
	res := NewChecker().Run(bank.Seedling())
	want := map[string]bool{
		"dangling_weight_keys": false,
		"duplicate_ids":        false,
		"unweighted_questions": false,
		"catalog_gaps":         false,
	}
	for _, m := range res.Metrics {
		if _, ok := want[m.Name]; ok {
			want[m.Name] = true
		}
		if !m.Pass {
			t.Errorf("metric %s failed: %v", m.Name, m.Value)
		}
	}
	for name, seen := range want {
		if !seen {
			t.Errorf("metric %s missing", name)
		}
	}
}
