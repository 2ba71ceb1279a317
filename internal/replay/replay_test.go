package replay

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func fixturePath(t *testing.T, name string) string {
	t.Helper()
	return filepath.Join("..", "..", "fixtures", name)
}

func TestReplayShippedFixtures(t *testing.T) {
	entries, err := os.ReadDir(filepath.Join("..", "..", "fixtures"))
	if err != nil {
		t.Fatalf("read fixtures dir: %v", err)
	}

	var results []Result
	for _, e := range entries {
		if !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		f, err := LoadFixture(fixturePath(t, e.Name()))
		if err != nil {
			t.Fatalf("%s: load: %v", e.Name(), err)
		}
		res, err := Replay(f)
		if err != nil {
			t.Fatalf("%s: replay: %v", e.Name(), err)
		}
		if !res.Passed {
			t.Errorf("%s: %v", e.Name(), res.Mismatches)
		}
		results = append(results, res)
	}

	if len(results) < 4 {
		t.Fatalf("expected at least 4 shipped fixtures, got %d", len(results))
	}
	s := Summarize(results)
	if s.Failed != 0 || s.Passed != s.Total {
		t.Errorf("summary = %+v", s)
	}
}

func TestReplayIsDeterministic(t *testing.T) {
	f, err := LoadFixture(fixturePath(t, "seedling_all_neutral.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	a, err := Replay(f)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	b, err := Replay(f)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if a.Scored.Primary != b.Scored.Primary || a.Scored.Secondary != b.Scored.Secondary {
		t.Errorf("two replays disagree: %v vs %v", a.Scored, b.Scored)
	}
}

func TestReplayDetectsMismatch(t *testing.T) {
	f, err := LoadFixture(fixturePath(t, "seedling_all_neutral.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	f.Expected.Style = "Analyst"
	res, err := Replay(f)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if res.Passed {
		t.Fatal("doctored expectation should fail")
	}
	if len(res.Mismatches) == 0 {
		t.Fatal("expected a mismatch entry")
	}
}

func TestLoadFixtureRejectsBadFiles(t *testing.T) {
	dir := t.TempDir()

	bad := map[string]string{
		"missing_bank.json":   `{"description":"x","bank":"astrology","answers":[1],"expected":{"primary":"exec"}}`,
		"no_answers.json":     `{"description":"x","bank":"seedling","expected":{"primary":"exec"}}`,
		"no_expectation.json": `{"description":"x","bank":"seedling","answers":[1],"expected":{}}`,
		"not_json.json":       `{`,
	}
	for name, content := range bad {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
		if _, err := LoadFixture(path); err == nil {
			t.Errorf("%s should fail to load", name)
		}
	}
}

func TestWriteFixtureRoundTrip(t *testing.T) {
	f, err := LoadFixture(fixturePath(t, "reflection_tie.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	path := filepath.Join(t.TempDir(), "out.json")
	if err := WriteFixture(f, path); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := LoadFixture(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Expected.Primary != "structure" {
		t.Errorf("round trip lost expectation: %+v", got.Expected)
	}
}
