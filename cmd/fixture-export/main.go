package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/seedlinghq/seedling-engine/internal/bank"
	"github.com/seedlinghq/seedling-engine/internal/replay"
	"github.com/seedlinghq/seedling-engine/internal/scoring"
	"github.com/seedlinghq/seedling-engine/internal/session"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to seedling.db")
	sessionID := flag.String("session", "", "session to export")
	outPath := flag.String("out", "", "output fixture JSON path")
	desc := flag.String("desc", "", "fixture description (default derived from session)")
	flag.Parse()

	if *dbPath == "" || *sessionID == "" || *outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: fixture-export --db path/to/db --session id --out path/to/fixture.json [--desc text]")
		os.Exit(2)
	}

	if err := run(*dbPath, *sessionID, *outPath, *desc); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region export

func run(dbPath, sessionID, outPath, desc string) error {
	store, err := session.NewStore(dbPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer store.Close()

	sess, err := store.Get(sessionID)
	if err != nil {
		return err
	}
	b, ok := bank.ByName(sess.Bank)
	if !ok {
		return fmt.Errorf("session %s references unknown bank %q", sessionID, sess.Bank)
	}
	if len(sess.Answers) == 0 {
		return fmt.Errorf("session %s has no answers to export", sessionID)
	}

	fixture, err := buildFixture(b, sess, desc)
	if err != nil {
		return err
	}
	if err := replay.WriteFixture(fixture, outPath); err != nil {
		return err
	}

	fmt.Printf("Wrote fixture to %s (%d answers)\n", outPath, len(sess.Answers))
	return nil
}

// buildFixture recomputes the full pipeline for the stored answers so the
// fixture pins today's behavior, not whatever was stored at completion time.
func buildFixture(b *bank.Bank, sess session.Session, desc string) (replay.Fixture, error) {
	answersJSON, err := json.Marshal(sess.Answers)
	if err != nil {
		return replay.Fixture{}, fmt.Errorf("marshal answers: %w", err)
	}

	res := scoring.Compute(b, sess.Answers)
	expected := replay.FixtureExpected{
		Primary:     string(res.Primary),
		Secondary:   string(res.Secondary),
		Dims:        map[string]float64{},
		Percentages: map[string]int{},
	}
	for _, sc := range res.Scores {
		expected.Dims[string(sc.Category)] = sc.Value
		expected.Percentages[string(sc.Category)] = sc.Percentage
	}
	if b.Name == bank.BankSeedling {
		primary, secondary := scoring.SelectStyles(res.Dims())
		expected.Style = string(primary)
		expected.SecondStyle = string(secondary)
	}

	if desc == "" {
		desc = fmt.Sprintf("Session export: %d answers on the %s bank", len(sess.Answers), b.Name)
	}
	return replay.Fixture{
		Description: desc,
		Bank:        b.Name,
		Locale:      sess.Locale,
		Answers:     answersJSON,
		Expected:    expected,
	}, nil
}

// #endregion export
