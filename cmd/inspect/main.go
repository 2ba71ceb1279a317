package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/seedlinghq/seedling-engine/internal/analytics"
	"github.com/seedlinghq/seedling-engine/internal/bank"
	"github.com/seedlinghq/seedling-engine/internal/session"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to seedling.db")
	last := flag.Int("last", 20, "show N most recent sessions")
	sessionID := flag.String("session", "", "show single session detail")
	showAnalytics := flag.Bool("analytics", false, "show analytics distributions")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/seedling.db [--last N] [--session id] [--analytics] [--json]")
		os.Exit(2)
	}

	store, err := session.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case *showAnalytics:
		err = runAnalyticsMode(store, *jsonOut)
	case *sessionID != "":
		err = runDetailMode(store, *sessionID, *jsonOut)
	default:
		err = runListMode(store, *last, *jsonOut)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region list-mode

type listRow struct {
	SessionID string `json:"session_id"`
	Bank      string `json:"bank"`
	Locale    string `json:"locale"`
	Answered  int    `json:"answered"`
	Total     int    `json:"total"`
	UpdatedAt string `json:"updated_at"`
}

func runListMode(store *session.Store, last int, jsonOut bool) error {
	sessions, err := store.List(last)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Fprintln(os.Stderr, "no sessions found")
		return nil
	}

	rows := make([]listRow, len(sessions))
	for i, sess := range sessions {
		rows[i] = listRow{
			SessionID: sess.ID,
			Bank:      sess.Bank,
			Locale:    sess.Locale,
			Answered:  len(sess.Answers),
			Total:     bankSize(sess.Bank),
			UpdatedAt: sess.UpdatedAt.Format("2006-01-02T15:04:05Z"),
		}
	}

	if jsonOut {
		return printJSON(rows)
	}
	fmt.Printf("%-10s  %-10s  %-6s  %-9s  %s\n", "Session", "Bank", "Locale", "Answered", "Updated")
	for _, r := range rows {
		fmt.Printf("%-10s  %-10s  %-6s  %4d/%-4d  %s\n",
			shortID(r.SessionID), r.Bank, r.Locale, r.Answered, r.Total, r.UpdatedAt)
	}
	return nil
}

// #endregion list-mode

// #region detail-mode

func runDetailMode(store *session.Store, sessionID string, jsonOut bool) error {
	sess, err := store.Get(sessionID)
	if err != nil {
		return err
	}

	out := map[string]any{"session": sess}
	if res, copyText, err := store.GetResult(sessionID); err == nil {
		out["result"] = res
		if copyText != "" {
			out["copy_text"] = copyText
		}
	}

	if jsonOut {
		return printJSON(out)
	}

	fmt.Printf("Session:  %s\n", sess.ID)
	fmt.Printf("Bank:     %s\n", sess.Bank)
	fmt.Printf("Locale:   %s\n", sess.Locale)
	fmt.Printf("Answered: %d/%d\n", len(sess.Answers), bankSize(sess.Bank))
	fmt.Printf("Updated:  %s\n", sess.UpdatedAt.Format("2006-01-02T15:04:05Z"))

	if res, _, err := store.GetResult(sessionID); err == nil {
		fmt.Printf("\nResult: primary=%s secondary=%s\n", res.Primary, res.Secondary)
		for _, sc := range res.Scores {
			fmt.Printf("  %-16s %.3f  %3d%%\n", sc.Category, sc.Value, sc.Percentage)
		}
	} else {
		fmt.Println("\nNo stored result.")
	}
	return nil
}

// #endregion detail-mode

// #region analytics-mode

func runAnalyticsMode(store *session.Store, jsonOut bool) error {
	recorder, err := analytics.NewRecorder(store.DB())
	if err != nil {
		return err
	}
	styles, err := recorder.StyleDistribution()
	if err != nil {
		return err
	}
	locales, err := recorder.LocaleDistribution()
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]any{"styles": styles, "locales": locales})
	}

	fmt.Println("Styles:")
	for _, c := range styles {
		fmt.Printf("  %-12s %d\n", c.Key, c.Count)
	}
	fmt.Println("Locales:")
	for _, c := range locales {
		fmt.Printf("  %-12s %d\n", c.Key, c.Count)
	}
	return nil
}

// #endregion analytics-mode

// #region output

func bankSize(name string) int {
	b, ok := bank.ByName(name)
	if !ok {
		return 0
	}
	return len(b.Questions(b.DefaultLocale))
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// #endregion output
