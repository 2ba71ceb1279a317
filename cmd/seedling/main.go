package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/seedlinghq/seedling-engine/internal/bank"
	"github.com/seedlinghq/seedling-engine/internal/gate"
	"github.com/seedlinghq/seedling-engine/internal/insight"
	"github.com/seedlinghq/seedling-engine/internal/profile"
	"github.com/seedlinghq/seedling-engine/internal/scoring"
	"github.com/seedlinghq/seedling-engine/internal/session"
	"github.com/seedlinghq/seedling-engine/internal/share"
	"github.com/seedlinghq/seedling-engine/internal/summary"
)

// #region main
func main() {
	bankName := envOr("SEEDLING_BANK", bank.BankReflection)
	dbPath := envOr("SEEDLING_DB", "")

	b, ok := bank.ByName(bankName)
	if !ok {
		log.Fatalf("unknown bank %q (want %s or %s)", bankName, bank.BankReflection, bank.BankSeedling)
	}
	locale := envOr("SEEDLING_LOCALE", b.DefaultLocale)

	// Persistence is optional for the terminal runner.
	var store *session.Store
	if dbPath != "" {
		var err error
		store, err = session.NewStore(dbPath)
		if err != nil {
			log.Fatalf("failed to open store: %v", err)
		}
		defer store.Close()
	}

	sess := session.New(b.Name, locale, time.Now())
	questions := b.Questions(locale)

	fmt.Printf("Seedling self-assessment: %s bank, %d questions, locale %s\n", b.Name, len(questions), locale)
	fmt.Printf("Answer with %d..%d; 'skip', 'back', or 'quit' also work.\n\n", b.Scale.Lo, b.Scale.Hi)

	scanner := bufio.NewScanner(os.Stdin)
	for sess.Index < len(questions) {
		q := questions[sess.Index]
		fmt.Printf("[%d/%d] %s\n> ", sess.Index+1, len(questions), q.Text)
		if !scanner.Scan() {
			return
		}
		input := strings.TrimSpace(scanner.Text())

		switch input {
		case "quit", "exit":
			return
		case "back":
			sess = sess.Back(time.Now())
			continue
		case "skip":
			// total+1 lets the cursor walk past the final question to finish.
			sess = sess.Advance(len(questions)+1, time.Now())
		default:
			v, err := strconv.Atoi(input)
			if err != nil || !b.Scale.Contains(v) {
				fmt.Printf("enter a number %d..%d\n", b.Scale.Lo, b.Scale.Hi)
				continue
			}
			sess = sess.Answer(q.ID, v, time.Now())
			sess = sess.Advance(len(questions)+1, time.Now())
		}

		if store != nil {
			if err := store.Save(sess); err != nil {
				log.Printf("save session: %v", err)
			}
		}
	}

	decision := gate.NewGate(gate.DefaultGateConfig()).Evaluate(b, sess.Answers, sess.Locale)
	if decision.Vetoed {
		fmt.Printf("\nCannot score this run: %s\n", decision.Reason)
		os.Exit(1)
	}

	res := scoring.Compute(b, sess.Answers)
	printResult(b, sess, res)

	if store != nil {
		copyText := ""
		if b.Name == bank.BankSeedling {
			copyText = summary.CopyText(profile.Style(firstStyle(res)), res.Dims())
		}
		if err := store.SaveResult(sess.ID, res, copyText); err != nil {
			log.Printf("save result: %v", err)
		}
		fmt.Printf("\nSaved as session %s\n", sess.ID)
	}
}

// #endregion main

// #region output

func printResult(b *bank.Bank, sess session.Session, res scoring.Result) {
	fmt.Printf("\n--- Result (%d/%d answered) ---\n", len(sess.Answers), len(b.Questions(b.DefaultLocale)))

	if b.Name == bank.BankSeedling {
		dims := res.Dims()
		primary, secondary := scoring.SelectStyles(dims)
		sp := profile.Style(primary)
		fmt.Printf("Style: %s (secondary: %s)\n%s\n\n", primary, secondary, sp.Headline)
		for _, m := range insight.Meters(res) {
			fmt.Printf("  %-28s %3d/100\n", m.Label, m.Percentage)
		}
		fmt.Printf("\n%s\n", insight.LearningMode(dims))
		fmt.Printf("\n%s\n", summary.CopyText(sp, dims))
	} else {
		p := profile.Lookup(res.Primary, sess.Locale)
		fmt.Printf("Primary: %s\n%s\n", p.Title, p.Description)
		fmt.Printf("\nNext steps: %s\n", p.NextSteps)
	}

	if token, err := share.Encode(b.Name, sess.Locale, sess.Answers); err == nil {
		fmt.Printf("\nShare token: %s\n", token)
	}
}

func firstStyle(res scoring.Result) scoring.Style {
	primary, _ := scoring.SelectStyles(res.Dims())
	return primary
}

// #endregion output

// #region helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
