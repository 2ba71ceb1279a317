// Package analytics stores anonymous usage events and serves aggregate
// projections over them. An event carries a timestamp, the primary style,
// the selected challenge, and the locale. No raw answers, no identifiers.
package analytics

import (
	"database/sql"
	"fmt"
	"time"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS analytics_events (
	id               INTEGER PRIMARY KEY AUTOINCREMENT,
	created_at       TEXT NOT NULL,
	primary_style    TEXT,
	challenge_selected TEXT,
	locale           TEXT
);
`

// #endregion schema

// #region types

// Event is one anonymous usage record.
type Event struct {
	Timestamp         time.Time `json:"timestamp"`
	PrimaryStyle      string    `json:"primary_style"`
	ChallengeSelected string    `json:"challenge_selected,omitempty"`
	Locale            string    `json:"locale"`
}

// Count is one bucket of an aggregate projection.
type Count struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// #endregion types

// #region recorder

// Recorder writes events into a shared SQLite handle, typically the session
// store's.
type Recorder struct {
	db *sql.DB
}

// NewRecorder prepares the events table on the given handle.
func NewRecorder(db *sql.DB) (*Recorder, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate analytics: %w", err)
	}
	return &Recorder{db: db}, nil
}

// Record stores one event. The caller decides what (not) to put in it; this
// layer never sees answers or session IDs.
func (r *Recorder) Record(ev Event) error {
	ts := ev.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	_, err := r.db.Exec(
		`INSERT INTO analytics_events (created_at, primary_style, challenge_selected, locale)
		 VALUES (?, ?, ?, ?)`,
		ts.UTC().Format(time.RFC3339Nano), ev.PrimaryStyle, ev.ChallengeSelected, ev.Locale,
	)
	if err != nil {
		return fmt.Errorf("record event: %w", err)
	}
	return nil
}

// #endregion recorder

// #region projections

// StyleDistribution aggregates events by primary style, most common first.
func (r *Recorder) StyleDistribution() ([]Count, error) {
	return r.distribution("primary_style")
}

// LocaleDistribution aggregates events by locale, most common first.
func (r *Recorder) LocaleDistribution() ([]Count, error) {
	return r.distribution("locale")
}

func (r *Recorder) distribution(column string) ([]Count, error) {
	// column is one of two fixed names above, never caller input.
	rows, err := r.db.Query(fmt.Sprintf(
		`SELECT %s, COUNT(*) FROM analytics_events
		 WHERE %s IS NOT NULL AND %s != ''
		 GROUP BY %s ORDER BY COUNT(*) DESC, %s ASC`,
		column, column, column, column, column,
	))
	if err != nil {
		return nil, fmt.Errorf("project %s: %w", column, err)
	}
	defer rows.Close()

	var counts []Count
	for rows.Next() {
		var c Count
		if err := rows.Scan(&c.Key, &c.Count); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// Recent returns the newest events, for the inspect tool.
func (r *Recorder) Recent(limit int) ([]Event, error) {
	rows, err := r.db.Query(
		`SELECT created_at, primary_style, challenge_selected, locale
		 FROM analytics_events ORDER BY id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("recent events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var ev Event
		var createdStr string
		var style, ch, locale sql.NullString
		if err := rows.Scan(&createdStr, &style, &ch, &locale); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		ev.Timestamp, _ = time.Parse(time.RFC3339Nano, createdStr)
		ev.PrimaryStyle = style.String
		ev.ChallengeSelected = ch.String
		ev.Locale = locale.String
		events = append(events, ev)
	}
	return events, rows.Err()
}

// #endregion projections
