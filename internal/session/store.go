package session

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/seedlinghq/seedling-engine/internal/bank"
	"github.com/seedlinghq/seedling-engine/internal/scoring"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	session_id    TEXT PRIMARY KEY,
	bank          TEXT NOT NULL,
	locale        TEXT NOT NULL,
	answers_json  TEXT NOT NULL,
	question_idx  INTEGER NOT NULL DEFAULT 0,
	enrich_calls  INTEGER NOT NULL DEFAULT 0,
	created_at    TEXT NOT NULL,
	updated_at    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS results (
	session_id    TEXT PRIMARY KEY,
	result_json   TEXT NOT NULL,
	copy_text     TEXT,
	created_at    TEXT NOT NULL,
	FOREIGN KEY (session_id) REFERENCES sessions(session_id)
);
`

// #endregion schema

// #region store-struct
// Store persists sessions and their computed results in SQLite.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// #endregion constructor

// #region close
// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// #endregion close

// #region db-accessor
// DB returns the underlying *sql.DB for use by other packages (e.g. analytics).
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion db-accessor

// #region save
// Save upserts a session row.
func (s *Store) Save(sess Session) error {
	answersJSON, err := json.Marshal(sess.Answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO sessions (session_id, bank, locale, answers_json, question_idx, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(session_id) DO UPDATE SET
		   locale = excluded.locale,
		   answers_json = excluded.answers_json,
		   question_idx = excluded.question_idx,
		   updated_at = excluded.updated_at`,
		sess.ID, sess.Bank, sess.Locale, string(answersJSON), sess.Index,
		sess.CreatedAt.Format(time.RFC3339Nano), sess.UpdatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// #endregion save

// #region get
// Get retrieves a session by ID.
func (s *Store) Get(id string) (Session, error) {
	var sess Session
	var answersJSON, createdStr, updatedStr string

	err := s.db.QueryRow(
		`SELECT session_id, bank, locale, answers_json, question_idx, created_at, updated_at
		 FROM sessions WHERE session_id = ?`, id,
	).Scan(&sess.ID, &sess.Bank, &sess.Locale, &answersJSON, &sess.Index, &createdStr, &updatedStr)
	if err != nil {
		return Session{}, fmt.Errorf("get session %s: %w", id, err)
	}

	sess.Answers = bank.AnswerSet{}
	if err := json.Unmarshal([]byte(answersJSON), &sess.Answers); err != nil {
		return Session{}, fmt.Errorf("unmarshal answers: %w", err)
	}
	sess.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
	sess.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updatedStr)
	return sess, nil
}

// #endregion get

// #region delete
// Delete removes a session and its result. Restarting an assessment deletes
// the row rather than blanking it.
func (s *Store) Delete(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM results WHERE session_id = ?`, id); err != nil {
		return fmt.Errorf("delete result: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM sessions WHERE session_id = ?`, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return tx.Commit()
}

// #endregion delete

// #region list
// List returns the most recently updated sessions.
func (s *Store) List(limit int) ([]Session, error) {
	rows, err := s.db.Query(
		`SELECT session_id, bank, locale, answers_json, question_idx, created_at, updated_at
		 FROM sessions ORDER BY updated_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var sess Session
		var answersJSON, createdStr, updatedStr string
		if err := rows.Scan(&sess.ID, &sess.Bank, &sess.Locale, &answersJSON, &sess.Index, &createdStr, &updatedStr); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		sess.Answers = bank.AnswerSet{}
		if err := json.Unmarshal([]byte(answersJSON), &sess.Answers); err != nil {
			return nil, fmt.Errorf("unmarshal answers: %w", err)
		}
		sess.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		sess.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updatedStr)
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}

// #endregion list

// #region results
// SaveResult stores the computed result and copy text for a session.
func (s *Store) SaveResult(sessionID string, res scoring.Result, copyText string) error {
	resultJSON, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO results (session_id, result_json, copy_text, created_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(session_id) DO UPDATE SET
		   result_json = excluded.result_json,
		   copy_text = excluded.copy_text,
		   created_at = excluded.created_at`,
		sessionID, string(resultJSON), copyText, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("save result: %w", err)
	}
	return nil
}

// GetResult retrieves a stored result by session ID.
func (s *Store) GetResult(sessionID string) (scoring.Result, string, error) {
	var resultJSON string
	var copyText sql.NullString

	err := s.db.QueryRow(
		`SELECT result_json, copy_text FROM results WHERE session_id = ?`, sessionID,
	).Scan(&resultJSON, &copyText)
	if err != nil {
		return scoring.Result{}, "", fmt.Errorf("get result %s: %w", sessionID, err)
	}

	var res scoring.Result
	if err := json.Unmarshal([]byte(resultJSON), &res); err != nil {
		return scoring.Result{}, "", fmt.Errorf("unmarshal result: %w", err)
	}
	return res, copyText.String, nil
}

// #endregion results

// #region enrich-budget
// IncrementEnrichCalls bumps the per-session enrichment counter and returns
// the new count. The enrichment client enforces its budget on this value.
func (s *Store) IncrementEnrichCalls(sessionID string) (int, error) {
	res, err := s.db.Exec(
		`UPDATE sessions SET enrich_calls = enrich_calls + 1 WHERE session_id = ?`, sessionID,
	)
	if err != nil {
		return 0, fmt.Errorf("bump enrich calls: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return 0, fmt.Errorf("session %s not found", sessionID)
	}

	var count int
	if err := s.db.QueryRow(
		`SELECT enrich_calls FROM sessions WHERE session_id = ?`, sessionID,
	).Scan(&count); err != nil {
		return 0, fmt.Errorf("read enrich calls: %w", err)
	}
	return count, nil
}

// #endregion enrich-budget
