package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/seedlinghq/seedling-engine/internal/bank"
)

// #region session
// Session is the explicit state of one assessment run. Transitions return a
// new value; nothing here mutates in place, so callers can hold snapshots
// without surprises.
type Session struct {
	ID        string         `json:"id"`
	Bank      string         `json:"bank"`
	Locale    string         `json:"locale"`
	Answers   bank.AnswerSet `json:"answers"`
	Index     int            `json:"index"` // current question position
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// New starts a fresh session on a bank.
func New(bankName, locale string, now time.Time) Session {
	return Session{
		ID:        uuid.New().String(),
		Bank:      bankName,
		Locale:    locale,
		Answers:   bank.AnswerSet{},
		CreatedAt: now.UTC(),
		UpdatedAt: now.UTC(),
	}
}

// #endregion session

// #region transitions

// Answer records a value for a question and returns the new session.
func (s Session) Answer(id string, v int, now time.Time) Session {
	next := s.clone()
	next.Answers[id] = v
	next.UpdatedAt = now.UTC()
	return next
}

// Advance moves to the next question, capped at the bank's last index.
func (s Session) Advance(total int, now time.Time) Session {
	next := s.clone()
	if next.Index < total-1 {
		next.Index++
	}
	next.UpdatedAt = now.UTC()
	return next
}

// Back moves to the previous question, floored at zero.
func (s Session) Back(now time.Time) Session {
	next := s.clone()
	if next.Index > 0 {
		next.Index--
	}
	next.UpdatedAt = now.UTC()
	return next
}

// Reset clears answers and position but keeps identity and locale.
func (s Session) Reset(now time.Time) Session {
	next := s.clone()
	next.Answers = bank.AnswerSet{}
	next.Index = 0
	next.UpdatedAt = now.UTC()
	return next
}

// WithLocale switches display locale. Answers are keyed by question ID, so
// they survive the switch untouched.
func (s Session) WithLocale(locale string, now time.Time) Session {
	next := s.clone()
	next.Locale = locale
	next.UpdatedAt = now.UTC()
	return next
}

func (s Session) clone() Session {
	next := s
	next.Answers = make(bank.AnswerSet, len(s.Answers))
	for k, v := range s.Answers {
		next.Answers[k] = v
	}
	return next
}

// #endregion transitions
