package session

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/seedlinghq/seedling-engine/internal/bank"
	"github.com/seedlinghq/seedling-engine/internal/scoring"
)

// #region transitions

func TestTransitionsDoNotMutateOriginal(t *testing.T) {
	now := time.Now()
	s := New(bank.BankSeedling, "en", now)
	s2 := s.Answer("q1", 4, now)

	if len(s.Answers) != 0 {
		t.Fatalf("original session mutated: %v", s.Answers)
	}
	if s2.Answers["q1"] != 4 {
		t.Fatalf("answer not recorded: %v", s2.Answers)
	}
}

func TestAdvanceAndBackBounds(t *testing.T) {
	now := time.Now()
	s := New(bank.BankSeedling, "en", now)

	s = s.Back(now)
	if s.Index != 0 {
		t.Errorf("Back below zero: %d", s.Index)
	}

	for i := 0; i < 40; i++ {
		s = s.Advance(30, now)
	}
	if s.Index != 29 {
		t.Errorf("Advance past end: %d, want 29", s.Index)
	}
}

func TestResetKeepsIdentity(t *testing.T) {
	now := time.Now()
	s := New(bank.BankReflection, "hi", now)
	s = s.Answer("q1", 2, now).Advance(12, now)
	r := s.Reset(now)

	if r.ID != s.ID || r.Locale != "hi" {
		t.Errorf("reset changed identity: %+v", r)
	}
	if len(r.Answers) != 0 || r.Index != 0 {
		t.Errorf("reset did not clear state: %+v", r)
	}
}

func TestWithLocaleKeepsAnswers(t *testing.T) {
	now := time.Now()
	s := New(bank.BankReflection, "en", now).Answer("q3", 3, now)
	s2 := s.WithLocale("te", now)

	if s2.Locale != "te" {
		t.Errorf("locale = %s", s2.Locale)
	}
	if s2.Answers["q3"] != 3 {
		t.Errorf("answers lost on locale switch: %v", s2.Answers)
	}
}

// #endregion transitions

// #region store

func tempStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "seedling.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreSaveGetRoundTrip(t *testing.T) {
	store := tempStore(t)
	now := time.Now()
	sess := New(bank.BankSeedling, "en", now).Answer("q1", 5, now).Answer("q2", 3, now)

	if err := store.Save(sess); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := store.Get(sess.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Bank != bank.BankSeedling || got.Locale != "en" {
		t.Errorf("got %+v", got)
	}
	if got.Answers["q1"] != 5 || got.Answers["q2"] != 3 {
		t.Errorf("answers = %v", got.Answers)
	}
}

func TestStoreSaveIsUpsert(t *testing.T) {
	store := tempStore(t)
	now := time.Now()
	sess := New(bank.BankReflection, "en", now)

	if err := store.Save(sess); err != nil {
		t.Fatalf("save: %v", err)
	}
	sess = sess.Answer("q1", 2, now).WithLocale("hi", now)
	if err := store.Save(sess); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, err := store.Get(sess.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Locale != "hi" || got.Answers["q1"] != 2 {
		t.Errorf("upsert lost state: %+v", got)
	}
}

func TestStoreDeleteRemovesSessionAndResult(t *testing.T) {
	store := tempStore(t)
	now := time.Now()
	sess := New(bank.BankSeedling, "en", now)

	if err := store.Save(sess); err != nil {
		t.Fatalf("save: %v", err)
	}
	res := scoring.Compute(bank.Seedling(), bank.AnswerSet{"q1": 4})
	if err := store.SaveResult(sess.ID, res, "copy"); err != nil {
		t.Fatalf("save result: %v", err)
	}

	if err := store.Delete(sess.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get(sess.ID); err == nil {
		t.Fatal("session should be gone")
	}
	if _, _, err := store.GetResult(sess.ID); err == nil {
		t.Fatal("result should be gone")
	}
}

func TestStoreResultRoundTrip(t *testing.T) {
	store := tempStore(t)
	now := time.Now()
	sess := New(bank.BankSeedling, "en", now)
	if err := store.Save(sess); err != nil {
		t.Fatalf("save: %v", err)
	}

	res := scoring.Compute(bank.Seedling(), bank.AnswerSet{"q21": 5, "q16": 4})
	if err := store.SaveResult(sess.ID, res, "SEEDLING RESULT"); err != nil {
		t.Fatalf("save result: %v", err)
	}

	got, copyText, err := store.GetResult(sess.ID)
	if err != nil {
		t.Fatalf("get result: %v", err)
	}
	if got.Primary != res.Primary || copyText != "SEEDLING RESULT" {
		t.Errorf("got %s / %q, want %s", got.Primary, copyText, res.Primary)
	}
}

func TestStoreEnrichBudgetCounter(t *testing.T) {
	store := tempStore(t)
	now := time.Now()
	sess := New(bank.BankSeedling, "en", now)
	if err := store.Save(sess); err != nil {
		t.Fatalf("save: %v", err)
	}

	for want := 1; want <= 3; want++ {
		got, err := store.IncrementEnrichCalls(sess.ID)
		if err != nil {
			t.Fatalf("increment: %v", err)
		}
		if got != want {
			t.Errorf("count = %d, want %d", got, want)
		}
	}

	if _, err := store.IncrementEnrichCalls("no-such-session"); err == nil {
		t.Fatal("expected error for unknown session")
	}
}

func TestStoreListOrdersByRecency(t *testing.T) {
	store := tempStore(t)
	base := time.Now()
	older := New(bank.BankSeedling, "en", base.Add(-time.Hour))
	newer := New(bank.BankSeedling, "en", base)

	if err := store.Save(older); err != nil {
		t.Fatalf("save older: %v", err)
	}
	if err := store.Save(newer); err != nil {
		t.Fatalf("save newer: %v", err)
	}

	got, err := store.List(10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ID != newer.ID {
		t.Errorf("most recent first, got %s", got[0].ID)
	}
}

// #endregion store
