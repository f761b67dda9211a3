package store

import (
	"errors"
	"testing"
	"time"

	"tracker/internal/core"
)

func mustInsert(t *testing.T, s *Store, date core.Date, typ core.TransactionType, category, desc string, cents int64) int64 {
	t.Helper()
	id, err := s.Insert(date, typ, category, desc, core.Money{Cents: cents})
	if err != nil {
		t.Fatalf("insert %s/%s: %v", typ, category, err)
	}
	return id
}

func TestInsertAndGet(t *testing.T) {
	s := New()
	id := mustInsert(t, s, core.NewDate(2024, 1, 15), core.Income, "  Salary  ", " Jan ", 5000000)

	tx, err := s.Get(id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if tx.Category != "Salary" || tx.Description != "Jan" {
		t.Fatalf("fields not trimmed: %q / %q", tx.Category, tx.Description)
	}
	if tx.ID != id {
		t.Fatalf("id mismatch: %d vs %d", tx.ID, id)
	}
}

func TestInsertValidation(t *testing.T) {
	s := New()
	cases := []struct {
		name     string
		category string
		cents    int64
		typ      core.TransactionType
	}{
		{"empty category", "  ", 100, core.Expense},
		{"zero amount", "Food", 0, core.Expense},
		{"negative amount", "Food", -100, core.Expense},
		{"bad type", "Food", 100, core.TransactionType("TRANSFER")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Insert(core.NewDate(2024, 1, 1), tc.typ, tc.category, "", core.Money{Cents: tc.cents})
			if err == nil {
				t.Fatal("expected error")
			}
		})
	}
	if s.Len() != 0 {
		t.Fatalf("rejected inserts must not mutate the store, len=%d", s.Len())
	}
}

func TestBoundaryAmounts(t *testing.T) {
	s := New()
	mustInsert(t, s, core.NewDate(2024, 1, 1), core.Expense, "Min", "", 1)        // 0.01
	mustInsert(t, s, core.NewDate(2024, 1, 1), core.Expense, "Max", "", 99999999) // 999999.99
	if s.Len() != 2 {
		t.Fatalf("len = %d, want 2", s.Len())
	}
}

func TestSnapshotOrder(t *testing.T) {
	s := New()
	// Two sharing a date: ledger order must be id-descending.
	first := mustInsert(t, s, core.NewDate(2024, 1, 16), core.Expense, "Rent", "", 2000000)
	second := mustInsert(t, s, core.NewDate(2024, 1, 16), core.Expense, "Food", "", 500000)
	older := mustInsert(t, s, core.NewDate(2024, 1, 10), core.Income, "Salary", "", 5000000)
	newest := mustInsert(t, s, core.NewDate(2024, 1, 17), core.Expense, "Transport", "", 100000)

	snap := s.Snapshot()
	wantOrder := []int64{newest, second, first, older}
	if len(snap) != len(wantOrder) {
		t.Fatalf("snapshot len = %d, want %d", len(snap), len(wantOrder))
	}
	for i, id := range wantOrder {
		if snap[i].ID != id {
			t.Fatalf("position %d: id %d, want %d", i, snap[i].ID, id)
		}
	}
}

func TestSnapshotIsValueCopy(t *testing.T) {
	s := New()
	id := mustInsert(t, s, core.NewDate(2024, 1, 15), core.Expense, "Food", "", 500000)

	snap := s.Snapshot()
	if err := s.Delete(id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(snap) != 1 || snap[0].Category != "Food" {
		t.Fatal("snapshot invalidated by later mutation")
	}
}

func TestUpdateAtomic(t *testing.T) {
	s := New()
	id := mustInsert(t, s, core.NewDate(2024, 1, 15), core.Expense, "Food", "Groceries", 500000)

	// Valid patch applies all supplied fields.
	newAmount := core.Money{Cents: 9999}
	newCategory := "Dining"
	if err := s.Update(id, Patch{Amount: &newAmount, Category: &newCategory}); err != nil {
		t.Fatalf("update: %v", err)
	}
	tx, _ := s.Get(id)
	if tx.Amount.Cents != 9999 || tx.Category != "Dining" {
		t.Fatalf("patch not applied: %+v", tx)
	}
	if tx.Description != "Groceries" {
		t.Fatalf("untouched field changed: %q", tx.Description)
	}

	// Invalid patch applies nothing, even when other fields are fine.
	badCategory := "   "
	otherAmount := core.Money{Cents: 777}
	err := s.Update(id, Patch{Category: &badCategory, Amount: &otherAmount})
	if !errors.Is(err, core.ErrEmptyCategory) {
		t.Fatalf("expected ErrEmptyCategory, got %v", err)
	}
	tx, _ = s.Get(id)
	if tx.Category != "Dining" || tx.Amount.Cents != 9999 {
		t.Fatalf("failed patch must not partially apply: %+v", tx)
	}
}

func TestUpdateRoundTrip(t *testing.T) {
	s := New()
	id := mustInsert(t, s, core.NewDate(2024, 1, 15), core.Expense, "Food", "Groceries", 500000)
	original, _ := s.Get(id)

	amount := core.Money{Cents: 9999}
	typ := core.Income
	if err := s.Update(id, Patch{Amount: &amount, Type: &typ}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := s.Update(id, Patch{Amount: &original.Amount, Type: &original.Type}); err != nil {
		t.Fatalf("restore: %v", err)
	}

	restored, _ := s.Get(id)
	if restored != original {
		t.Fatalf("round trip mismatch: %+v vs %+v", restored, original)
	}
}

func TestUpdateNotFound(t *testing.T) {
	s := New()
	amount := core.Money{Cents: 100}
	if err := s.Update(42, Patch{Amount: &amount}); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	s := New()
	id := mustInsert(t, s, core.NewDate(2024, 1, 15), core.Expense, "Food", "", 500000)

	if err := s.Delete(id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("len = %d after delete", s.Len())
	}
	// Not idempotent: a second delete reports NotFound.
	if err := s.Delete(id); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestIDsNeverReused(t *testing.T) {
	s := New()
	first := mustInsert(t, s, core.NewDate(2024, 1, 1), core.Expense, "Food", "", 100)
	if err := s.Delete(first); err != nil {
		t.Fatalf("delete: %v", err)
	}
	second := mustInsert(t, s, core.NewDate(2024, 1, 1), core.Expense, "Food", "", 100)
	if second <= first {
		t.Fatalf("id reused: first=%d second=%d", first, second)
	}
}

func TestSeedDemo(t *testing.T) {
	s := New()
	now := time.Date(2024, 6, 15, 10, 30, 0, 0, time.Local)
	if err := SeedDemo(s, now); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if s.Len() != 6 {
		t.Fatalf("len = %d, want 6", s.Len())
	}

	snap := s.Snapshot()
	// The freelance income sits five days back, so it sorts last.
	last := snap[len(snap)-1]
	if last.Category != "Freelance" || !last.Date.Equal(core.NewDate(2024, 6, 10).Time) {
		t.Fatalf("unexpected oldest seed row: %+v", last)
	}
}
