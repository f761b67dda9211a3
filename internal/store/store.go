// Package store owns the transaction set. It is the only mutable state in
// the process; every other component works on value-copy snapshots.
package store

import (
	"sort"
	"strings"
	"sync"

	"tracker/internal/core"
)

// Store maps ids to transactions and hands out monotonically increasing ids.
// Ids are never reused within a session, so the id order doubles as the
// insertion order for snapshot tie-breaking.
type Store struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]core.Transaction
}

func New() *Store {
	return &Store{
		nextID: 1,
		items:  make(map[int64]core.Transaction),
	}
}

// Insert validates and stores a new transaction, returning its fresh id.
// Category and description are trimmed before validation.
func (s *Store) Insert(date core.Date, typ core.TransactionType, category, description string, amount core.Money) (int64, error) {
	tx := core.Transaction{
		Date:        date,
		Type:        typ,
		Category:    strings.TrimSpace(category),
		Description: strings.TrimSpace(description),
		Amount:      amount,
	}
	if err := tx.Validate(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	tx.ID = s.nextID
	s.nextID++
	s.items[tx.ID] = tx
	return tx.ID, nil
}

// Patch carries the subset of fields an update wants to change. Nil fields
// keep their current value.
type Patch struct {
	Date        *core.Date
	Type        *core.TransactionType
	Category    *string
	Description *string
	Amount      *core.Money
}

// Update applies a patch atomically: the candidate record is validated in
// full before anything is committed, so a rejected patch leaves the stored
// transaction untouched.
func (s *Store) Update(id int64, p Patch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, ok := s.items[id]
	if !ok {
		return core.ErrNotFound
	}

	if p.Date != nil {
		tx.Date = *p.Date
	}
	if p.Type != nil {
		tx.Type = *p.Type
	}
	if p.Category != nil {
		tx.Category = strings.TrimSpace(*p.Category)
	}
	if p.Description != nil {
		tx.Description = strings.TrimSpace(*p.Description)
	}
	if p.Amount != nil {
		tx.Amount = *p.Amount
	}

	if err := tx.Validate(); err != nil {
		return err
	}
	s.items[id] = tx
	return nil
}

// Delete removes a transaction. A second delete of the same id fails with
// ErrNotFound; callers decide what that means for them.
func (s *Store) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return core.ErrNotFound
	}
	delete(s.items, id)
	return nil
}

// Get returns a value copy of the transaction with the given id.
func (s *Store) Get(id int64) (core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx, ok := s.items[id]
	if !ok {
		return core.Transaction{}, core.ErrNotFound
	}
	return tx, nil
}

// Snapshot returns a value copy of all transactions sorted by date
// descending, ties broken by id descending (most recently inserted wins).
// The slice is safe to hold across later mutations.
func (s *Store) Snapshot() []core.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]core.Transaction, 0, len(s.items))
	for _, tx := range s.items {
		out = append(out, tx)
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Date.Compare(out[j].Date); c != 0 {
			return c > 0
		}
		return out[i].ID > out[j].ID
	})
	return out
}

// Len returns the number of stored transactions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
