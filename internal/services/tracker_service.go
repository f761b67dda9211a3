// Package services hosts the controller the UI binds to: mutation commands,
// queries, and change notifications over the transaction store.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"tracker/internal/amqp"
	"tracker/internal/core"
	"tracker/internal/export"
	"tracker/internal/report"
	"tracker/internal/store"
)

// EventPublisher pushes change notifications to outside consumers. A nil
// publisher disables publication; mutations never fail because of it.
type EventPublisher interface {
	PublishTransactionEvent(ctx context.Context, id int64, action string) error
}

// TrackerService serializes mutations over the store and keeps the derived
// views consistent. The onChange callback for mutation N runs to completion
// before mutation N+1 is accepted.
type TrackerService struct {
	store  *store.Store
	events EventPublisher
	clock  func() time.Time

	mu        sync.Mutex
	listeners []func()

	// Summary is memoized between mutations. The cache has its own lock so
	// onChange listeners can query while the mutation lock is held. The
	// month key guards the MonthExpense figure across a month rollover.
	cacheMu     sync.Mutex
	cached      *core.Summary
	cachedYear  int
	cachedMonth int
}

func NewTrackerService(st *store.Store, events EventPublisher) *TrackerService {
	return &TrackerService{
		store:  st,
		events: events,
		clock:  time.Now,
	}
}

// AddTransaction validates and inserts a new transaction, returning its id.
func (s *TrackerService) AddTransaction(ctx context.Context, date core.Date, typ core.TransactionType, category, description string, amount core.Money) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.store.Insert(date, typ, category, description, amount)
	if err != nil {
		return 0, fmt.Errorf("add transaction: %w", err)
	}

	slog.InfoContext(ctx, "Transaction added",
		"id", id,
		"type", string(typ),
		"category", category,
		"amount_cents", amount.Cents)

	s.changed(ctx, id, amqp.ActionCreated)
	return id, nil
}

// EditTransaction applies a partial update atomically.
func (s *TrackerService) EditTransaction(ctx context.Context, id int64, patch store.Patch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Update(id, patch); err != nil {
		return fmt.Errorf("edit transaction %d: %w", id, err)
	}

	slog.InfoContext(ctx, "Transaction updated", "id", id)
	s.changed(ctx, id, amqp.ActionUpdated)
	return nil
}

// DeleteTransaction removes a transaction. Deleting an unknown id fails with
// core.ErrNotFound; the UI maps that to its "no selection" prompt.
func (s *TrackerService) DeleteTransaction(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Delete(id); err != nil {
		return fmt.Errorf("delete transaction %d: %w", id, err)
	}

	slog.InfoContext(ctx, "Transaction deleted", "id", id)
	s.changed(ctx, id, amqp.ActionDeleted)
	return nil
}

// GetTransaction returns a single transaction by id.
func (s *TrackerService) GetTransaction(ctx context.Context, id int64) (core.Transaction, error) {
	tx, err := s.store.Get(id)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("get transaction %d: %w", id, err)
	}
	return tx, nil
}

// ExportCSV writes the current snapshot to path. The snapshot is a stable
// value copy, so a slow write never observes later mutations.
func (s *TrackerService) ExportCSV(ctx context.Context, path string) error {
	snapshot := s.store.Snapshot()
	if err := export.File(path, snapshot); err != nil {
		slog.ErrorContext(ctx, "CSV export failed", "error", err, "path", path)
		return err
	}
	slog.InfoContext(ctx, "CSV export completed", "path", path, "rows", len(snapshot))
	return nil
}

// Ledger returns the sorted, optionally filtered projection for the table.
func (s *TrackerService) Ledger(categoryFilter string) []core.Transaction {
	return report.Project(s.store.Snapshot(), categoryFilter)
}

// Summary returns the aggregate figures, recomputing only after a mutation
// or a calendar month rollover.
func (s *TrackerService) Summary() core.Summary {
	now := s.clock()
	year, month := now.Year(), int(now.Month())

	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()
	if s.cached != nil && s.cachedYear == year && s.cachedMonth == month {
		return *s.cached
	}

	sum := report.Summarize(s.store.Snapshot(), now)
	s.cached = &sum
	s.cachedYear = year
	s.cachedMonth = month
	return sum
}

// OnChange registers a callback invoked after every successful mutation, on
// the mutating goroutine, with no arguments.
func (s *TrackerService) OnChange(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// changed invalidates derived state, runs listeners, and publishes the event.
// Callers hold s.mu, so notifications for one mutation finish before the
// next is accepted.
func (s *TrackerService) changed(ctx context.Context, id int64, action string) {
	s.cacheMu.Lock()
	s.cached = nil
	s.cacheMu.Unlock()
	for _, fn := range s.listeners {
		fn()
	}
	if s.events == nil {
		return
	}
	if err := s.events.PublishTransactionEvent(ctx, id, action); err != nil {
		// The mutation already succeeded locally; a broker hiccup is not a
		// reason to report failure to the caller.
		slog.ErrorContext(ctx, "Failed to publish transaction event",
			"id", id, "action", action, "error", err)
	}
}
