package store

import (
	"fmt"
	"time"

	"tracker/internal/core"
)

// SeedDemo loads the demonstration dataset: six transactions with dates
// relative to now. The seed is a startup convenience, not a contract; tests
// always start from an empty store.
func SeedDemo(s *Store, now time.Time) error {
	today := core.DateOf(now)
	fiveDaysAgo := core.DateOf(now.AddDate(0, 0, -5))

	rows := []struct {
		date     core.Date
		typ      core.TransactionType
		category string
		desc     string
		cents    int64
	}{
		{today, core.Income, "Salary", "Monthly Paycheck", 7500000},
		{today, core.Expense, "Rent", "Monthly Rent", 2000000},
		{today, core.Expense, "Food", "Groceries", 850050},
		{today, core.Expense, "Transport", "Gasoline", 300000},
		{today, core.Expense, "Entertainment", "Movie tickets", 120000},
		{fiveDaysAgo, core.Income, "Freelance", "Project Work", 1500000},
	}

	for _, r := range rows {
		if _, err := s.Insert(r.date, r.typ, r.category, r.desc, core.Money{Cents: r.cents}); err != nil {
			return fmt.Errorf("seed %q: %w", r.category, err)
		}
	}
	return nil
}
