// Package report derives the read-side views from a store snapshot: the
// filtered ledger projection and the summary figures. Both are pure
// functions; they never touch the store itself.
package report

import (
	"sort"
	"strings"
	"time"

	"tracker/internal/core"
)

// Project returns the ledger rows for display. An empty filter passes every
// transaction; a non-empty filter keeps rows whose category matches
// case-insensitively after trimming. Snapshot order (date descending, id
// descending) is preserved.
func Project(snapshot []core.Transaction, categoryFilter string) []core.Transaction {
	filter := strings.TrimSpace(categoryFilter)
	out := make([]core.Transaction, 0, len(snapshot))
	for _, tx := range snapshot {
		if filter == "" || strings.EqualFold(tx.Category, filter) {
			out = append(out, tx)
		}
	}
	return out
}

// Summarize computes every figure shown outside the table. The month window
// for MonthExpense is the calendar month of now in the local zone. Order of
// the snapshot does not matter; the last transaction is found by greatest
// date, ties broken by greatest id.
func Summarize(snapshot []core.Transaction, now time.Time) core.Summary {
	sum := core.Summary{Count: len(snapshot)}
	year, month := now.Year(), int(now.Month())

	byCategory := make(map[string]core.Money)
	var last *core.Transaction
	for i := range snapshot {
		tx := snapshot[i]
		switch tx.Type {
		case core.Income:
			sum.TotalIncome = sum.TotalIncome.Add(tx.Amount)
		case core.Expense:
			sum.TotalExpense = sum.TotalExpense.Add(tx.Amount)
			if tx.Date.SameMonth(year, month) {
				sum.MonthExpense = sum.MonthExpense.Add(tx.Amount)
			}
		}
		// The source never split the category chart by type, so income and
		// expense sum together here.
		byCategory[tx.Category] = byCategory[tx.Category].Add(tx.Amount)

		if last == nil {
			last = &snapshot[i]
			continue
		}
		if c := tx.Date.Compare(last.Date); c > 0 || (c == 0 && tx.ID > last.ID) {
			last = &snapshot[i]
		}
	}

	sum.Balance = sum.TotalIncome.Sub(sum.TotalExpense)
	if last != nil {
		amount := last.Amount
		sum.LastAmount = &amount
	}

	for name, amount := range byCategory {
		sum.ByCategory = append(sum.ByCategory, core.CategoryAmount{Name: name, Amount: amount})
	}
	// Largest first; equal sums order by name so the top pick is stable.
	sort.Slice(sum.ByCategory, func(i, j int) bool {
		if sum.ByCategory[i].Amount.Cents != sum.ByCategory[j].Amount.Cents {
			return sum.ByCategory[i].Amount.Cents > sum.ByCategory[j].Amount.Cents
		}
		return sum.ByCategory[i].Name < sum.ByCategory[j].Name
	})
	if len(sum.ByCategory) > 0 {
		sum.TopCategory = sum.ByCategory[0].Name
	}

	return sum
}
