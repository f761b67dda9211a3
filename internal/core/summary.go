package core

// CategoryAmount represents an amount aggregated by category name.
type CategoryAmount struct {
	Name   string
	Amount Money
}

// Summary holds every scalar figure shown outside the ledger table. All sums
// are exact; Balance may be negative. TopCategory is the empty string and
// LastAmount nil when no transactions exist.
type Summary struct {
	TotalIncome  Money
	TotalExpense Money
	Balance      Money
	MonthExpense Money
	Count        int
	TopCategory  string
	LastAmount   *Money
	ByCategory   []CategoryAmount
}
