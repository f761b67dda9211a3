package core

import (
	"errors"
	"strings"
)

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

type (
	// TransactionType is a closed two-case tag. The string values double as
	// the CSV wire form.
	TransactionType string

	// Transaction is a dated financial event. The ID is assigned by the
	// store on insert and never changes or gets reused within a session.
	Transaction struct {
		ID          int64
		Date        Date
		Type        TransactionType
		Category    string
		Description string
		Amount      Money
	}
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidDate   = errors.New("invalid date")
	ErrInvalidType   = errors.New("invalid transaction type")
	ErrEmptyCategory = errors.New("empty category")
	ErrNotFound      = errors.New("transaction not found")
)

// ParseTransactionType maps a tag string to its variant, case-insensitively.
func ParseTransactionType(s string) (TransactionType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(Income):
		return Income, nil
	case string(Expense):
		return Expense, nil
	default:
		return "", ErrInvalidType
	}
}

func (t TransactionType) Validate() error {
	switch t {
	case Income, Expense:
		return nil
	default:
		return ErrInvalidType
	}
}

func (tx Transaction) Validate() error {
	if err := tx.Date.Validate(); err != nil {
		return err
	}
	if err := tx.Type.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(tx.Category) == "" {
		return ErrEmptyCategory
	}
	if err := tx.Amount.Validate(); err != nil {
		return err
	}
	return nil
}
