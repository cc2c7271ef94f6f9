package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionKind discriminates the two movements an account supports.
type TransactionKind string

const (
	KindDeposit    TransactionKind = "deposit"
	KindWithdrawal TransactionKind = "withdrawal"
)

// Transaction is an immutable log entry of a deposit or withdrawal.
// Records are appended when an operation succeeds and never mutated or removed.
type Transaction struct {
	ID     uuid.UUID
	Kind   TransactionKind
	Amount decimal.Decimal
	At     time.Time
}

func newTransaction(kind TransactionKind, amount decimal.Decimal, at time.Time) Transaction {
	return Transaction{
		ID:     uuid.New(),
		Kind:   kind,
		Amount: amount,
		At:     at,
	}
}
