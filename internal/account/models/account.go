package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	identitymodels "minibank/internal/identity/models"
	dErrors "minibank/pkg/domain-errors"
)

// Limits bound withdrawals: a per-operation cap and a per-session count cap.
type Limits struct {
	PerWithdrawal  decimal.Decimal
	MaxWithdrawals int
}

// Account is a numbered checking account linked to exactly one identity.
// Balance, history, and the withdrawal counter are owned by the account and
// mutated only through Deposit/Withdraw. The account number is assigned by
// the store at creation and never reused.
type Account struct {
	ID        uuid.UUID
	Branch    string
	Number    int
	Owner     *identitymodels.Identity
	Balance   decimal.Decimal
	History   []Transaction
	CreatedAt time.Time

	// WithdrawalsDone counts successful withdrawals this session.
	// It resets only with process restart.
	WithdrawalsDone int
}

// NewAccount builds an account for a previously registered owner. The number
// starts at zero; the ledger store assigns the sequential value on creation.
func NewAccount(branch string, owner *identitymodels.Identity, now time.Time) (*Account, error) {
	if owner == nil {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "account owner is required")
	}
	if branch == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "branch code is required")
	}
	return &Account{
		ID:        uuid.New(),
		Branch:    branch,
		Owner:     owner,
		Balance:   decimal.Zero,
		CreatedAt: now,
	}, nil
}

// Deposit increases the balance and appends a deposit record stamped at now.
// Non-positive amounts are rejected with no mutation. There is no upper bound.
func (a *Account) Deposit(amount decimal.Decimal, now time.Time) (*Transaction, error) {
	if amount.Sign() <= 0 {
		return nil, dErrors.New(dErrors.CodeInvalidAmount, "deposit amount must be positive")
	}
	a.Balance = a.Balance.Add(amount)
	tx := newTransaction(KindDeposit, amount, now)
	a.History = append(a.History, tx)
	return &tx, nil
}

// Withdraw decreases the balance and appends a withdrawal record stamped at
// now. Guards run in a fixed order and the first violation wins; a rejected
// withdrawal leaves balance, history, and the counter untouched:
//
//  1. session withdrawal cap reached
//  2. amount exceeds the per-withdrawal limit
//  3. amount exceeds the balance
//  4. amount is not positive
//
// The counter increments on every successful withdrawal, including one that
// drains the balance to zero.
func (a *Account) Withdraw(amount decimal.Decimal, limits Limits, now time.Time) (*Transaction, error) {
	if a.WithdrawalsDone >= limits.MaxWithdrawals {
		return nil, dErrors.New(dErrors.CodeWithdrawalCapReached, "session withdrawal cap reached")
	}
	if amount.GreaterThan(limits.PerWithdrawal) {
		return nil, dErrors.New(dErrors.CodeWithdrawalLimit, "amount exceeds the per-withdrawal limit")
	}
	if amount.GreaterThan(a.Balance) {
		return nil, dErrors.New(dErrors.CodeInsufficientFunds, "insufficient funds")
	}
	if amount.Sign() <= 0 {
		return nil, dErrors.New(dErrors.CodeInvalidAmount, "withdrawal amount must be positive")
	}
	a.Balance = a.Balance.Sub(amount)
	tx := newTransaction(KindWithdrawal, amount, now)
	a.History = append(a.History, tx)
	a.WithdrawalsDone++
	return &tx, nil
}

// StatementView is a read-only snapshot of one account's balance and history.
type StatementView struct {
	Branch  string
	Number  int
	Balance decimal.Decimal
	History []Transaction
}

// Snapshot copies the account state relevant to a statement. The history slice
// is copied so callers cannot observe later appends.
func (a *Account) Snapshot() StatementView {
	history := make([]Transaction, len(a.History))
	copy(history, a.History)
	return StatementView{
		Branch:  a.Branch,
		Number:  a.Number,
		Balance: a.Balance,
		History: history,
	}
}

// Summary pairs an account with its owner's display name for listings.
type Summary struct {
	Branch    string
	Number    int
	OwnerName string
}

// Summarize produces the listing row for this account.
func (a *Account) Summarize() Summary {
	return Summary{
		Branch:    a.Branch,
		Number:    a.Number,
		OwnerName: a.Owner.FullName,
	}
}
