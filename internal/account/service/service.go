package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	accountmetrics "minibank/internal/account/metrics"
	"minibank/internal/account/models"
	dErrors "minibank/pkg/domain-errors"
)

// LedgerService orchestrates account lifecycle and transactions. It owns the
// account set; identities are resolved through the registry and referenced,
// never copied or modified.
type LedgerService struct {
	accounts AccountStore
	registry IdentityResolver
	branch   string
	limits   models.Limits
	logger   *slog.Logger
	metrics  *accountmetrics.Metrics
}

func NewLedgerService(accounts AccountStore, registry IdentityResolver, branch string, limits models.Limits, opts ...Option) *LedgerService {
	cfg := &serviceConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return &LedgerService{
		accounts: accounts,
		registry: registry,
		branch:   branch,
		limits:   limits,
		logger:   cfg.logger,
		metrics:  cfg.metrics,
	}
}

// Limits returns the withdrawal limits the ledger enforces.
func (s *LedgerService) Limits() models.Limits {
	return s.limits
}

// OpenAccount opens a checking account for the identity registered under
// nationalID. The store assigns the next sequential account number.
func (s *LedgerService) OpenAccount(ctx context.Context, nationalID string) (*models.Account, error) {
	owner, err := s.registry.FindByNationalID(ctx, nationalID)
	if err != nil {
		return nil, err
	}

	account, err := models.NewAccount(s.branch, owner, time.Now())
	if err != nil {
		return nil, err
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to open account")
	}

	s.incrementAccountsOpened()
	s.log(ctx, "account opened",
		"branch", account.Branch,
		"account_number", account.Number,
		"identity_id", owner.ID.String(),
	)
	return account, nil
}

// ListAccounts returns every account in creation order, each paired with its
// owner's display name.
func (s *LedgerService) ListAccounts(ctx context.Context) ([]models.Summary, error) {
	accounts, err := s.accounts.List(ctx)
	if err != nil {
		return nil, wrapAccountErr(err, "failed to list accounts")
	}
	summaries := make([]models.Summary, 0, len(accounts))
	for _, a := range accounts {
		summaries = append(summaries, a.Summarize())
	}
	return summaries, nil
}

// Deposit credits amount to the account identified by number.
func (s *LedgerService) Deposit(ctx context.Context, number int, amount decimal.Decimal) (*models.Account, error) {
	account, err := s.accounts.FindByNumber(ctx, number)
	if err != nil {
		return nil, wrapAccountErr(err, "failed to look up account")
	}

	tx, err := account.Deposit(amount, time.Now())
	if err != nil {
		s.incrementRejected(err)
		return nil, err
	}
	if err := s.accounts.Update(ctx, account); err != nil {
		return nil, wrapAccountErr(err, "failed to record deposit")
	}

	s.incrementDeposits()
	s.log(ctx, "deposit accepted",
		"account_number", account.Number,
		"amount", tx.Amount.StringFixed(2),
		"balance", account.Balance.StringFixed(2),
	)
	return account, nil
}

// Withdraw debits amount from the account identified by number, subject to the
// ledger's withdrawal limits.
func (s *LedgerService) Withdraw(ctx context.Context, number int, amount decimal.Decimal) (*models.Account, error) {
	account, err := s.accounts.FindByNumber(ctx, number)
	if err != nil {
		return nil, wrapAccountErr(err, "failed to look up account")
	}

	tx, err := account.Withdraw(amount, s.limits, time.Now())
	if err != nil {
		s.incrementRejected(err)
		return nil, err
	}
	if err := s.accounts.Update(ctx, account); err != nil {
		return nil, wrapAccountErr(err, "failed to record withdrawal")
	}

	s.incrementWithdrawals()
	s.log(ctx, "withdrawal accepted",
		"account_number", account.Number,
		"amount", tx.Amount.StringFixed(2),
		"balance", account.Balance.StringFixed(2),
		"withdrawals_done", account.WithdrawalsDone,
	)
	return account, nil
}

// Statement returns a read-only snapshot of the account's balance and history.
func (s *LedgerService) Statement(ctx context.Context, number int) (models.StatementView, error) {
	account, err := s.accounts.FindByNumber(ctx, number)
	if err != nil {
		return models.StatementView{}, wrapAccountErr(err, "failed to look up account")
	}
	return account.Snapshot(), nil
}

func (s *LedgerService) log(ctx context.Context, msg string, args ...any) {
	if s.logger != nil {
		s.logger.InfoContext(ctx, msg, args...)
	}
}

func (s *LedgerService) incrementAccountsOpened() {
	if s.metrics != nil {
		s.metrics.IncrementAccountsOpened()
	}
}

func (s *LedgerService) incrementDeposits() {
	if s.metrics != nil {
		s.metrics.IncrementDeposits()
	}
}

func (s *LedgerService) incrementWithdrawals() {
	if s.metrics != nil {
		s.metrics.IncrementWithdrawals()
	}
}

func (s *LedgerService) incrementRejected(err error) {
	if s.metrics != nil {
		s.metrics.IncrementRejected(string(dErrors.CodeOf(err)))
	}
}
