package config

import (
	"os"
	"strconv"

	"github.com/shopspring/decimal"
)

// Config captures process-level configuration for the simulator.
type Config struct {
	// BranchCode is the fixed branch identifier shared by every account.
	BranchCode string
	// WithdrawalLimit is the maximum amount a single withdrawal may move.
	WithdrawalLimit decimal.Decimal
	// MaxWithdrawals is the number of withdrawals allowed per session.
	MaxWithdrawals int
	// DiagAddr enables the diagnostics HTTP listener when non-empty.
	DiagAddr string
}

const (
	defaultBranchCode     = "0001"
	defaultMaxWithdrawals = 3
)

var defaultWithdrawalLimit = decimal.NewFromInt(500)

// FromEnv builds a Config from environment variables so main stays lean.
// Unset or malformed values fall back to the defaults.
func FromEnv() Config {
	cfg := Config{
		BranchCode:      defaultBranchCode,
		WithdrawalLimit: defaultWithdrawalLimit,
		MaxWithdrawals:  defaultMaxWithdrawals,
		DiagAddr:        os.Getenv("MINIBANK_DIAG_ADDR"),
	}

	if branch := os.Getenv("MINIBANK_BRANCH_CODE"); branch != "" {
		cfg.BranchCode = branch
	}
	if raw := os.Getenv("MINIBANK_WITHDRAWAL_LIMIT"); raw != "" {
		if limit, err := decimal.NewFromString(raw); err == nil && limit.IsPositive() {
			cfg.WithdrawalLimit = limit
		}
	}
	if raw := os.Getenv("MINIBANK_MAX_WITHDRAWALS"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			cfg.MaxWithdrawals = n
		}
	}
	return cfg
}
