package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minibank/internal/account/models"
	accountservice "minibank/internal/account/service"
	accountstore "minibank/internal/account/store"
	identityservice "minibank/internal/identity/service"
	identitystore "minibank/internal/identity/store"
)

func newTestSession(script []string) (*Session, *strings.Builder) {
	registry := identityservice.NewRegistryService(identitystore.NewInMemory())
	ledger := accountservice.NewLedgerService(
		accountstore.NewInMemory(),
		registry,
		"0001",
		models.Limits{PerWithdrawal: decimal.NewFromInt(500), MaxWithdrawals: 3},
	)
	out := &strings.Builder{}
	return NewSession(registry, ledger, strings.NewReader(strings.Join(script, "\n")+"\n"), out), out
}

func TestScriptedSession(t *testing.T) {
	session, out := newTestSession([]string{
		"1", "Ana Souza", "14/05/1990", "12345678900", "Rua A, 10 - Centro",
		"2", "12345678900",
		"3", "1", "1000",
		"4", "1", "600",
		"4", "1", "400",
		"5", "1",
		"6",
		"7",
	})

	require.NoError(t, session.Run(context.Background()))
	text := out.String()

	assert.Contains(t, text, "Identity registered successfully.")
	assert.Contains(t, text, "Account opened successfully. Branch: 0001, Account number: 1")
	assert.Contains(t, text, "Deposit of R$ 1000.00 accepted. Balance: R$ 1000.00")
	assert.Contains(t, text, "Rejected: amount exceeds the per-withdrawal limit.")
	assert.Contains(t, text, "Withdrawal of R$ 400.00 accepted. Balance: R$ 600.00")
	assert.Contains(t, text, "Current balance: R$ 600.00")
	assert.Contains(t, text, "Branch: 0001, Account number: 1, Owner: Ana Souza")
	assert.Contains(t, text, "Goodbye.")
}

func TestParseFailuresNeverReachTheCore(t *testing.T) {
	session, out := newTestSession([]string{
		"3", "one", // account number is not numeric
		"3", "1", "ten", // amount is not numeric
		"1", "Ana Souza", "1990-05-14", // wrong date format
		"7",
	})

	require.NoError(t, session.Run(context.Background()))
	text := out.String()

	assert.Contains(t, text, "Invalid input. Please enter a numeric account number.")
	assert.Contains(t, text, "Invalid input. Please enter a numeric value.")
	assert.Contains(t, text, "Invalid date. Use the dd/mm/yyyy format.")
	// No account exists, so the only "not found" would come from the core;
	// none of the bad inputs above may trigger it.
	assert.NotContains(t, text, "account not found")
}

func TestUnknownOptionAndDomainFailures(t *testing.T) {
	session, out := newTestSession([]string{
		"9",
		"2", "00000000000", // identity was never registered
		"5", "42", // account was never opened
		"7",
	})

	require.NoError(t, session.Run(context.Background()))
	text := out.String()

	assert.Contains(t, text, "Invalid option.")
	assert.Contains(t, text, "Rejected: identity not found.")
	assert.Contains(t, text, "Rejected: account not found.")
}

func TestSessionEndsOnEOF(t *testing.T) {
	session, _ := newTestSession([]string{"6"})
	require.NoError(t, session.Run(context.Background()))
}
