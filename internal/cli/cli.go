// Package cli is the presentation adapter: it drives the interactive menu,
// parses raw operator input into typed values, and maps domain failures to
// display messages. The core services never touch the terminal.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	accountservice "minibank/internal/account/service"
	identityservice "minibank/internal/identity/service"
	"minibank/internal/statement"
	dErrors "minibank/pkg/domain-errors"
)

const dateLayout = "02/01/2006"

// Session runs the interactive banking menu against the core services.
type Session struct {
	registry *identityservice.RegistryService
	ledger   *accountservice.LedgerService
	in       *bufio.Scanner
	out      io.Writer
}

func NewSession(registry *identityservice.RegistryService, ledger *accountservice.LedgerService, in io.Reader, out io.Writer) *Session {
	return &Session{
		registry: registry,
		ledger:   ledger,
		in:       bufio.NewScanner(in),
		out:      out,
	}
}

// Run loops over the menu until the operator quits, input ends, or ctx is
// cancelled. Every failure returns control to the menu with state unchanged.
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.printMenu()
		choice, ok := s.readLine()
		if !ok {
			return nil
		}
		switch strings.TrimSpace(choice) {
		case "1":
			s.registerIdentity(ctx)
		case "2":
			s.openAccount(ctx)
		case "3":
			s.deposit(ctx)
		case "4":
			s.withdraw(ctx)
		case "5":
			s.showStatement(ctx)
		case "6":
			s.listAccounts(ctx)
		case "7":
			fmt.Fprintln(s.out, "Goodbye.")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid option. Please choose a listed option.")
		}
	}
}

func (s *Session) printMenu() {
	fmt.Fprint(s.out, "\n--- minibank ---\n"+
		"1. Register identity\n"+
		"2. Open account\n"+
		"3. Deposit\n"+
		"4. Withdraw\n"+
		"5. Statement\n"+
		"6. List accounts\n"+
		"7. Quit\n"+
		"Choose an option: ")
}

func (s *Session) registerIdentity(ctx context.Context) {
	name, ok := s.prompt("Full name: ")
	if !ok {
		return
	}
	rawDate, ok := s.prompt("Birth date (dd/mm/yyyy): ")
	if !ok {
		return
	}
	birthDate, err := time.Parse(dateLayout, strings.TrimSpace(rawDate))
	if err != nil {
		fmt.Fprintln(s.out, "Invalid date. Use the dd/mm/yyyy format.")
		return
	}
	nationalID, ok := s.prompt("National identifier (digits only): ")
	if !ok {
		return
	}
	address, ok := s.prompt("Address: ")
	if !ok {
		return
	}

	if _, err := s.registry.Register(ctx, name, birthDate, strings.TrimSpace(nationalID), address); err != nil {
		s.reportFailure(err)
		return
	}
	fmt.Fprintln(s.out, "Identity registered successfully.")
}

func (s *Session) openAccount(ctx context.Context) {
	nationalID, ok := s.prompt("National identifier of the owner: ")
	if !ok {
		return
	}
	account, err := s.ledger.OpenAccount(ctx, strings.TrimSpace(nationalID))
	if err != nil {
		s.reportFailure(err)
		return
	}
	fmt.Fprintf(s.out, "Account opened successfully. Branch: %s, Account number: %d\n", account.Branch, account.Number)
}

func (s *Session) deposit(ctx context.Context) {
	number, ok := s.promptAccountNumber()
	if !ok {
		return
	}
	amount, ok := s.promptAmount("Amount to deposit: ")
	if !ok {
		return
	}
	account, err := s.ledger.Deposit(ctx, number, amount)
	if err != nil {
		s.reportFailure(err)
		return
	}
	fmt.Fprintf(s.out, "Deposit of R$ %s accepted. Balance: R$ %s\n", amount.StringFixed(2), account.Balance.StringFixed(2))
}

func (s *Session) withdraw(ctx context.Context) {
	number, ok := s.promptAccountNumber()
	if !ok {
		return
	}
	amount, ok := s.promptAmount("Amount to withdraw: ")
	if !ok {
		return
	}
	account, err := s.ledger.Withdraw(ctx, number, amount)
	if err != nil {
		s.reportFailure(err)
		return
	}
	fmt.Fprintf(s.out, "Withdrawal of R$ %s accepted. Balance: R$ %s\n", amount.StringFixed(2), account.Balance.StringFixed(2))
}

func (s *Session) showStatement(ctx context.Context) {
	number, ok := s.promptAccountNumber()
	if !ok {
		return
	}
	view, err := s.ledger.Statement(ctx, number)
	if err != nil {
		s.reportFailure(err)
		return
	}
	fmt.Fprint(s.out, statement.Render(view))
}

func (s *Session) listAccounts(ctx context.Context) {
	summaries, err := s.ledger.ListAccounts(ctx)
	if err != nil {
		s.reportFailure(err)
		return
	}
	fmt.Fprint(s.out, statement.RenderAccounts(summaries))
}

// promptAmount parses a decimal amount, reporting a parse failure before the
// core is ever invoked.
func (s *Session) promptAmount(label string) (decimal.Decimal, bool) {
	raw, ok := s.prompt(label)
	if !ok {
		return decimal.Zero, false
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		fmt.Fprintln(s.out, "Invalid input. Please enter a numeric value.")
		return decimal.Zero, false
	}
	return amount, true
}

func (s *Session) promptAccountNumber() (int, bool) {
	raw, ok := s.prompt("Account number: ")
	if !ok {
		return 0, false
	}
	number, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		fmt.Fprintln(s.out, "Invalid input. Please enter a numeric account number.")
		return 0, false
	}
	return number, true
}

func (s *Session) prompt(label string) (string, bool) {
	fmt.Fprint(s.out, label)
	return s.readLine()
}

func (s *Session) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

// reportFailure renders a domain failure as a descriptive operator message.
func (s *Session) reportFailure(err error) {
	var domainErr *dErrors.Error
	if errors.As(err, &domainErr) {
		fmt.Fprintf(s.out, "Rejected: %s.\n", domainErr.Error())
		return
	}
	fmt.Fprintf(s.out, "Unexpected failure: %v\n", err)
}
