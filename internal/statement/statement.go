// Package statement renders read-only, operator-facing views of account
// state. Rendering is pure: the same input always produces the same text.
package statement

import (
	"fmt"
	"strings"

	"minibank/internal/account/models"
)

const timeLayout = "02/01/2006 15:04:05"

var kindLabels = map[models.TransactionKind]string{
	models.KindDeposit:    "Deposit",
	models.KindWithdrawal: "Withdrawal",
}

// Render produces the statement for one account: every transaction in append
// order, amounts to two decimal places, then the current balance.
func Render(view models.StatementView) string {
	var b strings.Builder
	b.WriteString("=================== Account Statement ===================\n")
	fmt.Fprintf(&b, "Branch: %s  Account: %d\n", view.Branch, view.Number)
	b.WriteString("Transactions:\n")

	if len(view.History) == 0 {
		b.WriteString("   No transactions recorded.\n")
	}
	for _, tx := range view.History {
		fmt.Fprintf(&b, "   - %s: R$ %s on %s\n",
			kindLabels[tx.Kind],
			tx.Amount.StringFixed(2),
			tx.At.Format(timeLayout),
		)
	}

	fmt.Fprintf(&b, "\nCurrent balance: R$ %s\n", view.Balance.StringFixed(2))
	b.WriteString("=========================================================\n")
	return b.String()
}

// RenderAccounts produces the listing of all accounts in creation order.
func RenderAccounts(summaries []models.Summary) string {
	var b strings.Builder
	b.WriteString("==================== Registered Accounts ====================\n")
	if len(summaries) == 0 {
		b.WriteString("   No accounts opened.\n")
	}
	for _, s := range summaries {
		fmt.Fprintf(&b, "Branch: %s, Account number: %d, Owner: %s\n", s.Branch, s.Number, s.OwnerName)
	}
	b.WriteString("=============================================================\n")
	return b.String()
}
