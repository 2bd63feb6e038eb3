package cli

import (
	"context"
	"fmt"

	"github.com/abelikov/fingate/internal/client/finance"
)

// Transactions lists recent transactions, optionally narrowed to a date
// range ("transactions 2026-01-01 2026-01-31").
func (a *App) Transactions(ctx context.Context, args []string) error {
	var filter finance.TransactionFilter
	switch len(args) {
	case 0:
	case 2:
		filter.StartDate, filter.EndDate = args[0], args[1]
	default:
		fmt.Println("Usage: transactions [start-date end-date]")
		return nil
	}

	txns, err := a.finance.Transactions(ctx, filter)
	if err != nil {
		a.log.Error(ctx, "listing transactions failed", "error", err)
		return err
	}

	for _, txn := range txns {
		pending := ""
		if txn.Pending {
			pending = " (pending)"
		}
		name := txn.Merchant
		if name == "" {
			name = txn.OriginalName
		}
		fmt.Printf("%s  %10.2f  %-24s  %-16s %s%s\n",
			txn.Date, txn.Amount, name, txn.Category, txn.Account, pending)
	}
	return nil
}
