package cli

import (
	"context"
	"fmt"
)

// Accounts lists all accounts with balances.
func (a *App) Accounts(ctx context.Context) error {
	accounts, err := a.finance.Accounts(ctx)
	if err != nil {
		a.log.Error(ctx, "listing accounts failed", "error", err)
		return err
	}

	for _, acc := range accounts {
		status := ""
		if !acc.IsActive {
			status = " (inactive)"
		}
		inst := acc.Institution
		if inst != "" {
			inst = " @ " + inst
		}
		fmt.Printf("%-36s  %-24s%s  %12.2f%s\n", acc.ID, acc.Name, inst, acc.Balance, status)
	}
	return nil
}

// Holdings shows the investment holdings of one account.
func (a *App) Holdings(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Println("Usage: holdings <account-id>")
		return nil
	}

	data, err := a.finance.AccountHoldings(ctx, args[0])
	if err != nil {
		a.log.Error(ctx, "fetching holdings failed", "error", err)
		return err
	}
	printJSON(data)
	return nil
}
