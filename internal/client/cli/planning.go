package cli

import (
	"context"
	"fmt"
)

// Budgets shows budget data, optionally for a month range
// ("budgets 2026-01-01 2026-03-31").
func (a *App) Budgets(ctx context.Context, args []string) error {
	start, end, ok := dateRange(args, "budgets")
	if !ok {
		return nil
	}

	data, err := a.finance.Budgets(ctx, start, end)
	if err != nil {
		a.log.Error(ctx, "fetching budgets failed", "error", err)
		return err
	}
	printJSON(data)
	return nil
}

// Cashflow shows income/expense aggregates, optionally for a date range.
func (a *App) Cashflow(ctx context.Context, args []string) error {
	start, end, ok := dateRange(args, "cashflow")
	if !ok {
		return nil
	}

	data, err := a.finance.Cashflow(ctx, start, end)
	if err != nil {
		a.log.Error(ctx, "fetching cashflow failed", "error", err)
		return err
	}
	printJSON(data)
	return nil
}

func dateRange(args []string, cmd string) (start, end string, ok bool) {
	switch len(args) {
	case 0:
		return "", "", true
	case 2:
		return args[0], args[1], true
	default:
		fmt.Printf("Usage: %s [start-date end-date]\n", cmd)
		return "", "", false
	}
}
