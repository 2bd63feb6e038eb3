package cli

import (
	"context"
	"fmt"
)

// Refresh asks the provider to re-sync accounts and waits for the sync to
// finish: "refresh [account-id ...]". With no IDs all accounts are
// refreshed.
func (a *App) Refresh(ctx context.Context, args []string) error {
	requested, err := a.refresh.Request(ctx, args)
	if err != nil {
		a.log.Error(ctx, "refresh request failed", "error", err)
		return err
	}
	if !requested {
		fmt.Println("No accounts to refresh.")
		return nil
	}

	fmt.Println("Refresh requested, waiting...")
	res, err := a.refresh.Wait(ctx, args, a.config.RefreshTimeout, a.config.RefreshPollInterval)
	if err != nil {
		a.log.Error(ctx, "refresh wait failed", "error", err)
		return err
	}

	if res.Completed {
		fmt.Println("Refresh complete.")
		return nil
	}

	fmt.Println("Refresh still running after the wait timeout:")
	for id, done := range res.Accounts {
		state := "syncing"
		if done {
			state = "done"
		}
		fmt.Printf("  %s: %s\n", id, state)
	}
	return nil
}
