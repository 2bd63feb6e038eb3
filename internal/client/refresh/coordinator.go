// Package refresh triggers server-side account refresh jobs and waits for
// their completion under a bounded timeout.
package refresh

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/abelikov/fingate/internal/client/api"
	"github.com/abelikov/fingate/internal/logging"
	"github.com/sethvargo/go-retry"
)

const requestRefreshQuery = `mutation ForceRefreshAccounts($input: ForceRefreshAccountsInput!) {
  forceRefreshAccounts(input: $input) {
    success
    errors {
      message
    }
  }
}`

const refreshStatusQuery = `query RefreshAccountsStatus {
  accounts {
    id
    hasSyncInProgress
  }
}`

const accountIDsQuery = `query GetAccountIds {
  accounts {
    id
  }
}`

// errNotComplete marks a poll iteration whose predicate did not hold yet.
var errNotComplete = errors.New("refresh not complete")

// WaitResult is the definite outcome of a bounded wait. TimedOut is the
// Completed=false case: a normal outcome, not an error; the job may still
// finish on the server later.
type WaitResult struct {
	Completed bool
	// Accounts maps account id to per-account completion from the latest
	// status report. Nil when no poll ever succeeded.
	Accounts map[string]bool
}

// Coordinator submits refresh jobs and polls their status. It consumes the
// session-attached executor and never touches session state itself.
type Coordinator struct {
	exec api.Executor
	log  logging.Logger
}

func NewCoordinator(exec api.Executor, log logging.Logger) *Coordinator {
	return &Coordinator{exec: exec, log: log}
}

// Request asks the server to refresh the given accounts from their
// institutions. An empty id set means all accounts. The returned flag says
// whether the server accepted the job, not whether it finished.
func (c *Coordinator) Request(ctx context.Context, accountIDs []string) (bool, error) {
	if len(accountIDs) == 0 {
		all, err := c.allAccountIDs(ctx)
		if err != nil {
			return false, err
		}
		accountIDs = all
	}
	if len(accountIDs) == 0 {
		return false, nil
	}

	op := api.Operation{
		Name:  "ForceRefreshAccounts",
		Query: requestRefreshQuery,
		Variables: map[string]any{
			"input": map[string]any{"accountIds": accountIDs},
		},
	}

	data, err := c.exec.Do(ctx, op)
	if err != nil {
		return false, err
	}

	var out struct {
		ForceRefreshAccounts struct {
			Success bool `json:"success"`
		} `json:"forceRefreshAccounts"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return false, err
	}
	return out.ForceRefreshAccounts.Success, nil
}

// Wait polls the refresh status at a fixed interval until every requested
// account reports complete (all reported accounts, when accountIDs is
// empty) or the wall-clock timeout elapses.
//
// Poll iterations that fail at the transport or server level are tolerated:
// they count against the same overall timeout but do not abort the wait.
// Auth failures do abort, since no further poll can succeed. The wait is
// cancellable between polls through ctx.
func (c *Coordinator) Wait(ctx context.Context, accountIDs []string, timeout, interval time.Duration) (*WaitResult, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var last *WaitResult

	err := retry.Do(ctx, retry.NewConstant(interval), func(ctx context.Context) error {
		res, err := c.poll(ctx, accountIDs)
		if err != nil {
			if errors.Is(err, api.ErrUnavailable) || errors.Is(err, api.ErrServer) || errors.Is(err, api.ErrRateLimited) {
				c.log.Warn(ctx, "refresh status poll failed, will retry", "error", err)
				return retry.RetryableError(err)
			}
			return err
		}

		last = res
		if !res.Completed {
			return retry.RetryableError(errNotComplete)
		}
		return nil
	})

	if err == nil {
		return last, nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		out := &WaitResult{Completed: false}
		if last != nil {
			out.Accounts = last.Accounts
		}
		return out, nil
	}
	return nil, err
}

// poll runs one status query and evaluates the completion predicate.
func (c *Coordinator) poll(ctx context.Context, accountIDs []string) (*WaitResult, error) {
	op := api.Operation{Name: "RefreshAccountsStatus", Query: refreshStatusQuery}

	data, err := c.exec.Do(ctx, op)
	if err != nil {
		return nil, err
	}

	var out struct {
		Accounts []struct {
			ID                string `json:"id"`
			HasSyncInProgress bool   `json:"hasSyncInProgress"`
		} `json:"accounts"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}

	res := &WaitResult{Accounts: make(map[string]bool, len(out.Accounts))}
	for _, a := range out.Accounts {
		res.Accounts[a.ID] = !a.HasSyncInProgress
	}

	if len(accountIDs) == 0 {
		res.Completed = true
		for _, done := range res.Accounts {
			if !done {
				res.Completed = false
				break
			}
		}
		return res, nil
	}

	res.Completed = true
	for _, id := range accountIDs {
		// an account missing from the report is not complete
		if done, ok := res.Accounts[id]; !ok || !done {
			res.Completed = false
			break
		}
	}
	return res, nil
}

func (c *Coordinator) allAccountIDs(ctx context.Context) ([]string, error) {
	data, err := c.exec.Do(ctx, api.Operation{Name: "GetAccountIds", Query: accountIDsQuery})
	if err != nil {
		return nil, err
	}

	var out struct {
		Accounts []struct {
			ID string `json:"id"`
		} `json:"accounts"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(out.Accounts))
	for _, a := range out.Accounts {
		if a.ID != "" {
			ids = append(ids, a.ID)
		}
	}
	return ids, nil
}
