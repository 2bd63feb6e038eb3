package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	MFA(ctx context.Context) error
	Logout(ctx context.Context) error
	Status(ctx context.Context) error
	Accounts(ctx context.Context) error
	Holdings(ctx context.Context, args []string) error
	Transactions(ctx context.Context, args []string) error
	Budgets(ctx context.Context, args []string) error
	Cashflow(ctx context.Context, args []string) error
	Tags(ctx context.Context) error
	TagAdd(ctx context.Context, args []string) error
	TagDel(ctx context.Context, args []string) error
	SetTags(ctx context.Context, args []string) error
	Refresh(ctx context.Context, args []string) error
}

// runREPL starts a simple read-eval-print loop for the fingate CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           show available commands
//	  - login          authenticate (saved session, env, or prompt)
//	  - mfa            answer a pending multi-factor challenge
//	  - status         show session state
//	  - exit | quit    leave the program
//
//	Logged in:
//	  - help           show available commands
//	  - accounts       list accounts
//	  - holdings       show holdings of one account
//	  - transactions   list transactions
//	  - budgets        show budget data
//	  - cashflow       show cashflow aggregates
//	  - tags           list transaction tags
//	  - tagadd         create a tag
//	  - tagdel         delete a tag
//	  - settags        replace the tags on a transaction
//	  - refresh        re-sync accounts with the provider
//	  - status         show session state
//	  - logout         log out
//	  - exit | quit    leave the program
//
// Any errors returned by command handlers are ignored here; handlers log
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("fin> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: accounts, holdings, transactions, budgets, cashflow, tags, tagadd, tagdel, settags, refresh, status, logout, exit")
			} else {
				printlnFn("Available commands: login, mfa, status, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "mfa":
			_ = a.MFA(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "status":
			_ = a.Status(ctx)

		case "accounts":
			_ = a.Accounts(ctx)

		case "holdings":
			_ = a.Holdings(ctx, args)

		case "transactions":
			_ = a.Transactions(ctx, args)

		case "budgets":
			_ = a.Budgets(ctx, args)

		case "cashflow":
			_ = a.Cashflow(ctx, args)

		case "tags":
			_ = a.Tags(ctx)

		case "tagadd":
			_ = a.TagAdd(ctx, args)

		case "tagdel":
			_ = a.TagDel(ctx, args)

		case "settags":
			_ = a.SetTags(ctx, args)

		case "refresh":
			_ = a.Refresh(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
