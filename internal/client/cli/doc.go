// Package cli provides the interactive fingate command-line client.
//
// It wires configuration, the encrypted session store, the API client, and
// an interactive REPL over the authenticated session. Typical flow: restore
// a saved session (or prompt for credentials and, when challenged, an MFA
// code), then execute user commands.
//
// Key features:
//   - login / mfa / logout / status (session lifecycle)
//   - accounts, holdings, transactions, budgets, cashflow (reads)
//   - tags, tagadd, tagdel, settags (tag management)
//   - refresh (request a bank sync and wait for it to finish)
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
