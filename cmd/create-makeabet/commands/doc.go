// Package commands defines the create-makeabet CLI.
//
// Commands
//
//   - create-makeabet [name]  Scaffold a new MakeABet monorepo
//   - sync-env                Write .env.local files from the local deployment
//   - faucet <address>        Fund an address from the local API faucet
//
// # Implementation
//
// The root command collects flags and the optional project name into
// ui.Answers. Missing answers are asked for with an interactive form when
// stdin is a terminal and filled with defaults otherwise (or with --yes).
// Cancelling the form is not an error: the command prints a notice and exits
// with status 0.
package commands
