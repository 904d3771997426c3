// Package commands defines the primers CLI and wires dependencies for subcommands.
//
// Commands
//
//   - guess        Play the number-guessing game
//   - verify       Check a fair-play commitment printed by guess --commit
//   - stats        Summarise (or reset) the history of finished games
//   - demo         List the data-type demos, or run one by name
//   - primitives   Shortcut for demo primitives (likewise compound, variables)
//
// # Implementation
//
// The root command loads config.yaml from the home directory and builds the
// dependency graph (logger, result store, stats service) before any
// subcommand runs. Input and output go through cobra's In/Out streams so the
// commands can be driven from tests.
package commands
