// Package commands defines the genwallet CLI: pre-genesis wallet key
// management and genesis transaction co-signing. Each subcommand lives in
// its own file; root.go wires the shared dependencies.
package commands
