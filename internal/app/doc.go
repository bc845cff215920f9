// Package app wires configuration, logging, the catalog source, and the UI
// together. It is the composition root for every vidly command.
//
// # Commands
//
//   - Run: the interactive browser. Starts the loader, then hands the store
//     to the Bubble Tea program and blocks until the user quits.
//   - List: loads the catalog once and prints a single page as a table.
//   - Seed: copies the sample catalog (or a TOML catalog file) into SQLite.
//
// # Start-up
//
//	setup()        .env, config.toml, VIDLY_* overrides, zap logger
//	openSource()   embedded | file | sqlite | http
//	StartLoader()  background fetch into state.Store
//	ui.Run()       polls the store until the catalog arrives
//
// # Loader
//
// The catalog is fetched exactly once per session. A failed fetch is
// recorded in the store and retried after 2s, 4s, 8s, and so on, capped at
// 30s, until it succeeds or the context is cancelled. Movies that fail
// validation are dropped and logged at warn level.
package app
