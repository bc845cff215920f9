// Package config loads vidly's configuration from a TOML file and VIDLY_*
// environment overrides.
//
// # Resolution Order
//
//  1. Built-in defaults (see Default)
//  2. config.toml at the given path, or ~/.config/vidly/config.toml
//  3. A .env file in the working directory, when LoadDotEnv is called first
//  4. VIDLY_* environment variables
//
// A missing config file is not an error.
//
// # TOML Format
//
//	[catalog]
//	source = "sqlite"          # embedded | file | sqlite | http
//	path = "~/movies.toml"     # required when source = "file"
//	database = "~/.local/share/vidly/vidly.db"
//	api_url = "127.0.0.1:3900"
//
//	[view]
//	page_size = 4
//
//	[log]
//	file = "~/.local/share/vidly/vidly.log"
//	level = "info"
//
// Paths accept a leading ~ and are made absolute. Validate rejects unknown
// sources, a file source without a path, and non-positive page sizes.
package config
