// Package config handles loading and parsing the lobby configuration file.
//
// # Overview
//
// This package reads lobby's TOML configuration to discover the game hub's
// API endpoint and an optional startup filter link.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/lobby/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/lobby/config.toml
//   - API endpoint: 127.0.0.1:8640
//   - Link: none
//
// # TOML Format
//
// Example config.toml:
//
//	api_bind = "127.0.0.1:8640"
//	link = "?providers=netent&hot=true"
//
// Both fields are optional. Tilde expansion is performed on the config path.
//
// # Error Handling
//
// Load returns errors for path expansion failures, file read errors (except
// os.ErrNotExist, which triggers defaults), and TOML parsing errors. A
// missing config file is NOT an error - defaults are used instead, so lobby
// works out-of-the-box without configuration.
//
// The config package is read-only and stateless - it loads configuration
// once at startup and returns an immutable Config struct.
package config
