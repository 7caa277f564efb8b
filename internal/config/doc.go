// Package config holds the front-end defaults for subnet-ctl.
//
// Defaults cover presentation only (results-table page size, binary
// address rendering); they never influence how subnets are computed.
// They are loaded once from an optional per-user TOML file and passed
// explicitly into the CLI and interactive front ends rather than read
// from ambient globals.
//
//	# ~/.config/subnet-ctl/config.toml
//	table_rows = 15
//	binary = false
//
// A missing file yields the compiled-in defaults; a malformed file is
// a configuration error.
package config
