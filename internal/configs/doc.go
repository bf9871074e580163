// Package configs manages Titan's settings and user configuration.
//
// # Settings
//
// TitanSettings is computed once at startup and holds the well-known
// locations Titan uses:
//
//   - RegistryPath: the active database pointer, ~/.titan.lock by default
//   - ConfigPath: the TOML user config, <user config dir>/titan/config.toml
//   - DataPath: audit trail and other state, $XDG_DATA_HOME/titan
//
// The TITAN_REGISTRY environment variable overrides the registry location.
//
// # User Configuration
//
// The user config is optional. A missing file means defaults:
//
//	[store]
//	default_path = "/home/me/passwords.db"
//
//	[display]
//	show_password = false
//
//	[registry]
//	path = "/home/me/.titan.lock"
//
// Values from the config never override explicit command-line arguments.
package configs
