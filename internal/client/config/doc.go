// Package config loads runtime configuration for the credkeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, optionally read from a .env file in the working
//     directory (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   path of the SQLite database file
//	-s string   storage backend: sqlite or memory
//	-l string   log level: debug, info, warn or error
//
// # Environment
//
//	CREDKEEPER_DATABASE_PATH
//	CREDKEEPER_STORAGE_BACKEND
//	CREDKEEPER_LOG_LEVEL
//
// # JSON schema
//
//	{
//	  "database_path": "credkeeper.db",
//	  "storage_backend": "sqlite",
//	  "log_level": "info"
//	}
package config
