// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8000)
  - DBPath: SQLite database file (default: kultura.db)
  - StaticDir: Root of the static file tree (default: .)

# CLI Flags

	-p  Server port
	-d  SQLite database path
	-s  Static file directory

# Environment Variables

Flags fall back to environment variables:

	PORT            → -p
	KULTURA_DB_PATH → -d
	STATIC_DIR      → -s

CLI flags take precedence over environment variables; every setting
has a default, so the server starts with no configuration at all.
A .env file in the working directory is loaded by main before parsing.
*/
package cliparse
