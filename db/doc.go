// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database access: opening the SQLite file, schema
creation, and the row-level operations the handlers build on.

# Opening

Open creates the file (and its parent directory) if needed and
verifies the connection:

	conn, err := db.Open(cfg.DBPath)

The DSN enables WAL mode, a busy timeout, and foreign keys.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

The schema includes:

  - users: Registered visitors; username and email are UNIQUE with
    COLLATE NOCASE, so uniqueness is case-insensitive
  - completions: One row per (user, booth) pair with a completed flag

# Relationships

	users 1──* completions

Foreign keys use ON DELETE CASCADE. Booths are not a table; they live
in the booths package and completion rows reference them by id only.

# Operations

  - FindUserByUsername: case-insensitive lookup, ErrNotFound on miss
  - UserConflictExists: duplicate username/email pre-check
  - InsertUser: trimmed insert, ErrConflict on a unique violation
  - ListCompletions: booth_id -> true map (false rows omitted)
  - UpsertCompletion: INSERT ... ON CONFLICT DO UPDATE on the pair

Every operation takes the *sql.DB and runs as a single statement, so
the store's own constraints serialize concurrent writers.
*/
package db
