// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/danielhkuo/kultura-quest/models"
)

var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("unique constraint violation")
)

// FindUserByUsername looks up a user by username, case-insensitively.
// Returns ErrNotFound when no row matches.
func FindUserByUsername(db *sql.DB, username string) (models.User, error) {
	var u models.User
	err := db.QueryRow(`
		SELECT id, name, username, email, password
		FROM users
		WHERE lower(username) = lower(?)
	`, username).Scan(&u.ID, &u.Name, &u.Username, &u.Email, &u.Password)

	if err == sql.ErrNoRows {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("failed to query user: %w", err)
	}

	return u, nil
}

// UserConflictExists reports whether any user already holds the given
// username or email, compared case-insensitively. Used to reject
// duplicate registrations before the insert is attempted.
func UserConflictExists(db *sql.DB, username, email string) (bool, error) {
	var exists bool
	err := db.QueryRow(`
		SELECT EXISTS(
			SELECT 1 FROM users
			WHERE lower(username) = lower(?) OR lower(email) = lower(?)
		)
	`, username, email).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("failed to check user conflict: %w", err)
	}

	return exists, nil
}

// InsertUser stores a new user, trimming surrounding whitespace from
// every field. The NOCASE unique columns make the database the final
// arbiter: a concurrent duplicate surfaces as ErrConflict.
func InsertUser(db *sql.DB, name, username, email, password string) (models.User, error) {
	res, err := db.Exec(`
		INSERT INTO users (name, username, email, password)
		VALUES (?, ?, ?, ?)
	`, strings.TrimSpace(name), strings.TrimSpace(username), strings.TrimSpace(email), strings.TrimSpace(password))

	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, ErrConflict
		}
		return models.User{}, fmt.Errorf("failed to insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.User{}, fmt.Errorf("failed to read inserted user id: %w", err)
	}

	return models.User{
		ID:       id,
		Name:     strings.TrimSpace(name),
		Username: strings.TrimSpace(username),
		Email:    strings.TrimSpace(email),
		Password: strings.TrimSpace(password),
	}, nil
}

// ListCompletions returns the booth_id -> true map for a user. Rows
// with completed=0 are kept in storage but omitted here; absence of a
// key means "not completed".
func ListCompletions(db *sql.DB, userID int64) (map[string]bool, error) {
	rows, err := db.Query(`
		SELECT booth_id, completed FROM completions WHERE user_id = ?
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query completions: %w", err)
	}
	defer rows.Close()

	completions := make(map[string]bool)
	for rows.Next() {
		var boothID string
		var completed bool
		if err := rows.Scan(&boothID, &completed); err != nil {
			return nil, fmt.Errorf("failed to scan completion: %w", err)
		}
		if completed {
			completions[boothID] = true
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read completions: %w", err)
	}

	return completions, nil
}

// UpsertCompletion inserts or updates the single row for a
// (user, booth) pair. The UNIQUE(user_id, booth_id) constraint plus
// ON CONFLICT makes concurrent updates to the same pair converge on
// the last write.
func UpsertCompletion(db *sql.DB, userID int64, boothID string, completed bool) error {
	_, err := db.Exec(`
		INSERT INTO completions (user_id, booth_id, completed)
		VALUES (?, ?, ?)
		ON CONFLICT(user_id, booth_id)
		DO UPDATE SET completed = excluded.completed
	`, userID, boothID, completed)

	if err != nil {
		return fmt.Errorf("failed to upsert completion: %w", err)
	}

	return nil
}

// isUniqueViolation reports whether err is a SQLite constraint error.
func isUniqueViolation(err error) bool {
	var serr *sqlite.Error
	if errors.As(err, &serr) {
		return serr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE ||
			serr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT
	}
	return false
}
