package db

import (
	"database/sql"
	"errors"
	"testing"

	_ "modernc.org/sqlite"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	// Each pooled connection would get its own :memory: database
	conn.SetMaxOpenConns(1)

	if err := CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

func TestInsertAndFindUser(t *testing.T) {
	conn := newTestDB(t)

	inserted, err := InsertUser(conn, "  Ana  ", " ana ", " a@x.com ", " p1 ")
	if err != nil {
		t.Fatalf("InsertUser failed: %v", err)
	}
	if inserted.ID == 0 {
		t.Error("Expected non-zero user ID")
	}
	if inserted.Name != "Ana" || inserted.Username != "ana" || inserted.Email != "a@x.com" || inserted.Password != "p1" {
		t.Errorf("Expected trimmed fields, got %+v", inserted)
	}

	tests := []struct {
		name   string
		lookup string
	}{
		{"exact case", "ana"},
		{"upper case", "ANA"},
		{"mixed case", "aNa"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := FindUserByUsername(conn, tt.lookup)
			if err != nil {
				t.Fatalf("FindUserByUsername(%q) failed: %v", tt.lookup, err)
			}
			if u.ID != inserted.ID {
				t.Errorf("Expected user ID %d, got %d", inserted.ID, u.ID)
			}
			if u.Username != "ana" {
				t.Errorf("Expected stored username %q, got %q", "ana", u.Username)
			}
		})
	}
}

func TestFindUserNotFound(t *testing.T) {
	conn := newTestDB(t)

	_, err := FindUserByUsername(conn, "nobody")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestUserConflictExists(t *testing.T) {
	conn := newTestDB(t)

	if _, err := InsertUser(conn, "Ana", "ana", "a@x.com", "p1"); err != nil {
		t.Fatalf("InsertUser failed: %v", err)
	}

	tests := []struct {
		name     string
		username string
		email    string
		want     bool
	}{
		{"same username", "ana", "other@x.com", true},
		{"username different case", "ANA", "other@x.com", true},
		{"same email", "other", "a@x.com", true},
		{"email different case", "other", "A@X.COM", true},
		{"no conflict", "ben", "b@x.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UserConflictExists(conn, tt.username, tt.email)
			if err != nil {
				t.Fatalf("UserConflictExists failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("UserConflictExists(%q, %q) = %v, want %v", tt.username, tt.email, got, tt.want)
			}
		})
	}
}

func TestInsertUserConflict(t *testing.T) {
	conn := newTestDB(t)

	if _, err := InsertUser(conn, "Ana", "ana", "a@x.com", "p1"); err != nil {
		t.Fatalf("InsertUser failed: %v", err)
	}

	// Same username, different case: the NOCASE unique index rejects it
	_, err := InsertUser(conn, "Ana Clone", "ANA", "clone@x.com", "p2")
	if !errors.Is(err, ErrConflict) {
		t.Errorf("Expected ErrConflict for duplicate username, got %v", err)
	}

	_, err = InsertUser(conn, "Ana Clone", "anaclone", "A@X.COM", "p2")
	if !errors.Is(err, ErrConflict) {
		t.Errorf("Expected ErrConflict for duplicate email, got %v", err)
	}
}

func TestUpsertCompletionConverges(t *testing.T) {
	conn := newTestDB(t)

	u, err := InsertUser(conn, "Ana", "ana", "a@x.com", "p1")
	if err != nil {
		t.Fatalf("InsertUser failed: %v", err)
	}

	if err := UpsertCompletion(conn, u.ID, "tumbang", true); err != nil {
		t.Fatalf("UpsertCompletion failed: %v", err)
	}
	if err := UpsertCompletion(conn, u.ID, "tumbang", false); err != nil {
		t.Fatalf("UpsertCompletion (update) failed: %v", err)
	}
	if err := UpsertCompletion(conn, u.ID, "tumbang", true); err != nil {
		t.Fatalf("UpsertCompletion (update) failed: %v", err)
	}

	// Exactly one row, reflecting the latest call
	var count int
	var completed bool
	err = conn.QueryRow(`
		SELECT COUNT(*), MAX(completed) FROM completions
		WHERE user_id = ? AND booth_id = ?
	`, u.ID, "tumbang").Scan(&count, &completed)
	if err != nil {
		t.Fatalf("Failed to query completions: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected exactly 1 row, got %d", count)
	}
	if !completed {
		t.Error("Expected completed flag to reflect the latest upsert")
	}
}

func TestListCompletionsOmitsFalse(t *testing.T) {
	conn := newTestDB(t)

	u, err := InsertUser(conn, "Ana", "ana", "a@x.com", "p1")
	if err != nil {
		t.Fatalf("InsertUser failed: %v", err)
	}

	if err := UpsertCompletion(conn, u.ID, "tumbang", true); err != nil {
		t.Fatalf("UpsertCompletion failed: %v", err)
	}
	if err := UpsertCompletion(conn, u.ID, "maskara", false); err != nil {
		t.Fatalf("UpsertCompletion failed: %v", err)
	}

	completions, err := ListCompletions(conn, u.ID)
	if err != nil {
		t.Fatalf("ListCompletions failed: %v", err)
	}

	if len(completions) != 1 {
		t.Errorf("Expected 1 entry, got %d: %v", len(completions), completions)
	}
	if !completions["tumbang"] {
		t.Error("Expected tumbang to be present and true")
	}
	if _, ok := completions["maskara"]; ok {
		t.Error("Expected maskara (completed=false) to be omitted")
	}

	// The false row is still persisted
	var count int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM completions WHERE user_id = ?`, u.ID).Scan(&count); err != nil {
		t.Fatalf("Failed to count completions: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected 2 persisted rows, got %d", count)
	}
}

func TestListCompletionsEmpty(t *testing.T) {
	conn := newTestDB(t)

	u, err := InsertUser(conn, "Ana", "ana", "a@x.com", "p1")
	if err != nil {
		t.Fatalf("InsertUser failed: %v", err)
	}

	completions, err := ListCompletions(conn, u.ID)
	if err != nil {
		t.Fatalf("ListCompletions failed: %v", err)
	}
	if completions == nil {
		t.Fatal("Expected non-nil map for a user with no completions")
	}
	if len(completions) != 0 {
		t.Errorf("Expected empty map, got %v", completions)
	}
}
