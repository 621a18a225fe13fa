// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/sportscal/cliparse"
	"github.com/danielhkuo/sportscal/db"
)

// SetupTestDB creates a fresh SQLite database file with the full schema.
// The file lives in a per-test temp dir and the handle is closed on cleanup.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	conn, err := db.Open(context.Background(), db.Options{Dialect: db.SQLite, DSN: path})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         5000,
		DatabaseURL:  ":memory:",
		DatabaseType: string(db.SQLite),
		StaticDir:    "testdata",
		LogLevel:     "info",
	}
}

// SeedSport inserts a sport and returns its ID
func SeedSport(t *testing.T, conn *sql.DB, name string) int64 {
	t.Helper()

	res, err := conn.Exec(`INSERT INTO sport (name) VALUES (?)`, name)
	if err != nil {
		t.Fatalf("Failed to create test sport: %v", err)
	}
	id, _ := res.LastInsertId()
	return id
}

// SeedVenue inserts a venue and returns its ID
func SeedVenue(t *testing.T, conn *sql.DB, name, city, address string) int64 {
	t.Helper()

	res, err := conn.Exec(`
		INSERT INTO venue (name, city, address)
		VALUES (?, ?, ?)
	`, name, city, address)
	if err != nil {
		t.Fatalf("Failed to create test venue: %v", err)
	}
	id, _ := res.LastInsertId()
	return id
}

// SeedTeam inserts a team and returns its ID
func SeedTeam(t *testing.T, conn *sql.DB, name string) int64 {
	t.Helper()

	res, err := conn.Exec(`INSERT INTO team (name) VALUES (?)`, name)
	if err != nil {
		t.Fatalf("Failed to create test team: %v", err)
	}
	id, _ := res.LastInsertId()
	return id
}

// CreateTestEvent inserts an event with its participants and returns the event ID
func CreateTestEvent(t *testing.T, conn *sql.DB, sportID, venueID int64, date, timeOfDay string, participants ...string) int64 {
	t.Helper()

	res, err := conn.Exec(`
		INSERT INTO event (sport_id, venue_id, event_date, event_time)
		VALUES (?, ?, ?, ?)
	`, sportID, venueID, date, timeOfDay)
	if err != nil {
		t.Fatalf("Failed to create test event: %v", err)
	}
	eventID, _ := res.LastInsertId()

	for _, name := range participants {
		_, err := conn.Exec(`
			INSERT INTO event_participant (event_id, participant_name)
			VALUES (?, ?)
		`, eventID, name)
		if err != nil {
			t.Fatalf("Failed to create test participant: %v", err)
		}
	}

	return eventID
}

// CountRows returns the number of rows in a table
func CountRows(t *testing.T, conn *sql.DB, table string) int {
	t.Helper()

	var n int
	if err := conn.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}

// FailParticipantInsert installs a trigger that aborts inserts of the given
// participant name, to exercise rollback paths.
func FailParticipantInsert(t *testing.T, conn *sql.DB, name string) {
	t.Helper()

	_, err := conn.Exec(`
		CREATE TRIGGER fail_participant_insert
		BEFORE INSERT ON event_participant
		WHEN NEW.participant_name = '` + name + `'
		BEGIN
			SELECT RAISE(ABORT, 'forced participant failure');
		END;
	`)
	if err != nil {
		t.Fatalf("Failed to install trigger: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		var jsonBody []byte
		if raw, ok := body.(string); ok {
			jsonBody = []byte(raw)
		} else {
			jsonBody, _ = json.Marshal(body)
		}
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
