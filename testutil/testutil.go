// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/waterlily-survey/cliparse"
	"github.com/danielhkuo/waterlily-survey/db"
)

// PostgresURLEnv names the variable that switches SetupTestDB to Postgres.
const PostgresURLEnv = "TEST_DATABASE_URL"

// SetupTestDB creates a fresh test database with the full schema.
// Uses a temporary SQLite file unless TEST_DATABASE_URL points at Postgres.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dbType, url := testDatabase(t)

	conn, err := db.Open(dbType, url)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if dbType == cliparse.DatabasePostgres {
		// Clean up tables before each test
		if _, err := conn.Exec(`DROP TABLE IF EXISTS responses`); err != nil {
			t.Fatalf("Failed to clean database: %v", err)
		}
	}

	if err := db.CreateSchema(conn, dbType); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { conn.Close() })
	return conn
}

func testDatabase(t *testing.T) (dbType, url string) {
	if pg := os.Getenv(PostgresURLEnv); pg != "" {
		return cliparse.DatabasePostgres, pg
	}
	return cliparse.DatabaseSQLite, "file:" + filepath.Join(t.TempDir(), "test.db")
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  cliparse.DefaultSQLiteURL,
		DatabaseType: cliparse.DatabaseSQLite,
	}
}

// CreateTestResponse stores a raw payload and returns its id.
// The payload is written as-is so tests can plant corrupt rows.
func CreateTestResponse(t *testing.T, db *sql.DB, payload string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(`
		INSERT INTO responses (payload) VALUES ($1) RETURNING id
	`, payload).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test response: %v", err)
	}

	return id
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
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
