// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/danielhkuo/waterlily-survey/testutil"
)

func newMockHandler(t *testing.T) (*ResponseHandler, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return NewResponseHandler(db, testutil.GetTestConfig()), mock
}

func TestCreate_StorageFailure(t *testing.T) {
	handler, mock := newMockHandler(t)

	mock.ExpectQuery(`INSERT INTO responses \(payload\) VALUES \(\$1\) RETURNING id`).
		WithArgs(`{"age":"30"}`).
		WillReturnError(errors.New("disk full"))

	req := httptest.NewRequest("POST", "/api/responses", strings.NewReader(`{"age":"30"}`))
	w := httptest.NewRecorder()

	handler.Create(w, req)

	testutil.AssertStatus(t, w, http.StatusInternalServerError)
	if strings.Contains(w.Body.String(), "disk full") {
		t.Error("Expected driver error to stay out of the response body")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreate_InvalidJSONSkipsStorage(t *testing.T) {
	handler, mock := newMockHandler(t)

	req := httptest.NewRequest("POST", "/api/responses", strings.NewReader(`{"age":`))
	w := httptest.NewRecorder()

	handler.Create(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected database activity: %v", err)
	}
}

func TestCreate_ReturnsDatabaseID(t *testing.T) {
	handler, mock := newMockHandler(t)

	mock.ExpectQuery(`INSERT INTO responses`).
		WithArgs(`{"bio":"hi"}`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1234567)))

	req := httptest.NewRequest("POST", "/api/responses", strings.NewReader(`{"bio":"hi"}`))
	w := httptest.NewRecorder()

	handler.Create(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	if got := strings.TrimSpace(w.Body.String()); got != `{"id":1234567}` {
		t.Errorf("Expected body '{\"id\":1234567}', got '%s'", got)
	}
}

func TestGet_QueryFailure(t *testing.T) {
	handler, mock := newMockHandler(t)

	mock.ExpectQuery(`SELECT payload FROM responses WHERE id = \$1`).
		WithArgs(int64(7)).
		WillReturnError(errors.New("connection reset"))

	req := httptest.NewRequest("GET", "/api/responses/7", nil)
	req.SetPathValue("id", "7")
	w := httptest.NewRecorder()

	handler.Get(w, req)

	testutil.AssertStatus(t, w, http.StatusInternalServerError)
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
