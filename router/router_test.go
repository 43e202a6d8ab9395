// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/waterlily-survey/middleware"
	"github.com/danielhkuo/waterlily-survey/models"
	"github.com/danielhkuo/waterlily-survey/testutil"
)

func TestHealthEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig()
	mux := NewRouter(db, cfg)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig()
	mux := NewRouter(db, cfg)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != Banner {
		t.Errorf("Expected body '%s', got '%s'", Banner, w.Body.String())
	}
}

func TestRouteExistence(t *testing.T) {
	db := testutil.SetupTestDB(t)

	cfg := testutil.GetTestConfig()
	mux := NewRouter(db, cfg)

	testCases := []struct {
		method         string
		path           string
		body           string
		expectedStatus int
	}{
		{"GET", "/health", "", http.StatusOK},
		{"GET", "/", "", http.StatusOK},
		{"POST", "/api/responses", `{"age":"30"}`, http.StatusOK},
		{"POST", "/api/responses", `oops`, http.StatusBadRequest},
		{"GET", "/api/responses/1", "", http.StatusOK},
		{"GET", "/api/responses/999", "", http.StatusNotFound},
		{"GET", "/api/responses/abc", "", http.StatusBadRequest},
		{"GET", "/does-not-exist", "", http.StatusNotFound},
		{"DELETE", "/api/responses/1", "", http.StatusMethodNotAllowed},
		{"PUT", "/api/responses", "", http.StatusMethodNotAllowed},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			testutil.AssertStatus(t, w, tc.expectedStatus)
		})
	}
}

func TestResponseRoutesAreLogged(t *testing.T) {
	db := testutil.SetupTestDB(t)
	mux := NewRouter(db, testutil.GetTestConfig())

	req := testutil.MakeRequest("POST", "/api/responses", models.AnswerSet{"bio": "hi"}, nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	if w.Header().Get(middleware.RequestIDHeader) == "" {
		t.Error("Expected request id header on logged route")
	}
}
