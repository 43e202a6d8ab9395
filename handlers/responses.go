// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/waterlily-survey/cliparse"
	"github.com/danielhkuo/waterlily-survey/middleware"
	"github.com/danielhkuo/waterlily-survey/models"
)

type ResponseHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewResponseHandler(db *sql.DB, cfg cliparse.Config) *ResponseHandler {
	return &ResponseHandler{db: db, cfg: cfg}
}

// Create handles POST /api/responses
func (h *ResponseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var answers models.AnswerSet
	if err := middleware.ParseJSONBody(w, r, &answers); err != nil || answers == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	payload, err := json.Marshal(answers)
	if err != nil {
		slog.Error("failed to encode payload", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save response")
		return
	}

	var id int64
	err = h.db.QueryRowContext(r.Context(), `
		INSERT INTO responses (payload) VALUES ($1) RETURNING id
	`, string(payload)).Scan(&id)
	if err != nil {
		slog.Error("failed to insert response", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save response")
		return
	}

	slog.Info("response stored", "response_id", id, "fields", len(answers))

	middleware.JSONResponse(w, http.StatusOK, models.CreateResponseResponse{ID: id})
}

// Get handles GET /api/responses/{id}
func (h *ResponseHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid response id")
		return
	}

	var payload string
	err = h.db.QueryRowContext(r.Context(), `
		SELECT payload FROM responses WHERE id = $1
	`, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Not found")
		return
	}
	if err != nil {
		slog.Error("failed to query response", "error", err, "response_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load response")
		return
	}

	var answers models.AnswerSet
	if err := json.Unmarshal([]byte(payload), &answers); err != nil || answers == nil {
		slog.Error("stored payload is not an answer set", "error", err, "response_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Corrupted stored payload")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, answers)
}
