// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/danielhkuo/waterlily-survey/models"
)

// ErrCorruptResponse marks a stored response whose payload is not an AnswerSet.
var ErrCorruptResponse = errors.New("stored response is corrupted")

// maxErrorBody bounds how much of an error body is kept in TransportError.
const maxErrorBody = 1 << 10

// TransportError is a failed request: a non-2xx status or a network error
// (StatusCode 0). The user may retry.
type TransportError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("HTTP %d", e.StatusCode)
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// CorruptResponseError reports which part of a fetched payload failed the
// AnswerSet schema check.
type CorruptResponseError struct {
	ID     int64
	Reason string
}

func (e *CorruptResponseError) Error() string {
	return fmt.Sprintf("response %d: %s: %s", e.ID, ErrCorruptResponse, e.Reason)
}

func (e *CorruptResponseError) Is(target error) bool {
	return target == ErrCorruptResponse
}

type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// Client talks to the response store API.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the API rooted at baseURL (e.g. http://localhost:4000).
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Submit posts answers to POST /api/responses and returns the assigned id.
func (c *Client) Submit(ctx context.Context, answers models.AnswerSet) (int64, error) {
	body, err := json.Marshal(answers)
	if err != nil {
		return 0, fmt.Errorf("encode answers: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/responses", bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	var created models.CreateResponseResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return 0, &TransportError{StatusCode: resp.StatusCode, Message: "invalid response body", Err: err}
	}

	slog.Debug("response submitted", "response_id", created.ID)
	return created.ID, nil
}

// Fetch retrieves GET /api/responses/{id}. The body must be a JSON object
// whose values are all strings; anything else yields a *CorruptResponseError.
func (c *Client) Fetch(ctx context.Context, id int64) (models.AnswerSet, error) {
	url := c.baseURL + "/api/responses/" + strconv.FormatInt(id, 10)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Message: "read response body", Err: err}
	}

	return DecodeAnswerSet(id, raw)
}

// DecodeAnswerSet validates raw as a flat object of strings.
func DecodeAnswerSet(id int64, raw []byte) (models.AnswerSet, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, &CorruptResponseError{ID: id, Reason: "payload is not a JSON object"}
	}
	if fields == nil {
		return nil, &CorruptResponseError{ID: id, Reason: "payload is null"}
	}

	answers := make(models.AnswerSet, len(fields))
	for key, value := range fields {
		var s string
		if bytes.Equal(value, []byte("null")) || json.Unmarshal(value, &s) != nil {
			return nil, &CorruptResponseError{ID: id, Reason: fmt.Sprintf("field %q is not a string", key)}
		}
		answers[key] = s
	}
	return answers, nil
}

// do sends req and converts network failures and non-2xx statuses into
// *TransportError. The caller closes the body on success.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Message: "request failed", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		slog.Warn("api request failed",
			"method", req.Method,
			"path", req.URL.Path,
			"status", resp.StatusCode,
		)
		return nil, &TransportError{
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(msg)),
		}
	}

	return resp, nil
}
