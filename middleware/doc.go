// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (status,
duration_ms). Every request gets a request_id: the incoming X-Request-ID
header if present, otherwise a fresh UUID. The id is echoed back in the
X-Request-ID response header.

# CORS Middleware

Enable cross-origin requests for browser clients:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows methods GET, POST, OPTIONS with headers Content-Type and
X-Request-ID.

# Response Helpers

Write JSON responses and plain-text errors:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")

Parse JSON request bodies (capped at MaxBodyBytes):

	var answers models.AnswerSet
	if err := middleware.ParseJSONBody(w, r, &answers); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Logged as the remote field of each request.
*/
package middleware
