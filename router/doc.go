// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the survey API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

	GET  /health             - Liveness check, returns "OK"
	POST /api/responses      - Store an answer set
	GET  /api/responses/{id} - Fetch a stored answer set
	GET  /                   - API banner

Any other path returns 404. The response routes are wrapped in
middleware.WithLogging; CORS is applied to the whole mux by the server.
*/
package router
