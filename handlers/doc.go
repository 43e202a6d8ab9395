// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the survey API.

# Handler Types

ResponseHandler stores and serves submitted answer sets. It is created
with a database handle and the server config:

	responseHandler := handlers.NewResponseHandler(db, cfg)

# Endpoints

	POST /api/responses      → Create (returns {"id": n})
	GET  /api/responses/{id} → Get (returns the stored answer set)

Create accepts a JSON object whose values are all strings. Anything else
is rejected with 400 "Invalid JSON". The payload is stored verbatim as
JSON text and the database assigns the id.

Get returns 400 for a non-integer id, 404 "Not found" for an unknown id
and 500 "Corrupted stored payload" when the stored text no longer decodes
as an answer set.

Error bodies are plain text.
*/
package handlers
