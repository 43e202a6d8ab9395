// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Waterlily survey API server.

The server stores survey answer sets submitted by the terminal client in
cmd/survey and serves them back by id.

# Starting the Server

With no configuration the server listens on port 4000 and keeps responses
in a local SQLite file:

	go run .

Or with flags:

	go run . -p 4000 -t postgres -d "postgres://..."

# Configuration

Settings come from flags, then environment variables, then a .env file
in the working directory:

  - PORT (-p): Server port (default: 4000)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - DATABASE_URL (-d): connection string (default for sqlite: file:data.db)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (responses)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Question, answer set and response types
  - db: Driver selection and schema creation
  - cliparse: Configuration parsing

The client side lives in catalog, form, draft, client, review and tui.

See package documentation for each component.
*/
package main
