// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the response database and creates its schema.

# Drivers

Two database types are supported:

  - sqlite: modernc.org/sqlite (pure Go, default)
  - postgres: github.com/lib/pq

	conn, err := db.Open("sqlite", "file:data.db")

# Schema Creation

CreateSchema initializes the responses table:

	if err := db.CreateSchema(conn, "sqlite"); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS.

# Tables

  - responses: one row per submission (id, payload, created_at)

The table is append-only. id is assigned by the database and increases
monotonically; payload holds the submitted answers as JSON text.
*/
package db
