// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration
for the API server and the terminal survey client.

# Server Configuration

ParseFlags returns a Config struct:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

  - Port: Server listen port (default: 4000)
  - DatabaseType: sqlite (default) or postgres
  - DatabaseURL: connection string (default for sqlite: file:data.db)

Flags and their environment fallbacks:

	-p  PORT
	-d  DATABASE_URL
	-t  DATABASE_TYPE

A postgres database type requires DATABASE_URL.

# Client Configuration

ParseClientFlags returns a ClientConfig:

	-api        SURVEY_API_URL    (default: http://localhost:4000)
	-draft-dir  SURVEY_DRAFT_DIR  (default: <user config dir>/waterlily)
	-catalog    SURVEY_CATALOG    (default: built-in questions)
	-bio-limit  SURVEY_BIO_LIMIT  (default: 500)

CLI flags take precedence over environment variables.

# .env Files

LoadDotEnv fills the environment from a .env file before flags are parsed.
Variables already set in the environment are left alone, and a missing
file is ignored:

	if err := cliparse.LoadDotEnv(".env"); err != nil {
		log.Fatal(err)
	}
*/
package cliparse
