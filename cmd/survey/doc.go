/*
Survey is the interactive terminal client for the Waterlily survey API.

It walks through the question catalog one question at a time, autosaving
answers to a local draft after every change. Once every answer is valid
the responses are submitted, the draft is cleared and the stored response
is fetched back and shown.

Usage:

	survey [flags]

The flags are:

	-api string
		Survey API base URL (env SURVEY_API_URL, default http://localhost:4000)
	-draft-dir string
		Directory holding the saved draft (env SURVEY_DRAFT_DIR)
	-catalog string
		Question catalog file in YAML or JSON (env SURVEY_CATALOG)
	-bio-limit int
		Maximum non-whitespace characters in the bio (env SURVEY_BIO_LIMIT, default 500)

Quitting or pressing Ctrl-C keeps the draft; the next run resumes from it.
*/
package main
