// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package client calls the survey response API.

	c := client.New("http://localhost:4000")
	id, err := c.Submit(ctx, answers)    // POST /api/responses
	answers, err := c.Fetch(ctx, id)     // GET /api/responses/{id}

Client satisfies form.Submitter. Requests are single-shot: there are no
retries, and a failure is returned for the caller to surface.

# Errors

  - *TransportError: non-2xx status (StatusCode set, Error() is "HTTP 404")
    or a network failure (StatusCode 0)
  - *CorruptResponseError: Fetch got a body that is not a flat JSON object
    of strings; matches ErrCorruptResponse with errors.Is
*/
package client
