// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package form is the survey's state machine: it holds the answers, the
current step and the touched fields, validates each question and gates
navigation and submission.

# Creating a Session

A Session is built from a catalog, a draft store and a submitter:

	s := form.NewSession(catalog.Default(), draft.NewFileStore(dir), client.New(apiURL))

The draft store is read once to hydrate the answers and written after every
change to them.

# Validation Rules

  - generic: non-empty after trimming
  - age: finite number, greater than 0 and at most 120
  - bio: between 1 and BioLimit (500) non-whitespace characters
  - gender: a value is selected, and when it is "Other" the derived
    genderOther answer is non-empty

Bio input is capped as it is set: extra non-whitespace characters are
dropped, whitespace is always kept. Choosing any gender but "Other" clears
genderOther in the same update.

# Navigation

	s.Advance()  // stays put and marks the field touched when invalid
	s.Retreat()  // floors at the first question

# Submission

	id, ok := s.Submit(ctx)
	if !ok {
		fmt.Println(s.Error())
	}

Submit never returns an error: validation and transport failures are
recorded on the session for display, and the user may simply try again.
*/
package form
