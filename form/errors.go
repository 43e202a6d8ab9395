// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package form

import "fmt"

// User-facing messages
const (
	MsgRequired        = "This field is required."
	MsgAgeTooLow       = "Age must be greater than 0."
	MsgAgeTooHigh      = "Age must be 120 or less."
	MsgSpecifyGender   = "Please specify your gender."
	MsgCompleteAll     = "Please complete all fields."
	MsgSubmitFailed    = "Submission failed"
	msgBioOverLimitFmt = "Bio is over the %d-character limit."
	msgBioTooLongFmt   = "Bio must be at most %d characters."
)

// ValidationError describes a question that fails its rule. It is shown
// next to the field and never leaves the process.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
