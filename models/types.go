// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "maps"

// Question type constants
const (
	TypeText   QuestionType = "text"
	TypeNumber QuestionType = "number"
	TypeSelect QuestionType = "select"
)

// Well-known answer keys
const (
	FieldAge         = "age"
	FieldGender      = "gender"
	FieldBio         = "bio"
	FieldGenderOther = "genderOther" // derived, only meaningful when gender is "Other"
)

// GenderOther is the gender option that unlocks the free-text genderOther answer.
const GenderOther = "Other"

type QuestionType string

// Valid reports whether t is one of the supported question types.
func (t QuestionType) Valid() bool {
	switch t {
	case TypeText, TypeNumber, TypeSelect:
		return true
	}
	return false
}

// Domain types

type Question struct {
	ID          string       `json:"id" yaml:"id"`
	Title       string       `json:"title" yaml:"title"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	Type        QuestionType `json:"type" yaml:"type"`
	Options     []string     `json:"options,omitempty" yaml:"options,omitempty"` // select only
}

// AnswerSet maps question id (plus genderOther) to the raw answer.
// A missing key means the question is unanswered.
type AnswerSet map[string]string

// Get returns the answer for id, or "" when unanswered.
func (a AnswerSet) Get(id string) string {
	return a[id]
}

// Clone returns an independent copy. A nil set clones to an empty one.
func (a AnswerSet) Clone() AnswerSet {
	out := make(AnswerSet, len(a))
	maps.Copy(out, a)
	return out
}

// Response types

type CreateResponseResponse struct {
	ID int64 `json:"id"`
}

// SurveyResponse is a stored submission.
type SurveyResponse struct {
	ID      int64     `json:"id"`
	Payload AnswerSet `json:"payload"`
}
