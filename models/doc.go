// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain and wire types shared by the survey
server, the form engine and the terminal client.

# Domain Types

  - Question: one catalog entry (id, title, description, type, options)
  - AnswerSet: question id → raw string answer
  - SurveyResponse: a stored submission (id + payload)

An AnswerSet may carry one key that is not a question id: genderOther,
which holds free text when gender is "Other".

# Response Types

  - CreateResponseResponse: id assigned by the store

# Constants

Question types:

	TypeText   = "text"
	TypeNumber = "number"
	TypeSelect = "select"

Answer keys:

	FieldAge         = "age"
	FieldGender      = "gender"
	FieldBio         = "bio"
	FieldGenderOther = "genderOther"
*/
package models
