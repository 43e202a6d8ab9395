// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package form

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/danielhkuo/waterlily-survey/models"
)

const (
	DefaultBioLimit = 500
	MaxAge          = 120
)

// CountNonSpace counts runes that are not whitespace.
func CountNonSpace(s string) int {
	n := 0
	for _, r := range s {
		if !unicode.IsSpace(r) {
			n++
		}
	}
	return n
}

// CapNonSpace keeps at most limit non-whitespace runes of s, scanning left to
// right. Whitespace is always kept and never counted.
func CapNonSpace(s string, limit int) string {
	if CountNonSpace(s) <= limit {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	used := 0
	for _, r := range s {
		if unicode.IsSpace(r) {
			b.WriteRune(r)
			continue
		}
		if used >= limit {
			continue
		}
		b.WriteRune(r)
		used++
	}
	return b.String()
}

func filled(v string) bool {
	return strings.TrimSpace(v) != ""
}

// parseAge returns the numeric age and whether it is a finite number.
func parseAge(v string) (float64, bool) {
	n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

func validAge(v string) bool {
	n, ok := parseAge(v)
	return ok && n > 0 && n <= MaxAge
}

// Rule reports whether one question's answer is acceptable.
type Rule func(answers models.AnswerSet) bool

func defaultRules(bioLimit int) map[string]Rule {
	return map[string]Rule{
		models.FieldAge: func(a models.AnswerSet) bool {
			return validAge(a.Get(models.FieldAge))
		},
		models.FieldBio: func(a models.AnswerSet) bool {
			n := CountNonSpace(a.Get(models.FieldBio))
			return n > 0 && n <= bioLimit
		},
	}
}

// derivedField is an answer key that only exists while its parent question
// holds a specific value.
type derivedField struct {
	key    string
	parent string
	when   string
}

var derivedFields = []derivedField{
	{key: models.FieldGenderOther, parent: models.FieldGender, when: models.GenderOther},
}

func isDerivedKey(id string) bool {
	for _, d := range derivedFields {
		if d.key == id {
			return true
		}
	}
	return false
}

// activeDerived lists the derived keys of parent that the current answers require.
func activeDerived(parent string, answers models.AnswerSet) []string {
	var keys []string
	for _, d := range derivedFields {
		if d.parent == parent && answers.Get(parent) == d.when {
			keys = append(keys, d.key)
		}
	}
	return keys
}
