// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package review

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/waterlily-survey/catalog"
	"github.com/danielhkuo/waterlily-survey/models"
)

// Fetcher loads a stored response by id.
type Fetcher interface {
	Fetch(ctx context.Context, id int64) (models.AnswerSet, error)
}

// Render writes a stored response as a thank-you summary, one entry per
// catalog question in order.
func Render(w io.Writer, cat catalog.Catalog, id int64, answers models.AnswerSet) error {
	var b strings.Builder

	b.WriteString("Thank you!\n")
	fmt.Fprintf(&b, "Your responses are below (response #%s).\n\n", humanize.Comma(id))

	for _, q := range cat {
		value := answers.Get(q.ID)
		if q.ID == models.FieldGender {
			value = formatGender(answers)
		}

		if strings.Contains(value, "\n") {
			fmt.Fprintf(&b, "%s:\n", q.Title)
			for _, line := range strings.Split(value, "\n") {
				fmt.Fprintf(&b, "    %s\n", line)
			}
			continue
		}
		fmt.Fprintf(&b, "%s: %s\n", q.Title, value)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// formatGender renders "Other — <text>" when the free-text answer is set.
func formatGender(answers models.AnswerSet) string {
	gender := answers.Get(models.FieldGender)
	if !strings.EqualFold(gender, models.GenderOther) {
		return gender
	}
	if other := answers.Get(models.FieldGenderOther); other != "" {
		return models.GenderOther + " — " + other
	}
	return models.GenderOther
}

// Show fetches response id and renders it. A failed fetch is written to w
// with a retry hint and returned.
func Show(ctx context.Context, f Fetcher, cat catalog.Catalog, id int64, w io.Writer) error {
	answers, err := f.Fetch(ctx, id)
	if err != nil {
		fmt.Fprintf(w, "Could not load response #%s: %v\n", humanize.Comma(id), err)
		fmt.Fprintln(w, "Try again later.")
		return fmt.Errorf("fetch response %d: %w", id, err)
	}
	return Render(w, cat, id, answers)
}
