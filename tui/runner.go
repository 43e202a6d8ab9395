// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/danielhkuo/waterlily-survey/form"
	"github.com/danielhkuo/waterlily-survey/models"
)

// Menu actions
const (
	ActionNext     = "Next"
	ActionPrevious = "Previous"
	ActionSubmit   = "Submit"
	ActionClear    = "Clear draft"
	ActionQuit     = "Quit"
)

var derivedPrompts = map[string]string{
	models.FieldGenderOther: "Please specify your gender",
}

// Runner walks a form session one question at a time.
type Runner struct {
	driver  PromptDriver
	session *form.Session
}

func NewRunner(driver PromptDriver, session *form.Session) *Runner {
	return &Runner{driver: driver, session: session}
}

// Run prompts until the form is submitted and returns the stored id.
// Quitting or interrupting returns ErrAborted; the draft stays saved.
func (r *Runner) Run(ctx context.Context) (int64, error) {
	s := r.session

	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		if err := r.askCurrent(ctx); err != nil {
			return 0, err
		}

		action, err := r.chooseAction(ctx)
		if err != nil {
			return 0, err
		}

		switch action {
		case ActionNext:
			if !s.Advance() {
				if err := r.driver.Info(ctx, "! "+s.FieldError(s.Current())); err != nil {
					return 0, err
				}
			}
		case ActionPrevious:
			s.Retreat()
		case ActionSubmit:
			if err := r.driver.Info(ctx, "Submitting…"); err != nil {
				return 0, err
			}
			if id, ok := s.Submit(ctx); ok {
				return id, nil
			}
			if err := r.reportSubmitFailure(ctx); err != nil {
				return 0, err
			}
		case ActionClear:
			s.ResetDraft()
			if err := r.driver.Info(ctx, "Draft cleared."); err != nil {
				return 0, err
			}
		case ActionQuit:
			return 0, ErrAborted
		}
	}
}

func (r *Runner) askCurrent(ctx context.Context) error {
	s := r.session
	q := s.Current()
	p := s.Progress()

	header := fmt.Sprintf("Question %d of %d", p.Step, p.Total)
	if !s.IsFormValid() {
		header += fmt.Sprintf("  (%d of %d completed — finish all to submit.)", p.Completed, p.Total)
	}
	if err := r.driver.Info(ctx, header); err != nil {
		return err
	}

	value, err := r.prompt(ctx, q)
	if err != nil {
		return err
	}
	s.SetAnswer(q.ID, value)
	s.MarkTouched(q.ID)

	for _, key := range s.ActiveDerived(q.ID) {
		msg, ok := derivedPrompts[key]
		if !ok {
			msg = key
		}
		other, err := r.driver.Input(ctx, InputConfig{Message: msg, Default: s.Answer(key)})
		if err != nil {
			return err
		}
		s.SetAnswer(key, other)
		s.MarkTouched(key)
	}

	if q.ID == models.FieldBio {
		counter := s.BioCounter() + " characters"
		if s.NearBioLimit() {
			counter += " (near the limit)"
		}
		if err := r.driver.Info(ctx, counter); err != nil {
			return err
		}
	}

	if s.ShowError(q.ID) {
		return r.driver.Info(ctx, "! "+s.FieldError(q))
	}
	return nil
}

func (r *Runner) prompt(ctx context.Context, q models.Question) (string, error) {
	current := r.session.Answer(q.ID)

	switch {
	case q.Type == models.TypeSelect:
		idx, err := r.driver.Select(ctx, SelectConfig{
			Message:      q.Title,
			Options:      q.Options,
			DefaultIndex: indexOf(q.Options, current),
			Help:         q.Description,
		})
		if err != nil {
			return "", err
		}
		if idx < 0 || idx >= len(q.Options) {
			return "", nil
		}
		return q.Options[idx], nil

	case q.ID == models.FieldBio:
		return r.driver.TextArea(ctx, TextAreaConfig{
			Message: q.Title,
			Default: current,
			Help: strings.TrimSpace(fmt.Sprintf("%s Up to %d characters; spaces and line breaks are not counted.",
				q.Description, r.session.BioLimit())),
		})

	default:
		return r.driver.Input(ctx, InputConfig{
			Message: q.Title,
			Default: current,
			Help:    q.Description,
		})
	}
}

func (r *Runner) chooseAction(ctx context.Context) (string, error) {
	s := r.session

	var options []string
	if s.IsLast() {
		options = append(options, ActionSubmit)
	} else {
		options = append(options, ActionNext)
	}
	if s.Index() > 0 {
		options = append(options, ActionPrevious)
	}
	options = append(options, ActionClear, ActionQuit)

	idx, err := r.driver.Select(ctx, SelectConfig{Message: "What next?", Options: options})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(options) {
		return options[0], nil
	}
	return options[idx], nil
}

func (r *Runner) reportSubmitFailure(ctx context.Context) error {
	s := r.session
	if err := r.driver.Info(ctx, "! "+s.Error()); err != nil {
		return err
	}
	for _, issue := range s.Issues() {
		if !s.ShowError(issue.Field) {
			continue
		}
		if err := r.driver.Info(ctx, fmt.Sprintf("  - %s", issue.Message)); err != nil {
			return err
		}
	}
	return nil
}
