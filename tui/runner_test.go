// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/danielhkuo/waterlily-survey/catalog"
	"github.com/danielhkuo/waterlily-survey/draft"
	"github.com/danielhkuo/waterlily-survey/form"
	"github.com/danielhkuo/waterlily-survey/models"
)

// stubDriver replays scripted answers. Selects are scripted by option label.
type stubDriver struct {
	inputs       []string
	selects      []string
	textAreas    []string
	infoMessages []string
	inputPos     int
	selectPos    int
	textPos      int
}

func (d *stubDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if d.inputPos >= len(d.inputs) {
		return "", ErrAborted
	}
	v := d.inputs[d.inputPos]
	d.inputPos++
	return v, nil
}

func (d *stubDriver) Select(ctx context.Context, cfg SelectConfig) (int, error) {
	if d.selectPos >= len(d.selects) {
		return 0, ErrAborted
	}
	v := d.selects[d.selectPos]
	d.selectPos++
	return indexOf(cfg.Options, v), nil
}

func (d *stubDriver) TextArea(ctx context.Context, cfg TextAreaConfig) (string, error) {
	if d.textPos >= len(d.textAreas) {
		return "", ErrAborted
	}
	v := d.textAreas[d.textPos]
	d.textPos++
	return v, nil
}

func (d *stubDriver) Info(ctx context.Context, msg string) error {
	d.infoMessages = append(d.infoMessages, msg)
	return nil
}

func (d *stubDriver) sawInfo(substr string) bool {
	for _, m := range d.infoMessages {
		if strings.Contains(m, substr) {
			return true
		}
	}
	return false
}

type recordingSubmitter struct {
	id    int64
	err   error
	calls int
	got   models.AnswerSet
}

func (s *recordingSubmitter) Submit(ctx context.Context, answers models.AnswerSet) (int64, error) {
	s.calls++
	s.got = answers
	return s.id, s.err
}

func TestRun_HappyPath(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"30", "Nonbinary"},
		selects:   []string{ActionNext, "Other", ActionNext, ActionSubmit},
		textAreas: []string{"ab cd"},
	}
	store := draft.NewMemoryStore(nil)
	sub := &recordingSubmitter{id: 1}
	session := form.NewSession(catalog.Default(), store, sub)

	id, err := NewRunner(driver, session).Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if id != 1 {
		t.Errorf("expected id 1, got %d", id)
	}

	want := models.AnswerSet{"age": "30", "gender": "Other", "genderOther": "Nonbinary", "bio": "ab cd"}
	if diff := cmp.Diff(want, sub.got); diff != "" {
		t.Errorf("submitted answers mismatch (-want +got):\n%s", diff)
	}
	if !driver.sawInfo("Question 1 of 3") || !driver.sawInfo("Question 3 of 3") {
		t.Errorf("expected step headers, got %v", driver.infoMessages)
	}
	if !driver.sawInfo("4/500 characters") {
		t.Errorf("expected bio counter, got %v", driver.infoMessages)
	}
	if store.Raw() != nil {
		t.Error("draft should be cleared after submit")
	}
}

func TestRun_InvalidAnswerStaysOnQuestion(t *testing.T) {
	driver := &stubDriver{
		inputs:  []string{"0", "25"},
		selects: []string{ActionNext, ActionNext, "Male"},
	}
	session := form.NewSession(catalog.Default(), draft.NewMemoryStore(nil), &recordingSubmitter{})

	_, err := NewRunner(driver, session).Run(context.Background())
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}

	if !driver.sawInfo("! " + form.MsgAgeTooLow) {
		t.Errorf("expected age error, got %v", driver.infoMessages)
	}
	if session.Index() != 1 {
		t.Errorf("expected to reach question 2, got index %d", session.Index())
	}
	if session.Answer("age") != "25" {
		t.Errorf("expected corrected age, got %q", session.Answer("age"))
	}
}

func TestRun_SubmitFailureIsReported(t *testing.T) {
	store := draft.NewMemoryStore(nil)
	store.Save(models.AnswerSet{"age": "30", "gender": "Male"})
	session := form.NewSession(catalog.Default(), store, &recordingSubmitter{err: errors.New("HTTP 500")})
	session.Advance()
	session.Advance()

	// The bio is prompted again after the failed submit, before quitting
	driver := &stubDriver{
		textAreas: []string{"hello", "hello"},
		selects:   []string{ActionSubmit, ActionQuit},
	}

	_, err := NewRunner(driver, session).Run(context.Background())
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
	if !driver.sawInfo("! HTTP 500") {
		t.Errorf("expected transport error, got %v", driver.infoMessages)
	}
	if got := store.Load(); got["bio"] != "hello" {
		t.Errorf("draft should be kept after failed submit, got %v", got)
	}
}

func TestRun_ClearDraft(t *testing.T) {
	store := draft.NewMemoryStore(nil)
	session := form.NewSession(catalog.Default(), store, &recordingSubmitter{})

	driver := &stubDriver{
		inputs:  []string{"30", ""},
		selects: []string{ActionClear, ActionQuit},
	}

	_, err := NewRunner(driver, session).Run(context.Background())
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
	if !driver.sawInfo("Draft cleared.") {
		t.Errorf("expected clear message, got %v", driver.infoMessages)
	}
	if session.Answer("age") != "" {
		t.Errorf("expected age reset by second prompt, got %q", session.Answer("age"))
	}
}

func TestRun_PreviousOnlyAfterFirstQuestion(t *testing.T) {
	session := form.NewSession(catalog.Default(), draft.NewMemoryStore(nil), &recordingSubmitter{})
	driver := &stubDriver{
		inputs:  []string{"30", "30"},
		selects: []string{ActionPrevious, "Male", ActionPrevious, ActionQuit},
	}

	NewRunner(driver, session).Run(context.Background())

	// Previous is not offered on question 1, so the first pick falls back
	// to the default action (Next); the second one goes back from gender.
	if session.Index() != 0 {
		t.Errorf("expected to end on question 1, got index %d", session.Index())
	}
	if session.Answer("gender") != "Male" {
		t.Errorf("expected gender answered, got %q", session.Answer("gender"))
	}
}

func TestRun_Interrupted(t *testing.T) {
	session := form.NewSession(catalog.Default(), draft.NewMemoryStore(nil), &recordingSubmitter{})

	_, err := NewRunner(&stubDriver{}, session).Run(context.Background())
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestRun_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	session := form.NewSession(catalog.Default(), draft.NewMemoryStore(nil), &recordingSubmitter{})

	_, err := NewRunner(&stubDriver{}, session).Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
