// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package form

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/danielhkuo/waterlily-survey/catalog"
	"github.com/danielhkuo/waterlily-survey/models"
)

// DraftStore persists the in-progress answers. Implementations must never
// fail loudly: Load returns an empty set when nothing usable is stored.
type DraftStore interface {
	Load() models.AnswerSet
	Save(answers models.AnswerSet)
	Clear()
}

// Submitter sends completed answers and returns the id assigned by the store.
type Submitter interface {
	Submit(ctx context.Context, answers models.AnswerSet) (int64, error)
}

// Progress summarizes how far the user is through the form.
type Progress struct {
	Step      int     // 1-indexed current question
	Total     int     // number of questions
	Completed int     // questions currently valid
	Fraction  float64 // Completed / Total
}

type Option func(*Session)

// WithBioLimit overrides the non-whitespace character cap for the bio field.
func WithBioLimit(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.bioLimit = n
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// Session is the state of one user filling in the form. It is owned by a
// single goroutine and is not safe for concurrent use.
type Session struct {
	catalog   catalog.Catalog
	drafts    DraftStore
	submitter Submitter
	bioLimit  int
	rules     map[string]Rule
	logger    *slog.Logger

	answers    models.AnswerSet
	index      int
	touched    map[string]bool
	submitting bool
	err        string
}

// NewSession creates a session hydrated from the draft store. cat must be a
// validated, non-empty catalog.
func NewSession(cat catalog.Catalog, drafts DraftStore, submitter Submitter, opts ...Option) *Session {
	s := &Session{
		catalog:   cat,
		drafts:    drafts,
		submitter: submitter,
		bioLimit:  DefaultBioLimit,
		logger:    slog.Default(),
		touched:   make(map[string]bool),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.rules = defaultRules(s.bioLimit)

	s.answers = drafts.Load().Clone()
	if len(s.answers) > 0 {
		s.logger.Debug("draft restored", "answers", len(s.answers))
	}

	return s
}

func (s *Session) Catalog() catalog.Catalog { return s.catalog }
func (s *Session) BioLimit() int            { return s.bioLimit }
func (s *Session) Index() int               { return s.index }
func (s *Session) Submitting() bool         { return s.submitting }

// Error returns the form-level error message, or "" when there is none.
func (s *Session) Error() string { return s.err }

// Current returns the question at the current step.
func (s *Session) Current() models.Question {
	return s.catalog[s.index]
}

// IsLast reports whether the current step is the final question.
func (s *Session) IsLast() bool {
	return s.index == len(s.catalog)-1
}

// Answer returns the stored value for id.
func (s *Session) Answer(id string) string {
	return s.answers.Get(id)
}

// Answers returns a copy of the current answer set.
func (s *Session) Answers() models.AnswerSet {
	return s.answers.Clone()
}

// SetAnswer stores raw for a catalog question or a derived key and autosaves.
// Invalid values are kept so the user can see and fix them.
func (s *Session) SetAnswer(id, raw string) {
	if _, ok := s.catalog.Lookup(id); !ok && !isDerivedKey(id) {
		s.logger.Warn("ignoring answer for unknown question", "question", id)
		return
	}

	if id == models.FieldBio {
		raw = CapNonSpace(raw, s.bioLimit)
	}
	s.answers[id] = raw

	for _, d := range derivedFields {
		if d.parent == id && raw != d.when {
			delete(s.answers, d.key)
		}
	}

	s.drafts.Save(s.answers.Clone())
}

// ActiveDerived lists the derived answer keys that question id currently
// requires, e.g. genderOther while gender is "Other".
func (s *Session) ActiveDerived(id string) []string {
	return activeDerived(id, s.answers)
}

// MarkTouched records that the user has interacted with id.
func (s *Session) MarkTouched(id string) {
	s.touched[id] = true
}

func (s *Session) Touched(id string) bool {
	return s.touched[id]
}

// IsQuestionValid applies the question's rule plus any active derived fields.
func (s *Session) IsQuestionValid(q models.Question) bool {
	rule, ok := s.rules[q.ID]
	if !ok {
		rule = func(a models.AnswerSet) bool { return filled(a.Get(q.ID)) }
	}
	if !rule(s.answers) {
		return false
	}

	for _, key := range activeDerived(q.ID, s.answers) {
		if !filled(s.answers.Get(key)) {
			return false
		}
	}
	return true
}

// IsFormValid reports whether every catalog question is valid.
func (s *Session) IsFormValid() bool {
	for _, q := range s.catalog {
		if !s.IsQuestionValid(q) {
			return false
		}
	}
	return true
}

// fieldValid validates a question id or a derived key on its own.
func (s *Session) fieldValid(id string) bool {
	if q, ok := s.catalog.Lookup(id); ok {
		return s.IsQuestionValid(q)
	}
	return filled(s.answers.Get(id))
}

// ShowError reports whether id should be rendered as invalid. Validity is
// always computed but only surfaced once the field was touched or a submit
// attempt left an error on the form.
func (s *Session) ShowError(id string) bool {
	if !s.touched[id] && s.err == "" {
		return false
	}
	return !s.fieldValid(id)
}

// FieldError returns the message to show next to q, or "" when q is valid.
func (s *Session) FieldError(q models.Question) string {
	if s.IsQuestionValid(q) {
		return ""
	}

	v := s.answers.Get(q.ID)
	switch q.ID {
	case models.FieldAge:
		if n, ok := parseAge(v); ok && n > MaxAge {
			return MsgAgeTooHigh
		}
		return MsgAgeTooLow
	case models.FieldBio:
		if CountNonSpace(v) > s.bioLimit {
			return fmt.Sprintf(msgBioOverLimitFmt, s.bioLimit)
		}
		return MsgRequired
	case models.FieldGender:
		if filled(v) && len(activeDerived(q.ID, s.answers)) > 0 {
			return MsgSpecifyGender
		}
	}
	return MsgRequired
}

// Issues lists a ValidationError for every invalid question, in catalog order.
func (s *Session) Issues() []*ValidationError {
	var issues []*ValidationError
	for _, q := range s.catalog {
		if msg := s.FieldError(q); msg != "" {
			issues = append(issues, &ValidationError{Field: q.ID, Message: msg})
		}
	}
	return issues
}

// touchWithDerived marks id and whichever derived keys it currently requires.
func (s *Session) touchWithDerived(id string) {
	s.touched[id] = true
	for _, key := range activeDerived(id, s.answers) {
		s.touched[key] = true
	}
}

// Advance moves to the next question when the current one is valid.
// Otherwise it marks the question touched and stays put.
func (s *Session) Advance() bool {
	q := s.Current()
	if !s.IsQuestionValid(q) {
		s.touchWithDerived(q.ID)
		return false
	}
	if s.index < len(s.catalog)-1 {
		s.index++
	}
	return true
}

// Retreat moves to the previous question, stopping at the first.
func (s *Session) Retreat() {
	if s.index > 0 {
		s.index--
	}
}

// Progress reports the current step and completion fraction.
func (s *Session) Progress() Progress {
	p := Progress{Step: s.index + 1, Total: len(s.catalog)}
	for _, q := range s.catalog {
		if s.IsQuestionValid(q) {
			p.Completed++
		}
	}
	if p.Total > 0 {
		p.Fraction = float64(p.Completed) / float64(p.Total)
	}
	return p
}

// BioCounter renders the bio length as "count/limit".
func (s *Session) BioCounter() string {
	return fmt.Sprintf("%d/%d", CountNonSpace(s.answers.Get(models.FieldBio)), s.bioLimit)
}

// NearBioLimit reports whether the bio uses at least 90% of the limit.
func (s *Session) NearBioLimit() bool {
	return CountNonSpace(s.answers.Get(models.FieldBio)) >= int(math.Floor(float64(s.bioLimit)*0.9))
}

// Submit validates the whole form and sends it. On success the draft is
// cleared and the stored id is returned with ok=true. Failures are recorded
// in Error and never returned.
func (s *Session) Submit(ctx context.Context) (id int64, ok bool) {
	if s.submitting {
		return 0, false
	}

	if _, has := s.catalog.Lookup(models.FieldAge); has {
		if n, finite := parseAge(s.answers.Get(models.FieldAge)); !finite || n <= 0 {
			s.err = MsgAgeTooLow
			s.touched[models.FieldAge] = true
			return 0, false
		}
	}
	if _, has := s.catalog.Lookup(models.FieldBio); has {
		if CountNonSpace(s.answers.Get(models.FieldBio)) > s.bioLimit {
			s.err = fmt.Sprintf(msgBioTooLongFmt, s.bioLimit)
			s.touched[models.FieldBio] = true
			return 0, false
		}
	}

	if !s.IsFormValid() {
		s.err = MsgCompleteAll
		for _, q := range s.catalog {
			s.touchWithDerived(q.ID)
		}
		return 0, false
	}

	s.err = ""
	s.submitting = true
	defer func() { s.submitting = false }()

	id, err := s.submitter.Submit(ctx, s.answers.Clone())
	if err != nil {
		s.err = err.Error()
		if s.err == "" {
			s.err = MsgSubmitFailed
		}
		s.logger.Warn("submission failed", "error", err)
		return 0, false
	}

	s.drafts.Clear()
	s.logger.Info("survey submitted", "response_id", id)
	return id, true
}

// ResetDraft discards all answers and the persisted draft.
func (s *Session) ResetDraft() {
	s.answers = make(models.AnswerSet)
	s.touched = make(map[string]bool)
	s.index = 0
	s.err = ""
	s.drafts.Clear()
}
