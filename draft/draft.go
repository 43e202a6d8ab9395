// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package draft

import (
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/danielhkuo/waterlily-survey/models"
)

// SlotKey names the single durable slot holding the draft.
const SlotKey = "waterlily_survey_answers_v1"

// decode parses a stored draft. Anything that is not a JSON object of
// strings is treated as no draft.
func decode(raw []byte, logger *slog.Logger) models.AnswerSet {
	if len(raw) == 0 {
		return models.AnswerSet{}
	}
	var answers models.AnswerSet
	if err := json.Unmarshal(raw, &answers); err != nil {
		logger.Debug("discarding corrupt draft", "error", err)
		return models.AnswerSet{}
	}
	if answers == nil {
		return models.AnswerSet{}
	}
	return answers
}

// FileStore keeps the draft as a JSON file named after SlotKey.
type FileStore struct {
	path   string
	logger *slog.Logger
}

// NewFileStore stores the draft inside dir, which is created on first save.
func NewFileStore(dir string) *FileStore {
	return &FileStore{
		path:   filepath.Join(dir, SlotKey+".json"),
		logger: slog.Default(),
	}
}

// Path returns the slot file location.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Load() models.AnswerSet {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.Debug("draft unreadable", "path", s.path, "error", err)
		}
		return models.AnswerSet{}
	}
	return decode(raw, s.logger)
}

// Save writes the draft via a temp file and rename. Errors are logged and
// dropped.
func (s *FileStore) Save(answers models.AnswerSet) {
	raw, err := json.Marshal(answers)
	if err != nil {
		s.logger.Warn("draft not saved", "error", err)
		return
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		s.logger.Warn("draft not saved", "path", s.path, "error", err)
		return
	}

	tmp, err := os.CreateTemp(dir, SlotKey+".*.tmp")
	if err != nil {
		s.logger.Warn("draft not saved", "path", s.path, "error", err)
		return
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		s.logger.Warn("draft not saved", "path", s.path, "error", err)
		return
	}
	if err := tmp.Close(); err != nil {
		s.logger.Warn("draft not saved", "path", s.path, "error", err)
		return
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		s.logger.Warn("draft not saved", "path", s.path, "error", err)
	}
}

func (s *FileStore) Clear() {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		s.logger.Warn("draft not cleared", "path", s.path, "error", err)
	}
}

// MemoryStore holds the serialized draft in memory. It round-trips through
// JSON like FileStore does.
type MemoryStore struct {
	mu     sync.Mutex
	raw    []byte
	logger *slog.Logger
}

// NewMemoryStore returns a store whose slot initially holds raw (may be nil).
func NewMemoryStore(raw []byte) *MemoryStore {
	return &MemoryStore{raw: raw, logger: slog.Default()}
}

func (s *MemoryStore) Load() models.AnswerSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return decode(s.raw, s.logger)
}

func (s *MemoryStore) Save(answers models.AnswerSet) {
	raw, err := json.Marshal(answers)
	if err != nil {
		s.logger.Warn("draft not saved", "error", err)
		return
	}
	s.mu.Lock()
	s.raw = raw
	s.mu.Unlock()
}

func (s *MemoryStore) Clear() {
	s.mu.Lock()
	s.raw = nil
	s.mu.Unlock()
}

// Raw returns the serialized slot contents, nil when empty.
func (s *MemoryStore) Raw() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.raw
}
