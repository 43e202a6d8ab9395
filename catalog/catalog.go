// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/waterlily-survey/models"
)

var (
	ErrEmpty = errors.New("catalog has no questions")
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Catalog is the ordered list of questions shown by the form.
type Catalog []models.Question

type document struct {
	Questions []models.Question `yaml:"questions"`
}

// Default returns the built-in catalog (age, gender, bio).
func Default() Catalog {
	c, err := Load(bytes.NewReader(defaultCatalog))
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded catalog is invalid: %v", err))
	}
	return c
}

// Load parses a YAML (or JSON) catalog document and validates it.
func Load(r io.Reader) (Catalog, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}

	c := Catalog(doc.Questions)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFile reads a catalog from path.
func LoadFile(path string) (Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %s: %w", path, err)
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Validate checks ids are unique and options are present iff type is select.
func (c Catalog) Validate() error {
	if len(c) == 0 {
		return ErrEmpty
	}

	seen := make(map[string]bool, len(c))
	for i, q := range c {
		id := q.ID
		if strings.TrimSpace(id) == "" {
			return fmt.Errorf("catalog: question %d has an empty id", i)
		}
		if id == models.FieldGenderOther {
			return fmt.Errorf("catalog: question id %q is reserved", id)
		}
		if seen[id] {
			return fmt.Errorf("catalog: duplicate question id %q", id)
		}
		seen[id] = true

		if !q.Type.Valid() {
			return fmt.Errorf("catalog: question %q has unknown type %q", id, q.Type)
		}
		if q.Type == models.TypeSelect && len(q.Options) == 0 {
			return fmt.Errorf("catalog: select question %q has no options", id)
		}
		if q.Type != models.TypeSelect && len(q.Options) > 0 {
			return fmt.Errorf("catalog: question %q has options but type %q", id, q.Type)
		}
	}

	return nil
}

// Lookup finds a question by id.
func (c Catalog) Lookup(id string) (models.Question, bool) {
	for _, q := range c {
		if q.ID == id {
			return q, true
		}
	}
	return models.Question{}, false
}

// Len returns the number of questions.
func (c Catalog) Len() int {
	return len(c)
}
