// Package glossary loads the term list of a novel and keeps a term index
// built from it.
package glossary

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"novelarchives/model"
	"novelarchives/tokenize"
)

var (
	// ErrDuplicateID is returned when two entries carry the same ID.
	ErrDuplicateID = errors.New("glossary: duplicate term id")
	// ErrEmptyBody is returned for an entry without body text.
	ErrEmptyBody = errors.New("glossary: empty term body")
)

// Entry is a glossary term as written in the glossary file. Ruby and
// Description are markup and are tokenized like novel text.
type Entry struct {
	ID          string `json:"id,omitempty"`
	Body        string `json:"body"`
	Ruby        string `json:"ruby,omitempty"`
	Description string `json:"description,omitempty"`
}

// UUIDGenerator issues random UUIDs as term IDs.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() model.ID {
	return model.ID(uuid.NewString())
}

// Parse decodes glossary entries from r. The document is either a JSON array
// of entries or an object with a "terms" array.
func Parse(r io.Reader) ([]Entry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("glossary: read: %w", err)
	}
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var entries []Entry
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("glossary: decode: %w", err)
		}
		return entries, nil
	}
	var doc struct {
		Terms []Entry `json:"terms"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("glossary: decode: %w", err)
	}
	return doc.Terms, nil
}

// Load reads the glossary file at path.
func Load(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	entries, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return entries, nil
}

// Build turns entries into terms. Entries without an ID get one from gen,
// or from a UUIDGenerator when gen is nil. Term text is tokenized without a
// term index, so terms never contain other terms.
func Build(entries []Entry, gen model.IDGenerator) ([]model.Term, error) {
	if gen == nil {
		gen = UUIDGenerator{}
	}
	c := tokenize.NewContext(nil)
	seen := make(map[model.ID]int, len(entries))
	terms := make([]model.Term, 0, len(entries))
	for i, e := range entries {
		if e.Body == "" {
			return nil, fmt.Errorf("entry %d: %w", i, ErrEmptyBody)
		}
		id := model.ID(e.ID)
		if id == "" {
			id = gen.NewID()
		}
		if j, ok := seen[id]; ok {
			return nil, fmt.Errorf("entries %d and %d: %w %q", j, i, ErrDuplicateID, id)
		}
		seen[id] = i

		t := model.Term{ID: id, Body: c.Tokenize(e.Body)}
		if e.Ruby != "" {
			t.Ruby = c.Tokenize(e.Ruby)
		}
		if e.Description != "" {
			t.Description = c.Tokenize(e.Description)
		}
		terms = append(terms, t)
	}
	return terms, nil
}
