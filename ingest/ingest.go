package ingest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// ErrEmpty is returned for input that holds nothing but whitespace.
var ErrEmpty = errors.New("ingest: empty document")

// ErrInvalidUTF8 is returned for input that is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("ingest: document is not valid UTF-8")

var bom = []byte{0xEF, 0xBB, 0xBF}

// Document represents an ingested piece of novel text and its metadata.
type Document struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// FromReader reads a whole document from r. A leading byte order mark is
// dropped; the rest of the text is kept byte for byte so token positions
// match the source.
func FromReader(name string, r io.Reader) (Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Document{}, fmt.Errorf("ingest %s: %w", name, err)
	}
	data = bytes.TrimPrefix(data, bom)
	if len(bytes.TrimSpace(data)) == 0 {
		return Document{}, fmt.Errorf("ingest %s: %w", name, ErrEmpty)
	}
	if !utf8.Valid(data) {
		return Document{}, fmt.Errorf("ingest %s: %w", name, ErrInvalidUTF8)
	}
	return Document{
		ID:        uuid.NewString(),
		Name:      name,
		Text:      string(data),
		CreatedAt: time.Now().UTC(),
	}, nil
}

// FromFile ingests the file at path.
func FromFile(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, err
	}
	defer f.Close()
	return FromReader(filepath.Base(path), f)
}
