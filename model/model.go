package model

import (
	"fmt"
	"strings"

	"novelarchives/span"
)

// ID is an opaque identifier of a glossary term.
type ID string

// IDGenerator hands out identifiers for terms that arrive without one.
type IDGenerator interface {
	NewID() ID
}

// Kind tells which variant a Token is.
type Kind int

const (
	KindPlainText Kind = iota
	KindSpace
	KindNewLine
	KindIgnore
	KindTerm
	KindRuby
	KindKanjiRuby
	KindAnnotation
	KindEmphasisMark
)

var kindNames = [...]string{
	KindPlainText:    "plain_text",
	KindSpace:        "space",
	KindNewLine:      "new_line",
	KindIgnore:       "ignore",
	KindTerm:         "term",
	KindRuby:         "ruby",
	KindKanjiRuby:    "kanji_ruby",
	KindAnnotation:   "annotation",
	KindEmphasisMark: "emphasis_mark",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(kindNames) {
		return nil, fmt.Errorf("model: unknown token kind %d", int(k))
	}
	return []byte(kindNames[k]), nil
}

// UnmarshalText decodes a kind name.
func (k *Kind) UnmarshalText(b []byte) error {
	for i, name := range kindNames {
		if name == string(b) {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("model: unknown token kind %q", b)
}

// Token is one unit of tokenized novel text. Span always holds the raw
// source the token was made from; the other fields depend on Kind:
//
//   - Term: Body is the matched term text, TermID its identifier.
//   - Ruby: Parts is the tokenized body, Ruby the tokenized reading.
//   - KanjiRuby: Body is the kanji run, Ruby the tokenized reading.
//   - Annotation: Body is the marked text, Description the tokenized description.
//   - EmphasisMark: Body is the emphasized text.
type Token struct {
	Kind        Kind      `json:"kind"`
	Span        span.Span `json:"span"`
	Body        span.Span `json:"body"`
	Parts       TokenText `json:"parts,omitempty"`
	Ruby        TokenText `json:"ruby,omitempty"`
	Description TokenText `json:"description,omitempty"`
	TermID      ID        `json:"term_id,omitempty"`
}

// String renders the token back to markup. Delimiters come out in their
// canonical spelling, so the result may differ from Span.Text.
func (t Token) String() string {
	var b strings.Builder
	t.writeTo(&b)
	return b.String()
}

func (t Token) writeTo(b *strings.Builder) {
	switch t.Kind {
	case KindRuby:
		b.WriteString("|")
		t.Parts.writeTo(b)
		b.WriteString("(")
		t.Ruby.writeTo(b)
		b.WriteString(")")
	case KindKanjiRuby:
		b.WriteString(t.Body.Text)
		b.WriteString("(")
		t.Ruby.writeTo(b)
		b.WriteString(")")
	case KindAnnotation:
		b.WriteString("|")
		b.WriteString(t.Body.Text)
		b.WriteString("$")
		t.Description.writeTo(b)
		b.WriteString("$")
	case KindEmphasisMark:
		b.WriteString("《《")
		b.WriteString(t.Body.Text)
		b.WriteString("》》")
	default:
		b.WriteString(t.Span.Text)
	}
}

// TokenText is an ordered sequence of tokens, used for whole documents as
// well as for nested ruby readings, ruby bodies and descriptions.
type TokenText []Token

// String renders the sequence back to canonical markup.
func (tt TokenText) String() string {
	var b strings.Builder
	tt.writeTo(&b)
	return b.String()
}

func (tt TokenText) writeTo(b *strings.Builder) {
	for _, t := range tt {
		t.writeTo(b)
	}
}

// Source concatenates the raw spans of the sequence.
func (tt TokenText) Source() string {
	var b strings.Builder
	for _, t := range tt {
		b.WriteString(t.Span.Text)
	}
	return b.String()
}

// Term is a glossary entry. Body, Ruby and Description are already
// tokenized and must not be modified once the term is built.
type Term struct {
	ID          ID        `json:"id"`
	Body        TokenText `json:"body"`
	Ruby        TokenText `json:"ruby,omitempty"`
	Description TokenText `json:"description,omitempty"`
}
