// Package analyze reports on tokenized novel text: what it contains, what
// looks wrong in it and where readings could be added.
package analyze

import (
	"errors"
	"unicode/utf8"

	"novelarchives/kanji"
	"novelarchives/model"
	"novelarchives/span"
)

// Summary counts what a token sequence contains.
type Summary struct {
	Tokens int                `json:"tokens"`
	Kinds  map[model.Kind]int `json:"kinds"`
	Terms  map[model.ID]int   `json:"terms,omitempty"`
	Chars  int                `json:"chars"`
	Lines  int                `json:"lines"`
}

// Summarize counts the top level tokens of text by kind, and the terms used
// anywhere in it including readings and descriptions.
func Summarize(text model.TokenText) Summary {
	s := Summary{
		Tokens: len(text),
		Kinds:  make(map[model.Kind]int),
		Terms:  make(map[model.ID]int),
		Chars:  kanji.CountChars(text.Source()),
	}
	if len(text) > 0 {
		s.Lines = 1
	}
	for _, tok := range text {
		s.Kinds[tok.Kind]++
		if tok.Kind == model.KindNewLine {
			s.Lines++
		}
	}
	walk(text, func(tok model.Token) {
		if tok.Kind == model.KindTerm {
			s.Terms[tok.TermID]++
		}
	})
	return s
}

// IssueKind names a class of problem found by Check.
type IssueKind string

const (
	// IssueDigitOverflow marks a numeral too long to be read as a number.
	IssueDigitOverflow IssueKind = "digit_overflow"
	// IssueStrayDirective marks a directive marker that opened nothing.
	IssueStrayDirective IssueKind = "stray_directive"
)

// Issue is a problem found in tokenized text.
type Issue struct {
	Kind     IssueKind     `json:"kind"`
	Position span.Position `json:"position"`
	Text     string        `json:"text"`
}

// Check looks for numerals that overflow uint64 in plain text and for
// directive markers left as Ignore tokens. Nested text is checked too.
// Issues come in source order.
func Check(text model.TokenText) []Issue {
	var issues []Issue
	walk(text, func(tok model.Token) {
		switch tok.Kind {
		case model.KindIgnore:
			issues = append(issues, Issue{
				Kind:     IssueStrayDirective,
				Position: tok.Span.Position,
				Text:     tok.Span.Text,
			})
		case model.KindPlainText:
			issues = append(issues, digitIssues(tok.Span)...)
		}
	})
	return issues
}

func digitIssues(s span.Span) []Issue {
	var issues []Issue
	text := s.Text
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !kanji.IsDigit(r) {
			i += size
			continue
		}
		_, n, err := kanji.FoldDigits(text[i:])
		if errors.Is(err, kanji.ErrDigitOverflow) {
			_, at := s.Slice(i)
			issues = append(issues, Issue{
				Kind:     IssueDigitOverflow,
				Position: at.Position,
				Text:     text[i : i+n],
			})
		}
		i += n
	}
	return issues
}

// walk calls fn for every token in text, depth first, visiting a token
// before the tokens nested in it.
func walk(text model.TokenText, fn func(model.Token)) {
	for _, tok := range text {
		fn(tok)
		walk(tok.Parts, fn)
		walk(tok.Ruby, fn)
		walk(tok.Description, fn)
	}
}
