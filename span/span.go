// Package span provides position-annotated views over novel text.
package span

import (
	"fmt"
	"unicode/utf8"
)

// Position locates a byte in the whole input. Line starts at 1, Offset at 0.
type Position struct {
	Line   int `json:"line"`
	Offset int `json:"offset"`
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Offset)
}

// Span is a contiguous substring of the input together with the position of
// its first byte. Spans are values; advancing produces a new Span.
type Span struct {
	Text     string   `json:"text"`
	Position Position `json:"position"`
}

// New returns a Span covering the whole of text at line 1, offset 0.
func New(text string) Span {
	return Span{Text: text, Position: Position{Line: 1}}
}

// Empty reports whether the span has no text left.
func (s Span) Empty() bool {
	return len(s.Text) == 0
}

// End returns the position just after the last byte of s.
func (s Span) End() Position {
	_, rest := s.Slice(len(s.Text))
	return rest.Position
}

// First decodes the first rune of s. It returns utf8.RuneError and 0 on an
// empty span.
func (s Span) First() (rune, int) {
	if s.Empty() {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(s.Text)
}

// Slice splits s after n bytes. The rest starts n bytes later and as many
// lines later as there are line breaks in the head; "\r\n" counts once.
// n is clamped to the span.
func (s Span) Slice(n int) (head, rest Span) {
	if n < 0 {
		n = 0
	}
	if n > len(s.Text) {
		n = len(s.Text)
	}
	head = Span{Text: s.Text[:n], Position: s.Position}
	rest = Span{
		Text: s.Text[n:],
		Position: Position{
			Line:   s.Position.Line + countLines(head.Text),
			Offset: s.Position.Offset + n,
		},
	}
	return head, rest
}

// TakeRune splits off the first rune of s.
func (s Span) TakeRune() (r rune, head, rest Span, ok bool) {
	if s.Empty() {
		return utf8.RuneError, Span{Position: s.Position}, s, false
	}
	r, size := utf8.DecodeRuneInString(s.Text)
	head, rest = s.Slice(size)
	return r, head, rest, true
}

// TakeWhile returns the longest prefix of s whose runes all satisfy pred.
// The prefix may be empty.
func (s Span) TakeWhile(pred func(rune) bool) (taken, rest Span) {
	n := 0
	for n < len(s.Text) {
		r, size := utf8.DecodeRuneInString(s.Text[n:])
		if !pred(r) {
			break
		}
		n += size
	}
	return s.Slice(n)
}

// TakeWhile1 is TakeWhile that fails when no rune matches.
func (s Span) TakeWhile1(pred func(rune) bool) (taken, rest Span, ok bool) {
	taken, rest = s.TakeWhile(pred)
	if taken.Empty() {
		return taken, s, false
	}
	return taken, rest, true
}

// Join returns the sub-span of s running from the start of a to the end of
// b. Both must be sub-spans of s with a before b.
func (s Span) Join(a, b Span) Span {
	from := a.Position.Offset - s.Position.Offset
	to := b.Position.Offset + len(b.Text) - s.Position.Offset
	return Span{Text: s.Text[from:to], Position: a.Position}
}

func countLines(text string) int {
	lines := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			lines++
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				continue
			}
			lines++
		}
	}
	return lines
}
