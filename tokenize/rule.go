package tokenize

import (
	"novelarchives/kanji"
	"novelarchives/span"
)

// rule tries to recognize one token at the start of s. On success it
// returns the remaining input and the token; otherwise ok is false and the
// next rule is tried.
type rule func(c *Context, s span.Span) (rest span.Span, tok Token, ok bool)

// rules in priority order. The first match wins; nothing is compared.
var rules = []rule{
	term,
	annotation,
	kanjiRuby,
	directiveRuby,
	bareDirective,
	emphasisMark,
	whitespace,
	newline,
	plainText,
}

// Readings longer than this many characters per body character are taken
// for a parenthetical aside, not a reading. Bodies are capped likewise.
const (
	maxRubyBodyChars    = 10
	maxRubyCharsPerBody = 10
)

// expect consumes one rune of s if it satisfies pred.
func expect(s span.Span, pred func(rune) bool) (span.Span, bool) {
	r, _, rest, ok := s.TakeRune()
	if !ok || !pred(r) {
		return s, false
	}
	return rest, true
}

// consumed returns the part of s that lies before rest.
func consumed(s, rest span.Span) span.Span {
	head, _ := s.Slice(len(s.Text) - len(rest.Text))
	return head
}

// reading recognizes a ruby-delimited reading and returns what lies between
// the delimiters.
func reading(s span.Span) (inner, rest span.Span, ok bool) {
	rest, ok = expect(s, kanji.IsRubyStart)
	if !ok {
		return span.Span{}, s, false
	}
	inner, rest, ok = rest.TakeWhile1(kanji.IsRubyReading)
	if !ok {
		return span.Span{}, s, false
	}
	rest, ok = expect(rest, kanji.IsRubyEnd)
	if !ok {
		return span.Span{}, s, false
	}
	return inner, rest, true
}

func withinRubyBound(body, ruby string) bool {
	b := kanji.CountChars(body)
	return b <= maxRubyBodyChars && kanji.CountChars(ruby) <= maxRubyCharsPerBody*b
}
