package tokenize

import (
	"strings"
	"unicode/utf8"

	"novelarchives/kanji"
	"novelarchives/model"
	"novelarchives/span"
)

// emphasisMark matches 《《body》》. Opener and closer are both doubled and
// the closer must match the opener's style.
func emphasisMark(_ *Context, s span.Span) (span.Span, Token, bool) {
	open, _, rest, ok := s.TakeRune()
	if !ok || !kanji.IsEmphasisStart(open) {
		return s, Token{}, false
	}
	second, _, rest, ok := rest.TakeRune()
	if !ok || second != open {
		return s, Token{}, false
	}
	closer := string([]rune{kanji.EmphasisEnd(open), kanji.EmphasisEnd(open)})

	text := rest.Text
	for n := 0; n < len(text); {
		if strings.HasPrefix(text[n:], closer) {
			if n == 0 {
				return s, Token{}, false
			}
			body, after := rest.Slice(n)
			_, after = after.Slice(len(closer))
			return after, Token{Kind: model.KindEmphasisMark, Span: consumed(s, after), Body: body}, true
		}
		r, size := utf8.DecodeRuneInString(text[n:])
		if kanji.IsNewline(r) {
			return s, Token{}, false
		}
		n += size
	}
	return s, Token{}, false
}

func whitespace(_ *Context, s span.Span) (span.Span, Token, bool) {
	taken, rest, ok := s.TakeWhile1(kanji.IsSpace)
	if !ok {
		return s, Token{}, false
	}
	return rest, Token{Kind: model.KindSpace, Span: taken}, true
}

// newline matches "\n", "\r\n" or a lone "\r" as one line break.
func newline(_ *Context, s span.Span) (span.Span, Token, bool) {
	n := 0
	switch {
	case strings.HasPrefix(s.Text, "\r\n"):
		n = 2
	case strings.HasPrefix(s.Text, "\n"), strings.HasPrefix(s.Text, "\r"):
		n = 1
	default:
		return s, Token{}, false
	}
	taken, rest := s.Slice(n)
	return rest, Token{Kind: model.KindNewLine, Span: taken}, true
}

// plainText consumes exactly one rune. Runs are merged by the Stream. Runes
// that are not plain text eligible also end up here once every structural
// rule has failed on them.
func plainText(_ *Context, s span.Span) (span.Span, Token, bool) {
	_, taken, rest, ok := s.TakeRune()
	if !ok {
		return s, Token{}, false
	}
	return rest, Token{Kind: model.KindPlainText, Span: taken}, true
}
