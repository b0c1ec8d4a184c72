package tokenize

import (
	"novelarchives/kanji"
	"novelarchives/model"
	"novelarchives/span"
)

// kanjiRuby matches a kanji run with a reading attached, as in 漢字(かんじ).
// A kanji run without a usable reading still matches, as plain text, and
// whatever follows it is tokenized on its own.
func kanjiRuby(c *Context, s span.Span) (span.Span, Token, bool) {
	body, rest, ok := s.TakeWhile1(kanji.IsKanji)
	if !ok {
		return s, Token{}, false
	}
	plain := Token{Kind: model.KindPlainText, Span: body}

	ruby, after, ok := reading(rest)
	if !ok {
		return rest, plain, true
	}
	if !withinRubyBound(body.Text, ruby.Text) {
		c.log.Debug("kanji ruby exceeds size bound",
			"position", body.Position.String(),
			"body_chars", kanji.CountChars(body.Text),
			"ruby_chars", kanji.CountChars(ruby.Text))
		return rest, plain, true
	}
	return after, Token{
		Kind: model.KindKanjiRuby,
		Span: consumed(s, after),
		Body: body,
		Ruby: ruby,
	}, true
}

// directiveRuby matches |body(reading). An empty body leaves the marker as
// an Ignore token; a body or reading over the size bound leaves the marker
// as plain text.
func directiveRuby(c *Context, s span.Span) (span.Span, Token, bool) {
	r, marker, afterMarker, ok := s.TakeRune()
	if !ok || !kanji.IsDirective(r) {
		return s, Token{}, false
	}
	body, rest := afterMarker.TakeWhile(kanji.IsRubyBody)
	ruby, after, ok := reading(rest)
	if !ok {
		return s, Token{}, false
	}
	if body.Empty() {
		return afterMarker, Token{Kind: model.KindIgnore, Span: marker}, true
	}
	if !withinRubyBound(body.Text, ruby.Text) {
		c.log.Debug("directive ruby exceeds size bound",
			"position", marker.Position.String(),
			"body_chars", kanji.CountChars(body.Text),
			"ruby_chars", kanji.CountChars(ruby.Text))
		return afterMarker, Token{Kind: model.KindPlainText, Span: marker}, true
	}
	return after, Token{
		Kind: model.KindRuby,
		Span: consumed(s, after),
		Body: body,
		Ruby: ruby,
	}, true
}

// bareDirective consumes a directive marker that opened nothing.
func bareDirective(_ *Context, s span.Span) (span.Span, Token, bool) {
	r, marker, rest, ok := s.TakeRune()
	if !ok || !kanji.IsDirective(r) {
		return s, Token{}, false
	}
	return rest, Token{Kind: model.KindIgnore, Span: marker}, true
}
