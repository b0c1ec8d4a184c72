package tokenize

import (
	"novelarchives/kanji"
	"novelarchives/model"
	"novelarchives/span"
)

// annotation matches |body$description$. The body is kept as raw text; the
// description is tokenized when the token is owned.
func annotation(_ *Context, s span.Span) (span.Span, Token, bool) {
	rest, ok := expect(s, kanji.IsDirective)
	if !ok {
		return s, Token{}, false
	}
	body, rest, ok := rest.TakeWhile1(kanji.IsAnnotationBody)
	if !ok {
		return s, Token{}, false
	}
	rest, ok = expect(rest, kanji.IsAnnotationStart)
	if !ok {
		return s, Token{}, false
	}
	description, rest, ok := rest.TakeWhile1(kanji.IsAnnotationDescription)
	if !ok {
		return s, Token{}, false
	}
	rest, ok = expect(rest, kanji.IsAnnotationEnd)
	if !ok {
		return s, Token{}, false
	}
	return rest, Token{
		Kind:        model.KindAnnotation,
		Span:        consumed(s, rest),
		Body:        body,
		Description: description,
	}, true
}
