package tokenize

import (
	"novelarchives/kanji"
	"novelarchives/model"
	"novelarchives/span"
)

// term matches the longest glossary term at the start of s. It is only
// attempted when some term begins with the current rune.
func term(c *Context, s span.Span) (span.Span, Token, bool) {
	if c.quotedTerms {
		return quotedTerm(c, s)
	}
	first, _ := s.First()
	if !c.index.Has(first) {
		return s, Token{}, false
	}
	t, matched, rest, ok := c.index.Lookup(s)
	if !ok {
		return s, Token{}, false
	}
	return rest, Token{Kind: model.KindTerm, Span: matched, Body: matched, TermID: t.ID}, true
}

// quotedTerm matches a term written between term quotes. A known term
// followed by anything but the closing quote is not a term.
func quotedTerm(c *Context, s span.Span) (span.Span, Token, bool) {
	rest, ok := expect(s, kanji.IsTermStart)
	if !ok {
		return s, Token{}, false
	}
	first, _ := rest.First()
	if !c.index.Has(first) {
		return s, Token{}, false
	}
	t, matched, rest, ok := c.index.Lookup(rest)
	if !ok {
		return s, Token{}, false
	}
	rest, ok = expect(rest, kanji.IsTermEnd)
	if !ok {
		return s, Token{}, false
	}
	return rest, Token{Kind: model.KindTerm, Span: consumed(s, rest), Body: matched, TermID: t.ID}, true
}
