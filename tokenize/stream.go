package tokenize

import (
	"iter"

	"novelarchives/model"
	"novelarchives/span"
)

// Stream pulls tokens from a span one at a time. Consecutive plain text
// tokens are merged, so callers never see two in a row. A Stream must not be
// used from more than one goroutine.
type Stream struct {
	ctx      *Context
	src      span.Span
	rest     span.Span
	buffered *Token
}

// Next returns the next token, or false once the input is used up.
func (st *Stream) Next() (Token, bool) {
	tok, ok := st.pull()
	if !ok || tok.Kind != model.KindPlainText {
		return tok, ok
	}
	for {
		next, ok := st.pull()
		if !ok {
			break
		}
		if next.Kind != model.KindPlainText {
			st.buffered = &next
			break
		}
		tok.Span = st.src.Join(tok.Span, next.Span)
	}
	return tok, true
}

func (st *Stream) pull() (Token, bool) {
	if st.buffered != nil {
		tok := *st.buffered
		st.buffered = nil
		return tok, true
	}
	if st.rest.Empty() {
		return Token{}, false
	}
	rest, tok := st.ctx.next(st.rest)
	st.rest = rest
	return tok, true
}

// Rest returns the input not yet consumed by the rules. A token buffered
// for plain text merging is not part of it.
func (st *Stream) Rest() span.Span {
	return st.rest
}

// All ranges over the remaining tokens.
func (st *Stream) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			tok, ok := st.Next()
			if !ok || !yield(tok) {
				return
			}
		}
	}
}
