package tokenize

import (
	"log/slog"
	"strings"

	"novelarchives/dictionary"
	"novelarchives/model"
	"novelarchives/span"
)

// Context carries what the rules need besides the input: the term index and
// the syntax options. It is read-only and may be shared between goroutines.
type Context struct {
	index       *dictionary.Index
	quotedTerms bool
	log         *slog.Logger
}

// Option configures a Context.
type Option func(*Context)

// WithQuotedTerms requires glossary terms to be written between term quotes,
// as in "穂積". The quotes become part of the term token's span.
func WithQuotedTerms() Option {
	return func(c *Context) { c.quotedTerms = true }
}

// WithLogger sets the logger used for rule diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *Context) { c.log = l }
}

// NewContext returns a Context over index. A nil index disables terms.
func NewContext(index *dictionary.Index, opts ...Option) *Context {
	c := &Context{index: index}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = slog.Default()
	}
	return c
}

// Index returns the term index of c, possibly nil.
func (c *Context) Index() *dictionary.Index {
	return c.index
}

// next runs the rules against s, which must not be empty. The plain text
// rule always matches, so next always makes progress.
func (c *Context) next(s span.Span) (span.Span, Token) {
	for _, r := range rules {
		if rest, tok, ok := r(c, s); ok {
			return rest, tok
		}
	}
	// unreachable: plainText accepts any non-empty input
	rest, tok, _ := plainText(c, s)
	return rest, tok
}

// Stream returns a token stream over s.
func (c *Context) Stream(s span.Span) *Stream {
	return &Stream{ctx: c, src: s, rest: s}
}

// Text drains a stream over s into an owned token sequence.
func (c *Context) Text(s span.Span) model.TokenText {
	st := c.Stream(s)
	var out model.TokenText
	for {
		tok, ok := st.Next()
		if !ok {
			return out
		}
		out = append(out, c.Own(tok))
	}
}

// Tokenize tokenizes a whole input.
func (c *Context) Tokenize(input string) model.TokenText {
	return c.Text(span.New(input))
}

// Own converts tok into a model.Token, tokenizing nested readings, ruby
// bodies and descriptions. The text is copied so the result does not keep
// the input alive.
func (c *Context) Own(tok Token) model.Token {
	out := model.Token{
		Kind:   tok.Kind,
		Span:   clone(tok.Span),
		TermID: tok.TermID,
	}
	switch tok.Kind {
	case model.KindTerm, model.KindEmphasisMark:
		out.Body = clone(tok.Body)
	case model.KindRuby:
		out.Body = clone(tok.Body)
		out.Parts = c.Text(tok.Body)
		out.Ruby = c.Text(tok.Ruby)
	case model.KindKanjiRuby:
		out.Body = clone(tok.Body)
		out.Ruby = c.Text(tok.Ruby)
	case model.KindAnnotation:
		out.Body = clone(tok.Body)
		out.Description = c.Text(tok.Description)
	}
	return out
}

func clone(s span.Span) span.Span {
	return span.Span{Text: strings.Clone(s.Text), Position: s.Position}
}
