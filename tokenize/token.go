package tokenize

import (
	"novelarchives/model"
	"novelarchives/span"
)

// Token is what a rule produces: spans into the input, not yet tokenized
// below the top level. Context.Own turns it into a model.Token.
type Token struct {
	Kind model.Kind
	// Span is the whole consumed input.
	Span span.Span
	// Body is the term text, the ruby body, the kanji run, the annotated
	// text or the emphasized text.
	Body span.Span
	// Ruby is the reading between the ruby delimiters.
	Ruby span.Span
	// Description is the annotation text between the annotation markers.
	Description span.Span
	TermID      model.ID
}
