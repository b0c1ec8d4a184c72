package tokenize

import (
	"context"

	"novelarchives/ingest"
	"novelarchives/model"
	"novelarchives/span"
)

// Tokenized pairs an ingest.Document with the tokens produced for it.
type Tokenized struct {
	Document ingest.Document `json:"document"`
	Tokens   model.TokenText `json:"tokens"`
}

// TokenizeStream streams the tokens of input to a channel. This is useful for
// building a concurrent pipeline. The error channel only ever carries the
// context error.
func TokenizeStream(ctx context.Context, c *Context, input string) (<-chan model.Token, <-chan error) {
	out := make(chan model.Token, 8)
	errs := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errs)
		st := c.Stream(span.New(input))
		for tok := range st.All() {
			select {
			case <-ctx.Done():
				errs <- ctx.Err()
				return
			case out <- c.Own(tok):
			}
		}
	}()
	return out, errs
}

// StartTokenizer launches a goroutine that consumes documents from in,
// tokenizes them and publishes the results on the returned channel. The
// channel is closed when in is closed or ctx is done.
func StartTokenizer(ctx context.Context, c *Context, in <-chan ingest.Document) <-chan Tokenized {
	out := make(chan Tokenized, cap(in))
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case doc, ok := <-in:
				if !ok {
					return
				}
				res := Tokenized{Document: doc, Tokens: c.Tokenize(doc.Text)}
				select {
				case <-ctx.Done():
					return
				case out <- res:
				}
			}
		}
	}()
	return out
}
