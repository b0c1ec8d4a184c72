package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"novelarchives/analyze"
	"novelarchives/dictionary"
	"novelarchives/glossary"
	"novelarchives/ingest"
	"novelarchives/logger"
	"novelarchives/tokenize"
)

// InputFlags are shared by the commands that read novel text.
type InputFlags struct {
	Glossary    string   `name:"glossary" short:"g" env:"NOVEL_GLOSSARY" type:"existingfile" help:"Glossary JSON file"`
	QuotedTerms bool     `name:"quoted-terms" help:"Only match glossary terms written between quotes"`
	Files       []string `arg:"" optional:"" help:"Input files (stdin when none)"`
}

func (f *InputFlags) documents(a *app) ([]ingest.Document, error) {
	if len(f.Files) == 0 {
		doc, err := ingest.FromReader("stdin", a.in)
		if err != nil {
			return nil, err
		}
		return []ingest.Document{doc}, nil
	}
	docs := make([]ingest.Document, 0, len(f.Files))
	for _, path := range f.Files {
		doc, err := ingest.FromFile(path)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func (f *InputFlags) options(a *app) []tokenize.Option {
	opts := []tokenize.Option{tokenize.WithLogger(a.log)}
	if f.QuotedTerms {
		opts = append(opts, tokenize.WithQuotedTerms())
	}
	return opts
}

func (f *InputFlags) tokenizer(a *app) (*tokenize.Context, error) {
	var idx *dictionary.Index
	if f.Glossary != "" {
		src, err := glossary.Open(f.Glossary, glossary.WithLogger(a.log))
		if err != nil {
			return nil, err
		}
		idx = src.Index()
	}
	return tokenize.NewContext(idx, f.options(a)...), nil
}

// load reads the input documents and tokenizes them in the background.
func (f *InputFlags) load(ctx context.Context, a *app) ([]tokenize.Tokenized, error) {
	docs, err := f.documents(a)
	if err != nil {
		return nil, err
	}
	c, err := f.tokenizer(a)
	if err != nil {
		return nil, err
	}
	return tokenizeAll(ctx, c, docs), nil
}

func tokenizeAll(ctx context.Context, c *tokenize.Context, docs []ingest.Document) []tokenize.Tokenized {
	in := make(chan ingest.Document, len(docs))
	for _, doc := range docs {
		in <- doc
	}
	close(in)
	out := make([]tokenize.Tokenized, 0, len(docs))
	for res := range tokenize.StartTokenizer(ctx, c, in) {
		out = append(out, res)
	}
	return out
}

// TokenizeCmd prints the tokens of each input.
type TokenizeCmd struct {
	InputFlags `embed:""`

	Format  string `name:"format" short:"f" default:"json" enum:"json,text" help:"Output format (json, text)"`
	DumpDir string `name:"dump-dir" type:"path" help:"Also write each result to DIR/<document id>.json"`
}

func (t *TokenizeCmd) Run(a *app) error {
	ctx := context.Background()
	if t.Format == "text" {
		return t.runText(ctx, a)
	}

	results, err := t.load(ctx, a)
	if err != nil {
		return err
	}
	if t.DumpDir != "" {
		if err := logger.InitLogs(t.DumpDir); err != nil {
			return fmt.Errorf("dump dir: %w", err)
		}
	}
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	for _, res := range results {
		if err := enc.Encode(res); err != nil {
			return err
		}
		if t.DumpDir != "" {
			if err := logger.LogJSON(t.DumpDir, res.Document.ID, res); err != nil {
				return err
			}
		}
		a.log.Debug("document tokenized", "document", res.Document.Name, "id", res.Document.ID, "tokens", len(res.Tokens))
	}
	return nil
}

// runText streams one line per top level token.
func (t *TokenizeCmd) runText(ctx context.Context, a *app) error {
	docs, err := t.documents(a)
	if err != nil {
		return err
	}
	c, err := t.tokenizer(a)
	if err != nil {
		return err
	}
	for _, doc := range docs {
		fmt.Fprintf(a.out, "# %s\n", doc.Name)
		toks, errs := tokenize.TokenizeStream(ctx, c, doc.Text)
		for tok := range toks {
			fmt.Fprintf(a.out, "%s\t%s\t%q\n", tok.Span.Position, tok.Kind, tok.Span.Text)
		}
		if err := <-errs; err != nil {
			return err
		}
	}
	return nil
}

// RenderCmd prints each input with its markup in canonical form.
type RenderCmd struct {
	InputFlags `embed:""`
}

func (r *RenderCmd) Run(a *app) error {
	results, err := r.load(context.Background(), a)
	if err != nil {
		return err
	}
	for _, res := range results {
		fmt.Fprint(a.out, res.Tokens.String())
	}
	return nil
}

// CheckCmd reports issues found in each input.
type CheckCmd struct {
	InputFlags `embed:""`
}

// errIssues makes the command exit non-zero when issues were reported.
var errIssues = errors.New("issues found")

func (c *CheckCmd) Run(a *app) error {
	results, err := c.load(context.Background(), a)
	if err != nil {
		return err
	}
	n := 0
	for _, res := range results {
		for _, issue := range analyze.Check(res.Tokens) {
			fmt.Fprintf(a.out, "%s:%s: %s %q\n", res.Document.Name, issue.Position, issue.Kind, issue.Text)
			n++
		}
	}
	if n > 0 {
		return fmt.Errorf("%w: %d", errIssues, n)
	}
	return nil
}

// SuggestCmd proposes ruby for kanji in plain text.
type SuggestCmd struct {
	InputFlags `embed:""`

	Dict string `name:"dict" default:"ipa" env:"NOVEL_DICT" enum:"ipa,uni" help:"Morphological dictionary (ipa, uni)"`
}

func (s *SuggestCmd) Run(a *app) error {
	an, err := analyze.New(s.Dict)
	if err != nil {
		return err
	}
	results, err := s.load(context.Background(), a)
	if err != nil {
		return err
	}
	for _, res := range results {
		for _, sg := range an.Suggest(res.Tokens) {
			fmt.Fprintf(a.out, "%s:%s: %s -> %s\n", res.Document.Name, sg.Position, sg.Surface, sg.Markup)
		}
	}
	return nil
}

// WatchCmd keeps the inputs tokenized against the current glossary and
// prints a summary after every glossary change.
type WatchCmd struct {
	InputFlags `embed:""`
}

func (w *WatchCmd) Run(a *app) error {
	if w.Glossary == "" {
		return errors.New("watch: --glossary is required")
	}
	docs, err := w.documents(a)
	if err != nil {
		return err
	}
	src, err := glossary.Open(w.Glossary, glossary.WithLogger(a.log))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	enc := json.NewEncoder(a.out)
	report := func(idx *dictionary.Index) {
		c := tokenize.NewContext(idx, w.options(a)...)
		for _, res := range tokenizeAll(ctx, c, docs) {
			err := enc.Encode(struct {
				Document string          `json:"document"`
				Digest   string          `json:"glossary_digest"`
				Summary  analyze.Summary `json:"summary"`
			}{res.Document.Name, idx.Digest(), analyze.Summarize(res.Tokens)})
			if err != nil {
				a.log.Error("write summary", "document", res.Document.Name, "err", err)
			}
		}
	}
	report(src.Index())
	a.log.Info("watching glossary", "path", src.Path())
	return src.Watch(ctx, report)
}

// VersionCmd prints version information
type VersionCmd struct{}

func (v *VersionCmd) Run(a *app) error {
	fmt.Fprintf(a.out, "novelarchives %s\n", version)
	return nil
}
