package analyze

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome-dict/uni"
	"github.com/ikawaha/kagome/v2/tokenizer"

	"novelarchives/kanji"
	"novelarchives/model"
	"novelarchives/span"
	"novelarchives/tokenize"
)

var plain = tokenize.NewContext(nil)

// ErrUnknownDict is returned by New for a dictionary name it does not know.
var ErrUnknownDict = errors.New("analyze: unknown dictionary")

// Analyzer proposes readings for kanji written without ruby, using kagome
// morphological analysis. It is safe for concurrent use.
type Analyzer struct {
	t *tokenizer.Tokenizer
}

// New returns an Analyzer over the named kagome dictionary, "ipa" (the
// default when name is empty) or "uni".
func New(name string) (*Analyzer, error) {
	var (
		t   *tokenizer.Tokenizer
		err error
	)
	switch name {
	case "", "ipa":
		t, err = tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	case "uni":
		t, err = tokenizer.New(uni.Dict(), tokenizer.OmitBosEos())
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownDict, name)
	}
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}
	return &Analyzer{t: t}, nil
}

// Suggestion is a proposed reading for a kanji run found in plain text.
// Markup is the ruby the author could write in place of Surface.
type Suggestion struct {
	Position span.Position `json:"position"`
	Surface  string        `json:"surface"`
	Reading  string        `json:"reading"`
	Markup   string        `json:"markup"`
}

// Suggest runs the analyzer over the top level plain text of text and
// returns a suggestion for every morpheme that contains kanji and has a
// known reading. Kana shared by the surface and the reading at either end
// (okurigana and honorific prefixes) is left outside the ruby.
func (a *Analyzer) Suggest(text model.TokenText) []Suggestion {
	var out []Suggestion
	for _, tok := range text {
		if tok.Kind != model.KindPlainText {
			continue
		}
		out = append(out, a.suggest(tok.Span)...)
	}
	return out
}

func (a *Analyzer) suggest(s span.Span) []Suggestion {
	var out []Suggestion
	cursor := 0
	for _, kt := range a.t.Tokenize(s.Text) {
		if kt.Class == tokenizer.DUMMY || kt.Surface == "" {
			continue
		}
		i := strings.Index(s.Text[cursor:], kt.Surface)
		if i < 0 {
			continue
		}
		start := cursor + i
		cursor = start + len(kt.Surface)

		if !strings.ContainsFunc(kt.Surface, kanji.IsKanji) {
			continue
		}
		reading, ok := kt.Reading()
		if !ok || reading == "" || reading == "*" {
			continue
		}
		surface, hira, lead := trimKana(kt.Surface, katakanaToHiragana(reading))
		if surface == "" || hira == "" {
			continue
		}
		_, at := s.Slice(start + lead)
		out = append(out, Suggestion{
			Position: at.Position,
			Surface:  surface,
			Reading:  hira,
			Markup:   markup(surface, hira),
		})
	}
	return out
}

// trimKana strips the kana that surface and reading share at both ends and
// returns what is left, together with the byte length cut from the front of
// surface.
func trimKana(surface, reading string) (string, string, int) {
	s, r := []rune(surface), []rune(reading)
	lead := 0
	for len(s) > 0 && len(r) > 0 && !kanji.IsKanji(s[0]) && hiragana(s[0]) == r[0] {
		lead += len(string(s[0]))
		s, r = s[1:], r[1:]
	}
	for len(s) > 0 && len(r) > 0 && !kanji.IsKanji(s[len(s)-1]) && hiragana(s[len(s)-1]) == r[len(r)-1] {
		s, r = s[:len(s)-1], r[:len(r)-1]
	}
	return string(s), string(r), lead
}

// markup writes surface with its reading as kanji ruby when the surface is
// a pure kanji run the tokenizer will accept, and as directive ruby
// otherwise.
func markup(surface, reading string) string {
	short := surface + "(" + reading + ")"
	if text := plain.Tokenize(short); len(text) == 1 && text[0].Kind == model.KindKanjiRuby {
		return short
	}
	return "|" + short
}

func katakanaToHiragana(s string) string {
	return strings.Map(hiragana, s)
}

func hiragana(r rune) rune {
	if r >= 0x30A1 && r <= 0x30F6 {
		return r - 0x60
	}
	return r
}
