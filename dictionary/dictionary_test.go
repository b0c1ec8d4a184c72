package dictionary

import (
	"testing"

	"github.com/stretchr/testify/require"

	"novelarchives/model"
	"novelarchives/span"
)

func newTerm(id, body string) model.Term {
	return model.Term{
		ID:   model.ID(id),
		Body: model.TokenText{{Kind: model.KindPlainText, Span: span.New(body)}},
	}
}

func TestLookupLongestFirst(t *testing.T) {
	idx := Build([]model.Term{
		newTerm("term_id2", "穂積"),
		newTerm("term_id1", "穂積しょう"),
	})
	require.Equal(t, 2, idx.Len())

	term, matched, rest, ok := idx.Lookup(span.New("穂積しょうです"))
	require.True(t, ok)
	require.Equal(t, model.ID("term_id1"), term.ID)
	require.Equal(t, "穂積しょう", matched.Text)
	require.Equal(t, "です", rest.Text)
	require.Equal(t, span.Position{Line: 1, Offset: 15}, rest.Position)

	term, matched, _, ok = idx.Lookup(span.New("穂積さん"))
	require.True(t, ok)
	require.Equal(t, model.ID("term_id2"), term.ID)
	require.Equal(t, "穂積", matched.Text)
}

func TestLookupMiss(t *testing.T) {
	idx := Build([]model.Term{newTerm("term_id1", "穂積")})

	tests := []string{"しょう", "穂", "", "積穂"}
	for _, input := range tests {
		_, _, rest, ok := idx.Lookup(span.New(input))
		require.False(t, ok, input)
		require.Equal(t, input, rest.Text)
	}
}

func TestHas(t *testing.T) {
	idx := Build([]model.Term{newTerm("a", "穂積"), newTerm("b", "無")})
	require.True(t, idx.Has('穂'))
	require.True(t, idx.Has('無'))
	require.False(t, idx.Has('積'))

	var empty *Index
	require.False(t, empty.Has('穂'))
	require.Zero(t, empty.Len())
	_, _, _, ok := empty.Lookup(span.New("穂積"))
	require.False(t, ok)
}

func TestBuildSkipsEmptyBodies(t *testing.T) {
	idx := Build([]model.Term{{ID: "empty"}, newTerm("a", "無")})
	require.Equal(t, 1, idx.Len())
}

func TestVariationSelectorsDoNotLengthen(t *testing.T) {
	// Both bodies count two characters; the tie is broken by body text.
	idx := Build([]model.Term{
		newTerm("vs", "邊\U000E0104田"),
		newTerm("plain", "邊田"),
		newTerm("short", "邊"),
	})
	terms := idx.Terms()
	require.Len(t, terms, 3)
	require.Equal(t, model.ID("plain"), terms[0].ID)
	require.Equal(t, model.ID("vs"), terms[1].ID)
	require.Equal(t, model.ID("short"), terms[2].ID)
}

func TestBuildOrderIndependent(t *testing.T) {
	terms := []model.Term{
		newTerm("1", "穂積しょう"),
		newTerm("2", "穂積"),
		newTerm("3", "無"),
		newTerm("4", "アリス"),
		newTerm("5", "アリスン"),
	}
	reversed := make([]model.Term, len(terms))
	for i, term := range terms {
		reversed[len(terms)-1-i] = term
	}

	a, b := Build(terms), Build(reversed)
	require.Equal(t, a.Terms(), b.Terms())
	require.Equal(t, a.Digest(), b.Digest())
	require.Len(t, a.Digest(), 64)

	c := Build(terms[:4])
	require.NotEqual(t, a.Digest(), c.Digest())
}
