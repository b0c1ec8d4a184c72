// Package dictionary indexes glossary terms for greedy longest-match lookup.
package dictionary

import (
	"cmp"
	"encoding/hex"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/zeebo/blake3"

	"novelarchives/kanji"
	"novelarchives/model"
	"novelarchives/span"
)

type entry struct {
	body  string
	chars int
	term  model.Term
}

type group struct {
	first   rune
	entries []entry
}

// Index groups terms by the first rune of their body. Groups are sorted by
// rune for binary search and hold their terms longest first. An Index is
// never modified after Build and may be shared between goroutines.
type Index struct {
	groups []group
	size   int
}

// Build indexes terms. Terms with an empty body are skipped. The result does
// not depend on the order of terms.
func Build(terms []model.Term) *Index {
	byFirst := make(map[rune][]entry)
	idx := &Index{}
	for _, t := range terms {
		body := t.Body.Source()
		if body == "" {
			continue
		}
		first, _ := utf8.DecodeRuneInString(body)
		byFirst[first] = append(byFirst[first], entry{
			body:  body,
			chars: kanji.CountChars(body),
			term:  t,
		})
		idx.size++
	}

	idx.groups = make([]group, 0, len(byFirst))
	for first, entries := range byFirst {
		slices.SortFunc(entries, func(a, b entry) int {
			if c := cmp.Compare(b.chars, a.chars); c != 0 {
				return c
			}
			if c := strings.Compare(a.body, b.body); c != 0 {
				return c
			}
			return strings.Compare(string(a.term.ID), string(b.term.ID))
		})
		idx.groups = append(idx.groups, group{first: first, entries: entries})
	}
	slices.SortFunc(idx.groups, func(a, b group) int {
		return cmp.Compare(a.first, b.first)
	})
	return idx
}

// Len returns the number of indexed terms.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return idx.size
}

func (idx *Index) group(r rune) (group, bool) {
	if idx == nil {
		return group{}, false
	}
	i, ok := slices.BinarySearchFunc(idx.groups, r, func(g group, r rune) int {
		return cmp.Compare(g.first, r)
	})
	if !ok {
		return group{}, false
	}
	return idx.groups[i], true
}

// Has reports whether some term body starts with r.
func (idx *Index) Has(r rune) bool {
	_, ok := idx.group(r)
	return ok
}

// Lookup finds the longest term whose body is a prefix of s. It returns the
// term, the matched part of s and the remainder.
func (idx *Index) Lookup(s span.Span) (model.Term, span.Span, span.Span, bool) {
	first, _ := s.First()
	g, ok := idx.group(first)
	if !ok {
		return model.Term{}, span.Span{}, s, false
	}
	for _, e := range g.entries {
		if strings.HasPrefix(s.Text, e.body) {
			matched, rest := s.Slice(len(e.body))
			return e.term, matched, rest, true
		}
	}
	return model.Term{}, span.Span{}, s, false
}

// Terms returns the indexed terms in lookup order.
func (idx *Index) Terms() []model.Term {
	if idx == nil {
		return nil
	}
	out := make([]model.Term, 0, idx.size)
	for _, g := range idx.groups {
		for _, e := range g.entries {
			out = append(out, e.term)
		}
	}
	return out
}

// Digest fingerprints the indexed bodies and IDs with BLAKE3. Two indexes
// built from the same terms in any order have the same digest.
func (idx *Index) Digest() string {
	h := blake3.New()
	for _, t := range idx.Terms() {
		h.Write([]byte(t.Body.Source()))
		h.Write([]byte{0})
		h.Write([]byte(t.ID))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
