// Package kanji classifies single runes of Japanese novel text: scripts,
// digits, whitespace and the markup delimiters used by the tokenizer.
package kanji

import (
	"unicode"

	"golang.org/x/text/width"
)

// IsKanji reports whether r is a CJK ideograph. Variation selectors count as
// kanji so that they stay attached to the ideograph they modify.
func IsKanji(r rune) bool {
	return unicode.Is(unicode.Han, r) || IsVariationSelector(r)
}

// IsVariationSelector reports whether r is a standard (U+FE00..U+FE0F) or
// ideographic (U+E0100..U+E01EF) variation selector.
func IsVariationSelector(r rune) bool {
	return (r >= 0xFE00 && r <= 0xFE0F) || (r >= 0xE0100 && r <= 0xE01EF)
}

// IsHiragana reports whether r is in the Hiragana block.
func IsHiragana(r rune) bool {
	return r >= 0x3040 && r <= 0x309F
}

// IsKatakana reports whether r is in the Katakana block or its phonetic
// extensions.
func IsKatakana(r rune) bool {
	return (r >= 0x30A0 && r <= 0x30FF) || (r >= 0x31F0 && r <= 0x31FF)
}

// IsHalfwidthKatakana reports whether r is a half-width katakana form.
func IsHalfwidthKatakana(r rune) bool {
	return r >= 0xFF66 && r <= 0xFF9F
}

// IsWideAlpha reports whether r is a full-width Latin letter.
func IsWideAlpha(r rune) bool {
	p := width.LookupRune(r)
	if p.Kind() != width.EastAsianFullwidth {
		return false
	}
	return isASCIILetter(p.Narrow())
}

// IsAlpha reports whether r is a half- or full-width Latin letter.
func IsAlpha(r rune) bool {
	return isASCIILetter(r) || IsWideAlpha(r)
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// IsSpace reports whether r is a half-width space, a tab or an ideographic
// space.
func IsSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '　'
}

// IsPunctuation reports whether r is one of the CJK sentence marks 、 and 。.
func IsPunctuation(r rune) bool {
	return r == '、' || r == '。'
}

// IsNewline reports whether r starts a line break.
func IsNewline(r rune) bool {
	return r == '\n' || r == '\r'
}

// IsPlaintext reports whether r may be consumed by the plain text fallback.
// Kanji are excluded so they always reach the ruby-capable rule first.
func IsPlaintext(r rune) bool {
	return !IsDirective(r) && !IsSpace(r) && !IsNewline(r) && !IsKanji(r)
}

// CountChars counts the runes of s, leaving out variation selectors.
func CountChars(s string) int {
	n := 0
	for _, r := range s {
		if !IsVariationSelector(r) {
			n++
		}
	}
	return n
}
