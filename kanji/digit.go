package kanji

import (
	"errors"
	"math"
	"unicode/utf8"

	"golang.org/x/text/width"
)

var (
	// ErrNoDigits is returned by FoldDigits when s does not start with a digit.
	ErrNoDigits = errors.New("kanji: no digits")
	// ErrDigitOverflow is returned by FoldDigits when the digit run does not
	// fit in a uint64.
	ErrDigitOverflow = errors.New("kanji: digit run overflows uint64")
)

// IsWideDigit reports whether r is a full-width digit.
func IsWideDigit(r rune) bool {
	return r >= '０' && r <= '９'
}

// IsDigit reports whether r is a half- or full-width digit.
func IsDigit(r rune) bool {
	_, ok := DigitValue(r)
	return ok
}

// DigitValue returns the numeric value of a half- or full-width digit.
func DigitValue(r rune) (int, bool) {
	if r >= '0' && r <= '9' {
		return int(r - '0'), true
	}
	if !IsWideDigit(r) {
		return 0, false
	}
	n := width.LookupRune(r).Narrow()
	return int(n - '0'), true
}

// FoldDigits folds the run of digits at the start of s into a number. It
// returns the byte length of the whole run even when the run overflows, so
// callers can skip past it.
func FoldDigits(s string) (uint64, int, error) {
	var (
		v        uint64
		n        int
		overflow bool
	)
	for n < len(s) {
		r, size := utf8.DecodeRuneInString(s[n:])
		d, ok := DigitValue(r)
		if !ok {
			break
		}
		if !overflow {
			if v > (math.MaxUint64-uint64(d))/10 {
				overflow = true
			} else {
				v = v*10 + uint64(d)
			}
		}
		n += size
	}
	switch {
	case n == 0:
		return 0, 0, ErrNoDigits
	case overflow:
		return 0, n, ErrDigitOverflow
	}
	return v, n, nil
}
