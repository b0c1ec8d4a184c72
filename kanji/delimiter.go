package kanji

// IsDirective reports whether r is the pipe that opens explicit ruby or an
// annotation.
func IsDirective(r rune) bool {
	return r == '|' || r == '｜'
}

// IsRubyStart reports whether r opens a ruby reading.
func IsRubyStart(r rune) bool {
	return r == '(' || r == '（' || r == '⟨'
}

// IsRubyEnd reports whether r closes a ruby reading.
func IsRubyEnd(r rune) bool {
	return r == ')' || r == '）' || r == '⟩'
}

// IsAnnotationStart reports whether r opens an annotation description.
func IsAnnotationStart(r rune) bool {
	return r == '$' || r == '＄'
}

// IsAnnotationEnd reports whether r closes an annotation description.
func IsAnnotationEnd(r rune) bool {
	return r == '$' || r == '＄'
}

// IsTermStart reports whether r opens a quoted glossary term.
func IsTermStart(r rune) bool {
	return r == '"' || r == '＂'
}

// IsTermEnd reports whether r closes a quoted glossary term.
func IsTermEnd(r rune) bool {
	return r == '"' || r == '＂'
}

var emphasisPairs = map[rune]rune{
	'《': '》',
	'⟪': '⟫',
}

// IsEmphasisStart reports whether r is an emphasis opener. An emphasis mark
// is opened by two of them.
func IsEmphasisStart(r rune) bool {
	_, ok := emphasisPairs[r]
	return ok
}

// IsEmphasisEnd reports whether r is an emphasis closer.
func IsEmphasisEnd(r rune) bool {
	return r == '》' || r == '⟫'
}

// EmphasisEnd returns the closer matching the emphasis opener open, or 0.
func EmphasisEnd(open rune) rune {
	return emphasisPairs[open]
}

// IsAnnotationBody reports whether r may appear in the marked text of an
// annotation.
func IsAnnotationBody(r rune) bool {
	return !IsDirective(r) && !IsAnnotationStart(r) && !IsAnnotationEnd(r) && !IsNewline(r)
}

// IsAnnotationDescription reports whether r may appear between the
// annotation markers.
func IsAnnotationDescription(r rune) bool {
	return !IsAnnotationEnd(r) && !IsNewline(r)
}

// IsRubyBody reports whether r may appear in the body of directive ruby.
func IsRubyBody(r rune) bool {
	return !IsNewline(r) && !IsRubyStart(r)
}

// IsRubyReading reports whether r may appear inside ruby delimiters.
func IsRubyReading(r rune) bool {
	return !IsNewline(r) && !IsRubyStart(r) && !IsRubyEnd(r)
}
