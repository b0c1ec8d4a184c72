package kanji

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScriptClasses(t *testing.T) {
	tests := []struct {
		r                                   rune
		kanji, hiragana, katakana, halfKana bool
	}{
		{r: '漢', kanji: true},
		{r: '塡', kanji: true},
		{r: '々', kanji: true},
		{r: '\U000E0104', kanji: true},
		{r: 'あ', hiragana: true},
		{r: 'ア', katakana: true},
		{r: 'ー', katakana: true},
		{r: 'ｱ', halfKana: true},
		{r: 'a'},
		{r: '０'},
		{r: '（'},
	}
	for _, tc := range tests {
		t.Run(string(tc.r), func(t *testing.T) {
			require.Equal(t, tc.kanji, IsKanji(tc.r))
			require.Equal(t, tc.hiragana, IsHiragana(tc.r))
			require.Equal(t, tc.katakana, IsKatakana(tc.r))
			require.Equal(t, tc.halfKana, IsHalfwidthKatakana(tc.r))
		})
	}
}

func TestAlphabetic(t *testing.T) {
	for _, r := range []rune{'a', 'z', 'A', 'Z', 'ａ', 'ｚ', 'Ａ', 'Ｚ'} {
		require.True(t, IsAlpha(r), "%q", r)
	}
	for _, r := range []rune{'ａ', 'Ｂ'} {
		require.True(t, IsWideAlpha(r), "%q", r)
	}
	for _, r := range []rune{'a', '0', '０', 'あ', '漢', '（'} {
		require.False(t, IsWideAlpha(r), "%q", r)
	}
	for _, r := range []rune{'0', '０', 'あ', '漢'} {
		require.False(t, IsAlpha(r), "%q", r)
	}
}

func TestDigitValue(t *testing.T) {
	tests := []struct {
		r    rune
		want int
		ok   bool
	}{
		{'0', 0, true},
		{'9', 9, true},
		{'０', 0, true},
		{'５', 5, true},
		{'９', 9, true},
		{'a', 0, false},
		{'五', 0, false},
	}
	for _, tc := range tests {
		got, ok := DigitValue(tc.r)
		require.Equal(t, tc.ok, ok, "%q", tc.r)
		require.Equal(t, tc.want, got, "%q", tc.r)
		require.Equal(t, tc.ok, IsDigit(tc.r), "%q", tc.r)
	}
	require.True(t, IsWideDigit('８'))
	require.False(t, IsWideDigit('8'))
}

func TestFoldDigits(t *testing.T) {
	v, n, err := FoldDigits("１2３年")
	require.NoError(t, err)
	require.Equal(t, uint64(123), v)
	require.Equal(t, 7, n)

	_, n, err = FoldDigits("年")
	require.ErrorIs(t, err, ErrNoDigits)
	require.Zero(t, n)

	v, n, err = FoldDigits("18446744073709551615")
	require.NoError(t, err)
	require.Equal(t, uint64(18446744073709551615), v)
	require.Equal(t, 20, n)

	_, n, err = FoldDigits("18446744073709551616番")
	require.ErrorIs(t, err, ErrDigitOverflow)
	require.Equal(t, 20, n)
}

func TestSpaceNewlinePunctuation(t *testing.T) {
	for _, r := range []rune{' ', '\t', '　'} {
		require.True(t, IsSpace(r), "%q", r)
	}
	require.False(t, IsSpace('a'))
	require.True(t, IsNewline('\n'))
	require.True(t, IsNewline('\r'))
	require.False(t, IsNewline(' '))
	require.True(t, IsPunctuation('、'))
	require.True(t, IsPunctuation('。'))
	require.False(t, IsPunctuation('.'))
}

func TestDelimiters(t *testing.T) {
	require.True(t, IsDirective('|'))
	require.True(t, IsDirective('｜'))
	require.False(t, IsDirective('l'))

	for _, r := range []rune{'(', '（', '⟨'} {
		require.True(t, IsRubyStart(r), "%q", r)
	}
	for _, r := range []rune{')', '）', '⟩'} {
		require.True(t, IsRubyEnd(r), "%q", r)
	}
	require.True(t, IsAnnotationStart('$'))
	require.True(t, IsAnnotationEnd('＄'))
	require.True(t, IsTermStart('"'))
	require.True(t, IsTermEnd('＂'))

	require.True(t, IsEmphasisStart('《'))
	require.True(t, IsEmphasisStart('⟪'))
	require.False(t, IsEmphasisStart('》'))
	require.True(t, IsEmphasisEnd('》'))
	require.Equal(t, '》', EmphasisEnd('《'))
	require.Equal(t, '⟫', EmphasisEnd('⟪'))
	require.Equal(t, rune(0), EmphasisEnd('('))
}

func TestIsPlaintext(t *testing.T) {
	for _, r := range []rune{'あ', 'ア', 'a', '0', '(', '$', '《', '。'} {
		require.True(t, IsPlaintext(r), "%q", r)
	}
	for _, r := range []rune{'|', '｜', ' ', '　', '\n', '\r', '漢'} {
		require.False(t, IsPlaintext(r), "%q", r)
	}
}

func TestBodyPredicates(t *testing.T) {
	require.True(t, IsAnnotationBody('漢'))
	require.True(t, IsAnnotationBody('('))
	require.False(t, IsAnnotationBody('|'))
	require.False(t, IsAnnotationBody('$'))
	require.False(t, IsAnnotationBody('\n'))

	require.True(t, IsAnnotationDescription('|'))
	require.False(t, IsAnnotationDescription('＄'))

	require.True(t, IsRubyBody('|'))
	require.False(t, IsRubyBody('（'))
	require.False(t, IsRubyBody('\r'))

	require.True(t, IsRubyReading('か'))
	require.False(t, IsRubyReading(')'))
	require.False(t, IsRubyReading('('))
}

func TestCountChars(t *testing.T) {
	require.Equal(t, 2, CountChars("漢字"))
	require.Equal(t, 1, CountChars("邊\U000E0104"))
	require.Equal(t, 0, CountChars(""))
	require.Equal(t, 3, CountChars("かんじ"))
}
