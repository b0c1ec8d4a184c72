// Command demo prints a news sentence with ruby added to every kanji run
// the analyzer has a reading for.
package main

import (
	"fmt"
	"os"

	"novelarchives/analyze"
	"novelarchives/model"
	"novelarchives/tokenize"
)

const text = "秋田県仙北市は市内を流れる入見内川の水位が高まっているため、午前8時40分、角館町西長野の283世帯649人に高齢者等避難の情報を出しました。"

func main() {
	a, err := analyze.New("ipa")
	if err != nil {
		fmt.Fprintln(os.Stderr, "demo:", err)
		os.Exit(1)
	}
	tokens := tokenize.NewContext(nil).Tokenize(text)
	suggestions := a.Suggest(tokens)

	// splice the markup in at the suggested offsets, back to front
	out := text
	for i := len(suggestions) - 1; i >= 0; i-- {
		sg := suggestions[i]
		at := sg.Position.Offset
		out = out[:at] + sg.Markup + out[at+len(sg.Surface):]
	}
	fmt.Println(out)

	summary := analyze.Summarize(tokenize.NewContext(nil).Tokenize(out))
	fmt.Printf("%d suggestions, %d ruby tokens\n", len(suggestions),
		summary.Kinds[model.KindKanjiRuby]+summary.Kinds[model.KindRuby])
}
