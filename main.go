// Command novelarchives tokenizes Japanese novel text written with ruby,
// annotation and emphasis markup.
package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"novelarchives/logger"
)

var version = "dev"

// CLI defines the command-line interface using Kong
var CLI struct {
	LogLevel  string `name:"log-level" default:"info" env:"NOVEL_LOG_LEVEL" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)"`
	LogFormat string `name:"log-format" default:"text" env:"NOVEL_LOG_FORMAT" enum:"json,text" help:"Log format (json, text)"`

	Tokenize TokenizeCmd `cmd:"" help:"Tokenize novel text"`
	Render   RenderCmd   `cmd:"" help:"Print novel text with markup in canonical form"`
	Check    CheckCmd    `cmd:"" help:"Report stray directives and numerals that overflow"`
	Suggest  SuggestCmd  `cmd:"" help:"Propose ruby for kanji written without a reading"`
	Watch    WatchCmd    `cmd:"" help:"Re-tokenize whenever the glossary changes"`
	Version  VersionCmd  `cmd:"" help:"Print version information"`
}

// app is what every command runs against.
type app struct {
	log *slog.Logger
	out io.Writer
	in  io.Reader
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("novelarchives"),
		kong.Description("Tokenizer for Japanese novel markup"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	level, err := logger.ParseLevel(CLI.LogLevel)
	ctx.FatalIfErrorf(err)
	format, err := logger.ParseFormat(CLI.LogFormat)
	ctx.FatalIfErrorf(err)
	log := logger.InitLogger(level, format, os.Stderr)

	err = ctx.Run(&app{log: log, out: os.Stdout, in: os.Stdin})
	ctx.FatalIfErrorf(err)
}
