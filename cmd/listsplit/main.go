package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/npillmayer/listsplit/internal/cli"
)

const usage = `listsplit -- break text into text and delimiter segments

# Usage

listsplit [flags] [FILE...]

Reads standard input if no FILE is given.

# Examples

// Text "ab", Delim ",", Text "cd", Delim ".", Text "ef"
echo -n 'ab,cd.ef' | listsplit --one-of ',.'

// Text "ab", Text "cd", Text "ef"
echo -n 'ab<>cd<>ef' | listsplit --on '<>' -t drop-delims

// Text "One.", Text " Two."
echo -n 'One. Two.' | listsplit --one-of . -t merge-left -t drop-final-blank

// split on an emoji with skin tone, never on its parts
echo -n 'ab👍🏽cd' | listsplit --graphemes --one-of '👍🏽'

# Flags

`

func main() {
	fs := pflag.NewFlagSet("main", pflag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		fs.PrintDefaults()
	}

	var (
		debug     = fs.Bool("debug", false, "enable debug logs")
		oneOf     = fs.StringP("one-of", "o", "", "split at any of these characters")
		on        = fs.StringP("on", "s", "", "split at every occurrence of this string")
		graphemes = fs.BoolP("graphemes", "g", false, "treat user-perceived characters (graphemes) as elements instead of runes")
		format    = fs.StringP("format", "f", cli.FormatLines, "output format; one of lines, yaml")
		jobs      = fs.IntP("jobs", "j", 0, "maximum number of files processed concurrently; 0 means no limit")
		transform []string
	)
	fs.StringArrayVarP(&transform, "transform", "t", nil,
		"transform to apply to the segments, in order; one of "+strings.Join(cli.TransformNames, ", "),
	)

	err := fs.Parse(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	fail(err)

	c := cli.NewConfig(os.Stdin, os.Stdout, *oneOf, *on, transform)
	c.Debug = *debug
	c.Graphemes = *graphemes
	c.Format = *format
	c.Jobs = *jobs
	c.SetupLogger(os.Stderr)
	slog.Debug("parse args", slog.Any("args", fs.Args()))
	fail(c.Init(fs.Args()))

	cj, _ := json.Marshal(c)
	slog.Debug("config", slog.String("json", string(cj)))
	fail(cli.Main(c))
}

func fail(err error) {
	if err != nil {
		slog.Error("exit", slog.Any("err", err))
		os.Exit(1)
	}
}
