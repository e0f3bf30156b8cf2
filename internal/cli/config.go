package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
)

var (
	ErrConfig = errors.New("Config")
)

// Output formats.
const (
	FormatLines = "lines"
	FormatYAML  = "yaml"
)

// TransformNames lists the transforms selectable with --transform, in the
// order they are documented.
var TransformNames = []string{
	"drop-initial-blank",
	"drop-final-blank",
	"insert-blanks",
	"drop-delims",
	"condense",
	"merge-left",
	"merge-right",
}

func NewConfig(r io.Reader, w io.Writer, oneOf, on string, transforms []string) *Config {
	return &Config{
		OneOf:      oneOf,
		On:         on,
		Transforms: transforms,
		Format:     FormatLines,
		Reader:     r,
		Writer:     w,
	}
}

type Config struct {
	Debug      bool
	OneOf      string
	On         string
	Graphemes  bool
	Transforms []string
	Format     string
	Jobs       int

	Files []string

	Reader io.Reader `json:"-"`
	Writer io.Writer `json:"-"`
}

// Init checks the configuration and takes the input files from args.
func (c *Config) Init(args []string) error {
	if (c.OneOf == "") == (c.On == "") {
		return fmt.Errorf("%w: need exactly one of --one-of and --on", ErrConfig)
	}
	for _, name := range c.Transforms {
		if !slices.Contains(TransformNames, name) {
			return fmt.Errorf("%w: unknown transform %q", ErrConfig, name)
		}
	}
	switch c.Format {
	case FormatLines, FormatYAML:
	case "":
		c.Format = FormatLines
	default:
		return fmt.Errorf("%w: unknown format %q", ErrConfig, c.Format)
	}
	if c.Jobs < 0 {
		return fmt.Errorf("%w: jobs must not be negative", ErrConfig)
	}
	c.Files = args
	return nil
}

func (c Config) SetupLogger(w io.Writer) {
	level := slog.LevelInfo
	if c.Debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	})
	slog.SetDefault(slog.New(handler))
}
