package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/npillmayer/listsplit"
	"github.com/npillmayer/listsplit/grapheme"
	"github.com/npillmayer/listsplit/segment"
)

// Record is a single segment of the output.
type Record struct {
	Kind string `yaml:"kind"`
	Body string `yaml:"body"`
}

// Document holds the segments of one input.
type Document struct {
	Source   string   `yaml:"source"`
	Segments []Record `yaml:"segments"`
}

// Splitters are safe for concurrent use and shared by all inputs.
var (
	runeSplitter     = listsplit.ForRunes()
	graphemeSplitter = grapheme.NewSplitter()
)

// Main splits every input of c and writes the segments to c.Writer.
func Main(c *Config) error {
	var docs []Document
	if len(c.Files) == 0 {
		data, err := io.ReadAll(c.Reader)
		if err != nil {
			return err
		}
		doc, err := Process(c, "-", string(data))
		if err != nil {
			return err
		}
		docs = append(docs, doc)
	} else {
		var err error
		if docs, err = processFiles(c); err != nil {
			return err
		}
	}
	return write(c, docs)
}

// processFiles reads and splits the files concurrently. Documents are
// returned in the order of the files.
func processFiles(c *Config) ([]Document, error) {
	docs := make([]Document, len(c.Files))
	var g errgroup.Group
	if c.Jobs > 0 {
		g.SetLimit(c.Jobs)
	}
	for i, name := range c.Files {
		g.Go(func() error {
			data, err := os.ReadFile(name)
			if err != nil {
				return err
			}
			doc, err := Process(c, name, string(data))
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

// Process splits a single input according to c.
func Process(c *Config, source, input string) (Document, error) {
	slog.Debug("process", slog.String("source", source), slog.Int("bytes", len(input)))
	doc := Document{Source: source}
	var segs []segment.Segment[string]
	var err error
	if c.Graphemes {
		segs, err = breakWith(c, graphemeSplitter, func(s string) grapheme.String {
			return grapheme.StringFromString(s)
		}, grapheme.String.String, input)
	} else {
		segs, err = breakWith(c, runeSplitter, func(s string) []rune {
			return []rune(s)
		}, func(r []rune) string {
			return string(r)
		}, input)
	}
	if err != nil {
		return doc, err
	}
	doc.Segments = make([]Record, len(segs))
	for i, seg := range segs {
		doc.Segments[i] = Record{Kind: seg.Kind.String(), Body: seg.Body}
	}
	slog.Debug("processed", slog.String("source", source), slog.Int("segments", len(segs)))
	return doc, nil
}

func breakWith[S, E any](c *Config, sp *listsplit.Splitter[S, E], from func(string) S,
	to func(S) string, input string) ([]segment.Segment[string], error) {
	//
	var preds listsplit.Predicates[E]
	if c.OneOf != "" {
		preds = sp.OneOf(from(c.OneOf))
	} else {
		preds = sp.OnSubsequence(from(c.On))
	}
	segs, err := sp.Break(preds, from(input))
	if err != nil {
		return nil, err
	}
	segs = Transforms(sp, c.Transforms)(segs)
	strsegs := make([]segment.Segment[string], len(segs))
	for i, seg := range segs {
		strsegs[i] = segment.Segment[string]{Kind: seg.Kind, Body: to(seg.Body)}
	}
	return strsegs, nil
}

// Transforms chains the named transforms of splitter sp. Unknown names
// are ignored; Config.Init rejects them.
func Transforms[S, E any](sp *listsplit.Splitter[S, E], names []string) listsplit.Transform[S] {
	ts := make([]listsplit.Transform[S], 0, len(names))
	for _, name := range names {
		switch name {
		case "drop-initial-blank":
			ts = append(ts, sp.DropInitialBlank)
		case "drop-final-blank":
			ts = append(ts, sp.DropFinalBlank)
		case "insert-blanks":
			ts = append(ts, sp.InsertBlanks)
		case "drop-delims":
			ts = append(ts, sp.DropDelims)
		case "condense":
			ts = append(ts, sp.Condense)
		case "merge-left":
			ts = append(ts, sp.MergeDelimsLeft)
		case "merge-right":
			ts = append(ts, sp.MergeDelimsRight)
		}
	}
	return listsplit.Compose(ts...)
}

func write(c *Config, docs []Document) error {
	if c.Format == FormatYAML {
		enc := yaml.NewEncoder(c.Writer)
		enc.SetIndent(2)
		for _, doc := range docs {
			if err := enc.Encode(doc); err != nil {
				return err
			}
		}
		return enc.Close()
	}
	for _, doc := range docs {
		if len(docs) > 1 {
			if _, err := fmt.Fprintf(c.Writer, "==> %s <==\n", doc.Source); err != nil {
				return err
			}
		}
		for _, rec := range doc.Segments {
			if _, err := fmt.Fprintf(c.Writer, "%s\t%q\n", rec.Kind, rec.Body); err != nil {
				return err
			}
		}
	}
	return nil
}
