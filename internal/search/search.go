// Package search counts, per corpus file, the lines matching a term.
package search

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrCorpusUnavailable means the corpus root is not configured, missing or
// unreadable. There is nothing to search without it.
var ErrCorpusUnavailable = errors.New("corpus unavailable")

type Options struct {
	Root        string
	Pattern     string
	IgnoreFiles []string
}

type Searcher struct {
	root        string
	pattern     string
	ignoreFiles []string
}

func New(opts Options) (*Searcher, error) {
	pattern := opts.Pattern
	if pattern == "" {
		pattern = "*.md"
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid corpus pattern: %q", pattern)
	}
	return &Searcher{
		root:        opts.Root,
		pattern:     pattern,
		ignoreFiles: append([]string{}, opts.IgnoreFiles...),
	}, nil
}

// Files lists the corpus in scan order.
func (s *Searcher) Files() ([]string, error) {
	return corpusFiles(s.root, s.pattern, s.ignoreFiles)
}

// Search scans every corpus file and tallies the lines matching term. An
// empty tally is a normal result.
func (s *Searcher) Search(ctx context.Context, term string) (*Tally, error) {
	re, err := Compile(term)
	if err != nil {
		return nil, err
	}
	files, err := s.Files()
	if err != nil {
		return nil, err
	}
	t := NewTally()
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := tallyFile(t, f, re); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func tallyFile(t *Tally, path string, re *regexp.Regexp) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return tallyLines(t, path, f, re)
}

// tallyLines reads whole lines regardless of length; bufio.Scanner would
// stop at its token limit.
func tallyLines(t *Tally, name string, r io.Reader, re *regexp.Regexp) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			line = bytes.TrimRight(line, "\r\n")
			if re.Match(line) {
				t.Add(name)
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}
	}
}
