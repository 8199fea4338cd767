// Package render turns one corpus file into a man page and hands it to a pager.
package render

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpuguy83/go-md2man/v2/md2man"
	"github.com/mantw/mantw-cli/internal/config"
	"github.com/mantw/mantw-cli/internal/executil"
)

// ErrConversion wraps every failure between reading the source file and
// writing the rendered page. There is no fallback rendering.
var ErrConversion = errors.New("conversion failed")

// Formatter converts a Markdown document into roff.
type Formatter interface {
	Format(src []byte) ([]byte, error)
}

// Pager displays a rendered page. Open must not wait for the viewer to exit.
type Pager interface {
	Open(path string) (Viewer, error)
}

// Viewer is a running pager.
type Viewer interface {
	Wait() error
}

// Md2Man formats with go-md2man.
type Md2Man struct{}

func (Md2Man) Format(src []byte) ([]byte, error) { return md2man.Render(src), nil }

// CommandPager runs a configured program with the page path as last argument.
type CommandPager struct {
	Command config.Command
	Streams executil.Streams
}

func (p CommandPager) Open(path string) (Viewer, error) {
	proc, err := executil.Start(p.Command, p.Streams, path)
	if err != nil {
		return nil, err
	}
	return proc, nil
}

type Options struct {
	ScratchDir string
	Section    string
	Formatter  Formatter
	Pager      Pager
}

type Dispatcher struct {
	scratchDir string
	section    string
	formatter  Formatter
	pager      Pager
}

func New(opts Options) *Dispatcher {
	d := &Dispatcher{
		scratchDir: opts.ScratchDir,
		section:    opts.Section,
		formatter:  opts.Formatter,
		pager:      opts.Pager,
	}
	if d.scratchDir == "" {
		d.scratchDir = os.TempDir()
	}
	if d.section == "" {
		d.section = config.DefaultManSection
	}
	if d.formatter == nil {
		d.formatter = Md2Man{}
	}
	if d.pager == nil {
		d.pager = CommandPager{Command: config.Command{Program: config.DefaultPager}}
	}
	return d
}

// ScratchPath is where the page rendered from file is written:
// "docs/flex.md" becomes "<scratch>/flex.1".
func (d *Dispatcher) ScratchPath(file string) string {
	base := filepath.Base(file)
	return filepath.Join(d.scratchDir, strings.TrimSuffix(base, filepath.Ext(base))+"."+d.section)
}

// Convert renders file into the scratch directory and returns the page path.
// The page is left in place for the pager; nothing removes it.
func (d *Dispatcher) Convert(file string) (string, error) {
	src, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrConversion, err)
	}
	out, err := d.formatter.Format(prepare(file, d.section, src))
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrConversion, file, err)
	}
	if err := os.MkdirAll(d.scratchDir, 0o755); err != nil {
		return "", fmt.Errorf("%w: %v", ErrConversion, err)
	}
	p := d.ScratchPath(file)
	if err := os.WriteFile(p, out, 0o644); err != nil {
		return "", fmt.Errorf("%w: %v", ErrConversion, err)
	}
	return p, nil
}

// Render converts file and opens it in the pager without waiting for it.
func (d *Dispatcher) Render(ctx context.Context, file string) (Viewer, error) {
	p, err := d.Convert(file)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return d.pager.Open(p)
}
