package manager

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mantw/mantw-cli/internal/logging"
	"github.com/mantw/mantw-cli/internal/render"
	"github.com/mantw/mantw-cli/internal/search"
)

type Searcher interface {
	Search(ctx context.Context, term string) (*search.Tally, error)
}

type Renderer interface {
	Render(ctx context.Context, file string) (render.Viewer, error)
}

// Picker lets the user choose among ranked matches. An empty file with a nil
// error means the user backed out.
type Picker interface {
	Pick(matches []search.Match) (string, error)
}

var ErrNoPicker = errors.New("interactive selection is not available")

type Manager struct {
	root     string
	searcher Searcher
	renderer Renderer
	picker   Picker
}

func New(root string, s Searcher, r Renderer, p Picker) *Manager {
	return &Manager{root: root, searcher: s, renderer: r, picker: p}
}

// Run dispatches one invocation. Direct view never searches and list mode
// never renders.
func (m *Manager) Run(ctx context.Context, req Request) (Result, error) {
	if len(req.Args) == 0 {
		return Result{Outcome: OutcomeUsage}, nil
	}
	if req.Direct {
		file := m.ResolveFile(req.Args[len(req.Args)-1])
		logging.Debug("direct view: " + file)
		return m.show(ctx, file)
	}

	term := req.Term()
	if term == "" {
		return Result{Outcome: OutcomeUsage}, nil
	}
	logging.Debug(fmt.Sprintf("search %q in %s", term, m.root))
	tally, err := m.searcher.Search(ctx, term)
	if err != nil {
		return Result{}, err
	}
	logging.Debug(fmt.Sprintf("%d matching files", tally.Len()))
	if tally.Len() == 0 {
		return Result{Outcome: OutcomeNoResults, Term: term}, nil
	}

	switch {
	case req.List:
		return Result{Outcome: OutcomeListed, Term: term, Matches: search.RankedList(tally)}, nil
	case req.Pick:
		if m.picker == nil {
			return Result{}, ErrNoPicker
		}
		file, err := m.picker.Pick(search.RankedList(tally))
		if err != nil {
			return Result{}, err
		}
		if file == "" {
			return Result{Outcome: OutcomeAborted, Term: term}, nil
		}
		return m.show(ctx, file)
	default:
		file, _ := search.SelectBest(tally)
		logging.Debug(fmt.Sprintf("best match: %s (%d)", file, tally.Count(file)))
		res, err := m.show(ctx, file)
		res.Term = term
		return res, err
	}
}

func (m *Manager) show(ctx context.Context, file string) (Result, error) {
	v, err := m.renderer.Render(ctx, file)
	if err != nil {
		return Result{}, err
	}
	return Result{Outcome: OutcomeViewed, File: file, Viewer: v}, nil
}

// ResolveFile maps a direct-view argument to a path. Names that exist as
// given win; otherwise the corpus root is tried, with and without a .md
// suffix. Unresolvable names are returned unchanged so the conversion
// reports them.
func (m *Manager) ResolveFile(name string) string {
	if filepath.IsAbs(name) || exists(name) || m.root == "" {
		return name
	}
	cand := filepath.Join(m.root, name)
	if exists(cand) {
		return cand
	}
	if filepath.Ext(name) == "" && exists(cand+".md") {
		return cand + ".md"
	}
	return name
}

func exists(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}

// Term joins the arguments the way they were typed, single spaced.
func (r Request) Term() string {
	return strings.TrimSpace(strings.Join(r.Args, " "))
}
