package manager

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mantw/mantw-cli/internal/render"
	"github.com/mantw/mantw-cli/internal/search"
)

type fakeSearcher struct {
	calls int
	terms []string
	tally *search.Tally
	err   error
}

func (s *fakeSearcher) Search(_ context.Context, term string) (*search.Tally, error) {
	s.calls++
	s.terms = append(s.terms, term)
	if s.err != nil {
		return nil, s.err
	}
	if s.tally == nil {
		return search.NewTally(), nil
	}
	return s.tally, nil
}

type fakeViewer struct{}

func (fakeViewer) Wait() error { return nil }

type fakeRenderer struct {
	files []string
	err   error
}

func (r *fakeRenderer) Render(_ context.Context, file string) (render.Viewer, error) {
	r.files = append(r.files, file)
	if r.err != nil {
		return nil, r.err
	}
	return fakeViewer{}, nil
}

type fakePicker struct {
	offered []search.Match
	choice  string
}

func (p *fakePicker) Pick(matches []search.Match) (string, error) {
	p.offered = matches
	return p.choice, nil
}

func tallyOf(files ...string) *search.Tally {
	t := search.NewTally()
	for _, f := range files {
		t.Add(f)
	}
	return t
}

func TestRun_NoArgsIsUsage(t *testing.T) {
	s, r := &fakeSearcher{}, &fakeRenderer{}
	res, err := New("/docs", s, r, nil).Run(context.Background(), Request{})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Outcome != OutcomeUsage {
		t.Fatalf("want usage, got %s", res.Outcome)
	}
	if s.calls != 0 || len(r.files) != 0 {
		t.Fatalf("usage must not search or render")
	}
}

func TestRun_SearchRendersBest(t *testing.T) {
	s := &fakeSearcher{tally: tallyOf("a.md", "b.md", "a.md", "b.md", "b.md")}
	r := &fakeRenderer{}
	res, err := New("/docs", s, r, nil).Run(context.Background(), Request{Args: []string{"flex", "grow"}})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(s.terms) != 1 || s.terms[0] != "flex grow" {
		t.Fatalf("term not joined with spaces: %v", s.terms)
	}
	if res.Outcome != OutcomeViewed || res.File != "b.md" || res.Viewer == nil {
		t.Fatalf("unexpected result: %+v", res)
	}
	if len(r.files) != 1 || r.files[0] != "b.md" {
		t.Fatalf("rendered %v", r.files)
	}
}

func TestRun_NoResults(t *testing.T) {
	s, r := &fakeSearcher{}, &fakeRenderer{}
	res, err := New("/docs", s, r, nil).Run(context.Background(), Request{Args: []string{"nothing"}})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Outcome != OutcomeNoResults || res.Term != "nothing" {
		t.Fatalf("unexpected result: %+v", res)
	}
	if len(r.files) != 0 {
		t.Fatalf("no results must not render")
	}
}

func TestRun_ListNeverRenders(t *testing.T) {
	s := &fakeSearcher{tally: tallyOf("a.md", "b.md", "b.md")}
	r := &fakeRenderer{}
	res, err := New("/docs", s, r, nil).Run(context.Background(), Request{Args: []string{"flex"}, List: true, Pick: true})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Outcome != OutcomeListed {
		t.Fatalf("want listed, got %s", res.Outcome)
	}
	if len(res.Matches) != 2 || res.Matches[0].File != "b.md" || res.Matches[1].File != "a.md" {
		t.Fatalf("unexpected listing: %+v", res.Matches)
	}
	if len(r.files) != 0 {
		t.Fatalf("list mode rendered %v", r.files)
	}
}

func TestRun_DirectNeverSearches(t *testing.T) {
	s, r := &fakeSearcher{}, &fakeRenderer{}
	res, err := New("/docs", s, r, nil).Run(context.Background(), Request{Args: []string{"flex", "grid", "/abs/page.md"}, Direct: true, List: true})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if s.calls != 0 {
		t.Fatalf("direct view searched")
	}
	if res.Outcome != OutcomeViewed || len(r.files) != 1 || r.files[0] != "/abs/page.md" {
		t.Fatalf("last argument not rendered: %+v %v", res, r.files)
	}
}

func TestRun_DirectMissingFileIsConversionFailure(t *testing.T) {
	s := &fakeSearcher{}
	d := render.New(render.Options{ScratchDir: t.TempDir()})
	_, err := New(t.TempDir(), s, d, nil).Run(context.Background(), Request{Args: []string{"missing-file.md"}, Direct: true})
	if !errors.Is(err, render.ErrConversion) {
		t.Fatalf("want ErrConversion, got %v", err)
	}
	if s.calls != 0 {
		t.Fatalf("direct view searched")
	}
}

func TestRun_SearchErrorPropagates(t *testing.T) {
	s := &fakeSearcher{err: search.ErrCorpusUnavailable}
	_, err := New("", s, &fakeRenderer{}, nil).Run(context.Background(), Request{Args: []string{"flex"}})
	if !errors.Is(err, search.ErrCorpusUnavailable) {
		t.Fatalf("want ErrCorpusUnavailable, got %v", err)
	}
}

func TestRun_BlankTermIsUsage(t *testing.T) {
	s := &fakeSearcher{}
	res, err := New("/docs", s, &fakeRenderer{}, nil).Run(context.Background(), Request{Args: []string{" ", ""}})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Outcome != OutcomeUsage || s.calls != 0 {
		t.Fatalf("blank term should be usage without searching: %+v", res)
	}
}

func TestRun_Pick(t *testing.T) {
	s := &fakeSearcher{tally: tallyOf("a.md", "b.md", "b.md")}
	r := &fakeRenderer{}
	p := &fakePicker{choice: "a.md"}
	res, err := New("/docs", s, r, p).Run(context.Background(), Request{Args: []string{"flex"}, Pick: true})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(p.offered) != 2 || p.offered[0].File != "b.md" {
		t.Fatalf("picker not offered ranked list: %+v", p.offered)
	}
	if res.Outcome != OutcomeViewed || r.files[0] != "a.md" {
		t.Fatalf("picked file not rendered: %+v", res)
	}

	p.choice = ""
	r.files = nil
	res, err = New("/docs", s, r, p).Run(context.Background(), Request{Args: []string{"flex"}, Pick: true})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Outcome != OutcomeAborted || len(r.files) != 0 {
		t.Fatalf("aborted pick rendered: %+v %v", res, r.files)
	}

	if _, err := New("/docs", s, r, nil).Run(context.Background(), Request{Args: []string{"flex"}, Pick: true}); !errors.Is(err, ErrNoPicker) {
		t.Fatalf("want ErrNoPicker, got %v", err)
	}
}

func TestResolveFile(t *testing.T) {
	root := t.TempDir()
	os.WriteFile(filepath.Join(root, "flex.md"), []byte("# flex\n"), 0o644)
	m := New(root, &fakeSearcher{}, &fakeRenderer{}, nil)

	if got := m.ResolveFile("flex.md"); got != filepath.Join(root, "flex.md") {
		t.Fatalf("relative to root: %q", got)
	}
	if got := m.ResolveFile("flex"); got != filepath.Join(root, "flex.md") {
		t.Fatalf("without extension: %q", got)
	}
	if got := m.ResolveFile("grid.md"); got != "grid.md" {
		t.Fatalf("missing file should be returned unchanged: %q", got)
	}
	abs := filepath.Join(root, "flex.md")
	if got := m.ResolveFile(abs); got != abs {
		t.Fatalf("absolute path changed: %q", got)
	}
}
