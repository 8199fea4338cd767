package manager

import (
	"github.com/mantw/mantw-cli/internal/render"
	"github.com/mantw/mantw-cli/internal/search"
)

// Request is one parsed command line.
type Request struct {
	Args   []string
	List   bool
	Direct bool
	Pick   bool
}

type Outcome int

const (
	OutcomeUsage Outcome = iota
	OutcomeNoResults
	OutcomeListed
	OutcomeViewed
	OutcomeAborted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeUsage:
		return "usage"
	case OutcomeNoResults:
		return "no-results"
	case OutcomeListed:
		return "listed"
	case OutcomeViewed:
		return "viewed"
	case OutcomeAborted:
		return "aborted"
	}
	return "unknown"
}

type Result struct {
	Outcome Outcome
	Term    string
	File    string
	Matches []search.Match
	// Viewer is the pager left running for OutcomeViewed.
	Viewer render.Viewer
}
