package console

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mantw/mantw-cli/internal/manager"
	"github.com/mantw/mantw-cli/internal/search"
)

type ConsoleUI struct {
	out  io.Writer
	root string
}

// NewConsoleUI prints to out; root shortens file names in the picker.
func NewConsoleUI(out io.Writer, root string) *ConsoleUI {
	if out == nil {
		out = os.Stdout
	}
	return &ConsoleUI{out: out, root: root}
}

// Report prints the result of a run that has something to say.
func (c *ConsoleUI) Report(res manager.Result) {
	switch res.Outcome {
	case manager.OutcomeNoResults:
		fmt.Fprintln(c.out, messageNoResults(res.Term))
	case manager.OutcomeListed:
		fmt.Fprint(c.out, renderList(res.Matches))
	case manager.OutcomeAborted:
		fmt.Fprintln(c.out, text.FgHiBlack.Sprint("Nothing selected"))
	}
}

// renderList prints file paths usable with -r, highest count first.
func renderList(matches []search.Match) string {
	var b strings.Builder
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"File", "Matches"})
	tw.SetColumnConfigs([]table.ColumnConfig{{Number: 2, Align: text.AlignRight}})
	total := 0
	for _, m := range matches {
		tw.AppendRow(table.Row{m.File, m.Count})
		total += m.Count
	}
	tw.AppendFooter(table.Row{fmt.Sprintf("%d files", len(matches)), total})
	b.WriteString(tw.Render())
	b.WriteString("\n")
	return b.String()
}

func messageNoResults(term string) string { return fmt.Sprintf("No results for %q", term) }

func (c *ConsoleUI) shortName(file string) string {
	if c.root == "" {
		return file
	}
	rel, err := filepath.Rel(c.root, file)
	if err != nil || strings.HasPrefix(rel, "..") {
		return file
	}
	return rel
}
