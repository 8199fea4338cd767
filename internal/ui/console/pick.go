package console

import (
	"errors"
	"fmt"

	survey "github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/mantw/mantw-cli/internal/search"
)

// Pick asks which of the ranked matches to open. Ctrl-C returns an empty
// choice rather than an error.
func (c *ConsoleUI) Pick(matches []search.Match) (string, error) {
	if len(matches) == 0 {
		return "", nil
	}
	labels, byLabel := pickLabels(matches, c.shortName)
	choice := ""
	prompt := &survey.Select{Message: "Open which page?", Options: labels, Default: labels[0], PageSize: 15}
	if err := survey.AskOne(prompt, &choice); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return "", nil
		}
		return "", err
	}
	return byLabel[choice], nil
}

func pickLabels(matches []search.Match, name func(string) string) ([]string, map[string]string) {
	labels := make([]string, 0, len(matches))
	byLabel := make(map[string]string, len(matches))
	for _, m := range matches {
		lbl := fmt.Sprintf("%s (%d)", name(m.File), m.Count)
		if _, dup := byLabel[lbl]; dup {
			lbl = fmt.Sprintf("%s (%d)", m.File, m.Count)
		}
		labels = append(labels, lbl)
		byLabel[lbl] = m.File
	}
	return labels, byLabel
}
