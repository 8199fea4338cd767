package cmd

import (
	"fmt"

	"github.com/mantw/mantw-cli/internal/config"
	"github.com/mantw/mantw-cli/internal/search"
	"github.com/spf13/cobra"
)

// runValidate reports the resolved configuration and how many files the
// corpus holds. An unusable corpus is an error.
func runValidate(cmd *cobra.Command, cfg config.Config) error {
	s, err := search.New(search.Options{Root: cfg.BookDir, Pattern: cfg.Pattern, IgnoreFiles: cfg.IgnoreFiles})
	if err != nil {
		return err
	}
	files, err := s.Files()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Configuration is valid")
	fmt.Fprintf(out, "  book_dir:    %s (%d files matching %s)\n", cfg.BookDir, len(files), cfg.Pattern)
	fmt.Fprintf(out, "  scratch_dir: %s\n", cfg.ScratchDir)
	fmt.Fprintf(out, "  pager:       %s\n", cfg.Pager.String())
	return nil
}
