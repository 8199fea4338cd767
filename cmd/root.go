package cmd

import (
	"context"
	"fmt"

	"github.com/mantw/mantw-cli/internal/config"
	"github.com/mantw/mantw-cli/internal/executil"
	"github.com/mantw/mantw-cli/internal/logging"
	"github.com/mantw/mantw-cli/internal/manager"
	"github.com/mantw/mantw-cli/internal/render"
	"github.com/mantw/mantw-cli/internal/search"
	"github.com/mantw/mantw-cli/internal/ui/console"
	"github.com/spf13/cobra"
)

var version = "dev"

const long = `Search the docs and show the top result as a man page.

  mantw <search term>       open the file with the most matching lines
  mantw -l <search term>    list all the files matching <search term>
                            with the number of matching lines
  mantw -i <search term>    choose which matching file to open
  mantw -r <filename>       show the man page for a specific file (use
                            the results from mantw -l to get a filename)

Every word of the search term is an alternative, matched case-insensitively.
Put a term that starts with "-" after "--":

  mantw -- -mx-4`

type options struct {
	cfgFile  string
	verbose  bool
	list     bool
	direct   bool
	pick     bool
	validate bool
	cfg      config.Config
}

// NewRootCmd builds the mantw command. Each call has its own flag state.
func NewRootCmd() *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:           "mantw [-l|-r|-i] <search term>",
		Short:         "Search the docs and show the top result as a man page",
		Long:          long,
		Args:          cobra.ArbitraryArgs,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.Init()
			logging.SetVerbose(o.verbose)
			cfg, err := loadConfig(o.cfgFile)
			if err != nil {
				// Usage needs no config.
				if len(args) == 0 && !o.validate {
					logging.Debug("config error: " + err.Error())
					return nil
				}
				return fmt.Errorf("config error: %w", err)
			}
			o.cfg = cfg
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if o.validate {
				return runValidate(cmd, o.cfg)
			}
			return run(cmd, o, args)
		},
	}
	f := cmd.Flags()
	f.BoolVarP(&o.list, "list", "l", false, "list matching files with their number of matching lines")
	f.BoolVarP(&o.direct, "read", "r", false, "show the man page for the file given as last argument, without searching")
	f.BoolVarP(&o.pick, "pick", "i", false, "choose interactively among the matching files")
	f.BoolVar(&o.validate, "validate", false, "validate the merged configuration and corpus, then exit")
	cmd.PersistentFlags().StringVar(&o.cfgFile, "config", "", "path to any YAML file inside the config directory (default dir: ~/.config/mantw); all *.yaml in that directory are merged")
	cmd.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "show detailed steps")
	return cmd
}

func Execute(ctx context.Context) error { return NewRootCmd().ExecuteContext(ctx) }

func run(cmd *cobra.Command, o *options, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}
	cfg := o.cfg
	s, err := search.New(search.Options{Root: cfg.BookDir, Pattern: cfg.Pattern, IgnoreFiles: cfg.IgnoreFiles})
	if err != nil {
		return err
	}
	d := render.New(render.Options{
		ScratchDir: cfg.ScratchDir,
		Section:    cfg.ManSection,
		Pager: render.CommandPager{
			Command: cfg.Pager,
			Streams: executil.Streams{Stdout: cmd.OutOrStdout(), Stderr: cmd.ErrOrStderr()},
		},
	})
	ui := console.NewConsoleUI(cmd.OutOrStdout(), cfg.BookDir)
	m := manager.New(cfg.BookDir, s, d, ui)

	res, err := m.Run(cmd.Context(), manager.Request{Args: args, List: o.list, Direct: o.direct, Pick: o.pick})
	if err != nil {
		return err
	}
	if res.Outcome == manager.OutcomeUsage {
		return cmd.Help()
	}
	ui.Report(res)
	if res.Viewer == nil {
		return nil
	}
	// Rendering does not wait for the pager; the process stays until it exits
	// so the terminal is handed back after the page is closed.
	logging.Debug("waiting for " + cfg.Pager.String())
	return res.Viewer.Wait()
}
