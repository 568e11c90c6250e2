package main

import (
	"github.com/spf13/cobra"

	"github.com/nikbrunner/bo/internal/launcher"
	"github.com/nikbrunner/bo/internal/picker"
	"github.com/nikbrunner/bo/internal/resolver"
)

func newRootCmd(a *app) *cobra.Command {
	var yank bool

	rootCmd := &cobra.Command{
		Use:   "bo [name] [query words...]",
		Short: "Open bookmarks by name",
		Long: `bo opens bookmarks from a TOML file by name or alias.

  bo                  pick a bookmark interactively
  bo <name>           open a bookmark
  bo <name> words...  fill {query} in the bookmark URL with the words

Bookmarks live in $XDG_CONFIG_HOME/bo/config.toml unless --config or
BO_CONFIG says otherwise.`,
		Args:              cobra.ArbitraryArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		RunE: func(_ *cobra.Command, args []string) error {
			return a.open(args, yank)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "config file (default $XDG_CONFIG_HOME/bo/config.toml)")
	flags.String("log-level", "", "log level: trace, debug, info, warn, error")
	rootCmd.Flags().BoolVarP(&yank, "yank", "y", false, "copy the URL to the clipboard instead of opening it")

	rootCmd.AddCommand(newAddCmd(a))
	rootCmd.AddCommand(newEditCmd(a))
	rootCmd.AddCommand(newCompletionCmd(a))
	rootCmd.AddCommand(newImportCmd(a))
	rootCmd.AddCommand(newExportCmd(a))
	rootCmd.AddCommand(newListCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// open dispatches on the number of positional arguments: none shows the
// picker, one opens by name and more fill the query template.
func (a *app) open(args []string, yank bool) error {
	_, cfg, err := a.load()
	if err != nil {
		return err
	}

	engine := launcher.NewEngine(a.opener(yank), a.log)

	if len(args) == 0 {
		return picker.PickAndOpen(cfg, a.selector, engine, a.log)
	}

	b, err := resolver.Resolve(cfg, args[0])
	if err != nil {
		return err
	}
	if len(args) == 1 {
		return engine.Open(b, cfg.DefaultBrowser)
	}
	return engine.SearchOpen(b, args[1:], cfg.DefaultBrowser)
}
