package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nikbrunner/bo/internal/completion"
	"github.com/nikbrunner/bo/internal/exporter"
	"github.com/nikbrunner/bo/internal/importer"
	"github.com/nikbrunner/bo/internal/model"
)

func newAddCmd(a *app) *cobra.Command {
	var (
		browser string
		aliases []string
	)

	cmd := &cobra.Command{
		Use:   "add <name> <url>",
		Short: "Add a bookmark",
		Long: `Add a bookmark to the config file. Use {query} in the URL to make it a
search bookmark: "bo <name> some words" replaces {query} with "some words".`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cfg, err := a.load()
			if err != nil {
				return err
			}

			name, url := args[0], args[1]
			if err := cfg.AddBookmark(name, model.Bookmark{URL: url, Browser: browser}); err != nil {
				return err
			}
			for _, alias := range aliases {
				if err := cfg.AddAlias(alias, name); err != nil {
					return err
				}
			}

			if err := s.Save(cfg); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %s -> %s\n", name, url)
			return nil
		},
	}

	cmd.Flags().StringVarP(&browser, "browser", "b", "", "browser for this bookmark instead of default_browser")
	cmd.Flags().StringSliceVarP(&aliases, "alias", "a", nil, "alias for the bookmark (repeatable)")

	return cmd
}

func newEditCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Open the config file in $EDITOR",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			path, err := a.configPath()
			if err != nil {
				return err
			}
			return a.edit(path)
		},
	}
}

func newCompletionCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generate fish completions for commands and bookmarks",
		Long: `Generate a fish completion script listing subcommands, bookmarks and aliases.
Pass --output - to print the script instead of writing it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, cfg, err := a.load()
			if err != nil {
				return err
			}

			commands := subcommands(cmd.Root())
			if output == "-" {
				return completion.Generate(cmd.OutOrStdout(), cfg, commands, a.log)
			}

			path, err := completion.WriteFile(output, cfg, commands, a.log)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Completions written to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", completion.DefaultPath(), "completion file to write, - for stdout")

	return cmd
}

// subcommands lists the user-facing commands of root.
func subcommands(root *cobra.Command) []completion.Command {
	var commands []completion.Command
	for _, c := range root.Commands() {
		if !c.IsAvailableCommand() {
			continue
		}
		commands = append(commands, completion.Command{Name: c.Name(), Description: c.Short})
	}
	return commands
}

func newImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.html>",
		Short: "Import bookmarks from a browser's HTML export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, cfg, err := a.load()
			if err != nil {
				return err
			}

			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open import file: %w", err)
			}
			defer file.Close()

			bookmarks, err := importer.ParseHTMLBookmarks(file)
			if err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}

			added, skipped := cfg.ImportMerge(bookmarks)
			if err := s.Save(cfg); err != nil {
				return err
			}

			a.log.Debug().Int("added", added).Int("skipped", skipped).Msg("import finished")

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Imported %d bookmarks", added)
			if skipped > 0 {
				fmt.Fprintf(out, " (%d duplicates skipped)", skipped)
			}
			fmt.Fprintln(out)
			return nil
		},
	}
}

func newExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export [path]",
		Short: "Export bookmarks as browser-importable HTML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cfg, err := a.load()
			if err != nil {
				return err
			}

			var outputPath string
			if len(args) > 0 {
				outputPath = args[0]
			} else {
				outputPath, err = exporter.DefaultExportPath()
				if err != nil {
					return fmt.Errorf("default export path: %w", err)
				}
			}

			if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
				return fmt.Errorf("create export directory: %w", err)
			}
			if err := os.WriteFile(outputPath, []byte(exporter.ExportHTML(cfg)), 0644); err != nil {
				return fmt.Errorf("write export file: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d bookmarks to %s\n", len(cfg.Bookmarks), outputPath)
			return nil
		},
	}
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List bookmarks and aliases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, cfg, err := a.load()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, name := range cfg.Names() {
				b := cfg.Bookmarks[name]
				fmt.Fprintf(out, "%s\t%s\t%s\n", name, b.URL, b.EffectiveBrowser(cfg.DefaultBrowser))
			}
			for _, alias := range cfg.AliasNames() {
				fmt.Fprintf(out, "%s\t-> %s\n", alias, cfg.Aliases[alias])
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "bo %s\n", version)
			fmt.Fprintf(out, "commit: %s\n", commit)
			fmt.Fprintf(out, "built: %s\n", buildDate)
		},
	}
}
