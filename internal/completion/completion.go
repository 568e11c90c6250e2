// Package completion generates the fish completion script for bo.
package completion

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/nikbrunner/bo/internal/model"
)

const program = "bo"

// Command is a top-level subcommand offered before anything else is typed.
type Command struct {
	Name        string
	Description string
}

var quoter = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// quote wraps s in fish single quotes.
func quote(s string) string {
	return "'" + quoter.Replace(s) + "'"
}

// Simplify shortens a URL for display: the scheme and every "www." go.
func Simplify(url string) string {
	if rest, ok := strings.CutPrefix(url, "https://"); ok {
		url = rest
	} else if rest, ok := strings.CutPrefix(url, "http://"); ok {
		url = rest
	}
	return strings.ReplaceAll(url, "www.", "")
}

// Generate writes the completion script for cfg to w. Aliases pointing at a
// missing bookmark are logged and left out.
func Generate(w io.Writer, cfg *model.Config, commands []Command, log zerolog.Logger) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "complete -c %s -f\n", program)
	for _, c := range commands {
		candidate(bw, c.Name, c.Description)
	}

	for _, name := range cfg.Names() {
		candidate(bw, name, Simplify(cfg.Bookmarks[name].URL))
	}

	for _, alias := range cfg.AliasNames() {
		target := cfg.Aliases[alias]
		b, ok := cfg.Bookmarks[target]
		if !ok {
			log.Warn().
				Str("alias", alias).
				Str("target", target).
				Msg("alias points to a missing bookmark, skipping")
			continue
		}
		candidate(bw, alias, Simplify(b.URL))
	}

	return bw.Flush()
}

func candidate(w io.Writer, value, description string) {
	fmt.Fprintf(w, "complete -c %s -n __fish_use_subcommand -a %s -d %s\n",
		program, quote(value), quote(description))
}

// DefaultPath is where fish looks for completions of bo.
func DefaultPath() string {
	return "~/.config/fish/completions/" + program + ".fish"
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("expand %s: %w", path, err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// WriteFile generates the script and writes it to path, creating parent
// directories as needed. It returns the expanded path.
func WriteFile(path string, cfg *model.Config, commands []Command, log zerolog.Logger) (string, error) {
	path, err := ExpandHome(path)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := Generate(&buf, cfg, commands, log); err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("create completion directory: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("write completion file: %w", err)
	}

	log.Debug().Str("path", path).Msg("completion script written")
	return path, nil
}
