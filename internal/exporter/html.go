// Package exporter writes bookmarks in the Netscape HTML format browsers import.
package exporter

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nikbrunner/bo/internal/model"
)

// DefaultExportPath returns the default export file path.
// Format: ~/Downloads/bo-export-YYYY-MM-DD.html
func DefaultExportPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("bo-export-%s.html", time.Now().Format("2006-01-02"))
	return filepath.Join(home, "Downloads", filename), nil
}

// ExportHTML renders every bookmark of cfg as Netscape bookmark HTML.
// The bookmark name becomes both the title and the keyword, and query
// bookmarks use the %s placeholder browsers expect for keywords.
func ExportHTML(cfg *model.Config) string {
	var b strings.Builder

	// Header
	b.WriteString("<!DOCTYPE NETSCAPE-Bookmark-file-1>\n")
	b.WriteString("<META HTTP-EQUIV=\"Content-Type\" CONTENT=\"text/html; charset=UTF-8\">\n")
	b.WriteString("<TITLE>Bookmarks</TITLE>\n")
	b.WriteString("<H1>Bookmarks</H1>\n")
	b.WriteString("<DL><p>\n")

	for _, name := range cfg.Names() {
		bm := cfg.Bookmarks[name]
		url := strings.ReplaceAll(bm.URL, model.QueryPlaceholder, "%s")
		fmt.Fprintf(&b,
			"    <DT><A HREF=\"%s\" SHORTCUTURL=\"%s\">%s</A>\n",
			html.EscapeString(url),
			html.EscapeString(name),
			html.EscapeString(name),
		)
	}

	// Footer
	b.WriteString("</DL><p>\n")

	return b.String()
}
