package importer_test

import (
	"strings"
	"testing"

	"github.com/nikbrunner/bo/internal/importer"
	"github.com/nikbrunner/bo/internal/model"
)

func TestParseHTML_SingleBookmark(t *testing.T) {
	html := `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<TITLE>Bookmarks</TITLE>
<H1>Bookmarks</H1>
<DL><p>
    <DT><A HREF="https://example.com" ADD_DATE="1234567890">Example Site</A>
</DL><p>`

	bookmarks, err := importer.ParseHTMLBookmarks(strings.NewReader(html))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(bookmarks) != 1 {
		t.Fatalf("expected 1 bookmark, got %d", len(bookmarks))
	}

	b := bookmarks[0]
	if b.Name != "example-site" {
		t.Errorf("expected name 'example-site', got %q", b.Name)
	}
	if b.Bookmark.URL != "https://example.com" {
		t.Errorf("expected URL 'https://example.com', got %q", b.Bookmark.URL)
	}
	if b.Bookmark.Browser != "" {
		t.Errorf("expected no browser override, got %q", b.Bookmark.Browser)
	}
}

func TestParseHTML_NestedFoldersAreFlattened(t *testing.T) {
	html := `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<DL><p>
    <DT><H3 ADD_DATE="1234567890">Development</H3>
    <DL><p>
        <DT><H3 ADD_DATE="1234567890">React</H3>
        <DL><p>
            <DT><A HREF="https://react.dev" ADD_DATE="1234567890">React Docs</A>
        </DL><p>
        <DT><A HREF="https://github.com" ADD_DATE="1234567890">GitHub</A>
    </DL><p>
    <DT><A HREF="https://google.com" ADD_DATE="1234567890">Google</A>
</DL><p>`

	bookmarks, err := importer.ParseHTMLBookmarks(strings.NewReader(html))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"react-docs", "github", "google"}
	if len(bookmarks) != len(want) {
		t.Fatalf("expected %d bookmarks, got %d", len(want), len(bookmarks))
	}
	for i, name := range want {
		if bookmarks[i].Name != name {
			t.Errorf("bookmark %d: expected name %q, got %q", i, name, bookmarks[i].Name)
		}
	}
}

func TestParseHTML_Keyword(t *testing.T) {
	html := `<DL><p>
    <DT><A HREF="https://duckduckgo.com/?q=%s" SHORTCUTURL="ddg">DuckDuckGo Search</A>
    <DT><A HREF="https://en.wikipedia.org/wiki/%s" SHORTCUTURL="Wiki">Wikipedia</A>
</DL><p>`

	bookmarks, err := importer.ParseHTMLBookmarks(strings.NewReader(html))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []model.NamedBookmark{
		{Name: "ddg", Bookmark: model.Bookmark{URL: "https://duckduckgo.com/?q={query}"}},
		{Name: "Wiki", Bookmark: model.Bookmark{URL: "https://en.wikipedia.org/wiki/{query}"}},
	}
	if len(bookmarks) != len(want) {
		t.Fatalf("expected %d bookmarks, got %d", len(want), len(bookmarks))
	}
	for i := range want {
		if bookmarks[i] != want[i] {
			t.Errorf("bookmark %d: expected %+v, got %+v", i, want[i], bookmarks[i])
		}
	}
}

func TestParseHTML_NameFallsBackToHost(t *testing.T) {
	html := `<DL><p>
    <DT><A HREF="https://www.example.com/page"></A>
    <DT><A HREF="https://docs.example.org">   </A>
    <DT><A HREF="https://example.net">***</A>
</DL><p>`

	bookmarks, err := importer.ParseHTMLBookmarks(strings.NewReader(html))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"example-com", "docs-example-org", "example-net"}
	if len(bookmarks) != len(want) {
		t.Fatalf("expected %d bookmarks, got %d", len(want), len(bookmarks))
	}
	for i, name := range want {
		if bookmarks[i].Name != name {
			t.Errorf("bookmark %d: expected name %q, got %q", i, name, bookmarks[i].Name)
		}
	}
}

func TestParseHTML_SkipsUnsupportedLinks(t *testing.T) {
	html := `<DL><p>
    <DT><A HREF="">Empty</A>
    <DT><A>No href</A>
    <DT><A HREF="place:sort=8&maxResults=10">Most Visited</A>
    <DT><A HREF="javascript:alert(1)">Bookmarklet</A>
    <DT><A HREF="http://plain.example.com">Plain</A>
</DL><p>`

	bookmarks, err := importer.ParseHTMLBookmarks(strings.NewReader(html))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(bookmarks) != 1 {
		t.Fatalf("expected 1 bookmark, got %d: %+v", len(bookmarks), bookmarks)
	}
	if bookmarks[0].Name != "plain" {
		t.Errorf("expected name 'plain', got %q", bookmarks[0].Name)
	}
}

func TestParseHTML_HTMLEntities(t *testing.T) {
	html := `<DL><p>
    <DT><A HREF="https://example.com?a=1&amp;b=2">Tom &amp; Jerry&#39;s</A>
</DL><p>`

	bookmarks, err := importer.ParseHTMLBookmarks(strings.NewReader(html))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(bookmarks) != 1 {
		t.Fatalf("expected 1 bookmark, got %d", len(bookmarks))
	}
	if bookmarks[0].Name != "tom-jerry-s" {
		t.Errorf("expected name 'tom-jerry-s', got %q", bookmarks[0].Name)
	}
	if bookmarks[0].Bookmark.URL != "https://example.com?a=1&b=2" {
		t.Errorf("expected decoded URL, got %q", bookmarks[0].Bookmark.URL)
	}
}

func TestParseHTML_EmptyInput(t *testing.T) {
	bookmarks, err := importer.ParseHTMLBookmarks(strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bookmarks) != 0 {
		t.Errorf("expected 0 bookmarks, got %d", len(bookmarks))
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Example Site", "example-site"},
		{"  Leading and trailing  ", "leading-and-trailing"},
		{"GitHub - Where the world builds software", "github-where-the-world-builds-software"},
		{"v1.2.3", "v1-2-3"},
		{"Über Café", "über-café"},
		{"---", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := importer.Slug(tt.input); got != tt.want {
				t.Errorf("Slug(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseHTML_MergeIntoConfig(t *testing.T) {
	html := `<DL><p>
    <DT><A HREF="https://github.com">GitHub</A>
    <DT><A HREF="https://gitlab.com">GitHub</A>
    <DT><A HREF="https://existing.com">Existing</A>
</DL><p>`

	bookmarks, err := importer.ParseHTMLBookmarks(strings.NewReader(html))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg := model.NewConfig("firefox")
	if err := cfg.AddBookmark("existing", model.Bookmark{URL: "https://existing.com"}); err != nil {
		t.Fatalf("AddBookmark: %v", err)
	}

	added, skipped := cfg.ImportMerge(bookmarks)
	if added != 2 || skipped != 1 {
		t.Errorf("expected 2 added and 1 skipped, got %d and %d", added, skipped)
	}
	if got := cfg.Bookmarks["github"].URL; got != "https://github.com" {
		t.Errorf("expected github -> https://github.com, got %q", got)
	}
	if got := cfg.Bookmarks["github-2"].URL; got != "https://gitlab.com" {
		t.Errorf("expected github-2 -> https://gitlab.com, got %q", got)
	}
}
