// Package importer reads bookmarks exported by web browsers.
package importer

import (
	"io"
	"net/url"
	"strings"
	"unicode"

	"golang.org/x/net/html"

	"github.com/nikbrunner/bo/internal/model"
)

// browserPlaceholder is the query placeholder Firefox uses in keyword bookmarks.
const browserPlaceholder = "%s"

// ParseHTMLBookmarks parses Netscape bookmark HTML. Folders are flattened.
// A bookmark keyword (SHORTCUTURL) becomes its name verbatim; otherwise the
// name is derived from the title, or the host when the title is empty.
// Links that are not http or https are skipped.
func ParseHTMLBookmarks(r io.Reader) ([]model.NamedBookmark, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var bookmarks []model.NamedBookmark

	var parse func(*html.Node)
	parse = func(n *html.Node) {
		if n.Type == html.ElementNode && strings.EqualFold(n.Data, "a") {
			if nb, ok := bookmarkFromAnchor(n); ok {
				bookmarks = append(bookmarks, nb)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			parse(c)
		}
	}

	parse(doc)
	return bookmarks, nil
}

func bookmarkFromAnchor(n *html.Node) (model.NamedBookmark, bool) {
	href := strings.TrimSpace(getAttr(n, "href"))
	keyword := strings.TrimSpace(getAttr(n, "shortcuturl"))
	if keyword != "" {
		href = strings.ReplaceAll(href, browserPlaceholder, model.QueryPlaceholder)
	}

	u, err := url.Parse(href)
	if href == "" || err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return model.NamedBookmark{}, false
	}

	name := keyword
	if name == "" {
		name = Slug(getTextContent(n))
	}
	if name == "" {
		name = Slug(strings.TrimPrefix(u.Hostname(), "www."))
	}
	return model.NamedBookmark{Name: name, Bookmark: model.Bookmark{URL: href}}, true
}

// Slug lowercases s and turns every run of characters that are not letters
// or digits into a single "-", trimmed at both ends.
func Slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(r)
			continue
		}
		dash = true
	}
	return b.String()
}

// getTextContent returns the text content of a node.
func getTextContent(n *html.Node) string {
	var text strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			text.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(text.String())
}

// getAttr returns the value of an attribute, case-insensitive.
func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if strings.EqualFold(attr.Key, key) {
			return attr.Val
		}
	}
	return ""
}
