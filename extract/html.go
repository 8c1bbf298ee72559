package extract

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// ignoredTags contains HTML tags whose content is never translatable UI text.
var ignoredTags = map[string]bool{
	"script":   true,
	"style":    true,
	"code":     true,
	"pre":      true,
	"textarea": true,
	"noscript": true,
}

// ScanHTML extracts translatable text from an HTML template: every trimmed,
// non-empty text node outside ignored tags becomes an entry keyed by its
// own text, gettext style. Elements carrying a data-no-translate attribute
// are skipped with their subtrees.
func ScanHTML(file string, r io.Reader) ([]Entry, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML template %s: %w", file, err)
	}

	var entries []Entry
	seen := make(map[string]bool)

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if ignoredTags[strings.ToLower(n.Data)] {
				return
			}

			for _, attr := range n.Attr {
				if attr.Key == "data-no-translate" {
					return
				}
			}
		}

		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" && !seen[text] {
				seen[text] = true
				entries = append(entries, Entry{
					MsgID: text,
					Refs:  []Ref{{File: file}},
				})
			}
		}

		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}

	for _, root := range doc.Nodes {
		walk(root)
	}

	return entries, nil
}
