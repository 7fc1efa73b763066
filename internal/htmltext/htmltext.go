// Package htmltext extracts plain text from HTML documents for the
// analysis tools.
package htmltext

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Extract parses HTML and returns its visible text content. Script
// and style bodies are skipped; block boundaries become newlines.
func Extract(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript":
				return
			}
		}
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode && isBlock(n.Data) {
			buf.WriteByte('\n')
		}
	}
	walk(doc)

	return strings.TrimSpace(buf.String()), nil
}

func isBlock(tag string) bool {
	switch tag {
	case "p", "div", "br", "li", "h1", "h2", "h3", "h4", "h5", "h6", "tr", "section", "article":
		return true
	}
	return false
}
