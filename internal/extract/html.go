// Package extract pulls company, funding, and date fields out of scraped
// article HTML using regex patterns and keyword scoring.
package extract

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// Parse parses an HTML document. A parse failure returns nil rather than an
// error; callers treat a nil document as "nothing extractable".
func Parse(page string) *html.Node {
	doc, err := html.Parse(strings.NewReader(page))
	if err != nil {
		return nil
	}
	return doc
}

// Text collects all text content beneath a node.
func Text(n *html.Node) string {
	if n == nil {
		return ""
	}
	var sb strings.Builder
	collectText(n, &sb)
	return sb.String()
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}

// Attr returns the value of the named attribute, or "".
func Attr(n *html.Node, key string) string {
	if n == nil {
		return ""
	}
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// FindAll returns every element with one of the given tag names, in document
// order.
func FindAll(n *html.Node, tags ...string) []*html.Node {
	var out []*html.Node
	walk(n, func(node *html.Node) bool {
		if node.Type == html.ElementNode {
			for _, tag := range tags {
				if node.Data == tag {
					out = append(out, node)
					break
				}
			}
		}
		return true
	})
	return out
}

// First returns the first element with the given tag name, or nil.
func First(n *html.Node, tag string) *html.Node {
	var found *html.Node
	walk(n, func(node *html.Node) bool {
		if node.Type == html.ElementNode && node.Data == tag {
			found = node
			return false
		}
		return true
	})
	return found
}

// FirstByClass returns the first element with the given tag whose class
// attribute matches the pattern, or nil.
func FirstByClass(n *html.Node, tag string, classRe *regexp.Regexp) *html.Node {
	var found *html.Node
	walk(n, func(node *html.Node) bool {
		if node.Type == html.ElementNode && node.Data == tag && classRe.MatchString(Attr(node, "class")) {
			found = node
			return false
		}
		return true
	})
	return found
}

// MetaContent returns the content attribute of the first <meta> whose
// attrKey attribute equals attrVal (e.g. name=description).
func MetaContent(n *html.Node, attrKey, attrVal string) string {
	var content string
	walk(n, func(node *html.Node) bool {
		if node.Type == html.ElementNode && node.Data == "meta" && Attr(node, attrKey) == attrVal {
			content = Attr(node, "content")
			return false
		}
		return true
	})
	return content
}

// walk runs fn over every node depth-first; fn returning false stops the walk.
func walk(n *html.Node, fn func(*html.Node) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, fn) {
			return false
		}
	}
	return true
}
