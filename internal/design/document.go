package design

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Document is a parsed page ready for the extraction passes. Passes only read
// from it, so one Document can feed any number of them in any order.
type Document struct {
	doc *goquery.Document
}

// Parse builds a Document from an HTML stream.
func Parse(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return &Document{doc: doc}, nil
}

// ParseBytes is Parse over an in-memory body.
func ParseBytes(b []byte) (*Document, error) {
	return Parse(bytes.NewReader(b))
}

// NewDocument wraps an already parsed tree. The root may be a document node
// or any element; the passes consider the root itself as well as everything
// below it.
func NewDocument(root *html.Node) *Document {
	return &Document{doc: goquery.NewDocumentFromNode(root)}
}

// Markup serializes the whole tree back to HTML.
func (d *Document) Markup() (string, error) {
	var b strings.Builder
	for _, n := range d.doc.Nodes {
		if err := html.Render(&b, n); err != nil {
			return "", fmt.Errorf("render html: %w", err)
		}
	}
	return b.String(), nil
}

// nodes selects the root followed by its descendant elements, in document
// order.
func (d *Document) nodes() *goquery.Selection {
	return d.doc.Selection.AddSelection(d.doc.Find("*"))
}

// elements returns every element, in document order, that satisfies keep.
func (d *Document) elements(keep func(s *goquery.Selection) bool) *goquery.Selection {
	return d.nodes().FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.Nodes[0].Type == html.ElementNode && keep(s)
	})
}

// withClass returns elements having a class token that contains any hint.
func (d *Document) withClass(hints ...string) *goquery.Selection {
	return d.elements(func(s *goquery.Selection) bool {
		return classMatches(classList(s), hints)
	})
}

func tagIs(s *goquery.Selection, names ...string) bool {
	tag := goquery.NodeName(s)
	for _, n := range names {
		if tag == n {
			return true
		}
	}
	return false
}

// classList splits the class attribute into tokens. Never nil so JSON output
// shows [] for elements without classes.
func classList(s *goquery.Selection) []string {
	v, ok := s.Attr("class")
	if !ok {
		return []string{}
	}
	fields := strings.Fields(v)
	if fields == nil {
		return []string{}
	}
	return fields
}

// classMatches reports whether any class token contains any hint, ignoring case.
// Hints are expected in lower case.
func classMatches(classes []string, hints []string) bool {
	fold := cases.Lower(language.Und)
	for _, c := range classes {
		lc := fold.String(c)
		for _, h := range hints {
			if strings.Contains(lc, h) {
				return true
			}
		}
	}
	return false
}

func text(s *goquery.Selection) string {
	return strings.TrimSpace(s.Text())
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n])
}
