package design

import "github.com/PuerkitoBio/goquery"

const (
	maxHeadings      = 5
	headingTextLimit = 100
)

// TypographyEntry describes one heading element.
type TypographyEntry struct {
	Tag     string   `json:"tag"`
	Text    string   `json:"text"`
	Classes []string `json:"classes"`
}

// Typography records the first five h1-h6 elements in document order.
func Typography(doc *Document) []TypographyEntry {
	headings := doc.elements(func(s *goquery.Selection) bool {
		return tagIs(s, "h1", "h2", "h3", "h4", "h5", "h6")
	})
	out := make([]TypographyEntry, 0, maxHeadings)
	headings.EachWithBreak(func(_ int, s *goquery.Selection) bool {
		out = append(out, TypographyEntry{
			Tag:     goquery.NodeName(s),
			Text:    truncate(text(s), headingTextLimit),
			Classes: classList(s),
		})
		return len(out) < maxHeadings
	})
	return out
}
