package design

import "github.com/PuerkitoBio/goquery"

const maxLayoutSections = 8

var (
	sectionClassHints = []string{"section", "container", "hero", "feature"}
	gridClassHints    = []string{"grid", "col", "row"}
)

// LayoutPattern describes one section or container element.
type LayoutPattern struct {
	Tag     string   `json:"tag"`
	Classes []string `json:"classes"`
	HasGrid bool     `json:"has_grid"`
}

// Layout records up to eight <section>/<div> elements whose class suggests a
// page section. HasGrid is set when any descendant carries a grid, col or row
// class; the element's own classes do not count.
func Layout(doc *Document) []LayoutPattern {
	sections := doc.elements(func(s *goquery.Selection) bool {
		return tagIs(s, "section", "div") && classMatches(classList(s), sectionClassHints)
	})
	out := make([]LayoutPattern, 0, maxLayoutSections)
	sections.EachWithBreak(func(_ int, s *goquery.Selection) bool {
		out = append(out, LayoutPattern{
			Tag:     goquery.NodeName(s),
			Classes: classList(s),
			HasGrid: hasGridDescendant(s),
		})
		return len(out) < maxLayoutSections
	})
	return out
}

func hasGridDescendant(s *goquery.Selection) bool {
	found := false
	s.Find("[class]").EachWithBreak(func(_ int, d *goquery.Selection) bool {
		found = classMatches(classList(d), gridClassHints)
		return !found
	})
	return found
}
