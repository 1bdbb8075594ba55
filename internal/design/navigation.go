package design

import "github.com/PuerkitoBio/goquery"

const (
	maxNavGroups = 3
	maxNavItems  = 8
)

var navClassHints = []string{"nav", "menu", "header"}

// Navigation collects link texts from navigation-like elements: <nav> tags
// first, then elements whose class mentions nav, menu or header. Only the
// first three candidates are inspected; a candidate without any non-empty
// link text contributes no group.
func Navigation(doc *Document) [][]string {
	candidates := doc.elements(func(s *goquery.Selection) bool {
		return tagIs(s, "nav")
	}).AddSelection(doc.withClass(navClassHints...))

	groups := make([][]string, 0, maxNavGroups)
	candidates.EachWithBreak(func(i int, s *goquery.Selection) bool {
		if i >= maxNavGroups {
			return false
		}
		var items []string
		s.Find("a").Each(func(_ int, a *goquery.Selection) {
			if t := text(a); t != "" {
				items = append(items, t)
			}
		})
		if len(items) == 0 {
			return true
		}
		if len(items) > maxNavItems {
			items = items[:maxNavItems]
		}
		groups = append(groups, items)
		return true
	})
	return groups
}
