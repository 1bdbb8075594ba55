package design

import (
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// RelevantPatterns are the class fragments that mark design-system or page
// structure classes worth counting.
var RelevantPatterns = []string{
	"mdc-", "mat-", "google-", "gm-", "maps-",
	"hero", "section", "container", "card",
	"button", "nav", "header", "footer",
}

// ClassInventory summarizes the class attribute tokens found on a page.
type ClassInventory struct {
	// All is the deduplicated set of class tokens, sorted.
	All []string
	// Relevant holds one entry per (pattern, class) match, so a class that
	// matches two patterns appears twice.
	Relevant []string
}

// Classes enumerates every class token in the document and filters them
// against RelevantPatterns.
func Classes(doc *Document) ClassInventory {
	seen := make(map[string]struct{})
	doc.nodes().Filter("[class]").Each(func(_ int, s *goquery.Selection) {
		for _, c := range classList(s) {
			seen[c] = struct{}{}
		}
	})
	all := make([]string, 0, len(seen))
	for c := range seen {
		all = append(all, c)
	}
	sort.Strings(all)

	fold := cases.Lower(language.Und)
	lowered := make([]string, len(all))
	for i, c := range all {
		lowered[i] = fold.String(c)
	}
	relevant := make([]string, 0)
	for _, p := range RelevantPatterns {
		for i, c := range all {
			if strings.Contains(lowered[i], p) {
				relevant = append(relevant, c)
			}
		}
	}
	return ClassInventory{All: all, Relevant: relevant}
}
