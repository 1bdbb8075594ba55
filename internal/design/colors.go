package design

import (
	"regexp"
	"sort"
)

// colorPattern matches 6- and 3-digit hex colors and rgb()/rgba() calls.
var colorPattern = regexp.MustCompile(`#[0-9a-fA-F]{6}|#[0-9a-fA-F]{3}|rgb\([^)]+\)|rgba\([^)]+\)`)

// Colors scans the serialized document for color literals. The result is
// deduplicated and sorted.
func Colors(doc *Document) ([]string, error) {
	markup, err := doc.Markup()
	if err != nil {
		return nil, err
	}
	return findColors(markup), nil
}

func findColors(s string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, m := range colorPattern.FindAllString(s, -1) {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}
