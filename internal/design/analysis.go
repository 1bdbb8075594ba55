// Package design extracts superficial design attributes from a parsed page:
// colors, headings, navigation labels, buttons and layout sections. Each pass
// is a plain function of the Document so it can be tested on its own.
package design

// Analysis is the design record for one page. Spacing is reserved and always
// empty; nothing on a page is inspected for it.
type Analysis struct {
	Colors          []string          `json:"colors"`
	Typography      []TypographyEntry `json:"typography"`
	LayoutPatterns  []LayoutPattern   `json:"layout_patterns"`
	ComponentStyles []ComponentStyle  `json:"component_styles"`
	Spacing         []string          `json:"spacing"`
	Navigation      [][]string        `json:"navigation"`
}

// Analyze runs every extraction pass over doc.
func Analyze(doc *Document) (Analysis, error) {
	colors, err := Colors(doc)
	if err != nil {
		return Analysis{}, err
	}
	return Analysis{
		Colors:          colors,
		Typography:      Typography(doc),
		LayoutPatterns:  Layout(doc),
		ComponentStyles: Buttons(doc),
		Spacing:         []string{},
		Navigation:      Navigation(doc),
	}, nil
}

// ButtonCount returns how many component styles are buttons.
func (a Analysis) ButtonCount() int {
	n := 0
	for _, c := range a.ComponentStyles {
		if c.Type == ComponentButton {
			n++
		}
	}
	return n
}
