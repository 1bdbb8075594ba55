package design

import "github.com/PuerkitoBio/goquery"

const (
	maxButtons      = 10
	buttonTextLimit = 50
)

// ComponentButton is the only component type the button pass produces.
const ComponentButton = "button"

var buttonClassHints = []string{"button", "btn"}

// ComponentStyle describes one button-like element.
type ComponentStyle struct {
	Type    string   `json:"type"`
	Text    string   `json:"text"`
	Classes []string `json:"classes"`
}

// Buttons records up to ten button-like elements: <button> tags first, then
// elements whose class mentions button or btn. An element matching both ways
// is listed once.
func Buttons(doc *Document) []ComponentStyle {
	candidates := doc.elements(func(s *goquery.Selection) bool {
		return tagIs(s, "button")
	}).AddSelection(doc.withClass(buttonClassHints...))

	out := make([]ComponentStyle, 0, maxButtons)
	candidates.EachWithBreak(func(_ int, s *goquery.Selection) bool {
		out = append(out, ComponentStyle{
			Type:    ComponentButton,
			Text:    truncate(text(s), buttonTextLimit),
			Classes: classList(s),
		})
		return len(out) < maxButtons
	})
	return out
}
