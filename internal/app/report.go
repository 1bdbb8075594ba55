package app

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

const (
	reportColorLimit   = 10
	reportHeadingChars = 50
)

type reportWriter struct {
	w   io.Writer
	err error
}

func (r *reportWriter) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}

// WriteReport prints the human-readable summary of res.
func WriteReport(w io.Writer, target string, res Result) error {
	rw := &reportWriter{w: w}
	if res.Status != StatusSuccess || res.Analysis == nil {
		label := "analyzing"
		if res.Kind == KindFetch {
			label = "fetching"
		}
		rw.printf("Error %s the website: %s\n", label, res.Message)
		rw.printf("\n=== SCRAPING FAILED ===\n")
		rw.printf("Error: %s\n", res.Message)
		return rw.err
	}

	a := res.Analysis
	rw.printf("=== PAGE DESIGN ANALYSIS ===\n")
	rw.printf("URL: %s\n", target)
	rw.printf("Total CSS classes found: %d\n", len(res.Classes.All))
	rw.printf("Relevant design-system patterns: %d\n", len(res.Classes.Relevant))
	rw.printf("Colors extracted: %d\n", len(a.Colors))
	rw.printf("Typography patterns: %d\n", len(a.Typography))
	rw.printf("Navigation structures: %d\n", len(a.Navigation))
	rw.printf("Button patterns: %d\n", a.ButtonCount())
	rw.printf("Layout sections: %d\n", len(a.LayoutPatterns))

	rw.printf("\n=== KEY DESIGN PATTERNS ===\n")
	if len(a.Colors) > 0 {
		colors := a.Colors
		if len(colors) > reportColorLimit {
			colors = colors[:reportColorLimit]
		}
		rw.printf("Color palette: %s\n", formatList(colors))
	}
	if len(a.Typography) > 0 {
		rw.printf("\nTypography hierarchy:\n")
		for _, t := range a.Typography {
			rw.printf("  %s: %s...\n", t.Tag, clip(t.Text, reportHeadingChars))
		}
	}
	if len(a.Navigation) > 0 {
		rw.printf("\nNavigation items: %s\n", formatList(a.Navigation[0]))
	}

	rw.printf("\n=== DESIGN TOKENS ===\n")
	for _, tok := range res.DesignTokens {
		rw.printf("%s: %s\n", tok.Name, tok.Value)
	}
	if res.Brief != "" {
		rw.printf("\n=== DESIGN BRIEF ===\n%s\n", res.Brief)
	}

	rw.printf("\n=== SCRAPING COMPLETED SUCCESSFULLY ===\n")
	rw.printf("Design analysis complete. Ready to implement the page's UI patterns.\n")
	return rw.err
}

// formatList prints items as a quoted list: ['a', 'b']. Items holding a
// single quote but no double quote are wrapped in double quotes instead.
func formatList(items []string) string {
	quoted := make([]string, len(items))
	for i, it := range items {
		quoted[i] = quoteItem(it)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

func quoteItem(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	if strings.Contains(s, "'") && !strings.Contains(s, `"`) {
		return `"` + s + `"`
	}
	return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
}

func clip(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
