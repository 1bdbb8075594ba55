package app

import (
	"bufio"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// writeReportPDF renders the plain-text report to a PDF. Lines framed by
// "===" become bold headings; everything else is set as body text.
func writeReportPDF(report string, outPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFont("Helvetica", "", 11)
	pdf.AddPage()

	scanner := bufio.NewScanner(strings.NewReader(report))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		s := strings.TrimSpace(line)
		if s == "" {
			pdf.Ln(4)
			continue
		}
		if strings.HasPrefix(s, "===") && strings.HasSuffix(s, "===") {
			heading := strings.TrimSpace(strings.Trim(s, "="))
			pdf.SetFont("Helvetica", "B", 13)
			pdf.CellFormat(0, 8, tr(heading), "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 11)
			continue
		}
		// Keep the report's two-space indentation for nested lines
		if strings.HasPrefix(line, "  ") {
			pdf.SetX(pdf.GetX() + 5)
		}
		pdf.MultiCell(0, 5, tr(s), "", "L", false)
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return pdf.OutputFileAndClose(outPath)
}
