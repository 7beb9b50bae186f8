// Package pdf composes the tabular report documents the admin panel
// downloads. Layout mirrors the panel's reports: centered bold title,
// centered generation timestamp, optional filter annotation that shifts the
// content start, bold total line, grid table with the header row repeated on
// every page, and a fixed italic footer stamped on each physical page.
package pdf

import (
	"bytes"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-pdf/fpdf"
	"github.com/klauspost/lctime"
)

const (
	pageWidth    = 210.0
	marginX      = 14.0
	usableWidth  = pageWidth - 2*marginX
	rowHeight    = 8.0
	breakAtY     = 270.0
	filterOffset = 6.0

	// FooterText stamps every page of every report.
	FooterText = "Herbalife Clubes - Sistema de Gestión"
)

// Herbalife green, same fill the web panel used for table heads.
var headFill = [3]int{124, 179, 66}

// Table describes one report document.
type Table struct {
	Title       string
	GeneratedAt time.Time
	Filter      string // rendered only when non-empty
	Total       string // e.g. "Total de membresías: 12"
	Head        []string
	Rows        [][]string
}

// Render lays the document out and serializes it. Zero rows is a valid
// document: head row only, no error.
func (t *Table) Render() ([]byte, error) {
	doc := t.compose()
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// compose builds the laid-out document. Split from Render so tests can
// inspect the final page count.
func (t *Table) compose() *fpdf.Fpdf {
	doc := fpdf.New("P", "mm", "A4", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.SetMargins(marginX, 15, marginX)
	doc.SetAutoPageBreak(false, 0)

	// The footer hook fires once per physical page when the page is
	// finalized, i.e. after that page's table layout is done. Page count is
	// unknown until layout finishes; this is the fpdf shape of
	// "stamp the footer after the layout pass".
	doc.SetFooterFunc(func() {
		doc.SetY(-12)
		doc.SetFont("Helvetica", "I", 8)
		doc.SetTextColor(0, 0, 0)
		doc.CellFormat(0, 8, tr(FooterText), "", 0, "C", false, 0, "")
	})

	doc.AddPage()

	doc.SetFont("Helvetica", "B", 18)
	doc.SetY(12)
	doc.CellFormat(0, 10, tr(t.Title), "", 1, "C", false, 0, "")

	doc.SetFont("Helvetica", "", 10)
	generated, err := lctime.StrftimeLoc("es_ES", "%d/%m/%Y %H:%M:%S", t.GeneratedAt)
	if err != nil {
		generated = t.GeneratedAt.Format("02/01/2006 15:04:05")
	}
	doc.CellFormat(0, 6, tr("Generado: "+generated), "", 1, "C", false, 0, "")

	y := doc.GetY() + 2
	if t.Filter != "" {
		doc.SetFont("Helvetica", "", 9)
		doc.SetY(y)
		doc.CellFormat(0, 5, tr(t.Filter), "", 1, "L", false, 0, "")
		y += filterOffset
	}

	doc.SetFont("Helvetica", "B", 10)
	doc.SetY(y)
	doc.CellFormat(0, 6, tr(t.Total), "", 1, "L", false, 0, "")
	doc.SetY(y + 8)

	t.drawHead(doc, tr)
	for _, row := range t.Rows {
		if doc.GetY()+rowHeight > breakAtY {
			doc.AddPage()
			t.drawHead(doc, tr)
		}
		t.drawRow(doc, tr, row)
	}

	return doc
}

func (t *Table) drawHead(doc *fpdf.Fpdf, tr func(string) string) {
	doc.SetFont("Helvetica", "B", 9)
	doc.SetFillColor(headFill[0], headFill[1], headFill[2])
	doc.SetTextColor(255, 255, 255)
	w := usableWidth / float64(len(t.Head))
	for _, cell := range t.Head {
		doc.CellFormat(w, rowHeight, tr(clip(cell, w)), "1", 0, "C", true, 0, "")
	}
	doc.Ln(rowHeight)
}

func (t *Table) drawRow(doc *fpdf.Fpdf, tr func(string) string, row []string) {
	doc.SetFont("Helvetica", "", 9)
	doc.SetTextColor(0, 0, 0)
	w := usableWidth / float64(len(t.Head))
	for i := 0; i < len(t.Head); i++ {
		var cell string
		if i < len(row) {
			cell = row[i]
		}
		doc.CellFormat(w, rowHeight, tr(clip(OrNA(cell), w)), "1", 0, "L", false, 0, "")
	}
	doc.Ln(rowHeight)
}

// OrNA substitutes the placeholder for missing backend fields.
func OrNA(value string) string {
	if strings.TrimSpace(value) == "" {
		return "N/A"
	}
	return value
}

// clip truncates a cell to roughly its column width at font size 9.
func clip(value string, width float64) string {
	max := int(width / 1.9)
	if max < 4 || utf8.RuneCountInString(value) <= max {
		return value
	}
	runes := []rune(value)
	return string(runes[:max-1]) + "…"
}
