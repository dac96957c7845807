package infra

// pdf.go — Visitor list rendering using go-pdf/fpdf.
// Produces an A4 landscape table with one row per visitor:
// name, cin, phone, reason, status, registration date.

import (
	"fmt"
	"io"

	"visitreg/internal/model"

	"github.com/go-pdf/fpdf"
)

// RenderVisitorListPDF writes a tabular PDF of the given visitors to w.
// It is a pure function of its input; any rendering failure aborts the whole
// document rather than emitting partial output.
func RenderVisitorListPDF(w io.Writer, visitors []model.Visitor) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	// Core fonts are cp1252; translate UTF-8 field text so accented names
	// survive.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(10, 12, 10)
	pdf.SetAutoPageBreak(true, 14)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 20

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, "Visitor Register", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, fmt.Sprintf("%d visitor(s)", len(visitors)), "", 1, "C", false, 0, "")
	pdf.Ln(3)

	// ── Column layout ────────────────────────────────────────────────────────
	cols := []struct {
		title string
		width float64
	}{
		{"Name", contentW * 0.24},
		{"CIN", contentW * 0.13},
		{"Phone", contentW * 0.13},
		{"Reason", contentW * 0.28},
		{"Status", contentW * 0.10},
		{"Date", contentW * 0.12},
	}

	header := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		for _, col := range cols {
			pdf.CellFormat(col.width, 7, col.title, "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
	}
	header()

	// ── Rows ─────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 8)
	for _, v := range visitors {
		fields := []string{
			tr(truncate(v.Name, 40)),
			tr(v.CIN),
			v.Phone,
			tr(truncate(v.Reason, 48)),
			v.Status,
			v.CreatedAt.Format("02/01/2006 15:04"),
		}
		for i, col := range cols {
			pdf.CellFormat(col.width, 6, fields[i], "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("pdf: render visitor list: %w", err)
	}
	return nil
}

// truncate caps s at max runes. It cuts on rune boundaries so accented names
// stay valid UTF-8, and marks the cut with plain "..." since the core fonts
// only cover cp1252.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
