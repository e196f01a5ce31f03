package export

import (
	"bytes"

	"github.com/phpdave11/gofpdf"
)

// BuildPDF renders rows as a bordered table: dark header with light text,
// right-aligned amounts, full grid.
func BuildPDF(rows []Row) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Expenses", false)
	pdf.SetMargins(14, 14, 14)
	pdf.AddPage()

	colW := []float64{30, 34, 30, 88}

	writeHeader := func() {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(128, 128, 128)
		pdf.SetTextColor(255, 255, 255)
		pdf.CellFormat(colW[0], 8, header.Date, "1", 0, "C", true, 0, "")
		pdf.CellFormat(colW[1], 8, header.Category, "1", 0, "C", true, 0, "")
		pdf.CellFormat(colW[2], 8, header.Amount, "1", 0, "C", true, 0, "")
		pdf.CellFormat(colW[3], 8, header.Description, "1", 1, "L", true, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(30, 30, 30)
	}
	writeHeader()

	pdf.SetDrawColor(0, 0, 0)
	for _, r := range rows {
		if pdf.GetY() > 270 {
			pdf.AddPage()
			writeHeader()
		}
		pdf.CellFormat(colW[0], 8, r.Date, "1", 0, "C", false, 0, "")
		pdf.CellFormat(colW[1], 8, r.Category, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colW[2], 8, r.Amount, "1", 0, "R", false, 0, "")
		pdf.CellFormat(colW[3], 8, trimTo(r.Description, 60), "1", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func trimTo(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
