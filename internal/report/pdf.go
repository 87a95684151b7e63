package report

import (
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"PivotPeers/internal/model"
)

var pdfColumns = []struct {
	name  string
	width float64
}{
	{"Ticker", 22},
	{"Date", 24},
	{"High", 21},
	{"Low", 21},
	{"Close", 21},
	{"PrevClose", 23},
	{"% Chg", 18},
	{"Pivot P", 21},
	{"S1", 21},
	{"S2", 21},
	{"R1", 21},
	{"R2", 21},
}

// WritePDF renders a cover page plus one landscape table page per group.
func WritePDF(groups []*model.Group, title, path string) error {
	a4 := fpdf.SizeType{Wd: 210, Ht: 297}
	pdf := fpdf.New("P", "mm", "A4", "")

	// Cover
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 22)
	pdf.SetY(90)
	pdf.CellFormat(0, 12, title, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 8, FormulaSub, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 8, "Generated: "+time.Now().Format("2006-01-02 15:04"), "", 1, "C", false, 0, "")

	for _, g := range groups {
		pdf.AddPageFormat("L", a4)
		pdf.SetFont("Helvetica", "B", 14)
		pdf.CellFormat(0, 10, g.Label(), "", 1, "L", false, 0, "")
		pdf.Ln(2)

		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(245, 245, 245)
		for _, col := range pdfColumns {
			pdf.CellFormat(col.width, 8, col.name, "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Helvetica", "", 9)
		for _, r := range g.Rows {
			cells := []string{
				r.Symbol,
				r.Date,
				fmt.Sprintf("%.2f", r.High),
				fmt.Sprintf("%.2f", r.Low),
				fmt.Sprintf("%.2f", r.Close),
				fmt.Sprintf("%.2f", r.PrevClose),
				fmt.Sprintf("%.2f", r.ChangePct),
				fmt.Sprintf("%.2f", r.Pivot.P),
				fmt.Sprintf("%.2f", r.Pivot.S1),
				fmt.Sprintf("%.2f", r.Pivot.S2),
				fmt.Sprintf("%.2f", r.Pivot.R1),
				fmt.Sprintf("%.2f", r.Pivot.R2),
			}
			for i, c := range cells {
				pdf.CellFormat(pdfColumns[i].width, 7, c, "1", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
		}
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
