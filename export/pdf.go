// Package export writes landed-cost results as PDF documents.
package export

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
	"github.com/luizmugnaicomex-art/landedcost"
)

var (
	headerColor     = [3]int{40, 40, 40}
	headerTextColor = [3]int{255, 255, 255}
	bodyTextColor   = [3]int{50, 50, 50}
	lineColor       = [3]int{200, 200, 200}
	negativeColor   = [3]int{192, 0, 0}
	positiveColor   = [3]int{0, 128, 0}
)

// compress is turned off by tests to look into the content streams.
var compress = true

// document is an A4 portrait PDF with a title band and a page footer.
type document struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

func newDocument(title, subtitle string) *document {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(compress)
	pdf.SetTitle(title, true)
	pdf.SetCreator("lcc", true)
	d := &document{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "R", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, d.tr("  "+title), "", 1, "L", true, 0, "")
	if subtitle != "" {
		pdf.SetFont("Arial", "", 10)
		pdf.SetFillColor(240, 240, 240)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.CellFormat(0, 8, d.tr("  "+subtitle), "", 1, "L", true, 0, "")
	}
	pdf.Ln(8)
	return d
}

// section prints a section title underlined by a thin line.
func (d *document) section(title string) {
	pdf := d.pdf
	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.Cell(0, 8, d.tr(title))
	pdf.Ln(7)
	pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
	pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
	pdf.Ln(4)
}

// row prints a table row. The first column is left aligned, the others right aligned.
func (d *document) row(widths []float64, cells []string, bold bool) {
	pdf := d.pdf
	style := ""
	border := ""
	if bold {
		style, border = "B", "T"
	}
	pdf.SetFont("Arial", style, 10)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	for i, c := range cells {
		align := "R"
		if i == 0 {
			align = "L"
		}
		pdf.CellFormat(widths[i], 7, d.tr(c), border, 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}

// header prints a table header row.
func (d *document) header(widths []float64, cells []string) {
	pdf := d.pdf
	pdf.SetFont("Arial", "B", 10)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	for i, c := range cells {
		align := "R"
		if i == 0 {
			align = "L"
		}
		pdf.CellFormat(widths[i], 7, d.tr(c), "B", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}

// highlight prints a bold line, green for a positive amount and red for a negative one.
func (d *document) highlight(label string, m landedcost.Money) {
	pdf := d.pdf
	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 12)
	color := bodyTextColor
	switch {
	case m.IsPositive():
		color = positiveColor
	case m.IsNegative():
		color = negativeColor
	}
	pdf.SetTextColor(color[0], color[1], color[2])
	pdf.CellFormat(0, 8, d.tr(label+" "+m.String()), "", 1, "L", false, 0, "")
}

func (d *document) output(w io.Writer) error {
	if err := d.pdf.Output(w); err != nil {
		return fmt.Errorf("error writing PDF: %w", err)
	}
	return nil
}

// CashFlowPDF writes the monthly series and the pending ledger of p.
func CashFlowPDF(w io.Writer, p landedcost.CashFlowProjection) error {
	d := newDocument(
		fmt.Sprintf("Cash flow %s to %s", p.Range.From.MonthLabel(), p.Range.To.MonthLabel()),
		"Amounts in BRL, converted at the sell rates",
	)

	d.section("Monthly expenses")
	widths := []float64{70, 60, 60}
	d.header(widths, []string{"Month", "Projected", "Actual"})
	for _, m := range p.Series {
		d.row(widths, []string{m.Month, m.Projected.String(), m.Actual.String()}, false)
	}
	d.row(widths, []string{"Total", p.TotalProjected().String(), p.TotalActual().String()}, true)

	if len(p.Pending) > 0 {
		d.pdf.Ln(8)
		d.section("Pending payments")
		widths := []float64{28, 40, 42, 45, 35}
		d.header(widths, []string{"Due", "Import", "Category", "Amount", "Status"})
		for _, it := range p.Pending {
			d.row(widths, []string{
				it.Item.DueDate.String(),
				it.ImportID,
				string(it.Item.Category),
				it.Item.Amount().String(),
				string(it.Item.Status),
			}, false)
		}
	}
	return d.output(w)
}

// ComparisonPDF writes the original and simulated breakdowns of an import side by side.
func ComparisonPDF(w io.Writer, importID string, c landedcost.Comparison) error {
	d := newDocument("Landed cost simulation "+importID, "Amounts in BRL")

	d.section("Breakdown")
	widths := []float64{55, 45, 45, 45}
	d.header(widths, []string{"Category", "Original", "Simulated", "Delta"})
	for _, cat := range c.Categories() {
		d.row(widths, []string{
			string(cat),
			c.Original.Amount(cat).String(),
			c.Simulated.Amount(cat).String(),
			c.Delta(cat).SignedString(),
		}, false)
	}
	d.row(widths, []string{"Total", c.Original.Total().String(), c.Simulated.Total().String(), ""}, true)

	if !c.WarehouseFee.IsZero() {
		d.pdf.Ln(4)
		d.row(widths, []string{"Bonded warehouse fee", "", c.WarehouseFee.String(), ""}, false)
	}
	d.highlight("Savings:", c.Savings())
	return d.output(w)
}
