package services

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"
)

// Page geometry shared by the cursor-based composers. A4 portrait,
// millimeter units.
const (
	pageMargin   = 20.0
	headerStartY = 30.0
	footerOffset = 30.0 // footer baseline measured up from the page bottom
)

// OrderDocument carries everything printed on an order slip.
type OrderDocument struct {
	Number      string
	Date        time.Time
	ClientName  string
	Material    string
	Thickness   string
	WidthMm     float64
	LengthMm    float64
	Quantity    int
	Notes       string
	Value       float64
	Status      string
}

// ComposeOrderPDF lays out a single-page order slip and returns the PDF
// bytes. The layout keeps a running vertical cursor: every line advances
// it by a fixed step for the active font size, and the disclaimer footer
// is placed at an absolute position near the bottom margin.
func ComposeOrderPDF(company CompanyInfo, doc OrderDocument) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	pageWidth, pageHeight := pdf.GetPageSize()
	y := headerStartY

	y = writeLetterhead(pdf, tr, company, pageWidth, y)

	// Order title and date
	y += 15
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Text(pageMargin, y, tr(fmt.Sprintf("PEDIDO %s", doc.Number)))

	y += 10
	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(pageMargin, y, tr(fmt.Sprintf("Data: %s", FormatDateBR(doc.Date))))

	// Client block
	y += 20
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(pageMargin, y, tr("DADOS DO CLIENTE:"))

	y += 10
	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(pageMargin, y, tr(fmt.Sprintf("Cliente: %s", doc.ClientName)))

	// Specification rows: label column at the margin, value column offset
	y += 20
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(pageMargin, y, tr("ESPECIFICAÇÕES DO PEDIDO:"))

	y += 15
	pdf.SetFont("Helvetica", "", 12)
	specs := [][2]string{
		{"Material:", doc.Material},
		{"Espessura:", doc.Thickness},
		{"Dimensões:", fmt.Sprintf("%s x %s mm", formatDimension(doc.WidthMm), formatDimension(doc.LengthMm))},
		{"Quantidade:", fmt.Sprintf("%d peças", doc.Quantity)},
	}
	for _, spec := range specs {
		pdf.Text(pageMargin, y, tr(spec[0]))
		pdf.Text(pageMargin+40, y, tr(spec[1]))
		y += 8
	}

	// Optional wrapped notes
	if doc.Notes != "" {
		y += 10
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Text(pageMargin, y, tr("OBSERVAÇÕES:"))

		y += 10
		pdf.SetFont("Helvetica", "", 12)
		printable := pageWidth - 2*pageMargin
		lines := WrapText(doc.Notes, printable, func(s string) float64 {
			return pdf.GetStringWidth(tr(s))
		})
		for _, line := range lines {
			pdf.Text(pageMargin, y, tr(line))
			y += 6
		}
	}

	// Total, separated by a rule
	y += 20
	pdf.Line(pageMargin, y, pageWidth-pageMargin, y)

	y += 15
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(pageMargin, y, tr(fmt.Sprintf("VALOR TOTAL: %s", FormatBRL(doc.Value))))

	y += 15
	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(pageMargin, y, tr(fmt.Sprintf("Status: %s", doc.Status)))

	// Disclaimer pinned to the bottom margin, independent of the cursor
	pdf.SetFont("Helvetica", "I", 10)
	pdf.Text(pageMargin, pageHeight-footerOffset, tr("Este documento foi gerado automaticamente pelo sistema GBL."))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("compose order pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// OrderPDFFilename builds the download name for an order slip, replacing
// whitespace runs in the client name with underscores.
func OrderPDFFilename(number, clientName string) string {
	return fmt.Sprintf("Pedido_%s_%s.pdf", number, strings.Join(strings.Fields(clientName), "_"))
}

// writeLetterhead prints the company header block followed by a horizontal
// rule and returns the cursor position at the rule.
func writeLetterhead(pdf *gofpdf.Fpdf, tr func(string) string, company CompanyInfo, pageWidth, y float64) float64 {
	pdf.SetFont("Helvetica", "B", 20)
	pdf.Text(pageMargin, y, tr(company.Name))

	y += 10
	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(pageMargin, y, tr(company.Tagline))

	y += 5
	pdf.Text(pageMargin, y, tr(company.Address))

	y += 5
	pdf.Text(pageMargin, y, tr(company.Phones))

	y += 5
	pdf.Text(pageMargin, y, tr(company.Email))

	y += 15
	pdf.Line(pageMargin, y, pageWidth-pageMargin, y)
	return y
}

// formatDimension renders a millimeter value without trailing zeros.
func formatDimension(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
