package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"
)

// Vertical space that must remain below the cursor before starting another
// client block; crossing it forces a page break.
const rosterBreakOffset = 50.0

// RosterEntry is one client line-up in the roster report. Phone and Email
// are optional; their lines are skipped when empty.
type RosterEntry struct {
	Name          string
	ContactPerson string
	Phone         string
	Email         string
	Status        string
	RegisteredAt  time.Time
}

// ComposeClientRosterPDF lays out the multi-page client report. Each
// client block is preceded by a page-break check: if the cursor has
// crossed the bottom threshold the block starts on a fresh page with the
// cursor reset to the top margin.
func ComposeClientRosterPDF(company CompanyInfo, entries []RosterEntry, generatedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	pageWidth, pageHeight := pdf.GetPageSize()
	y := headerStartY

	pdf.SetFont("Helvetica", "B", 20)
	pdf.Text(pageMargin, y, tr(company.Name))

	y += 15
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Text(pageMargin, y, tr("RELATÓRIO DE CLIENTES"))

	y += 10
	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(pageMargin, y, tr(fmt.Sprintf("Gerado em: %s", FormatDateBR(generatedAt))))

	y += 15
	pdf.Line(pageMargin, y, pageWidth-pageMargin, y)

	y += 15
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(pageMargin, y, tr(fmt.Sprintf("TOTAL DE CLIENTES: %d", len(entries))))

	y += 15

	for i, entry := range entries {
		if y > pageHeight-rosterBreakOffset {
			pdf.AddPage()
			y = headerStartY
		}

		pdf.SetFont("Helvetica", "B", 12)
		pdf.Text(pageMargin, y, tr(fmt.Sprintf("%d. %s", i+1, entry.Name)))

		pdf.SetFont("Helvetica", "", 12)
		y += 8
		pdf.Text(pageMargin+5, y, tr(fmt.Sprintf("Contato: %s", entry.ContactPerson)))

		if entry.Phone != "" {
			y += 6
			pdf.Text(pageMargin+5, y, tr(fmt.Sprintf("Telefone: %s", entry.Phone)))
		}

		if entry.Email != "" {
			y += 6
			pdf.Text(pageMargin+5, y, tr(fmt.Sprintf("E-mail: %s", entry.Email)))
		}

		y += 6
		pdf.Text(pageMargin+5, y, tr(fmt.Sprintf("Status: %s", entry.Status)))

		y += 6
		pdf.Text(pageMargin+5, y, tr(fmt.Sprintf("Cadastrado em: %s", FormatDateBR(entry.RegisteredAt))))

		y += 15
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("compose client roster pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// RosterPDFFilename builds the download name for a roster generated on the
// given date.
func RosterPDFFilename(generatedAt time.Time) string {
	return fmt.Sprintf("Relatorio_Clientes_%s.pdf", generatedAt.Format("2006-01-02"))
}
