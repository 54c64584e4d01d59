package services

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/xuri/excelize/v2"
)

// clientExportHeaders is the column set shared by the CSV and Excel
// exports, and the header row the importer maps back to record fields.
var clientExportHeaders = []string{
	"ID", "Nome", "Pessoa de Contato", "Telefone", "Email",
	"Endereço", "CNPJ", "Observações", "Status", "Criado Em",
}

func clientExportRow(r *core.Record) []string {
	return []string{
		r.Id,
		r.GetString("name"),
		r.GetString("contact_person"),
		r.GetString("phone"),
		r.GetString("email"),
		r.GetString("address"),
		r.GetString("cnpj"),
		r.GetString("observations"),
		r.GetString("status"),
		r.GetDateTime("created").Time().Format("2006-01-02T15:04:05"),
	}
}

// ExportClientsCSV renders every client as a CSV document.
func ExportClientsCSV(app *pocketbase.PocketBase) ([]byte, error) {
	records, err := app.FindAllRecords("clients")
	if err != nil {
		return nil, fmt.Errorf("load clients: %w", err)
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(clientExportHeaders); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range records {
		if err := writer.Write(clientExportRow(r)); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportClientsExcel renders every client as a styled xlsx workbook.
func ExportClientsExcel(app *pocketbase.PocketBase) ([]byte, error) {
	records, err := app.FindAllRecords("clients")
	if err != nil {
		return nil, fmt.Errorf("load clients: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Clientes"
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	widths := []float64{18, 30, 24, 16, 28, 36, 20, 36, 10, 20}
	for i := range clientExportHeaders {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, fmt.Errorf("column name: %w", err)
		}
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	for i, header := range clientExportHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return nil, fmt.Errorf("set header cell: %w", err)
		}
	}
	lastCol, err := excelize.ColumnNumberToName(len(clientExportHeaders))
	if err != nil {
		return nil, fmt.Errorf("column name: %w", err)
	}
	if err := f.SetCellStyle(sheetName, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, fmt.Errorf("apply header style: %w", err)
	}

	for rowIdx, r := range records {
		for colIdx, value := range clientExportRow(r) {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, fmt.Errorf("cell name: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return nil, fmt.Errorf("set cell: %w", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
