package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/xuri/excelize/v2"
)

// ImportResult summarizes an upsert import run. Row errors do not abort
// the run; the offending rows are skipped and reported.
type ImportResult struct {
	Imported int
	Updated  int
	Errors   []string
}

// Message renders the user-facing summary line in the original system's
// wording.
func (r ImportResult) Message(what string) string {
	msg := fmt.Sprintf("Importação concluída. Novos %s: %d, Atualizados: %d.", what, r.Imported, r.Updated)
	if len(r.Errors) > 0 {
		msg += fmt.Sprintf(" Erros encontrados: %d.", len(r.Errors))
	}
	return msg
}

// ParseImportFile reads an uploaded .csv or .xlsx file and returns the
// header row plus data rows.
func ParseImportFile(file io.Reader, fileName string) ([]string, [][]string, error) {
	lower := strings.ToLower(fileName)
	switch {
	case strings.HasSuffix(lower, ".csv"):
		return parseCSV(file)
	case strings.HasSuffix(lower, ".xlsx"):
		return parseExcel(file)
	default:
		return nil, nil, fmt.Errorf("formato de arquivo inválido: apenas CSV ou XLSX são permitidos")
	}
}

func parseCSV(file io.Reader) ([]string, [][]string, error) {
	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	allRows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(allRows) < 1 {
		return nil, nil, fmt.Errorf("arquivo CSV vazio ou sem cabeçalho")
	}
	return allRows[0], allRows[1:], nil
}

func parseExcel(file io.Reader) ([]string, [][]string, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	if len(rows) < 1 {
		return nil, nil, fmt.Errorf("arquivo vazio ou sem cabeçalho")
	}
	return rows[0], rows[1:], nil
}

// mapColumns resolves header labels to record field names. Unknown columns
// are ignored.
func mapColumns(headers []string, labelToField map[string]string) map[string]int {
	indices := make(map[string]int)
	for i, h := range headers {
		norm := strings.TrimSpace(h)
		if field, ok := labelToField[norm]; ok {
			indices[field] = i
		}
	}
	return indices
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

var clientColumnMapping = map[string]string{
	"ID":                "id",
	"Nome":              "name",
	"Pessoa de Contato": "contact_person",
	"Telefone":          "phone",
	"Email":             "email",
	"Endereço":          "address",
	"CNPJ":              "cnpj",
	"Observações":       "observations",
	"Status":            "status",
}

// ImportClients upserts client rows: an existing record is matched first
// by ID, then by name; everything else becomes a new client.
func ImportClients(app *pocketbase.PocketBase, headers []string, rows [][]string) (*ImportResult, error) {
	col, err := app.FindCollectionByNameOrId("clients")
	if err != nil {
		return nil, fmt.Errorf("find clients collection: %w", err)
	}

	indices := mapColumns(headers, clientColumnMapping)
	result := &ImportResult{}

	for rowNum, row := range rows {
		if len(row) == 0 {
			continue
		}
		lineNo := rowNum + 2 // 1-based, after the header row

		name := cellAt(row, colIndex(indices, "name"))
		existing := findExisting(app, "clients", cellAt(row, colIndex(indices, "id")), name)

		if existing == nil && name == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("Linha %d: Nome do cliente é obrigatório e não fornecido.", lineNo))
			continue
		}

		record := existing
		if record == nil {
			record = core.NewRecord(col)
			record.Set("status", "Ativo")
		}

		for _, field := range []string{"name", "contact_person", "phone", "email", "address", "cnpj", "observations", "status"} {
			idx := colIndex(indices, field)
			if idx < 0 {
				continue
			}
			if value := cellAt(row, idx); value != "" {
				record.Set(field, value)
			}
		}

		if err := app.Save(record); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Linha %d: %v", lineNo, err))
			continue
		}

		if existing != nil {
			result.Updated++
		} else {
			result.Imported++
		}
	}

	return result, nil
}

var productColumnMapping = map[string]string{
	"ID":        "id",
	"Nome":      "name",
	"Descrição": "description",
	"Preço":     "price",
	"Unidade":   "unit",
	"SKU":       "sku",
	"Estoque":   "stock",
}

// ImportProducts upserts product rows with the same matching rules as
// ImportClients. Price accepts both comma and dot decimal separators.
func ImportProducts(app *pocketbase.PocketBase, headers []string, rows [][]string) (*ImportResult, error) {
	col, err := app.FindCollectionByNameOrId("products")
	if err != nil {
		return nil, fmt.Errorf("find products collection: %w", err)
	}

	indices := mapColumns(headers, productColumnMapping)
	result := &ImportResult{}

	for rowNum, row := range rows {
		if len(row) == 0 {
			continue
		}
		lineNo := rowNum + 2

		name := cellAt(row, colIndex(indices, "name"))
		existing := findExisting(app, "products", cellAt(row, colIndex(indices, "id")), name)

		if existing == nil && name == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("Linha %d: Nome do produto é obrigatório e não fornecido.", lineNo))
			continue
		}

		priceRaw := cellAt(row, colIndex(indices, "price"))
		var price float64
		if priceRaw != "" {
			price, err = strconv.ParseFloat(strings.ReplaceAll(priceRaw, ",", "."), 64)
			if err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("Linha %d: Formato de preço inválido para '%s'.", lineNo, priceRaw))
				continue
			}
		} else if existing == nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Linha %d: Preço é obrigatório e não fornecido.", lineNo))
			continue
		}

		stock := 0
		stockRaw := cellAt(row, colIndex(indices, "stock"))
		if stockRaw != "" {
			stock, err = strconv.Atoi(stockRaw)
			if err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("Linha %d: Formato de estoque inválido para '%s'.", lineNo, stockRaw))
				continue
			}
		}

		record := existing
		if record == nil {
			record = core.NewRecord(col)
		}

		for _, field := range []string{"name", "description", "unit", "sku"} {
			idx := colIndex(indices, field)
			if idx < 0 {
				continue
			}
			if value := cellAt(row, idx); value != "" {
				record.Set(field, value)
			}
		}
		if priceRaw != "" {
			record.Set("price", price)
		}
		if stockRaw != "" {
			record.Set("stock", stock)
		}

		if err := app.Save(record); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Linha %d: %v", lineNo, err))
			continue
		}

		if existing != nil {
			result.Updated++
		} else {
			result.Imported++
		}
	}

	return result, nil
}

func colIndex(indices map[string]int, field string) int {
	if idx, ok := indices[field]; ok {
		return idx
	}
	return -1
}

// findExisting locates a record by ID first, then by exact name.
func findExisting(app *pocketbase.PocketBase, collection, id, name string) *core.Record {
	if id != "" {
		if record, err := app.FindRecordById(collection, id); err == nil {
			return record
		}
	}
	if name != "" {
		records, err := app.FindRecordsByFilter(
			collection,
			"name = {:name}",
			"", 1, 0,
			map[string]any{"name": name},
		)
		if err == nil && len(records) > 0 {
			return records[0]
		}
	}
	return nil
}
