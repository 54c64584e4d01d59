package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"gblcortedobra/services"
)

func productJSON(r *core.Record) map[string]any {
	return map[string]any{
		"id":          r.Id,
		"name":        r.GetString("name"),
		"description": r.GetString("description"),
		"price":       r.GetFloat("price"),
		"unit":        r.GetString("unit"),
		"sku":         r.GetString("sku"),
		"stock":       r.GetInt("stock"),
		"created_at":  r.GetDateTime("created").Time().Format("2006-01-02T15:04:05"),
	}
}

type productRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Unit        string `json:"unit"`
	SKU         string `json:"sku"`
	Stock       *int   `json:"stock"`
}

// parsePrice accepts both "12.50" and the SPA's comma form "12,50".
func parsePrice(raw string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(raw), ",", "."), 64)
}

// HandleProductList returns every product, oldest first.
func HandleProductList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter("products", "id != ''", "created", 0, 0)
		if err != nil {
			return apiError(e, http.StatusInternalServerError, "Erro ao buscar produtos", err)
		}

		result := make([]map[string]any, 0, len(records))
		for _, r := range records {
			result = append(result, productJSON(r))
		}
		return e.JSON(http.StatusOK, result)
	}
}

// HandleProductCreate registers a new product. Name and price are
// required.
func HandleProductCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req productRequest
		if err := e.BindBody(&req); err != nil {
			return apiError(e, http.StatusBadRequest, "Requisição inválida", err)
		}

		req.Name = strings.TrimSpace(req.Name)
		if req.Name == "" || req.Price == "" {
			return apiMessage(e, http.StatusBadRequest, "Nome e preço do produto são obrigatórios")
		}

		price, err := parsePrice(req.Price)
		if err != nil {
			return apiMessage(e, http.StatusBadRequest, "Formato de preço ou estoque inválido.")
		}

		col, err := app.FindCollectionByNameOrId("products")
		if err != nil {
			return apiError(e, http.StatusInternalServerError, "Erro ao adicionar produto", err)
		}

		record := core.NewRecord(col)
		record.Set("name", req.Name)
		record.Set("description", req.Description)
		record.Set("price", price)
		record.Set("unit", req.Unit)
		record.Set("sku", req.SKU)
		if req.Stock != nil {
			record.Set("stock", *req.Stock)
		}

		if err := app.Save(record); err != nil {
			return apiError(e, http.StatusInternalServerError, "Erro ao adicionar produto", err)
		}

		return e.JSON(http.StatusCreated, map[string]any{
			"message": "Produto adicionado com sucesso!",
			"product": productJSON(record),
		})
	}
}

// HandleProductUpdate replaces a product's details.
func HandleProductUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("products", e.Request.PathValue("id"))
		if err != nil {
			return apiError(e, http.StatusNotFound, "Produto não encontrado", err)
		}

		var req productRequest
		if err := e.BindBody(&req); err != nil {
			return apiError(e, http.StatusBadRequest, "Requisição inválida", err)
		}

		if req.Name != "" {
			record.Set("name", strings.TrimSpace(req.Name))
		}
		record.Set("description", req.Description)
		record.Set("unit", req.Unit)
		record.Set("sku", req.SKU)
		if req.Price != "" {
			price, err := parsePrice(req.Price)
			if err != nil {
				return apiMessage(e, http.StatusBadRequest, "Formato de preço ou estoque inválido.")
			}
			record.Set("price", price)
		}
		if req.Stock != nil {
			record.Set("stock", *req.Stock)
		}

		if err := app.Save(record); err != nil {
			return apiError(e, http.StatusInternalServerError, "Erro ao atualizar produto", err)
		}

		return e.JSON(http.StatusOK, map[string]any{
			"message": "Produto atualizado com sucesso!",
			"product": productJSON(record),
		})
	}
}

// HandleProductDelete removes a product.
func HandleProductDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("products", e.Request.PathValue("id"))
		if err != nil {
			return apiError(e, http.StatusNotFound, "Produto não encontrado", err)
		}

		if err := app.Delete(record); err != nil {
			return apiError(e, http.StatusInternalServerError, "Erro ao deletar produto", err)
		}

		return apiMessage(e, http.StatusOK, "Produto deletado com sucesso!")
	}
}

// HandleProductImport ingests a multipart CSV/XLSX upload of products.
func HandleProductImport(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		file, header, err := e.Request.FormFile("file")
		if err != nil {
			return apiError(e, http.StatusBadRequest, "Nenhum arquivo enviado", err)
		}
		defer file.Close()

		headers, rows, err := services.ParseImportFile(file, header.Filename)
		if err != nil {
			return apiError(e, http.StatusBadRequest, err.Error(), err)
		}

		result, err := services.ImportProducts(app, headers, rows)
		if err != nil {
			return apiError(e, http.StatusInternalServerError, "Erro inesperado durante a importação", err)
		}

		return e.JSON(http.StatusOK, map[string]any{
			"message": result.Message("produtos"),
			"errors":  result.Errors,
		})
	}
}
