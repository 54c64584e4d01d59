package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"gblcortedobra/services"
)

// HandleClientImport ingests a multipart CSV/XLSX upload and upserts the
// rows. Row-level problems are returned alongside the summary, never as a
// hard failure.
func HandleClientImport(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
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

		result, err := services.ImportClients(app, headers, rows)
		if err != nil {
			return apiError(e, http.StatusInternalServerError, "Erro inesperado durante a importação", err)
		}

		return e.JSON(http.StatusOK, map[string]any{
			"message": result.Message("clientes"),
			"errors":  result.Errors,
		})
	}
}
