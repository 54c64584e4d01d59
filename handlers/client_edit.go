package handlers

import (
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleClientUpdate replaces a client's details from a full form
// re-submit.
func HandleClientUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")

		record, err := app.FindRecordById("clients", id)
		if err != nil {
			return apiError(e, http.StatusNotFound, "Cliente não encontrado", err)
		}

		var req clientRequest
		if err := e.BindBody(&req); err != nil {
			return apiError(e, http.StatusBadRequest, "Requisição inválida", err)
		}

		req.Name = strings.TrimSpace(req.Name)
		if req.Name == "" {
			return apiMessage(e, http.StatusBadRequest, "Nome do cliente é obrigatório")
		}

		setClientFields(record, req)

		if err := app.Save(record); err != nil {
			return apiError(e, http.StatusInternalServerError, "Erro ao atualizar cliente", err)
		}

		return e.JSON(http.StatusOK, map[string]any{
			"message": "Cliente atualizado com sucesso!",
			"client":  clientJSON(record),
		})
	}
}
