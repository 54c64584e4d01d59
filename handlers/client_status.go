package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

type clientStatusRequest struct {
	Status string `json:"status"`
}

// HandleClientStatus is the dedicated partial update toggling a client
// between Ativo and Inativo.
func HandleClientStatus(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")

		record, err := app.FindRecordById("clients", id)
		if err != nil {
			return apiError(e, http.StatusNotFound, "Cliente não encontrado", err)
		}

		var req clientStatusRequest
		if err := e.BindBody(&req); err != nil {
			return apiError(e, http.StatusBadRequest, "Requisição inválida", err)
		}

		if req.Status != "Ativo" && req.Status != "Inativo" {
			return apiMessage(e, http.StatusBadRequest, "Status inválido")
		}

		record.Set("status", req.Status)
		if err := app.Save(record); err != nil {
			return apiError(e, http.StatusInternalServerError, "Erro ao alterar status do cliente", err)
		}

		return e.JSON(http.StatusOK, map[string]any{
			"message": "Status atualizado com sucesso!",
			"client":  clientJSON(record),
		})
	}
}
