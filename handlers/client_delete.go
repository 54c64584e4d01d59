package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleClientDelete removes a client. Orders cascade with it, mirroring
// the relation's delete rule.
func HandleClientDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")

		record, err := app.FindRecordById("clients", id)
		if err != nil {
			return apiError(e, http.StatusNotFound, "Cliente não encontrado", err)
		}

		if err := app.Delete(record); err != nil {
			return apiError(e, http.StatusInternalServerError, "Erro ao deletar cliente", err)
		}

		log.Printf("client_delete: deleted client %s", id)
		return apiMessage(e, http.StatusOK, "Cliente deletado com sucesso!")
	}
}
