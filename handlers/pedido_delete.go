package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandlePedidoDelete removes an order.
func HandlePedidoDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")

		record, err := app.FindRecordById("orders", id)
		if err != nil {
			return apiError(e, http.StatusNotFound, "Pedido não encontrado", err)
		}

		if err := app.Delete(record); err != nil {
			return apiError(e, http.StatusInternalServerError, "Erro ao deletar pedido", err)
		}

		log.Printf("pedido_delete: deleted order %s (%s)", id, record.GetString("order_number"))
		return apiMessage(e, http.StatusOK, "Pedido deletado com sucesso!")
	}
}
