package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"gblcortedobra/services"
)

// HandlePedidoUpdate re-submits an order. The value is recomputed with
// the rate table in effect now, so an edit takes a fresh snapshot. The
// order number never changes, and no webhook fires on edit.
func HandlePedidoUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("orders", e.Request.PathValue("id"))
		if err != nil {
			return apiError(e, http.StatusNotFound, "Pedido não encontrado", err)
		}

		var req pedidoRequest
		if err := e.BindBody(&req); err != nil {
			return apiError(e, http.StatusBadRequest, "Requisição inválida", err)
		}

		input, err := parsePedidoRequest(req)
		if err != nil {
			return apiMessage(e, http.StatusBadRequest, err.Error())
		}

		if input.clientID != record.GetString("client") {
			if _, err := app.FindRecordById("clients", input.clientID); err != nil {
				return apiError(e, http.StatusBadRequest, "Cliente não encontrado", err)
			}
			record.Set("client", input.clientID)
		}

		rates, err := services.LoadRateTable(app)
		if err != nil {
			return apiError(e, http.StatusInternalServerError, "Erro ao calcular valor do pedido", err)
		}
		value := services.ComputeOrderValue(input.material, input.widthMm, input.lengthMm, input.quantity, rates)

		setPedidoFields(record, input)
		record.Set("value", services.FormatAmount(value))

		if err := app.Save(record); err != nil {
			return apiError(e, http.StatusInternalServerError, "Erro ao atualizar pedido", err)
		}

		return e.JSON(http.StatusOK, map[string]any{
			"message": "Pedido atualizado com sucesso!",
			"pedido":  orderJSON(app, record),
		})
	}
}
