package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// orderJSON is the wire shape of an order, with the Portuguese keys the
// dashboard uses.
func orderJSON(app *pocketbase.PocketBase, r *core.Record) map[string]any {
	clientName := ""
	if client, err := app.FindRecordById("clients", r.GetString("client")); err == nil {
		clientName = client.GetString("name")
	}

	return map[string]any{
		"id":           r.Id,
		"numero":       r.GetString("order_number"),
		"cliente_id":   r.GetString("client"),
		"cliente_nome": clientName,
		"material":     r.GetString("material"),
		"espessura":    r.GetString("thickness"),
		"largura":      r.GetFloat("width"),
		"comprimento":  r.GetFloat("length"),
		"quantidade":   r.GetInt("quantity"),
		"observacoes":  r.GetString("observations"),
		"valor":        r.GetString("value"),
		"status":       r.GetString("status"),
		"data":         r.GetDateTime("created").Time().Format("2006-01-02"),
	}
}

// HandlePedidoList returns every order, newest first.
func HandlePedidoList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter("orders", "id != ''", "-created", 0, 0)
		if err != nil {
			return apiError(e, http.StatusInternalServerError, "Erro ao buscar pedidos", err)
		}

		result := make([]map[string]any, 0, len(records))
		for _, r := range records {
			result = append(result, orderJSON(app, r))
		}
		return e.JSON(http.StatusOK, result)
	}
}
