package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"gblcortedobra/services"
)

// HandlePedidoShare returns the messaging-app and mail deep links for an
// order, with the summary text already filled in.
func HandlePedidoShare(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("orders", e.Request.PathValue("id"))
		if err != nil {
			return apiError(e, http.StatusNotFound, "Pedido não encontrado", err)
		}

		clientName := ""
		if client, err := app.FindRecordById("clients", record.GetString("client")); err == nil {
			clientName = client.GetString("name")
		}

		number := record.GetString("order_number")
		material := record.GetString("material")
		value := record.GetString("value")

		return e.JSON(http.StatusOK, map[string]string{
			"whatsapp_url": services.WhatsAppLink(number, clientName, material, value),
			"mailto_url":   services.MailtoLink(number, clientName, material, value),
		})
	}
}
