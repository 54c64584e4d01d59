package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"gblcortedobra/services"
)

// HandlePedidoPDF generates and downloads the order slip for one order.
func HandlePedidoPDF(app *pocketbase.PocketBase, company services.CompanyInfo) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("orders", e.Request.PathValue("id"))
		if err != nil {
			return apiError(e, http.StatusNotFound, "Pedido não encontrado", err)
		}

		clientName := ""
		if client, err := app.FindRecordById("clients", record.GetString("client")); err == nil {
			clientName = client.GetString("name")
		}

		value, _ := strconv.ParseFloat(record.GetString("value"), 64)

		doc := services.OrderDocument{
			Number:     record.GetString("order_number"),
			Date:       record.GetDateTime("created").Time(),
			ClientName: clientName,
			Material:   record.GetString("material"),
			Thickness:  record.GetString("thickness"),
			WidthMm:    record.GetFloat("width"),
			LengthMm:   record.GetFloat("length"),
			Quantity:   record.GetInt("quantity"),
			Notes:      record.GetString("observations"),
			Value:      value,
			Status:     record.GetString("status"),
		}

		pdfBytes, err := services.ComposeOrderPDF(company, doc)
		if err != nil {
			return apiError(e, http.StatusInternalServerError, "Erro ao gerar PDF. Tente novamente.", err)
		}

		filename := services.OrderPDFFilename(doc.Number, doc.ClientName)
		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		_, err = e.Response.Write(pdfBytes)
		return err
	}
}
