package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"gblcortedobra/services"
)

// HandleClientExport downloads the full client list as CSV (default) or
// as an Excel workbook with `?format=xlsx`.
func HandleClientExport(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		stamp := time.Now().Format("20060102_150405")

		if e.Request.URL.Query().Get("format") == "xlsx" {
			data, err := services.ExportClientsExcel(app)
			if err != nil {
				return apiError(e, http.StatusInternalServerError, "Erro ao exportar clientes", err)
			}
			filename := fmt.Sprintf("clientes_exportados_%s.xlsx", stamp)
			e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
			e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
			_, err = e.Response.Write(data)
			return err
		}

		data, err := services.ExportClientsCSV(app)
		if err != nil {
			return apiError(e, http.StatusInternalServerError, "Erro ao exportar clientes", err)
		}
		filename := fmt.Sprintf("clientes_exportados_%s.csv", stamp)
		e.Response.Header().Set("Content-Type", "text/csv")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		_, err = e.Response.Write(data)
		return err
	}
}
