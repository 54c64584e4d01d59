package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"gblcortedobra/services"
)

// HandleClientRosterPDF generates and downloads the multi-page client
// report.
func HandleClientRosterPDF(app *pocketbase.PocketBase, company services.CompanyInfo) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter("clients", "id != ''", "created", 0, 0)
		if err != nil {
			return apiError(e, http.StatusInternalServerError, "Erro ao buscar clientes", err)
		}

		entries := make([]services.RosterEntry, 0, len(records))
		for _, r := range records {
			entries = append(entries, services.RosterEntry{
				Name:          r.GetString("name"),
				ContactPerson: r.GetString("contact_person"),
				Phone:         r.GetString("phone"),
				Email:         r.GetString("email"),
				Status:        r.GetString("status"),
				RegisteredAt:  r.GetDateTime("created").Time(),
			})
		}

		now := time.Now()
		pdfBytes, err := services.ComposeClientRosterPDF(company, entries, now)
		if err != nil {
			return apiError(e, http.StatusInternalServerError, "Erro ao gerar PDF. Tente novamente.", err)
		}

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, services.RosterPDFFilename(now)))
		_, err = e.Response.Write(pdfBytes)
		return err
	}
}

// HandleOrdersReportPDF generates and downloads the tabular orders
// report.
func HandleOrdersReportPDF(app *pocketbase.PocketBase, company services.CompanyInfo) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		now := time.Now()
		data, err := services.BuildOrdersReport(app, now)
		if err != nil {
			return apiError(e, http.StatusInternalServerError, "Erro ao buscar pedidos", err)
		}

		pdfBytes, err := services.GenerateOrdersReportPDF(company, data)
		if err != nil {
			return apiError(e, http.StatusInternalServerError, "Erro ao gerar PDF. Tente novamente.", err)
		}

		filename := fmt.Sprintf("Relatorio_Pedidos_%s.pdf", now.Format("2006-01-02"))
		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		_, err = e.Response.Write(pdfBytes)
		return err
	}
}
