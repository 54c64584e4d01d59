package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// clientJSON is the wire shape of a client record.
func clientJSON(r *core.Record) map[string]any {
	return map[string]any{
		"id":             r.Id,
		"name":           r.GetString("name"),
		"contact_person": r.GetString("contact_person"),
		"phone":          r.GetString("phone"),
		"email":          r.GetString("email"),
		"address":        r.GetString("address"),
		"cnpj":           r.GetString("cnpj"),
		"observations":   r.GetString("observations"),
		"status":         r.GetString("status"),
		"created_at":     r.GetDateTime("created").Time().Format("2006-01-02T15:04:05"),
	}
}

// HandleClientList returns every client, oldest first.
func HandleClientList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter("clients", "id != ''", "created", 0, 0)
		if err != nil {
			return apiError(e, http.StatusInternalServerError, "Erro ao buscar clientes", err)
		}

		result := make([]map[string]any, 0, len(records))
		for _, r := range records {
			result = append(result, clientJSON(r))
		}
		return e.JSON(http.StatusOK, result)
	}
}
