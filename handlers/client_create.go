package handlers

import (
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

type clientRequest struct {
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	CNPJ          string `json:"cnpj"`
	Observations  string `json:"observations"`
	Status        string `json:"status"`
}

// HandleClientCreate registers a new client. Name is the only required
// field; status defaults to Ativo.
func HandleClientCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req clientRequest
		if err := e.BindBody(&req); err != nil {
			return apiError(e, http.StatusBadRequest, "Requisição inválida", err)
		}

		req.Name = strings.TrimSpace(req.Name)
		if req.Name == "" {
			return apiMessage(e, http.StatusBadRequest, "Nome do cliente é obrigatório")
		}

		col, err := app.FindCollectionByNameOrId("clients")
		if err != nil {
			return apiError(e, http.StatusInternalServerError, "Erro ao adicionar cliente", err)
		}

		record := core.NewRecord(col)
		setClientFields(record, req)
		if record.GetString("status") == "" {
			record.Set("status", "Ativo")
		}

		if err := app.Save(record); err != nil {
			return apiError(e, http.StatusInternalServerError, "Erro ao adicionar cliente", err)
		}

		return e.JSON(http.StatusCreated, map[string]any{
			"message": "Cliente adicionado com sucesso!",
			"client":  clientJSON(record),
		})
	}
}

// setClientFields copies the request payload onto a record. Empty strings
// overwrite, matching the form semantics of the SPA (a cleared field is
// cleared on the server too).
func setClientFields(record *core.Record, req clientRequest) {
	record.Set("name", req.Name)
	record.Set("contact_person", req.ContactPerson)
	record.Set("phone", req.Phone)
	record.Set("email", req.Email)
	record.Set("address", req.Address)
	record.Set("cnpj", req.CNPJ)
	record.Set("observations", req.Observations)
	if req.Status != "" {
		record.Set("status", req.Status)
	}
}
