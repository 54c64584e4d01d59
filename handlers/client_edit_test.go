package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"gblcortedobra/testhelpers"
)

func TestHandleClientUpdate(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	client := testhelpers.CreateTestClient(t, app, "Nome Antigo")

	req := newJSONRequest(t, http.MethodPut, "/api/clients/"+client.Id, map[string]string{
		"name":  "Nome Novo",
		"phone": "(11) 5555-4444",
	})
	req.SetPathValue("id", client.Id)
	rec := httptest.NewRecorder()

	if err := HandleClientUpdate(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d\nbody: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	testhelpers.AssertBodyContains(t, rec.Body.String(), "Cliente atualizado com sucesso!", "Nome Novo")

	updated, err := app.FindRecordById("clients", client.Id)
	if err != nil {
		t.Fatalf("failed to reload client: %v", err)
	}
	if got := updated.GetString("name"); got != "Nome Novo" {
		t.Errorf("name = %q, want Nome Novo", got)
	}
	// A full re-submit clears fields absent from the payload.
	if got := updated.GetString("email"); got != "" {
		t.Errorf("email = %q, want cleared", got)
	}
}

func TestHandleClientUpdate_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := newJSONRequest(t, http.MethodPut, "/api/clients/inexistente", map[string]string{
		"name": "Qualquer",
	})
	req.SetPathValue("id", "inexistente")
	rec := httptest.NewRecorder()

	if err := HandleClientUpdate(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	testhelpers.AssertBodyContains(t, rec.Body.String(), "Cliente não encontrado")
}

func TestHandleClientUpdate_NameRequired(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	client := testhelpers.CreateTestClient(t, app, "Cliente Válido")

	req := newJSONRequest(t, http.MethodPut, "/api/clients/"+client.Id, map[string]string{
		"name": "",
	})
	req.SetPathValue("id", client.Id)
	rec := httptest.NewRecorder()

	if err := HandleClientUpdate(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
