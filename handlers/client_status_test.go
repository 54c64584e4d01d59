package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"gblcortedobra/testhelpers"
)

func TestHandleClientStatus_Toggle(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	client := testhelpers.CreateTestClient(t, app, "Cliente Ativo")

	req := newJSONRequest(t, http.MethodPatch, "/api/clients/"+client.Id+"/status", map[string]string{
		"status": "Inativo",
	})
	req.SetPathValue("id", client.Id)
	rec := httptest.NewRecorder()

	if err := HandleClientStatus(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d\nbody: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	testhelpers.AssertBodyContains(t, rec.Body.String(), "Status atualizado com sucesso!", `"status":"Inativo"`)

	updated, err := app.FindRecordById("clients", client.Id)
	if err != nil {
		t.Fatalf("failed to reload client: %v", err)
	}
	if got := updated.GetString("status"); got != "Inativo" {
		t.Errorf("status = %q, want Inativo", got)
	}
	// Other fields stay untouched by the partial update.
	if got := updated.GetString("name"); got != "Cliente Ativo" {
		t.Errorf("name = %q, want unchanged", got)
	}
}

func TestHandleClientStatus_RejectsUnknownValue(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	client := testhelpers.CreateTestClient(t, app, "Cliente Ativo")

	req := newJSONRequest(t, http.MethodPatch, "/api/clients/"+client.Id+"/status", map[string]string{
		"status": "Pendente",
	})
	req.SetPathValue("id", client.Id)
	rec := httptest.NewRecorder()

	if err := HandleClientStatus(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	testhelpers.AssertBodyContains(t, rec.Body.String(), "Status inválido")
}

func TestHandleClientStatus_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := newJSONRequest(t, http.MethodPatch, "/api/clients/inexistente/status", map[string]string{
		"status": "Ativo",
	})
	req.SetPathValue("id", "inexistente")
	rec := httptest.NewRecorder()

	if err := HandleClientStatus(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
