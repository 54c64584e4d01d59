package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gblcortedobra/services"
	"gblcortedobra/testhelpers"
)

func TestHandlePedidoPDF(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	client := testhelpers.CreateTestClient(t, app, "João Silva")
	order := testhelpers.CreateTestOrder(t, app, client.Id, "0001", "Aço Carbono", "250.00")

	req := httptest.NewRequest(http.MethodGet, "/api/pedidos/"+order.Id+"/pdf", nil)
	req.SetPathValue("id", order.Id)
	rec := httptest.NewRecorder()

	handler := HandlePedidoPDF(app, services.DefaultCompanyInfo())
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if got := rec.Header().Get("Content-Type"); got != "application/pdf" {
		t.Errorf("Content-Type = %q, want application/pdf", got)
	}
	disposition := rec.Header().Get("Content-Disposition")
	if !strings.Contains(disposition, `filename="Pedido_0001_João_Silva.pdf"`) {
		t.Errorf("unexpected Content-Disposition: %q", disposition)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")) {
		t.Error("body does not start with a PDF header")
	}
}

func TestHandlePedidoPDF_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/pedidos/inexistente/pdf", nil)
	req.SetPathValue("id", "inexistente")
	rec := httptest.NewRecorder()

	handler := HandlePedidoPDF(app, services.DefaultCompanyInfo())
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	testhelpers.AssertBodyContains(t, rec.Body.String(), "Pedido não encontrado")
}
