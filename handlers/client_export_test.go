package handlers

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"gblcortedobra/testhelpers"
)

func TestHandleClientExport_CSV(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestClient(t, app, "Cliente Exportado")

	req := httptest.NewRequest(http.MethodGet, "/api/clients/export", nil)
	rec := httptest.NewRecorder()

	if err := HandleClientExport(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if got := rec.Header().Get("Content-Type"); got != "text/csv" {
		t.Errorf("Content-Type = %q, want text/csv", got)
	}
	disposition := rec.Header().Get("Content-Disposition")
	if !strings.Contains(disposition, "clientes_exportados_") || !strings.Contains(disposition, ".csv") {
		t.Errorf("unexpected Content-Disposition: %q", disposition)
	}

	rows, err := csv.NewReader(rec.Body).ReadAll()
	if err != nil {
		t.Fatalf("body is not valid CSV: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want header + 1 client", len(rows))
	}
	if rows[1][1] != "Cliente Exportado" {
		t.Errorf("client name = %q", rows[1][1])
	}
}

func TestHandleClientExport_Excel(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestClient(t, app, "Cliente Planilha")

	req := httptest.NewRequest(http.MethodGet, "/api/clients/export?format=xlsx", nil)
	rec := httptest.NewRecorder()

	if err := HandleClientExport(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if got := rec.Header().Get("Content-Type"); !strings.Contains(got, "spreadsheetml") {
		t.Errorf("Content-Type = %q, want xlsx mime type", got)
	}
	if disposition := rec.Header().Get("Content-Disposition"); !strings.Contains(disposition, ".xlsx") {
		t.Errorf("unexpected Content-Disposition: %q", disposition)
	}

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("body is not a valid workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Clientes")
	if err != nil {
		t.Fatalf("failed to read sheet: %v", err)
	}
	if len(rows) != 2 || rows[1][1] != "Cliente Planilha" {
		t.Errorf("unexpected sheet contents: %v", rows)
	}
}
