package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gblcortedobra/testhelpers"
)

func TestHandleMaterialList(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.SeedDefaults(t, app)

	req := httptest.NewRequest(http.MethodGet, "/api/materials", nil)
	rec := httptest.NewRecorder()

	if err := HandleMaterialList(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var materials []struct {
		Nome  string  `json:"nome"`
		Preco float64 `json:"preco"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &materials); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if len(materials) != 5 {
		t.Fatalf("got %d materials, want 5", len(materials))
	}
	// Alphabetical by name.
	for i := 1; i < len(materials); i++ {
		if materials[i-1].Nome > materials[i].Nome {
			t.Errorf("materials out of order: %q before %q", materials[i-1].Nome, materials[i].Nome)
		}
	}
	for _, m := range materials {
		if m.Preco <= 0 {
			t.Errorf("material %q has no price", m.Nome)
		}
	}
}

func TestHandleMaterialList_Empty(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/materials", nil)
	rec := httptest.NewRecorder()

	if err := HandleMaterialList(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if body := rec.Body.String(); body != "[]\n" && body != "[]" {
		t.Errorf("body = %q, want empty JSON array", body)
	}
}
