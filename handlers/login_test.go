package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gblcortedobra/testhelpers"
)

func TestHandleLogin_Success(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestUser(t, app, "operador", "senha-segura", "admin")

	req := newJSONRequest(t, http.MethodPost, "/api/login", map[string]string{
		"username": "operador",
		"password": "senha-segura",
	})
	rec := httptest.NewRecorder()

	if err := HandleLogin(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	testhelpers.AssertBodyContains(t, rec.Body.String(),
		"Login bem-sucedido!", `"username":"operador"`, `"role":"admin"`)
}

func TestHandleLogin_InvalidCredentials(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestUser(t, app, "operador", "senha-segura", "user")

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "operador", "senha-errada"},
		{"unknown user", "intruso", "senha-segura"},
		{"empty credentials", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := newJSONRequest(t, http.MethodPost, "/api/login", map[string]string{
				"username": tt.username,
				"password": tt.password,
			})
			rec := httptest.NewRecorder()

			if err := HandleLogin(app)(newTestRequestEvent(app, req, rec)); err != nil {
				t.Fatalf("handler returned error: %v", err)
			}

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
			}
			testhelpers.AssertBodyContains(t, rec.Body.String(), "Credenciais inválidas")
		})
	}
}

func TestHandleLogin_DoesNotLeakHash(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestUser(t, app, "operador", "senha-segura", "admin")

	req := newJSONRequest(t, http.MethodPost, "/api/login", map[string]string{
		"username": "operador",
		"password": "senha-segura",
	})
	rec := httptest.NewRecorder()

	if err := HandleLogin(app)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	body := rec.Body.String()
	for _, forbidden := range []string{"password", "hash", "$2a$", "$2b$"} {
		if strings.Contains(body, forbidden) {
			t.Errorf("response leaks credential material (%q):\n%s", forbidden, body)
		}
	}
}
