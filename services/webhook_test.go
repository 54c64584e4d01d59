package services

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWebhookNotifier_Send(t *testing.T) {
	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", ct)
		}
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &received); err != nil {
			t.Errorf("body is not valid JSON: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	notifier := NewWebhookNotifier(server.URL)
	payload := map[string]any{"numero": "0001", "valor": "250.00"}

	if err := notifier.send(payload); err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if received["numero"] != "0001" || received["valor"] != "250.00" {
		t.Errorf("unexpected payload received: %v", received)
	}
}

func TestWebhookNotifier_SendReportsServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	notifier := NewWebhookNotifier(server.URL)
	if err := notifier.send(map[string]any{"numero": "0001"}); err == nil {
		t.Fatal("expected an error for a 500 response")
	}
}

func TestWebhookNotifier_DisabledWithoutURL(t *testing.T) {
	notifier := NewWebhookNotifier("")
	// Must be a no-op rather than a panic or a network attempt.
	notifier.NotifyOrderCreated(map[string]any{"numero": "0001"})

	var nilNotifier *WebhookNotifier
	nilNotifier.NotifyOrderCreated(map[string]any{"numero": "0001"})
}
