package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

// WebhookNotifier posts newly created orders to an external automation
// endpoint. Delivery is best-effort: failures are logged and never
// propagated to the caller.
type WebhookNotifier struct {
	URL    string
	Client *http.Client
}

// NewWebhookNotifier returns a notifier for the given URL. An empty URL
// disables notification.
func NewWebhookNotifier(url string) *WebhookNotifier {
	return &WebhookNotifier{
		URL:    url,
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

// NotifyOrderCreated sends the order payload in a background goroutine.
func (n *WebhookNotifier) NotifyOrderCreated(payload map[string]any) {
	if n == nil || n.URL == "" {
		return
	}
	go func() {
		if err := n.send(payload); err != nil {
			log.Printf("webhook: order notification failed: %v", err)
		}
	}()
}

func (n *WebhookNotifier) send(payload map[string]any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	resp, err := n.Client.Post(n.URL, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("post to %s: %w", n.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}
