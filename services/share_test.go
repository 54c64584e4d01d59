package services

import (
	"net/url"
	"strings"
	"testing"
)

func TestWhatsAppLink(t *testing.T) {
	link := WhatsAppLink("0001", "João Silva", "Aço Inox", "250.00")

	if !strings.HasPrefix(link, "https://wa.me/?text=") {
		t.Fatalf("unexpected link prefix: %q", link)
	}

	decoded, err := url.QueryUnescape(strings.TrimPrefix(link, "https://wa.me/?text="))
	if err != nil {
		t.Fatalf("link text is not valid query escaping: %v", err)
	}

	for _, want := range []string{
		"Olá! Segue o pedido 0001:",
		"Cliente: João Silva",
		"Material: Aço Inox",
		"Valor: R$ 250.00",
	} {
		if !strings.Contains(decoded, want) {
			t.Errorf("decoded message missing %q:\n%s", want, decoded)
		}
	}
}

func TestMailtoLink(t *testing.T) {
	link := MailtoLink("0042", "ACME Ltda", "Ferro", "99.90")

	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("mailto link does not parse: %v", err)
	}
	if u.Scheme != "mailto" {
		t.Fatalf("scheme = %q, want mailto", u.Scheme)
	}

	q := u.Query()
	if got := q.Get("subject"); got != "Pedido 0042 - GBL Corte e Dobra" {
		t.Errorf("subject = %q", got)
	}
	body := q.Get("body")
	for _, want := range []string{"Pedido: 0042", "Cliente: ACME Ltda", "Material: Ferro", "Valor: R$ 99.90"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q:\n%s", want, body)
		}
	}
}
