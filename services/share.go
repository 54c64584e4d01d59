package services

import (
	"fmt"
	"net/url"
)

// WhatsAppLink builds the wa.me deep link with a pre-filled order summary.
func WhatsAppLink(number, clientName, material, value string) string {
	message := fmt.Sprintf("Olá! Segue o pedido %s:\n\nCliente: %s\nMaterial: %s\nValor: R$ %s",
		number, clientName, material, value)
	return "https://wa.me/?text=" + url.QueryEscape(message)
}

// MailtoLink builds a mailto URL with a pre-filled subject and body for an
// order.
func MailtoLink(number, clientName, material, value string) string {
	subject := fmt.Sprintf("Pedido %s - GBL Corte e Dobra", number)
	body := fmt.Sprintf("Pedido: %s\nCliente: %s\nMaterial: %s\nValor: R$ %s",
		number, clientName, material, value)
	return fmt.Sprintf("mailto:?subject=%s&body=%s", url.QueryEscape(subject), url.QueryEscape(body))
}
