package services

import (
	"fmt"
	"strings"
	"time"
)

// FormatBRL formats an amount using Brazilian currency notation,
// e.g. "R$ 1.234,56": dot as thousands separator, comma as decimal
// separator, always two decimal places.
func FormatBRL(amount float64) string {
	negative := false
	if amount < 0 {
		negative = true
		amount = -amount
	}

	raw := fmt.Sprintf("%.2f", amount)

	parts := strings.SplitN(raw, ".", 2)
	intPart := parts[0]
	decPart := parts[1]

	result := "R$ " + groupThousands(intPart) + "," + decPart
	if negative {
		result = "-" + result
	}
	return result
}

// FormatAmount renders the persisted form of a monetary value: a plain
// two-decimal string with a dot separator, e.g. "250.00".
func FormatAmount(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// FormatDateBR formats a date using the Brazilian day/month/year convention.
func FormatDateBR(t time.Time) string {
	return t.Format("02/01/2006")
}

// groupThousands inserts a dot every three digits, counting from the right.
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	result := s[n-3:]
	remaining := s[:n-3]

	for len(remaining) > 3 {
		result = remaining[len(remaining)-3:] + "." + result
		remaining = remaining[:len(remaining)-3]
	}
	return remaining + "." + result
}
