// Package handlers implements the JSON API consumed by the GBL dashboard
// SPA.
package handlers

import (
	"log"

	"github.com/pocketbase/pocketbase/core"
)

// apiMessage writes the `{message}` envelope every endpoint uses for
// confirmations and errors.
func apiMessage(e *core.RequestEvent, status int, message string) error {
	return e.JSON(status, map[string]string{"message": message})
}

// apiError logs the underlying failure and surfaces the user-facing
// message. The SPA shows the message in a blocking alert, so it must be
// self-contained.
func apiError(e *core.RequestEvent, status int, message string, err error) error {
	if err != nil {
		log.Printf("%s %s: %s: %v", e.Request.Method, e.Request.URL.Path, message, err)
	}
	return apiMessage(e, status, message)
}
