package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"golang.org/x/crypto/bcrypt"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// HandleLogin checks the operator credentials against the stored bcrypt
// hash. Success is a boolean signal only; no session token is issued.
func HandleLogin(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req loginRequest
		if err := e.BindBody(&req); err != nil {
			return apiError(e, http.StatusBadRequest, "Requisição inválida", err)
		}

		users, err := app.FindRecordsByFilter(
			"system_users",
			"username = {:username}",
			"", 1, 0,
			map[string]any{"username": req.Username},
		)
		if err != nil || len(users) == 0 {
			return apiMessage(e, http.StatusUnauthorized, "Credenciais inválidas")
		}

		user := users[0]
		if err := bcrypt.CompareHashAndPassword([]byte(user.GetString("password_hash")), []byte(req.Password)); err != nil {
			return apiMessage(e, http.StatusUnauthorized, "Credenciais inválidas")
		}

		log.Printf("login: user %s authenticated", req.Username)
		return e.JSON(http.StatusOK, map[string]any{
			"message": "Login bem-sucedido!",
			"user": map[string]string{
				"username": user.GetString("username"),
				"role":     user.GetString("role"),
			},
		})
	}
}
