package handlers

import (
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"golang.org/x/crypto/bcrypt"
)

func userJSON(r *core.Record) map[string]any {
	return map[string]any{
		"id":       r.Id,
		"username": r.GetString("username"),
		"role":     r.GetString("role"),
	}
}

type userRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func findUserByUsername(app *pocketbase.PocketBase, username string) *core.Record {
	users, err := app.FindRecordsByFilter(
		"system_users",
		"username = {:username}",
		"", 1, 0,
		map[string]any{"username": username},
	)
	if err != nil || len(users) == 0 {
		return nil
	}
	return users[0]
}

// HandleUserList returns every operator account. Password hashes never
// leave the server.
func HandleUserList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter("system_users", "id != ''", "created", 0, 0)
		if err != nil {
			return apiError(e, http.StatusInternalServerError, "Erro ao buscar usuários", err)
		}

		result := make([]map[string]any, 0, len(records))
		for _, r := range records {
			result = append(result, userJSON(r))
		}
		return e.JSON(http.StatusOK, result)
	}
}

// HandleUserCreate registers an operator account. Duplicate usernames are
// rejected with 409.
func HandleUserCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req userRequest
		if err := e.BindBody(&req); err != nil {
			return apiError(e, http.StatusBadRequest, "Requisição inválida", err)
		}

		req.Username = strings.TrimSpace(req.Username)
		if req.Username == "" || req.Password == "" {
			return apiMessage(e, http.StatusBadRequest, "Nome de usuário e senha são obrigatórios")
		}
		if findUserByUsername(app, req.Username) != nil {
			return apiMessage(e, http.StatusConflict, "Nome de usuário já existe")
		}

		role := req.Role
		if role == "" {
			role = "user"
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return apiError(e, http.StatusInternalServerError, "Erro ao adicionar usuário", err)
		}

		col, err := app.FindCollectionByNameOrId("system_users")
		if err != nil {
			return apiError(e, http.StatusInternalServerError, "Erro ao adicionar usuário", err)
		}

		record := core.NewRecord(col)
		record.Set("username", req.Username)
		record.Set("password_hash", string(hash))
		record.Set("role", role)

		if err := app.Save(record); err != nil {
			return apiError(e, http.StatusInternalServerError, "Erro ao adicionar usuário", err)
		}

		return e.JSON(http.StatusCreated, map[string]any{
			"message": "Usuário adicionado com sucesso!",
			"user":    userJSON(record),
		})
	}
}

// HandleUserUpdate changes username, role and optionally the password of
// an operator account.
func HandleUserUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("system_users", e.Request.PathValue("id"))
		if err != nil {
			return apiError(e, http.StatusNotFound, "Usuário não encontrado", err)
		}

		var req userRequest
		if err := e.BindBody(&req); err != nil {
			return apiError(e, http.StatusBadRequest, "Requisição inválida", err)
		}

		req.Username = strings.TrimSpace(req.Username)
		if req.Username != "" && req.Username != record.GetString("username") {
			if findUserByUsername(app, req.Username) != nil {
				return apiMessage(e, http.StatusConflict, "Nome de usuário já existe")
			}
			record.Set("username", req.Username)
		}

		if req.Password != "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
			if err != nil {
				return apiError(e, http.StatusInternalServerError, "Erro ao atualizar usuário", err)
			}
			record.Set("password_hash", string(hash))
		}

		if req.Role != "" {
			record.Set("role", req.Role)
		}

		if err := app.Save(record); err != nil {
			return apiError(e, http.StatusInternalServerError, "Erro ao atualizar usuário", err)
		}

		return e.JSON(http.StatusOK, map[string]any{
			"message": "Usuário atualizado com sucesso!",
			"user":    userJSON(record),
		})
	}
}

// HandleUserDelete removes an operator account, refusing to delete the
// last remaining admin.
func HandleUserDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		record, err := app.FindRecordById("system_users", e.Request.PathValue("id"))
		if err != nil {
			return apiError(e, http.StatusNotFound, "Usuário não encontrado", err)
		}

		if record.GetString("role") == "admin" {
			admins, err := app.FindRecordsByFilter(
				"system_users",
				"role = 'admin'",
				"", 2, 0,
			)
			if err == nil && len(admins) == 1 {
				return apiMessage(e, http.StatusForbidden, "Não é possível deletar o último usuário administrador")
			}
		}

		if err := app.Delete(record); err != nil {
			return apiError(e, http.StatusInternalServerError, "Erro ao deletar usuário", err)
		}

		return apiMessage(e, http.StatusOK, "Usuário deletado com sucesso!")
	}
}
