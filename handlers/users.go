package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"onyxcrm/services"
	"onyxcrm/store"
)

// HandleUserList returns every user account. Admin only.
func HandleUserList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		users, err := store.ListUsers(app)
		if err != nil {
			log.Printf("users: list: %v", err)
			return apiError(e, http.StatusInternalServerError, "Could not load users")
		}
		return e.JSON(http.StatusOK, users)
	}
}

// HandleUserCreate adds a user account. Admin only.
func HandleUserCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
			Name     string `json:"name"`
			Role     string `json:"role"`
		}
		if err := decodeJSON(e, &req); err != nil {
			return apiError(e, http.StatusBadRequest, "Invalid request body")
		}

		req.Username = strings.TrimSpace(req.Username)
		if req.Username == "" || req.Password == "" {
			return apiError(e, http.StatusBadRequest, "Username and password are required")
		}
		if req.Role != services.RoleAdmin && req.Role != services.RoleUser {
			req.Role = services.RoleUser
		}

		actor, err := store.CreateUser(app, req.Username, req.Password, req.Name, req.Role)
		if err != nil {
			log.Printf("users: create %q: %v", req.Username, err)
			return apiError(e, http.StatusConflict, err.Error())
		}
		return e.JSON(http.StatusOK, actor)
	}
}

// HandleUserDelete removes a user account. Admin only; admins cannot
// delete themselves.
func HandleUserDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")

		if id == CurrentActor(e.Request).ID {
			return apiError(e, http.StatusBadRequest, "You cannot delete your own account")
		}

		if err := store.DeleteUser(app, id); err != nil {
			log.Printf("users: delete %s: %v", id, err)
			return apiError(e, http.StatusInternalServerError, "Could not delete user")
		}
		return e.NoContent(http.StatusNoContent)
	}
}
