package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"onyxcrm/store"
)

// HandleLogin resolves a username/password pair to the matching user
// account. The client keeps the returned id and sends it back on every
// request via the X-Actor-Id header.
func HandleLogin(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := decodeJSON(e, &req); err != nil {
			return apiError(e, http.StatusBadRequest, "Invalid request body")
		}

		req.Username = strings.TrimSpace(req.Username)
		if req.Username == "" || req.Password == "" {
			return apiError(e, http.StatusBadRequest, "Username and password are required")
		}

		actor, err := store.FindUserByCredentials(app, req.Username, req.Password)
		if err != nil {
			log.Printf("login: failed attempt for %q", req.Username)
			return apiError(e, http.StatusUnauthorized, "Invalid username or password")
		}

		return e.JSON(http.StatusOK, actor)
	}
}
