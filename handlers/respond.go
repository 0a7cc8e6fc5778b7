package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pocketbase/pocketbase/core"
)

// apiError writes a JSON error body. Handlers return it directly so the
// client always gets the same {"error": ...} shape.
func apiError(e *core.RequestEvent, statusCode int, message string) error {
	return e.JSON(statusCode, map[string]string{"error": message})
}

// decodeJSON reads the request body into dst, limited to 1MB.
func decodeJSON(e *core.RequestEvent, dst any) error {
	body := http.MaxBytesReader(e.Response, e.Request.Body, 1<<20)
	defer body.Close()
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}
