package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"onyxcrm/services"
	"onyxcrm/store"
)

// HandleCustomersImportCSV parses an uploaded CSV file, validates every
// row and persists the valid ones as customers owned by the uploader.
// The response reports per-row validation errors alongside the counts.
func HandleCustomersImportCSV(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseMultipartForm(10 << 20); err != nil {
			return apiError(e, http.StatusBadRequest, "Invalid upload")
		}

		file, _, err := e.Request.FormFile("file")
		if err != nil {
			return apiError(e, http.StatusBadRequest, "Missing CSV file")
		}
		defer file.Close()

		actor := CurrentActor(e.Request)

		result, err := services.ImportCustomersCSV(file, actor.ID)
		if err != nil {
			log.Printf("customer_import: %v", err)
			return apiError(e, http.StatusBadRequest, err.Error())
		}

		saved := 0
		for _, c := range result.Customers {
			if _, err := store.SaveCustomer(app, c); err != nil {
				log.Printf("customer_import: save %q: %v", c.Name, err)
				continue
			}
			saved++
		}

		return e.JSON(http.StatusOK, map[string]any{
			"totalRows": result.TotalRows,
			"validRows": result.ValidRows,
			"errorRows": result.ErrorRows,
			"saved":     saved,
			"errors":    result.Errors,
		})
	}
}
