package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"onyxcrm/services"
	"onyxcrm/store"
)

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	return s
}

// buildQuoteExport loads a quote, its customer and the official rates
// and assembles the document model shared by the PDF and Excel exports.
func buildQuoteExport(app *pocketbase.PocketBase, number string, actor services.Actor) (services.QuoteExport, int, error) {
	quote, err := store.GetQuote(app, number)
	if err != nil {
		return services.QuoteExport{}, http.StatusNotFound, fmt.Errorf("quote not found: %w", err)
	}
	if !services.CanSee(actor, quote.OwnerID) {
		return services.QuoteExport{}, http.StatusForbidden, fmt.Errorf("quote %s not visible to %s", number, actor.ID)
	}

	// A legacy quote may reference a customer deleted since.
	customer, err := store.GetCustomer(app, quote.CustomerID)
	if err != nil {
		customer = services.Customer{}
	}

	rates, err := store.OfficialRates(app)
	if err != nil {
		return services.QuoteExport{}, http.StatusInternalServerError, err
	}

	data, err := services.BuildQuoteExport(quote, customer, rates)
	if err != nil {
		return services.QuoteExport{}, http.StatusUnprocessableEntity, err
	}
	return data, http.StatusOK, nil
}

// HandleQuoteExportPDF generates and downloads the quotation PDF.
func HandleQuoteExportPDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		number := e.Request.PathValue("number")

		data, status, err := buildQuoteExport(app, number, CurrentActor(e.Request))
		if err != nil {
			log.Printf("quote_export: pdf %s: %v", number, err)
			return apiError(e, status, "Could not export quote")
		}

		pdfBytes, err := services.GeneratePDF(data)
		if err != nil {
			log.Printf("quote_export: failed to generate PDF for %s: %v", number, err)
			return apiError(e, http.StatusInternalServerError, "Failed to generate PDF")
		}

		filename := fmt.Sprintf("%s.pdf", sanitizeFilename(data.Number))

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}

// HandleQuoteExportExcel generates and downloads the quotation workbook.
func HandleQuoteExportExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		number := e.Request.PathValue("number")

		data, status, err := buildQuoteExport(app, number, CurrentActor(e.Request))
		if err != nil {
			log.Printf("quote_export: excel %s: %v", number, err)
			return apiError(e, status, "Could not export quote")
		}

		xlsxBytes, err := services.GenerateExcel(data)
		if err != nil {
			log.Printf("quote_export: failed to generate Excel for %s: %v", number, err)
			return apiError(e, http.StatusInternalServerError, "Failed to generate Excel file")
		}

		filename := fmt.Sprintf("%s.xlsx", sanitizeFilename(data.Number))

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}

// HandleQuotesExportCSV downloads the visible quote list as CSV, using
// the same filters as the list endpoint.
func HandleQuotesExportCSV(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		actor := CurrentActor(e.Request)
		query := e.Request.URL.Query()

		quotes, err := store.ListQuotes(app, actor, store.QuoteFilter{
			CustomerID: query.Get("customer"),
			Status:     query.Get("status"),
			DateFrom:   query.Get("from"),
			DateTo:     query.Get("to"),
			Search:     query.Get("q"),
		})
		if err != nil {
			log.Printf("quote_export: csv list: %v", err)
			return apiError(e, http.StatusInternalServerError, "Could not load quotes")
		}

		names, err := store.CustomerNames(app)
		if err != nil {
			log.Printf("quote_export: csv list: %v", err)
			return apiError(e, http.StatusInternalServerError, "Could not load customers")
		}

		csvBytes, err := services.QuotesCSV(quotes, func(id string) string { return names[id] })
		if err != nil {
			log.Printf("quote_export: failed to generate CSV: %v", err)
			return apiError(e, http.StatusInternalServerError, "Failed to generate CSV")
		}

		filename := fmt.Sprintf("quotes_%s.csv", time.Now().Format("2006-01-02"))

		e.Response.Header().Set("Content-Type", "text/csv")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(csvBytes)
		return nil
	}
}
