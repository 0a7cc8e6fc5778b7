package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/mail"
	"strings"
)

// ValidationError represents a single field-level error on one row.
type ValidationError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ImportResult is returned after parsing and validating an uploaded
// customer CSV.
type ImportResult struct {
	TotalRows int               `json:"total_rows"`
	ValidRows int               `json:"valid_rows"`
	ErrorRows int               `json:"error_rows"`
	Errors    []ValidationError `json:"errors"`
	Customers []Customer        `json:"-"`
}

// customerImportColumns maps accepted header labels to Customer fields.
var customerImportColumns = map[string]string{
	"company name":   "name",
	"name":           "name",
	"contact person": "contactPerson",
	"email":          "email",
	"phone":          "phone",
	"website":        "website",
	"address":        "address",
	"state":          "state",
	"country":        "country",
}

// parseCSV reads a CSV file and returns headers + data rows.
func parseCSV(file io.Reader) ([]string, [][]string, error) {
	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	allRows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(allRows) < 2 {
		return nil, nil, fmt.Errorf("file must contain a header row and at least one data row")
	}

	headers := allRows[0]
	dataRows := allRows[1:]
	return headers, dataRows, nil
}

// mapCustomerHeaders resolves uploaded column headers to Customer field
// keys. Unrecognized columns map to "" and are skipped.
func mapCustomerHeaders(headers []string) []string {
	mapped := make([]string, len(headers))
	for i, h := range headers {
		norm := strings.ToLower(strings.TrimSpace(h))
		mapped[i] = customerImportColumns[norm]
	}
	return mapped
}

// ImportCustomersCSV parses and validates an uploaded customer CSV.
// Valid rows come back as Customers owned by ownerID; rows with errors
// are reported but never imported.
func ImportCustomersCSV(file io.Reader, ownerID string) (*ImportResult, error) {
	headers, dataRows, err := parseCSV(file)
	if err != nil {
		return nil, err
	}

	columnKeys := mapCustomerHeaders(headers)

	result := &ImportResult{TotalRows: len(dataRows)}
	errorRowSet := make(map[int]bool)

	for rowIdx, row := range dataRows {
		rowNum := rowIdx + 2 // 1-indexed, +1 for header row
		data := make(map[string]string)
		for colIdx, key := range columnKeys {
			if key == "" {
				continue
			}
			value := ""
			if colIdx < len(row) {
				value = strings.TrimSpace(row[colIdx])
			}
			data[key] = value
		}

		var rowErrors []ValidationError
		if data["name"] == "" {
			rowErrors = append(rowErrors, ValidationError{
				Row: rowNum, Field: "Company Name", Message: "Company Name is required",
			})
		}
		if data["country"] == "" {
			rowErrors = append(rowErrors, ValidationError{
				Row: rowNum, Field: "Country", Message: "Country is required",
			})
		}
		if v := data["email"]; v != "" {
			if _, err := mail.ParseAddress(v); err != nil {
				rowErrors = append(rowErrors, ValidationError{
					Row: rowNum, Field: "Email", Message: "Invalid email format",
				})
			}
		}

		if len(rowErrors) > 0 {
			result.Errors = append(result.Errors, rowErrors...)
			errorRowSet[rowNum] = true
			continue
		}

		result.Customers = append(result.Customers, Customer{
			Name:          data["name"],
			ContactPerson: data["contactPerson"],
			Email:         data["email"],
			Phone:         data["phone"],
			Website:       data["website"],
			Address:       data["address"],
			State:         data["state"],
			Country:       data["country"],
			OwnerID:       ownerID,
		})
	}

	result.ErrorRows = len(errorRowSet)
	result.ValidRows = result.TotalRows - result.ErrorRows
	return result, nil
}
