package services

import (
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestGenerateExcel_BasicQuote(t *testing.T) {
	q, customer := exportFixture()
	data, err := BuildQuoteExport(q, customer, defaultRates())
	if err != nil {
		t.Fatalf("BuildQuoteExport() error = %v", err)
	}

	result, err := GenerateExcel(data)
	if err != nil {
		t.Fatalf("GenerateExcel() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateExcel() returned empty bytes")
	}

	// Verify it's a valid Excel file
	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 || sheets[0] != "QT-1001" {
		t.Errorf("expected sheet name 'QT-1001', got %v", sheets)
	}

	title, _ := f.GetCellValue(sheets[0], "A1")
	if title != Company.Name {
		t.Errorf("expected company name in A1, got %q", title)
	}

	number, _ := f.GetCellValue(sheets[0], "A2")
	if number != "Quotation: QT-1001" {
		t.Errorf("A2 = %q", number)
	}

	// Row 7 = first data row.
	itemName, _ := f.GetCellValue(sheets[0], "B7")
	if itemName != "OM-200 Dissolved Oxygen Meter" {
		t.Errorf("B7 = %q", itemName)
	}
}

func TestGenerateExcel_EmptyItems(t *testing.T) {
	data := QuoteExport{
		Company: Company,
		Number:  "QT-1002",
		Date:    "2025-01-15",
	}

	result, err := GenerateExcel(data)
	if err != nil {
		t.Fatalf("GenerateExcel() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateExcel() returned empty bytes")
	}
}

func TestGenerateExcel_EmptyNumber(t *testing.T) {
	data := QuoteExport{
		Company: Company,
		Date:    "2025-01-15",
	}

	result, err := GenerateExcel(data)
	if err != nil {
		t.Fatalf("GenerateExcel() error = %v", err)
	}

	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if sheets[0] != "Quotation" {
		t.Errorf("expected default sheet name 'Quotation', got %q", sheets[0])
	}
}

func TestSanitizeExcelCell(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty string", "", ""},
		{"normal text", "Hello", "Hello"},
		{"starts with equals", "=SUM(A1:A10)", "'=SUM(A1:A10)"},
		{"starts with plus", "+1234", "'+1234"},
		{"starts with minus", "-100", "'-100"},
		{"starts with at", "@import", "'@import"},
		{"starts with tab", "\tdata", "'\tdata"},
		{"starts with pipe", "|command", "'|command"},
		{"starts with carriage return", "\rdata", "'\rdata"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizeExcelCell(tt.input)
			if got != tt.want {
				t.Errorf("sanitizeExcelCell(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestThinBorders(t *testing.T) {
	borders := thinBorders()
	if len(borders) != 4 {
		t.Errorf("thinBorders() returned %d borders, want 4", len(borders))
	}

	sides := map[string]bool{"left": false, "top": false, "bottom": false, "right": false}
	for _, b := range borders {
		sides[b.Type] = true
		if b.Style != 1 {
			t.Errorf("border %s style = %d, want 1 (thin)", b.Type, b.Style)
		}
	}
	for side, found := range sides {
		if !found {
			t.Errorf("missing border side: %s", side)
		}
	}
}
