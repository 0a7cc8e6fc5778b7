package services

// CompanyInfo is the seller identity printed on every quotation.
type CompanyInfo struct {
	Name    string
	Address string
	City    string
	Email   string
	Website string
	Phone   string
	TaxID   string
}

// Company is the fixed letterhead block.
var Company = CompanyInfo{
	Name:    "ONYX MACHINERY PRIVATE LIMITED",
	Address: "40, UDAY INDUSTRIAL ESTATE, OPP.GIDC, ODHAV",
	City:    "AHMEDABAD - 382 415. GUJARAT, INDIA.",
	Email:   "sales@onyxmachinery.com",
	Website: "www.onyxmachinery.in",
	Phone:   "+91 70 41 40 35 91 | +91 72 27 82 82 84",
	TaxID:   "GSTIN: 24AACCO7920N1Z6",
}

// DefaultTerms prefills the terms block of a new quotation.
const DefaultTerms = "1. Validity: This quotation is valid for 30 days from the date of issue.\n" +
	"2. Payment: 50% advance along with purchase order, balance before dispatch.\n" +
	"3. Delivery: Ex-works our factory. Shipping charges extra at actuals.\n" +
	"4. Taxes: GST as applicable will be charged extra.\n" +
	"5. Warranty: 12 months against manufacturing defects from the date of supply."
