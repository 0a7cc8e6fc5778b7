package services

import (
	"fmt"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GeneratePDF renders the printable quotation using maroto/v2 and
// returns the raw PDF bytes.
func GeneratePDF(data QuoteExport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addLetterhead(m, data)
	addCustomerBlock(m, data)
	addItemsHeader(m)
	for _, r := range data.Rows {
		addItemRow(m, r, data.Currency)
	}
	addTotals(m, data)
	addTerms(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addLetterhead adds the company block and the quotation number/date.
func addLetterhead(m core.Maroto, data QuoteExport) {
	grey := &props.Color{Red: 80, Green: 80, Blue: 80}

	m.AddRows(
		row.New(10).Add(
			col.New(8).Add(
				text.New(data.Company.Name, props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
			col.New(4).Add(
				text.New("QUOTATION", props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Right,
				}),
			),
		),
	)

	m.AddRows(
		row.New(14).Add(
			col.New(8).Add(
				text.New(data.Company.Address, props.Text{Size: 8, Color: grey, Top: 0}),
				text.New(data.Company.City, props.Text{Size: 8, Color: grey, Top: 4}),
				text.New(data.Company.TaxID, props.Text{Size: 8, Style: fontstyle.Bold, Color: grey, Top: 8}),
			),
			col.New(4).Add(
				text.New(data.Number, props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right, Top: 0}),
				text.New("Date: "+data.Date, props.Text{Size: 8, Color: grey, Align: align.Right, Top: 5}),
			),
		),
	)

	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(data.Company.Email+" | "+data.Company.Website+" | "+data.Company.Phone, props.Text{
					Size:  7,
					Color: grey,
				}),
			),
		),
	)

	m.AddRows(row.New(4))
}

// addCustomerBlock adds the bill-to section.
func addCustomerBlock(m core.Maroto, data QuoteExport) {
	grey := &props.Color{Red: 80, Green: 80, Blue: 80}

	place := data.State
	if data.Country != "" {
		if place != "" {
			place += ", "
		}
		place += data.Country
	}

	m.AddRows(
		row.New(20).Add(
			col.New(12).Add(
				text.New("TO:", props.Text{Size: 7, Style: fontstyle.Bold, Color: grey, Top: 0}),
				text.New(data.CustomerName, props.Text{Size: 10, Style: fontstyle.Bold, Top: 3}),
				text.New("Contact: "+data.ContactPerson, props.Text{Size: 8, Color: grey, Top: 8}),
				text.New(data.Address, props.Text{Size: 8, Color: grey, Top: 12}),
				text.New(place, props.Text{Size: 8, Color: grey, Top: 16}),
			),
		),
	)

	m.AddRows(row.New(4))
}

// addItemsHeader adds the column header row for the items table.
func addItemsHeader(m core.Maroto) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left

	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(
				text.New("#", headerText),
			).WithStyle(&headerCell),
			col.New(5).Add(
				text.New("Item", headerTextLeft),
			).WithStyle(&headerCell),
			col.New(2).Add(
				text.New("SKU", headerText),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("Qty", headerText),
			).WithStyle(&headerCell),
			col.New(3).Add(
				text.New("Amount", headerText),
			).WithStyle(&headerCell),
		),
	)
}

// addItemRow adds a single line item, with its details underneath the name.
func addItemRow(m core.Maroto, r QuoteExportRow, currency Currency) {
	grey := &props.Color{Red: 100, Green: 100, Blue: 100}

	baseText := props.Text{Size: 8, Align: align.Center}
	leftText := baseText
	leftText.Align = align.Left
	rightText := baseText
	rightText.Align = align.Right

	height := 8.0
	nameCol := col.New(5)
	nameCol.Add(text.New(r.Name, props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Left}))
	if r.Details != "" {
		nameCol.Add(text.New(r.Details, props.Text{Size: 7, Color: grey, Align: align.Left, Top: 4}))
		height = 12
	}
	if r.OptionalDetails != "" {
		nameCol.Add(text.New(r.OptionalDetails, props.Text{Size: 7, Color: grey, Align: align.Left, Top: 8}))
		height = 16
	}

	m.AddRows(
		row.New(height).Add(
			col.New(1).Add(text.New(fmt.Sprintf("%d", r.Index), baseText)),
			nameCol,
			col.New(2).Add(text.New(r.SKU, baseText)),
			col.New(1).Add(text.New(fmt.Sprintf("%d", r.Qty), rightText)),
			col.New(3).Add(text.New(FormatMoney(r.LineTotal, currency), rightText)),
		),
	)
}

// addTotals adds subtotal, tax lines, grand total and the amount in words.
func addTotals(m core.Maroto, data QuoteExport) {
	m.AddRows(row.New(4))

	summaryBg := &props.Color{Red: 240, Green: 240, Blue: 240}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}

	labelStyle := props.Text{
		Size:  9,
		Align: align.Right,
	}
	boldLabel := labelStyle
	boldLabel.Style = fontstyle.Bold
	valueStyle := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
	}

	m.AddRows(
		row.New(7).Add(
			col.New(9).Add(
				text.New("Subtotal", labelStyle),
			),
			col.New(3).Add(
				text.New(FormatMoney(data.Subtotal, data.Currency), valueStyle),
			),
		),
	)

	for _, taxLine := range data.TaxLines {
		m.AddRows(
			row.New(7).Add(
				col.New(9).Add(
					text.New(taxLine.Label, labelStyle),
				),
				col.New(3).Add(
					text.New(FormatMoney(taxLine.Amount, data.Currency), valueStyle),
				),
			),
		)
	}

	m.AddRows(
		row.New(9).Add(
			col.New(9).Add(
				text.New("Grand Total", boldLabel),
			).WithStyle(summaryCell),
			col.New(3).Add(
				text.New(FormatMoney(data.GrandTotal, data.Currency), valueStyle),
			).WithStyle(summaryCell),
		),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New(data.AmountInWords, props.Text{
					Size:  8,
					Style: fontstyle.BoldItalic,
					Align: align.Left,
					Top:   2,
				}),
			),
		),
	)
}

// addTerms adds the terms and conditions block.
func addTerms(m core.Maroto, data QuoteExport) {
	if data.Terms == "" {
		return
	}
	grey := &props.Color{Red: 100, Green: 100, Blue: 100}

	m.AddRows(row.New(4))
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New("TERMS & CONDITIONS", props.Text{
					Size:  8,
					Style: fontstyle.Bold,
				}),
			),
		),
	)

	lines := splitLines(data.Terms)
	for _, line := range lines {
		m.AddRows(
			row.New(5).Add(
				col.New(12).Add(
					text.New(line, props.Text{Size: 7, Color: grey}),
				),
			),
		)
	}
}

// splitLines breaks the terms text on newlines, skipping empties.
func splitLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
