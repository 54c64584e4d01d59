package services

import (
	"fmt"

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

// GenerateOrdersReportPDF creates the tabular orders report using
// maroto/v2 and returns the raw PDF bytes.
func GenerateOrdersReportPDF(company CompanyInfo, data *OrdersReportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Horizontal).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Página {current} de {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addReportHeader(m, company, data)
	addReportTableHeader(m)
	for _, r := range data.Rows {
		addReportTableRow(m, r)
	}
	addReportSummary(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate orders report PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func addReportHeader(m core.Maroto, company CompanyInfo, data *OrdersReportData) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(company.Name+" - Relatório de Pedidos", props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(company.Email, props.Text{
					Size:  9,
					Align: align.Left,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Gerado em: %s", data.GeneratedDate), props.Text{
					Size:  9,
					Align: align.Right,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
	)

	m.AddRows(row.New(4))
}

func addReportTableHeader(m core.Maroto) {
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
			col.New(1).Add(text.New("Número", headerText)).WithStyle(&headerCell),
			col.New(3).Add(text.New("Cliente", headerTextLeft)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Material", headerTextLeft)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Dimensões", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Qtd", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Valor", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Status", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Data", headerText)).WithStyle(&headerCell),
		),
	)
}

func addReportTableRow(m core.Maroto, r OrdersReportRow) {
	baseText := props.Text{Size: 7, Align: align.Center}
	leftText := baseText
	leftText.Align = align.Left
	rightText := baseText
	rightText.Align = align.Right

	m.AddRows(
		row.New(7).Add(
			col.New(1).Add(text.New(r.Number, baseText)),
			col.New(3).Add(text.New(r.ClientName, leftText)),
			col.New(2).Add(text.New(r.Material, leftText)),
			col.New(2).Add(text.New(r.Dimensions, baseText)),
			col.New(1).Add(text.New(fmt.Sprintf("%d", r.Quantity), rightText)),
			col.New(1).Add(text.New(FormatBRL(r.Value), rightText)),
			col.New(1).Add(text.New(r.Status, baseText)),
			col.New(1).Add(text.New(r.Date, baseText)),
		),
	)
}

func addReportSummary(m core.Maroto, data *OrdersReportData) {
	m.AddRows(row.New(6))

	summaryBg := &props.Color{Red: 240, Green: 240, Blue: 240}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}

	boldRight := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
	}

	m.AddRows(
		row.New(8).Add(
			col.New(8).Add(text.New(fmt.Sprintf("Total de Pedidos: %d", data.TotalOrders), boldRight)).WithStyle(summaryCell),
			col.New(4).Add(text.New(FormatBRL(data.TotalValue), boldRight)).WithStyle(summaryCell),
		),
	)
}
