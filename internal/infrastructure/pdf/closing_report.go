package pdf

import (
	"context"
	"fmt"

	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/zenith-pos/internal/application/ports"
	"github.com/jhoicas/zenith-pos/internal/domain/entity"
	"github.com/jhoicas/zenith-pos/pkg/format"
)

// ClosingReportPDF genera el reporte de cierre (arqueo) de una sesión de caja.
// Siempre usa tamaño carta, sin importar el tamaño de impresión de los tickets.
func (g *MarotoPDFGenerator) ClosingReportPDF(_ context.Context, data ports.ClosingData) ([]byte, error) {
	s := data.Settings
	s.PrintSize = "letter"
	m, fs := newDocument(s, "Cierre de caja "+data.Report.Session.ID)
	money := moneyFormatter(s)
	r := data.Report

	m.AddRows(closingHeaderRows(data, fs)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionRow("Resumen de Efectivo", fs))
	m.AddRows(
		amountRow("Monto inicial:", money(r.Session.StartAmount), fs, colorBlack),
		amountRow("Ventas en efectivo:", money(r.CashSales), fs, colorBlack),
		amountRow("Entradas de efectivo:", money(r.CashIn), fs, colorBlack),
		amountRow("Salidas de efectivo:", "-"+money(r.CashOut), fs, colorBlack),
		amountRow("Efectivo esperado:", money(r.Expected), fs+1, colorPrimary),
		amountRow("Efectivo contado:", money(r.Counted), fs+1, colorBlack),
		amountRow("Diferencia:", money(r.Difference), fs+1, differenceColor(r.Difference)),
	)

	m.AddRows(sectionRow("Desglose de Ventas Totales", fs))
	m.AddRows(
		amountRow("Efectivo:", money(r.CashSales), fs, colorBlack),
		amountRow("Tarjeta:", money(r.CardSales), fs, colorBlack),
		amountRow("Crédito:", money(r.CreditSales), fs, colorBlack),
		amountRow(fmt.Sprintf("Total (%d ventas):", r.SalesCount), money(r.TotalSales), fs+1, colorPrimary),
	)

	m.AddRows(sectionRow("Detalle de Movimientos de Efectivo", fs))
	m.AddRows(movementRows(r.Session.Movements, s, money, fs)...)

	if !r.Consistent() {
		m.AddRows(row.New(10).Add(col.New(12).Add(text.New(
			"Aviso: las ventas en efectivo acumuladas en la sesión no coinciden con el historial de ventas.",
			props.Text{Size: fs - 1, Color: colorRed, Top: 3},
		))))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar cierre de caja: %w", err)
	}
	return doc.GetBytes(), nil
}

func closingHeaderRows(data ports.ClosingData, fs float64) []core.Row {
	sess := data.Report.Session
	df := data.Settings.DateFormat
	end := "N/A"
	if sess.EndTime != nil {
		end = format.DateTime(*sess.EndTime, df)
	}
	return []core.Row{
		row.New(12).Add(
			col.New(8).Add(
				text.New("Reporte de Cierre de Caja", props.Text{
					Style: fontstyle.Bold, Size: fs + 6, Color: colorPrimary, Top: 1,
				}),
				text.New("Sesión ID: "+sess.ID, props.Text{Size: fs, Color: colorGray, Top: 8}),
			),
			col.New(4).Add(
				text.New(data.Settings.CompanyName, props.Text{
					Style: fontstyle.Bold, Size: fs + 1, Align: align.Right, Top: 1,
				}),
				text.New(nonEmpty(data.Branch.Name, "-"), props.Text{
					Size: fs, Align: align.Right, Color: colorGray, Top: 8,
				}),
			),
		),
		labelRow("Usuario:", sess.User, fs),
		labelRow("Fecha de Apertura:", format.DateTime(sess.StartTime, df), fs),
		labelRow("Fecha de Cierre:", end, fs),
	}
}

func sectionRow(title string, fs float64) core.Row {
	return row.New(fs*0.8 + 2).Add(col.New(12).Add(text.New(title, props.Text{
		Style: fontstyle.Bold, Size: fs + 2, Color: colorPrimary, Top: 2,
	})))
}

func movementRows(movs []entity.CashDrawerMovement, s entity.Settings, money func(decimal.Decimal) string, fs float64) []core.Row {
	if len(movs) == 0 {
		return []core.Row{row.New(fs * 0.7).Add(col.New(12).Add(text.New(
			"No hubo movimientos manuales de efectivo en esta sesión.",
			props.Text{Size: fs, Style: fontstyle.Italic, Color: colorGray},
		)))}
	}
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: fs, Align: a}))
	}
	rows := []core.Row{row.New(fs * 0.7).Add(
		h("Hora", 3, align.Left),
		h("Motivo", 5, align.Left),
		h("Usuario", 2, align.Left),
		h("Monto", 2, align.Right),
	)}
	for _, mv := range movs {
		kind, amount, color := "Entrada", money(mv.Amount), colorBlack
		if mv.Type == entity.MovementOut {
			kind, amount, color = "Salida", "-"+money(mv.Amount), colorRed
		}
		rows = append(rows, row.New(fs*0.7).Add(
			col.New(3).Add(text.New(format.DateTime(mv.Timestamp, s.DateFormat), props.Text{Size: fs})),
			col.New(5).Add(text.New(fmt.Sprintf("%s (%s)", mv.Reason, kind), props.Text{Size: fs})),
			col.New(2).Add(text.New(mv.User, props.Text{Size: fs})),
			col.New(2).Add(text.New(amount, props.Text{Size: fs, Align: align.Right, Color: color})),
		))
	}
	return rows
}

func differenceColor(d decimal.Decimal) *props.Color {
	if d.IsNegative() {
		return colorRed
	}
	return colorPrimary
}
