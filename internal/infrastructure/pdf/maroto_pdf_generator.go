// Package pdf genera los documentos imprimibles del punto de venta con Maroto v2:
// el comprobante de venta y el reporte de cierre de caja.
//
// Layout del comprobante:
//
//	┌──────────────────────────────────────┐
//	│  Empresa, dirección, teléfono, lema  │
//	│  Recibo + Fecha + Cajero + Sucursal  │
//	│  Cliente: nombre, NIT, dirección     │
//	│  ──────────────────────────────────  │
//	│  Cant x P.Unit | Descripción | Total │
//	│  ──────────────────────────────────  │
//	│  Subtotal / Descuento / Impuestos    │
//	│  TOTAL + monto en letras             │
//	│  Mensaje de pie + forma de pago + QR │
//	└──────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/zenith-pos/internal/application/ports"
	"github.com/jhoicas/zenith-pos/internal/domain/entity"
	"github.com/jhoicas/zenith-pos/pkg/format"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 180, Green: 30, Blue: 30}
	colorBlack   = &props.Color{Red: 0, Green: 0, Blue: 0}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ ports.DocumentGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa ports.DocumentGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// newDocument arma la página según el tamaño de impresión configurado y devuelve
// el tamaño de letra base. Los tickets (80mm, 58mm) usan márgenes mínimos.
func newDocument(s entity.Settings, title string) (core.Maroto, float64) {
	b := config.NewBuilder()
	fontSize, margin := 9.0, 10.0
	switch s.PrintSize {
	case "80mm":
		b = b.WithDimensions(80, 297)
		fontSize, margin = 7, 3
	case "58mm":
		b = b.WithDimensions(58, 297)
		fontSize, margin = 6, 2
	case "half-letter":
		b = b.WithDimensions(139.7, 215.9)
		fontSize, margin = 8, 6
	default:
		b = b.WithPageSize(pagesize.Letter)
	}
	cfg := b.
		WithLeftMargin(margin).WithRightMargin(margin).
		WithTopMargin(margin).WithBottomMargin(margin).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: fontSize}).
		WithTitle(title, true).
		WithAuthor(s.CompanyName, true).
		Build()
	return maroto.New(cfg), fontSize
}

// ReceiptPDF genera el comprobante de una venta.
func (g *MarotoPDFGenerator) ReceiptPDF(_ context.Context, data ports.ReceiptData) ([]byte, error) {
	m, fs := newDocument(data.Settings, "Comprobante "+data.Sale.ID)
	money := moneyFormatter(data.Settings)

	m.AddRows(companyRows(data.Settings, fs)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(saleInfoRows(data, fs)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow(fs))
	for _, it := range data.Sale.Items {
		m.AddRows(itemRows(it, data.ProductSKUs[it.ProductID], money, fs)...)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(receiptTotalsRows(data, money, fs)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.2}))
	m.AddRows(receiptFooterRows(data, fs)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones del comprobante ────────────────────────────────────────────────

func companyRows(s entity.Settings, fs float64) []core.Row {
	center := func(v string, size float64, style fontstyle.Type) core.Row {
		return row.New(size*0.6).Add(col.New(12).Add(text.New(v, props.Text{
			Style: style, Size: size, Align: align.Center, Color: colorPrimary,
		})))
	}
	rows := []core.Row{center(s.CompanyName, fs+4, fontstyle.Bold)}
	if s.CompanyNIT != "" {
		rows = append(rows, center("NIT: "+s.CompanyNIT, fs, fontstyle.Normal))
	}
	rows = append(rows,
		center(s.Address, fs, fontstyle.Normal),
		center("Tel: "+s.Phone, fs, fontstyle.Normal),
	)
	if s.Slogan != "" {
		rows = append(rows, center(s.Slogan, fs, fontstyle.Italic))
	}
	return rows
}

func saleInfoRows(data ports.ReceiptData, fs float64) []core.Row {
	s := data.Settings
	c := data.Customer
	return []core.Row{
		labelRow("Recibo:", data.Sale.ID, fs),
		labelRow("Fecha:", format.DateTime(data.Sale.Date, s.DateFormat), fs),
		labelRow("Cajero:", data.Sale.User, fs),
		labelRow("Sucursal:", nonEmpty(data.Branch.Name, "-"), fs),
		labelRow("Cliente:", nonEmpty(c.Name, data.Sale.CustomerName), fs),
		labelRow("NIT:", nonEmpty(c.NIT, "C/F"), fs),
		labelRow("Dirección:", nonEmpty(c.Address, "-"), fs),
	}
}

func labelRow(label, value string, fs float64) core.Row {
	return row.New(fs * 0.6).Add(
		col.New(4).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: fs})),
		col.New(8).Add(text.New(value, props.Text{Size: fs})),
	)
}

func tableHeaderRow(fs float64) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: fs, Align: a, Color: colorPrimary,
		}))
	}
	return row.New(fs * 0.7).Add(
		h("C/P/D", 8, align.Left),
		h("Total", 4, align.Right),
	)
}

// itemRows: descripción (con SKU si el producto existe) y cantidad × precio = total.
func itemRows(it entity.SaleItem, sku string, money func(decimal.Decimal) string, fs float64) []core.Row {
	desc := it.Name
	if sku != "" {
		desc = fmt.Sprintf("%s [%s]", it.Name, sku)
	}
	return []core.Row{
		row.New(fs * 0.6).Add(col.New(12).Add(text.New(desc, props.Text{Size: fs}))),
		row.New(fs * 0.6).Add(
			col.New(8).Add(text.New(fmt.Sprintf("%d x %s", it.Quantity, money(it.Price)), props.Text{
				Size: fs, Color: colorGray, Left: 2,
			})),
			col.New(4).Add(text.New(money(it.LineTotal()), props.Text{Size: fs, Align: align.Right})),
		),
	}
}

func receiptTotalsRows(data ports.ReceiptData, money func(decimal.Decimal) string, fs float64) []core.Row {
	s, sale := data.Settings, data.Sale
	taxLabel := fmt.Sprintf("Impuestos (%s%%):", s.TaxRate.String())
	if s.PricesIncludeTax {
		taxLabel = fmt.Sprintf("Impuestos (%s%%) (Incluido):", s.TaxRate.String())
	}
	rows := []core.Row{amountRow("Subtotal:", money(sale.Subtotal), fs, colorBlack)}
	if sale.DiscountAmount.IsPositive() {
		rows = append(rows, amountRow(
			fmt.Sprintf("Descuento (%s%%):", sale.DiscountPercentage.String()),
			"-"+money(sale.DiscountAmount), fs, colorBlack))
	}
	rows = append(rows,
		amountRow(taxLabel, money(sale.Tax), fs, colorBlack),
		amountRow("TOTAL:", money(sale.Total), fs+2, colorPrimary),
		row.New(fs*0.9).Add(col.New(12).Add(text.New("SON: "+format.Words(sale.Total), props.Text{
			Size: fs - 1, Top: 1,
		}))),
	)
	return rows
}

func receiptFooterRows(data ports.ReceiptData, fs float64) []core.Row {
	rows := []core.Row{
		row.New(fs * 0.8).Add(col.New(12).Add(text.New(data.Settings.FooterMessage, props.Text{
			Size: fs, Align: align.Center, Top: 1,
		}))),
		row.New(fs * 0.6).Add(col.New(12).Add(text.New("Forma de Pago: "+paymentLabel(data.Sale.PaymentMethod), props.Text{
			Size: fs, Align: align.Center,
		}))),
	}
	if data.Sale.Comments != "" {
		rows = append(rows, row.New(fs*0.6).Add(col.New(12).Add(text.New(data.Sale.Comments, props.Text{
			Size: fs - 1, Align: align.Center, Color: colorGray,
		}))))
	}
	// El QR lleva el número de recibo para ubicarlo desde el historial con el escáner.
	rows = append(rows, row.New(28).Add(col.New(12).Add(code.NewQr(data.Sale.ID, props.Rect{
		Percent: 90,
		Center:  true,
	}))))
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func amountRow(label, value string, fs float64, color *props.Color) core.Row {
	return row.New(fs * 0.6).Add(
		col.New(7).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: fs, Align: align.Right, Right: 2, Color: color})),
		col.New(5).Add(text.New(value, props.Text{Size: fs, Align: align.Right, Color: color})),
	)
}

func moneyFormatter(s entity.Settings) func(decimal.Decimal) string {
	return func(v decimal.Decimal) string { return format.Currency(v, s.CurrencySymbol, s.NumberFormat) }
}

func paymentLabel(m entity.SalePaymentMethod) string {
	switch m {
	case entity.SaleCash:
		return "Efectivo"
	case entity.SaleCard:
		return "Tarjeta"
	case entity.SaleCredit:
		return "Crédito"
	}
	return string(m)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
