// Package pricing calcula los totales de un carrito.
//
// Con precios con impuesto incluido el impuesto se extrae del total:
//
//	total    = subtotal − descuento
//	impuesto = total − total / (1 + tasa/100)
//	neto     = total − impuesto
//
// Con precios sin impuesto se agrega sobre el neto:
//
//	neto     = subtotal − descuento
//	impuesto = neto × tasa/100
//	total    = neto + impuesto
package pricing

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Line precio unitario y cantidad de una línea del carrito.
type Line struct {
	UnitPrice decimal.Decimal
	Quantity  int
}

// Totals resultado del cálculo. Subtotal es el neto después del descuento y
// siempre se cumple Total = Subtotal + Tax.
type Totals struct {
	Gross          decimal.Decimal // Σ precio × cantidad
	DiscountAmount decimal.Decimal
	Subtotal       decimal.Decimal
	Tax            decimal.Decimal
	Total          decimal.Decimal
}

// ClampDiscount limita el porcentaje de descuento a [0, 100].
func ClampDiscount(pct decimal.Decimal) decimal.Decimal {
	if pct.IsNegative() {
		return decimal.Zero
	}
	if pct.GreaterThan(hundred) {
		return hundred
	}
	return pct
}

// Compute calcula los totales redondeados a 2 decimales.
func Compute(lines []Line, discountPct, taxRate decimal.Decimal, pricesIncludeTax bool) Totals {
	gross := decimal.Zero
	for _, l := range lines {
		gross = gross.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	discount := gross.Mul(discountPct).Div(hundred)
	rate := taxRate.Div(hundred)

	var subtotal, tax, total decimal.Decimal
	if pricesIncludeTax {
		total = gross.Sub(discount).Round(2)
		tax = total.Sub(total.Div(decimal.NewFromInt(1).Add(rate))).Round(2)
		subtotal = total.Sub(tax)
	} else {
		subtotal = gross.Sub(discount).Round(2)
		tax = subtotal.Mul(rate).Round(2)
		total = subtotal.Add(tax)
	}
	return Totals{
		Gross:          gross.Round(2),
		DiscountAmount: discount.Round(2),
		Subtotal:       subtotal,
		Tax:            tax,
		Total:          total,
	}
}
