package purchasing

import "github.com/shopspring/decimal"

// WeightedCost calcula el costo promedio ponderado tras una entrada de mercadería:
//
//	nuevo = (stock × costoActual + cantidad × costoEntrada) / (stock + cantidad)
//
// El stock negativo se trata como cero.
func WeightedCost(stock int, currentCost decimal.Decimal, qty int, entryCost decimal.Decimal) decimal.Decimal {
	if stock < 0 {
		stock = 0
	}
	s := decimal.NewFromInt(int64(stock))
	q := decimal.NewFromInt(int64(qty))
	sum := s.Add(q)
	if sum.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return s.Mul(currentCost).Add(q.Mul(entryCost)).Div(sum).Round(2)
}
