package cashdrawer

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/zenith-pos/internal/domain/entity"
)

// ClosingReport arqueo de una sesión: las ventas se recalculan desde el historial
// de ventas de la sucursal entre apertura y cierre.
type ClosingReport struct {
	Session     entity.CashDrawerSession
	From, To    time.Time
	SalesCount  int
	CashSales   decimal.Decimal
	CardSales   decimal.Decimal
	CreditSales decimal.Decimal
	TotalSales  decimal.Decimal
	CashIn      decimal.Decimal
	CashOut     decimal.Decimal
	Expected    decimal.Decimal
	Counted     decimal.Decimal
	Difference  decimal.Decimal
}

// Consistent indica si el efectivo recalculado coincide con el acumulado de la sesión.
func (r ClosingReport) Consistent() bool { return r.CashSales.Equal(r.Session.CashSales) }

// BuildClosingReport arma el arqueo. Para una sesión abierta el corte es now y el
// contado se toma igual al esperado.
func BuildClosingReport(s entity.CashDrawerSession, sales []entity.Sale, now time.Time) ClosingReport {
	to := now
	if s.EndTime != nil {
		to = *s.EndTime
	}
	r := ClosingReport{Session: s, From: s.StartTime, To: to}
	for _, v := range sales {
		if v.BranchID != s.BranchID || v.Date.Before(s.StartTime) || v.Date.After(to) {
			continue
		}
		r.SalesCount++
		r.TotalSales = r.TotalSales.Add(v.Total)
		switch v.PaymentMethod {
		case entity.SaleCash:
			r.CashSales = r.CashSales.Add(v.Total)
		case entity.SaleCard:
			r.CardSales = r.CardSales.Add(v.Total)
		case entity.SaleCredit:
			r.CreditSales = r.CreditSales.Add(v.Total)
		}
	}
	r.CashIn, r.CashOut = MovementTotals(s)
	r.Expected = s.StartAmount.Add(r.CashSales).Add(r.CashIn).Sub(r.CashOut)
	if s.Status == entity.SessionClosed {
		r.Counted = s.EndAmount
	} else {
		r.Counted = r.Expected
	}
	r.Difference = r.Counted.Sub(r.Expected)
	return r
}
