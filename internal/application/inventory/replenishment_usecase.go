package inventory

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/zenith-pos/internal/application/dto"
	"github.com/jhoicas/zenith-pos/internal/application/ports"
)

// ReplenishmentUseCase genera la lista de reposición de una sucursal.
// Combina el stock actual con el margen de las ventas recientes para priorizar los SKUs críticos.
type ReplenishmentUseCase struct {
	runner ports.StateRunner
	now    func() time.Time
}

// NewReplenishmentUseCase construye el caso de uso de reposición.
func NewReplenishmentUseCase(runner ports.StateRunner) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{runner: runner, now: time.Now}
}

type skuMetrics struct {
	unitsSold int
	revenue   decimal.Decimal
	profit    decimal.Decimal
}

// GenerateReplenishmentList devuelve los productos en o bajo su umbral de stock con la
// cantidad sugerida de pedido y un ranking de prioridad basado en margen y volumen de
// los últimos 90 días.
func (uc *ReplenishmentUseCase) GenerateReplenishmentList(ctx context.Context, branchID string) ([]dto.ReplenishmentSuggestionDTO, error) {
	st, err := uc.runner.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	// Márgenes por producto en la sucursal
	since := uc.now().AddDate(0, 0, -90)
	byID := make(map[string]*skuMetrics)
	for _, s := range st.Sales {
		if s.BranchID != branchID || s.Date.Before(since) {
			continue
		}
		for _, it := range s.Items {
			m := byID[it.ProductID]
			if m == nil {
				m = &skuMetrics{}
				byID[it.ProductID] = m
			}
			qty := decimal.NewFromInt(int64(it.Quantity))
			m.unitsSold += it.Quantity
			m.revenue = m.revenue.Add(it.LineTotal())
			m.profit = m.profit.Add(it.Price.Sub(it.Cost).Mul(qty))
		}
	}

	hundred := decimal.NewFromInt(100)
	out := []dto.ReplenishmentSuggestionDTO{}
	for _, p := range st.Products {
		stock := st.GetStock(p.ID, branchID)
		if stock > p.LowStockAlert {
			continue
		}
		ideal := max((p.LowStockAlert*3+1)/2, 1)
		qty := max(ideal-stock, 0)

		var marginPct decimal.Decimal
		var sold int
		if m, ok := byID[p.ID]; ok && m.revenue.IsPositive() {
			sold = m.unitsSold
			marginPct = m.profit.Div(m.revenue).Mul(hundred).Round(2)
		} else if p.Price.IsPositive() {
			// Sin ventas recientes: margen de catálogo
			marginPct = p.Price.Sub(p.Cost).Div(p.Price).Mul(hundred).Round(2)
		}

		out = append(out, dto.ReplenishmentSuggestionDTO{
			ProductID:          p.ID,
			SKU:                p.SKU,
			ProductName:        p.Name,
			CurrentStock:       stock,
			LowStockAlert:      p.LowStockAlert,
			IdealStock:         ideal,
			SuggestedOrderQty:  qty,
			UnitCost:           p.Cost,
			EstimatedOrderCost: p.Cost.Mul(decimal.NewFromInt(int64(qty))),
			GrossMarginPct:     marginPct,
			UnitsSoldLast90:    sold,
		})
	}

	// Mayor margen, luego mayor volumen, luego mayor déficit.
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if !a.GrossMarginPct.Equal(b.GrossMarginPct) {
			return a.GrossMarginPct.GreaterThan(b.GrossMarginPct)
		}
		if a.UnitsSoldLast90 != b.UnitsSoldLast90 {
			return a.UnitsSoldLast90 > b.UnitsSoldLast90
		}
		return a.LowStockAlert-a.CurrentStock > b.LowStockAlert-b.CurrentStock
	})

	for i := range out {
		out[i].Priority = i + 1
	}
	return out, nil
}
