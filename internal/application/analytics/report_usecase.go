package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/zenith-pos/internal/application/dto"
	"github.com/jhoicas/zenith-pos/internal/application/ports"
	"github.com/jhoicas/zenith-pos/internal/domain"
	"github.com/jhoicas/zenith-pos/internal/domain/entity"
	"github.com/jhoicas/zenith-pos/internal/domain/state"
)

const (
	defaultTopN    = 10
	maxTopN        = 100
	uncategorized  = "Sin Categoría"
	monthKeyLayout = "2006-01"
	dailyKeyLayout = "2006-01-02"
)

var paymentOrder = []entity.SalePaymentMethod{entity.SaleCash, entity.SaleCard, entity.SaleCredit}

// ReportUseCase reportes de la sucursal: resultados, ventas por categoría, más
// vendidos y gastos por categoría.
type ReportUseCase struct {
	runner  ports.StateRunner
	journal ports.SalesJournal
}

// NewReportUseCase construye el caso de uso. journal puede ser nil.
func NewReportUseCase(runner ports.StateRunner, journal ports.SalesJournal) *ReportUseCase {
	return &ReportUseCase{runner: runner, journal: journal}
}

// General estado de resultados: ingresos, costo de ventas, gastos, utilidad bruta y
// neta, serie mensual de ingresos contra gastos y mezcla por forma de pago.
func (uc *ReportUseCase) General(ctx context.Context, branchID string, r dto.DateRange) (*dto.GeneralReportDTO, error) {
	st, err := uc.runner.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.GeneralReportDTO{Monthly: []dto.MonthlyDTO{}, ByPayment: []dto.PaymentMixDTO{}}
	months := map[string]*dto.MonthlyDTO{}
	month := func(t time.Time) *dto.MonthlyDTO {
		k := t.Format(monthKeyLayout)
		m, ok := months[k]
		if !ok {
			m = &dto.MonthlyDTO{Month: k}
			months[k] = m
		}
		return m
	}
	mix := map[entity.SalePaymentMethod]*dto.PaymentMixDTO{}

	for _, s := range salesIn(st, branchID, r.Contains) {
		out.SalesCount++
		out.Revenue = out.Revenue.Add(s.Total)
		out.CostOfGoods = out.CostOfGoods.Add(costOf(s))
		m := month(s.Date)
		m.Revenue = m.Revenue.Add(s.Total)

		p, ok := mix[s.PaymentMethod]
		if !ok {
			p = &dto.PaymentMixDTO{PaymentMethod: string(s.PaymentMethod)}
			mix[s.PaymentMethod] = p
		}
		p.Sales++
		p.Total = p.Total.Add(s.Total)
	}
	for _, e := range st.Expenses {
		if e.BranchID != branchID || !r.Contains(e.Date) {
			continue
		}
		out.Expenses = out.Expenses.Add(e.Amount)
		m := month(e.Date)
		m.Expenses = m.Expenses.Add(e.Amount)
	}

	out.GrossProfit = out.Revenue.Sub(out.CostOfGoods)
	out.NetProfit = out.GrossProfit.Sub(out.Expenses)
	for _, m := range months {
		out.Monthly = append(out.Monthly, *m)
	}
	sort.Slice(out.Monthly, func(i, j int) bool { return out.Monthly[i].Month < out.Monthly[j].Month })
	for _, pm := range paymentOrder {
		if p, ok := mix[pm]; ok {
			out.ByPayment = append(out.ByPayment, *p)
		}
	}
	return out, nil
}

// SalesByCategory suma precio × cantidad por categoría del producto. Las líneas de
// productos eliminados no se cuentan.
func (uc *ReportUseCase) SalesByCategory(ctx context.Context, branchID string, r dto.DateRange) ([]dto.CategoryTotalDTO, error) {
	st, err := uc.runner.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	totals := map[string]decimal.Decimal{}
	for _, s := range salesIn(st, branchID, r.Contains) {
		for _, it := range s.Items {
			i := st.ProductIndex(it.ProductID)
			if i < 0 {
				continue
			}
			cat := st.Products[i].CategoryID
			totals[cat] = totals[cat].Add(it.LineTotal())
		}
	}
	return categoryTotals(totals, st.ProductCategories), nil
}

// ExpensesByCategory suma los gastos por categoría de gasto.
func (uc *ReportUseCase) ExpensesByCategory(ctx context.Context, branchID string, r dto.DateRange) ([]dto.CategoryTotalDTO, error) {
	st, err := uc.runner.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	totals := map[string]decimal.Decimal{}
	for _, e := range st.Expenses {
		if e.BranchID == branchID && r.Contains(e.Date) {
			totals[e.CategoryID] = totals[e.CategoryID].Add(e.Amount)
		}
	}
	return categoryTotals(totals, st.ExpenseCategories), nil
}

// BestSellers productos más vendidos por cantidad. limit <= 0 usa 10.
func (uc *ReportUseCase) BestSellers(ctx context.Context, branchID string, r dto.DateRange, limit int) ([]dto.TopProductDTO, error) {
	st, err := uc.runner.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultTopN
	}
	return topProducts(salesIn(st, branchID, r.Contains), min(limit, maxTopN)), nil
}

// Journal totales por forma de pago leídos de la proyección relacional de ventas.
func (uc *ReportUseCase) Journal(ctx context.Context, branchID string, r dto.DateRange) ([]dto.PaymentMixDTO, error) {
	if uc.journal == nil {
		return nil, fmt.Errorf("diario de ventas no disponible con este almacenamiento: %w", domain.ErrConflict)
	}
	to := r.To
	if !to.IsZero() {
		to = to.Add(time.Nanosecond)
	}
	out, err := uc.journal.PaymentTotals(ctx, branchID, r.From, to)
	if err != nil {
		return nil, fmt.Errorf("reportes: diario de ventas: %w", err)
	}
	if out == nil {
		out = []dto.PaymentMixDTO{}
	}
	return out, nil
}

// ── helpers ──────────────────────────────────────────────────────────────────

func salesIn(st *state.State, branchID string, keep func(time.Time) bool) []entity.Sale {
	var out []entity.Sale
	for _, s := range st.Sales {
		if s.BranchID == branchID && keep(s.Date) {
			out = append(out, s)
		}
	}
	return out
}

func costOf(s entity.Sale) decimal.Decimal {
	var c decimal.Decimal
	for _, it := range s.Items {
		c = c.Add(it.Cost.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return c
}

// categoryTotals resuelve los nombres; los ids sin categoría conocida se agrupan
// en una sola fila sin id.
func categoryTotals(totals map[string]decimal.Decimal, cats []entity.Category) []dto.CategoryTotalDTO {
	merged := map[string]decimal.Decimal{}
	for id, total := range totals {
		if state.CategoryIndex(cats, id) < 0 {
			id = ""
		}
		merged[id] = merged[id].Add(total)
	}
	out := make([]dto.CategoryTotalDTO, 0, len(merged))
	for id, total := range merged {
		name := uncategorized
		if i := state.CategoryIndex(cats, id); i >= 0 {
			name = cats[i].Name
		}
		out = append(out, dto.CategoryTotalDTO{CategoryID: id, CategoryName: name, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Total.Equal(out[j].Total) {
			return out[i].Total.GreaterThan(out[j].Total)
		}
		return out[i].CategoryName < out[j].CategoryName
	})
	return out
}

func topProducts(sales []entity.Sale, limit int) []dto.TopProductDTO {
	byID := map[string]*dto.TopProductDTO{}
	for _, s := range sales {
		for _, it := range s.Items {
			p, ok := byID[it.ProductID]
			if !ok {
				p = &dto.TopProductDTO{ProductID: it.ProductID, Name: it.Name}
				byID[it.ProductID] = p
			}
			p.Quantity += it.Quantity
			p.Revenue = p.Revenue.Add(it.LineTotal())
		}
	}
	out := make([]dto.TopProductDTO, 0, len(byID))
	for _, p := range byID {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Quantity != out[j].Quantity {
			return out[i].Quantity > out[j].Quantity
		}
		if !out[i].Revenue.Equal(out[j].Revenue) {
			return out[i].Revenue.GreaterThan(out[j].Revenue)
		}
		return out[i].ProductID < out[j].ProductID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
