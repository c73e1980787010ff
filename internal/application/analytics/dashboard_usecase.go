// Package analytics contiene los casos de uso de reportes de negocio y el
// dashboard de la sucursal.
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
	"github.com/jhoicas/zenith-pos/internal/domain/catalog"
	"github.com/jhoicas/zenith-pos/internal/domain/entity"
)

const (
	dashboardTopProducts = 5 // productos en el widget del dashboard
	dashboardActivity    = 5 // entradas de auditoría recientes
)

// DashboardUseCase genera el resumen de la sucursal para un período.
type DashboardUseCase struct {
	runner ports.StateRunner
	now    func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(runner ports.StateRunner) *DashboardUseCase {
	return &DashboardUseCase{runner: runner, now: time.Now}
}

// GetSummary construye el DashboardSummaryDTO de la sucursal.
//
// Períodos:
//   - all:   todas las ventas
//   - today: desde las 00:00 de hoy
//   - week:  desde las 00:00 de hace 7 días
//   - month: mes calendario en curso
func (uc *DashboardUseCase) GetSummary(ctx context.Context, branchID, period string) (*dto.DashboardSummaryDTO, error) {
	if period == "" {
		period = dto.PeriodAll
	}
	now := uc.now()
	keep, err := periodFilter(period, now)
	if err != nil {
		return nil, err
	}
	st, err := uc.runner.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	sales := salesIn(st, branchID, keep)
	out := &dto.DashboardSummaryDTO{
		Period:         period,
		DateLabel:      monthLabel(now),
		SalesCount:     len(sales),
		UniqueProducts: len(st.Products),
		Daily:          []dto.DailySalesDTO{},
	}

	// ── Ventas del período ─────────────────────────────────────────────────────
	var cost decimal.Decimal
	daily := map[string]decimal.Decimal{}
	for _, s := range sales {
		out.Revenue = out.Revenue.Add(s.Total)
		cost = cost.Add(costOf(s))
		k := s.Date.In(now.Location()).Format(dailyKeyLayout)
		daily[k] = daily[k].Add(s.Total)
	}
	out.GrossProfit = out.Revenue.Sub(cost)
	if out.SalesCount > 0 {
		out.AverageTicket = out.Revenue.Div(decimal.NewFromInt(int64(out.SalesCount))).Round(2)
	}
	for k, v := range daily {
		out.Daily = append(out.Daily, dto.DailySalesDTO{Date: k, Total: v})
	}
	sort.Slice(out.Daily, func(i, j int) bool { return out.Daily[i].Date < out.Daily[j].Date })
	out.TopProducts = topProducts(sales, dashboardTopProducts)

	// ── Inventario y actividad (siempre actuales) ──────────────────────────────
	for _, p := range st.Products {
		if stock := st.GetStock(p.ID, branchID); stock > 0 && stock <= p.LowStockAlert {
			out.LowStockCount++
		}
	}
	out.Alerts = catalog.Alerts(st, branchID, now)
	if out.Alerts == nil {
		out.Alerts = []catalog.Alert{}
	}
	n := min(dashboardActivity, len(st.AuditLog))
	out.RecentActivity = append([]entity.AuditLog{}, st.AuditLog[:n]...)

	return out, nil
}

func periodFilter(period string, now time.Time) (func(time.Time) bool, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch period {
	case dto.PeriodAll:
		return func(time.Time) bool { return true }, nil
	case dto.PeriodToday:
		return func(t time.Time) bool { return !t.Before(today) }, nil
	case dto.PeriodWeek:
		since := today.AddDate(0, 0, -7)
		return func(t time.Time) bool { return !t.Before(since) }, nil
	case dto.PeriodMonth:
		return func(t time.Time) bool {
			t = t.In(now.Location())
			return t.Year() == now.Year() && t.Month() == now.Month()
		}, nil
	}
	return nil, fmt.Errorf("período %q: %w", period, domain.ErrInvalidInput)
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Febrero 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
