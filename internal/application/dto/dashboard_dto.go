package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/zenith-pos/internal/domain/catalog"
	"github.com/jhoicas/zenith-pos/internal/domain/entity"
)

// Períodos del dashboard.
const (
	PeriodAll   = "all"
	PeriodToday = "today"
	PeriodWeek  = "week"
	PeriodMonth = "month"
)

// DashboardSummaryDTO respuesta de GET /api/dashboard.
//
// Los importes y el conteo de ventas respetan el período; el stock, las alertas y
// la actividad reciente son siempre los actuales.
type DashboardSummaryDTO struct {
	Period         string            `json:"period"`
	DateLabel      string            `json:"dateLabel"`
	Revenue        decimal.Decimal   `json:"revenue"`
	SalesCount     int               `json:"salesCount"`
	AverageTicket  decimal.Decimal   `json:"averageTicket"`
	GrossProfit    decimal.Decimal   `json:"grossProfit"`
	UniqueProducts int               `json:"uniqueProducts"`
	LowStockCount  int               `json:"lowStockCount"`
	Alerts         []catalog.Alert   `json:"alerts"`
	TopProducts    []TopProductDTO   `json:"topProducts"`
	Daily          []DailySalesDTO   `json:"daily"`
	RecentActivity []entity.AuditLog `json:"recentActivity"`
}
