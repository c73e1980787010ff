package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/zenith-pos/internal/application/analytics"
	"github.com/jhoicas/zenith-pos/internal/application/dto"
	"github.com/jhoicas/zenith-pos/internal/domain"
	"github.com/jhoicas/zenith-pos/internal/domain/entity"
	"github.com/jhoicas/zenith-pos/internal/domain/state"
	"github.com/jhoicas/zenith-pos/internal/infrastructure/memory"
	"github.com/jhoicas/zenith-pos/internal/infrastructure/store"
	"github.com/jhoicas/zenith-pos/pkg/logger"
)

const central = state.SeedBranchID

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func date(y int, m time.Month, day int) time.Time { return time.Date(y, m, day, 12, 0, 0, 0, time.UTC) }

func item(id, name string, qty int, price, cost string) entity.SaleItem {
	return entity.SaleItem{ProductID: id, Name: name, Quantity: qty, Price: d(price), Cost: d(cost)}
}

func sale(id, branch string, at time.Time, method entity.SalePaymentMethod, total string, items ...entity.SaleItem) entity.Sale {
	return entity.Sale{ID: id, BranchID: branch, Date: at, PaymentMethod: method, Total: d(total), Items: items}
}

func setup(t *testing.T, sales []entity.Sale) *store.Runner {
	t.Helper()
	seed := state.Seed("Central", "hash")
	seed.Branches = append(seed.Branches, entity.Branch{ID: "branch-2", Name: "Norte"})
	seed.ProductCategories = []entity.Category{{ID: "cat-beb", Name: "Bebidas"}, {ID: "cat-pan", Name: "Panadería"}}
	seed.Products = []entity.Product{
		{ID: "p1", Name: "Café", SKU: "CF", CategoryID: "cat-beb", Price: d("5"), Cost: d("2"), LowStockAlert: 5},
		{ID: "p2", Name: "Pan", SKU: "PN", CategoryID: "cat-pan", Price: d("1"), Cost: d("0.5"), LowStockAlert: 10},
		{ID: "p3", Name: "Chicle", SKU: "CH", Price: d("0.5"), Cost: d("0.1")},
	}
	seed.SetStock("p1", central, 3)
	seed.SetStock("p2", central, 100)
	seed.Sales = sales
	seed.ExpenseCategories = []entity.Category{{ID: "exp-1", Name: "Servicios"}}
	seed.Expenses = []entity.Expense{
		{ID: "e1", BranchID: central, Amount: d("30"), CategoryID: "exp-1", Date: date(2024, 1, 20)},
		{ID: "e2", BranchID: central, Amount: d("5"), CategoryID: "borrada", Date: date(2024, 2, 2)},
		{ID: "e3", BranchID: "branch-2", Amount: d("999"), CategoryID: "exp-1", Date: date(2024, 1, 20)},
	}
	r, err := store.Open(context.Background(), memory.NewRecordStore(), seed, logger.Nop())
	require.NoError(t, err)
	return r
}

func historic() []entity.Sale {
	return []entity.Sale{
		sale("V3", central, date(2024, 2, 10), entity.SaleCard, "10", item("p1", "Café", 2, "5", "2")),
		sale("V2", central, date(2024, 1, 15), entity.SaleCash, "25",
			item("p1", "Café", 3, "5", "2"), item("p2", "Pan", 10, "1", "0.5")),
		sale("V1", "branch-2", date(2024, 1, 5), entity.SaleCash, "500", item("p1", "Café", 100, "5", "2")),
	}
}

// ─── Reporte general ─────────────────────────────────────────────────────────

func TestGeneral_ResultadosPorSucursal(t *testing.T) {
	uc := analytics.NewReportUseCase(setup(t, historic()), nil)

	rep, err := uc.General(context.Background(), central, dto.DateRange{})
	require.NoError(t, err)
	assert.Equal(t, 2, rep.SalesCount)
	assert.True(t, rep.Revenue.Equal(d("35")))
	assert.True(t, rep.CostOfGoods.Equal(d("15")))
	assert.True(t, rep.Expenses.Equal(d("35")))
	assert.True(t, rep.GrossProfit.Equal(d("20")))
	assert.True(t, rep.NetProfit.Equal(d("-15")))

	require.Len(t, rep.Monthly, 2)
	assert.Equal(t, "2024-01", rep.Monthly[0].Month)
	assert.True(t, rep.Monthly[0].Revenue.Equal(d("25")))
	assert.True(t, rep.Monthly[0].Expenses.Equal(d("30")))
	assert.Equal(t, "2024-02", rep.Monthly[1].Month)

	require.Len(t, rep.ByPayment, 2)
	assert.Equal(t, "cash", rep.ByPayment[0].PaymentMethod)
	assert.Equal(t, "card", rep.ByPayment[1].PaymentMethod)
}

func TestGeneral_RangoDeFechas(t *testing.T) {
	uc := analytics.NewReportUseCase(setup(t, historic()), nil)

	rep, err := uc.General(context.Background(), central, dto.DateRange{From: date(2024, 2, 1)})
	require.NoError(t, err)
	assert.Equal(t, 1, rep.SalesCount)
	assert.True(t, rep.Revenue.Equal(d("10")))
	assert.True(t, rep.Expenses.Equal(d("5")))
}

// ─── Categorías y más vendidos ───────────────────────────────────────────────

func TestSalesByCategory(t *testing.T) {
	sales := append(historic(),
		sale("V4", central, date(2024, 2, 11), entity.SaleCash, "1", item("p3", "Chicle", 2, "0.5", "0.1")),
		sale("V5", central, date(2024, 2, 12), entity.SaleCash, "9", item("borrado", "Viejo", 1, "9", "1")))
	uc := analytics.NewReportUseCase(setup(t, sales), nil)

	cats, err := uc.SalesByCategory(context.Background(), central, dto.DateRange{})
	require.NoError(t, err)
	require.Len(t, cats, 3, "las líneas de productos eliminados no cuentan")
	assert.Equal(t, "Bebidas", cats[0].CategoryName)
	assert.True(t, cats[0].Total.Equal(d("25")))
	assert.Equal(t, "Panadería", cats[1].CategoryName)
	assert.Equal(t, "Sin Categoría", cats[2].CategoryName)
	assert.Empty(t, cats[2].CategoryID)
}

func TestExpensesByCategory_AgrupaDesconocidas(t *testing.T) {
	uc := analytics.NewReportUseCase(setup(t, nil), nil)

	cats, err := uc.ExpensesByCategory(context.Background(), central, dto.DateRange{})
	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, "Servicios", cats[0].CategoryName)
	assert.True(t, cats[0].Total.Equal(d("30")))
	assert.Equal(t, "Sin Categoría", cats[1].CategoryName)
}

func TestBestSellers_OrdenPorCantidad(t *testing.T) {
	uc := analytics.NewReportUseCase(setup(t, historic()), nil)

	top, err := uc.BestSellers(context.Background(), central, dto.DateRange{}, 0)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "p2", top[0].ProductID)
	assert.Equal(t, 10, top[0].Quantity)
	assert.Equal(t, "p1", top[1].ProductID)
	assert.Equal(t, 5, top[1].Quantity)
	assert.True(t, top[1].Revenue.Equal(d("25")))

	top, err = uc.BestSellers(context.Background(), central, dto.DateRange{}, 1)
	require.NoError(t, err)
	assert.Len(t, top, 1)
}

// ─── Diario de ventas ────────────────────────────────────────────────────────

type fakeJournal struct {
	from, to time.Time
	err      error
}

func (f *fakeJournal) PaymentTotals(_ context.Context, _ string, from, to time.Time) ([]dto.PaymentMixDTO, error) {
	f.from, f.to = from, to
	return nil, f.err
}

func TestJournal(t *testing.T) {
	r := setup(t, nil)
	ctx := context.Background()

	_, err := analytics.NewReportUseCase(r, nil).Journal(ctx, central, dto.DateRange{})
	assert.ErrorIs(t, err, domain.ErrConflict)

	j := &fakeJournal{}
	to := date(2024, 1, 31)
	out, err := analytics.NewReportUseCase(r, j).Journal(ctx, central, dto.DateRange{To: to})
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.True(t, j.to.After(to), "el extremo superior es inclusivo")

	j.err = errors.New("conexión cerrada")
	_, err = analytics.NewReportUseCase(r, j).Journal(ctx, central, dto.DateRange{})
	assert.ErrorContains(t, err, "conexión cerrada")
}

// ─── Dashboard ───────────────────────────────────────────────────────────────

func TestDashboard_Periodos(t *testing.T) {
	now := time.Now()
	sales := []entity.Sale{
		sale("V3", central, now, entity.SaleCash, "10", item("p1", "Café", 2, "5", "2")),
		sale("V2", central, now.AddDate(0, 0, -3), entity.SaleCash, "20", item("p2", "Pan", 20, "1", "0.5")),
		sale("V1", central, now.AddDate(-1, 0, 0), entity.SaleCard, "100", item("p1", "Café", 20, "5", "2")),
	}
	uc := analytics.NewDashboardUseCase(setup(t, sales))
	ctx := context.Background()

	all, err := uc.GetSummary(ctx, central, "")
	require.NoError(t, err)
	assert.Equal(t, dto.PeriodAll, all.Period)
	assert.Equal(t, 3, all.SalesCount)
	assert.True(t, all.Revenue.Equal(d("130")))
	assert.True(t, all.AverageTicket.Equal(d("43.33")))
	assert.Equal(t, 3, all.UniqueProducts)
	assert.Equal(t, 1, all.LowStockCount)
	assert.Len(t, all.Alerts, 1)
	assert.Len(t, all.Daily, 3)
	assert.Equal(t, "p1", all.TopProducts[0].ProductID)

	today, err := uc.GetSummary(ctx, central, dto.PeriodToday)
	require.NoError(t, err)
	assert.Equal(t, 1, today.SalesCount)
	assert.True(t, today.GrossProfit.Equal(d("6")))

	week, err := uc.GetSummary(ctx, central, dto.PeriodWeek)
	require.NoError(t, err)
	assert.Equal(t, 2, week.SalesCount)
	assert.Equal(t, 1, week.LowStockCount, "el stock no depende del período")
}

func TestDashboard_SinVentasYPeriodoInvalido(t *testing.T) {
	uc := analytics.NewDashboardUseCase(setup(t, nil))
	ctx := context.Background()

	sum, err := uc.GetSummary(ctx, "branch-2", dto.PeriodMonth)
	require.NoError(t, err)
	assert.Zero(t, sum.SalesCount)
	assert.True(t, sum.AverageTicket.IsZero())
	assert.NotNil(t, sum.Alerts)
	assert.NotNil(t, sum.Daily)
	assert.NotEmpty(t, sum.DateLabel)

	_, err = uc.GetSummary(ctx, central, "year")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
