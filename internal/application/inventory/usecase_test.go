package inventory_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/zenith-pos/internal/application/dto"
	"github.com/jhoicas/zenith-pos/internal/application/inventory"
	"github.com/jhoicas/zenith-pos/internal/application/ports"
	"github.com/jhoicas/zenith-pos/internal/domain"
	"github.com/jhoicas/zenith-pos/internal/domain/catalog"
	"github.com/jhoicas/zenith-pos/internal/domain/entity"
	"github.com/jhoicas/zenith-pos/internal/domain/state"
	"github.com/jhoicas/zenith-pos/internal/infrastructure/importexport"
	"github.com/jhoicas/zenith-pos/internal/infrastructure/memory"
	"github.com/jhoicas/zenith-pos/internal/infrastructure/store"
	"github.com/jhoicas/zenith-pos/pkg/logger"
)

var bodega = ports.Actor{UserID: state.SeedAdminUserID, Name: "Admin", BranchID: state.SeedBranchID}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func setup(t *testing.T) *store.Runner {
	t.Helper()
	seed := state.Seed("Central", "hash")
	seed.Products = []entity.Product{
		{ID: "p1", Name: "Yogur", SKU: "YG-1", Price: d("3"), Cost: d("2"), LowStockAlert: 5,
			ExpiryDate: time.Now().AddDate(0, 0, 10).Format("2006-01-02")},
		{ID: "p2", Name: "Arroz", SKU: "AR-1", Price: d("10"), Cost: d("5"), LowStockAlert: 4},
		{ID: "p3", Name: "Sal", SKU: "SL-1", Price: d("1"), Cost: d("0.5"), LowStockAlert: 2},
	}
	seed.SetStock("p1", state.SeedBranchID, 3)
	seed.SetStock("p2", state.SeedBranchID, 0)
	seed.SetStock("p3", state.SeedBranchID, 50)
	r, err := store.Open(context.Background(), memory.NewRecordStore(), seed, logger.Nop())
	require.NoError(t, err)
	return r
}

// ─── Alertas ─────────────────────────────────────────────────────────────────

func TestAlerts_StockBajoYVencimiento(t *testing.T) {
	uc := inventory.NewInventoryUseCase(setup(t), importexport.Codec{})
	ctx := context.Background()

	alerts, err := uc.Alerts(ctx, state.SeedBranchID)
	require.NoError(t, err)
	require.Len(t, alerts, 2, "el producto sin stock no alerta")
	assert.Equal(t, catalog.LowStockKey("p1"), alerts[0].Key)
	assert.Equal(t, catalog.AlertExpiringSoon, alerts[1].Kind)

	require.NoError(t, uc.DismissAlert(ctx, dto.DismissAlertRequest{Key: catalog.LowStockKey("p1")}))
	require.NoError(t, uc.DismissAlert(ctx, dto.DismissAlertRequest{Key: catalog.LowStockKey("p1")}))

	alerts, err = uc.Alerts(ctx, state.SeedBranchID)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, catalog.ExpiryKey("p1"), alerts[0].Key)

	err = uc.DismissAlert(ctx, dto.DismissAlertRequest{Key: "otra-cosa"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAlerts_SucursalSinStockDevuelveListaVacia(t *testing.T) {
	uc := inventory.NewInventoryUseCase(setup(t), importexport.Codec{})

	alerts, err := uc.Alerts(context.Background(), "branch-x")
	require.NoError(t, err)
	assert.NotNil(t, alerts)
	assert.Empty(t, alerts)
}

// ─── Importación / exportación ───────────────────────────────────────────────

func TestImport_OmiteSKUExistenteYRepetido(t *testing.T) {
	r := setup(t)
	uc := inventory.NewInventoryUseCase(r, importexport.Codec{})
	ctx := context.Background()

	csv := "sku,name,price,cost,stock\n" +
		"YG-1,Yogur,3,2,9\n" +
		"PN-1,Pan,1.5,0.8,20\n" +
		"PN-1,Pan repetido,1.5,0.8,20\n" +
		",Sin SKU,1,1,1\n"
	res, err := uc.Import(ctx, bodega, strings.NewReader(csv), ports.FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Imported)
	assert.Equal(t, 3, res.Skipped)

	st, err := r.Snapshot(ctx)
	require.NoError(t, err)
	p, ok := st.ProductBySKU("PN-1")
	require.True(t, ok)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, 20, st.GetStock(p.ID, state.SeedBranchID))
	assert.Equal(t, 3, st.GetStock("p1", state.SeedBranchID), "el stock existente no cambia")
}

func TestImport_ArchivoVacioOFormatoDesconocido(t *testing.T) {
	uc := inventory.NewInventoryUseCase(setup(t), importexport.Codec{})
	ctx := context.Background()

	_, err := uc.Import(ctx, bodega, strings.NewReader("[]"), ports.FormatJSON)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Import(ctx, bodega, strings.NewReader("x"), "xml")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExport_CSVConStockDeLaSucursal(t *testing.T) {
	uc := inventory.NewInventoryUseCase(setup(t), importexport.Codec{})
	var buf bytes.Buffer

	require.NoError(t, uc.Export(context.Background(), state.SeedBranchID, &buf, ports.FormatCSV))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, strings.Join(catalog.Columns, ","), lines[0])
	assert.True(t, strings.HasPrefix(lines[3], "p3,Sal,SL-1,2,1,0.5,"))
	assert.True(t, strings.HasSuffix(lines[3], ",50"))
}

// ─── Reposición ──────────────────────────────────────────────────────────────

func TestReplenishment_PrioridadPorMargen(t *testing.T) {
	r := setup(t)
	uc := inventory.NewReplenishmentUseCase(r)

	list, err := uc.GenerateReplenishmentList(context.Background(), state.SeedBranchID)
	require.NoError(t, err)
	require.Len(t, list, 2, "la sal está sobre su umbral")

	// Arroz: margen de catálogo 50 %, Yogur: 33.33 %.
	assert.Equal(t, "p2", list[0].ProductID)
	assert.Equal(t, 1, list[0].Priority)
	assert.Equal(t, 6, list[0].IdealStock)
	assert.Equal(t, 6, list[0].SuggestedOrderQty)
	assert.True(t, list[0].EstimatedOrderCost.Equal(d("30")))
	assert.True(t, list[0].GrossMarginPct.Equal(d("50")))

	assert.Equal(t, "p1", list[1].ProductID)
	assert.Equal(t, 8, list[1].IdealStock)
	assert.Equal(t, 5, list[1].SuggestedOrderQty)
	assert.True(t, list[1].GrossMarginPct.Equal(d("33.33")))
}
