package cashdrawer_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/zenith-pos/internal/application/cashdrawer"
	"github.com/jhoicas/zenith-pos/internal/application/dto"
	"github.com/jhoicas/zenith-pos/internal/application/ports"
	"github.com/jhoicas/zenith-pos/internal/application/sales"
	"github.com/jhoicas/zenith-pos/internal/domain"
	"github.com/jhoicas/zenith-pos/internal/domain/entity"
	"github.com/jhoicas/zenith-pos/internal/domain/state"
	"github.com/jhoicas/zenith-pos/internal/infrastructure/memory"
	"github.com/jhoicas/zenith-pos/internal/infrastructure/store"
	"github.com/jhoicas/zenith-pos/pkg/logger"
)

var cajero = ports.Actor{UserID: state.SeedAdminUserID, Name: "Admin", BranchID: state.SeedBranchID}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

type fakeDocs struct {
	closing ports.ClosingData
}

func (f *fakeDocs) ReceiptPDF(context.Context, ports.ReceiptData) ([]byte, error) { return nil, nil }

func (f *fakeDocs) ClosingReportPDF(_ context.Context, data ports.ClosingData) ([]byte, error) {
	f.closing = data
	return []byte("%PDF-1.4"), nil
}

func setup(t *testing.T) (*cashdrawer.CashDrawerUseCase, *sales.SalesUseCase, *fakeDocs) {
	t.Helper()
	seed := state.Seed("Central", "hash")
	seed.Branches = append(seed.Branches, entity.Branch{ID: "branch-2", Name: "Norte"})
	seed.Products = []entity.Product{{ID: "p1", Name: "Café", SKU: "CF-1", Price: d("50"), Cost: d("20")}}
	seed.SetStock("p1", state.SeedBranchID, 100)
	r, err := store.Open(context.Background(), memory.NewRecordStore(), seed, logger.Nop())
	require.NoError(t, err)
	docs := &fakeDocs{}
	return cashdrawer.NewCashDrawerUseCase(r, docs), sales.NewSalesUseCase(r, nil), docs
}

// ─── Apertura y movimientos ──────────────────────────────────────────────────

func TestOpen_UnaCajaPorSucursal(t *testing.T) {
	uc, _, _ := setup(t)
	ctx := context.Background()

	s, err := uc.Open(ctx, cajero, dto.OpenSessionRequest{StartAmount: d("100")})
	require.NoError(t, err)
	assert.Equal(t, entity.SessionOpen, s.Status)
	assert.Equal(t, "Admin", s.User)

	_, err = uc.Open(ctx, cajero, dto.OpenSessionRequest{StartAmount: d("10")})
	assert.ErrorIs(t, err, domain.ErrSessionAlreadyOpen)

	otra := cajero
	otra.BranchID = "branch-2"
	_, err = uc.Open(ctx, otra, dto.OpenSessionRequest{StartAmount: d("10")})
	assert.NoError(t, err)
}

func TestCurrent_SinCajaAbierta(t *testing.T) {
	uc, _, _ := setup(t)

	cur, err := uc.Current(context.Background(), state.SeedBranchID)
	require.NoError(t, err)
	assert.False(t, cur.Open)
	assert.Nil(t, cur.Session)
}

func TestAddMovement_ActualizaEsperado(t *testing.T) {
	uc, _, _ := setup(t)
	ctx := context.Background()

	_, err := uc.AddMovement(ctx, cajero, dto.MovementRequest{Type: entity.MovementIn, Amount: d("5"), Reason: "cambio"})
	assert.ErrorIs(t, err, domain.ErrNoOpenSession)

	_, err = uc.Open(ctx, cajero, dto.OpenSessionRequest{StartAmount: d("100")})
	require.NoError(t, err)
	m, err := uc.AddMovement(ctx, cajero, dto.MovementRequest{Type: entity.MovementOut, Amount: d("30"), Reason: " pago de hielo "})
	require.NoError(t, err)
	assert.Equal(t, "pago de hielo", m.Reason)

	_, err = uc.AddMovement(ctx, cajero, dto.MovementRequest{Type: entity.MovementIn, Amount: d("10")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	cur, err := uc.Current(ctx, state.SeedBranchID)
	require.NoError(t, err)
	assert.True(t, cur.Open)
	assert.True(t, cur.Expected.Equal(d("70")))
}

// ─── Cierre y arqueo ─────────────────────────────────────────────────────────

func TestClose_ArqueoConVentasYMovimientos(t *testing.T) {
	uc, pos, _ := setup(t)
	ctx := context.Background()

	_, err := uc.Open(ctx, cajero, dto.OpenSessionRequest{StartAmount: d("100")})
	require.NoError(t, err)
	_, err = pos.Checkout(ctx, cajero, dto.CheckoutRequest{Items: []dto.CartItemRequest{{ProductID: "p1", Quantity: 2}}})
	require.NoError(t, err)
	_, err = pos.Checkout(ctx, cajero, dto.CheckoutRequest{
		Items: []dto.CartItemRequest{{ProductID: "p1", Quantity: 1}}, PaymentMethod: entity.SaleCard,
	})
	require.NoError(t, err)
	_, err = uc.AddMovement(ctx, cajero, dto.MovementRequest{Type: entity.MovementOut, Amount: d("20"), Reason: "proveedor"})
	require.NoError(t, err)

	rep, err := uc.Close(ctx, cajero, dto.CloseSessionRequest{CountedAmount: d("175")})
	require.NoError(t, err)
	assert.Equal(t, 2, rep.SalesCount)
	assert.True(t, rep.CashSales.Equal(d("100")))
	assert.True(t, rep.CardSales.Equal(d("50")))
	assert.True(t, rep.Expected.Equal(d("180")))
	assert.True(t, rep.Difference.Equal(d("-5")))
	assert.True(t, rep.Consistent)
	assert.Equal(t, entity.SessionClosed, rep.Session.Status)

	cur, err := uc.Current(ctx, state.SeedBranchID)
	require.NoError(t, err)
	assert.False(t, cur.Open)

	hist, err := uc.History(ctx, state.SeedBranchID)
	require.NoError(t, err)
	require.Len(t, hist, 1)
	assert.Equal(t, rep.Session.ID, hist[0].ID)
}

func TestClose_SinCajaAbierta(t *testing.T) {
	uc, _, _ := setup(t)

	_, err := uc.Close(context.Background(), cajero, dto.CloseSessionRequest{CountedAmount: d("0")})
	assert.ErrorIs(t, err, domain.ErrNoOpenSession)
}

func TestReport_OtraSucursalYDesconocida(t *testing.T) {
	uc, _, _ := setup(t)
	ctx := context.Background()

	s, err := uc.Open(ctx, cajero, dto.OpenSessionRequest{StartAmount: d("100")})
	require.NoError(t, err)

	rep, err := uc.Report(ctx, cajero, s.ID)
	require.NoError(t, err)
	assert.True(t, rep.Expected.Equal(d("100")))
	assert.NotNil(t, rep.Session.Movements)

	otra := cajero
	otra.BranchID = "branch-2"
	_, err = uc.Report(ctx, otra, s.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.Report(ctx, cajero, "CD-0")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReportPDF_ResuelveSucursal(t *testing.T) {
	uc, _, docs := setup(t)
	ctx := context.Background()

	_, err := uc.Open(ctx, cajero, dto.OpenSessionRequest{StartAmount: d("40")})
	require.NoError(t, err)
	rep, err := uc.Close(ctx, cajero, dto.CloseSessionRequest{CountedAmount: d("40")})
	require.NoError(t, err)

	pdf, name, err := uc.ReportPDF(ctx, cajero, rep.Session.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, "arqueo-"+rep.Session.ID+".pdf", name)
	assert.Equal(t, "Central", docs.closing.Branch.Name)
	assert.True(t, docs.closing.Report.Difference.IsZero())
}
