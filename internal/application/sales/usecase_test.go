package sales_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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
	receipt ports.ReceiptData
}

func (f *fakeDocs) ReceiptPDF(_ context.Context, data ports.ReceiptData) ([]byte, error) {
	f.receipt = data
	return []byte("%PDF-1.4"), nil
}

func (f *fakeDocs) ClosingReportPDF(context.Context, ports.ClosingData) ([]byte, error) {
	return nil, nil
}

func setup(t *testing.T) (*sales.SalesUseCase, *fakeDocs, *store.Runner) {
	t.Helper()
	seed := state.Seed("Central", "hash")
	seed.Branches = append(seed.Branches, entity.Branch{ID: "branch-2", Name: "Norte"})
	seed.Products = []entity.Product{
		{ID: "p1", Name: "Laptop Pro", SKU: "LP-1", Price: d("1000"), Cost: d("700")},
		{ID: "p2", Name: "Mouse", SKU: "MS-1", Price: d("25.50"), Cost: d("10")},
	}
	seed.SetStock("p1", state.SeedBranchID, 5)
	seed.SetStock("p2", state.SeedBranchID, 40)
	seed.Customers = append(seed.Customers, entity.Customer{
		ID: "c2", Name: "Juan Pérez", CreditAccount: entity.CreditAccount{CreditLimit: d("500")},
	})
	r, err := store.Open(context.Background(), memory.NewRecordStore(), seed, logger.Nop())
	require.NoError(t, err)
	docs := &fakeDocs{}
	return sales.NewSalesUseCase(r, docs), docs, r
}

// ─── Checkout ────────────────────────────────────────────────────────────────

func TestCheckout_EfectivoPorDefecto(t *testing.T) {
	uc, _, r := setup(t)
	ctx := context.Background()

	sale, err := uc.Checkout(ctx, cajero, dto.CheckoutRequest{
		Items:    []dto.CartItemRequest{{ProductID: "p1", Quantity: 1}, {ProductID: "p2", Quantity: 2}},
		Comments: "  entrega en tienda ",
	})
	require.NoError(t, err)
	assert.Equal(t, "FAC-00001", sale.ID)
	assert.Equal(t, entity.SaleCash, sale.PaymentMethod)
	assert.Equal(t, "entrega en tienda", sale.Comments)
	assert.True(t, sale.Total.Equal(d("1051")))
	assert.Equal(t, entity.WalkInCustomerID, sale.CustomerID)

	st, err := r.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, st.GetStock("p1", state.SeedBranchID))
	assert.Equal(t, 38, st.GetStock("p2", state.SeedBranchID))
}

func TestCheckout_CreditoExcedeLimite(t *testing.T) {
	uc, _, r := setup(t)
	ctx := context.Background()

	_, err := uc.Checkout(ctx, cajero, dto.CheckoutRequest{
		CustomerID: "c2", PaymentMethod: entity.SaleCredit,
		Items: []dto.CartItemRequest{{ProductID: "p1", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrCreditLimitExceeded)

	st, err := r.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, st.GetStock("p1", state.SeedBranchID))
	assert.Equal(t, 1, st.Settings.CorrelativeNextNumber)
}

func TestCheckout_CarritoVacio(t *testing.T) {
	uc, _, _ := setup(t)

	_, err := uc.Checkout(context.Background(), cajero, dto.CheckoutRequest{})
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

// ─── Historial ───────────────────────────────────────────────────────────────

func TestList_FiltrosYPaginacion(t *testing.T) {
	uc, _, _ := setup(t)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := uc.Checkout(ctx, cajero, dto.CheckoutRequest{Items: []dto.CartItemRequest{{ProductID: "p2", Quantity: 1}}})
		require.NoError(t, err)
	}
	_, err := uc.Checkout(ctx, cajero, dto.CheckoutRequest{
		CustomerID: "c2", PaymentMethod: entity.SaleCard,
		Items: []dto.CartItemRequest{{ProductID: "p2", Quantity: 1}},
	})
	require.NoError(t, err)

	all, err := uc.List(ctx, state.SeedBranchID, dto.SaleFilter{Page: dto.PageRequest{Limit: 2}})
	require.NoError(t, err)
	assert.Equal(t, 4, all.Page.Total)
	require.Len(t, all.Sales, 2)
	assert.Equal(t, "FAC-00004", all.Sales[0].ID, "más reciente primero")

	byName, err := uc.List(ctx, state.SeedBranchID, dto.SaleFilter{Search: "pérez"})
	require.NoError(t, err)
	assert.Equal(t, 1, byName.Page.Total)

	cards, err := uc.List(ctx, state.SeedBranchID, dto.SaleFilter{PaymentMethod: entity.SaleCard})
	require.NoError(t, err)
	assert.Equal(t, 1, cards.Page.Total)

	other, err := uc.List(ctx, "branch-2", dto.SaleFilter{})
	require.NoError(t, err)
	assert.Empty(t, other.Sales)
}

func TestGet_OtraSucursal(t *testing.T) {
	uc, _, _ := setup(t)
	ctx := context.Background()
	sale, err := uc.Checkout(ctx, cajero, dto.CheckoutRequest{Items: []dto.CartItemRequest{{ProductID: "p2", Quantity: 1}}})
	require.NoError(t, err)

	norte := cajero
	norte.BranchID = "branch-2"
	_, err = uc.Get(ctx, norte, sale.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.Get(ctx, cajero, "FAC-99999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ─── Comprobante ─────────────────────────────────────────────────────────────

func TestReceiptPDF_ResuelveDatos(t *testing.T) {
	uc, docs, _ := setup(t)
	ctx := context.Background()
	sale, err := uc.Checkout(ctx, cajero, dto.CheckoutRequest{
		CustomerID: "c2", Items: []dto.CartItemRequest{{ProductID: "p2", Quantity: 1}},
	})
	require.NoError(t, err)

	pdf, name, err := uc.ReceiptPDF(ctx, cajero, sale.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, "comprobante-FAC-00001.pdf", name)
	assert.Equal(t, "Juan Pérez", docs.receipt.Customer.Name)
	assert.Equal(t, "Central", docs.receipt.Branch.Name)
	assert.Equal(t, "MS-1", docs.receipt.ProductSKUs["p2"])
}

func TestReceiptPDF_SinGenerador(t *testing.T) {
	_, _, r := setup(t)
	uc := sales.NewSalesUseCase(r, nil)

	_, _, err := uc.ReceiptPDF(context.Background(), cajero, "FAC-00001")
	assert.ErrorIs(t, err, domain.ErrConflict)
}
