package purchasing_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/zenith-pos/internal/application/dto"
	"github.com/jhoicas/zenith-pos/internal/application/ports"
	"github.com/jhoicas/zenith-pos/internal/application/purchasing"
	"github.com/jhoicas/zenith-pos/internal/domain"
	"github.com/jhoicas/zenith-pos/internal/domain/entity"
	"github.com/jhoicas/zenith-pos/internal/domain/state"
	"github.com/jhoicas/zenith-pos/internal/infrastructure/memory"
	"github.com/jhoicas/zenith-pos/internal/infrastructure/store"
	"github.com/jhoicas/zenith-pos/pkg/logger"
)

var bodega = ports.Actor{UserID: state.SeedAdminUserID, Name: "Admin", BranchID: state.SeedBranchID}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func setup(t *testing.T) (*purchasing.PurchaseUseCase, *store.Runner) {
	t.Helper()
	seed := state.Seed("Central", "hash")
	seed.Products = []entity.Product{{ID: "p1", Name: "Leche", SKU: "L-1", Price: d("2"), Cost: d("1")}}
	seed.SetStock("p1", state.SeedBranchID, 10)
	seed.Suppliers = []entity.Supplier{{ID: "s1", Name: "Lácteos del Valle",
		CreditAccount: entity.CreditAccount{CreditLimit: d("50")}}}
	r, err := store.Open(context.Background(), memory.NewRecordStore(), seed, logger.Nop())
	require.NoError(t, err)
	return purchasing.NewPurchaseUseCase(r), r
}

func TestRegister_SumaStockYSaldo(t *testing.T) {
	uc, r := setup(t)
	ctx := context.Background()

	p, err := uc.Register(ctx, bodega, dto.PurchaseRequest{
		SupplierID: "s1", Items: []dto.PurchaseItemRequest{{ProductID: "p1", Quantity: 10, Cost: d("2")}},
	})
	require.NoError(t, err)
	assert.True(t, p.Total.Equal(d("20")))
	assert.Equal(t, "Lácteos del Valle", p.SupplierName)

	st, err := r.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, 20, st.GetStock("p1", state.SeedBranchID))
	assert.True(t, st.Suppliers[0].CurrentBalance.Equal(d("20")))
	assert.True(t, st.Products[0].Cost.Equal(d("1")), "la compra no cambia el costo por defecto")
}

func TestRegister_LimiteDelProveedorNoSeAplicaPorDefecto(t *testing.T) {
	uc, _ := setup(t)

	_, err := uc.Register(context.Background(), bodega, dto.PurchaseRequest{
		SupplierID: "s1", Items: []dto.PurchaseItemRequest{{ProductID: "p1", Quantity: 100, Cost: d("1")}},
	})
	assert.NoError(t, err)
}

func TestRegister_Errores(t *testing.T) {
	uc, _ := setup(t)
	ctx := context.Background()

	_, err := uc.Register(ctx, bodega, dto.PurchaseRequest{SupplierID: "s1"})
	assert.ErrorIs(t, err, domain.ErrEmptyCart)

	_, err = uc.Register(ctx, bodega, dto.PurchaseRequest{
		SupplierID: "s9", Items: []dto.PurchaseItemRequest{{ProductID: "p1", Quantity: 1, Cost: d("1")}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListYGet(t *testing.T) {
	uc, _ := setup(t)
	ctx := context.Background()
	p, err := uc.Register(ctx, bodega, dto.PurchaseRequest{
		SupplierID: "s1", Items: []dto.PurchaseItemRequest{{ProductID: "p1", Quantity: 1, Cost: d("1")}},
	})
	require.NoError(t, err)

	list, err := uc.List(ctx, state.SeedBranchID, dto.PurchaseFilter{SupplierID: "s1"})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	list, err = uc.List(ctx, "branch-2", dto.PurchaseFilter{})
	require.NoError(t, err)
	assert.Empty(t, list)

	got, err := uc.Get(ctx, bodega, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)

	otra := bodega
	otra.BranchID = "branch-2"
	_, err = uc.Get(ctx, otra, p.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
