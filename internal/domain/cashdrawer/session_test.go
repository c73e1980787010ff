package cashdrawer_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/zenith-pos/internal/domain"
	"github.com/jhoicas/zenith-pos/internal/domain/cashdrawer"
	"github.com/jhoicas/zenith-pos/internal/domain/entity"
	"github.com/jhoicas/zenith-pos/internal/domain/sales"
	"github.com/jhoicas/zenith-pos/internal/domain/state"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

var t0 = time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)

func fixture() *state.State {
	st := state.Seed("Central", "")
	st.Settings.PricesIncludeTax = true
	st.Products = []entity.Product{{ID: "p1", Name: "Cable", SKU: "C-1", Price: d("20"), Cost: d("8")}}
	st.SetStock("p1", state.SeedBranchID, 100)
	st.Customers = append(st.Customers, entity.Customer{
		ID: "c2", Name: "Ana", CreditAccount: entity.CreditAccount{CreditLimit: d("1000")},
	})
	st.Branches = append(st.Branches, entity.Branch{ID: "branch-2", Name: "Norte"})
	return st
}

func must(t *testing.T, st *state.State, cmd state.Command) *state.State {
	t.Helper()
	next, err := state.Apply(st, cmd)
	require.NoError(t, err, cmd.Name())
	return next
}

func sell(method entity.SalePaymentMethod, branch string, qty int, at time.Time) *sales.CheckoutCommand {
	return &sales.CheckoutCommand{
		BranchID: branch, CustomerID: "c2", PaymentMethod: method, At: at, Actor: "Caja",
		Items: []sales.CartItem{{ProductID: "p1", Quantity: qty}},
	}
}

func TestOpen_MontoNegativoRechazado(t *testing.T) {
	_, err := state.Apply(fixture(), &cashdrawer.OpenCommand{BranchID: state.SeedBranchID, StartAmount: d("-1"), At: t0})

	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestOpen_UnaSolaCajaPorSucursal(t *testing.T) {
	st := must(t, fixture(), &cashdrawer.OpenCommand{BranchID: state.SeedBranchID, StartAmount: d("100"), At: t0})

	_, err := state.Apply(st, &cashdrawer.OpenCommand{BranchID: state.SeedBranchID, StartAmount: d("5"), At: t0})
	assert.ErrorIs(t, err, domain.ErrSessionAlreadyOpen)

	st = must(t, st, &cashdrawer.OpenCommand{BranchID: "branch-2", StartAmount: d("5"), At: t0})
	assert.Len(t, st.ActiveSessions, 2, "otra sucursal puede abrir su propia caja")
	assert.Equal(t, "CD-1777622400000", st.ActiveSessions[0].ID)
	assert.Equal(t, "CD-1777622400001", st.ActiveSessions[1].ID, "mismo instante, id distinto")

	second, ok := st.SessionByID(st.ActiveSessions[1].ID)
	require.True(t, ok)
	assert.Equal(t, "branch-2", second.BranchID)
}

func TestMovement_Validaciones(t *testing.T) {
	st := fixture()
	mv := &cashdrawer.AddMovementCommand{BranchID: state.SeedBranchID, Type: entity.MovementIn, Amount: d("10"), Reason: "cambio", At: t0}
	_, err := state.Apply(st, mv)
	assert.ErrorIs(t, err, domain.ErrNoOpenSession)

	st = must(t, st, &cashdrawer.OpenCommand{BranchID: state.SeedBranchID, StartAmount: d("100"), At: t0})

	zero := &cashdrawer.AddMovementCommand{BranchID: state.SeedBranchID, Type: entity.MovementOut, Amount: decimal.Zero, Reason: "x", At: t0}
	_, err = state.Apply(st, zero)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	noReason := &cashdrawer.AddMovementCommand{BranchID: state.SeedBranchID, Type: entity.MovementOut, Amount: d("1"), Reason: "  ", At: t0}
	_, err = state.Apply(st, noReason)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMovement_MismoInstanteIDsDistintos(t *testing.T) {
	st := must(t, fixture(), &cashdrawer.OpenCommand{BranchID: state.SeedBranchID, StartAmount: d("100"), At: t0})
	for _, reason := range []string{"cambio", "proveedor"} {
		st = must(t, st, &cashdrawer.AddMovementCommand{
			BranchID: state.SeedBranchID, Type: entity.MovementOut, Amount: d("5"), Reason: reason, At: t0,
		})
	}

	mv := st.ActiveSessions[0].Movements
	require.Len(t, mv, 2)
	assert.Equal(t, "M-1777622400000", mv[0].ID)
	assert.Equal(t, "M-1777622400001", mv[1].ID)
}

func TestClose_SinMovimientosYContadoExactoDiferenciaCero(t *testing.T) {
	st := must(t, fixture(), &cashdrawer.OpenCommand{BranchID: state.SeedBranchID, StartAmount: d("100"), At: t0})
	st = must(t, st, sell(entity.SaleCash, state.SeedBranchID, 2, t0.Add(time.Hour)))

	closeCmd := &cashdrawer.CloseCommand{BranchID: state.SeedBranchID, CountedAmount: d("140"), At: t0.Add(8 * time.Hour)}
	st = must(t, st, closeCmd)

	assert.True(t, closeCmd.Session.Difference.IsZero(), "diferencia %s", closeCmd.Session.Difference)
	assert.Equal(t, entity.SessionClosed, closeCmd.Session.Status)
	assert.Empty(t, st.ActiveSessions)
	require.Len(t, st.SessionHistory, 1)
	assert.Equal(t, closeCmd.Session.ID, st.SessionHistory[0].ID)
}

func TestClose_DiferenciaContraEsperado(t *testing.T) {
	st := must(t, fixture(), &cashdrawer.OpenCommand{BranchID: state.SeedBranchID, StartAmount: d("100"), At: t0})
	st = must(t, st, sell(entity.SaleCash, state.SeedBranchID, 1, t0.Add(time.Minute)))   // +20 efectivo
	st = must(t, st, sell(entity.SaleCard, state.SeedBranchID, 3, t0.Add(2*time.Minute))) // tarjeta, no suma
	st = must(t, st, &cashdrawer.AddMovementCommand{BranchID: state.SeedBranchID, Type: entity.MovementIn, Amount: d("50"), Reason: "fondo", At: t0.Add(3 * time.Minute)})
	st = must(t, st, &cashdrawer.AddMovementCommand{BranchID: state.SeedBranchID, Type: entity.MovementOut, Amount: d("30"), Reason: "proveedor", At: t0.Add(4 * time.Minute)})

	closeCmd := &cashdrawer.CloseCommand{BranchID: state.SeedBranchID, CountedAmount: d("135"), At: t0.Add(5 * time.Minute)}
	must(t, st, closeCmd)

	s := closeCmd.Session
	expected := s.StartAmount.Add(s.CashSales).Add(d("50")).Sub(d("30"))
	assert.True(t, s.Expected.Equal(d("140")))
	assert.True(t, s.Difference.Equal(s.EndAmount.Sub(expected)))
	assert.True(t, s.Difference.Equal(d("-5")))
}

func TestClosingReport_CoincideConAcumulado(t *testing.T) {
	st := must(t, fixture(), &cashdrawer.OpenCommand{BranchID: state.SeedBranchID, StartAmount: d("10"), At: t0})
	st = must(t, st, sell(entity.SaleCash, state.SeedBranchID, 1, t0.Add(time.Minute)))
	st = must(t, st, sell(entity.SaleCash, state.SeedBranchID, 2, t0.Add(2*time.Minute)))
	st = must(t, st, sell(entity.SaleCredit, state.SeedBranchID, 1, t0.Add(3*time.Minute)))
	st = must(t, st, sell(entity.SaleCash, "branch-2", 5, t0.Add(4*time.Minute))) // otra sucursal
	closeCmd := &cashdrawer.CloseCommand{BranchID: state.SeedBranchID, CountedAmount: d("70"), At: t0.Add(time.Hour)}
	st = must(t, st, closeCmd)
	st = must(t, st, sell(entity.SaleCash, state.SeedBranchID, 1, t0.Add(2*time.Hour))) // después del cierre

	r := cashdrawer.BuildClosingReport(st.SessionHistory[0], st.Sales, t0.Add(3*time.Hour))

	assert.True(t, r.Consistent(), "recalculado %s, acumulado %s", r.CashSales, r.Session.CashSales)
	assert.True(t, r.CashSales.Equal(d("60")))
	assert.True(t, r.CreditSales.Equal(d("20")))
	assert.Equal(t, 3, r.SalesCount)
	assert.True(t, r.Difference.IsZero())
}
