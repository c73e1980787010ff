package credit_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/zenith-pos/internal/domain"
	"github.com/jhoicas/zenith-pos/internal/domain/credit"
	"github.com/jhoicas/zenith-pos/internal/domain/entity"
	"github.com/jhoicas/zenith-pos/internal/domain/state"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func fixture() *state.State {
	st := state.Seed("Central", "")
	st.Customers = append(st.Customers, entity.Customer{
		ID: "c2", Name: "Juan Pérez",
		CreditAccount: entity.CreditAccount{
			CreditLimit: d("500"), CurrentBalance: d("75.50"),
			PaymentHistory: []entity.Payment{{ID: "old", Amount: d("10"), PaymentMethod: entity.PaymentCash}},
		},
	})
	st.Suppliers = []entity.Supplier{{
		ID: "s1", Name: "Electro Proveedores S.A.",
		CreditAccount: entity.CreditAccount{CreditLimit: d("10000"), CurrentBalance: d("2500")},
	}}
	return st
}

func pay(party credit.Party, id, amount string) *credit.RecordPaymentCommand {
	return &credit.RecordPaymentCommand{
		Party: party, ID: id, Amount: d(amount), Method: entity.PaymentTransfer,
		Actor: "Admin", At: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
	}
}

func TestRecordPayment_DescuentaSaldoYQuedaPrimero(t *testing.T) {
	st := fixture()
	cmd := pay(credit.PartyCustomer, "c2", "25.50")

	next, err := state.Apply(st, cmd)
	require.NoError(t, err)

	c := next.Customers[next.CustomerIndex("c2")]
	assert.True(t, c.CurrentBalance.Equal(d("50")), "nuevo saldo = saldo − monto")
	require.Len(t, c.PaymentHistory, 2)
	assert.Equal(t, cmd.Payment.ID, c.PaymentHistory[0].ID, "el pago nuevo va en la posición 0")
	assert.Equal(t, "old", c.PaymentHistory[1].ID)
	assert.Equal(t, entity.AuditCustomer, next.AuditLog[0].Details.Type)
}

func TestRecordPayment_MontoMayorAlSaldoRechazado(t *testing.T) {
	st := fixture()

	_, err := state.Apply(st, pay(credit.PartyCustomer, "c2", "75.51"))

	assert.ErrorIs(t, err, domain.ErrPaymentExceedsBalance)
	c := st.Customers[st.CustomerIndex("c2")]
	assert.True(t, c.CurrentBalance.Equal(d("75.50")))
	assert.Len(t, c.PaymentHistory, 1)
	assert.Empty(t, st.AuditLog)
}

func TestRecordPayment_MontoCeroONegativo(t *testing.T) {
	for _, amount := range []string{"0", "-1"} {
		_, err := state.Apply(fixture(), pay(credit.PartyCustomer, "c2", amount))
		assert.ErrorIs(t, err, domain.ErrInvalidAmount, amount)
	}
}

func TestRecordPayment_Proveedor(t *testing.T) {
	st := fixture()

	next, err := state.Apply(st, pay(credit.PartySupplier, "s1", "2500"))
	require.NoError(t, err)

	assert.True(t, next.Suppliers[0].CurrentBalance.IsZero())
	assert.Len(t, next.Suppliers[0].PaymentHistory, 1)
	assert.Empty(t, st.Suppliers[0].PaymentHistory)
}

func TestSaveCustomer_ConservaHistorial(t *testing.T) {
	st := fixture()
	cmd := &credit.SaveCustomerCommand{Customer: entity.Customer{
		ID: "c2", Name: "Juan P.", CreditAccount: entity.CreditAccount{CreditLimit: d("800"), CurrentBalance: d("75.50")},
	}}

	next, err := state.Apply(st, cmd)
	require.NoError(t, err)

	c := next.Customers[next.CustomerIndex("c2")]
	assert.Equal(t, "Juan P.", c.Name)
	assert.Len(t, c.PaymentHistory, 1)
}

func TestSaveCustomer_EdicionNoCambiaSaldo(t *testing.T) {
	st := fixture()
	cmd := &credit.SaveCustomerCommand{Customer: entity.Customer{
		ID: "c2", Name: "Juan P.", CreditAccount: entity.CreditAccount{CreditLimit: d("900"), CurrentBalance: d("0")},
	}}

	next, err := state.Apply(st, cmd)
	require.NoError(t, err)

	c := next.Customers[next.CustomerIndex("c2")]
	assert.True(t, c.CreditLimit.Equal(d("900")))
	assert.True(t, c.CurrentBalance.Equal(d("75.50")))
}

func TestDeleteCustomer_ClienteGeneralProtegido(t *testing.T) {
	_, err := state.Apply(fixture(), &credit.DeleteCustomerCommand{ID: entity.WalkInCustomerID})

	assert.ErrorIs(t, err, domain.ErrConflict)
}
