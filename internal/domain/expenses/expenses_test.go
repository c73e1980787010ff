package expenses_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/zenith-pos/internal/domain"
	"github.com/jhoicas/zenith-pos/internal/domain/entity"
	"github.com/jhoicas/zenith-pos/internal/domain/expenses"
	"github.com/jhoicas/zenith-pos/internal/domain/state"
)

var t0 = time.Date(2026, 5, 3, 12, 0, 0, 0, time.UTC)

func gasto(amount string) entity.Expense {
	return entity.Expense{
		BranchID: state.SeedBranchID, Description: "Renta mayo", CategoryID: "ec1",
		Amount: decimal.RequireFromString(amount), PaymentMethod: entity.PaymentTransfer,
	}
}

func TestSave_RegistraConFechaYAuditoria(t *testing.T) {
	cmd := &expenses.SaveCommand{Expense: gasto("500"), Actor: "Admin", At: t0}
	st, err := state.Apply(state.Seed("Central", ""), cmd)
	require.NoError(t, err)

	require.Len(t, st.Expenses, 1)
	assert.Equal(t, t0, st.Expenses[0].Date)
	assert.Equal(t, entity.AuditExpense, st.AuditLog[0].Details.Type)
	assert.Equal(t, cmd.Expense.ID, st.AuditLog[0].Details.ID)
}

func TestSave_Validaciones(t *testing.T) {
	st := state.Seed("Central", "")

	_, err := state.Apply(st, &expenses.SaveCommand{Expense: gasto("0")})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	e := gasto("10")
	e.CategoryID = "nope"
	_, err = state.Apply(st, &expenses.SaveCommand{Expense: e})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	e = gasto("10")
	e.PaymentMethod = "cheque"
	_, err = state.Apply(st, &expenses.SaveCommand{Expense: e})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDelete_Y_ForBranch(t *testing.T) {
	cmd := &expenses.SaveCommand{Expense: gasto("500"), At: t0}
	st, err := state.Apply(state.Seed("Central", ""), cmd)
	require.NoError(t, err)

	assert.Len(t, expenses.ForBranch(st.Expenses, state.SeedBranchID, t0.AddDate(0, 0, -1), t0), 1)
	assert.Empty(t, expenses.ForBranch(st.Expenses, state.SeedBranchID, t0.Add(time.Hour), time.Time{}))
	assert.Empty(t, expenses.ForBranch(st.Expenses, "branch-2", time.Time{}, time.Time{}))

	st, err = state.Apply(st, &expenses.DeleteCommand{ExpenseID: cmd.Expense.ID})
	require.NoError(t, err)
	assert.Empty(t, st.Expenses)
}
