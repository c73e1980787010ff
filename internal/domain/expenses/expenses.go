// Package expenses registra los gastos operativos por sucursal.
package expenses

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/zenith-pos/internal/domain"
	"github.com/jhoicas/zenith-pos/internal/domain/entity"
	"github.com/jhoicas/zenith-pos/internal/domain/state"
)

func validate(st *state.State, e entity.Expense) error {
	if strings.TrimSpace(e.Description) == "" {
		return fmt.Errorf("descripción requerida: %w", domain.ErrInvalidInput)
	}
	if !e.Amount.IsPositive() {
		return fmt.Errorf("monto %s: %w", e.Amount, domain.ErrInvalidAmount)
	}
	if !e.PaymentMethod.Valid() {
		return fmt.Errorf("método de pago %q: %w", e.PaymentMethod, domain.ErrInvalidInput)
	}
	if st.BranchIndex(e.BranchID) < 0 {
		return fmt.Errorf("sucursal %q: %w", e.BranchID, domain.ErrNotFound)
	}
	if state.CategoryIndex(st.ExpenseCategories, e.CategoryID) < 0 {
		return fmt.Errorf("categoría de gasto %q: %w", e.CategoryID, domain.ErrNotFound)
	}
	return nil
}

// SaveCommand crea (ID vacío) o actualiza un gasto. Date cero toma At.
type SaveCommand struct {
	Expense entity.Expense
	Actor   string
	At      time.Time
}

func (c *SaveCommand) Name() string { return "expenses.save" }

func (c *SaveCommand) Apply(st *state.State) error {
	in := c.Expense
	in.Description = strings.TrimSpace(in.Description)
	if in.Date.IsZero() {
		in.Date = c.At
	}
	if err := validate(st, in); err != nil {
		return err
	}
	action := "Gasto actualizado: "
	if in.ID == "" {
		in.ID = uuid.NewString()
		st.Expenses = append([]entity.Expense{in}, st.Expenses...)
		action = "Gasto registrado: "
	} else {
		i := st.ExpenseIndex(in.ID)
		if i < 0 {
			return fmt.Errorf("gasto %q: %w", in.ID, domain.ErrNotFound)
		}
		st.Expenses[i] = in
	}
	st.Log(c.Actor, action+in.Description, c.At, state.Ref(entity.AuditExpense, in.ID))
	c.Expense = in
	return nil
}

// DeleteCommand elimina un gasto.
type DeleteCommand struct {
	ExpenseID string
	Actor     string
	At        time.Time
}

func (c *DeleteCommand) Name() string { return "expenses.delete" }

func (c *DeleteCommand) Apply(st *state.State) error {
	i := st.ExpenseIndex(c.ExpenseID)
	if i < 0 {
		return fmt.Errorf("gasto %q: %w", c.ExpenseID, domain.ErrNotFound)
	}
	desc := st.Expenses[i].Description
	st.Expenses = append(st.Expenses[:i:i], st.Expenses[i+1:]...)
	st.Log(c.Actor, "Gasto eliminado: "+desc, c.At, nil)
	return nil
}

// ForBranch filtra los gastos de la sucursal dentro de [from, to]. Límites cero no filtran.
func ForBranch(list []entity.Expense, branchID string, from, to time.Time) []entity.Expense {
	var out []entity.Expense
	for _, e := range list {
		if e.BranchID != branchID {
			continue
		}
		if !from.IsZero() && e.Date.Before(from) {
			continue
		}
		if !to.IsZero() && e.Date.After(to) {
			continue
		}
		out = append(out, e)
	}
	return out
}
