package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/zenith-pos/internal/application/dto"
	"github.com/jhoicas/zenith-pos/internal/application/ports"
	"github.com/jhoicas/zenith-pos/internal/domain"
	"github.com/jhoicas/zenith-pos/internal/domain/entity"
	"github.com/jhoicas/zenith-pos/internal/domain/expenses"
)

// ExpenseUseCase gastos operativos de la sucursal activa.
type ExpenseUseCase struct {
	runner ports.StateRunner
	now    func() time.Time
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(runner ports.StateRunner) *ExpenseUseCase {
	return &ExpenseUseCase{runner: runner, now: time.Now}
}

// List devuelve los gastos de la sucursal en el rango, del más reciente al más antiguo.
func (uc *ExpenseUseCase) List(ctx context.Context, branchID string, r dto.DateRange) ([]entity.Expense, error) {
	st, err := uc.runner.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return nonNil(expenses.ForBranch(st.Expenses, branchID, r.From, r.To)), nil
}

// Save crea (id vacío) o actualiza un gasto de la sucursal del actor.
func (uc *ExpenseUseCase) Save(ctx context.Context, actor ports.Actor, id string, in dto.ExpenseRequest) (*entity.Expense, error) {
	if id != "" {
		if err := uc.ownedBy(ctx, id, actor.BranchID); err != nil {
			return nil, err
		}
	}
	method := in.PaymentMethod
	if method == "" {
		method = entity.PaymentCash
	}
	cmd := &expenses.SaveCommand{
		Expense: entity.Expense{
			ID:              id,
			BranchID:        actor.BranchID,
			Description:     in.Description,
			Amount:          in.Amount,
			CategoryID:      in.CategoryID,
			Date:            in.Date,
			IsRecurring:     in.IsRecurring,
			PaymentMethod:   method,
			ReceiptImageURL: in.ReceiptImageURL,
		},
		Actor: actor.Name,
		At:    uc.now(),
	}
	if _, err := uc.runner.Dispatch(ctx, cmd); err != nil {
		return nil, err
	}
	return &cmd.Expense, nil
}

// Delete elimina un gasto de la sucursal del actor.
func (uc *ExpenseUseCase) Delete(ctx context.Context, actor ports.Actor, id string) error {
	if err := uc.ownedBy(ctx, id, actor.BranchID); err != nil {
		return err
	}
	_, err := uc.runner.Dispatch(ctx, &expenses.DeleteCommand{ExpenseID: id, Actor: actor.Name, At: uc.now()})
	return err
}

// ownedBy exige que el gasto pertenezca a la sucursal; los de otras sucursales no se ven.
func (uc *ExpenseUseCase) ownedBy(ctx context.Context, id, branchID string) error {
	st, err := uc.runner.Snapshot(ctx)
	if err != nil {
		return err
	}
	i := st.ExpenseIndex(id)
	if i < 0 || st.Expenses[i].BranchID != branchID {
		return fmt.Errorf("gasto %q: %w", id, domain.ErrNotFound)
	}
	return nil
}
