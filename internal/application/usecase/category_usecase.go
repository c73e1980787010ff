package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/zenith-pos/internal/application/dto"
	"github.com/jhoicas/zenith-pos/internal/application/ports"
	"github.com/jhoicas/zenith-pos/internal/domain"
	"github.com/jhoicas/zenith-pos/internal/domain/catalog"
	"github.com/jhoicas/zenith-pos/internal/domain/entity"
)

// CategoryUseCase categorías de productos y de gastos.
type CategoryUseCase struct {
	runner ports.StateRunner
	now    func() time.Time
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(runner ports.StateRunner) *CategoryUseCase {
	return &CategoryUseCase{runner: runner, now: time.Now}
}

// List devuelve las categorías del tipo pedido.
func (uc *CategoryUseCase) List(ctx context.Context, kind catalog.CategoryKind) ([]entity.Category, error) {
	st, err := uc.runner.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	switch kind {
	case catalog.ProductCategories:
		return nonNil(st.ProductCategories), nil
	case catalog.ExpenseCategories:
		return nonNil(st.ExpenseCategories), nil
	}
	return nil, domain.ErrInvalidInput
}

// Save crea (id vacío) o renombra una categoría.
func (uc *CategoryUseCase) Save(ctx context.Context, actor ports.Actor, kind catalog.CategoryKind, id string, in dto.CategoryRequest) (*entity.Category, error) {
	cmd := &catalog.SaveCategoryCommand{
		Kind:     kind,
		Category: entity.Category{ID: id, Name: in.Name},
		Actor:    actor.Name,
		At:       uc.now(),
	}
	if _, err := uc.runner.Dispatch(ctx, cmd); err != nil {
		return nil, err
	}
	return &cmd.Category, nil
}

// Delete elimina una categoría sin referencias.
func (uc *CategoryUseCase) Delete(ctx context.Context, actor ports.Actor, kind catalog.CategoryKind, id string) error {
	_, err := uc.runner.Dispatch(ctx, &catalog.DeleteCategoryCommand{
		Kind: kind, CategoryID: id, Actor: actor.Name, At: uc.now(),
	})
	return err
}

// nonNil evita serializar null en los listados.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
