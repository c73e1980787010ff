package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/zenith-pos/internal/application/dto"
	"github.com/jhoicas/zenith-pos/internal/application/ports"
	"github.com/jhoicas/zenith-pos/internal/domain"
	"github.com/jhoicas/zenith-pos/internal/domain/catalog"
	"github.com/jhoicas/zenith-pos/internal/domain/entity"
	"github.com/jhoicas/zenith-pos/internal/domain/state"
)

// ProductUseCase casos de uso del catálogo. El stock se informa siempre para la
// sucursal activa del actor.
type ProductUseCase struct {
	runner ports.StateRunner
	now    func() time.Time
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(runner ports.StateRunner) *ProductUseCase {
	return &ProductUseCase{runner: runner, now: time.Now}
}

// List devuelve los productos cuyo nombre o SKU contienen search (sin distinguir
// mayúsculas), con su stock en la sucursal.
func (uc *ProductUseCase) List(ctx context.Context, branchID, search string) ([]dto.ProductResponse, error) {
	st, err := uc.runner.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	search = strings.ToLower(strings.TrimSpace(search))
	out := make([]dto.ProductResponse, 0, len(st.Products))
	for _, p := range st.Products {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.SKU), search) {
			continue
		}
		out = append(out, toProductResponse(st, p, branchID))
	}
	return out, nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, branchID, id string) (*dto.ProductResponse, error) {
	st, err := uc.runner.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	i := st.ProductIndex(id)
	if i < 0 {
		return nil, fmt.Errorf("producto %q: %w", id, domain.ErrNotFound)
	}
	out := toProductResponse(st, st.Products[i], branchID)
	return &out, nil
}

// FindBySKU resuelve el código leído por el escáner.
func (uc *ProductUseCase) FindBySKU(ctx context.Context, branchID, sku string) (*dto.ProductResponse, error) {
	st, err := uc.runner.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	p, ok := st.ProductBySKU(sku)
	if !ok {
		return nil, fmt.Errorf("sku %q: %w", sku, domain.ErrNotFound)
	}
	out := toProductResponse(st, p, branchID)
	return &out, nil
}

// Create crea un producto. InitialStock fija la existencia en la sucursal del actor.
func (uc *ProductUseCase) Create(ctx context.Context, actor ports.Actor, in dto.SaveProductRequest) (*dto.ProductResponse, error) {
	return uc.save(ctx, actor, "", in)
}

// Update edita un producto. El SKU no se valida como único.
func (uc *ProductUseCase) Update(ctx context.Context, actor ports.Actor, id string, in dto.SaveProductRequest) (*dto.ProductResponse, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.save(ctx, actor, id, in)
}

func (uc *ProductUseCase) save(ctx context.Context, actor ports.Actor, id string, in dto.SaveProductRequest) (*dto.ProductResponse, error) {
	cmd := &catalog.SaveProductCommand{
		Product: entity.Product{
			ID:            id,
			Name:          in.Name,
			SKU:           in.SKU,
			CategoryID:    in.CategoryID,
			Price:         in.Price,
			Cost:          in.Cost,
			LowStockAlert: in.LowStockAlert,
			ExpiryDate:    in.ExpiryDate,
			ImageURL:      in.ImageURL,
		},
		BranchID:     actor.BranchID,
		InitialStock: in.InitialStock,
		Actor:        actor.Name,
		At:           uc.now(),
	}
	st, err := uc.runner.Dispatch(ctx, cmd)
	if err != nil {
		return nil, err
	}
	out := toProductResponse(st, cmd.Product, actor.BranchID)
	return &out, nil
}

// Delete elimina el producto y sus existencias en todas las sucursales.
func (uc *ProductUseCase) Delete(ctx context.Context, actor ports.Actor, id string) error {
	_, err := uc.runner.Dispatch(ctx, &catalog.DeleteProductCommand{ProductID: id, Actor: actor.Name, At: uc.now()})
	return err
}

// SetStock ajusta manualmente la existencia en la sucursal del actor.
func (uc *ProductUseCase) SetStock(ctx context.Context, actor ports.Actor, id string, qty int) (*dto.ProductResponse, error) {
	st, err := uc.runner.Dispatch(ctx, &catalog.SetStockCommand{
		ProductID: id, BranchID: actor.BranchID, Quantity: qty, Actor: actor.Name, At: uc.now(),
	})
	if err != nil {
		return nil, err
	}
	out := toProductResponse(st, st.Products[st.ProductIndex(id)], actor.BranchID)
	return &out, nil
}

func toProductResponse(st *state.State, p entity.Product, branchID string) dto.ProductResponse {
	return dto.ProductResponse{Product: p, Stock: st.GetStock(p.ID, branchID)}
}
