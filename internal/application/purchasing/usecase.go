// Package purchasing registra compras a proveedores.
package purchasing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/zenith-pos/internal/application/dto"
	"github.com/jhoicas/zenith-pos/internal/application/ports"
	"github.com/jhoicas/zenith-pos/internal/domain"
	"github.com/jhoicas/zenith-pos/internal/domain/entity"
	domainpurchasing "github.com/jhoicas/zenith-pos/internal/domain/purchasing"
)

// PurchaseUseCase compras de la sucursal activa.
type PurchaseUseCase struct {
	runner ports.StateRunner
	now    func() time.Time
}

// NewPurchaseUseCase construye el caso de uso.
func NewPurchaseUseCase(runner ports.StateRunner) *PurchaseUseCase {
	return &PurchaseUseCase{runner: runner, now: time.Now}
}

// Register registra la compra: suma stock en la sucursal, recalcula el costo de cada
// producto y aumenta el saldo del proveedor.
func (uc *PurchaseUseCase) Register(ctx context.Context, actor ports.Actor, in dto.PurchaseRequest) (*entity.Purchase, error) {
	items := make([]domainpurchasing.Item, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, domainpurchasing.Item{ProductID: it.ProductID, Quantity: it.Quantity, Cost: it.Cost})
	}
	cmd := &domainpurchasing.PurchaseCommand{
		BranchID:        actor.BranchID,
		SupplierID:      in.SupplierID,
		Items:           items,
		Comments:        strings.TrimSpace(in.Comments),
		ReceiptImageURL: in.ReceiptImageURL,
		Actor:           actor.Name,
		At:              uc.now(),
	}
	if _, err := uc.runner.Dispatch(ctx, cmd); err != nil {
		return nil, err
	}
	return &cmd.Purchase, nil
}

// List devuelve las compras de la sucursal, más reciente primero.
func (uc *PurchaseUseCase) List(ctx context.Context, branchID string, f dto.PurchaseFilter) ([]entity.Purchase, error) {
	st, err := uc.runner.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	out := []entity.Purchase{}
	for _, p := range st.Purchases {
		if p.BranchID != branchID || !f.Contains(p.Date) {
			continue
		}
		if f.SupplierID != "" && p.SupplierID != f.SupplierID {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// Get obtiene una compra de la sucursal del actor.
func (uc *PurchaseUseCase) Get(ctx context.Context, actor ports.Actor, id string) (*entity.Purchase, error) {
	st, err := uc.runner.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	p, ok := st.PurchaseByID(id)
	if !ok {
		return nil, fmt.Errorf("compra %q: %w", id, domain.ErrNotFound)
	}
	if p.BranchID != actor.BranchID {
		return nil, fmt.Errorf("compra %q: %w", id, domain.ErrForbidden)
	}
	return &p, nil
}
