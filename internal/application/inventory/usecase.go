// Package inventory contiene los casos de uso de alertas, importación/exportación y
// reposición del inventario por sucursal.
package inventory

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jhoicas/zenith-pos/internal/application/dto"
	"github.com/jhoicas/zenith-pos/internal/application/ports"
	"github.com/jhoicas/zenith-pos/internal/domain"
	"github.com/jhoicas/zenith-pos/internal/domain/catalog"
)

// InventoryUseCase alertas e import/export del inventario.
type InventoryUseCase struct {
	runner ports.StateRunner
	codec  ports.CatalogCodec
	now    func() time.Time
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(runner ports.StateRunner, codec ports.CatalogCodec) *InventoryUseCase {
	return &InventoryUseCase{runner: runner, codec: codec, now: time.Now}
}

// Alerts devuelve las alertas vigentes de la sucursal (stock bajo y vencimientos).
func (uc *InventoryUseCase) Alerts(ctx context.Context, branchID string) ([]catalog.Alert, error) {
	st, err := uc.runner.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	out := catalog.Alerts(st, branchID, uc.now())
	if out == nil {
		out = []catalog.Alert{}
	}
	return out, nil
}

// DismissAlert descarta una alerta. Descartar dos veces la misma clave no tiene efecto.
func (uc *InventoryUseCase) DismissAlert(ctx context.Context, in dto.DismissAlertRequest) error {
	_, err := uc.runner.Dispatch(ctx, &catalog.DismissAlertCommand{Key: in.Key})
	return err
}

// Import lee filas en el formato indicado y agrega los productos nuevos con su stock
// en la sucursal del actor.
func (uc *InventoryUseCase) Import(ctx context.Context, actor ports.Actor, r io.Reader, format string) (*dto.ImportResponse, error) {
	rows, err := uc.codec.Decode(r, format)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("archivo sin filas: %w", domain.ErrInvalidInput)
	}
	cmd := &catalog.ImportCommand{BranchID: actor.BranchID, Rows: rows, Actor: actor.Name, At: uc.now()}
	if _, err := uc.runner.Dispatch(ctx, cmd); err != nil {
		return nil, err
	}
	return &dto.ImportResponse{Imported: cmd.Imported, Skipped: cmd.Skipped}, nil
}

// Export escribe el catálogo con el stock de la sucursal.
func (uc *InventoryUseCase) Export(ctx context.Context, branchID string, w io.Writer, format string) error {
	st, err := uc.runner.Snapshot(ctx)
	if err != nil {
		return err
	}
	return uc.codec.Encode(w, format, catalog.ExportRows(st, branchID))
}
