package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/zenith-pos/internal/application/dto"
	"github.com/jhoicas/zenith-pos/internal/application/ports"
	"github.com/jhoicas/zenith-pos/internal/domain"
	"github.com/jhoicas/zenith-pos/internal/domain/entity"
	"github.com/jhoicas/zenith-pos/internal/domain/state"
)

// AuditUseCase consulta del historial de acciones.
type AuditUseCase struct {
	runner ports.StateRunner
}

// NewAuditUseCase construye el caso de uso.
func NewAuditUseCase(runner ports.StateRunner) *AuditUseCase {
	return &AuditUseCase{runner: runner}
}

// List filtra por usuario exacto, texto en la acción y rango de fechas, y pagina.
// El orden es el del historial: más reciente primero.
func (uc *AuditUseCase) List(ctx context.Context, f dto.AuditFilter) (*dto.AuditListResponse, error) {
	st, err := uc.runner.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	f.Page.DefaultPage()
	search := strings.ToLower(strings.TrimSpace(f.Search))
	var hits []entity.AuditLog
	for _, e := range st.AuditLog {
		if f.User != "" && !strings.EqualFold(e.User, f.User) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(e.Action), search) {
			continue
		}
		if !f.Contains(e.Timestamp) {
			continue
		}
		hits = append(hits, e)
	}
	lo, hi := f.Page.Window(len(hits))
	return &dto.AuditListResponse{
		Entries: nonNil(hits[lo:hi]),
		Page:    dto.PageResponse{Limit: f.Page.Limit, Offset: f.Page.Offset, Total: len(hits)},
	}, nil
}

// Detail resuelve la entidad referenciada por la entrada. Si ya no existe la
// respuesta lleva Found=false en lugar de un error.
func (uc *AuditUseCase) Detail(ctx context.Context, id string) (*dto.AuditDetailResponse, error) {
	st, err := uc.runner.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	for _, e := range st.AuditLog {
		if e.ID != id {
			continue
		}
		out := &dto.AuditDetailResponse{Entry: e}
		if e.Details == nil {
			return out, nil
		}
		out.Type = string(e.Details.Type)
		if d, err := st.ResolveAuditRef(*e.Details); err == nil {
			out.Found = true
			out.Detail = payload(d)
		}
		return out, nil
	}
	return nil, fmt.Errorf("entrada de auditoría %q: %w", id, domain.ErrNotFound)
}

func payload(d state.AuditDetail) any {
	switch v := d.(type) {
	case state.SaleDetail:
		return v.Sale
	case state.PurchaseDetail:
		return v.Purchase
	case state.ExpenseDetail:
		return v.Expense
	case state.CustomerDetail:
		return v.Customer
	case state.ProductDetail:
		return v.Product
	case state.SupplierDetail:
		return v.Supplier
	case state.CashDrawerDetail:
		return v.Session
	case state.UserDetail:
		return dto.UserResponse{ID: v.ID, Name: v.Name, Email: v.Email, Assignments: v.Assignments}
	}
	return nil
}
