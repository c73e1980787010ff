package usecase

import (
	"context"

	"github.com/jhoicas/zenith-pos/internal/application/dto"
	"github.com/jhoicas/zenith-pos/internal/application/ports"
	"github.com/jhoicas/zenith-pos/internal/domain"
	"github.com/jhoicas/zenith-pos/internal/domain/access"
	"github.com/jhoicas/zenith-pos/internal/domain/entity"
)

// ModuleService decide qué vistas puede abrir un usuario en la sucursal activa.
// Combina los permisos del rol, los módulos habilitados y el plan de suscripción.
type ModuleService struct {
	runner ports.StateRunner
}

// NewModuleService construye el servicio de módulos.
func NewModuleService(runner ports.StateRunner) *ModuleService {
	return &ModuleService{runner: runner}
}

// CanAccess informa si el actor puede abrir la vista.
// Devuelve error solo ante fallos al leer el estado.
func (s *ModuleService) CanAccess(ctx context.Context, actor ports.Actor, view entity.View) (bool, error) {
	st, err := s.runner.Snapshot(ctx)
	if err != nil {
		return false, err
	}
	i := st.UserIndex(actor.UserID)
	if i < 0 {
		return false, nil
	}
	return access.CanAccess(st, st.Users[i], actor.BranchID, view), nil
}

// Views lista las vistas accesibles y resuelve la vista pedida (Dashboard si la pedida
// no está permitida).
func (s *ModuleService) Views(ctx context.Context, actor ports.Actor, requested entity.View) (*dto.ViewsResponse, error) {
	st, err := s.runner.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	i := st.UserIndex(actor.UserID)
	if i < 0 {
		return nil, domain.ErrUserNotFound
	}
	u := st.Users[i]
	if requested == "" {
		requested = entity.ViewDashboard
	}
	view, err := access.ResolveView(st, u, actor.BranchID, requested)
	if err != nil {
		return nil, err
	}
	out := &dto.ViewsResponse{
		BranchID: actor.BranchID,
		Views:    access.AccessibleViews(st, u, actor.BranchID),
		View:     view,
	}
	if role, ok := access.RoleFor(st, u, actor.BranchID); ok {
		out.RoleID, out.RoleName = role.ID, role.Name
	}
	return out, nil
}
