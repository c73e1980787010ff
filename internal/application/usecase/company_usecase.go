package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/zenith-pos/internal/application/dto"
	"github.com/jhoicas/zenith-pos/internal/application/ports"
	"github.com/jhoicas/zenith-pos/internal/domain/entity"
	"github.com/jhoicas/zenith-pos/internal/domain/state"
	"github.com/jhoicas/zenith-pos/internal/domain/tenant"
)

// CompanyUseCase configuración del negocio, sucursales y plan.
type CompanyUseCase struct {
	runner ports.StateRunner
	now    func() time.Time
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(runner ports.StateRunner) *CompanyUseCase {
	return &CompanyUseCase{runner: runner, now: time.Now}
}

// GetSettings devuelve la configuración vigente.
func (uc *CompanyUseCase) GetSettings(ctx context.Context) (*entity.Settings, error) {
	st, err := uc.runner.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	s := st.Settings
	return &s, nil
}

// UpdateSettings aplica una actualización parcial. El parche se aplica dentro del
// comando, sobre la configuración vigente en ese momento.
func (uc *CompanyUseCase) UpdateSettings(ctx context.Context, actor ports.Actor, in dto.UpdateSettingsRequest) (*entity.Settings, error) {
	st, err := uc.runner.Dispatch(ctx, &patchSettingsCommand{patch: in, actor: actor.Name, at: uc.now()})
	if err != nil {
		return nil, err
	}
	s := st.Settings
	return &s, nil
}

// Plan devuelve el plan vigente y el uso actual.
func (uc *CompanyUseCase) Plan(ctx context.Context) (*dto.PlanResponse, error) {
	st, err := uc.runner.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	p := entity.PlanByID(st.Settings.PlanID)
	return &dto.PlanResponse{
		ID:          p.ID,
		Name:        p.Name,
		MaxBranches: p.MaxBranches,
		MaxUsers:    p.MaxUsers,
		Excluded:    nonNil(p.Excluded),
		Branches:    len(st.Branches),
		Users:       len(st.Users),
	}, nil
}

// ListBranches devuelve todas las sucursales.
func (uc *CompanyUseCase) ListBranches(ctx context.Context) ([]entity.Branch, error) {
	st, err := uc.runner.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return nonNil(st.Branches), nil
}

// SaveBranch crea (id vacío) o actualiza una sucursal, respetando el límite del plan.
func (uc *CompanyUseCase) SaveBranch(ctx context.Context, actor ports.Actor, id string, in dto.BranchRequest) (*entity.Branch, error) {
	cmd := &tenant.SaveBranchCommand{
		Branch: entity.Branch{ID: id, Name: in.Name, Address: in.Address, Phone: in.Phone},
		Actor:  actor.Name,
		At:     uc.now(),
	}
	if _, err := uc.runner.Dispatch(ctx, cmd); err != nil {
		return nil, err
	}
	return &cmd.Branch, nil
}

// DeleteBranch elimina una sucursal sin movimientos.
func (uc *CompanyUseCase) DeleteBranch(ctx context.Context, actor ports.Actor, id string) error {
	_, err := uc.runner.Dispatch(ctx, &tenant.DeleteBranchCommand{BranchID: id, Actor: actor.Name, At: uc.now()})
	return err
}

type patchSettingsCommand struct {
	patch dto.UpdateSettingsRequest
	actor string
	at    time.Time
}

func (c *patchSettingsCommand) Name() string { return "tenant.settings.patch" }

func (c *patchSettingsCommand) Apply(st *state.State) error {
	cmd := tenant.UpdateSettingsCommand{Settings: c.patch.Merge(st.Settings), Actor: c.actor, At: c.at}
	return cmd.Apply(st)
}
