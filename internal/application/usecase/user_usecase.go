package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/zenith-pos/internal/application/auth"
	"github.com/jhoicas/zenith-pos/internal/application/dto"
	"github.com/jhoicas/zenith-pos/internal/application/ports"
	"github.com/jhoicas/zenith-pos/internal/domain"
	"github.com/jhoicas/zenith-pos/internal/domain/access"
	"github.com/jhoicas/zenith-pos/internal/domain/entity"
)

// UserUseCase aplica reglas de negocio para usuarios y roles.
type UserUseCase struct {
	runner ports.StateRunner
	now    func() time.Time
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(runner ports.StateRunner) *UserUseCase {
	return &UserUseCase{runner: runner, now: time.Now}
}

// List devuelve los usuarios sin credenciales.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	st, err := uc.runner.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(st.Users))
	for _, u := range st.Users {
		out = append(out, auth.ToUserResponse(u))
	}
	return out, nil
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	st, err := uc.runner.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	i := st.UserIndex(id)
	if i < 0 {
		return nil, fmt.Errorf("usuario %q: %w", id, domain.ErrUserNotFound)
	}
	out := auth.ToUserResponse(st.Users[i])
	return &out, nil
}

// Save crea (id vacío) o actualiza un usuario. La contraseña se hashea aquí; vacía en
// una edición conserva la actual.
func (uc *UserUseCase) Save(ctx context.Context, actor ports.Actor, id string, in dto.SaveUserRequest) (*dto.UserResponse, error) {
	var hash string
	if in.Password != "" || id == "" {
		h, err := auth.HashPassword(in.Password)
		if err != nil {
			return nil, err
		}
		hash = h
	}
	cmd := &access.SaveUserCommand{
		User: entity.User{
			ID: id, Name: in.Name, Email: in.Email, PasswordHash: hash, Assignments: in.Assignments,
		},
		Actor: actor.Name,
		At:    uc.now(),
	}
	if _, err := uc.runner.Dispatch(ctx, cmd); err != nil {
		return nil, err
	}
	out := auth.ToUserResponse(cmd.User)
	return &out, nil
}

// AssignRole asigna o reemplaza el rol del usuario en una sucursal.
func (uc *UserUseCase) AssignRole(ctx context.Context, actor ports.Actor, userID string, in dto.AssignRoleRequest) (*dto.UserResponse, error) {
	st, err := uc.runner.Dispatch(ctx, &access.AssignRoleCommand{
		UserID: userID, BranchID: in.BranchID, RoleID: in.RoleID, Actor: actor.Name, At: uc.now(),
	})
	if err != nil {
		return nil, err
	}
	out := auth.ToUserResponse(st.Users[st.UserIndex(userID)])
	return &out, nil
}

// Delete elimina un usuario. Un usuario no puede eliminarse a sí mismo.
func (uc *UserUseCase) Delete(ctx context.Context, actor ports.Actor, id string) error {
	if id == actor.UserID {
		return fmt.Errorf("no puede eliminar su propio usuario: %w", domain.ErrConflict)
	}
	_, err := uc.runner.Dispatch(ctx, &access.DeleteUserCommand{UserID: id, Actor: actor.Name, At: uc.now()})
	return err
}

// ListRoles devuelve los roles con sus permisos efectivos.
func (uc *UserUseCase) ListRoles(ctx context.Context) ([]dto.RoleResponse, error) {
	st, err := uc.runner.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RoleResponse, 0, len(st.Roles))
	for _, r := range st.Roles {
		out = append(out, toRoleResponse(r))
	}
	return out, nil
}

// SaveRole crea (id vacío) o actualiza un rol. Administrador no se puede modificar.
func (uc *UserUseCase) SaveRole(ctx context.Context, actor ports.Actor, id string, in dto.SaveRoleRequest) (*dto.RoleResponse, error) {
	cmd := &access.SaveRoleCommand{
		Role:  entity.Role{ID: id, Name: in.Name, Permissions: in.Permissions},
		Actor: actor.Name,
		At:    uc.now(),
	}
	if _, err := uc.runner.Dispatch(ctx, cmd); err != nil {
		return nil, err
	}
	out := toRoleResponse(cmd.Role)
	return &out, nil
}

// GrantView agrega una vista al rol.
func (uc *UserUseCase) GrantView(ctx context.Context, actor ports.Actor, roleID string, view entity.View) (*dto.RoleResponse, error) {
	st, err := uc.runner.Dispatch(ctx, &access.GrantViewCommand{RoleID: roleID, View: view, Actor: actor.Name, At: uc.now()})
	if err != nil {
		return nil, err
	}
	out := toRoleResponse(st.Roles[st.RoleIndex(roleID)])
	return &out, nil
}

// DeleteRole elimina un rol sin usuarios asignados.
func (uc *UserUseCase) DeleteRole(ctx context.Context, actor ports.Actor, id string) error {
	_, err := uc.runner.Dispatch(ctx, &access.DeleteRoleCommand{RoleID: id, Actor: actor.Name, At: uc.now()})
	return err
}

func toRoleResponse(r entity.Role) dto.RoleResponse {
	return dto.RoleResponse{
		ID:          r.ID,
		Name:        r.Name,
		Permissions: access.EffectivePermissions(r),
		Locked:      r.IsAdmin(),
	}
}
