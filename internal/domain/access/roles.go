package access

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/zenith-pos/internal/domain"
	"github.com/jhoicas/zenith-pos/internal/domain/entity"
	"github.com/jhoicas/zenith-pos/internal/domain/state"
)

// SaveRoleCommand crea (ID vacío) o actualiza un rol. El nombre es solo una etiqueta:
// los usuarios referencian el ID, por lo que renombrar no requiere cascada.
type SaveRoleCommand struct {
	Role  entity.Role
	Actor string
	At    time.Time
}

func (c *SaveRoleCommand) Name() string { return "access.role.save" }

func (c *SaveRoleCommand) Apply(st *state.State) error {
	in := c.Role
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return fmt.Errorf("nombre de rol requerido: %w", domain.ErrInvalidInput)
	}
	for _, v := range in.Permissions {
		if !v.Valid() {
			return fmt.Errorf("vista %q: %w", v, domain.ErrInvalidInput)
		}
	}
	if other, ok := st.RoleByName(in.Name); ok && other.ID != in.ID {
		return fmt.Errorf("rol %q: %w", in.Name, domain.ErrDuplicate)
	}
	in.Permissions = NormalizeViews(in.Permissions)

	if in.ID == "" {
		in.ID = uuid.NewString()
		st.Roles = append(st.Roles, in)
		st.Log(c.Actor, "Rol creado: "+in.Name, c.At, nil)
		c.Role = in
		return nil
	}
	i := st.RoleIndex(in.ID)
	if i < 0 {
		return fmt.Errorf("rol %q: %w", in.ID, domain.ErrNotFound)
	}
	if st.Roles[i].IsAdmin() {
		return domain.ErrRoleLocked
	}
	st.Roles[i] = in
	st.Log(c.Actor, "Rol actualizado: "+in.Name, c.At, nil)
	c.Role = in
	return nil
}

// GrantViewCommand agrega una vista a los permisos de un rol (idempotente).
type GrantViewCommand struct {
	RoleID string
	View   entity.View
	Actor  string
	At     time.Time
}

func (c *GrantViewCommand) Name() string { return "access.role.grant" }

func (c *GrantViewCommand) Apply(st *state.State) error {
	if !c.View.Valid() {
		return fmt.Errorf("vista %q: %w", c.View, domain.ErrInvalidInput)
	}
	i := st.RoleIndex(c.RoleID)
	if i < 0 {
		return fmt.Errorf("rol %q: %w", c.RoleID, domain.ErrNotFound)
	}
	if st.Roles[i].IsAdmin() {
		return domain.ErrRoleLocked
	}
	if slices.Contains(st.Roles[i].Permissions, c.View) {
		return nil
	}
	st.Roles[i].Permissions = NormalizeViews(append(st.Roles[i].Permissions, c.View))
	st.Log(c.Actor, fmt.Sprintf("Permiso %s agregado al rol %s", c.View, st.Roles[i].Name), c.At, nil)
	return nil
}

// DeleteRoleCommand elimina un rol que ningún usuario tenga asignado en ninguna sucursal.
type DeleteRoleCommand struct {
	RoleID string
	Actor  string
	At     time.Time
}

func (c *DeleteRoleCommand) Name() string { return "access.role.delete" }

func (c *DeleteRoleCommand) Apply(st *state.State) error {
	i := st.RoleIndex(c.RoleID)
	if i < 0 {
		return fmt.Errorf("rol %q: %w", c.RoleID, domain.ErrNotFound)
	}
	if st.Roles[i].IsAdmin() {
		return domain.ErrRoleLocked
	}
	for _, u := range st.Users {
		for _, a := range u.Assignments {
			if a.RoleID == c.RoleID {
				return fmt.Errorf("rol %q asignado a %s: %w", st.Roles[i].Name, u.Name, domain.ErrRoleInUse)
			}
		}
	}
	name := st.Roles[i].Name
	st.Roles = append(st.Roles[:i:i], st.Roles[i+1:]...)
	st.Log(c.Actor, "Rol eliminado: "+name, c.At, nil)
	return nil
}
