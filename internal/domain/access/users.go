package access

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/zenith-pos/internal/domain"
	"github.com/jhoicas/zenith-pos/internal/domain/entity"
	"github.com/jhoicas/zenith-pos/internal/domain/state"
)

// SaveUserCommand crea (ID vacío) o actualiza un usuario. PasswordHash vacío en una
// actualización conserva el hash existente; en la creación es obligatorio.
type SaveUserCommand struct {
	User  entity.User
	Actor string
	At    time.Time
}

func (c *SaveUserCommand) Name() string { return "access.user.save" }

func (c *SaveUserCommand) Apply(st *state.State) error {
	in := c.User
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	if in.Name == "" {
		return fmt.Errorf("nombre requerido: %w", domain.ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return fmt.Errorf("email %q: %w", in.Email, domain.ErrInvalidInput)
	}
	if other, ok := st.UserByEmail(in.Email); ok && other.ID != in.ID {
		return domain.ErrEmailAlreadyExists
	}
	if err := validateAssignments(st, in.Assignments); err != nil {
		return err
	}

	if in.ID == "" {
		if in.PasswordHash == "" {
			return fmt.Errorf("contraseña requerida: %w", domain.ErrInvalidInput)
		}
		if !entity.PlanByID(st.Settings.PlanID).AllowsUsers(len(st.Users) + 1) {
			return fmt.Errorf("usuarios: %w", domain.ErrPlanLimit)
		}
		in.ID = uuid.NewString()
		st.Users = append(st.Users, in)
		st.Log(c.Actor, "Usuario creado: "+in.Name, c.At, state.Ref(entity.AuditUser, in.ID))
		c.User = in
		return nil
	}
	i := st.UserIndex(in.ID)
	if i < 0 {
		return fmt.Errorf("usuario %q: %w", in.ID, domain.ErrUserNotFound)
	}
	if in.PasswordHash == "" {
		in.PasswordHash = st.Users[i].PasswordHash
		in.LegacyPassword = st.Users[i].LegacyPassword
	} else {
		in.LegacyPassword = ""
	}
	st.Users[i] = in
	st.Log(c.Actor, "Usuario actualizado: "+in.Name, c.At, state.Ref(entity.AuditUser, in.ID))
	c.User = in
	return nil
}

func validateAssignments(st *state.State, as []entity.BranchAssignment) error {
	seen := make(map[string]bool, len(as))
	for _, a := range as {
		if st.BranchIndex(a.BranchID) < 0 {
			return fmt.Errorf("sucursal %q: %w", a.BranchID, domain.ErrNotFound)
		}
		if st.RoleIndex(a.RoleID) < 0 {
			return fmt.Errorf("rol %q: %w", a.RoleID, domain.ErrNotFound)
		}
		if seen[a.BranchID] {
			return fmt.Errorf("más de un rol en la sucursal %q: %w", a.BranchID, domain.ErrInvalidInput)
		}
		seen[a.BranchID] = true
	}
	return nil
}

// AssignRoleCommand asigna (o reemplaza) el rol de un usuario en una sucursal.
type AssignRoleCommand struct {
	UserID   string
	BranchID string
	RoleID   string
	Actor    string
	At       time.Time
}

func (c *AssignRoleCommand) Name() string { return "access.user.assign" }

func (c *AssignRoleCommand) Apply(st *state.State) error {
	i := st.UserIndex(c.UserID)
	if i < 0 {
		return fmt.Errorf("usuario %q: %w", c.UserID, domain.ErrUserNotFound)
	}
	a := entity.BranchAssignment{BranchID: c.BranchID, RoleID: c.RoleID}
	if err := validateAssignments(st, []entity.BranchAssignment{a}); err != nil {
		return err
	}
	u := &st.Users[i]
	replaced := false
	for j := range u.Assignments {
		if u.Assignments[j].BranchID == c.BranchID {
			u.Assignments[j].RoleID = c.RoleID
			replaced = true
		}
	}
	if !replaced {
		u.Assignments = append(u.Assignments, a)
	}
	st.Log(c.Actor, fmt.Sprintf("Rol de %s actualizado en sucursal %s", u.Name, c.BranchID), c.At,
		state.Ref(entity.AuditUser, u.ID))
	return nil
}

// DeleteUserCommand elimina un usuario; no se permite dejar al tenant sin administradores.
type DeleteUserCommand struct {
	UserID string
	Actor  string
	At     time.Time
}

func (c *DeleteUserCommand) Name() string { return "access.user.delete" }

func (c *DeleteUserCommand) Apply(st *state.State) error {
	i := st.UserIndex(c.UserID)
	if i < 0 {
		return fmt.Errorf("usuario %q: %w", c.UserID, domain.ErrUserNotFound)
	}
	if isAdmin(st.Users[i]) && countAdmins(st) == 1 {
		return fmt.Errorf("último administrador: %w", domain.ErrConflict)
	}
	name := st.Users[i].Name
	st.Users = append(st.Users[:i:i], st.Users[i+1:]...)
	st.Log(c.Actor, "Usuario eliminado: "+name, c.At, nil)
	return nil
}

func isAdmin(u entity.User) bool {
	for _, a := range u.Assignments {
		if a.RoleID == entity.AdminRoleID {
			return true
		}
	}
	return false
}

func countAdmins(st *state.State) int {
	n := 0
	for _, u := range st.Users {
		if isAdmin(u) {
			n++
		}
	}
	return n
}
