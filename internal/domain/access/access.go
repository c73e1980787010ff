// Package access resuelve qué vistas puede usar un usuario en una sucursal y
// administra roles y usuarios.
//
// Una vista es accesible cuando está en los permisos efectivos del rol asignado al
// usuario en esa sucursal, el módulo está habilitado en la configuración y el plan
// de suscripción la incluye.
package access

import (
	"fmt"

	"github.com/jhoicas/zenith-pos/internal/domain"
	"github.com/jhoicas/zenith-pos/internal/domain/entity"
	"github.com/jhoicas/zenith-pos/internal/domain/state"
)

// EffectivePermissions devuelve los permisos del rol; Administrador siempre tiene todas las vistas.
func EffectivePermissions(r entity.Role) []entity.View {
	if r.IsAdmin() {
		return entity.AllViews()
	}
	return NormalizeViews(r.Permissions)
}

// NormalizeViews aplica semántica de conjunto: sin duplicados, sin vistas desconocidas,
// en orden canónico.
func NormalizeViews(in []entity.View) []entity.View {
	set := make(map[entity.View]bool, len(in))
	for _, v := range in {
		set[v] = true
	}
	out := make([]entity.View, 0, len(set))
	for _, v := range entity.AllViews() {
		if set[v] {
			out = append(out, v)
		}
	}
	return out
}

// RoleFor devuelve el rol del usuario en la sucursal.
func RoleFor(st *state.State, u entity.User, branchID string) (entity.Role, bool) {
	id := u.RoleIDFor(branchID)
	if id == "" {
		return entity.Role{}, false
	}
	i := st.RoleIndex(id)
	if i < 0 {
		return entity.Role{}, false
	}
	return st.Roles[i], true
}

// CanAccess evalúa rol ∧ módulo habilitado ∧ plan.
func CanAccess(st *state.State, u entity.User, branchID string, v entity.View) bool {
	role, ok := RoleFor(st, u, branchID)
	if !ok {
		return false
	}
	granted := false
	for _, p := range EffectivePermissions(role) {
		if p == v {
			granted = true
			break
		}
	}
	if !granted || !st.Settings.ModuleEnabled(v) {
		return false
	}
	return entity.PlanByID(st.Settings.PlanID).Allows(v)
}

// AccessibleViews lista las vistas que el usuario puede abrir en la sucursal.
func AccessibleViews(st *state.State, u entity.User, branchID string) []entity.View {
	var out []entity.View
	for _, v := range entity.AllViews() {
		if CanAccess(st, u, branchID, v) {
			out = append(out, v)
		}
	}
	return out
}

// ResolveView devuelve la vista pedida si es accesible; si no, Dashboard cuando éste
// es accesible; en otro caso ErrForbidden.
func ResolveView(st *state.State, u entity.User, branchID string, requested entity.View) (entity.View, error) {
	if CanAccess(st, u, branchID, requested) {
		return requested, nil
	}
	if CanAccess(st, u, branchID, entity.ViewDashboard) {
		return entity.ViewDashboard, nil
	}
	return "", fmt.Errorf("vista %q en sucursal %q: %w", requested, branchID, domain.ErrForbidden)
}
