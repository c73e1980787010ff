// Package tenant administra sucursales y la configuración del tenant.
package tenant

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/zenith-pos/internal/domain"
	"github.com/jhoicas/zenith-pos/internal/domain/entity"
	"github.com/jhoicas/zenith-pos/internal/domain/state"
)

// SaveBranchCommand crea (ID vacío) o actualiza una sucursal. La creación respeta el
// máximo de sucursales del plan.
type SaveBranchCommand struct {
	Branch entity.Branch
	Actor  string
	At     time.Time
}

func (c *SaveBranchCommand) Name() string { return "tenant.branch.save" }

func (c *SaveBranchCommand) Apply(st *state.State) error {
	in := c.Branch
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return fmt.Errorf("nombre de sucursal requerido: %w", domain.ErrInvalidInput)
	}
	if in.ID == "" {
		if !entity.PlanByID(st.Settings.PlanID).AllowsBranches(len(st.Branches) + 1) {
			return fmt.Errorf("sucursales: %w", domain.ErrPlanLimit)
		}
		in.ID = uuid.NewString()
		st.Branches = append(st.Branches, in)
		st.Log(c.Actor, "Sucursal creada: "+in.Name, c.At, nil)
		c.Branch = in
		return nil
	}
	i := st.BranchIndex(in.ID)
	if i < 0 {
		return fmt.Errorf("sucursal %q: %w", in.ID, domain.ErrNotFound)
	}
	st.Branches[i] = in
	st.Log(c.Actor, "Sucursal actualizada: "+in.Name, c.At, nil)
	c.Branch = in
	return nil
}

// DeleteBranchCommand elimina una sucursal sin stock, ventas, compras, gastos ni caja abierta.
// Las asignaciones de usuarios a esa sucursal se eliminan.
type DeleteBranchCommand struct {
	BranchID string
	Actor    string
	At       time.Time
}

func (c *DeleteBranchCommand) Name() string { return "tenant.branch.delete" }

func (c *DeleteBranchCommand) Apply(st *state.State) error {
	i := st.BranchIndex(c.BranchID)
	if i < 0 {
		return fmt.Errorf("sucursal %q: %w", c.BranchID, domain.ErrNotFound)
	}
	if len(st.Branches) == 1 {
		return fmt.Errorf("única sucursal: %w", domain.ErrConflict)
	}
	if st.BranchHasStock(c.BranchID) || st.ActiveSessionIndex(c.BranchID) >= 0 || hasDocuments(st, c.BranchID) {
		return fmt.Errorf("sucursal %q con movimientos: %w", st.Branches[i].Name, domain.ErrConflict)
	}
	name := st.Branches[i].Name
	st.Branches = append(st.Branches[:i:i], st.Branches[i+1:]...)
	kept := st.Stock[:0:0]
	for _, e := range st.Stock {
		if e.BranchID != c.BranchID {
			kept = append(kept, e)
		}
	}
	st.Stock = kept
	for u := range st.Users {
		as := st.Users[u].Assignments[:0:0]
		for _, a := range st.Users[u].Assignments {
			if a.BranchID != c.BranchID {
				as = append(as, a)
			}
		}
		st.Users[u].Assignments = as
	}
	st.Log(c.Actor, "Sucursal eliminada: "+name, c.At, nil)
	return nil
}

func hasDocuments(st *state.State, branchID string) bool {
	for _, v := range st.Sales {
		if v.BranchID == branchID {
			return true
		}
	}
	for _, p := range st.Purchases {
		if p.BranchID == branchID {
			return true
		}
	}
	for _, e := range st.Expenses {
		if e.BranchID == branchID {
			return true
		}
	}
	return false
}

// UpdateSettingsCommand reemplaza la configuración. El contador correlativo solo
// puede avanzar: nunca se reutiliza un número.
type UpdateSettingsCommand struct {
	Settings entity.Settings
	Actor    string
	At       time.Time
}

func (c *UpdateSettingsCommand) Name() string { return "tenant.settings.update" }

func (c *UpdateSettingsCommand) Apply(st *state.State) error {
	in := c.Settings
	if in.TaxRate.IsNegative() || in.TaxRate.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("tasa de impuesto %s: %w", in.TaxRate, domain.ErrInvalidInput)
	}
	if in.CorrelativeNextNumber < st.Settings.CorrelativeNextNumber {
		return fmt.Errorf("el correlativo no puede retroceder (%d < %d): %w",
			in.CorrelativeNextNumber, st.Settings.CorrelativeNextNumber, domain.ErrConflict)
	}
	switch in.DateFormat {
	case entity.DateDMY, entity.DateMDY, entity.DateISO:
	default:
		return fmt.Errorf("formato de fecha %q: %w", in.DateFormat, domain.ErrInvalidInput)
	}
	if in.NumberFormat != entity.NumberEnUS && in.NumberFormat != entity.NumberDeDE {
		return fmt.Errorf("formato numérico %q: %w", in.NumberFormat, domain.ErrInvalidInput)
	}
	for _, v := range in.EnabledModules {
		if !v.Valid() {
			return fmt.Errorf("módulo %q: %w", v, domain.ErrInvalidInput)
		}
	}
	plan := entity.PlanByID(in.PlanID)
	if plan.ID != in.PlanID {
		return fmt.Errorf("plan %q: %w", in.PlanID, domain.ErrInvalidInput)
	}
	if !plan.AllowsBranches(len(st.Branches)) || !plan.AllowsUsers(len(st.Users)) {
		return fmt.Errorf("el plan %s no admite los datos actuales: %w", plan.Name, domain.ErrPlanLimit)
	}
	st.Settings = in
	st.Log(c.Actor, "Configuración actualizada", c.At, nil)
	return nil
}
