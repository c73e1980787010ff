// Package cashdrawer implementa la máquina de estados de la caja por sucursal:
// sin sesión → abierta (movimientos) → cerrada, y su arqueo.
package cashdrawer

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/zenith-pos/internal/domain"
	"github.com/jhoicas/zenith-pos/internal/domain/entity"
	"github.com/jhoicas/zenith-pos/internal/domain/state"
)

// Expected = inicial + ventas en efectivo + Σ entradas − Σ salidas.
func Expected(s entity.CashDrawerSession) decimal.Decimal {
	in, out := MovementTotals(s)
	return s.StartAmount.Add(s.CashSales).Add(in).Sub(out)
}

// MovementTotals devuelve Σ entradas y Σ salidas.
func MovementTotals(s entity.CashDrawerSession) (in, out decimal.Decimal) {
	for _, m := range s.Movements {
		switch m.Type {
		case entity.MovementIn:
			in = in.Add(m.Amount)
		case entity.MovementOut:
			out = out.Add(m.Amount)
		}
	}
	return in, out
}

// OpenCommand abre la caja de una sucursal con el monto inicial.
type OpenCommand struct {
	BranchID    string
	StartAmount decimal.Decimal
	Actor       string
	At          time.Time

	Session entity.CashDrawerSession
}

func (c *OpenCommand) Name() string { return "cashdrawer.open" }

func (c *OpenCommand) Apply(st *state.State) error {
	if c.StartAmount.IsNegative() {
		return fmt.Errorf("monto inicial %s: %w", c.StartAmount, domain.ErrInvalidAmount)
	}
	if st.BranchIndex(c.BranchID) < 0 {
		return fmt.Errorf("sucursal %q: %w", c.BranchID, domain.ErrNotFound)
	}
	if st.ActiveSessionIndex(c.BranchID) >= 0 {
		return domain.ErrSessionAlreadyOpen
	}
	s := entity.CashDrawerSession{
		ID:          nextSessionID(st, c.At),
		BranchID:    c.BranchID,
		User:        c.Actor,
		StartTime:   c.At,
		StartAmount: c.StartAmount,
		Status:      entity.SessionOpen,
	}
	st.ActiveSessions = append(st.ActiveSessions, s)
	st.Log(c.Actor, fmt.Sprintf("Caja abierta con %s", c.StartAmount.StringFixed(2)), c.At,
		state.Ref(entity.AuditCashDrawer, s.ID))
	c.Session = s
	return nil
}

// nextSessionID genera CD-{unix ms}, avanzando el milisegundo mientras el id exista.
func nextSessionID(st *state.State, at time.Time) string {
	for ms := at.UnixMilli(); ; ms++ {
		id := fmt.Sprintf("CD-%d", ms)
		if _, taken := st.SessionByID(id); !taken {
			return id
		}
	}
}

// nextMovementID genera M-{unix ms} único dentro de la sesión.
func nextMovementID(movements []entity.CashDrawerMovement, at time.Time) string {
	for ms := at.UnixMilli(); ; ms++ {
		id := fmt.Sprintf("M-%d", ms)
		if !slices.ContainsFunc(movements, func(m entity.CashDrawerMovement) bool { return m.ID == id }) {
			return id
		}
	}
}

// AddMovementCommand registra una entrada o salida manual de efectivo.
type AddMovementCommand struct {
	BranchID        string
	Type            entity.MovementType
	Amount          decimal.Decimal
	Reason          string
	ReceiptImageURL string
	Actor           string
	At              time.Time

	Movement entity.CashDrawerMovement
}

func (c *AddMovementCommand) Name() string { return "cashdrawer.movement" }

func (c *AddMovementCommand) Apply(st *state.State) error {
	if c.Type != entity.MovementIn && c.Type != entity.MovementOut {
		return fmt.Errorf("tipo de movimiento %q: %w", c.Type, domain.ErrInvalidInput)
	}
	if !c.Amount.IsPositive() {
		return fmt.Errorf("monto %s: %w", c.Amount, domain.ErrInvalidAmount)
	}
	if strings.TrimSpace(c.Reason) == "" {
		return fmt.Errorf("motivo requerido: %w", domain.ErrInvalidInput)
	}
	i := st.ActiveSessionIndex(c.BranchID)
	if i < 0 {
		return domain.ErrNoOpenSession
	}
	m := entity.CashDrawerMovement{
		ID:              nextMovementID(st.ActiveSessions[i].Movements, c.At),
		Type:            c.Type,
		Amount:          c.Amount,
		Reason:          strings.TrimSpace(c.Reason),
		ReceiptImageURL: c.ReceiptImageURL,
		Timestamp:       c.At,
		User:            c.Actor,
	}
	st.ActiveSessions[i].Movements = append(st.ActiveSessions[i].Movements, m)
	c.Movement = m
	return nil
}

// CloseCommand cierra la caja con el monto contado y la pasa al historial.
type CloseCommand struct {
	BranchID      string
	CountedAmount decimal.Decimal
	Actor         string
	At            time.Time

	Session entity.CashDrawerSession
}

func (c *CloseCommand) Name() string { return "cashdrawer.close" }

func (c *CloseCommand) Apply(st *state.State) error {
	if c.CountedAmount.IsNegative() {
		return fmt.Errorf("monto contado %s: %w", c.CountedAmount, domain.ErrInvalidAmount)
	}
	i := st.ActiveSessionIndex(c.BranchID)
	if i < 0 {
		return domain.ErrNoOpenSession
	}
	s := st.ActiveSessions[i]
	end := c.At
	s.EndTime = &end
	s.EndAmount = c.CountedAmount
	s.Expected = Expected(s)
	s.Difference = c.CountedAmount.Sub(s.Expected)
	s.Status = entity.SessionClosed

	st.ActiveSessions = append(st.ActiveSessions[:i:i], st.ActiveSessions[i+1:]...)
	st.SessionHistory = append([]entity.CashDrawerSession{s}, st.SessionHistory...)
	st.Log(c.Actor, fmt.Sprintf("Caja cerrada. Diferencia: %s", s.Difference.StringFixed(2)), c.At,
		state.Ref(entity.AuditCashDrawer, s.ID))
	c.Session = s
	return nil
}
