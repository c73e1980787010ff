// Package cashdrawer contiene los casos de uso de apertura, movimientos, cierre y
// arqueo de caja.
package cashdrawer

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/zenith-pos/internal/application/dto"
	"github.com/jhoicas/zenith-pos/internal/application/ports"
	"github.com/jhoicas/zenith-pos/internal/domain"
	domaincash "github.com/jhoicas/zenith-pos/internal/domain/cashdrawer"
	"github.com/jhoicas/zenith-pos/internal/domain/entity"
	"github.com/jhoicas/zenith-pos/internal/domain/state"
)

// CashDrawerUseCase caja de la sucursal activa. Cada sucursal tiene a lo sumo una
// sesión abierta.
type CashDrawerUseCase struct {
	runner ports.StateRunner
	docs   ports.DocumentGenerator
	now    func() time.Time
}

// NewCashDrawerUseCase construye el caso de uso. docs puede ser nil si no se generan PDF.
func NewCashDrawerUseCase(runner ports.StateRunner, docs ports.DocumentGenerator) *CashDrawerUseCase {
	return &CashDrawerUseCase{runner: runner, docs: docs, now: time.Now}
}

// Open abre la caja con el fondo inicial.
func (uc *CashDrawerUseCase) Open(ctx context.Context, actor ports.Actor, in dto.OpenSessionRequest) (*entity.CashDrawerSession, error) {
	cmd := &domaincash.OpenCommand{BranchID: actor.BranchID, StartAmount: in.StartAmount, Actor: actor.Name, At: uc.now()}
	if _, err := uc.runner.Dispatch(ctx, cmd); err != nil {
		return nil, err
	}
	return &cmd.Session, nil
}

// AddMovement registra una entrada o salida de efectivo en la caja abierta.
func (uc *CashDrawerUseCase) AddMovement(ctx context.Context, actor ports.Actor, in dto.MovementRequest) (*entity.CashDrawerMovement, error) {
	cmd := &domaincash.AddMovementCommand{
		BranchID:        actor.BranchID,
		Type:            in.Type,
		Amount:          in.Amount,
		Reason:          in.Reason,
		ReceiptImageURL: in.ReceiptImageURL,
		Actor:           actor.Name,
		At:              uc.now(),
	}
	if _, err := uc.runner.Dispatch(ctx, cmd); err != nil {
		return nil, err
	}
	return &cmd.Movement, nil
}

// Close cierra la caja con el efectivo contado y devuelve el arqueo.
func (uc *CashDrawerUseCase) Close(ctx context.Context, actor ports.Actor, in dto.CloseSessionRequest) (*dto.ClosingReportResponse, error) {
	cmd := &domaincash.CloseCommand{BranchID: actor.BranchID, CountedAmount: in.CountedAmount, Actor: actor.Name, At: uc.now()}
	st, err := uc.runner.Dispatch(ctx, cmd)
	if err != nil {
		return nil, err
	}
	out := toReport(domaincash.BuildClosingReport(cmd.Session, st.Sales, cmd.At))
	return &out, nil
}

// Current devuelve la caja abierta de la sucursal y su efectivo esperado.
func (uc *CashDrawerUseCase) Current(ctx context.Context, branchID string) (*dto.CurrentSessionResponse, error) {
	st, err := uc.runner.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	i := st.ActiveSessionIndex(branchID)
	if i < 0 {
		return &dto.CurrentSessionResponse{}, nil
	}
	s := st.ActiveSessions[i]
	return &dto.CurrentSessionResponse{Open: true, Session: &s, Expected: domaincash.Expected(s)}, nil
}

// History devuelve las sesiones cerradas de la sucursal, más reciente primero.
func (uc *CashDrawerUseCase) History(ctx context.Context, branchID string) ([]entity.CashDrawerSession, error) {
	st, err := uc.runner.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	out := []entity.CashDrawerSession{}
	for _, s := range st.SessionHistory {
		if s.BranchID == branchID {
			out = append(out, s)
		}
	}
	return out, nil
}

// Report arma el arqueo de una sesión abierta o cerrada de la sucursal del actor.
func (uc *CashDrawerUseCase) Report(ctx context.Context, actor ports.Actor, sessionID string) (*dto.ClosingReportResponse, error) {
	r, _, err := uc.report(ctx, actor, sessionID)
	if err != nil {
		return nil, err
	}
	out := toReport(r)
	return &out, nil
}

// ReportPDF genera el PDF del arqueo.
func (uc *CashDrawerUseCase) ReportPDF(ctx context.Context, actor ports.Actor, sessionID string) (pdf []byte, filename string, err error) {
	if uc.docs == nil {
		return nil, "", fmt.Errorf("reportes PDF no configurados: %w", domain.ErrConflict)
	}
	r, st, err := uc.report(ctx, actor, sessionID)
	if err != nil {
		return nil, "", err
	}
	data := ports.ClosingData{Report: r, Settings: st.Settings}
	if i := st.BranchIndex(r.Session.BranchID); i >= 0 {
		data.Branch = st.Branches[i]
	}
	pdf, err = uc.docs.ClosingReportPDF(ctx, data)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generar arqueo: %w", err)
	}
	return pdf, fmt.Sprintf("arqueo-%s.pdf", r.Session.ID), nil
}

func (uc *CashDrawerUseCase) report(ctx context.Context, actor ports.Actor, sessionID string) (domaincash.ClosingReport, *state.State, error) {
	st, err := uc.runner.Snapshot(ctx)
	if err != nil {
		return domaincash.ClosingReport{}, nil, err
	}
	s, ok := st.SessionByID(sessionID)
	if !ok {
		return domaincash.ClosingReport{}, nil, fmt.Errorf("sesión de caja %q: %w", sessionID, domain.ErrNotFound)
	}
	if s.BranchID != actor.BranchID {
		return domaincash.ClosingReport{}, nil, fmt.Errorf("sesión de caja %q: %w", sessionID, domain.ErrForbidden)
	}
	return domaincash.BuildClosingReport(s, st.Sales, uc.now()), st, nil
}

func toReport(r domaincash.ClosingReport) dto.ClosingReportResponse {
	if r.Session.Movements == nil {
		r.Session.Movements = []entity.CashDrawerMovement{}
	}
	return dto.ClosingReportResponse{
		Session:     r.Session,
		From:        r.From,
		To:          r.To,
		SalesCount:  r.SalesCount,
		CashSales:   r.CashSales,
		CardSales:   r.CardSales,
		CreditSales: r.CreditSales,
		TotalSales:  r.TotalSales,
		CashIn:      r.CashIn,
		CashOut:     r.CashOut,
		Expected:    r.Expected,
		Counted:     r.Counted,
		Difference:  r.Difference,
		Consistent:  r.Consistent(),
	}
}
