package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/zenith-pos/internal/application/dto"
	"github.com/jhoicas/zenith-pos/internal/application/ports"
)

var _ ports.SalesJournal = (*RecordStore)(nil)

// JournalTotal totales del diario de ventas por forma de pago.
type JournalTotal struct {
	PaymentMethod string          `db:"payment_method"`
	Sales         int             `db:"sales"`
	Total         decimal.Decimal `db:"total"`
	Tax           decimal.Decimal `db:"tax"`
}

// JournalTotals agrega el diario de ventas de una sucursal en [from, to).
// Sirve para conciliar con herramientas externas sin leer los registros JSON.
func (s *RecordStore) JournalTotals(ctx context.Context, branchID string, from, to time.Time) ([]JournalTotal, error) {
	q := s.builder.
		Select("payment_method", "COUNT(*) AS sales", "COALESCE(SUM(total), 0) AS total", "COALESCE(SUM(tax), 0) AS tax").
		From("pos_sales_journal").
		Where(squirrel.Eq{"branch_id": branchID}).
		GroupBy("payment_method").
		OrderBy("payment_method")
	if !from.IsZero() {
		q = q.Where(squirrel.GtOrEq{"sold_at": from})
	}
	if !to.IsZero() {
		q = q.Where(squirrel.Lt{"sold_at": to})
	}
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build journal totals: %w", err)
	}
	var out []JournalTotal
	if err := pgxscan.Select(ctx, s.pool, &out, sql, args...); err != nil {
		return nil, fmt.Errorf("select pos_sales_journal: %w", err)
	}
	return out, nil
}

// PaymentTotals adapta JournalTotals al reporte por forma de pago.
func (s *RecordStore) PaymentTotals(ctx context.Context, branchID string, from, to time.Time) ([]dto.PaymentMixDTO, error) {
	rows, err := s.JournalTotals(ctx, branchID, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PaymentMixDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.PaymentMixDTO{PaymentMethod: r.PaymentMethod, Sales: r.Sales, Total: r.Total})
	}
	return out, nil
}
