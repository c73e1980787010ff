package ports

import (
	"context"
	"time"

	"github.com/jhoicas/zenith-pos/internal/application/dto"
)

// SalesJournal consulta la proyección relacional de ventas (solo con PostgreSQL).
// Los extremos de tiempo en cero no filtran; to es exclusivo.
type SalesJournal interface {
	PaymentTotals(ctx context.Context, branchID string, from, to time.Time) ([]dto.PaymentMixDTO, error)
}
