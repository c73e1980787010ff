// Package store mantiene el estado vigente en memoria y lo persiste en un Backend
// después de cada comando exitoso.
package store

import (
	"context"

	"github.com/jhoicas/zenith-pos/internal/domain/entity"
	"github.com/jhoicas/zenith-pos/internal/domain/state"
)

// Batch escritura atómica de un comando.
type Batch struct {
	// Records contiene solo las claves cuyo contenido cambió.
	Records map[state.Key][]byte
	// NewSales ventas creadas por el comando (para proyecciones del backend).
	NewSales []entity.Sale
}

// Backend almacena un registro JSON por clave.
type Backend interface {
	// LoadAll devuelve todos los registros guardados; vacío si el almacenamiento es nuevo.
	LoadAll(ctx context.Context) (map[state.Key][]byte, error)
	// SaveAll guarda todos los registros del lote en una sola operación atómica.
	SaveAll(ctx context.Context, b Batch) error
}
