package ports

import (
	"context"

	"github.com/jhoicas/zenith-pos/internal/domain/state"
)

// StateRunner es el dueño del estado de la aplicación. Toda escritura pasa por
// Dispatch, que aplica el comando y persiste las colecciones modificadas en una sola
// operación atómica; si algo falla el estado vigente no cambia.
type StateRunner interface {
	// Snapshot devuelve el estado vigente. El llamador no debe modificarlo.
	Snapshot(ctx context.Context) (*state.State, error)
	// Dispatch aplica cmd y devuelve el nuevo estado ya persistido.
	Dispatch(ctx context.Context, cmd state.Command) (*state.State, error)
}
