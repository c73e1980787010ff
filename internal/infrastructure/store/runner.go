package store

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jhoicas/zenith-pos/internal/application/ports"
	"github.com/jhoicas/zenith-pos/internal/domain/entity"
	"github.com/jhoicas/zenith-pos/internal/domain/state"
	"github.com/jhoicas/zenith-pos/pkg/logger"
)

var _ ports.StateRunner = (*Runner)(nil)

// Runner serializa las escrituras y publica el estado vigente para lecturas sin bloqueo.
type Runner struct {
	backend Backend
	log     *logger.Logger

	mu      sync.Mutex // escritores
	cur     atomic.Pointer[state.State]
	encoded map[state.Key][]byte
}

// Open carga el estado desde el backend. Si está vacío persiste seed completo;
// si faltan claves o hubo migraciones, persiste solo lo que cambió.
func Open(ctx context.Context, backend Backend, seed *state.State, log *logger.Logger) (*Runner, error) {
	records, err := backend.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("store: cargar registros: %w", err)
	}
	st, err := state.Decode(records, seed)
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}
	enc, err := state.Encode(st)
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}
	if changed := state.Changed(records, enc); len(changed) > 0 {
		if err := backend.SaveAll(ctx, Batch{Records: pick(enc, changed)}); err != nil {
			return nil, fmt.Errorf("store: inicializar registros: %w", err)
		}
		log.Info().Int("keys", len(changed)).Bool("fresh", len(records) == 0).Msg("store: registros inicializados")
	}
	r := &Runner{backend: backend, log: log, encoded: enc}
	r.cur.Store(st)
	return r, nil
}

// Snapshot devuelve el estado vigente.
func (r *Runner) Snapshot(_ context.Context) (*state.State, error) {
	return r.cur.Load(), nil
}

// Dispatch aplica el comando y persiste las claves modificadas. Ante cualquier error
// el estado vigente no cambia.
func (r *Runner) Dispatch(ctx context.Context, cmd state.Command) (*state.State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	start := time.Now()
	prev := r.cur.Load()
	next, err := state.Apply(prev, cmd)
	if err != nil {
		return nil, err
	}
	enc, err := state.Encode(next)
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}
	changed := state.Changed(r.encoded, enc)
	if len(changed) > 0 {
		batch := Batch{Records: pick(enc, changed), NewSales: newSales(prev, next)}
		if err := r.backend.SaveAll(ctx, batch); err != nil {
			r.log.Warn().Err(err).Str("command", cmd.Name()).Msg("store: persistencia fallida")
			return nil, fmt.Errorf("store: guardar %s: %w", cmd.Name(), err)
		}
	}
	r.encoded = enc
	r.cur.Store(next)
	r.log.Debug().
		Str("command", cmd.Name()).
		Int("keys", len(changed)).
		Dur("duration", time.Since(start)).
		Msg("store: comando aplicado")
	return next, nil
}

func pick(enc map[state.Key][]byte, keys []state.Key) map[state.Key][]byte {
	out := make(map[state.Key][]byte, len(keys))
	for _, k := range keys {
		out[k] = enc[k]
	}
	return out
}

// Las ventas se agregan al inicio: las nuevas son el prefijo que excede al anterior.
func newSales(prev, next *state.State) []entity.Sale {
	n := len(next.Sales) - len(prev.Sales)
	if n <= 0 {
		return nil
	}
	return next.Sales[:n]
}
