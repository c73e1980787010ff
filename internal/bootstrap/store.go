// Package bootstrap abre el almacenamiento configurado y carga el estado.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/jhoicas/zenith-pos/internal/application/auth"
	"github.com/jhoicas/zenith-pos/internal/application/ports"
	"github.com/jhoicas/zenith-pos/internal/domain/state"
	"github.com/jhoicas/zenith-pos/internal/infrastructure/memory"
	"github.com/jhoicas/zenith-pos/internal/infrastructure/postgres"
	"github.com/jhoicas/zenith-pos/internal/infrastructure/redis"
	"github.com/jhoicas/zenith-pos/internal/infrastructure/store"
	"github.com/jhoicas/zenith-pos/pkg/config"
	"github.com/jhoicas/zenith-pos/pkg/logger"
)

// Store estado abierto sobre el backend elegido. Journal es nil salvo con Postgres.
type Store struct {
	Runner  *store.Runner
	Journal ports.SalesJournal
	close   func()
}

// Close libera las conexiones del backend.
func (s *Store) Close() {
	if s.close != nil {
		s.close()
	}
}

// OpenStore conecta el driver configurado y carga el estado. Si el almacenamiento está
// vacío se siembra la sucursal inicial y el usuario admin.
func OpenStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Store, error) {
	hash, err := auth.HashPassword(cfg.Seed.AdminPassword)
	if err != nil {
		return nil, fmt.Errorf("hash admin: %w", err)
	}
	seed := state.Seed(cfg.Seed.BranchName, hash)

	out := &Store{}
	var backend store.Backend
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB, cfg.App.Name)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		rs, err := postgres.NewRecordStore(pool, cfg.DB.CompressThreshold)
		if err != nil {
			pool.Close()
			return nil, err
		}
		if err := rs.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, err
		}
		backend, out.Journal, out.close = rs, rs, pool.Close
	case config.DriverRedis:
		rs := redis.NewRecordStore(cfg.Redis)
		if err := rs.Ping(ctx); err != nil {
			_ = rs.Close()
			return nil, fmt.Errorf("conexión a Redis: %w", err)
		}
		backend, out.close = rs, func() { _ = rs.Close() }
	default:
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
		backend = memory.NewRecordStore()
	}

	runner, err := store.Open(ctx, backend, seed, log.Component("store"))
	if err != nil {
		out.Close()
		return nil, err
	}
	out.Runner = runner
	log.Info().Str("driver", cfg.Store.Driver).Msg("estado cargado")
	return out, nil
}
