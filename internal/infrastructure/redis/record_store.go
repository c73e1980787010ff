// Package redis implementa el backend de registros sobre Redis: una clave por colección.
package redis

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/zenith-pos/internal/domain/state"
	"github.com/jhoicas/zenith-pos/internal/infrastructure/store"
	"github.com/jhoicas/zenith-pos/pkg/config"
)

var _ store.Backend = (*RecordStore)(nil)

// RecordStore guarda cada registro bajo {prefix}{clave}. Los lotes se escriben con
// MULTI/EXEC, así un lector nunca ve un comando a medias.
type RecordStore struct {
	client *goredis.Client
	prefix string
}

// NewRecordStore crea el cliente con la configuración indicada.
func NewRecordStore(cfg config.RedisConfig) *RecordStore {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return NewRecordStoreWithClient(client, cfg.Prefix)
}

// NewRecordStoreWithClient usa un cliente existente.
func NewRecordStoreWithClient(client *goredis.Client, prefix string) *RecordStore {
	return &RecordStore{client: client, prefix: prefix}
}

// Ping verifica la conexión.
func (s *RecordStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close cierra el cliente.
func (s *RecordStore) Close() error {
	return s.client.Close()
}

func (s *RecordStore) key(k state.Key) string { return s.prefix + string(k) }

// LoadAll implementa store.Backend.
func (s *RecordStore) LoadAll(ctx context.Context) (map[state.Key][]byte, error) {
	keys := state.Keys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = s.key(k)
	}
	vals, err := s.client.MGet(ctx, names...).Result()
	if err != nil {
		return nil, fmt.Errorf("redis mget: %w", err)
	}
	out := make(map[state.Key][]byte, len(keys))
	for i, v := range vals {
		if v == nil {
			continue
		}
		str, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("redis: valor inesperado en %s", names[i])
		}
		out[keys[i]] = []byte(str)
	}
	return out, nil
}

// SaveAll implementa store.Backend.
func (s *RecordStore) SaveAll(ctx context.Context, b store.Batch) error {
	if len(b.Records) == 0 {
		return nil
	}
	_, err := s.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		for k, v := range b.Records {
			pipe.Set(ctx, s.key(k), v, 0)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis multi/exec: %w", err)
	}
	return nil
}
