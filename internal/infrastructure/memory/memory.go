// Package memory implementa un backend de registros en memoria (desarrollo y tests).
package memory

import (
	"context"
	"maps"
	"sync"

	"github.com/jhoicas/zenith-pos/internal/domain/state"
	"github.com/jhoicas/zenith-pos/internal/infrastructure/store"
)

var _ store.Backend = (*RecordStore)(nil)

// RecordStore guarda copias de los registros en un mapa.
type RecordStore struct {
	mu      sync.Mutex
	records map[state.Key][]byte
	saves   int
	failErr error
}

// NewRecordStore crea un almacenamiento vacío.
func NewRecordStore() *RecordStore {
	return &RecordStore{records: make(map[state.Key][]byte)}
}

// LoadAll implementa store.Backend.
func (s *RecordStore) LoadAll(_ context.Context) (map[state.Key][]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return maps.Clone(s.records), nil
}

// SaveAll implementa store.Backend. Con FailWith activo no guarda nada.
func (s *RecordStore) SaveAll(_ context.Context, b store.Batch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failErr != nil {
		return s.failErr
	}
	for k, v := range b.Records {
		s.records[k] = append([]byte(nil), v...)
	}
	s.saves++
	return nil
}

// FailWith hace que los siguientes SaveAll devuelvan err (nil restablece).
func (s *RecordStore) FailWith(err error) {
	s.mu.Lock()
	s.failErr = err
	s.mu.Unlock()
}

// Record devuelve el registro guardado bajo k.
func (s *RecordStore) Record(k state.Key) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.records[k]
	return v, ok
}

// Saves cantidad de lotes guardados.
func (s *RecordStore) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}
