package state

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/zenith-pos/internal/domain/entity"
)

// Command es una transición de estado. Apply recibe una copia privada del estado:
// si devuelve error la copia se descarta y nada cambia.
type Command interface {
	// Name identifica el comando en logs.
	Name() string
	Apply(st *State) error
}

// Apply es el reductor (estado, comando) -> nuevo estado. cur no se modifica.
func Apply(cur *State, cmd Command) (*State, error) {
	next := cur.Clone()
	if err := cmd.Apply(next); err != nil {
		return nil, err
	}
	return next, nil
}

// Log agrega una entrada de auditoría al inicio del historial.
func (s *State) Log(user, action string, at time.Time, ref *entity.AuditRef) {
	entry := entity.AuditLog{
		ID:        uuid.NewString(),
		User:      user,
		Action:    action,
		Timestamp: at,
		Details:   ref,
	}
	s.AuditLog = append([]entity.AuditLog{entry}, s.AuditLog...)
}

// Ref construye una referencia de auditoría.
func Ref(kind entity.AuditKind, id string) *entity.AuditRef {
	return &entity.AuditRef{Type: kind, ID: id}
}
