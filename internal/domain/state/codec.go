package state

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
)

func (s *State) fields() map[Key]any {
	return map[Key]any{
		KeyProducts:          &s.Products,
		KeyStock:             &s.Stock,
		KeySales:             &s.Sales,
		KeyPurchases:         &s.Purchases,
		KeyCustomers:         &s.Customers,
		KeySuppliers:         &s.Suppliers,
		KeyUsers:             &s.Users,
		KeyRoles:             &s.Roles,
		KeyBranches:          &s.Branches,
		KeySettings:          &s.Settings,
		KeyAuditLog:          &s.AuditLog,
		KeyExpenses:          &s.Expenses,
		KeyExpenseCategories: &s.ExpenseCategories,
		KeyProductCategories: &s.ProductCategories,
		KeyActiveSessions:    &s.ActiveSessions,
		KeySessionHistory:    &s.SessionHistory,
		KeyDismissedAlerts:   &s.DismissedAlerts,
	}
}

// Encode serializa cada colección como JSON bajo su clave.
func Encode(s *State) (map[Key][]byte, error) {
	out := make(map[Key][]byte, len(Keys()))
	for k, v := range s.fields() {
		b, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("codificar %s: %w", k, err)
		}
		if bytes.Equal(b, []byte("null")) {
			b = []byte("[]")
		}
		out[k] = b
	}
	return out, nil
}

// Decode reconstruye el estado desde los registros persistidos. Las claves ausentes
// toman el valor de seed (puede ser nil). La configuración se decodifica sobre la de
// seed, así los campos nuevos conservan su valor por defecto. Aplica las migraciones
// de datos heredados.
func Decode(records map[Key][]byte, seed *State) (*State, error) {
	s := &State{}
	if seed != nil {
		s = seed.Clone()
	}
	for k, dst := range s.fields() {
		raw, ok := records[k]
		if !ok || len(raw) == 0 {
			continue
		}
		if k != KeySettings {
			// json reutiliza los elementos del slice destino; se parte de cero.
			reflect.ValueOf(dst).Elem().SetZero()
		}
		if err := json.Unmarshal(raw, dst); err != nil {
			return nil, fmt.Errorf("decodificar %s: %w", k, err)
		}
	}
	migrateLegacy(s)
	return s, nil
}

// Changed devuelve las claves cuyo contenido difiere entre dos codificaciones.
func Changed(prev, next map[Key][]byte) []Key {
	var keys []Key
	for _, k := range Keys() {
		if !bytes.Equal(prev[k], next[k]) {
			keys = append(keys, k)
		}
	}
	return keys
}

// migrateLegacy convierte los datos con la forma antigua:
//   - usuarios con rol por nombre: se resuelve al ID y se asigna en todas las sucursales;
//   - contador correlativo inválido: vuelve a 1.
func migrateLegacy(s *State) {
	for i := range s.Users {
		u := &s.Users[i]
		if u.LegacyRole == "" || len(u.Assignments) > 0 {
			continue
		}
		role, ok := s.RoleByName(u.LegacyRole)
		if !ok {
			continue
		}
		for _, b := range s.Branches {
			u.Assignments = append(u.Assignments, entityAssignment(b.ID, role.ID))
		}
		u.LegacyRole = ""
	}
	if s.Settings.CorrelativeNextNumber < 1 {
		s.Settings.CorrelativeNextNumber = 1
	}
}
