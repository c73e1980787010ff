package state_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/zenith-pos/internal/domain"
	"github.com/jhoicas/zenith-pos/internal/domain/entity"
	"github.com/jhoicas/zenith-pos/internal/domain/state"
)

type renameBranch struct{ name string }

func (renameBranch) Name() string { return "test.rename" }

func (c renameBranch) Apply(st *state.State) error {
	st.Branches[0].Name = c.name
	if c.name == "" {
		return domain.ErrInvalidInput
	}
	return nil
}

// ─── Reductor ────────────────────────────────────────────────────────────────

func TestApply_NoModificaElEstadoActual(t *testing.T) {
	cur := state.Seed("Central", "")

	next, err := state.Apply(cur, renameBranch{name: "Norte"})
	require.NoError(t, err)
	assert.Equal(t, "Norte", next.Branches[0].Name)
	assert.Equal(t, "Central", cur.Branches[0].Name)
}

func TestApply_ErrorDescartaLaCopia(t *testing.T) {
	cur := state.Seed("Central", "")

	next, err := state.Apply(cur, renameBranch{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, next)
	assert.Equal(t, "Central", cur.Branches[0].Name)
}

func TestClone_CopiaSlicesAnidados(t *testing.T) {
	cur := state.Seed("Central", "")
	c := cur.Clone()
	c.Roles[1].Permissions[0] = entity.ViewReports
	c.Users[0].Assignments[0].RoleID = "otro"

	assert.Equal(t, entity.ViewDashboard, cur.Roles[1].Permissions[0])
	assert.Equal(t, entity.AdminRoleID, cur.Users[0].Assignments[0].RoleID)
}

// ─── Codec ───────────────────────────────────────────────────────────────────

func TestEncode_ColeccionesVaciasComoArreglo(t *testing.T) {
	rec, err := state.Encode(state.Seed("Central", ""))
	require.NoError(t, err)

	assert.Len(t, rec, len(state.Keys()))
	assert.JSONEq(t, `[]`, string(rec[state.KeySales]))
}

func TestDecode_ClavesAusentesTomanSemilla(t *testing.T) {
	seed := state.Seed("Central", "")
	rec := map[state.Key][]byte{
		state.KeyBranches: []byte(`[{"id":"b9","name":"Sur"}]`),
	}
	st, err := state.Decode(rec, seed)
	require.NoError(t, err)

	assert.Equal(t, "Sur", st.Branches[0].Name)
	assert.Len(t, st.Roles, 3)
	assert.Equal(t, "FAC-", st.Settings.DocumentPrefix)
}

func TestDecode_MigraRolPorNombre(t *testing.T) {
	users, _ := json.Marshal([]map[string]string{{
		"id": "u1", "name": "Vero", "email": "vero@zenith.com", "role": "Vendedor", "password": "MTIzNA==",
	}})
	rec := map[state.Key][]byte{
		state.KeyUsers:    users,
		state.KeyBranches: []byte(`[{"id":"b1","name":"A"},{"id":"b2","name":"B"}]`),
		state.KeySettings: []byte(`{"correlativeNextNumber":0}`),
	}
	st, err := state.Decode(rec, state.Seed("Central", ""))
	require.NoError(t, err)

	u := st.Users[0]
	assert.Empty(t, u.LegacyRole)
	assert.Equal(t, "MTIzNA==", u.LegacyPassword)
	assert.Equal(t, entity.SellerRoleID, u.RoleIDFor("b1"))
	assert.Equal(t, entity.SellerRoleID, u.RoleIDFor("b2"))
	assert.Equal(t, 1, st.Settings.CorrelativeNextNumber)
}

func TestDecode_JSONInvalido(t *testing.T) {
	_, err := state.Decode(map[state.Key][]byte{state.KeyProducts: []byte(`{`)}, nil)
	assert.Error(t, err)
}

func TestChanged_SoloClavesDistintas(t *testing.T) {
	cur := state.Seed("Central", "")
	next, err := state.Apply(cur, renameBranch{name: "Norte"})
	require.NoError(t, err)

	a, err := state.Encode(cur)
	require.NoError(t, err)
	b, err := state.Encode(next)
	require.NoError(t, err)
	assert.Equal(t, []state.Key{state.KeyBranches}, state.Changed(a, b))
}

// ─── Auditoría ───────────────────────────────────────────────────────────────

func TestLog_AgregaAlInicio(t *testing.T) {
	st := state.Seed("Central", "")
	at := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	st.Log("Admin", "primero", at, nil)
	st.Log("Admin", "segundo", at, state.Ref(entity.AuditProduct, "p1"))

	require.Len(t, st.AuditLog, 2)
	assert.Equal(t, "segundo", st.AuditLog[0].Action)
	assert.NotEqual(t, st.AuditLog[0].ID, st.AuditLog[1].ID)
}

func TestResolveAuditRef(t *testing.T) {
	st := state.Seed("Central", "hash")

	det, err := st.ResolveAuditRef(entity.AuditRef{Type: entity.AuditCustomer, ID: entity.WalkInCustomerID})
	require.NoError(t, err)
	assert.Equal(t, "Cliente General", det.(state.CustomerDetail).Customer.Name)

	det, err = st.ResolveAuditRef(entity.AuditRef{Type: entity.AuditUser, ID: state.SeedAdminUserID})
	require.NoError(t, err)
	assert.Equal(t, entity.AuditUser, det.Kind())

	_, err = st.ResolveAuditRef(entity.AuditRef{Type: entity.AuditSale, ID: "FAC-00001"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = st.ResolveAuditRef(entity.AuditRef{Type: "bodega", ID: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
