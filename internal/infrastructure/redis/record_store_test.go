package redis

import (
	"context"
	"os"
	"testing"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/zenith-pos/internal/domain/state"
	"github.com/jhoicas/zenith-pos/internal/infrastructure/store"
)

func TestKey_UsaPrefijo(t *testing.T) {
	s := NewRecordStoreWithClient(nil, "zenith:")
	assert.Equal(t, "zenith:inventoryStock", s.key(state.KeyStock))
}

// Requiere ZENITH_TEST_REDIS_ADDR.
func TestRecordStore_Integracion(t *testing.T) {
	addr := os.Getenv("ZENITH_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("ZENITH_TEST_REDIS_ADDR no definido")
	}
	ctx := context.Background()
	s := NewRecordStoreWithClient(goredis.NewClient(&goredis.Options{Addr: addr}), "zenith-test:")
	defer s.Close()
	require.NoError(t, s.Ping(ctx))

	enc, err := state.Encode(state.Seed("Central", "hash"))
	require.NoError(t, err)
	require.NoError(t, s.SaveAll(ctx, store.Batch{Records: enc}))

	loaded, err := s.LoadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, loaded, len(state.Keys()))
	assert.JSONEq(t, string(enc[state.KeyRoles]), string(loaded[state.KeyRoles]))
}
