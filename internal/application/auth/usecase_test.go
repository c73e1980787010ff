package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/zenith-pos/internal/application/auth"
	"github.com/jhoicas/zenith-pos/internal/application/dto"
	"github.com/jhoicas/zenith-pos/internal/domain"
	"github.com/jhoicas/zenith-pos/internal/domain/entity"
	"github.com/jhoicas/zenith-pos/internal/domain/state"
	"github.com/jhoicas/zenith-pos/internal/infrastructure/memory"
	"github.com/jhoicas/zenith-pos/internal/infrastructure/store"
	"github.com/jhoicas/zenith-pos/pkg/jwt"
	"github.com/jhoicas/zenith-pos/pkg/logger"
)

var jwtCfg = auth.JWTConfig{Secret: "secreto-de-prueba", ExpMinutes: 5, Issuer: "zenith-pos"}

func setup(t *testing.T) (*auth.AuthUseCase, *store.Runner) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)
	seed := state.Seed("Central", string(hash))
	seed.Users = append(seed.Users, entity.User{
		ID: "u-legacy", Name: "Vero", Email: "vero@zenith.com",
		LegacyPassword: "MTIzNA==", // "1234"
		Assignments:    []entity.BranchAssignment{{BranchID: state.SeedBranchID, RoleID: entity.SellerRoleID}},
	})
	r, err := store.Open(context.Background(), memory.NewRecordStore(), seed, logger.Nop())
	require.NoError(t, err)
	return auth.NewAuthUseCase(r, jwtCfg), r
}

// ─── Login ───────────────────────────────────────────────────────────────────

func TestLogin_Exitoso(t *testing.T) {
	uc, _ := setup(t)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ADMIN@zenith.com", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, state.SeedBranchID, out.BranchID)
	assert.Equal(t, entity.ViewDashboard, out.View)
	assert.Len(t, out.Views, len(entity.AllViews()))

	userID, branchID, err := jwt.Parse(jwtCfg.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, state.SeedAdminUserID, userID)
	assert.Equal(t, state.SeedBranchID, branchID)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc, _ := setup(t)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "admin@zenith.com", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@zenith.com", Password: "admin123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_SucursalSinRol(t *testing.T) {
	uc, _ := setup(t)

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email: "admin@zenith.com", Password: "admin123", BranchID: "branch-x",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestLogin_MigraContraseñaHeredada(t *testing.T) {
	uc, r := setup(t)
	ctx := context.Background()

	_, err := uc.Login(ctx, dto.LoginRequest{Email: "vero@zenith.com", Password: "9999"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	out, err := uc.Login(ctx, dto.LoginRequest{Email: "vero@zenith.com", Password: "1234"})
	require.NoError(t, err)
	assert.Contains(t, out.Views, entity.ViewPOS)

	st, err := r.Snapshot(ctx)
	require.NoError(t, err)
	u := st.Users[st.UserIndex("u-legacy")]
	assert.Empty(t, u.LegacyPassword)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("1234")))

	// El segundo ingreso ya usa bcrypt.
	_, err = uc.Login(ctx, dto.LoginRequest{Email: "vero@zenith.com", Password: "1234"})
	assert.NoError(t, err)
}

// ─── Sesión ──────────────────────────────────────────────────────────────────

func TestSession(t *testing.T) {
	uc, _ := setup(t)
	ctx := context.Background()

	actor, err := uc.Session(ctx, "u-legacy", state.SeedBranchID)
	require.NoError(t, err)
	assert.Equal(t, "Vero", actor.Name)

	_, err = uc.Session(ctx, "u-legacy", "branch-x")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.Session(ctx, "fantasma", state.SeedBranchID)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestHashPassword(t *testing.T) {
	_, err := auth.HashPassword("")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	h, err := auth.HashPassword("s3creto")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(h), []byte("s3creto")))
}
