package auth

import (
	"context"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/zenith-pos/internal/application/dto"
	"github.com/jhoicas/zenith-pos/internal/application/ports"
	"github.com/jhoicas/zenith-pos/internal/domain"
	"github.com/jhoicas/zenith-pos/internal/domain/access"
	"github.com/jhoicas/zenith-pos/internal/domain/entity"
	"github.com/jhoicas/zenith-pos/internal/domain/state"
	"github.com/jhoicas/zenith-pos/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase inicio de sesión y resolución de la sesión de cada petición.
type AuthUseCase struct {
	runner ports.StateRunner
	jwtCfg JWTConfig
	now    func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(runner ports.StateRunner, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{runner: runner, jwtCfg: jwtCfg, now: time.Now}
}

// HashPassword genera el hash bcrypt de una contraseña.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("contraseña vacía: %w", domain.ErrInvalidInput)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Login verifica email/password, elige la sucursal y genera el JWT.
// Email desconocido y contraseña incorrecta devuelven el mismo ErrUnauthorized.
// Una contraseña heredada (base64) válida se re-hashea con bcrypt en este momento.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	st, err := uc.runner.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	user, ok := st.UserByEmail(in.Email)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	switch {
	case user.PasswordHash != "":
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
			return nil, domain.ErrUnauthorized
		}
	case user.LegacyPassword != "":
		if !legacyMatches(user.LegacyPassword, in.Password) {
			return nil, domain.ErrUnauthorized
		}
		hash, err := HashPassword(in.Password)
		if err != nil {
			return nil, err
		}
		if st, err = uc.runner.Dispatch(ctx, &rehashCommand{UserID: user.ID, Hash: hash}); err != nil {
			return nil, err
		}
	default:
		return nil, domain.ErrUnauthorized
	}

	branchID := in.BranchID
	if branchID == "" && len(user.Assignments) > 0 {
		branchID = user.Assignments[0].BranchID
	}
	if user.RoleIDFor(branchID) == "" {
		return nil, fmt.Errorf("sin rol en la sucursal %q: %w", branchID, domain.ErrForbidden)
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, branchID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	views := access.AccessibleViews(st, user, branchID)
	view, _ := access.ResolveView(st, user, branchID, entity.ViewDashboard)
	return &dto.LoginResponse{
		Token:    token,
		User:     ToUserResponse(user),
		BranchID: branchID,
		Views:    views,
		View:     view,
	}, nil
}

// Session resuelve el actor de una petición: el usuario debe existir y tener un rol
// en la sucursal pedida.
func (uc *AuthUseCase) Session(ctx context.Context, userID, branchID string) (ports.Actor, error) {
	st, err := uc.runner.Snapshot(ctx)
	if err != nil {
		return ports.Actor{}, err
	}
	i := st.UserIndex(userID)
	if i < 0 {
		return ports.Actor{}, domain.ErrUnauthorized
	}
	u := st.Users[i]
	if st.BranchIndex(branchID) < 0 || u.RoleIDFor(branchID) == "" {
		return ports.Actor{}, fmt.Errorf("sucursal %q: %w", branchID, domain.ErrForbidden)
	}
	return ports.Actor{UserID: u.ID, Name: u.Name, BranchID: branchID}, nil
}

// legacyMatches compara la contraseña con el valor base64 heredado.
func legacyMatches(encoded, password string) bool {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(raw, []byte(password)) == 1
}

// rehashCommand reemplaza la contraseña heredada por su hash bcrypt.
type rehashCommand struct {
	UserID string
	Hash   string
}

func (c *rehashCommand) Name() string { return "auth.rehash" }

func (c *rehashCommand) Apply(st *state.State) error {
	i := st.UserIndex(c.UserID)
	if i < 0 {
		return domain.ErrUserNotFound
	}
	st.Users[i].PasswordHash = c.Hash
	st.Users[i].LegacyPassword = ""
	return nil
}

// ToUserResponse proyecta un usuario sin credenciales.
func ToUserResponse(u entity.User) dto.UserResponse {
	as := u.Assignments
	if as == nil {
		as = []entity.BranchAssignment{}
	}
	return dto.UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, Assignments: as}
}
