package usuarios

import (
	"context"
	"errors"

	"github.com/epsalud/eps-api/internal/platform/auth"
	"github.com/epsalud/eps-api/internal/platform/validation"
)

// ErrCredenciales covers both unknown email and wrong password so the
// response never reveals which one failed.
var ErrCredenciales = errors.New("credenciales incorrectas")

var userRules = validation.Rules{
	"name":     {validation.Required(), validation.String(), validation.Max(255)},
	"email":    {validation.Required(), validation.Email(), validation.Max(255), validation.Unique("users", "email")},
	"password": {validation.Required(), validation.String(), validation.MinLen(8)},
}

type Service struct {
	repo   UserRepository
	issuer *auth.Issuer
	val    *validation.Engine
}

func NewService(repo UserRepository, issuer *auth.Issuer, val *validation.Engine) *Service {
	return &Service{repo: repo, issuer: issuer, val: val}
}

// Register creates a user with the given role. The public registration
// endpoint passes auth.RoleUser; the superadmin one passes auth.RoleAdmin.
func (s *Service) Register(ctx context.Context, payload map[string]interface{}, role string) (*User, error) {
	verrs, err := s.val.Validate(ctx, userRules, payload, validation.Create())
	if err != nil {
		return nil, err
	}
	if verrs != nil {
		return nil, verrs
	}
	u := &User{Role: role}
	if v, ok := validation.Str(payload, "name"); ok {
		u.Name = v
	}
	if v, ok := validation.Str(payload, "email"); ok {
		u.Email = v
	}
	password, _ := validation.Str(payload, "password")
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u.PasswordHash = hash
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login verifies the credentials and issues a bearer token.
func (s *Service) Login(ctx context.Context, email, password string) (*User, string, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, "", ErrCredenciales
		}
		return nil, "", err
	}
	if !auth.CheckPassword(u.PasswordHash, password) {
		return nil, "", ErrCredenciales
	}
	token, err := s.issuer.Issue(ctx, u.ID, u.Role)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Logout revokes the presented token only. Other sessions stay live.
func (s *Service) Logout(ctx context.Context, jti string) error {
	return s.issuer.Revoke(ctx, jti)
}
