package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims carried inside an access token. The token id (jti) doubles as the
// revocation handle: logout deletes the matching row and the token dies even
// though its signature stays valid until expiry.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// TokenStore persists issued token ids so that individual tokens can be
// revoked without invalidating the user's other sessions.
type TokenStore interface {
	Insert(ctx context.Context, jti string, userID int64, expiresAt time.Time) error
	IsLive(ctx context.Context, jti string) (bool, error)
	Revoke(ctx context.Context, jti string) error
	PurgeExpired(ctx context.Context) (int64, error)
}

// Issuer mints and verifies HMAC-signed access tokens.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	store  TokenStore
}

func NewIssuer(secret []byte, ttl time.Duration, store TokenStore) *Issuer {
	return &Issuer{secret: secret, ttl: ttl, store: store}
}

// Issue creates a signed token for the user and records its jti in the store.
func (i *Issuer) Issue(ctx context.Context, userID int64, role string) (string, error) {
	now := time.Now()
	jti := uuid.NewString()
	expiresAt := now.Add(i.ttl)

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", userID),
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Role: role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	if err := i.store.Insert(ctx, jti, userID, expiresAt); err != nil {
		return "", fmt.Errorf("recording token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token string. The token must carry a valid
// signature, be unexpired, and its jti must still be live in the store.
func (i *Issuer) Verify(ctx context.Context, tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	live, err := i.store.IsLive(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("checking token: %w", err)
	}
	if !live {
		return nil, fmt.Errorf("token revoked")
	}
	return claims, nil
}

// Revoke invalidates the single token identified by its jti.
func (i *Issuer) Revoke(ctx context.Context, jti string) error {
	return i.store.Revoke(ctx, jti)
}
