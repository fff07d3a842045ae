package auth

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PGTokenStore keeps one row per issued token in the access_tokens table.
type PGTokenStore struct {
	pool *pgxpool.Pool
}

func NewPGTokenStore(pool *pgxpool.Pool) *PGTokenStore {
	return &PGTokenStore{pool: pool}
}

func (s *PGTokenStore) Insert(ctx context.Context, jti string, userID int64, expiresAt time.Time) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO access_tokens (jti, user_id, expires_at) VALUES ($1, $2, $3)`,
		jti, userID, expiresAt)
	return err
}

func (s *PGTokenStore) IsLive(ctx context.Context, jti string) (bool, error) {
	var live bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM access_tokens WHERE jti = $1 AND expires_at > now())`,
		jti).Scan(&live)
	return live, err
}

func (s *PGTokenStore) Revoke(ctx context.Context, jti string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM access_tokens WHERE jti = $1`, jti)
	return err
}

// PurgeExpired removes rows for tokens that are past their expiry. Run it
// periodically; expired tokens are already rejected by the signature check.
func (s *PGTokenStore) PurgeExpired(ctx context.Context) (int64, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM access_tokens WHERE expires_at <= now()`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
