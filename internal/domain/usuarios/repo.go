package usuarios

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("usuario no encontrado")

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, u *User) error
}
