package aseguramiento

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("registro no encontrado")

type AseguradoraRepository interface {
	List(ctx context.Context) ([]*Aseguradora, error)
	GetByID(ctx context.Context, id int64) (*Aseguradora, error)
	Create(ctx context.Context, a *Aseguradora) error
	Update(ctx context.Context, a *Aseguradora) error
	Delete(ctx context.Context, id int64) error
}

type AfiliacionRepository interface {
	List(ctx context.Context) ([]*Afiliacion, error)
	GetByID(ctx context.Context, id int64) (*Afiliacion, error)
	Create(ctx context.Context, af *Afiliacion) error
	Update(ctx context.Context, af *Afiliacion) error
	Delete(ctx context.Context, id int64) error
}
