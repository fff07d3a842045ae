package catalogo

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("registro no encontrado")

type CiudadRepository interface {
	List(ctx context.Context) ([]*Ciudad, error)
	GetByID(ctx context.Context, id int64) (*Ciudad, error)
	Create(ctx context.Context, ciudad *Ciudad) error
	Update(ctx context.Context, ciudad *Ciudad) error
	Delete(ctx context.Context, id int64) error
}

type EspecialidadRepository interface {
	List(ctx context.Context) ([]*Especialidad, error)
	GetByID(ctx context.Context, id int64) (*Especialidad, error)
	Create(ctx context.Context, esp *Especialidad) error
	Update(ctx context.Context, esp *Especialidad) error
	Delete(ctx context.Context, id int64) error
	// HasCitas reports whether any cita references the especialidad.
	HasCitas(ctx context.Context, id int64) (bool, error)
}
