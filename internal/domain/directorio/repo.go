package directorio

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("registro no encontrado")

type MedicoRepository interface {
	List(ctx context.Context) ([]*Medico, error)
	GetByID(ctx context.Context, id int64) (*Medico, error)
	Create(ctx context.Context, m *Medico) error
	Update(ctx context.Context, m *Medico) error
	Delete(ctx context.Context, id int64) error
}

type ConsultorioRepository interface {
	List(ctx context.Context) ([]*Consultorio, error)
	GetByID(ctx context.Context, id int64) (*Consultorio, error)
	Create(ctx context.Context, con *Consultorio) error
	Update(ctx context.Context, con *Consultorio) error
	Delete(ctx context.Context, id int64) error
}

type HorarioRepository interface {
	List(ctx context.Context) ([]*Horario, error)
	GetByID(ctx context.Context, id int64) (*Horario, error)
	Create(ctx context.Context, hor *Horario) error
	Update(ctx context.Context, hor *Horario) error
	Delete(ctx context.Context, id int64) error
}
