package farmacia

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("registro no encontrado")

type MedicamentoRepository interface {
	List(ctx context.Context) ([]*Medicamento, error)
	GetByID(ctx context.Context, id int64) (*Medicamento, error)
	Create(ctx context.Context, med *Medicamento) error
	Update(ctx context.Context, med *Medicamento) error
	Delete(ctx context.Context, id int64) error
}

type RecetaMedicaRepository interface {
	List(ctx context.Context) ([]*RecetaMedica, error)
	GetByID(ctx context.Context, id int64) (*RecetaMedica, error)
	Create(ctx context.Context, rec *RecetaMedica) error
	Update(ctx context.Context, rec *RecetaMedica) error
	Delete(ctx context.Context, id int64) error
}
