package laboratorio

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("registro no encontrado")

type LaboratorioRepository interface {
	List(ctx context.Context) ([]*Laboratorio, error)
	GetByID(ctx context.Context, id int64) (*Laboratorio, error)
	Create(ctx context.Context, l *Laboratorio) error
	Update(ctx context.Context, l *Laboratorio) error
	Delete(ctx context.Context, id int64) error
}

type ExamenMedicoRepository interface {
	List(ctx context.Context) ([]*ExamenMedico, error)
	GetByID(ctx context.Context, id int64) (*ExamenMedico, error)
	Create(ctx context.Context, e *ExamenMedico) error
	Update(ctx context.Context, e *ExamenMedico) error
	Delete(ctx context.Context, id int64) error
}

type OrdenExamenRepository interface {
	List(ctx context.Context) ([]*OrdenExamen, error)
	GetByID(ctx context.Context, id int64) (*OrdenExamen, error)
	Create(ctx context.Context, o *OrdenExamen) error
	Update(ctx context.Context, o *OrdenExamen) error
	Delete(ctx context.Context, id int64) error
}
