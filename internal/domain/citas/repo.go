package citas

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("registro no encontrado")

type CitaRepository interface {
	List(ctx context.Context) ([]*Cita, error)
	GetByID(ctx context.Context, id int64) (*Cita, error)
	Create(ctx context.Context, cita *Cita) error
	Update(ctx context.Context, cita *Cita) error
	Delete(ctx context.Context, id int64) error
}

type ConsultaMedicaRepository interface {
	List(ctx context.Context) ([]*ConsultaMedica, error)
	GetByID(ctx context.Context, id int64) (*ConsultaMedica, error)
	Create(ctx context.Context, con *ConsultaMedica) error
	Update(ctx context.Context, con *ConsultaMedica) error
	Delete(ctx context.Context, id int64) error
}
