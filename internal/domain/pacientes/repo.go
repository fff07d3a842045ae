package pacientes

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("registro no encontrado")

type PacienteRepository interface {
	List(ctx context.Context) ([]*Paciente, error)
	GetByID(ctx context.Context, id int64) (*Paciente, error)
	Create(ctx context.Context, pac *Paciente) error
	Update(ctx context.Context, pac *Paciente) error
	Delete(ctx context.Context, id int64) error
}

type HistoriaClinicaRepository interface {
	List(ctx context.Context) ([]*HistoriaClinica, error)
	GetByID(ctx context.Context, id int64) (*HistoriaClinica, error)
	Create(ctx context.Context, his *HistoriaClinica) error
	Update(ctx context.Context, his *HistoriaClinica) error
	Delete(ctx context.Context, id int64) error
}
