package reportes

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("registro no encontrado")

type Repository interface {
	CitasPorPaciente(ctx context.Context, pacienteID int64) ([]*CitaConDetalle, error)
	HistorialPaciente(ctx context.Context, pacienteID int64) (*HistorialPaciente, error)
	RecetasPorConsulta(ctx context.Context, consultaID int64) ([]*RecetaConMedicamento, error)
	PagosPorPaciente(ctx context.Context, pacienteID int64) ([]*PagoConFactura, error)
	PacientesPorAseguradora(ctx context.Context, aseguradoraID int64) (*AseguradoraConPacientes, error)
}
