package facturacion

import (
	"time"

	"github.com/epsalud/eps-api/internal/platform/validation"
)

const (
	EstadoPendiente = "pendiente"
	EstadoPagada    = "pagada"
	EstadoAnulada   = "anulada"
)

type Factura struct {
	ID           int64     `json:"id"`
	PacienteID   int64     `json:"paciente_id"`
	CitaID       int64     `json:"cita_id"`
	MontoTotal   float64   `json:"monto_total"`
	FechaEmision string    `json:"fecha_emision"`
	Estado       string    `json:"estado"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Pago struct {
	ID         int64     `json:"id"`
	FacturaID  int64     `json:"factura_id"`
	Monto      float64   `json:"monto"`
	FechaPago  string    `json:"fecha_pago"`
	MetodoPago string    `json:"metodo_pago"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func applyFactura(f *Factura, p map[string]interface{}) {
	if v, ok := validation.Int64(p, "paciente_id"); ok {
		f.PacienteID = v
	}
	if v, ok := validation.Int64(p, "cita_id"); ok {
		f.CitaID = v
	}
	if v, ok := validation.Float64(p, "monto_total"); ok {
		f.MontoTotal = v
	}
	if v, ok := validation.Str(p, "fecha_emision"); ok {
		f.FechaEmision = v
	}
	if v, ok := validation.Str(p, "estado"); ok {
		f.Estado = v
	}
}

func applyPago(pg *Pago, p map[string]interface{}) {
	if v, ok := validation.Int64(p, "factura_id"); ok {
		pg.FacturaID = v
	}
	if v, ok := validation.Float64(p, "monto"); ok {
		pg.Monto = v
	}
	if v, ok := validation.Str(p, "fecha_pago"); ok {
		pg.FechaPago = v
	}
	if v, ok := validation.Str(p, "metodo_pago"); ok {
		pg.MetodoPago = v
	}
}
