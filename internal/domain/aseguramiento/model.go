package aseguramiento

import (
	"time"

	"github.com/epsalud/eps-api/internal/platform/validation"
)

const (
	EstadoActivo   = "activo"
	EstadoInactivo = "inactivo"
)

type Aseguradora struct {
	ID        int64     `json:"id"`
	Nombre    string    `json:"nombre"`
	NIT       string    `json:"nit"`
	Direccion *string   `json:"direccion"`
	Telefono  *string   `json:"telefono"`
	Email     *string   `json:"email"`
	CiudadID  *int64    `json:"ciudad_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Afiliacion is the time-bounded link between a paciente and an aseguradora.
type Afiliacion struct {
	ID            int64     `json:"id"`
	PacienteID    int64     `json:"paciente_id"`
	AseguradoraID int64     `json:"aseguradora_id"`
	FechaInicio   string    `json:"fecha_inicio"`
	FechaFin      *string   `json:"fecha_fin"`
	Estado        string    `json:"estado"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func setOptStr(dst **string, p map[string]interface{}, field string) {
	if !validation.Has(p, field) {
		return
	}
	if validation.IsNull(p, field) {
		*dst = nil
		return
	}
	if v, ok := validation.Str(p, field); ok {
		*dst = &v
	}
}

func applyAseguradora(a *Aseguradora, p map[string]interface{}) {
	if v, ok := validation.Str(p, "nombre"); ok {
		a.Nombre = v
	}
	if v, ok := validation.Str(p, "nit"); ok {
		a.NIT = v
	}
	setOptStr(&a.Direccion, p, "direccion")
	setOptStr(&a.Telefono, p, "telefono")
	setOptStr(&a.Email, p, "email")
	if validation.Has(p, "ciudad_id") {
		if validation.IsNull(p, "ciudad_id") {
			a.CiudadID = nil
		} else if v, ok := validation.Int64(p, "ciudad_id"); ok {
			a.CiudadID = &v
		}
	}
}

func applyAfiliacion(af *Afiliacion, p map[string]interface{}) {
	if v, ok := validation.Int64(p, "paciente_id"); ok {
		af.PacienteID = v
	}
	if v, ok := validation.Int64(p, "aseguradora_id"); ok {
		af.AseguradoraID = v
	}
	if v, ok := validation.Str(p, "fecha_inicio"); ok {
		af.FechaInicio = v
	}
	setOptStr(&af.FechaFin, p, "fecha_fin")
	if v, ok := validation.Str(p, "estado"); ok {
		af.Estado = v
	}
}
