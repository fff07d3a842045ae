package laboratorio

import (
	"time"

	"github.com/epsalud/eps-api/internal/platform/validation"
)

const (
	EstadoPendiente = "pendiente"
	EstadoRealizado = "realizado"
	EstadoEntregado = "entregado"
)

type Laboratorio struct {
	ID        int64     `json:"id"`
	Nombre    string    `json:"nombre"`
	Direccion *string   `json:"direccion"`
	Telefono  *string   `json:"telefono"`
	CiudadID  *int64    `json:"ciudad_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ExamenMedico struct {
	ID            int64     `json:"id"`
	LaboratorioID int64     `json:"laboratorio_id"`
	Nombre        string    `json:"nombre"`
	Descripcion   *string   `json:"descripcion"`
	Precio        float64   `json:"precio"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// OrdenExamen tracks a lab order from a consulta through its delivery.
type OrdenExamen struct {
	ID               int64     `json:"id"`
	ConsultaMedicaID int64     `json:"consulta_medica_id"`
	ExamenMedicoID   int64     `json:"examen_medico_id"`
	LaboratorioID    int64     `json:"laboratorio_id"`
	FechaOrden       string    `json:"fecha_orden"`
	Estado           string    `json:"estado"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
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

func applyLaboratorio(l *Laboratorio, p map[string]interface{}) {
	if v, ok := validation.Str(p, "nombre"); ok {
		l.Nombre = v
	}
	setOptStr(&l.Direccion, p, "direccion")
	setOptStr(&l.Telefono, p, "telefono")
	if validation.Has(p, "ciudad_id") {
		if validation.IsNull(p, "ciudad_id") {
			l.CiudadID = nil
		} else if v, ok := validation.Int64(p, "ciudad_id"); ok {
			l.CiudadID = &v
		}
	}
}

func applyExamen(e *ExamenMedico, p map[string]interface{}) {
	if v, ok := validation.Int64(p, "laboratorio_id"); ok {
		e.LaboratorioID = v
	}
	if v, ok := validation.Str(p, "nombre"); ok {
		e.Nombre = v
	}
	setOptStr(&e.Descripcion, p, "descripcion")
	if v, ok := validation.Float64(p, "precio"); ok {
		e.Precio = v
	}
}

func applyOrden(o *OrdenExamen, p map[string]interface{}) {
	if v, ok := validation.Int64(p, "consulta_medica_id"); ok {
		o.ConsultaMedicaID = v
	}
	if v, ok := validation.Int64(p, "examen_medico_id"); ok {
		o.ExamenMedicoID = v
	}
	if v, ok := validation.Int64(p, "laboratorio_id"); ok {
		o.LaboratorioID = v
	}
	if v, ok := validation.Str(p, "fecha_orden"); ok {
		o.FechaOrden = v
	}
	if v, ok := validation.Str(p, "estado"); ok {
		o.Estado = v
	}
}
