package citas

import (
	"time"

	"github.com/epsalud/eps-api/internal/platform/validation"
)

// Estado values a cita can hold. Plain attributes: no transition graph is
// enforced beyond membership in the set.
const (
	EstadoPendiente  = "pendiente"
	EstadoConfirmada = "confirmada"
	EstadoCancelada  = "cancelada"
	EstadoAtendida   = "atendida"
)

type Cita struct {
	ID             int64     `json:"id"`
	PacienteID     int64     `json:"paciente_id"`
	EspecialidadID int64     `json:"especialidad_id"`
	MedicoID       int64     `json:"medico_id"`
	ConsultorioID  int64     `json:"consultorio_id"`
	Fecha          string    `json:"fecha"`
	Hora           string    `json:"hora"`
	Estado         string    `json:"estado"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ConsultaMedica is the clinical record produced for a cita.
type ConsultaMedica struct {
	ID            int64     `json:"id"`
	CitaID        int64     `json:"cita_id"`
	Motivo        string    `json:"motivo"`
	Diagnostico   *string   `json:"diagnostico"`
	Tratamiento   *string   `json:"tratamiento"`
	FechaConsulta *string   `json:"fecha_consulta"`
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

func applyCita(cita *Cita, p map[string]interface{}) {
	if v, ok := validation.Int64(p, "paciente_id"); ok {
		cita.PacienteID = v
	}
	if v, ok := validation.Int64(p, "especialidad_id"); ok {
		cita.EspecialidadID = v
	}
	if v, ok := validation.Int64(p, "medico_id"); ok {
		cita.MedicoID = v
	}
	if v, ok := validation.Int64(p, "consultorio_id"); ok {
		cita.ConsultorioID = v
	}
	if v, ok := validation.Str(p, "fecha"); ok {
		cita.Fecha = v
	}
	if v, ok := validation.Str(p, "hora"); ok {
		cita.Hora = v
	}
	if v, ok := validation.Str(p, "estado"); ok {
		cita.Estado = v
	}
}

func applyConsulta(con *ConsultaMedica, p map[string]interface{}) {
	if v, ok := validation.Int64(p, "cita_id"); ok {
		con.CitaID = v
	}
	if v, ok := validation.Str(p, "motivo"); ok {
		con.Motivo = v
	}
	setOptStr(&con.Diagnostico, p, "diagnostico")
	setOptStr(&con.Tratamiento, p, "tratamiento")
	setOptStr(&con.FechaConsulta, p, "fecha_consulta")
}
