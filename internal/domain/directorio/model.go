package directorio

import (
	"time"

	"github.com/epsalud/eps-api/internal/platform/validation"
)

type Medico struct {
	ID             int64     `json:"id"`
	Nombre         string    `json:"nombre"`
	Documento      string    `json:"documento"`
	Telefono       *string   `json:"telefono"`
	Email          *string   `json:"email"`
	EspecialidadID int64     `json:"especialidad_id"`
	CiudadID       int64     `json:"ciudad_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type Consultorio struct {
	ID        int64     `json:"id"`
	CiudadID  int64     `json:"ciudad_id"`
	Nombre    string    `json:"nombre"`
	Direccion *string   `json:"direccion"`
	Telefono  *string   `json:"telefono"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Horario is a recurring weekly availability window for a medico at a
// consultorio. Times are HH:MM strings; overlap with citas is not checked.
type Horario struct {
	ID            int64     `json:"id"`
	MedicoID      int64     `json:"medico_id"`
	ConsultorioID int64     `json:"consultorio_id"`
	DiaSemana     string    `json:"dia_semana"`
	HoraInicio    string    `json:"hora_inicio"`
	HoraFin       string    `json:"hora_fin"`
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

func applyMedico(m *Medico, p map[string]interface{}) {
	if v, ok := validation.Str(p, "nombre"); ok {
		m.Nombre = v
	}
	if v, ok := validation.Str(p, "documento"); ok {
		m.Documento = v
	}
	setOptStr(&m.Telefono, p, "telefono")
	setOptStr(&m.Email, p, "email")
	if v, ok := validation.Int64(p, "especialidad_id"); ok {
		m.EspecialidadID = v
	}
	if v, ok := validation.Int64(p, "ciudad_id"); ok {
		m.CiudadID = v
	}
}

func applyConsultorio(con *Consultorio, p map[string]interface{}) {
	if v, ok := validation.Int64(p, "ciudad_id"); ok {
		con.CiudadID = v
	}
	if v, ok := validation.Str(p, "nombre"); ok {
		con.Nombre = v
	}
	setOptStr(&con.Direccion, p, "direccion")
	setOptStr(&con.Telefono, p, "telefono")
}

func applyHorario(hor *Horario, p map[string]interface{}) {
	if v, ok := validation.Int64(p, "medico_id"); ok {
		hor.MedicoID = v
	}
	if v, ok := validation.Int64(p, "consultorio_id"); ok {
		hor.ConsultorioID = v
	}
	if v, ok := validation.Str(p, "dia_semana"); ok {
		hor.DiaSemana = v
	}
	if v, ok := validation.Str(p, "hora_inicio"); ok {
		hor.HoraInicio = v
	}
	if v, ok := validation.Str(p, "hora_fin"); ok {
		hor.HoraFin = v
	}
}
