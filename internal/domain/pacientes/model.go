package pacientes

import (
	"time"

	"github.com/epsalud/eps-api/internal/platform/validation"
)

type Paciente struct {
	ID        int64     `json:"id"`
	Nombre    string    `json:"nombre"`
	Documento string    `json:"documento"`
	Telefono  *string   `json:"telefono"`
	Email     *string   `json:"email"`
	Direccion *string   `json:"direccion"`
	CiudadID  int64     `json:"ciudad_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HistoriaClinica is the patient's single clinical record sheet.
type HistoriaClinica struct {
	ID            int64     `json:"id"`
	PacienteID    int64     `json:"paciente_id"`
	Antecedentes  *string   `json:"antecedentes"`
	Alergias      *string   `json:"alergias"`
	Observaciones *string   `json:"observaciones"`
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

func applyPaciente(pac *Paciente, p map[string]interface{}) {
	if v, ok := validation.Str(p, "nombre"); ok {
		pac.Nombre = v
	}
	if v, ok := validation.Str(p, "documento"); ok {
		pac.Documento = v
	}
	setOptStr(&pac.Telefono, p, "telefono")
	setOptStr(&pac.Email, p, "email")
	setOptStr(&pac.Direccion, p, "direccion")
	if v, ok := validation.Int64(p, "ciudad_id"); ok {
		pac.CiudadID = v
	}
}

func applyHistoria(his *HistoriaClinica, p map[string]interface{}) {
	if v, ok := validation.Int64(p, "paciente_id"); ok {
		his.PacienteID = v
	}
	setOptStr(&his.Antecedentes, p, "antecedentes")
	setOptStr(&his.Alergias, p, "alergias")
	setOptStr(&his.Observaciones, p, "observaciones")
}
