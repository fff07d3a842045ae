package catalogo

import (
	"time"

	"github.com/epsalud/eps-api/internal/platform/validation"
)

// Ciudad is a reference row shared by pacientes, medicos, consultorios,
// aseguradoras and laboratorios.
type Ciudad struct {
	ID        int64     `json:"id"`
	Nombre    string    `json:"nombre"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Especialidad struct {
	ID        int64     `json:"id"`
	Nombre    string    `json:"nombre"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func applyCiudad(ciudad *Ciudad, p map[string]interface{}) {
	if v, ok := validation.Str(p, "nombre"); ok {
		ciudad.Nombre = v
	}
}

func applyEspecialidad(esp *Especialidad, p map[string]interface{}) {
	if v, ok := validation.Str(p, "nombre"); ok {
		esp.Nombre = v
	}
}
