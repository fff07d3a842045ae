package farmacia

import (
	"time"

	"github.com/epsalud/eps-api/internal/platform/validation"
)

type Medicamento struct {
	ID           int64     `json:"id"`
	Nombre       string    `json:"nombre"`
	Descripcion  *string   `json:"descripcion"`
	Presentacion *string   `json:"presentacion"`
	Stock        int64     `json:"stock"`
	Precio       float64   `json:"precio"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RecetaMedica prescribes a medicamento within a consulta.
type RecetaMedica struct {
	ID               int64     `json:"id"`
	ConsultaMedicaID int64     `json:"consulta_medica_id"`
	MedicamentoID    int64     `json:"medicamento_id"`
	Dosis            string    `json:"dosis"`
	Frecuencia       *string   `json:"frecuencia"`
	Duracion         *string   `json:"duracion"`
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

func applyMedicamento(med *Medicamento, p map[string]interface{}) {
	if v, ok := validation.Str(p, "nombre"); ok {
		med.Nombre = v
	}
	setOptStr(&med.Descripcion, p, "descripcion")
	setOptStr(&med.Presentacion, p, "presentacion")
	if v, ok := validation.Int64(p, "stock"); ok {
		med.Stock = v
	}
	if v, ok := validation.Float64(p, "precio"); ok {
		med.Precio = v
	}
}

func applyReceta(rec *RecetaMedica, p map[string]interface{}) {
	if v, ok := validation.Int64(p, "consulta_medica_id"); ok {
		rec.ConsultaMedicaID = v
	}
	if v, ok := validation.Int64(p, "medicamento_id"); ok {
		rec.MedicamentoID = v
	}
	if v, ok := validation.Str(p, "dosis"); ok {
		rec.Dosis = v
	}
	setOptStr(&rec.Frecuencia, p, "frecuencia")
	setOptStr(&rec.Duracion, p, "duracion")
}
