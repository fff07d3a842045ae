package reportes

// Read-only projections assembled from joins. The nested objects carry
// just enough of each entity for the mobile client's report screens.

type MedicoResumen struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}

type EspecialidadResumen struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}

type CitaConDetalle struct {
	ID           int64               `json:"id"`
	PacienteID   int64               `json:"paciente_id"`
	Fecha        string              `json:"fecha"`
	Hora         string              `json:"hora"`
	Estado       string              `json:"estado"`
	Medico       MedicoResumen       `json:"medico"`
	Especialidad EspecialidadResumen `json:"especialidad"`
}

type HistoriaResumen struct {
	ID            int64   `json:"id"`
	Antecedentes  *string `json:"antecedentes"`
	Alergias      *string `json:"alergias"`
	Observaciones *string `json:"observaciones"`
}

type ConsultaResumen struct {
	ID            int64   `json:"id"`
	CitaID        int64   `json:"cita_id"`
	Motivo        string  `json:"motivo"`
	Diagnostico   *string `json:"diagnostico"`
	Tratamiento   *string `json:"tratamiento"`
	FechaConsulta *string `json:"fecha_consulta"`
}

type HistorialPaciente struct {
	ID               int64              `json:"id"`
	Nombre           string             `json:"nombre"`
	Documento        string             `json:"documento"`
	HistoriaClinica  *HistoriaResumen   `json:"historia_clinica"`
	ConsultasMedicas []*ConsultaResumen `json:"consultas_medicas"`
}

type MedicamentoResumen struct {
	ID           int64   `json:"id"`
	Nombre       string  `json:"nombre"`
	Presentacion *string `json:"presentacion"`
}

type RecetaConMedicamento struct {
	ID               int64              `json:"id"`
	ConsultaMedicaID int64              `json:"consulta_medica_id"`
	Dosis            string             `json:"dosis"`
	Frecuencia       *string            `json:"frecuencia"`
	Duracion         *string            `json:"duracion"`
	Medicamento      MedicamentoResumen `json:"medicamento"`
}

type FacturaResumen struct {
	ID           int64   `json:"id"`
	PacienteID   int64   `json:"paciente_id"`
	CitaID       int64   `json:"cita_id"`
	MontoTotal   float64 `json:"monto_total"`
	FechaEmision string  `json:"fecha_emision"`
	Estado       string  `json:"estado"`
}

type PagoConFactura struct {
	ID         int64          `json:"id"`
	FacturaID  int64          `json:"factura_id"`
	Monto      float64        `json:"monto"`
	FechaPago  string         `json:"fecha_pago"`
	MetodoPago string         `json:"metodo_pago"`
	Factura    FacturaResumen `json:"factura"`
}

type PacienteResumen struct {
	ID        int64  `json:"id"`
	Nombre    string `json:"nombre"`
	Documento string `json:"documento"`
}

type AseguradoraConPacientes struct {
	ID        int64              `json:"id"`
	Nombre    string             `json:"nombre"`
	NIT       string             `json:"nit"`
	Pacientes []*PacienteResumen `json:"pacientes"`
}
