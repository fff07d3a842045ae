package reportes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

type mockRepo struct {
	citas       map[int64][]*CitaConDetalle
	historiales map[int64]*HistorialPaciente
	recetas     map[int64][]*RecetaConMedicamento
	pagos       map[int64][]*PagoConFactura
	afiliados   map[int64]*AseguradoraConPacientes
}

func (m *mockRepo) CitasPorPaciente(_ context.Context, id int64) ([]*CitaConDetalle, error) {
	if items, ok := m.citas[id]; ok {
		return items, nil
	}
	return []*CitaConDetalle{}, nil
}

func (m *mockRepo) HistorialPaciente(_ context.Context, id int64) (*HistorialPaciente, error) {
	h, ok := m.historiales[id]
	if !ok {
		return nil, ErrNotFound
	}
	return h, nil
}

func (m *mockRepo) RecetasPorConsulta(_ context.Context, id int64) ([]*RecetaConMedicamento, error) {
	if items, ok := m.recetas[id]; ok {
		return items, nil
	}
	return []*RecetaConMedicamento{}, nil
}

func (m *mockRepo) PagosPorPaciente(_ context.Context, id int64) ([]*PagoConFactura, error) {
	if items, ok := m.pagos[id]; ok {
		return items, nil
	}
	return []*PagoConFactura{}, nil
}

func (m *mockRepo) PacientesPorAseguradora(_ context.Context, id int64) (*AseguradoraConPacientes, error) {
	a, ok := m.afiliados[id]
	if !ok {
		return nil, ErrNotFound
	}
	return a, nil
}

func seededRepo() *mockRepo {
	return &mockRepo{
		citas: map[int64][]*CitaConDetalle{
			1: {{
				ID: 1, PacienteID: 1, Fecha: "2025-09-05", Hora: "10:00", Estado: "pendiente",
				Medico:       MedicoResumen{ID: 1, Nombre: "Dr. Juan Pérez"},
				Especialidad: EspecialidadResumen{ID: 1, Nombre: "Medicina General"},
			}},
		},
		historiales: map[int64]*HistorialPaciente{
			1: {
				ID: 1, Nombre: "Juan García", Documento: "100200300",
				HistoriaClinica:  &HistoriaResumen{ID: 1},
				ConsultasMedicas: []*ConsultaResumen{{ID: 1, CitaID: 1, Motivo: "Control"}},
			},
		},
		recetas: map[int64][]*RecetaConMedicamento{
			1: {{
				ID: 1, ConsultaMedicaID: 1, Dosis: "500mg",
				Medicamento: MedicamentoResumen{ID: 1, Nombre: "Acetaminofén"},
			}},
		},
		pagos: map[int64][]*PagoConFactura{
			1: {{
				ID: 1, FacturaID: 1, Monto: 85000, FechaPago: "2025-09-06", MetodoPago: "efectivo",
				Factura: FacturaResumen{ID: 1, PacienteID: 1, CitaID: 1, MontoTotal: 85000, FechaEmision: "2025-09-05", Estado: "pagada"},
			}},
		},
		afiliados: map[int64]*AseguradoraConPacientes{
			1: {
				ID: 1, Nombre: "Seguros ABC", NIT: "900123456-1",
				Pacientes: []*PacienteResumen{{ID: 1, Nombre: "Juan García", Documento: "100200300"}},
			},
		},
	}
}

func doGet(t *testing.T, h echo.HandlerFunc, path string, params map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, strings.NewReader(""))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	for k, v := range params {
		c.SetParamNames(k)
		c.SetParamValues(v)
	}
	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestCitasPorPaciente(t *testing.T) {
	h := NewHandler(seededRepo())

	rec := doGet(t, h.CitasPorPaciente, "/reportes/citas/1", map[string]string{"pacienteId": "1"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", rec.Code, rec.Body.String())
	}
	var out []*CitaConDetalle
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 cita, got %d", len(out))
	}
	if out[0].Medico.Nombre != "Dr. Juan Pérez" || out[0].Especialidad.Nombre != "Medicina General" {
		t.Errorf("nested objects missing: %+v", out[0])
	}
}

func TestCitasPorPaciente_SinCitas(t *testing.T) {
	h := NewHandler(seededRepo())

	rec := doGet(t, h.CitasPorPaciente, "/reportes/citas/2", map[string]string{"pacienteId": "2"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("expected empty array, got %s", body)
	}
}

func TestHistorialPaciente(t *testing.T) {
	h := NewHandler(seededRepo())

	rec := doGet(t, h.HistorialPaciente, "/reportes/historial/1", map[string]string{"pacienteId": "1"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	var out HistorialPaciente
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if out.HistoriaClinica == nil || len(out.ConsultasMedicas) != 1 {
		t.Errorf("unexpected historial: %+v", out)
	}
}

func TestHistorialPaciente_NoEncontrado(t *testing.T) {
	h := NewHandler(seededRepo())

	rec := doGet(t, h.HistorialPaciente, "/reportes/historial/99", map[string]string{"pacienteId": "99"})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status: got %d", rec.Code)
	}
	var out map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if out["message"] != "Paciente no encontrado" {
		t.Errorf("message: got %q", out["message"])
	}
}

func TestRecetasPorConsulta(t *testing.T) {
	h := NewHandler(seededRepo())

	rec := doGet(t, h.RecetasPorConsulta, "/reportes/recetas/1", map[string]string{"consultaId": "1"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	var out []*RecetaConMedicamento
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if len(out) != 1 || out[0].Medicamento.Nombre != "Acetaminofén" {
		t.Errorf("unexpected recetas: %+v", out)
	}
}

func TestPagosPorPaciente(t *testing.T) {
	h := NewHandler(seededRepo())

	rec := doGet(t, h.PagosPorPaciente, "/reportes/pagos/1", map[string]string{"pacienteId": "1"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	var out []*PagoConFactura
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if len(out) != 1 || out[0].Factura.Estado != "pagada" {
		t.Errorf("unexpected pagos: %+v", out)
	}
}

func TestPacientesPorAseguradora(t *testing.T) {
	h := NewHandler(seededRepo())

	rec := doGet(t, h.PacientesPorAseguradora, "/reportes/aseguradora/1/pacientes",
		map[string]string{"aseguradoraId": "1"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	var out AseguradoraConPacientes
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if out.Nombre != "Seguros ABC" || len(out.Pacientes) != 1 {
		t.Errorf("unexpected aseguradora: %+v", out)
	}
}

func TestPacientesPorAseguradora_NoEncontrada(t *testing.T) {
	h := NewHandler(seededRepo())

	rec := doGet(t, h.PacientesPorAseguradora, "/reportes/aseguradora/99/pacientes",
		map[string]string{"aseguradoraId": "99"})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status: got %d", rec.Code)
	}
	var out map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if out["message"] != "Aseguradora no encontrada" {
		t.Errorf("message: got %q", out["message"])
	}
}
