package laboratorio

import (
	"context"
	"errors"
	"testing"

	"github.com/epsalud/eps-api/internal/platform/validation"
)

type refChecker struct {
	tables map[string]map[int64]bool
}

func newRefChecker() *refChecker {
	return &refChecker{
		tables: map[string]map[int64]bool{
			"ciudades":          {1: true},
			"laboratorios":      {1: true},
			"consultas_medicas": {1: true},
			"examenes_medicos":  {1: true},
		},
	}
}

func (f *refChecker) Exists(_ context.Context, table, _ string, value interface{}) (bool, error) {
	id, ok := value.(int64)
	if !ok {
		if fv, isf := value.(float64); isf {
			id = int64(fv)
		}
	}
	return f.tables[table][id], nil
}

func (f *refChecker) Taken(context.Context, string, string, interface{}, int64) (bool, error) {
	return false, nil
}

type mockLaboratorioRepo struct {
	rows   map[int64]*Laboratorio
	nextID int64
}

func (m *mockLaboratorioRepo) List(context.Context) ([]*Laboratorio, error) { return nil, nil }

func (m *mockLaboratorioRepo) GetByID(_ context.Context, id int64) (*Laboratorio, error) {
	l, ok := m.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *l
	return &cp, nil
}

func (m *mockLaboratorioRepo) Create(_ context.Context, l *Laboratorio) error {
	l.ID = m.nextID
	m.nextID++
	cp := *l
	m.rows[l.ID] = &cp
	return nil
}

func (m *mockLaboratorioRepo) Update(_ context.Context, l *Laboratorio) error {
	if _, ok := m.rows[l.ID]; !ok {
		return ErrNotFound
	}
	cp := *l
	m.rows[l.ID] = &cp
	return nil
}

func (m *mockLaboratorioRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.rows[id]; !ok {
		return ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

type mockExamenRepo struct {
	rows   map[int64]*ExamenMedico
	nextID int64
}

func (m *mockExamenRepo) List(context.Context) ([]*ExamenMedico, error) { return nil, nil }

func (m *mockExamenRepo) GetByID(_ context.Context, id int64) (*ExamenMedico, error) {
	e, ok := m.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (m *mockExamenRepo) Create(_ context.Context, e *ExamenMedico) error {
	e.ID = m.nextID
	m.nextID++
	cp := *e
	m.rows[e.ID] = &cp
	return nil
}

func (m *mockExamenRepo) Update(_ context.Context, e *ExamenMedico) error {
	if _, ok := m.rows[e.ID]; !ok {
		return ErrNotFound
	}
	cp := *e
	m.rows[e.ID] = &cp
	return nil
}

func (m *mockExamenRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.rows[id]; !ok {
		return ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

type mockOrdenRepo struct {
	rows   map[int64]*OrdenExamen
	nextID int64
}

func (m *mockOrdenRepo) List(context.Context) ([]*OrdenExamen, error) { return nil, nil }

func (m *mockOrdenRepo) GetByID(_ context.Context, id int64) (*OrdenExamen, error) {
	o, ok := m.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (m *mockOrdenRepo) Create(_ context.Context, o *OrdenExamen) error {
	o.ID = m.nextID
	m.nextID++
	cp := *o
	m.rows[o.ID] = &cp
	return nil
}

func (m *mockOrdenRepo) Update(_ context.Context, o *OrdenExamen) error {
	if _, ok := m.rows[o.ID]; !ok {
		return ErrNotFound
	}
	cp := *o
	m.rows[o.ID] = &cp
	return nil
}

func (m *mockOrdenRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.rows[id]; !ok {
		return ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

func TestLaboratorioService_Create(t *testing.T) {
	svc := NewLaboratorioService(&mockLaboratorioRepo{rows: map[int64]*Laboratorio{}, nextID: 1},
		validation.NewEngine(newRefChecker()))

	l, err := svc.Create(context.Background(), map[string]interface{}{
		"nombre":    "Laboratorio Central",
		"ciudad_id": float64(1),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if l.Nombre != "Laboratorio Central" {
		t.Errorf("nombre: got %q", l.Nombre)
	}
	if l.CiudadID == nil || *l.CiudadID != 1 {
		t.Errorf("ciudad_id not applied: %v", l.CiudadID)
	}
}

func TestLaboratorioService_CiudadInexistente(t *testing.T) {
	svc := NewLaboratorioService(&mockLaboratorioRepo{rows: map[int64]*Laboratorio{}, nextID: 1},
		validation.NewEngine(newRefChecker()))

	_, err := svc.Create(context.Background(), map[string]interface{}{
		"nombre":    "Laboratorio Central",
		"ciudad_id": float64(99),
	})
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validation errors, got %v", err)
	}
	if len(verrs["ciudad_id"]) == 0 {
		t.Errorf("expected ciudad_id violation, got %v", verrs)
	}
}

func TestLaboratorioService_DesvincularCiudad(t *testing.T) {
	svc := NewLaboratorioService(&mockLaboratorioRepo{rows: map[int64]*Laboratorio{}, nextID: 1},
		validation.NewEngine(newRefChecker()))
	ctx := context.Background()

	l, err := svc.Create(ctx, map[string]interface{}{
		"nombre":    "Laboratorio Central",
		"ciudad_id": float64(1),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.Update(ctx, l.ID, map[string]interface{}{"ciudad_id": nil})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.CiudadID != nil {
		t.Errorf("expected ciudad_id cleared, got %v", *updated.CiudadID)
	}
}

func TestExamenService_Create(t *testing.T) {
	svc := NewExamenMedicoService(&mockExamenRepo{rows: map[int64]*ExamenMedico{}, nextID: 1},
		validation.NewEngine(newRefChecker()))

	e, err := svc.Create(context.Background(), map[string]interface{}{
		"laboratorio_id": float64(1),
		"nombre":         "Hemograma completo",
		"precio":         25000.0,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if e.LaboratorioID != 1 || e.Precio != 25000.0 {
		t.Errorf("unexpected examen: %+v", e)
	}
}

func TestExamenService_PrecioNegativo(t *testing.T) {
	svc := NewExamenMedicoService(&mockExamenRepo{rows: map[int64]*ExamenMedico{}, nextID: 1},
		validation.NewEngine(newRefChecker()))

	_, err := svc.Create(context.Background(), map[string]interface{}{
		"laboratorio_id": float64(1),
		"nombre":         "Hemograma completo",
		"precio":         -100.0,
	})
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validation errors, got %v", err)
	}
	if len(verrs["precio"]) == 0 {
		t.Errorf("expected precio violation, got %v", verrs)
	}
}

func validOrden() map[string]interface{} {
	return map[string]interface{}{
		"consulta_medica_id": float64(1),
		"examen_medico_id":   float64(1),
		"laboratorio_id":     float64(1),
		"fecha_orden":        "2025-10-01",
		"estado":             EstadoPendiente,
	}
}

func TestOrdenService_Create(t *testing.T) {
	svc := NewOrdenExamenService(&mockOrdenRepo{rows: map[int64]*OrdenExamen{}, nextID: 1},
		validation.NewEngine(newRefChecker()))

	o, err := svc.Create(context.Background(), validOrden())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if o.FechaOrden != "2025-10-01" || o.Estado != EstadoPendiente {
		t.Errorf("unexpected orden: %+v", o)
	}
}

func TestOrdenService_EstadoInvalido(t *testing.T) {
	svc := NewOrdenExamenService(&mockOrdenRepo{rows: map[int64]*OrdenExamen{}, nextID: 1},
		validation.NewEngine(newRefChecker()))

	payload := validOrden()
	payload["estado"] = "archivado"
	_, err := svc.Create(context.Background(), payload)
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validation errors, got %v", err)
	}
	if len(verrs["estado"]) == 0 {
		t.Errorf("expected estado violation, got %v", verrs)
	}
}

func TestOrdenService_EntregarResultado(t *testing.T) {
	svc := NewOrdenExamenService(&mockOrdenRepo{rows: map[int64]*OrdenExamen{}, nextID: 1},
		validation.NewEngine(newRefChecker()))
	ctx := context.Background()

	o, err := svc.Create(ctx, validOrden())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.Update(ctx, o.ID, map[string]interface{}{"estado": EstadoEntregado})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Estado != EstadoEntregado {
		t.Errorf("estado: got %q", updated.Estado)
	}
	if updated.FechaOrden != "2025-10-01" {
		t.Errorf("partial update clobbered fecha_orden: %q", updated.FechaOrden)
	}
}
