package facturacion

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
			"pacientes": {1: true}, "citas": {1: true}, "facturas": {1: true},
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

type mockFacturaRepo struct {
	rows   map[int64]*Factura
	nextID int64
}

func (m *mockFacturaRepo) List(context.Context) ([]*Factura, error) { return nil, nil }

func (m *mockFacturaRepo) GetByID(_ context.Context, id int64) (*Factura, error) {
	f, ok := m.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *f
	return &cp, nil
}

func (m *mockFacturaRepo) Create(_ context.Context, f *Factura) error {
	f.ID = m.nextID
	m.nextID++
	cp := *f
	m.rows[f.ID] = &cp
	return nil
}

func (m *mockFacturaRepo) Update(_ context.Context, f *Factura) error {
	if _, ok := m.rows[f.ID]; !ok {
		return ErrNotFound
	}
	cp := *f
	m.rows[f.ID] = &cp
	return nil
}

func (m *mockFacturaRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.rows[id]; !ok {
		return ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

type mockPagoRepo struct {
	rows   map[int64]*Pago
	nextID int64
}

func (m *mockPagoRepo) List(context.Context) ([]*Pago, error) { return nil, nil }

func (m *mockPagoRepo) GetByID(_ context.Context, id int64) (*Pago, error) {
	p, ok := m.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *mockPagoRepo) Create(_ context.Context, p *Pago) error {
	p.ID = m.nextID
	m.nextID++
	cp := *p
	m.rows[p.ID] = &cp
	return nil
}

func (m *mockPagoRepo) Update(_ context.Context, p *Pago) error {
	if _, ok := m.rows[p.ID]; !ok {
		return ErrNotFound
	}
	cp := *p
	m.rows[p.ID] = &cp
	return nil
}

func (m *mockPagoRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.rows[id]; !ok {
		return ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

func validFactura() map[string]interface{} {
	return map[string]interface{}{
		"paciente_id":   float64(1),
		"cita_id":       float64(1),
		"monto_total":   85000.0,
		"fecha_emision": "2025-10-01",
		"estado":        EstadoPendiente,
	}
}

func TestFacturaService_Create(t *testing.T) {
	svc := NewFacturaService(&mockFacturaRepo{rows: map[int64]*Factura{}, nextID: 1},
		validation.NewEngine(newRefChecker()))

	f, err := svc.Create(context.Background(), validFactura())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if f.MontoTotal != 85000.0 || f.Estado != EstadoPendiente {
		t.Errorf("unexpected factura: %+v", f)
	}
}

func TestFacturaService_MontoNegativo(t *testing.T) {
	svc := NewFacturaService(&mockFacturaRepo{rows: map[int64]*Factura{}, nextID: 1},
		validation.NewEngine(newRefChecker()))

	payload := validFactura()
	payload["monto_total"] = -500.0
	_, err := svc.Create(context.Background(), payload)
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validation errors, got %v", err)
	}
	if len(verrs["monto_total"]) == 0 {
		t.Errorf("expected monto_total violation, got %v", verrs)
	}
}

func TestFacturaService_EstadoInvalido(t *testing.T) {
	svc := NewFacturaService(&mockFacturaRepo{rows: map[int64]*Factura{}, nextID: 1},
		validation.NewEngine(newRefChecker()))

	payload := validFactura()
	payload["estado"] = "vencida"
	_, err := svc.Create(context.Background(), payload)
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validation errors, got %v", err)
	}
	if len(verrs["estado"]) == 0 {
		t.Errorf("expected estado violation, got %v", verrs)
	}
}

func TestFacturaService_MarcarPagada(t *testing.T) {
	svc := NewFacturaService(&mockFacturaRepo{rows: map[int64]*Factura{}, nextID: 1},
		validation.NewEngine(newRefChecker()))
	ctx := context.Background()

	f, err := svc.Create(ctx, validFactura())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.Update(ctx, f.ID, map[string]interface{}{"estado": EstadoPagada})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Estado != EstadoPagada {
		t.Errorf("estado: got %q", updated.Estado)
	}
	if updated.MontoTotal != 85000.0 {
		t.Errorf("partial update clobbered monto_total: %v", updated.MontoTotal)
	}
}

func TestPagoService_Create(t *testing.T) {
	svc := NewPagoService(&mockPagoRepo{rows: map[int64]*Pago{}, nextID: 1},
		validation.NewEngine(newRefChecker()))

	p, err := svc.Create(context.Background(), map[string]interface{}{
		"factura_id":  float64(1),
		"monto":       85000.0,
		"fecha_pago":  "2025-10-02",
		"metodo_pago": "efectivo",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.FacturaID != 1 || p.MetodoPago != "efectivo" {
		t.Errorf("unexpected pago: %+v", p)
	}
}

func TestPagoService_FacturaInexistente(t *testing.T) {
	svc := NewPagoService(&mockPagoRepo{rows: map[int64]*Pago{}, nextID: 1},
		validation.NewEngine(newRefChecker()))

	_, err := svc.Create(context.Background(), map[string]interface{}{
		"factura_id":  float64(99),
		"monto":       85000.0,
		"fecha_pago":  "2025-10-02",
		"metodo_pago": "efectivo",
	})
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validation errors, got %v", err)
	}
	if len(verrs["factura_id"]) == 0 {
		t.Errorf("expected factura_id violation, got %v", verrs)
	}
}

func TestPagoService_FechaInvalida(t *testing.T) {
	svc := NewPagoService(&mockPagoRepo{rows: map[int64]*Pago{}, nextID: 1},
		validation.NewEngine(newRefChecker()))

	_, err := svc.Create(context.Background(), map[string]interface{}{
		"factura_id":  float64(1),
		"monto":       85000.0,
		"fecha_pago":  "02/10/2025",
		"metodo_pago": "efectivo",
	})
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validation errors, got %v", err)
	}
	if len(verrs["fecha_pago"]) == 0 {
		t.Errorf("expected fecha_pago violation, got %v", verrs)
	}
}
