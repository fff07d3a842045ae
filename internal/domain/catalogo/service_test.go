package catalogo

import (
	"context"
	"errors"
	"testing"

	"github.com/epsalud/eps-api/internal/platform/validation"
)

type noopChecker struct{}

func (noopChecker) Exists(context.Context, string, string, interface{}) (bool, error) {
	return true, nil
}

func (noopChecker) Taken(context.Context, string, string, interface{}, int64) (bool, error) {
	return false, nil
}

type mockCiudadRepo struct {
	rows   map[int64]*Ciudad
	nextID int64
}

func newMockCiudadRepo() *mockCiudadRepo {
	return &mockCiudadRepo{rows: make(map[int64]*Ciudad), nextID: 1}
}

func (m *mockCiudadRepo) List(context.Context) ([]*Ciudad, error) {
	items := []*Ciudad{}
	for i := int64(1); i < m.nextID; i++ {
		if c, ok := m.rows[i]; ok {
			items = append(items, c)
		}
	}
	return items, nil
}

func (m *mockCiudadRepo) GetByID(_ context.Context, id int64) (*Ciudad, error) {
	c, ok := m.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *mockCiudadRepo) Create(_ context.Context, ciudad *Ciudad) error {
	ciudad.ID = m.nextID
	m.nextID++
	cp := *ciudad
	m.rows[ciudad.ID] = &cp
	return nil
}

func (m *mockCiudadRepo) Update(_ context.Context, ciudad *Ciudad) error {
	if _, ok := m.rows[ciudad.ID]; !ok {
		return ErrNotFound
	}
	cp := *ciudad
	m.rows[ciudad.ID] = &cp
	return nil
}

func (m *mockCiudadRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.rows[id]; !ok {
		return ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

type mockEspecialidadRepo struct {
	rows     map[int64]*Especialidad
	nextID   int64
	conCitas map[int64]bool
}

func newMockEspecialidadRepo() *mockEspecialidadRepo {
	return &mockEspecialidadRepo{
		rows:     make(map[int64]*Especialidad),
		nextID:   1,
		conCitas: make(map[int64]bool),
	}
}

func (m *mockEspecialidadRepo) List(context.Context) ([]*Especialidad, error) {
	items := []*Especialidad{}
	for i := int64(1); i < m.nextID; i++ {
		if e, ok := m.rows[i]; ok {
			items = append(items, e)
		}
	}
	return items, nil
}

func (m *mockEspecialidadRepo) GetByID(_ context.Context, id int64) (*Especialidad, error) {
	e, ok := m.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (m *mockEspecialidadRepo) Create(_ context.Context, esp *Especialidad) error {
	esp.ID = m.nextID
	m.nextID++
	cp := *esp
	m.rows[esp.ID] = &cp
	return nil
}

func (m *mockEspecialidadRepo) Update(_ context.Context, esp *Especialidad) error {
	if _, ok := m.rows[esp.ID]; !ok {
		return ErrNotFound
	}
	cp := *esp
	m.rows[esp.ID] = &cp
	return nil
}

func (m *mockEspecialidadRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.rows[id]; !ok {
		return ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

func (m *mockEspecialidadRepo) HasCitas(_ context.Context, id int64) (bool, error) {
	return m.conCitas[id], nil
}

func TestCiudadService_CreateAndGet(t *testing.T) {
	svc := NewCiudadService(newMockCiudadRepo(), validation.NewEngine(noopChecker{}))
	ctx := context.Background()

	ciudad, err := svc.Create(ctx, map[string]interface{}{"nombre": "Bogotá"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if ciudad.ID == 0 {
		t.Fatal("expected a generated id")
	}

	got, err := svc.Get(ctx, ciudad.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Nombre != "Bogotá" {
		t.Errorf("nombre: got %q", got.Nombre)
	}
}

func TestCiudadService_CreateMissingNombre(t *testing.T) {
	svc := NewCiudadService(newMockCiudadRepo(), validation.NewEngine(noopChecker{}))

	_, err := svc.Create(context.Background(), map[string]interface{}{})
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validation errors, got %v", err)
	}
	if len(verrs["nombre"]) == 0 {
		t.Error("expected nombre violation")
	}
}

func TestCiudadService_UpdateNotFound(t *testing.T) {
	svc := NewCiudadService(newMockCiudadRepo(), validation.NewEngine(noopChecker{}))

	_, err := svc.Update(context.Background(), 99, map[string]interface{}{"nombre": "Cali"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCiudadService_DeleteThenGet(t *testing.T) {
	svc := NewCiudadService(newMockCiudadRepo(), validation.NewEngine(noopChecker{}))
	ctx := context.Background()

	ciudad, _ := svc.Create(ctx, map[string]interface{}{"nombre": "Medellín"})
	if err := svc.Delete(ctx, ciudad.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(ctx, ciudad.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestEspecialidadService_DeleteBlockedByCitas(t *testing.T) {
	repo := newMockEspecialidadRepo()
	svc := NewEspecialidadService(repo, validation.NewEngine(noopChecker{}))
	ctx := context.Background()

	esp, err := svc.Create(ctx, map[string]interface{}{"nombre": "Medicina General"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	repo.conCitas[esp.ID] = true

	if err := svc.Delete(ctx, esp.ID); !errors.Is(err, ErrEspecialidadEnUso) {
		t.Fatalf("expected ErrEspecialidadEnUso, got %v", err)
	}
	if _, err := svc.Get(ctx, esp.ID); err != nil {
		t.Fatalf("expected especialidad to survive blocked delete: %v", err)
	}

	repo.conCitas[esp.ID] = false
	if err := svc.Delete(ctx, esp.ID); err != nil {
		t.Fatalf("expected unblocked delete to succeed: %v", err)
	}
}

func TestEspecialidadService_PartialUpdate(t *testing.T) {
	svc := NewEspecialidadService(newMockEspecialidadRepo(), validation.NewEngine(noopChecker{}))
	ctx := context.Background()

	esp, _ := svc.Create(ctx, map[string]interface{}{"nombre": "Pediatría"})

	updated, err := svc.Update(ctx, esp.ID, map[string]interface{}{})
	if err != nil {
		t.Fatalf("empty partial update should pass: %v", err)
	}
	if updated.Nombre != "Pediatría" {
		t.Errorf("nombre changed unexpectedly: %q", updated.Nombre)
	}
}
