package validation

import (
	"context"
	"testing"
)

// fakeChecker backs Exists/Unique rules with in-memory answers.
type fakeChecker struct {
	existing map[string]map[int64]bool        // table -> id -> present
	taken    map[string]map[interface{}]int64 // table.column -> value -> owning row id
}

func newFakeChecker() *fakeChecker {
	return &fakeChecker{
		existing: make(map[string]map[int64]bool),
		taken:    make(map[string]map[interface{}]int64),
	}
}

func (f *fakeChecker) addRow(table string, id int64) {
	if f.existing[table] == nil {
		f.existing[table] = make(map[int64]bool)
	}
	f.existing[table][id] = true
}

func (f *fakeChecker) addValue(table, column string, value interface{}, owner int64) {
	key := table + "." + column
	if f.taken[key] == nil {
		f.taken[key] = make(map[interface{}]int64)
	}
	f.taken[key][value] = owner
}

func (f *fakeChecker) Exists(_ context.Context, table, _ string, value interface{}) (bool, error) {
	id, _ := asInt64(value)
	return f.existing[table][id], nil
}

func (f *fakeChecker) Taken(_ context.Context, table, column string, value interface{}, excludeID int64) (bool, error) {
	owner, ok := f.taken[table+"."+column][value]
	if !ok {
		return false, nil
	}
	return owner != excludeID, nil
}

func newTestEngine() *Engine {
	return NewEngine(newFakeChecker())
}

func TestValidate_RequiredOnCreate(t *testing.T) {
	e := newTestEngine()
	rules := Rules{"nombre": {Required(), String(), Max(255)}}

	errs, err := e.Validate(context.Background(), rules, map[string]interface{}{}, Create())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(errs["nombre"]) == 0 {
		t.Fatal("expected violation for missing nombre")
	}
}

func TestValidate_RequiredSkippedOnUpdate(t *testing.T) {
	e := newTestEngine()
	rules := Rules{"nombre": {Required(), String()}}

	errs, err := e.Validate(context.Background(), rules, map[string]interface{}{}, Update(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if errs != nil {
		t.Fatalf("expected no violations on partial update, got %v", errs)
	}
}

func TestValidate_TypeChecks(t *testing.T) {
	e := newTestEngine()
	rules := Rules{
		"nombre":    {String()},
		"stock":     {Integer()},
		"precio":    {Numeric(), Min(0)},
		"fecha":     {Date()},
		"hora":      {TimeOfDay()},
		"email":     {Email()},
		"estado":    {In("pendiente", "confirmada", "cancelada", "atendida")},
		"documento": {Max(5)},
	}

	payload := map[string]interface{}{
		"nombre":    42,
		"stock":     1.5,
		"precio":    -10.0,
		"fecha":     "01-01-2025",
		"hora":      "25:99",
		"email":     "no-es-correo",
		"estado":    "programada",
		"documento": "123456",
	}

	errs, err := e.Validate(context.Background(), rules, payload, Create())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, field := range []string{"nombre", "stock", "precio", "fecha", "hora", "email", "estado", "documento"} {
		if len(errs[field]) == 0 {
			t.Errorf("expected violation for %s", field)
		}
	}
}

func TestValidate_ValidPayloadPasses(t *testing.T) {
	e := newTestEngine()
	rules := Rules{
		"fecha":  {Required(), Date()},
		"hora":   {Required(), TimeOfDay()},
		"estado": {Required(), String(), In("pendiente", "confirmada", "cancelada", "atendida")},
	}

	payload := map[string]interface{}{
		"fecha":  "2025-01-01",
		"hora":   "10:00",
		"estado": "pendiente",
	}

	errs, err := e.Validate(context.Background(), rules, payload, Create())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if errs != nil {
		t.Fatalf("expected acceptance, got %v", errs)
	}
}

func TestValidate_NullableAllowsNull(t *testing.T) {
	e := newTestEngine()
	rules := Rules{"telefono": {Nullable(), String(), Max(50)}}

	errs, err := e.Validate(context.Background(), rules, map[string]interface{}{"telefono": nil}, Create())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if errs != nil {
		t.Fatalf("expected null to pass a nullable field, got %v", errs)
	}
}

func TestValidate_NullOnRequiredField(t *testing.T) {
	e := newTestEngine()
	rules := Rules{"nombre": {Required(), String()}}

	errs, err := e.Validate(context.Background(), rules, map[string]interface{}{"nombre": nil}, Create())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(errs["nombre"]) == 0 {
		t.Fatal("expected violation for null on required field")
	}
}

func TestValidate_Exists(t *testing.T) {
	chk := newFakeChecker()
	chk.addRow("pacientes", 1)
	e := NewEngine(chk)

	rules := Rules{"paciente_id": {Required(), Integer(), Exists("pacientes")}}

	errs, err := e.Validate(context.Background(), rules, map[string]interface{}{"paciente_id": float64(1)}, Create())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if errs != nil {
		t.Fatalf("expected existing id to pass, got %v", errs)
	}

	errs, err = e.Validate(context.Background(), rules, map[string]interface{}{"paciente_id": float64(99)}, Create())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(errs["paciente_id"]) == 0 {
		t.Fatal("expected violation for dangling reference")
	}
}

func TestValidate_UniqueExcludesCurrentRow(t *testing.T) {
	chk := newFakeChecker()
	chk.addValue("pacientes", "documento", "98765432", 1)
	e := NewEngine(chk)

	rules := Rules{"documento": {String(), Unique("pacientes", "documento")}}
	payload := map[string]interface{}{"documento": "98765432"}

	// Another row claiming the same documento is rejected.
	errs, err := e.Validate(context.Background(), rules, payload, Create())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(errs["documento"]) == 0 {
		t.Fatal("expected uniqueness violation")
	}

	// The owning row may keep its own documento on update.
	errs, err = e.Validate(context.Background(), rules, payload, Update(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if errs != nil {
		t.Fatalf("expected update on owning row to pass, got %v", errs)
	}
}

func TestValidate_AfterOrdering(t *testing.T) {
	e := newTestEngine()
	rules := Rules{
		"hora_inicio": {Required(), TimeOfDay()},
		"hora_fin":    {Required(), TimeOfDay(), After("hora_inicio")},
	}

	errs, err := e.Validate(context.Background(), rules, map[string]interface{}{
		"hora_inicio": "10:00",
		"hora_fin":    "09:00",
	}, Create())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(errs["hora_fin"]) == 0 {
		t.Fatal("expected violation for hora_fin before hora_inicio")
	}

	errs, err = e.Validate(context.Background(), rules, map[string]interface{}{
		"hora_inicio": "08:00",
		"hora_fin":    "12:30",
	}, Create())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if errs != nil {
		t.Fatalf("expected ordered window to pass, got %v", errs)
	}

	// After cannot order against a missing anchor, so the field fails.
	errs, err = e.Validate(context.Background(), rules, map[string]interface{}{"hora_fin": "12:30"}, Update(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(errs["hora_fin"]) == 0 {
		t.Fatalf("expected violation when the anchor field is absent, got %v", errs)
	}
}

func TestValidate_AccumulatesViolationsPerField(t *testing.T) {
	e := newTestEngine()
	rules := Rules{"email": {String(), MinLen(30), Email()}}

	errs, err := e.Validate(context.Background(), rules, map[string]interface{}{"email": "no-es-correo"}, Create())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(errs["email"]) != 2 {
		t.Fatalf("expected both the length and format violations, got %v", errs["email"])
	}
}

func TestValidate_NoRepeatedMessages(t *testing.T) {
	e := newTestEngine()
	rules := Rules{"ciudad_id": {Integer(), Exists("ciudades")}}

	// Integer and Exists both complain about a non-integer value with the
	// same message; it must appear once.
	errs, err := e.Validate(context.Background(), rules, map[string]interface{}{"ciudad_id": "bogotá"}, Create())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(errs["ciudad_id"]) != 1 {
		t.Fatalf("expected a single deduplicated violation, got %v", errs["ciudad_id"])
	}
}

func TestPayloadAccessors(t *testing.T) {
	p := map[string]interface{}{
		"nombre": "Ana",
		"ciudad": float64(3),
		"precio": 25.5,
		"nota":   nil,
	}

	if s, ok := Str(p, "nombre"); !ok || s != "Ana" {
		t.Errorf("Str: got %q, %v", s, ok)
	}
	if n, ok := Int64(p, "ciudad"); !ok || n != 3 {
		t.Errorf("Int64: got %d, %v", n, ok)
	}
	if f, ok := Float64(p, "precio"); !ok || f != 25.5 {
		t.Errorf("Float64: got %f, %v", f, ok)
	}
	if !Has(p, "nota") || !IsNull(p, "nota") {
		t.Error("expected nota to be present and null")
	}
	if Has(p, "ausente") {
		t.Error("expected ausente to be absent")
	}
	if _, ok := Str(p, "nota"); ok {
		t.Error("Str on null should report absence")
	}
}
