// Package validation implements the request validation engine shared by
// every resource handler: each entity declares an ordered rule set per
// field, and one generic interpreter evaluates submitted payloads against
// it before any write happens.
package validation

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// Checker answers the database-backed questions (foreign-key existence and
// uniqueness) the engine cannot answer from the payload alone.
type Checker interface {
	Exists(ctx context.Context, table, column string, value interface{}) (bool, error)
	Taken(ctx context.Context, table, column string, value interface{}, excludeID int64) (bool, error)
}

// Errors maps field names to human-readable violation messages. An empty
// map means the payload was accepted.
type Errors map[string][]string

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	return "validación fallida: " + strings.Join(fields, ", ")
}

// add appends a message, skipping exact repeats for the same field.
func (e Errors) add(field, msg string) {
	for _, existing := range e[field] {
		if existing == msg {
			return
		}
	}
	e[field] = append(e[field], msg)
}

// Op selects create or update semantics. On update only submitted fields
// are validated, required-ness is not enforced, and uniqueness checks
// exclude the row being updated.
type Op struct {
	update    bool
	excludeID int64
}

func Create() Op              { return Op{} }
func Update(excludeID int64) Op { return Op{update: true, excludeID: excludeID} }

type ruleKind int

const (
	kindCheck ruleKind = iota
	kindRequired
	kindNullable
)

type checkFunc func(ctx context.Context, chk Checker, payload map[string]interface{}, field string, value interface{}, op Op) (string, error)

// Rule is a single constraint on a field. Build rules with the package
// constructors (Required, String, Exists, ...).
type Rule struct {
	kind  ruleKind
	check checkFunc
}

// Rules maps a field name to its ordered list of constraints.
type Rules map[string][]Rule

// Engine interprets rule sets against request payloads.
type Engine struct {
	chk Checker
}

func NewEngine(chk Checker) *Engine {
	return &Engine{chk: chk}
}

// Validate runs the rule set over the payload. The returned Errors is nil
// when the payload passes. The second return value reports infrastructure
// failures (e.g. the existence check could not reach the database), which
// are distinct from validation failures.
func (e *Engine) Validate(ctx context.Context, rules Rules, payload map[string]interface{}, op Op) (Errors, error) {
	errs := Errors{}

	for field, fieldRules := range rules {
		value, present := payload[field]

		required := false
		nullable := false
		for _, r := range fieldRules {
			switch r.kind {
			case kindRequired:
				required = true
			case kindNullable:
				nullable = true
			}
		}

		if !present {
			if required && !op.update {
				errs.add(field, fmt.Sprintf("El campo %s es obligatorio.", field))
			}
			continue
		}

		if value == nil {
			if nullable {
				continue
			}
			if required {
				errs.add(field, fmt.Sprintf("El campo %s es obligatorio.", field))
			}
			continue
		}

		for _, r := range fieldRules {
			if r.kind != kindCheck {
				continue
			}
			msg, err := r.check(ctx, e.chk, payload, field, value, op)
			if err != nil {
				return nil, fmt.Errorf("validate %s: %w", field, err)
			}
			if msg != "" {
				errs.add(field, msg)
			}
		}
	}

	if len(errs) == 0 {
		return nil, nil
	}
	return errs, nil
}

// -- Rule constructors --

// Required makes the field mandatory on create. Updates never enforce it.
func Required() Rule { return Rule{kind: kindRequired} }

// Nullable allows an explicit JSON null to pass the remaining checks.
func Nullable() Rule { return Rule{kind: kindNullable} }

func String() Rule {
	return simple(func(_ map[string]interface{}, field string, value interface{}) string {
		if _, ok := value.(string); !ok {
			return fmt.Sprintf("El campo %s debe ser una cadena de texto.", field)
		}
		return ""
	})
}

func Integer() Rule {
	return simple(func(_ map[string]interface{}, field string, value interface{}) string {
		if _, ok := asInt64(value); !ok {
			return fmt.Sprintf("El campo %s debe ser un número entero.", field)
		}
		return ""
	})
}

func Numeric() Rule {
	return simple(func(_ map[string]interface{}, field string, value interface{}) string {
		if _, ok := asFloat64(value); !ok {
			return fmt.Sprintf("El campo %s debe ser numérico.", field)
		}
		return ""
	})
}

// Date accepts values in YYYY-MM-DD form.
func Date() Rule {
	return simple(func(_ map[string]interface{}, field string, value interface{}) string {
		s, ok := value.(string)
		if !ok {
			return fmt.Sprintf("El campo %s debe ser una fecha válida (YYYY-MM-DD).", field)
		}
		if _, err := time.Parse("2006-01-02", s); err != nil {
			return fmt.Sprintf("El campo %s debe ser una fecha válida (YYYY-MM-DD).", field)
		}
		return ""
	})
}

// TimeOfDay accepts values in HH:MM or HH:MM:SS form.
func TimeOfDay() Rule {
	return simple(func(_ map[string]interface{}, field string, value interface{}) string {
		s, ok := value.(string)
		if !ok || parseTimeOfDay(s) < 0 {
			return fmt.Sprintf("El campo %s debe ser una hora válida (HH:MM).", field)
		}
		return ""
	})
}

// Max bounds string length in characters, or numeric magnitude.
func Max(n int) Rule {
	return simple(func(_ map[string]interface{}, field string, value interface{}) string {
		if s, ok := value.(string); ok {
			if utf8.RuneCountInString(s) > n {
				return fmt.Sprintf("El campo %s no debe superar los %d caracteres.", field, n)
			}
			return ""
		}
		if f, ok := asFloat64(value); ok {
			if f > float64(n) {
				return fmt.Sprintf("El campo %s no debe ser mayor que %d.", field, n)
			}
			return ""
		}
		return ""
	})
}

// Min bounds numeric values from below.
func Min(n float64) Rule {
	return simple(func(_ map[string]interface{}, field string, value interface{}) string {
		if f, ok := asFloat64(value); ok && f < n {
			return fmt.Sprintf("El campo %s debe ser al menos %v.", field, n)
		}
		return ""
	})
}

// MinLen bounds string length in characters from below.
func MinLen(n int) Rule {
	return simple(func(_ map[string]interface{}, field string, value interface{}) string {
		if s, ok := value.(string); ok && utf8.RuneCountInString(s) < n {
			return fmt.Sprintf("El campo %s debe contener al menos %d caracteres.", field, n)
		}
		return ""
	})
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func Email() Rule {
	return simple(func(_ map[string]interface{}, field string, value interface{}) string {
		s, ok := value.(string)
		if !ok || !emailPattern.MatchString(s) {
			return fmt.Sprintf("El campo %s debe ser un correo electrónico válido.", field)
		}
		return ""
	})
}

// In restricts the value to an enumerated set.
func In(values ...string) Rule {
	allowed := make(map[string]bool, len(values))
	for _, v := range values {
		allowed[v] = true
	}
	return simple(func(_ map[string]interface{}, field string, value interface{}) string {
		s, ok := value.(string)
		if !ok || !allowed[s] {
			return fmt.Sprintf("El valor del campo %s no es válido.", field)
		}
		return ""
	})
}

// After requires a time-of-day field to be strictly later than another
// field in the same payload. The check fails when the other field was not
// submitted, so callers validating a partial update must supply the stored
// counterpart themselves.
func After(other string) Rule {
	return simple(func(payload map[string]interface{}, field string, value interface{}) string {
		otherRaw, ok := payload[other]
		if !ok || otherRaw == nil {
			return fmt.Sprintf("El campo %s debe ser posterior a %s.", field, other)
		}
		s, ok1 := value.(string)
		o, ok2 := otherRaw.(string)
		if !ok1 || !ok2 {
			return ""
		}
		a, b := parseTimeOfDay(s), parseTimeOfDay(o)
		if a < 0 || b < 0 {
			return ""
		}
		if a <= b {
			return fmt.Sprintf("El campo %s debe ser posterior a %s.", field, other)
		}
		return ""
	})
}

// Exists requires the value to match an id in the named table.
func Exists(table string) Rule {
	return Rule{kind: kindCheck, check: func(ctx context.Context, chk Checker, _ map[string]interface{}, field string, value interface{}, _ Op) (string, error) {
		id, ok := asInt64(value)
		if !ok {
			return fmt.Sprintf("El campo %s debe ser un número entero.", field), nil
		}
		found, err := chk.Exists(ctx, table, "id", id)
		if err != nil {
			return "", err
		}
		if !found {
			return fmt.Sprintf("El %s seleccionado no existe.", field), nil
		}
		return "", nil
	}}
}

// Unique requires the value to be absent from table.column. On update the
// row being updated is excluded from the check.
func Unique(table, column string) Rule {
	return Rule{kind: kindCheck, check: func(ctx context.Context, chk Checker, _ map[string]interface{}, field string, value interface{}, op Op) (string, error) {
		taken, err := chk.Taken(ctx, table, column, value, op.excludeID)
		if err != nil {
			return "", err
		}
		if taken {
			return fmt.Sprintf("El valor del campo %s ya está en uso.", field), nil
		}
		return "", nil
	}}
}

func simple(fn func(payload map[string]interface{}, field string, value interface{}) string) Rule {
	return Rule{kind: kindCheck, check: func(_ context.Context, _ Checker, payload map[string]interface{}, field string, value interface{}, _ Op) (string, error) {
		return fn(payload, field, value), nil
	}}
}

// asInt64 accepts the numeric shapes a JSON payload or test fixture can
// produce for an integer value.
func asInt64(value interface{}) (int64, bool) {
	switch v := value.(type) {
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
		return int64(v), true
	case int:
		return int64(v), true
	case int64:
		return v, true
	default:
		return 0, false
	}
}

func asFloat64(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

// parseTimeOfDay returns minutes since midnight, or -1 when the value is
// not an HH:MM or HH:MM:SS clock time.
func parseTimeOfDay(s string) int {
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Hour()*60 + t.Minute()
		}
	}
	return -1
}
