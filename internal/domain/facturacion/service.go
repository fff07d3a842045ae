package facturacion

import (
	"context"

	"github.com/epsalud/eps-api/internal/platform/validation"
)

var facturaRules = validation.Rules{
	"paciente_id":   {validation.Required(), validation.Integer(), validation.Exists("pacientes")},
	"cita_id":       {validation.Required(), validation.Integer(), validation.Exists("citas")},
	"monto_total":   {validation.Required(), validation.Numeric(), validation.Min(0)},
	"fecha_emision": {validation.Required(), validation.Date()},
	"estado":        {validation.Required(), validation.String(), validation.Max(50), validation.In(EstadoPendiente, EstadoPagada, EstadoAnulada)},
}

type FacturaService struct {
	repo FacturaRepository
	val  *validation.Engine
}

func NewFacturaService(repo FacturaRepository, val *validation.Engine) *FacturaService {
	return &FacturaService{repo: repo, val: val}
}

func (s *FacturaService) List(ctx context.Context) ([]*Factura, error) {
	return s.repo.List(ctx)
}

func (s *FacturaService) Get(ctx context.Context, id int64) (*Factura, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *FacturaService) Create(ctx context.Context, payload map[string]interface{}) (*Factura, error) {
	verrs, err := s.val.Validate(ctx, facturaRules, payload, validation.Create())
	if err != nil {
		return nil, err
	}
	if verrs != nil {
		return nil, verrs
	}
	f := &Factura{}
	applyFactura(f, payload)
	if err := s.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *FacturaService) Update(ctx context.Context, id int64, payload map[string]interface{}) (*Factura, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	verrs, err := s.val.Validate(ctx, facturaRules, payload, validation.Update(id))
	if err != nil {
		return nil, err
	}
	if verrs != nil {
		return nil, verrs
	}
	applyFactura(f, payload)
	if err := s.repo.Update(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *FacturaService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

var pagoRules = validation.Rules{
	"factura_id":  {validation.Required(), validation.Integer(), validation.Exists("facturas")},
	"monto":       {validation.Required(), validation.Numeric(), validation.Min(0)},
	"fecha_pago":  {validation.Required(), validation.Date()},
	"metodo_pago": {validation.Required(), validation.String(), validation.Max(50)},
}

type PagoService struct {
	repo PagoRepository
	val  *validation.Engine
}

func NewPagoService(repo PagoRepository, val *validation.Engine) *PagoService {
	return &PagoService{repo: repo, val: val}
}

func (s *PagoService) List(ctx context.Context) ([]*Pago, error) {
	return s.repo.List(ctx)
}

func (s *PagoService) Get(ctx context.Context, id int64) (*Pago, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *PagoService) Create(ctx context.Context, payload map[string]interface{}) (*Pago, error) {
	verrs, err := s.val.Validate(ctx, pagoRules, payload, validation.Create())
	if err != nil {
		return nil, err
	}
	if verrs != nil {
		return nil, verrs
	}
	p := &Pago{}
	applyPago(p, payload)
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PagoService) Update(ctx context.Context, id int64, payload map[string]interface{}) (*Pago, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	verrs, err := s.val.Validate(ctx, pagoRules, payload, validation.Update(id))
	if err != nil {
		return nil, err
	}
	if verrs != nil {
		return nil, verrs
	}
	applyPago(p, payload)
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PagoService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
