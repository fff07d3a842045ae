package aseguramiento

import (
	"context"

	"github.com/epsalud/eps-api/internal/platform/validation"
)

var aseguradoraRules = validation.Rules{
	"nombre":    {validation.Required(), validation.String(), validation.Max(255)},
	"nit":       {validation.Required(), validation.String(), validation.Max(50), validation.Unique("aseguradoras", "nit")},
	"direccion": {validation.Nullable(), validation.String(), validation.Max(255)},
	"telefono":  {validation.Nullable(), validation.String(), validation.Max(50)},
	"email":     {validation.Nullable(), validation.Email(), validation.Max(100)},
	"ciudad_id": {validation.Nullable(), validation.Integer(), validation.Exists("ciudades")},
}

type AseguradoraService struct {
	repo AseguradoraRepository
	val  *validation.Engine
}

func NewAseguradoraService(repo AseguradoraRepository, val *validation.Engine) *AseguradoraService {
	return &AseguradoraService{repo: repo, val: val}
}

func (s *AseguradoraService) List(ctx context.Context) ([]*Aseguradora, error) {
	return s.repo.List(ctx)
}

func (s *AseguradoraService) Get(ctx context.Context, id int64) (*Aseguradora, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *AseguradoraService) Create(ctx context.Context, payload map[string]interface{}) (*Aseguradora, error) {
	verrs, err := s.val.Validate(ctx, aseguradoraRules, payload, validation.Create())
	if err != nil {
		return nil, err
	}
	if verrs != nil {
		return nil, verrs
	}
	a := &Aseguradora{}
	applyAseguradora(a, payload)
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AseguradoraService) Update(ctx context.Context, id int64, payload map[string]interface{}) (*Aseguradora, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	verrs, err := s.val.Validate(ctx, aseguradoraRules, payload, validation.Update(id))
	if err != nil {
		return nil, err
	}
	if verrs != nil {
		return nil, verrs
	}
	applyAseguradora(a, payload)
	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AseguradoraService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

var afiliacionRules = validation.Rules{
	"paciente_id":    {validation.Required(), validation.Integer(), validation.Exists("pacientes")},
	"aseguradora_id": {validation.Required(), validation.Integer(), validation.Exists("aseguradoras")},
	"fecha_inicio":   {validation.Required(), validation.Date()},
	"fecha_fin":      {validation.Nullable(), validation.Date()},
	"estado": {validation.Required(), validation.String(), validation.Max(50),
		validation.In(EstadoActivo, EstadoInactivo)},
}

type AfiliacionService struct {
	repo AfiliacionRepository
	val  *validation.Engine
}

func NewAfiliacionService(repo AfiliacionRepository, val *validation.Engine) *AfiliacionService {
	return &AfiliacionService{repo: repo, val: val}
}

func (s *AfiliacionService) List(ctx context.Context) ([]*Afiliacion, error) {
	return s.repo.List(ctx)
}

func (s *AfiliacionService) Get(ctx context.Context, id int64) (*Afiliacion, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *AfiliacionService) Create(ctx context.Context, payload map[string]interface{}) (*Afiliacion, error) {
	verrs, err := s.val.Validate(ctx, afiliacionRules, payload, validation.Create())
	if err != nil {
		return nil, err
	}
	if verrs != nil {
		return nil, verrs
	}
	af := &Afiliacion{}
	applyAfiliacion(af, payload)
	if err := s.repo.Create(ctx, af); err != nil {
		return nil, err
	}
	return af, nil
}

func (s *AfiliacionService) Update(ctx context.Context, id int64, payload map[string]interface{}) (*Afiliacion, error) {
	af, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	verrs, err := s.val.Validate(ctx, afiliacionRules, payload, validation.Update(id))
	if err != nil {
		return nil, err
	}
	if verrs != nil {
		return nil, verrs
	}
	applyAfiliacion(af, payload)
	if err := s.repo.Update(ctx, af); err != nil {
		return nil, err
	}
	return af, nil
}

func (s *AfiliacionService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
