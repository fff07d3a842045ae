package farmacia

import (
	"context"

	"github.com/epsalud/eps-api/internal/platform/validation"
)

var medicamentoRules = validation.Rules{
	"nombre":       {validation.Required(), validation.String(), validation.Max(255)},
	"descripcion":  {validation.Nullable(), validation.String(), validation.Max(500)},
	"presentacion": {validation.Nullable(), validation.String(), validation.Max(100)},
	"stock":        {validation.Required(), validation.Integer(), validation.Min(0)},
	"precio":       {validation.Required(), validation.Numeric(), validation.Min(0)},
}

type MedicamentoService struct {
	repo MedicamentoRepository
	val  *validation.Engine
}

func NewMedicamentoService(repo MedicamentoRepository, val *validation.Engine) *MedicamentoService {
	return &MedicamentoService{repo: repo, val: val}
}

func (s *MedicamentoService) List(ctx context.Context) ([]*Medicamento, error) {
	return s.repo.List(ctx)
}

func (s *MedicamentoService) Get(ctx context.Context, id int64) (*Medicamento, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *MedicamentoService) Create(ctx context.Context, payload map[string]interface{}) (*Medicamento, error) {
	verrs, err := s.val.Validate(ctx, medicamentoRules, payload, validation.Create())
	if err != nil {
		return nil, err
	}
	if verrs != nil {
		return nil, verrs
	}
	med := &Medicamento{}
	applyMedicamento(med, payload)
	if err := s.repo.Create(ctx, med); err != nil {
		return nil, err
	}
	return med, nil
}

func (s *MedicamentoService) Update(ctx context.Context, id int64, payload map[string]interface{}) (*Medicamento, error) {
	med, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	verrs, err := s.val.Validate(ctx, medicamentoRules, payload, validation.Update(id))
	if err != nil {
		return nil, err
	}
	if verrs != nil {
		return nil, verrs
	}
	applyMedicamento(med, payload)
	if err := s.repo.Update(ctx, med); err != nil {
		return nil, err
	}
	return med, nil
}

func (s *MedicamentoService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

var recetaRules = validation.Rules{
	"consulta_medica_id": {validation.Required(), validation.Integer(), validation.Exists("consultas_medicas")},
	"medicamento_id":     {validation.Required(), validation.Integer(), validation.Exists("medicamentos")},
	"dosis":              {validation.Required(), validation.String(), validation.Max(100)},
	"frecuencia":         {validation.Nullable(), validation.String(), validation.Max(100)},
	"duracion":           {validation.Nullable(), validation.String(), validation.Max(100)},
}

type RecetaMedicaService struct {
	repo RecetaMedicaRepository
	val  *validation.Engine
}

func NewRecetaMedicaService(repo RecetaMedicaRepository, val *validation.Engine) *RecetaMedicaService {
	return &RecetaMedicaService{repo: repo, val: val}
}

func (s *RecetaMedicaService) List(ctx context.Context) ([]*RecetaMedica, error) {
	return s.repo.List(ctx)
}

func (s *RecetaMedicaService) Get(ctx context.Context, id int64) (*RecetaMedica, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *RecetaMedicaService) Create(ctx context.Context, payload map[string]interface{}) (*RecetaMedica, error) {
	verrs, err := s.val.Validate(ctx, recetaRules, payload, validation.Create())
	if err != nil {
		return nil, err
	}
	if verrs != nil {
		return nil, verrs
	}
	rec := &RecetaMedica{}
	applyReceta(rec, payload)
	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *RecetaMedicaService) Update(ctx context.Context, id int64, payload map[string]interface{}) (*RecetaMedica, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	verrs, err := s.val.Validate(ctx, recetaRules, payload, validation.Update(id))
	if err != nil {
		return nil, err
	}
	if verrs != nil {
		return nil, verrs
	}
	applyReceta(rec, payload)
	if err := s.repo.Update(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *RecetaMedicaService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
