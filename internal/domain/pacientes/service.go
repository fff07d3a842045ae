package pacientes

import (
	"context"

	"github.com/epsalud/eps-api/internal/platform/validation"
)

var pacienteRules = validation.Rules{
	"nombre":    {validation.Required(), validation.String(), validation.Max(255)},
	"documento": {validation.Required(), validation.String(), validation.Max(50), validation.Unique("pacientes", "documento")},
	"telefono":  {validation.Nullable(), validation.String(), validation.Max(50)},
	"email":     {validation.Nullable(), validation.Email(), validation.Max(100), validation.Unique("pacientes", "email")},
	"direccion": {validation.Nullable(), validation.String(), validation.Max(255)},
	"ciudad_id": {validation.Required(), validation.Integer(), validation.Exists("ciudades")},
}

type PacienteService struct {
	repo PacienteRepository
	val  *validation.Engine
}

func NewPacienteService(repo PacienteRepository, val *validation.Engine) *PacienteService {
	return &PacienteService{repo: repo, val: val}
}

func (s *PacienteService) List(ctx context.Context) ([]*Paciente, error) {
	return s.repo.List(ctx)
}

func (s *PacienteService) Get(ctx context.Context, id int64) (*Paciente, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *PacienteService) Create(ctx context.Context, payload map[string]interface{}) (*Paciente, error) {
	verrs, err := s.val.Validate(ctx, pacienteRules, payload, validation.Create())
	if err != nil {
		return nil, err
	}
	if verrs != nil {
		return nil, verrs
	}
	pac := &Paciente{}
	applyPaciente(pac, payload)
	if err := s.repo.Create(ctx, pac); err != nil {
		return nil, err
	}
	return pac, nil
}

func (s *PacienteService) Update(ctx context.Context, id int64, payload map[string]interface{}) (*Paciente, error) {
	pac, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	verrs, err := s.val.Validate(ctx, pacienteRules, payload, validation.Update(id))
	if err != nil {
		return nil, err
	}
	if verrs != nil {
		return nil, verrs
	}
	applyPaciente(pac, payload)
	if err := s.repo.Update(ctx, pac); err != nil {
		return nil, err
	}
	return pac, nil
}

func (s *PacienteService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

var historiaRules = validation.Rules{
	"paciente_id":   {validation.Required(), validation.Integer(), validation.Exists("pacientes")},
	"antecedentes":  {validation.Nullable(), validation.String(), validation.Max(1000)},
	"alergias":      {validation.Nullable(), validation.String(), validation.Max(500)},
	"observaciones": {validation.Nullable(), validation.String(), validation.Max(1000)},
}

type HistoriaClinicaService struct {
	repo HistoriaClinicaRepository
	val  *validation.Engine
}

func NewHistoriaClinicaService(repo HistoriaClinicaRepository, val *validation.Engine) *HistoriaClinicaService {
	return &HistoriaClinicaService{repo: repo, val: val}
}

func (s *HistoriaClinicaService) List(ctx context.Context) ([]*HistoriaClinica, error) {
	return s.repo.List(ctx)
}

func (s *HistoriaClinicaService) Get(ctx context.Context, id int64) (*HistoriaClinica, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *HistoriaClinicaService) Create(ctx context.Context, payload map[string]interface{}) (*HistoriaClinica, error) {
	verrs, err := s.val.Validate(ctx, historiaRules, payload, validation.Create())
	if err != nil {
		return nil, err
	}
	if verrs != nil {
		return nil, verrs
	}
	his := &HistoriaClinica{}
	applyHistoria(his, payload)
	if err := s.repo.Create(ctx, his); err != nil {
		return nil, err
	}
	return his, nil
}

func (s *HistoriaClinicaService) Update(ctx context.Context, id int64, payload map[string]interface{}) (*HistoriaClinica, error) {
	his, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	verrs, err := s.val.Validate(ctx, historiaRules, payload, validation.Update(id))
	if err != nil {
		return nil, err
	}
	if verrs != nil {
		return nil, verrs
	}
	applyHistoria(his, payload)
	if err := s.repo.Update(ctx, his); err != nil {
		return nil, err
	}
	return his, nil
}

func (s *HistoriaClinicaService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
