package citas

import (
	"context"

	"github.com/epsalud/eps-api/internal/platform/validation"
)

var citaRules = validation.Rules{
	"paciente_id":     {validation.Required(), validation.Integer(), validation.Exists("pacientes")},
	"especialidad_id": {validation.Required(), validation.Integer(), validation.Exists("especialidades")},
	"medico_id":       {validation.Required(), validation.Integer(), validation.Exists("medicos")},
	"consultorio_id":  {validation.Required(), validation.Integer(), validation.Exists("consultorios")},
	"fecha":           {validation.Required(), validation.Date()},
	"hora":            {validation.Required(), validation.TimeOfDay()},
	"estado": {validation.Required(), validation.String(), validation.Max(50),
		validation.In(EstadoPendiente, EstadoConfirmada, EstadoCancelada, EstadoAtendida)},
}

type CitaService struct {
	repo CitaRepository
	val  *validation.Engine
}

func NewCitaService(repo CitaRepository, val *validation.Engine) *CitaService {
	return &CitaService{repo: repo, val: val}
}

func (s *CitaService) List(ctx context.Context) ([]*Cita, error) {
	return s.repo.List(ctx)
}

func (s *CitaService) Get(ctx context.Context, id int64) (*Cita, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CitaService) Create(ctx context.Context, payload map[string]interface{}) (*Cita, error) {
	verrs, err := s.val.Validate(ctx, citaRules, payload, validation.Create())
	if err != nil {
		return nil, err
	}
	if verrs != nil {
		return nil, verrs
	}
	cita := &Cita{}
	applyCita(cita, payload)
	if err := s.repo.Create(ctx, cita); err != nil {
		return nil, err
	}
	return cita, nil
}

func (s *CitaService) Update(ctx context.Context, id int64, payload map[string]interface{}) (*Cita, error) {
	cita, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	verrs, err := s.val.Validate(ctx, citaRules, payload, validation.Update(id))
	if err != nil {
		return nil, err
	}
	if verrs != nil {
		return nil, verrs
	}
	applyCita(cita, payload)
	if err := s.repo.Update(ctx, cita); err != nil {
		return nil, err
	}
	return cita, nil
}

func (s *CitaService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

var consultaRules = validation.Rules{
	"cita_id":        {validation.Required(), validation.Integer(), validation.Exists("citas")},
	"motivo":         {validation.Required(), validation.String(), validation.Max(255)},
	"diagnostico":    {validation.Nullable(), validation.String(), validation.Max(255)},
	"tratamiento":    {validation.Nullable(), validation.String(), validation.Max(500)},
	"fecha_consulta": {validation.Nullable(), validation.Date()},
}

type ConsultaMedicaService struct {
	repo ConsultaMedicaRepository
	val  *validation.Engine
}

func NewConsultaMedicaService(repo ConsultaMedicaRepository, val *validation.Engine) *ConsultaMedicaService {
	return &ConsultaMedicaService{repo: repo, val: val}
}

func (s *ConsultaMedicaService) List(ctx context.Context) ([]*ConsultaMedica, error) {
	return s.repo.List(ctx)
}

func (s *ConsultaMedicaService) Get(ctx context.Context, id int64) (*ConsultaMedica, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ConsultaMedicaService) Create(ctx context.Context, payload map[string]interface{}) (*ConsultaMedica, error) {
	verrs, err := s.val.Validate(ctx, consultaRules, payload, validation.Create())
	if err != nil {
		return nil, err
	}
	if verrs != nil {
		return nil, verrs
	}
	con := &ConsultaMedica{}
	applyConsulta(con, payload)
	if err := s.repo.Create(ctx, con); err != nil {
		return nil, err
	}
	return con, nil
}

func (s *ConsultaMedicaService) Update(ctx context.Context, id int64, payload map[string]interface{}) (*ConsultaMedica, error) {
	con, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	verrs, err := s.val.Validate(ctx, consultaRules, payload, validation.Update(id))
	if err != nil {
		return nil, err
	}
	if verrs != nil {
		return nil, verrs
	}
	applyConsulta(con, payload)
	if err := s.repo.Update(ctx, con); err != nil {
		return nil, err
	}
	return con, nil
}

func (s *ConsultaMedicaService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
