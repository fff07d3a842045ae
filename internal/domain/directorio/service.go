package directorio

import (
	"context"

	"github.com/epsalud/eps-api/internal/platform/validation"
)

var medicoRules = validation.Rules{
	"nombre":          {validation.Required(), validation.String(), validation.Max(255)},
	"documento":       {validation.Required(), validation.String(), validation.Max(50), validation.Unique("medicos", "documento")},
	"telefono":        {validation.Nullable(), validation.String(), validation.Max(50)},
	"email":           {validation.Nullable(), validation.Email(), validation.Max(100), validation.Unique("medicos", "email")},
	"especialidad_id": {validation.Required(), validation.Integer(), validation.Exists("especialidades")},
	"ciudad_id":       {validation.Required(), validation.Integer(), validation.Exists("ciudades")},
}

type MedicoService struct {
	repo MedicoRepository
	val  *validation.Engine
}

func NewMedicoService(repo MedicoRepository, val *validation.Engine) *MedicoService {
	return &MedicoService{repo: repo, val: val}
}

func (s *MedicoService) List(ctx context.Context) ([]*Medico, error) {
	return s.repo.List(ctx)
}

func (s *MedicoService) Get(ctx context.Context, id int64) (*Medico, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *MedicoService) Create(ctx context.Context, payload map[string]interface{}) (*Medico, error) {
	verrs, err := s.val.Validate(ctx, medicoRules, payload, validation.Create())
	if err != nil {
		return nil, err
	}
	if verrs != nil {
		return nil, verrs
	}
	m := &Medico{}
	applyMedico(m, payload)
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MedicoService) Update(ctx context.Context, id int64, payload map[string]interface{}) (*Medico, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	verrs, err := s.val.Validate(ctx, medicoRules, payload, validation.Update(id))
	if err != nil {
		return nil, err
	}
	if verrs != nil {
		return nil, verrs
	}
	applyMedico(m, payload)
	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MedicoService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

var consultorioRules = validation.Rules{
	"ciudad_id": {validation.Required(), validation.Integer(), validation.Exists("ciudades")},
	"nombre":    {validation.Required(), validation.String(), validation.Max(255)},
	"direccion": {validation.Nullable(), validation.String(), validation.Max(255)},
	"telefono":  {validation.Nullable(), validation.String(), validation.Max(50)},
}

type ConsultorioService struct {
	repo ConsultorioRepository
	val  *validation.Engine
}

func NewConsultorioService(repo ConsultorioRepository, val *validation.Engine) *ConsultorioService {
	return &ConsultorioService{repo: repo, val: val}
}

func (s *ConsultorioService) List(ctx context.Context) ([]*Consultorio, error) {
	return s.repo.List(ctx)
}

func (s *ConsultorioService) Get(ctx context.Context, id int64) (*Consultorio, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ConsultorioService) Create(ctx context.Context, payload map[string]interface{}) (*Consultorio, error) {
	verrs, err := s.val.Validate(ctx, consultorioRules, payload, validation.Create())
	if err != nil {
		return nil, err
	}
	if verrs != nil {
		return nil, verrs
	}
	con := &Consultorio{}
	applyConsultorio(con, payload)
	if err := s.repo.Create(ctx, con); err != nil {
		return nil, err
	}
	return con, nil
}

func (s *ConsultorioService) Update(ctx context.Context, id int64, payload map[string]interface{}) (*Consultorio, error) {
	con, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	verrs, err := s.val.Validate(ctx, consultorioRules, payload, validation.Update(id))
	if err != nil {
		return nil, err
	}
	if verrs != nil {
		return nil, verrs
	}
	applyConsultorio(con, payload)
	if err := s.repo.Update(ctx, con); err != nil {
		return nil, err
	}
	return con, nil
}

func (s *ConsultorioService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

var horarioRules = validation.Rules{
	"medico_id":      {validation.Required(), validation.Integer(), validation.Exists("medicos")},
	"consultorio_id": {validation.Required(), validation.Integer(), validation.Exists("consultorios")},
	"dia_semana":     {validation.Required(), validation.String(), validation.Max(20)},
	"hora_inicio":    {validation.Required(), validation.TimeOfDay()},
	"hora_fin":       {validation.Required(), validation.TimeOfDay(), validation.After("hora_inicio")},
}

type HorarioService struct {
	repo HorarioRepository
	val  *validation.Engine
}

func NewHorarioService(repo HorarioRepository, val *validation.Engine) *HorarioService {
	return &HorarioService{repo: repo, val: val}
}

func (s *HorarioService) List(ctx context.Context) ([]*Horario, error) {
	return s.repo.List(ctx)
}

func (s *HorarioService) Get(ctx context.Context, id int64) (*Horario, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *HorarioService) Create(ctx context.Context, payload map[string]interface{}) (*Horario, error) {
	verrs, err := s.val.Validate(ctx, horarioRules, payload, validation.Create())
	if err != nil {
		return nil, err
	}
	if verrs != nil {
		return nil, verrs
	}
	hor := &Horario{}
	applyHorario(hor, payload)
	if err := s.repo.Create(ctx, hor); err != nil {
		return nil, err
	}
	return hor, nil
}

func (s *HorarioService) Update(ctx context.Context, id int64, payload map[string]interface{}) (*Horario, error) {
	hor, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	// A one-sided window update is checked against the stored counterpart.
	if validation.Has(payload, "hora_fin") && !validation.Has(payload, "hora_inicio") {
		payload["hora_inicio"] = hor.HoraInicio
	}
	if validation.Has(payload, "hora_inicio") && !validation.Has(payload, "hora_fin") {
		payload["hora_fin"] = hor.HoraFin
	}
	verrs, err := s.val.Validate(ctx, horarioRules, payload, validation.Update(id))
	if err != nil {
		return nil, err
	}
	if verrs != nil {
		return nil, verrs
	}
	applyHorario(hor, payload)
	if err := s.repo.Update(ctx, hor); err != nil {
		return nil, err
	}
	return hor, nil
}

func (s *HorarioService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
