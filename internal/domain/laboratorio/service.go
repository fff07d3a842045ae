package laboratorio

import (
	"context"

	"github.com/epsalud/eps-api/internal/platform/validation"
)

var laboratorioRules = validation.Rules{
	"nombre":    {validation.Required(), validation.String(), validation.Max(255)},
	"direccion": {validation.Nullable(), validation.String(), validation.Max(255)},
	"telefono":  {validation.Nullable(), validation.String(), validation.Max(50)},
	"ciudad_id": {validation.Nullable(), validation.Integer(), validation.Exists("ciudades")},
}

type LaboratorioService struct {
	repo LaboratorioRepository
	val  *validation.Engine
}

func NewLaboratorioService(repo LaboratorioRepository, val *validation.Engine) *LaboratorioService {
	return &LaboratorioService{repo: repo, val: val}
}

func (s *LaboratorioService) List(ctx context.Context) ([]*Laboratorio, error) {
	return s.repo.List(ctx)
}

func (s *LaboratorioService) Get(ctx context.Context, id int64) (*Laboratorio, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *LaboratorioService) Create(ctx context.Context, payload map[string]interface{}) (*Laboratorio, error) {
	verrs, err := s.val.Validate(ctx, laboratorioRules, payload, validation.Create())
	if err != nil {
		return nil, err
	}
	if verrs != nil {
		return nil, verrs
	}
	l := &Laboratorio{}
	applyLaboratorio(l, payload)
	if err := s.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *LaboratorioService) Update(ctx context.Context, id int64, payload map[string]interface{}) (*Laboratorio, error) {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	verrs, err := s.val.Validate(ctx, laboratorioRules, payload, validation.Update(id))
	if err != nil {
		return nil, err
	}
	if verrs != nil {
		return nil, verrs
	}
	applyLaboratorio(l, payload)
	if err := s.repo.Update(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *LaboratorioService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

var examenRules = validation.Rules{
	"laboratorio_id": {validation.Required(), validation.Integer(), validation.Exists("laboratorios")},
	"nombre":         {validation.Required(), validation.String(), validation.Max(255)},
	"descripcion":    {validation.Nullable(), validation.String(), validation.Max(255)},
	"precio":         {validation.Required(), validation.Numeric(), validation.Min(0)},
}

type ExamenMedicoService struct {
	repo ExamenMedicoRepository
	val  *validation.Engine
}

func NewExamenMedicoService(repo ExamenMedicoRepository, val *validation.Engine) *ExamenMedicoService {
	return &ExamenMedicoService{repo: repo, val: val}
}

func (s *ExamenMedicoService) List(ctx context.Context) ([]*ExamenMedico, error) {
	return s.repo.List(ctx)
}

func (s *ExamenMedicoService) Get(ctx context.Context, id int64) (*ExamenMedico, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ExamenMedicoService) Create(ctx context.Context, payload map[string]interface{}) (*ExamenMedico, error) {
	verrs, err := s.val.Validate(ctx, examenRules, payload, validation.Create())
	if err != nil {
		return nil, err
	}
	if verrs != nil {
		return nil, verrs
	}
	e := &ExamenMedico{}
	applyExamen(e, payload)
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *ExamenMedicoService) Update(ctx context.Context, id int64, payload map[string]interface{}) (*ExamenMedico, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	verrs, err := s.val.Validate(ctx, examenRules, payload, validation.Update(id))
	if err != nil {
		return nil, err
	}
	if verrs != nil {
		return nil, verrs
	}
	applyExamen(e, payload)
	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *ExamenMedicoService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

var ordenRules = validation.Rules{
	"consulta_medica_id": {validation.Required(), validation.Integer(), validation.Exists("consultas_medicas")},
	"examen_medico_id":   {validation.Required(), validation.Integer(), validation.Exists("examenes_medicos")},
	"laboratorio_id":     {validation.Required(), validation.Integer(), validation.Exists("laboratorios")},
	"fecha_orden":        {validation.Required(), validation.Date()},
	"estado":             {validation.Required(), validation.String(), validation.Max(50), validation.In(EstadoPendiente, EstadoRealizado, EstadoEntregado)},
}

type OrdenExamenService struct {
	repo OrdenExamenRepository
	val  *validation.Engine
}

func NewOrdenExamenService(repo OrdenExamenRepository, val *validation.Engine) *OrdenExamenService {
	return &OrdenExamenService{repo: repo, val: val}
}

func (s *OrdenExamenService) List(ctx context.Context) ([]*OrdenExamen, error) {
	return s.repo.List(ctx)
}

func (s *OrdenExamenService) Get(ctx context.Context, id int64) (*OrdenExamen, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *OrdenExamenService) Create(ctx context.Context, payload map[string]interface{}) (*OrdenExamen, error) {
	verrs, err := s.val.Validate(ctx, ordenRules, payload, validation.Create())
	if err != nil {
		return nil, err
	}
	if verrs != nil {
		return nil, verrs
	}
	o := &OrdenExamen{}
	applyOrden(o, payload)
	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *OrdenExamenService) Update(ctx context.Context, id int64, payload map[string]interface{}) (*OrdenExamen, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	verrs, err := s.val.Validate(ctx, ordenRules, payload, validation.Update(id))
	if err != nil {
		return nil, err
	}
	if verrs != nil {
		return nil, verrs
	}
	applyOrden(o, payload)
	if err := s.repo.Update(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *OrdenExamenService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
