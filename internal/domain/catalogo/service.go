package catalogo

import (
	"context"
	"errors"

	"github.com/epsalud/eps-api/internal/platform/validation"
)

// ErrEspecialidadEnUso blocks deleting an especialidad that still has citas.
var ErrEspecialidadEnUso = errors.New("no se puede eliminar, hay citas asociadas")

var ciudadRules = validation.Rules{
	"nombre": {validation.Required(), validation.String(), validation.Max(255)},
}

type CiudadService struct {
	repo CiudadRepository
	val  *validation.Engine
}

func NewCiudadService(repo CiudadRepository, val *validation.Engine) *CiudadService {
	return &CiudadService{repo: repo, val: val}
}

func (s *CiudadService) List(ctx context.Context) ([]*Ciudad, error) {
	return s.repo.List(ctx)
}

func (s *CiudadService) Get(ctx context.Context, id int64) (*Ciudad, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CiudadService) Create(ctx context.Context, payload map[string]interface{}) (*Ciudad, error) {
	verrs, err := s.val.Validate(ctx, ciudadRules, payload, validation.Create())
	if err != nil {
		return nil, err
	}
	if verrs != nil {
		return nil, verrs
	}
	ciudad := &Ciudad{}
	applyCiudad(ciudad, payload)
	if err := s.repo.Create(ctx, ciudad); err != nil {
		return nil, err
	}
	return ciudad, nil
}

func (s *CiudadService) Update(ctx context.Context, id int64, payload map[string]interface{}) (*Ciudad, error) {
	ciudad, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	verrs, err := s.val.Validate(ctx, ciudadRules, payload, validation.Update(id))
	if err != nil {
		return nil, err
	}
	if verrs != nil {
		return nil, verrs
	}
	applyCiudad(ciudad, payload)
	if err := s.repo.Update(ctx, ciudad); err != nil {
		return nil, err
	}
	return ciudad, nil
}

func (s *CiudadService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

var especialidadRules = validation.Rules{
	"nombre": {validation.Required(), validation.String(), validation.Max(255)},
}

type EspecialidadService struct {
	repo EspecialidadRepository
	val  *validation.Engine
}

func NewEspecialidadService(repo EspecialidadRepository, val *validation.Engine) *EspecialidadService {
	return &EspecialidadService{repo: repo, val: val}
}

func (s *EspecialidadService) List(ctx context.Context) ([]*Especialidad, error) {
	return s.repo.List(ctx)
}

func (s *EspecialidadService) Get(ctx context.Context, id int64) (*Especialidad, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *EspecialidadService) Create(ctx context.Context, payload map[string]interface{}) (*Especialidad, error) {
	verrs, err := s.val.Validate(ctx, especialidadRules, payload, validation.Create())
	if err != nil {
		return nil, err
	}
	if verrs != nil {
		return nil, verrs
	}
	esp := &Especialidad{}
	applyEspecialidad(esp, payload)
	if err := s.repo.Create(ctx, esp); err != nil {
		return nil, err
	}
	return esp, nil
}

func (s *EspecialidadService) Update(ctx context.Context, id int64, payload map[string]interface{}) (*Especialidad, error) {
	esp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	verrs, err := s.val.Validate(ctx, especialidadRules, payload, validation.Update(id))
	if err != nil {
		return nil, err
	}
	if verrs != nil {
		return nil, verrs
	}
	applyEspecialidad(esp, payload)
	if err := s.repo.Update(ctx, esp); err != nil {
		return nil, err
	}
	return esp, nil
}

// Delete refuses to remove an especialidad that dependent citas still
// reference.
func (s *EspecialidadService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	has, err := s.repo.HasCitas(ctx, id)
	if err != nil {
		return err
	}
	if has {
		return ErrEspecialidadEnUso
	}
	return s.repo.Delete(ctx, id)
}
