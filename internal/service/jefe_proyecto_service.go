package service

import (
	"context"
	"errors"

	"presupuestos/internal/apierror"
	"presupuestos/internal/dto"
	"presupuestos/internal/model"
	"presupuestos/internal/repository"

	"gorm.io/gorm"
)

type JefeProyectoService interface {
	Crear(ctx context.Context, req dto.CrearJefeProyectoRequest) (*dto.JefeProyectoResponse, error)
	Listar(ctx context.Context) ([]dto.JefeProyectoResponse, error)
	ObtenerPorID(ctx context.Context, id int) (*dto.JefeProyectoResponse, error)
	Actualizar(ctx context.Context, id int, req dto.ActualizarJefeProyectoRequest) (*dto.JefeProyectoResponse, error)
	Eliminar(ctx context.Context, id int) error
}

type jefeProyectoService struct {
	repo repository.JefeProyectoRepository
}

func NewJefeProyectoService(repo repository.JefeProyectoRepository) JefeProyectoService {
	return &jefeProyectoService{repo: repo}
}

func mapJefe(j *model.JefeProyecto) *dto.JefeProyectoResponse {
	return &dto.JefeProyectoResponse{
		ID:          j.ID,
		Nombre:      j.Nombre,
		Cargo:       j.Cargo,
		Telefono:    j.Telefono,
		Email:       j.Email,
		URLFotoJefe: j.URLFotoJefe,
	}
}

func validateJefe(req dto.CrearJefeProyectoRequest) error {
	var missing []string
	if req.Nombre == "" {
		missing = append(missing, "nombre")
	}
	if req.Cargo == "" {
		missing = append(missing, "cargo")
	}
	if req.Telefono == "" {
		missing = append(missing, "telefono")
	}
	if req.Email == "" {
		missing = append(missing, "email")
	}
	if req.URLFotoJefe == "" {
		missing = append(missing, "url_foto_jefe")
	}
	if len(missing) > 0 {
		return apierror.Validation(missing...)
	}
	if !validEmail(req.Email) {
		return apierror.ValidationMsg("El formato del email es inválido.", "email")
	}
	return nil
}

func (s *jefeProyectoService) Crear(ctx context.Context, req dto.CrearJefeProyectoRequest) (*dto.JefeProyectoResponse, error) {
	if err := validateJefe(req); err != nil {
		return nil, err
	}
	j := &model.JefeProyecto{
		Nombre:      req.Nombre,
		Cargo:       &req.Cargo,
		Telefono:    &req.Telefono,
		Email:       req.Email,
		URLFotoJefe: &req.URLFotoJefe,
	}
	if err := s.repo.Create(ctx, j); err != nil {
		return nil, translateDBError(err, "error al crear jefe de proyecto")
	}
	return mapJefe(j), nil
}

func (s *jefeProyectoService) Listar(ctx context.Context) ([]dto.JefeProyectoResponse, error) {
	jefes, err := s.repo.List(ctx)
	if err != nil {
		return nil, translateDBError(err, "error al listar jefes de proyecto")
	}
	result := make([]dto.JefeProyectoResponse, 0, len(jefes))
	for i := range jefes {
		result = append(result, *mapJefe(&jefes[i]))
	}
	return result, nil
}

func (s *jefeProyectoService) ObtenerPorID(ctx context.Context, id int) (*dto.JefeProyectoResponse, error) {
	j, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Jefe de proyecto no encontrado.")
		}
		return nil, translateDBError(err, "error al obtener jefe de proyecto")
	}
	return mapJefe(j), nil
}

func (s *jefeProyectoService) Actualizar(ctx context.Context, id int, req dto.ActualizarJefeProyectoRequest) (*dto.JefeProyectoResponse, error) {
	if err := validateJefe(req); err != nil {
		return nil, err
	}
	j, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Jefe de proyecto no encontrado.")
		}
		return nil, translateDBError(err, "error al obtener jefe de proyecto")
	}
	j.Nombre = req.Nombre
	j.Cargo = &req.Cargo
	j.Telefono = &req.Telefono
	j.Email = req.Email
	j.URLFotoJefe = &req.URLFotoJefe
	if err := s.repo.Update(ctx, j); err != nil {
		return nil, translateDBError(err, "error al actualizar jefe de proyecto")
	}
	return mapJefe(j), nil
}

// Eliminar checks existence first: deleting a missing jefe de proyecto is a
// not-found, never a silent no-op. Presupuestos that referenced the manager
// keep their row with the reference nulled by the schema (ON DELETE SET NULL).
func (s *jefeProyectoService) Eliminar(ctx context.Context, id int) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Jefe de proyecto no encontrado.")
		}
		return translateDBError(err, "error al obtener jefe de proyecto")
	}
	if _, err := s.repo.Delete(ctx, id); err != nil {
		return translateDBError(err, "error al eliminar jefe de proyecto")
	}
	return nil
}
