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

type EmpresaService interface {
	Crear(ctx context.Context, req dto.CrearEmpresaRequest) (*dto.EmpresaResponse, error)
	Listar(ctx context.Context) ([]dto.EmpresaResponse, error)
	ObtenerPorID(ctx context.Context, id int) (*dto.EmpresaResponse, error)
	Actualizar(ctx context.Context, id int, req dto.ActualizarEmpresaRequest) (*dto.EmpresaResponse, error)
	Eliminar(ctx context.Context, id int) error
}

type empresaService struct {
	repo repository.EmpresaRepository
}

func NewEmpresaService(repo repository.EmpresaRepository) EmpresaService {
	return &empresaService{repo: repo}
}

func mapEmpresa(e *model.Empresa) *dto.EmpresaResponse {
	return &dto.EmpresaResponse{
		ID:         e.ID,
		Nombre:     e.Nombre,
		Telefono:   e.Telefono,
		URLEmpresa: e.URLEmpresa,
		URLLogo:    e.URLLogo,
	}
}

func validateEmpresa(req dto.CrearEmpresaRequest) error {
	var missing []string
	if req.Nombre == "" {
		missing = append(missing, "nombre")
	}
	if req.Telefono == "" {
		missing = append(missing, "telefono")
	}
	if req.URLEmpresa == "" {
		missing = append(missing, "url_empresa")
	}
	if req.URLLogo == "" {
		missing = append(missing, "url_logo")
	}
	if len(missing) > 0 {
		return apierror.Validation(missing...)
	}
	return nil
}

func (s *empresaService) Crear(ctx context.Context, req dto.CrearEmpresaRequest) (*dto.EmpresaResponse, error) {
	if err := validateEmpresa(req); err != nil {
		return nil, err
	}
	e := &model.Empresa{
		Nombre:     req.Nombre,
		Telefono:   &req.Telefono,
		URLEmpresa: &req.URLEmpresa,
		URLLogo:    &req.URLLogo,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, translateDBError(err, "error al crear empresa")
	}
	return mapEmpresa(e), nil
}

func (s *empresaService) Listar(ctx context.Context) ([]dto.EmpresaResponse, error) {
	empresas, err := s.repo.List(ctx)
	if err != nil {
		return nil, translateDBError(err, "error al listar empresas")
	}
	result := make([]dto.EmpresaResponse, 0, len(empresas))
	for i := range empresas {
		result = append(result, *mapEmpresa(&empresas[i]))
	}
	return result, nil
}

func (s *empresaService) ObtenerPorID(ctx context.Context, id int) (*dto.EmpresaResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Empresa no encontrada.")
		}
		return nil, translateDBError(err, "error al obtener empresa")
	}
	return mapEmpresa(e), nil
}

func (s *empresaService) Actualizar(ctx context.Context, id int, req dto.ActualizarEmpresaRequest) (*dto.EmpresaResponse, error) {
	if err := validateEmpresa(req); err != nil {
		return nil, err
	}
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Empresa no encontrada.")
		}
		return nil, translateDBError(err, "error al obtener empresa")
	}
	e.Nombre = req.Nombre
	e.Telefono = &req.Telefono
	e.URLEmpresa = &req.URLEmpresa
	e.URLLogo = &req.URLLogo
	if err := s.repo.Update(ctx, e); err != nil {
		return nil, translateDBError(err, "error al actualizar empresa")
	}
	return mapEmpresa(e), nil
}

// Eliminar checks existence before issuing the delete so a missing empresa
// yields a clean not-found.
func (s *empresaService) Eliminar(ctx context.Context, id int) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Empresa no encontrada.")
		}
		return translateDBError(err, "error al obtener empresa")
	}
	if _, err := s.repo.Delete(ctx, id); err != nil {
		return translateDBError(err, "error al eliminar empresa")
	}
	return nil
}
