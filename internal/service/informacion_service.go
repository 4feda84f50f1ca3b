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

type InformacionService interface {
	Crear(ctx context.Context, req dto.CrearInformacionRequest) (*dto.InformacionResponse, error)
	Listar(ctx context.Context) ([]dto.InformacionResponse, error)
	ObtenerPorID(ctx context.Context, id int) (*dto.InformacionResponse, error)
	Actualizar(ctx context.Context, id int, req dto.ActualizarInformacionRequest) (*dto.InformacionResponse, error)
	Eliminar(ctx context.Context, id int) error
}

type informacionService struct {
	repo repository.InformacionRepository
}

func NewInformacionService(repo repository.InformacionRepository) InformacionService {
	return &informacionService{repo: repo}
}

func mapInformacion(info *model.Informacion) *dto.InformacionResponse {
	return &dto.InformacionResponse{
		ID:        info.ID,
		Titulo:    info.Titulo,
		IconoURL:  info.IconoURL,
		Contenido: info.Contenido,
	}
}

func (s *informacionService) Crear(ctx context.Context, req dto.CrearInformacionRequest) (*dto.InformacionResponse, error) {
	if req.Contenido == "" {
		return nil, apierror.Validation("contenido")
	}
	info := &model.Informacion{
		Titulo:    req.Titulo,
		IconoURL:  req.IconoURL,
		Contenido: req.Contenido,
	}
	if err := s.repo.Create(ctx, info); err != nil {
		return nil, translateDBError(err, "error al crear informacion")
	}
	return mapInformacion(info), nil
}

func (s *informacionService) Listar(ctx context.Context) ([]dto.InformacionResponse, error) {
	infos, err := s.repo.List(ctx)
	if err != nil {
		return nil, translateDBError(err, "error al listar informacion")
	}
	result := make([]dto.InformacionResponse, 0, len(infos))
	for i := range infos {
		result = append(result, *mapInformacion(&infos[i]))
	}
	return result, nil
}

func (s *informacionService) ObtenerPorID(ctx context.Context, id int) (*dto.InformacionResponse, error) {
	info, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Información no encontrada.")
		}
		return nil, translateDBError(err, "error al obtener informacion")
	}
	return mapInformacion(info), nil
}

func (s *informacionService) Actualizar(ctx context.Context, id int, req dto.ActualizarInformacionRequest) (*dto.InformacionResponse, error) {
	if req.Contenido == "" {
		return nil, apierror.Validation("contenido")
	}
	info, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Información no encontrada.")
		}
		return nil, translateDBError(err, "error al obtener informacion")
	}
	info.Titulo = req.Titulo
	info.IconoURL = req.IconoURL
	info.Contenido = req.Contenido
	if err := s.repo.Update(ctx, info); err != nil {
		return nil, translateDBError(err, "error al actualizar informacion")
	}
	return mapInformacion(info), nil
}

func (s *informacionService) Eliminar(ctx context.Context, id int) error {
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return translateDBError(err, "error al eliminar informacion")
	}
	if rows == 0 {
		return apierror.NotFound("Información no encontrada.")
	}
	return nil
}
