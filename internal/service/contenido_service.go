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

type ContenidoService interface {
	Crear(ctx context.Context, req dto.CrearContenidoRequest) (*dto.ContenidoResponse, error)
	Listar(ctx context.Context) ([]dto.ContenidoResponse, error)
	ObtenerPorID(ctx context.Context, id int) (*dto.ContenidoResponse, error)
	Actualizar(ctx context.Context, id int, req dto.ActualizarContenidoRequest) (*dto.ContenidoResponse, error)
	Eliminar(ctx context.Context, id int) error
}

type contenidoService struct {
	repo repository.ContenidoRepository
}

func NewContenidoService(repo repository.ContenidoRepository) ContenidoService {
	return &contenidoService{repo: repo}
}

func mapContenido(c *model.ContenidoPresupuesto) *dto.ContenidoResponse {
	return &dto.ContenidoResponse{
		ID:        c.ID,
		Nombre:    c.Nombre,
		Titulo:    c.Titulo,
		Contenido: c.Contenido,
	}
}

func validateContenido(req dto.CrearContenidoRequest) error {
	var missing []string
	if req.Titulo == "" {
		missing = append(missing, "titulo")
	}
	if req.Contenido == "" {
		missing = append(missing, "contenido")
	}
	if len(missing) > 0 {
		return apierror.Validation(missing...)
	}
	return nil
}

func (s *contenidoService) Crear(ctx context.Context, req dto.CrearContenidoRequest) (*dto.ContenidoResponse, error) {
	if err := validateContenido(req); err != nil {
		return nil, err
	}
	c := &model.ContenidoPresupuesto{
		Nombre:    req.Nombre,
		Titulo:    req.Titulo,
		Contenido: req.Contenido,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, translateDBError(err, "error al crear contenido")
	}
	return mapContenido(c), nil
}

func (s *contenidoService) Listar(ctx context.Context) ([]dto.ContenidoResponse, error) {
	contenidos, err := s.repo.List(ctx)
	if err != nil {
		return nil, translateDBError(err, "error al listar contenidos")
	}
	result := make([]dto.ContenidoResponse, 0, len(contenidos))
	for i := range contenidos {
		result = append(result, *mapContenido(&contenidos[i]))
	}
	return result, nil
}

func (s *contenidoService) ObtenerPorID(ctx context.Context, id int) (*dto.ContenidoResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Contenido no encontrado.")
		}
		return nil, translateDBError(err, "error al obtener contenido")
	}
	return mapContenido(c), nil
}

func (s *contenidoService) Actualizar(ctx context.Context, id int, req dto.ActualizarContenidoRequest) (*dto.ContenidoResponse, error) {
	if err := validateContenido(req); err != nil {
		return nil, err
	}
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Contenido no encontrado.")
		}
		return nil, translateDBError(err, "error al obtener contenido")
	}
	c.Nombre = req.Nombre
	c.Titulo = req.Titulo
	c.Contenido = req.Contenido
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, translateDBError(err, "error al actualizar contenido")
	}
	return mapContenido(c), nil
}

func (s *contenidoService) Eliminar(ctx context.Context, id int) error {
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return translateDBError(err, "error al eliminar contenido")
	}
	if rows == 0 {
		return apierror.NotFound("Contenido no encontrado.")
	}
	return nil
}
