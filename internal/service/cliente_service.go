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

type ClienteService interface {
	Crear(ctx context.Context, req dto.CrearClienteRequest) (*dto.ClienteResponse, error)
	Listar(ctx context.Context) ([]dto.ClienteResponse, error)
	ObtenerPorID(ctx context.Context, id int) (*dto.ClienteResponse, error)
	Actualizar(ctx context.Context, id int, req dto.ActualizarClienteRequest) (*dto.ClienteResponse, error)
	Eliminar(ctx context.Context, id int) error
}

type clienteService struct {
	repo repository.ClienteRepository
}

func NewClienteService(repo repository.ClienteRepository) ClienteService {
	return &clienteService{repo: repo}
}

func mapCliente(c *model.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:            c.ID,
		Nombre:        c.Nombre,
		EmpresaNombre: c.EmpresaNombre,
		Telefono:      c.Telefono,
		Email:         c.Email,
	}
}

func validateCliente(nombre, empresaNombre, telefono, email string) error {
	var missing []string
	if nombre == "" {
		missing = append(missing, "nombre")
	}
	if empresaNombre == "" {
		missing = append(missing, "empresa_nombre")
	}
	if telefono == "" {
		missing = append(missing, "telefono")
	}
	if email == "" {
		missing = append(missing, "email")
	}
	if len(missing) > 0 {
		return apierror.Validation(missing...)
	}
	if !validEmail(email) {
		return apierror.ValidationMsg("El formato del email es inválido.", "email")
	}
	return nil
}

func (s *clienteService) Crear(ctx context.Context, req dto.CrearClienteRequest) (*dto.ClienteResponse, error) {
	if err := validateCliente(req.Nombre, req.EmpresaNombre, req.Telefono, req.Email); err != nil {
		return nil, err
	}
	empresaNombre := req.EmpresaNombre
	c := &model.Cliente{
		Nombre:        req.Nombre,
		EmpresaNombre: &empresaNombre,
		Telefono:      req.Telefono,
		Email:         req.Email,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, translateDBError(err, "error al crear cliente")
	}
	return mapCliente(c), nil
}

func (s *clienteService) Listar(ctx context.Context) ([]dto.ClienteResponse, error) {
	clientes, err := s.repo.List(ctx)
	if err != nil {
		return nil, translateDBError(err, "error al listar clientes")
	}
	result := make([]dto.ClienteResponse, 0, len(clientes))
	for i := range clientes {
		result = append(result, *mapCliente(&clientes[i]))
	}
	return result, nil
}

func (s *clienteService) ObtenerPorID(ctx context.Context, id int) (*dto.ClienteResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Cliente no encontrado.")
		}
		return nil, translateDBError(err, "error al obtener cliente")
	}
	return mapCliente(c), nil
}

func (s *clienteService) Actualizar(ctx context.Context, id int, req dto.ActualizarClienteRequest) (*dto.ClienteResponse, error) {
	if err := validateCliente(req.Nombre, req.EmpresaNombre, req.Telefono, req.Email); err != nil {
		return nil, err
	}
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Cliente no encontrado.")
		}
		return nil, translateDBError(err, "error al obtener cliente")
	}
	empresaNombre := req.EmpresaNombre
	c.Nombre = req.Nombre
	c.EmpresaNombre = &empresaNombre
	c.Telefono = req.Telefono
	c.Email = req.Email
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, translateDBError(err, "error al actualizar cliente")
	}
	return mapCliente(c), nil
}

func (s *clienteService) Eliminar(ctx context.Context, id int) error {
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return translateDBError(err, "error al eliminar cliente")
	}
	if rows == 0 {
		return apierror.NotFound("Cliente no encontrado.")
	}
	return nil
}
