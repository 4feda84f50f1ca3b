package service

import (
	"context"
	"errors"
	"time"

	"presupuestos/internal/apierror"
	"presupuestos/internal/config"
	"presupuestos/internal/dto"
	"presupuestos/internal/model"
	"presupuestos/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ErrCredencialesInvalidas signals a failed login. The handler maps it to 401
// without leaking whether the email or the password was wrong.
var ErrCredencialesInvalidas = errors.New("credenciales inválidas")

const bcryptCost = 10

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	CrearUsuario(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error)
	ListarUsuarios(ctx context.Context) ([]dto.UsuarioResponse, error)
	ObtenerUsuario(ctx context.Context, id int) (*dto.UsuarioResponse, error)
	ActualizarUsuario(ctx context.Context, id int, req dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error)
	EliminarUsuario(ctx context.Context, id int) error
}

type authService struct {
	repo repository.UsuarioRepository
	cfg  *config.Config
}

func NewAuthService(repo repository.UsuarioRepository, cfg *config.Config) AuthService {
	return &authService{repo: repo, cfg: cfg}
}

func mapUsuario(u *model.Usuario) *dto.UsuarioResponse {
	return &dto.UsuarioResponse{
		ID:      u.ID,
		Role:    u.Role,
		Email:   u.Email,
		Name:    u.Name,
		Company: u.Company,
	}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	var missing []string
	if req.Email == "" {
		missing = append(missing, "email")
	}
	if req.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return nil, apierror.Validation(missing...)
	}

	u, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCredencialesInvalidas
		}
		return nil, translateDBError(err, "error al buscar usuario")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrCredencialesInvalidas
	}

	token, err := s.generateToken(u)
	if err != nil {
		return nil, translateDBError(err, "error al firmar token")
	}
	return &dto.LoginResponse{Token: token, User: *mapUsuario(u)}, nil
}

func (s *authService) generateToken(u *model.Usuario) (string, error) {
	hours := s.cfg.JWTExpirationHours
	if hours <= 0 {
		hours = 1
	}
	claims := jwt.MapClaims{
		"id":    u.ID,
		"email": u.Email,
		"role":  u.Role,
		"name":  u.Name,
		"exp":   time.Now().Add(time.Duration(hours) * time.Hour).Unix(),
		"iat":   time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *authService) CrearUsuario(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error) {
	var missing []string
	if req.Role == "" {
		missing = append(missing, "role")
	}
	if req.Email == "" {
		missing = append(missing, "email")
	}
	if req.Name == "" {
		missing = append(missing, "name")
	}
	if req.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return nil, apierror.Validation(missing...)
	}
	if !validEmail(req.Email) {
		return nil, apierror.ValidationMsg("El formato del email es inválido.", "email")
	}
	if len(req.Password) < 8 {
		return nil, apierror.ValidationMsg("La contraseña debe tener al menos 8 caracteres.", "password")
	}

	if _, err := s.repo.FindByEmail(ctx, req.Email); err == nil {
		return nil, apierror.Conflict("El usuario ya existe.")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, translateDBError(err, "error al buscar usuario")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, translateDBError(err, "error al hashear contraseña")
	}
	u := &model.Usuario{
		Role:         req.Role,
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: string(hash),
		Company:      req.Company,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, translateDBError(err, "error al crear usuario")
	}
	return mapUsuario(u), nil
}

func (s *authService) ListarUsuarios(ctx context.Context) ([]dto.UsuarioResponse, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, translateDBError(err, "error al listar usuarios")
	}
	result := make([]dto.UsuarioResponse, 0, len(users))
	for i := range users {
		result = append(result, *mapUsuario(&users[i]))
	}
	return result, nil
}

func (s *authService) ObtenerUsuario(ctx context.Context, id int) (*dto.UsuarioResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Usuario no encontrado.")
		}
		return nil, translateDBError(err, "error al obtener usuario")
	}
	return mapUsuario(u), nil
}

func (s *authService) ActualizarUsuario(ctx context.Context, id int, req dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Usuario no encontrado.")
		}
		return nil, translateDBError(err, "error al obtener usuario")
	}
	if req.Email != "" && !validEmail(req.Email) {
		return nil, apierror.ValidationMsg("El formato del email es inválido.", "email")
	}
	if req.Role != "" {
		u.Role = req.Role
	}
	if req.Email != "" {
		u.Email = req.Email
	}
	if req.Name != "" {
		u.Name = req.Name
	}
	if req.Company != nil {
		u.Company = req.Company
	}
	if req.Password != "" {
		if len(req.Password) < 8 {
			return nil, apierror.ValidationMsg("La contraseña debe tener al menos 8 caracteres.", "password")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
		if err != nil {
			return nil, translateDBError(err, "error al hashear contraseña")
		}
		u.PasswordHash = string(hash)
	}
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, translateDBError(err, "error al actualizar usuario")
	}
	return mapUsuario(u), nil
}

func (s *authService) EliminarUsuario(ctx context.Context, id int) error {
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return translateDBError(err, "error al eliminar usuario")
	}
	if rows == 0 {
		return apierror.NotFound("Usuario no encontrado.")
	}
	return nil
}
