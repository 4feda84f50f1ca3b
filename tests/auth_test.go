package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"presupuestos/internal/apierror"
	"presupuestos/internal/config"
	"presupuestos/internal/dto"
	"presupuestos/internal/handler"
	"presupuestos/internal/middleware"
	"presupuestos/internal/model"
	"presupuestos/internal/repository"
	"presupuestos/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// stubUsuarioRepo is an in-memory UsuarioRepository with a case-insensitive
// email index, matching the LOWER(email) lookup of the real one.
type stubUsuarioRepo struct {
	usuarios map[int]*model.Usuario
	nextID   int
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{usuarios: make(map[int]*model.Usuario)}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	r.nextID++
	u.ID = r.nextID
	cp := *u
	r.usuarios[u.ID] = &cp
	return nil
}

func (r *stubUsuarioRepo) FindByEmail(_ context.Context, email string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id int) (*model.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *stubUsuarioRepo) List(_ context.Context) ([]model.Usuario, error) {
	var list []model.Usuario
	for id := 1; id <= r.nextID; id++ {
		if u, ok := r.usuarios[id]; ok {
			list = append(list, *u)
		}
	}
	return list, nil
}

func (r *stubUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	cp := *u
	r.usuarios[u.ID] = &cp
	return nil
}

func (r *stubUsuarioRepo) Delete(_ context.Context, id int) (int64, error) {
	if _, ok := r.usuarios[id]; !ok {
		return 0, nil
	}
	delete(r.usuarios, id)
	return 1, nil
}

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)

func buildAuthSvc() (service.AuthService, *stubUsuarioRepo) {
	repo := newStubUsuarioRepo()
	cfg := &config.Config{JWTSecret: "secreto-de-test", JWTExpirationHours: 1}
	return service.NewAuthService(repo, cfg), repo
}

func usuarioRequestValido() dto.CrearUsuarioRequest {
	return dto.CrearUsuarioRequest{
		Role:     "admin",
		Email:    "admin@blendmarketing.es",
		Name:     "Admin Demo",
		Password: "secreta123",
	}
}

func TestCrearUsuarioYLogin(t *testing.T) {
	svc, _ := buildAuthSvc()

	created, err := svc.CrearUsuario(context.Background(), usuarioRequestValido())
	require.NoError(t, err)
	assert.Equal(t, "admin@blendmarketing.es", created.Email)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "admin@blendmarketing.es",
		Password: "secreta123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, created.ID, resp.User.ID)

	// The token must carry the identity claims the frontend reads.
	token, _, err := jwt.NewParser().ParseUnverified(resp.Token, jwt.MapClaims{})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "admin@blendmarketing.es", claims["email"])
	assert.Equal(t, "admin", claims["role"])
	assert.Equal(t, "Admin Demo", claims["name"])
}

func TestLogin_EmailCaseInsensitive(t *testing.T) {
	svc, _ := buildAuthSvc()
	_, err := svc.CrearUsuario(context.Background(), usuarioRequestValido())
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "ADMIN@Blendmarketing.es",
		Password: "secreta123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	svc, _ := buildAuthSvc()
	_, err := svc.CrearUsuario(context.Background(), usuarioRequestValido())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), dto.LoginRequest{
		Email:    "admin@blendmarketing.es",
		Password: "otra",
	})
	assert.ErrorIs(t, err, service.ErrCredencialesInvalidas)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	svc, _ := buildAuthSvc()

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "nadie@blendmarketing.es",
		Password: "secreta123",
	})
	assert.ErrorIs(t, err, service.ErrCredencialesInvalidas)
}

func TestCrearUsuario_EmailDuplicado(t *testing.T) {
	svc, _ := buildAuthSvc()
	_, err := svc.CrearUsuario(context.Background(), usuarioRequestValido())
	require.NoError(t, err)

	_, err = svc.CrearUsuario(context.Background(), usuarioRequestValido())
	require.Error(t, err)
	assert.Equal(t, apierror.KindConflict, apierror.KindOf(err))
}

func TestCrearUsuario_PasswordCorta(t *testing.T) {
	svc, _ := buildAuthSvc()

	// Seven characters is just under the minimum.
	req := usuarioRequestValido()
	req.Password = "corta12"
	_, err := svc.CrearUsuario(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, apierror.KindValidation, apierror.KindOf(err))
	assert.Contains(t, err.Error(), "8 caracteres")
}

func TestUsuario_HashNuncaSale(t *testing.T) {
	svc, repo := buildAuthSvc()
	created, err := svc.CrearUsuario(context.Background(), usuarioRequestValido())
	require.NoError(t, err)

	// Stored as a bcrypt hash, never plaintext.
	stored := repo.usuarios[created.ID]
	assert.NotEqual(t, "secreta123", stored.PasswordHash)
	assert.True(t, strings.HasPrefix(stored.PasswordHash, "$2a$"))

	// And the serialized response has no password-like field at all.
	raw, err := json.Marshal(created)
	require.NoError(t, err)
	assert.NotContains(t, strings.ToLower(string(raw)), "password")
	assert.NotContains(t, string(raw), "secreta123")
}

func TestActualizarUsuario_CambioDePassword(t *testing.T) {
	svc, _ := buildAuthSvc()
	created, err := svc.CrearUsuario(context.Background(), usuarioRequestValido())
	require.NoError(t, err)

	_, err = svc.ActualizarUsuario(context.Background(), created.ID, dto.ActualizarUsuarioRequest{
		Password: "nueva-clave",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), dto.LoginRequest{
		Email:    "admin@blendmarketing.es",
		Password: "nueva-clave",
	})
	require.NoError(t, err)
}

func TestEliminarUsuario_NoExiste(t *testing.T) {
	svc, _ := buildAuthSvc()

	err := svc.EliminarUsuario(context.Background(), 9)
	require.Error(t, err)
	assert.Equal(t, apierror.KindNotFound, apierror.KindOf(err))
}

func perfilRouter(svc service.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	authH := handler.NewAuthHandler(svc)
	r.GET("/api/auth/me", middleware.JWTAuth("secreto-de-test"), authH.Perfil)
	return r
}

func TestPerfil_DevuelveUsuarioDelToken(t *testing.T) {
	svc, _ := buildAuthSvc()

	created, err := svc.CrearUsuario(context.Background(), usuarioRequestValido())
	require.NoError(t, err)
	login, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "admin@blendmarketing.es",
		Password: "secreta123",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	w := httptest.NewRecorder()
	perfilRouter(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var env struct {
		Status string              `json:"status"`
		Data   dto.UsuarioResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "success", env.Status)
	assert.Equal(t, created.ID, env.Data.ID)
	assert.Equal(t, "admin@blendmarketing.es", env.Data.Email)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestPerfil_SinTokenEs401(t *testing.T) {
	svc, _ := buildAuthSvc()

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	w := httptest.NewRecorder()
	perfilRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
