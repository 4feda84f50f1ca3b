package router

import (
	"time"

	"presupuestos/internal/config"
	"presupuestos/internal/handler"
	"presupuestos/internal/middleware"
	"presupuestos/internal/repository"
	"presupuestos/internal/service"
	"presupuestos/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.FrontendOrigin))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	presupuestoRepo := repository.NewPresupuestoRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	empresaRepo := repository.NewEmpresaRepository(db)
	jefeRepo := repository.NewJefeProyectoRepository(db)
	informacionRepo := repository.NewInformacionRepository(db)
	contenidoRepo := repository.NewContenidoRepository(db)
	usuarioRepo := repository.NewUsuarioRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	presupuestoSvc := service.NewPresupuestoService(presupuestoRepo, dispatcher, cfg)
	clienteSvc := service.NewClienteService(clienteRepo)
	empresaSvc := service.NewEmpresaService(empresaRepo)
	jefeSvc := service.NewJefeProyectoService(jefeRepo)
	informacionSvc := service.NewInformacionService(informacionRepo)
	contenidoSvc := service.NewContenidoService(contenidoRepo)
	authSvc := service.NewAuthService(usuarioRepo, cfg)

	// ── Handlers ─────────────────────────────────────────────────────────────
	presupuestosH := handler.NewPresupuestosHandler(presupuestoSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	empresasH := handler.NewEmpresasHandler(empresaSvc)
	jefesH := handler.NewJefesProyectosHandler(jefeSvc)
	informacionH := handler.NewInformacionHandler(informacionSvc)
	contenidosH := handler.NewContenidosHandler(contenidoSvc)
	authH := handler.NewAuthHandler(authSvc)
	usuariosH := handler.NewUsuariosHandler(authSvc)
	uploadsH := handler.NewUploadsHandler(cfg)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Uploaded images are served publicly so the proposal page can embed them.
	r.Static("/uploads", cfg.UploadDir)

	auth := r.Group("/api/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/logout", authH.Logout)
	}

	// The proposal read endpoints are public: clients open their presupuesto
	// from an emailed link without an account.
	r.GET("/api/presupuestos", presupuestosH.Listar)
	r.GET("/api/presupuestos/:id", presupuestosH.ObtenerPorID)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	api := r.Group("/api", jwtMW)
	{
		api.GET("/auth/me", authH.Perfil)

		api.POST("/presupuestos", presupuestosH.Crear)
		api.PUT("/presupuestos/:id", presupuestosH.Actualizar)
		api.DELETE("/presupuestos/:id", presupuestosH.Eliminar)

		clientes := api.Group("/clientes")
		{
			clientes.POST("", clientesH.Crear)
			clientes.GET("", clientesH.Listar)
			clientes.GET("/:id", clientesH.ObtenerPorID)
			clientes.PUT("/:id", clientesH.Actualizar)
			clientes.DELETE("/:id", clientesH.Eliminar)
		}

		empresa := api.Group("/empresa")
		{
			empresa.POST("", empresasH.Crear)
			empresa.GET("", empresasH.Listar)
			empresa.GET("/:id", empresasH.ObtenerPorID)
			empresa.PUT("/:id", empresasH.Actualizar)
			empresa.DELETE("/:id", empresasH.Eliminar)
		}

		jefes := api.Group("/jefes-proyectos")
		{
			jefes.POST("", jefesH.Crear)
			jefes.GET("", jefesH.Listar)
			jefes.GET("/:id", jefesH.ObtenerPorID)
			jefes.PUT("/:id", jefesH.Actualizar)
			jefes.DELETE("/:id", jefesH.Eliminar)
		}

		informacion := api.Group("/informacion")
		{
			informacion.POST("", informacionH.Crear)
			informacion.GET("", informacionH.Listar)
			informacion.GET("/:id", informacionH.ObtenerPorID)
			informacion.PUT("/:id", informacionH.Actualizar)
			informacion.DELETE("/:id", informacionH.Eliminar)
		}

		contenidos := api.Group("/contenido-presupuesto")
		{
			contenidos.POST("", contenidosH.Crear)
			contenidos.GET("", contenidosH.Listar)
			contenidos.GET("/:id", contenidosH.ObtenerPorID)
			contenidos.PUT("/:id", contenidosH.Actualizar)
			contenidos.DELETE("/:id", contenidosH.Eliminar)
		}

		// User administration is admin-only
		usuarios := api.Group("/usuarios", middleware.RequireRole("admin"))
		{
			usuarios.POST("", usuariosH.Crear)
			usuarios.GET("", usuariosH.Listar)
			usuarios.GET("/:id", usuariosH.ObtenerPorID)
			usuarios.PUT("/:id", usuariosH.Actualizar)
			usuarios.DELETE("/:id", usuariosH.Eliminar)
		}

		api.POST("/upload", uploadsH.Subir)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
