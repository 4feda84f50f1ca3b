package tests

import (
	"context"
	"testing"
	"time"

	"presupuestos/internal/apierror"
	"presupuestos/internal/config"
	"presupuestos/internal/dto"
	"presupuestos/internal/model"
	"presupuestos/internal/repository"
	"presupuestos/internal/service"
	"presupuestos/internal/worker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

// stubPresupuestoRepo is an in-memory PresupuestoRepository. Content links are
// a plain slice (the real table has no unique pair constraint); informacion
// links are a set, mirroring the composite primary key.
type stubPresupuestoRepo struct {
	presupuestos map[int]*model.Presupuesto
	nextID       int

	contenidoLinks map[int][]int
	infoLinks      map[int]map[int]bool

	clientes      map[int]*model.Cliente
	empresas      map[int]*model.Empresa
	jefes         map[int]*model.JefeProyecto
	contenidos    map[int]*model.ContenidoPresupuesto
	informaciones map[int]*model.Informacion

	createErr error
}

func newStubPresupuestoRepo() *stubPresupuestoRepo {
	return &stubPresupuestoRepo{
		presupuestos:   make(map[int]*model.Presupuesto),
		contenidoLinks: make(map[int][]int),
		infoLinks:      make(map[int]map[int]bool),
		clientes:       make(map[int]*model.Cliente),
		empresas:       make(map[int]*model.Empresa),
		jefes:          make(map[int]*model.JefeProyecto),
		contenidos:     make(map[int]*model.ContenidoPresupuesto),
		informaciones:  make(map[int]*model.Informacion),
	}
}

func (r *stubPresupuestoRepo) DB() *gorm.DB { return nil }

func (r *stubPresupuestoRepo) Create(_ context.Context, _ *gorm.DB, p *model.Presupuesto) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	p.ID = r.nextID
	cp := *p
	r.presupuestos[p.ID] = &cp
	return nil
}

func (r *stubPresupuestoRepo) Update(_ context.Context, _ *gorm.DB, p *model.Presupuesto) (int64, error) {
	stored, ok := r.presupuestos[p.ID]
	if !ok {
		return 0, nil
	}
	cp := *p
	cp.CreatedAt = stored.CreatedAt
	r.presupuestos[p.ID] = &cp
	return 1, nil
}

func (r *stubPresupuestoRepo) Delete(_ context.Context, _ *gorm.DB, id int) (int64, error) {
	delete(r.contenidoLinks, id)
	delete(r.infoLinks, id)
	if _, ok := r.presupuestos[id]; !ok {
		return 0, nil
	}
	delete(r.presupuestos, id)
	return 1, nil
}

func (r *stubPresupuestoRepo) AddContenidos(_ context.Context, _ *gorm.DB, presupuestoID int, contenidoIDs []int) error {
	r.contenidoLinks[presupuestoID] = append(r.contenidoLinks[presupuestoID], contenidoIDs...)
	return nil
}

func (r *stubPresupuestoRepo) AddInformaciones(_ context.Context, _ *gorm.DB, presupuestoID int, informacionIDs []int) error {
	set := r.infoLinks[presupuestoID]
	if set == nil {
		set = make(map[int]bool)
		r.infoLinks[presupuestoID] = set
	}
	for _, id := range informacionIDs {
		set[id] = true
	}
	return nil
}

func (r *stubPresupuestoRepo) ReplaceContenidos(ctx context.Context, tx *gorm.DB, presupuestoID int, contenidoIDs []int) error {
	r.contenidoLinks[presupuestoID] = nil
	return r.AddContenidos(ctx, tx, presupuestoID, contenidoIDs)
}

func (r *stubPresupuestoRepo) ReplaceInformaciones(ctx context.Context, tx *gorm.DB, presupuestoID int, informacionIDs []int) error {
	delete(r.infoLinks, presupuestoID)
	return r.AddInformaciones(ctx, tx, presupuestoID, informacionIDs)
}

func (r *stubPresupuestoRepo) FindAggregate(_ context.Context, id int) (*model.Presupuesto, error) {
	stored, ok := r.presupuestos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	p := *stored
	p.Cliente = r.clientes[p.ClienteID]
	p.Empresa = r.empresas[p.EmpresaID]
	if p.JefeProyectoID != nil {
		p.JefeProyecto = r.jefes[*p.JefeProyectoID]
	}
	for _, cid := range r.contenidoLinks[id] {
		if c := r.contenidos[cid]; c != nil {
			p.Contenidos = append(p.Contenidos, *c)
		}
	}
	for iid := range r.infoLinks[id] {
		if info := r.informaciones[iid]; info != nil {
			p.Informaciones = append(p.Informaciones, *info)
		}
	}
	return &p, nil
}

func (r *stubPresupuestoRepo) ListAggregates(ctx context.Context) ([]model.Presupuesto, error) {
	var list []model.Presupuesto
	for id := 1; id <= r.nextID; id++ {
		if _, ok := r.presupuestos[id]; !ok {
			continue
		}
		p, err := r.FindAggregate(ctx, id)
		if err != nil {
			return nil, err
		}
		list = append(list, *p)
	}
	return list, nil
}

var _ repository.PresupuestoRepository = (*stubPresupuestoRepo)(nil)

// stubDispatcher captures enqueued notification mails.
type stubDispatcher struct {
	enqueued   []worker.EmailJobPayload
	enqueueErr error
}

func (d *stubDispatcher) EnqueueEmail(_ context.Context, payload worker.EmailJobPayload) error {
	if d.enqueueErr != nil {
		return d.enqueueErr
	}
	d.enqueued = append(d.enqueued, payload)
	return nil
}

var _ service.EmailDispatcher = (*stubDispatcher)(nil)

// ── Helpers ───────────────────────────────────────────────────────────────────

func strPtr(s string) *string { return &s }

// seedCatalogo registers the referenced rows: cliente 1, empresa 1, jefe 1,
// contenidos 5 y 6, informaciones 1-3.
func seedCatalogo(repo *stubPresupuestoRepo) {
	repo.clientes[1] = &model.Cliente{
		ID: 1, Nombre: "Laura Pérez", EmpresaNombre: strPtr("Pérez e Hijos"),
		Telefono: "+34 600 111 222", Email: "laura@perez.es",
	}
	repo.empresas[1] = &model.Empresa{ID: 1, Nombre: "Blend Marketing"}
	repo.jefes[1] = &model.JefeProyecto{
		ID: 1, Nombre: "Marcos Gil", Email: "marcos@blendmarketing.es",
		Cargo: strPtr("Director creativo"),
	}
	repo.contenidos[5] = &model.ContenidoPresupuesto{ID: 5, Titulo: "Estrategia", Contenido: "<p>Plan</p>"}
	repo.contenidos[6] = &model.ContenidoPresupuesto{ID: 6, Titulo: "Diseño web", Contenido: "<p>Web</p>"}
	repo.informaciones[1] = &model.Informacion{ID: 1, Titulo: strPtr("Condiciones"), Contenido: "50/50"}
	repo.informaciones[2] = &model.Informacion{ID: 2, Titulo: strPtr("Validez"), Contenido: "30 días"}
	repo.informaciones[3] = &model.Informacion{ID: 3, Titulo: strPtr("Contacto"), Contenido: "hola@"}
}

func testConfig() *config.Config {
	return &config.Config{
		DefaultEmpresaID:      1,
		DefaultInformacionIDs: []int{1, 2, 3},
		NotifyFrom:            "notificacion@blendmarketing.es",
		NotifyInternal:        "equipo@blendmarketing.es",
	}
}

func buildPresupuestoSvc() (service.PresupuestoService, *stubPresupuestoRepo, *stubDispatcher) {
	repo := newStubPresupuestoRepo()
	seedCatalogo(repo)
	dispatcher := &stubDispatcher{}
	svc := service.NewPresupuestoService(repo, dispatcher, testConfig())
	return svc, repo, dispatcher
}

func crearRequestValida() dto.CrearPresupuestoRequest {
	return dto.CrearPresupuestoRequest{
		NombrePresupuesto: "Campaña otoño",
		ClienteID:         1,
		JefeProyectoID:    1,
		Fecha:             "2026-09-01",
		URLPresupuesto:    "https://presupuestos.blendmarketing.es/p/abc123",
	}
}

// ── Crear ─────────────────────────────────────────────────────────────────────

func TestCrearPresupuesto_AplicaDefaults(t *testing.T) {
	svc, repo, _ := buildPresupuestoSvc()

	// Sin empresa_id ni informacion_ids: el compositor aplica la empresa 1 y
	// el set de informacion 1-3.
	resp, err := svc.Crear(context.Background(), crearRequestValida())
	require.NoError(t, err)

	assert.Equal(t, 1, resp.EmpresaID)
	assert.Len(t, resp.Informaciones, 3)
	assert.Len(t, resp.Contenidos, 0)
	assert.NotNil(t, resp.Contenidos, "contenidos must serialize as [], not null")

	stored := repo.presupuestos[resp.ID]
	require.NotNil(t, stored)
	assert.Equal(t, 1, stored.EmpresaID)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), stored.Fecha)
}

func TestCrearPresupuesto_ExplicitosGananADefaults(t *testing.T) {
	svc, repo, _ := buildPresupuestoSvc()

	req := crearRequestValida()
	req.InformacionIDs = []int{2}
	resp, err := svc.Crear(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, resp.Informaciones, 1)
	assert.Equal(t, 2, resp.Informaciones[0].ID)
	assert.Len(t, repo.infoLinks[resp.ID], 1)
}

func TestCrearPresupuesto_DeduplicaContenidos(t *testing.T) {
	svc, repo, _ := buildPresupuestoSvc()

	req := crearRequestValida()
	req.ContenidoIDs = []int{5, 5, 6}
	resp, err := svc.Crear(context.Background(), req)
	require.NoError(t, err)

	assert.Len(t, resp.Contenidos, 2)
	// The duplicate must be dropped before insert: the junction table has no
	// unique pair constraint to catch it.
	assert.Equal(t, []int{5, 6}, repo.contenidoLinks[resp.ID])
}

func TestCrearPresupuesto_CamposObligatorios(t *testing.T) {
	svc, _, _ := buildPresupuestoSvc()

	_, err := svc.Crear(context.Background(), dto.CrearPresupuestoRequest{})
	require.Error(t, err)
	assert.Equal(t, apierror.KindValidation, apierror.KindOf(err))
	assert.Contains(t, err.Error(), "nombre_presupuesto")
	assert.Contains(t, err.Error(), "cliente_id")
	assert.Contains(t, err.Error(), "fecha")
	assert.Contains(t, err.Error(), "url_presupuesto")
}

func TestCrearPresupuesto_FechaInvalida(t *testing.T) {
	svc, _, _ := buildPresupuestoSvc()

	req := crearRequestValida()
	req.Fecha = "01/09/2026"
	_, err := svc.Crear(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, apierror.KindValidation, apierror.KindOf(err))
}

func TestCrearPresupuesto_ConflictoDuplicado(t *testing.T) {
	svc, repo, _ := buildPresupuestoSvc()
	repo.createErr = gorm.ErrDuplicatedKey

	_, err := svc.Crear(context.Background(), crearRequestValida())
	require.Error(t, err)
	assert.Equal(t, apierror.KindConflict, apierror.KindOf(err))
}

// ── Notificaciones ────────────────────────────────────────────────────────────

func TestCrearPresupuesto_EncolaNotificaciones(t *testing.T) {
	svc, _, dispatcher := buildPresupuestoSvc()

	resp, err := svc.Crear(context.Background(), crearRequestValida())
	require.NoError(t, err)

	require.Len(t, dispatcher.enqueued, 2)
	cliente := dispatcher.enqueued[0]
	assert.Equal(t, "laura@perez.es", cliente.ToEmail)
	assert.Equal(t, "Presupuesto Disponible", cliente.Subject)
	assert.Contains(t, cliente.Body, resp.URLPresupuesto)

	interna := dispatcher.enqueued[1]
	assert.Equal(t, "equipo@blendmarketing.es", interna.ToEmail)
	assert.Equal(t, "Nuevo Presupuesto Creado", interna.Subject)
}

func TestCrearPresupuesto_FalloDeColaNoRompeElAlta(t *testing.T) {
	repo := newStubPresupuestoRepo()
	seedCatalogo(repo)
	dispatcher := &stubDispatcher{enqueueErr: assert.AnError}
	svc := service.NewPresupuestoService(repo, dispatcher, testConfig())

	resp, err := svc.Crear(context.Background(), crearRequestValida())
	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
}

// ── Leer ──────────────────────────────────────────────────────────────────────

func TestObtenerPresupuesto_AplanaRelaciones(t *testing.T) {
	svc, _, _ := buildPresupuestoSvc()

	created, err := svc.Crear(context.Background(), crearRequestValida())
	require.NoError(t, err)

	resp, err := svc.ObtenerPorID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Laura Pérez", resp.ClienteNombre)
	assert.Equal(t, "Blend Marketing", resp.EmpresaNombre)
	require.NotNil(t, resp.JefeProyectoNombre)
	assert.Equal(t, "Marcos Gil", *resp.JefeProyectoNombre)
}

func TestObtenerPresupuesto_NoExiste(t *testing.T) {
	svc, _, _ := buildPresupuestoSvc()

	_, err := svc.ObtenerPorID(context.Background(), 99)
	require.Error(t, err)
	assert.Equal(t, apierror.KindNotFound, apierror.KindOf(err))
}

func TestListarPresupuestos(t *testing.T) {
	svc, _, _ := buildPresupuestoSvc()

	_, err := svc.Crear(context.Background(), crearRequestValida())
	require.NoError(t, err)
	req2 := crearRequestValida()
	req2.NombrePresupuesto = "Campaña invierno"
	_, err = svc.Crear(context.Background(), req2)
	require.NoError(t, err)

	list, err := svc.Listar(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

// ── Actualizar ────────────────────────────────────────────────────────────────

func actualizarRequestValida(contenidoIDs []int, informacionIDs *[]int) dto.ActualizarPresupuestoRequest {
	return dto.ActualizarPresupuestoRequest{
		NombrePresupuesto: "Campaña otoño v2",
		ClienteID:         1,
		EmpresaID:         1,
		JefeProyectoID:    1,
		ContenidoIDs:      &contenidoIDs,
		InformacionIDs:    informacionIDs,
		Fecha:             "2026-09-15",
		URLPresupuesto:    "https://presupuestos.blendmarketing.es/p/abc123",
	}
}

func TestActualizarPresupuesto_ReemplazaContenidos(t *testing.T) {
	svc, repo, _ := buildPresupuestoSvc()

	req := crearRequestValida()
	req.ContenidoIDs = []int{5}
	created, err := svc.Crear(context.Background(), req)
	require.NoError(t, err)

	resp, err := svc.Actualizar(context.Background(), created.ID, actualizarRequestValida([]int{6}, nil))
	require.NoError(t, err)
	assert.Equal(t, "Campaña otoño v2", resp.NombrePresupuesto)
	assert.Equal(t, "2026-09-15", resp.Fecha)

	assert.Equal(t, []int{6}, repo.contenidoLinks[created.ID])
}

func TestActualizarPresupuesto_InformacionAusenteConserva(t *testing.T) {
	svc, repo, _ := buildPresupuestoSvc()

	created, err := svc.Crear(context.Background(), crearRequestValida())
	require.NoError(t, err)
	require.Len(t, repo.infoLinks[created.ID], 3)

	// informacion_ids ausente: los vínculos existentes no se tocan.
	_, err = svc.Actualizar(context.Background(), created.ID, actualizarRequestValida([]int{5}, nil))
	require.NoError(t, err)
	assert.Len(t, repo.infoLinks[created.ID], 3)
}

func TestActualizarPresupuesto_InformacionVaciaLimpia(t *testing.T) {
	svc, repo, _ := buildPresupuestoSvc()

	created, err := svc.Crear(context.Background(), crearRequestValida())
	require.NoError(t, err)
	require.Len(t, repo.infoLinks[created.ID], 3)

	// informacion_ids presente y vacío: se eliminan todos los vínculos.
	vacia := []int{}
	_, err = svc.Actualizar(context.Background(), created.ID, actualizarRequestValida([]int{5}, &vacia))
	require.NoError(t, err)
	assert.Len(t, repo.infoLinks[created.ID], 0)
}

func TestActualizarPresupuesto_SinContenidosEsInvalido(t *testing.T) {
	svc, _, _ := buildPresupuestoSvc()

	created, err := svc.Crear(context.Background(), crearRequestValida())
	require.NoError(t, err)

	req := actualizarRequestValida(nil, nil)
	req.ContenidoIDs = nil
	_, err = svc.Actualizar(context.Background(), created.ID, req)
	require.Error(t, err)
	assert.Equal(t, apierror.KindValidation, apierror.KindOf(err))
	assert.Contains(t, err.Error(), "contenido_ids")
}

func TestActualizarPresupuesto_NoExiste(t *testing.T) {
	svc, _, _ := buildPresupuestoSvc()

	_, err := svc.Actualizar(context.Background(), 99, actualizarRequestValida([]int{5}, nil))
	require.Error(t, err)
	assert.Equal(t, apierror.KindNotFound, apierror.KindOf(err))
}

// ── Eliminar ──────────────────────────────────────────────────────────────────

func TestEliminarPresupuesto_BorraVinculos(t *testing.T) {
	svc, repo, _ := buildPresupuestoSvc()

	req := crearRequestValida()
	req.ContenidoIDs = []int{5, 6}
	created, err := svc.Crear(context.Background(), req)
	require.NoError(t, err)

	require.NoError(t, svc.Eliminar(context.Background(), created.ID))
	assert.Empty(t, repo.contenidoLinks[created.ID])
	assert.Empty(t, repo.infoLinks[created.ID])
	assert.NotContains(t, repo.presupuestos, created.ID)
}

func TestEliminarPresupuesto_NoExiste(t *testing.T) {
	svc, _, _ := buildPresupuestoSvc()

	err := svc.Eliminar(context.Background(), 99)
	require.Error(t, err)
	assert.Equal(t, apierror.KindNotFound, apierror.KindOf(err))
}
