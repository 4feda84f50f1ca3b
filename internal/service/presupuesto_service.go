package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"presupuestos/internal/apierror"
	"presupuestos/internal/config"
	"presupuestos/internal/dto"
	"presupuestos/internal/model"
	"presupuestos/internal/repository"
	"presupuestos/internal/worker"

	"gorm.io/gorm"

	"github.com/rs/zerolog/log"
)

const fechaLayout = "2006-01-02"

// EmailDispatcher is the slice of the worker dispatcher the composer needs.
// Narrowed to an interface so unit tests can capture enqueued notifications.
type EmailDispatcher interface {
	EnqueueEmail(ctx context.Context, payload worker.EmailJobPayload) error
}

// PresupuestoService is the budget composer: it owns the aggregate write
// (budget row + both junction batches in one transaction), the default-value
// fallback policy, dedup of the block collections, and the notification side
// effects.
type PresupuestoService interface {
	Crear(ctx context.Context, req dto.CrearPresupuestoRequest) (*dto.PresupuestoAggregate, error)
	Listar(ctx context.Context) ([]dto.PresupuestoAggregate, error)
	ObtenerPorID(ctx context.Context, id int) (*dto.PresupuestoAggregate, error)
	Actualizar(ctx context.Context, id int, req dto.ActualizarPresupuestoRequest) (*dto.PresupuestoResponse, error)
	Eliminar(ctx context.Context, id int) error
}

type presupuestoService struct {
	repo       repository.PresupuestoRepository
	dispatcher EmailDispatcher
	cfg        *config.Config
}

func NewPresupuestoService(repo repository.PresupuestoRepository, dispatcher EmailDispatcher, cfg *config.Config) PresupuestoService {
	return &presupuestoService{repo: repo, dispatcher: dispatcher, cfg: cfg}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// dedupeIDs removes duplicate ids preserving first-seen order. The content
// junction table has no unique pair constraint, so duplicates must be dropped
// before insert.
func dedupeIDs(ids []int) []int {
	seen := make(map[int]bool, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if id == 0 || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// translateDBError maps driver errors onto the apierror taxonomy: duplicate
// keys surface as Conflict with the driver detail, everything else is
// Internal with a generic client message.
func translateDBError(err error, logMsg string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apierror.Conflict(err.Error())
	}
	log.Error().Err(err).Msg(logMsg)
	return apierror.Internal("Error interno del servidor")
}

// ── Crear ─────────────────────────────────────────────────────────────────────

func (s *presupuestoService) Crear(ctx context.Context, req dto.CrearPresupuestoRequest) (*dto.PresupuestoAggregate, error) {
	var missing []string
	if req.NombrePresupuesto == "" {
		missing = append(missing, "nombre_presupuesto")
	}
	if req.ClienteID == 0 {
		missing = append(missing, "cliente_id")
	}
	if req.JefeProyectoID == 0 {
		missing = append(missing, "jefe_proyecto_id")
	}
	if req.Fecha == "" {
		missing = append(missing, "fecha")
	}
	if req.URLPresupuesto == "" {
		missing = append(missing, "url_presupuesto")
	}
	if len(missing) > 0 {
		return nil, apierror.Validation(missing...)
	}

	fecha, err := time.Parse(fechaLayout, req.Fecha)
	if err != nil {
		return nil, apierror.ValidationMsg("El campo fecha debe tener formato YYYY-MM-DD.", "fecha")
	}

	// Default-value fallback policy: the composer substitutes the configured
	// empresa and informacion seed set when the caller omits them.
	empresaID := req.EmpresaID
	if empresaID == 0 {
		empresaID = s.cfg.DefaultEmpresaID
	}
	informacionIDs := req.InformacionIDs
	if len(informacionIDs) == 0 {
		informacionIDs = s.cfg.DefaultInformacionIDs
	}

	contenidoIDs := dedupeIDs(req.ContenidoIDs)
	informacionIDs = dedupeIDs(informacionIDs)

	jefeID := req.JefeProyectoID
	p := model.Presupuesto{
		NombrePresupuesto:      req.NombrePresupuesto,
		DescripcionPresupuesto: normalizeDescripcion(req.DescripcionPresupuesto),
		ClienteID:              req.ClienteID,
		EmpresaID:              empresaID,
		JefeProyectoID:         &jefeID,
		Fecha:                  fecha,
		URLPresupuesto:         req.URLPresupuesto,
	}

	// One transaction for the budget row and both junction batches: a crash
	// mid-write can never leave a budget without its links.
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.Create(ctx, tx, &p); err != nil {
			return err
		}
		if err := s.repo.AddContenidos(ctx, tx, p.ID, contenidoIDs); err != nil {
			return err
		}
		return s.repo.AddInformaciones(ctx, tx, p.ID, informacionIDs)
	})
	if txErr != nil {
		return nil, translateDBError(txErr, "error al crear presupuesto")
	}

	agg, err := s.readAggregate(ctx, p.ID)
	if err != nil {
		return nil, err
	}

	s.notifyCreated(ctx, agg)
	return agg, nil
}

// notifyCreated enqueues the client-facing mail and the internal copy.
// Fire-and-forget: enqueue failures are logged and never fail the request.
func (s *presupuestoService) notifyCreated(ctx context.Context, agg *dto.PresupuestoAggregate) {
	if s.dispatcher == nil {
		return
	}
	if agg.ClienteEmail != "" {
		err := s.dispatcher.EnqueueEmail(ctx, worker.EmailJobPayload{
			ToEmail: agg.ClienteEmail,
			Subject: "Presupuesto Disponible",
			Body: fmt.Sprintf("Estimado %s, su presupuesto está disponible en el siguiente enlace: %s",
				agg.ClienteNombre, agg.URLPresupuesto),
		})
		if err != nil {
			log.Error().Err(err).Msg("no se pudo encolar la notificacion al cliente")
		}
	}
	err := s.dispatcher.EnqueueEmail(ctx, worker.EmailJobPayload{
		ToEmail: s.cfg.NotifyInternal,
		Subject: "Nuevo Presupuesto Creado",
		Body: fmt.Sprintf("Se ha creado un nuevo presupuesto para el cliente %s (ID: %d). Puede revisarlo en el siguiente enlace: %s",
			agg.ClienteNombre, agg.ClienteID, agg.URLPresupuesto),
	})
	if err != nil {
		log.Error().Err(err).Msg("no se pudo encolar la notificacion interna")
	}
}

// ── Leer ──────────────────────────────────────────────────────────────────────

func (s *presupuestoService) Listar(ctx context.Context) ([]dto.PresupuestoAggregate, error) {
	list, err := s.repo.ListAggregates(ctx)
	if err != nil {
		return nil, translateDBError(err, "error al listar presupuestos")
	}
	result := make([]dto.PresupuestoAggregate, 0, len(list))
	for i := range list {
		result = append(result, *mapAggregate(&list[i]))
	}
	return result, nil
}

func (s *presupuestoService) ObtenerPorID(ctx context.Context, id int) (*dto.PresupuestoAggregate, error) {
	return s.readAggregate(ctx, id)
}

func (s *presupuestoService) readAggregate(ctx context.Context, id int) (*dto.PresupuestoAggregate, error) {
	p, err := s.repo.FindAggregate(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Presupuesto no encontrado.")
		}
		return nil, translateDBError(err, "error al obtener presupuesto")
	}
	return mapAggregate(p), nil
}

// ── Actualizar ────────────────────────────────────────────────────────────────

func (s *presupuestoService) Actualizar(ctx context.Context, id int, req dto.ActualizarPresupuestoRequest) (*dto.PresupuestoResponse, error) {
	var missing []string
	if req.NombrePresupuesto == "" {
		missing = append(missing, "nombre_presupuesto")
	}
	if req.ClienteID == 0 {
		missing = append(missing, "cliente_id")
	}
	if req.EmpresaID == 0 {
		missing = append(missing, "empresa_id")
	}
	if req.JefeProyectoID == 0 {
		missing = append(missing, "jefe_proyecto_id")
	}
	if req.ContenidoIDs == nil {
		missing = append(missing, "contenido_ids")
	}
	if req.Fecha == "" {
		missing = append(missing, "fecha")
	}
	if req.URLPresupuesto == "" {
		missing = append(missing, "url_presupuesto")
	}
	if len(missing) > 0 {
		return nil, apierror.Validation(missing...)
	}

	fecha, err := time.Parse(fechaLayout, req.Fecha)
	if err != nil {
		return nil, apierror.ValidationMsg("El campo fecha debe tener formato YYYY-MM-DD.", "fecha")
	}

	jefeID := req.JefeProyectoID
	p := model.Presupuesto{
		ID:                     id,
		NombrePresupuesto:      req.NombrePresupuesto,
		DescripcionPresupuesto: normalizeDescripcion(req.DescripcionPresupuesto),
		ClienteID:              req.ClienteID,
		EmpresaID:              req.EmpresaID,
		JefeProyectoID:         &jefeID,
		Fecha:                  fecha,
		URLPresupuesto:         req.URLPresupuesto,
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		rows, err := s.repo.Update(ctx, tx, &p)
		if err != nil {
			return err
		}
		if rows == 0 {
			return apierror.NotFound("Presupuesto no encontrado.")
		}
		// Content links are always fully replaced, even by an empty list.
		if err := s.repo.ReplaceContenidos(ctx, tx, id, dedupeIDs(*req.ContenidoIDs)); err != nil {
			return err
		}
		// Informacion links are only replaced when the field was present:
		// an absent list leaves the existing links untouched.
		if req.InformacionIDs != nil {
			return s.repo.ReplaceInformaciones(ctx, tx, id, dedupeIDs(*req.InformacionIDs))
		}
		return nil
	})
	if txErr != nil {
		if apierror.KindOf(txErr) != apierror.KindInternal {
			return nil, txErr
		}
		return nil, translateDBError(txErr, "error al actualizar presupuesto")
	}

	return &dto.PresupuestoResponse{
		ID:                     id,
		NombrePresupuesto:      p.NombrePresupuesto,
		DescripcionPresupuesto: p.DescripcionPresupuesto,
		ClienteID:              p.ClienteID,
		EmpresaID:              p.EmpresaID,
		JefeProyectoID:         p.JefeProyectoID,
		Fecha:                  p.Fecha.Format(fechaLayout),
		URLPresupuesto:         p.URLPresupuesto,
	}, nil
}

// ── Eliminar ──────────────────────────────────────────────────────────────────

func (s *presupuestoService) Eliminar(ctx context.Context, id int) error {
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		rows, err := s.repo.Delete(ctx, tx, id)
		if err != nil {
			return err
		}
		if rows == 0 {
			return apierror.NotFound("Presupuesto no encontrado.")
		}
		return nil
	})
	if txErr != nil {
		if apierror.KindOf(txErr) != apierror.KindInternal {
			return txErr
		}
		return translateDBError(txErr, "error al eliminar presupuesto")
	}
	return nil
}

// ── Mapping ───────────────────────────────────────────────────────────────────

func normalizeDescripcion(d *string) *string {
	if d == nil || *d == "" {
		return nil
	}
	return d
}

// mapAggregate flattens the preloaded model into the composed read shape.
// Both block collections are deduplicated by id and are always non-nil so
// they serialize as [] rather than null.
func mapAggregate(p *model.Presupuesto) *dto.PresupuestoAggregate {
	agg := &dto.PresupuestoAggregate{
		ID:                     p.ID,
		NombrePresupuesto:      p.NombrePresupuesto,
		DescripcionPresupuesto: p.DescripcionPresupuesto,
		Fecha:                  p.Fecha.Format(fechaLayout),
		URLPresupuesto:         p.URLPresupuesto,
		Contenidos:             make([]dto.ContenidoItem, 0, len(p.Contenidos)),
		Informaciones:          make([]dto.InformacionItem, 0, len(p.Informaciones)),
	}

	seenContenido := make(map[int]bool, len(p.Contenidos))
	for _, c := range p.Contenidos {
		if seenContenido[c.ID] {
			continue
		}
		seenContenido[c.ID] = true
		agg.Contenidos = append(agg.Contenidos, dto.ContenidoItem{
			ID: c.ID, Nombre: c.Nombre, Titulo: c.Titulo, Contenido: c.Contenido,
		})
	}

	seenInfo := make(map[int]bool, len(p.Informaciones))
	for _, i := range p.Informaciones {
		if seenInfo[i.ID] {
			continue
		}
		seenInfo[i.ID] = true
		agg.Informaciones = append(agg.Informaciones, dto.InformacionItem{
			ID: i.ID, Titulo: i.Titulo, Contenido: i.Contenido, IconoURL: i.IconoURL,
		})
	}

	if c := p.Cliente; c != nil {
		agg.ClienteID = c.ID
		agg.ClienteNombre = c.Nombre
		agg.ClienteEmpresaNombre = c.EmpresaNombre
		agg.ClienteTelefono = c.Telefono
		agg.ClienteEmail = c.Email
	}
	if e := p.Empresa; e != nil {
		agg.EmpresaID = e.ID
		agg.EmpresaNombre = e.Nombre
		agg.EmpresaTelefono = e.Telefono
		agg.EmpresaURLEmpresa = e.URLEmpresa
		agg.EmpresaURLLogo = e.URLLogo
	}
	if j := p.JefeProyecto; j != nil {
		agg.JefeProyectoID = &j.ID
		agg.JefeProyectoNombre = &j.Nombre
		agg.JefeProyectoTelefono = j.Telefono
		agg.JefeProyectoEmail = &j.Email
		agg.JefeProyectoCargo = j.Cargo
		agg.JefeProyectoFoto = j.URLFotoJefe
	}
	return agg
}
