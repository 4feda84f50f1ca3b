package repository

import (
	"context"

	"presupuestos/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PresupuestoRepository persists the budget aggregate: the presupuestos row
// plus its two junction tables. Write methods take the transaction handle so
// the service can group the row insert and both junction batches into one
// atomic unit.
type PresupuestoRepository interface {
	Create(ctx context.Context, tx *gorm.DB, p *model.Presupuesto) error
	Update(ctx context.Context, tx *gorm.DB, p *model.Presupuesto) (int64, error)
	Delete(ctx context.Context, tx *gorm.DB, id int) (int64, error)

	// AddContenidos / AddInformaciones insert junction rows with
	// insert-ignore-duplicate semantics and without touching existing rows.
	AddContenidos(ctx context.Context, tx *gorm.DB, presupuestoID int, contenidoIDs []int) error
	AddInformaciones(ctx context.Context, tx *gorm.DB, presupuestoID int, informacionIDs []int) error

	// ReplaceContenidos / ReplaceInformaciones implement full-replace relation
	// sync: delete every junction row for the presupuesto, then insert the
	// given set.
	ReplaceContenidos(ctx context.Context, tx *gorm.DB, presupuestoID int, contenidoIDs []int) error
	ReplaceInformaciones(ctx context.Context, tx *gorm.DB, presupuestoID int, informacionIDs []int) error

	FindAggregate(ctx context.Context, id int) (*model.Presupuesto, error)
	ListAggregates(ctx context.Context) ([]model.Presupuesto, error)

	DB() *gorm.DB // exposes the DB for transaction creation in service layer
}

type presupuestoRepo struct{ db *gorm.DB }

func NewPresupuestoRepository(db *gorm.DB) PresupuestoRepository { return &presupuestoRepo{db: db} }

func (r *presupuestoRepo) DB() *gorm.DB { return r.db }

func (r *presupuestoRepo) Create(ctx context.Context, tx *gorm.DB, p *model.Presupuesto) error {
	return tx.WithContext(ctx).Omit(clause.Associations).Create(p).Error
}

func (r *presupuestoRepo) Update(ctx context.Context, tx *gorm.DB, p *model.Presupuesto) (int64, error) {
	// Explicit column list so a nil DescripcionPresupuesto writes NULL
	// instead of being skipped.
	res := tx.WithContext(ctx).Model(&model.Presupuesto{}).
		Where("id = ?", p.ID).
		Select("nombre_presupuesto", "descripcion_presupuesto", "cliente_id",
			"empresa_id", "jefe_proyecto_id", "fecha", "url_presupuesto").
		Updates(p)
	return res.RowsAffected, res.Error
}

func (r *presupuestoRepo) Delete(ctx context.Context, tx *gorm.DB, id int) (int64, error) {
	// Junction rows go first; deleting junctions for an id with no budget row
	// is a harmless no-op.
	if err := tx.WithContext(ctx).Where("presupuesto_id = ?", id).
		Delete(&model.PresupuestoContenido{}).Error; err != nil {
		return 0, err
	}
	if err := tx.WithContext(ctx).Where("presupuesto_id = ?", id).
		Delete(&model.PresupuestoInformacion{}).Error; err != nil {
		return 0, err
	}
	res := tx.WithContext(ctx).Delete(&model.Presupuesto{}, id)
	return res.RowsAffected, res.Error
}

func (r *presupuestoRepo) AddContenidos(ctx context.Context, tx *gorm.DB, presupuestoID int, contenidoIDs []int) error {
	if len(contenidoIDs) == 0 {
		return nil
	}
	rows := make([]model.PresupuestoContenido, 0, len(contenidoIDs))
	for _, cid := range contenidoIDs {
		rows = append(rows, model.PresupuestoContenido{PresupuestoID: presupuestoID, ContenidoPresupuestoID: cid})
	}
	return tx.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
}

func (r *presupuestoRepo) AddInformaciones(ctx context.Context, tx *gorm.DB, presupuestoID int, informacionIDs []int) error {
	if len(informacionIDs) == 0 {
		return nil
	}
	rows := make([]model.PresupuestoInformacion, 0, len(informacionIDs))
	for _, iid := range informacionIDs {
		rows = append(rows, model.PresupuestoInformacion{PresupuestoID: presupuestoID, InformacionID: iid})
	}
	return tx.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
}

func (r *presupuestoRepo) ReplaceContenidos(ctx context.Context, tx *gorm.DB, presupuestoID int, contenidoIDs []int) error {
	if err := tx.WithContext(ctx).Where("presupuesto_id = ?", presupuestoID).
		Delete(&model.PresupuestoContenido{}).Error; err != nil {
		return err
	}
	return r.AddContenidos(ctx, tx, presupuestoID, contenidoIDs)
}

func (r *presupuestoRepo) ReplaceInformaciones(ctx context.Context, tx *gorm.DB, presupuestoID int, informacionIDs []int) error {
	if err := tx.WithContext(ctx).Where("presupuesto_id = ?", presupuestoID).
		Delete(&model.PresupuestoInformacion{}).Error; err != nil {
		return err
	}
	return r.AddInformaciones(ctx, tx, presupuestoID, informacionIDs)
}

func (r *presupuestoRepo) FindAggregate(ctx context.Context, id int) (*model.Presupuesto, error) {
	var p model.Presupuesto
	err := r.db.WithContext(ctx).
		Preload("Contenidos").
		Preload("Informaciones").
		Preload("Cliente").
		Preload("Empresa").
		Preload("JefeProyecto").
		First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *presupuestoRepo) ListAggregates(ctx context.Context) ([]model.Presupuesto, error) {
	var list []model.Presupuesto
	err := r.db.WithContext(ctx).
		Preload("Contenidos").
		Preload("Informaciones").
		Preload("Cliente").
		Preload("Empresa").
		Preload("JefeProyecto").
		Order("id").
		Find(&list).Error
	return list, err
}
