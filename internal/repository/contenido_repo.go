package repository

import (
	"context"

	"presupuestos/internal/model"

	"gorm.io/gorm"
)

type ContenidoRepository interface {
	Create(ctx context.Context, c *model.ContenidoPresupuesto) error
	FindByID(ctx context.Context, id int) (*model.ContenidoPresupuesto, error)
	List(ctx context.Context) ([]model.ContenidoPresupuesto, error)
	Update(ctx context.Context, c *model.ContenidoPresupuesto) error
	Delete(ctx context.Context, id int) (int64, error)
}

type contenidoRepo struct{ db *gorm.DB }

func NewContenidoRepository(db *gorm.DB) ContenidoRepository { return &contenidoRepo{db: db} }

func (r *contenidoRepo) Create(ctx context.Context, c *model.ContenidoPresupuesto) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *contenidoRepo) FindByID(ctx context.Context, id int) (*model.ContenidoPresupuesto, error) {
	var c model.ContenidoPresupuesto
	err := r.db.WithContext(ctx).First(&c, id).Error
	return &c, err
}

func (r *contenidoRepo) List(ctx context.Context) ([]model.ContenidoPresupuesto, error) {
	var list []model.ContenidoPresupuesto
	err := r.db.WithContext(ctx).Order("id").Find(&list).Error
	return list, err
}

func (r *contenidoRepo) Update(ctx context.Context, c *model.ContenidoPresupuesto) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *contenidoRepo) Delete(ctx context.Context, id int) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.ContenidoPresupuesto{}, id)
	return res.RowsAffected, res.Error
}
