package repository

import (
	"context"

	"presupuestos/internal/model"

	"gorm.io/gorm"
)

type JefeProyectoRepository interface {
	Create(ctx context.Context, j *model.JefeProyecto) error
	FindByID(ctx context.Context, id int) (*model.JefeProyecto, error)
	List(ctx context.Context) ([]model.JefeProyecto, error)
	Update(ctx context.Context, j *model.JefeProyecto) error
	Delete(ctx context.Context, id int) (int64, error)
}

type jefeProyectoRepo struct{ db *gorm.DB }

func NewJefeProyectoRepository(db *gorm.DB) JefeProyectoRepository { return &jefeProyectoRepo{db: db} }

func (r *jefeProyectoRepo) Create(ctx context.Context, j *model.JefeProyecto) error {
	return r.db.WithContext(ctx).Create(j).Error
}

func (r *jefeProyectoRepo) FindByID(ctx context.Context, id int) (*model.JefeProyecto, error) {
	var j model.JefeProyecto
	err := r.db.WithContext(ctx).First(&j, id).Error
	return &j, err
}

func (r *jefeProyectoRepo) List(ctx context.Context) ([]model.JefeProyecto, error) {
	var jefes []model.JefeProyecto
	err := r.db.WithContext(ctx).Order("id").Find(&jefes).Error
	return jefes, err
}

func (r *jefeProyectoRepo) Update(ctx context.Context, j *model.JefeProyecto) error {
	return r.db.WithContext(ctx).Save(j).Error
}

func (r *jefeProyectoRepo) Delete(ctx context.Context, id int) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.JefeProyecto{}, id)
	return res.RowsAffected, res.Error
}
