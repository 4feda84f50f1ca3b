package repository

import (
	"context"

	"presupuestos/internal/model"

	"gorm.io/gorm"
)

type InformacionRepository interface {
	Create(ctx context.Context, i *model.Informacion) error
	FindByID(ctx context.Context, id int) (*model.Informacion, error)
	List(ctx context.Context) ([]model.Informacion, error)
	Update(ctx context.Context, i *model.Informacion) error
	Delete(ctx context.Context, id int) (int64, error)
}

type informacionRepo struct{ db *gorm.DB }

func NewInformacionRepository(db *gorm.DB) InformacionRepository { return &informacionRepo{db: db} }

func (r *informacionRepo) Create(ctx context.Context, i *model.Informacion) error {
	return r.db.WithContext(ctx).Create(i).Error
}

func (r *informacionRepo) FindByID(ctx context.Context, id int) (*model.Informacion, error) {
	var i model.Informacion
	err := r.db.WithContext(ctx).First(&i, id).Error
	return &i, err
}

func (r *informacionRepo) List(ctx context.Context) ([]model.Informacion, error) {
	var list []model.Informacion
	err := r.db.WithContext(ctx).Order("id").Find(&list).Error
	return list, err
}

func (r *informacionRepo) Update(ctx context.Context, i *model.Informacion) error {
	return r.db.WithContext(ctx).Save(i).Error
}

func (r *informacionRepo) Delete(ctx context.Context, id int) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Informacion{}, id)
	return res.RowsAffected, res.Error
}
