package repository

import (
	"context"

	"gorm.io/gorm"

	"kanban/internal/model"
)

// LabelRepository defines label persistence operations.
type LabelRepository interface {
	Create(ctx context.Context, label *model.Label) error
	FindByID(ctx context.Context, id uint) (*model.Label, error)
	Update(ctx context.Context, id uint, patch model.LabelPatch) error
	Search(ctx context.Context, q Query) ([]model.Label, error)
}

type labelRepository struct {
	db *gorm.DB
}

// NewLabelRepository creates a new label repository.
func NewLabelRepository(db *gorm.DB) LabelRepository {
	return &labelRepository{db: db}
}

func (r *labelRepository) Create(ctx context.Context, label *model.Label) error {
	return r.db.WithContext(ctx).Create(label).Error
}

func (r *labelRepository) FindByID(ctx context.Context, id uint) (*model.Label, error) {
	var label model.Label
	if err := r.db.WithContext(ctx).First(&label, id).Error; err != nil {
		return nil, err
	}
	return &label, nil
}

func (r *labelRepository) Update(ctx context.Context, id uint, patch model.LabelPatch) error {
	cols := patch.Columns()
	if len(cols) == 0 {
		_, err := r.FindByID(ctx, id)
		return err
	}
	db := r.db.WithContext(ctx)
	res := db.Model(&model.Label{ID: id}).Updates(cols)
	return updated(db, res, &model.Label{}, id)
}

func (r *labelRepository) Search(ctx context.Context, q Query) ([]model.Label, error) {
	labels := make([]model.Label, 0)
	if err := r.db.WithContext(ctx).Scopes(q.scope("label_name")).Find(&labels).Error; err != nil {
		return nil, err
	}
	return labels, nil
}
