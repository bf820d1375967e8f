package repository

import (
	"context"

	"gorm.io/gorm"

	"kanban/internal/model"
)

// ListRepository defines list persistence operations.
type ListRepository interface {
	Create(ctx context.Context, list *model.List) error
	FindByID(ctx context.Context, id uint) (*model.List, error)
	Rename(ctx context.Context, id uint, name string) error
	Delete(ctx context.Context, id uint) error
	// MaxPosition returns the highest position in the board, 0 when empty.
	MaxPosition(ctx context.Context, boardID uint) (int, error)
	Search(ctx context.Context, q Query) ([]model.List, error)
}

type listRepository struct {
	db *gorm.DB
}

// NewListRepository creates a new list repository.
func NewListRepository(db *gorm.DB) ListRepository {
	return &listRepository{db: db}
}

func (r *listRepository) Create(ctx context.Context, list *model.List) error {
	return r.db.WithContext(ctx).Create(list).Error
}

func (r *listRepository) FindByID(ctx context.Context, id uint) (*model.List, error) {
	var list model.List
	if err := r.db.WithContext(ctx).First(&list, id).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *listRepository) Rename(ctx context.Context, id uint, name string) error {
	db := r.db.WithContext(ctx)
	res := db.Model(&model.List{ID: id}).Update("list_name", name)
	return updated(db, res, &model.List{}, id)
}

func (r *listRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.List{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *listRepository) MaxPosition(ctx context.Context, boardID uint) (int, error) {
	var last int
	if err := r.db.WithContext(ctx).Model(&model.List{}).
		Where("board_id = ?", boardID).
		Select("COALESCE(MAX(position), 0)").
		Scan(&last).Error; err != nil {
		return 0, err
	}
	return last, nil
}

func (r *listRepository) Search(ctx context.Context, q Query) ([]model.List, error) {
	lists := make([]model.List, 0)
	if err := r.db.WithContext(ctx).Scopes(q.scope("list_name")).Find(&lists).Error; err != nil {
		return nil, err
	}
	return lists, nil
}
