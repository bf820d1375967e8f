package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kanban/internal/model"
)

// BoardRepository defines board persistence operations.
type BoardRepository interface {
	Create(ctx context.Context, board *model.Board) error
	FindByID(ctx context.Context, id uint) (*model.Board, error)
	// FindByIDForUpdate locks the board row until the transaction ends.
	FindByIDForUpdate(ctx context.Context, id uint) (*model.Board, error)
	Update(ctx context.Context, id uint, patch model.BoardPatch) error
	Delete(ctx context.Context, id uint) error
	Search(ctx context.Context, q Query) ([]model.Board, error)
}

type boardRepository struct {
	db *gorm.DB
}

// NewBoardRepository creates a new board repository.
func NewBoardRepository(db *gorm.DB) BoardRepository {
	return &boardRepository{db: db}
}

func (r *boardRepository) Create(ctx context.Context, board *model.Board) error {
	return r.db.WithContext(ctx).Create(board).Error
}

func (r *boardRepository) FindByID(ctx context.Context, id uint) (*model.Board, error) {
	var board model.Board
	if err := r.db.WithContext(ctx).First(&board, id).Error; err != nil {
		return nil, err
	}
	return &board, nil
}

func (r *boardRepository) FindByIDForUpdate(ctx context.Context, id uint) (*model.Board, error) {
	var board model.Board
	if err := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&board, id).Error; err != nil {
		return nil, err
	}
	return &board, nil
}

func (r *boardRepository) Update(ctx context.Context, id uint, patch model.BoardPatch) error {
	db := r.db.WithContext(ctx)
	res := db.Model(&model.Board{ID: id}).Updates(patch.Columns())
	return updated(db, res, &model.Board{}, id)
}

func (r *boardRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Board{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *boardRepository) Search(ctx context.Context, q Query) ([]model.Board, error) {
	boards := make([]model.Board, 0)
	if err := r.db.WithContext(ctx).Scopes(q.scope("title")).Find(&boards).Error; err != nil {
		return nil, err
	}
	return boards, nil
}
