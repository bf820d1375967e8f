package repository

import (
	"context"

	"gorm.io/gorm"

	"kanban/internal/model"
)

// MemberRepository defines board membership persistence operations.
type MemberRepository interface {
	Create(ctx context.Context, member *model.BoardMember) error
	Find(ctx context.Context, boardID, userID uint) (*model.BoardMember, error)
}

type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new membership repository.
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) Create(ctx context.Context, member *model.BoardMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *memberRepository) Find(ctx context.Context, boardID, userID uint) (*model.BoardMember, error) {
	var member model.BoardMember
	if err := r.db.WithContext(ctx).
		Where("board_id = ? AND user_id = ?", boardID, userID).
		First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// LikeRepository defines board like persistence operations.
type LikeRepository interface {
	Exists(ctx context.Context, userID, boardID uint) (bool, error)
	Create(ctx context.Context, like *model.BoardLike) error
	Delete(ctx context.Context, userID, boardID uint) error
}

type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository creates a new like repository.
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Exists(ctx context.Context, userID, boardID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.BoardLike{}).
		Where("user_id = ? AND board_id = ?", userID, boardID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *likeRepository) Create(ctx context.Context, like *model.BoardLike) error {
	return r.db.WithContext(ctx).Create(like).Error
}

func (r *likeRepository) Delete(ctx context.Context, userID, boardID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND board_id = ?", userID, boardID).
		Delete(&model.BoardLike{}).Error
}
