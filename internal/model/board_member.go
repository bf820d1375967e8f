package model

import "time"

// Role is a membership grant on a (user, board) pair.
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleEditor Role = "EDITOR"
	RoleViewer Role = "VIEWER"
)

// CanMutate reports whether the role may create, edit or delete lists and labels.
func (r Role) CanMutate() bool {
	return r == RoleAdmin || r == RoleEditor
}

// BoardMember links a user to a board. A user has at most one row per board.
type BoardMember struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	BoardID   uint      `json:"boardId" gorm:"uniqueIndex:idx_board_user;not null"`
	Board     *Board    `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	UserID    uint      `json:"userId" gorm:"uniqueIndex:idx_board_user;not null"`
	User      *User     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Role      Role      `json:"role" gorm:"size:16;not null;default:VIEWER"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BoardLike records that a user liked a board. Toggled, never accumulated.
type BoardLike struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"uniqueIndex:idx_like_user_board;not null"`
	User      *User     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	BoardID   uint      `json:"boardId" gorm:"uniqueIndex:idx_like_user_board;not null"`
	Board     *Board    `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `json:"createdAt"`
}
