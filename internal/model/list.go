package model

import "time"

// List is an ordered container within a board.
type List struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ListName  string    `json:"listName" gorm:"size:255;not null"`
	Position  int       `json:"position" gorm:"not null"`
	BoardID   uint      `json:"boardId" gorm:"not null;index"`
	Board     *Board    `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"index"`
}
