package model

import "time"

// Visibility controls who may discover a board.
type Visibility string

const (
	VisibilityPrivate Visibility = "PRIVATE"
	VisibilityPublic  Visibility = "PUBLIC"
)

// Board is the top-level collaboration container owning lists and labels.
type Board struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	Title         string     `json:"title" gorm:"size:255;not null"`
	Visibility    Visibility `json:"visibility" gorm:"size:16;not null;default:PRIVATE"`
	BackgroundImg string     `json:"backgroundImg" gorm:"size:1024"`
	Archived      bool       `json:"archived" gorm:"not null;default:false"`
	OwnerID       uint       `json:"ownerId" gorm:"not null;index"`
	Owner         *User      `json:"-" gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt" gorm:"index"`
}

// BoardOption is the lookup shape returned when board listings are filtered.
type BoardOption struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Value uint   `json:"value"`
}

// BoardPatch carries a partial board update; nil fields are left untouched.
type BoardPatch struct {
	Title         *string
	Visibility    *Visibility
	BackgroundImg *string
	Archived      *bool
}

// Empty reports whether the patch changes nothing.
func (p BoardPatch) Empty() bool {
	return p.Title == nil && p.Visibility == nil && p.BackgroundImg == nil && p.Archived == nil
}

// Columns returns the column/value pairs to update.
func (p BoardPatch) Columns() map[string]interface{} {
	cols := make(map[string]interface{}, 4)
	if p.Title != nil {
		cols["title"] = *p.Title
	}
	if p.Visibility != nil {
		cols["visibility"] = *p.Visibility
	}
	if p.BackgroundImg != nil {
		cols["background_img"] = *p.BackgroundImg
	}
	if p.Archived != nil {
		cols["archived"] = *p.Archived
	}
	return cols
}
