package model

import "time"

// Label is a named, colored tag defined on a board.
type Label struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	LabelName string    `json:"labelName" gorm:"size:255;not null"`
	Color     string    `json:"color" gorm:"size:64;not null"`
	BoardID   uint      `json:"boardId" gorm:"not null;index"`
	Board     *Board    `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LabelPatch carries a partial label update.
type LabelPatch struct {
	LabelName *string
	Color     *string
	BoardID   *uint
}

// Columns returns the column/value pairs to update.
func (p LabelPatch) Columns() map[string]interface{} {
	cols := make(map[string]interface{}, 3)
	if p.LabelName != nil {
		cols["label_name"] = *p.LabelName
	}
	if p.Color != nil {
		cols["color"] = *p.Color
	}
	if p.BoardID != nil {
		cols["board_id"] = *p.BoardID
	}
	return cols
}
