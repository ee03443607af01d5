package models

import (
	"strings"
	"time"
)

type Category struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:100;not null"`
	NameLower string    `json:"-" gorm:"size:100;uniqueIndex;not null"`
	Color     *string   `json:"color" gorm:"size:7"`
	CreatedAt time.Time `json:"created_at"`

	Notes []Note `json:"notes,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`

	// filled by the list query's COUNT, never written or migrated
	NoteCount int `json:"note_count" gorm:"->;-:migration"`
}

// NormalizeName is the uniqueness key for category names. Lowercase only;
// accent folding for Romanian names is intentionally not applied here.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

type CategoryCreateRequest struct {
	Name  string  `json:"name" validate:"required,max=100"`
	Color *string `json:"color" validate:"omitempty,hexcolor"`
}

type CategoryMoveRequest struct {
	FromCategoryID uint  `json:"from_category_id" validate:"required"`
	ToCategoryID   *uint `json:"to_category_id"`
}
