package models

import "time"

type Note struct {
	ID               uint       `json:"id" gorm:"primaryKey"`
	ExtractedText    string     `json:"extracted_text" gorm:"type:text;not null"`
	Summary          *string    `json:"summary" gorm:"type:text"`
	Title            *string    `json:"title" gorm:"size:255"`
	OriginalFileName *string    `json:"original_file_name" gorm:"size:255"`
	CreatedAt        time.Time  `json:"created_at" gorm:"index"`
	UpdatedAt        *time.Time `json:"updated_at" gorm:"autoUpdateTime:false"`
	CategoryID       *uint      `json:"category_id" gorm:"index"`

	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
}

// DisplayTitle falls back to the original filename and then to a truncated
// slice of the extracted text when the user never set a title.
func (n *Note) DisplayTitle() string {
	if n.Title != nil && *n.Title != "" {
		return *n.Title
	}
	if n.OriginalFileName != nil && *n.OriginalFileName != "" {
		return *n.OriginalFileName
	}
	runes := []rune(n.ExtractedText)
	if len(runes) > 50 {
		return string(runes[:50]) + "..."
	}
	return n.ExtractedText
}

type NoteListRequest struct {
	CategoryID *uint `form:"category_id"`
}

type NoteCategoryChangeRequest struct {
	CategoryID   *uint  `json:"category_id"`
	CategoryName string `json:"category_name" validate:"omitempty,max=100"`
}
