package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/andrei65t/EduPro/internal/models"
)

var ErrNoteNotFound = errors.New("note not found")

type NoteService struct {
	db *gorm.DB
}

func NewNoteService(db *gorm.DB) *NoteService {
	return &NoteService{db: db}
}

func (s *NoteService) List(categoryID *uint) ([]models.Note, error) {
	var notes []models.Note

	query := s.db.Preload("Category").Order("created_at DESC")
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}

	if err := query.Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

// Recent returns at most limit notes, newest first, optionally filtered by
// category. Used as the context window for question answering.
func (s *NoteService) Recent(limit int, categoryID *uint) ([]models.Note, error) {
	var notes []models.Note

	query := s.db.Order("created_at DESC").Limit(limit)
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}

	if err := query.Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

func (s *NoteService) GetByID(noteID uint) (*models.Note, error) {
	var note models.Note
	err := s.db.Preload("Category").First(&note, noteID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, err
	}
	return &note, nil
}

// Create persists a note from a successful OCR round-trip. Only
// extractedText is required; empty optional fields stay NULL.
func (s *NoteService) Create(extractedText, summary, title, originalFileName string) (*models.Note, error) {
	if extractedText == "" {
		return nil, errors.New("extracted text cannot be empty")
	}

	note := models.Note{ExtractedText: extractedText}
	if summary != "" {
		note.Summary = &summary
	}
	if title != "" {
		note.Title = &title
	}
	if originalFileName != "" {
		note.OriginalFileName = &originalFileName
	}

	if err := s.db.Create(&note).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

func (s *NoteService) Delete(noteID uint) error {
	result := s.db.Delete(&models.Note{}, noteID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNoteNotFound
	}
	return nil
}

// ChangeCategory reassigns a note (nil clears the category) and stamps
// updated_at, the only mutation path a note has after creation.
func (s *NoteService) ChangeCategory(noteID uint, categoryID *uint) (*models.Note, error) {
	var note models.Note
	if err := s.db.First(&note, noteID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, err
	}

	if categoryID != nil {
		var count int64
		if err := s.db.Model(&models.Category{}).Where("id = ?", *categoryID).Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, ErrCategoryNotFound
		}
	}

	now := time.Now().UTC()
	updates := map[string]interface{}{
		"category_id": categoryID,
		"updated_at":  now,
	}
	if err := s.db.Model(&note).Updates(updates).Error; err != nil {
		return nil, err
	}

	note.CategoryID = categoryID
	note.UpdatedAt = &now
	s.db.Preload("Category").First(&note, note.ID)

	return &note, nil
}

type Stats struct {
	TotalNotes         int64 `json:"total_notes"`
	TotalCategories    int64 `json:"total_categories"`
	CategorizedNotes   int64 `json:"categorized_notes"`
	UncategorizedNotes int64 `json:"uncategorized_notes"`
}

func (s *NoteService) GetStats() (*Stats, error) {
	var stats Stats

	if err := s.db.Model(&models.Note{}).Count(&stats.TotalNotes).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Category{}).Count(&stats.TotalCategories).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Note{}).Where("category_id IS NOT NULL").Count(&stats.CategorizedNotes).Error; err != nil {
		return nil, err
	}
	stats.UncategorizedNotes = stats.TotalNotes - stats.CategorizedNotes

	return &stats, nil
}
