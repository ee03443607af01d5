package services

import (
	"errors"
	"math/rand"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/andrei65t/EduPro/internal/models"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrDuplicateName    = errors.New("a category with this name already exists")
	ErrNoNotesToMove    = errors.New("no notes to move")
)

// DefaultCategoryColor is applied when the caller sends no color.
const DefaultCategoryColor = "#6366f1"

// categoryPalette is picked from at random when a category is auto-created
// while assigning a fresh name to a note.
var categoryPalette = []string{
	"#6366f1", "#8b5cf6", "#ec4899", "#f59e0b",
	"#10b981", "#3b82f6", "#ef4444", "#14b8a6",
}

type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

func (s *CategoryService) List() ([]models.Category, error) {
	var categories []models.Category

	err := s.db.Table("categories").
		Select("categories.*, COUNT(notes.id) as note_count").
		Joins("LEFT JOIN notes ON categories.id = notes.category_id").
		Group("categories.id").
		Order("categories.name").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}

	return categories, nil
}

// Create inserts the category and lets the unique index on name_lower decide
// duplicates, instead of a separate existence check that races with
// concurrent inserts of the same name.
func (s *CategoryService) Create(req *models.CategoryCreateRequest) (*models.Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.New("category name cannot be empty")
	}

	color := DefaultCategoryColor
	if req.Color != nil && *req.Color != "" {
		color = *req.Color
	}

	category := models.Category{
		Name:      name,
		NameLower: models.NormalizeName(name),
		Color:     &color,
	}

	if err := s.db.Create(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}

	return &category, nil
}

type CategoryDeleteResult struct {
	Name          string
	DetachedNotes int64
}

// Delete detaches dependent notes (category_id goes to NULL, the notes
// themselves survive) and removes the category, in one transaction.
func (s *CategoryService) Delete(categoryID uint) (*CategoryDeleteResult, error) {
	result := &CategoryDeleteResult{}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := tx.First(&category, categoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCategoryNotFound
			}
			return err
		}
		result.Name = category.Name

		detach := tx.Model(&models.Note{}).
			Where("category_id = ?", categoryID).
			Update("category_id", nil)
		if detach.Error != nil {
			return detach.Error
		}
		result.DetachedNotes = detach.RowsAffected

		return tx.Delete(&category).Error
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// Move bulk-reassigns every note in fromID to toID (nil means "no category")
// and stamps updated_at on each moved note. Returns the number of notes moved.
func (s *CategoryService) Move(fromID uint, toID *uint) (int64, error) {
	if toID != nil {
		var count int64
		if err := s.db.Model(&models.Category{}).Where("id = ?", *toID).Count(&count).Error; err != nil {
			return 0, err
		}
		if count == 0 {
			return 0, ErrCategoryNotFound
		}
	}

	now := time.Now().UTC()
	result := s.db.Model(&models.Note{}).
		Where("category_id = ?", fromID).
		Updates(map[string]interface{}{
			"category_id": toID,
			"updated_at":  now,
		})
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, ErrNoNotesToMove
	}

	return result.RowsAffected, nil
}

// GetOrCreate finds a category by case-insensitive name or creates one with
// a random palette color. A concurrent insert of the same name is resolved
// by re-querying after the unique index rejects ours.
func (s *CategoryService) GetOrCreate(name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("category name cannot be empty")
	}
	nameLower := models.NormalizeName(name)

	var category models.Category
	err := s.db.Where("name_lower = ?", nameLower).First(&category).Error
	if err == nil {
		return &category, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	color := categoryPalette[rand.Intn(len(categoryPalette))]
	category = models.Category{
		Name:      name,
		NameLower: nameLower,
		Color:     &color,
	}

	if err := s.db.Create(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Someone else created it between our lookup and insert.
			if err := s.db.Where("name_lower = ?", nameLower).First(&category).Error; err != nil {
				return nil, err
			}
			return &category, nil
		}
		return nil, err
	}

	return &category, nil
}
