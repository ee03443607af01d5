package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/andrei65t/EduPro/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}

	if err := db.AutoMigrate(&models.Category{}, &models.Note{}); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	return db
}

func createTestCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()

	color := "#6366f1"
	category := models.Category{
		Name:      name,
		NameLower: models.NormalizeName(name),
		Color:     &color,
	}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("failed to create category %q: %v", name, err)
	}
	return &category
}

func createTestNote(t *testing.T, db *gorm.DB, text string, categoryID *uint, createdAt time.Time) *models.Note {
	t.Helper()

	note := models.Note{
		ExtractedText: text,
		CategoryID:    categoryID,
		CreatedAt:     createdAt,
	}
	if err := db.Create(&note).Error; err != nil {
		t.Fatalf("failed to create note: %v", err)
	}
	return &note
}
