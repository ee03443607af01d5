package handlers

import (
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/andrei65t/EduPro/internal/config"
	"github.com/andrei65t/EduPro/internal/models"
	"github.com/andrei65t/EduPro/internal/ocr"
)

func init() {
	gin.SetMode(gin.TestMode)
}

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

func testOCRClient(baseURL string) *ocr.Client {
	return ocr.NewClient(config.OCRConfig{
		BaseURL:            baseURL,
		TimeoutSeconds:     5,
		QuizTimeoutSeconds: 5,
	})
}

type envelope struct {
	Code    int                    `json:"code"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data"`
}
