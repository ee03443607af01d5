package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/andrei65t/EduPro/internal/ocr"
	"github.com/andrei65t/EduPro/internal/services"
	"github.com/andrei65t/EduPro/internal/utils"
)

type UploadHandler struct {
	noteService   *services.NoteService
	ocrClient     *ocr.Client
	maxUploadSize int64
}

func NewUploadHandler(noteService *services.NoteService, ocrClient *ocr.Client, maxUploadSize int64) *UploadHandler {
	return &UploadHandler{
		noteService:   noteService,
		ocrClient:     ocrClient,
		maxUploadSize: maxUploadSize,
	}
}

// Upload runs the OCR round-trip and persists a note only when the service
// actually extracted text. An empty extraction is a warning, not an error,
// and saves nothing.
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil || fileHeader.Size == 0 {
		utils.Error(c, http.StatusBadRequest, "Te rog selectează un fișier valid.")
		return
	}

	if h.maxUploadSize > 0 && fileHeader.Size > h.maxUploadSize {
		utils.Error(c, http.StatusBadRequest,
			fmt.Sprintf("Fișierul depășește dimensiunea maximă de %d MB.", h.maxUploadSize/(1<<20)))
		return
	}

	title := c.PostForm("title")

	file, err := fileHeader.Open()
	if err != nil {
		utils.InternalError(c)
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	logrus.WithFields(logrus.Fields{
		"file_name":    fileHeader.Filename,
		"content_type": contentType,
	}).Info("Calling OCR API")

	result, err := h.ocrClient.ExtractText(c.Request.Context(), fileHeader.Filename, contentType, file)
	if err != nil {
		h.handleOCRError(c, err)
		return
	}

	if result.Empty {
		utils.SuccessWithMessage(c,
			"Nu am putut extrage text din imagine. Verifică dacă imaginea conține text vizibil.",
			gin.H{"warning": true})
		return
	}

	note, err := h.noteService.Create(result.Text, result.Summary, title, fileHeader.Filename)
	if err != nil {
		logrus.WithError(err).Error("Failed to save note after OCR")
		utils.InternalError(c)
		return
	}

	utils.SuccessWithMessage(c, "Notița a fost salvată cu succes!", note)
}

func (h *UploadHandler) handleOCRError(c *gin.Context, err error) {
	var apiErr *ocr.APIError
	switch {
	case errors.Is(err, ocr.ErrUnreachable):
		utils.BadGateway(c, "Nu pot contacta serverul OCR. Verifică dacă serverul rulează pe portul 8001.")
	case errors.As(err, &apiErr):
		utils.BadGateway(c, fmt.Sprintf("Eroare OCR API: %d", apiErr.Status))
	default:
		logrus.WithError(err).Error("Error processing image")
		utils.Error(c, http.StatusInternalServerError, "Eroare la procesarea imaginii.")
	}
}
