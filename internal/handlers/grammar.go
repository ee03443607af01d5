package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/andrei65t/EduPro/internal/models"
	"github.com/andrei65t/EduPro/internal/ocr"
	"github.com/andrei65t/EduPro/internal/services"
	"github.com/andrei65t/EduPro/internal/utils"
)

type GrammarHandler struct {
	noteService *services.NoteService
	ocrClient   *ocr.Client
}

func NewGrammarHandler(noteService *services.NoteService, ocrClient *ocr.Client) *GrammarHandler {
	return &GrammarHandler{
		noteService: noteService,
		ocrClient:   ocrClient,
	}
}

// Check runs the grammar service over pasted text or a saved note's text.
func (h *GrammarHandler) Check(c *gin.Context) {
	var req models.GrammarCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Parametri de cerere invalizi.")
		return
	}

	text := req.Text
	if req.NoteID != nil {
		note, err := h.noteService.GetByID(*req.NoteID)
		if err != nil {
			if errors.Is(err, services.ErrNoteNotFound) {
				utils.NotFound(c, "Notița nu a fost găsită.")
				return
			}
			utils.InternalError(c)
			return
		}
		text = note.ExtractedText
	}

	if text == "" {
		utils.Error(c, http.StatusBadRequest, "Te rog introdu un text pentru verificare.")
		return
	}

	result, err := h.ocrClient.GrammarCheck(c.Request.Context(), text)
	if err != nil {
		var apiErr *ocr.APIError
		switch {
		case errors.Is(err, ocr.ErrUnreachable):
			utils.BadGateway(c, "Nu pot contacta serverul. Verifică dacă serverul rulează.")
		case errors.As(err, &apiErr):
			utils.BadGateway(c, fmt.Sprintf("Eroare la verificarea gramaticală: %d. Te rog încearcă din nou.", apiErr.Status))
		default:
			utils.InternalError(c)
		}
		return
	}

	corrections := result.Corrections
	if corrections == nil {
		corrections = []string{}
	}

	utils.Success(c, models.GrammarCheckResponse{
		CorrectedText: result.CorrectedText,
		Corrections:   corrections,
	})
}
