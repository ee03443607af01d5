package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/andrei65t/EduPro/internal/models"
	"github.com/andrei65t/EduPro/internal/ocr"
	"github.com/andrei65t/EduPro/internal/services"
	"github.com/andrei65t/EduPro/internal/utils"
	pkgvalidator "github.com/andrei65t/EduPro/pkg/validator"
)

// askContextLimit caps how many recent notes are forwarded as context.
const askContextLimit = 5

type AskHandler struct {
	noteService *services.NoteService
	ocrClient   *ocr.Client
	validator   *validator.Validate
}

func NewAskHandler(noteService *services.NoteService, ocrClient *ocr.Client) *AskHandler {
	return &AskHandler{
		noteService: noteService,
		ocrClient:   ocrClient,
		validator:   pkgvalidator.GetValidator(),
	}
}

// Ask answers a question from the user's saved notes. Without matching notes
// it short-circuits and never calls the AI service.
func (h *AskHandler) Ask(c *gin.Context) {
	var req models.AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Parametri de cerere invalizi.")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationError(c, err.Error())
		return
	}

	notes, err := h.noteService.Recent(askContextLimit, req.CategoryID)
	if err != nil {
		utils.InternalError(c)
		return
	}

	if len(notes) == 0 {
		utils.Success(c, models.AskResponse{
			Answer:      "Nu am găsit nicio notiță pentru această selecție. Încarcă notițe mai întâi.",
			IsFromNotes: false,
			NotesUsed:   0,
		})
		return
	}

	answer, err := h.ocrClient.AskQuestion(c.Request.Context(), req.Question, buildContext(notes))
	if err != nil {
		var apiErr *ocr.APIError
		switch {
		case errors.Is(err, ocr.ErrUnreachable):
			utils.BadGateway(c, "Nu pot contacta serverul. Verifică dacă serverul rulează.")
		case errors.As(err, &apiErr):
			utils.BadGateway(c, fmt.Sprintf("Eroare API: %d", apiErr.Status))
		default:
			utils.InternalError(c)
		}
		return
	}

	utils.Success(c, models.AskResponse{
		Answer:      answer,
		IsFromNotes: true,
		NotesUsed:   len(notes),
	})
}

// buildContext concatenates note texts, newest first, titles included where
// present.
func buildContext(notes []models.Note) string {
	var sb strings.Builder
	for i, note := range notes {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		if note.Title != nil && *note.Title != "" {
			sb.WriteString(*note.Title)
			sb.WriteString(":\n")
		}
		sb.WriteString(note.ExtractedText)
	}
	return sb.String()
}
