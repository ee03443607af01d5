package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/andrei65t/EduPro/internal/models"
	"github.com/andrei65t/EduPro/internal/ocr"
	"github.com/andrei65t/EduPro/internal/services"
	"github.com/andrei65t/EduPro/internal/utils"
	pkgvalidator "github.com/andrei65t/EduPro/pkg/validator"
)

const (
	quizMinTextLength       = 50
	quizDefaultDifficulty   = "medium"
	quizDefaultNumQuestions = 5
	quizNoteSelectionLimit  = 20
)

type QuizHandler struct {
	noteService *services.NoteService
	quizService *services.QuizService
	ocrClient   *ocr.Client
	validator   *validator.Validate
}

func NewQuizHandler(noteService *services.NoteService, quizService *services.QuizService, ocrClient *ocr.Client) *QuizHandler {
	return &QuizHandler{
		noteService: noteService,
		quizService: quizService,
		ocrClient:   ocrClient,
		validator:   pkgvalidator.GetValidator(),
	}
}

// quizQuestionView is what the client sees before submitting: no correct
// answer, no explanation. Those stay inside the signed token.
type quizQuestionView struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// Generate builds a quiz from pasted text or a saved note and hands the full
// question set back as a signed token the submit step must return.
func (h *QuizHandler) Generate(c *gin.Context) {
	var req models.QuizGenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Parametri de cerere invalizi.")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationError(c, err.Error())
		return
	}

	if req.Difficulty == "" {
		req.Difficulty = quizDefaultDifficulty
	}
	if req.NumQuestions == 0 {
		req.NumQuestions = quizDefaultNumQuestions
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

	if utf8.RuneCountInString(text) < quizMinTextLength {
		utils.Error(c, http.StatusBadRequest,
			"Te rog introdu cel puțin 50 de caractere de text pentru a genera un quiz.")
		return
	}

	questions, err := h.ocrClient.GenerateQuiz(c.Request.Context(), text, req.Difficulty, req.NumQuestions)
	if err != nil {
		var apiErr *ocr.APIError
		switch {
		case errors.Is(err, ocr.ErrUnreachable):
			utils.BadGateway(c, "Nu pot contacta serverul de quiz. Verifică dacă serverul rulează.")
		case errors.As(err, &apiErr):
			utils.BadGateway(c, fmt.Sprintf("Eroare Quiz API: %d", apiErr.Status))
		default:
			utils.InternalError(c)
		}
		return
	}

	if len(questions) == 0 {
		utils.Error(c, http.StatusBadRequest,
			"Nu s-au generat întrebări. Te rog încearcă din nou cu un text mai detaliat.")
		return
	}

	token, err := h.quizService.IssueToken(questions)
	if err != nil {
		utils.InternalError(c)
		return
	}

	views := make([]quizQuestionView, len(questions))
	for i, q := range questions {
		views[i] = quizQuestionView{Question: q.Question, Options: q.Options}
	}

	utils.Success(c, gin.H{
		"questions":  views,
		"quiz_token": token,
	})
}

// Submit verifies the round-tripped token and scores the submitted answer
// indices against it.
func (h *QuizHandler) Submit(c *gin.Context) {
	var req models.QuizSubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Parametri de cerere invalizi.")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationError(c, err.Error())
		return
	}

	questions, err := h.quizService.DecodeToken(req.QuizToken)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Quiz-ul nu este valid. Te rog generează unul nou.")
		return
	}
	if len(questions) == 0 {
		utils.Error(c, http.StatusBadRequest, "Nu există întrebări pentru evaluare.")
		return
	}

	score, correct := services.Score(questions, req.Answers)

	utils.Success(c, gin.H{
		"result": models.QuizSubmitResponse{
			Score:          score,
			CorrectAnswers: correct,
			TotalQuestions: len(questions),
			QuizSubmitted:  true,
		},
		// Full questions for the review screen, explanations included.
		"questions": questions,
	})
}

// noteOption is one entry in the quiz source selector. Title falls back to
// the original filename and then to truncated text for untitled notes.
type noteOption struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// Notes lists recent saved notes for the quiz source selector.
func (h *QuizHandler) Notes(c *gin.Context) {
	notes, err := h.noteService.Recent(quizNoteSelectionLimit, nil)
	if err != nil {
		utils.InternalError(c)
		return
	}

	options := make([]noteOption, len(notes))
	for i, note := range notes {
		options[i] = noteOption{
			ID:        note.ID,
			Title:     note.DisplayTitle(),
			CreatedAt: note.CreatedAt,
		}
	}

	utils.Success(c, options)
}
