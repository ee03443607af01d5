package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/andrei65t/EduPro/internal/models"
	"github.com/andrei65t/EduPro/internal/services"
	"github.com/andrei65t/EduPro/internal/utils"
	pkgvalidator "github.com/andrei65t/EduPro/pkg/validator"
)

type NoteHandler struct {
	noteService     *services.NoteService
	categoryService *services.CategoryService
	validator       *validator.Validate
}

func NewNoteHandler(noteService *services.NoteService, categoryService *services.CategoryService) *NoteHandler {
	return &NoteHandler{
		noteService:     noteService,
		categoryService: categoryService,
		validator:       pkgvalidator.GetValidator(),
	}
}

func (h *NoteHandler) GetNotes(c *gin.Context) {
	var req models.NoteListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Parametri de cerere invalizi.")
		return
	}

	notes, err := h.noteService.List(req.CategoryID)
	if err != nil {
		utils.InternalError(c)
		return
	}

	utils.Success(c, notes)
}

func (h *NoteHandler) GetNote(c *gin.Context) {
	noteID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "ID de notiță invalid.")
		return
	}

	note, err := h.noteService.GetByID(uint(noteID))
	if err != nil {
		if errors.Is(err, services.ErrNoteNotFound) {
			utils.NotFound(c, "Notița nu a fost găsită.")
			return
		}
		utils.InternalError(c)
		return
	}

	utils.Success(c, note)
}

func (h *NoteHandler) DeleteNote(c *gin.Context) {
	noteID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "ID de notiță invalid.")
		return
	}

	if err := h.noteService.Delete(uint(noteID)); err != nil {
		if errors.Is(err, services.ErrNoteNotFound) {
			utils.NotFound(c, "Notița nu a fost găsită.")
			return
		}
		utils.InternalError(c)
		return
	}

	utils.SuccessWithMessage(c, "Notița a fost ștearsă.", nil)
}

// ChangeCategory assigns a note to an existing category by id, to a fresh
// name (auto-created with a random palette color), or to no category at all.
func (h *NoteHandler) ChangeCategory(c *gin.Context) {
	noteID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "ID de notiță invalid.")
		return
	}

	var req models.NoteCategoryChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Parametri de cerere invalizi.")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationError(c, err.Error())
		return
	}

	categoryID := req.CategoryID
	if req.CategoryName != "" {
		category, err := h.categoryService.GetOrCreate(req.CategoryName)
		if err != nil {
			utils.InternalError(c)
			return
		}
		categoryID = &category.ID
	}

	note, err := h.noteService.ChangeCategory(uint(noteID), categoryID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoteNotFound):
			utils.NotFound(c, "Notița nu a fost găsită.")
		case errors.Is(err, services.ErrCategoryNotFound):
			utils.NotFound(c, "Categoria nu a fost găsită!")
		default:
			utils.InternalError(c)
		}
		return
	}

	utils.SuccessWithMessage(c, "Categoria notiței a fost actualizată.", note)
}

func (h *NoteHandler) GetStats(c *gin.Context) {
	stats, err := h.noteService.GetStats()
	if err != nil {
		utils.InternalError(c)
		return
	}

	utils.Success(c, stats)
}
