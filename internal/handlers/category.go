package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/andrei65t/EduPro/internal/models"
	"github.com/andrei65t/EduPro/internal/services"
	"github.com/andrei65t/EduPro/internal/utils"
	pkgvalidator "github.com/andrei65t/EduPro/pkg/validator"
)

type CategoryHandler struct {
	categoryService *services.CategoryService
	validator       *validator.Validate
}

func NewCategoryHandler(categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		validator:       pkgvalidator.GetValidator(),
	}
}

func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.categoryService.List()
	if err != nil {
		utils.InternalError(c)
		return
	}

	utils.Success(c, categories)
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req models.CategoryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Parametri de cerere invalizi.")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationError(c, err.Error())
		return
	}

	category, err := h.categoryService.Create(&req)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateName) {
			utils.Error(c, http.StatusBadRequest, "O categorie cu acest nume există deja!")
			return
		}
		utils.Error(c, http.StatusBadRequest, "Numele categoriei nu poate fi gol!")
		return
	}

	utils.SuccessWithMessage(c, fmt.Sprintf("Categoria '%s' a fost creată cu succes!", category.Name), category)
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	categoryID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "ID de categorie invalid.")
		return
	}

	result, err := h.categoryService.Delete(uint(categoryID))
	if err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			utils.NotFound(c, "Categoria nu a fost găsită!")
			return
		}
		utils.InternalError(c)
		return
	}

	message := fmt.Sprintf("Categoria '%s' a fost ștearsă! (%d %s în 'Fără categorie')",
		result.Name, result.DetachedNotes, pluralNotes(result.DetachedNotes, "notiță mutată", "notițe mutate"))
	utils.SuccessWithMessage(c, message, gin.H{"detached_notes": result.DetachedNotes})
}

func (h *CategoryHandler) MoveCategory(c *gin.Context) {
	var req models.CategoryMoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Parametri de cerere invalizi.")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationError(c, err.Error())
		return
	}

	moved, err := h.categoryService.Move(req.FromCategoryID, req.ToCategoryID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoNotesToMove):
			utils.Error(c, http.StatusBadRequest, "Nu există notițe de mutat!")
		case errors.Is(err, services.ErrCategoryNotFound):
			utils.NotFound(c, "Categoria nu a fost găsită!")
		default:
			utils.InternalError(c)
		}
		return
	}

	message := fmt.Sprintf("%d %s!", moved, pluralNotes(moved, "notiță mutată", "notițe mutate"))
	utils.SuccessWithMessage(c, message, gin.H{"moved_notes": moved})
}

func pluralNotes(n int64, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}
