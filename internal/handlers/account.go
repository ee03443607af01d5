package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/andrei65t/EduPro/internal/models"
	"github.com/andrei65t/EduPro/internal/services"
	"github.com/andrei65t/EduPro/internal/utils"
	pkgvalidator "github.com/andrei65t/EduPro/pkg/validator"
)

type AccountHandler struct {
	accountService *services.AccountService
	validator      *validator.Validate
}

func NewAccountHandler(accountService *services.AccountService) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		validator:      pkgvalidator.GetValidator(),
	}
}

func (h *AccountHandler) GetProfile(c *gin.Context) {
	utils.Success(c, h.accountService.GetProfile())
}

func (h *AccountHandler) UpdateProfile(c *gin.Context) {
	var req models.ProfileUpdateRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Numele și emailul sunt obligatorii.")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationError(c, err.Error())
		return
	}

	avatar, _ := c.FormFile("avatar")

	profile, err := h.accountService.UpdateProfile(&req, avatar)
	if err != nil {
		utils.InternalError(c)
		return
	}

	utils.SuccessWithMessage(c, "Profilul a fost salvat cu succes!", profile)
}
