package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/andrei65t/EduPro/internal/services"
	"github.com/andrei65t/EduPro/internal/utils"
)

type CourseHandler struct {
	catalog *services.CourseCatalog
}

func NewCourseHandler(catalog *services.CourseCatalog) *CourseHandler {
	return &CourseHandler{catalog: catalog}
}

func (h *CourseHandler) GetCourses(c *gin.Context) {
	utils.Success(c, h.catalog.List())
}

func (h *CourseHandler) GetCourse(c *gin.Context) {
	course, err := h.catalog.Get(c.Param("slug"))
	if err != nil {
		if errors.Is(err, services.ErrCourseNotFound) {
			utils.NotFound(c, "Curs necunoscut")
			return
		}
		utils.InternalError(c)
		return
	}

	utils.Success(c, course)
}
