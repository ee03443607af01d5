package services

import (
	"errors"
	"strings"

	"github.com/andrei65t/EduPro/internal/models"
)

var ErrCourseNotFound = errors.New("course not found")

// CourseCatalog maps course slugs to sample lessons and note titles. Static
// demo content until courses get their own tables.
type CourseCatalog struct {
	ordered []models.Course
	courses map[string]models.Course
}

func NewCourseCatalog() *CourseCatalog {
	courses := []models.Course{
		{
			Slug:    "matematica",
			Title:   "Matematică",
			Lessons: []string{"Algebră - Capitolul 1", "Geometrie - Capitolul 2", "Funcții - Capitolul 3"},
			Notes:   []string{"Notițe: Algebră - ecuații", "Notițe: Geometrie - triunghiuri"},
		},
		{
			Slug:    "romana",
			Title:   "Română",
			Lessons: []string{"Literatură - Lectură", "Gramatică - Părți de vorbire"},
			Notes:   []string{"Notițe: Analiză text", "Notițe: Conjugări"},
		},
		{
			Slug:    "chimie",
			Title:   "Chimie",
			Lessons: []string{"Structura atomului", "Reacții chimice"},
			Notes:   []string{"Notițe: Tabele reactivitate"},
		},
		{
			Slug:    "fizica",
			Title:   "Fizică",
			Lessons: []string{"Mecanica", "Termodinamica"},
			Notes:   []string{},
		},
		{
			Slug:    "biologie",
			Title:   "Biologie",
			Lessons: []string{"Celula", "Genetica"},
			Notes:   []string{"Notițe: ADN și ARN"},
		},
		{
			Slug:    "engleza",
			Title:   "Engleză",
			Lessons: []string{"Grammar - basics", "Vocabulary"},
			Notes:   []string{},
		},
	}

	catalog := &CourseCatalog{
		ordered: courses,
		courses: make(map[string]models.Course, len(courses)),
	}
	for _, c := range courses {
		catalog.courses[c.Slug] = c
	}
	return catalog
}

func (c *CourseCatalog) Get(slug string) (*models.Course, error) {
	course, ok := c.courses[strings.ToLower(slug)]
	if !ok {
		return nil, ErrCourseNotFound
	}
	return &course, nil
}

func (c *CourseCatalog) List() []models.Course {
	return c.ordered
}
