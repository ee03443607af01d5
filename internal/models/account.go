package models

type Profile struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	AvatarPath string `json:"avatar_path"`
}

type ProfileUpdateRequest struct {
	Name  string `form:"name" validate:"required"`
	Email string `form:"email" validate:"required,email"`
	Role  string `form:"role"`
}

type Course struct {
	Slug    string   `json:"slug"`
	Title   string   `json:"title"`
	Lessons []string `json:"lessons"`
	Notes   []string `json:"notes"`
}
