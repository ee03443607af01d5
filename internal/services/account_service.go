package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/andrei65t/EduPro/internal/models"
)

const defaultAvatar = "/uploads/avatars/default-avatar.svg"

// ProfileProvider abstracts "who is the current user". Authentication is not
// implemented; the static provider below serves demo data until it is.
type ProfileProvider interface {
	Current() models.Profile
}

type StaticProfileProvider struct{}

func (StaticProfileProvider) Current() models.Profile {
	return models.Profile{
		Name:       "Andrei Popescu",
		Email:      "andrei.popescu@example.com",
		Role:       "Student",
		AvatarPath: defaultAvatar,
	}
}

type AccountService struct {
	provider  ProfileProvider
	avatarDir string
}

func NewAccountService(provider ProfileProvider, avatarDir string) *AccountService {
	return &AccountService{provider: provider, avatarDir: avatarDir}
}

func (s *AccountService) GetProfile() models.Profile {
	return s.provider.Current()
}

// UpdateProfile applies the submitted fields over the current profile and
// stores the avatar if one was uploaded. Nothing is persisted to the
// database; the account page is demo-only until real auth lands.
func (s *AccountService) UpdateProfile(req *models.ProfileUpdateRequest, avatar *multipart.FileHeader) (models.Profile, error) {
	profile := s.provider.Current()
	profile.Name = req.Name
	profile.Email = req.Email
	if req.Role != "" {
		profile.Role = req.Role
	}

	if avatar != nil && avatar.Size > 0 {
		path, err := s.saveAvatar(avatar)
		if err != nil {
			return profile, err
		}
		profile.AvatarPath = path
	}

	return profile, nil
}

func (s *AccountService) saveAvatar(avatar *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(s.avatarDir, 0755); err != nil {
		return "", fmt.Errorf("create avatar directory: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(avatar.Filename))
	fileName := strings.ReplaceAll(uuid.New().String(), "-", "") + ext
	dst := filepath.Join(s.avatarDir, fileName)

	src, err := avatar.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return "", err
	}

	return "/uploads/avatars/" + fileName, nil
}
