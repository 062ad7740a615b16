package services

import (
	"context"
	"errors"
	"time"

	"github.com/tailorhq/resume-tailor/internal/models"
	mongorepo "github.com/tailorhq/resume-tailor/internal/repositories/mongo"
	"github.com/tailorhq/resume-tailor/internal/tailoring"
	"github.com/tailorhq/resume-tailor/internal/utils"
)

type ProfileService interface {
	// GetMe returns nil (not an error) when no profile exists yet.
	GetMe(ctx context.Context, userID string) (*models.Profile, error)
	Save(ctx context.Context, userID string, content *models.ResumeContent) (*models.Profile, error)
}

type profileService struct {
	profiles mongorepo.ProfileRepository
}

func NewProfileService(profiles mongorepo.ProfileRepository) ProfileService {
	return &profileService{profiles: profiles}
}

func (s *profileService) GetMe(ctx context.Context, userID string) (*models.Profile, error) {
	const op = "ProfileService.GetMe"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}

	p, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, nil
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get profile", err)
	}
	return p, nil
}

func (s *profileService) Save(ctx context.Context, userID string, content *models.ResumeContent) (*models.Profile, error) {
	const op = "ProfileService.Save"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}
	if content == nil || (content.RawText == "" && !content.HasStructuredContent()) {
		return nil, utils.E(utils.CodeInvalidArgument, op, "resume content is required", nil)
	}

	// Pasted-text-only resumes get a best-effort structured extraction so the
	// dashboard has something to render.
	if content.RawText != "" && !content.HasStructuredContent() {
		parsed := tailoring.ParseRawText(content.RawText)
		parsed.PersonalInfo.Name = firstNonEmpty(content.PersonalInfo.Name, parsed.PersonalInfo.Name)
		parsed.PersonalInfo.Email = firstNonEmpty(content.PersonalInfo.Email, parsed.PersonalInfo.Email)
		parsed.PersonalInfo.Phone = firstNonEmpty(content.PersonalInfo.Phone, parsed.PersonalInfo.Phone)
		parsed.PersonalInfo.Location = content.PersonalInfo.Location
		parsed.PersonalInfo.LinkedIn = content.PersonalInfo.LinkedIn
		parsed.PersonalInfo.Website = content.PersonalInfo.Website
		content = parsed
	}

	p := &models.Profile{
		UserID:        userID,
		ResumeContent: content,
		UpdatedAt:     time.Now().UTC(),
	}
	if err := s.profiles.Upsert(ctx, p); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to save profile", err)
	}
	return p, nil
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
