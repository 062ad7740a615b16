package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/tailorhq/resume-tailor/internal/models"
	"github.com/tailorhq/resume-tailor/internal/notify"
	mongorepo "github.com/tailorhq/resume-tailor/internal/repositories/mongo"
	"github.com/tailorhq/resume-tailor/internal/tailoring"
	"github.com/tailorhq/resume-tailor/internal/utils"
)

// TailorInput is everything a tailoring request may carry. The job comes from
// JobDescriptionID or inline Job; the resume comes from Resume, RawText, or
// the stored profile, in that order.
type TailorInput struct {
	JobDescriptionID string
	Job              *models.JobDescription
	Resume           *models.ResumeContent
	RawText          string
}

type TailorService interface {
	Tailor(ctx context.Context, userID string, in TailorInput) (*models.TailoringResult, error)
	History(ctx context.Context, userID string) ([]models.TailoringResult, error)
}

type tailorService struct {
	engine   *tailoring.Engine
	jobs     JobService
	profiles ProfileService
	results  mongorepo.ResultRepository
	notifier notify.Notifier
	log      *logrus.Logger
}

func NewTailorService(
	engine *tailoring.Engine,
	jobs JobService,
	profiles ProfileService,
	results mongorepo.ResultRepository,
	notifier notify.Notifier,
	log *logrus.Logger,
) TailorService {
	if notifier == nil {
		notifier = notify.Nop{}
	}
	if log == nil {
		log = logrus.New()
	}
	return &tailorService{
		engine:   engine,
		jobs:     jobs,
		profiles: profiles,
		results:  results,
		notifier: notifier,
		log:      log,
	}
}

func (s *tailorService) Tailor(ctx context.Context, userID string, in TailorInput) (*models.TailoringResult, error) {
	const op = "TailorService.Tailor"

	job, err := s.resolveJob(ctx, userID, in)
	if err != nil {
		return nil, err
	}

	resume, err := s.resolveResume(ctx, userID, in)
	if err != nil {
		return nil, err
	}

	result := s.engine.Tailor(ctx, resume, job)
	result.UserID = userID
	if in.JobDescriptionID != "" {
		result.JobDescriptionID = in.JobDescriptionID
	}

	// History is best-effort: the user already has their tailored resume, a
	// lost record is not worth failing the request over.
	if err := s.results.Insert(ctx, result); err != nil {
		s.log.WithError(err).WithField("user_id", userID).Warn("failed to persist tailoring result")
	}

	s.notifier.ResumeTailored(ctx, userID, result.ID.Hex(), job.Title, result.Score)
	return result, nil
}

func (s *tailorService) History(ctx context.Context, userID string) ([]models.TailoringResult, error) {
	const op = "TailorService.History"

	out, err := s.results.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list tailoring history", err)
	}
	if out == nil {
		out = []models.TailoringResult{}
	}
	return out, nil
}

func (s *tailorService) resolveJob(ctx context.Context, userID string, in TailorInput) (*models.JobDescription, error) {
	const op = "TailorService.Tailor"

	if in.JobDescriptionID != "" {
		return s.jobs.Get(ctx, userID, in.JobDescriptionID)
	}
	if in.Job == nil || in.Job.Title == "" || in.Job.Company == "" || in.Job.Description == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op,
			"jobDescriptionId or inline job title, company, and description are required", nil)
	}
	return in.Job, nil
}

func (s *tailorService) resolveResume(ctx context.Context, userID string, in TailorInput) (*models.ResumeContent, error) {
	const op = "TailorService.Tailor"

	if in.Resume != nil && (in.Resume.RawText != "" || in.Resume.HasStructuredContent()) {
		return in.Resume, nil
	}
	if in.RawText != "" {
		return tailoring.ParseRawText(in.RawText), nil
	}

	profile, err := s.profiles.GetMe(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil || profile.ResumeContent == nil {
		return nil, utils.E(utils.CodeNotFound, op, "resume not found; save a profile or send resume content", nil)
	}
	return profile.ResumeContent, nil
}
