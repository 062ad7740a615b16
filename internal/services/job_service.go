package services

import (
	"context"
	"errors"
	"time"

	"github.com/tailorhq/resume-tailor/internal/models"
	"github.com/tailorhq/resume-tailor/internal/notify"
	mongorepo "github.com/tailorhq/resume-tailor/internal/repositories/mongo"
	"github.com/tailorhq/resume-tailor/internal/utils"
)

type JobService interface {
	Create(ctx context.Context, userID string, job *models.JobDescription) (*models.JobDescription, error)
	Get(ctx context.Context, userID, id string) (*models.JobDescription, error)
	List(ctx context.Context, userID string) ([]models.JobDescription, error)
}

type jobService struct {
	jobs     mongorepo.JobRepository
	notifier notify.Notifier
}

func NewJobService(jobs mongorepo.JobRepository, notifier notify.Notifier) JobService {
	if notifier == nil {
		notifier = notify.Nop{}
	}
	return &jobService{jobs: jobs, notifier: notifier}
}

func (s *jobService) Create(ctx context.Context, userID string, job *models.JobDescription) (*models.JobDescription, error) {
	const op = "JobService.Create"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}
	if job == nil || job.Title == "" || job.Company == "" || job.Description == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "title, company, and description are required", nil)
	}

	job.UserID = userID
	if job.Requirements == nil {
		job.Requirements = []string{}
	}
	if job.Keywords == nil {
		job.Keywords = []string{}
	}
	job.CreatedAt = time.Now().UTC()

	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create job description", err)
	}

	s.notifier.JobDescriptionAdded(ctx, userID, job.ID.Hex(), job.Title, job.Company)
	return job, nil
}

func (s *jobService) Get(ctx context.Context, userID, id string) (*models.JobDescription, error) {
	const op = "JobService.Get"

	if id == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "job id is required", nil)
	}

	job, err := s.jobs.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "job description not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get job description", err)
	}
	return job, nil
}

func (s *jobService) List(ctx context.Context, userID string) ([]models.JobDescription, error) {
	const op = "JobService.List"

	out, err := s.jobs.ListByUser(ctx, userID, 50)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list job descriptions", err)
	}
	if out == nil {
		out = []models.JobDescription{}
	}
	return out, nil
}
