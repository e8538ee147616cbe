package app

import (
	"context"
	"strings"

	"careerconnect/internal/common"
	"careerconnect/internal/domain/job"
	"careerconnect/internal/domain/user"
)

type JobService struct {
	repo  job.Repository
	users user.Repository
}

func NewJobService(repo job.Repository, users user.Repository) *JobService {
	return &JobService{repo: repo, users: users}
}

func (s *JobService) Post(ctx context.Context, j job.Job) (*job.Job, error) {
	fields := map[string]string{}
	if strings.TrimSpace(j.Title) == "" {
		fields["title"] = "title is required"
	}
	if strings.TrimSpace(j.Description) == "" {
		fields["description"] = "description is required"
	}
	if strings.TrimSpace(j.Skills) == "" {
		fields["skills"] = "skills are required"
	}
	if len(fields) > 0 {
		return nil, common.NewValidationError("invalid job", fields)
	}
	recruiter, err := s.users.GetByID(ctx, j.RecruiterID)
	if err != nil {
		return nil, err
	}
	if recruiter.Role != user.RoleRecruiter {
		return nil, common.NewError(common.CodeForbidden, "only recruiters can post jobs", nil)
	}
	return s.repo.Create(ctx, j)
}

// List returns jobs in creation order, optionally narrowed by a skill
// filter. The filter is a case-insensitive substring match against the raw
// skills field, a deliberately looser rule than the token-based scoring.
func (s *JobService) List(ctx context.Context, filterSkill string) ([]job.Job, error) {
	return s.repo.List(ctx, strings.TrimSpace(filterSkill))
}

func (s *JobService) ListByRecruiter(ctx context.Context, recruiterID common.UUID) ([]job.Job, error) {
	return s.repo.ListByRecruiter(ctx, recruiterID)
}

func (s *JobService) Get(ctx context.Context, id common.UUID) (*job.Job, error) {
	return s.repo.GetByID(ctx, id)
}
