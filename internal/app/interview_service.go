package app

import (
	"context"
	"time"

	"careerconnect/internal/common"
	"careerconnect/internal/domain/application"
	"careerconnect/internal/domain/interview"
	"careerconnect/internal/domain/job"
)

type InterviewService struct {
	repo         interview.Repository
	applications application.Repository
	jobs         job.Repository
}

func NewInterviewService(repo interview.Repository, applications application.Repository, jobs job.Repository) *InterviewService {
	return &InterviewService{repo: repo, applications: applications, jobs: jobs}
}

// Schedule books an interview for a (student, job) pair. The recruiter must
// own the job and an application for the pair must already exist.
func (s *InterviewService) Schedule(ctx context.Context, recruiterID, studentID, jobID common.UUID, at time.Time) (*interview.Interview, error) {
	if at.IsZero() {
		return nil, common.NewValidationError("invalid interview", map[string]string{"scheduled_at": "a date and time is required"})
	}
	j, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if j.RecruiterID != recruiterID {
		return nil, common.NewError(common.CodeForbidden, "job belongs to another recruiter", nil)
	}
	if _, err := s.applications.FindByStudentAndJob(ctx, studentID, jobID); err != nil {
		if common.Is(err, common.CodeNotFound) {
			return nil, common.NewError(common.CodeValidation, "no application exists for this student and job", nil)
		}
		return nil, err
	}
	iv := interview.Interview{
		StudentID:   studentID,
		JobID:       jobID,
		ScheduledAt: at.UTC(),
	}
	return s.repo.Create(ctx, iv)
}

func (s *InterviewService) ListByStudent(ctx context.Context, studentID common.UUID) ([]interview.Interview, error) {
	return s.repo.ListByStudent(ctx, studentID)
}

func (s *InterviewService) ListByRecruiter(ctx context.Context, recruiterID common.UUID) ([]interview.Interview, error) {
	return s.repo.ListByRecruiter(ctx, recruiterID)
}
