package app

import (
	"context"

	"careerconnect/internal/common"
	"careerconnect/internal/domain/application"
	"careerconnect/internal/domain/job"
	"careerconnect/internal/domain/user"
)

type ApplicationService struct {
	repo  application.Repository
	jobs  job.Repository
	users user.Repository
}

func NewApplicationService(repo application.Repository, jobs job.Repository, users user.Repository) *ApplicationService {
	return &ApplicationService{repo: repo, jobs: jobs, users: users}
}

// Apply creates the one application a student may ever hold for a job. The
// student's current ATS score is snapshotted onto the application at this
// instant; later re-scoring of the profile never touches it.
func (s *ApplicationService) Apply(ctx context.Context, studentID, jobID common.UUID) (*application.Application, error) {
	student, err := s.users.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student.Role != user.RoleStudent {
		return nil, common.NewError(common.CodeValidation, "only students can apply", nil)
	}
	if _, err := s.jobs.GetByID(ctx, jobID); err != nil {
		return nil, err
	}
	if _, err := s.repo.FindByStudentAndJob(ctx, studentID, jobID); err == nil {
		return nil, common.NewError(common.CodeConflict, "already applied", nil)
	} else if !common.Is(err, common.CodeNotFound) {
		return nil, err
	}
	app := application.Application{
		StudentID: studentID,
		JobID:     jobID,
		Status:    application.StatusPending,
		Score:     student.Profile.ATSScore,
	}
	// The pre-check above races with concurrent submits for the same pair;
	// the storage uniqueness constraint decides the winner and the loser
	// gets the same conflict error.
	return s.repo.Create(ctx, app)
}

// Verify moves an application from pending to verified on behalf of the
// recruiter owning its job. Re-verifying a verified application is a no-op
// returning the unchanged application; any other regression is rejected by
// the transition table.
func (s *ApplicationService) Verify(ctx context.Context, applicationID, recruiterID common.UUID) (*application.Application, error) {
	app, err := s.repo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	j, err := s.jobs.GetByID(ctx, app.JobID)
	if err != nil {
		return nil, err
	}
	if j.RecruiterID != recruiterID {
		return nil, common.NewError(common.CodeForbidden, "application belongs to another recruiter's job", nil)
	}
	if app.Status == application.StatusVerified {
		return app, nil
	}
	if !allowedTransition(app.Status, application.StatusVerified) {
		return nil, common.NewError(common.CodeValidation, "invalid status transition", nil)
	}
	return s.repo.UpdateStatus(ctx, applicationID, application.StatusVerified)
}

func allowedTransition(from, to application.Status) bool {
	switch from {
	case application.StatusPending:
		return to == application.StatusVerified
	default:
		return false
	}
}

func (s *ApplicationService) ListByStudent(ctx context.Context, studentID common.UUID) ([]application.StudentApplication, error) {
	return s.repo.ListByStudent(ctx, studentID)
}

// ListApplicants returns applicants for one job, only to its owner.
func (s *ApplicationService) ListApplicants(ctx context.Context, jobID, recruiterID common.UUID) ([]application.Applicant, error) {
	j, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if j.RecruiterID != recruiterID {
		return nil, common.NewError(common.CodeForbidden, "job belongs to another recruiter", nil)
	}
	return s.repo.ListApplicantsByJob(ctx, jobID)
}

func (s *ApplicationService) ListByRecruiter(ctx context.Context, recruiterID common.UUID) ([]application.RecruiterApplication, error) {
	return s.repo.ListByRecruiter(ctx, recruiterID)
}
