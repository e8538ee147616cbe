package application

import (
	"context"

	"careerconnect/internal/common"
)

type Repository interface {
	// Create inserts a new application. Implementations must enforce
	// uniqueness of (student, job) and return a conflict error when a second
	// insert races or repeats.
	Create(ctx context.Context, app Application) (*Application, error)
	GetByID(ctx context.Context, id common.UUID) (*Application, error)
	FindByStudentAndJob(ctx context.Context, studentID, jobID common.UUID) (*Application, error)
	ListByStudent(ctx context.Context, studentID common.UUID) ([]StudentApplication, error)
	ListApplicantsByJob(ctx context.Context, jobID common.UUID) ([]Applicant, error)
	ListByRecruiter(ctx context.Context, recruiterID common.UUID) ([]RecruiterApplication, error)
	UpdateStatus(ctx context.Context, id common.UUID, status Status) (*Application, error)
}
