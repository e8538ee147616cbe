package interview

import (
	"context"

	"careerconnect/internal/common"
)

type Repository interface {
	Create(ctx context.Context, iv Interview) (*Interview, error)
	ListByStudent(ctx context.Context, studentID common.UUID) ([]Interview, error)
	ListByRecruiter(ctx context.Context, recruiterID common.UUID) ([]Interview, error)
}
