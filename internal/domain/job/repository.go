package job

import (
	"context"

	"careerconnect/internal/common"
)

type Repository interface {
	Create(ctx context.Context, j Job) (*Job, error)
	GetByID(ctx context.Context, id common.UUID) (*Job, error)
	// List returns jobs in creation order. A non-empty filterSkill keeps only
	// jobs whose skills field contains it, case-insensitively.
	List(ctx context.Context, filterSkill string) ([]Job, error)
	ListByRecruiter(ctx context.Context, recruiterID common.UUID) ([]Job, error)
}
