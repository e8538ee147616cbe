package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"careerconnect/internal/common"
	"careerconnect/internal/domain/job"
)

type JobRepository struct {
	db *sql.DB
}

func NewJobRepository(db *sql.DB) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) Create(ctx context.Context, j job.Job) (*job.Job, error) {
	j.ID = common.NewUUID()
	j.CreatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `INSERT INTO jobs (id, title, description, skills, recruiter_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		j.ID, j.Title, j.Description, j.Skills, j.RecruiterID, j.CreatedAt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create job", err)
	}
	return &j, nil
}

func (r *JobRepository) GetByID(ctx context.Context, id common.UUID) (*job.Job, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, title, description, skills, recruiter_id, created_at FROM jobs WHERE id = $1`, id)
	var j job.Job
	if err := row.Scan(&j.ID, &j.Title, &j.Description, &j.Skills, &j.RecruiterID, &j.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "job not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load job", err)
	}
	return &j, nil
}

func (r *JobRepository) List(ctx context.Context, filterSkill string) ([]job.Job, error) {
	query := `SELECT id, title, description, skills, recruiter_id, created_at FROM jobs ORDER BY created_at ASC, id ASC`
	args := []any{}
	if filterSkill != "" {
		query = `SELECT id, title, description, skills, recruiter_id, created_at FROM jobs
			WHERE skills ILIKE '%' || $1 || '%' ORDER BY created_at ASC, id ASC`
		args = append(args, filterSkill)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list jobs", err)
	}
	defer rows.Close()
	var items []job.Job
	for rows.Next() {
		var j job.Job
		if err := rows.Scan(&j.ID, &j.Title, &j.Description, &j.Skills, &j.RecruiterID, &j.CreatedAt); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan job", err)
		}
		items = append(items, j)
	}
	return items, nil
}

func (r *JobRepository) ListByRecruiter(ctx context.Context, recruiterID common.UUID) ([]job.Job, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, title, description, skills, recruiter_id, created_at FROM jobs
		WHERE recruiter_id = $1 ORDER BY created_at ASC, id ASC`, recruiterID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list recruiter jobs", err)
	}
	defer rows.Close()
	var items []job.Job
	for rows.Next() {
		var j job.Job
		if err := rows.Scan(&j.ID, &j.Title, &j.Description, &j.Skills, &j.RecruiterID, &j.CreatedAt); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan job", err)
		}
		items = append(items, j)
	}
	return items, nil
}
