package postgres

import (
	"context"
	"database/sql"
	"time"

	"careerconnect/internal/common"
	"careerconnect/internal/domain/interview"
)

type InterviewRepository struct {
	db *sql.DB
}

func NewInterviewRepository(db *sql.DB) *InterviewRepository {
	return &InterviewRepository{db: db}
}

func (r *InterviewRepository) Create(ctx context.Context, iv interview.Interview) (*interview.Interview, error) {
	iv.ID = common.NewUUID()
	iv.CreatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `INSERT INTO interviews (id, student_id, job_id, scheduled_at, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		iv.ID, iv.StudentID, iv.JobID, iv.ScheduledAt, iv.CreatedAt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create interview", err)
	}
	return &iv, nil
}

func (r *InterviewRepository) ListByStudent(ctx context.Context, studentID common.UUID) ([]interview.Interview, error) {
	return r.list(ctx, `SELECT id, student_id, job_id, scheduled_at, created_at FROM interviews
		WHERE student_id = $1 ORDER BY scheduled_at ASC`, studentID)
}

func (r *InterviewRepository) ListByRecruiter(ctx context.Context, recruiterID common.UUID) ([]interview.Interview, error) {
	return r.list(ctx, `SELECT i.id, i.student_id, i.job_id, i.scheduled_at, i.created_at
		FROM interviews i
		JOIN jobs j ON j.id = i.job_id
		WHERE j.recruiter_id = $1
		ORDER BY i.scheduled_at ASC`, recruiterID)
}

func (r *InterviewRepository) list(ctx context.Context, query string, arg any) ([]interview.Interview, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list interviews", err)
	}
	defer rows.Close()
	var items []interview.Interview
	for rows.Next() {
		var iv interview.Interview
		if err := rows.Scan(&iv.ID, &iv.StudentID, &iv.JobID, &iv.ScheduledAt, &iv.CreatedAt); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan interview", err)
		}
		items = append(items, iv)
	}
	return items, nil
}
