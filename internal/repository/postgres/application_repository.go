package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"careerconnect/internal/common"
	"careerconnect/internal/domain/application"
)

type ApplicationRepository struct {
	db *sql.DB
}

func NewApplicationRepository(db *sql.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create relies on the UNIQUE (student_id, job_id) constraint: of two
// concurrent inserts for the same pair exactly one commits, the other maps
// to a conflict error.
func (r *ApplicationRepository) Create(ctx context.Context, app application.Application) (*application.Application, error) {
	app.ID = common.NewUUID()
	now := time.Now().UTC()
	app.CreatedAt = now
	app.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, `INSERT INTO applications (id, student_id, job_id, status, score, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		app.ID, app.StudentID, app.JobID, app.Status, app.Score, app.CreatedAt, app.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.NewError(common.CodeConflict, "already applied", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to create application", err)
	}
	return &app, nil
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id common.UUID) (*application.Application, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, student_id, job_id, status, score, created_at, updated_at FROM applications WHERE id = $1`, id)
	return scanApplication(row)
}

func (r *ApplicationRepository) FindByStudentAndJob(ctx context.Context, studentID, jobID common.UUID) (*application.Application, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, student_id, job_id, status, score, created_at, updated_at FROM applications
		WHERE student_id = $1 AND job_id = $2`, studentID, jobID)
	return scanApplication(row)
}

func (r *ApplicationRepository) ListByStudent(ctx context.Context, studentID common.UUID) ([]application.StudentApplication, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT a.id, a.job_id, j.title, a.status, a.score, a.created_at
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		WHERE a.student_id = $1
		ORDER BY a.created_at DESC`, studentID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list student applications", err)
	}
	defer rows.Close()
	var items []application.StudentApplication
	for rows.Next() {
		var item application.StudentApplication
		if err := rows.Scan(&item.ApplicationID, &item.JobID, &item.JobTitle, &item.Status, &item.Score, &item.CreatedAt); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan application", err)
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *ApplicationRepository) ListApplicantsByJob(ctx context.Context, jobID common.UUID) ([]application.Applicant, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT u.id, u.username, u.full_name, u.college, a.score, a.status
		FROM applications a
		JOIN users u ON u.id = a.student_id
		WHERE a.job_id = $1
		ORDER BY a.created_at DESC`, jobID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list applicants", err)
	}
	defer rows.Close()
	var items []application.Applicant
	for rows.Next() {
		var item application.Applicant
		if err := rows.Scan(&item.StudentID, &item.Username, &item.FullName, &item.College, &item.Score, &item.Status); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan applicant", err)
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *ApplicationRepository) ListByRecruiter(ctx context.Context, recruiterID common.UUID) ([]application.RecruiterApplication, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT a.id, a.status, a.score, j.id, j.title,
			u.id, u.username, u.full_name, u.college, u.percentage, u.inter_marks, u.tenth_marks, u.passout_year
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		JOIN users u ON u.id = a.student_id
		WHERE j.recruiter_id = $1
		ORDER BY a.created_at DESC`, recruiterID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list recruiter applications", err)
	}
	defer rows.Close()
	var items []application.RecruiterApplication
	for rows.Next() {
		var item application.RecruiterApplication
		if err := rows.Scan(&item.ApplicationID, &item.Status, &item.Score, &item.JobID, &item.JobTitle,
			&item.StudentID, &item.Username, &item.FullName, &item.College,
			&item.Percentage, &item.InterMarks, &item.TenthMarks, &item.PassoutYear); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan recruiter application", err)
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id common.UUID, status application.Status) (*application.Application, error) {
	updatedAt := time.Now().UTC()
	result, err := r.db.ExecContext(ctx, `UPDATE applications SET status = $1, updated_at = $2 WHERE id = $3`, status, updatedAt, id)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update application", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "application not found", sql.ErrNoRows)
	}
	return r.GetByID(ctx, id)
}

func scanApplication(row *sql.Row) (*application.Application, error) {
	var app application.Application
	if err := row.Scan(&app.ID, &app.StudentID, &app.JobID, &app.Status, &app.Score, &app.CreatedAt, &app.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "application not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load application", err)
	}
	return &app, nil
}
