package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"careerconnect/internal/common"
	"careerconnect/internal/domain/user"
)

const userColumns = `id, username, password_hash, role, full_name, college, percentage, inter_marks, tenth_marks, passout_year, resume_ref, ats_score, created_at, updated_at`

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u user.User) (*user.User, error) {
	u.ID = common.NewUUID()
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, `INSERT INTO users (`+userColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		u.ID, u.Username, u.PasswordHash, u.Role, u.Profile.FullName, u.Profile.College,
		u.Profile.Percentage, u.Profile.InterMarks, u.Profile.TenthMarks, u.Profile.PassoutYear,
		u.Profile.ResumeRef, u.Profile.ATSScore, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.NewError(common.CodeConflict, "username already taken", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to create user", err)
	}
	return &u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id common.UUID) (*user.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
	return scanUser(row)
}

// UpdateProfile overwrites every profile column in one statement, so a
// concurrent score snapshot read always observes a profile that existed as
// a whole.
func (r *UserRepository) UpdateProfile(ctx context.Context, userID common.UUID, p user.Profile) (*user.User, error) {
	updatedAt := time.Now().UTC()
	result, err := r.db.ExecContext(ctx, `UPDATE users SET full_name = $1, college = $2, percentage = $3, inter_marks = $4, tenth_marks = $5, passout_year = $6, resume_ref = $7, ats_score = $8, updated_at = $9
		WHERE id = $10`,
		p.FullName, p.College, p.Percentage, p.InterMarks, p.TenthMarks, p.PassoutYear, p.ResumeRef, p.ATSScore, updatedAt, userID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update profile", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "user not found", sql.ErrNoRows)
	}
	return r.GetByID(ctx, userID)
}

func scanUser(row *sql.Row) (*user.User, error) {
	var u user.User
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.Profile.FullName, &u.Profile.College,
		&u.Profile.Percentage, &u.Profile.InterMarks, &u.Profile.TenthMarks, &u.Profile.PassoutYear,
		&u.Profile.ResumeRef, &u.Profile.ATSScore, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "user not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load user", err)
	}
	return &u, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
