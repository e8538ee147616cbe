package user

import (
	"time"

	"careerconnect/internal/common"
)

type Role string

const (
	RoleStudent   Role = "student"
	RoleRecruiter Role = "recruiter"
)

// Profile holds the academic fields a student submits alongside a resume.
// It is overwritten wholesale on every upload; ATSScore is always the score
// computed for the current resume, never an average over past ones.
type Profile struct {
	FullName    string  `json:"full_name"`
	College     string  `json:"college"`
	Percentage  float64 `json:"percentage"`
	InterMarks  float64 `json:"inter_marks"`
	TenthMarks  float64 `json:"tenth_marks"`
	PassoutYear int     `json:"passout_year"`
	ResumeRef   string  `json:"resume_ref,omitempty"`
	ATSScore    int     `json:"ats_score"`
}

// User is a student or recruiter account. Role is immutable after creation.
type User struct {
	ID           common.UUID `json:"id"`
	Username     string      `json:"username"`
	PasswordHash string      `json:"-"`
	Role         Role        `json:"role"`
	Profile      Profile     `json:"profile"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
