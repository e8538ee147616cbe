package application

import (
	"time"

	"careerconnect/internal/common"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusVerified Status = "verified"
)

// Application links one student to one job. The (student, job) pair is
// unique for all time; Score is the student's ATS score snapshotted at
// submission and never rewritten.
type Application struct {
	ID        common.UUID `json:"id"`
	StudentID common.UUID `json:"student_id"`
	JobID     common.UUID `json:"job_id"`
	Status    Status      `json:"status"`
	Score     int         `json:"score"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// Applicant is the per-job view shown to the owning recruiter. It carries
// summary fields only, not the full academic record.
type Applicant struct {
	StudentID common.UUID `json:"student_id"`
	Username  string      `json:"username"`
	FullName  string      `json:"full_name"`
	College   string      `json:"college"`
	Score     int         `json:"score"`
	Status    Status      `json:"status"`
}

// StudentApplication is the student's own listing joined with the job title.
type StudentApplication struct {
	ApplicationID common.UUID `json:"application_id"`
	JobID         common.UUID `json:"job_id"`
	JobTitle      string      `json:"job_title"`
	Status        Status      `json:"status"`
	Score         int         `json:"score"`
	CreatedAt     time.Time   `json:"created_at"`
}

// RecruiterApplication is the cross-job view for a recruiter, including the
// applicant's academic detail. Only rows for that recruiter's own jobs are
// ever produced.
type RecruiterApplication struct {
	ApplicationID common.UUID `json:"application_id"`
	Status        Status      `json:"status"`
	Score         int         `json:"score"`
	JobID         common.UUID `json:"job_id"`
	JobTitle      string      `json:"job_title"`
	StudentID     common.UUID `json:"student_id"`
	Username      string      `json:"username"`
	FullName      string      `json:"full_name"`
	College       string      `json:"college"`
	Percentage    float64     `json:"percentage"`
	InterMarks    float64     `json:"inter_marks"`
	TenthMarks    float64     `json:"tenth_marks"`
	PassoutYear   int         `json:"passout_year"`
}
