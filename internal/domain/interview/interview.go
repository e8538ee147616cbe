package interview

import (
	"time"

	"careerconnect/internal/common"
)

// Interview is a scheduled slot for a (student, job) pair. It may only be
// created when an application for the same pair exists, and is immutable
// once written.
type Interview struct {
	ID          common.UUID `json:"id"`
	StudentID   common.UUID `json:"student_id"`
	JobID       common.UUID `json:"job_id"`
	ScheduledAt time.Time   `json:"scheduled_at"`
	CreatedAt   time.Time   `json:"created_at"`
}
