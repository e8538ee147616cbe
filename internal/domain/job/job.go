package job

import (
	"time"

	"careerconnect/internal/common"
)

// Job is a recruiter posting. Skills is the comma-delimited token list as
// entered by the recruiter; the listing filter matches against it by
// case-insensitive substring, not token intersection.
type Job struct {
	ID          common.UUID `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Skills      string      `json:"skills"`
	RecruiterID common.UUID `json:"recruiter_id"`
	CreatedAt   time.Time   `json:"created_at"`
}
