package handlers

import (
	"net/http"
	"time"

	"careerconnect/internal/app"
	"careerconnect/internal/common"
	"careerconnect/internal/domain/interview"
	"careerconnect/internal/domain/user"
	"careerconnect/internal/http/middleware"
	"careerconnect/internal/http/response"
)

type InterviewHandler struct {
	interviews *app.InterviewService
}

func NewInterviewHandler(interviews *app.InterviewService) *InterviewHandler {
	return &InterviewHandler{interviews: interviews}
}

type scheduleRequest struct {
	StudentID   string `json:"student_id" validate:"required,uuid"`
	JobID       string `json:"job_id" validate:"required,uuid"`
	ScheduledAt string `json:"scheduled_at" validate:"required"`
}

func (h *InterviewHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	recruiterID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req scheduleRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if err := validateRequest(req); err != nil {
		response.Error(w, err)
		return
	}
	studentID, err := common.ParseUUID(req.StudentID)
	if err != nil {
		response.Error(w, common.NewValidationError("invalid request", map[string]string{"student_id": "invalid uuid"}))
		return
	}
	jobID, err := common.ParseUUID(req.JobID)
	if err != nil {
		response.Error(w, common.NewValidationError("invalid request", map[string]string{"job_id": "invalid uuid"}))
		return
	}
	at, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		response.Error(w, common.NewValidationError("invalid request", map[string]string{"scheduled_at": "must be an RFC 3339 timestamp"}))
		return
	}
	created, err := h.interviews.Schedule(r.Context(), recruiterID, studentID, jobID, at)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

// List is role-aware: students see their own interviews, recruiters the
// interviews across their jobs.
func (h *InterviewHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	role, _ := middleware.RoleFromContext(r.Context())
	var (
		items []interview.Interview
		err   error
	)
	switch role {
	case user.RoleStudent:
		items, err = h.interviews.ListByStudent(r.Context(), userID)
	case user.RoleRecruiter:
		items, err = h.interviews.ListByRecruiter(r.Context(), userID)
	default:
		response.Error(w, common.NewError(common.CodeForbidden, "insufficient role", nil))
		return
	}
	if err != nil {
		response.Error(w, err)
		return
	}
	if items == nil {
		items = []interview.Interview{}
	}
	response.JSON(w, http.StatusOK, items)
}
