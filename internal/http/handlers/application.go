package handlers

import (
	"net/http"
	"time"

	"careerconnect/internal/app"
	"careerconnect/internal/common"
	"careerconnect/internal/domain/application"
	"careerconnect/internal/domain/user"
	"careerconnect/internal/http/middleware"
	"careerconnect/internal/http/response"
)

type ApplicationHandler struct {
	applications *app.ApplicationService
	limiter      middleware.Limiter
}

func NewApplicationHandler(applications *app.ApplicationService, limiter middleware.Limiter) *ApplicationHandler {
	return &ApplicationHandler{applications: applications, limiter: limiter}
}

type applyRequest struct {
	JobID string `json:"job_id" validate:"required,uuid"`
}

func (h *ApplicationHandler) Apply(w http.ResponseWriter, r *http.Request) {
	studentID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req applyRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if err := validateRequest(req); err != nil {
		response.Error(w, err)
		return
	}
	jobID, err := common.ParseUUID(req.JobID)
	if err != nil {
		response.Error(w, common.NewValidationError("invalid request", map[string]string{"job_id": "invalid uuid"}))
		return
	}
	if h.limiter != nil {
		// Keyed per student across all jobs and checked before the service
		// sees the request: a duplicate submit under the limit still maps to
		// the conflict error, past it callers get 429 first.
		if !h.limiter.Allow("apply:"+studentID.String(), 3, time.Minute) {
			response.Error(w, common.NewError(common.CodeRateLimited, "apply rate limit exceeded", nil))
			return
		}
	}
	created, err := h.applications.Apply(r.Context(), studentID, jobID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

// List is role-aware: students see their own applications, recruiters the
// applications across their jobs.
func (h *ApplicationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	role, _ := middleware.RoleFromContext(r.Context())
	switch role {
	case user.RoleStudent:
		items, err := h.applications.ListByStudent(r.Context(), userID)
		if err != nil {
			response.Error(w, err)
			return
		}
		if items == nil {
			items = []application.StudentApplication{}
		}
		response.JSON(w, http.StatusOK, items)
	case user.RoleRecruiter:
		items, err := h.applications.ListByRecruiter(r.Context(), userID)
		if err != nil {
			response.Error(w, err)
			return
		}
		if items == nil {
			items = []application.RecruiterApplication{}
		}
		response.JSON(w, http.StatusOK, items)
	default:
		response.Error(w, common.NewError(common.CodeForbidden, "insufficient role", nil))
	}
}

// ListApplicants serves /jobs/{id}/applicants for the owning recruiter.
func (h *ApplicationHandler) ListApplicants(w http.ResponseWriter, r *http.Request) {
	recruiterID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	jobID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	items, err := h.applications.ListApplicants(r.Context(), jobID, recruiterID)
	if err != nil {
		response.Error(w, err)
		return
	}
	if items == nil {
		items = []application.Applicant{}
	}
	response.JSON(w, http.StatusOK, items)
}

// Verify serves /applications/{id}/verify.
func (h *ApplicationHandler) Verify(w http.ResponseWriter, r *http.Request) {
	recruiterID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	applicationID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.applications.Verify(r.Context(), applicationID, recruiterID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}
