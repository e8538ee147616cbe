package handlers

import (
	"net/http"

	"careerconnect/internal/app"
	"careerconnect/internal/domain/job"
	"careerconnect/internal/http/middleware"
	"careerconnect/internal/http/response"
)

type JobHandler struct {
	jobs *app.JobService
}

func NewJobHandler(jobs *app.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

type postJobRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Skills      string `json:"skills" validate:"required"`
}

func (h *JobHandler) Post(w http.ResponseWriter, r *http.Request) {
	recruiterID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req postJobRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if err := validateRequest(req); err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.jobs.Post(r.Context(), job.Job{
		Title:       req.Title,
		Description: req.Description,
		Skills:      req.Skills,
		RecruiterID: recruiterID,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

// List is public; an optional ?skill= query narrows by case-insensitive
// substring against the skills field.
func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.jobs.List(r.Context(), r.URL.Query().Get("skill"))
	if err != nil {
		response.Error(w, err)
		return
	}
	if items == nil {
		items = []job.Job{}
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	item, err := h.jobs.Get(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, item)
}

func (h *JobHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	recruiterID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	items, err := h.jobs.ListByRecruiter(r.Context(), recruiterID)
	if err != nil {
		response.Error(w, err)
		return
	}
	if items == nil {
		items = []job.Job{}
	}
	response.JSON(w, http.StatusOK, items)
}
