package handlers

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"careerconnect/internal/app"
	"careerconnect/internal/common"
	"careerconnect/internal/http/middleware"
	"careerconnect/internal/http/response"
)

const maxResumeBytes = 8 << 20

type ProfileHandler struct {
	profiles *app.ProfileService
}

func NewProfileHandler(profiles *app.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// UploadResume accepts a multipart form with the resume file and the
// academic fields, replacing the whole profile.
func (h *ProfileHandler) UploadResume(w http.ResponseWriter, r *http.Request) {
	studentID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	if err := r.ParseMultipartForm(maxResumeBytes); err != nil {
		response.Error(w, common.NewValidationError("invalid upload", map[string]string{"body": "multipart form required"}))
		return
	}
	file, header, err := r.FormFile("resume")
	if err != nil {
		response.Error(w, common.NewValidationError("invalid upload", map[string]string{"resume": "resume file is required"}))
		return
	}
	defer file.Close()
	content, err := io.ReadAll(io.LimitReader(file, maxResumeBytes))
	if err != nil {
		response.Error(w, common.NewError(common.CodeInternal, "failed to read resume", err))
		return
	}
	upload := app.ResumeUpload{
		FullName:    strings.TrimSpace(r.FormValue("full_name")),
		College:     strings.TrimSpace(r.FormValue("college")),
		Percentage:  parseFloat(r.FormValue("percentage")),
		InterMarks:  parseFloat(r.FormValue("inter_marks")),
		TenthMarks:  parseFloat(r.FormValue("tenth_marks")),
		PassoutYear: parseInt(r.FormValue("passout_year")),
		Filename:    header.Filename,
		Content:     content,
	}
	updated, err := h.profiles.UploadResume(r.Context(), studentID, upload)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	studentID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	account, err := h.profiles.Get(r.Context(), studentID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, account)
}

type fitResponse struct {
	JobID string `json:"job_id"`
	Score int    `json:"score"`
}

// Fit serves /jobs/{id}/fit for the authenticated student.
func (h *ProfileHandler) Fit(w http.ResponseWriter, r *http.Request) {
	studentID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	jobID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	score, err := h.profiles.FitScore(r.Context(), studentID, jobID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, fitResponse{JobID: jobID.String(), Score: score})
}

func parseFloat(value string) float64 {
	parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0
	}
	return parsed
}

func parseInt(value string) int {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return parsed
}
