package app

import (
	"context"
	"strings"

	"careerconnect/internal/artifact"
	"careerconnect/internal/common"
	"careerconnect/internal/domain/job"
	"careerconnect/internal/domain/user"
	"careerconnect/internal/match"
)

type ProfileService struct {
	users     user.Repository
	jobs      job.Repository
	artifacts artifact.Store
}

func NewProfileService(users user.Repository, jobs job.Repository, artifacts artifact.Store) *ProfileService {
	return &ProfileService{users: users, jobs: jobs, artifacts: artifacts}
}

type ResumeUpload struct {
	FullName    string
	College     string
	Percentage  float64
	InterMarks  float64
	TenthMarks  float64
	PassoutYear int
	Filename    string
	Content     []byte
}

// UploadResume stores the artifact, rescores the student against the fixed
// vocabulary and overwrites the profile wholesale. Existing applications
// keep their snapshotted scores.
func (s *ProfileService) UploadResume(ctx context.Context, studentID common.UUID, upload ResumeUpload) (*user.User, error) {
	account, err := s.users.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if account.Role != user.RoleStudent {
		return nil, common.NewError(common.CodeValidation, "only students have profiles", nil)
	}
	fields := map[string]string{}
	if strings.TrimSpace(upload.FullName) == "" {
		fields["full_name"] = "full name is required"
	}
	if strings.TrimSpace(upload.College) == "" {
		fields["college"] = "college is required"
	}
	if strings.TrimSpace(upload.Filename) == "" || len(upload.Content) == 0 {
		fields["resume"] = "resume file is required"
	}
	if len(fields) > 0 {
		return nil, common.NewValidationError("invalid profile", fields)
	}
	ref, err := s.artifacts.Store(ctx, upload.Filename, upload.Content)
	if err != nil {
		return nil, err
	}
	profile := user.Profile{
		FullName:    upload.FullName,
		College:     upload.College,
		Percentage:  upload.Percentage,
		InterMarks:  upload.InterMarks,
		TenthMarks:  upload.TenthMarks,
		PassoutYear: upload.PassoutYear,
		ResumeRef:   ref,
		ATSScore:    match.ScoreByVocabulary(upload.Filename, match.DefaultVocabulary),
	}
	return s.users.UpdateProfile(ctx, studentID, profile)
}

func (s *ProfileService) Get(ctx context.Context, studentID common.UUID) (*user.User, error) {
	account, err := s.users.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if account.Role != user.RoleStudent {
		return nil, common.NewError(common.CodeValidation, "only students have profiles", nil)
	}
	return account, nil
}

// FitScore previews how the student's stored resume overlaps one job's
// description. It reads the artifact text and never persists anything.
func (s *ProfileService) FitScore(ctx context.Context, studentID, jobID common.UUID) (int, error) {
	account, err := s.users.GetByID(ctx, studentID)
	if err != nil {
		return 0, err
	}
	if account.Role != user.RoleStudent {
		return 0, common.NewError(common.CodeValidation, "only students have profiles", nil)
	}
	if account.Profile.ResumeRef == "" {
		return 0, common.NewError(common.CodeValidation, "a resume must be uploaded first", nil)
	}
	j, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return 0, err
	}
	text, err := s.artifacts.Text(ctx, account.Profile.ResumeRef)
	if err != nil {
		return 0, err
	}
	return match.ScoreByOverlap(text, j.Description), nil
}
