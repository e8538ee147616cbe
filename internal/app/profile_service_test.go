package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerconnect/internal/common"
	"careerconnect/internal/domain/job"
	"careerconnect/internal/domain/user"
)

func newProfileFixture(t *testing.T) (*ProfileService, *fakeUserRepo, *fakeJobRepo, *fakeArtifactStore) {
	t.Helper()
	users := newFakeUserRepo()
	jobs := newFakeJobRepo()
	artifacts := newFakeArtifactStore()
	return NewProfileService(users, jobs, artifacts), users, jobs, artifacts
}

func validUpload(filename string) ResumeUpload {
	return ResumeUpload{
		FullName:    "Jane Doe",
		College:     "State College",
		Percentage:  81.5,
		InterMarks:  90,
		TenthMarks:  88,
		PassoutYear: 2026,
		Filename:    filename,
		Content:     []byte("I know python and java"),
	}
}

func TestUploadResumeScoresByVocabulary(t *testing.T) {
	service, users, _, _ := newProfileFixture(t)
	student, err := users.Create(context.Background(), user.User{Username: "jane", Role: user.RoleStudent})
	require.NoError(t, err)

	updated, err := service.UploadResume(context.Background(), student.ID, validUpload("jane-python-sql-resume.pdf"))
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Profile.ATSScore)
	assert.NotEmpty(t, updated.Profile.ResumeRef)
	assert.Equal(t, "Jane Doe", updated.Profile.FullName)
}

func TestUploadResumeOverwritesWholesale(t *testing.T) {
	service, users, _, _ := newProfileFixture(t)
	student, err := users.Create(context.Background(), user.User{Username: "jane", Role: user.RoleStudent})
	require.NoError(t, err)

	first := validUpload("python-react-node.pdf")
	_, err = service.UploadResume(context.Background(), student.ID, first)
	require.NoError(t, err)

	second := validUpload("plain-resume.pdf")
	second.College = "Other College"
	second.PassoutYear = 2027
	updated, err := service.UploadResume(context.Background(), student.ID, second)
	require.NoError(t, err)

	// Latest score only, never merged with or averaged against the old one.
	assert.Equal(t, 0, updated.Profile.ATSScore)
	assert.Equal(t, "Other College", updated.Profile.College)
	assert.Equal(t, 2027, updated.Profile.PassoutYear)
}

func TestUploadResumeValidatesFields(t *testing.T) {
	service, users, _, _ := newProfileFixture(t)
	student, err := users.Create(context.Background(), user.User{Username: "jane", Role: user.RoleStudent})
	require.NoError(t, err)

	upload := validUpload("resume.pdf")
	upload.FullName = ""
	upload.Content = nil
	_, err = service.UploadResume(context.Background(), student.ID, upload)
	require.Error(t, err)
	var appErr *common.Error
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Fields, "full_name")
	assert.Contains(t, appErr.Fields, "resume")
}

func TestUploadResumeRejectsRecruiters(t *testing.T) {
	service, users, _, _ := newProfileFixture(t)
	recruiter, err := users.Create(context.Background(), user.User{Username: "acme", Role: user.RoleRecruiter})
	require.NoError(t, err)

	_, err = service.UploadResume(context.Background(), recruiter.ID, validUpload("resume.pdf"))
	assert.True(t, common.Is(err, common.CodeValidation))
}

func TestFitScoreOverlapsResumeTextWithDescription(t *testing.T) {
	service, users, jobs, _ := newProfileFixture(t)
	student, err := users.Create(context.Background(), user.User{Username: "jane", Role: user.RoleStudent})
	require.NoError(t, err)
	posted, err := jobs.Create(context.Background(), job.Job{
		Title: "Backend", Description: "python sql", Skills: "python,sql", RecruiterID: common.NewUUID(),
	})
	require.NoError(t, err)

	_, err = service.UploadResume(context.Background(), student.ID, validUpload("resume.pdf"))
	require.NoError(t, err)

	// Resume text "I know python and java" matches one of two tokens.
	score, err := service.FitScore(context.Background(), student.ID, posted.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, score)
}

func TestFitScoreRequiresUploadedResume(t *testing.T) {
	service, users, jobs, _ := newProfileFixture(t)
	student, err := users.Create(context.Background(), user.User{Username: "jane", Role: user.RoleStudent})
	require.NoError(t, err)
	posted, err := jobs.Create(context.Background(), job.Job{
		Title: "Backend", Description: "python sql", Skills: "python,sql", RecruiterID: common.NewUUID(),
	})
	require.NoError(t, err)

	_, err = service.FitScore(context.Background(), student.ID, posted.ID)
	assert.True(t, common.Is(err, common.CodeValidation))
}
