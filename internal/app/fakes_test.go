package app

import (
	"context"
	"strings"
	"sync"
	"time"

	"careerconnect/internal/common"
	"careerconnect/internal/domain/application"
	"careerconnect/internal/domain/interview"
	"careerconnect/internal/domain/job"
	"careerconnect/internal/domain/user"
)

type fakeUserRepo struct {
	mu         sync.Mutex
	byID       map[common.UUID]*user.User
	byUsername map[string]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:       make(map[common.UUID]*user.User),
		byUsername: make(map[string]*user.User),
	}
}

func (r *fakeUserRepo) Create(ctx context.Context, u user.User) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byUsername[u.Username]; exists {
		return nil, common.NewError(common.CodeConflict, "username already taken", nil)
	}
	u.ID = common.NewUUID()
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	stored := u
	r.byID[u.ID] = &stored
	r.byUsername[u.Username] = &stored
	return cloneUser(&stored), nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id common.UUID) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	account := r.byID[id]
	if account == nil {
		return nil, common.NewError(common.CodeNotFound, "user not found", nil)
	}
	return cloneUser(account), nil
}

func (r *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	account := r.byUsername[username]
	if account == nil {
		return nil, common.NewError(common.CodeNotFound, "user not found", nil)
	}
	return cloneUser(account), nil
}

func (r *fakeUserRepo) UpdateProfile(ctx context.Context, userID common.UUID, p user.Profile) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	account := r.byID[userID]
	if account == nil {
		return nil, common.NewError(common.CodeNotFound, "user not found", nil)
	}
	account.Profile = p
	account.UpdatedAt = time.Now().UTC()
	return cloneUser(account), nil
}

func cloneUser(u *user.User) *user.User {
	clone := *u
	return &clone
}

type fakeJobRepo struct {
	mu   sync.Mutex
	jobs []job.Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{}
}

func (r *fakeJobRepo) Create(ctx context.Context, j job.Job) (*job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j.ID = common.NewUUID()
	j.CreatedAt = time.Now().UTC()
	r.jobs = append(r.jobs, j)
	return &j, nil
}

func (r *fakeJobRepo) GetByID(ctx context.Context, id common.UUID) (*job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, j := range r.jobs {
		if j.ID == id {
			clone := j
			return &clone, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "job not found", nil)
}

func (r *fakeJobRepo) List(ctx context.Context, filterSkill string) ([]job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []job.Job
	for _, j := range r.jobs {
		if filterSkill != "" && !strings.Contains(strings.ToLower(j.Skills), strings.ToLower(filterSkill)) {
			continue
		}
		items = append(items, j)
	}
	return items, nil
}

func (r *fakeJobRepo) ListByRecruiter(ctx context.Context, recruiterID common.UUID) ([]job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []job.Job
	for _, j := range r.jobs {
		if j.RecruiterID == recruiterID {
			items = append(items, j)
		}
	}
	return items, nil
}

type pairKey struct {
	studentID common.UUID
	jobID     common.UUID
}

type fakeApplicationRepo struct {
	mu     sync.Mutex
	byID   map[common.UUID]*application.Application
	byPair map[pairKey]common.UUID
	jobs   *fakeJobRepo
	users  *fakeUserRepo
}

func newFakeApplicationRepo(jobs *fakeJobRepo, users *fakeUserRepo) *fakeApplicationRepo {
	return &fakeApplicationRepo{
		byID:   make(map[common.UUID]*application.Application),
		byPair: make(map[pairKey]common.UUID),
		jobs:   jobs,
		users:  users,
	}
}

func (r *fakeApplicationRepo) Create(ctx context.Context, app application.Application) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := pairKey{studentID: app.StudentID, jobID: app.JobID}
	if _, exists := r.byPair[key]; exists {
		return nil, common.NewError(common.CodeConflict, "already applied", nil)
	}
	app.ID = common.NewUUID()
	now := time.Now().UTC()
	app.CreatedAt = now
	app.UpdatedAt = now
	stored := app
	r.byID[app.ID] = &stored
	r.byPair[key] = app.ID
	return &app, nil
}

func (r *fakeApplicationRepo) GetByID(ctx context.Context, id common.UUID) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	app := r.byID[id]
	if app == nil {
		return nil, common.NewError(common.CodeNotFound, "application not found", nil)
	}
	clone := *app
	return &clone, nil
}

func (r *fakeApplicationRepo) FindByStudentAndJob(ctx context.Context, studentID, jobID common.UUID) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, exists := r.byPair[pairKey{studentID: studentID, jobID: jobID}]
	if !exists {
		return nil, common.NewError(common.CodeNotFound, "application not found", nil)
	}
	clone := *r.byID[id]
	return &clone, nil
}

func (r *fakeApplicationRepo) ListByStudent(ctx context.Context, studentID common.UUID) ([]application.StudentApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []application.StudentApplication
	for _, app := range r.byID {
		if app.StudentID != studentID {
			continue
		}
		item := application.StudentApplication{
			ApplicationID: app.ID,
			JobID:         app.JobID,
			Status:        app.Status,
			Score:         app.Score,
			CreatedAt:     app.CreatedAt,
		}
		if j, err := r.jobs.GetByID(ctx, app.JobID); err == nil {
			item.JobTitle = j.Title
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *fakeApplicationRepo) ListApplicantsByJob(ctx context.Context, jobID common.UUID) ([]application.Applicant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []application.Applicant
	for _, app := range r.byID {
		if app.JobID != jobID {
			continue
		}
		item := application.Applicant{
			StudentID: app.StudentID,
			Score:     app.Score,
			Status:    app.Status,
		}
		if u, err := r.users.GetByID(ctx, app.StudentID); err == nil {
			item.Username = u.Username
			item.FullName = u.Profile.FullName
			item.College = u.Profile.College
		}
		items = append(items, item)
	}
	return items, nil
}

// ListByRecruiter mirrors the sql join: only applications on jobs owned by
// the recruiter are ever produced.
func (r *fakeApplicationRepo) ListByRecruiter(ctx context.Context, recruiterID common.UUID) ([]application.RecruiterApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []application.RecruiterApplication
	for _, app := range r.byID {
		j, err := r.jobs.GetByID(ctx, app.JobID)
		if err != nil || j.RecruiterID != recruiterID {
			continue
		}
		u, err := r.users.GetByID(ctx, app.StudentID)
		if err != nil {
			continue
		}
		items = append(items, application.RecruiterApplication{
			ApplicationID: app.ID,
			Status:        app.Status,
			Score:         app.Score,
			JobID:         j.ID,
			JobTitle:      j.Title,
			StudentID:     u.ID,
			Username:      u.Username,
			FullName:      u.Profile.FullName,
			College:       u.Profile.College,
			Percentage:    u.Profile.Percentage,
			InterMarks:    u.Profile.InterMarks,
			TenthMarks:    u.Profile.TenthMarks,
			PassoutYear:   u.Profile.PassoutYear,
		})
	}
	return items, nil
}

func (r *fakeApplicationRepo) UpdateStatus(ctx context.Context, id common.UUID, status application.Status) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	app := r.byID[id]
	if app == nil {
		return nil, common.NewError(common.CodeNotFound, "application not found", nil)
	}
	app.Status = status
	app.UpdatedAt = time.Now().UTC()
	clone := *app
	return &clone, nil
}

func (r *fakeApplicationRepo) countFor(studentID, jobID common.UUID) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, app := range r.byID {
		if app.StudentID == studentID && app.JobID == jobID {
			count++
		}
	}
	return count
}

type fakeInterviewRepo struct {
	mu         sync.Mutex
	interviews []interview.Interview
	jobs       *fakeJobRepo
}

func newFakeInterviewRepo(jobs *fakeJobRepo) *fakeInterviewRepo {
	return &fakeInterviewRepo{jobs: jobs}
}

func (r *fakeInterviewRepo) Create(ctx context.Context, iv interview.Interview) (*interview.Interview, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	iv.ID = common.NewUUID()
	iv.CreatedAt = time.Now().UTC()
	r.interviews = append(r.interviews, iv)
	return &iv, nil
}

func (r *fakeInterviewRepo) ListByStudent(ctx context.Context, studentID common.UUID) ([]interview.Interview, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []interview.Interview
	for _, iv := range r.interviews {
		if iv.StudentID == studentID {
			items = append(items, iv)
		}
	}
	return items, nil
}

func (r *fakeInterviewRepo) ListByRecruiter(ctx context.Context, recruiterID common.UUID) ([]interview.Interview, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []interview.Interview
	for _, iv := range r.interviews {
		j, err := r.jobs.GetByID(ctx, iv.JobID)
		if err != nil || j.RecruiterID != recruiterID {
			continue
		}
		items = append(items, iv)
	}
	return items, nil
}

type fakeArtifactStore struct {
	mu    sync.Mutex
	texts map[string]string
}

func newFakeArtifactStore() *fakeArtifactStore {
	return &fakeArtifactStore{texts: make(map[string]string)}
}

func (s *fakeArtifactStore) Store(ctx context.Context, name string, content []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ref := common.NewUUID().String() + "-" + name
	s.texts[ref] = string(content)
	return ref, nil
}

func (s *fakeArtifactStore) Text(ctx context.Context, ref string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	text, exists := s.texts[ref]
	if !exists {
		return "", common.NewError(common.CodeNotFound, "artifact not found", nil)
	}
	return text, nil
}
