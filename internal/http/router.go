package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"careerconnect/internal/domain/user"
	"careerconnect/internal/http/handlers"
	"careerconnect/internal/http/metrics"
	httpmw "careerconnect/internal/http/middleware"
)

type RouterDependencies struct {
	AuthHandler        *handlers.AuthHandler
	ProfileHandler     *handlers.ProfileHandler
	JobHandler         *handlers.JobHandler
	ApplicationHandler *handlers.ApplicationHandler
	InterviewHandler   *handlers.InterviewHandler
	MetricsHandler     *handlers.MetricsHandler
	AuthMiddleware     *httpmw.AuthMiddleware
	Metrics            *metrics.Collector
	Logger             zerolog.Logger
	RequestTimeout     time.Duration
}

type Router struct {
	deps RouterDependencies
}

const maxBodyBytes = 10 << 20

func NewRouter(deps RouterDependencies) http.Handler {
	return &Router{deps: deps}
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	handler := httpmw.Chain(r.baseHandler(), httpmw.RequestID, httpmw.Logging(r.deps.Logger), httpmw.BodyLimit(maxBodyBytes), httpmw.Recover, httpmw.Metrics(r.deps.Metrics), httpmw.Timeout(r.deps.RequestTimeout))
	handler.ServeHTTP(w, req)
}

func (r *Router) baseHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		path := req.URL.Path

		switch {
		case req.Method == http.MethodGet && path == "/health":
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		case req.Method == http.MethodGet && path == "/metrics":
			r.deps.MetricsHandler.Get(w, req)
			return
		case req.Method == http.MethodPost && path == "/auth/signup":
			r.deps.AuthHandler.Signup(w, req)
			return
		case req.Method == http.MethodPost && path == "/auth/login":
			r.deps.AuthHandler.Login(w, req)
			return
		case req.Method == http.MethodGet && path == "/jobs":
			r.deps.JobHandler.List(w, req)
			return
		case req.Method == http.MethodGet && strings.HasPrefix(path, "/jobs/") && strings.Count(path, "/") == 2:
			r.deps.JobHandler.Get(w, req)
			return
		}

		if strings.HasPrefix(path, "/students") || strings.HasPrefix(path, "/recruiters") || strings.HasPrefix(path, "/jobs") || strings.HasPrefix(path, "/applications") || strings.HasPrefix(path, "/interviews") {
			protected := r.deps.AuthMiddleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				r.handleProtected(w, req)
			}))
			protected.ServeHTTP(w, req)
			return
		}

		http.NotFound(w, req)
	})
}

func (r *Router) handleProtected(w http.ResponseWriter, req *http.Request) {
	path := req.URL.Path

	switch {
	case req.Method == http.MethodPost && path == "/students/resume":
		httpmw.RequireRole(user.RoleStudent)(http.HandlerFunc(r.deps.ProfileHandler.UploadResume)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/students/profile":
		httpmw.RequireRole(user.RoleStudent)(http.HandlerFunc(r.deps.ProfileHandler.Get)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPost && path == "/jobs":
		httpmw.RequireRole(user.RoleRecruiter)(http.HandlerFunc(r.deps.JobHandler.Post)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/recruiters/jobs":
		httpmw.RequireRole(user.RoleRecruiter)(http.HandlerFunc(r.deps.JobHandler.ListMine)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && strings.HasPrefix(path, "/jobs/") && strings.HasSuffix(path, "/applicants"):
		httpmw.RequireRole(user.RoleRecruiter)(http.HandlerFunc(r.deps.ApplicationHandler.ListApplicants)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && strings.HasPrefix(path, "/jobs/") && strings.HasSuffix(path, "/fit"):
		httpmw.RequireRole(user.RoleStudent)(http.HandlerFunc(r.deps.ProfileHandler.Fit)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPost && path == "/applications":
		httpmw.RequireRole(user.RoleStudent)(http.HandlerFunc(r.deps.ApplicationHandler.Apply)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/applications":
		r.deps.ApplicationHandler.List(w, req)
		return
	case req.Method == http.MethodPost && strings.HasPrefix(path, "/applications/") && strings.HasSuffix(path, "/verify"):
		httpmw.RequireRole(user.RoleRecruiter)(http.HandlerFunc(r.deps.ApplicationHandler.Verify)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPost && path == "/interviews":
		httpmw.RequireRole(user.RoleRecruiter)(http.HandlerFunc(r.deps.InterviewHandler.Schedule)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/interviews":
		r.deps.InterviewHandler.List(w, req)
		return
	}

	http.NotFound(w, req)
}
