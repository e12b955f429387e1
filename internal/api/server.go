package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/user/assessment-finder/internal/config"
	"github.com/user/assessment-finder/internal/domain"
)

// AssessmentCache serves catalog snapshots. Both operations are
// infallible: acquisition problems are absorbed upstream by fallback data.
type AssessmentCache interface {
	Get(ctx context.Context) domain.Snapshot
	Refresh(ctx context.Context) domain.Snapshot
	Status() domain.CacheStatus
}

// AssessmentMatcher ranks assessments against a job description.
type AssessmentMatcher interface {
	Match(ctx context.Context, items []domain.Assessment, jobDescription string) []domain.Assessment
}

// Server holds the dependencies for the HTTP server.
type Server struct {
	config     *config.Config
	router     http.Handler
	httpServer *http.Server
	cache      AssessmentCache
	matcher    AssessmentMatcher
	logger     *zap.Logger
}

func NewServer(cfg *config.Config, cache AssessmentCache, matcher AssessmentMatcher, l *zap.Logger) *Server {
	s := &Server{
		config:  cfg,
		cache:   cache,
		matcher: matcher,
		logger:  l,
	}
	s.router = s.setupRouter()
	return s
}

// Router returns the configured router.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%s", s.config.ServerPort),
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 90 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
