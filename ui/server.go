package ui

import (
	"embed"
	"html/template"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"churnboard/domain/churn"
	"churnboard/internal"
	"churnboard/internal/aggregate"
	"churnboard/internal/errors"
	"churnboard/internal/profiling"
	"churnboard/ports"
)

//go:embed templates/*.html
var embeddedFiles embed.FS

// Snapshot is the output of one complete pipeline run. It is immutable once
// built; a refresh replaces the whole snapshot rather than merging into it.
type Snapshot struct {
	ID          uuid.UUID                `json:"id"`
	LoadedAt    time.Time                `json:"loaded_at"`
	Records     []churn.CustomerRecord   `json:"-"`
	Diagnostics churn.LoadDiagnostics    `json:"diagnostics"`
	Summary     churn.SummaryResult      `json:"summary"`
	Profile     profiling.DatasetProfile `json:"profile"`
}

// Server represents the dashboard web server
type Server struct {
	router    *gin.Engine
	source    ports.RecordSource
	templates *template.Template
	logger    *internal.Logger

	snapshotMu sync.RWMutex
	snapshot   *Snapshot

	// refreshSem serializes pipeline reruns; a refresh requested while one
	// is running is rejected instead of queued.
	refreshSem *semaphore.Weighted
}

// NewServer creates the dashboard server over the given record source.
func NewServer(source ports.RecordSource) (*Server, error) {
	funcMap := template.FuncMap{
		"comma": comma,
		"money": money,
		"pct":   pct,
		"mul":   func(a, b float64) float64 { return a * b },
	}
	templates, err := template.New("").Funcs(funcMap).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse templates")
	}

	s := &Server{
		router:     gin.Default(),
		source:     source,
		templates:  templates,
		logger:     internal.DefaultLogger,
		refreshSem: semaphore.NewWeighted(1),
	}
	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleDashboard)
	s.router.GET("/report", s.handleReport)
	s.router.POST("/refresh", s.handleRefresh)

	api := s.router.Group("/api")
	api.GET("/summary", s.handleSummary)
	api.GET("/diagnostics", s.handleDiagnostics)
	api.GET("/profile", s.handleProfile)
}

// Bootstrap runs the pipeline once before serving. A dataset failure here is
// fatal: the server refuses to start without a loaded snapshot.
func (s *Server) Bootstrap() error {
	return s.reload()
}

// reload runs the whole pipeline end to end and swaps in a fresh snapshot.
func (s *Server) reload() error {
	records, diag, err := s.source.Load()
	if err != nil {
		return err
	}

	summary := aggregate.Summarize(records)
	profile, err := profiling.NewProfiler().Profile(records)
	if err != nil {
		return errors.Wrap(err, "field profiling failed")
	}

	snap := &Snapshot{
		ID:          uuid.New(),
		LoadedAt:    time.Now().UTC(),
		Records:     records,
		Diagnostics: diag,
		Summary:     summary,
		Profile:     profile,
	}

	s.snapshotMu.Lock()
	s.snapshot = snap
	s.snapshotMu.Unlock()

	s.logger.Info("[Server] snapshot %s ready: %d customers, churn rate %.2f%%",
		snap.ID, summary.TotalCustomers, summary.ChurnRate*100)
	return nil
}

func (s *Server) current() *Snapshot {
	s.snapshotMu.RLock()
	defer s.snapshotMu.RUnlock()
	return s.snapshot
}

// Start runs the HTTP server on the given port.
func (s *Server) Start(port string) error {
	s.logger.Info("[Server] listening on :%s", port)
	return s.router.Run(":" + port)
}
