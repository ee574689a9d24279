// Package api exposes the investigation orchestrator over HTTP: a gin REST
// surface for investigation lifecycle, evidence, approvals, and connector
// administration, plus a WebSocket endpoint streaming the per-run event log.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/connector"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/events"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/models"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/queue"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/services"
)

// InvestigationAPI is the server's view of the investigation service.
type InvestigationAPI interface {
	Start(ctx context.Context, tenantID string, req models.StartInvestigationRequest) (*models.Investigation, bool, error)
	Get(ctx context.Context, tenantID, id string) (*models.Investigation, error)
	List(ctx context.Context, tenantID string, filters models.InvestigationFilters) ([]*models.Investigation, error)
	Stats(ctx context.Context, tenantID, timeframe string, window time.Duration) (*models.Stats, error)
	QueuedCount(ctx context.Context) (int, error)
	SoftDelete(ctx context.Context, tenantID, id string) error
}

// StepAPI exposes step progress for status and timeline responses.
type StepAPI interface {
	Progress(ctx context.Context, tenantID, investigationID string) (int, []models.StepProgress, error)
}

// FeedbackAPI accepts and lists human feedback.
type FeedbackAPI interface {
	Create(ctx context.Context, tenantID, investigationID string, req models.PostFeedbackRequest) (*models.FeedbackEntry, error)
	ListByInvestigation(ctx context.Context, tenantID, investigationID string) ([]*models.FeedbackEntry, error)
}

// EvidenceAPI exposes the evidence store read side.
type EvidenceAPI interface {
	ListByInvestigation(ctx context.Context, tenantID, investigationID string) ([]*models.EvidenceRecord, error)
	ListRelationships(ctx context.Context, tenantID, investigationID string) ([]models.Relationship, error)
}

// ApprovalAPI resolves and lists approval requests.
type ApprovalAPI interface {
	ListPending(ctx context.Context, tenantID, investigationID string) ([]*models.ApprovalRequest, error)
	Resolve(ctx context.Context, tenantID, requestID string, approve bool, respondedBy string) (*models.ApprovalRequest, error)
}

// ConnectorAdminAPI persists connector definitions.
type ConnectorAdminAPI interface {
	Create(ctx context.Context, def *services.ConnectorDefinition) (*services.ConnectorDefinition, error)
	Get(ctx context.Context, tenantID, id string) (*services.ConnectorDefinition, error)
	List(ctx context.Context, tenantID string, enabledOnly bool) ([]*services.ConnectorDefinition, error)
	SetEnabled(ctx context.Context, tenantID, id string, enabled bool) error
	Delete(ctx context.Context, tenantID, id string) error
}

// RuntimeControl reaches investigations running on this replica.
type RuntimeControl interface {
	Pause(investigationID string) bool
	Resume(investigationID string) bool
	Cancel(investigationID string) bool
	ExtendTimeout(investigationID string, delta time.Duration) (time.Time, bool)
}

// PoolHealth reports the worker pool's health snapshot.
type PoolHealth interface {
	Health() *queue.PoolHealth
}

// ConnectorHealth reports live connector probe results.
type ConnectorHealth interface {
	Statuses() map[string]connector.HealthStatus
	IsHealthy() bool
}

// ConnectorRegistry keeps live instances in sync with definitions.
// Optional; nil disables live registration from the admin endpoints.
type ConnectorRegistry interface {
	Add(ctx context.Context, cfg connector.Config) (*connector.Instance, error)
	Remove(ctx context.Context, tenantID, connectorID string) error
}

// WarningsAPI surfaces transient system warnings.
type WarningsAPI interface {
	GetWarnings() []*services.SystemWarning
}

// Options wires the server's collaborators. Nil optional fields disable
// the corresponding surface.
type Options struct {
	Investigations InvestigationAPI
	Steps          StepAPI
	Feedback       FeedbackAPI
	Evidence       EvidenceAPI
	Approvals      ApprovalAPI
	Connectors     ConnectorAdminAPI

	Runtime         RuntimeControl
	Pool            PoolHealth        // optional
	ConnectorHealth ConnectorHealth   // optional
	Registry        ConnectorRegistry // optional
	Warnings        WarningsAPI       // optional

	ConnManager *events.ConnectionManager // optional; disables /ws when nil

	DefaultTimeout time.Duration
	Logger         *slog.Logger
}

// Server is the HTTP API server.
type Server struct {
	investigations InvestigationAPI
	steps          StepAPI
	feedback       FeedbackAPI
	evidence       EvidenceAPI
	approvals      ApprovalAPI
	connectors     ConnectorAdminAPI

	runtime         RuntimeControl
	pool            PoolHealth
	connectorHealth ConnectorHealth
	registry        ConnectorRegistry
	warnings        WarningsAPI

	connManager *events.ConnectionManager

	defaultTimeout time.Duration
	log            *slog.Logger
	httpServer     *http.Server
}

// NewServer creates the API server.
func NewServer(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.DefaultTimeout <= 0 {
		opts.DefaultTimeout = 30 * time.Minute
	}
	return &Server{
		investigations:  opts.Investigations,
		steps:           opts.Steps,
		feedback:        opts.Feedback,
		evidence:        opts.Evidence,
		approvals:       opts.Approvals,
		connectors:      opts.Connectors,
		runtime:         opts.Runtime,
		pool:            opts.Pool,
		connectorHealth: opts.ConnectorHealth,
		registry:        opts.Registry,
		warnings:        opts.Warnings,
		connManager:     opts.ConnManager,
		defaultTimeout:  opts.DefaultTimeout,
		log:             opts.Logger,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), securityHeaders(), requestLogger(s.log))

	router.GET("/health", s.healthHandler)
	if s.connManager != nil {
		router.GET("/ws", s.websocketHandler)
	}

	v1 := router.Group("/api/v1", tenantScope())
	{
		v1.POST("/investigations", s.startInvestigationHandler)
		v1.GET("/investigations", s.listInvestigationsHandler)
		v1.GET("/investigations/stats", s.statsHandler)
		v1.GET("/investigations/:id/status", s.statusHandler)
		v1.GET("/investigations/:id/timeline", s.timelineHandler)
		v1.GET("/investigations/:id/report", s.reportHandler)
		v1.POST("/investigations/:id/feedback", s.postFeedbackHandler)
		v1.POST("/investigations/:id/pause", s.pauseHandler)
		v1.POST("/investigations/:id/resume", s.resumeHandler)
		v1.POST("/investigations/:id/cancel", s.cancelHandler)
		v1.POST("/investigations/:id/extend", s.extendTimeoutHandler)
		v1.DELETE("/investigations/:id", s.deleteInvestigationHandler)

		v1.GET("/investigations/:id/evidence", s.evidenceHandler)
		v1.GET("/investigations/:id/network", s.networkHandler)

		v1.GET("/approvals", s.listApprovalsHandler)
		v1.POST("/approvals/:id/resolve", s.resolveApprovalHandler)

		v1.POST("/connectors", s.createConnectorHandler)
		v1.GET("/connectors", s.listConnectorsHandler)
		v1.GET("/connectors/health", s.connectorHealthHandler)
		v1.GET("/connectors/:id", s.getConnectorHandler)
		v1.PATCH("/connectors/:id/enabled", s.setConnectorEnabledHandler)
		v1.DELETE("/connectors/:id", s.deleteConnectorHandler)
	}

	return router
}

// Start runs the HTTP server until Shutdown or a listener error.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.log.Info("API server listening", "addr", addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
