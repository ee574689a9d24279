// Package e2e wires the full stack — PostgreSQL, services, event bus,
// connector registry, executor, worker pool, and the HTTP API — against
// in-memory connector backends, and drives investigations end to end the
// way an operator would: through the API.
package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/agent"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/api"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/config"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/connector"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/database"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/engine"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/events"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/evidence"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/models"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/orchestrator"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/queue"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/services"
	testdb "github.com/NeoCh3n/NeonharbourSecurity-sub001/test/database"
)

const testTenant = "acme"

// TestApp is one running replica: the full service stack over a test
// database, with the HTTP API served by httptest.
type TestApp struct {
	t *testing.T

	DB             *database.Client
	Investigations *services.InvestigationService
	Steps          *services.StepService
	Evidence       *services.EvidenceService
	Feedback       *services.FeedbackService
	Approvals      *services.ApprovalService
	EventLog       *services.EventService
	Warnings       *services.SystemWarningsService

	Bus      *events.Bus
	Registry *connector.Registry
	Runtime  *orchestrator.Runtime
	Pool     *queue.WorkerPool
	Server   *httptest.Server

	Tenant string
}

type appConfig struct {
	podID         string
	workerCount   int
	maxConcurrent int
	db            *database.Client
}

// AppOption tunes newTestApp.
type AppOption func(*appConfig)

// WithPodID sets the replica's pod identifier.
func WithPodID(id string) AppOption {
	return func(c *appConfig) { c.podID = id }
}

// WithWorkers sets the worker count.
func WithWorkers(n int) AppOption {
	return func(c *appConfig) { c.workerCount = n }
}

// WithMaxConcurrent sets the global concurrent-investigation cap.
func WithMaxConcurrent(n int) AppOption {
	return func(c *appConfig) { c.maxConcurrent = n }
}

// WithDatabase runs the replica against an existing client instead of a
// dedicated schema. Used with SharedTestDB for multi-replica tests.
func WithDatabase(db *database.Client) AppOption {
	return func(c *appConfig) { c.db = db }
}

// newTestApp builds and starts a replica. Everything is registered with
// t.Cleanup; teardown order is pool, HTTP server, then the database.
func newTestApp(t *testing.T, opts ...AppOption) *TestApp {
	t.Helper()

	ac := appConfig{podID: "pod-test", workerCount: 2, maxConcurrent: 10}
	for _, opt := range opts {
		opt(&ac)
	}
	if ac.db == nil {
		ac.db = testdb.NewTestClient(t)
	}

	cfg := config.DefaultConfig()
	cfg.Orchestrator.WorkerCount = ac.workerCount
	cfg.Orchestrator.MaxConcurrentInvestigations = ac.maxConcurrent
	cfg.Orchestrator.PollInterval = 25 * time.Millisecond
	cfg.Orchestrator.PollIntervalJitter = 10 * time.Millisecond
	cfg.Orchestrator.HeartbeatInterval = 200 * time.Millisecond
	cfg.Orchestrator.DefaultInvestigationTimeout = 30 * time.Second
	cfg.Orchestrator.ApprovalPollInterval = 50 * time.Millisecond
	cfg.Orchestrator.ApprovalTTL = 10 * time.Second

	app := &TestApp{
		t:              t,
		DB:             ac.db,
		Investigations: services.NewInvestigationService(ac.db.Client),
		Steps:          services.NewStepService(ac.db.Client),
		Evidence:       services.NewEvidenceService(ac.db.Client),
		Feedback:       services.NewFeedbackService(ac.db.Client),
		Approvals:      services.NewApprovalService(ac.db.Client),
		EventLog:       services.NewEventService(ac.db.Client),
		Warnings:       services.NewSystemWarningsService(),
		Tenant:         testTenant,
	}

	app.Bus = events.NewBus(app.EventLog, nil)
	app.Registry = connector.NewRegistry(connector.RegistryOptions{
		Breaker: connector.BreakerConfig{
			FailureThreshold: cfg.Breaker.FailureThreshold,
			RecoveryTimeout:  cfg.Breaker.RecoveryTimeout,
		},
	})
	t.Cleanup(func() { app.Registry.Shutdown(context.Background()) })

	app.Runtime = orchestrator.NewRuntime(nil)
	executor := orchestrator.NewExecutor(orchestrator.Options{
		Investigations: app.Investigations,
		Steps:          app.Steps,
		Evidence:       app.Evidence,
		Feedback:       app.Feedback,
		Approvals:      app.Approvals,
		Events:         app.Bus,
		Sources:        app.Registry,
		Runtime:        app.Runtime,
		Planner: agent.NewPlanner(agent.PlannerOptions{
			StepTimeout:    2 * time.Second,
			StepMaxRetries: cfg.Engine.MaxRetryAttempts,
		}),
		Analyst:   agent.NewAnalyst(agent.BaseOptions{}),
		Responder: agent.NewResponder(agent.BaseOptions{}),
		EngineOptions: engine.Options{
			Sources: app.Registry,
			Events:  app.Bus,
			Correlator: evidence.NewCorrelator(evidence.CorrelatorOptions{
				TemporalWindow: cfg.Engine.CorrelationWindow,
			}),
			MaxParallelSteps: cfg.Engine.MaxParallelSteps,
			// No real backoff sleeps in tests.
			Sleep: func(ctx context.Context, _ time.Duration) error { return ctx.Err() },
		},
		DefaultTimeout:       cfg.Orchestrator.DefaultInvestigationTimeout,
		ApprovalPollInterval: cfg.Orchestrator.ApprovalPollInterval,
		ApprovalTTL:          cfg.Orchestrator.ApprovalTTL,
	})

	app.Pool = queue.NewWorkerPool(ac.podID, app.Investigations, cfg.Orchestrator, executor, nil)
	require.NoError(t, app.Pool.Start(context.Background()))
	t.Cleanup(app.Pool.Stop)

	httpServer := api.NewServer(api.Options{
		Investigations: app.Investigations,
		Steps:          app.Steps,
		Feedback:       app.Feedback,
		Evidence:       app.Evidence,
		Approvals:      app.Approvals,
		Runtime:        app.Runtime,
		Pool:           app.Pool,
		Warnings:       app.Warnings,
		DefaultTimeout: cfg.Orchestrator.DefaultInvestigationTimeout,
	})
	app.Server = httptest.NewServer(httpServer.Router())
	t.Cleanup(app.Server.Close)

	return app
}

// SeedConnector registers an in-memory backend for the test tenant.
func (a *TestApp) SeedConnector(kind connector.Kind, id string, priority int, impl connector.Connector) {
	a.t.Helper()
	_, err := a.Registry.AddInstance(context.Background(), connector.Config{
		ID:       id,
		Kind:     kind,
		TenantID: a.Tenant,
		Priority: priority,
	}, impl)
	require.NoError(a.t, err)
}

// do performs one API request with the tenant headers set.
func (a *TestApp) do(method, path string, body any) (int, []byte) {
	a.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, a.Server.URL+path, reader)
	require.NoError(a.t, err)
	req.Header.Set(api.HeaderTenantID, a.Tenant)
	req.Header.Set(api.HeaderUserID, "analyst-1")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.Server.Client().Do(req)
	require.NoError(a.t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(a.t, err)
	return resp.StatusCode, raw
}

func decodeInto[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(raw, &out), "body: %s", raw)
	return out
}

// StartInvestigation admits an alert through the API and returns the
// investigation id.
func (a *TestApp) StartInvestigation(req models.StartInvestigationRequest) string {
	a.t.Helper()
	code, raw := a.do(http.MethodPost, "/api/v1/investigations", req)
	require.Equal(a.t, http.StatusAccepted, code, "body: %s", raw)
	resp := decodeInto[models.StartInvestigationResponse](a.t, raw)
	require.NotEmpty(a.t, resp.InvestigationID)
	return resp.InvestigationID
}

// WaitTerminal polls until the investigation reaches a terminal status and
// returns the final row.
func (a *TestApp) WaitTerminal(id string, timeout time.Duration) *models.Investigation {
	a.t.Helper()
	var inv *models.Investigation
	require.Eventually(a.t, func() bool {
		got, err := a.Investigations.Get(context.Background(), a.Tenant, id)
		if err != nil {
			return false
		}
		inv = got
		return got.Status.Terminal()
	}, timeout, 50*time.Millisecond, "investigation %s never became terminal", id)
	return inv
}

// WaitStatus polls until the investigation reports the wanted status.
func (a *TestApp) WaitStatus(id string, want models.InvestigationStatus, timeout time.Duration) {
	a.t.Helper()
	require.Eventually(a.t, func() bool {
		inv, err := a.Investigations.Get(context.Background(), a.Tenant, id)
		return err == nil && inv.Status == want
	}, timeout, 50*time.Millisecond, "investigation %s never reached %s", id, want)
}

// RunEvents returns the persisted event stream for the run in sequence
// order.
func (a *TestApp) RunEvents(id string) []*events.Envelope {
	a.t.Helper()
	out, err := a.EventLog.EventsSince(context.Background(), id, 0, 1000)
	require.NoError(a.t, err)
	return out
}

// criticalAlert builds a critical alert whose payload matches the seeded
// memory records.
func criticalAlert(id string) models.Alert {
	return models.Alert{
		ID:        id,
		Title:     "Suspicious outbound traffic",
		Severity:  models.SeverityCritical,
		Source:    "ids",
		Timestamp: time.Now().UTC(),
		Payload:   map[string]any{"rule": "egress-anomaly"},
	}
}

// denyRecords builds n firewall-deny records stamped near now. The fields
// deliberately carry no extractable entities.
func denyRecords(n int) []connector.Record {
	now := time.Now().UTC()
	out := make([]connector.Record, n)
	for i := range out {
		out[i] = connector.Record{
			Timestamp: now.Add(-time.Duration(i) * time.Minute),
			Fields: map[string]any{
				"action": "deny",
				"detail": "blocked outbound connection",
			},
		}
	}
	return out
}
