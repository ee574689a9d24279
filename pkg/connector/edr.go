package connector

import (
	"context"
	"fmt"
	"time"
)

// EDRConnector queries an endpoint detection backend: process telemetry,
// host state, and file activity.
type EDRConnector struct {
	backend *httpBackend
}

// NewEDR creates an uninitialized EDR connector.
func NewEDR() *EDRConnector { return &EDRConnector{} }

type edrTelemetryRequest struct {
	Hostname   string            `json:"hostname,omitempty"`
	Query      string            `json:"query,omitempty"`
	DataType   string            `json:"data_type,omitempty"`
	Entities   map[string]string `json:"entities,omitempty"`
	Since      string            `json:"since,omitempty"`
	Until      string            `json:"until,omitempty"`
	MaxEvents  int               `json:"max_events,omitempty"`
}

type edrTelemetryResponse struct {
	Events []struct {
		Timestamp time.Time      `json:"timestamp"`
		Host      string         `json:"host"`
		Data      map[string]any `json:"data"`
	} `json:"events"`
	Entities map[string][]string `json:"entities"`
	Partial  bool                `json:"partial"`
}

// Initialize validates and stores the instance configuration.
func (c *EDRConnector) Initialize(_ context.Context, cfg Config) error {
	if cfg.Endpoint == "" {
		return NewError(ErrKindValidation, cfg.ID, fmt.Errorf("edr connector requires an endpoint"))
	}
	c.backend = newHTTPBackend(cfg)
	return nil
}

// HealthCheck pings the backend.
func (c *EDRConnector) HealthCheck(ctx context.Context) error {
	return c.backend.postJSON(ctx, "/v2/status", map[string]any{}, nil)
}

// Query fetches endpoint telemetry matching the request.
func (c *EDRConnector) Query(ctx context.Context, req QueryRequest) (*QueryResult, error) {
	wire := edrTelemetryRequest{
		Hostname:  req.Entities["hostname"],
		Query:     req.Query,
		DataType:  req.DataType,
		Entities:  req.Entities,
		MaxEvents: req.MaxRecords,
	}
	if !req.TimeFrom.IsZero() {
		wire.Since = req.TimeFrom.UTC().Format(time.RFC3339)
	}
	if !req.TimeTo.IsZero() {
		wire.Until = req.TimeTo.UTC().Format(time.RFC3339)
	}

	start := time.Now()
	var resp edrTelemetryResponse
	if err := c.backend.postJSON(ctx, "/v2/telemetry/search", wire, &resp); err != nil {
		return nil, err
	}

	out := &QueryResult{
		Records:    make([]Record, 0, len(resp.Events)),
		Entities:   resp.Entities,
		Complete:   !resp.Partial,
		QueriedAt:  time.Now().UTC(),
		LatencyMS:  time.Since(start).Milliseconds(),
		DataSource: string(KindEDR),
	}
	for _, e := range resp.Events {
		out.Records = append(out.Records, Record{
			Timestamp: e.Timestamp,
			Source:    e.Host,
			Fields:    e.Data,
		})
	}
	return out, nil
}

// Enrich resolves host or file-hash context from the EDR.
func (c *EDRConnector) Enrich(ctx context.Context, entityKind, entity string) (*Enrichment, error) {
	var resp struct {
		Disposition string         `json:"disposition"`
		Score       float64        `json:"score"`
		Details     map[string]any `json:"details"`
	}
	err := c.backend.postJSON(ctx, "/v2/lookup", map[string]string{
		"type":  entityKind,
		"value": entity,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &Enrichment{
		Entity:     entity,
		EntityKind: entityKind,
		Verdict:    resp.Disposition,
		Confidence: resp.Score,
		Attributes: resp.Details,
		Source:     c.backend.cfg.ID,
	}, nil
}

// Capabilities lists supported operations.
func (c *EDRConnector) Capabilities() []string {
	return []string{"search", "enrich", "process_tree", "isolate"}
}

// DataTypes lists served data types.
func (c *EDRConnector) DataTypes() []string {
	return []string{"process", "file", "host", "network"}
}

// Shutdown releases the HTTP client.
func (c *EDRConnector) Shutdown(_ context.Context) error {
	if c.backend != nil {
		c.backend.client.CloseIdleConnections()
	}
	return nil
}
