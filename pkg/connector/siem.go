package connector

import (
	"context"
	"fmt"
	"time"
)

// SIEMConnector queries a log-search backend over its HTTP search API.
type SIEMConnector struct {
	backend *httpBackend
}

// NewSIEM creates an uninitialized SIEM connector.
func NewSIEM() *SIEMConnector { return &SIEMConnector{} }

type siemSearchRequest struct {
	Query      string            `json:"query"`
	DataType   string            `json:"data_type,omitempty"`
	Entities   map[string]string `json:"entities,omitempty"`
	From       string            `json:"from,omitempty"`
	To         string            `json:"to,omitempty"`
	MaxResults int               `json:"max_results,omitempty"`
}

type siemSearchResponse struct {
	Results []struct {
		Timestamp time.Time      `json:"timestamp"`
		Index     string         `json:"index"`
		Fields    map[string]any `json:"fields"`
	} `json:"results"`
	Entities  map[string][]string `json:"entities"`
	Truncated bool                `json:"truncated"`
}

// Initialize validates and stores the instance configuration.
func (c *SIEMConnector) Initialize(_ context.Context, cfg Config) error {
	if cfg.Endpoint == "" {
		return NewError(ErrKindValidation, cfg.ID, fmt.Errorf("siem connector requires an endpoint"))
	}
	c.backend = newHTTPBackend(cfg)
	return nil
}

// HealthCheck pings the backend's health endpoint.
func (c *SIEMConnector) HealthCheck(ctx context.Context) error {
	return c.backend.postJSON(ctx, "/api/v1/ping", map[string]any{}, nil)
}

// Query runs a log search.
func (c *SIEMConnector) Query(ctx context.Context, req QueryRequest) (*QueryResult, error) {
	wire := siemSearchRequest{
		Query:      req.Query,
		DataType:   req.DataType,
		Entities:   req.Entities,
		MaxResults: req.MaxRecords,
	}
	if !req.TimeFrom.IsZero() {
		wire.From = req.TimeFrom.UTC().Format(time.RFC3339)
	}
	if !req.TimeTo.IsZero() {
		wire.To = req.TimeTo.UTC().Format(time.RFC3339)
	}

	start := time.Now()
	var resp siemSearchResponse
	if err := c.backend.postJSON(ctx, "/api/v1/search", wire, &resp); err != nil {
		return nil, err
	}

	out := &QueryResult{
		Records:    make([]Record, 0, len(resp.Results)),
		Entities:   resp.Entities,
		Complete:   !resp.Truncated,
		QueriedAt:  time.Now().UTC(),
		LatencyMS:  time.Since(start).Milliseconds(),
		DataSource: string(KindSIEM),
	}
	for _, r := range resp.Results {
		out.Records = append(out.Records, Record{
			Timestamp: r.Timestamp,
			Source:    r.Index,
			Fields:    r.Fields,
		})
	}
	return out, nil
}

// Enrich looks up a single entity in the SIEM's asset and identity data.
func (c *SIEMConnector) Enrich(ctx context.Context, entityKind, entity string) (*Enrichment, error) {
	var resp struct {
		Verdict    string         `json:"verdict"`
		Confidence float64        `json:"confidence"`
		Attributes map[string]any `json:"attributes"`
	}
	err := c.backend.postJSON(ctx, "/api/v1/context", map[string]string{
		"kind":  entityKind,
		"value": entity,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &Enrichment{
		Entity:     entity,
		EntityKind: entityKind,
		Verdict:    resp.Verdict,
		Confidence: resp.Confidence,
		Attributes: resp.Attributes,
		Source:     c.backend.cfg.ID,
	}, nil
}

// Capabilities lists supported operations.
func (c *SIEMConnector) Capabilities() []string {
	return []string{"search", "enrich", "aggregate"}
}

// DataTypes lists served data types.
func (c *SIEMConnector) DataTypes() []string {
	return []string{"log", "network", "auth", "alert"}
}

// Shutdown releases the HTTP client.
func (c *SIEMConnector) Shutdown(_ context.Context) error {
	if c.backend != nil {
		c.backend.client.CloseIdleConnections()
	}
	return nil
}
