package connector

import (
	"context"
	"fmt"
	"time"
)

// ThreatIntelConnector resolves indicator reputation from a threat
// intelligence backend. It serves enrichment only; indicator queries are
// expressed as reputation lookups over the entities in the request.
type ThreatIntelConnector struct {
	backend *httpBackend
}

// NewThreatIntel creates an uninitialized threat-intel connector.
func NewThreatIntel() *ThreatIntelConnector { return &ThreatIntelConnector{} }

type reputationResponse struct {
	Indicator  string         `json:"indicator"`
	Type       string         `json:"type"`
	Verdict    string         `json:"verdict"`
	Confidence float64        `json:"confidence"`
	Tags       []string       `json:"tags"`
	Context    map[string]any `json:"context"`
}

// Initialize validates and stores the instance configuration.
func (c *ThreatIntelConnector) Initialize(_ context.Context, cfg Config) error {
	if cfg.Endpoint == "" {
		return NewError(ErrKindValidation, cfg.ID, fmt.Errorf("threat intel connector requires an endpoint"))
	}
	c.backend = newHTTPBackend(cfg)
	return nil
}

// HealthCheck pings the backend.
func (c *ThreatIntelConnector) HealthCheck(ctx context.Context) error {
	return c.backend.postJSON(ctx, "/api/ping", map[string]any{}, nil)
}

// Query looks up reputation for every entity in the request and returns one
// record per indicator.
func (c *ThreatIntelConnector) Query(ctx context.Context, req QueryRequest) (*QueryResult, error) {
	if len(req.Entities) == 0 {
		return nil, NewError(ErrKindValidation, c.backend.cfg.ID,
			fmt.Errorf("threat intel query requires entities"))
	}

	start := time.Now()
	out := &QueryResult{
		Complete:   true,
		QueriedAt:  time.Now().UTC(),
		DataSource: string(KindThreatIntel),
		Entities:   make(map[string][]string),
	}
	for kind, value := range req.Entities {
		var resp reputationResponse
		err := c.backend.postJSON(ctx, "/api/indicators/lookup", map[string]string{
			"type":  kind,
			"value": value,
		}, &resp)
		if err != nil {
			if KindOf(err) == ErrKindNotFound {
				// Unknown indicator, not a failure.
				continue
			}
			return nil, err
		}
		out.Records = append(out.Records, Record{
			Timestamp: out.QueriedAt,
			Source:    c.backend.cfg.ID,
			Fields: map[string]any{
				"indicator":  resp.Indicator,
				"type":       resp.Type,
				"verdict":    resp.Verdict,
				"confidence": resp.Confidence,
				"tags":       resp.Tags,
				"context":    resp.Context,
			},
		})
		out.Entities[kind] = append(out.Entities[kind], value)
	}
	out.LatencyMS = time.Since(start).Milliseconds()
	return out, nil
}

// Enrich resolves reputation for a single indicator.
func (c *ThreatIntelConnector) Enrich(ctx context.Context, entityKind, entity string) (*Enrichment, error) {
	var resp reputationResponse
	err := c.backend.postJSON(ctx, "/api/indicators/lookup", map[string]string{
		"type":  entityKind,
		"value": entity,
	}, &resp)
	if err != nil {
		return nil, err
	}
	attrs := map[string]any{"tags": resp.Tags}
	for k, v := range resp.Context {
		attrs[k] = v
	}
	return &Enrichment{
		Entity:     entity,
		EntityKind: entityKind,
		Verdict:    resp.Verdict,
		Confidence: resp.Confidence,
		Attributes: attrs,
		Source:     c.backend.cfg.ID,
	}, nil
}

// Capabilities lists supported operations.
func (c *ThreatIntelConnector) Capabilities() []string {
	return []string{"enrich", "reputation"}
}

// DataTypes lists served data types.
func (c *ThreatIntelConnector) DataTypes() []string {
	return []string{"reputation", "indicator"}
}

// Shutdown releases the HTTP client.
func (c *ThreatIntelConnector) Shutdown(_ context.Context) error {
	if c.backend != nil {
		c.backend.client.CloseIdleConnections()
	}
	return nil
}
