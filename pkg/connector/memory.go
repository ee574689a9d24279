package connector

import (
	"context"
	"strings"
	"sync"
	"time"
)

// MemoryConnector is an in-process backend seeded with fixed records and
// enrichments. It backs local development and tests, including failure
// injection for failover and breaker behavior.
type MemoryConnector struct {
	mu sync.Mutex

	cfg         Config
	kind        Kind
	records     []Record
	enrichments map[string]Enrichment // "kind:value" → enrichment

	queryErr  error
	enrichErr error
	healthErr error
	delay     time.Duration
	queries   int
	shutdown  bool
}

// NewMemory creates an in-memory connector of the given kind.
func NewMemory(kind Kind) *MemoryConnector {
	return &MemoryConnector{
		kind:        kind,
		enrichments: make(map[string]Enrichment),
	}
}

// Seed adds records returned by matching queries.
func (c *MemoryConnector) Seed(records ...Record) *MemoryConnector {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = append(c.records, records...)
	return c
}

// SeedEnrichment registers the enrichment returned for an entity.
func (c *MemoryConnector) SeedEnrichment(e Enrichment) *MemoryConnector {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enrichments[e.EntityKind+":"+e.Entity] = e
	return c
}

// FailQueries makes subsequent Query calls return err (nil clears).
func (c *MemoryConnector) FailQueries(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.queryErr = err
}

// FailEnrich makes subsequent Enrich calls return err (nil clears).
func (c *MemoryConnector) FailEnrich(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enrichErr = err
}

// FailHealth makes subsequent HealthCheck calls return err (nil clears).
func (c *MemoryConnector) FailHealth(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.healthErr = err
}

// SetDelay makes calls block for d before responding.
func (c *MemoryConnector) SetDelay(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.delay = d
}

// Queries returns the number of Query calls served or failed.
func (c *MemoryConnector) Queries() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.queries
}

// IsShutdown reports whether Shutdown was called.
func (c *MemoryConnector) IsShutdown() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.shutdown
}

func (c *MemoryConnector) Initialize(_ context.Context, cfg Config) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cfg = cfg
	return nil
}

func (c *MemoryConnector) HealthCheck(ctx context.Context) error {
	c.mu.Lock()
	err := c.healthErr
	delay := c.delay
	c.mu.Unlock()
	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return err
}

func (c *MemoryConnector) Query(ctx context.Context, req QueryRequest) (*QueryResult, error) {
	c.mu.Lock()
	c.queries++
	err := c.queryErr
	delay := c.delay
	records := make([]Record, len(c.records))
	copy(records, c.records)
	id := c.cfg.ID
	c.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err != nil {
		return nil, err
	}

	matched := records[:0]
	for _, r := range records {
		if matchRecord(r, req) {
			matched = append(matched, r)
		}
	}
	complete := true
	if req.MaxRecords > 0 && len(matched) > req.MaxRecords {
		matched = matched[:req.MaxRecords]
		complete = false
	}
	return &QueryResult{
		Records:    matched,
		Complete:   complete,
		QueriedAt:  time.Now().UTC(),
		Connector:  id,
		DataSource: string(c.kind),
	}, nil
}

// matchRecord keeps a record when it falls inside the requested window and,
// for entity-scoped queries, mentions at least one requested entity value.
func matchRecord(r Record, req QueryRequest) bool {
	if !req.TimeFrom.IsZero() && r.Timestamp.Before(req.TimeFrom) {
		return false
	}
	if !req.TimeTo.IsZero() && r.Timestamp.After(req.TimeTo) {
		return false
	}
	if len(req.Entities) == 0 {
		return true
	}
	for _, want := range req.Entities {
		for _, v := range r.Fields {
			if s, ok := v.(string); ok && strings.Contains(s, want) {
				return true
			}
		}
	}
	return false
}

func (c *MemoryConnector) Enrich(ctx context.Context, entityKind, entity string) (*Enrichment, error) {
	c.mu.Lock()
	err := c.enrichErr
	e, ok := c.enrichments[entityKind+":"+entity]
	id := c.cfg.ID
	c.mu.Unlock()

	if err != nil {
		return nil, err
	}
	if !ok {
		return &Enrichment{
			Entity:     entity,
			EntityKind: entityKind,
			Verdict:    "unknown",
			Source:     id,
		}, nil
	}
	e.Source = id
	return &e, nil
}

func (c *MemoryConnector) Capabilities() []string {
	return []string{"search", "enrich"}
}

func (c *MemoryConnector) DataTypes() []string {
	switch c.kind {
	case KindEDR:
		return []string{"process", "file", "host", "network"}
	case KindThreatIntel:
		return []string{"reputation", "indicator"}
	default:
		return []string{"log", "network", "auth", "alert"}
	}
}

func (c *MemoryConnector) Shutdown(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.shutdown = true
	return nil
}
