package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/NeoCh3n/NeonharbourSecurity-sub001/ent"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/ent/connectordef"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/connector"
)

// ConnectorDefinition is the durable view of one tenant connector. Live
// instances (limiter, breaker, in-flight counters) belong to the registry;
// this row is what survives restarts.
type ConnectorDefinition struct {
	ID        string               `json:"connector_id"`
	TenantID  string               `json:"tenant_id"`
	Type      string               `json:"type"`
	Name      string               `json:"name"`
	Priority  int                  `json:"priority"`
	Auth      connector.AuthConfig `json:"auth,omitempty"`
	Rate      connector.RateConfig `json:"rate_limits,omitempty"`
	Config    map[string]any       `json:"config,omitempty"`
	Enabled   bool                 `json:"enabled"`
	Status    string               `json:"status"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

// ConnectorService persists tenant connector definitions.
type ConnectorService struct {
	client *ent.Client
}

// NewConnectorService creates a new ConnectorService.
func NewConnectorService(client *ent.Client) *ConnectorService {
	return &ConnectorService{client: client}
}

// Create stores a connector definition for the tenant.
func (s *ConnectorService) Create(ctx context.Context, def *ConnectorDefinition) (*ConnectorDefinition, error) {
	if def.TenantID == "" {
		return nil, NewValidationError("tenant_id", "required")
	}
	if def.Type == "" {
		return nil, NewValidationError("type", "required")
	}
	if def.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if err := def.Auth.Validate(); err != nil {
		return nil, NewValidationError("auth", err.Error())
	}
	id := def.ID
	if id == "" {
		id = uuid.New().String()
	}
	priority := def.Priority
	if priority == 0 {
		priority = 100
	}

	auth, err := toJSONMap(def.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to encode auth config: %w", err)
	}
	rate, err := toJSONMap(def.Rate)
	if err != nil {
		return nil, fmt.Errorf("failed to encode rate limits: %w", err)
	}

	b := s.client.ConnectorDef.Create().
		SetID(id).
		SetTenantID(def.TenantID).
		SetType(def.Type).
		SetName(def.Name).
		SetPriority(priority).
		SetAuth(auth).
		SetRateLimits(rate).
		SetEnabled(def.Enabled)
	if def.Config != nil {
		b = b.SetConfig(def.Config)
	}
	row, err := b.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create connector definition: %w", err)
	}
	return connectorDefFromEnt(row), nil
}

// Get returns the definition, tenant-scoped.
func (s *ConnectorService) Get(ctx context.Context, tenantID, id string) (*ConnectorDefinition, error) {
	row, err := s.client.ConnectorDef.Query().
		Where(
			connectordef.ID(id),
			connectordef.TenantID(tenantID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get connector definition: %w", err)
	}
	return connectorDefFromEnt(row), nil
}

// List returns the tenant's definitions ordered by type then priority, the
// order the registry tries them in.
func (s *ConnectorService) List(ctx context.Context, tenantID string, enabledOnly bool) ([]*ConnectorDefinition, error) {
	q := s.client.ConnectorDef.Query().
		Where(connectordef.TenantID(tenantID))
	if enabledOnly {
		q = q.Where(connectordef.Enabled(true))
	}
	rows, err := q.
		Order(ent.Asc(connectordef.FieldType), ent.Asc(connectordef.FieldPriority)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list connector definitions: %w", err)
	}
	out := make([]*ConnectorDefinition, len(rows))
	for i, row := range rows {
		out[i] = connectorDefFromEnt(row)
	}
	return out, nil
}

// ListAllEnabled returns enabled definitions across all tenants. Startup
// uses this to re-register live instances for durable definitions.
func (s *ConnectorService) ListAllEnabled(ctx context.Context) ([]*ConnectorDefinition, error) {
	rows, err := s.client.ConnectorDef.Query().
		Where(connectordef.Enabled(true)).
		Order(ent.Asc(connectordef.FieldTenantID), ent.Asc(connectordef.FieldType), ent.Asc(connectordef.FieldPriority)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list enabled connector definitions: %w", err)
	}
	out := make([]*ConnectorDefinition, len(rows))
	for i, row := range rows {
		out[i] = connectorDefFromEnt(row)
	}
	return out, nil
}

// SetEnabled toggles the definition on or off.
func (s *ConnectorService) SetEnabled(ctx context.Context, tenantID, id string, enabled bool) error {
	n, err := s.client.ConnectorDef.Update().
		Where(
			connectordef.ID(id),
			connectordef.TenantID(tenantID),
		).
		SetEnabled(enabled).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to toggle connector definition: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// SetStatus records the health monitor's latest verdict.
func (s *ConnectorService) SetStatus(ctx context.Context, tenantID, id, status string) error {
	switch status {
	case "active", "degraded", "unhealthy":
	default:
		return NewValidationError("status", fmt.Sprintf("unknown status %q", status))
	}
	n, err := s.client.ConnectorDef.Update().
		Where(
			connectordef.ID(id),
			connectordef.TenantID(tenantID),
		).
		SetStatus(connectordef.Status(status)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update connector status: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the definition. The registry shuts down the live instance
// separately.
func (s *ConnectorService) Delete(ctx context.Context, tenantID, id string) error {
	n, err := s.client.ConnectorDef.Delete().
		Where(
			connectordef.ID(id),
			connectordef.TenantID(tenantID),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete connector definition: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// InstanceConfig converts the stored definition into the config handed to
// Connector.Initialize.
func (d *ConnectorDefinition) InstanceConfig() connector.Config {
	cfg := connector.Config{
		ID:       d.ID,
		Kind:     connector.Kind(d.Type),
		TenantID: d.TenantID,
		Priority: d.Priority,
		Auth:     d.Auth,
		Rate:     d.Rate,
	}
	if endpoint, ok := d.Config["endpoint"].(string); ok {
		cfg.Endpoint = endpoint
	}
	if len(d.Config) > 0 {
		cfg.Settings = make(map[string]string, len(d.Config))
		for k, v := range d.Config {
			if s, ok := v.(string); ok && k != "endpoint" {
				cfg.Settings[k] = s
			}
		}
	}
	return cfg
}

func connectorDefFromEnt(row *ent.ConnectorDef) *ConnectorDefinition {
	def := &ConnectorDefinition{
		ID:        row.ID,
		TenantID:  row.TenantID,
		Type:      row.Type,
		Name:      row.Name,
		Priority:  row.Priority,
		Config:    row.Config,
		Enabled:   row.Enabled,
		Status:    string(row.Status),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if row.Auth != nil {
		_ = fromJSONMap(row.Auth, &def.Auth)
	}
	if row.RateLimits != nil {
		_ = fromJSONMap(row.RateLimits, &def.Rate)
	}
	return def
}
