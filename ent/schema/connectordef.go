package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ConnectorDef holds the schema definition for tenant connector definitions.
// Definitions are durable; live connector instances (with their limiter,
// breaker, and in-flight counters) are owned by the registry at runtime.
type ConnectorDef struct {
	ent.Schema
}

// Fields of the ConnectorDef.
func (ConnectorDef) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("connector_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("type").
			Comment("Connector type, e.g. siem / edr / threat_intel"),
		field.String("name"),
		field.Int("priority").
			Default(100).
			Comment("Lower value = primary"),

		field.JSON("auth", map[string]interface{}{}).
			Optional().
			Comment("type in {apiKey, basic, oauth, none} + credentials ref"),
		field.JSON("rate_limits", map[string]interface{}{}).
			Optional().
			Comment("requestsPerSecond / requestsPerMinute / requestsPerHour"),
		field.JSON("config", map[string]interface{}{}).
			Optional(),

		field.Bool("enabled").
			Default(true),
		field.Enum("status").
			Values("active", "degraded", "unhealthy").
			Default("active"),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the ConnectorDef.
func (ConnectorDef) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "type", "priority"),
		index.Fields("tenant_id", "enabled"),
	}
}
