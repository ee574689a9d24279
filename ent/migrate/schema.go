// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ApprovalRequestsColumns holds the columns for the "approval_requests" table.
	ApprovalRequestsColumns = []*schema.Column{
		{Name: "request_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "risk", Type: field.TypeEnum, Enums: []string{"low", "medium", "high", "critical"}, Default: "medium"},
		{Name: "action_payload", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "approved", "rejected", "expired"}, Default: "pending"},
		{Name: "verified", Type: field.TypeBool, Default: true},
		{Name: "requested_at", Type: field.TypeTime},
		{Name: "responded_at", Type: field.TypeTime, Nullable: true},
		{Name: "responded_by", Type: field.TypeString, Nullable: true},
		{Name: "run_id", Type: field.TypeString},
	}
	// ApprovalRequestsTable holds the schema information for the "approval_requests" table.
	ApprovalRequestsTable = &schema.Table{
		Name:       "approval_requests",
		Columns:    ApprovalRequestsColumns,
		PrimaryKey: []*schema.Column{ApprovalRequestsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "approval_requests_investigations_approvals",
				Columns:    []*schema.Column{ApprovalRequestsColumns[11]},
				RefColumns: []*schema.Column{InvestigationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "approvalrequest_tenant_id_run_id",
				Unique:  false,
				Columns: []*schema.Column{ApprovalRequestsColumns[1], ApprovalRequestsColumns[11]},
			},
			{
				Name:    "approvalrequest_status",
				Unique:  false,
				Columns: []*schema.Column{ApprovalRequestsColumns[6]},
			},
		},
	}
	// ConnectorDefsColumns holds the columns for the "connector_defs" table.
	ConnectorDefsColumns = []*schema.Column{
		{Name: "connector_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "type", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "priority", Type: field.TypeInt, Default: 100},
		{Name: "auth", Type: field.TypeJSON, Nullable: true},
		{Name: "rate_limits", Type: field.TypeJSON, Nullable: true},
		{Name: "config", Type: field.TypeJSON, Nullable: true},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "degraded", "unhealthy"}, Default: "active"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ConnectorDefsTable holds the schema information for the "connector_defs" table.
	ConnectorDefsTable = &schema.Table{
		Name:       "connector_defs",
		Columns:    ConnectorDefsColumns,
		PrimaryKey: []*schema.Column{ConnectorDefsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "connectordef_tenant_id_type_priority",
				Unique:  false,
				Columns: []*schema.Column{ConnectorDefsColumns[1], ConnectorDefsColumns[2], ConnectorDefsColumns[4]},
			},
			{
				Name:    "connectordef_tenant_id_enabled",
				Unique:  false,
				Columns: []*schema.Column{ConnectorDefsColumns[1], ConnectorDefsColumns[8]},
			},
		},
	}
	// EvidencesColumns holds the columns for the "evidences" table.
	EvidencesColumns = []*schema.Column{
		{Name: "evidence_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "step_id", Type: field.TypeString, Nullable: true},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"network", "process", "file", "log", "alert", "enrichment", "correlation", "other"}, Default: "other"},
		{Name: "source", Type: field.TypeString},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "entities", Type: field.TypeJSON, Nullable: true},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0.5},
		{Name: "quality_score", Type: field.TypeFloat64, Default: 0},
		{Name: "score_breakdown", Type: field.TypeJSON, Nullable: true},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "supersedes", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "investigation_id", Type: field.TypeString},
	}
	// EvidencesTable holds the schema information for the "evidences" table.
	EvidencesTable = &schema.Table{
		Name:       "evidences",
		Columns:    EvidencesColumns,
		PrimaryKey: []*schema.Column{EvidencesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "evidences_investigations_evidence",
				Columns:    []*schema.Column{EvidencesColumns[14]},
				RefColumns: []*schema.Column{InvestigationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "evidence_tenant_id_investigation_id",
				Unique:  false,
				Columns: []*schema.Column{EvidencesColumns[1], EvidencesColumns[14]},
			},
			{
				Name:    "evidence_tenant_id_type",
				Unique:  false,
				Columns: []*schema.Column{EvidencesColumns[1], EvidencesColumns[3]},
			},
			{
				Name:    "evidence_tenant_id_source",
				Unique:  false,
				Columns: []*schema.Column{EvidencesColumns[1], EvidencesColumns[4]},
			},
			{
				Name:    "evidence_tenant_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{EvidencesColumns[1], EvidencesColumns[5]},
			},
		},
	}
	// EvidenceRelationshipsColumns holds the columns for the "evidence_relationships" table.
	EvidenceRelationshipsColumns = []*schema.Column{
		{Name: "relationship_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "investigation_id", Type: field.TypeString},
		{Name: "to_evidence_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"temporal", "entity", "behavioral", "causal"}},
		{Name: "strength", Type: field.TypeFloat64},
		{Name: "rationale", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "from_evidence_id", Type: field.TypeString},
	}
	// EvidenceRelationshipsTable holds the schema information for the "evidence_relationships" table.
	EvidenceRelationshipsTable = &schema.Table{
		Name:       "evidence_relationships",
		Columns:    EvidenceRelationshipsColumns,
		PrimaryKey: []*schema.Column{EvidenceRelationshipsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "evidence_relationships_evidences_outgoing_relationships",
				Columns:    []*schema.Column{EvidenceRelationshipsColumns[8]},
				RefColumns: []*schema.Column{EvidencesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "evidencerelationship_from_evidence_id_to_evidence_id_kind",
				Unique:  true,
				Columns: []*schema.Column{EvidenceRelationshipsColumns[8], EvidenceRelationshipsColumns[3], EvidenceRelationshipsColumns[4]},
			},
			{
				Name:    "evidencerelationship_tenant_id_investigation_id",
				Unique:  false,
				Columns: []*schema.Column{EvidenceRelationshipsColumns[1], EvidenceRelationshipsColumns[2]},
			},
			{
				Name:    "evidencerelationship_to_evidence_id",
				Unique:  false,
				Columns: []*schema.Column{EvidenceRelationshipsColumns[3]},
			},
		},
	}
	// FeedbacksColumns holds the columns for the "feedbacks" table.
	FeedbacksColumns = []*schema.Column{
		{Name: "feedback_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"verdict_correction", "step_feedback", "note", "escalation"}},
		{Name: "content", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "consumed_at", Type: field.TypeTime, Nullable: true},
		{Name: "investigation_id", Type: field.TypeString},
	}
	// FeedbacksTable holds the schema information for the "feedbacks" table.
	FeedbacksTable = &schema.Table{
		Name:       "feedbacks",
		Columns:    FeedbacksColumns,
		PrimaryKey: []*schema.Column{FeedbacksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "feedbacks_investigations_feedback",
				Columns:    []*schema.Column{FeedbacksColumns[7]},
				RefColumns: []*schema.Column{InvestigationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "feedback_investigation_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{FeedbacksColumns[7], FeedbacksColumns[5]},
			},
			{
				Name:    "feedback_tenant_id_investigation_id",
				Unique:  false,
				Columns: []*schema.Column{FeedbacksColumns[1], FeedbacksColumns[7]},
			},
		},
	}
	// InvestigationsColumns holds the columns for the "investigations" table.
	InvestigationsColumns = []*schema.Column{
		{Name: "investigation_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "alert_id", Type: field.TypeString},
		{Name: "correlation_key", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "alert_title", Type: field.TypeString, Nullable: true},
		{Name: "alert_severity", Type: field.TypeEnum, Enums: []string{"critical", "high", "medium", "low"}, Default: "medium"},
		{Name: "alert_source", Type: field.TypeString, Nullable: true},
		{Name: "alert_timestamp", Type: field.TypeTime, Nullable: true},
		{Name: "alert_payload", Type: field.TypeJSON, Nullable: true},
		{Name: "alert_entities", Type: field.TypeJSON, Nullable: true},
		{Name: "priority", Type: field.TypeInt, Default: 3},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"queued", "planning", "executing", "analyzing", "responding", "awaiting_approval", "paused", "complete", "requires_review", "failed", "timed_out"}, Default: "queued"},
		{Name: "timeout_ms", Type: field.TypeInt64, Default: 1800000},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "verdict", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "execution_summary", Type: field.TypeJSON, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "pod_id", Type: field.TypeString, Nullable: true},
		{Name: "last_heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
	}
	// InvestigationsTable holds the schema information for the "investigations" table.
	InvestigationsTable = &schema.Table{
		Name:       "investigations",
		Columns:    InvestigationsColumns,
		PrimaryKey: []*schema.Column{InvestigationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "investigation_tenant_id_alert_id_correlation_key",
				Unique:  true,
				Columns: []*schema.Column{InvestigationsColumns[1], InvestigationsColumns[2], InvestigationsColumns[3]},
			},
			{
				Name:    "investigation_tenant_id_status",
				Unique:  false,
				Columns: []*schema.Column{InvestigationsColumns[1], InvestigationsColumns[12]},
			},
			{
				Name:    "investigation_tenant_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{InvestigationsColumns[1], InvestigationsColumns[14]},
			},
			{
				Name:    "investigation_status_priority_created_at",
				Unique:  false,
				Columns: []*schema.Column{InvestigationsColumns[12], InvestigationsColumns[11], InvestigationsColumns[14]},
			},
			{
				Name:    "investigation_status_last_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{InvestigationsColumns[12], InvestigationsColumns[22]},
			},
			{
				Name:    "investigation_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{InvestigationsColumns[23]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// PlanStepsColumns holds the columns for the "plan_steps" table.
	PlanStepsColumns = []*schema.Column{
		{Name: "step_id", Type: field.TypeString, Unique: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"query", "enrich", "correlate", "validate"}},
		{Name: "agent", Type: field.TypeString, Nullable: true},
		{Name: "dependencies", Type: field.TypeJSON, Nullable: true},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "data_sources", Type: field.TypeJSON, Nullable: true},
		{Name: "timeout_ms", Type: field.TypeInt64, Default: 5000},
		{Name: "max_retries", Type: field.TypeInt, Default: 2},
		{Name: "critical", Type: field.TypeBool, Default: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "complete", "failed", "skipped"}, Default: "pending"},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "last_error", Type: field.TypeString, Nullable: true},
		{Name: "adapted_from", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "investigation_id", Type: field.TypeString},
	}
	// PlanStepsTable holds the schema information for the "plan_steps" table.
	PlanStepsTable = &schema.Table{
		Name:       "plan_steps",
		Columns:    PlanStepsColumns,
		PrimaryKey: []*schema.Column{PlanStepsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "plan_steps_investigations_steps",
				Columns:    []*schema.Column{PlanStepsColumns[18]},
				RefColumns: []*schema.Column{InvestigationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "planstep_investigation_id_status",
				Unique:  false,
				Columns: []*schema.Column{PlanStepsColumns[18], PlanStepsColumns[11]},
			},
			{
				Name:    "planstep_tenant_id_investigation_id",
				Unique:  false,
				Columns: []*schema.Column{PlanStepsColumns[1], PlanStepsColumns[18]},
			},
		},
	}
	// RunEventsColumns holds the columns for the "run_events" table.
	RunEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "tenant_id", Type: field.TypeString},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "method", Type: field.TypeString},
		{Name: "params", Type: field.TypeJSON},
		{Name: "ts", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
	}
	// RunEventsTable holds the schema information for the "run_events" table.
	RunEventsTable = &schema.Table{
		Name:       "run_events",
		Columns:    RunEventsColumns,
		PrimaryKey: []*schema.Column{RunEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "run_events_investigations_run_events",
				Columns:    []*schema.Column{RunEventsColumns[6]},
				RefColumns: []*schema.Column{InvestigationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "runevent_run_id_sequence",
				Unique:  true,
				Columns: []*schema.Column{RunEventsColumns[6], RunEventsColumns[2]},
			},
			{
				Name:    "runevent_tenant_id_run_id",
				Unique:  false,
				Columns: []*schema.Column{RunEventsColumns[1], RunEventsColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ApprovalRequestsTable,
		ConnectorDefsTable,
		EvidencesTable,
		EvidenceRelationshipsTable,
		FeedbacksTable,
		InvestigationsTable,
		PlanStepsTable,
		RunEventsTable,
	}
)

func init() {
	ApprovalRequestsTable.ForeignKeys[0].RefTable = InvestigationsTable
	EvidencesTable.ForeignKeys[0].RefTable = InvestigationsTable
	EvidenceRelationshipsTable.ForeignKeys[0].RefTable = EvidencesTable
	FeedbacksTable.ForeignKeys[0].RefTable = InvestigationsTable
	PlanStepsTable.ForeignKeys[0].RefTable = InvestigationsTable
	RunEventsTable.ForeignKeys[0].RefTable = InvestigationsTable
}
