// Code generated by ent, DO NOT EDIT.

package investigation

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the investigation type in the database.
	Label = "investigation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "investigation_id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldAlertID holds the string denoting the alert_id field in the database.
	FieldAlertID = "alert_id"
	// FieldCorrelationKey holds the string denoting the correlation_key field in the database.
	FieldCorrelationKey = "correlation_key"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldAlertTitle holds the string denoting the alert_title field in the database.
	FieldAlertTitle = "alert_title"
	// FieldAlertSeverity holds the string denoting the alert_severity field in the database.
	FieldAlertSeverity = "alert_severity"
	// FieldAlertSource holds the string denoting the alert_source field in the database.
	FieldAlertSource = "alert_source"
	// FieldAlertTimestamp holds the string denoting the alert_timestamp field in the database.
	FieldAlertTimestamp = "alert_timestamp"
	// FieldAlertPayload holds the string denoting the alert_payload field in the database.
	FieldAlertPayload = "alert_payload"
	// FieldAlertEntities holds the string denoting the alert_entities field in the database.
	FieldAlertEntities = "alert_entities"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldTimeoutMs holds the string denoting the timeout_ms field in the database.
	FieldTimeoutMs = "timeout_ms"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldVerdict holds the string denoting the verdict field in the database.
	FieldVerdict = "verdict"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldExecutionSummary holds the string denoting the execution_summary field in the database.
	FieldExecutionSummary = "execution_summary"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldPodID holds the string denoting the pod_id field in the database.
	FieldPodID = "pod_id"
	// FieldLastHeartbeatAt holds the string denoting the last_heartbeat_at field in the database.
	FieldLastHeartbeatAt = "last_heartbeat_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// EdgeSteps holds the string denoting the steps edge name in mutations.
	EdgeSteps = "steps"
	// EdgeEvidence holds the string denoting the evidence edge name in mutations.
	EdgeEvidence = "evidence"
	// EdgeFeedback holds the string denoting the feedback edge name in mutations.
	EdgeFeedback = "feedback"
	// EdgeApprovals holds the string denoting the approvals edge name in mutations.
	EdgeApprovals = "approvals"
	// EdgeRunEvents holds the string denoting the run_events edge name in mutations.
	EdgeRunEvents = "run_events"
	// PlanStepFieldID holds the string denoting the ID field of the PlanStep.
	PlanStepFieldID = "step_id"
	// EvidenceFieldID holds the string denoting the ID field of the Evidence.
	EvidenceFieldID = "evidence_id"
	// FeedbackFieldID holds the string denoting the ID field of the Feedback.
	FeedbackFieldID = "feedback_id"
	// ApprovalRequestFieldID holds the string denoting the ID field of the ApprovalRequest.
	ApprovalRequestFieldID = "request_id"
	// RunEventFieldID holds the string denoting the ID field of the RunEvent.
	RunEventFieldID = "id"
	// Table holds the table name of the investigation in the database.
	Table = "investigations"
	// StepsTable is the table that holds the steps relation/edge.
	StepsTable = "plan_steps"
	// StepsInverseTable is the table name for the PlanStep entity.
	// It exists in this package in order to avoid circular dependency with the "planstep" package.
	StepsInverseTable = "plan_steps"
	// StepsColumn is the table column denoting the steps relation/edge.
	StepsColumn = "investigation_id"
	// EvidenceTable is the table that holds the evidence relation/edge.
	EvidenceTable = "evidences"
	// EvidenceInverseTable is the table name for the Evidence entity.
	// It exists in this package in order to avoid circular dependency with the "evidence" package.
	EvidenceInverseTable = "evidences"
	// EvidenceColumn is the table column denoting the evidence relation/edge.
	EvidenceColumn = "investigation_id"
	// FeedbackTable is the table that holds the feedback relation/edge.
	FeedbackTable = "feedbacks"
	// FeedbackInverseTable is the table name for the Feedback entity.
	// It exists in this package in order to avoid circular dependency with the "feedback" package.
	FeedbackInverseTable = "feedbacks"
	// FeedbackColumn is the table column denoting the feedback relation/edge.
	FeedbackColumn = "investigation_id"
	// ApprovalsTable is the table that holds the approvals relation/edge.
	ApprovalsTable = "approval_requests"
	// ApprovalsInverseTable is the table name for the ApprovalRequest entity.
	// It exists in this package in order to avoid circular dependency with the "approvalrequest" package.
	ApprovalsInverseTable = "approval_requests"
	// ApprovalsColumn is the table column denoting the approvals relation/edge.
	ApprovalsColumn = "run_id"
	// RunEventsTable is the table that holds the run_events relation/edge.
	RunEventsTable = "run_events"
	// RunEventsInverseTable is the table name for the RunEvent entity.
	// It exists in this package in order to avoid circular dependency with the "runevent" package.
	RunEventsInverseTable = "run_events"
	// RunEventsColumn is the table column denoting the run_events relation/edge.
	RunEventsColumn = "run_id"
)

// Columns holds all SQL columns for investigation fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldAlertID,
	FieldCorrelationKey,
	FieldUserID,
	FieldAlertTitle,
	FieldAlertSeverity,
	FieldAlertSource,
	FieldAlertTimestamp,
	FieldAlertPayload,
	FieldAlertEntities,
	FieldPriority,
	FieldStatus,
	FieldTimeoutMs,
	FieldCreatedAt,
	FieldStartedAt,
	FieldCompletedAt,
	FieldVerdict,
	FieldErrorMessage,
	FieldExecutionSummary,
	FieldMetadata,
	FieldPodID,
	FieldLastHeartbeatAt,
	FieldDeletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultPriority holds the default value on creation for the "priority" field.
	DefaultPriority int
	// DefaultTimeoutMs holds the default value on creation for the "timeout_ms" field.
	DefaultTimeoutMs int64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// AlertSeverity defines the type for the "alert_severity" enum field.
type AlertSeverity string

// AlertSeverityMedium is the default value of the AlertSeverity enum.
const DefaultAlertSeverity = AlertSeverityMedium

// AlertSeverity values.
const (
	AlertSeverityCritical AlertSeverity = "critical"
	AlertSeverityHigh     AlertSeverity = "high"
	AlertSeverityMedium   AlertSeverity = "medium"
	AlertSeverityLow      AlertSeverity = "low"
)

func (as AlertSeverity) String() string {
	return string(as)
}

// AlertSeverityValidator is a validator for the "alert_severity" field enum values. It is called by the builders before save.
func AlertSeverityValidator(as AlertSeverity) error {
	switch as {
	case AlertSeverityCritical, AlertSeverityHigh, AlertSeverityMedium, AlertSeverityLow:
		return nil
	default:
		return fmt.Errorf("investigation: invalid enum value for alert_severity field: %q", as)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusQueued is the default value of the Status enum.
const DefaultStatus = StatusQueued

// Status values.
const (
	StatusQueued           Status = "queued"
	StatusPlanning         Status = "planning"
	StatusExecuting        Status = "executing"
	StatusAnalyzing        Status = "analyzing"
	StatusResponding       Status = "responding"
	StatusAwaitingApproval Status = "awaiting_approval"
	StatusPaused           Status = "paused"
	StatusComplete         Status = "complete"
	StatusRequiresReview   Status = "requires_review"
	StatusFailed           Status = "failed"
	StatusTimedOut         Status = "timed_out"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusQueued, StatusPlanning, StatusExecuting, StatusAnalyzing, StatusResponding, StatusAwaitingApproval, StatusPaused, StatusComplete, StatusRequiresReview, StatusFailed, StatusTimedOut:
		return nil
	default:
		return fmt.Errorf("investigation: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Investigation queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByAlertID orders the results by the alert_id field.
func ByAlertID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAlertID, opts...).ToFunc()
}

// ByCorrelationKey orders the results by the correlation_key field.
func ByCorrelationKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrelationKey, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByAlertTitle orders the results by the alert_title field.
func ByAlertTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAlertTitle, opts...).ToFunc()
}

// ByAlertSeverity orders the results by the alert_severity field.
func ByAlertSeverity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAlertSeverity, opts...).ToFunc()
}

// ByAlertSource orders the results by the alert_source field.
func ByAlertSource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAlertSource, opts...).ToFunc()
}

// ByAlertTimestamp orders the results by the alert_timestamp field.
func ByAlertTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAlertTimestamp, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByTimeoutMs orders the results by the timeout_ms field.
func ByTimeoutMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeoutMs, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByPodID orders the results by the pod_id field.
func ByPodID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPodID, opts...).ToFunc()
}

// ByLastHeartbeatAt orders the results by the last_heartbeat_at field.
func ByLastHeartbeatAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastHeartbeatAt, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByStepsCount orders the results by steps count.
func ByStepsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newStepsStep(), opts...)
	}
}

// BySteps orders the results by steps terms.
func BySteps(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStepsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByEvidenceCount orders the results by evidence count.
func ByEvidenceCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEvidenceStep(), opts...)
	}
}

// ByEvidence orders the results by evidence terms.
func ByEvidence(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEvidenceStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByFeedbackCount orders the results by feedback count.
func ByFeedbackCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newFeedbackStep(), opts...)
	}
}

// ByFeedback orders the results by feedback terms.
func ByFeedback(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFeedbackStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByApprovalsCount orders the results by approvals count.
func ByApprovalsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newApprovalsStep(), opts...)
	}
}

// ByApprovals orders the results by approvals terms.
func ByApprovals(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newApprovalsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByRunEventsCount orders the results by run_events count.
func ByRunEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRunEventsStep(), opts...)
	}
}

// ByRunEvents orders the results by run_events terms.
func ByRunEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRunEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newStepsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StepsInverseTable, PlanStepFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StepsTable, StepsColumn),
	)
}
func newEvidenceStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EvidenceInverseTable, EvidenceFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EvidenceTable, EvidenceColumn),
	)
}
func newFeedbackStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FeedbackInverseTable, FeedbackFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, FeedbackTable, FeedbackColumn),
	)
}
func newApprovalsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ApprovalsInverseTable, ApprovalRequestFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ApprovalsTable, ApprovalsColumn),
	)
}
func newRunEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RunEventsInverseTable, RunEventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RunEventsTable, RunEventsColumn),
	)
}
