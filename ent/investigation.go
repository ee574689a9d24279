// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/ent/investigation"
)

// Investigation is the model entity for the Investigation schema.
type Investigation struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// AlertID holds the value of the "alert_id" field.
	AlertID string `json:"alert_id,omitempty"`
	// Idempotency scope: (tenant_id, alert_id, correlation_key) is unique
	CorrelationKey string `json:"correlation_key,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID *string `json:"user_id,omitempty"`
	// AlertTitle holds the value of the "alert_title" field.
	AlertTitle string `json:"alert_title,omitempty"`
	// AlertSeverity holds the value of the "alert_severity" field.
	AlertSeverity investigation.AlertSeverity `json:"alert_severity,omitempty"`
	// AlertSource holds the value of the "alert_source" field.
	AlertSource string `json:"alert_source,omitempty"`
	// AlertTimestamp holds the value of the "alert_timestamp" field.
	AlertTimestamp *time.Time `json:"alert_timestamp,omitempty"`
	// AlertPayload holds the value of the "alert_payload" field.
	AlertPayload map[string]interface{} `json:"alert_payload,omitempty"`
	// AlertEntities holds the value of the "alert_entities" field.
	AlertEntities map[string][]string `json:"alert_entities,omitempty"`
	// 1..5, higher admitted first
	Priority int `json:"priority,omitempty"`
	// Status holds the value of the "status" field.
	Status investigation.Status `json:"status,omitempty"`
	// TimeoutMs holds the value of the "timeout_ms" field.
	TimeoutMs int64 `json:"timeout_ms,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// When admitted to the running set
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// classification, confidence, reasoning, limitations, recommendations
	Verdict map[string]interface{} `json:"verdict,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// ExecutionSummary holds the value of the "execution_summary" field.
	ExecutionSummary map[string]interface{} `json:"execution_summary,omitempty"`
	// Metadata holds the value of the "metadata" field.
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// For multi-replica coordination
	PodID *string `json:"pod_id,omitempty"`
	// For orphan detection
	LastHeartbeatAt *time.Time `json:"last_heartbeat_at,omitempty"`
	// Soft delete for retention policy
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the InvestigationQuery when eager-loading is set.
	Edges        InvestigationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// InvestigationEdges holds the relations/edges for other nodes in the graph.
type InvestigationEdges struct {
	// Steps holds the value of the steps edge.
	Steps []*PlanStep `json:"steps,omitempty"`
	// Evidence holds the value of the evidence edge.
	Evidence []*Evidence `json:"evidence,omitempty"`
	// Feedback holds the value of the feedback edge.
	Feedback []*Feedback `json:"feedback,omitempty"`
	// Approvals holds the value of the approvals edge.
	Approvals []*ApprovalRequest `json:"approvals,omitempty"`
	// RunEvents holds the value of the run_events edge.
	RunEvents []*RunEvent `json:"run_events,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [5]bool
}

// StepsOrErr returns the Steps value or an error if the edge
// was not loaded in eager-loading.
func (e InvestigationEdges) StepsOrErr() ([]*PlanStep, error) {
	if e.loadedTypes[0] {
		return e.Steps, nil
	}
	return nil, &NotLoadedError{edge: "steps"}
}

// EvidenceOrErr returns the Evidence value or an error if the edge
// was not loaded in eager-loading.
func (e InvestigationEdges) EvidenceOrErr() ([]*Evidence, error) {
	if e.loadedTypes[1] {
		return e.Evidence, nil
	}
	return nil, &NotLoadedError{edge: "evidence"}
}

// FeedbackOrErr returns the Feedback value or an error if the edge
// was not loaded in eager-loading.
func (e InvestigationEdges) FeedbackOrErr() ([]*Feedback, error) {
	if e.loadedTypes[2] {
		return e.Feedback, nil
	}
	return nil, &NotLoadedError{edge: "feedback"}
}

// ApprovalsOrErr returns the Approvals value or an error if the edge
// was not loaded in eager-loading.
func (e InvestigationEdges) ApprovalsOrErr() ([]*ApprovalRequest, error) {
	if e.loadedTypes[3] {
		return e.Approvals, nil
	}
	return nil, &NotLoadedError{edge: "approvals"}
}

// RunEventsOrErr returns the RunEvents value or an error if the edge
// was not loaded in eager-loading.
func (e InvestigationEdges) RunEventsOrErr() ([]*RunEvent, error) {
	if e.loadedTypes[4] {
		return e.RunEvents, nil
	}
	return nil, &NotLoadedError{edge: "run_events"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Investigation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case investigation.FieldAlertPayload, investigation.FieldAlertEntities, investigation.FieldVerdict, investigation.FieldExecutionSummary, investigation.FieldMetadata:
			values[i] = new([]byte)
		case investigation.FieldPriority, investigation.FieldTimeoutMs:
			values[i] = new(sql.NullInt64)
		case investigation.FieldID, investigation.FieldTenantID, investigation.FieldAlertID, investigation.FieldCorrelationKey, investigation.FieldUserID, investigation.FieldAlertTitle, investigation.FieldAlertSeverity, investigation.FieldAlertSource, investigation.FieldStatus, investigation.FieldErrorMessage, investigation.FieldPodID:
			values[i] = new(sql.NullString)
		case investigation.FieldAlertTimestamp, investigation.FieldCreatedAt, investigation.FieldStartedAt, investigation.FieldCompletedAt, investigation.FieldLastHeartbeatAt, investigation.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Investigation fields.
func (_m *Investigation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case investigation.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case investigation.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case investigation.FieldAlertID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field alert_id", values[i])
			} else if value.Valid {
				_m.AlertID = value.String
			}
		case investigation.FieldCorrelationKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field correlation_key", values[i])
			} else if value.Valid {
				_m.CorrelationKey = value.String
			}
		case investigation.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = new(string)
				*_m.UserID = value.String
			}
		case investigation.FieldAlertTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field alert_title", values[i])
			} else if value.Valid {
				_m.AlertTitle = value.String
			}
		case investigation.FieldAlertSeverity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field alert_severity", values[i])
			} else if value.Valid {
				_m.AlertSeverity = investigation.AlertSeverity(value.String)
			}
		case investigation.FieldAlertSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field alert_source", values[i])
			} else if value.Valid {
				_m.AlertSource = value.String
			}
		case investigation.FieldAlertTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field alert_timestamp", values[i])
			} else if value.Valid {
				_m.AlertTimestamp = new(time.Time)
				*_m.AlertTimestamp = value.Time
			}
		case investigation.FieldAlertPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field alert_payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AlertPayload); err != nil {
					return fmt.Errorf("unmarshal field alert_payload: %w", err)
				}
			}
		case investigation.FieldAlertEntities:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field alert_entities", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AlertEntities); err != nil {
					return fmt.Errorf("unmarshal field alert_entities: %w", err)
				}
			}
		case investigation.FieldPriority:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = int(value.Int64)
			}
		case investigation.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = investigation.Status(value.String)
			}
		case investigation.FieldTimeoutMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field timeout_ms", values[i])
			} else if value.Valid {
				_m.TimeoutMs = value.Int64
			}
		case investigation.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case investigation.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case investigation.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case investigation.FieldVerdict:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field verdict", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Verdict); err != nil {
					return fmt.Errorf("unmarshal field verdict: %w", err)
				}
			}
		case investigation.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case investigation.FieldExecutionSummary:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field execution_summary", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExecutionSummary); err != nil {
					return fmt.Errorf("unmarshal field execution_summary: %w", err)
				}
			}
		case investigation.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case investigation.FieldPodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pod_id", values[i])
			} else if value.Valid {
				_m.PodID = new(string)
				*_m.PodID = value.String
			}
		case investigation.FieldLastHeartbeatAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_heartbeat_at", values[i])
			} else if value.Valid {
				_m.LastHeartbeatAt = new(time.Time)
				*_m.LastHeartbeatAt = value.Time
			}
		case investigation.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Investigation.
// This includes values selected through modifiers, order, etc.
func (_m *Investigation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySteps queries the "steps" edge of the Investigation entity.
func (_m *Investigation) QuerySteps() *PlanStepQuery {
	return NewInvestigationClient(_m.config).QuerySteps(_m)
}

// QueryEvidence queries the "evidence" edge of the Investigation entity.
func (_m *Investigation) QueryEvidence() *EvidenceQuery {
	return NewInvestigationClient(_m.config).QueryEvidence(_m)
}

// QueryFeedback queries the "feedback" edge of the Investigation entity.
func (_m *Investigation) QueryFeedback() *FeedbackQuery {
	return NewInvestigationClient(_m.config).QueryFeedback(_m)
}

// QueryApprovals queries the "approvals" edge of the Investigation entity.
func (_m *Investigation) QueryApprovals() *ApprovalRequestQuery {
	return NewInvestigationClient(_m.config).QueryApprovals(_m)
}

// QueryRunEvents queries the "run_events" edge of the Investigation entity.
func (_m *Investigation) QueryRunEvents() *RunEventQuery {
	return NewInvestigationClient(_m.config).QueryRunEvents(_m)
}

// Update returns a builder for updating this Investigation.
// Note that you need to call Investigation.Unwrap() before calling this method if this Investigation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Investigation) Update() *InvestigationUpdateOne {
	return NewInvestigationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Investigation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Investigation) Unwrap() *Investigation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Investigation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Investigation) String() string {
	var builder strings.Builder
	builder.WriteString("Investigation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("alert_id=")
	builder.WriteString(_m.AlertID)
	builder.WriteString(", ")
	builder.WriteString("correlation_key=")
	builder.WriteString(_m.CorrelationKey)
	builder.WriteString(", ")
	if v := _m.UserID; v != nil {
		builder.WriteString("user_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("alert_title=")
	builder.WriteString(_m.AlertTitle)
	builder.WriteString(", ")
	builder.WriteString("alert_severity=")
	builder.WriteString(fmt.Sprintf("%v", _m.AlertSeverity))
	builder.WriteString(", ")
	builder.WriteString("alert_source=")
	builder.WriteString(_m.AlertSource)
	builder.WriteString(", ")
	if v := _m.AlertTimestamp; v != nil {
		builder.WriteString("alert_timestamp=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("alert_payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.AlertPayload))
	builder.WriteString(", ")
	builder.WriteString("alert_entities=")
	builder.WriteString(fmt.Sprintf("%v", _m.AlertEntities))
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("timeout_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeoutMs))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("verdict=")
	builder.WriteString(fmt.Sprintf("%v", _m.Verdict))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("execution_summary=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExecutionSummary))
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	if v := _m.PodID; v != nil {
		builder.WriteString("pod_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastHeartbeatAt; v != nil {
		builder.WriteString("last_heartbeat_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Investigations is a parsable slice of Investigation.
type Investigations []*Investigation
