// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/ent/approvalrequest"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/ent/evidence"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/ent/feedback"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/ent/investigation"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/ent/planstep"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/ent/predicate"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/ent/runevent"
)

// InvestigationUpdate is the builder for updating Investigation entities.
type InvestigationUpdate struct {
	config
	hooks    []Hook
	mutation *InvestigationMutation
}

// Where appends a list predicates to the InvestigationUpdate builder.
func (_u *InvestigationUpdate) Where(ps ...predicate.Investigation) *InvestigationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *InvestigationUpdate) SetUserID(v string) *InvestigationUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *InvestigationUpdate) SetNillableUserID(v *string) *InvestigationUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *InvestigationUpdate) ClearUserID() *InvestigationUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetAlertTitle sets the "alert_title" field.
func (_u *InvestigationUpdate) SetAlertTitle(v string) *InvestigationUpdate {
	_u.mutation.SetAlertTitle(v)
	return _u
}

// SetNillableAlertTitle sets the "alert_title" field if the given value is not nil.
func (_u *InvestigationUpdate) SetNillableAlertTitle(v *string) *InvestigationUpdate {
	if v != nil {
		_u.SetAlertTitle(*v)
	}
	return _u
}

// ClearAlertTitle clears the value of the "alert_title" field.
func (_u *InvestigationUpdate) ClearAlertTitle() *InvestigationUpdate {
	_u.mutation.ClearAlertTitle()
	return _u
}

// SetAlertSeverity sets the "alert_severity" field.
func (_u *InvestigationUpdate) SetAlertSeverity(v investigation.AlertSeverity) *InvestigationUpdate {
	_u.mutation.SetAlertSeverity(v)
	return _u
}

// SetNillableAlertSeverity sets the "alert_severity" field if the given value is not nil.
func (_u *InvestigationUpdate) SetNillableAlertSeverity(v *investigation.AlertSeverity) *InvestigationUpdate {
	if v != nil {
		_u.SetAlertSeverity(*v)
	}
	return _u
}

// SetAlertSource sets the "alert_source" field.
func (_u *InvestigationUpdate) SetAlertSource(v string) *InvestigationUpdate {
	_u.mutation.SetAlertSource(v)
	return _u
}

// SetNillableAlertSource sets the "alert_source" field if the given value is not nil.
func (_u *InvestigationUpdate) SetNillableAlertSource(v *string) *InvestigationUpdate {
	if v != nil {
		_u.SetAlertSource(*v)
	}
	return _u
}

// ClearAlertSource clears the value of the "alert_source" field.
func (_u *InvestigationUpdate) ClearAlertSource() *InvestigationUpdate {
	_u.mutation.ClearAlertSource()
	return _u
}

// SetAlertTimestamp sets the "alert_timestamp" field.
func (_u *InvestigationUpdate) SetAlertTimestamp(v time.Time) *InvestigationUpdate {
	_u.mutation.SetAlertTimestamp(v)
	return _u
}

// SetNillableAlertTimestamp sets the "alert_timestamp" field if the given value is not nil.
func (_u *InvestigationUpdate) SetNillableAlertTimestamp(v *time.Time) *InvestigationUpdate {
	if v != nil {
		_u.SetAlertTimestamp(*v)
	}
	return _u
}

// ClearAlertTimestamp clears the value of the "alert_timestamp" field.
func (_u *InvestigationUpdate) ClearAlertTimestamp() *InvestigationUpdate {
	_u.mutation.ClearAlertTimestamp()
	return _u
}

// SetAlertPayload sets the "alert_payload" field.
func (_u *InvestigationUpdate) SetAlertPayload(v map[string]interface{}) *InvestigationUpdate {
	_u.mutation.SetAlertPayload(v)
	return _u
}

// ClearAlertPayload clears the value of the "alert_payload" field.
func (_u *InvestigationUpdate) ClearAlertPayload() *InvestigationUpdate {
	_u.mutation.ClearAlertPayload()
	return _u
}

// SetAlertEntities sets the "alert_entities" field.
func (_u *InvestigationUpdate) SetAlertEntities(v map[string][]string) *InvestigationUpdate {
	_u.mutation.SetAlertEntities(v)
	return _u
}

// ClearAlertEntities clears the value of the "alert_entities" field.
func (_u *InvestigationUpdate) ClearAlertEntities() *InvestigationUpdate {
	_u.mutation.ClearAlertEntities()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *InvestigationUpdate) SetPriority(v int) *InvestigationUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *InvestigationUpdate) SetNillablePriority(v *int) *InvestigationUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *InvestigationUpdate) AddPriority(v int) *InvestigationUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *InvestigationUpdate) SetStatus(v investigation.Status) *InvestigationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InvestigationUpdate) SetNillableStatus(v *investigation.Status) *InvestigationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTimeoutMs sets the "timeout_ms" field.
func (_u *InvestigationUpdate) SetTimeoutMs(v int64) *InvestigationUpdate {
	_u.mutation.ResetTimeoutMs()
	_u.mutation.SetTimeoutMs(v)
	return _u
}

// SetNillableTimeoutMs sets the "timeout_ms" field if the given value is not nil.
func (_u *InvestigationUpdate) SetNillableTimeoutMs(v *int64) *InvestigationUpdate {
	if v != nil {
		_u.SetTimeoutMs(*v)
	}
	return _u
}

// AddTimeoutMs adds value to the "timeout_ms" field.
func (_u *InvestigationUpdate) AddTimeoutMs(v int64) *InvestigationUpdate {
	_u.mutation.AddTimeoutMs(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *InvestigationUpdate) SetStartedAt(v time.Time) *InvestigationUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *InvestigationUpdate) SetNillableStartedAt(v *time.Time) *InvestigationUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *InvestigationUpdate) ClearStartedAt() *InvestigationUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *InvestigationUpdate) SetCompletedAt(v time.Time) *InvestigationUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *InvestigationUpdate) SetNillableCompletedAt(v *time.Time) *InvestigationUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *InvestigationUpdate) ClearCompletedAt() *InvestigationUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetVerdict sets the "verdict" field.
func (_u *InvestigationUpdate) SetVerdict(v map[string]interface{}) *InvestigationUpdate {
	_u.mutation.SetVerdict(v)
	return _u
}

// ClearVerdict clears the value of the "verdict" field.
func (_u *InvestigationUpdate) ClearVerdict() *InvestigationUpdate {
	_u.mutation.ClearVerdict()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *InvestigationUpdate) SetErrorMessage(v string) *InvestigationUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *InvestigationUpdate) SetNillableErrorMessage(v *string) *InvestigationUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *InvestigationUpdate) ClearErrorMessage() *InvestigationUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetExecutionSummary sets the "execution_summary" field.
func (_u *InvestigationUpdate) SetExecutionSummary(v map[string]interface{}) *InvestigationUpdate {
	_u.mutation.SetExecutionSummary(v)
	return _u
}

// ClearExecutionSummary clears the value of the "execution_summary" field.
func (_u *InvestigationUpdate) ClearExecutionSummary() *InvestigationUpdate {
	_u.mutation.ClearExecutionSummary()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *InvestigationUpdate) SetMetadata(v map[string]interface{}) *InvestigationUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *InvestigationUpdate) ClearMetadata() *InvestigationUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *InvestigationUpdate) SetPodID(v string) *InvestigationUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *InvestigationUpdate) SetNillablePodID(v *string) *InvestigationUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *InvestigationUpdate) ClearPodID() *InvestigationUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *InvestigationUpdate) SetLastHeartbeatAt(v time.Time) *InvestigationUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *InvestigationUpdate) SetNillableLastHeartbeatAt(v *time.Time) *InvestigationUpdate {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *InvestigationUpdate) ClearLastHeartbeatAt() *InvestigationUpdate {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *InvestigationUpdate) SetDeletedAt(v time.Time) *InvestigationUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *InvestigationUpdate) SetNillableDeletedAt(v *time.Time) *InvestigationUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *InvestigationUpdate) ClearDeletedAt() *InvestigationUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddStepIDs adds the "steps" edge to the PlanStep entity by IDs.
func (_u *InvestigationUpdate) AddStepIDs(ids ...string) *InvestigationUpdate {
	_u.mutation.AddStepIDs(ids...)
	return _u
}

// AddSteps adds the "steps" edges to the PlanStep entity.
func (_u *InvestigationUpdate) AddSteps(v ...*PlanStep) *InvestigationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepIDs(ids...)
}

// AddEvidenceIDs adds the "evidence" edge to the Evidence entity by IDs.
func (_u *InvestigationUpdate) AddEvidenceIDs(ids ...string) *InvestigationUpdate {
	_u.mutation.AddEvidenceIDs(ids...)
	return _u
}

// AddEvidence adds the "evidence" edges to the Evidence entity.
func (_u *InvestigationUpdate) AddEvidence(v ...*Evidence) *InvestigationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEvidenceIDs(ids...)
}

// AddFeedbackIDs adds the "feedback" edge to the Feedback entity by IDs.
func (_u *InvestigationUpdate) AddFeedbackIDs(ids ...string) *InvestigationUpdate {
	_u.mutation.AddFeedbackIDs(ids...)
	return _u
}

// AddFeedback adds the "feedback" edges to the Feedback entity.
func (_u *InvestigationUpdate) AddFeedback(v ...*Feedback) *InvestigationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFeedbackIDs(ids...)
}

// AddApprovalIDs adds the "approvals" edge to the ApprovalRequest entity by IDs.
func (_u *InvestigationUpdate) AddApprovalIDs(ids ...string) *InvestigationUpdate {
	_u.mutation.AddApprovalIDs(ids...)
	return _u
}

// AddApprovals adds the "approvals" edges to the ApprovalRequest entity.
func (_u *InvestigationUpdate) AddApprovals(v ...*ApprovalRequest) *InvestigationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddApprovalIDs(ids...)
}

// AddRunEventIDs adds the "run_events" edge to the RunEvent entity by IDs.
func (_u *InvestigationUpdate) AddRunEventIDs(ids ...int) *InvestigationUpdate {
	_u.mutation.AddRunEventIDs(ids...)
	return _u
}

// AddRunEvents adds the "run_events" edges to the RunEvent entity.
func (_u *InvestigationUpdate) AddRunEvents(v ...*RunEvent) *InvestigationUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRunEventIDs(ids...)
}

// Mutation returns the InvestigationMutation object of the builder.
func (_u *InvestigationUpdate) Mutation() *InvestigationMutation {
	return _u.mutation
}

// ClearSteps clears all "steps" edges to the PlanStep entity.
func (_u *InvestigationUpdate) ClearSteps() *InvestigationUpdate {
	_u.mutation.ClearSteps()
	return _u
}

// RemoveStepIDs removes the "steps" edge to PlanStep entities by IDs.
func (_u *InvestigationUpdate) RemoveStepIDs(ids ...string) *InvestigationUpdate {
	_u.mutation.RemoveStepIDs(ids...)
	return _u
}

// RemoveSteps removes "steps" edges to PlanStep entities.
func (_u *InvestigationUpdate) RemoveSteps(v ...*PlanStep) *InvestigationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepIDs(ids...)
}

// ClearEvidence clears all "evidence" edges to the Evidence entity.
func (_u *InvestigationUpdate) ClearEvidence() *InvestigationUpdate {
	_u.mutation.ClearEvidence()
	return _u
}

// RemoveEvidenceIDs removes the "evidence" edge to Evidence entities by IDs.
func (_u *InvestigationUpdate) RemoveEvidenceIDs(ids ...string) *InvestigationUpdate {
	_u.mutation.RemoveEvidenceIDs(ids...)
	return _u
}

// RemoveEvidence removes "evidence" edges to Evidence entities.
func (_u *InvestigationUpdate) RemoveEvidence(v ...*Evidence) *InvestigationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEvidenceIDs(ids...)
}

// ClearFeedback clears all "feedback" edges to the Feedback entity.
func (_u *InvestigationUpdate) ClearFeedback() *InvestigationUpdate {
	_u.mutation.ClearFeedback()
	return _u
}

// RemoveFeedbackIDs removes the "feedback" edge to Feedback entities by IDs.
func (_u *InvestigationUpdate) RemoveFeedbackIDs(ids ...string) *InvestigationUpdate {
	_u.mutation.RemoveFeedbackIDs(ids...)
	return _u
}

// RemoveFeedback removes "feedback" edges to Feedback entities.
func (_u *InvestigationUpdate) RemoveFeedback(v ...*Feedback) *InvestigationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFeedbackIDs(ids...)
}

// ClearApprovals clears all "approvals" edges to the ApprovalRequest entity.
func (_u *InvestigationUpdate) ClearApprovals() *InvestigationUpdate {
	_u.mutation.ClearApprovals()
	return _u
}

// RemoveApprovalIDs removes the "approvals" edge to ApprovalRequest entities by IDs.
func (_u *InvestigationUpdate) RemoveApprovalIDs(ids ...string) *InvestigationUpdate {
	_u.mutation.RemoveApprovalIDs(ids...)
	return _u
}

// RemoveApprovals removes "approvals" edges to ApprovalRequest entities.
func (_u *InvestigationUpdate) RemoveApprovals(v ...*ApprovalRequest) *InvestigationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveApprovalIDs(ids...)
}

// ClearRunEvents clears all "run_events" edges to the RunEvent entity.
func (_u *InvestigationUpdate) ClearRunEvents() *InvestigationUpdate {
	_u.mutation.ClearRunEvents()
	return _u
}

// RemoveRunEventIDs removes the "run_events" edge to RunEvent entities by IDs.
func (_u *InvestigationUpdate) RemoveRunEventIDs(ids ...int) *InvestigationUpdate {
	_u.mutation.RemoveRunEventIDs(ids...)
	return _u
}

// RemoveRunEvents removes "run_events" edges to RunEvent entities.
func (_u *InvestigationUpdate) RemoveRunEvents(v ...*RunEvent) *InvestigationUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRunEventIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InvestigationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvestigationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InvestigationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvestigationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvestigationUpdate) check() error {
	if v, ok := _u.mutation.AlertSeverity(); ok {
		if err := investigation.AlertSeverityValidator(v); err != nil {
			return &ValidationError{Name: "alert_severity", err: fmt.Errorf(`ent: validator failed for field "Investigation.alert_severity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := investigation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Investigation.status": %w`, err)}
		}
	}
	return nil
}

func (_u *InvestigationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(investigation.Table, investigation.Columns, sqlgraph.NewFieldSpec(investigation.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(investigation.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(investigation.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.AlertTitle(); ok {
		_spec.SetField(investigation.FieldAlertTitle, field.TypeString, value)
	}
	if _u.mutation.AlertTitleCleared() {
		_spec.ClearField(investigation.FieldAlertTitle, field.TypeString)
	}
	if value, ok := _u.mutation.AlertSeverity(); ok {
		_spec.SetField(investigation.FieldAlertSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AlertSource(); ok {
		_spec.SetField(investigation.FieldAlertSource, field.TypeString, value)
	}
	if _u.mutation.AlertSourceCleared() {
		_spec.ClearField(investigation.FieldAlertSource, field.TypeString)
	}
	if value, ok := _u.mutation.AlertTimestamp(); ok {
		_spec.SetField(investigation.FieldAlertTimestamp, field.TypeTime, value)
	}
	if _u.mutation.AlertTimestampCleared() {
		_spec.ClearField(investigation.FieldAlertTimestamp, field.TypeTime)
	}
	if value, ok := _u.mutation.AlertPayload(); ok {
		_spec.SetField(investigation.FieldAlertPayload, field.TypeJSON, value)
	}
	if _u.mutation.AlertPayloadCleared() {
		_spec.ClearField(investigation.FieldAlertPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.AlertEntities(); ok {
		_spec.SetField(investigation.FieldAlertEntities, field.TypeJSON, value)
	}
	if _u.mutation.AlertEntitiesCleared() {
		_spec.ClearField(investigation.FieldAlertEntities, field.TypeJSON)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(investigation.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(investigation.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(investigation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TimeoutMs(); ok {
		_spec.SetField(investigation.FieldTimeoutMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTimeoutMs(); ok {
		_spec.AddField(investigation.FieldTimeoutMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(investigation.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(investigation.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(investigation.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(investigation.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Verdict(); ok {
		_spec.SetField(investigation.FieldVerdict, field.TypeJSON, value)
	}
	if _u.mutation.VerdictCleared() {
		_spec.ClearField(investigation.FieldVerdict, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(investigation.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(investigation.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ExecutionSummary(); ok {
		_spec.SetField(investigation.FieldExecutionSummary, field.TypeJSON, value)
	}
	if _u.mutation.ExecutionSummaryCleared() {
		_spec.ClearField(investigation.FieldExecutionSummary, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(investigation.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(investigation.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(investigation.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(investigation.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(investigation.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(investigation.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(investigation.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(investigation.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigation.StepsTable,
			Columns: []string{investigation.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(planstep.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepsIDs(); len(nodes) > 0 && !_u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigation.StepsTable,
			Columns: []string{investigation.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(planstep.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigation.StepsTable,
			Columns: []string{investigation.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(planstep.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EvidenceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigation.EvidenceTable,
			Columns: []string{investigation.EvidenceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evidence.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEvidenceIDs(); len(nodes) > 0 && !_u.mutation.EvidenceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigation.EvidenceTable,
			Columns: []string{investigation.EvidenceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evidence.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EvidenceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigation.EvidenceTable,
			Columns: []string{investigation.EvidenceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evidence.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FeedbackCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigation.FeedbackTable,
			Columns: []string{investigation.FeedbackColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(feedback.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFeedbackIDs(); len(nodes) > 0 && !_u.mutation.FeedbackCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigation.FeedbackTable,
			Columns: []string{investigation.FeedbackColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(feedback.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FeedbackIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigation.FeedbackTable,
			Columns: []string{investigation.FeedbackColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(feedback.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ApprovalsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigation.ApprovalsTable,
			Columns: []string{investigation.ApprovalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(approvalrequest.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedApprovalsIDs(); len(nodes) > 0 && !_u.mutation.ApprovalsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigation.ApprovalsTable,
			Columns: []string{investigation.ApprovalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(approvalrequest.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ApprovalsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigation.ApprovalsTable,
			Columns: []string{investigation.ApprovalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(approvalrequest.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RunEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigation.RunEventsTable,
			Columns: []string{investigation.RunEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runevent.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRunEventsIDs(); len(nodes) > 0 && !_u.mutation.RunEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigation.RunEventsTable,
			Columns: []string{investigation.RunEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunEventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigation.RunEventsTable,
			Columns: []string{investigation.RunEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{investigation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InvestigationUpdateOne is the builder for updating a single Investigation entity.
type InvestigationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InvestigationMutation
}

// SetUserID sets the "user_id" field.
func (_u *InvestigationUpdateOne) SetUserID(v string) *InvestigationUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *InvestigationUpdateOne) SetNillableUserID(v *string) *InvestigationUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *InvestigationUpdateOne) ClearUserID() *InvestigationUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetAlertTitle sets the "alert_title" field.
func (_u *InvestigationUpdateOne) SetAlertTitle(v string) *InvestigationUpdateOne {
	_u.mutation.SetAlertTitle(v)
	return _u
}

// SetNillableAlertTitle sets the "alert_title" field if the given value is not nil.
func (_u *InvestigationUpdateOne) SetNillableAlertTitle(v *string) *InvestigationUpdateOne {
	if v != nil {
		_u.SetAlertTitle(*v)
	}
	return _u
}

// ClearAlertTitle clears the value of the "alert_title" field.
func (_u *InvestigationUpdateOne) ClearAlertTitle() *InvestigationUpdateOne {
	_u.mutation.ClearAlertTitle()
	return _u
}

// SetAlertSeverity sets the "alert_severity" field.
func (_u *InvestigationUpdateOne) SetAlertSeverity(v investigation.AlertSeverity) *InvestigationUpdateOne {
	_u.mutation.SetAlertSeverity(v)
	return _u
}

// SetNillableAlertSeverity sets the "alert_severity" field if the given value is not nil.
func (_u *InvestigationUpdateOne) SetNillableAlertSeverity(v *investigation.AlertSeverity) *InvestigationUpdateOne {
	if v != nil {
		_u.SetAlertSeverity(*v)
	}
	return _u
}

// SetAlertSource sets the "alert_source" field.
func (_u *InvestigationUpdateOne) SetAlertSource(v string) *InvestigationUpdateOne {
	_u.mutation.SetAlertSource(v)
	return _u
}

// SetNillableAlertSource sets the "alert_source" field if the given value is not nil.
func (_u *InvestigationUpdateOne) SetNillableAlertSource(v *string) *InvestigationUpdateOne {
	if v != nil {
		_u.SetAlertSource(*v)
	}
	return _u
}

// ClearAlertSource clears the value of the "alert_source" field.
func (_u *InvestigationUpdateOne) ClearAlertSource() *InvestigationUpdateOne {
	_u.mutation.ClearAlertSource()
	return _u
}

// SetAlertTimestamp sets the "alert_timestamp" field.
func (_u *InvestigationUpdateOne) SetAlertTimestamp(v time.Time) *InvestigationUpdateOne {
	_u.mutation.SetAlertTimestamp(v)
	return _u
}

// SetNillableAlertTimestamp sets the "alert_timestamp" field if the given value is not nil.
func (_u *InvestigationUpdateOne) SetNillableAlertTimestamp(v *time.Time) *InvestigationUpdateOne {
	if v != nil {
		_u.SetAlertTimestamp(*v)
	}
	return _u
}

// ClearAlertTimestamp clears the value of the "alert_timestamp" field.
func (_u *InvestigationUpdateOne) ClearAlertTimestamp() *InvestigationUpdateOne {
	_u.mutation.ClearAlertTimestamp()
	return _u
}

// SetAlertPayload sets the "alert_payload" field.
func (_u *InvestigationUpdateOne) SetAlertPayload(v map[string]interface{}) *InvestigationUpdateOne {
	_u.mutation.SetAlertPayload(v)
	return _u
}

// ClearAlertPayload clears the value of the "alert_payload" field.
func (_u *InvestigationUpdateOne) ClearAlertPayload() *InvestigationUpdateOne {
	_u.mutation.ClearAlertPayload()
	return _u
}

// SetAlertEntities sets the "alert_entities" field.
func (_u *InvestigationUpdateOne) SetAlertEntities(v map[string][]string) *InvestigationUpdateOne {
	_u.mutation.SetAlertEntities(v)
	return _u
}

// ClearAlertEntities clears the value of the "alert_entities" field.
func (_u *InvestigationUpdateOne) ClearAlertEntities() *InvestigationUpdateOne {
	_u.mutation.ClearAlertEntities()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *InvestigationUpdateOne) SetPriority(v int) *InvestigationUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *InvestigationUpdateOne) SetNillablePriority(v *int) *InvestigationUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *InvestigationUpdateOne) AddPriority(v int) *InvestigationUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *InvestigationUpdateOne) SetStatus(v investigation.Status) *InvestigationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InvestigationUpdateOne) SetNillableStatus(v *investigation.Status) *InvestigationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTimeoutMs sets the "timeout_ms" field.
func (_u *InvestigationUpdateOne) SetTimeoutMs(v int64) *InvestigationUpdateOne {
	_u.mutation.ResetTimeoutMs()
	_u.mutation.SetTimeoutMs(v)
	return _u
}

// SetNillableTimeoutMs sets the "timeout_ms" field if the given value is not nil.
func (_u *InvestigationUpdateOne) SetNillableTimeoutMs(v *int64) *InvestigationUpdateOne {
	if v != nil {
		_u.SetTimeoutMs(*v)
	}
	return _u
}

// AddTimeoutMs adds value to the "timeout_ms" field.
func (_u *InvestigationUpdateOne) AddTimeoutMs(v int64) *InvestigationUpdateOne {
	_u.mutation.AddTimeoutMs(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *InvestigationUpdateOne) SetStartedAt(v time.Time) *InvestigationUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *InvestigationUpdateOne) SetNillableStartedAt(v *time.Time) *InvestigationUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *InvestigationUpdateOne) ClearStartedAt() *InvestigationUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *InvestigationUpdateOne) SetCompletedAt(v time.Time) *InvestigationUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *InvestigationUpdateOne) SetNillableCompletedAt(v *time.Time) *InvestigationUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *InvestigationUpdateOne) ClearCompletedAt() *InvestigationUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetVerdict sets the "verdict" field.
func (_u *InvestigationUpdateOne) SetVerdict(v map[string]interface{}) *InvestigationUpdateOne {
	_u.mutation.SetVerdict(v)
	return _u
}

// ClearVerdict clears the value of the "verdict" field.
func (_u *InvestigationUpdateOne) ClearVerdict() *InvestigationUpdateOne {
	_u.mutation.ClearVerdict()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *InvestigationUpdateOne) SetErrorMessage(v string) *InvestigationUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *InvestigationUpdateOne) SetNillableErrorMessage(v *string) *InvestigationUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *InvestigationUpdateOne) ClearErrorMessage() *InvestigationUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetExecutionSummary sets the "execution_summary" field.
func (_u *InvestigationUpdateOne) SetExecutionSummary(v map[string]interface{}) *InvestigationUpdateOne {
	_u.mutation.SetExecutionSummary(v)
	return _u
}

// ClearExecutionSummary clears the value of the "execution_summary" field.
func (_u *InvestigationUpdateOne) ClearExecutionSummary() *InvestigationUpdateOne {
	_u.mutation.ClearExecutionSummary()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *InvestigationUpdateOne) SetMetadata(v map[string]interface{}) *InvestigationUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *InvestigationUpdateOne) ClearMetadata() *InvestigationUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *InvestigationUpdateOne) SetPodID(v string) *InvestigationUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *InvestigationUpdateOne) SetNillablePodID(v *string) *InvestigationUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *InvestigationUpdateOne) ClearPodID() *InvestigationUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *InvestigationUpdateOne) SetLastHeartbeatAt(v time.Time) *InvestigationUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *InvestigationUpdateOne) SetNillableLastHeartbeatAt(v *time.Time) *InvestigationUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *InvestigationUpdateOne) ClearLastHeartbeatAt() *InvestigationUpdateOne {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *InvestigationUpdateOne) SetDeletedAt(v time.Time) *InvestigationUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *InvestigationUpdateOne) SetNillableDeletedAt(v *time.Time) *InvestigationUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *InvestigationUpdateOne) ClearDeletedAt() *InvestigationUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddStepIDs adds the "steps" edge to the PlanStep entity by IDs.
func (_u *InvestigationUpdateOne) AddStepIDs(ids ...string) *InvestigationUpdateOne {
	_u.mutation.AddStepIDs(ids...)
	return _u
}

// AddSteps adds the "steps" edges to the PlanStep entity.
func (_u *InvestigationUpdateOne) AddSteps(v ...*PlanStep) *InvestigationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepIDs(ids...)
}

// AddEvidenceIDs adds the "evidence" edge to the Evidence entity by IDs.
func (_u *InvestigationUpdateOne) AddEvidenceIDs(ids ...string) *InvestigationUpdateOne {
	_u.mutation.AddEvidenceIDs(ids...)
	return _u
}

// AddEvidence adds the "evidence" edges to the Evidence entity.
func (_u *InvestigationUpdateOne) AddEvidence(v ...*Evidence) *InvestigationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEvidenceIDs(ids...)
}

// AddFeedbackIDs adds the "feedback" edge to the Feedback entity by IDs.
func (_u *InvestigationUpdateOne) AddFeedbackIDs(ids ...string) *InvestigationUpdateOne {
	_u.mutation.AddFeedbackIDs(ids...)
	return _u
}

// AddFeedback adds the "feedback" edges to the Feedback entity.
func (_u *InvestigationUpdateOne) AddFeedback(v ...*Feedback) *InvestigationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFeedbackIDs(ids...)
}

// AddApprovalIDs adds the "approvals" edge to the ApprovalRequest entity by IDs.
func (_u *InvestigationUpdateOne) AddApprovalIDs(ids ...string) *InvestigationUpdateOne {
	_u.mutation.AddApprovalIDs(ids...)
	return _u
}

// AddApprovals adds the "approvals" edges to the ApprovalRequest entity.
func (_u *InvestigationUpdateOne) AddApprovals(v ...*ApprovalRequest) *InvestigationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddApprovalIDs(ids...)
}

// AddRunEventIDs adds the "run_events" edge to the RunEvent entity by IDs.
func (_u *InvestigationUpdateOne) AddRunEventIDs(ids ...int) *InvestigationUpdateOne {
	_u.mutation.AddRunEventIDs(ids...)
	return _u
}

// AddRunEvents adds the "run_events" edges to the RunEvent entity.
func (_u *InvestigationUpdateOne) AddRunEvents(v ...*RunEvent) *InvestigationUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRunEventIDs(ids...)
}

// Mutation returns the InvestigationMutation object of the builder.
func (_u *InvestigationUpdateOne) Mutation() *InvestigationMutation {
	return _u.mutation
}

// ClearSteps clears all "steps" edges to the PlanStep entity.
func (_u *InvestigationUpdateOne) ClearSteps() *InvestigationUpdateOne {
	_u.mutation.ClearSteps()
	return _u
}

// RemoveStepIDs removes the "steps" edge to PlanStep entities by IDs.
func (_u *InvestigationUpdateOne) RemoveStepIDs(ids ...string) *InvestigationUpdateOne {
	_u.mutation.RemoveStepIDs(ids...)
	return _u
}

// RemoveSteps removes "steps" edges to PlanStep entities.
func (_u *InvestigationUpdateOne) RemoveSteps(v ...*PlanStep) *InvestigationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepIDs(ids...)
}

// ClearEvidence clears all "evidence" edges to the Evidence entity.
func (_u *InvestigationUpdateOne) ClearEvidence() *InvestigationUpdateOne {
	_u.mutation.ClearEvidence()
	return _u
}

// RemoveEvidenceIDs removes the "evidence" edge to Evidence entities by IDs.
func (_u *InvestigationUpdateOne) RemoveEvidenceIDs(ids ...string) *InvestigationUpdateOne {
	_u.mutation.RemoveEvidenceIDs(ids...)
	return _u
}

// RemoveEvidence removes "evidence" edges to Evidence entities.
func (_u *InvestigationUpdateOne) RemoveEvidence(v ...*Evidence) *InvestigationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEvidenceIDs(ids...)
}

// ClearFeedback clears all "feedback" edges to the Feedback entity.
func (_u *InvestigationUpdateOne) ClearFeedback() *InvestigationUpdateOne {
	_u.mutation.ClearFeedback()
	return _u
}

// RemoveFeedbackIDs removes the "feedback" edge to Feedback entities by IDs.
func (_u *InvestigationUpdateOne) RemoveFeedbackIDs(ids ...string) *InvestigationUpdateOne {
	_u.mutation.RemoveFeedbackIDs(ids...)
	return _u
}

// RemoveFeedback removes "feedback" edges to Feedback entities.
func (_u *InvestigationUpdateOne) RemoveFeedback(v ...*Feedback) *InvestigationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFeedbackIDs(ids...)
}

// ClearApprovals clears all "approvals" edges to the ApprovalRequest entity.
func (_u *InvestigationUpdateOne) ClearApprovals() *InvestigationUpdateOne {
	_u.mutation.ClearApprovals()
	return _u
}

// RemoveApprovalIDs removes the "approvals" edge to ApprovalRequest entities by IDs.
func (_u *InvestigationUpdateOne) RemoveApprovalIDs(ids ...string) *InvestigationUpdateOne {
	_u.mutation.RemoveApprovalIDs(ids...)
	return _u
}

// RemoveApprovals removes "approvals" edges to ApprovalRequest entities.
func (_u *InvestigationUpdateOne) RemoveApprovals(v ...*ApprovalRequest) *InvestigationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveApprovalIDs(ids...)
}

// ClearRunEvents clears all "run_events" edges to the RunEvent entity.
func (_u *InvestigationUpdateOne) ClearRunEvents() *InvestigationUpdateOne {
	_u.mutation.ClearRunEvents()
	return _u
}

// RemoveRunEventIDs removes the "run_events" edge to RunEvent entities by IDs.
func (_u *InvestigationUpdateOne) RemoveRunEventIDs(ids ...int) *InvestigationUpdateOne {
	_u.mutation.RemoveRunEventIDs(ids...)
	return _u
}

// RemoveRunEvents removes "run_events" edges to RunEvent entities.
func (_u *InvestigationUpdateOne) RemoveRunEvents(v ...*RunEvent) *InvestigationUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRunEventIDs(ids...)
}

// Where appends a list predicates to the InvestigationUpdate builder.
func (_u *InvestigationUpdateOne) Where(ps ...predicate.Investigation) *InvestigationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InvestigationUpdateOne) Select(field string, fields ...string) *InvestigationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Investigation entity.
func (_u *InvestigationUpdateOne) Save(ctx context.Context) (*Investigation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvestigationUpdateOne) SaveX(ctx context.Context) *Investigation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InvestigationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvestigationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvestigationUpdateOne) check() error {
	if v, ok := _u.mutation.AlertSeverity(); ok {
		if err := investigation.AlertSeverityValidator(v); err != nil {
			return &ValidationError{Name: "alert_severity", err: fmt.Errorf(`ent: validator failed for field "Investigation.alert_severity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := investigation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Investigation.status": %w`, err)}
		}
	}
	return nil
}

func (_u *InvestigationUpdateOne) sqlSave(ctx context.Context) (_node *Investigation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(investigation.Table, investigation.Columns, sqlgraph.NewFieldSpec(investigation.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Investigation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, investigation.FieldID)
		for _, f := range fields {
			if !investigation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != investigation.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(investigation.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(investigation.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.AlertTitle(); ok {
		_spec.SetField(investigation.FieldAlertTitle, field.TypeString, value)
	}
	if _u.mutation.AlertTitleCleared() {
		_spec.ClearField(investigation.FieldAlertTitle, field.TypeString)
	}
	if value, ok := _u.mutation.AlertSeverity(); ok {
		_spec.SetField(investigation.FieldAlertSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AlertSource(); ok {
		_spec.SetField(investigation.FieldAlertSource, field.TypeString, value)
	}
	if _u.mutation.AlertSourceCleared() {
		_spec.ClearField(investigation.FieldAlertSource, field.TypeString)
	}
	if value, ok := _u.mutation.AlertTimestamp(); ok {
		_spec.SetField(investigation.FieldAlertTimestamp, field.TypeTime, value)
	}
	if _u.mutation.AlertTimestampCleared() {
		_spec.ClearField(investigation.FieldAlertTimestamp, field.TypeTime)
	}
	if value, ok := _u.mutation.AlertPayload(); ok {
		_spec.SetField(investigation.FieldAlertPayload, field.TypeJSON, value)
	}
	if _u.mutation.AlertPayloadCleared() {
		_spec.ClearField(investigation.FieldAlertPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.AlertEntities(); ok {
		_spec.SetField(investigation.FieldAlertEntities, field.TypeJSON, value)
	}
	if _u.mutation.AlertEntitiesCleared() {
		_spec.ClearField(investigation.FieldAlertEntities, field.TypeJSON)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(investigation.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(investigation.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(investigation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TimeoutMs(); ok {
		_spec.SetField(investigation.FieldTimeoutMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTimeoutMs(); ok {
		_spec.AddField(investigation.FieldTimeoutMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(investigation.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(investigation.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(investigation.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(investigation.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Verdict(); ok {
		_spec.SetField(investigation.FieldVerdict, field.TypeJSON, value)
	}
	if _u.mutation.VerdictCleared() {
		_spec.ClearField(investigation.FieldVerdict, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(investigation.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(investigation.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ExecutionSummary(); ok {
		_spec.SetField(investigation.FieldExecutionSummary, field.TypeJSON, value)
	}
	if _u.mutation.ExecutionSummaryCleared() {
		_spec.ClearField(investigation.FieldExecutionSummary, field.TypeJSON)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(investigation.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(investigation.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(investigation.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(investigation.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(investigation.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(investigation.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(investigation.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(investigation.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigation.StepsTable,
			Columns: []string{investigation.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(planstep.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepsIDs(); len(nodes) > 0 && !_u.mutation.StepsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigation.StepsTable,
			Columns: []string{investigation.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(planstep.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigation.StepsTable,
			Columns: []string{investigation.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(planstep.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EvidenceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigation.EvidenceTable,
			Columns: []string{investigation.EvidenceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evidence.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEvidenceIDs(); len(nodes) > 0 && !_u.mutation.EvidenceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigation.EvidenceTable,
			Columns: []string{investigation.EvidenceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evidence.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EvidenceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigation.EvidenceTable,
			Columns: []string{investigation.EvidenceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evidence.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FeedbackCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigation.FeedbackTable,
			Columns: []string{investigation.FeedbackColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(feedback.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFeedbackIDs(); len(nodes) > 0 && !_u.mutation.FeedbackCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigation.FeedbackTable,
			Columns: []string{investigation.FeedbackColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(feedback.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FeedbackIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigation.FeedbackTable,
			Columns: []string{investigation.FeedbackColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(feedback.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ApprovalsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigation.ApprovalsTable,
			Columns: []string{investigation.ApprovalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(approvalrequest.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedApprovalsIDs(); len(nodes) > 0 && !_u.mutation.ApprovalsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigation.ApprovalsTable,
			Columns: []string{investigation.ApprovalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(approvalrequest.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ApprovalsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigation.ApprovalsTable,
			Columns: []string{investigation.ApprovalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(approvalrequest.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RunEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigation.RunEventsTable,
			Columns: []string{investigation.RunEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runevent.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRunEventsIDs(); len(nodes) > 0 && !_u.mutation.RunEventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigation.RunEventsTable,
			Columns: []string{investigation.RunEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunEventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigation.RunEventsTable,
			Columns: []string{investigation.RunEventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(runevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Investigation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{investigation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
