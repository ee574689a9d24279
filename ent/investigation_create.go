// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/ent/approvalrequest"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/ent/evidence"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/ent/feedback"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/ent/investigation"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/ent/planstep"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/ent/runevent"
)

// InvestigationCreate is the builder for creating a Investigation entity.
type InvestigationCreate struct {
	config
	mutation *InvestigationMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *InvestigationCreate) SetTenantID(v string) *InvestigationCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetAlertID sets the "alert_id" field.
func (_c *InvestigationCreate) SetAlertID(v string) *InvestigationCreate {
	_c.mutation.SetAlertID(v)
	return _c
}

// SetCorrelationKey sets the "correlation_key" field.
func (_c *InvestigationCreate) SetCorrelationKey(v string) *InvestigationCreate {
	_c.mutation.SetCorrelationKey(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *InvestigationCreate) SetUserID(v string) *InvestigationCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *InvestigationCreate) SetNillableUserID(v *string) *InvestigationCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetAlertTitle sets the "alert_title" field.
func (_c *InvestigationCreate) SetAlertTitle(v string) *InvestigationCreate {
	_c.mutation.SetAlertTitle(v)
	return _c
}

// SetNillableAlertTitle sets the "alert_title" field if the given value is not nil.
func (_c *InvestigationCreate) SetNillableAlertTitle(v *string) *InvestigationCreate {
	if v != nil {
		_c.SetAlertTitle(*v)
	}
	return _c
}

// SetAlertSeverity sets the "alert_severity" field.
func (_c *InvestigationCreate) SetAlertSeverity(v investigation.AlertSeverity) *InvestigationCreate {
	_c.mutation.SetAlertSeverity(v)
	return _c
}

// SetNillableAlertSeverity sets the "alert_severity" field if the given value is not nil.
func (_c *InvestigationCreate) SetNillableAlertSeverity(v *investigation.AlertSeverity) *InvestigationCreate {
	if v != nil {
		_c.SetAlertSeverity(*v)
	}
	return _c
}

// SetAlertSource sets the "alert_source" field.
func (_c *InvestigationCreate) SetAlertSource(v string) *InvestigationCreate {
	_c.mutation.SetAlertSource(v)
	return _c
}

// SetNillableAlertSource sets the "alert_source" field if the given value is not nil.
func (_c *InvestigationCreate) SetNillableAlertSource(v *string) *InvestigationCreate {
	if v != nil {
		_c.SetAlertSource(*v)
	}
	return _c
}

// SetAlertTimestamp sets the "alert_timestamp" field.
func (_c *InvestigationCreate) SetAlertTimestamp(v time.Time) *InvestigationCreate {
	_c.mutation.SetAlertTimestamp(v)
	return _c
}

// SetNillableAlertTimestamp sets the "alert_timestamp" field if the given value is not nil.
func (_c *InvestigationCreate) SetNillableAlertTimestamp(v *time.Time) *InvestigationCreate {
	if v != nil {
		_c.SetAlertTimestamp(*v)
	}
	return _c
}

// SetAlertPayload sets the "alert_payload" field.
func (_c *InvestigationCreate) SetAlertPayload(v map[string]interface{}) *InvestigationCreate {
	_c.mutation.SetAlertPayload(v)
	return _c
}

// SetAlertEntities sets the "alert_entities" field.
func (_c *InvestigationCreate) SetAlertEntities(v map[string][]string) *InvestigationCreate {
	_c.mutation.SetAlertEntities(v)
	return _c
}

// SetPriority sets the "priority" field.
func (_c *InvestigationCreate) SetPriority(v int) *InvestigationCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *InvestigationCreate) SetNillablePriority(v *int) *InvestigationCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *InvestigationCreate) SetStatus(v investigation.Status) *InvestigationCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *InvestigationCreate) SetNillableStatus(v *investigation.Status) *InvestigationCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTimeoutMs sets the "timeout_ms" field.
func (_c *InvestigationCreate) SetTimeoutMs(v int64) *InvestigationCreate {
	_c.mutation.SetTimeoutMs(v)
	return _c
}

// SetNillableTimeoutMs sets the "timeout_ms" field if the given value is not nil.
func (_c *InvestigationCreate) SetNillableTimeoutMs(v *int64) *InvestigationCreate {
	if v != nil {
		_c.SetTimeoutMs(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *InvestigationCreate) SetCreatedAt(v time.Time) *InvestigationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InvestigationCreate) SetNillableCreatedAt(v *time.Time) *InvestigationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *InvestigationCreate) SetStartedAt(v time.Time) *InvestigationCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *InvestigationCreate) SetNillableStartedAt(v *time.Time) *InvestigationCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *InvestigationCreate) SetCompletedAt(v time.Time) *InvestigationCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *InvestigationCreate) SetNillableCompletedAt(v *time.Time) *InvestigationCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetVerdict sets the "verdict" field.
func (_c *InvestigationCreate) SetVerdict(v map[string]interface{}) *InvestigationCreate {
	_c.mutation.SetVerdict(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *InvestigationCreate) SetErrorMessage(v string) *InvestigationCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *InvestigationCreate) SetNillableErrorMessage(v *string) *InvestigationCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetExecutionSummary sets the "execution_summary" field.
func (_c *InvestigationCreate) SetExecutionSummary(v map[string]interface{}) *InvestigationCreate {
	_c.mutation.SetExecutionSummary(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *InvestigationCreate) SetMetadata(v map[string]interface{}) *InvestigationCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *InvestigationCreate) SetPodID(v string) *InvestigationCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *InvestigationCreate) SetNillablePodID(v *string) *InvestigationCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_c *InvestigationCreate) SetLastHeartbeatAt(v time.Time) *InvestigationCreate {
	_c.mutation.SetLastHeartbeatAt(v)
	return _c
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_c *InvestigationCreate) SetNillableLastHeartbeatAt(v *time.Time) *InvestigationCreate {
	if v != nil {
		_c.SetLastHeartbeatAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *InvestigationCreate) SetDeletedAt(v time.Time) *InvestigationCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *InvestigationCreate) SetNillableDeletedAt(v *time.Time) *InvestigationCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InvestigationCreate) SetID(v string) *InvestigationCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddStepIDs adds the "steps" edge to the PlanStep entity by IDs.
func (_c *InvestigationCreate) AddStepIDs(ids ...string) *InvestigationCreate {
	_c.mutation.AddStepIDs(ids...)
	return _c
}

// AddSteps adds the "steps" edges to the PlanStep entity.
func (_c *InvestigationCreate) AddSteps(v ...*PlanStep) *InvestigationCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStepIDs(ids...)
}

// AddEvidenceIDs adds the "evidence" edge to the Evidence entity by IDs.
func (_c *InvestigationCreate) AddEvidenceIDs(ids ...string) *InvestigationCreate {
	_c.mutation.AddEvidenceIDs(ids...)
	return _c
}

// AddEvidence adds the "evidence" edges to the Evidence entity.
func (_c *InvestigationCreate) AddEvidence(v ...*Evidence) *InvestigationCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEvidenceIDs(ids...)
}

// AddFeedbackIDs adds the "feedback" edge to the Feedback entity by IDs.
func (_c *InvestigationCreate) AddFeedbackIDs(ids ...string) *InvestigationCreate {
	_c.mutation.AddFeedbackIDs(ids...)
	return _c
}

// AddFeedback adds the "feedback" edges to the Feedback entity.
func (_c *InvestigationCreate) AddFeedback(v ...*Feedback) *InvestigationCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFeedbackIDs(ids...)
}

// AddApprovalIDs adds the "approvals" edge to the ApprovalRequest entity by IDs.
func (_c *InvestigationCreate) AddApprovalIDs(ids ...string) *InvestigationCreate {
	_c.mutation.AddApprovalIDs(ids...)
	return _c
}

// AddApprovals adds the "approvals" edges to the ApprovalRequest entity.
func (_c *InvestigationCreate) AddApprovals(v ...*ApprovalRequest) *InvestigationCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddApprovalIDs(ids...)
}

// AddRunEventIDs adds the "run_events" edge to the RunEvent entity by IDs.
func (_c *InvestigationCreate) AddRunEventIDs(ids ...int) *InvestigationCreate {
	_c.mutation.AddRunEventIDs(ids...)
	return _c
}

// AddRunEvents adds the "run_events" edges to the RunEvent entity.
func (_c *InvestigationCreate) AddRunEvents(v ...*RunEvent) *InvestigationCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRunEventIDs(ids...)
}

// Mutation returns the InvestigationMutation object of the builder.
func (_c *InvestigationCreate) Mutation() *InvestigationMutation {
	return _c.mutation
}

// Save creates the Investigation in the database.
func (_c *InvestigationCreate) Save(ctx context.Context) (*Investigation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InvestigationCreate) SaveX(ctx context.Context) *Investigation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvestigationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvestigationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InvestigationCreate) defaults() {
	if _, ok := _c.mutation.AlertSeverity(); !ok {
		v := investigation.DefaultAlertSeverity
		_c.mutation.SetAlertSeverity(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := investigation.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := investigation.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.TimeoutMs(); !ok {
		v := investigation.DefaultTimeoutMs
		_c.mutation.SetTimeoutMs(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := investigation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InvestigationCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "Investigation.tenant_id"`)}
	}
	if _, ok := _c.mutation.AlertID(); !ok {
		return &ValidationError{Name: "alert_id", err: errors.New(`ent: missing required field "Investigation.alert_id"`)}
	}
	if _, ok := _c.mutation.CorrelationKey(); !ok {
		return &ValidationError{Name: "correlation_key", err: errors.New(`ent: missing required field "Investigation.correlation_key"`)}
	}
	if _, ok := _c.mutation.AlertSeverity(); !ok {
		return &ValidationError{Name: "alert_severity", err: errors.New(`ent: missing required field "Investigation.alert_severity"`)}
	}
	if v, ok := _c.mutation.AlertSeverity(); ok {
		if err := investigation.AlertSeverityValidator(v); err != nil {
			return &ValidationError{Name: "alert_severity", err: fmt.Errorf(`ent: validator failed for field "Investigation.alert_severity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "Investigation.priority"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Investigation.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := investigation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Investigation.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TimeoutMs(); !ok {
		return &ValidationError{Name: "timeout_ms", err: errors.New(`ent: missing required field "Investigation.timeout_ms"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Investigation.created_at"`)}
	}
	return nil
}

func (_c *InvestigationCreate) sqlSave(ctx context.Context) (*Investigation, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Investigation.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InvestigationCreate) createSpec() (*Investigation, *sqlgraph.CreateSpec) {
	var (
		_node = &Investigation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(investigation.Table, sqlgraph.NewFieldSpec(investigation.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(investigation.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.AlertID(); ok {
		_spec.SetField(investigation.FieldAlertID, field.TypeString, value)
		_node.AlertID = value
	}
	if value, ok := _c.mutation.CorrelationKey(); ok {
		_spec.SetField(investigation.FieldCorrelationKey, field.TypeString, value)
		_node.CorrelationKey = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(investigation.FieldUserID, field.TypeString, value)
		_node.UserID = &value
	}
	if value, ok := _c.mutation.AlertTitle(); ok {
		_spec.SetField(investigation.FieldAlertTitle, field.TypeString, value)
		_node.AlertTitle = value
	}
	if value, ok := _c.mutation.AlertSeverity(); ok {
		_spec.SetField(investigation.FieldAlertSeverity, field.TypeEnum, value)
		_node.AlertSeverity = value
	}
	if value, ok := _c.mutation.AlertSource(); ok {
		_spec.SetField(investigation.FieldAlertSource, field.TypeString, value)
		_node.AlertSource = value
	}
	if value, ok := _c.mutation.AlertTimestamp(); ok {
		_spec.SetField(investigation.FieldAlertTimestamp, field.TypeTime, value)
		_node.AlertTimestamp = &value
	}
	if value, ok := _c.mutation.AlertPayload(); ok {
		_spec.SetField(investigation.FieldAlertPayload, field.TypeJSON, value)
		_node.AlertPayload = value
	}
	if value, ok := _c.mutation.AlertEntities(); ok {
		_spec.SetField(investigation.FieldAlertEntities, field.TypeJSON, value)
		_node.AlertEntities = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(investigation.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(investigation.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.TimeoutMs(); ok {
		_spec.SetField(investigation.FieldTimeoutMs, field.TypeInt64, value)
		_node.TimeoutMs = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(investigation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(investigation.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(investigation.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.Verdict(); ok {
		_spec.SetField(investigation.FieldVerdict, field.TypeJSON, value)
		_node.Verdict = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(investigation.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.ExecutionSummary(); ok {
		_spec.SetField(investigation.FieldExecutionSummary, field.TypeJSON, value)
		_node.ExecutionSummary = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(investigation.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(investigation.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(investigation.FieldLastHeartbeatAt, field.TypeTime, value)
		_node.LastHeartbeatAt = &value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(investigation.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if nodes := _c.mutation.StepsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EvidenceIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FeedbackIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ApprovalsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RunEventsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// InvestigationCreateBulk is the builder for creating many Investigation entities in bulk.
type InvestigationCreateBulk struct {
	config
	err      error
	builders []*InvestigationCreate
}

// Save creates the Investigation entities in the database.
func (_c *InvestigationCreateBulk) Save(ctx context.Context) ([]*Investigation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Investigation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InvestigationMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *InvestigationCreateBulk) SaveX(ctx context.Context) []*Investigation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvestigationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvestigationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
