// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/ent/planstep"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/ent/predicate"
)

// PlanStepUpdate is the builder for updating PlanStep entities.
type PlanStepUpdate struct {
	config
	hooks    []Hook
	mutation *PlanStepMutation
}

// Where appends a list predicates to the PlanStepUpdate builder.
func (_u *PlanStepUpdate) Where(ps ...predicate.PlanStep) *PlanStepUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *PlanStepUpdate) SetName(v string) *PlanStepUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PlanStepUpdate) SetNillableName(v *string) *PlanStepUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *PlanStepUpdate) SetType(v planstep.Type) *PlanStepUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *PlanStepUpdate) SetNillableType(v *planstep.Type) *PlanStepUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetAgent sets the "agent" field.
func (_u *PlanStepUpdate) SetAgent(v string) *PlanStepUpdate {
	_u.mutation.SetAgent(v)
	return _u
}

// SetNillableAgent sets the "agent" field if the given value is not nil.
func (_u *PlanStepUpdate) SetNillableAgent(v *string) *PlanStepUpdate {
	if v != nil {
		_u.SetAgent(*v)
	}
	return _u
}

// ClearAgent clears the value of the "agent" field.
func (_u *PlanStepUpdate) ClearAgent() *PlanStepUpdate {
	_u.mutation.ClearAgent()
	return _u
}

// SetDependencies sets the "dependencies" field.
func (_u *PlanStepUpdate) SetDependencies(v []string) *PlanStepUpdate {
	_u.mutation.SetDependencies(v)
	return _u
}

// AppendDependencies appends value to the "dependencies" field.
func (_u *PlanStepUpdate) AppendDependencies(v []string) *PlanStepUpdate {
	_u.mutation.AppendDependencies(v)
	return _u
}

// ClearDependencies clears the value of the "dependencies" field.
func (_u *PlanStepUpdate) ClearDependencies() *PlanStepUpdate {
	_u.mutation.ClearDependencies()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *PlanStepUpdate) SetPayload(v map[string]interface{}) *PlanStepUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *PlanStepUpdate) ClearPayload() *PlanStepUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// SetDataSources sets the "data_sources" field.
func (_u *PlanStepUpdate) SetDataSources(v []string) *PlanStepUpdate {
	_u.mutation.SetDataSources(v)
	return _u
}

// AppendDataSources appends value to the "data_sources" field.
func (_u *PlanStepUpdate) AppendDataSources(v []string) *PlanStepUpdate {
	_u.mutation.AppendDataSources(v)
	return _u
}

// ClearDataSources clears the value of the "data_sources" field.
func (_u *PlanStepUpdate) ClearDataSources() *PlanStepUpdate {
	_u.mutation.ClearDataSources()
	return _u
}

// SetTimeoutMs sets the "timeout_ms" field.
func (_u *PlanStepUpdate) SetTimeoutMs(v int64) *PlanStepUpdate {
	_u.mutation.ResetTimeoutMs()
	_u.mutation.SetTimeoutMs(v)
	return _u
}

// SetNillableTimeoutMs sets the "timeout_ms" field if the given value is not nil.
func (_u *PlanStepUpdate) SetNillableTimeoutMs(v *int64) *PlanStepUpdate {
	if v != nil {
		_u.SetTimeoutMs(*v)
	}
	return _u
}

// AddTimeoutMs adds value to the "timeout_ms" field.
func (_u *PlanStepUpdate) AddTimeoutMs(v int64) *PlanStepUpdate {
	_u.mutation.AddTimeoutMs(v)
	return _u
}

// SetMaxRetries sets the "max_retries" field.
func (_u *PlanStepUpdate) SetMaxRetries(v int) *PlanStepUpdate {
	_u.mutation.ResetMaxRetries()
	_u.mutation.SetMaxRetries(v)
	return _u
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_u *PlanStepUpdate) SetNillableMaxRetries(v *int) *PlanStepUpdate {
	if v != nil {
		_u.SetMaxRetries(*v)
	}
	return _u
}

// AddMaxRetries adds value to the "max_retries" field.
func (_u *PlanStepUpdate) AddMaxRetries(v int) *PlanStepUpdate {
	_u.mutation.AddMaxRetries(v)
	return _u
}

// SetCritical sets the "critical" field.
func (_u *PlanStepUpdate) SetCritical(v bool) *PlanStepUpdate {
	_u.mutation.SetCritical(v)
	return _u
}

// SetNillableCritical sets the "critical" field if the given value is not nil.
func (_u *PlanStepUpdate) SetNillableCritical(v *bool) *PlanStepUpdate {
	if v != nil {
		_u.SetCritical(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PlanStepUpdate) SetStatus(v planstep.Status) *PlanStepUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PlanStepUpdate) SetNillableStatus(v *planstep.Status) *PlanStepUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *PlanStepUpdate) SetStartedAt(v time.Time) *PlanStepUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *PlanStepUpdate) SetNillableStartedAt(v *time.Time) *PlanStepUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *PlanStepUpdate) ClearStartedAt() *PlanStepUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *PlanStepUpdate) SetCompletedAt(v time.Time) *PlanStepUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *PlanStepUpdate) SetNillableCompletedAt(v *time.Time) *PlanStepUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *PlanStepUpdate) ClearCompletedAt() *PlanStepUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *PlanStepUpdate) SetRetryCount(v int) *PlanStepUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *PlanStepUpdate) SetNillableRetryCount(v *int) *PlanStepUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *PlanStepUpdate) AddRetryCount(v int) *PlanStepUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *PlanStepUpdate) SetLastError(v string) *PlanStepUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *PlanStepUpdate) SetNillableLastError(v *string) *PlanStepUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *PlanStepUpdate) ClearLastError() *PlanStepUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetAdaptedFrom sets the "adapted_from" field.
func (_u *PlanStepUpdate) SetAdaptedFrom(v string) *PlanStepUpdate {
	_u.mutation.SetAdaptedFrom(v)
	return _u
}

// SetNillableAdaptedFrom sets the "adapted_from" field if the given value is not nil.
func (_u *PlanStepUpdate) SetNillableAdaptedFrom(v *string) *PlanStepUpdate {
	if v != nil {
		_u.SetAdaptedFrom(*v)
	}
	return _u
}

// ClearAdaptedFrom clears the value of the "adapted_from" field.
func (_u *PlanStepUpdate) ClearAdaptedFrom() *PlanStepUpdate {
	_u.mutation.ClearAdaptedFrom()
	return _u
}

// Mutation returns the PlanStepMutation object of the builder.
func (_u *PlanStepUpdate) Mutation() *PlanStepMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PlanStepUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlanStepUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PlanStepUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlanStepUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlanStepUpdate) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := planstep.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "PlanStep.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := planstep.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PlanStep.status": %w`, err)}
		}
	}
	if _u.mutation.InvestigationCleared() && len(_u.mutation.InvestigationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PlanStep.investigation"`)
	}
	return nil
}

func (_u *PlanStepUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(planstep.Table, planstep.Columns, sqlgraph.NewFieldSpec(planstep.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(planstep.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(planstep.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Agent(); ok {
		_spec.SetField(planstep.FieldAgent, field.TypeString, value)
	}
	if _u.mutation.AgentCleared() {
		_spec.ClearField(planstep.FieldAgent, field.TypeString)
	}
	if value, ok := _u.mutation.Dependencies(); ok {
		_spec.SetField(planstep.FieldDependencies, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDependencies(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, planstep.FieldDependencies, value)
		})
	}
	if _u.mutation.DependenciesCleared() {
		_spec.ClearField(planstep.FieldDependencies, field.TypeJSON)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(planstep.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(planstep.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.DataSources(); ok {
		_spec.SetField(planstep.FieldDataSources, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDataSources(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, planstep.FieldDataSources, value)
		})
	}
	if _u.mutation.DataSourcesCleared() {
		_spec.ClearField(planstep.FieldDataSources, field.TypeJSON)
	}
	if value, ok := _u.mutation.TimeoutMs(); ok {
		_spec.SetField(planstep.FieldTimeoutMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTimeoutMs(); ok {
		_spec.AddField(planstep.FieldTimeoutMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.MaxRetries(); ok {
		_spec.SetField(planstep.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRetries(); ok {
		_spec.AddField(planstep.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Critical(); ok {
		_spec.SetField(planstep.FieldCritical, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(planstep.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(planstep.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(planstep.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(planstep.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(planstep.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(planstep.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(planstep.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(planstep.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(planstep.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.AdaptedFrom(); ok {
		_spec.SetField(planstep.FieldAdaptedFrom, field.TypeString, value)
	}
	if _u.mutation.AdaptedFromCleared() {
		_spec.ClearField(planstep.FieldAdaptedFrom, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{planstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PlanStepUpdateOne is the builder for updating a single PlanStep entity.
type PlanStepUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PlanStepMutation
}

// SetName sets the "name" field.
func (_u *PlanStepUpdateOne) SetName(v string) *PlanStepUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PlanStepUpdateOne) SetNillableName(v *string) *PlanStepUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *PlanStepUpdateOne) SetType(v planstep.Type) *PlanStepUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *PlanStepUpdateOne) SetNillableType(v *planstep.Type) *PlanStepUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetAgent sets the "agent" field.
func (_u *PlanStepUpdateOne) SetAgent(v string) *PlanStepUpdateOne {
	_u.mutation.SetAgent(v)
	return _u
}

// SetNillableAgent sets the "agent" field if the given value is not nil.
func (_u *PlanStepUpdateOne) SetNillableAgent(v *string) *PlanStepUpdateOne {
	if v != nil {
		_u.SetAgent(*v)
	}
	return _u
}

// ClearAgent clears the value of the "agent" field.
func (_u *PlanStepUpdateOne) ClearAgent() *PlanStepUpdateOne {
	_u.mutation.ClearAgent()
	return _u
}

// SetDependencies sets the "dependencies" field.
func (_u *PlanStepUpdateOne) SetDependencies(v []string) *PlanStepUpdateOne {
	_u.mutation.SetDependencies(v)
	return _u
}

// AppendDependencies appends value to the "dependencies" field.
func (_u *PlanStepUpdateOne) AppendDependencies(v []string) *PlanStepUpdateOne {
	_u.mutation.AppendDependencies(v)
	return _u
}

// ClearDependencies clears the value of the "dependencies" field.
func (_u *PlanStepUpdateOne) ClearDependencies() *PlanStepUpdateOne {
	_u.mutation.ClearDependencies()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *PlanStepUpdateOne) SetPayload(v map[string]interface{}) *PlanStepUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *PlanStepUpdateOne) ClearPayload() *PlanStepUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// SetDataSources sets the "data_sources" field.
func (_u *PlanStepUpdateOne) SetDataSources(v []string) *PlanStepUpdateOne {
	_u.mutation.SetDataSources(v)
	return _u
}

// AppendDataSources appends value to the "data_sources" field.
func (_u *PlanStepUpdateOne) AppendDataSources(v []string) *PlanStepUpdateOne {
	_u.mutation.AppendDataSources(v)
	return _u
}

// ClearDataSources clears the value of the "data_sources" field.
func (_u *PlanStepUpdateOne) ClearDataSources() *PlanStepUpdateOne {
	_u.mutation.ClearDataSources()
	return _u
}

// SetTimeoutMs sets the "timeout_ms" field.
func (_u *PlanStepUpdateOne) SetTimeoutMs(v int64) *PlanStepUpdateOne {
	_u.mutation.ResetTimeoutMs()
	_u.mutation.SetTimeoutMs(v)
	return _u
}

// SetNillableTimeoutMs sets the "timeout_ms" field if the given value is not nil.
func (_u *PlanStepUpdateOne) SetNillableTimeoutMs(v *int64) *PlanStepUpdateOne {
	if v != nil {
		_u.SetTimeoutMs(*v)
	}
	return _u
}

// AddTimeoutMs adds value to the "timeout_ms" field.
func (_u *PlanStepUpdateOne) AddTimeoutMs(v int64) *PlanStepUpdateOne {
	_u.mutation.AddTimeoutMs(v)
	return _u
}

// SetMaxRetries sets the "max_retries" field.
func (_u *PlanStepUpdateOne) SetMaxRetries(v int) *PlanStepUpdateOne {
	_u.mutation.ResetMaxRetries()
	_u.mutation.SetMaxRetries(v)
	return _u
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_u *PlanStepUpdateOne) SetNillableMaxRetries(v *int) *PlanStepUpdateOne {
	if v != nil {
		_u.SetMaxRetries(*v)
	}
	return _u
}

// AddMaxRetries adds value to the "max_retries" field.
func (_u *PlanStepUpdateOne) AddMaxRetries(v int) *PlanStepUpdateOne {
	_u.mutation.AddMaxRetries(v)
	return _u
}

// SetCritical sets the "critical" field.
func (_u *PlanStepUpdateOne) SetCritical(v bool) *PlanStepUpdateOne {
	_u.mutation.SetCritical(v)
	return _u
}

// SetNillableCritical sets the "critical" field if the given value is not nil.
func (_u *PlanStepUpdateOne) SetNillableCritical(v *bool) *PlanStepUpdateOne {
	if v != nil {
		_u.SetCritical(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PlanStepUpdateOne) SetStatus(v planstep.Status) *PlanStepUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PlanStepUpdateOne) SetNillableStatus(v *planstep.Status) *PlanStepUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *PlanStepUpdateOne) SetStartedAt(v time.Time) *PlanStepUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *PlanStepUpdateOne) SetNillableStartedAt(v *time.Time) *PlanStepUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *PlanStepUpdateOne) ClearStartedAt() *PlanStepUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *PlanStepUpdateOne) SetCompletedAt(v time.Time) *PlanStepUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *PlanStepUpdateOne) SetNillableCompletedAt(v *time.Time) *PlanStepUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *PlanStepUpdateOne) ClearCompletedAt() *PlanStepUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *PlanStepUpdateOne) SetRetryCount(v int) *PlanStepUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *PlanStepUpdateOne) SetNillableRetryCount(v *int) *PlanStepUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *PlanStepUpdateOne) AddRetryCount(v int) *PlanStepUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *PlanStepUpdateOne) SetLastError(v string) *PlanStepUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *PlanStepUpdateOne) SetNillableLastError(v *string) *PlanStepUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *PlanStepUpdateOne) ClearLastError() *PlanStepUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetAdaptedFrom sets the "adapted_from" field.
func (_u *PlanStepUpdateOne) SetAdaptedFrom(v string) *PlanStepUpdateOne {
	_u.mutation.SetAdaptedFrom(v)
	return _u
}

// SetNillableAdaptedFrom sets the "adapted_from" field if the given value is not nil.
func (_u *PlanStepUpdateOne) SetNillableAdaptedFrom(v *string) *PlanStepUpdateOne {
	if v != nil {
		_u.SetAdaptedFrom(*v)
	}
	return _u
}

// ClearAdaptedFrom clears the value of the "adapted_from" field.
func (_u *PlanStepUpdateOne) ClearAdaptedFrom() *PlanStepUpdateOne {
	_u.mutation.ClearAdaptedFrom()
	return _u
}

// Mutation returns the PlanStepMutation object of the builder.
func (_u *PlanStepUpdateOne) Mutation() *PlanStepMutation {
	return _u.mutation
}

// Where appends a list predicates to the PlanStepUpdate builder.
func (_u *PlanStepUpdateOne) Where(ps ...predicate.PlanStep) *PlanStepUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PlanStepUpdateOne) Select(field string, fields ...string) *PlanStepUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PlanStep entity.
func (_u *PlanStepUpdateOne) Save(ctx context.Context) (*PlanStep, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlanStepUpdateOne) SaveX(ctx context.Context) *PlanStep {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PlanStepUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlanStepUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlanStepUpdateOne) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := planstep.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "PlanStep.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := planstep.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PlanStep.status": %w`, err)}
		}
	}
	if _u.mutation.InvestigationCleared() && len(_u.mutation.InvestigationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PlanStep.investigation"`)
	}
	return nil
}

func (_u *PlanStepUpdateOne) sqlSave(ctx context.Context) (_node *PlanStep, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(planstep.Table, planstep.Columns, sqlgraph.NewFieldSpec(planstep.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PlanStep.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, planstep.FieldID)
		for _, f := range fields {
			if !planstep.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != planstep.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(planstep.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(planstep.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Agent(); ok {
		_spec.SetField(planstep.FieldAgent, field.TypeString, value)
	}
	if _u.mutation.AgentCleared() {
		_spec.ClearField(planstep.FieldAgent, field.TypeString)
	}
	if value, ok := _u.mutation.Dependencies(); ok {
		_spec.SetField(planstep.FieldDependencies, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDependencies(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, planstep.FieldDependencies, value)
		})
	}
	if _u.mutation.DependenciesCleared() {
		_spec.ClearField(planstep.FieldDependencies, field.TypeJSON)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(planstep.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(planstep.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.DataSources(); ok {
		_spec.SetField(planstep.FieldDataSources, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDataSources(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, planstep.FieldDataSources, value)
		})
	}
	if _u.mutation.DataSourcesCleared() {
		_spec.ClearField(planstep.FieldDataSources, field.TypeJSON)
	}
	if value, ok := _u.mutation.TimeoutMs(); ok {
		_spec.SetField(planstep.FieldTimeoutMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTimeoutMs(); ok {
		_spec.AddField(planstep.FieldTimeoutMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.MaxRetries(); ok {
		_spec.SetField(planstep.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRetries(); ok {
		_spec.AddField(planstep.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Critical(); ok {
		_spec.SetField(planstep.FieldCritical, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(planstep.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(planstep.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(planstep.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(planstep.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(planstep.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(planstep.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(planstep.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(planstep.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(planstep.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.AdaptedFrom(); ok {
		_spec.SetField(planstep.FieldAdaptedFrom, field.TypeString, value)
	}
	if _u.mutation.AdaptedFromCleared() {
		_spec.ClearField(planstep.FieldAdaptedFrom, field.TypeString)
	}
	_node = &PlanStep{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{planstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
