// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/ent/investigation"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/ent/planstep"
)

// PlanStepCreate is the builder for creating a PlanStep entity.
type PlanStepCreate struct {
	config
	mutation *PlanStepMutation
	hooks    []Hook
}

// SetInvestigationID sets the "investigation_id" field.
func (_c *PlanStepCreate) SetInvestigationID(v string) *PlanStepCreate {
	_c.mutation.SetInvestigationID(v)
	return _c
}

// SetTenantID sets the "tenant_id" field.
func (_c *PlanStepCreate) SetTenantID(v string) *PlanStepCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *PlanStepCreate) SetName(v string) *PlanStepCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetType sets the "type" field.
func (_c *PlanStepCreate) SetType(v planstep.Type) *PlanStepCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetAgent sets the "agent" field.
func (_c *PlanStepCreate) SetAgent(v string) *PlanStepCreate {
	_c.mutation.SetAgent(v)
	return _c
}

// SetNillableAgent sets the "agent" field if the given value is not nil.
func (_c *PlanStepCreate) SetNillableAgent(v *string) *PlanStepCreate {
	if v != nil {
		_c.SetAgent(*v)
	}
	return _c
}

// SetDependencies sets the "dependencies" field.
func (_c *PlanStepCreate) SetDependencies(v []string) *PlanStepCreate {
	_c.mutation.SetDependencies(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *PlanStepCreate) SetPayload(v map[string]interface{}) *PlanStepCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetDataSources sets the "data_sources" field.
func (_c *PlanStepCreate) SetDataSources(v []string) *PlanStepCreate {
	_c.mutation.SetDataSources(v)
	return _c
}

// SetTimeoutMs sets the "timeout_ms" field.
func (_c *PlanStepCreate) SetTimeoutMs(v int64) *PlanStepCreate {
	_c.mutation.SetTimeoutMs(v)
	return _c
}

// SetNillableTimeoutMs sets the "timeout_ms" field if the given value is not nil.
func (_c *PlanStepCreate) SetNillableTimeoutMs(v *int64) *PlanStepCreate {
	if v != nil {
		_c.SetTimeoutMs(*v)
	}
	return _c
}

// SetMaxRetries sets the "max_retries" field.
func (_c *PlanStepCreate) SetMaxRetries(v int) *PlanStepCreate {
	_c.mutation.SetMaxRetries(v)
	return _c
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_c *PlanStepCreate) SetNillableMaxRetries(v *int) *PlanStepCreate {
	if v != nil {
		_c.SetMaxRetries(*v)
	}
	return _c
}

// SetCritical sets the "critical" field.
func (_c *PlanStepCreate) SetCritical(v bool) *PlanStepCreate {
	_c.mutation.SetCritical(v)
	return _c
}

// SetNillableCritical sets the "critical" field if the given value is not nil.
func (_c *PlanStepCreate) SetNillableCritical(v *bool) *PlanStepCreate {
	if v != nil {
		_c.SetCritical(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *PlanStepCreate) SetStatus(v planstep.Status) *PlanStepCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PlanStepCreate) SetNillableStatus(v *planstep.Status) *PlanStepCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *PlanStepCreate) SetStartedAt(v time.Time) *PlanStepCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *PlanStepCreate) SetNillableStartedAt(v *time.Time) *PlanStepCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *PlanStepCreate) SetCompletedAt(v time.Time) *PlanStepCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *PlanStepCreate) SetNillableCompletedAt(v *time.Time) *PlanStepCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *PlanStepCreate) SetRetryCount(v int) *PlanStepCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *PlanStepCreate) SetNillableRetryCount(v *int) *PlanStepCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *PlanStepCreate) SetLastError(v string) *PlanStepCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *PlanStepCreate) SetNillableLastError(v *string) *PlanStepCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetAdaptedFrom sets the "adapted_from" field.
func (_c *PlanStepCreate) SetAdaptedFrom(v string) *PlanStepCreate {
	_c.mutation.SetAdaptedFrom(v)
	return _c
}

// SetNillableAdaptedFrom sets the "adapted_from" field if the given value is not nil.
func (_c *PlanStepCreate) SetNillableAdaptedFrom(v *string) *PlanStepCreate {
	if v != nil {
		_c.SetAdaptedFrom(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PlanStepCreate) SetCreatedAt(v time.Time) *PlanStepCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PlanStepCreate) SetNillableCreatedAt(v *time.Time) *PlanStepCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PlanStepCreate) SetID(v string) *PlanStepCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetInvestigation sets the "investigation" edge to the Investigation entity.
func (_c *PlanStepCreate) SetInvestigation(v *Investigation) *PlanStepCreate {
	return _c.SetInvestigationID(v.ID)
}

// Mutation returns the PlanStepMutation object of the builder.
func (_c *PlanStepCreate) Mutation() *PlanStepMutation {
	return _c.mutation
}

// Save creates the PlanStep in the database.
func (_c *PlanStepCreate) Save(ctx context.Context) (*PlanStep, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PlanStepCreate) SaveX(ctx context.Context) *PlanStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlanStepCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlanStepCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PlanStepCreate) defaults() {
	if _, ok := _c.mutation.TimeoutMs(); !ok {
		v := planstep.DefaultTimeoutMs
		_c.mutation.SetTimeoutMs(v)
	}
	if _, ok := _c.mutation.MaxRetries(); !ok {
		v := planstep.DefaultMaxRetries
		_c.mutation.SetMaxRetries(v)
	}
	if _, ok := _c.mutation.Critical(); !ok {
		v := planstep.DefaultCritical
		_c.mutation.SetCritical(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := planstep.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := planstep.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := planstep.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PlanStepCreate) check() error {
	if _, ok := _c.mutation.InvestigationID(); !ok {
		return &ValidationError{Name: "investigation_id", err: errors.New(`ent: missing required field "PlanStep.investigation_id"`)}
	}
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "PlanStep.tenant_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "PlanStep.name"`)}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "PlanStep.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := planstep.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "PlanStep.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TimeoutMs(); !ok {
		return &ValidationError{Name: "timeout_ms", err: errors.New(`ent: missing required field "PlanStep.timeout_ms"`)}
	}
	if _, ok := _c.mutation.MaxRetries(); !ok {
		return &ValidationError{Name: "max_retries", err: errors.New(`ent: missing required field "PlanStep.max_retries"`)}
	}
	if _, ok := _c.mutation.Critical(); !ok {
		return &ValidationError{Name: "critical", err: errors.New(`ent: missing required field "PlanStep.critical"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PlanStep.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := planstep.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PlanStep.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "PlanStep.retry_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PlanStep.created_at"`)}
	}
	if len(_c.mutation.InvestigationIDs()) == 0 {
		return &ValidationError{Name: "investigation", err: errors.New(`ent: missing required edge "PlanStep.investigation"`)}
	}
	return nil
}

func (_c *PlanStepCreate) sqlSave(ctx context.Context) (*PlanStep, error) {
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
			return nil, fmt.Errorf("unexpected PlanStep.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PlanStepCreate) createSpec() (*PlanStep, *sqlgraph.CreateSpec) {
	var (
		_node = &PlanStep{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(planstep.Table, sqlgraph.NewFieldSpec(planstep.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(planstep.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(planstep.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(planstep.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Agent(); ok {
		_spec.SetField(planstep.FieldAgent, field.TypeString, value)
		_node.Agent = value
	}
	if value, ok := _c.mutation.Dependencies(); ok {
		_spec.SetField(planstep.FieldDependencies, field.TypeJSON, value)
		_node.Dependencies = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(planstep.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.DataSources(); ok {
		_spec.SetField(planstep.FieldDataSources, field.TypeJSON, value)
		_node.DataSources = value
	}
	if value, ok := _c.mutation.TimeoutMs(); ok {
		_spec.SetField(planstep.FieldTimeoutMs, field.TypeInt64, value)
		_node.TimeoutMs = value
	}
	if value, ok := _c.mutation.MaxRetries(); ok {
		_spec.SetField(planstep.FieldMaxRetries, field.TypeInt, value)
		_node.MaxRetries = value
	}
	if value, ok := _c.mutation.Critical(); ok {
		_spec.SetField(planstep.FieldCritical, field.TypeBool, value)
		_node.Critical = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(planstep.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(planstep.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(planstep.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(planstep.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(planstep.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if value, ok := _c.mutation.AdaptedFrom(); ok {
		_spec.SetField(planstep.FieldAdaptedFrom, field.TypeString, value)
		_node.AdaptedFrom = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(planstep.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.InvestigationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   planstep.InvestigationTable,
			Columns: []string{planstep.InvestigationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(investigation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.InvestigationID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PlanStepCreateBulk is the builder for creating many PlanStep entities in bulk.
type PlanStepCreateBulk struct {
	config
	err      error
	builders []*PlanStepCreate
}

// Save creates the PlanStep entities in the database.
func (_c *PlanStepCreateBulk) Save(ctx context.Context) ([]*PlanStep, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PlanStep, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PlanStepMutation)
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
func (_c *PlanStepCreateBulk) SaveX(ctx context.Context) []*PlanStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlanStepCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlanStepCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
