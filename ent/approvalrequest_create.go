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
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/ent/investigation"
)

// ApprovalRequestCreate is the builder for creating a ApprovalRequest entity.
type ApprovalRequestCreate struct {
	config
	mutation *ApprovalRequestMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *ApprovalRequestCreate) SetRunID(v string) *ApprovalRequestCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetTenantID sets the "tenant_id" field.
func (_c *ApprovalRequestCreate) SetTenantID(v string) *ApprovalRequestCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *ApprovalRequestCreate) SetTitle(v string) *ApprovalRequestCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ApprovalRequestCreate) SetDescription(v string) *ApprovalRequestCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ApprovalRequestCreate) SetNillableDescription(v *string) *ApprovalRequestCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetRisk sets the "risk" field.
func (_c *ApprovalRequestCreate) SetRisk(v approvalrequest.Risk) *ApprovalRequestCreate {
	_c.mutation.SetRisk(v)
	return _c
}

// SetNillableRisk sets the "risk" field if the given value is not nil.
func (_c *ApprovalRequestCreate) SetNillableRisk(v *approvalrequest.Risk) *ApprovalRequestCreate {
	if v != nil {
		_c.SetRisk(*v)
	}
	return _c
}

// SetActionPayload sets the "action_payload" field.
func (_c *ApprovalRequestCreate) SetActionPayload(v map[string]interface{}) *ApprovalRequestCreate {
	_c.mutation.SetActionPayload(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ApprovalRequestCreate) SetStatus(v approvalrequest.Status) *ApprovalRequestCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ApprovalRequestCreate) SetNillableStatus(v *approvalrequest.Status) *ApprovalRequestCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetVerified sets the "verified" field.
func (_c *ApprovalRequestCreate) SetVerified(v bool) *ApprovalRequestCreate {
	_c.mutation.SetVerified(v)
	return _c
}

// SetNillableVerified sets the "verified" field if the given value is not nil.
func (_c *ApprovalRequestCreate) SetNillableVerified(v *bool) *ApprovalRequestCreate {
	if v != nil {
		_c.SetVerified(*v)
	}
	return _c
}

// SetRequestedAt sets the "requested_at" field.
func (_c *ApprovalRequestCreate) SetRequestedAt(v time.Time) *ApprovalRequestCreate {
	_c.mutation.SetRequestedAt(v)
	return _c
}

// SetNillableRequestedAt sets the "requested_at" field if the given value is not nil.
func (_c *ApprovalRequestCreate) SetNillableRequestedAt(v *time.Time) *ApprovalRequestCreate {
	if v != nil {
		_c.SetRequestedAt(*v)
	}
	return _c
}

// SetRespondedAt sets the "responded_at" field.
func (_c *ApprovalRequestCreate) SetRespondedAt(v time.Time) *ApprovalRequestCreate {
	_c.mutation.SetRespondedAt(v)
	return _c
}

// SetNillableRespondedAt sets the "responded_at" field if the given value is not nil.
func (_c *ApprovalRequestCreate) SetNillableRespondedAt(v *time.Time) *ApprovalRequestCreate {
	if v != nil {
		_c.SetRespondedAt(*v)
	}
	return _c
}

// SetRespondedBy sets the "responded_by" field.
func (_c *ApprovalRequestCreate) SetRespondedBy(v string) *ApprovalRequestCreate {
	_c.mutation.SetRespondedBy(v)
	return _c
}

// SetNillableRespondedBy sets the "responded_by" field if the given value is not nil.
func (_c *ApprovalRequestCreate) SetNillableRespondedBy(v *string) *ApprovalRequestCreate {
	if v != nil {
		_c.SetRespondedBy(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ApprovalRequestCreate) SetID(v string) *ApprovalRequestCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetInvestigationID sets the "investigation" edge to the Investigation entity by ID.
func (_c *ApprovalRequestCreate) SetInvestigationID(id string) *ApprovalRequestCreate {
	_c.mutation.SetInvestigationID(id)
	return _c
}

// SetInvestigation sets the "investigation" edge to the Investigation entity.
func (_c *ApprovalRequestCreate) SetInvestigation(v *Investigation) *ApprovalRequestCreate {
	return _c.SetInvestigationID(v.ID)
}

// Mutation returns the ApprovalRequestMutation object of the builder.
func (_c *ApprovalRequestCreate) Mutation() *ApprovalRequestMutation {
	return _c.mutation
}

// Save creates the ApprovalRequest in the database.
func (_c *ApprovalRequestCreate) Save(ctx context.Context) (*ApprovalRequest, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ApprovalRequestCreate) SaveX(ctx context.Context) *ApprovalRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApprovalRequestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApprovalRequestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ApprovalRequestCreate) defaults() {
	if _, ok := _c.mutation.Risk(); !ok {
		v := approvalrequest.DefaultRisk
		_c.mutation.SetRisk(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := approvalrequest.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Verified(); !ok {
		v := approvalrequest.DefaultVerified
		_c.mutation.SetVerified(v)
	}
	if _, ok := _c.mutation.RequestedAt(); !ok {
		v := approvalrequest.DefaultRequestedAt()
		_c.mutation.SetRequestedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ApprovalRequestCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "ApprovalRequest.run_id"`)}
	}
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "ApprovalRequest.tenant_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "ApprovalRequest.title"`)}
	}
	if _, ok := _c.mutation.Risk(); !ok {
		return &ValidationError{Name: "risk", err: errors.New(`ent: missing required field "ApprovalRequest.risk"`)}
	}
	if v, ok := _c.mutation.Risk(); ok {
		if err := approvalrequest.RiskValidator(v); err != nil {
			return &ValidationError{Name: "risk", err: fmt.Errorf(`ent: validator failed for field "ApprovalRequest.risk": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ApprovalRequest.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := approvalrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ApprovalRequest.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Verified(); !ok {
		return &ValidationError{Name: "verified", err: errors.New(`ent: missing required field "ApprovalRequest.verified"`)}
	}
	if _, ok := _c.mutation.RequestedAt(); !ok {
		return &ValidationError{Name: "requested_at", err: errors.New(`ent: missing required field "ApprovalRequest.requested_at"`)}
	}
	if len(_c.mutation.InvestigationIDs()) == 0 {
		return &ValidationError{Name: "investigation", err: errors.New(`ent: missing required edge "ApprovalRequest.investigation"`)}
	}
	return nil
}

func (_c *ApprovalRequestCreate) sqlSave(ctx context.Context) (*ApprovalRequest, error) {
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
			return nil, fmt.Errorf("unexpected ApprovalRequest.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ApprovalRequestCreate) createSpec() (*ApprovalRequest, *sqlgraph.CreateSpec) {
	var (
		_node = &ApprovalRequest{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(approvalrequest.Table, sqlgraph.NewFieldSpec(approvalrequest.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(approvalrequest.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(approvalrequest.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(approvalrequest.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Risk(); ok {
		_spec.SetField(approvalrequest.FieldRisk, field.TypeEnum, value)
		_node.Risk = value
	}
	if value, ok := _c.mutation.ActionPayload(); ok {
		_spec.SetField(approvalrequest.FieldActionPayload, field.TypeJSON, value)
		_node.ActionPayload = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(approvalrequest.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Verified(); ok {
		_spec.SetField(approvalrequest.FieldVerified, field.TypeBool, value)
		_node.Verified = value
	}
	if value, ok := _c.mutation.RequestedAt(); ok {
		_spec.SetField(approvalrequest.FieldRequestedAt, field.TypeTime, value)
		_node.RequestedAt = value
	}
	if value, ok := _c.mutation.RespondedAt(); ok {
		_spec.SetField(approvalrequest.FieldRespondedAt, field.TypeTime, value)
		_node.RespondedAt = &value
	}
	if value, ok := _c.mutation.RespondedBy(); ok {
		_spec.SetField(approvalrequest.FieldRespondedBy, field.TypeString, value)
		_node.RespondedBy = &value
	}
	if nodes := _c.mutation.InvestigationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   approvalrequest.InvestigationTable,
			Columns: []string{approvalrequest.InvestigationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(investigation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RunID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ApprovalRequestCreateBulk is the builder for creating many ApprovalRequest entities in bulk.
type ApprovalRequestCreateBulk struct {
	config
	err      error
	builders []*ApprovalRequestCreate
}

// Save creates the ApprovalRequest entities in the database.
func (_c *ApprovalRequestCreateBulk) Save(ctx context.Context) ([]*ApprovalRequest, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ApprovalRequest, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ApprovalRequestMutation)
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
func (_c *ApprovalRequestCreateBulk) SaveX(ctx context.Context) []*ApprovalRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApprovalRequestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApprovalRequestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
