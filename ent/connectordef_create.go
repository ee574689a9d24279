// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/ent/connectordef"
)

// ConnectorDefCreate is the builder for creating a ConnectorDef entity.
type ConnectorDefCreate struct {
	config
	mutation *ConnectorDefMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *ConnectorDefCreate) SetTenantID(v string) *ConnectorDefCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetType sets the "type" field.
func (_c *ConnectorDefCreate) SetType(v string) *ConnectorDefCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetName sets the "name" field.
func (_c *ConnectorDefCreate) SetName(v string) *ConnectorDefCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetPriority sets the "priority" field.
func (_c *ConnectorDefCreate) SetPriority(v int) *ConnectorDefCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *ConnectorDefCreate) SetNillablePriority(v *int) *ConnectorDefCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetAuth sets the "auth" field.
func (_c *ConnectorDefCreate) SetAuth(v map[string]interface{}) *ConnectorDefCreate {
	_c.mutation.SetAuth(v)
	return _c
}

// SetRateLimits sets the "rate_limits" field.
func (_c *ConnectorDefCreate) SetRateLimits(v map[string]interface{}) *ConnectorDefCreate {
	_c.mutation.SetRateLimits(v)
	return _c
}

// SetConfig sets the "config" field.
func (_c *ConnectorDefCreate) SetConfig(v map[string]interface{}) *ConnectorDefCreate {
	_c.mutation.SetConfig(v)
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *ConnectorDefCreate) SetEnabled(v bool) *ConnectorDefCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *ConnectorDefCreate) SetNillableEnabled(v *bool) *ConnectorDefCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ConnectorDefCreate) SetStatus(v connectordef.Status) *ConnectorDefCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ConnectorDefCreate) SetNillableStatus(v *connectordef.Status) *ConnectorDefCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ConnectorDefCreate) SetCreatedAt(v time.Time) *ConnectorDefCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ConnectorDefCreate) SetNillableCreatedAt(v *time.Time) *ConnectorDefCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ConnectorDefCreate) SetUpdatedAt(v time.Time) *ConnectorDefCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ConnectorDefCreate) SetNillableUpdatedAt(v *time.Time) *ConnectorDefCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ConnectorDefCreate) SetID(v string) *ConnectorDefCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ConnectorDefMutation object of the builder.
func (_c *ConnectorDefCreate) Mutation() *ConnectorDefMutation {
	return _c.mutation
}

// Save creates the ConnectorDef in the database.
func (_c *ConnectorDefCreate) Save(ctx context.Context) (*ConnectorDef, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConnectorDefCreate) SaveX(ctx context.Context) *ConnectorDef {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConnectorDefCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConnectorDefCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConnectorDefCreate) defaults() {
	if _, ok := _c.mutation.Priority(); !ok {
		v := connectordef.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		v := connectordef.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := connectordef.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := connectordef.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := connectordef.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConnectorDefCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "ConnectorDef.tenant_id"`)}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "ConnectorDef.type"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "ConnectorDef.name"`)}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "ConnectorDef.priority"`)}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "ConnectorDef.enabled"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ConnectorDef.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := connectordef.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ConnectorDef.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ConnectorDef.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ConnectorDef.updated_at"`)}
	}
	return nil
}

func (_c *ConnectorDefCreate) sqlSave(ctx context.Context) (*ConnectorDef, error) {
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
			return nil, fmt.Errorf("unexpected ConnectorDef.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ConnectorDefCreate) createSpec() (*ConnectorDef, *sqlgraph.CreateSpec) {
	var (
		_node = &ConnectorDef{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(connectordef.Table, sqlgraph.NewFieldSpec(connectordef.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(connectordef.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(connectordef.FieldType, field.TypeString, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(connectordef.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(connectordef.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Auth(); ok {
		_spec.SetField(connectordef.FieldAuth, field.TypeJSON, value)
		_node.Auth = value
	}
	if value, ok := _c.mutation.RateLimits(); ok {
		_spec.SetField(connectordef.FieldRateLimits, field.TypeJSON, value)
		_node.RateLimits = value
	}
	if value, ok := _c.mutation.Config(); ok {
		_spec.SetField(connectordef.FieldConfig, field.TypeJSON, value)
		_node.Config = value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(connectordef.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(connectordef.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(connectordef.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(connectordef.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ConnectorDefCreateBulk is the builder for creating many ConnectorDef entities in bulk.
type ConnectorDefCreateBulk struct {
	config
	err      error
	builders []*ConnectorDefCreate
}

// Save creates the ConnectorDef entities in the database.
func (_c *ConnectorDefCreateBulk) Save(ctx context.Context) ([]*ConnectorDef, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ConnectorDef, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConnectorDefMutation)
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
func (_c *ConnectorDefCreateBulk) SaveX(ctx context.Context) []*ConnectorDef {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConnectorDefCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConnectorDefCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
