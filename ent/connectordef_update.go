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
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/ent/connectordef"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/ent/predicate"
)

// ConnectorDefUpdate is the builder for updating ConnectorDef entities.
type ConnectorDefUpdate struct {
	config
	hooks    []Hook
	mutation *ConnectorDefMutation
}

// Where appends a list predicates to the ConnectorDefUpdate builder.
func (_u *ConnectorDefUpdate) Where(ps ...predicate.ConnectorDef) *ConnectorDefUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetType sets the "type" field.
func (_u *ConnectorDefUpdate) SetType(v string) *ConnectorDefUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *ConnectorDefUpdate) SetNillableType(v *string) *ConnectorDefUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ConnectorDefUpdate) SetName(v string) *ConnectorDefUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ConnectorDefUpdate) SetNillableName(v *string) *ConnectorDefUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *ConnectorDefUpdate) SetPriority(v int) *ConnectorDefUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *ConnectorDefUpdate) SetNillablePriority(v *int) *ConnectorDefUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *ConnectorDefUpdate) AddPriority(v int) *ConnectorDefUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetAuth sets the "auth" field.
func (_u *ConnectorDefUpdate) SetAuth(v map[string]interface{}) *ConnectorDefUpdate {
	_u.mutation.SetAuth(v)
	return _u
}

// ClearAuth clears the value of the "auth" field.
func (_u *ConnectorDefUpdate) ClearAuth() *ConnectorDefUpdate {
	_u.mutation.ClearAuth()
	return _u
}

// SetRateLimits sets the "rate_limits" field.
func (_u *ConnectorDefUpdate) SetRateLimits(v map[string]interface{}) *ConnectorDefUpdate {
	_u.mutation.SetRateLimits(v)
	return _u
}

// ClearRateLimits clears the value of the "rate_limits" field.
func (_u *ConnectorDefUpdate) ClearRateLimits() *ConnectorDefUpdate {
	_u.mutation.ClearRateLimits()
	return _u
}

// SetConfig sets the "config" field.
func (_u *ConnectorDefUpdate) SetConfig(v map[string]interface{}) *ConnectorDefUpdate {
	_u.mutation.SetConfig(v)
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *ConnectorDefUpdate) ClearConfig() *ConnectorDefUpdate {
	_u.mutation.ClearConfig()
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *ConnectorDefUpdate) SetEnabled(v bool) *ConnectorDefUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *ConnectorDefUpdate) SetNillableEnabled(v *bool) *ConnectorDefUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ConnectorDefUpdate) SetStatus(v connectordef.Status) *ConnectorDefUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ConnectorDefUpdate) SetNillableStatus(v *connectordef.Status) *ConnectorDefUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConnectorDefUpdate) SetUpdatedAt(v time.Time) *ConnectorDefUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ConnectorDefMutation object of the builder.
func (_u *ConnectorDefUpdate) Mutation() *ConnectorDefMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConnectorDefUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConnectorDefUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConnectorDefUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConnectorDefUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConnectorDefUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := connectordef.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConnectorDefUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := connectordef.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ConnectorDef.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ConnectorDefUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(connectordef.Table, connectordef.Columns, sqlgraph.NewFieldSpec(connectordef.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(connectordef.FieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(connectordef.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(connectordef.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(connectordef.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Auth(); ok {
		_spec.SetField(connectordef.FieldAuth, field.TypeJSON, value)
	}
	if _u.mutation.AuthCleared() {
		_spec.ClearField(connectordef.FieldAuth, field.TypeJSON)
	}
	if value, ok := _u.mutation.RateLimits(); ok {
		_spec.SetField(connectordef.FieldRateLimits, field.TypeJSON, value)
	}
	if _u.mutation.RateLimitsCleared() {
		_spec.ClearField(connectordef.FieldRateLimits, field.TypeJSON)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(connectordef.FieldConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(connectordef.FieldConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(connectordef.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(connectordef.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(connectordef.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{connectordef.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConnectorDefUpdateOne is the builder for updating a single ConnectorDef entity.
type ConnectorDefUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConnectorDefMutation
}

// SetType sets the "type" field.
func (_u *ConnectorDefUpdateOne) SetType(v string) *ConnectorDefUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *ConnectorDefUpdateOne) SetNillableType(v *string) *ConnectorDefUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ConnectorDefUpdateOne) SetName(v string) *ConnectorDefUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ConnectorDefUpdateOne) SetNillableName(v *string) *ConnectorDefUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *ConnectorDefUpdateOne) SetPriority(v int) *ConnectorDefUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *ConnectorDefUpdateOne) SetNillablePriority(v *int) *ConnectorDefUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *ConnectorDefUpdateOne) AddPriority(v int) *ConnectorDefUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetAuth sets the "auth" field.
func (_u *ConnectorDefUpdateOne) SetAuth(v map[string]interface{}) *ConnectorDefUpdateOne {
	_u.mutation.SetAuth(v)
	return _u
}

// ClearAuth clears the value of the "auth" field.
func (_u *ConnectorDefUpdateOne) ClearAuth() *ConnectorDefUpdateOne {
	_u.mutation.ClearAuth()
	return _u
}

// SetRateLimits sets the "rate_limits" field.
func (_u *ConnectorDefUpdateOne) SetRateLimits(v map[string]interface{}) *ConnectorDefUpdateOne {
	_u.mutation.SetRateLimits(v)
	return _u
}

// ClearRateLimits clears the value of the "rate_limits" field.
func (_u *ConnectorDefUpdateOne) ClearRateLimits() *ConnectorDefUpdateOne {
	_u.mutation.ClearRateLimits()
	return _u
}

// SetConfig sets the "config" field.
func (_u *ConnectorDefUpdateOne) SetConfig(v map[string]interface{}) *ConnectorDefUpdateOne {
	_u.mutation.SetConfig(v)
	return _u
}

// ClearConfig clears the value of the "config" field.
func (_u *ConnectorDefUpdateOne) ClearConfig() *ConnectorDefUpdateOne {
	_u.mutation.ClearConfig()
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *ConnectorDefUpdateOne) SetEnabled(v bool) *ConnectorDefUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *ConnectorDefUpdateOne) SetNillableEnabled(v *bool) *ConnectorDefUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ConnectorDefUpdateOne) SetStatus(v connectordef.Status) *ConnectorDefUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ConnectorDefUpdateOne) SetNillableStatus(v *connectordef.Status) *ConnectorDefUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConnectorDefUpdateOne) SetUpdatedAt(v time.Time) *ConnectorDefUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ConnectorDefMutation object of the builder.
func (_u *ConnectorDefUpdateOne) Mutation() *ConnectorDefMutation {
	return _u.mutation
}

// Where appends a list predicates to the ConnectorDefUpdate builder.
func (_u *ConnectorDefUpdateOne) Where(ps ...predicate.ConnectorDef) *ConnectorDefUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConnectorDefUpdateOne) Select(field string, fields ...string) *ConnectorDefUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ConnectorDef entity.
func (_u *ConnectorDefUpdateOne) Save(ctx context.Context) (*ConnectorDef, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConnectorDefUpdateOne) SaveX(ctx context.Context) *ConnectorDef {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConnectorDefUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConnectorDefUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConnectorDefUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := connectordef.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConnectorDefUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := connectordef.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ConnectorDef.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ConnectorDefUpdateOne) sqlSave(ctx context.Context) (_node *ConnectorDef, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(connectordef.Table, connectordef.Columns, sqlgraph.NewFieldSpec(connectordef.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ConnectorDef.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, connectordef.FieldID)
		for _, f := range fields {
			if !connectordef.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != connectordef.FieldID {
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
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(connectordef.FieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(connectordef.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(connectordef.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(connectordef.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Auth(); ok {
		_spec.SetField(connectordef.FieldAuth, field.TypeJSON, value)
	}
	if _u.mutation.AuthCleared() {
		_spec.ClearField(connectordef.FieldAuth, field.TypeJSON)
	}
	if value, ok := _u.mutation.RateLimits(); ok {
		_spec.SetField(connectordef.FieldRateLimits, field.TypeJSON, value)
	}
	if _u.mutation.RateLimitsCleared() {
		_spec.ClearField(connectordef.FieldRateLimits, field.TypeJSON)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(connectordef.FieldConfig, field.TypeJSON, value)
	}
	if _u.mutation.ConfigCleared() {
		_spec.ClearField(connectordef.FieldConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(connectordef.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(connectordef.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(connectordef.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ConnectorDef{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{connectordef.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
