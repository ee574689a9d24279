// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/ent/evidencerelationship"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/ent/predicate"
)

// EvidenceRelationshipUpdate is the builder for updating EvidenceRelationship entities.
type EvidenceRelationshipUpdate struct {
	config
	hooks    []Hook
	mutation *EvidenceRelationshipMutation
}

// Where appends a list predicates to the EvidenceRelationshipUpdate builder.
func (_u *EvidenceRelationshipUpdate) Where(ps ...predicate.EvidenceRelationship) *EvidenceRelationshipUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKind sets the "kind" field.
func (_u *EvidenceRelationshipUpdate) SetKind(v evidencerelationship.Kind) *EvidenceRelationshipUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *EvidenceRelationshipUpdate) SetNillableKind(v *evidencerelationship.Kind) *EvidenceRelationshipUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetStrength sets the "strength" field.
func (_u *EvidenceRelationshipUpdate) SetStrength(v float64) *EvidenceRelationshipUpdate {
	_u.mutation.ResetStrength()
	_u.mutation.SetStrength(v)
	return _u
}

// SetNillableStrength sets the "strength" field if the given value is not nil.
func (_u *EvidenceRelationshipUpdate) SetNillableStrength(v *float64) *EvidenceRelationshipUpdate {
	if v != nil {
		_u.SetStrength(*v)
	}
	return _u
}

// AddStrength adds value to the "strength" field.
func (_u *EvidenceRelationshipUpdate) AddStrength(v float64) *EvidenceRelationshipUpdate {
	_u.mutation.AddStrength(v)
	return _u
}

// SetRationale sets the "rationale" field.
func (_u *EvidenceRelationshipUpdate) SetRationale(v string) *EvidenceRelationshipUpdate {
	_u.mutation.SetRationale(v)
	return _u
}

// SetNillableRationale sets the "rationale" field if the given value is not nil.
func (_u *EvidenceRelationshipUpdate) SetNillableRationale(v *string) *EvidenceRelationshipUpdate {
	if v != nil {
		_u.SetRationale(*v)
	}
	return _u
}

// ClearRationale clears the value of the "rationale" field.
func (_u *EvidenceRelationshipUpdate) ClearRationale() *EvidenceRelationshipUpdate {
	_u.mutation.ClearRationale()
	return _u
}

// Mutation returns the EvidenceRelationshipMutation object of the builder.
func (_u *EvidenceRelationshipUpdate) Mutation() *EvidenceRelationshipMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EvidenceRelationshipUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvidenceRelationshipUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EvidenceRelationshipUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvidenceRelationshipUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvidenceRelationshipUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := evidencerelationship.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "EvidenceRelationship.kind": %w`, err)}
		}
	}
	if _u.mutation.FromEvidenceCleared() && len(_u.mutation.FromEvidenceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EvidenceRelationship.from_evidence"`)
	}
	return nil
}

func (_u *EvidenceRelationshipUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evidencerelationship.Table, evidencerelationship.Columns, sqlgraph.NewFieldSpec(evidencerelationship.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(evidencerelationship.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Strength(); ok {
		_spec.SetField(evidencerelationship.FieldStrength, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStrength(); ok {
		_spec.AddField(evidencerelationship.FieldStrength, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Rationale(); ok {
		_spec.SetField(evidencerelationship.FieldRationale, field.TypeString, value)
	}
	if _u.mutation.RationaleCleared() {
		_spec.ClearField(evidencerelationship.FieldRationale, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evidencerelationship.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EvidenceRelationshipUpdateOne is the builder for updating a single EvidenceRelationship entity.
type EvidenceRelationshipUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EvidenceRelationshipMutation
}

// SetKind sets the "kind" field.
func (_u *EvidenceRelationshipUpdateOne) SetKind(v evidencerelationship.Kind) *EvidenceRelationshipUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *EvidenceRelationshipUpdateOne) SetNillableKind(v *evidencerelationship.Kind) *EvidenceRelationshipUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetStrength sets the "strength" field.
func (_u *EvidenceRelationshipUpdateOne) SetStrength(v float64) *EvidenceRelationshipUpdateOne {
	_u.mutation.ResetStrength()
	_u.mutation.SetStrength(v)
	return _u
}

// SetNillableStrength sets the "strength" field if the given value is not nil.
func (_u *EvidenceRelationshipUpdateOne) SetNillableStrength(v *float64) *EvidenceRelationshipUpdateOne {
	if v != nil {
		_u.SetStrength(*v)
	}
	return _u
}

// AddStrength adds value to the "strength" field.
func (_u *EvidenceRelationshipUpdateOne) AddStrength(v float64) *EvidenceRelationshipUpdateOne {
	_u.mutation.AddStrength(v)
	return _u
}

// SetRationale sets the "rationale" field.
func (_u *EvidenceRelationshipUpdateOne) SetRationale(v string) *EvidenceRelationshipUpdateOne {
	_u.mutation.SetRationale(v)
	return _u
}

// SetNillableRationale sets the "rationale" field if the given value is not nil.
func (_u *EvidenceRelationshipUpdateOne) SetNillableRationale(v *string) *EvidenceRelationshipUpdateOne {
	if v != nil {
		_u.SetRationale(*v)
	}
	return _u
}

// ClearRationale clears the value of the "rationale" field.
func (_u *EvidenceRelationshipUpdateOne) ClearRationale() *EvidenceRelationshipUpdateOne {
	_u.mutation.ClearRationale()
	return _u
}

// Mutation returns the EvidenceRelationshipMutation object of the builder.
func (_u *EvidenceRelationshipUpdateOne) Mutation() *EvidenceRelationshipMutation {
	return _u.mutation
}

// Where appends a list predicates to the EvidenceRelationshipUpdate builder.
func (_u *EvidenceRelationshipUpdateOne) Where(ps ...predicate.EvidenceRelationship) *EvidenceRelationshipUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EvidenceRelationshipUpdateOne) Select(field string, fields ...string) *EvidenceRelationshipUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EvidenceRelationship entity.
func (_u *EvidenceRelationshipUpdateOne) Save(ctx context.Context) (*EvidenceRelationship, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvidenceRelationshipUpdateOne) SaveX(ctx context.Context) *EvidenceRelationship {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EvidenceRelationshipUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvidenceRelationshipUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvidenceRelationshipUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := evidencerelationship.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "EvidenceRelationship.kind": %w`, err)}
		}
	}
	if _u.mutation.FromEvidenceCleared() && len(_u.mutation.FromEvidenceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EvidenceRelationship.from_evidence"`)
	}
	return nil
}

func (_u *EvidenceRelationshipUpdateOne) sqlSave(ctx context.Context) (_node *EvidenceRelationship, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evidencerelationship.Table, evidencerelationship.Columns, sqlgraph.NewFieldSpec(evidencerelationship.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EvidenceRelationship.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, evidencerelationship.FieldID)
		for _, f := range fields {
			if !evidencerelationship.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != evidencerelationship.FieldID {
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
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(evidencerelationship.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Strength(); ok {
		_spec.SetField(evidencerelationship.FieldStrength, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStrength(); ok {
		_spec.AddField(evidencerelationship.FieldStrength, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Rationale(); ok {
		_spec.SetField(evidencerelationship.FieldRationale, field.TypeString, value)
	}
	if _u.mutation.RationaleCleared() {
		_spec.ClearField(evidencerelationship.FieldRationale, field.TypeString)
	}
	_node = &EvidenceRelationship{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evidencerelationship.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
