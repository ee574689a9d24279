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
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/ent/predicate"
)

// ApprovalRequestUpdate is the builder for updating ApprovalRequest entities.
type ApprovalRequestUpdate struct {
	config
	hooks    []Hook
	mutation *ApprovalRequestMutation
}

// Where appends a list predicates to the ApprovalRequestUpdate builder.
func (_u *ApprovalRequestUpdate) Where(ps ...predicate.ApprovalRequest) *ApprovalRequestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *ApprovalRequestUpdate) SetTitle(v string) *ApprovalRequestUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ApprovalRequestUpdate) SetNillableTitle(v *string) *ApprovalRequestUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ApprovalRequestUpdate) SetDescription(v string) *ApprovalRequestUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ApprovalRequestUpdate) SetNillableDescription(v *string) *ApprovalRequestUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ApprovalRequestUpdate) ClearDescription() *ApprovalRequestUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetRisk sets the "risk" field.
func (_u *ApprovalRequestUpdate) SetRisk(v approvalrequest.Risk) *ApprovalRequestUpdate {
	_u.mutation.SetRisk(v)
	return _u
}

// SetNillableRisk sets the "risk" field if the given value is not nil.
func (_u *ApprovalRequestUpdate) SetNillableRisk(v *approvalrequest.Risk) *ApprovalRequestUpdate {
	if v != nil {
		_u.SetRisk(*v)
	}
	return _u
}

// SetActionPayload sets the "action_payload" field.
func (_u *ApprovalRequestUpdate) SetActionPayload(v map[string]interface{}) *ApprovalRequestUpdate {
	_u.mutation.SetActionPayload(v)
	return _u
}

// ClearActionPayload clears the value of the "action_payload" field.
func (_u *ApprovalRequestUpdate) ClearActionPayload() *ApprovalRequestUpdate {
	_u.mutation.ClearActionPayload()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ApprovalRequestUpdate) SetStatus(v approvalrequest.Status) *ApprovalRequestUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ApprovalRequestUpdate) SetNillableStatus(v *approvalrequest.Status) *ApprovalRequestUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetVerified sets the "verified" field.
func (_u *ApprovalRequestUpdate) SetVerified(v bool) *ApprovalRequestUpdate {
	_u.mutation.SetVerified(v)
	return _u
}

// SetNillableVerified sets the "verified" field if the given value is not nil.
func (_u *ApprovalRequestUpdate) SetNillableVerified(v *bool) *ApprovalRequestUpdate {
	if v != nil {
		_u.SetVerified(*v)
	}
	return _u
}

// SetRespondedAt sets the "responded_at" field.
func (_u *ApprovalRequestUpdate) SetRespondedAt(v time.Time) *ApprovalRequestUpdate {
	_u.mutation.SetRespondedAt(v)
	return _u
}

// SetNillableRespondedAt sets the "responded_at" field if the given value is not nil.
func (_u *ApprovalRequestUpdate) SetNillableRespondedAt(v *time.Time) *ApprovalRequestUpdate {
	if v != nil {
		_u.SetRespondedAt(*v)
	}
	return _u
}

// ClearRespondedAt clears the value of the "responded_at" field.
func (_u *ApprovalRequestUpdate) ClearRespondedAt() *ApprovalRequestUpdate {
	_u.mutation.ClearRespondedAt()
	return _u
}

// SetRespondedBy sets the "responded_by" field.
func (_u *ApprovalRequestUpdate) SetRespondedBy(v string) *ApprovalRequestUpdate {
	_u.mutation.SetRespondedBy(v)
	return _u
}

// SetNillableRespondedBy sets the "responded_by" field if the given value is not nil.
func (_u *ApprovalRequestUpdate) SetNillableRespondedBy(v *string) *ApprovalRequestUpdate {
	if v != nil {
		_u.SetRespondedBy(*v)
	}
	return _u
}

// ClearRespondedBy clears the value of the "responded_by" field.
func (_u *ApprovalRequestUpdate) ClearRespondedBy() *ApprovalRequestUpdate {
	_u.mutation.ClearRespondedBy()
	return _u
}

// Mutation returns the ApprovalRequestMutation object of the builder.
func (_u *ApprovalRequestUpdate) Mutation() *ApprovalRequestMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ApprovalRequestUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApprovalRequestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ApprovalRequestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApprovalRequestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApprovalRequestUpdate) check() error {
	if v, ok := _u.mutation.Risk(); ok {
		if err := approvalrequest.RiskValidator(v); err != nil {
			return &ValidationError{Name: "risk", err: fmt.Errorf(`ent: validator failed for field "ApprovalRequest.risk": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := approvalrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ApprovalRequest.status": %w`, err)}
		}
	}
	if _u.mutation.InvestigationCleared() && len(_u.mutation.InvestigationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ApprovalRequest.investigation"`)
	}
	return nil
}

func (_u *ApprovalRequestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(approvalrequest.Table, approvalrequest.Columns, sqlgraph.NewFieldSpec(approvalrequest.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(approvalrequest.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(approvalrequest.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(approvalrequest.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Risk(); ok {
		_spec.SetField(approvalrequest.FieldRisk, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ActionPayload(); ok {
		_spec.SetField(approvalrequest.FieldActionPayload, field.TypeJSON, value)
	}
	if _u.mutation.ActionPayloadCleared() {
		_spec.ClearField(approvalrequest.FieldActionPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(approvalrequest.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Verified(); ok {
		_spec.SetField(approvalrequest.FieldVerified, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RespondedAt(); ok {
		_spec.SetField(approvalrequest.FieldRespondedAt, field.TypeTime, value)
	}
	if _u.mutation.RespondedAtCleared() {
		_spec.ClearField(approvalrequest.FieldRespondedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RespondedBy(); ok {
		_spec.SetField(approvalrequest.FieldRespondedBy, field.TypeString, value)
	}
	if _u.mutation.RespondedByCleared() {
		_spec.ClearField(approvalrequest.FieldRespondedBy, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{approvalrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ApprovalRequestUpdateOne is the builder for updating a single ApprovalRequest entity.
type ApprovalRequestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ApprovalRequestMutation
}

// SetTitle sets the "title" field.
func (_u *ApprovalRequestUpdateOne) SetTitle(v string) *ApprovalRequestUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ApprovalRequestUpdateOne) SetNillableTitle(v *string) *ApprovalRequestUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ApprovalRequestUpdateOne) SetDescription(v string) *ApprovalRequestUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ApprovalRequestUpdateOne) SetNillableDescription(v *string) *ApprovalRequestUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ApprovalRequestUpdateOne) ClearDescription() *ApprovalRequestUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetRisk sets the "risk" field.
func (_u *ApprovalRequestUpdateOne) SetRisk(v approvalrequest.Risk) *ApprovalRequestUpdateOne {
	_u.mutation.SetRisk(v)
	return _u
}

// SetNillableRisk sets the "risk" field if the given value is not nil.
func (_u *ApprovalRequestUpdateOne) SetNillableRisk(v *approvalrequest.Risk) *ApprovalRequestUpdateOne {
	if v != nil {
		_u.SetRisk(*v)
	}
	return _u
}

// SetActionPayload sets the "action_payload" field.
func (_u *ApprovalRequestUpdateOne) SetActionPayload(v map[string]interface{}) *ApprovalRequestUpdateOne {
	_u.mutation.SetActionPayload(v)
	return _u
}

// ClearActionPayload clears the value of the "action_payload" field.
func (_u *ApprovalRequestUpdateOne) ClearActionPayload() *ApprovalRequestUpdateOne {
	_u.mutation.ClearActionPayload()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ApprovalRequestUpdateOne) SetStatus(v approvalrequest.Status) *ApprovalRequestUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ApprovalRequestUpdateOne) SetNillableStatus(v *approvalrequest.Status) *ApprovalRequestUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetVerified sets the "verified" field.
func (_u *ApprovalRequestUpdateOne) SetVerified(v bool) *ApprovalRequestUpdateOne {
	_u.mutation.SetVerified(v)
	return _u
}

// SetNillableVerified sets the "verified" field if the given value is not nil.
func (_u *ApprovalRequestUpdateOne) SetNillableVerified(v *bool) *ApprovalRequestUpdateOne {
	if v != nil {
		_u.SetVerified(*v)
	}
	return _u
}

// SetRespondedAt sets the "responded_at" field.
func (_u *ApprovalRequestUpdateOne) SetRespondedAt(v time.Time) *ApprovalRequestUpdateOne {
	_u.mutation.SetRespondedAt(v)
	return _u
}

// SetNillableRespondedAt sets the "responded_at" field if the given value is not nil.
func (_u *ApprovalRequestUpdateOne) SetNillableRespondedAt(v *time.Time) *ApprovalRequestUpdateOne {
	if v != nil {
		_u.SetRespondedAt(*v)
	}
	return _u
}

// ClearRespondedAt clears the value of the "responded_at" field.
func (_u *ApprovalRequestUpdateOne) ClearRespondedAt() *ApprovalRequestUpdateOne {
	_u.mutation.ClearRespondedAt()
	return _u
}

// SetRespondedBy sets the "responded_by" field.
func (_u *ApprovalRequestUpdateOne) SetRespondedBy(v string) *ApprovalRequestUpdateOne {
	_u.mutation.SetRespondedBy(v)
	return _u
}

// SetNillableRespondedBy sets the "responded_by" field if the given value is not nil.
func (_u *ApprovalRequestUpdateOne) SetNillableRespondedBy(v *string) *ApprovalRequestUpdateOne {
	if v != nil {
		_u.SetRespondedBy(*v)
	}
	return _u
}

// ClearRespondedBy clears the value of the "responded_by" field.
func (_u *ApprovalRequestUpdateOne) ClearRespondedBy() *ApprovalRequestUpdateOne {
	_u.mutation.ClearRespondedBy()
	return _u
}

// Mutation returns the ApprovalRequestMutation object of the builder.
func (_u *ApprovalRequestUpdateOne) Mutation() *ApprovalRequestMutation {
	return _u.mutation
}

// Where appends a list predicates to the ApprovalRequestUpdate builder.
func (_u *ApprovalRequestUpdateOne) Where(ps ...predicate.ApprovalRequest) *ApprovalRequestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ApprovalRequestUpdateOne) Select(field string, fields ...string) *ApprovalRequestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ApprovalRequest entity.
func (_u *ApprovalRequestUpdateOne) Save(ctx context.Context) (*ApprovalRequest, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApprovalRequestUpdateOne) SaveX(ctx context.Context) *ApprovalRequest {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ApprovalRequestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApprovalRequestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApprovalRequestUpdateOne) check() error {
	if v, ok := _u.mutation.Risk(); ok {
		if err := approvalrequest.RiskValidator(v); err != nil {
			return &ValidationError{Name: "risk", err: fmt.Errorf(`ent: validator failed for field "ApprovalRequest.risk": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := approvalrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ApprovalRequest.status": %w`, err)}
		}
	}
	if _u.mutation.InvestigationCleared() && len(_u.mutation.InvestigationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ApprovalRequest.investigation"`)
	}
	return nil
}

func (_u *ApprovalRequestUpdateOne) sqlSave(ctx context.Context) (_node *ApprovalRequest, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(approvalrequest.Table, approvalrequest.Columns, sqlgraph.NewFieldSpec(approvalrequest.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ApprovalRequest.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, approvalrequest.FieldID)
		for _, f := range fields {
			if !approvalrequest.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != approvalrequest.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(approvalrequest.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(approvalrequest.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(approvalrequest.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Risk(); ok {
		_spec.SetField(approvalrequest.FieldRisk, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ActionPayload(); ok {
		_spec.SetField(approvalrequest.FieldActionPayload, field.TypeJSON, value)
	}
	if _u.mutation.ActionPayloadCleared() {
		_spec.ClearField(approvalrequest.FieldActionPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(approvalrequest.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Verified(); ok {
		_spec.SetField(approvalrequest.FieldVerified, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RespondedAt(); ok {
		_spec.SetField(approvalrequest.FieldRespondedAt, field.TypeTime, value)
	}
	if _u.mutation.RespondedAtCleared() {
		_spec.ClearField(approvalrequest.FieldRespondedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RespondedBy(); ok {
		_spec.SetField(approvalrequest.FieldRespondedBy, field.TypeString, value)
	}
	if _u.mutation.RespondedByCleared() {
		_spec.ClearField(approvalrequest.FieldRespondedBy, field.TypeString)
	}
	_node = &ApprovalRequest{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{approvalrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
