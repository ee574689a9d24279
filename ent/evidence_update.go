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
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/ent/evidence"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/ent/evidencerelationship"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/ent/predicate"
)

// EvidenceUpdate is the builder for updating Evidence entities.
type EvidenceUpdate struct {
	config
	hooks    []Hook
	mutation *EvidenceMutation
}

// Where appends a list predicates to the EvidenceUpdate builder.
func (_u *EvidenceUpdate) Where(ps ...predicate.Evidence) *EvidenceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetType sets the "type" field.
func (_u *EvidenceUpdate) SetType(v evidence.Type) *EvidenceUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *EvidenceUpdate) SetNillableType(v *evidence.Type) *EvidenceUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *EvidenceUpdate) SetSource(v string) *EvidenceUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *EvidenceUpdate) SetNillableSource(v *string) *EvidenceUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *EvidenceUpdate) SetTimestamp(v time.Time) *EvidenceUpdate {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *EvidenceUpdate) SetNillableTimestamp(v *time.Time) *EvidenceUpdate {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *EvidenceUpdate) SetPayload(v map[string]interface{}) *EvidenceUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *EvidenceUpdate) ClearPayload() *EvidenceUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// SetEntities sets the "entities" field.
func (_u *EvidenceUpdate) SetEntities(v map[string][]string) *EvidenceUpdate {
	_u.mutation.SetEntities(v)
	return _u
}

// ClearEntities clears the value of the "entities" field.
func (_u *EvidenceUpdate) ClearEntities() *EvidenceUpdate {
	_u.mutation.ClearEntities()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *EvidenceUpdate) SetConfidence(v float64) *EvidenceUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *EvidenceUpdate) SetNillableConfidence(v *float64) *EvidenceUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *EvidenceUpdate) AddConfidence(v float64) *EvidenceUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetQualityScore sets the "quality_score" field.
func (_u *EvidenceUpdate) SetQualityScore(v float64) *EvidenceUpdate {
	_u.mutation.ResetQualityScore()
	_u.mutation.SetQualityScore(v)
	return _u
}

// SetNillableQualityScore sets the "quality_score" field if the given value is not nil.
func (_u *EvidenceUpdate) SetNillableQualityScore(v *float64) *EvidenceUpdate {
	if v != nil {
		_u.SetQualityScore(*v)
	}
	return _u
}

// AddQualityScore adds value to the "quality_score" field.
func (_u *EvidenceUpdate) AddQualityScore(v float64) *EvidenceUpdate {
	_u.mutation.AddQualityScore(v)
	return _u
}

// SetScoreBreakdown sets the "score_breakdown" field.
func (_u *EvidenceUpdate) SetScoreBreakdown(v map[string]float64) *EvidenceUpdate {
	_u.mutation.SetScoreBreakdown(v)
	return _u
}

// ClearScoreBreakdown clears the value of the "score_breakdown" field.
func (_u *EvidenceUpdate) ClearScoreBreakdown() *EvidenceUpdate {
	_u.mutation.ClearScoreBreakdown()
	return _u
}

// SetTags sets the "tags" field.
func (_u *EvidenceUpdate) SetTags(v []string) *EvidenceUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *EvidenceUpdate) AppendTags(v []string) *EvidenceUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *EvidenceUpdate) ClearTags() *EvidenceUpdate {
	_u.mutation.ClearTags()
	return _u
}

// AddOutgoingRelationshipIDs adds the "outgoing_relationships" edge to the EvidenceRelationship entity by IDs.
func (_u *EvidenceUpdate) AddOutgoingRelationshipIDs(ids ...string) *EvidenceUpdate {
	_u.mutation.AddOutgoingRelationshipIDs(ids...)
	return _u
}

// AddOutgoingRelationships adds the "outgoing_relationships" edges to the EvidenceRelationship entity.
func (_u *EvidenceUpdate) AddOutgoingRelationships(v ...*EvidenceRelationship) *EvidenceUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOutgoingRelationshipIDs(ids...)
}

// Mutation returns the EvidenceMutation object of the builder.
func (_u *EvidenceUpdate) Mutation() *EvidenceMutation {
	return _u.mutation
}

// ClearOutgoingRelationships clears all "outgoing_relationships" edges to the EvidenceRelationship entity.
func (_u *EvidenceUpdate) ClearOutgoingRelationships() *EvidenceUpdate {
	_u.mutation.ClearOutgoingRelationships()
	return _u
}

// RemoveOutgoingRelationshipIDs removes the "outgoing_relationships" edge to EvidenceRelationship entities by IDs.
func (_u *EvidenceUpdate) RemoveOutgoingRelationshipIDs(ids ...string) *EvidenceUpdate {
	_u.mutation.RemoveOutgoingRelationshipIDs(ids...)
	return _u
}

// RemoveOutgoingRelationships removes "outgoing_relationships" edges to EvidenceRelationship entities.
func (_u *EvidenceUpdate) RemoveOutgoingRelationships(v ...*EvidenceRelationship) *EvidenceUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOutgoingRelationshipIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EvidenceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvidenceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EvidenceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvidenceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvidenceUpdate) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := evidence.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Evidence.type": %w`, err)}
		}
	}
	if _u.mutation.InvestigationCleared() && len(_u.mutation.InvestigationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Evidence.investigation"`)
	}
	return nil
}

func (_u *EvidenceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evidence.Table, evidence.Columns, sqlgraph.NewFieldSpec(evidence.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.StepIDCleared() {
		_spec.ClearField(evidence.FieldStepID, field.TypeString)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(evidence.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(evidence.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(evidence.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(evidence.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(evidence.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.Entities(); ok {
		_spec.SetField(evidence.FieldEntities, field.TypeJSON, value)
	}
	if _u.mutation.EntitiesCleared() {
		_spec.ClearField(evidence.FieldEntities, field.TypeJSON)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(evidence.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(evidence.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.QualityScore(); ok {
		_spec.SetField(evidence.FieldQualityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQualityScore(); ok {
		_spec.AddField(evidence.FieldQualityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ScoreBreakdown(); ok {
		_spec.SetField(evidence.FieldScoreBreakdown, field.TypeJSON, value)
	}
	if _u.mutation.ScoreBreakdownCleared() {
		_spec.ClearField(evidence.FieldScoreBreakdown, field.TypeJSON)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(evidence.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, evidence.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(evidence.FieldTags, field.TypeJSON)
	}
	if _u.mutation.SupersedesCleared() {
		_spec.ClearField(evidence.FieldSupersedes, field.TypeString)
	}
	if _u.mutation.OutgoingRelationshipsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   evidence.OutgoingRelationshipsTable,
			Columns: []string{evidence.OutgoingRelationshipsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evidencerelationship.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOutgoingRelationshipsIDs(); len(nodes) > 0 && !_u.mutation.OutgoingRelationshipsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   evidence.OutgoingRelationshipsTable,
			Columns: []string{evidence.OutgoingRelationshipsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evidencerelationship.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OutgoingRelationshipsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   evidence.OutgoingRelationshipsTable,
			Columns: []string{evidence.OutgoingRelationshipsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evidencerelationship.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evidence.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EvidenceUpdateOne is the builder for updating a single Evidence entity.
type EvidenceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EvidenceMutation
}

// SetType sets the "type" field.
func (_u *EvidenceUpdateOne) SetType(v evidence.Type) *EvidenceUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *EvidenceUpdateOne) SetNillableType(v *evidence.Type) *EvidenceUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *EvidenceUpdateOne) SetSource(v string) *EvidenceUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *EvidenceUpdateOne) SetNillableSource(v *string) *EvidenceUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *EvidenceUpdateOne) SetTimestamp(v time.Time) *EvidenceUpdateOne {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *EvidenceUpdateOne) SetNillableTimestamp(v *time.Time) *EvidenceUpdateOne {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *EvidenceUpdateOne) SetPayload(v map[string]interface{}) *EvidenceUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *EvidenceUpdateOne) ClearPayload() *EvidenceUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// SetEntities sets the "entities" field.
func (_u *EvidenceUpdateOne) SetEntities(v map[string][]string) *EvidenceUpdateOne {
	_u.mutation.SetEntities(v)
	return _u
}

// ClearEntities clears the value of the "entities" field.
func (_u *EvidenceUpdateOne) ClearEntities() *EvidenceUpdateOne {
	_u.mutation.ClearEntities()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *EvidenceUpdateOne) SetConfidence(v float64) *EvidenceUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *EvidenceUpdateOne) SetNillableConfidence(v *float64) *EvidenceUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *EvidenceUpdateOne) AddConfidence(v float64) *EvidenceUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetQualityScore sets the "quality_score" field.
func (_u *EvidenceUpdateOne) SetQualityScore(v float64) *EvidenceUpdateOne {
	_u.mutation.ResetQualityScore()
	_u.mutation.SetQualityScore(v)
	return _u
}

// SetNillableQualityScore sets the "quality_score" field if the given value is not nil.
func (_u *EvidenceUpdateOne) SetNillableQualityScore(v *float64) *EvidenceUpdateOne {
	if v != nil {
		_u.SetQualityScore(*v)
	}
	return _u
}

// AddQualityScore adds value to the "quality_score" field.
func (_u *EvidenceUpdateOne) AddQualityScore(v float64) *EvidenceUpdateOne {
	_u.mutation.AddQualityScore(v)
	return _u
}

// SetScoreBreakdown sets the "score_breakdown" field.
func (_u *EvidenceUpdateOne) SetScoreBreakdown(v map[string]float64) *EvidenceUpdateOne {
	_u.mutation.SetScoreBreakdown(v)
	return _u
}

// ClearScoreBreakdown clears the value of the "score_breakdown" field.
func (_u *EvidenceUpdateOne) ClearScoreBreakdown() *EvidenceUpdateOne {
	_u.mutation.ClearScoreBreakdown()
	return _u
}

// SetTags sets the "tags" field.
func (_u *EvidenceUpdateOne) SetTags(v []string) *EvidenceUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *EvidenceUpdateOne) AppendTags(v []string) *EvidenceUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *EvidenceUpdateOne) ClearTags() *EvidenceUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// AddOutgoingRelationshipIDs adds the "outgoing_relationships" edge to the EvidenceRelationship entity by IDs.
func (_u *EvidenceUpdateOne) AddOutgoingRelationshipIDs(ids ...string) *EvidenceUpdateOne {
	_u.mutation.AddOutgoingRelationshipIDs(ids...)
	return _u
}

// AddOutgoingRelationships adds the "outgoing_relationships" edges to the EvidenceRelationship entity.
func (_u *EvidenceUpdateOne) AddOutgoingRelationships(v ...*EvidenceRelationship) *EvidenceUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOutgoingRelationshipIDs(ids...)
}

// Mutation returns the EvidenceMutation object of the builder.
func (_u *EvidenceUpdateOne) Mutation() *EvidenceMutation {
	return _u.mutation
}

// ClearOutgoingRelationships clears all "outgoing_relationships" edges to the EvidenceRelationship entity.
func (_u *EvidenceUpdateOne) ClearOutgoingRelationships() *EvidenceUpdateOne {
	_u.mutation.ClearOutgoingRelationships()
	return _u
}

// RemoveOutgoingRelationshipIDs removes the "outgoing_relationships" edge to EvidenceRelationship entities by IDs.
func (_u *EvidenceUpdateOne) RemoveOutgoingRelationshipIDs(ids ...string) *EvidenceUpdateOne {
	_u.mutation.RemoveOutgoingRelationshipIDs(ids...)
	return _u
}

// RemoveOutgoingRelationships removes "outgoing_relationships" edges to EvidenceRelationship entities.
func (_u *EvidenceUpdateOne) RemoveOutgoingRelationships(v ...*EvidenceRelationship) *EvidenceUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOutgoingRelationshipIDs(ids...)
}

// Where appends a list predicates to the EvidenceUpdate builder.
func (_u *EvidenceUpdateOne) Where(ps ...predicate.Evidence) *EvidenceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EvidenceUpdateOne) Select(field string, fields ...string) *EvidenceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Evidence entity.
func (_u *EvidenceUpdateOne) Save(ctx context.Context) (*Evidence, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvidenceUpdateOne) SaveX(ctx context.Context) *Evidence {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EvidenceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvidenceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvidenceUpdateOne) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := evidence.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Evidence.type": %w`, err)}
		}
	}
	if _u.mutation.InvestigationCleared() && len(_u.mutation.InvestigationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Evidence.investigation"`)
	}
	return nil
}

func (_u *EvidenceUpdateOne) sqlSave(ctx context.Context) (_node *Evidence, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evidence.Table, evidence.Columns, sqlgraph.NewFieldSpec(evidence.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Evidence.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, evidence.FieldID)
		for _, f := range fields {
			if !evidence.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != evidence.FieldID {
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
	if _u.mutation.StepIDCleared() {
		_spec.ClearField(evidence.FieldStepID, field.TypeString)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(evidence.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(evidence.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(evidence.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(evidence.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(evidence.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.Entities(); ok {
		_spec.SetField(evidence.FieldEntities, field.TypeJSON, value)
	}
	if _u.mutation.EntitiesCleared() {
		_spec.ClearField(evidence.FieldEntities, field.TypeJSON)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(evidence.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(evidence.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.QualityScore(); ok {
		_spec.SetField(evidence.FieldQualityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQualityScore(); ok {
		_spec.AddField(evidence.FieldQualityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ScoreBreakdown(); ok {
		_spec.SetField(evidence.FieldScoreBreakdown, field.TypeJSON, value)
	}
	if _u.mutation.ScoreBreakdownCleared() {
		_spec.ClearField(evidence.FieldScoreBreakdown, field.TypeJSON)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(evidence.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, evidence.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(evidence.FieldTags, field.TypeJSON)
	}
	if _u.mutation.SupersedesCleared() {
		_spec.ClearField(evidence.FieldSupersedes, field.TypeString)
	}
	if _u.mutation.OutgoingRelationshipsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   evidence.OutgoingRelationshipsTable,
			Columns: []string{evidence.OutgoingRelationshipsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evidencerelationship.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOutgoingRelationshipsIDs(); len(nodes) > 0 && !_u.mutation.OutgoingRelationshipsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   evidence.OutgoingRelationshipsTable,
			Columns: []string{evidence.OutgoingRelationshipsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evidencerelationship.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OutgoingRelationshipsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   evidence.OutgoingRelationshipsTable,
			Columns: []string{evidence.OutgoingRelationshipsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evidencerelationship.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Evidence{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evidence.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
