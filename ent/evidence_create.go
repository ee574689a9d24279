// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/ent/evidence"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/ent/evidencerelationship"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/ent/investigation"
)

// EvidenceCreate is the builder for creating a Evidence entity.
type EvidenceCreate struct {
	config
	mutation *EvidenceMutation
	hooks    []Hook
}

// SetInvestigationID sets the "investigation_id" field.
func (_c *EvidenceCreate) SetInvestigationID(v string) *EvidenceCreate {
	_c.mutation.SetInvestigationID(v)
	return _c
}

// SetTenantID sets the "tenant_id" field.
func (_c *EvidenceCreate) SetTenantID(v string) *EvidenceCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetStepID sets the "step_id" field.
func (_c *EvidenceCreate) SetStepID(v string) *EvidenceCreate {
	_c.mutation.SetStepID(v)
	return _c
}

// SetNillableStepID sets the "step_id" field if the given value is not nil.
func (_c *EvidenceCreate) SetNillableStepID(v *string) *EvidenceCreate {
	if v != nil {
		_c.SetStepID(*v)
	}
	return _c
}

// SetType sets the "type" field.
func (_c *EvidenceCreate) SetType(v evidence.Type) *EvidenceCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_c *EvidenceCreate) SetNillableType(v *evidence.Type) *EvidenceCreate {
	if v != nil {
		_c.SetType(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *EvidenceCreate) SetSource(v string) *EvidenceCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *EvidenceCreate) SetTimestamp(v time.Time) *EvidenceCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *EvidenceCreate) SetPayload(v map[string]interface{}) *EvidenceCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetEntities sets the "entities" field.
func (_c *EvidenceCreate) SetEntities(v map[string][]string) *EvidenceCreate {
	_c.mutation.SetEntities(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *EvidenceCreate) SetConfidence(v float64) *EvidenceCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *EvidenceCreate) SetNillableConfidence(v *float64) *EvidenceCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetQualityScore sets the "quality_score" field.
func (_c *EvidenceCreate) SetQualityScore(v float64) *EvidenceCreate {
	_c.mutation.SetQualityScore(v)
	return _c
}

// SetNillableQualityScore sets the "quality_score" field if the given value is not nil.
func (_c *EvidenceCreate) SetNillableQualityScore(v *float64) *EvidenceCreate {
	if v != nil {
		_c.SetQualityScore(*v)
	}
	return _c
}

// SetScoreBreakdown sets the "score_breakdown" field.
func (_c *EvidenceCreate) SetScoreBreakdown(v map[string]float64) *EvidenceCreate {
	_c.mutation.SetScoreBreakdown(v)
	return _c
}

// SetTags sets the "tags" field.
func (_c *EvidenceCreate) SetTags(v []string) *EvidenceCreate {
	_c.mutation.SetTags(v)
	return _c
}

// SetSupersedes sets the "supersedes" field.
func (_c *EvidenceCreate) SetSupersedes(v string) *EvidenceCreate {
	_c.mutation.SetSupersedes(v)
	return _c
}

// SetNillableSupersedes sets the "supersedes" field if the given value is not nil.
func (_c *EvidenceCreate) SetNillableSupersedes(v *string) *EvidenceCreate {
	if v != nil {
		_c.SetSupersedes(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EvidenceCreate) SetCreatedAt(v time.Time) *EvidenceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EvidenceCreate) SetNillableCreatedAt(v *time.Time) *EvidenceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EvidenceCreate) SetID(v string) *EvidenceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetInvestigation sets the "investigation" edge to the Investigation entity.
func (_c *EvidenceCreate) SetInvestigation(v *Investigation) *EvidenceCreate {
	return _c.SetInvestigationID(v.ID)
}

// AddOutgoingRelationshipIDs adds the "outgoing_relationships" edge to the EvidenceRelationship entity by IDs.
func (_c *EvidenceCreate) AddOutgoingRelationshipIDs(ids ...string) *EvidenceCreate {
	_c.mutation.AddOutgoingRelationshipIDs(ids...)
	return _c
}

// AddOutgoingRelationships adds the "outgoing_relationships" edges to the EvidenceRelationship entity.
func (_c *EvidenceCreate) AddOutgoingRelationships(v ...*EvidenceRelationship) *EvidenceCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddOutgoingRelationshipIDs(ids...)
}

// Mutation returns the EvidenceMutation object of the builder.
func (_c *EvidenceCreate) Mutation() *EvidenceMutation {
	return _c.mutation
}

// Save creates the Evidence in the database.
func (_c *EvidenceCreate) Save(ctx context.Context) (*Evidence, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EvidenceCreate) SaveX(ctx context.Context) *Evidence {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvidenceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvidenceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EvidenceCreate) defaults() {
	if _, ok := _c.mutation.GetType(); !ok {
		v := evidence.DefaultType
		_c.mutation.SetType(v)
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		v := evidence.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.QualityScore(); !ok {
		v := evidence.DefaultQualityScore
		_c.mutation.SetQualityScore(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := evidence.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EvidenceCreate) check() error {
	if _, ok := _c.mutation.InvestigationID(); !ok {
		return &ValidationError{Name: "investigation_id", err: errors.New(`ent: missing required field "Evidence.investigation_id"`)}
	}
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "Evidence.tenant_id"`)}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "Evidence.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := evidence.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Evidence.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "Evidence.source"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "Evidence.timestamp"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "Evidence.confidence"`)}
	}
	if _, ok := _c.mutation.QualityScore(); !ok {
		return &ValidationError{Name: "quality_score", err: errors.New(`ent: missing required field "Evidence.quality_score"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Evidence.created_at"`)}
	}
	if len(_c.mutation.InvestigationIDs()) == 0 {
		return &ValidationError{Name: "investigation", err: errors.New(`ent: missing required edge "Evidence.investigation"`)}
	}
	return nil
}

func (_c *EvidenceCreate) sqlSave(ctx context.Context) (*Evidence, error) {
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
			return nil, fmt.Errorf("unexpected Evidence.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EvidenceCreate) createSpec() (*Evidence, *sqlgraph.CreateSpec) {
	var (
		_node = &Evidence{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(evidence.Table, sqlgraph.NewFieldSpec(evidence.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(evidence.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.StepID(); ok {
		_spec.SetField(evidence.FieldStepID, field.TypeString, value)
		_node.StepID = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(evidence.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(evidence.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(evidence.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(evidence.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.Entities(); ok {
		_spec.SetField(evidence.FieldEntities, field.TypeJSON, value)
		_node.Entities = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(evidence.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.QualityScore(); ok {
		_spec.SetField(evidence.FieldQualityScore, field.TypeFloat64, value)
		_node.QualityScore = value
	}
	if value, ok := _c.mutation.ScoreBreakdown(); ok {
		_spec.SetField(evidence.FieldScoreBreakdown, field.TypeJSON, value)
		_node.ScoreBreakdown = value
	}
	if value, ok := _c.mutation.Tags(); ok {
		_spec.SetField(evidence.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	if value, ok := _c.mutation.Supersedes(); ok {
		_spec.SetField(evidence.FieldSupersedes, field.TypeString, value)
		_node.Supersedes = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(evidence.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.InvestigationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   evidence.InvestigationTable,
			Columns: []string{evidence.InvestigationColumn},
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
	if nodes := _c.mutation.OutgoingRelationshipsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// EvidenceCreateBulk is the builder for creating many Evidence entities in bulk.
type EvidenceCreateBulk struct {
	config
	err      error
	builders []*EvidenceCreate
}

// Save creates the Evidence entities in the database.
func (_c *EvidenceCreateBulk) Save(ctx context.Context) ([]*Evidence, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Evidence, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EvidenceMutation)
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
func (_c *EvidenceCreateBulk) SaveX(ctx context.Context) []*Evidence {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvidenceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvidenceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
