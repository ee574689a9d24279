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
)

// EvidenceRelationshipCreate is the builder for creating a EvidenceRelationship entity.
type EvidenceRelationshipCreate struct {
	config
	mutation *EvidenceRelationshipMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *EvidenceRelationshipCreate) SetTenantID(v string) *EvidenceRelationshipCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetInvestigationID sets the "investigation_id" field.
func (_c *EvidenceRelationshipCreate) SetInvestigationID(v string) *EvidenceRelationshipCreate {
	_c.mutation.SetInvestigationID(v)
	return _c
}

// SetFromEvidenceID sets the "from_evidence_id" field.
func (_c *EvidenceRelationshipCreate) SetFromEvidenceID(v string) *EvidenceRelationshipCreate {
	_c.mutation.SetFromEvidenceID(v)
	return _c
}

// SetToEvidenceID sets the "to_evidence_id" field.
func (_c *EvidenceRelationshipCreate) SetToEvidenceID(v string) *EvidenceRelationshipCreate {
	_c.mutation.SetToEvidenceID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *EvidenceRelationshipCreate) SetKind(v evidencerelationship.Kind) *EvidenceRelationshipCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetStrength sets the "strength" field.
func (_c *EvidenceRelationshipCreate) SetStrength(v float64) *EvidenceRelationshipCreate {
	_c.mutation.SetStrength(v)
	return _c
}

// SetRationale sets the "rationale" field.
func (_c *EvidenceRelationshipCreate) SetRationale(v string) *EvidenceRelationshipCreate {
	_c.mutation.SetRationale(v)
	return _c
}

// SetNillableRationale sets the "rationale" field if the given value is not nil.
func (_c *EvidenceRelationshipCreate) SetNillableRationale(v *string) *EvidenceRelationshipCreate {
	if v != nil {
		_c.SetRationale(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EvidenceRelationshipCreate) SetCreatedAt(v time.Time) *EvidenceRelationshipCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EvidenceRelationshipCreate) SetNillableCreatedAt(v *time.Time) *EvidenceRelationshipCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EvidenceRelationshipCreate) SetID(v string) *EvidenceRelationshipCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetFromEvidence sets the "from_evidence" edge to the Evidence entity.
func (_c *EvidenceRelationshipCreate) SetFromEvidence(v *Evidence) *EvidenceRelationshipCreate {
	return _c.SetFromEvidenceID(v.ID)
}

// Mutation returns the EvidenceRelationshipMutation object of the builder.
func (_c *EvidenceRelationshipCreate) Mutation() *EvidenceRelationshipMutation {
	return _c.mutation
}

// Save creates the EvidenceRelationship in the database.
func (_c *EvidenceRelationshipCreate) Save(ctx context.Context) (*EvidenceRelationship, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EvidenceRelationshipCreate) SaveX(ctx context.Context) *EvidenceRelationship {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvidenceRelationshipCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvidenceRelationshipCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EvidenceRelationshipCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := evidencerelationship.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EvidenceRelationshipCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "EvidenceRelationship.tenant_id"`)}
	}
	if _, ok := _c.mutation.InvestigationID(); !ok {
		return &ValidationError{Name: "investigation_id", err: errors.New(`ent: missing required field "EvidenceRelationship.investigation_id"`)}
	}
	if _, ok := _c.mutation.FromEvidenceID(); !ok {
		return &ValidationError{Name: "from_evidence_id", err: errors.New(`ent: missing required field "EvidenceRelationship.from_evidence_id"`)}
	}
	if _, ok := _c.mutation.ToEvidenceID(); !ok {
		return &ValidationError{Name: "to_evidence_id", err: errors.New(`ent: missing required field "EvidenceRelationship.to_evidence_id"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "EvidenceRelationship.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := evidencerelationship.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "EvidenceRelationship.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Strength(); !ok {
		return &ValidationError{Name: "strength", err: errors.New(`ent: missing required field "EvidenceRelationship.strength"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EvidenceRelationship.created_at"`)}
	}
	if len(_c.mutation.FromEvidenceIDs()) == 0 {
		return &ValidationError{Name: "from_evidence", err: errors.New(`ent: missing required edge "EvidenceRelationship.from_evidence"`)}
	}
	return nil
}

func (_c *EvidenceRelationshipCreate) sqlSave(ctx context.Context) (*EvidenceRelationship, error) {
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
			return nil, fmt.Errorf("unexpected EvidenceRelationship.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EvidenceRelationshipCreate) createSpec() (*EvidenceRelationship, *sqlgraph.CreateSpec) {
	var (
		_node = &EvidenceRelationship{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(evidencerelationship.Table, sqlgraph.NewFieldSpec(evidencerelationship.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(evidencerelationship.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.InvestigationID(); ok {
		_spec.SetField(evidencerelationship.FieldInvestigationID, field.TypeString, value)
		_node.InvestigationID = value
	}
	if value, ok := _c.mutation.ToEvidenceID(); ok {
		_spec.SetField(evidencerelationship.FieldToEvidenceID, field.TypeString, value)
		_node.ToEvidenceID = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(evidencerelationship.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Strength(); ok {
		_spec.SetField(evidencerelationship.FieldStrength, field.TypeFloat64, value)
		_node.Strength = value
	}
	if value, ok := _c.mutation.Rationale(); ok {
		_spec.SetField(evidencerelationship.FieldRationale, field.TypeString, value)
		_node.Rationale = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(evidencerelationship.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.FromEvidenceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   evidencerelationship.FromEvidenceTable,
			Columns: []string{evidencerelationship.FromEvidenceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evidence.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.FromEvidenceID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// EvidenceRelationshipCreateBulk is the builder for creating many EvidenceRelationship entities in bulk.
type EvidenceRelationshipCreateBulk struct {
	config
	err      error
	builders []*EvidenceRelationshipCreate
}

// Save creates the EvidenceRelationship entities in the database.
func (_c *EvidenceRelationshipCreateBulk) Save(ctx context.Context) ([]*EvidenceRelationship, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EvidenceRelationship, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EvidenceRelationshipMutation)
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
func (_c *EvidenceRelationshipCreateBulk) SaveX(ctx context.Context) []*EvidenceRelationship {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvidenceRelationshipCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvidenceRelationshipCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
