// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/ent/approvalrequest"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/ent/connectordef"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/ent/evidence"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/ent/evidencerelationship"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/ent/feedback"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/ent/investigation"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/ent/planstep"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/ent/predicate"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/ent/runevent"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeApprovalRequest      = "ApprovalRequest"
	TypeConnectorDef         = "ConnectorDef"
	TypeEvidence             = "Evidence"
	TypeEvidenceRelationship = "EvidenceRelationship"
	TypeFeedback             = "Feedback"
	TypeInvestigation        = "Investigation"
	TypePlanStep             = "PlanStep"
	TypeRunEvent             = "RunEvent"
)

// ApprovalRequestMutation represents an operation that mutates the ApprovalRequest nodes in the graph.
type ApprovalRequestMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	tenant_id            *string
	title                *string
	description          *string
	risk                 *approvalrequest.Risk
	action_payload       *map[string]interface{}
	status               *approvalrequest.Status
	verified             *bool
	requested_at         *time.Time
	responded_at         *time.Time
	responded_by         *string
	clearedFields        map[string]struct{}
	investigation        *string
	clearedinvestigation bool
	done                 bool
	oldValue             func(context.Context) (*ApprovalRequest, error)
	predicates           []predicate.ApprovalRequest
}

var _ ent.Mutation = (*ApprovalRequestMutation)(nil)

// approvalrequestOption allows management of the mutation configuration using functional options.
type approvalrequestOption func(*ApprovalRequestMutation)

// newApprovalRequestMutation creates new mutation for the ApprovalRequest entity.
func newApprovalRequestMutation(c config, op Op, opts ...approvalrequestOption) *ApprovalRequestMutation {
	m := &ApprovalRequestMutation{
		config:        c,
		op:            op,
		typ:           TypeApprovalRequest,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withApprovalRequestID sets the ID field of the mutation.
func withApprovalRequestID(id string) approvalrequestOption {
	return func(m *ApprovalRequestMutation) {
		var (
			err   error
			once  sync.Once
			value *ApprovalRequest
		)
		m.oldValue = func(ctx context.Context) (*ApprovalRequest, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ApprovalRequest.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withApprovalRequest sets the old ApprovalRequest of the mutation.
func withApprovalRequest(node *ApprovalRequest) approvalrequestOption {
	return func(m *ApprovalRequestMutation) {
		m.oldValue = func(context.Context) (*ApprovalRequest, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ApprovalRequestMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ApprovalRequestMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ApprovalRequest entities.
func (m *ApprovalRequestMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ApprovalRequestMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ApprovalRequestMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ApprovalRequest.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *ApprovalRequestMutation) SetRunID(s string) {
	m.investigation = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *ApprovalRequestMutation) RunID() (r string, exists bool) {
	v := m.investigation
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *ApprovalRequestMutation) ResetRunID() {
	m.investigation = nil
}

// SetTenantID sets the "tenant_id" field.
func (m *ApprovalRequestMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *ApprovalRequestMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *ApprovalRequestMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetTitle sets the "title" field.
func (m *ApprovalRequestMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ApprovalRequestMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *ApprovalRequestMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *ApprovalRequestMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ApprovalRequestMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ApprovalRequestMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[approvalrequest.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ApprovalRequestMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[approvalrequest.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ApprovalRequestMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, approvalrequest.FieldDescription)
}

// SetRisk sets the "risk" field.
func (m *ApprovalRequestMutation) SetRisk(a approvalrequest.Risk) {
	m.risk = &a
}

// Risk returns the value of the "risk" field in the mutation.
func (m *ApprovalRequestMutation) Risk() (r approvalrequest.Risk, exists bool) {
	v := m.risk
	if v == nil {
		return
	}
	return *v, true
}

// OldRisk returns the old "risk" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldRisk(ctx context.Context) (v approvalrequest.Risk, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRisk is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRisk requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRisk: %w", err)
	}
	return oldValue.Risk, nil
}

// ResetRisk resets all changes to the "risk" field.
func (m *ApprovalRequestMutation) ResetRisk() {
	m.risk = nil
}

// SetActionPayload sets the "action_payload" field.
func (m *ApprovalRequestMutation) SetActionPayload(value map[string]interface{}) {
	m.action_payload = &value
}

// ActionPayload returns the value of the "action_payload" field in the mutation.
func (m *ApprovalRequestMutation) ActionPayload() (r map[string]interface{}, exists bool) {
	v := m.action_payload
	if v == nil {
		return
	}
	return *v, true
}

// OldActionPayload returns the old "action_payload" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldActionPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionPayload: %w", err)
	}
	return oldValue.ActionPayload, nil
}

// ClearActionPayload clears the value of the "action_payload" field.
func (m *ApprovalRequestMutation) ClearActionPayload() {
	m.action_payload = nil
	m.clearedFields[approvalrequest.FieldActionPayload] = struct{}{}
}

// ActionPayloadCleared returns if the "action_payload" field was cleared in this mutation.
func (m *ApprovalRequestMutation) ActionPayloadCleared() bool {
	_, ok := m.clearedFields[approvalrequest.FieldActionPayload]
	return ok
}

// ResetActionPayload resets all changes to the "action_payload" field.
func (m *ApprovalRequestMutation) ResetActionPayload() {
	m.action_payload = nil
	delete(m.clearedFields, approvalrequest.FieldActionPayload)
}

// SetStatus sets the "status" field.
func (m *ApprovalRequestMutation) SetStatus(a approvalrequest.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *ApprovalRequestMutation) Status() (r approvalrequest.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldStatus(ctx context.Context) (v approvalrequest.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ApprovalRequestMutation) ResetStatus() {
	m.status = nil
}

// SetVerified sets the "verified" field.
func (m *ApprovalRequestMutation) SetVerified(b bool) {
	m.verified = &b
}

// Verified returns the value of the "verified" field in the mutation.
func (m *ApprovalRequestMutation) Verified() (r bool, exists bool) {
	v := m.verified
	if v == nil {
		return
	}
	return *v, true
}

// OldVerified returns the old "verified" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldVerified(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerified is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerified requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerified: %w", err)
	}
	return oldValue.Verified, nil
}

// ResetVerified resets all changes to the "verified" field.
func (m *ApprovalRequestMutation) ResetVerified() {
	m.verified = nil
}

// SetRequestedAt sets the "requested_at" field.
func (m *ApprovalRequestMutation) SetRequestedAt(t time.Time) {
	m.requested_at = &t
}

// RequestedAt returns the value of the "requested_at" field in the mutation.
func (m *ApprovalRequestMutation) RequestedAt() (r time.Time, exists bool) {
	v := m.requested_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestedAt returns the old "requested_at" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldRequestedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestedAt: %w", err)
	}
	return oldValue.RequestedAt, nil
}

// ResetRequestedAt resets all changes to the "requested_at" field.
func (m *ApprovalRequestMutation) ResetRequestedAt() {
	m.requested_at = nil
}

// SetRespondedAt sets the "responded_at" field.
func (m *ApprovalRequestMutation) SetRespondedAt(t time.Time) {
	m.responded_at = &t
}

// RespondedAt returns the value of the "responded_at" field in the mutation.
func (m *ApprovalRequestMutation) RespondedAt() (r time.Time, exists bool) {
	v := m.responded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRespondedAt returns the old "responded_at" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldRespondedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRespondedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRespondedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRespondedAt: %w", err)
	}
	return oldValue.RespondedAt, nil
}

// ClearRespondedAt clears the value of the "responded_at" field.
func (m *ApprovalRequestMutation) ClearRespondedAt() {
	m.responded_at = nil
	m.clearedFields[approvalrequest.FieldRespondedAt] = struct{}{}
}

// RespondedAtCleared returns if the "responded_at" field was cleared in this mutation.
func (m *ApprovalRequestMutation) RespondedAtCleared() bool {
	_, ok := m.clearedFields[approvalrequest.FieldRespondedAt]
	return ok
}

// ResetRespondedAt resets all changes to the "responded_at" field.
func (m *ApprovalRequestMutation) ResetRespondedAt() {
	m.responded_at = nil
	delete(m.clearedFields, approvalrequest.FieldRespondedAt)
}

// SetRespondedBy sets the "responded_by" field.
func (m *ApprovalRequestMutation) SetRespondedBy(s string) {
	m.responded_by = &s
}

// RespondedBy returns the value of the "responded_by" field in the mutation.
func (m *ApprovalRequestMutation) RespondedBy() (r string, exists bool) {
	v := m.responded_by
	if v == nil {
		return
	}
	return *v, true
}

// OldRespondedBy returns the old "responded_by" field's value of the ApprovalRequest entity.
// If the ApprovalRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalRequestMutation) OldRespondedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRespondedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRespondedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRespondedBy: %w", err)
	}
	return oldValue.RespondedBy, nil
}

// ClearRespondedBy clears the value of the "responded_by" field.
func (m *ApprovalRequestMutation) ClearRespondedBy() {
	m.responded_by = nil
	m.clearedFields[approvalrequest.FieldRespondedBy] = struct{}{}
}

// RespondedByCleared returns if the "responded_by" field was cleared in this mutation.
func (m *ApprovalRequestMutation) RespondedByCleared() bool {
	_, ok := m.clearedFields[approvalrequest.FieldRespondedBy]
	return ok
}

// ResetRespondedBy resets all changes to the "responded_by" field.
func (m *ApprovalRequestMutation) ResetRespondedBy() {
	m.responded_by = nil
	delete(m.clearedFields, approvalrequest.FieldRespondedBy)
}

// SetInvestigationID sets the "investigation" edge to the Investigation entity by id.
func (m *ApprovalRequestMutation) SetInvestigationID(id string) {
	m.investigation = &id
}

// ClearInvestigation clears the "investigation" edge to the Investigation entity.
func (m *ApprovalRequestMutation) ClearInvestigation() {
	m.clearedinvestigation = true
	m.clearedFields[approvalrequest.FieldRunID] = struct{}{}
}

// InvestigationCleared reports if the "investigation" edge to the Investigation entity was cleared.
func (m *ApprovalRequestMutation) InvestigationCleared() bool {
	return m.clearedinvestigation
}

// InvestigationID returns the "investigation" edge ID in the mutation.
func (m *ApprovalRequestMutation) InvestigationID() (id string, exists bool) {
	if m.investigation != nil {
		return *m.investigation, true
	}
	return
}

// InvestigationIDs returns the "investigation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// InvestigationID instead. It exists only for internal usage by the builders.
func (m *ApprovalRequestMutation) InvestigationIDs() (ids []string) {
	if id := m.investigation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetInvestigation resets all changes to the "investigation" edge.
func (m *ApprovalRequestMutation) ResetInvestigation() {
	m.investigation = nil
	m.clearedinvestigation = false
}

// Where appends a list predicates to the ApprovalRequestMutation builder.
func (m *ApprovalRequestMutation) Where(ps ...predicate.ApprovalRequest) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ApprovalRequestMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ApprovalRequestMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ApprovalRequest, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ApprovalRequestMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ApprovalRequestMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ApprovalRequest).
func (m *ApprovalRequestMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ApprovalRequestMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.investigation != nil {
		fields = append(fields, approvalrequest.FieldRunID)
	}
	if m.tenant_id != nil {
		fields = append(fields, approvalrequest.FieldTenantID)
	}
	if m.title != nil {
		fields = append(fields, approvalrequest.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, approvalrequest.FieldDescription)
	}
	if m.risk != nil {
		fields = append(fields, approvalrequest.FieldRisk)
	}
	if m.action_payload != nil {
		fields = append(fields, approvalrequest.FieldActionPayload)
	}
	if m.status != nil {
		fields = append(fields, approvalrequest.FieldStatus)
	}
	if m.verified != nil {
		fields = append(fields, approvalrequest.FieldVerified)
	}
	if m.requested_at != nil {
		fields = append(fields, approvalrequest.FieldRequestedAt)
	}
	if m.responded_at != nil {
		fields = append(fields, approvalrequest.FieldRespondedAt)
	}
	if m.responded_by != nil {
		fields = append(fields, approvalrequest.FieldRespondedBy)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ApprovalRequestMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case approvalrequest.FieldRunID:
		return m.RunID()
	case approvalrequest.FieldTenantID:
		return m.TenantID()
	case approvalrequest.FieldTitle:
		return m.Title()
	case approvalrequest.FieldDescription:
		return m.Description()
	case approvalrequest.FieldRisk:
		return m.Risk()
	case approvalrequest.FieldActionPayload:
		return m.ActionPayload()
	case approvalrequest.FieldStatus:
		return m.Status()
	case approvalrequest.FieldVerified:
		return m.Verified()
	case approvalrequest.FieldRequestedAt:
		return m.RequestedAt()
	case approvalrequest.FieldRespondedAt:
		return m.RespondedAt()
	case approvalrequest.FieldRespondedBy:
		return m.RespondedBy()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ApprovalRequestMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case approvalrequest.FieldRunID:
		return m.OldRunID(ctx)
	case approvalrequest.FieldTenantID:
		return m.OldTenantID(ctx)
	case approvalrequest.FieldTitle:
		return m.OldTitle(ctx)
	case approvalrequest.FieldDescription:
		return m.OldDescription(ctx)
	case approvalrequest.FieldRisk:
		return m.OldRisk(ctx)
	case approvalrequest.FieldActionPayload:
		return m.OldActionPayload(ctx)
	case approvalrequest.FieldStatus:
		return m.OldStatus(ctx)
	case approvalrequest.FieldVerified:
		return m.OldVerified(ctx)
	case approvalrequest.FieldRequestedAt:
		return m.OldRequestedAt(ctx)
	case approvalrequest.FieldRespondedAt:
		return m.OldRespondedAt(ctx)
	case approvalrequest.FieldRespondedBy:
		return m.OldRespondedBy(ctx)
	}
	return nil, fmt.Errorf("unknown ApprovalRequest field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApprovalRequestMutation) SetField(name string, value ent.Value) error {
	switch name {
	case approvalrequest.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case approvalrequest.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case approvalrequest.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case approvalrequest.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case approvalrequest.FieldRisk:
		v, ok := value.(approvalrequest.Risk)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRisk(v)
		return nil
	case approvalrequest.FieldActionPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionPayload(v)
		return nil
	case approvalrequest.FieldStatus:
		v, ok := value.(approvalrequest.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case approvalrequest.FieldVerified:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerified(v)
		return nil
	case approvalrequest.FieldRequestedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestedAt(v)
		return nil
	case approvalrequest.FieldRespondedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRespondedAt(v)
		return nil
	case approvalrequest.FieldRespondedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRespondedBy(v)
		return nil
	}
	return fmt.Errorf("unknown ApprovalRequest field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ApprovalRequestMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ApprovalRequestMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApprovalRequestMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ApprovalRequest numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ApprovalRequestMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(approvalrequest.FieldDescription) {
		fields = append(fields, approvalrequest.FieldDescription)
	}
	if m.FieldCleared(approvalrequest.FieldActionPayload) {
		fields = append(fields, approvalrequest.FieldActionPayload)
	}
	if m.FieldCleared(approvalrequest.FieldRespondedAt) {
		fields = append(fields, approvalrequest.FieldRespondedAt)
	}
	if m.FieldCleared(approvalrequest.FieldRespondedBy) {
		fields = append(fields, approvalrequest.FieldRespondedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ApprovalRequestMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ApprovalRequestMutation) ClearField(name string) error {
	switch name {
	case approvalrequest.FieldDescription:
		m.ClearDescription()
		return nil
	case approvalrequest.FieldActionPayload:
		m.ClearActionPayload()
		return nil
	case approvalrequest.FieldRespondedAt:
		m.ClearRespondedAt()
		return nil
	case approvalrequest.FieldRespondedBy:
		m.ClearRespondedBy()
		return nil
	}
	return fmt.Errorf("unknown ApprovalRequest nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ApprovalRequestMutation) ResetField(name string) error {
	switch name {
	case approvalrequest.FieldRunID:
		m.ResetRunID()
		return nil
	case approvalrequest.FieldTenantID:
		m.ResetTenantID()
		return nil
	case approvalrequest.FieldTitle:
		m.ResetTitle()
		return nil
	case approvalrequest.FieldDescription:
		m.ResetDescription()
		return nil
	case approvalrequest.FieldRisk:
		m.ResetRisk()
		return nil
	case approvalrequest.FieldActionPayload:
		m.ResetActionPayload()
		return nil
	case approvalrequest.FieldStatus:
		m.ResetStatus()
		return nil
	case approvalrequest.FieldVerified:
		m.ResetVerified()
		return nil
	case approvalrequest.FieldRequestedAt:
		m.ResetRequestedAt()
		return nil
	case approvalrequest.FieldRespondedAt:
		m.ResetRespondedAt()
		return nil
	case approvalrequest.FieldRespondedBy:
		m.ResetRespondedBy()
		return nil
	}
	return fmt.Errorf("unknown ApprovalRequest field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ApprovalRequestMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.investigation != nil {
		edges = append(edges, approvalrequest.EdgeInvestigation)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ApprovalRequestMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case approvalrequest.EdgeInvestigation:
		if id := m.investigation; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ApprovalRequestMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ApprovalRequestMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ApprovalRequestMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedinvestigation {
		edges = append(edges, approvalrequest.EdgeInvestigation)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ApprovalRequestMutation) EdgeCleared(name string) bool {
	switch name {
	case approvalrequest.EdgeInvestigation:
		return m.clearedinvestigation
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ApprovalRequestMutation) ClearEdge(name string) error {
	switch name {
	case approvalrequest.EdgeInvestigation:
		m.ClearInvestigation()
		return nil
	}
	return fmt.Errorf("unknown ApprovalRequest unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ApprovalRequestMutation) ResetEdge(name string) error {
	switch name {
	case approvalrequest.EdgeInvestigation:
		m.ResetInvestigation()
		return nil
	}
	return fmt.Errorf("unknown ApprovalRequest edge %s", name)
}

// ConnectorDefMutation represents an operation that mutates the ConnectorDef nodes in the graph.
type ConnectorDefMutation struct {
	config
	op            Op
	typ           string
	id            *string
	tenant_id     *string
	_type         *string
	name          *string
	priority      *int
	addpriority   *int
	auth          *map[string]interface{}
	rate_limits   *map[string]interface{}
	_config       *map[string]interface{}
	enabled       *bool
	status        *connectordef.Status
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ConnectorDef, error)
	predicates    []predicate.ConnectorDef
}

var _ ent.Mutation = (*ConnectorDefMutation)(nil)

// connectordefOption allows management of the mutation configuration using functional options.
type connectordefOption func(*ConnectorDefMutation)

// newConnectorDefMutation creates new mutation for the ConnectorDef entity.
func newConnectorDefMutation(c config, op Op, opts ...connectordefOption) *ConnectorDefMutation {
	m := &ConnectorDefMutation{
		config:        c,
		op:            op,
		typ:           TypeConnectorDef,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConnectorDefID sets the ID field of the mutation.
func withConnectorDefID(id string) connectordefOption {
	return func(m *ConnectorDefMutation) {
		var (
			err   error
			once  sync.Once
			value *ConnectorDef
		)
		m.oldValue = func(ctx context.Context) (*ConnectorDef, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ConnectorDef.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConnectorDef sets the old ConnectorDef of the mutation.
func withConnectorDef(node *ConnectorDef) connectordefOption {
	return func(m *ConnectorDefMutation) {
		m.oldValue = func(context.Context) (*ConnectorDef, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConnectorDefMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConnectorDefMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ConnectorDef entities.
func (m *ConnectorDefMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConnectorDefMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConnectorDefMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ConnectorDef.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *ConnectorDefMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *ConnectorDefMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the ConnectorDef entity.
// If the ConnectorDef object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorDefMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *ConnectorDefMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetType sets the "type" field.
func (m *ConnectorDefMutation) SetType(s string) {
	m._type = &s
}

// GetType returns the value of the "type" field in the mutation.
func (m *ConnectorDefMutation) GetType() (r string, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the ConnectorDef entity.
// If the ConnectorDef object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorDefMutation) OldType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *ConnectorDefMutation) ResetType() {
	m._type = nil
}

// SetName sets the "name" field.
func (m *ConnectorDefMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ConnectorDefMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the ConnectorDef entity.
// If the ConnectorDef object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorDefMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ConnectorDefMutation) ResetName() {
	m.name = nil
}

// SetPriority sets the "priority" field.
func (m *ConnectorDefMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *ConnectorDefMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the ConnectorDef entity.
// If the ConnectorDef object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorDefMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *ConnectorDefMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *ConnectorDefMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *ConnectorDefMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetAuth sets the "auth" field.
func (m *ConnectorDefMutation) SetAuth(value map[string]interface{}) {
	m.auth = &value
}

// Auth returns the value of the "auth" field in the mutation.
func (m *ConnectorDefMutation) Auth() (r map[string]interface{}, exists bool) {
	v := m.auth
	if v == nil {
		return
	}
	return *v, true
}

// OldAuth returns the old "auth" field's value of the ConnectorDef entity.
// If the ConnectorDef object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorDefMutation) OldAuth(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuth: %w", err)
	}
	return oldValue.Auth, nil
}

// ClearAuth clears the value of the "auth" field.
func (m *ConnectorDefMutation) ClearAuth() {
	m.auth = nil
	m.clearedFields[connectordef.FieldAuth] = struct{}{}
}

// AuthCleared returns if the "auth" field was cleared in this mutation.
func (m *ConnectorDefMutation) AuthCleared() bool {
	_, ok := m.clearedFields[connectordef.FieldAuth]
	return ok
}

// ResetAuth resets all changes to the "auth" field.
func (m *ConnectorDefMutation) ResetAuth() {
	m.auth = nil
	delete(m.clearedFields, connectordef.FieldAuth)
}

// SetRateLimits sets the "rate_limits" field.
func (m *ConnectorDefMutation) SetRateLimits(value map[string]interface{}) {
	m.rate_limits = &value
}

// RateLimits returns the value of the "rate_limits" field in the mutation.
func (m *ConnectorDefMutation) RateLimits() (r map[string]interface{}, exists bool) {
	v := m.rate_limits
	if v == nil {
		return
	}
	return *v, true
}

// OldRateLimits returns the old "rate_limits" field's value of the ConnectorDef entity.
// If the ConnectorDef object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorDefMutation) OldRateLimits(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRateLimits is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRateLimits requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRateLimits: %w", err)
	}
	return oldValue.RateLimits, nil
}

// ClearRateLimits clears the value of the "rate_limits" field.
func (m *ConnectorDefMutation) ClearRateLimits() {
	m.rate_limits = nil
	m.clearedFields[connectordef.FieldRateLimits] = struct{}{}
}

// RateLimitsCleared returns if the "rate_limits" field was cleared in this mutation.
func (m *ConnectorDefMutation) RateLimitsCleared() bool {
	_, ok := m.clearedFields[connectordef.FieldRateLimits]
	return ok
}

// ResetRateLimits resets all changes to the "rate_limits" field.
func (m *ConnectorDefMutation) ResetRateLimits() {
	m.rate_limits = nil
	delete(m.clearedFields, connectordef.FieldRateLimits)
}

// SetConfig sets the "config" field.
func (m *ConnectorDefMutation) SetConfig(value map[string]interface{}) {
	m._config = &value
}

// Config returns the value of the "config" field in the mutation.
func (m *ConnectorDefMutation) Config() (r map[string]interface{}, exists bool) {
	v := m._config
	if v == nil {
		return
	}
	return *v, true
}

// OldConfig returns the old "config" field's value of the ConnectorDef entity.
// If the ConnectorDef object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorDefMutation) OldConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfig: %w", err)
	}
	return oldValue.Config, nil
}

// ClearConfig clears the value of the "config" field.
func (m *ConnectorDefMutation) ClearConfig() {
	m._config = nil
	m.clearedFields[connectordef.FieldConfig] = struct{}{}
}

// ConfigCleared returns if the "config" field was cleared in this mutation.
func (m *ConnectorDefMutation) ConfigCleared() bool {
	_, ok := m.clearedFields[connectordef.FieldConfig]
	return ok
}

// ResetConfig resets all changes to the "config" field.
func (m *ConnectorDefMutation) ResetConfig() {
	m._config = nil
	delete(m.clearedFields, connectordef.FieldConfig)
}

// SetEnabled sets the "enabled" field.
func (m *ConnectorDefMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *ConnectorDefMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the ConnectorDef entity.
// If the ConnectorDef object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorDefMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *ConnectorDefMutation) ResetEnabled() {
	m.enabled = nil
}

// SetStatus sets the "status" field.
func (m *ConnectorDefMutation) SetStatus(c connectordef.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *ConnectorDefMutation) Status() (r connectordef.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ConnectorDef entity.
// If the ConnectorDef object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorDefMutation) OldStatus(ctx context.Context) (v connectordef.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ConnectorDefMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ConnectorDefMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ConnectorDefMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ConnectorDef entity.
// If the ConnectorDef object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorDefMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ConnectorDefMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ConnectorDefMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ConnectorDefMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ConnectorDef entity.
// If the ConnectorDef object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConnectorDefMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ConnectorDefMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ConnectorDefMutation builder.
func (m *ConnectorDefMutation) Where(ps ...predicate.ConnectorDef) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConnectorDefMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConnectorDefMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ConnectorDef, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConnectorDefMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConnectorDefMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ConnectorDef).
func (m *ConnectorDefMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConnectorDefMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.tenant_id != nil {
		fields = append(fields, connectordef.FieldTenantID)
	}
	if m._type != nil {
		fields = append(fields, connectordef.FieldType)
	}
	if m.name != nil {
		fields = append(fields, connectordef.FieldName)
	}
	if m.priority != nil {
		fields = append(fields, connectordef.FieldPriority)
	}
	if m.auth != nil {
		fields = append(fields, connectordef.FieldAuth)
	}
	if m.rate_limits != nil {
		fields = append(fields, connectordef.FieldRateLimits)
	}
	if m._config != nil {
		fields = append(fields, connectordef.FieldConfig)
	}
	if m.enabled != nil {
		fields = append(fields, connectordef.FieldEnabled)
	}
	if m.status != nil {
		fields = append(fields, connectordef.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, connectordef.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, connectordef.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConnectorDefMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case connectordef.FieldTenantID:
		return m.TenantID()
	case connectordef.FieldType:
		return m.GetType()
	case connectordef.FieldName:
		return m.Name()
	case connectordef.FieldPriority:
		return m.Priority()
	case connectordef.FieldAuth:
		return m.Auth()
	case connectordef.FieldRateLimits:
		return m.RateLimits()
	case connectordef.FieldConfig:
		return m.Config()
	case connectordef.FieldEnabled:
		return m.Enabled()
	case connectordef.FieldStatus:
		return m.Status()
	case connectordef.FieldCreatedAt:
		return m.CreatedAt()
	case connectordef.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConnectorDefMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case connectordef.FieldTenantID:
		return m.OldTenantID(ctx)
	case connectordef.FieldType:
		return m.OldType(ctx)
	case connectordef.FieldName:
		return m.OldName(ctx)
	case connectordef.FieldPriority:
		return m.OldPriority(ctx)
	case connectordef.FieldAuth:
		return m.OldAuth(ctx)
	case connectordef.FieldRateLimits:
		return m.OldRateLimits(ctx)
	case connectordef.FieldConfig:
		return m.OldConfig(ctx)
	case connectordef.FieldEnabled:
		return m.OldEnabled(ctx)
	case connectordef.FieldStatus:
		return m.OldStatus(ctx)
	case connectordef.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case connectordef.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ConnectorDef field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConnectorDefMutation) SetField(name string, value ent.Value) error {
	switch name {
	case connectordef.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case connectordef.FieldType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case connectordef.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case connectordef.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case connectordef.FieldAuth:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuth(v)
		return nil
	case connectordef.FieldRateLimits:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRateLimits(v)
		return nil
	case connectordef.FieldConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfig(v)
		return nil
	case connectordef.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case connectordef.FieldStatus:
		v, ok := value.(connectordef.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case connectordef.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case connectordef.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ConnectorDef field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConnectorDefMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, connectordef.FieldPriority)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConnectorDefMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case connectordef.FieldPriority:
		return m.AddedPriority()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConnectorDefMutation) AddField(name string, value ent.Value) error {
	switch name {
	case connectordef.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	}
	return fmt.Errorf("unknown ConnectorDef numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConnectorDefMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(connectordef.FieldAuth) {
		fields = append(fields, connectordef.FieldAuth)
	}
	if m.FieldCleared(connectordef.FieldRateLimits) {
		fields = append(fields, connectordef.FieldRateLimits)
	}
	if m.FieldCleared(connectordef.FieldConfig) {
		fields = append(fields, connectordef.FieldConfig)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConnectorDefMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConnectorDefMutation) ClearField(name string) error {
	switch name {
	case connectordef.FieldAuth:
		m.ClearAuth()
		return nil
	case connectordef.FieldRateLimits:
		m.ClearRateLimits()
		return nil
	case connectordef.FieldConfig:
		m.ClearConfig()
		return nil
	}
	return fmt.Errorf("unknown ConnectorDef nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConnectorDefMutation) ResetField(name string) error {
	switch name {
	case connectordef.FieldTenantID:
		m.ResetTenantID()
		return nil
	case connectordef.FieldType:
		m.ResetType()
		return nil
	case connectordef.FieldName:
		m.ResetName()
		return nil
	case connectordef.FieldPriority:
		m.ResetPriority()
		return nil
	case connectordef.FieldAuth:
		m.ResetAuth()
		return nil
	case connectordef.FieldRateLimits:
		m.ResetRateLimits()
		return nil
	case connectordef.FieldConfig:
		m.ResetConfig()
		return nil
	case connectordef.FieldEnabled:
		m.ResetEnabled()
		return nil
	case connectordef.FieldStatus:
		m.ResetStatus()
		return nil
	case connectordef.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case connectordef.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ConnectorDef field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConnectorDefMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConnectorDefMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConnectorDefMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConnectorDefMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConnectorDefMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConnectorDefMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConnectorDefMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ConnectorDef unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConnectorDefMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ConnectorDef edge %s", name)
}

// EvidenceMutation represents an operation that mutates the Evidence nodes in the graph.
type EvidenceMutation struct {
	config
	op                            Op
	typ                           string
	id                            *string
	tenant_id                     *string
	step_id                       *string
	_type                         *evidence.Type
	source                        *string
	timestamp                     *time.Time
	payload                       *map[string]interface{}
	entities                      *map[string][]string
	confidence                    *float64
	addconfidence                 *float64
	quality_score                 *float64
	addquality_score              *float64
	score_breakdown               *map[string]float64
	tags                          *[]string
	appendtags                    []string
	supersedes                    *string
	created_at                    *time.Time
	clearedFields                 map[string]struct{}
	investigation                 *string
	clearedinvestigation          bool
	outgoing_relationships        map[string]struct{}
	removedoutgoing_relationships map[string]struct{}
	clearedoutgoing_relationships bool
	done                          bool
	oldValue                      func(context.Context) (*Evidence, error)
	predicates                    []predicate.Evidence
}

var _ ent.Mutation = (*EvidenceMutation)(nil)

// evidenceOption allows management of the mutation configuration using functional options.
type evidenceOption func(*EvidenceMutation)

// newEvidenceMutation creates new mutation for the Evidence entity.
func newEvidenceMutation(c config, op Op, opts ...evidenceOption) *EvidenceMutation {
	m := &EvidenceMutation{
		config:        c,
		op:            op,
		typ:           TypeEvidence,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEvidenceID sets the ID field of the mutation.
func withEvidenceID(id string) evidenceOption {
	return func(m *EvidenceMutation) {
		var (
			err   error
			once  sync.Once
			value *Evidence
		)
		m.oldValue = func(ctx context.Context) (*Evidence, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Evidence.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvidence sets the old Evidence of the mutation.
func withEvidence(node *Evidence) evidenceOption {
	return func(m *EvidenceMutation) {
		m.oldValue = func(context.Context) (*Evidence, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EvidenceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EvidenceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Evidence entities.
func (m *EvidenceMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EvidenceMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EvidenceMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Evidence.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetInvestigationID sets the "investigation_id" field.
func (m *EvidenceMutation) SetInvestigationID(s string) {
	m.investigation = &s
}

// InvestigationID returns the value of the "investigation_id" field in the mutation.
func (m *EvidenceMutation) InvestigationID() (r string, exists bool) {
	v := m.investigation
	if v == nil {
		return
	}
	return *v, true
}

// OldInvestigationID returns the old "investigation_id" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldInvestigationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvestigationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvestigationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvestigationID: %w", err)
	}
	return oldValue.InvestigationID, nil
}

// ResetInvestigationID resets all changes to the "investigation_id" field.
func (m *EvidenceMutation) ResetInvestigationID() {
	m.investigation = nil
}

// SetTenantID sets the "tenant_id" field.
func (m *EvidenceMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *EvidenceMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *EvidenceMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetStepID sets the "step_id" field.
func (m *EvidenceMutation) SetStepID(s string) {
	m.step_id = &s
}

// StepID returns the value of the "step_id" field in the mutation.
func (m *EvidenceMutation) StepID() (r string, exists bool) {
	v := m.step_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStepID returns the old "step_id" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldStepID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepID: %w", err)
	}
	return oldValue.StepID, nil
}

// ClearStepID clears the value of the "step_id" field.
func (m *EvidenceMutation) ClearStepID() {
	m.step_id = nil
	m.clearedFields[evidence.FieldStepID] = struct{}{}
}

// StepIDCleared returns if the "step_id" field was cleared in this mutation.
func (m *EvidenceMutation) StepIDCleared() bool {
	_, ok := m.clearedFields[evidence.FieldStepID]
	return ok
}

// ResetStepID resets all changes to the "step_id" field.
func (m *EvidenceMutation) ResetStepID() {
	m.step_id = nil
	delete(m.clearedFields, evidence.FieldStepID)
}

// SetType sets the "type" field.
func (m *EvidenceMutation) SetType(e evidence.Type) {
	m._type = &e
}

// GetType returns the value of the "type" field in the mutation.
func (m *EvidenceMutation) GetType() (r evidence.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldType(ctx context.Context) (v evidence.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *EvidenceMutation) ResetType() {
	m._type = nil
}

// SetSource sets the "source" field.
func (m *EvidenceMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *EvidenceMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *EvidenceMutation) ResetSource() {
	m.source = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *EvidenceMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *EvidenceMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *EvidenceMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetPayload sets the "payload" field.
func (m *EvidenceMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EvidenceMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *EvidenceMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[evidence.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *EvidenceMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[evidence.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *EvidenceMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, evidence.FieldPayload)
}

// SetEntities sets the "entities" field.
func (m *EvidenceMutation) SetEntities(value map[string][]string) {
	m.entities = &value
}

// Entities returns the value of the "entities" field in the mutation.
func (m *EvidenceMutation) Entities() (r map[string][]string, exists bool) {
	v := m.entities
	if v == nil {
		return
	}
	return *v, true
}

// OldEntities returns the old "entities" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldEntities(ctx context.Context) (v map[string][]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntities is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntities requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntities: %w", err)
	}
	return oldValue.Entities, nil
}

// ClearEntities clears the value of the "entities" field.
func (m *EvidenceMutation) ClearEntities() {
	m.entities = nil
	m.clearedFields[evidence.FieldEntities] = struct{}{}
}

// EntitiesCleared returns if the "entities" field was cleared in this mutation.
func (m *EvidenceMutation) EntitiesCleared() bool {
	_, ok := m.clearedFields[evidence.FieldEntities]
	return ok
}

// ResetEntities resets all changes to the "entities" field.
func (m *EvidenceMutation) ResetEntities() {
	m.entities = nil
	delete(m.clearedFields, evidence.FieldEntities)
}

// SetConfidence sets the "confidence" field.
func (m *EvidenceMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *EvidenceMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *EvidenceMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *EvidenceMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *EvidenceMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetQualityScore sets the "quality_score" field.
func (m *EvidenceMutation) SetQualityScore(f float64) {
	m.quality_score = &f
	m.addquality_score = nil
}

// QualityScore returns the value of the "quality_score" field in the mutation.
func (m *EvidenceMutation) QualityScore() (r float64, exists bool) {
	v := m.quality_score
	if v == nil {
		return
	}
	return *v, true
}

// OldQualityScore returns the old "quality_score" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldQualityScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQualityScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQualityScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQualityScore: %w", err)
	}
	return oldValue.QualityScore, nil
}

// AddQualityScore adds f to the "quality_score" field.
func (m *EvidenceMutation) AddQualityScore(f float64) {
	if m.addquality_score != nil {
		*m.addquality_score += f
	} else {
		m.addquality_score = &f
	}
}

// AddedQualityScore returns the value that was added to the "quality_score" field in this mutation.
func (m *EvidenceMutation) AddedQualityScore() (r float64, exists bool) {
	v := m.addquality_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetQualityScore resets all changes to the "quality_score" field.
func (m *EvidenceMutation) ResetQualityScore() {
	m.quality_score = nil
	m.addquality_score = nil
}

// SetScoreBreakdown sets the "score_breakdown" field.
func (m *EvidenceMutation) SetScoreBreakdown(value map[string]float64) {
	m.score_breakdown = &value
}

// ScoreBreakdown returns the value of the "score_breakdown" field in the mutation.
func (m *EvidenceMutation) ScoreBreakdown() (r map[string]float64, exists bool) {
	v := m.score_breakdown
	if v == nil {
		return
	}
	return *v, true
}

// OldScoreBreakdown returns the old "score_breakdown" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldScoreBreakdown(ctx context.Context) (v map[string]float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScoreBreakdown is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScoreBreakdown requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScoreBreakdown: %w", err)
	}
	return oldValue.ScoreBreakdown, nil
}

// ClearScoreBreakdown clears the value of the "score_breakdown" field.
func (m *EvidenceMutation) ClearScoreBreakdown() {
	m.score_breakdown = nil
	m.clearedFields[evidence.FieldScoreBreakdown] = struct{}{}
}

// ScoreBreakdownCleared returns if the "score_breakdown" field was cleared in this mutation.
func (m *EvidenceMutation) ScoreBreakdownCleared() bool {
	_, ok := m.clearedFields[evidence.FieldScoreBreakdown]
	return ok
}

// ResetScoreBreakdown resets all changes to the "score_breakdown" field.
func (m *EvidenceMutation) ResetScoreBreakdown() {
	m.score_breakdown = nil
	delete(m.clearedFields, evidence.FieldScoreBreakdown)
}

// SetTags sets the "tags" field.
func (m *EvidenceMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *EvidenceMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *EvidenceMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *EvidenceMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ClearTags clears the value of the "tags" field.
func (m *EvidenceMutation) ClearTags() {
	m.tags = nil
	m.appendtags = nil
	m.clearedFields[evidence.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *EvidenceMutation) TagsCleared() bool {
	_, ok := m.clearedFields[evidence.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *EvidenceMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
	delete(m.clearedFields, evidence.FieldTags)
}

// SetSupersedes sets the "supersedes" field.
func (m *EvidenceMutation) SetSupersedes(s string) {
	m.supersedes = &s
}

// Supersedes returns the value of the "supersedes" field in the mutation.
func (m *EvidenceMutation) Supersedes() (r string, exists bool) {
	v := m.supersedes
	if v == nil {
		return
	}
	return *v, true
}

// OldSupersedes returns the old "supersedes" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldSupersedes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSupersedes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSupersedes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSupersedes: %w", err)
	}
	return oldValue.Supersedes, nil
}

// ClearSupersedes clears the value of the "supersedes" field.
func (m *EvidenceMutation) ClearSupersedes() {
	m.supersedes = nil
	m.clearedFields[evidence.FieldSupersedes] = struct{}{}
}

// SupersedesCleared returns if the "supersedes" field was cleared in this mutation.
func (m *EvidenceMutation) SupersedesCleared() bool {
	_, ok := m.clearedFields[evidence.FieldSupersedes]
	return ok
}

// ResetSupersedes resets all changes to the "supersedes" field.
func (m *EvidenceMutation) ResetSupersedes() {
	m.supersedes = nil
	delete(m.clearedFields, evidence.FieldSupersedes)
}

// SetCreatedAt sets the "created_at" field.
func (m *EvidenceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EvidenceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Evidence entity.
// If the Evidence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EvidenceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearInvestigation clears the "investigation" edge to the Investigation entity.
func (m *EvidenceMutation) ClearInvestigation() {
	m.clearedinvestigation = true
	m.clearedFields[evidence.FieldInvestigationID] = struct{}{}
}

// InvestigationCleared reports if the "investigation" edge to the Investigation entity was cleared.
func (m *EvidenceMutation) InvestigationCleared() bool {
	return m.clearedinvestigation
}

// InvestigationIDs returns the "investigation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// InvestigationID instead. It exists only for internal usage by the builders.
func (m *EvidenceMutation) InvestigationIDs() (ids []string) {
	if id := m.investigation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetInvestigation resets all changes to the "investigation" edge.
func (m *EvidenceMutation) ResetInvestigation() {
	m.investigation = nil
	m.clearedinvestigation = false
}

// AddOutgoingRelationshipIDs adds the "outgoing_relationships" edge to the EvidenceRelationship entity by ids.
func (m *EvidenceMutation) AddOutgoingRelationshipIDs(ids ...string) {
	if m.outgoing_relationships == nil {
		m.outgoing_relationships = make(map[string]struct{})
	}
	for i := range ids {
		m.outgoing_relationships[ids[i]] = struct{}{}
	}
}

// ClearOutgoingRelationships clears the "outgoing_relationships" edge to the EvidenceRelationship entity.
func (m *EvidenceMutation) ClearOutgoingRelationships() {
	m.clearedoutgoing_relationships = true
}

// OutgoingRelationshipsCleared reports if the "outgoing_relationships" edge to the EvidenceRelationship entity was cleared.
func (m *EvidenceMutation) OutgoingRelationshipsCleared() bool {
	return m.clearedoutgoing_relationships
}

// RemoveOutgoingRelationshipIDs removes the "outgoing_relationships" edge to the EvidenceRelationship entity by IDs.
func (m *EvidenceMutation) RemoveOutgoingRelationshipIDs(ids ...string) {
	if m.removedoutgoing_relationships == nil {
		m.removedoutgoing_relationships = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.outgoing_relationships, ids[i])
		m.removedoutgoing_relationships[ids[i]] = struct{}{}
	}
}

// RemovedOutgoingRelationships returns the removed IDs of the "outgoing_relationships" edge to the EvidenceRelationship entity.
func (m *EvidenceMutation) RemovedOutgoingRelationshipsIDs() (ids []string) {
	for id := range m.removedoutgoing_relationships {
		ids = append(ids, id)
	}
	return
}

// OutgoingRelationshipsIDs returns the "outgoing_relationships" edge IDs in the mutation.
func (m *EvidenceMutation) OutgoingRelationshipsIDs() (ids []string) {
	for id := range m.outgoing_relationships {
		ids = append(ids, id)
	}
	return
}

// ResetOutgoingRelationships resets all changes to the "outgoing_relationships" edge.
func (m *EvidenceMutation) ResetOutgoingRelationships() {
	m.outgoing_relationships = nil
	m.clearedoutgoing_relationships = false
	m.removedoutgoing_relationships = nil
}

// Where appends a list predicates to the EvidenceMutation builder.
func (m *EvidenceMutation) Where(ps ...predicate.Evidence) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EvidenceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EvidenceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Evidence, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EvidenceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EvidenceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Evidence).
func (m *EvidenceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EvidenceMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.investigation != nil {
		fields = append(fields, evidence.FieldInvestigationID)
	}
	if m.tenant_id != nil {
		fields = append(fields, evidence.FieldTenantID)
	}
	if m.step_id != nil {
		fields = append(fields, evidence.FieldStepID)
	}
	if m._type != nil {
		fields = append(fields, evidence.FieldType)
	}
	if m.source != nil {
		fields = append(fields, evidence.FieldSource)
	}
	if m.timestamp != nil {
		fields = append(fields, evidence.FieldTimestamp)
	}
	if m.payload != nil {
		fields = append(fields, evidence.FieldPayload)
	}
	if m.entities != nil {
		fields = append(fields, evidence.FieldEntities)
	}
	if m.confidence != nil {
		fields = append(fields, evidence.FieldConfidence)
	}
	if m.quality_score != nil {
		fields = append(fields, evidence.FieldQualityScore)
	}
	if m.score_breakdown != nil {
		fields = append(fields, evidence.FieldScoreBreakdown)
	}
	if m.tags != nil {
		fields = append(fields, evidence.FieldTags)
	}
	if m.supersedes != nil {
		fields = append(fields, evidence.FieldSupersedes)
	}
	if m.created_at != nil {
		fields = append(fields, evidence.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EvidenceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case evidence.FieldInvestigationID:
		return m.InvestigationID()
	case evidence.FieldTenantID:
		return m.TenantID()
	case evidence.FieldStepID:
		return m.StepID()
	case evidence.FieldType:
		return m.GetType()
	case evidence.FieldSource:
		return m.Source()
	case evidence.FieldTimestamp:
		return m.Timestamp()
	case evidence.FieldPayload:
		return m.Payload()
	case evidence.FieldEntities:
		return m.Entities()
	case evidence.FieldConfidence:
		return m.Confidence()
	case evidence.FieldQualityScore:
		return m.QualityScore()
	case evidence.FieldScoreBreakdown:
		return m.ScoreBreakdown()
	case evidence.FieldTags:
		return m.Tags()
	case evidence.FieldSupersedes:
		return m.Supersedes()
	case evidence.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EvidenceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case evidence.FieldInvestigationID:
		return m.OldInvestigationID(ctx)
	case evidence.FieldTenantID:
		return m.OldTenantID(ctx)
	case evidence.FieldStepID:
		return m.OldStepID(ctx)
	case evidence.FieldType:
		return m.OldType(ctx)
	case evidence.FieldSource:
		return m.OldSource(ctx)
	case evidence.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case evidence.FieldPayload:
		return m.OldPayload(ctx)
	case evidence.FieldEntities:
		return m.OldEntities(ctx)
	case evidence.FieldConfidence:
		return m.OldConfidence(ctx)
	case evidence.FieldQualityScore:
		return m.OldQualityScore(ctx)
	case evidence.FieldScoreBreakdown:
		return m.OldScoreBreakdown(ctx)
	case evidence.FieldTags:
		return m.OldTags(ctx)
	case evidence.FieldSupersedes:
		return m.OldSupersedes(ctx)
	case evidence.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Evidence field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvidenceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case evidence.FieldInvestigationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvestigationID(v)
		return nil
	case evidence.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case evidence.FieldStepID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepID(v)
		return nil
	case evidence.FieldType:
		v, ok := value.(evidence.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case evidence.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case evidence.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case evidence.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case evidence.FieldEntities:
		v, ok := value.(map[string][]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntities(v)
		return nil
	case evidence.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case evidence.FieldQualityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQualityScore(v)
		return nil
	case evidence.FieldScoreBreakdown:
		v, ok := value.(map[string]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScoreBreakdown(v)
		return nil
	case evidence.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case evidence.FieldSupersedes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSupersedes(v)
		return nil
	case evidence.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Evidence field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EvidenceMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, evidence.FieldConfidence)
	}
	if m.addquality_score != nil {
		fields = append(fields, evidence.FieldQualityScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EvidenceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case evidence.FieldConfidence:
		return m.AddedConfidence()
	case evidence.FieldQualityScore:
		return m.AddedQualityScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvidenceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case evidence.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case evidence.FieldQualityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQualityScore(v)
		return nil
	}
	return fmt.Errorf("unknown Evidence numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EvidenceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(evidence.FieldStepID) {
		fields = append(fields, evidence.FieldStepID)
	}
	if m.FieldCleared(evidence.FieldPayload) {
		fields = append(fields, evidence.FieldPayload)
	}
	if m.FieldCleared(evidence.FieldEntities) {
		fields = append(fields, evidence.FieldEntities)
	}
	if m.FieldCleared(evidence.FieldScoreBreakdown) {
		fields = append(fields, evidence.FieldScoreBreakdown)
	}
	if m.FieldCleared(evidence.FieldTags) {
		fields = append(fields, evidence.FieldTags)
	}
	if m.FieldCleared(evidence.FieldSupersedes) {
		fields = append(fields, evidence.FieldSupersedes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EvidenceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EvidenceMutation) ClearField(name string) error {
	switch name {
	case evidence.FieldStepID:
		m.ClearStepID()
		return nil
	case evidence.FieldPayload:
		m.ClearPayload()
		return nil
	case evidence.FieldEntities:
		m.ClearEntities()
		return nil
	case evidence.FieldScoreBreakdown:
		m.ClearScoreBreakdown()
		return nil
	case evidence.FieldTags:
		m.ClearTags()
		return nil
	case evidence.FieldSupersedes:
		m.ClearSupersedes()
		return nil
	}
	return fmt.Errorf("unknown Evidence nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EvidenceMutation) ResetField(name string) error {
	switch name {
	case evidence.FieldInvestigationID:
		m.ResetInvestigationID()
		return nil
	case evidence.FieldTenantID:
		m.ResetTenantID()
		return nil
	case evidence.FieldStepID:
		m.ResetStepID()
		return nil
	case evidence.FieldType:
		m.ResetType()
		return nil
	case evidence.FieldSource:
		m.ResetSource()
		return nil
	case evidence.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case evidence.FieldPayload:
		m.ResetPayload()
		return nil
	case evidence.FieldEntities:
		m.ResetEntities()
		return nil
	case evidence.FieldConfidence:
		m.ResetConfidence()
		return nil
	case evidence.FieldQualityScore:
		m.ResetQualityScore()
		return nil
	case evidence.FieldScoreBreakdown:
		m.ResetScoreBreakdown()
		return nil
	case evidence.FieldTags:
		m.ResetTags()
		return nil
	case evidence.FieldSupersedes:
		m.ResetSupersedes()
		return nil
	case evidence.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Evidence field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EvidenceMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.investigation != nil {
		edges = append(edges, evidence.EdgeInvestigation)
	}
	if m.outgoing_relationships != nil {
		edges = append(edges, evidence.EdgeOutgoingRelationships)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EvidenceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case evidence.EdgeInvestigation:
		if id := m.investigation; id != nil {
			return []ent.Value{*id}
		}
	case evidence.EdgeOutgoingRelationships:
		ids := make([]ent.Value, 0, len(m.outgoing_relationships))
		for id := range m.outgoing_relationships {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EvidenceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedoutgoing_relationships != nil {
		edges = append(edges, evidence.EdgeOutgoingRelationships)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EvidenceMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case evidence.EdgeOutgoingRelationships:
		ids := make([]ent.Value, 0, len(m.removedoutgoing_relationships))
		for id := range m.removedoutgoing_relationships {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EvidenceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedinvestigation {
		edges = append(edges, evidence.EdgeInvestigation)
	}
	if m.clearedoutgoing_relationships {
		edges = append(edges, evidence.EdgeOutgoingRelationships)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EvidenceMutation) EdgeCleared(name string) bool {
	switch name {
	case evidence.EdgeInvestigation:
		return m.clearedinvestigation
	case evidence.EdgeOutgoingRelationships:
		return m.clearedoutgoing_relationships
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EvidenceMutation) ClearEdge(name string) error {
	switch name {
	case evidence.EdgeInvestigation:
		m.ClearInvestigation()
		return nil
	}
	return fmt.Errorf("unknown Evidence unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EvidenceMutation) ResetEdge(name string) error {
	switch name {
	case evidence.EdgeInvestigation:
		m.ResetInvestigation()
		return nil
	case evidence.EdgeOutgoingRelationships:
		m.ResetOutgoingRelationships()
		return nil
	}
	return fmt.Errorf("unknown Evidence edge %s", name)
}

// EvidenceRelationshipMutation represents an operation that mutates the EvidenceRelationship nodes in the graph.
type EvidenceRelationshipMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	tenant_id            *string
	investigation_id     *string
	to_evidence_id       *string
	kind                 *evidencerelationship.Kind
	strength             *float64
	addstrength          *float64
	rationale            *string
	created_at           *time.Time
	clearedFields        map[string]struct{}
	from_evidence        *string
	clearedfrom_evidence bool
	done                 bool
	oldValue             func(context.Context) (*EvidenceRelationship, error)
	predicates           []predicate.EvidenceRelationship
}

var _ ent.Mutation = (*EvidenceRelationshipMutation)(nil)

// evidencerelationshipOption allows management of the mutation configuration using functional options.
type evidencerelationshipOption func(*EvidenceRelationshipMutation)

// newEvidenceRelationshipMutation creates new mutation for the EvidenceRelationship entity.
func newEvidenceRelationshipMutation(c config, op Op, opts ...evidencerelationshipOption) *EvidenceRelationshipMutation {
	m := &EvidenceRelationshipMutation{
		config:        c,
		op:            op,
		typ:           TypeEvidenceRelationship,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEvidenceRelationshipID sets the ID field of the mutation.
func withEvidenceRelationshipID(id string) evidencerelationshipOption {
	return func(m *EvidenceRelationshipMutation) {
		var (
			err   error
			once  sync.Once
			value *EvidenceRelationship
		)
		m.oldValue = func(ctx context.Context) (*EvidenceRelationship, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EvidenceRelationship.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvidenceRelationship sets the old EvidenceRelationship of the mutation.
func withEvidenceRelationship(node *EvidenceRelationship) evidencerelationshipOption {
	return func(m *EvidenceRelationshipMutation) {
		m.oldValue = func(context.Context) (*EvidenceRelationship, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EvidenceRelationshipMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EvidenceRelationshipMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EvidenceRelationship entities.
func (m *EvidenceRelationshipMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EvidenceRelationshipMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EvidenceRelationshipMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EvidenceRelationship.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *EvidenceRelationshipMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *EvidenceRelationshipMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the EvidenceRelationship entity.
// If the EvidenceRelationship object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceRelationshipMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *EvidenceRelationshipMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetInvestigationID sets the "investigation_id" field.
func (m *EvidenceRelationshipMutation) SetInvestigationID(s string) {
	m.investigation_id = &s
}

// InvestigationID returns the value of the "investigation_id" field in the mutation.
func (m *EvidenceRelationshipMutation) InvestigationID() (r string, exists bool) {
	v := m.investigation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldInvestigationID returns the old "investigation_id" field's value of the EvidenceRelationship entity.
// If the EvidenceRelationship object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceRelationshipMutation) OldInvestigationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvestigationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvestigationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvestigationID: %w", err)
	}
	return oldValue.InvestigationID, nil
}

// ResetInvestigationID resets all changes to the "investigation_id" field.
func (m *EvidenceRelationshipMutation) ResetInvestigationID() {
	m.investigation_id = nil
}

// SetFromEvidenceID sets the "from_evidence_id" field.
func (m *EvidenceRelationshipMutation) SetFromEvidenceID(s string) {
	m.from_evidence = &s
}

// FromEvidenceID returns the value of the "from_evidence_id" field in the mutation.
func (m *EvidenceRelationshipMutation) FromEvidenceID() (r string, exists bool) {
	v := m.from_evidence
	if v == nil {
		return
	}
	return *v, true
}

// OldFromEvidenceID returns the old "from_evidence_id" field's value of the EvidenceRelationship entity.
// If the EvidenceRelationship object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceRelationshipMutation) OldFromEvidenceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromEvidenceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromEvidenceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromEvidenceID: %w", err)
	}
	return oldValue.FromEvidenceID, nil
}

// ResetFromEvidenceID resets all changes to the "from_evidence_id" field.
func (m *EvidenceRelationshipMutation) ResetFromEvidenceID() {
	m.from_evidence = nil
}

// SetToEvidenceID sets the "to_evidence_id" field.
func (m *EvidenceRelationshipMutation) SetToEvidenceID(s string) {
	m.to_evidence_id = &s
}

// ToEvidenceID returns the value of the "to_evidence_id" field in the mutation.
func (m *EvidenceRelationshipMutation) ToEvidenceID() (r string, exists bool) {
	v := m.to_evidence_id
	if v == nil {
		return
	}
	return *v, true
}

// OldToEvidenceID returns the old "to_evidence_id" field's value of the EvidenceRelationship entity.
// If the EvidenceRelationship object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceRelationshipMutation) OldToEvidenceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToEvidenceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToEvidenceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToEvidenceID: %w", err)
	}
	return oldValue.ToEvidenceID, nil
}

// ResetToEvidenceID resets all changes to the "to_evidence_id" field.
func (m *EvidenceRelationshipMutation) ResetToEvidenceID() {
	m.to_evidence_id = nil
}

// SetKind sets the "kind" field.
func (m *EvidenceRelationshipMutation) SetKind(e evidencerelationship.Kind) {
	m.kind = &e
}

// Kind returns the value of the "kind" field in the mutation.
func (m *EvidenceRelationshipMutation) Kind() (r evidencerelationship.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the EvidenceRelationship entity.
// If the EvidenceRelationship object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceRelationshipMutation) OldKind(ctx context.Context) (v evidencerelationship.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *EvidenceRelationshipMutation) ResetKind() {
	m.kind = nil
}

// SetStrength sets the "strength" field.
func (m *EvidenceRelationshipMutation) SetStrength(f float64) {
	m.strength = &f
	m.addstrength = nil
}

// Strength returns the value of the "strength" field in the mutation.
func (m *EvidenceRelationshipMutation) Strength() (r float64, exists bool) {
	v := m.strength
	if v == nil {
		return
	}
	return *v, true
}

// OldStrength returns the old "strength" field's value of the EvidenceRelationship entity.
// If the EvidenceRelationship object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceRelationshipMutation) OldStrength(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStrength is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStrength requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStrength: %w", err)
	}
	return oldValue.Strength, nil
}

// AddStrength adds f to the "strength" field.
func (m *EvidenceRelationshipMutation) AddStrength(f float64) {
	if m.addstrength != nil {
		*m.addstrength += f
	} else {
		m.addstrength = &f
	}
}

// AddedStrength returns the value that was added to the "strength" field in this mutation.
func (m *EvidenceRelationshipMutation) AddedStrength() (r float64, exists bool) {
	v := m.addstrength
	if v == nil {
		return
	}
	return *v, true
}

// ResetStrength resets all changes to the "strength" field.
func (m *EvidenceRelationshipMutation) ResetStrength() {
	m.strength = nil
	m.addstrength = nil
}

// SetRationale sets the "rationale" field.
func (m *EvidenceRelationshipMutation) SetRationale(s string) {
	m.rationale = &s
}

// Rationale returns the value of the "rationale" field in the mutation.
func (m *EvidenceRelationshipMutation) Rationale() (r string, exists bool) {
	v := m.rationale
	if v == nil {
		return
	}
	return *v, true
}

// OldRationale returns the old "rationale" field's value of the EvidenceRelationship entity.
// If the EvidenceRelationship object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceRelationshipMutation) OldRationale(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRationale is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRationale requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRationale: %w", err)
	}
	return oldValue.Rationale, nil
}

// ClearRationale clears the value of the "rationale" field.
func (m *EvidenceRelationshipMutation) ClearRationale() {
	m.rationale = nil
	m.clearedFields[evidencerelationship.FieldRationale] = struct{}{}
}

// RationaleCleared returns if the "rationale" field was cleared in this mutation.
func (m *EvidenceRelationshipMutation) RationaleCleared() bool {
	_, ok := m.clearedFields[evidencerelationship.FieldRationale]
	return ok
}

// ResetRationale resets all changes to the "rationale" field.
func (m *EvidenceRelationshipMutation) ResetRationale() {
	m.rationale = nil
	delete(m.clearedFields, evidencerelationship.FieldRationale)
}

// SetCreatedAt sets the "created_at" field.
func (m *EvidenceRelationshipMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EvidenceRelationshipMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EvidenceRelationship entity.
// If the EvidenceRelationship object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvidenceRelationshipMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EvidenceRelationshipMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearFromEvidence clears the "from_evidence" edge to the Evidence entity.
func (m *EvidenceRelationshipMutation) ClearFromEvidence() {
	m.clearedfrom_evidence = true
	m.clearedFields[evidencerelationship.FieldFromEvidenceID] = struct{}{}
}

// FromEvidenceCleared reports if the "from_evidence" edge to the Evidence entity was cleared.
func (m *EvidenceRelationshipMutation) FromEvidenceCleared() bool {
	return m.clearedfrom_evidence
}

// FromEvidenceIDs returns the "from_evidence" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FromEvidenceID instead. It exists only for internal usage by the builders.
func (m *EvidenceRelationshipMutation) FromEvidenceIDs() (ids []string) {
	if id := m.from_evidence; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFromEvidence resets all changes to the "from_evidence" edge.
func (m *EvidenceRelationshipMutation) ResetFromEvidence() {
	m.from_evidence = nil
	m.clearedfrom_evidence = false
}

// Where appends a list predicates to the EvidenceRelationshipMutation builder.
func (m *EvidenceRelationshipMutation) Where(ps ...predicate.EvidenceRelationship) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EvidenceRelationshipMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EvidenceRelationshipMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EvidenceRelationship, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EvidenceRelationshipMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EvidenceRelationshipMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EvidenceRelationship).
func (m *EvidenceRelationshipMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EvidenceRelationshipMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.tenant_id != nil {
		fields = append(fields, evidencerelationship.FieldTenantID)
	}
	if m.investigation_id != nil {
		fields = append(fields, evidencerelationship.FieldInvestigationID)
	}
	if m.from_evidence != nil {
		fields = append(fields, evidencerelationship.FieldFromEvidenceID)
	}
	if m.to_evidence_id != nil {
		fields = append(fields, evidencerelationship.FieldToEvidenceID)
	}
	if m.kind != nil {
		fields = append(fields, evidencerelationship.FieldKind)
	}
	if m.strength != nil {
		fields = append(fields, evidencerelationship.FieldStrength)
	}
	if m.rationale != nil {
		fields = append(fields, evidencerelationship.FieldRationale)
	}
	if m.created_at != nil {
		fields = append(fields, evidencerelationship.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EvidenceRelationshipMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case evidencerelationship.FieldTenantID:
		return m.TenantID()
	case evidencerelationship.FieldInvestigationID:
		return m.InvestigationID()
	case evidencerelationship.FieldFromEvidenceID:
		return m.FromEvidenceID()
	case evidencerelationship.FieldToEvidenceID:
		return m.ToEvidenceID()
	case evidencerelationship.FieldKind:
		return m.Kind()
	case evidencerelationship.FieldStrength:
		return m.Strength()
	case evidencerelationship.FieldRationale:
		return m.Rationale()
	case evidencerelationship.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EvidenceRelationshipMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case evidencerelationship.FieldTenantID:
		return m.OldTenantID(ctx)
	case evidencerelationship.FieldInvestigationID:
		return m.OldInvestigationID(ctx)
	case evidencerelationship.FieldFromEvidenceID:
		return m.OldFromEvidenceID(ctx)
	case evidencerelationship.FieldToEvidenceID:
		return m.OldToEvidenceID(ctx)
	case evidencerelationship.FieldKind:
		return m.OldKind(ctx)
	case evidencerelationship.FieldStrength:
		return m.OldStrength(ctx)
	case evidencerelationship.FieldRationale:
		return m.OldRationale(ctx)
	case evidencerelationship.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EvidenceRelationship field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvidenceRelationshipMutation) SetField(name string, value ent.Value) error {
	switch name {
	case evidencerelationship.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case evidencerelationship.FieldInvestigationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvestigationID(v)
		return nil
	case evidencerelationship.FieldFromEvidenceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromEvidenceID(v)
		return nil
	case evidencerelationship.FieldToEvidenceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToEvidenceID(v)
		return nil
	case evidencerelationship.FieldKind:
		v, ok := value.(evidencerelationship.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case evidencerelationship.FieldStrength:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStrength(v)
		return nil
	case evidencerelationship.FieldRationale:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRationale(v)
		return nil
	case evidencerelationship.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EvidenceRelationship field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EvidenceRelationshipMutation) AddedFields() []string {
	var fields []string
	if m.addstrength != nil {
		fields = append(fields, evidencerelationship.FieldStrength)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EvidenceRelationshipMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case evidencerelationship.FieldStrength:
		return m.AddedStrength()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvidenceRelationshipMutation) AddField(name string, value ent.Value) error {
	switch name {
	case evidencerelationship.FieldStrength:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStrength(v)
		return nil
	}
	return fmt.Errorf("unknown EvidenceRelationship numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EvidenceRelationshipMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(evidencerelationship.FieldRationale) {
		fields = append(fields, evidencerelationship.FieldRationale)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EvidenceRelationshipMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EvidenceRelationshipMutation) ClearField(name string) error {
	switch name {
	case evidencerelationship.FieldRationale:
		m.ClearRationale()
		return nil
	}
	return fmt.Errorf("unknown EvidenceRelationship nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EvidenceRelationshipMutation) ResetField(name string) error {
	switch name {
	case evidencerelationship.FieldTenantID:
		m.ResetTenantID()
		return nil
	case evidencerelationship.FieldInvestigationID:
		m.ResetInvestigationID()
		return nil
	case evidencerelationship.FieldFromEvidenceID:
		m.ResetFromEvidenceID()
		return nil
	case evidencerelationship.FieldToEvidenceID:
		m.ResetToEvidenceID()
		return nil
	case evidencerelationship.FieldKind:
		m.ResetKind()
		return nil
	case evidencerelationship.FieldStrength:
		m.ResetStrength()
		return nil
	case evidencerelationship.FieldRationale:
		m.ResetRationale()
		return nil
	case evidencerelationship.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown EvidenceRelationship field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EvidenceRelationshipMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.from_evidence != nil {
		edges = append(edges, evidencerelationship.EdgeFromEvidence)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EvidenceRelationshipMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case evidencerelationship.EdgeFromEvidence:
		if id := m.from_evidence; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EvidenceRelationshipMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EvidenceRelationshipMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EvidenceRelationshipMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedfrom_evidence {
		edges = append(edges, evidencerelationship.EdgeFromEvidence)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EvidenceRelationshipMutation) EdgeCleared(name string) bool {
	switch name {
	case evidencerelationship.EdgeFromEvidence:
		return m.clearedfrom_evidence
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EvidenceRelationshipMutation) ClearEdge(name string) error {
	switch name {
	case evidencerelationship.EdgeFromEvidence:
		m.ClearFromEvidence()
		return nil
	}
	return fmt.Errorf("unknown EvidenceRelationship unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EvidenceRelationshipMutation) ResetEdge(name string) error {
	switch name {
	case evidencerelationship.EdgeFromEvidence:
		m.ResetFromEvidence()
		return nil
	}
	return fmt.Errorf("unknown EvidenceRelationship edge %s", name)
}

// FeedbackMutation represents an operation that mutates the Feedback nodes in the graph.
type FeedbackMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	tenant_id            *string
	user_id              *string
	_type                *feedback.Type
	content              *map[string]interface{}
	created_at           *time.Time
	consumed_at          *time.Time
	clearedFields        map[string]struct{}
	investigation        *string
	clearedinvestigation bool
	done                 bool
	oldValue             func(context.Context) (*Feedback, error)
	predicates           []predicate.Feedback
}

var _ ent.Mutation = (*FeedbackMutation)(nil)

// feedbackOption allows management of the mutation configuration using functional options.
type feedbackOption func(*FeedbackMutation)

// newFeedbackMutation creates new mutation for the Feedback entity.
func newFeedbackMutation(c config, op Op, opts ...feedbackOption) *FeedbackMutation {
	m := &FeedbackMutation{
		config:        c,
		op:            op,
		typ:           TypeFeedback,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFeedbackID sets the ID field of the mutation.
func withFeedbackID(id string) feedbackOption {
	return func(m *FeedbackMutation) {
		var (
			err   error
			once  sync.Once
			value *Feedback
		)
		m.oldValue = func(ctx context.Context) (*Feedback, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Feedback.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFeedback sets the old Feedback of the mutation.
func withFeedback(node *Feedback) feedbackOption {
	return func(m *FeedbackMutation) {
		m.oldValue = func(context.Context) (*Feedback, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FeedbackMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FeedbackMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Feedback entities.
func (m *FeedbackMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FeedbackMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FeedbackMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Feedback.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetInvestigationID sets the "investigation_id" field.
func (m *FeedbackMutation) SetInvestigationID(s string) {
	m.investigation = &s
}

// InvestigationID returns the value of the "investigation_id" field in the mutation.
func (m *FeedbackMutation) InvestigationID() (r string, exists bool) {
	v := m.investigation
	if v == nil {
		return
	}
	return *v, true
}

// OldInvestigationID returns the old "investigation_id" field's value of the Feedback entity.
// If the Feedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackMutation) OldInvestigationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvestigationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvestigationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvestigationID: %w", err)
	}
	return oldValue.InvestigationID, nil
}

// ResetInvestigationID resets all changes to the "investigation_id" field.
func (m *FeedbackMutation) ResetInvestigationID() {
	m.investigation = nil
}

// SetTenantID sets the "tenant_id" field.
func (m *FeedbackMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *FeedbackMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Feedback entity.
// If the Feedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *FeedbackMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetUserID sets the "user_id" field.
func (m *FeedbackMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *FeedbackMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Feedback entity.
// If the Feedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *FeedbackMutation) ResetUserID() {
	m.user_id = nil
}

// SetType sets the "type" field.
func (m *FeedbackMutation) SetType(f feedback.Type) {
	m._type = &f
}

// GetType returns the value of the "type" field in the mutation.
func (m *FeedbackMutation) GetType() (r feedback.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Feedback entity.
// If the Feedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackMutation) OldType(ctx context.Context) (v feedback.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *FeedbackMutation) ResetType() {
	m._type = nil
}

// SetContent sets the "content" field.
func (m *FeedbackMutation) SetContent(value map[string]interface{}) {
	m.content = &value
}

// Content returns the value of the "content" field in the mutation.
func (m *FeedbackMutation) Content() (r map[string]interface{}, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Feedback entity.
// If the Feedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackMutation) OldContent(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *FeedbackMutation) ResetContent() {
	m.content = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *FeedbackMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FeedbackMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Feedback entity.
// If the Feedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FeedbackMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetConsumedAt sets the "consumed_at" field.
func (m *FeedbackMutation) SetConsumedAt(t time.Time) {
	m.consumed_at = &t
}

// ConsumedAt returns the value of the "consumed_at" field in the mutation.
func (m *FeedbackMutation) ConsumedAt() (r time.Time, exists bool) {
	v := m.consumed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldConsumedAt returns the old "consumed_at" field's value of the Feedback entity.
// If the Feedback object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FeedbackMutation) OldConsumedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsumedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsumedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsumedAt: %w", err)
	}
	return oldValue.ConsumedAt, nil
}

// ClearConsumedAt clears the value of the "consumed_at" field.
func (m *FeedbackMutation) ClearConsumedAt() {
	m.consumed_at = nil
	m.clearedFields[feedback.FieldConsumedAt] = struct{}{}
}

// ConsumedAtCleared returns if the "consumed_at" field was cleared in this mutation.
func (m *FeedbackMutation) ConsumedAtCleared() bool {
	_, ok := m.clearedFields[feedback.FieldConsumedAt]
	return ok
}

// ResetConsumedAt resets all changes to the "consumed_at" field.
func (m *FeedbackMutation) ResetConsumedAt() {
	m.consumed_at = nil
	delete(m.clearedFields, feedback.FieldConsumedAt)
}

// ClearInvestigation clears the "investigation" edge to the Investigation entity.
func (m *FeedbackMutation) ClearInvestigation() {
	m.clearedinvestigation = true
	m.clearedFields[feedback.FieldInvestigationID] = struct{}{}
}

// InvestigationCleared reports if the "investigation" edge to the Investigation entity was cleared.
func (m *FeedbackMutation) InvestigationCleared() bool {
	return m.clearedinvestigation
}

// InvestigationIDs returns the "investigation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// InvestigationID instead. It exists only for internal usage by the builders.
func (m *FeedbackMutation) InvestigationIDs() (ids []string) {
	if id := m.investigation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetInvestigation resets all changes to the "investigation" edge.
func (m *FeedbackMutation) ResetInvestigation() {
	m.investigation = nil
	m.clearedinvestigation = false
}

// Where appends a list predicates to the FeedbackMutation builder.
func (m *FeedbackMutation) Where(ps ...predicate.Feedback) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FeedbackMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FeedbackMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Feedback, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FeedbackMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FeedbackMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Feedback).
func (m *FeedbackMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FeedbackMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.investigation != nil {
		fields = append(fields, feedback.FieldInvestigationID)
	}
	if m.tenant_id != nil {
		fields = append(fields, feedback.FieldTenantID)
	}
	if m.user_id != nil {
		fields = append(fields, feedback.FieldUserID)
	}
	if m._type != nil {
		fields = append(fields, feedback.FieldType)
	}
	if m.content != nil {
		fields = append(fields, feedback.FieldContent)
	}
	if m.created_at != nil {
		fields = append(fields, feedback.FieldCreatedAt)
	}
	if m.consumed_at != nil {
		fields = append(fields, feedback.FieldConsumedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FeedbackMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case feedback.FieldInvestigationID:
		return m.InvestigationID()
	case feedback.FieldTenantID:
		return m.TenantID()
	case feedback.FieldUserID:
		return m.UserID()
	case feedback.FieldType:
		return m.GetType()
	case feedback.FieldContent:
		return m.Content()
	case feedback.FieldCreatedAt:
		return m.CreatedAt()
	case feedback.FieldConsumedAt:
		return m.ConsumedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FeedbackMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case feedback.FieldInvestigationID:
		return m.OldInvestigationID(ctx)
	case feedback.FieldTenantID:
		return m.OldTenantID(ctx)
	case feedback.FieldUserID:
		return m.OldUserID(ctx)
	case feedback.FieldType:
		return m.OldType(ctx)
	case feedback.FieldContent:
		return m.OldContent(ctx)
	case feedback.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case feedback.FieldConsumedAt:
		return m.OldConsumedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Feedback field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FeedbackMutation) SetField(name string, value ent.Value) error {
	switch name {
	case feedback.FieldInvestigationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvestigationID(v)
		return nil
	case feedback.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case feedback.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case feedback.FieldType:
		v, ok := value.(feedback.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case feedback.FieldContent:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case feedback.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case feedback.FieldConsumedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsumedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Feedback field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FeedbackMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FeedbackMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FeedbackMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Feedback numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FeedbackMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(feedback.FieldConsumedAt) {
		fields = append(fields, feedback.FieldConsumedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FeedbackMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FeedbackMutation) ClearField(name string) error {
	switch name {
	case feedback.FieldConsumedAt:
		m.ClearConsumedAt()
		return nil
	}
	return fmt.Errorf("unknown Feedback nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FeedbackMutation) ResetField(name string) error {
	switch name {
	case feedback.FieldInvestigationID:
		m.ResetInvestigationID()
		return nil
	case feedback.FieldTenantID:
		m.ResetTenantID()
		return nil
	case feedback.FieldUserID:
		m.ResetUserID()
		return nil
	case feedback.FieldType:
		m.ResetType()
		return nil
	case feedback.FieldContent:
		m.ResetContent()
		return nil
	case feedback.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case feedback.FieldConsumedAt:
		m.ResetConsumedAt()
		return nil
	}
	return fmt.Errorf("unknown Feedback field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FeedbackMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.investigation != nil {
		edges = append(edges, feedback.EdgeInvestigation)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FeedbackMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case feedback.EdgeInvestigation:
		if id := m.investigation; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FeedbackMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FeedbackMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FeedbackMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedinvestigation {
		edges = append(edges, feedback.EdgeInvestigation)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FeedbackMutation) EdgeCleared(name string) bool {
	switch name {
	case feedback.EdgeInvestigation:
		return m.clearedinvestigation
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FeedbackMutation) ClearEdge(name string) error {
	switch name {
	case feedback.EdgeInvestigation:
		m.ClearInvestigation()
		return nil
	}
	return fmt.Errorf("unknown Feedback unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FeedbackMutation) ResetEdge(name string) error {
	switch name {
	case feedback.EdgeInvestigation:
		m.ResetInvestigation()
		return nil
	}
	return fmt.Errorf("unknown Feedback edge %s", name)
}

// InvestigationMutation represents an operation that mutates the Investigation nodes in the graph.
type InvestigationMutation struct {
	config
	op                Op
	typ               string
	id                *string
	tenant_id         *string
	alert_id          *string
	correlation_key   *string
	user_id           *string
	alert_title       *string
	alert_severity    *investigation.AlertSeverity
	alert_source      *string
	alert_timestamp   *time.Time
	alert_payload     *map[string]interface{}
	alert_entities    *map[string][]string
	priority          *int
	addpriority       *int
	status            *investigation.Status
	timeout_ms        *int64
	addtimeout_ms     *int64
	created_at        *time.Time
	started_at        *time.Time
	completed_at      *time.Time
	verdict           *map[string]interface{}
	error_message     *string
	execution_summary *map[string]interface{}
	metadata          *map[string]interface{}
	pod_id            *string
	last_heartbeat_at *time.Time
	deleted_at        *time.Time
	clearedFields     map[string]struct{}
	steps             map[string]struct{}
	removedsteps      map[string]struct{}
	clearedsteps      bool
	evidence          map[string]struct{}
	removedevidence   map[string]struct{}
	clearedevidence   bool
	feedback          map[string]struct{}
	removedfeedback   map[string]struct{}
	clearedfeedback   bool
	approvals         map[string]struct{}
	removedapprovals  map[string]struct{}
	clearedapprovals  bool
	run_events        map[int]struct{}
	removedrun_events map[int]struct{}
	clearedrun_events bool
	done              bool
	oldValue          func(context.Context) (*Investigation, error)
	predicates        []predicate.Investigation
}

var _ ent.Mutation = (*InvestigationMutation)(nil)

// investigationOption allows management of the mutation configuration using functional options.
type investigationOption func(*InvestigationMutation)

// newInvestigationMutation creates new mutation for the Investigation entity.
func newInvestigationMutation(c config, op Op, opts ...investigationOption) *InvestigationMutation {
	m := &InvestigationMutation{
		config:        c,
		op:            op,
		typ:           TypeInvestigation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInvestigationID sets the ID field of the mutation.
func withInvestigationID(id string) investigationOption {
	return func(m *InvestigationMutation) {
		var (
			err   error
			once  sync.Once
			value *Investigation
		)
		m.oldValue = func(ctx context.Context) (*Investigation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Investigation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInvestigation sets the old Investigation of the mutation.
func withInvestigation(node *Investigation) investigationOption {
	return func(m *InvestigationMutation) {
		m.oldValue = func(context.Context) (*Investigation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InvestigationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InvestigationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Investigation entities.
func (m *InvestigationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InvestigationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InvestigationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Investigation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *InvestigationMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *InvestigationMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *InvestigationMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetAlertID sets the "alert_id" field.
func (m *InvestigationMutation) SetAlertID(s string) {
	m.alert_id = &s
}

// AlertID returns the value of the "alert_id" field in the mutation.
func (m *InvestigationMutation) AlertID() (r string, exists bool) {
	v := m.alert_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAlertID returns the old "alert_id" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldAlertID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlertID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlertID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlertID: %w", err)
	}
	return oldValue.AlertID, nil
}

// ResetAlertID resets all changes to the "alert_id" field.
func (m *InvestigationMutation) ResetAlertID() {
	m.alert_id = nil
}

// SetCorrelationKey sets the "correlation_key" field.
func (m *InvestigationMutation) SetCorrelationKey(s string) {
	m.correlation_key = &s
}

// CorrelationKey returns the value of the "correlation_key" field in the mutation.
func (m *InvestigationMutation) CorrelationKey() (r string, exists bool) {
	v := m.correlation_key
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrelationKey returns the old "correlation_key" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldCorrelationKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrelationKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrelationKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrelationKey: %w", err)
	}
	return oldValue.CorrelationKey, nil
}

// ResetCorrelationKey resets all changes to the "correlation_key" field.
func (m *InvestigationMutation) ResetCorrelationKey() {
	m.correlation_key = nil
}

// SetUserID sets the "user_id" field.
func (m *InvestigationMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *InvestigationMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldUserID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *InvestigationMutation) ClearUserID() {
	m.user_id = nil
	m.clearedFields[investigation.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *InvestigationMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[investigation.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *InvestigationMutation) ResetUserID() {
	m.user_id = nil
	delete(m.clearedFields, investigation.FieldUserID)
}

// SetAlertTitle sets the "alert_title" field.
func (m *InvestigationMutation) SetAlertTitle(s string) {
	m.alert_title = &s
}

// AlertTitle returns the value of the "alert_title" field in the mutation.
func (m *InvestigationMutation) AlertTitle() (r string, exists bool) {
	v := m.alert_title
	if v == nil {
		return
	}
	return *v, true
}

// OldAlertTitle returns the old "alert_title" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldAlertTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlertTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlertTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlertTitle: %w", err)
	}
	return oldValue.AlertTitle, nil
}

// ClearAlertTitle clears the value of the "alert_title" field.
func (m *InvestigationMutation) ClearAlertTitle() {
	m.alert_title = nil
	m.clearedFields[investigation.FieldAlertTitle] = struct{}{}
}

// AlertTitleCleared returns if the "alert_title" field was cleared in this mutation.
func (m *InvestigationMutation) AlertTitleCleared() bool {
	_, ok := m.clearedFields[investigation.FieldAlertTitle]
	return ok
}

// ResetAlertTitle resets all changes to the "alert_title" field.
func (m *InvestigationMutation) ResetAlertTitle() {
	m.alert_title = nil
	delete(m.clearedFields, investigation.FieldAlertTitle)
}

// SetAlertSeverity sets the "alert_severity" field.
func (m *InvestigationMutation) SetAlertSeverity(is investigation.AlertSeverity) {
	m.alert_severity = &is
}

// AlertSeverity returns the value of the "alert_severity" field in the mutation.
func (m *InvestigationMutation) AlertSeverity() (r investigation.AlertSeverity, exists bool) {
	v := m.alert_severity
	if v == nil {
		return
	}
	return *v, true
}

// OldAlertSeverity returns the old "alert_severity" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldAlertSeverity(ctx context.Context) (v investigation.AlertSeverity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlertSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlertSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlertSeverity: %w", err)
	}
	return oldValue.AlertSeverity, nil
}

// ResetAlertSeverity resets all changes to the "alert_severity" field.
func (m *InvestigationMutation) ResetAlertSeverity() {
	m.alert_severity = nil
}

// SetAlertSource sets the "alert_source" field.
func (m *InvestigationMutation) SetAlertSource(s string) {
	m.alert_source = &s
}

// AlertSource returns the value of the "alert_source" field in the mutation.
func (m *InvestigationMutation) AlertSource() (r string, exists bool) {
	v := m.alert_source
	if v == nil {
		return
	}
	return *v, true
}

// OldAlertSource returns the old "alert_source" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldAlertSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlertSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlertSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlertSource: %w", err)
	}
	return oldValue.AlertSource, nil
}

// ClearAlertSource clears the value of the "alert_source" field.
func (m *InvestigationMutation) ClearAlertSource() {
	m.alert_source = nil
	m.clearedFields[investigation.FieldAlertSource] = struct{}{}
}

// AlertSourceCleared returns if the "alert_source" field was cleared in this mutation.
func (m *InvestigationMutation) AlertSourceCleared() bool {
	_, ok := m.clearedFields[investigation.FieldAlertSource]
	return ok
}

// ResetAlertSource resets all changes to the "alert_source" field.
func (m *InvestigationMutation) ResetAlertSource() {
	m.alert_source = nil
	delete(m.clearedFields, investigation.FieldAlertSource)
}

// SetAlertTimestamp sets the "alert_timestamp" field.
func (m *InvestigationMutation) SetAlertTimestamp(t time.Time) {
	m.alert_timestamp = &t
}

// AlertTimestamp returns the value of the "alert_timestamp" field in the mutation.
func (m *InvestigationMutation) AlertTimestamp() (r time.Time, exists bool) {
	v := m.alert_timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldAlertTimestamp returns the old "alert_timestamp" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldAlertTimestamp(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlertTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlertTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlertTimestamp: %w", err)
	}
	return oldValue.AlertTimestamp, nil
}

// ClearAlertTimestamp clears the value of the "alert_timestamp" field.
func (m *InvestigationMutation) ClearAlertTimestamp() {
	m.alert_timestamp = nil
	m.clearedFields[investigation.FieldAlertTimestamp] = struct{}{}
}

// AlertTimestampCleared returns if the "alert_timestamp" field was cleared in this mutation.
func (m *InvestigationMutation) AlertTimestampCleared() bool {
	_, ok := m.clearedFields[investigation.FieldAlertTimestamp]
	return ok
}

// ResetAlertTimestamp resets all changes to the "alert_timestamp" field.
func (m *InvestigationMutation) ResetAlertTimestamp() {
	m.alert_timestamp = nil
	delete(m.clearedFields, investigation.FieldAlertTimestamp)
}

// SetAlertPayload sets the "alert_payload" field.
func (m *InvestigationMutation) SetAlertPayload(value map[string]interface{}) {
	m.alert_payload = &value
}

// AlertPayload returns the value of the "alert_payload" field in the mutation.
func (m *InvestigationMutation) AlertPayload() (r map[string]interface{}, exists bool) {
	v := m.alert_payload
	if v == nil {
		return
	}
	return *v, true
}

// OldAlertPayload returns the old "alert_payload" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldAlertPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlertPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlertPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlertPayload: %w", err)
	}
	return oldValue.AlertPayload, nil
}

// ClearAlertPayload clears the value of the "alert_payload" field.
func (m *InvestigationMutation) ClearAlertPayload() {
	m.alert_payload = nil
	m.clearedFields[investigation.FieldAlertPayload] = struct{}{}
}

// AlertPayloadCleared returns if the "alert_payload" field was cleared in this mutation.
func (m *InvestigationMutation) AlertPayloadCleared() bool {
	_, ok := m.clearedFields[investigation.FieldAlertPayload]
	return ok
}

// ResetAlertPayload resets all changes to the "alert_payload" field.
func (m *InvestigationMutation) ResetAlertPayload() {
	m.alert_payload = nil
	delete(m.clearedFields, investigation.FieldAlertPayload)
}

// SetAlertEntities sets the "alert_entities" field.
func (m *InvestigationMutation) SetAlertEntities(value map[string][]string) {
	m.alert_entities = &value
}

// AlertEntities returns the value of the "alert_entities" field in the mutation.
func (m *InvestigationMutation) AlertEntities() (r map[string][]string, exists bool) {
	v := m.alert_entities
	if v == nil {
		return
	}
	return *v, true
}

// OldAlertEntities returns the old "alert_entities" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldAlertEntities(ctx context.Context) (v map[string][]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlertEntities is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlertEntities requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlertEntities: %w", err)
	}
	return oldValue.AlertEntities, nil
}

// ClearAlertEntities clears the value of the "alert_entities" field.
func (m *InvestigationMutation) ClearAlertEntities() {
	m.alert_entities = nil
	m.clearedFields[investigation.FieldAlertEntities] = struct{}{}
}

// AlertEntitiesCleared returns if the "alert_entities" field was cleared in this mutation.
func (m *InvestigationMutation) AlertEntitiesCleared() bool {
	_, ok := m.clearedFields[investigation.FieldAlertEntities]
	return ok
}

// ResetAlertEntities resets all changes to the "alert_entities" field.
func (m *InvestigationMutation) ResetAlertEntities() {
	m.alert_entities = nil
	delete(m.clearedFields, investigation.FieldAlertEntities)
}

// SetPriority sets the "priority" field.
func (m *InvestigationMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *InvestigationMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *InvestigationMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *InvestigationMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *InvestigationMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetStatus sets the "status" field.
func (m *InvestigationMutation) SetStatus(i investigation.Status) {
	m.status = &i
}

// Status returns the value of the "status" field in the mutation.
func (m *InvestigationMutation) Status() (r investigation.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldStatus(ctx context.Context) (v investigation.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *InvestigationMutation) ResetStatus() {
	m.status = nil
}

// SetTimeoutMs sets the "timeout_ms" field.
func (m *InvestigationMutation) SetTimeoutMs(i int64) {
	m.timeout_ms = &i
	m.addtimeout_ms = nil
}

// TimeoutMs returns the value of the "timeout_ms" field in the mutation.
func (m *InvestigationMutation) TimeoutMs() (r int64, exists bool) {
	v := m.timeout_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeoutMs returns the old "timeout_ms" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldTimeoutMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeoutMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeoutMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeoutMs: %w", err)
	}
	return oldValue.TimeoutMs, nil
}

// AddTimeoutMs adds i to the "timeout_ms" field.
func (m *InvestigationMutation) AddTimeoutMs(i int64) {
	if m.addtimeout_ms != nil {
		*m.addtimeout_ms += i
	} else {
		m.addtimeout_ms = &i
	}
}

// AddedTimeoutMs returns the value that was added to the "timeout_ms" field in this mutation.
func (m *InvestigationMutation) AddedTimeoutMs() (r int64, exists bool) {
	v := m.addtimeout_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeoutMs resets all changes to the "timeout_ms" field.
func (m *InvestigationMutation) ResetTimeoutMs() {
	m.timeout_ms = nil
	m.addtimeout_ms = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *InvestigationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InvestigationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InvestigationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *InvestigationMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *InvestigationMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *InvestigationMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[investigation.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *InvestigationMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[investigation.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *InvestigationMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, investigation.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *InvestigationMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *InvestigationMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *InvestigationMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[investigation.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *InvestigationMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[investigation.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *InvestigationMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, investigation.FieldCompletedAt)
}

// SetVerdict sets the "verdict" field.
func (m *InvestigationMutation) SetVerdict(value map[string]interface{}) {
	m.verdict = &value
}

// Verdict returns the value of the "verdict" field in the mutation.
func (m *InvestigationMutation) Verdict() (r map[string]interface{}, exists bool) {
	v := m.verdict
	if v == nil {
		return
	}
	return *v, true
}

// OldVerdict returns the old "verdict" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldVerdict(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerdict is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerdict requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerdict: %w", err)
	}
	return oldValue.Verdict, nil
}

// ClearVerdict clears the value of the "verdict" field.
func (m *InvestigationMutation) ClearVerdict() {
	m.verdict = nil
	m.clearedFields[investigation.FieldVerdict] = struct{}{}
}

// VerdictCleared returns if the "verdict" field was cleared in this mutation.
func (m *InvestigationMutation) VerdictCleared() bool {
	_, ok := m.clearedFields[investigation.FieldVerdict]
	return ok
}

// ResetVerdict resets all changes to the "verdict" field.
func (m *InvestigationMutation) ResetVerdict() {
	m.verdict = nil
	delete(m.clearedFields, investigation.FieldVerdict)
}

// SetErrorMessage sets the "error_message" field.
func (m *InvestigationMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *InvestigationMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *InvestigationMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[investigation.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *InvestigationMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[investigation.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *InvestigationMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, investigation.FieldErrorMessage)
}

// SetExecutionSummary sets the "execution_summary" field.
func (m *InvestigationMutation) SetExecutionSummary(value map[string]interface{}) {
	m.execution_summary = &value
}

// ExecutionSummary returns the value of the "execution_summary" field in the mutation.
func (m *InvestigationMutation) ExecutionSummary() (r map[string]interface{}, exists bool) {
	v := m.execution_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionSummary returns the old "execution_summary" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldExecutionSummary(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionSummary: %w", err)
	}
	return oldValue.ExecutionSummary, nil
}

// ClearExecutionSummary clears the value of the "execution_summary" field.
func (m *InvestigationMutation) ClearExecutionSummary() {
	m.execution_summary = nil
	m.clearedFields[investigation.FieldExecutionSummary] = struct{}{}
}

// ExecutionSummaryCleared returns if the "execution_summary" field was cleared in this mutation.
func (m *InvestigationMutation) ExecutionSummaryCleared() bool {
	_, ok := m.clearedFields[investigation.FieldExecutionSummary]
	return ok
}

// ResetExecutionSummary resets all changes to the "execution_summary" field.
func (m *InvestigationMutation) ResetExecutionSummary() {
	m.execution_summary = nil
	delete(m.clearedFields, investigation.FieldExecutionSummary)
}

// SetMetadata sets the "metadata" field.
func (m *InvestigationMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *InvestigationMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *InvestigationMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[investigation.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *InvestigationMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[investigation.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *InvestigationMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, investigation.FieldMetadata)
}

// SetPodID sets the "pod_id" field.
func (m *InvestigationMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *InvestigationMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *InvestigationMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[investigation.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *InvestigationMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[investigation.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *InvestigationMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, investigation.FieldPodID)
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *InvestigationMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *InvestigationMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldLastHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (m *InvestigationMutation) ClearLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	m.clearedFields[investigation.FieldLastHeartbeatAt] = struct{}{}
}

// LastHeartbeatAtCleared returns if the "last_heartbeat_at" field was cleared in this mutation.
func (m *InvestigationMutation) LastHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[investigation.FieldLastHeartbeatAt]
	return ok
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *InvestigationMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	delete(m.clearedFields, investigation.FieldLastHeartbeatAt)
}

// SetDeletedAt sets the "deleted_at" field.
func (m *InvestigationMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *InvestigationMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Investigation entity.
// If the Investigation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestigationMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *InvestigationMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[investigation.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *InvestigationMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[investigation.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *InvestigationMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, investigation.FieldDeletedAt)
}

// AddStepIDs adds the "steps" edge to the PlanStep entity by ids.
func (m *InvestigationMutation) AddStepIDs(ids ...string) {
	if m.steps == nil {
		m.steps = make(map[string]struct{})
	}
	for i := range ids {
		m.steps[ids[i]] = struct{}{}
	}
}

// ClearSteps clears the "steps" edge to the PlanStep entity.
func (m *InvestigationMutation) ClearSteps() {
	m.clearedsteps = true
}

// StepsCleared reports if the "steps" edge to the PlanStep entity was cleared.
func (m *InvestigationMutation) StepsCleared() bool {
	return m.clearedsteps
}

// RemoveStepIDs removes the "steps" edge to the PlanStep entity by IDs.
func (m *InvestigationMutation) RemoveStepIDs(ids ...string) {
	if m.removedsteps == nil {
		m.removedsteps = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.steps, ids[i])
		m.removedsteps[ids[i]] = struct{}{}
	}
}

// RemovedSteps returns the removed IDs of the "steps" edge to the PlanStep entity.
func (m *InvestigationMutation) RemovedStepsIDs() (ids []string) {
	for id := range m.removedsteps {
		ids = append(ids, id)
	}
	return
}

// StepsIDs returns the "steps" edge IDs in the mutation.
func (m *InvestigationMutation) StepsIDs() (ids []string) {
	for id := range m.steps {
		ids = append(ids, id)
	}
	return
}

// ResetSteps resets all changes to the "steps" edge.
func (m *InvestigationMutation) ResetSteps() {
	m.steps = nil
	m.clearedsteps = false
	m.removedsteps = nil
}

// AddEvidenceIDs adds the "evidence" edge to the Evidence entity by ids.
func (m *InvestigationMutation) AddEvidenceIDs(ids ...string) {
	if m.evidence == nil {
		m.evidence = make(map[string]struct{})
	}
	for i := range ids {
		m.evidence[ids[i]] = struct{}{}
	}
}

// ClearEvidence clears the "evidence" edge to the Evidence entity.
func (m *InvestigationMutation) ClearEvidence() {
	m.clearedevidence = true
}

// EvidenceCleared reports if the "evidence" edge to the Evidence entity was cleared.
func (m *InvestigationMutation) EvidenceCleared() bool {
	return m.clearedevidence
}

// RemoveEvidenceIDs removes the "evidence" edge to the Evidence entity by IDs.
func (m *InvestigationMutation) RemoveEvidenceIDs(ids ...string) {
	if m.removedevidence == nil {
		m.removedevidence = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.evidence, ids[i])
		m.removedevidence[ids[i]] = struct{}{}
	}
}

// RemovedEvidence returns the removed IDs of the "evidence" edge to the Evidence entity.
func (m *InvestigationMutation) RemovedEvidenceIDs() (ids []string) {
	for id := range m.removedevidence {
		ids = append(ids, id)
	}
	return
}

// EvidenceIDs returns the "evidence" edge IDs in the mutation.
func (m *InvestigationMutation) EvidenceIDs() (ids []string) {
	for id := range m.evidence {
		ids = append(ids, id)
	}
	return
}

// ResetEvidence resets all changes to the "evidence" edge.
func (m *InvestigationMutation) ResetEvidence() {
	m.evidence = nil
	m.clearedevidence = false
	m.removedevidence = nil
}

// AddFeedbackIDs adds the "feedback" edge to the Feedback entity by ids.
func (m *InvestigationMutation) AddFeedbackIDs(ids ...string) {
	if m.feedback == nil {
		m.feedback = make(map[string]struct{})
	}
	for i := range ids {
		m.feedback[ids[i]] = struct{}{}
	}
}

// ClearFeedback clears the "feedback" edge to the Feedback entity.
func (m *InvestigationMutation) ClearFeedback() {
	m.clearedfeedback = true
}

// FeedbackCleared reports if the "feedback" edge to the Feedback entity was cleared.
func (m *InvestigationMutation) FeedbackCleared() bool {
	return m.clearedfeedback
}

// RemoveFeedbackIDs removes the "feedback" edge to the Feedback entity by IDs.
func (m *InvestigationMutation) RemoveFeedbackIDs(ids ...string) {
	if m.removedfeedback == nil {
		m.removedfeedback = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.feedback, ids[i])
		m.removedfeedback[ids[i]] = struct{}{}
	}
}

// RemovedFeedback returns the removed IDs of the "feedback" edge to the Feedback entity.
func (m *InvestigationMutation) RemovedFeedbackIDs() (ids []string) {
	for id := range m.removedfeedback {
		ids = append(ids, id)
	}
	return
}

// FeedbackIDs returns the "feedback" edge IDs in the mutation.
func (m *InvestigationMutation) FeedbackIDs() (ids []string) {
	for id := range m.feedback {
		ids = append(ids, id)
	}
	return
}

// ResetFeedback resets all changes to the "feedback" edge.
func (m *InvestigationMutation) ResetFeedback() {
	m.feedback = nil
	m.clearedfeedback = false
	m.removedfeedback = nil
}

// AddApprovalIDs adds the "approvals" edge to the ApprovalRequest entity by ids.
func (m *InvestigationMutation) AddApprovalIDs(ids ...string) {
	if m.approvals == nil {
		m.approvals = make(map[string]struct{})
	}
	for i := range ids {
		m.approvals[ids[i]] = struct{}{}
	}
}

// ClearApprovals clears the "approvals" edge to the ApprovalRequest entity.
func (m *InvestigationMutation) ClearApprovals() {
	m.clearedapprovals = true
}

// ApprovalsCleared reports if the "approvals" edge to the ApprovalRequest entity was cleared.
func (m *InvestigationMutation) ApprovalsCleared() bool {
	return m.clearedapprovals
}

// RemoveApprovalIDs removes the "approvals" edge to the ApprovalRequest entity by IDs.
func (m *InvestigationMutation) RemoveApprovalIDs(ids ...string) {
	if m.removedapprovals == nil {
		m.removedapprovals = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.approvals, ids[i])
		m.removedapprovals[ids[i]] = struct{}{}
	}
}

// RemovedApprovals returns the removed IDs of the "approvals" edge to the ApprovalRequest entity.
func (m *InvestigationMutation) RemovedApprovalsIDs() (ids []string) {
	for id := range m.removedapprovals {
		ids = append(ids, id)
	}
	return
}

// ApprovalsIDs returns the "approvals" edge IDs in the mutation.
func (m *InvestigationMutation) ApprovalsIDs() (ids []string) {
	for id := range m.approvals {
		ids = append(ids, id)
	}
	return
}

// ResetApprovals resets all changes to the "approvals" edge.
func (m *InvestigationMutation) ResetApprovals() {
	m.approvals = nil
	m.clearedapprovals = false
	m.removedapprovals = nil
}

// AddRunEventIDs adds the "run_events" edge to the RunEvent entity by ids.
func (m *InvestigationMutation) AddRunEventIDs(ids ...int) {
	if m.run_events == nil {
		m.run_events = make(map[int]struct{})
	}
	for i := range ids {
		m.run_events[ids[i]] = struct{}{}
	}
}

// ClearRunEvents clears the "run_events" edge to the RunEvent entity.
func (m *InvestigationMutation) ClearRunEvents() {
	m.clearedrun_events = true
}

// RunEventsCleared reports if the "run_events" edge to the RunEvent entity was cleared.
func (m *InvestigationMutation) RunEventsCleared() bool {
	return m.clearedrun_events
}

// RemoveRunEventIDs removes the "run_events" edge to the RunEvent entity by IDs.
func (m *InvestigationMutation) RemoveRunEventIDs(ids ...int) {
	if m.removedrun_events == nil {
		m.removedrun_events = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.run_events, ids[i])
		m.removedrun_events[ids[i]] = struct{}{}
	}
}

// RemovedRunEvents returns the removed IDs of the "run_events" edge to the RunEvent entity.
func (m *InvestigationMutation) RemovedRunEventsIDs() (ids []int) {
	for id := range m.removedrun_events {
		ids = append(ids, id)
	}
	return
}

// RunEventsIDs returns the "run_events" edge IDs in the mutation.
func (m *InvestigationMutation) RunEventsIDs() (ids []int) {
	for id := range m.run_events {
		ids = append(ids, id)
	}
	return
}

// ResetRunEvents resets all changes to the "run_events" edge.
func (m *InvestigationMutation) ResetRunEvents() {
	m.run_events = nil
	m.clearedrun_events = false
	m.removedrun_events = nil
}

// Where appends a list predicates to the InvestigationMutation builder.
func (m *InvestigationMutation) Where(ps ...predicate.Investigation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InvestigationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InvestigationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Investigation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InvestigationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InvestigationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Investigation).
func (m *InvestigationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InvestigationMutation) Fields() []string {
	fields := make([]string, 0, 23)
	if m.tenant_id != nil {
		fields = append(fields, investigation.FieldTenantID)
	}
	if m.alert_id != nil {
		fields = append(fields, investigation.FieldAlertID)
	}
	if m.correlation_key != nil {
		fields = append(fields, investigation.FieldCorrelationKey)
	}
	if m.user_id != nil {
		fields = append(fields, investigation.FieldUserID)
	}
	if m.alert_title != nil {
		fields = append(fields, investigation.FieldAlertTitle)
	}
	if m.alert_severity != nil {
		fields = append(fields, investigation.FieldAlertSeverity)
	}
	if m.alert_source != nil {
		fields = append(fields, investigation.FieldAlertSource)
	}
	if m.alert_timestamp != nil {
		fields = append(fields, investigation.FieldAlertTimestamp)
	}
	if m.alert_payload != nil {
		fields = append(fields, investigation.FieldAlertPayload)
	}
	if m.alert_entities != nil {
		fields = append(fields, investigation.FieldAlertEntities)
	}
	if m.priority != nil {
		fields = append(fields, investigation.FieldPriority)
	}
	if m.status != nil {
		fields = append(fields, investigation.FieldStatus)
	}
	if m.timeout_ms != nil {
		fields = append(fields, investigation.FieldTimeoutMs)
	}
	if m.created_at != nil {
		fields = append(fields, investigation.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, investigation.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, investigation.FieldCompletedAt)
	}
	if m.verdict != nil {
		fields = append(fields, investigation.FieldVerdict)
	}
	if m.error_message != nil {
		fields = append(fields, investigation.FieldErrorMessage)
	}
	if m.execution_summary != nil {
		fields = append(fields, investigation.FieldExecutionSummary)
	}
	if m.metadata != nil {
		fields = append(fields, investigation.FieldMetadata)
	}
	if m.pod_id != nil {
		fields = append(fields, investigation.FieldPodID)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, investigation.FieldLastHeartbeatAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, investigation.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InvestigationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case investigation.FieldTenantID:
		return m.TenantID()
	case investigation.FieldAlertID:
		return m.AlertID()
	case investigation.FieldCorrelationKey:
		return m.CorrelationKey()
	case investigation.FieldUserID:
		return m.UserID()
	case investigation.FieldAlertTitle:
		return m.AlertTitle()
	case investigation.FieldAlertSeverity:
		return m.AlertSeverity()
	case investigation.FieldAlertSource:
		return m.AlertSource()
	case investigation.FieldAlertTimestamp:
		return m.AlertTimestamp()
	case investigation.FieldAlertPayload:
		return m.AlertPayload()
	case investigation.FieldAlertEntities:
		return m.AlertEntities()
	case investigation.FieldPriority:
		return m.Priority()
	case investigation.FieldStatus:
		return m.Status()
	case investigation.FieldTimeoutMs:
		return m.TimeoutMs()
	case investigation.FieldCreatedAt:
		return m.CreatedAt()
	case investigation.FieldStartedAt:
		return m.StartedAt()
	case investigation.FieldCompletedAt:
		return m.CompletedAt()
	case investigation.FieldVerdict:
		return m.Verdict()
	case investigation.FieldErrorMessage:
		return m.ErrorMessage()
	case investigation.FieldExecutionSummary:
		return m.ExecutionSummary()
	case investigation.FieldMetadata:
		return m.Metadata()
	case investigation.FieldPodID:
		return m.PodID()
	case investigation.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	case investigation.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InvestigationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case investigation.FieldTenantID:
		return m.OldTenantID(ctx)
	case investigation.FieldAlertID:
		return m.OldAlertID(ctx)
	case investigation.FieldCorrelationKey:
		return m.OldCorrelationKey(ctx)
	case investigation.FieldUserID:
		return m.OldUserID(ctx)
	case investigation.FieldAlertTitle:
		return m.OldAlertTitle(ctx)
	case investigation.FieldAlertSeverity:
		return m.OldAlertSeverity(ctx)
	case investigation.FieldAlertSource:
		return m.OldAlertSource(ctx)
	case investigation.FieldAlertTimestamp:
		return m.OldAlertTimestamp(ctx)
	case investigation.FieldAlertPayload:
		return m.OldAlertPayload(ctx)
	case investigation.FieldAlertEntities:
		return m.OldAlertEntities(ctx)
	case investigation.FieldPriority:
		return m.OldPriority(ctx)
	case investigation.FieldStatus:
		return m.OldStatus(ctx)
	case investigation.FieldTimeoutMs:
		return m.OldTimeoutMs(ctx)
	case investigation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case investigation.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case investigation.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case investigation.FieldVerdict:
		return m.OldVerdict(ctx)
	case investigation.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case investigation.FieldExecutionSummary:
		return m.OldExecutionSummary(ctx)
	case investigation.FieldMetadata:
		return m.OldMetadata(ctx)
	case investigation.FieldPodID:
		return m.OldPodID(ctx)
	case investigation.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	case investigation.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Investigation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvestigationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case investigation.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case investigation.FieldAlertID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlertID(v)
		return nil
	case investigation.FieldCorrelationKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrelationKey(v)
		return nil
	case investigation.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case investigation.FieldAlertTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlertTitle(v)
		return nil
	case investigation.FieldAlertSeverity:
		v, ok := value.(investigation.AlertSeverity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlertSeverity(v)
		return nil
	case investigation.FieldAlertSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlertSource(v)
		return nil
	case investigation.FieldAlertTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlertTimestamp(v)
		return nil
	case investigation.FieldAlertPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlertPayload(v)
		return nil
	case investigation.FieldAlertEntities:
		v, ok := value.(map[string][]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlertEntities(v)
		return nil
	case investigation.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case investigation.FieldStatus:
		v, ok := value.(investigation.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case investigation.FieldTimeoutMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeoutMs(v)
		return nil
	case investigation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case investigation.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case investigation.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case investigation.FieldVerdict:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerdict(v)
		return nil
	case investigation.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case investigation.FieldExecutionSummary:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionSummary(v)
		return nil
	case investigation.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case investigation.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case investigation.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	case investigation.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Investigation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InvestigationMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, investigation.FieldPriority)
	}
	if m.addtimeout_ms != nil {
		fields = append(fields, investigation.FieldTimeoutMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InvestigationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case investigation.FieldPriority:
		return m.AddedPriority()
	case investigation.FieldTimeoutMs:
		return m.AddedTimeoutMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvestigationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case investigation.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	case investigation.FieldTimeoutMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeoutMs(v)
		return nil
	}
	return fmt.Errorf("unknown Investigation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InvestigationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(investigation.FieldUserID) {
		fields = append(fields, investigation.FieldUserID)
	}
	if m.FieldCleared(investigation.FieldAlertTitle) {
		fields = append(fields, investigation.FieldAlertTitle)
	}
	if m.FieldCleared(investigation.FieldAlertSource) {
		fields = append(fields, investigation.FieldAlertSource)
	}
	if m.FieldCleared(investigation.FieldAlertTimestamp) {
		fields = append(fields, investigation.FieldAlertTimestamp)
	}
	if m.FieldCleared(investigation.FieldAlertPayload) {
		fields = append(fields, investigation.FieldAlertPayload)
	}
	if m.FieldCleared(investigation.FieldAlertEntities) {
		fields = append(fields, investigation.FieldAlertEntities)
	}
	if m.FieldCleared(investigation.FieldStartedAt) {
		fields = append(fields, investigation.FieldStartedAt)
	}
	if m.FieldCleared(investigation.FieldCompletedAt) {
		fields = append(fields, investigation.FieldCompletedAt)
	}
	if m.FieldCleared(investigation.FieldVerdict) {
		fields = append(fields, investigation.FieldVerdict)
	}
	if m.FieldCleared(investigation.FieldErrorMessage) {
		fields = append(fields, investigation.FieldErrorMessage)
	}
	if m.FieldCleared(investigation.FieldExecutionSummary) {
		fields = append(fields, investigation.FieldExecutionSummary)
	}
	if m.FieldCleared(investigation.FieldMetadata) {
		fields = append(fields, investigation.FieldMetadata)
	}
	if m.FieldCleared(investigation.FieldPodID) {
		fields = append(fields, investigation.FieldPodID)
	}
	if m.FieldCleared(investigation.FieldLastHeartbeatAt) {
		fields = append(fields, investigation.FieldLastHeartbeatAt)
	}
	if m.FieldCleared(investigation.FieldDeletedAt) {
		fields = append(fields, investigation.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InvestigationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InvestigationMutation) ClearField(name string) error {
	switch name {
	case investigation.FieldUserID:
		m.ClearUserID()
		return nil
	case investigation.FieldAlertTitle:
		m.ClearAlertTitle()
		return nil
	case investigation.FieldAlertSource:
		m.ClearAlertSource()
		return nil
	case investigation.FieldAlertTimestamp:
		m.ClearAlertTimestamp()
		return nil
	case investigation.FieldAlertPayload:
		m.ClearAlertPayload()
		return nil
	case investigation.FieldAlertEntities:
		m.ClearAlertEntities()
		return nil
	case investigation.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case investigation.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case investigation.FieldVerdict:
		m.ClearVerdict()
		return nil
	case investigation.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case investigation.FieldExecutionSummary:
		m.ClearExecutionSummary()
		return nil
	case investigation.FieldMetadata:
		m.ClearMetadata()
		return nil
	case investigation.FieldPodID:
		m.ClearPodID()
		return nil
	case investigation.FieldLastHeartbeatAt:
		m.ClearLastHeartbeatAt()
		return nil
	case investigation.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Investigation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InvestigationMutation) ResetField(name string) error {
	switch name {
	case investigation.FieldTenantID:
		m.ResetTenantID()
		return nil
	case investigation.FieldAlertID:
		m.ResetAlertID()
		return nil
	case investigation.FieldCorrelationKey:
		m.ResetCorrelationKey()
		return nil
	case investigation.FieldUserID:
		m.ResetUserID()
		return nil
	case investigation.FieldAlertTitle:
		m.ResetAlertTitle()
		return nil
	case investigation.FieldAlertSeverity:
		m.ResetAlertSeverity()
		return nil
	case investigation.FieldAlertSource:
		m.ResetAlertSource()
		return nil
	case investigation.FieldAlertTimestamp:
		m.ResetAlertTimestamp()
		return nil
	case investigation.FieldAlertPayload:
		m.ResetAlertPayload()
		return nil
	case investigation.FieldAlertEntities:
		m.ResetAlertEntities()
		return nil
	case investigation.FieldPriority:
		m.ResetPriority()
		return nil
	case investigation.FieldStatus:
		m.ResetStatus()
		return nil
	case investigation.FieldTimeoutMs:
		m.ResetTimeoutMs()
		return nil
	case investigation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case investigation.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case investigation.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case investigation.FieldVerdict:
		m.ResetVerdict()
		return nil
	case investigation.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case investigation.FieldExecutionSummary:
		m.ResetExecutionSummary()
		return nil
	case investigation.FieldMetadata:
		m.ResetMetadata()
		return nil
	case investigation.FieldPodID:
		m.ResetPodID()
		return nil
	case investigation.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	case investigation.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Investigation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InvestigationMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.steps != nil {
		edges = append(edges, investigation.EdgeSteps)
	}
	if m.evidence != nil {
		edges = append(edges, investigation.EdgeEvidence)
	}
	if m.feedback != nil {
		edges = append(edges, investigation.EdgeFeedback)
	}
	if m.approvals != nil {
		edges = append(edges, investigation.EdgeApprovals)
	}
	if m.run_events != nil {
		edges = append(edges, investigation.EdgeRunEvents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InvestigationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case investigation.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.steps))
		for id := range m.steps {
			ids = append(ids, id)
		}
		return ids
	case investigation.EdgeEvidence:
		ids := make([]ent.Value, 0, len(m.evidence))
		for id := range m.evidence {
			ids = append(ids, id)
		}
		return ids
	case investigation.EdgeFeedback:
		ids := make([]ent.Value, 0, len(m.feedback))
		for id := range m.feedback {
			ids = append(ids, id)
		}
		return ids
	case investigation.EdgeApprovals:
		ids := make([]ent.Value, 0, len(m.approvals))
		for id := range m.approvals {
			ids = append(ids, id)
		}
		return ids
	case investigation.EdgeRunEvents:
		ids := make([]ent.Value, 0, len(m.run_events))
		for id := range m.run_events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InvestigationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedsteps != nil {
		edges = append(edges, investigation.EdgeSteps)
	}
	if m.removedevidence != nil {
		edges = append(edges, investigation.EdgeEvidence)
	}
	if m.removedfeedback != nil {
		edges = append(edges, investigation.EdgeFeedback)
	}
	if m.removedapprovals != nil {
		edges = append(edges, investigation.EdgeApprovals)
	}
	if m.removedrun_events != nil {
		edges = append(edges, investigation.EdgeRunEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InvestigationMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case investigation.EdgeSteps:
		ids := make([]ent.Value, 0, len(m.removedsteps))
		for id := range m.removedsteps {
			ids = append(ids, id)
		}
		return ids
	case investigation.EdgeEvidence:
		ids := make([]ent.Value, 0, len(m.removedevidence))
		for id := range m.removedevidence {
			ids = append(ids, id)
		}
		return ids
	case investigation.EdgeFeedback:
		ids := make([]ent.Value, 0, len(m.removedfeedback))
		for id := range m.removedfeedback {
			ids = append(ids, id)
		}
		return ids
	case investigation.EdgeApprovals:
		ids := make([]ent.Value, 0, len(m.removedapprovals))
		for id := range m.removedapprovals {
			ids = append(ids, id)
		}
		return ids
	case investigation.EdgeRunEvents:
		ids := make([]ent.Value, 0, len(m.removedrun_events))
		for id := range m.removedrun_events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InvestigationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.clearedsteps {
		edges = append(edges, investigation.EdgeSteps)
	}
	if m.clearedevidence {
		edges = append(edges, investigation.EdgeEvidence)
	}
	if m.clearedfeedback {
		edges = append(edges, investigation.EdgeFeedback)
	}
	if m.clearedapprovals {
		edges = append(edges, investigation.EdgeApprovals)
	}
	if m.clearedrun_events {
		edges = append(edges, investigation.EdgeRunEvents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InvestigationMutation) EdgeCleared(name string) bool {
	switch name {
	case investigation.EdgeSteps:
		return m.clearedsteps
	case investigation.EdgeEvidence:
		return m.clearedevidence
	case investigation.EdgeFeedback:
		return m.clearedfeedback
	case investigation.EdgeApprovals:
		return m.clearedapprovals
	case investigation.EdgeRunEvents:
		return m.clearedrun_events
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InvestigationMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Investigation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InvestigationMutation) ResetEdge(name string) error {
	switch name {
	case investigation.EdgeSteps:
		m.ResetSteps()
		return nil
	case investigation.EdgeEvidence:
		m.ResetEvidence()
		return nil
	case investigation.EdgeFeedback:
		m.ResetFeedback()
		return nil
	case investigation.EdgeApprovals:
		m.ResetApprovals()
		return nil
	case investigation.EdgeRunEvents:
		m.ResetRunEvents()
		return nil
	}
	return fmt.Errorf("unknown Investigation edge %s", name)
}

// PlanStepMutation represents an operation that mutates the PlanStep nodes in the graph.
type PlanStepMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	tenant_id            *string
	name                 *string
	_type                *planstep.Type
	agent                *string
	dependencies         *[]string
	appenddependencies   []string
	payload              *map[string]interface{}
	data_sources         *[]string
	appenddata_sources   []string
	timeout_ms           *int64
	addtimeout_ms        *int64
	max_retries          *int
	addmax_retries       *int
	critical             *bool
	status               *planstep.Status
	started_at           *time.Time
	completed_at         *time.Time
	retry_count          *int
	addretry_count       *int
	last_error           *string
	adapted_from         *string
	created_at           *time.Time
	clearedFields        map[string]struct{}
	investigation        *string
	clearedinvestigation bool
	done                 bool
	oldValue             func(context.Context) (*PlanStep, error)
	predicates           []predicate.PlanStep
}

var _ ent.Mutation = (*PlanStepMutation)(nil)

// planstepOption allows management of the mutation configuration using functional options.
type planstepOption func(*PlanStepMutation)

// newPlanStepMutation creates new mutation for the PlanStep entity.
func newPlanStepMutation(c config, op Op, opts ...planstepOption) *PlanStepMutation {
	m := &PlanStepMutation{
		config:        c,
		op:            op,
		typ:           TypePlanStep,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPlanStepID sets the ID field of the mutation.
func withPlanStepID(id string) planstepOption {
	return func(m *PlanStepMutation) {
		var (
			err   error
			once  sync.Once
			value *PlanStep
		)
		m.oldValue = func(ctx context.Context) (*PlanStep, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PlanStep.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPlanStep sets the old PlanStep of the mutation.
func withPlanStep(node *PlanStep) planstepOption {
	return func(m *PlanStepMutation) {
		m.oldValue = func(context.Context) (*PlanStep, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PlanStepMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PlanStepMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PlanStep entities.
func (m *PlanStepMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PlanStepMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PlanStepMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PlanStep.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetInvestigationID sets the "investigation_id" field.
func (m *PlanStepMutation) SetInvestigationID(s string) {
	m.investigation = &s
}

// InvestigationID returns the value of the "investigation_id" field in the mutation.
func (m *PlanStepMutation) InvestigationID() (r string, exists bool) {
	v := m.investigation
	if v == nil {
		return
	}
	return *v, true
}

// OldInvestigationID returns the old "investigation_id" field's value of the PlanStep entity.
// If the PlanStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanStepMutation) OldInvestigationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvestigationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvestigationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvestigationID: %w", err)
	}
	return oldValue.InvestigationID, nil
}

// ResetInvestigationID resets all changes to the "investigation_id" field.
func (m *PlanStepMutation) ResetInvestigationID() {
	m.investigation = nil
}

// SetTenantID sets the "tenant_id" field.
func (m *PlanStepMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *PlanStepMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the PlanStep entity.
// If the PlanStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanStepMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *PlanStepMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetName sets the "name" field.
func (m *PlanStepMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *PlanStepMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the PlanStep entity.
// If the PlanStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanStepMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *PlanStepMutation) ResetName() {
	m.name = nil
}

// SetType sets the "type" field.
func (m *PlanStepMutation) SetType(pl planstep.Type) {
	m._type = &pl
}

// GetType returns the value of the "type" field in the mutation.
func (m *PlanStepMutation) GetType() (r planstep.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the PlanStep entity.
// If the PlanStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanStepMutation) OldType(ctx context.Context) (v planstep.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *PlanStepMutation) ResetType() {
	m._type = nil
}

// SetAgent sets the "agent" field.
func (m *PlanStepMutation) SetAgent(s string) {
	m.agent = &s
}

// Agent returns the value of the "agent" field in the mutation.
func (m *PlanStepMutation) Agent() (r string, exists bool) {
	v := m.agent
	if v == nil {
		return
	}
	return *v, true
}

// OldAgent returns the old "agent" field's value of the PlanStep entity.
// If the PlanStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanStepMutation) OldAgent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgent: %w", err)
	}
	return oldValue.Agent, nil
}

// ClearAgent clears the value of the "agent" field.
func (m *PlanStepMutation) ClearAgent() {
	m.agent = nil
	m.clearedFields[planstep.FieldAgent] = struct{}{}
}

// AgentCleared returns if the "agent" field was cleared in this mutation.
func (m *PlanStepMutation) AgentCleared() bool {
	_, ok := m.clearedFields[planstep.FieldAgent]
	return ok
}

// ResetAgent resets all changes to the "agent" field.
func (m *PlanStepMutation) ResetAgent() {
	m.agent = nil
	delete(m.clearedFields, planstep.FieldAgent)
}

// SetDependencies sets the "dependencies" field.
func (m *PlanStepMutation) SetDependencies(s []string) {
	m.dependencies = &s
	m.appenddependencies = nil
}

// Dependencies returns the value of the "dependencies" field in the mutation.
func (m *PlanStepMutation) Dependencies() (r []string, exists bool) {
	v := m.dependencies
	if v == nil {
		return
	}
	return *v, true
}

// OldDependencies returns the old "dependencies" field's value of the PlanStep entity.
// If the PlanStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanStepMutation) OldDependencies(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDependencies is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDependencies requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDependencies: %w", err)
	}
	return oldValue.Dependencies, nil
}

// AppendDependencies adds s to the "dependencies" field.
func (m *PlanStepMutation) AppendDependencies(s []string) {
	m.appenddependencies = append(m.appenddependencies, s...)
}

// AppendedDependencies returns the list of values that were appended to the "dependencies" field in this mutation.
func (m *PlanStepMutation) AppendedDependencies() ([]string, bool) {
	if len(m.appenddependencies) == 0 {
		return nil, false
	}
	return m.appenddependencies, true
}

// ClearDependencies clears the value of the "dependencies" field.
func (m *PlanStepMutation) ClearDependencies() {
	m.dependencies = nil
	m.appenddependencies = nil
	m.clearedFields[planstep.FieldDependencies] = struct{}{}
}

// DependenciesCleared returns if the "dependencies" field was cleared in this mutation.
func (m *PlanStepMutation) DependenciesCleared() bool {
	_, ok := m.clearedFields[planstep.FieldDependencies]
	return ok
}

// ResetDependencies resets all changes to the "dependencies" field.
func (m *PlanStepMutation) ResetDependencies() {
	m.dependencies = nil
	m.appenddependencies = nil
	delete(m.clearedFields, planstep.FieldDependencies)
}

// SetPayload sets the "payload" field.
func (m *PlanStepMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *PlanStepMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the PlanStep entity.
// If the PlanStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanStepMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *PlanStepMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[planstep.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *PlanStepMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[planstep.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *PlanStepMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, planstep.FieldPayload)
}

// SetDataSources sets the "data_sources" field.
func (m *PlanStepMutation) SetDataSources(s []string) {
	m.data_sources = &s
	m.appenddata_sources = nil
}

// DataSources returns the value of the "data_sources" field in the mutation.
func (m *PlanStepMutation) DataSources() (r []string, exists bool) {
	v := m.data_sources
	if v == nil {
		return
	}
	return *v, true
}

// OldDataSources returns the old "data_sources" field's value of the PlanStep entity.
// If the PlanStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanStepMutation) OldDataSources(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDataSources is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDataSources requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDataSources: %w", err)
	}
	return oldValue.DataSources, nil
}

// AppendDataSources adds s to the "data_sources" field.
func (m *PlanStepMutation) AppendDataSources(s []string) {
	m.appenddata_sources = append(m.appenddata_sources, s...)
}

// AppendedDataSources returns the list of values that were appended to the "data_sources" field in this mutation.
func (m *PlanStepMutation) AppendedDataSources() ([]string, bool) {
	if len(m.appenddata_sources) == 0 {
		return nil, false
	}
	return m.appenddata_sources, true
}

// ClearDataSources clears the value of the "data_sources" field.
func (m *PlanStepMutation) ClearDataSources() {
	m.data_sources = nil
	m.appenddata_sources = nil
	m.clearedFields[planstep.FieldDataSources] = struct{}{}
}

// DataSourcesCleared returns if the "data_sources" field was cleared in this mutation.
func (m *PlanStepMutation) DataSourcesCleared() bool {
	_, ok := m.clearedFields[planstep.FieldDataSources]
	return ok
}

// ResetDataSources resets all changes to the "data_sources" field.
func (m *PlanStepMutation) ResetDataSources() {
	m.data_sources = nil
	m.appenddata_sources = nil
	delete(m.clearedFields, planstep.FieldDataSources)
}

// SetTimeoutMs sets the "timeout_ms" field.
func (m *PlanStepMutation) SetTimeoutMs(i int64) {
	m.timeout_ms = &i
	m.addtimeout_ms = nil
}

// TimeoutMs returns the value of the "timeout_ms" field in the mutation.
func (m *PlanStepMutation) TimeoutMs() (r int64, exists bool) {
	v := m.timeout_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeoutMs returns the old "timeout_ms" field's value of the PlanStep entity.
// If the PlanStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanStepMutation) OldTimeoutMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeoutMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeoutMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeoutMs: %w", err)
	}
	return oldValue.TimeoutMs, nil
}

// AddTimeoutMs adds i to the "timeout_ms" field.
func (m *PlanStepMutation) AddTimeoutMs(i int64) {
	if m.addtimeout_ms != nil {
		*m.addtimeout_ms += i
	} else {
		m.addtimeout_ms = &i
	}
}

// AddedTimeoutMs returns the value that was added to the "timeout_ms" field in this mutation.
func (m *PlanStepMutation) AddedTimeoutMs() (r int64, exists bool) {
	v := m.addtimeout_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeoutMs resets all changes to the "timeout_ms" field.
func (m *PlanStepMutation) ResetTimeoutMs() {
	m.timeout_ms = nil
	m.addtimeout_ms = nil
}

// SetMaxRetries sets the "max_retries" field.
func (m *PlanStepMutation) SetMaxRetries(i int) {
	m.max_retries = &i
	m.addmax_retries = nil
}

// MaxRetries returns the value of the "max_retries" field in the mutation.
func (m *PlanStepMutation) MaxRetries() (r int, exists bool) {
	v := m.max_retries
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxRetries returns the old "max_retries" field's value of the PlanStep entity.
// If the PlanStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanStepMutation) OldMaxRetries(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxRetries is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxRetries requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxRetries: %w", err)
	}
	return oldValue.MaxRetries, nil
}

// AddMaxRetries adds i to the "max_retries" field.
func (m *PlanStepMutation) AddMaxRetries(i int) {
	if m.addmax_retries != nil {
		*m.addmax_retries += i
	} else {
		m.addmax_retries = &i
	}
}

// AddedMaxRetries returns the value that was added to the "max_retries" field in this mutation.
func (m *PlanStepMutation) AddedMaxRetries() (r int, exists bool) {
	v := m.addmax_retries
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxRetries resets all changes to the "max_retries" field.
func (m *PlanStepMutation) ResetMaxRetries() {
	m.max_retries = nil
	m.addmax_retries = nil
}

// SetCritical sets the "critical" field.
func (m *PlanStepMutation) SetCritical(b bool) {
	m.critical = &b
}

// Critical returns the value of the "critical" field in the mutation.
func (m *PlanStepMutation) Critical() (r bool, exists bool) {
	v := m.critical
	if v == nil {
		return
	}
	return *v, true
}

// OldCritical returns the old "critical" field's value of the PlanStep entity.
// If the PlanStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanStepMutation) OldCritical(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCritical is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCritical requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCritical: %w", err)
	}
	return oldValue.Critical, nil
}

// ResetCritical resets all changes to the "critical" field.
func (m *PlanStepMutation) ResetCritical() {
	m.critical = nil
}

// SetStatus sets the "status" field.
func (m *PlanStepMutation) SetStatus(pl planstep.Status) {
	m.status = &pl
}

// Status returns the value of the "status" field in the mutation.
func (m *PlanStepMutation) Status() (r planstep.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PlanStep entity.
// If the PlanStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanStepMutation) OldStatus(ctx context.Context) (v planstep.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PlanStepMutation) ResetStatus() {
	m.status = nil
}

// SetStartedAt sets the "started_at" field.
func (m *PlanStepMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *PlanStepMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the PlanStep entity.
// If the PlanStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanStepMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *PlanStepMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[planstep.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *PlanStepMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[planstep.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *PlanStepMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, planstep.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *PlanStepMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *PlanStepMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the PlanStep entity.
// If the PlanStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanStepMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *PlanStepMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[planstep.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *PlanStepMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[planstep.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *PlanStepMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, planstep.FieldCompletedAt)
}

// SetRetryCount sets the "retry_count" field.
func (m *PlanStepMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *PlanStepMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the PlanStep entity.
// If the PlanStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanStepMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *PlanStepMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *PlanStepMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *PlanStepMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetLastError sets the "last_error" field.
func (m *PlanStepMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *PlanStepMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the PlanStep entity.
// If the PlanStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanStepMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *PlanStepMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[planstep.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *PlanStepMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[planstep.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *PlanStepMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, planstep.FieldLastError)
}

// SetAdaptedFrom sets the "adapted_from" field.
func (m *PlanStepMutation) SetAdaptedFrom(s string) {
	m.adapted_from = &s
}

// AdaptedFrom returns the value of the "adapted_from" field in the mutation.
func (m *PlanStepMutation) AdaptedFrom() (r string, exists bool) {
	v := m.adapted_from
	if v == nil {
		return
	}
	return *v, true
}

// OldAdaptedFrom returns the old "adapted_from" field's value of the PlanStep entity.
// If the PlanStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanStepMutation) OldAdaptedFrom(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdaptedFrom is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdaptedFrom requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdaptedFrom: %w", err)
	}
	return oldValue.AdaptedFrom, nil
}

// ClearAdaptedFrom clears the value of the "adapted_from" field.
func (m *PlanStepMutation) ClearAdaptedFrom() {
	m.adapted_from = nil
	m.clearedFields[planstep.FieldAdaptedFrom] = struct{}{}
}

// AdaptedFromCleared returns if the "adapted_from" field was cleared in this mutation.
func (m *PlanStepMutation) AdaptedFromCleared() bool {
	_, ok := m.clearedFields[planstep.FieldAdaptedFrom]
	return ok
}

// ResetAdaptedFrom resets all changes to the "adapted_from" field.
func (m *PlanStepMutation) ResetAdaptedFrom() {
	m.adapted_from = nil
	delete(m.clearedFields, planstep.FieldAdaptedFrom)
}

// SetCreatedAt sets the "created_at" field.
func (m *PlanStepMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PlanStepMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PlanStep entity.
// If the PlanStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlanStepMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PlanStepMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearInvestigation clears the "investigation" edge to the Investigation entity.
func (m *PlanStepMutation) ClearInvestigation() {
	m.clearedinvestigation = true
	m.clearedFields[planstep.FieldInvestigationID] = struct{}{}
}

// InvestigationCleared reports if the "investigation" edge to the Investigation entity was cleared.
func (m *PlanStepMutation) InvestigationCleared() bool {
	return m.clearedinvestigation
}

// InvestigationIDs returns the "investigation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// InvestigationID instead. It exists only for internal usage by the builders.
func (m *PlanStepMutation) InvestigationIDs() (ids []string) {
	if id := m.investigation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetInvestigation resets all changes to the "investigation" edge.
func (m *PlanStepMutation) ResetInvestigation() {
	m.investigation = nil
	m.clearedinvestigation = false
}

// Where appends a list predicates to the PlanStepMutation builder.
func (m *PlanStepMutation) Where(ps ...predicate.PlanStep) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PlanStepMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PlanStepMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PlanStep, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PlanStepMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PlanStepMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PlanStep).
func (m *PlanStepMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PlanStepMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.investigation != nil {
		fields = append(fields, planstep.FieldInvestigationID)
	}
	if m.tenant_id != nil {
		fields = append(fields, planstep.FieldTenantID)
	}
	if m.name != nil {
		fields = append(fields, planstep.FieldName)
	}
	if m._type != nil {
		fields = append(fields, planstep.FieldType)
	}
	if m.agent != nil {
		fields = append(fields, planstep.FieldAgent)
	}
	if m.dependencies != nil {
		fields = append(fields, planstep.FieldDependencies)
	}
	if m.payload != nil {
		fields = append(fields, planstep.FieldPayload)
	}
	if m.data_sources != nil {
		fields = append(fields, planstep.FieldDataSources)
	}
	if m.timeout_ms != nil {
		fields = append(fields, planstep.FieldTimeoutMs)
	}
	if m.max_retries != nil {
		fields = append(fields, planstep.FieldMaxRetries)
	}
	if m.critical != nil {
		fields = append(fields, planstep.FieldCritical)
	}
	if m.status != nil {
		fields = append(fields, planstep.FieldStatus)
	}
	if m.started_at != nil {
		fields = append(fields, planstep.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, planstep.FieldCompletedAt)
	}
	if m.retry_count != nil {
		fields = append(fields, planstep.FieldRetryCount)
	}
	if m.last_error != nil {
		fields = append(fields, planstep.FieldLastError)
	}
	if m.adapted_from != nil {
		fields = append(fields, planstep.FieldAdaptedFrom)
	}
	if m.created_at != nil {
		fields = append(fields, planstep.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PlanStepMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case planstep.FieldInvestigationID:
		return m.InvestigationID()
	case planstep.FieldTenantID:
		return m.TenantID()
	case planstep.FieldName:
		return m.Name()
	case planstep.FieldType:
		return m.GetType()
	case planstep.FieldAgent:
		return m.Agent()
	case planstep.FieldDependencies:
		return m.Dependencies()
	case planstep.FieldPayload:
		return m.Payload()
	case planstep.FieldDataSources:
		return m.DataSources()
	case planstep.FieldTimeoutMs:
		return m.TimeoutMs()
	case planstep.FieldMaxRetries:
		return m.MaxRetries()
	case planstep.FieldCritical:
		return m.Critical()
	case planstep.FieldStatus:
		return m.Status()
	case planstep.FieldStartedAt:
		return m.StartedAt()
	case planstep.FieldCompletedAt:
		return m.CompletedAt()
	case planstep.FieldRetryCount:
		return m.RetryCount()
	case planstep.FieldLastError:
		return m.LastError()
	case planstep.FieldAdaptedFrom:
		return m.AdaptedFrom()
	case planstep.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PlanStepMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case planstep.FieldInvestigationID:
		return m.OldInvestigationID(ctx)
	case planstep.FieldTenantID:
		return m.OldTenantID(ctx)
	case planstep.FieldName:
		return m.OldName(ctx)
	case planstep.FieldType:
		return m.OldType(ctx)
	case planstep.FieldAgent:
		return m.OldAgent(ctx)
	case planstep.FieldDependencies:
		return m.OldDependencies(ctx)
	case planstep.FieldPayload:
		return m.OldPayload(ctx)
	case planstep.FieldDataSources:
		return m.OldDataSources(ctx)
	case planstep.FieldTimeoutMs:
		return m.OldTimeoutMs(ctx)
	case planstep.FieldMaxRetries:
		return m.OldMaxRetries(ctx)
	case planstep.FieldCritical:
		return m.OldCritical(ctx)
	case planstep.FieldStatus:
		return m.OldStatus(ctx)
	case planstep.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case planstep.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case planstep.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case planstep.FieldLastError:
		return m.OldLastError(ctx)
	case planstep.FieldAdaptedFrom:
		return m.OldAdaptedFrom(ctx)
	case planstep.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PlanStep field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PlanStepMutation) SetField(name string, value ent.Value) error {
	switch name {
	case planstep.FieldInvestigationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvestigationID(v)
		return nil
	case planstep.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case planstep.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case planstep.FieldType:
		v, ok := value.(planstep.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case planstep.FieldAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgent(v)
		return nil
	case planstep.FieldDependencies:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDependencies(v)
		return nil
	case planstep.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case planstep.FieldDataSources:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDataSources(v)
		return nil
	case planstep.FieldTimeoutMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeoutMs(v)
		return nil
	case planstep.FieldMaxRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxRetries(v)
		return nil
	case planstep.FieldCritical:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCritical(v)
		return nil
	case planstep.FieldStatus:
		v, ok := value.(planstep.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case planstep.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case planstep.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case planstep.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case planstep.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case planstep.FieldAdaptedFrom:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdaptedFrom(v)
		return nil
	case planstep.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PlanStep field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PlanStepMutation) AddedFields() []string {
	var fields []string
	if m.addtimeout_ms != nil {
		fields = append(fields, planstep.FieldTimeoutMs)
	}
	if m.addmax_retries != nil {
		fields = append(fields, planstep.FieldMaxRetries)
	}
	if m.addretry_count != nil {
		fields = append(fields, planstep.FieldRetryCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PlanStepMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case planstep.FieldTimeoutMs:
		return m.AddedTimeoutMs()
	case planstep.FieldMaxRetries:
		return m.AddedMaxRetries()
	case planstep.FieldRetryCount:
		return m.AddedRetryCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PlanStepMutation) AddField(name string, value ent.Value) error {
	switch name {
	case planstep.FieldTimeoutMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeoutMs(v)
		return nil
	case planstep.FieldMaxRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxRetries(v)
		return nil
	case planstep.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	}
	return fmt.Errorf("unknown PlanStep numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PlanStepMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(planstep.FieldAgent) {
		fields = append(fields, planstep.FieldAgent)
	}
	if m.FieldCleared(planstep.FieldDependencies) {
		fields = append(fields, planstep.FieldDependencies)
	}
	if m.FieldCleared(planstep.FieldPayload) {
		fields = append(fields, planstep.FieldPayload)
	}
	if m.FieldCleared(planstep.FieldDataSources) {
		fields = append(fields, planstep.FieldDataSources)
	}
	if m.FieldCleared(planstep.FieldStartedAt) {
		fields = append(fields, planstep.FieldStartedAt)
	}
	if m.FieldCleared(planstep.FieldCompletedAt) {
		fields = append(fields, planstep.FieldCompletedAt)
	}
	if m.FieldCleared(planstep.FieldLastError) {
		fields = append(fields, planstep.FieldLastError)
	}
	if m.FieldCleared(planstep.FieldAdaptedFrom) {
		fields = append(fields, planstep.FieldAdaptedFrom)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PlanStepMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PlanStepMutation) ClearField(name string) error {
	switch name {
	case planstep.FieldAgent:
		m.ClearAgent()
		return nil
	case planstep.FieldDependencies:
		m.ClearDependencies()
		return nil
	case planstep.FieldPayload:
		m.ClearPayload()
		return nil
	case planstep.FieldDataSources:
		m.ClearDataSources()
		return nil
	case planstep.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case planstep.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case planstep.FieldLastError:
		m.ClearLastError()
		return nil
	case planstep.FieldAdaptedFrom:
		m.ClearAdaptedFrom()
		return nil
	}
	return fmt.Errorf("unknown PlanStep nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PlanStepMutation) ResetField(name string) error {
	switch name {
	case planstep.FieldInvestigationID:
		m.ResetInvestigationID()
		return nil
	case planstep.FieldTenantID:
		m.ResetTenantID()
		return nil
	case planstep.FieldName:
		m.ResetName()
		return nil
	case planstep.FieldType:
		m.ResetType()
		return nil
	case planstep.FieldAgent:
		m.ResetAgent()
		return nil
	case planstep.FieldDependencies:
		m.ResetDependencies()
		return nil
	case planstep.FieldPayload:
		m.ResetPayload()
		return nil
	case planstep.FieldDataSources:
		m.ResetDataSources()
		return nil
	case planstep.FieldTimeoutMs:
		m.ResetTimeoutMs()
		return nil
	case planstep.FieldMaxRetries:
		m.ResetMaxRetries()
		return nil
	case planstep.FieldCritical:
		m.ResetCritical()
		return nil
	case planstep.FieldStatus:
		m.ResetStatus()
		return nil
	case planstep.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case planstep.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case planstep.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case planstep.FieldLastError:
		m.ResetLastError()
		return nil
	case planstep.FieldAdaptedFrom:
		m.ResetAdaptedFrom()
		return nil
	case planstep.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown PlanStep field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PlanStepMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.investigation != nil {
		edges = append(edges, planstep.EdgeInvestigation)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PlanStepMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case planstep.EdgeInvestigation:
		if id := m.investigation; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PlanStepMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PlanStepMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PlanStepMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedinvestigation {
		edges = append(edges, planstep.EdgeInvestigation)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PlanStepMutation) EdgeCleared(name string) bool {
	switch name {
	case planstep.EdgeInvestigation:
		return m.clearedinvestigation
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PlanStepMutation) ClearEdge(name string) error {
	switch name {
	case planstep.EdgeInvestigation:
		m.ClearInvestigation()
		return nil
	}
	return fmt.Errorf("unknown PlanStep unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PlanStepMutation) ResetEdge(name string) error {
	switch name {
	case planstep.EdgeInvestigation:
		m.ResetInvestigation()
		return nil
	}
	return fmt.Errorf("unknown PlanStep edge %s", name)
}

// RunEventMutation represents an operation that mutates the RunEvent nodes in the graph.
type RunEventMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	tenant_id            *string
	sequence             *int64
	addsequence          *int64
	method               *string
	params               *map[string]interface{}
	ts                   *time.Time
	clearedFields        map[string]struct{}
	investigation        *string
	clearedinvestigation bool
	done                 bool
	oldValue             func(context.Context) (*RunEvent, error)
	predicates           []predicate.RunEvent
}

var _ ent.Mutation = (*RunEventMutation)(nil)

// runeventOption allows management of the mutation configuration using functional options.
type runeventOption func(*RunEventMutation)

// newRunEventMutation creates new mutation for the RunEvent entity.
func newRunEventMutation(c config, op Op, opts ...runeventOption) *RunEventMutation {
	m := &RunEventMutation{
		config:        c,
		op:            op,
		typ:           TypeRunEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRunEventID sets the ID field of the mutation.
func withRunEventID(id int) runeventOption {
	return func(m *RunEventMutation) {
		var (
			err   error
			once  sync.Once
			value *RunEvent
		)
		m.oldValue = func(ctx context.Context) (*RunEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RunEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRunEvent sets the old RunEvent of the mutation.
func withRunEvent(node *RunEvent) runeventOption {
	return func(m *RunEventMutation) {
		m.oldValue = func(context.Context) (*RunEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RunEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RunEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RunEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RunEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RunEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *RunEventMutation) SetRunID(s string) {
	m.investigation = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *RunEventMutation) RunID() (r string, exists bool) {
	v := m.investigation
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *RunEventMutation) ResetRunID() {
	m.investigation = nil
}

// SetTenantID sets the "tenant_id" field.
func (m *RunEventMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *RunEventMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *RunEventMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetSequence sets the "sequence" field.
func (m *RunEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *RunEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *RunEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *RunEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *RunEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetMethod sets the "method" field.
func (m *RunEventMutation) SetMethod(s string) {
	m.method = &s
}

// Method returns the value of the "method" field in the mutation.
func (m *RunEventMutation) Method() (r string, exists bool) {
	v := m.method
	if v == nil {
		return
	}
	return *v, true
}

// OldMethod returns the old "method" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldMethod(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMethod: %w", err)
	}
	return oldValue.Method, nil
}

// ResetMethod resets all changes to the "method" field.
func (m *RunEventMutation) ResetMethod() {
	m.method = nil
}

// SetParams sets the "params" field.
func (m *RunEventMutation) SetParams(value map[string]interface{}) {
	m.params = &value
}

// Params returns the value of the "params" field in the mutation.
func (m *RunEventMutation) Params() (r map[string]interface{}, exists bool) {
	v := m.params
	if v == nil {
		return
	}
	return *v, true
}

// OldParams returns the old "params" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldParams(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParams is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParams requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParams: %w", err)
	}
	return oldValue.Params, nil
}

// ResetParams resets all changes to the "params" field.
func (m *RunEventMutation) ResetParams() {
	m.params = nil
}

// SetTs sets the "ts" field.
func (m *RunEventMutation) SetTs(t time.Time) {
	m.ts = &t
}

// Ts returns the value of the "ts" field in the mutation.
func (m *RunEventMutation) Ts() (r time.Time, exists bool) {
	v := m.ts
	if v == nil {
		return
	}
	return *v, true
}

// OldTs returns the old "ts" field's value of the RunEvent entity.
// If the RunEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RunEventMutation) OldTs(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTs: %w", err)
	}
	return oldValue.Ts, nil
}

// ResetTs resets all changes to the "ts" field.
func (m *RunEventMutation) ResetTs() {
	m.ts = nil
}

// SetInvestigationID sets the "investigation" edge to the Investigation entity by id.
func (m *RunEventMutation) SetInvestigationID(id string) {
	m.investigation = &id
}

// ClearInvestigation clears the "investigation" edge to the Investigation entity.
func (m *RunEventMutation) ClearInvestigation() {
	m.clearedinvestigation = true
	m.clearedFields[runevent.FieldRunID] = struct{}{}
}

// InvestigationCleared reports if the "investigation" edge to the Investigation entity was cleared.
func (m *RunEventMutation) InvestigationCleared() bool {
	return m.clearedinvestigation
}

// InvestigationID returns the "investigation" edge ID in the mutation.
func (m *RunEventMutation) InvestigationID() (id string, exists bool) {
	if m.investigation != nil {
		return *m.investigation, true
	}
	return
}

// InvestigationIDs returns the "investigation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// InvestigationID instead. It exists only for internal usage by the builders.
func (m *RunEventMutation) InvestigationIDs() (ids []string) {
	if id := m.investigation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetInvestigation resets all changes to the "investigation" edge.
func (m *RunEventMutation) ResetInvestigation() {
	m.investigation = nil
	m.clearedinvestigation = false
}

// Where appends a list predicates to the RunEventMutation builder.
func (m *RunEventMutation) Where(ps ...predicate.RunEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RunEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RunEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RunEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RunEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RunEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RunEvent).
func (m *RunEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RunEventMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.investigation != nil {
		fields = append(fields, runevent.FieldRunID)
	}
	if m.tenant_id != nil {
		fields = append(fields, runevent.FieldTenantID)
	}
	if m.sequence != nil {
		fields = append(fields, runevent.FieldSequence)
	}
	if m.method != nil {
		fields = append(fields, runevent.FieldMethod)
	}
	if m.params != nil {
		fields = append(fields, runevent.FieldParams)
	}
	if m.ts != nil {
		fields = append(fields, runevent.FieldTs)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RunEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case runevent.FieldRunID:
		return m.RunID()
	case runevent.FieldTenantID:
		return m.TenantID()
	case runevent.FieldSequence:
		return m.Sequence()
	case runevent.FieldMethod:
		return m.Method()
	case runevent.FieldParams:
		return m.Params()
	case runevent.FieldTs:
		return m.Ts()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RunEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case runevent.FieldRunID:
		return m.OldRunID(ctx)
	case runevent.FieldTenantID:
		return m.OldTenantID(ctx)
	case runevent.FieldSequence:
		return m.OldSequence(ctx)
	case runevent.FieldMethod:
		return m.OldMethod(ctx)
	case runevent.FieldParams:
		return m.OldParams(ctx)
	case runevent.FieldTs:
		return m.OldTs(ctx)
	}
	return nil, fmt.Errorf("unknown RunEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case runevent.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case runevent.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case runevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case runevent.FieldMethod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMethod(v)
		return nil
	case runevent.FieldParams:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParams(v)
		return nil
	case runevent.FieldTs:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTs(v)
		return nil
	}
	return fmt.Errorf("unknown RunEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RunEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, runevent.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RunEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case runevent.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RunEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case runevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown RunEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RunEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RunEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RunEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown RunEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RunEventMutation) ResetField(name string) error {
	switch name {
	case runevent.FieldRunID:
		m.ResetRunID()
		return nil
	case runevent.FieldTenantID:
		m.ResetTenantID()
		return nil
	case runevent.FieldSequence:
		m.ResetSequence()
		return nil
	case runevent.FieldMethod:
		m.ResetMethod()
		return nil
	case runevent.FieldParams:
		m.ResetParams()
		return nil
	case runevent.FieldTs:
		m.ResetTs()
		return nil
	}
	return fmt.Errorf("unknown RunEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RunEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.investigation != nil {
		edges = append(edges, runevent.EdgeInvestigation)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RunEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case runevent.EdgeInvestigation:
		if id := m.investigation; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RunEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RunEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RunEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedinvestigation {
		edges = append(edges, runevent.EdgeInvestigation)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RunEventMutation) EdgeCleared(name string) bool {
	switch name {
	case runevent.EdgeInvestigation:
		return m.clearedinvestigation
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RunEventMutation) ClearEdge(name string) error {
	switch name {
	case runevent.EdgeInvestigation:
		m.ClearInvestigation()
		return nil
	}
	return fmt.Errorf("unknown RunEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RunEventMutation) ResetEdge(name string) error {
	switch name {
	case runevent.EdgeInvestigation:
		m.ResetInvestigation()
		return nil
	}
	return fmt.Errorf("unknown RunEvent edge %s", name)
}
