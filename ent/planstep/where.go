// Code generated by ent, DO NOT EDIT.

package planstep

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldContainsFold(FieldID, id))
}

// InvestigationID applies equality check predicate on the "investigation_id" field. It's identical to InvestigationIDEQ.
func InvestigationID(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldEQ(FieldInvestigationID, v))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldEQ(FieldTenantID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldEQ(FieldName, v))
}

// Agent applies equality check predicate on the "agent" field. It's identical to AgentEQ.
func Agent(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldEQ(FieldAgent, v))
}

// TimeoutMs applies equality check predicate on the "timeout_ms" field. It's identical to TimeoutMsEQ.
func TimeoutMs(v int64) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldEQ(FieldTimeoutMs, v))
}

// MaxRetries applies equality check predicate on the "max_retries" field. It's identical to MaxRetriesEQ.
func MaxRetries(v int) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldEQ(FieldMaxRetries, v))
}

// Critical applies equality check predicate on the "critical" field. It's identical to CriticalEQ.
func Critical(v bool) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldEQ(FieldCritical, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldEQ(FieldCompletedAt, v))
}

// RetryCount applies equality check predicate on the "retry_count" field. It's identical to RetryCountEQ.
func RetryCount(v int) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldEQ(FieldRetryCount, v))
}

// LastError applies equality check predicate on the "last_error" field. It's identical to LastErrorEQ.
func LastError(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldEQ(FieldLastError, v))
}

// AdaptedFrom applies equality check predicate on the "adapted_from" field. It's identical to AdaptedFromEQ.
func AdaptedFrom(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldEQ(FieldAdaptedFrom, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldEQ(FieldCreatedAt, v))
}

// InvestigationIDEQ applies the EQ predicate on the "investigation_id" field.
func InvestigationIDEQ(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldEQ(FieldInvestigationID, v))
}

// InvestigationIDNEQ applies the NEQ predicate on the "investigation_id" field.
func InvestigationIDNEQ(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldNEQ(FieldInvestigationID, v))
}

// InvestigationIDIn applies the In predicate on the "investigation_id" field.
func InvestigationIDIn(vs ...string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldIn(FieldInvestigationID, vs...))
}

// InvestigationIDNotIn applies the NotIn predicate on the "investigation_id" field.
func InvestigationIDNotIn(vs ...string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldNotIn(FieldInvestigationID, vs...))
}

// InvestigationIDGT applies the GT predicate on the "investigation_id" field.
func InvestigationIDGT(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldGT(FieldInvestigationID, v))
}

// InvestigationIDGTE applies the GTE predicate on the "investigation_id" field.
func InvestigationIDGTE(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldGTE(FieldInvestigationID, v))
}

// InvestigationIDLT applies the LT predicate on the "investigation_id" field.
func InvestigationIDLT(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldLT(FieldInvestigationID, v))
}

// InvestigationIDLTE applies the LTE predicate on the "investigation_id" field.
func InvestigationIDLTE(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldLTE(FieldInvestigationID, v))
}

// InvestigationIDContains applies the Contains predicate on the "investigation_id" field.
func InvestigationIDContains(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldContains(FieldInvestigationID, v))
}

// InvestigationIDHasPrefix applies the HasPrefix predicate on the "investigation_id" field.
func InvestigationIDHasPrefix(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldHasPrefix(FieldInvestigationID, v))
}

// InvestigationIDHasSuffix applies the HasSuffix predicate on the "investigation_id" field.
func InvestigationIDHasSuffix(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldHasSuffix(FieldInvestigationID, v))
}

// InvestigationIDEqualFold applies the EqualFold predicate on the "investigation_id" field.
func InvestigationIDEqualFold(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldEqualFold(FieldInvestigationID, v))
}

// InvestigationIDContainsFold applies the ContainsFold predicate on the "investigation_id" field.
func InvestigationIDContainsFold(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldContainsFold(FieldInvestigationID, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldContainsFold(FieldTenantID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldContainsFold(FieldName, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v Type) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v Type) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...Type) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...Type) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldNotIn(FieldType, vs...))
}

// AgentEQ applies the EQ predicate on the "agent" field.
func AgentEQ(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldEQ(FieldAgent, v))
}

// AgentNEQ applies the NEQ predicate on the "agent" field.
func AgentNEQ(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldNEQ(FieldAgent, v))
}

// AgentIn applies the In predicate on the "agent" field.
func AgentIn(vs ...string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldIn(FieldAgent, vs...))
}

// AgentNotIn applies the NotIn predicate on the "agent" field.
func AgentNotIn(vs ...string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldNotIn(FieldAgent, vs...))
}

// AgentGT applies the GT predicate on the "agent" field.
func AgentGT(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldGT(FieldAgent, v))
}

// AgentGTE applies the GTE predicate on the "agent" field.
func AgentGTE(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldGTE(FieldAgent, v))
}

// AgentLT applies the LT predicate on the "agent" field.
func AgentLT(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldLT(FieldAgent, v))
}

// AgentLTE applies the LTE predicate on the "agent" field.
func AgentLTE(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldLTE(FieldAgent, v))
}

// AgentContains applies the Contains predicate on the "agent" field.
func AgentContains(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldContains(FieldAgent, v))
}

// AgentHasPrefix applies the HasPrefix predicate on the "agent" field.
func AgentHasPrefix(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldHasPrefix(FieldAgent, v))
}

// AgentHasSuffix applies the HasSuffix predicate on the "agent" field.
func AgentHasSuffix(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldHasSuffix(FieldAgent, v))
}

// AgentIsNil applies the IsNil predicate on the "agent" field.
func AgentIsNil() predicate.PlanStep {
	return predicate.PlanStep(sql.FieldIsNull(FieldAgent))
}

// AgentNotNil applies the NotNil predicate on the "agent" field.
func AgentNotNil() predicate.PlanStep {
	return predicate.PlanStep(sql.FieldNotNull(FieldAgent))
}

// AgentEqualFold applies the EqualFold predicate on the "agent" field.
func AgentEqualFold(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldEqualFold(FieldAgent, v))
}

// AgentContainsFold applies the ContainsFold predicate on the "agent" field.
func AgentContainsFold(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldContainsFold(FieldAgent, v))
}

// DependenciesIsNil applies the IsNil predicate on the "dependencies" field.
func DependenciesIsNil() predicate.PlanStep {
	return predicate.PlanStep(sql.FieldIsNull(FieldDependencies))
}

// DependenciesNotNil applies the NotNil predicate on the "dependencies" field.
func DependenciesNotNil() predicate.PlanStep {
	return predicate.PlanStep(sql.FieldNotNull(FieldDependencies))
}

// PayloadIsNil applies the IsNil predicate on the "payload" field.
func PayloadIsNil() predicate.PlanStep {
	return predicate.PlanStep(sql.FieldIsNull(FieldPayload))
}

// PayloadNotNil applies the NotNil predicate on the "payload" field.
func PayloadNotNil() predicate.PlanStep {
	return predicate.PlanStep(sql.FieldNotNull(FieldPayload))
}

// DataSourcesIsNil applies the IsNil predicate on the "data_sources" field.
func DataSourcesIsNil() predicate.PlanStep {
	return predicate.PlanStep(sql.FieldIsNull(FieldDataSources))
}

// DataSourcesNotNil applies the NotNil predicate on the "data_sources" field.
func DataSourcesNotNil() predicate.PlanStep {
	return predicate.PlanStep(sql.FieldNotNull(FieldDataSources))
}

// TimeoutMsEQ applies the EQ predicate on the "timeout_ms" field.
func TimeoutMsEQ(v int64) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldEQ(FieldTimeoutMs, v))
}

// TimeoutMsNEQ applies the NEQ predicate on the "timeout_ms" field.
func TimeoutMsNEQ(v int64) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldNEQ(FieldTimeoutMs, v))
}

// TimeoutMsIn applies the In predicate on the "timeout_ms" field.
func TimeoutMsIn(vs ...int64) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldIn(FieldTimeoutMs, vs...))
}

// TimeoutMsNotIn applies the NotIn predicate on the "timeout_ms" field.
func TimeoutMsNotIn(vs ...int64) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldNotIn(FieldTimeoutMs, vs...))
}

// TimeoutMsGT applies the GT predicate on the "timeout_ms" field.
func TimeoutMsGT(v int64) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldGT(FieldTimeoutMs, v))
}

// TimeoutMsGTE applies the GTE predicate on the "timeout_ms" field.
func TimeoutMsGTE(v int64) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldGTE(FieldTimeoutMs, v))
}

// TimeoutMsLT applies the LT predicate on the "timeout_ms" field.
func TimeoutMsLT(v int64) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldLT(FieldTimeoutMs, v))
}

// TimeoutMsLTE applies the LTE predicate on the "timeout_ms" field.
func TimeoutMsLTE(v int64) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldLTE(FieldTimeoutMs, v))
}

// MaxRetriesEQ applies the EQ predicate on the "max_retries" field.
func MaxRetriesEQ(v int) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldEQ(FieldMaxRetries, v))
}

// MaxRetriesNEQ applies the NEQ predicate on the "max_retries" field.
func MaxRetriesNEQ(v int) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldNEQ(FieldMaxRetries, v))
}

// MaxRetriesIn applies the In predicate on the "max_retries" field.
func MaxRetriesIn(vs ...int) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldIn(FieldMaxRetries, vs...))
}

// MaxRetriesNotIn applies the NotIn predicate on the "max_retries" field.
func MaxRetriesNotIn(vs ...int) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldNotIn(FieldMaxRetries, vs...))
}

// MaxRetriesGT applies the GT predicate on the "max_retries" field.
func MaxRetriesGT(v int) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldGT(FieldMaxRetries, v))
}

// MaxRetriesGTE applies the GTE predicate on the "max_retries" field.
func MaxRetriesGTE(v int) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldGTE(FieldMaxRetries, v))
}

// MaxRetriesLT applies the LT predicate on the "max_retries" field.
func MaxRetriesLT(v int) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldLT(FieldMaxRetries, v))
}

// MaxRetriesLTE applies the LTE predicate on the "max_retries" field.
func MaxRetriesLTE(v int) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldLTE(FieldMaxRetries, v))
}

// CriticalEQ applies the EQ predicate on the "critical" field.
func CriticalEQ(v bool) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldEQ(FieldCritical, v))
}

// CriticalNEQ applies the NEQ predicate on the "critical" field.
func CriticalNEQ(v bool) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldNEQ(FieldCritical, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldNotIn(FieldStatus, vs...))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.PlanStep {
	return predicate.PlanStep(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.PlanStep {
	return predicate.PlanStep(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.PlanStep {
	return predicate.PlanStep(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.PlanStep {
	return predicate.PlanStep(sql.FieldNotNull(FieldCompletedAt))
}

// RetryCountEQ applies the EQ predicate on the "retry_count" field.
func RetryCountEQ(v int) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldEQ(FieldRetryCount, v))
}

// RetryCountNEQ applies the NEQ predicate on the "retry_count" field.
func RetryCountNEQ(v int) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldNEQ(FieldRetryCount, v))
}

// RetryCountIn applies the In predicate on the "retry_count" field.
func RetryCountIn(vs ...int) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldIn(FieldRetryCount, vs...))
}

// RetryCountNotIn applies the NotIn predicate on the "retry_count" field.
func RetryCountNotIn(vs ...int) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldNotIn(FieldRetryCount, vs...))
}

// RetryCountGT applies the GT predicate on the "retry_count" field.
func RetryCountGT(v int) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldGT(FieldRetryCount, v))
}

// RetryCountGTE applies the GTE predicate on the "retry_count" field.
func RetryCountGTE(v int) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldGTE(FieldRetryCount, v))
}

// RetryCountLT applies the LT predicate on the "retry_count" field.
func RetryCountLT(v int) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldLT(FieldRetryCount, v))
}

// RetryCountLTE applies the LTE predicate on the "retry_count" field.
func RetryCountLTE(v int) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldLTE(FieldRetryCount, v))
}

// LastErrorEQ applies the EQ predicate on the "last_error" field.
func LastErrorEQ(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldEQ(FieldLastError, v))
}

// LastErrorNEQ applies the NEQ predicate on the "last_error" field.
func LastErrorNEQ(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldNEQ(FieldLastError, v))
}

// LastErrorIn applies the In predicate on the "last_error" field.
func LastErrorIn(vs ...string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldIn(FieldLastError, vs...))
}

// LastErrorNotIn applies the NotIn predicate on the "last_error" field.
func LastErrorNotIn(vs ...string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldNotIn(FieldLastError, vs...))
}

// LastErrorGT applies the GT predicate on the "last_error" field.
func LastErrorGT(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldGT(FieldLastError, v))
}

// LastErrorGTE applies the GTE predicate on the "last_error" field.
func LastErrorGTE(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldGTE(FieldLastError, v))
}

// LastErrorLT applies the LT predicate on the "last_error" field.
func LastErrorLT(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldLT(FieldLastError, v))
}

// LastErrorLTE applies the LTE predicate on the "last_error" field.
func LastErrorLTE(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldLTE(FieldLastError, v))
}

// LastErrorContains applies the Contains predicate on the "last_error" field.
func LastErrorContains(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldContains(FieldLastError, v))
}

// LastErrorHasPrefix applies the HasPrefix predicate on the "last_error" field.
func LastErrorHasPrefix(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldHasPrefix(FieldLastError, v))
}

// LastErrorHasSuffix applies the HasSuffix predicate on the "last_error" field.
func LastErrorHasSuffix(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldHasSuffix(FieldLastError, v))
}

// LastErrorIsNil applies the IsNil predicate on the "last_error" field.
func LastErrorIsNil() predicate.PlanStep {
	return predicate.PlanStep(sql.FieldIsNull(FieldLastError))
}

// LastErrorNotNil applies the NotNil predicate on the "last_error" field.
func LastErrorNotNil() predicate.PlanStep {
	return predicate.PlanStep(sql.FieldNotNull(FieldLastError))
}

// LastErrorEqualFold applies the EqualFold predicate on the "last_error" field.
func LastErrorEqualFold(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldEqualFold(FieldLastError, v))
}

// LastErrorContainsFold applies the ContainsFold predicate on the "last_error" field.
func LastErrorContainsFold(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldContainsFold(FieldLastError, v))
}

// AdaptedFromEQ applies the EQ predicate on the "adapted_from" field.
func AdaptedFromEQ(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldEQ(FieldAdaptedFrom, v))
}

// AdaptedFromNEQ applies the NEQ predicate on the "adapted_from" field.
func AdaptedFromNEQ(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldNEQ(FieldAdaptedFrom, v))
}

// AdaptedFromIn applies the In predicate on the "adapted_from" field.
func AdaptedFromIn(vs ...string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldIn(FieldAdaptedFrom, vs...))
}

// AdaptedFromNotIn applies the NotIn predicate on the "adapted_from" field.
func AdaptedFromNotIn(vs ...string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldNotIn(FieldAdaptedFrom, vs...))
}

// AdaptedFromGT applies the GT predicate on the "adapted_from" field.
func AdaptedFromGT(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldGT(FieldAdaptedFrom, v))
}

// AdaptedFromGTE applies the GTE predicate on the "adapted_from" field.
func AdaptedFromGTE(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldGTE(FieldAdaptedFrom, v))
}

// AdaptedFromLT applies the LT predicate on the "adapted_from" field.
func AdaptedFromLT(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldLT(FieldAdaptedFrom, v))
}

// AdaptedFromLTE applies the LTE predicate on the "adapted_from" field.
func AdaptedFromLTE(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldLTE(FieldAdaptedFrom, v))
}

// AdaptedFromContains applies the Contains predicate on the "adapted_from" field.
func AdaptedFromContains(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldContains(FieldAdaptedFrom, v))
}

// AdaptedFromHasPrefix applies the HasPrefix predicate on the "adapted_from" field.
func AdaptedFromHasPrefix(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldHasPrefix(FieldAdaptedFrom, v))
}

// AdaptedFromHasSuffix applies the HasSuffix predicate on the "adapted_from" field.
func AdaptedFromHasSuffix(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldHasSuffix(FieldAdaptedFrom, v))
}

// AdaptedFromIsNil applies the IsNil predicate on the "adapted_from" field.
func AdaptedFromIsNil() predicate.PlanStep {
	return predicate.PlanStep(sql.FieldIsNull(FieldAdaptedFrom))
}

// AdaptedFromNotNil applies the NotNil predicate on the "adapted_from" field.
func AdaptedFromNotNil() predicate.PlanStep {
	return predicate.PlanStep(sql.FieldNotNull(FieldAdaptedFrom))
}

// AdaptedFromEqualFold applies the EqualFold predicate on the "adapted_from" field.
func AdaptedFromEqualFold(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldEqualFold(FieldAdaptedFrom, v))
}

// AdaptedFromContainsFold applies the ContainsFold predicate on the "adapted_from" field.
func AdaptedFromContainsFold(v string) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldContainsFold(FieldAdaptedFrom, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PlanStep {
	return predicate.PlanStep(sql.FieldLTE(FieldCreatedAt, v))
}

// HasInvestigation applies the HasEdge predicate on the "investigation" edge.
func HasInvestigation() predicate.PlanStep {
	return predicate.PlanStep(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, InvestigationTable, InvestigationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInvestigationWith applies the HasEdge predicate on the "investigation" edge with a given conditions (other predicates).
func HasInvestigationWith(preds ...predicate.Investigation) predicate.PlanStep {
	return predicate.PlanStep(func(s *sql.Selector) {
		step := newInvestigationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PlanStep) predicate.PlanStep {
	return predicate.PlanStep(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PlanStep) predicate.PlanStep {
	return predicate.PlanStep(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PlanStep) predicate.PlanStep {
	return predicate.PlanStep(sql.NotPredicates(p))
}
