// Code generated by ent, DO NOT EDIT.

package investigation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Investigation {
	return predicate.Investigation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Investigation {
	return predicate.Investigation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Investigation {
	return predicate.Investigation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Investigation {
	return predicate.Investigation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Investigation {
	return predicate.Investigation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Investigation {
	return predicate.Investigation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Investigation {
	return predicate.Investigation(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Investigation {
	return predicate.Investigation(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldTenantID, v))
}

// AlertID applies equality check predicate on the "alert_id" field. It's identical to AlertIDEQ.
func AlertID(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldAlertID, v))
}

// CorrelationKey applies equality check predicate on the "correlation_key" field. It's identical to CorrelationKeyEQ.
func CorrelationKey(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldCorrelationKey, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldUserID, v))
}

// AlertTitle applies equality check predicate on the "alert_title" field. It's identical to AlertTitleEQ.
func AlertTitle(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldAlertTitle, v))
}

// AlertSource applies equality check predicate on the "alert_source" field. It's identical to AlertSourceEQ.
func AlertSource(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldAlertSource, v))
}

// AlertTimestamp applies equality check predicate on the "alert_timestamp" field. It's identical to AlertTimestampEQ.
func AlertTimestamp(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldAlertTimestamp, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v int) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldPriority, v))
}

// TimeoutMs applies equality check predicate on the "timeout_ms" field. It's identical to TimeoutMsEQ.
func TimeoutMs(v int64) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldTimeoutMs, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldCompletedAt, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldErrorMessage, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldPodID, v))
}

// LastHeartbeatAt applies equality check predicate on the "last_heartbeat_at" field. It's identical to LastHeartbeatAtEQ.
func LastHeartbeatAt(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldDeletedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.Investigation {
	return predicate.Investigation(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.Investigation {
	return predicate.Investigation(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldContainsFold(FieldTenantID, v))
}

// AlertIDEQ applies the EQ predicate on the "alert_id" field.
func AlertIDEQ(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldAlertID, v))
}

// AlertIDNEQ applies the NEQ predicate on the "alert_id" field.
func AlertIDNEQ(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldNEQ(FieldAlertID, v))
}

// AlertIDIn applies the In predicate on the "alert_id" field.
func AlertIDIn(vs ...string) predicate.Investigation {
	return predicate.Investigation(sql.FieldIn(FieldAlertID, vs...))
}

// AlertIDNotIn applies the NotIn predicate on the "alert_id" field.
func AlertIDNotIn(vs ...string) predicate.Investigation {
	return predicate.Investigation(sql.FieldNotIn(FieldAlertID, vs...))
}

// AlertIDGT applies the GT predicate on the "alert_id" field.
func AlertIDGT(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldGT(FieldAlertID, v))
}

// AlertIDGTE applies the GTE predicate on the "alert_id" field.
func AlertIDGTE(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldGTE(FieldAlertID, v))
}

// AlertIDLT applies the LT predicate on the "alert_id" field.
func AlertIDLT(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldLT(FieldAlertID, v))
}

// AlertIDLTE applies the LTE predicate on the "alert_id" field.
func AlertIDLTE(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldLTE(FieldAlertID, v))
}

// AlertIDContains applies the Contains predicate on the "alert_id" field.
func AlertIDContains(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldContains(FieldAlertID, v))
}

// AlertIDHasPrefix applies the HasPrefix predicate on the "alert_id" field.
func AlertIDHasPrefix(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldHasPrefix(FieldAlertID, v))
}

// AlertIDHasSuffix applies the HasSuffix predicate on the "alert_id" field.
func AlertIDHasSuffix(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldHasSuffix(FieldAlertID, v))
}

// AlertIDEqualFold applies the EqualFold predicate on the "alert_id" field.
func AlertIDEqualFold(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEqualFold(FieldAlertID, v))
}

// AlertIDContainsFold applies the ContainsFold predicate on the "alert_id" field.
func AlertIDContainsFold(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldContainsFold(FieldAlertID, v))
}

// CorrelationKeyEQ applies the EQ predicate on the "correlation_key" field.
func CorrelationKeyEQ(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldCorrelationKey, v))
}

// CorrelationKeyNEQ applies the NEQ predicate on the "correlation_key" field.
func CorrelationKeyNEQ(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldNEQ(FieldCorrelationKey, v))
}

// CorrelationKeyIn applies the In predicate on the "correlation_key" field.
func CorrelationKeyIn(vs ...string) predicate.Investigation {
	return predicate.Investigation(sql.FieldIn(FieldCorrelationKey, vs...))
}

// CorrelationKeyNotIn applies the NotIn predicate on the "correlation_key" field.
func CorrelationKeyNotIn(vs ...string) predicate.Investigation {
	return predicate.Investigation(sql.FieldNotIn(FieldCorrelationKey, vs...))
}

// CorrelationKeyGT applies the GT predicate on the "correlation_key" field.
func CorrelationKeyGT(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldGT(FieldCorrelationKey, v))
}

// CorrelationKeyGTE applies the GTE predicate on the "correlation_key" field.
func CorrelationKeyGTE(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldGTE(FieldCorrelationKey, v))
}

// CorrelationKeyLT applies the LT predicate on the "correlation_key" field.
func CorrelationKeyLT(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldLT(FieldCorrelationKey, v))
}

// CorrelationKeyLTE applies the LTE predicate on the "correlation_key" field.
func CorrelationKeyLTE(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldLTE(FieldCorrelationKey, v))
}

// CorrelationKeyContains applies the Contains predicate on the "correlation_key" field.
func CorrelationKeyContains(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldContains(FieldCorrelationKey, v))
}

// CorrelationKeyHasPrefix applies the HasPrefix predicate on the "correlation_key" field.
func CorrelationKeyHasPrefix(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldHasPrefix(FieldCorrelationKey, v))
}

// CorrelationKeyHasSuffix applies the HasSuffix predicate on the "correlation_key" field.
func CorrelationKeyHasSuffix(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldHasSuffix(FieldCorrelationKey, v))
}

// CorrelationKeyEqualFold applies the EqualFold predicate on the "correlation_key" field.
func CorrelationKeyEqualFold(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEqualFold(FieldCorrelationKey, v))
}

// CorrelationKeyContainsFold applies the ContainsFold predicate on the "correlation_key" field.
func CorrelationKeyContainsFold(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldContainsFold(FieldCorrelationKey, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Investigation {
	return predicate.Investigation(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Investigation {
	return predicate.Investigation(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDIsNil applies the IsNil predicate on the "user_id" field.
func UserIDIsNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldIsNull(FieldUserID))
}

// UserIDNotNil applies the NotNil predicate on the "user_id" field.
func UserIDNotNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldNotNull(FieldUserID))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldContainsFold(FieldUserID, v))
}

// AlertTitleEQ applies the EQ predicate on the "alert_title" field.
func AlertTitleEQ(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldAlertTitle, v))
}

// AlertTitleNEQ applies the NEQ predicate on the "alert_title" field.
func AlertTitleNEQ(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldNEQ(FieldAlertTitle, v))
}

// AlertTitleIn applies the In predicate on the "alert_title" field.
func AlertTitleIn(vs ...string) predicate.Investigation {
	return predicate.Investigation(sql.FieldIn(FieldAlertTitle, vs...))
}

// AlertTitleNotIn applies the NotIn predicate on the "alert_title" field.
func AlertTitleNotIn(vs ...string) predicate.Investigation {
	return predicate.Investigation(sql.FieldNotIn(FieldAlertTitle, vs...))
}

// AlertTitleGT applies the GT predicate on the "alert_title" field.
func AlertTitleGT(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldGT(FieldAlertTitle, v))
}

// AlertTitleGTE applies the GTE predicate on the "alert_title" field.
func AlertTitleGTE(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldGTE(FieldAlertTitle, v))
}

// AlertTitleLT applies the LT predicate on the "alert_title" field.
func AlertTitleLT(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldLT(FieldAlertTitle, v))
}

// AlertTitleLTE applies the LTE predicate on the "alert_title" field.
func AlertTitleLTE(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldLTE(FieldAlertTitle, v))
}

// AlertTitleContains applies the Contains predicate on the "alert_title" field.
func AlertTitleContains(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldContains(FieldAlertTitle, v))
}

// AlertTitleHasPrefix applies the HasPrefix predicate on the "alert_title" field.
func AlertTitleHasPrefix(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldHasPrefix(FieldAlertTitle, v))
}

// AlertTitleHasSuffix applies the HasSuffix predicate on the "alert_title" field.
func AlertTitleHasSuffix(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldHasSuffix(FieldAlertTitle, v))
}

// AlertTitleIsNil applies the IsNil predicate on the "alert_title" field.
func AlertTitleIsNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldIsNull(FieldAlertTitle))
}

// AlertTitleNotNil applies the NotNil predicate on the "alert_title" field.
func AlertTitleNotNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldNotNull(FieldAlertTitle))
}

// AlertTitleEqualFold applies the EqualFold predicate on the "alert_title" field.
func AlertTitleEqualFold(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEqualFold(FieldAlertTitle, v))
}

// AlertTitleContainsFold applies the ContainsFold predicate on the "alert_title" field.
func AlertTitleContainsFold(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldContainsFold(FieldAlertTitle, v))
}

// AlertSeverityEQ applies the EQ predicate on the "alert_severity" field.
func AlertSeverityEQ(v AlertSeverity) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldAlertSeverity, v))
}

// AlertSeverityNEQ applies the NEQ predicate on the "alert_severity" field.
func AlertSeverityNEQ(v AlertSeverity) predicate.Investigation {
	return predicate.Investigation(sql.FieldNEQ(FieldAlertSeverity, v))
}

// AlertSeverityIn applies the In predicate on the "alert_severity" field.
func AlertSeverityIn(vs ...AlertSeverity) predicate.Investigation {
	return predicate.Investigation(sql.FieldIn(FieldAlertSeverity, vs...))
}

// AlertSeverityNotIn applies the NotIn predicate on the "alert_severity" field.
func AlertSeverityNotIn(vs ...AlertSeverity) predicate.Investigation {
	return predicate.Investigation(sql.FieldNotIn(FieldAlertSeverity, vs...))
}

// AlertSourceEQ applies the EQ predicate on the "alert_source" field.
func AlertSourceEQ(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldAlertSource, v))
}

// AlertSourceNEQ applies the NEQ predicate on the "alert_source" field.
func AlertSourceNEQ(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldNEQ(FieldAlertSource, v))
}

// AlertSourceIn applies the In predicate on the "alert_source" field.
func AlertSourceIn(vs ...string) predicate.Investigation {
	return predicate.Investigation(sql.FieldIn(FieldAlertSource, vs...))
}

// AlertSourceNotIn applies the NotIn predicate on the "alert_source" field.
func AlertSourceNotIn(vs ...string) predicate.Investigation {
	return predicate.Investigation(sql.FieldNotIn(FieldAlertSource, vs...))
}

// AlertSourceGT applies the GT predicate on the "alert_source" field.
func AlertSourceGT(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldGT(FieldAlertSource, v))
}

// AlertSourceGTE applies the GTE predicate on the "alert_source" field.
func AlertSourceGTE(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldGTE(FieldAlertSource, v))
}

// AlertSourceLT applies the LT predicate on the "alert_source" field.
func AlertSourceLT(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldLT(FieldAlertSource, v))
}

// AlertSourceLTE applies the LTE predicate on the "alert_source" field.
func AlertSourceLTE(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldLTE(FieldAlertSource, v))
}

// AlertSourceContains applies the Contains predicate on the "alert_source" field.
func AlertSourceContains(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldContains(FieldAlertSource, v))
}

// AlertSourceHasPrefix applies the HasPrefix predicate on the "alert_source" field.
func AlertSourceHasPrefix(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldHasPrefix(FieldAlertSource, v))
}

// AlertSourceHasSuffix applies the HasSuffix predicate on the "alert_source" field.
func AlertSourceHasSuffix(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldHasSuffix(FieldAlertSource, v))
}

// AlertSourceIsNil applies the IsNil predicate on the "alert_source" field.
func AlertSourceIsNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldIsNull(FieldAlertSource))
}

// AlertSourceNotNil applies the NotNil predicate on the "alert_source" field.
func AlertSourceNotNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldNotNull(FieldAlertSource))
}

// AlertSourceEqualFold applies the EqualFold predicate on the "alert_source" field.
func AlertSourceEqualFold(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEqualFold(FieldAlertSource, v))
}

// AlertSourceContainsFold applies the ContainsFold predicate on the "alert_source" field.
func AlertSourceContainsFold(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldContainsFold(FieldAlertSource, v))
}

// AlertTimestampEQ applies the EQ predicate on the "alert_timestamp" field.
func AlertTimestampEQ(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldAlertTimestamp, v))
}

// AlertTimestampNEQ applies the NEQ predicate on the "alert_timestamp" field.
func AlertTimestampNEQ(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldNEQ(FieldAlertTimestamp, v))
}

// AlertTimestampIn applies the In predicate on the "alert_timestamp" field.
func AlertTimestampIn(vs ...time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldIn(FieldAlertTimestamp, vs...))
}

// AlertTimestampNotIn applies the NotIn predicate on the "alert_timestamp" field.
func AlertTimestampNotIn(vs ...time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldNotIn(FieldAlertTimestamp, vs...))
}

// AlertTimestampGT applies the GT predicate on the "alert_timestamp" field.
func AlertTimestampGT(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldGT(FieldAlertTimestamp, v))
}

// AlertTimestampGTE applies the GTE predicate on the "alert_timestamp" field.
func AlertTimestampGTE(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldGTE(FieldAlertTimestamp, v))
}

// AlertTimestampLT applies the LT predicate on the "alert_timestamp" field.
func AlertTimestampLT(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldLT(FieldAlertTimestamp, v))
}

// AlertTimestampLTE applies the LTE predicate on the "alert_timestamp" field.
func AlertTimestampLTE(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldLTE(FieldAlertTimestamp, v))
}

// AlertTimestampIsNil applies the IsNil predicate on the "alert_timestamp" field.
func AlertTimestampIsNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldIsNull(FieldAlertTimestamp))
}

// AlertTimestampNotNil applies the NotNil predicate on the "alert_timestamp" field.
func AlertTimestampNotNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldNotNull(FieldAlertTimestamp))
}

// AlertPayloadIsNil applies the IsNil predicate on the "alert_payload" field.
func AlertPayloadIsNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldIsNull(FieldAlertPayload))
}

// AlertPayloadNotNil applies the NotNil predicate on the "alert_payload" field.
func AlertPayloadNotNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldNotNull(FieldAlertPayload))
}

// AlertEntitiesIsNil applies the IsNil predicate on the "alert_entities" field.
func AlertEntitiesIsNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldIsNull(FieldAlertEntities))
}

// AlertEntitiesNotNil applies the NotNil predicate on the "alert_entities" field.
func AlertEntitiesNotNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldNotNull(FieldAlertEntities))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v int) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v int) predicate.Investigation {
	return predicate.Investigation(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...int) predicate.Investigation {
	return predicate.Investigation(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...int) predicate.Investigation {
	return predicate.Investigation(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v int) predicate.Investigation {
	return predicate.Investigation(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v int) predicate.Investigation {
	return predicate.Investigation(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v int) predicate.Investigation {
	return predicate.Investigation(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v int) predicate.Investigation {
	return predicate.Investigation(sql.FieldLTE(FieldPriority, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Investigation {
	return predicate.Investigation(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Investigation {
	return predicate.Investigation(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Investigation {
	return predicate.Investigation(sql.FieldNotIn(FieldStatus, vs...))
}

// TimeoutMsEQ applies the EQ predicate on the "timeout_ms" field.
func TimeoutMsEQ(v int64) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldTimeoutMs, v))
}

// TimeoutMsNEQ applies the NEQ predicate on the "timeout_ms" field.
func TimeoutMsNEQ(v int64) predicate.Investigation {
	return predicate.Investigation(sql.FieldNEQ(FieldTimeoutMs, v))
}

// TimeoutMsIn applies the In predicate on the "timeout_ms" field.
func TimeoutMsIn(vs ...int64) predicate.Investigation {
	return predicate.Investigation(sql.FieldIn(FieldTimeoutMs, vs...))
}

// TimeoutMsNotIn applies the NotIn predicate on the "timeout_ms" field.
func TimeoutMsNotIn(vs ...int64) predicate.Investigation {
	return predicate.Investigation(sql.FieldNotIn(FieldTimeoutMs, vs...))
}

// TimeoutMsGT applies the GT predicate on the "timeout_ms" field.
func TimeoutMsGT(v int64) predicate.Investigation {
	return predicate.Investigation(sql.FieldGT(FieldTimeoutMs, v))
}

// TimeoutMsGTE applies the GTE predicate on the "timeout_ms" field.
func TimeoutMsGTE(v int64) predicate.Investigation {
	return predicate.Investigation(sql.FieldGTE(FieldTimeoutMs, v))
}

// TimeoutMsLT applies the LT predicate on the "timeout_ms" field.
func TimeoutMsLT(v int64) predicate.Investigation {
	return predicate.Investigation(sql.FieldLT(FieldTimeoutMs, v))
}

// TimeoutMsLTE applies the LTE predicate on the "timeout_ms" field.
func TimeoutMsLTE(v int64) predicate.Investigation {
	return predicate.Investigation(sql.FieldLTE(FieldTimeoutMs, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldNotNull(FieldCompletedAt))
}

// VerdictIsNil applies the IsNil predicate on the "verdict" field.
func VerdictIsNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldIsNull(FieldVerdict))
}

// VerdictNotNil applies the NotNil predicate on the "verdict" field.
func VerdictNotNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldNotNull(FieldVerdict))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Investigation {
	return predicate.Investigation(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Investigation {
	return predicate.Investigation(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldContainsFold(FieldErrorMessage, v))
}

// ExecutionSummaryIsNil applies the IsNil predicate on the "execution_summary" field.
func ExecutionSummaryIsNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldIsNull(FieldExecutionSummary))
}

// ExecutionSummaryNotNil applies the NotNil predicate on the "execution_summary" field.
func ExecutionSummaryNotNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldNotNull(FieldExecutionSummary))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldNotNull(FieldMetadata))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.Investigation {
	return predicate.Investigation(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.Investigation {
	return predicate.Investigation(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.Investigation {
	return predicate.Investigation(sql.FieldContainsFold(FieldPodID, v))
}

// LastHeartbeatAtEQ applies the EQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtEQ(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtNEQ applies the NEQ predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNEQ(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldNEQ(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIn applies the In predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIn(vs ...time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtNotIn applies the NotIn predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotIn(vs ...time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldNotIn(FieldLastHeartbeatAt, vs...))
}

// LastHeartbeatAtGT applies the GT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGT(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldGT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtGTE applies the GTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtGTE(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldGTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLT applies the LT predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLT(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldLT(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtLTE applies the LTE predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtLTE(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldLTE(FieldLastHeartbeatAt, v))
}

// LastHeartbeatAtIsNil applies the IsNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtIsNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldIsNull(FieldLastHeartbeatAt))
}

// LastHeartbeatAtNotNil applies the NotNil predicate on the "last_heartbeat_at" field.
func LastHeartbeatAtNotNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldNotNull(FieldLastHeartbeatAt))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.Investigation {
	return predicate.Investigation(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Investigation {
	return predicate.Investigation(sql.FieldNotNull(FieldDeletedAt))
}

// HasSteps applies the HasEdge predicate on the "steps" edge.
func HasSteps() predicate.Investigation {
	return predicate.Investigation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StepsTable, StepsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStepsWith applies the HasEdge predicate on the "steps" edge with a given conditions (other predicates).
func HasStepsWith(preds ...predicate.PlanStep) predicate.Investigation {
	return predicate.Investigation(func(s *sql.Selector) {
		step := newStepsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvidence applies the HasEdge predicate on the "evidence" edge.
func HasEvidence() predicate.Investigation {
	return predicate.Investigation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EvidenceTable, EvidenceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEvidenceWith applies the HasEdge predicate on the "evidence" edge with a given conditions (other predicates).
func HasEvidenceWith(preds ...predicate.Evidence) predicate.Investigation {
	return predicate.Investigation(func(s *sql.Selector) {
		step := newEvidenceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFeedback applies the HasEdge predicate on the "feedback" edge.
func HasFeedback() predicate.Investigation {
	return predicate.Investigation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, FeedbackTable, FeedbackColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFeedbackWith applies the HasEdge predicate on the "feedback" edge with a given conditions (other predicates).
func HasFeedbackWith(preds ...predicate.Feedback) predicate.Investigation {
	return predicate.Investigation(func(s *sql.Selector) {
		step := newFeedbackStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasApprovals applies the HasEdge predicate on the "approvals" edge.
func HasApprovals() predicate.Investigation {
	return predicate.Investigation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ApprovalsTable, ApprovalsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasApprovalsWith applies the HasEdge predicate on the "approvals" edge with a given conditions (other predicates).
func HasApprovalsWith(preds ...predicate.ApprovalRequest) predicate.Investigation {
	return predicate.Investigation(func(s *sql.Selector) {
		step := newApprovalsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRunEvents applies the HasEdge predicate on the "run_events" edge.
func HasRunEvents() predicate.Investigation {
	return predicate.Investigation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RunEventsTable, RunEventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunEventsWith applies the HasEdge predicate on the "run_events" edge with a given conditions (other predicates).
func HasRunEventsWith(preds ...predicate.RunEvent) predicate.Investigation {
	return predicate.Investigation(func(s *sql.Selector) {
		step := newRunEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Investigation) predicate.Investigation {
	return predicate.Investigation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Investigation) predicate.Investigation {
	return predicate.Investigation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Investigation) predicate.Investigation {
	return predicate.Investigation(sql.NotPredicates(p))
}
