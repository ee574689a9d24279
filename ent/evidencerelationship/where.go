// Code generated by ent, DO NOT EDIT.

package evidencerelationship

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldEQ(FieldTenantID, v))
}

// InvestigationID applies equality check predicate on the "investigation_id" field. It's identical to InvestigationIDEQ.
func InvestigationID(v string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldEQ(FieldInvestigationID, v))
}

// FromEvidenceID applies equality check predicate on the "from_evidence_id" field. It's identical to FromEvidenceIDEQ.
func FromEvidenceID(v string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldEQ(FieldFromEvidenceID, v))
}

// ToEvidenceID applies equality check predicate on the "to_evidence_id" field. It's identical to ToEvidenceIDEQ.
func ToEvidenceID(v string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldEQ(FieldToEvidenceID, v))
}

// Strength applies equality check predicate on the "strength" field. It's identical to StrengthEQ.
func Strength(v float64) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldEQ(FieldStrength, v))
}

// Rationale applies equality check predicate on the "rationale" field. It's identical to RationaleEQ.
func Rationale(v string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldEQ(FieldRationale, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldEQ(FieldCreatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldContainsFold(FieldTenantID, v))
}

// InvestigationIDEQ applies the EQ predicate on the "investigation_id" field.
func InvestigationIDEQ(v string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldEQ(FieldInvestigationID, v))
}

// InvestigationIDNEQ applies the NEQ predicate on the "investigation_id" field.
func InvestigationIDNEQ(v string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldNEQ(FieldInvestigationID, v))
}

// InvestigationIDIn applies the In predicate on the "investigation_id" field.
func InvestigationIDIn(vs ...string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldIn(FieldInvestigationID, vs...))
}

// InvestigationIDNotIn applies the NotIn predicate on the "investigation_id" field.
func InvestigationIDNotIn(vs ...string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldNotIn(FieldInvestigationID, vs...))
}

// InvestigationIDGT applies the GT predicate on the "investigation_id" field.
func InvestigationIDGT(v string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldGT(FieldInvestigationID, v))
}

// InvestigationIDGTE applies the GTE predicate on the "investigation_id" field.
func InvestigationIDGTE(v string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldGTE(FieldInvestigationID, v))
}

// InvestigationIDLT applies the LT predicate on the "investigation_id" field.
func InvestigationIDLT(v string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldLT(FieldInvestigationID, v))
}

// InvestigationIDLTE applies the LTE predicate on the "investigation_id" field.
func InvestigationIDLTE(v string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldLTE(FieldInvestigationID, v))
}

// InvestigationIDContains applies the Contains predicate on the "investigation_id" field.
func InvestigationIDContains(v string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldContains(FieldInvestigationID, v))
}

// InvestigationIDHasPrefix applies the HasPrefix predicate on the "investigation_id" field.
func InvestigationIDHasPrefix(v string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldHasPrefix(FieldInvestigationID, v))
}

// InvestigationIDHasSuffix applies the HasSuffix predicate on the "investigation_id" field.
func InvestigationIDHasSuffix(v string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldHasSuffix(FieldInvestigationID, v))
}

// InvestigationIDEqualFold applies the EqualFold predicate on the "investigation_id" field.
func InvestigationIDEqualFold(v string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldEqualFold(FieldInvestigationID, v))
}

// InvestigationIDContainsFold applies the ContainsFold predicate on the "investigation_id" field.
func InvestigationIDContainsFold(v string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldContainsFold(FieldInvestigationID, v))
}

// FromEvidenceIDEQ applies the EQ predicate on the "from_evidence_id" field.
func FromEvidenceIDEQ(v string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldEQ(FieldFromEvidenceID, v))
}

// FromEvidenceIDNEQ applies the NEQ predicate on the "from_evidence_id" field.
func FromEvidenceIDNEQ(v string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldNEQ(FieldFromEvidenceID, v))
}

// FromEvidenceIDIn applies the In predicate on the "from_evidence_id" field.
func FromEvidenceIDIn(vs ...string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldIn(FieldFromEvidenceID, vs...))
}

// FromEvidenceIDNotIn applies the NotIn predicate on the "from_evidence_id" field.
func FromEvidenceIDNotIn(vs ...string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldNotIn(FieldFromEvidenceID, vs...))
}

// FromEvidenceIDGT applies the GT predicate on the "from_evidence_id" field.
func FromEvidenceIDGT(v string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldGT(FieldFromEvidenceID, v))
}

// FromEvidenceIDGTE applies the GTE predicate on the "from_evidence_id" field.
func FromEvidenceIDGTE(v string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldGTE(FieldFromEvidenceID, v))
}

// FromEvidenceIDLT applies the LT predicate on the "from_evidence_id" field.
func FromEvidenceIDLT(v string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldLT(FieldFromEvidenceID, v))
}

// FromEvidenceIDLTE applies the LTE predicate on the "from_evidence_id" field.
func FromEvidenceIDLTE(v string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldLTE(FieldFromEvidenceID, v))
}

// FromEvidenceIDContains applies the Contains predicate on the "from_evidence_id" field.
func FromEvidenceIDContains(v string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldContains(FieldFromEvidenceID, v))
}

// FromEvidenceIDHasPrefix applies the HasPrefix predicate on the "from_evidence_id" field.
func FromEvidenceIDHasPrefix(v string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldHasPrefix(FieldFromEvidenceID, v))
}

// FromEvidenceIDHasSuffix applies the HasSuffix predicate on the "from_evidence_id" field.
func FromEvidenceIDHasSuffix(v string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldHasSuffix(FieldFromEvidenceID, v))
}

// FromEvidenceIDEqualFold applies the EqualFold predicate on the "from_evidence_id" field.
func FromEvidenceIDEqualFold(v string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldEqualFold(FieldFromEvidenceID, v))
}

// FromEvidenceIDContainsFold applies the ContainsFold predicate on the "from_evidence_id" field.
func FromEvidenceIDContainsFold(v string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldContainsFold(FieldFromEvidenceID, v))
}

// ToEvidenceIDEQ applies the EQ predicate on the "to_evidence_id" field.
func ToEvidenceIDEQ(v string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldEQ(FieldToEvidenceID, v))
}

// ToEvidenceIDNEQ applies the NEQ predicate on the "to_evidence_id" field.
func ToEvidenceIDNEQ(v string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldNEQ(FieldToEvidenceID, v))
}

// ToEvidenceIDIn applies the In predicate on the "to_evidence_id" field.
func ToEvidenceIDIn(vs ...string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldIn(FieldToEvidenceID, vs...))
}

// ToEvidenceIDNotIn applies the NotIn predicate on the "to_evidence_id" field.
func ToEvidenceIDNotIn(vs ...string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldNotIn(FieldToEvidenceID, vs...))
}

// ToEvidenceIDGT applies the GT predicate on the "to_evidence_id" field.
func ToEvidenceIDGT(v string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldGT(FieldToEvidenceID, v))
}

// ToEvidenceIDGTE applies the GTE predicate on the "to_evidence_id" field.
func ToEvidenceIDGTE(v string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldGTE(FieldToEvidenceID, v))
}

// ToEvidenceIDLT applies the LT predicate on the "to_evidence_id" field.
func ToEvidenceIDLT(v string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldLT(FieldToEvidenceID, v))
}

// ToEvidenceIDLTE applies the LTE predicate on the "to_evidence_id" field.
func ToEvidenceIDLTE(v string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldLTE(FieldToEvidenceID, v))
}

// ToEvidenceIDContains applies the Contains predicate on the "to_evidence_id" field.
func ToEvidenceIDContains(v string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldContains(FieldToEvidenceID, v))
}

// ToEvidenceIDHasPrefix applies the HasPrefix predicate on the "to_evidence_id" field.
func ToEvidenceIDHasPrefix(v string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldHasPrefix(FieldToEvidenceID, v))
}

// ToEvidenceIDHasSuffix applies the HasSuffix predicate on the "to_evidence_id" field.
func ToEvidenceIDHasSuffix(v string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldHasSuffix(FieldToEvidenceID, v))
}

// ToEvidenceIDEqualFold applies the EqualFold predicate on the "to_evidence_id" field.
func ToEvidenceIDEqualFold(v string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldEqualFold(FieldToEvidenceID, v))
}

// ToEvidenceIDContainsFold applies the ContainsFold predicate on the "to_evidence_id" field.
func ToEvidenceIDContainsFold(v string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldContainsFold(FieldToEvidenceID, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v Kind) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v Kind) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...Kind) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...Kind) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldNotIn(FieldKind, vs...))
}

// StrengthEQ applies the EQ predicate on the "strength" field.
func StrengthEQ(v float64) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldEQ(FieldStrength, v))
}

// StrengthNEQ applies the NEQ predicate on the "strength" field.
func StrengthNEQ(v float64) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldNEQ(FieldStrength, v))
}

// StrengthIn applies the In predicate on the "strength" field.
func StrengthIn(vs ...float64) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldIn(FieldStrength, vs...))
}

// StrengthNotIn applies the NotIn predicate on the "strength" field.
func StrengthNotIn(vs ...float64) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldNotIn(FieldStrength, vs...))
}

// StrengthGT applies the GT predicate on the "strength" field.
func StrengthGT(v float64) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldGT(FieldStrength, v))
}

// StrengthGTE applies the GTE predicate on the "strength" field.
func StrengthGTE(v float64) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldGTE(FieldStrength, v))
}

// StrengthLT applies the LT predicate on the "strength" field.
func StrengthLT(v float64) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldLT(FieldStrength, v))
}

// StrengthLTE applies the LTE predicate on the "strength" field.
func StrengthLTE(v float64) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldLTE(FieldStrength, v))
}

// RationaleEQ applies the EQ predicate on the "rationale" field.
func RationaleEQ(v string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldEQ(FieldRationale, v))
}

// RationaleNEQ applies the NEQ predicate on the "rationale" field.
func RationaleNEQ(v string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldNEQ(FieldRationale, v))
}

// RationaleIn applies the In predicate on the "rationale" field.
func RationaleIn(vs ...string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldIn(FieldRationale, vs...))
}

// RationaleNotIn applies the NotIn predicate on the "rationale" field.
func RationaleNotIn(vs ...string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldNotIn(FieldRationale, vs...))
}

// RationaleGT applies the GT predicate on the "rationale" field.
func RationaleGT(v string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldGT(FieldRationale, v))
}

// RationaleGTE applies the GTE predicate on the "rationale" field.
func RationaleGTE(v string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldGTE(FieldRationale, v))
}

// RationaleLT applies the LT predicate on the "rationale" field.
func RationaleLT(v string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldLT(FieldRationale, v))
}

// RationaleLTE applies the LTE predicate on the "rationale" field.
func RationaleLTE(v string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldLTE(FieldRationale, v))
}

// RationaleContains applies the Contains predicate on the "rationale" field.
func RationaleContains(v string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldContains(FieldRationale, v))
}

// RationaleHasPrefix applies the HasPrefix predicate on the "rationale" field.
func RationaleHasPrefix(v string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldHasPrefix(FieldRationale, v))
}

// RationaleHasSuffix applies the HasSuffix predicate on the "rationale" field.
func RationaleHasSuffix(v string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldHasSuffix(FieldRationale, v))
}

// RationaleIsNil applies the IsNil predicate on the "rationale" field.
func RationaleIsNil() predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldIsNull(FieldRationale))
}

// RationaleNotNil applies the NotNil predicate on the "rationale" field.
func RationaleNotNil() predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldNotNull(FieldRationale))
}

// RationaleEqualFold applies the EqualFold predicate on the "rationale" field.
func RationaleEqualFold(v string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldEqualFold(FieldRationale, v))
}

// RationaleContainsFold applies the ContainsFold predicate on the "rationale" field.
func RationaleContainsFold(v string) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldContainsFold(FieldRationale, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.FieldLTE(FieldCreatedAt, v))
}

// HasFromEvidence applies the HasEdge predicate on the "from_evidence" edge.
func HasFromEvidence() predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, FromEvidenceTable, FromEvidenceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFromEvidenceWith applies the HasEdge predicate on the "from_evidence" edge with a given conditions (other predicates).
func HasFromEvidenceWith(preds ...predicate.Evidence) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(func(s *sql.Selector) {
		step := newFromEvidenceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EvidenceRelationship) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EvidenceRelationship) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EvidenceRelationship) predicate.EvidenceRelationship {
	return predicate.EvidenceRelationship(sql.NotPredicates(p))
}
