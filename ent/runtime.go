// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/NeoCh3n/NeonharbourSecurity-sub001/ent/approvalrequest"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/ent/connectordef"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/ent/evidence"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/ent/evidencerelationship"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/ent/feedback"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/ent/investigation"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/ent/planstep"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/ent/runevent"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	approvalrequestFields := schema.ApprovalRequest{}.Fields()
	_ = approvalrequestFields
	// approvalrequestDescVerified is the schema descriptor for verified field.
	approvalrequestDescVerified := approvalrequestFields[8].Descriptor()
	// approvalrequest.DefaultVerified holds the default value on creation for the verified field.
	approvalrequest.DefaultVerified = approvalrequestDescVerified.Default.(bool)
	// approvalrequestDescRequestedAt is the schema descriptor for requested_at field.
	approvalrequestDescRequestedAt := approvalrequestFields[9].Descriptor()
	// approvalrequest.DefaultRequestedAt holds the default value on creation for the requested_at field.
	approvalrequest.DefaultRequestedAt = approvalrequestDescRequestedAt.Default.(func() time.Time)
	connectordefFields := schema.ConnectorDef{}.Fields()
	_ = connectordefFields
	// connectordefDescPriority is the schema descriptor for priority field.
	connectordefDescPriority := connectordefFields[4].Descriptor()
	// connectordef.DefaultPriority holds the default value on creation for the priority field.
	connectordef.DefaultPriority = connectordefDescPriority.Default.(int)
	// connectordefDescEnabled is the schema descriptor for enabled field.
	connectordefDescEnabled := connectordefFields[8].Descriptor()
	// connectordef.DefaultEnabled holds the default value on creation for the enabled field.
	connectordef.DefaultEnabled = connectordefDescEnabled.Default.(bool)
	// connectordefDescCreatedAt is the schema descriptor for created_at field.
	connectordefDescCreatedAt := connectordefFields[10].Descriptor()
	// connectordef.DefaultCreatedAt holds the default value on creation for the created_at field.
	connectordef.DefaultCreatedAt = connectordefDescCreatedAt.Default.(func() time.Time)
	// connectordefDescUpdatedAt is the schema descriptor for updated_at field.
	connectordefDescUpdatedAt := connectordefFields[11].Descriptor()
	// connectordef.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	connectordef.DefaultUpdatedAt = connectordefDescUpdatedAt.Default.(func() time.Time)
	// connectordef.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	connectordef.UpdateDefaultUpdatedAt = connectordefDescUpdatedAt.UpdateDefault.(func() time.Time)
	evidenceFields := schema.Evidence{}.Fields()
	_ = evidenceFields
	// evidenceDescConfidence is the schema descriptor for confidence field.
	evidenceDescConfidence := evidenceFields[9].Descriptor()
	// evidence.DefaultConfidence holds the default value on creation for the confidence field.
	evidence.DefaultConfidence = evidenceDescConfidence.Default.(float64)
	// evidenceDescQualityScore is the schema descriptor for quality_score field.
	evidenceDescQualityScore := evidenceFields[10].Descriptor()
	// evidence.DefaultQualityScore holds the default value on creation for the quality_score field.
	evidence.DefaultQualityScore = evidenceDescQualityScore.Default.(float64)
	// evidenceDescCreatedAt is the schema descriptor for created_at field.
	evidenceDescCreatedAt := evidenceFields[14].Descriptor()
	// evidence.DefaultCreatedAt holds the default value on creation for the created_at field.
	evidence.DefaultCreatedAt = evidenceDescCreatedAt.Default.(func() time.Time)
	evidencerelationshipFields := schema.EvidenceRelationship{}.Fields()
	_ = evidencerelationshipFields
	// evidencerelationshipDescCreatedAt is the schema descriptor for created_at field.
	evidencerelationshipDescCreatedAt := evidencerelationshipFields[8].Descriptor()
	// evidencerelationship.DefaultCreatedAt holds the default value on creation for the created_at field.
	evidencerelationship.DefaultCreatedAt = evidencerelationshipDescCreatedAt.Default.(func() time.Time)
	feedbackFields := schema.Feedback{}.Fields()
	_ = feedbackFields
	// feedbackDescCreatedAt is the schema descriptor for created_at field.
	feedbackDescCreatedAt := feedbackFields[6].Descriptor()
	// feedback.DefaultCreatedAt holds the default value on creation for the created_at field.
	feedback.DefaultCreatedAt = feedbackDescCreatedAt.Default.(func() time.Time)
	investigationFields := schema.Investigation{}.Fields()
	_ = investigationFields
	// investigationDescPriority is the schema descriptor for priority field.
	investigationDescPriority := investigationFields[11].Descriptor()
	// investigation.DefaultPriority holds the default value on creation for the priority field.
	investigation.DefaultPriority = investigationDescPriority.Default.(int)
	// investigationDescTimeoutMs is the schema descriptor for timeout_ms field.
	investigationDescTimeoutMs := investigationFields[13].Descriptor()
	// investigation.DefaultTimeoutMs holds the default value on creation for the timeout_ms field.
	investigation.DefaultTimeoutMs = investigationDescTimeoutMs.Default.(int64)
	// investigationDescCreatedAt is the schema descriptor for created_at field.
	investigationDescCreatedAt := investigationFields[14].Descriptor()
	// investigation.DefaultCreatedAt holds the default value on creation for the created_at field.
	investigation.DefaultCreatedAt = investigationDescCreatedAt.Default.(func() time.Time)
	planstepFields := schema.PlanStep{}.Fields()
	_ = planstepFields
	// planstepDescTimeoutMs is the schema descriptor for timeout_ms field.
	planstepDescTimeoutMs := planstepFields[9].Descriptor()
	// planstep.DefaultTimeoutMs holds the default value on creation for the timeout_ms field.
	planstep.DefaultTimeoutMs = planstepDescTimeoutMs.Default.(int64)
	// planstepDescMaxRetries is the schema descriptor for max_retries field.
	planstepDescMaxRetries := planstepFields[10].Descriptor()
	// planstep.DefaultMaxRetries holds the default value on creation for the max_retries field.
	planstep.DefaultMaxRetries = planstepDescMaxRetries.Default.(int)
	// planstepDescCritical is the schema descriptor for critical field.
	planstepDescCritical := planstepFields[11].Descriptor()
	// planstep.DefaultCritical holds the default value on creation for the critical field.
	planstep.DefaultCritical = planstepDescCritical.Default.(bool)
	// planstepDescRetryCount is the schema descriptor for retry_count field.
	planstepDescRetryCount := planstepFields[15].Descriptor()
	// planstep.DefaultRetryCount holds the default value on creation for the retry_count field.
	planstep.DefaultRetryCount = planstepDescRetryCount.Default.(int)
	// planstepDescCreatedAt is the schema descriptor for created_at field.
	planstepDescCreatedAt := planstepFields[18].Descriptor()
	// planstep.DefaultCreatedAt holds the default value on creation for the created_at field.
	planstep.DefaultCreatedAt = planstepDescCreatedAt.Default.(func() time.Time)
	runeventFields := schema.RunEvent{}.Fields()
	_ = runeventFields
	// runeventDescTs is the schema descriptor for ts field.
	runeventDescTs := runeventFields[5].Descriptor()
	// runevent.DefaultTs holds the default value on creation for the ts field.
	runevent.DefaultTs = runeventDescTs.Default.(func() time.Time)
}
