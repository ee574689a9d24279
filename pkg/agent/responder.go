package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/models"
)

// Responder turns a verdict into concrete response recommendations.
// Containment actions on live assets require human approval.
type Responder struct {
	BaseAgent
}

// NewResponder creates a responder.
func NewResponder(opts BaseOptions) *Responder {
	return &Responder{BaseAgent: NewBase("responder", opts)}
}

// Validate checks the response context.
func (r *Responder) Validate(agentCtx *Context) ValidationResult {
	var errs []string
	if agentCtx.InvestigationID == "" {
		errs = append(errs, "investigationId is required")
	}
	if agentCtx.Verdict == nil {
		errs = append(errs, "verdict is required")
	}
	return validation(errs)
}

// Respond produces the recommendations for the verdict.
func (r *Responder) Respond(ctx context.Context, agentCtx *Context) (*models.Response, error) {
	if v := r.Validate(agentCtx); !v.Valid {
		return nil, fmt.Errorf("responder validation: %v", v.Errors)
	}
	out, _, err := r.run(ctx, func(context.Context) (any, error) {
		return r.respond(agentCtx), nil
	})
	if err != nil {
		return nil, err
	}
	return out.(*models.Response), nil
}

func (r *Responder) respond(agentCtx *Context) *models.Response {
	verdict := agentCtx.Verdict
	if agentCtx.CorrectedVerdict != nil && agentCtx.CorrectedVerdict.Classification != "" {
		corrected := *verdict
		corrected.Classification = agentCtx.CorrectedVerdict.Classification
		verdict = &corrected
	}

	resp := &models.Response{}
	urgent := agentCtx.Alert.Severity == models.SeverityCritical || agentCtx.Alert.Severity == models.SeverityHigh

	switch verdict.Classification {
	case models.VerdictTruePositive:
		resp.Recommendations = append(resp.Recommendations, r.containment(agentCtx, urgent)...)
		resp.Summary = fmt.Sprintf("Confirmed %s severity incident; %d containment actions recommended",
			agentCtx.Alert.Severity, len(resp.Recommendations))

	case models.VerdictFalsePositive:
		resp.Recommendations = append(resp.Recommendations,
			models.Recommendation{
				Title:       "Close alert as false positive",
				Description: "Investigation found no corroborating activity.",
				Priority:    "low",
				Actions:     []string{"close_alert"},
			},
			models.Recommendation{
				Title:       "Review detection rule",
				Description: fmt.Sprintf("Rule that produced alert %s may need tuning.", agentCtx.Alert.ID),
				Priority:    "low",
				Actions:     []string{"tune_rule"},
			})
		resp.Summary = "No malicious activity confirmed; alert closed with tuning suggestion"

	default: // requires review
		resp.Recommendations = append(resp.Recommendations, models.Recommendation{
			Title:       "Escalate to senior analyst",
			Description: escalationReason(verdict),
			Priority:    "high",
			Actions:     []string{"escalate"},
		})
		resp.Summary = "Inconclusive verdict; escalated for human review"
	}

	// Degraded investigations always escalate, whatever the classification.
	if len(verdict.Limitations) > 0 && verdict.Confidence < 0.5 && !hasEscalation(resp.Recommendations) {
		resp.Recommendations = append(resp.Recommendations, models.Recommendation{
			Title:       "Escalate to senior analyst",
			Description: escalationReason(verdict),
			Priority:    "high",
			Actions:     []string{"escalate"},
		})
	}
	return resp
}

// containment builds the true-positive action list from the entities the
// investigation touched.
func (r *Responder) containment(agentCtx *Context, urgent bool) []models.Recommendation {
	priority := "medium"
	if urgent {
		priority = "high"
	}

	var out []models.Recommendation
	if host := firstEntity(agentCtx, "hostname"); host != "" {
		out = append(out, models.Recommendation{
			Title:            fmt.Sprintf("Isolate host %s", host),
			Description:      "Quarantine the endpoint pending forensic review.",
			Priority:         priority,
			Actions:          []string{"isolate_host"},
			RequiresApproval: true,
		})
	}
	if ip := firstEntity(agentCtx, "ip"); ip != "" {
		out = append(out, models.Recommendation{
			Title:            fmt.Sprintf("Block IP %s at the perimeter", ip),
			Description:      "Deny inbound and outbound traffic to the indicator.",
			Priority:         priority,
			Actions:          []string{"block_ip"},
			RequiresApproval: urgent,
		})
	}
	if user := firstEntity(agentCtx, "user"); user != "" {
		out = append(out, models.Recommendation{
			Title:       fmt.Sprintf("Reset credentials for %s", user),
			Description: "Force password rotation and revoke active sessions.",
			Priority:    priority,
			Actions:     []string{"reset_credentials"},
		})
	}
	if len(out) == 0 {
		out = append(out, models.Recommendation{
			Title:       "Open incident for manual containment",
			Description: "No actionable entities extracted; containment requires analyst judgment.",
			Priority:    priority,
			Actions:     []string{"open_incident"},
		})
	}
	return out
}

// firstEntity returns the lexically-first value of the kind across alert
// and evidence entities.
func firstEntity(agentCtx *Context, kind string) string {
	best := ""
	consider := func(v string) {
		if v != "" && (best == "" || v < best) {
			best = v
		}
	}
	for _, v := range agentCtx.Alert.Entities[kind] {
		consider(v)
	}
	for _, e := range agentCtx.Evidence {
		for _, v := range e.Entities[kind] {
			consider(v)
		}
	}
	return best
}

func escalationReason(verdict *models.Verdict) string {
	if len(verdict.Limitations) > 0 {
		return fmt.Sprintf("Verdict confidence %.2f with limited data sources (%s).",
			verdict.Confidence, strings.Join(verdict.Limitations, ", "))
	}
	return fmt.Sprintf("Verdict confidence %.2f is below the automatic action threshold.", verdict.Confidence)
}

func hasEscalation(recs []models.Recommendation) bool {
	for _, rec := range recs {
		for _, a := range rec.Actions {
			if a == "escalate" {
				return true
			}
		}
	}
	return false
}
