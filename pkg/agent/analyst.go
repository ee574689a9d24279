package agent

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/models"
)

// degradedConfidenceCap bounds verdict confidence whenever data sources
// were missing during the investigation.
const degradedConfidenceCap = 0.75

// Analyst weighs the accumulated evidence into a verdict.
type Analyst struct {
	BaseAgent
}

// NewAnalyst creates an analyst.
func NewAnalyst(opts BaseOptions) *Analyst {
	return &Analyst{BaseAgent: NewBase("analyst", opts)}
}

// Validate checks the analysis context.
func (a *Analyst) Validate(agentCtx *Context) ValidationResult {
	var errs []string
	if agentCtx.InvestigationID == "" {
		errs = append(errs, "investigationId is required")
	}
	return validation(errs)
}

// Analyze produces the verdict. With verdictCorrection feedback present,
// the corrected classification wins and the reasoning records the override.
func (a *Analyst) Analyze(ctx context.Context, agentCtx *Context) (*models.Verdict, error) {
	if v := a.Validate(agentCtx); !v.Valid {
		return nil, fmt.Errorf("analyst validation: %v", v.Errors)
	}
	out, _, err := a.run(ctx, func(context.Context) (any, error) {
		return a.analyze(agentCtx), nil
	})
	if err != nil {
		return nil, err
	}
	return out.(*models.Verdict), nil
}

func (a *Analyst) analyze(agentCtx *Context) *models.Verdict {
	signals := collectSignals(agentCtx)
	score := signals.maliciousScore()

	verdict := &models.Verdict{
		Confidence:  signals.confidence(),
		Limitations: normalizeLimitations(agentCtx.Limitations),
	}
	switch {
	case score >= 0.7:
		verdict.Classification = models.VerdictTruePositive
	case score <= 0.3 && len(agentCtx.Evidence) > 0:
		verdict.Classification = models.VerdictFalsePositive
	default:
		verdict.Classification = models.VerdictRequiresReview
	}

	var reasoning []string
	reasoning = append(reasoning, fmt.Sprintf(
		"%d evidence records from %d sources, malicious signal %.2f",
		len(agentCtx.Evidence), signals.sourceCount, score))
	if signals.maliciousIndicators > 0 {
		reasoning = append(reasoning, fmt.Sprintf("%d indicators rated malicious or suspicious", signals.maliciousIndicators))
	}
	if signals.correlations > 0 {
		reasoning = append(reasoning, fmt.Sprintf("%d correlations between evidence items", signals.correlations))
	}

	if len(verdict.Limitations) > 0 {
		// Degraded inputs cap confidence below the trust threshold.
		if verdict.Confidence > degradedConfidenceCap {
			verdict.Confidence = degradedConfidenceCap
		}
		if len(agentCtx.Evidence) == 0 {
			verdict.Confidence = minFloat(verdict.Confidence, 0.4)
			verdict.Classification = models.VerdictRequiresReview
		}
		reasoning = append(reasoning, fmt.Sprintf(
			"verdict reached with limited data sources (%s)", strings.Join(verdict.Limitations, ", ")))
	}

	if agentCtx.CorrectedVerdict != nil && agentCtx.CorrectedVerdict.Classification != "" {
		verdict.Classification = agentCtx.CorrectedVerdict.Classification
		verdict.Confidence = maxFloat(verdict.Confidence, 0.9)
		reasoning = append(reasoning, fmt.Sprintf(
			"classification overridden to %s by analyst feedback", verdict.Classification))
	}

	verdict.Reasoning = strings.Join(reasoning, "; ")
	return verdict
}

type signals struct {
	sourceCount         int
	maliciousIndicators int
	benignIndicators    int
	correlations        int
	meanQuality         float64
	severityWeight      float64
	evidenceCount       int
}

func collectSignals(agentCtx *Context) signals {
	s := signals{correlations: len(agentCtx.Links), evidenceCount: len(agentCtx.Evidence)}

	sources := make(map[string]bool)
	var qualitySum float64
	for _, e := range agentCtx.Evidence {
		sources[e.Source] = true
		qualitySum += e.QualityScore
		switch strings.ToLower(stringField(e.Payload, "verdict")) {
		case "malicious", "suspicious":
			s.maliciousIndicators++
		case "benign":
			s.benignIndicators++
		}
		if stringField(e.Payload, "action") == "deny" {
			s.maliciousIndicators++
		}
	}
	s.sourceCount = len(sources)
	if len(agentCtx.Evidence) > 0 {
		s.meanQuality = qualitySum / float64(len(agentCtx.Evidence))
	}

	switch agentCtx.Alert.Severity {
	case models.SeverityCritical:
		s.severityWeight = 1.0
	case models.SeverityHigh:
		s.severityWeight = 0.8
	case models.SeverityMedium:
		s.severityWeight = 0.5
	default:
		s.severityWeight = 0.3
	}
	return s
}

// maliciousScore folds the indicator ratio, correlation density, and alert
// severity into a [0,1] signal.
func (s signals) maliciousScore() float64 {
	indicators := s.maliciousIndicators + s.benignIndicators
	var indicatorRatio float64
	if indicators > 0 {
		indicatorRatio = float64(s.maliciousIndicators) / float64(indicators)
	}
	correlationSignal := minFloat(float64(s.correlations)/3.0, 1.0)

	score := 0.5*indicatorRatio + 0.25*correlationSignal + 0.25*s.severityWeight
	if s.evidenceCount == 0 {
		// Nothing observed: severity alone cannot convict.
		score = minFloat(score, 0.4)
	}
	return score
}

// confidence reflects how much evidence backs the verdict, not which way
// it points.
func (s signals) confidence() float64 {
	base := 0.3
	base += 0.1 * minFloat(float64(s.sourceCount), 3)
	base += 0.2 * s.meanQuality
	base += 0.1 * minFloat(float64(s.correlations)/3.0, 1.0)
	if s.evidenceCount == 0 {
		return 0.2
	}
	return minFloat(base, 0.95)
}

func normalizeLimitations(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(in))
	var out []string
	for _, l := range in {
		if l == "" || seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
