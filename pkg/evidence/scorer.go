// Package evidence holds the pure evidence-quality layer: the scorer, the
// deterministic correlator, and the search grammar. Nothing here touches
// storage or the clock; callers inject "now" and the candidate records.
package evidence

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/models"
)

// Score dimension names, used as breakdown keys.
const (
	DimSource       = "source"
	DimCompleteness = "completeness"
	DimFreshness    = "freshness"
	DimValidation   = "validation"
	DimConsistency  = "consistency"
	DimRelevance    = "relevance"
)

// Default dimension weights. They sum to 1.
var defaultWeights = map[string]float64{
	DimSource:       0.25,
	DimCompleteness: 0.20,
	DimFreshness:    0.15,
	DimValidation:   0.10,
	DimConsistency:  0.15,
	DimRelevance:    0.15,
}

// defaultReliability maps a normalized source family to its reliability.
// Unknown sources score 0.4.
var defaultReliability = map[string]float64{
	"siem":         0.9,
	"edr":          0.85,
	"threat_intel": 0.8,
	"alert":        0.75,
	"manual":       0.6,
}

const (
	freshnessTau      = 24 * time.Hour
	freshnessStaleAge = 30 * 24 * time.Hour
	freshnessStaleCap = 0.3
	futureSkewLimit   = time.Minute
)

// expectedFields lists the payload fields a complete record of each type
// carries.
var expectedFields = map[models.EvidenceType][]string{
	models.EvidenceTypeNetwork:    {"src_ip", "dst_ip", "protocol", "action"},
	models.EvidenceTypeProcess:    {"process", "pid", "parent", "command_line"},
	models.EvidenceTypeFile:       {"file_hash", "path", "action"},
	models.EvidenceTypeLog:        {"message", "host"},
	models.EvidenceTypeAlert:      {"rule", "severity"},
	models.EvidenceTypeEnrichment: {"indicator", "verdict", "confidence"},
}

// Score is the scorer's verdict on one record.
type Score struct {
	Overall   float64            `json:"overall"`
	Breakdown map[string]float64 `json:"breakdown"`
	Factors   []string           `json:"factors"`
}

// Scorer computes quality scores. It is pure: the only time source is the
// "now" passed to Score, and the reliability table is fixed at construction.
type Scorer struct {
	weights     map[string]float64
	reliability map[string]float64
}

// NewScorer creates a scorer with the default weights and reliability
// table, overlaid with any entries in reliabilityOverrides.
func NewScorer(reliabilityOverrides map[string]float64) *Scorer {
	rel := make(map[string]float64, len(defaultReliability)+len(reliabilityOverrides))
	for k, v := range defaultReliability {
		rel[k] = v
	}
	for k, v := range reliabilityOverrides {
		rel[strings.ToLower(k)] = v
	}
	return &Scorer{weights: defaultWeights, reliability: rel}
}

// Score rates one record. links are the record's relationships within its
// investigation; now anchors the freshness computation.
func (s *Scorer) Score(e *models.EvidenceRecord, links []models.Relationship, now time.Time) Score {
	breakdown := map[string]float64{
		DimSource:       s.sourceScore(e),
		DimCompleteness: completenessScore(e),
		DimFreshness:    freshnessScore(e, now),
		DimValidation:   validationScore(e),
		DimRelevance:    relevanceScore(e, links),
	}
	consistency, factors := consistencyScore(e, breakdown[DimCompleteness], now)
	breakdown[DimConsistency] = consistency

	var overall float64
	for dim, w := range s.weights {
		overall += w * breakdown[dim]
	}
	// Weighted sums of [0,1] dimensions stay in [0,1]; clamp guards float drift.
	overall = clamp01(overall)

	factors = append(factors, topFactors(breakdown)...)
	sort.Strings(factors)
	return Score{Overall: overall, Breakdown: breakdown, Factors: factors}
}

// sourceScore looks the source up in the reliability table: exact match
// first, then the family prefix before the first hyphen ("siem-primary" →
// "siem").
func (s *Scorer) sourceScore(e *models.EvidenceRecord) float64 {
	src := strings.ToLower(e.Source)
	if v, ok := s.reliability[src]; ok {
		return v
	}
	if idx := strings.IndexByte(src, '-'); idx > 0 {
		if v, ok := s.reliability[src[:idx]]; ok {
			return v
		}
	}
	return 0.4
}

func completenessScore(e *models.EvidenceRecord) float64 {
	expected := expectedFields[e.Type]
	var base float64
	if len(expected) == 0 {
		// No field expectations for this type; payload presence is enough.
		if len(e.Payload) > 0 {
			base = 0.7
		}
	} else {
		present := 0
		for _, f := range expected {
			if _, ok := e.Payload[f]; ok {
				present++
			}
		}
		base = float64(present) / float64(len(expected))
	}
	if len(e.Entities) > 0 {
		base += 0.1
	}
	if len(e.Tags) > 0 {
		base += 0.05
	}
	return clamp01(base)
}

func freshnessScore(e *models.EvidenceRecord, now time.Time) float64 {
	age := now.Sub(e.Timestamp)
	if age < 0 {
		age = 0
	}
	score := math.Exp(-float64(age) / float64(freshnessTau))
	if age > freshnessStaleAge && score > freshnessStaleCap {
		score = freshnessStaleCap
	}
	return score
}

func validationScore(e *models.EvidenceRecord) float64 {
	if e.Type == "" || e.Source == "" || e.Timestamp.IsZero() {
		return 0
	}
	if e.Confidence < 0 || e.Confidence > 1 {
		return 0
	}
	return 1
}

func consistencyScore(e *models.EvidenceRecord, completeness float64, now time.Time) (float64, []string) {
	score := 1.0
	var factors []string

	if missing := entitiesMissingFromMap(e); len(missing) > 0 {
		score -= 0.4
		factors = append(factors, fmt.Sprintf("consistency: payload entities not extracted: %s", strings.Join(missing, ", ")))
	}
	if e.Timestamp.After(now.Add(futureSkewLimit)) {
		score -= 0.4
		factors = append(factors, "consistency: timestamp in the future")
	}
	if e.Confidence > 0.8 && completeness < 0.3 {
		score -= 0.3
		factors = append(factors, "consistency: high confidence contradicted by low completeness")
	}
	return clamp01(score), factors
}

// entitiesMissingFromMap returns well-known payload entity fields whose
// values are absent from the record's entity map.
func entitiesMissingFromMap(e *models.EvidenceRecord) []string {
	checks := map[string]string{
		"src_ip":    "ip",
		"dst_ip":    "ip",
		"hostname":  "hostname",
		"user":      "user",
		"file_hash": "hash",
	}
	var missing []string
	for field, kind := range checks {
		raw, ok := e.Payload[field]
		if !ok {
			continue
		}
		value, ok := raw.(string)
		if !ok || value == "" {
			continue
		}
		if !e.HasEntity(kind, value) {
			missing = append(missing, field)
		}
	}
	sort.Strings(missing)
	return missing
}

// relevanceKindWeight values stronger link kinds higher.
var relevanceKindWeight = map[models.RelationshipKind]float64{
	models.RelationshipCausal:     0.5,
	models.RelationshipBehavioral: 0.4,
	models.RelationshipEntity:     0.3,
	models.RelationshipTemporal:   0.2,
}

func relevanceScore(e *models.EvidenceRecord, links []models.Relationship) float64 {
	var total float64
	for _, l := range links {
		if l.FromEvidenceID != e.ID && l.ToEvidenceID != e.ID {
			continue
		}
		total += relevanceKindWeight[l.Kind] * math.Max(l.Strength, 0.1)
	}
	return clamp01(total)
}

// topFactors names the dimensions dragging the score down.
func topFactors(breakdown map[string]float64) []string {
	var out []string
	for dim, v := range breakdown {
		if v < 0.5 {
			out = append(out, fmt.Sprintf("low %s (%.2f)", dim, v))
		}
	}
	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
