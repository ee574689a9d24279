package evidence

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/models"
)

var scoreNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func networkRecord() *models.EvidenceRecord {
	return &models.EvidenceRecord{
		ID:         "ev-1",
		Type:       models.EvidenceTypeNetwork,
		Source:     "siem-primary",
		Timestamp:  scoreNow.Add(-10 * time.Minute),
		Confidence: 0.8,
		Payload: map[string]any{
			"src_ip":   "192.168.1.100",
			"dst_ip":   "10.0.0.5",
			"protocol": "tcp",
			"action":   "deny",
		},
		Entities: map[string][]string{"ip": {"192.168.1.100", "10.0.0.5"}},
		Tags:     []string{"firewall"},
	}
}

func TestScoreIsPureAndDeterministic(t *testing.T) {
	s := NewScorer(nil)
	e := networkRecord()
	a := s.Score(e, nil, scoreNow)
	b := s.Score(e, nil, scoreNow)
	assert.Equal(t, a, b)
}

func TestOverallIsWeightedSum(t *testing.T) {
	s := NewScorer(nil)
	got := s.Score(networkRecord(), nil, scoreNow)

	want := 0.25*got.Breakdown[DimSource] +
		0.20*got.Breakdown[DimCompleteness] +
		0.15*got.Breakdown[DimFreshness] +
		0.10*got.Breakdown[DimValidation] +
		0.15*got.Breakdown[DimConsistency] +
		0.15*got.Breakdown[DimRelevance]
	assert.InDelta(t, want, got.Overall, 1e-9)
	assert.GreaterOrEqual(t, got.Overall, 0.0)
	assert.LessOrEqual(t, got.Overall, 1.0)
}

func TestSourceReliabilityLookup(t *testing.T) {
	s := NewScorer(nil)

	e := networkRecord()
	e.Source = "siem-primary"
	assert.InDelta(t, 0.9, s.Score(e, nil, scoreNow).Breakdown[DimSource], 1e-9, "family prefix match")

	e.Source = "edr"
	assert.InDelta(t, 0.85, s.Score(e, nil, scoreNow).Breakdown[DimSource], 1e-9)

	e.Source = "mystery-feed"
	assert.InDelta(t, 0.4, s.Score(e, nil, scoreNow).Breakdown[DimSource], 1e-9, "unknown source")

	custom := NewScorer(map[string]float64{"mystery": 0.7})
	assert.InDelta(t, 0.7, custom.Score(e, nil, scoreNow).Breakdown[DimSource], 1e-9)
}

func TestCompletenessFractionOfExpectedFields(t *testing.T) {
	s := NewScorer(nil)

	e := networkRecord()
	delete(e.Payload, "protocol")
	delete(e.Payload, "action")
	e.Entities = nil
	e.Tags = nil
	// 2 of 4 expected network fields, no bonuses.
	assert.InDelta(t, 0.5, s.Score(e, nil, scoreNow).Breakdown[DimCompleteness], 1e-9)

	e.Entities = map[string][]string{"ip": {"192.168.1.100", "10.0.0.5"}}
	e.Tags = []string{"firewall"}
	assert.InDelta(t, 0.65, s.Score(e, nil, scoreNow).Breakdown[DimCompleteness], 1e-9)
}

func TestFreshnessDecay(t *testing.T) {
	s := NewScorer(nil)
	e := networkRecord()

	e.Timestamp = scoreNow
	assert.InDelta(t, 1.0, s.Score(e, nil, scoreNow).Breakdown[DimFreshness], 1e-9)

	e.Timestamp = scoreNow.Add(-24 * time.Hour)
	assert.InDelta(t, math.Exp(-1), s.Score(e, nil, scoreNow).Breakdown[DimFreshness], 1e-9)

	e.Timestamp = scoreNow.Add(-31 * 24 * time.Hour)
	assert.LessOrEqual(t, s.Score(e, nil, scoreNow).Breakdown[DimFreshness], 0.3)
}

func TestValidationStructuralChecks(t *testing.T) {
	s := NewScorer(nil)

	e := networkRecord()
	assert.InDelta(t, 1.0, s.Score(e, nil, scoreNow).Breakdown[DimValidation], 1e-9)

	e.Source = ""
	assert.InDelta(t, 0.0, s.Score(e, nil, scoreNow).Breakdown[DimValidation], 1e-9)

	e = networkRecord()
	e.Confidence = 1.5
	assert.InDelta(t, 0.0, s.Score(e, nil, scoreNow).Breakdown[DimValidation], 1e-9)
}

func TestConsistencyPenalties(t *testing.T) {
	s := NewScorer(nil)

	e := networkRecord()
	assert.InDelta(t, 1.0, s.Score(e, nil, scoreNow).Breakdown[DimConsistency], 1e-9)

	// Payload names an IP the extractor never recorded.
	e.Entities = map[string][]string{"ip": {"10.0.0.5"}}
	got := s.Score(e, nil, scoreNow)
	assert.InDelta(t, 0.6, got.Breakdown[DimConsistency], 1e-9)
	require.NotEmpty(t, got.Factors)

	// Future timestamp beyond the skew allowance.
	e = networkRecord()
	e.Timestamp = scoreNow.Add(2 * time.Minute)
	assert.InDelta(t, 0.6, s.Score(e, nil, scoreNow).Breakdown[DimConsistency], 1e-9)

	// High confidence on a near-empty record.
	e = networkRecord()
	e.Payload = map[string]any{}
	e.Entities = nil
	e.Tags = nil
	e.Confidence = 0.95
	assert.InDelta(t, 0.7, s.Score(e, nil, scoreNow).Breakdown[DimConsistency], 1e-9)
}

func TestRelevanceFromLinks(t *testing.T) {
	s := NewScorer(nil)
	e := networkRecord()

	assert.InDelta(t, 0.0, s.Score(e, nil, scoreNow).Breakdown[DimRelevance], 1e-9)

	links := []models.Relationship{
		{FromEvidenceID: "ev-1", ToEvidenceID: "ev-2", Kind: models.RelationshipEntity, Strength: 1.0},
		{FromEvidenceID: "ev-3", ToEvidenceID: "ev-1", Kind: models.RelationshipTemporal, Strength: 0.5},
		{FromEvidenceID: "ev-4", ToEvidenceID: "ev-5", Kind: models.RelationshipCausal, Strength: 1.0}, // not ours
	}
	got := s.Score(e, links, scoreNow).Breakdown[DimRelevance]
	assert.InDelta(t, 0.3*1.0+0.2*0.5, got, 1e-9)
}

func TestLowDimensionsReportedAsFactors(t *testing.T) {
	s := NewScorer(nil)
	e := networkRecord()
	e.Source = "mystery"
	got := s.Score(e, nil, scoreNow)
	assert.Contains(t, got.Factors, "low source (0.40)")
}
