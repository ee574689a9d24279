package evidence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/models"
)

var searchNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func searchCorpus() []*models.EvidenceRecord {
	return []*models.EvidenceRecord{
		{
			ID: "ev-1", Type: models.EvidenceTypeNetwork, Source: "siem-primary",
			Confidence: 0.9, Timestamp: searchNow.Add(-30 * time.Minute),
			Entities: map[string][]string{"ip": {"203.0.113.9"}},
			Payload:  map[string]any{"action": "deny"},
		},
		{
			ID: "ev-2", Type: models.EvidenceTypeProcess, Source: "edr-main",
			Confidence: 0.6, Timestamp: searchNow.Add(-2 * time.Hour),
			Entities: map[string][]string{"hostname": {"web-01"}},
			Payload:  map[string]any{"process": "powershell.exe"},
		},
		{
			ID: "ev-3", Type: models.EvidenceTypeEnrichment, Source: "threat_intel-feed",
			Confidence: 0.95, Timestamp: searchNow.Add(-10 * 24 * time.Hour),
			Entities: map[string][]string{"ip": {"203.0.113.9"}},
			Payload:  map[string]any{"verdict": "malicious"},
			Tags:     []string{"botnet"},
		},
	}
}

func TestParseQueryGrammar(t *testing.T) {
	q, err := ParseQuery("type:network source:siem-primary confidence:>0.8 entity:ip:203.0.113.9 deny")
	require.NoError(t, err)
	assert.Equal(t, []models.EvidenceType{models.EvidenceTypeNetwork}, q.Types)
	assert.Equal(t, []string{"siem-primary"}, q.Sources)
	assert.True(t, q.HasConfidence)
	assert.InDelta(t, 0.8, q.ConfidenceMin, 1e-9)
	assert.Equal(t, []EntityFilter{{Kind: "ip", Value: "203.0.113.9"}}, q.Entities)
	assert.Equal(t, []string{"deny"}, q.FreeText)
}

func TestParseQueryErrors(t *testing.T) {
	for _, raw := range []string{"type:", "source:", "confidence:>abc", "confidence:>1.5", "entity:ip"} {
		_, err := ParseQuery(raw)
		assert.Error(t, err, "query %q", raw)
	}
}

func TestFilterByType(t *testing.T) {
	q, err := ParseQuery("type:network")
	require.NoError(t, err)
	got := q.Filter(searchCorpus())
	require.Len(t, got, 1)
	assert.Equal(t, "ev-1", got[0].ID)
}

func TestFilterByEntityAndConfidence(t *testing.T) {
	q, err := ParseQuery("entity:ip:203.0.113.9 confidence:>0.92")
	require.NoError(t, err)
	got := q.Filter(searchCorpus())
	require.Len(t, got, 1)
	assert.Equal(t, "ev-3", got[0].ID)
}

func TestFilterFreeTextOverPayloadAndTags(t *testing.T) {
	q, err := ParseQuery("powershell")
	require.NoError(t, err)
	got := q.Filter(searchCorpus())
	require.Len(t, got, 1)
	assert.Equal(t, "ev-2", got[0].ID)

	q, err = ParseQuery("botnet")
	require.NoError(t, err)
	got = q.Filter(searchCorpus())
	require.Len(t, got, 1)
	assert.Equal(t, "ev-3", got[0].ID)
}

func TestMultipleTypeTermsAreDisjunctive(t *testing.T) {
	q, err := ParseQuery("type:network type:process")
	require.NoError(t, err)
	got := q.Filter(searchCorpus())
	assert.Len(t, got, 2)
}

func TestEmptyQueryMatchesAll(t *testing.T) {
	q, err := ParseQuery("")
	require.NoError(t, err)
	assert.Len(t, q.Filter(searchCorpus()), 3)
}

func TestBuildFacets(t *testing.T) {
	f := BuildFacets(searchCorpus(), searchNow)

	types := map[string]int{}
	for _, b := range f.Types {
		types[b.Value] = b.Count
	}
	assert.Equal(t, map[string]int{"network": 1, "process": 1, "enrichment": 1}, types)

	conf := map[string]int{}
	for _, b := range f.Confidence {
		conf[b.Value] = b.Count
	}
	assert.Equal(t, 2, conf["0.75-1.00"])
	assert.Equal(t, 1, conf["0.50-0.75"])

	ranges := map[string]int{}
	for _, b := range f.TimeRanges {
		ranges[b.Value] = b.Count
	}
	assert.Equal(t, 1, ranges["last_hour"])
	assert.Equal(t, 1, ranges["last_day"])
	assert.Equal(t, 1, ranges["older"])
}
