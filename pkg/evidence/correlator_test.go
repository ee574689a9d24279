package evidence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/models"
)

var corrBase = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func record(id string, at time.Time, entities map[string][]string) *models.EvidenceRecord {
	return &models.EvidenceRecord{
		ID:        id,
		Type:      models.EvidenceTypeNetwork,
		Source:    "siem",
		Timestamp: at,
		Entities:  entities,
	}
}

func linksOfKind(links []models.Relationship, kind models.RelationshipKind) []models.Relationship {
	var out []models.Relationship
	for _, l := range links {
		if l.Kind == kind {
			out = append(out, l)
		}
	}
	return out
}

func TestTemporalLinkWithinWindow(t *testing.T) {
	c := NewCorrelator(CorrelatorOptions{})
	links := c.Correlate([]*models.EvidenceRecord{
		record("ev-1", corrBase, nil),
		record("ev-2", corrBase.Add(time.Minute), nil),
		record("ev-3", corrBase.Add(10*time.Minute), nil),
	})

	temporal := linksOfKind(links, models.RelationshipTemporal)
	require.Len(t, temporal, 1, "only the pair inside the 5 minute window links")
	assert.Equal(t, "ev-1", temporal[0].FromEvidenceID)
	assert.Equal(t, "ev-2", temporal[0].ToEvidenceID)
	// strength = 1 - 1min/5min
	assert.InDelta(t, 0.8, temporal[0].Strength, 1e-9)
}

func TestTemporalStrengthDecaysLinearly(t *testing.T) {
	c := NewCorrelator(CorrelatorOptions{TemporalWindow: 4 * time.Minute})
	links := c.Correlate([]*models.EvidenceRecord{
		record("ev-1", corrBase, nil),
		record("ev-2", corrBase.Add(3*time.Minute), nil),
	})
	temporal := linksOfKind(links, models.RelationshipTemporal)
	require.Len(t, temporal, 1)
	assert.InDelta(t, 0.25, temporal[0].Strength, 1e-9)
}

func TestEntityLinkSharedValues(t *testing.T) {
	c := NewCorrelator(CorrelatorOptions{})
	// Far apart in time so only entity linking applies.
	links := c.Correlate([]*models.EvidenceRecord{
		record("ev-1", corrBase, map[string][]string{"ip": {"10.0.0.5", "192.168.1.100"}}),
		record("ev-2", corrBase.Add(time.Hour), map[string][]string{"ip": {"10.0.0.5"}, "hostname": {"web-01"}}),
		record("ev-3", corrBase.Add(2*time.Hour), map[string][]string{"ip": {"172.16.0.1"}}),
	})

	entity := linksOfKind(links, models.RelationshipEntity)
	require.Len(t, entity, 1)
	assert.Equal(t, "ev-1", entity[0].FromEvidenceID)
	assert.Equal(t, "ev-2", entity[0].ToEvidenceID)
	// one shared entity over maxOverlap 3
	assert.InDelta(t, 1.0/3.0, entity[0].Strength, 1e-9)
	assert.Contains(t, entity[0].Rationale, "ip:10.0.0.5")
}

func TestEntityStrengthCapsAtOne(t *testing.T) {
	c := NewCorrelator(CorrelatorOptions{MaxOverlap: 2})
	shared := map[string][]string{"ip": {"10.0.0.5", "10.0.0.6", "10.0.0.7"}}
	links := c.Correlate([]*models.EvidenceRecord{
		record("ev-1", corrBase, shared),
		record("ev-2", corrBase.Add(time.Hour), shared),
	})
	entity := linksOfKind(links, models.RelationshipEntity)
	require.Len(t, entity, 1)
	assert.InDelta(t, 1.0, entity[0].Strength, 1e-9)
}

func TestBehavioralJaccardOverTechniques(t *testing.T) {
	c := NewCorrelator(CorrelatorOptions{})
	a := record("ev-1", corrBase, nil)
	a.Payload = map[string]any{"mitre_techniques": []string{"T1059", "T1105"}}
	b := record("ev-2", corrBase.Add(time.Hour), nil)
	b.Payload = map[string]any{"mitre_techniques": []any{"T1059", "T1486"}}
	noMarkers := record("ev-3", corrBase.Add(2*time.Hour), nil)

	links := c.Correlate([]*models.EvidenceRecord{a, b, noMarkers})
	behavioral := linksOfKind(links, models.RelationshipBehavioral)
	require.Len(t, behavioral, 1)
	// |{T1059}| / |{T1059,T1105,T1486}|
	assert.InDelta(t, 1.0/3.0, behavioral[0].Strength, 1e-9)
	assert.Contains(t, behavioral[0].Rationale, "T1059")
}

func TestBehavioralMarkersFromTags(t *testing.T) {
	c := NewCorrelator(CorrelatorOptions{})
	a := record("ev-1", corrBase, nil)
	a.Tags = []string{"technique:t1059", "firewall"}
	b := record("ev-2", corrBase.Add(time.Hour), nil)
	b.Payload = map[string]any{"mitre_techniques": []string{"T1059"}}

	links := c.Correlate([]*models.EvidenceRecord{a, b})
	behavioral := linksOfKind(links, models.RelationshipBehavioral)
	require.Len(t, behavioral, 1)
	assert.InDelta(t, 1.0, behavioral[0].Strength, 1e-9, "tag markers are case-normalized")
}

func TestCorrelateIsDeterministic(t *testing.T) {
	c := NewCorrelator(CorrelatorOptions{})
	records := []*models.EvidenceRecord{
		record("ev-2", corrBase.Add(time.Minute), map[string][]string{"ip": {"10.0.0.5"}}),
		record("ev-1", corrBase, map[string][]string{"ip": {"10.0.0.5"}}),
	}
	reversed := []*models.EvidenceRecord{records[1], records[0]}
	assert.Equal(t, c.Correlate(records), c.Correlate(reversed))
}

func TestCorrelateIncrementalMatchesBatch(t *testing.T) {
	c := NewCorrelator(CorrelatorOptions{})
	existing := []*models.EvidenceRecord{
		record("ev-1", corrBase, map[string][]string{"ip": {"10.0.0.5"}}),
		record("ev-2", corrBase.Add(time.Hour), map[string][]string{"ip": {"172.16.0.1"}}),
	}
	fresh := record("ev-3", corrBase.Add(30*time.Second), map[string][]string{"ip": {"10.0.0.5"}})

	incr := c.CorrelateIncremental(fresh, existing)
	batch := c.Correlate(append(existing, fresh))

	// Every incremental link appears in the batch result.
	for _, l := range incr {
		assert.Contains(t, batch, l)
	}
	// And the incremental pass finds all links touching ev-3.
	var touching int
	for _, l := range batch {
		if l.FromEvidenceID == "ev-3" || l.ToEvidenceID == "ev-3" {
			touching++
		}
	}
	assert.Len(t, incr, touching)
}

func TestBuildNetwork(t *testing.T) {
	records := []*models.EvidenceRecord{
		record("ev-1", corrBase, map[string][]string{"ip": {"10.0.0.5"}}),
		record("ev-2", corrBase.Add(time.Minute), map[string][]string{"ip": {"10.0.0.5"}, "hostname": {"web-01"}}),
	}
	c := NewCorrelator(CorrelatorOptions{})
	links := c.Correlate(records)
	net := BuildNetwork(records, links)

	require.Len(t, net.Nodes, 2)
	byID := map[string]NetworkNode{}
	for _, n := range net.Nodes {
		byID[n.ID] = n
	}
	assert.Equal(t, 2, byID["ip:10.0.0.5"].EvidenceCount)
	assert.Equal(t, 1, byID["hostname:web-01"].EvidenceCount)

	require.NotEmpty(t, net.Edges)
	for _, e := range net.Edges {
		assert.Less(t, e.From, e.To, "edges are canonically ordered")
		assert.Greater(t, e.Strength, 0.0)
	}
}
