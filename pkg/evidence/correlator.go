package evidence

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/models"
)

// Correlator defaults.
const (
	DefaultTemporalWindow = 5 * time.Minute
	// defaultMaxOverlap normalizes entity-link strength: overlapCount
	// entities in common reaches full strength at this many.
	defaultMaxOverlap = 3
)

// CorrelatorOptions tunes the deterministic correlation analyses.
type CorrelatorOptions struct {
	TemporalWindow time.Duration
	MaxOverlap     int
}

func (o CorrelatorOptions) withDefaults() CorrelatorOptions {
	if o.TemporalWindow <= 0 {
		o.TemporalWindow = DefaultTemporalWindow
	}
	if o.MaxOverlap <= 0 {
		o.MaxOverlap = defaultMaxOverlap
	}
	return o
}

// Correlator derives temporal, entity, and behavioral links between
// evidence records. Pure: same records in, same links out.
type Correlator struct {
	opts CorrelatorOptions
}

// NewCorrelator creates a correlator.
func NewCorrelator(opts CorrelatorOptions) *Correlator {
	return &Correlator{opts: opts.withDefaults()}
}

// Correlate runs all three analyses over the records and returns the
// deduplicated links, ordered by (from, to, kind). Records are paired with
// from < to by ID so each pair yields at most one link per kind.
func (c *Correlator) Correlate(records []*models.EvidenceRecord) []models.Relationship {
	sorted := make([]*models.EvidenceRecord, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(a, b int) bool { return sorted[a].ID < sorted[b].ID })

	var links []models.Relationship
	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			a, b := sorted[i], sorted[j]
			if l, ok := c.temporalLink(a, b); ok {
				links = append(links, l)
			}
			if l, ok := c.entityLink(a, b); ok {
				links = append(links, l)
			}
			if l, ok := c.behavioralLink(a, b); ok {
				links = append(links, l)
			}
		}
	}
	sort.Slice(links, func(a, b int) bool {
		if links[a].FromEvidenceID != links[b].FromEvidenceID {
			return links[a].FromEvidenceID < links[b].FromEvidenceID
		}
		if links[a].ToEvidenceID != links[b].ToEvidenceID {
			return links[a].ToEvidenceID < links[b].ToEvidenceID
		}
		return links[a].Kind < links[b].Kind
	})
	return links
}

// CorrelateIncremental links one new record against the existing set,
// without re-deriving links among the existing records.
func (c *Correlator) CorrelateIncremental(record *models.EvidenceRecord, existing []*models.EvidenceRecord) []models.Relationship {
	var links []models.Relationship
	for _, other := range existing {
		if other.ID == record.ID {
			continue
		}
		a, b := record, other
		if b.ID < a.ID {
			a, b = b, a
		}
		if l, ok := c.temporalLink(a, b); ok {
			links = append(links, l)
		}
		if l, ok := c.entityLink(a, b); ok {
			links = append(links, l)
		}
		if l, ok := c.behavioralLink(a, b); ok {
			links = append(links, l)
		}
	}
	return links
}

func (c *Correlator) temporalLink(a, b *models.EvidenceRecord) (models.Relationship, bool) {
	if a.Timestamp.IsZero() || b.Timestamp.IsZero() {
		return models.Relationship{}, false
	}
	delta := a.Timestamp.Sub(b.Timestamp)
	if delta < 0 {
		delta = -delta
	}
	if delta > c.opts.TemporalWindow {
		return models.Relationship{}, false
	}
	strength := 1 - float64(delta)/float64(c.opts.TemporalWindow)
	return models.Relationship{
		FromEvidenceID: a.ID,
		ToEvidenceID:   b.ID,
		Kind:           models.RelationshipTemporal,
		Strength:       strength,
		Rationale:      fmt.Sprintf("observed %s apart", delta),
	}, true
}

func (c *Correlator) entityLink(a, b *models.EvidenceRecord) (models.Relationship, bool) {
	var shared []string
	for kind, values := range a.Entities {
		for _, v := range values {
			if b.HasEntity(kind, v) {
				shared = append(shared, kind+":"+v)
			}
		}
	}
	if len(shared) == 0 {
		return models.Relationship{}, false
	}
	sort.Strings(shared)
	strength := float64(len(shared)) / float64(c.opts.MaxOverlap)
	if strength > 1 {
		strength = 1
	}
	return models.Relationship{
		FromEvidenceID: a.ID,
		ToEvidenceID:   b.ID,
		Kind:           models.RelationshipEntity,
		Strength:       strength,
		Rationale:      "shared entities: " + strings.Join(shared, ", "),
	}, true
}

func (c *Correlator) behavioralLink(a, b *models.EvidenceRecord) (models.Relationship, bool) {
	ma, mb := techniqueMarkers(a), techniqueMarkers(b)
	if len(ma) == 0 || len(mb) == 0 {
		return models.Relationship{}, false
	}
	inter, union := 0, len(mb)
	var sharedList []string
	for m := range ma {
		if mb[m] {
			inter++
			sharedList = append(sharedList, m)
		} else {
			union++
		}
	}
	if inter == 0 {
		return models.Relationship{}, false
	}
	sort.Strings(sharedList)
	return models.Relationship{
		FromEvidenceID: a.ID,
		ToEvidenceID:   b.ID,
		Kind:           models.RelationshipBehavioral,
		Strength:       float64(inter) / float64(union),
		Rationale:      "shared techniques: " + strings.Join(sharedList, ", "),
	}, true
}

// techniqueMarkers collects MITRE technique and tactic markers from the
// payload's mitre_techniques / mitre_tactics fields and from
// "technique:"-prefixed tags.
func techniqueMarkers(e *models.EvidenceRecord) map[string]bool {
	out := make(map[string]bool)
	for _, field := range []string{"mitre_techniques", "mitre_tactics"} {
		switch v := e.Payload[field].(type) {
		case []string:
			for _, m := range v {
				out[strings.ToUpper(m)] = true
			}
		case []any:
			for _, raw := range v {
				if m, ok := raw.(string); ok {
					out[strings.ToUpper(m)] = true
				}
			}
		}
	}
	for _, tag := range e.Tags {
		if rest, ok := strings.CutPrefix(tag, "technique:"); ok && rest != "" {
			out[strings.ToUpper(rest)] = true
		}
	}
	return out
}

// NetworkNode is one entity node of the correlation graph.
type NetworkNode struct {
	ID            string `json:"id"`   // kind:value
	Kind          string `json:"kind"` // entity kind
	Value         string `json:"value"`
	EvidenceCount int    `json:"evidenceCount"` // drives node size
}

// NetworkEdge connects two entity nodes that co-occur in linked evidence.
type NetworkEdge struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Kind     string  `json:"kind"`
	Strength float64 `json:"strength"` // drives edge width
	Evidence int     `json:"evidence"` // co-occurrence count
}

// Network is the force-directed-graph view of an investigation's evidence.
type Network struct {
	Nodes []NetworkNode `json:"nodes"`
	Edges []NetworkEdge `json:"edges"`
}

// BuildNetwork projects records and their links onto an entity graph:
// nodes are entities sized by how many records mention them, edges connect
// entities co-occurring in linked record pairs, widest for the strongest
// links.
func BuildNetwork(records []*models.EvidenceRecord, links []models.Relationship) *Network {
	byID := make(map[string]*models.EvidenceRecord, len(records))
	counts := make(map[string]int)
	kinds := make(map[string][2]string) // node id → (kind, value)
	for _, r := range records {
		byID[r.ID] = r
		for kind, values := range r.Entities {
			for _, v := range values {
				id := kind + ":" + v
				counts[id]++
				kinds[id] = [2]string{kind, v}
			}
		}
	}

	type edgeKey struct{ from, to, kind string }
	edges := make(map[edgeKey]*NetworkEdge)
	for _, l := range links {
		a, b := byID[l.FromEvidenceID], byID[l.ToEvidenceID]
		if a == nil || b == nil {
			continue
		}
		for _, na := range entityIDs(a) {
			for _, nb := range entityIDs(b) {
				if na == nb {
					continue
				}
				from, to := na, nb
				if to < from {
					from, to = to, from
				}
				k := edgeKey{from, to, string(l.Kind)}
				e, ok := edges[k]
				if !ok {
					e = &NetworkEdge{From: from, To: to, Kind: string(l.Kind)}
					edges[k] = e
				}
				e.Evidence++
				if l.Strength > e.Strength {
					e.Strength = l.Strength
				}
			}
		}
	}

	out := &Network{}
	for id, kv := range kinds {
		out.Nodes = append(out.Nodes, NetworkNode{
			ID:            id,
			Kind:          kv[0],
			Value:         kv[1],
			EvidenceCount: counts[id],
		})
	}
	sort.Slice(out.Nodes, func(a, b int) bool { return out.Nodes[a].ID < out.Nodes[b].ID })
	for _, e := range edges {
		out.Edges = append(out.Edges, *e)
	}
	sort.Slice(out.Edges, func(a, b int) bool {
		if out.Edges[a].From != out.Edges[b].From {
			return out.Edges[a].From < out.Edges[b].From
		}
		if out.Edges[a].To != out.Edges[b].To {
			return out.Edges[a].To < out.Edges[b].To
		}
		return out.Edges[a].Kind < out.Edges[b].Kind
	})
	return out
}

func entityIDs(r *models.EvidenceRecord) []string {
	var out []string
	for kind, values := range r.Entities {
		for _, v := range values {
			out = append(out, kind+":"+v)
		}
	}
	sort.Strings(out)
	return out
}
