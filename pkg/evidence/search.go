package evidence

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/models"
)

// EntityFilter is one entity:kind:value term.
type EntityFilter struct {
	Kind  string
	Value string
}

// Query is a parsed search query. All filter groups are conjunctive;
// multiple values within a group (e.g. two type: terms) are disjunctive.
type Query struct {
	Types         []models.EvidenceType
	Sources       []string
	ConfidenceMin float64
	HasConfidence bool
	Entities      []EntityFilter
	FreeText      []string
}

// ParseQuery parses the search grammar: whitespace-separated tokens of the
// form type:T, source:S, confidence:>0.8, entity:kind:value, or free text.
func ParseQuery(raw string) (*Query, error) {
	q := &Query{}
	for _, token := range strings.Fields(raw) {
		switch {
		case strings.HasPrefix(token, "type:"):
			v := strings.TrimPrefix(token, "type:")
			if v == "" {
				return nil, fmt.Errorf("empty type: term")
			}
			q.Types = append(q.Types, models.EvidenceType(strings.ToLower(v)))

		case strings.HasPrefix(token, "source:"):
			v := strings.TrimPrefix(token, "source:")
			if v == "" {
				return nil, fmt.Errorf("empty source: term")
			}
			q.Sources = append(q.Sources, strings.ToLower(v))

		case strings.HasPrefix(token, "confidence:"):
			v := strings.TrimPrefix(token, "confidence:")
			v = strings.TrimPrefix(v, ">")
			min, err := strconv.ParseFloat(v, 64)
			if err != nil || min < 0 || min > 1 {
				return nil, fmt.Errorf("invalid confidence term %q", token)
			}
			if !q.HasConfidence || min > q.ConfidenceMin {
				q.ConfidenceMin = min
			}
			q.HasConfidence = true

		case strings.HasPrefix(token, "entity:"):
			rest := strings.TrimPrefix(token, "entity:")
			kind, value, ok := strings.Cut(rest, ":")
			if !ok || kind == "" || value == "" {
				return nil, fmt.Errorf("entity term %q must be entity:kind:value", token)
			}
			q.Entities = append(q.Entities, EntityFilter{Kind: kind, Value: value})

		default:
			q.FreeText = append(q.FreeText, strings.ToLower(token))
		}
	}
	return q, nil
}

// Matches reports whether the record satisfies every filter group.
func (q *Query) Matches(e *models.EvidenceRecord) bool {
	if len(q.Types) > 0 && !containsType(q.Types, e.Type) {
		return false
	}
	if len(q.Sources) > 0 && !containsFold(q.Sources, e.Source) {
		return false
	}
	if q.HasConfidence && e.Confidence < q.ConfidenceMin {
		return false
	}
	for _, ef := range q.Entities {
		if !e.HasEntity(ef.Kind, ef.Value) {
			return false
		}
	}
	for _, term := range q.FreeText {
		if !freeTextMatch(e, term) {
			return false
		}
	}
	return true
}

func containsType(types []models.EvidenceType, t models.EvidenceType) bool {
	for _, v := range types {
		if v == t {
			return true
		}
	}
	return false
}

func containsFold(values []string, v string) bool {
	lv := strings.ToLower(v)
	for _, candidate := range values {
		if candidate == lv {
			return true
		}
	}
	return false
}

// freeTextMatch scans source, tags, entity values, and stringy payload
// values for the term.
func freeTextMatch(e *models.EvidenceRecord, term string) bool {
	if strings.Contains(strings.ToLower(e.Source), term) {
		return true
	}
	for _, tag := range e.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	for _, values := range e.Entities {
		for _, v := range values {
			if strings.Contains(strings.ToLower(v), term) {
				return true
			}
		}
	}
	for _, v := range e.Payload {
		if s, ok := v.(string); ok && strings.Contains(strings.ToLower(s), term) {
			return true
		}
	}
	return false
}

// Filter applies the query to records, preserving input order.
func (q *Query) Filter(records []*models.EvidenceRecord) []*models.EvidenceRecord {
	var out []*models.EvidenceRecord
	for _, e := range records {
		if q.Matches(e) {
			out = append(out, e)
		}
	}
	return out
}

// FacetBucket is one facet value with its count.
type FacetBucket struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Facets aggregates a result set for faceted navigation.
type Facets struct {
	Types      []FacetBucket `json:"types"`
	Sources    []FacetBucket `json:"sources"`
	Confidence []FacetBucket `json:"confidence"` // buckets of 0.25
	TimeRanges []FacetBucket `json:"timeRanges"` // last hour / day / week / older
}

// confidence bucket bounds, labeled low → high.
var confidenceBuckets = []struct {
	label string
	min   float64
}{
	{"0.75-1.00", 0.75},
	{"0.50-0.75", 0.50},
	{"0.25-0.50", 0.25},
	{"0.00-0.25", 0},
}

// BuildFacets aggregates the records; now anchors the time-range buckets.
func BuildFacets(records []*models.EvidenceRecord, now time.Time) *Facets {
	types := make(map[string]int)
	sources := make(map[string]int)
	confidence := make(map[string]int)
	timeRanges := make(map[string]int)

	for _, e := range records {
		types[string(e.Type)]++
		sources[e.Source]++
		for _, b := range confidenceBuckets {
			if e.Confidence >= b.min {
				confidence[b.label]++
				break
			}
		}
		age := now.Sub(e.Timestamp)
		switch {
		case age <= time.Hour:
			timeRanges["last_hour"]++
		case age <= 24*time.Hour:
			timeRanges["last_day"]++
		case age <= 7*24*time.Hour:
			timeRanges["last_week"]++
		default:
			timeRanges["older"]++
		}
	}

	return &Facets{
		Types:      sortedBuckets(types),
		Sources:    sortedBuckets(sources),
		Confidence: sortedBuckets(confidence),
		TimeRanges: sortedBuckets(timeRanges),
	}
}

func sortedBuckets(m map[string]int) []FacetBucket {
	out := make([]FacetBucket, 0, len(m))
	for v, c := range m {
		out = append(out, FacetBucket{Value: v, Count: c})
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].Count != out[b].Count {
			return out[a].Count > out[b].Count
		}
		return out[a].Value < out[b].Value
	})
	return out
}
