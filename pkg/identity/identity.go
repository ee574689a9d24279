// Package identity mints opaque identifiers and deterministic idempotency
// keys. Random IDs come from google/uuid; deterministic keys are 32-bit
// FNV-1a hashes over a stable stringification of the seed, so the same seed
// always yields the same key regardless of map iteration order.
package identity

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"sort"
	"time"

	"github.com/google/uuid"
)

// NewID returns a random UUIDv4 string.
func NewID() string {
	return uuid.New().String()
}

// NewPrefixedID returns "<prefix>_<uuid>" for human-scannable identifiers.
func NewPrefixedID(prefix string) string {
	return prefix + "_" + uuid.New().String()
}

// ApprovalSeed is the deterministic seed for a synthetic approval request ID.
type ApprovalSeed struct {
	RunID       string
	AgentID     string
	TS          time.Time
	Title       string
	Description string
	Payload     map[string]any
}

// SyntheticApprovalID derives "req_" + FNV-1a32 hash of the stable-stringified
// seed. Used by the event bus when a producer omits the request ID; the
// resulting approval is marked verified=false.
func SyntheticApprovalID(seed ApprovalSeed) string {
	stable := StableStringify(map[string]any{
		"runId":       seed.RunID,
		"agentId":     seed.AgentID,
		"ts":          seed.TS.UTC().Format(time.RFC3339Nano),
		"title":       seed.Title,
		"description": seed.Description,
		"payload":     seed.Payload,
	})
	h := fnv.New32a()
	_, _ = h.Write([]byte(stable))
	return fmt.Sprintf("req_%08x", h.Sum32())
}

// IdempotencyKey derives the admission idempotency key for an investigation.
// StartInvestigation with the same (tenantID, alertID, correlationKey) maps
// to the same key and therefore the same investigation.
func IdempotencyKey(tenantID, alertID, correlationKey string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(tenantID + "\x00" + alertID + "\x00" + correlationKey))
	return fmt.Sprintf("idem_%08x", h.Sum32())
}

// StableStringify renders v as JSON with all object keys sorted recursively.
// Unlike encoding/json alone it is stable for map[string]any inputs that were
// themselves decoded from JSON.
func StableStringify(v any) string {
	return string(stableMarshal(normalize(v)))
}

func stableMarshal(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		// Non-serializable seeds degrade to their Go formatting; the result
		// is still deterministic for a given value.
		return []byte(fmt.Sprintf("%v", v))
	}
	return b
}

// normalize rewrites maps into sorted-key slices of [key, value] pairs so the
// JSON encoding is order-independent.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pairs := make([][2]any, 0, len(keys))
		for _, k := range keys {
			pairs = append(pairs, [2]any{k, normalize(t[k])})
		}
		return pairs
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = normalize(e)
		}
		return out
	default:
		return v
	}
}
