package identity

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyntheticApprovalIDDeterministic(t *testing.T) {
	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	seed := ApprovalSeed{
		RunID:   "run-1",
		AgentID: "responder",
		TS:      ts,
		Title:   "Isolate host",
		Payload: map[string]any{"host": "db-1", "action": "isolate"},
	}
	a := SyntheticApprovalID(seed)
	b := SyntheticApprovalID(seed)
	assert.Equal(t, a, b)
	assert.True(t, strings.HasPrefix(a, "req_"))
	require.Len(t, a, len("req_")+8)
}

func TestSyntheticApprovalIDIgnoresMapOrder(t *testing.T) {
	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	a := SyntheticApprovalID(ApprovalSeed{RunID: "r", TS: ts, Payload: map[string]any{"a": 1, "b": 2, "c": 3}})
	b := SyntheticApprovalID(ApprovalSeed{RunID: "r", TS: ts, Payload: map[string]any{"c": 3, "b": 2, "a": 1}})
	assert.Equal(t, a, b)
}

func TestSyntheticApprovalIDDiffersOnSeedChange(t *testing.T) {
	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	a := SyntheticApprovalID(ApprovalSeed{RunID: "run-1", TS: ts, Title: "x"})
	b := SyntheticApprovalID(ApprovalSeed{RunID: "run-2", TS: ts, Title: "x"})
	assert.NotEqual(t, a, b)
}

func TestIdempotencyKey(t *testing.T) {
	k1 := IdempotencyKey("tenant-a", "alert-1", "ck")
	k2 := IdempotencyKey("tenant-a", "alert-1", "ck")
	k3 := IdempotencyKey("tenant-b", "alert-1", "ck")
	assert.Equal(t, k1, k2)
	assert.NotEqual(t, k1, k3)
	assert.True(t, strings.HasPrefix(k1, "idem_"))
}

func TestStableStringifyNested(t *testing.T) {
	v1 := map[string]any{"outer": map[string]any{"b": 1, "a": []any{map[string]any{"y": 2, "x": 1}}}}
	v2 := map[string]any{"outer": map[string]any{"a": []any{map[string]any{"x": 1, "y": 2}}, "b": 1}}
	assert.Equal(t, StableStringify(v1), StableStringify(v2))
}

func TestNewPrefixedID(t *testing.T) {
	id := NewPrefixedID("inv")
	assert.True(t, strings.HasPrefix(id, "inv_"))
	assert.NotEqual(t, id, NewPrefixedID("inv"))
}
