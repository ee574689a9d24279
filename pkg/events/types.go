// Package events provides the per-run event bus: an append-only,
// strictly-sequenced log with live fan-out and resume-by-sequence for
// WebSocket subscribers.
//
// Every observable transition of an investigation is published here with a
// sequence assigned under the run's lock, persisted, and then fanned out.
// Subscribers that disconnect resume with their last-seen sequence and
// receive exactly the events they missed, in order.
package events

import (
	"encoding/json"
	"fmt"
	"time"
)

// SchemaVersion is stamped on every published event.
const SchemaVersion = "1"

// Event methods. Kind-specific payload fields ride alongside the envelope
// fields inside params.
const (
	MethodRunStarted   = "run/started"
	MethodRunCompleted = "run/completed"
	MethodRunFailed    = "run/failed"
	MethodRunMetrics   = "run/metrics"

	MethodArtifactCreated = "artifact/created"

	MethodApprovalRequested = "approval/requested"
	MethodApprovalApproved  = "approval/approved"
	MethodApprovalRejected  = "approval/rejected"
	MethodApprovalExpired   = "approval/expired"

	MethodPlanAdapted          = "plan_adapted"
	MethodConnectorFailover    = "connector_failover"
	MethodConnectorRetry       = "connector_retry"
	MethodDataSourceFailure    = "data_source_failure"
	MethodInvestigationTimeout = "investigation_timeout"
	MethodInvestigationCleanup = "investigation_cleanup"
)

// TurnMethod builds "turn/<agent>/<phase>" with phase in
// {started, completed, failed}.
func TurnMethod(agent, phase string) string {
	return "turn/" + agent + "/" + phase
}

// ItemMethod builds "item/<type>", e.g. item/evidence, item/step.
func ItemMethod(itemType string) string {
	return "item/" + itemType
}

// Params is the event parameter block. The named envelope fields are
// required on every event; Extra carries the kind-specific fields and is
// flattened into the same JSON object.
type Params struct {
	RunID         string         `json:"runId"`
	AgentID       string         `json:"agentId"`
	ThreadID      string         `json:"threadId"`
	TurnID        string         `json:"turnId"`
	ItemID        string         `json:"itemId"`
	Sequence      int64          `json:"sequence"`
	TS            string         `json:"ts"` // ISO8601 UTC, millisecond precision
	SchemaVersion string         `json:"schemaVersion"`
	Extra         map[string]any `json:"-"`
}

// Envelope is one bus event in the jsonrpc-like framing of the protocol.
type Envelope struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  Params `json:"params"`
}

// envelope fields that must be present for a client to apply an event.
var requiredParamKeys = []string{"runId", "agentId", "threadId", "turnId", "itemId", "sequence", "ts", "schemaVersion"}

// MarshalJSON flattens Extra into the params object.
func (p Params) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(p.Extra)+8)
	for k, v := range p.Extra {
		m[k] = v
	}
	m["runId"] = p.RunID
	m["agentId"] = p.AgentID
	m["threadId"] = p.ThreadID
	m["turnId"] = p.TurnID
	m["itemId"] = p.ItemID
	m["sequence"] = p.Sequence
	m["ts"] = p.TS
	m["schemaVersion"] = p.SchemaVersion
	return json.Marshal(m)
}

// UnmarshalJSON splits the envelope fields back out of the flat object.
func (p *Params) UnmarshalJSON(data []byte) error {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	take := func(key string) string {
		v, _ := m[key].(string)
		delete(m, key)
		return v
	}
	p.RunID = take("runId")
	p.AgentID = take("agentId")
	p.ThreadID = take("threadId")
	p.TurnID = take("turnId")
	p.ItemID = take("itemId")
	p.TS = take("ts")
	p.SchemaVersion = take("schemaVersion")
	if seq, ok := m["sequence"]; ok {
		switch n := seq.(type) {
		case float64:
			p.Sequence = int64(n)
		case json.Number:
			v, err := n.Int64()
			if err != nil {
				return fmt.Errorf("invalid sequence: %w", err)
			}
			p.Sequence = v
		}
		delete(m, "sequence")
	}
	if len(m) > 0 {
		p.Extra = m
	}
	return nil
}

// MissingFields returns the required envelope fields absent from the event.
// Sequence 0 counts as missing: valid sequences start at 1.
func (e *Envelope) MissingFields() []string {
	var missing []string
	check := func(key, val string) {
		if val == "" {
			missing = append(missing, key)
		}
	}
	check("runId", e.Params.RunID)
	check("agentId", e.Params.AgentID)
	check("threadId", e.Params.ThreadID)
	check("turnId", e.Params.TurnID)
	check("itemId", e.Params.ItemID)
	check("ts", e.Params.TS)
	check("schemaVersion", e.Params.SchemaVersion)
	if e.Params.Sequence <= 0 {
		missing = append(missing, "sequence")
	}
	return missing
}

// Timestamp parses the event's ts field.
func (e *Envelope) Timestamp() (time.Time, error) {
	return time.Parse(time.RFC3339Nano, e.Params.TS)
}

// FormatTS renders a timestamp the way the bus stamps events.
func FormatTS(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}
