package events

// Scope carries the envelope identity fields common to a batch of events
// published from one agent turn. Zero fields are filled with "-" so every
// published event satisfies the required-field contract even for run-level
// events with no meaningful turn or item.
type Scope struct {
	AgentID  string
	ThreadID string
	TurnID   string
	ItemID   string
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// Event builds an envelope for the given method with kind-specific fields.
// The bus stamps runId, sequence, ts and schemaVersion at publish time.
func (s Scope) Event(method string, extra map[string]any) *Envelope {
	return &Envelope{
		Method: method,
		Params: Params{
			AgentID:  orDash(s.AgentID),
			ThreadID: orDash(s.ThreadID),
			TurnID:   orDash(s.TurnID),
			ItemID:   orDash(s.ItemID),
			Extra:    extra,
		},
	}
}

// RunStarted announces that an investigation began executing.
func (s Scope) RunStarted(tenantID, alertID string) *Envelope {
	return s.Event(MethodRunStarted, map[string]any{
		"tenantId": tenantID,
		"alertId":  alertID,
	})
}

// RunCompleted carries the terminal verdict summary.
func (s Scope) RunCompleted(tenantID, classification string, confidence float64) *Envelope {
	return s.Event(MethodRunCompleted, map[string]any{
		"tenantId":       tenantID,
		"classification": classification,
		"confidence":     confidence,
	})
}

// RunFailed carries the terminal failure reason.
func (s Scope) RunFailed(tenantID, reason string) *Envelope {
	return s.Event(MethodRunFailed, map[string]any{
		"tenantId": tenantID,
		"reason":   reason,
	})
}

// RunMetrics reports execution counters at run completion.
func (s Scope) RunMetrics(tenantID string, metrics map[string]any) *Envelope {
	extra := map[string]any{"tenantId": tenantID}
	for k, v := range metrics {
		extra[k] = v
	}
	return s.Event(MethodRunMetrics, extra)
}

// TurnStarted marks the beginning of an agent phase.
func (s Scope) TurnStarted(agent string) *Envelope {
	return s.Event(TurnMethod(agent, "started"), nil)
}

// TurnCompleted marks the end of an agent phase.
func (s Scope) TurnCompleted(agent string, extra map[string]any) *Envelope {
	return s.Event(TurnMethod(agent, "completed"), extra)
}

// TurnFailed marks a failed agent phase.
func (s Scope) TurnFailed(agent string, reason string) *Envelope {
	return s.Event(TurnMethod(agent, "failed"), map[string]any{"reason": reason})
}

// Item emits an item/<type> event for an artifact produced mid-turn,
// evidence records and step transitions among them.
func (s Scope) Item(itemType string, extra map[string]any) *Envelope {
	return s.Event(ItemMethod(itemType), extra)
}

// ArtifactCreated announces a stored artifact such as the final report.
func (s Scope) ArtifactCreated(kind, artifactID string) *Envelope {
	return s.Event(MethodArtifactCreated, map[string]any{
		"artifactType": kind,
		"artifactId":   artifactID,
	})
}

// ApprovalRequested asks a human to approve a proposed response action.
// When requestID is empty the bus synthesizes a deterministic one and marks
// the request unverified.
func (s Scope) ApprovalRequested(requestID, title, description string, payload map[string]any) *Envelope {
	extra := map[string]any{
		"title":       title,
		"description": description,
	}
	if requestID != "" {
		extra["requestId"] = requestID
		extra["verified"] = true
	}
	if payload != nil {
		extra["payload"] = payload
	}
	return s.Event(MethodApprovalRequested, extra)
}

// ApprovalResolved emits the approved/rejected/expired outcome for a request.
func (s Scope) ApprovalResolved(method, requestID, decidedBy string) *Envelope {
	extra := map[string]any{"requestId": requestID}
	if decidedBy != "" {
		extra["decidedBy"] = decidedBy
	}
	return s.Event(method, extra)
}

// PlanAdapted records a mid-run plan revision.
func (s Scope) PlanAdapted(reason string, droppedSources []string, replacedSteps []string) *Envelope {
	return s.Event(MethodPlanAdapted, map[string]any{
		"reason":         reason,
		"droppedSources": droppedSources,
		"replacedSteps":  replacedSteps,
	})
}

// ConnectorFailover records a switch to an alternate connector instance.
func (s Scope) ConnectorFailover(connectorType, from, to, reason string) *Envelope {
	return s.Event(MethodConnectorFailover, map[string]any{
		"connectorType": connectorType,
		"from":          from,
		"to":            to,
		"reason":        reason,
	})
}

// ConnectorRetry records a retried connector call.
func (s Scope) ConnectorRetry(connectorID string, attempt int, reason string) *Envelope {
	return s.Event(MethodConnectorRetry, map[string]any{
		"connectorId": connectorID,
		"attempt":     attempt,
		"reason":      reason,
	})
}

// DataSourceFailure records a data source that could not serve a step.
func (s Scope) DataSourceFailure(stepID, source, reason string) *Envelope {
	return s.Event(MethodDataSourceFailure, map[string]any{
		"stepId": stepID,
		"source": source,
		"reason": reason,
	})
}

// InvestigationTimeout records that the run exceeded its deadline.
func (s Scope) InvestigationTimeout(timeoutMs int64, phase string) *Envelope {
	return s.Event(MethodInvestigationTimeout, map[string]any{
		"timeoutMs": timeoutMs,
		"phase":     phase,
	})
}
