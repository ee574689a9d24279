// Package learning defines the feedback-loop boundary. Completed
// investigations and their human feedback are handed to a Hook so future
// planning and analysis can improve; the built-in implementation records
// the signal, external systems plug in their own.
package learning

import (
	"context"
	"log/slog"

	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/models"
)

// Signal is the training record emitted when an investigation terminates.
type Signal struct {
	Investigation *models.Investigation
	Feedback      []*models.FeedbackEntry
}

// Hook receives completed investigations. Implementations must not block
// the calling worker; heavy work belongs behind a queue.
type Hook interface {
	InvestigationCompleted(ctx context.Context, sig Signal)
}

// NopHook discards every signal.
type NopHook struct{}

// InvestigationCompleted is a no-op.
func (NopHook) InvestigationCompleted(context.Context, Signal) {}

// LogHook records the terminal outcome and any correcting feedback, which
// makes the signal greppable until a real consumer exists.
type LogHook struct {
	Logger *slog.Logger
}

// NewLogHook creates a LogHook.
func NewLogHook(logger *slog.Logger) *LogHook {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogHook{Logger: logger}
}

// InvestigationCompleted logs the outcome with its feedback counts.
func (h *LogHook) InvestigationCompleted(_ context.Context, sig Signal) {
	inv := sig.Investigation
	if inv == nil {
		return
	}

	corrections := 0
	for _, fb := range sig.Feedback {
		if fb.Type == models.FeedbackVerdictCorrection {
			corrections++
		}
	}

	attrs := []any{
		"investigation_id", inv.ID,
		"tenant_id", inv.TenantID,
		"status", inv.Status,
		"feedback_count", len(sig.Feedback),
		"verdict_corrections", corrections,
	}
	if inv.Verdict != nil {
		attrs = append(attrs,
			"classification", inv.Verdict.Classification,
			"confidence", inv.Verdict.Confidence)
	}
	h.Logger.Info("Learning signal recorded", attrs...)
}
