package models

import "time"

// FeedbackType classifies human feedback.
type FeedbackType string

// Feedback types. Unknown types are rejected at the API boundary.
const (
	FeedbackVerdictCorrection FeedbackType = "verdict_correction"
	FeedbackStepFeedback      FeedbackType = "step_feedback"
	FeedbackNote              FeedbackType = "note"
	FeedbackEscalation        FeedbackType = "escalation"
)

// Valid reports whether t is a known feedback type.
func (t FeedbackType) Valid() bool {
	switch t {
	case FeedbackVerdictCorrection, FeedbackStepFeedback, FeedbackNote, FeedbackEscalation:
		return true
	}
	return false
}

// PostFeedbackRequest is the API payload for PostFeedback.
type PostFeedbackRequest struct {
	Type    FeedbackType   `json:"type"`
	Content map[string]any `json:"content"`
	UserID  string         `json:"user_id,omitempty"`
}

// FeedbackEntry is the stored feedback view returned in reports.
type FeedbackEntry struct {
	FeedbackID string         `json:"feedback_id"`
	Type       FeedbackType   `json:"type"`
	UserID     string         `json:"user_id"`
	Content    map[string]any `json:"content"`
	CreatedAt  time.Time      `json:"created_at"`
}
