package models

// Verdict classifications.
const (
	VerdictTruePositive   = "true_positive"
	VerdictFalsePositive  = "false_positive"
	VerdictRequiresReview = "requires_review"
)

// Verdict is the analyst agent's classification of the alert.
type Verdict struct {
	Classification string   `json:"classification"`
	Confidence     float64  `json:"confidence"`
	Reasoning      string   `json:"reasoning"`
	Limitations    []string `json:"limitations,omitempty"`
}

// Recommendation is one response-agent suggestion.
type Recommendation struct {
	Title            string   `json:"title"`
	Description      string   `json:"description,omitempty"`
	Priority         string   `json:"priority"` // low | medium | high
	Actions          []string `json:"actions,omitempty"`
	RequiresApproval bool     `json:"requires_approval"`
}

// Response is the response agent's output.
type Response struct {
	Recommendations []Recommendation `json:"recommendations"`
	Summary         string           `json:"summary,omitempty"`
}
