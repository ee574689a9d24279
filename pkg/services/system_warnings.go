package services

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Warning category constants.
const (
	// WarningCategoryConnectorHealth marks a connector that became
	// unhealthy at runtime.
	WarningCategoryConnectorHealth = "connector_health"
	// WarningCategoryQueueBackpressure marks queue depth above the soft
	// limit.
	WarningCategoryQueueBackpressure = "queue_backpressure"
)

// SystemWarning represents a non-fatal system issue.
type SystemWarning struct {
	ID          string    `json:"id"`
	Category    string    `json:"category"`
	Message     string    `json:"message"`
	Details     string    `json:"details,omitempty"`
	ConnectorID string    `json:"connector_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// SystemWarningsService manages in-memory system warnings.
// Thread-safe. Not persisted — warnings are transient and reset on restart.
type SystemWarningsService struct {
	mu       sync.RWMutex
	warnings map[string]*SystemWarning // warningID → warning
}

// NewSystemWarningsService creates a new SystemWarningsService.
func NewSystemWarningsService() *SystemWarningsService {
	return &SystemWarningsService{
		warnings: make(map[string]*SystemWarning),
	}
}

// AddWarning adds a warning and returns its ID. A warning with the same
// category+connectorID replaces the existing one to avoid duplicates.
func (s *SystemWarningsService) AddWarning(category, message, details, connectorID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, w := range s.warnings {
		if w.Category == category && w.ConnectorID == connectorID {
			delete(s.warnings, id)
			break
		}
	}

	id := uuid.New().String()
	s.warnings[id] = &SystemWarning{
		ID:          id,
		Category:    category,
		Message:     message,
		Details:     details,
		ConnectorID: connectorID,
		CreatedAt:   time.Now(),
	}
	return id
}

// GetWarnings returns all active warnings as value copies.
func (s *SystemWarningsService) GetWarnings() []*SystemWarning {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*SystemWarning, 0, len(s.warnings))
	for _, w := range s.warnings {
		cp := *w
		result = append(result, &cp)
	}
	return result
}

// ClearByConnectorID removes a warning matching category + connectorID.
// Used when a connector recovers. Returns true if a warning was removed.
func (s *SystemWarningsService) ClearByConnectorID(category, connectorID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, w := range s.warnings {
		if w.Category == category && w.ConnectorID == connectorID {
			delete(s.warnings, id)
			return true
		}
	}
	return false
}
