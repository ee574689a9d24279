// Package connector provides the data-source plug-in layer: a uniform
// contract for SIEM, EDR, and threat-intel backends, per-tenant instances
// wrapped with rate limiting and circuit breaking, a registry that selects
// and fails over between instances, and a background health monitor.
package connector

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Kind identifies a connector implementation family.
type Kind string

// Built-in connector kinds.
const (
	KindSIEM        Kind = "siem"
	KindEDR         Kind = "edr"
	KindThreatIntel Kind = "threat_intel"
)

// Config is the per-instance configuration handed to Initialize.
type Config struct {
	ID       string            `yaml:"id" json:"id"`
	Kind     Kind              `yaml:"kind" json:"kind"`
	TenantID string            `yaml:"tenantId" json:"tenantId"`
	Priority int               `yaml:"priority" json:"priority"` // lower is preferred
	Endpoint string            `yaml:"endpoint" json:"endpoint"`
	Auth     AuthConfig        `yaml:"auth" json:"auth"`
	Rate     RateConfig        `yaml:"rateLimits" json:"rateLimits"`
	Settings map[string]string `yaml:"settings" json:"settings"`
}

// RateConfig holds the per-instance rate windows.
type RateConfig struct {
	RequestsPerSecond int `yaml:"requestsPerSecond" json:"requestsPerSecond"`
	RequestsPerMinute int `yaml:"requestsPerMinute" json:"requestsPerMinute"`
	RequestsPerHour   int `yaml:"requestsPerHour" json:"requestsPerHour"`
}

// QueryRequest is one data-source query issued by a plan step.
type QueryRequest struct {
	Query      string            `json:"query"`
	DataType   string            `json:"dataType"`
	Entities   map[string]string `json:"entities,omitempty"`
	TimeFrom   time.Time         `json:"timeFrom,omitempty"`
	TimeTo     time.Time         `json:"timeTo,omitempty"`
	MaxRecords int               `json:"maxRecords,omitempty"`
}

// Record is one raw result row from a backend.
type Record struct {
	Timestamp time.Time      `json:"timestamp"`
	Source    string         `json:"source"`
	Fields    map[string]any `json:"fields"`
}

// QueryResult is the outcome of a Query call.
type QueryResult struct {
	Records    []Record            `json:"records"`
	Entities   map[string][]string `json:"entities,omitempty"`
	Complete   bool                `json:"complete"` // false when truncated at MaxRecords
	QueriedAt  time.Time           `json:"queriedAt"`
	LatencyMS  int64               `json:"latencyMs"`
	Connector  string              `json:"connector"`
	DataSource string              `json:"dataSource"`
}

// Enrichment is context attached to a single entity by Enrich.
type Enrichment struct {
	Entity     string         `json:"entity"`
	EntityKind string         `json:"entityKind"`
	Verdict    string         `json:"verdict,omitempty"` // malicious | suspicious | benign | unknown
	Confidence float64        `json:"confidence"`
	Attributes map[string]any `json:"attributes,omitempty"`
	Source     string         `json:"source"`
}

// Connector is the plug-in contract every data-source backend implements.
// Implementations must be safe for concurrent use after Initialize.
type Connector interface {
	// Initialize prepares the instance (auth, connection pools). Called once
	// before any other method.
	Initialize(ctx context.Context, cfg Config) error
	// HealthCheck probes the backend with a cheap round trip.
	HealthCheck(ctx context.Context) error
	// Query executes a data-source query.
	Query(ctx context.Context, req QueryRequest) (*QueryResult, error)
	// Enrich attaches context to a single entity value.
	Enrich(ctx context.Context, entityKind, entity string) (*Enrichment, error)
	// Capabilities lists the operations this backend supports,
	// e.g. "search", "enrich", "process_tree".
	Capabilities() []string
	// DataTypes lists the data types this backend serves,
	// e.g. "network", "process", "reputation".
	DataTypes() []string
	// Shutdown releases resources. No other method may be called after.
	Shutdown(ctx context.Context) error
}

// ErrorKind classifies a connector failure for retry and failover policy.
type ErrorKind string

// Connector error kinds.
const (
	ErrKindValidation        ErrorKind = "validation"
	ErrKindNotFound          ErrorKind = "not_found"
	ErrKindPermissionDenied  ErrorKind = "permission_denied"
	ErrKindAuth              ErrorKind = "auth"
	ErrKindTimeout           ErrorKind = "timeout"
	ErrKindRateLimit         ErrorKind = "rate_limit"
	ErrKindCircuitOpen       ErrorKind = "circuit_open"
	ErrKindNetworkTransient  ErrorKind = "network_transient"
	ErrKindServer            ErrorKind = "server_error"
	ErrKindConnectorNotFound ErrorKind = "connector_not_found"
	ErrKindFatal             ErrorKind = "fatal"
)

// Error is a classified connector failure.
type Error struct {
	Kind        ErrorKind
	ConnectorID string
	// RetryAfter is set for rate-limit rejections.
	RetryAfter time.Duration
	Err        error
}

func (e *Error) Error() string {
	if e.ConnectorID != "" {
		return fmt.Sprintf("%s: %s: %v", e.ConnectorID, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// NewError wraps err with a classification.
func NewError(kind ErrorKind, connectorID string, err error) *Error {
	return &Error{Kind: kind, ConnectorID: connectorID, Err: err}
}

// KindOf extracts the classification from an error chain.
// Unclassified errors are treated as fatal.
func KindOf(err error) ErrorKind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrKindTimeout
	}
	return ErrKindFatal
}

// Retryable reports whether the failure class may succeed on the same
// instance after a backoff.
func Retryable(err error) bool {
	switch KindOf(err) {
	case ErrKindTimeout, ErrKindNetworkTransient, ErrKindServer, ErrKindRateLimit:
		return true
	default:
		return false
	}
}

// FailoverEligible reports whether the failure class justifies trying a
// different instance of the same kind. Circuit-open and availability
// failures fail over; validation and auth failures would fail identically
// everywhere in the same tenant and do not.
func FailoverEligible(err error) bool {
	switch KindOf(err) {
	case ErrKindTimeout, ErrKindNetworkTransient, ErrKindServer, ErrKindCircuitOpen, ErrKindRateLimit:
		return true
	default:
		return false
	}
}

// RetryAfterOf returns the rate-limit retry hint from an error chain, or 0.
func RetryAfterOf(err error) time.Duration {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.RetryAfter
	}
	return 0
}
