// Package tenant threads request-scoped tenant, user, and correlation
// identifiers through every call. Every persisted row carries the tenant ID
// and every query filters on it; this package is where handlers establish
// that scope.
package tenant

import (
	"context"
	"errors"
)

// Scope carries the identity of one request through the call tree.
type Scope struct {
	TenantID      string
	UserID        string
	CorrelationID string
}

type ctxKey struct{}

// ErrNoTenant is returned when a call requires a tenant scope and none is
// present on the context.
var ErrNoTenant = errors.New("no tenant scope on context")

// WithScope returns a context carrying the scope.
func WithScope(ctx context.Context, s Scope) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext extracts the scope, if any.
func FromContext(ctx context.Context) (Scope, bool) {
	s, ok := ctx.Value(ctxKey{}).(Scope)
	return s, ok
}

// Require extracts the scope or fails when the tenant is missing.
func Require(ctx context.Context) (Scope, error) {
	s, ok := FromContext(ctx)
	if !ok || s.TenantID == "" {
		return Scope{}, ErrNoTenant
	}
	return s, nil
}
