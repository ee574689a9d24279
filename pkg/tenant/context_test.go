package tenant

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScopeRoundTrip(t *testing.T) {
	ctx := WithScope(context.Background(), Scope{TenantID: "t1", UserID: "u1", CorrelationID: "c1"})
	s, ok := FromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "t1", s.TenantID)
	assert.Equal(t, "u1", s.UserID)
	assert.Equal(t, "c1", s.CorrelationID)
}

func TestRequireFailsWithoutTenant(t *testing.T) {
	_, err := Require(context.Background())
	assert.ErrorIs(t, err, ErrNoTenant)

	_, err = Require(WithScope(context.Background(), Scope{UserID: "u"}))
	assert.ErrorIs(t, err, ErrNoTenant)
}

func TestRequireSucceeds(t *testing.T) {
	s, err := Require(WithScope(context.Background(), Scope{TenantID: "t"}))
	require.NoError(t, err)
	assert.Equal(t, "t", s.TenantID)
}
