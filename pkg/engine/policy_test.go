package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/connector"
)

func kindErr(kind connector.ErrorKind) error {
	return connector.NewError(kind, "c1", errors.New("boom"))
}

func TestDecideFailureTransientRetriesWithBackoff(t *testing.T) {
	for _, kind := range []connector.ErrorKind{
		connector.ErrKindTimeout,
		connector.ErrKindNetworkTransient,
		connector.ErrKindServer,
		connector.ErrKindCircuitOpen,
	} {
		action, delay := decideFailure(kindErr(kind), 1, 2)
		assert.Equal(t, actionRetry, action, string(kind))
		assert.Equal(t, time.Second, delay)

		action, delay = decideFailure(kindErr(kind), 2, 2)
		assert.Equal(t, actionRetry, action)
		assert.Equal(t, 2*time.Second, delay, "backoff doubles per attempt")

		action, _ = decideFailure(kindErr(kind), 3, 2)
		assert.Equal(t, actionAdapt, action, "exhausted retries hand the step to the adapter")
	}
}

func TestDecideFailureRateLimit(t *testing.T) {
	limited := &connector.Error{
		Kind: connector.ErrKindRateLimit, ConnectorID: "c1",
		RetryAfter: 7 * time.Second, Err: errors.New("quota"),
	}
	action, delay := decideFailure(limited, 1, 2)
	assert.Equal(t, actionRetry, action)
	assert.Equal(t, 7*time.Second, delay, "retry honors the server hint")

	action, _ = decideFailure(limited, 2, 2)
	assert.Equal(t, actionSkip, action, "only one retry for rate limits")
}

func TestDecideFailureRateLimitWithoutHint(t *testing.T) {
	_, delay := decideFailure(kindErr(connector.ErrKindRateLimit), 1, 2)
	assert.Equal(t, time.Second, delay)
}

func TestDecideFailureAccessErrorsEscalate(t *testing.T) {
	for _, kind := range []connector.ErrorKind{connector.ErrKindAuth, connector.ErrKindPermissionDenied} {
		action, _ := decideFailure(kindErr(kind), 1, 2)
		assert.Equal(t, actionEscalate, action, string(kind))
	}
}

func TestDecideFailureUnretryable(t *testing.T) {
	for _, kind := range []connector.ErrorKind{
		connector.ErrKindValidation,
		connector.ErrKindConnectorNotFound,
	} {
		action, _ := decideFailure(kindErr(kind), 1, 2)
		assert.Equal(t, actionFail, action, string(kind))
	}

	action, _ := decideFailure(errors.New("unclassified"), 1, 2)
	assert.Equal(t, actionFail, action, "unclassified errors are fatal")
}

func TestBackoffDelay(t *testing.T) {
	assert.Equal(t, time.Second, backoffDelay(1))
	assert.Equal(t, 2*time.Second, backoffDelay(2))
	assert.Equal(t, 4*time.Second, backoffDelay(3))
}
