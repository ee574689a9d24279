package engine

import (
	"time"

	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/connector"
)

// failureAction is the engine's decision after a step attempt fails.
type failureAction int

const (
	// actionRetry re-runs the step after the returned delay.
	actionRetry failureAction = iota
	// actionSkip marks the step skipped and records a limitation.
	actionSkip
	// actionEscalate fails the step and flags the investigation for review.
	actionEscalate
	// actionFail fails the step with no retry.
	actionFail
	// actionAdapt fails the step and offers it to the plan adapter.
	actionAdapt
)

const (
	retryBackoffBase   = time.Second
	retryBackoffFactor = 2
	// Rate-limited calls get exactly one retry before the source is skipped
	// for this step.
	rateLimitRetries = 1
)

// decideFailure maps a step error to the next action. attempt counts
// completed attempts, so attempt 1 is the first failure.
func decideFailure(err error, attempt, maxRetries int) (failureAction, time.Duration) {
	switch connector.KindOf(err) {
	case connector.ErrKindValidation, connector.ErrKindConnectorNotFound:
		return actionFail, 0

	case connector.ErrKindAuth, connector.ErrKindPermissionDenied:
		return actionEscalate, 0

	case connector.ErrKindRateLimit:
		if attempt > rateLimitRetries {
			return actionSkip, 0
		}
		delay := connector.RetryAfterOf(err)
		if delay <= 0 {
			delay = retryBackoffBase
		}
		return actionRetry, delay

	case connector.ErrKindTimeout, connector.ErrKindNetworkTransient, connector.ErrKindServer, connector.ErrKindCircuitOpen:
		if attempt > maxRetries {
			return actionAdapt, 0
		}
		return actionRetry, backoffDelay(attempt)

	default:
		return actionFail, 0
	}
}

// backoffDelay returns the exponential delay before retry number attempt+1.
func backoffDelay(attempt int) time.Duration {
	d := retryBackoffBase
	for i := 1; i < attempt; i++ {
		d *= retryBackoffFactor
	}
	return d
}
