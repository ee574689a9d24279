package connector

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"
)

const defaultHTTPTimeout = 30 * time.Second

// httpBackend is the shared HTTP plumbing behind the built-in connectors.
type httpBackend struct {
	cfg    Config
	client *http.Client
}

func newHTTPBackend(cfg Config) *httpBackend {
	return &httpBackend{
		cfg: cfg,
		client: &http.Client{
			Timeout: defaultHTTPTimeout,
		},
	}
}

// postJSON issues a POST with the instance's auth headers and decodes the
// response into out. Non-2xx statuses and transport errors come back
// classified.
func (b *httpBackend) postJSON(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return NewError(ErrKindValidation, b.cfg.ID, fmt.Errorf("encoding request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.cfg.Endpoint+path, bytes.NewReader(payload))
	if err != nil {
		return NewError(ErrKindValidation, b.cfg.ID, err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range b.cfg.Auth.Headers() {
		req.Header.Set(k, v)
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return b.classifyTransport(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return b.classifyStatus(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return NewError(ErrKindServer, b.cfg.ID, fmt.Errorf("decoding response: %w", err))
	}
	return nil
}

func (b *httpBackend) classifyTransport(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return NewError(ErrKindTimeout, b.cfg.ID, err)
	}
	if errors.Is(err, context.Canceled) {
		return NewError(ErrKindFatal, b.cfg.ID, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return NewError(ErrKindTimeout, b.cfg.ID, err)
	}
	return NewError(ErrKindNetworkTransient, b.cfg.ID, err)
}

func (b *httpBackend) classifyStatus(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	err := fmt.Errorf("status %d: %s", resp.StatusCode, bytes.TrimSpace(body))

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return NewError(ErrKindAuth, b.cfg.ID, err)
	case resp.StatusCode == http.StatusForbidden:
		return NewError(ErrKindPermissionDenied, b.cfg.ID, err)
	case resp.StatusCode == http.StatusNotFound:
		return NewError(ErrKindNotFound, b.cfg.ID, err)
	case resp.StatusCode == http.StatusRequestTimeout:
		return NewError(ErrKindTimeout, b.cfg.ID, err)
	case resp.StatusCode == http.StatusTooManyRequests:
		ce := NewError(ErrKindRateLimit, b.cfg.ID, err)
		if s := resp.Header.Get("Retry-After"); s != "" {
			if secs, parseErr := strconv.Atoi(s); parseErr == nil {
				ce.RetryAfter = time.Duration(secs) * time.Second
			}
		}
		return ce
	case resp.StatusCode >= 500:
		return NewError(ErrKindServer, b.cfg.ID, err)
	case resp.StatusCode >= 400:
		return NewError(ErrKindValidation, b.cfg.ID, err)
	}
	return NewError(ErrKindFatal, b.cfg.ID, err)
}
