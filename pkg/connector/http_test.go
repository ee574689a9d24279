package connector

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusClassification(t *testing.T) {
	cases := []struct {
		status int
		want   ErrorKind
	}{
		{http.StatusUnauthorized, ErrKindAuth},
		{http.StatusForbidden, ErrKindPermissionDenied},
		{http.StatusNotFound, ErrKindNotFound},
		{http.StatusRequestTimeout, ErrKindTimeout},
		{http.StatusTooManyRequests, ErrKindRateLimit},
		{http.StatusBadRequest, ErrKindValidation},
		{http.StatusInternalServerError, ErrKindServer},
		{http.StatusBadGateway, ErrKindServer},
	}
	for _, tc := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(tc.status)
		}))
		b := newHTTPBackend(Config{ID: "c1", Endpoint: srv.URL})
		err := b.postJSON(context.Background(), "/x", map[string]any{}, nil)
		srv.Close()

		require.Error(t, err, "status %d", tc.status)
		assert.Equal(t, tc.want, KindOf(err), "status %d", tc.status)
	}
}

func TestRateLimitRetryAfterHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Retry-After", "7")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	b := newHTTPBackend(Config{ID: "c1", Endpoint: srv.URL})
	err := b.postJSON(context.Background(), "/x", map[string]any{}, nil)
	require.Error(t, err)
	assert.Equal(t, ErrKindRateLimit, KindOf(err))
	assert.Equal(t, 7*time.Second, RetryAfterOf(err))
}

func TestConnectionRefusedIsNetworkTransient(t *testing.T) {
	b := newHTTPBackend(Config{ID: "c1", Endpoint: "http://127.0.0.1:1"})
	err := b.postJSON(context.Background(), "/x", map[string]any{}, nil)
	require.Error(t, err)
	assert.Equal(t, ErrKindNetworkTransient, KindOf(err))
}

func TestAuthHeadersSent(t *testing.T) {
	var gotKey, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-Api-Key")
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	b := newHTTPBackend(Config{
		ID:       "c1",
		Endpoint: srv.URL,
		Auth:     AuthConfig{Method: AuthAPIKey, APIKey: "secret-key"},
	})
	require.NoError(t, b.postJSON(context.Background(), "/x", map[string]any{}, nil))
	assert.Equal(t, "secret-key", gotKey)
	assert.Empty(t, gotAuth)
}

func TestSIEMQueryEndToEnd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/search", r.URL.Path)
		var req siemSearchRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "src_ip:203.0.113.9", req.Query)

		_ = json.NewEncoder(w).Encode(siemSearchResponse{
			Results: []struct {
				Timestamp time.Time      `json:"timestamp"`
				Index     string         `json:"index"`
				Fields    map[string]any `json:"fields"`
			}{
				{
					Timestamp: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
					Index:     "firewall",
					Fields:    map[string]any{"src_ip": "203.0.113.9", "action": "deny"},
				},
			},
			Entities:  map[string][]string{"ip": {"203.0.113.9"}},
			Truncated: true,
		})
	}))
	defer srv.Close()

	c := NewSIEM()
	require.NoError(t, c.Initialize(context.Background(), Config{ID: "siem-a", Endpoint: srv.URL}))

	res, err := c.Query(context.Background(), QueryRequest{Query: "src_ip:203.0.113.9"})
	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	assert.Equal(t, "firewall", res.Records[0].Source)
	assert.Equal(t, "deny", res.Records[0].Fields["action"])
	assert.Equal(t, []string{"203.0.113.9"}, res.Entities["ip"])
	assert.False(t, res.Complete, "truncated search is reported incomplete")
}

func TestThreatIntelEnrich(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/indicators/lookup", r.URL.Path)
		_ = json.NewEncoder(w).Encode(reputationResponse{
			Indicator:  "203.0.113.9",
			Type:       "ip",
			Verdict:    "malicious",
			Confidence: 0.92,
			Tags:       []string{"botnet"},
			Context:    map[string]any{"first_seen": "2026-01-10"},
		})
	}))
	defer srv.Close()

	c := NewThreatIntel()
	require.NoError(t, c.Initialize(context.Background(), Config{ID: "ti-a", Endpoint: srv.URL}))

	e, err := c.Enrich(context.Background(), "ip", "203.0.113.9")
	require.NoError(t, err)
	assert.Equal(t, "malicious", e.Verdict)
	assert.InDelta(t, 0.92, e.Confidence, 1e-9)
	assert.Equal(t, []string{"botnet"}, e.Attributes["tags"])
	assert.Equal(t, "2026-01-10", e.Attributes["first_seen"])
}

func TestInitializeRequiresEndpoint(t *testing.T) {
	for _, c := range []Connector{NewSIEM(), NewEDR(), NewThreatIntel()} {
		err := c.Initialize(context.Background(), Config{ID: "x"})
		require.Error(t, err)
		assert.Equal(t, ErrKindValidation, KindOf(err))
	}
}
