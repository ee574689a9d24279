package cleanup

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/clock"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/config"
)

type memRetentionStore struct {
	mu           sync.Mutex
	softCutoffs  []time.Time
	purgeCutoffs []time.Time
	softCount    int
	purgeCount   int
}

func (m *memRetentionStore) SoftDeleteTerminalBefore(_ context.Context, cutoff time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.softCutoffs = append(m.softCutoffs, cutoff)
	return m.softCount, nil
}

func (m *memRetentionStore) PurgeDeletedBefore(_ context.Context, cutoff time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.purgeCutoffs = append(m.purgeCutoffs, cutoff)
	return m.purgeCount, nil
}

type memExpirer struct {
	mu      sync.Mutex
	cutoffs []time.Time
	expired []string
}

func (m *memExpirer) ExpirePending(_ context.Context, cutoff time.Time) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cutoffs = append(m.cutoffs, cutoff)
	return m.expired, nil
}

func retentionConfig() *config.RetentionConfig {
	return &config.RetentionConfig{
		InvestigationRetentionDays: 30,
		PurgeAfter:                 7 * 24 * time.Hour,
		CleanupInterval:            time.Hour,
	}
}

func TestRunAllUsesConfiguredCutoffs(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	store := &memRetentionStore{softCount: 3, purgeCount: 1}
	expirer := &memExpirer{expired: []string{"appr-1"}}

	svc := NewService(Options{
		Retention:   retentionConfig(),
		Store:       store,
		Approvals:   expirer,
		ApprovalTTL: 15 * time.Minute,
		Clock:       clock.NewFake(now),
	})
	svc.RunAll(context.Background())

	require.Len(t, store.softCutoffs, 1)
	assert.Equal(t, now.AddDate(0, 0, -30), store.softCutoffs[0])
	require.Len(t, store.purgeCutoffs, 1)
	assert.Equal(t, now.Add(-7*24*time.Hour), store.purgeCutoffs[0])
	require.Len(t, expirer.cutoffs, 1)
	assert.Equal(t, now.Add(-15*time.Minute), expirer.cutoffs[0])
}

func TestRunAllWithoutApprovalExpirer(t *testing.T) {
	store := &memRetentionStore{}
	svc := NewService(Options{
		Retention: retentionConfig(),
		Store:     store,
	})
	svc.RunAll(context.Background())
	assert.Len(t, store.softCutoffs, 1)
}

func TestStartRunsImmediatelyAndStops(t *testing.T) {
	store := &memRetentionStore{}
	svc := NewService(Options{
		Retention: retentionConfig(),
		Store:     store,
	})

	svc.Start(context.Background())
	defer svc.Stop()

	require.Eventually(t, func() bool {
		store.mu.Lock()
		defer store.mu.Unlock()
		return len(store.softCutoffs) >= 1
	}, time.Second, 10*time.Millisecond)

	svc.Stop()
	store.mu.Lock()
	runs := len(store.softCutoffs)
	store.mu.Unlock()
	assert.Equal(t, 1, runs)
}
