package e2e

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/connector"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/events"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/models"
	testdb "github.com/NeoCh3n/NeonharbourSecurity-sub001/test/database"
)

// TestExactlyOnceClaimAcrossReplicas runs two replicas against one shared
// schema and verifies the row-level claim: every investigation reaches a
// terminal state and is started by exactly one replica.
func TestExactlyOnceClaimAcrossReplicas(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)

	seed := func(app *TestApp) {
		app.SeedConnector(connector.KindSIEM, "siem-a", 1,
			connector.NewMemory(connector.KindSIEM).Seed(denyRecords(2)...))
	}

	podA := newTestApp(t, WithDatabase(shared.NewClient(t)), WithPodID("pod-a"), WithWorkers(2))
	seed(podA)
	podB := newTestApp(t, WithDatabase(shared.NewClient(t)), WithPodID("pod-b"), WithWorkers(2))
	seed(podB)

	const runs = 6
	ids := make([]string, 0, runs)
	for i := 0; i < runs; i++ {
		ids = append(ids, podA.StartInvestigation(models.StartInvestigationRequest{
			Alert:          criticalAlert(fmt.Sprintf("alert-mr-%d", i)),
			CorrelationKey: fmt.Sprintf("replica-%d", i),
		}))
	}

	for _, id := range ids {
		inv := podA.WaitTerminal(id, 60*time.Second)
		assert.Equal(t, models.StatusComplete, inv.Status, "investigation %s", id)

		started := 0
		stream := podA.RunEvents(id)
		for i, ev := range stream {
			require.Equal(t, int64(i+1), ev.Params.Sequence,
				"sequence gap in %s at index %d", id, i)
			if ev.Method == events.MethodRunStarted {
				started++
			}
		}
		assert.Equal(t, 1, started, "investigation %s claimed more than once", id)
	}
}
