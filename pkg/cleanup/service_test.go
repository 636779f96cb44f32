package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/missionctl/missionctl/ent"
	"github.com/missionctl/missionctl/ent/usageevent"
	"github.com/missionctl/missionctl/pkg/config"
	"github.com/missionctl/missionctl/pkg/services"
	testdb "github.com/missionctl/missionctl/test/database"
)

const testOwner = "owner-1"

func setupService(t *testing.T) (*ent.Client, *Service) {
	t.Helper()
	client := testdb.NewTestClient(t)
	catalog := services.NewCatalogService(client.Client)
	sessions := services.NewSessionService(client.Client)
	cfg := &config.RetentionConfig{
		UsageEventRetentionDays: 90,
		SnapshotRetentionDays:   14,
		CleanupInterval:         1 * time.Hour,
	}
	return client.Client, NewService(cfg, catalog, sessions)
}

func insertUsageEvent(t *testing.T, client *ent.Client, createdAt time.Time) string {
	t.Helper()
	id := uuid.New().String()
	err := client.UsageEvent.Create().
		SetID(id).
		SetOwnerID(testOwner).
		SetFeature("briefing").
		SetProvider("openai").
		SetModelID("gpt-4o-mini").
		SetModelSource(usageevent.ModelSourceDefault).
		SetStatus(usageevent.StatusSuccess).
		SetLatencyMs(120).
		SetCreatedAt(createdAt).
		Exec(context.Background())
	require.NoError(t, err)
	return id
}

func TestService_PrunesOldUsageEvents(t *testing.T) {
	client, svc := setupService(t)
	ctx := context.Background()

	insertUsageEvent(t, client, time.Now().UTC().AddDate(0, 0, -120))
	kept := insertUsageEvent(t, client, time.Now().UTC().AddDate(0, 0, -5))

	svc.runAll(ctx)

	remaining, err := client.UsageEvent.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, kept, remaining[0].ID)
}

func TestService_SweepsExpiredSessions(t *testing.T) {
	client, svc := setupService(t)
	sessions := services.NewSessionService(client)
	ctx := context.Background()

	stale, err := sessions.Create(ctx, testOwner, time.Hour)
	require.NoError(t, err)
	err = client.UserSession.UpdateOneID(stale.ID).
		SetExpiresAt(time.Now().UTC().Add(-time.Minute)).
		Exec(ctx)
	require.NoError(t, err)

	live, err := sessions.Create(ctx, testOwner, time.Hour)
	require.NoError(t, err)

	svc.runAll(ctx)

	_, err = sessions.Validate(ctx, stale.Token)
	assert.ErrorIs(t, err, services.ErrNotFound)
	_, err = sessions.Validate(ctx, live.Token)
	assert.NoError(t, err)
}

func TestService_DisabledUsageRetention(t *testing.T) {
	client, svc := setupService(t)
	svc.config.UsageEventRetentionDays = 0
	ctx := context.Background()

	insertUsageEvent(t, client, time.Now().UTC().AddDate(0, 0, -400))

	svc.runAll(ctx)

	count, err := client.UsageEvent.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestService_StartStop(t *testing.T) {
	_, svc := setupService(t)

	svc.Start(context.Background())
	// Second Start is a no-op.
	svc.Start(context.Background())
	svc.Stop()
}
