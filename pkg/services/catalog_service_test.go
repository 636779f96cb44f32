package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/missionctl/missionctl/pkg/config"
	"github.com/missionctl/missionctl/pkg/llm"
	testdb "github.com/missionctl/missionctl/test/database"
)

func TestCatalogService_EnsureDefaults(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewCatalogService(client.Client)
	ctx := context.Background()

	seeds := config.BuiltinCatalog()
	require.NoError(t, svc.EnsureDefaults(ctx, seeds))

	models, err := svc.ListModels(ctx)
	require.NoError(t, err)
	assert.Len(t, models, len(seeds))
	// Display order follows sort_order.
	assert.Equal(t, "gpt-4o-mini", models[0].ModelID)

	t.Run("reseed keeps operator edits", func(t *testing.T) {
		edited, err := client.ModelCatalogEntry.UpdateOneID(models[0].ID).
			SetInputPricePerMtok(9.99).
			Save(ctx)
		require.NoError(t, err)

		require.NoError(t, svc.EnsureDefaults(ctx, seeds))

		reloaded, err := client.ModelCatalogEntry.Get(ctx, edited.ID)
		require.NoError(t, err)
		require.NotNil(t, reloaded.InputPricePerMtok)
		assert.Equal(t, 9.99, *reloaded.InputPricePerMtok)

		count, err := client.ModelCatalogEntry.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, len(seeds), count)
	})
}

func TestCatalogService_Preferences(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewCatalogService(client.Client)
	ctx := context.Background()
	require.NoError(t, svc.EnsureDefaults(ctx, config.BuiltinCatalog()))

	models, err := svc.ListModels(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, models)

	t.Run("set and read back", func(t *testing.T) {
		_, err := svc.SetPreference(ctx, testOwner, config.FeatureBriefingNarrative, models[0].ID)
		require.NoError(t, err)

		prefs, err := svc.Preferences(ctx, testOwner)
		require.NoError(t, err)
		require.Contains(t, prefs, config.FeatureBriefingNarrative)
		assert.Equal(t, models[0].ID, prefs[config.FeatureBriefingNarrative].ID)

		ref, err := svc.Preference(ctx, testOwner, config.FeatureBriefingNarrative)
		require.NoError(t, err)
		require.NotNil(t, ref)
		assert.Equal(t, models[0].ModelID, ref.ModelID)
	})

	t.Run("set again replaces", func(t *testing.T) {
		_, err := svc.SetPreference(ctx, testOwner, config.FeatureBriefingNarrative, models[1].ID)
		require.NoError(t, err)

		ref, err := svc.Preference(ctx, testOwner, config.FeatureBriefingNarrative)
		require.NoError(t, err)
		require.NotNil(t, ref)
		assert.Equal(t, models[1].ModelID, ref.ModelID)
	})

	t.Run("validates input", func(t *testing.T) {
		_, err := svc.SetPreference(ctx, testOwner, "autocomplete", models[0].ID)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))

		_, err = svc.SetPreference(ctx, testOwner, config.FeatureGlobalDefault, "ghost")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects disabled entries", func(t *testing.T) {
		disabled, err := client.ModelCatalogEntry.UpdateOneID(models[2].ID).
			SetEnabled(false).
			Save(ctx)
		require.NoError(t, err)

		_, err = svc.SetPreference(ctx, testOwner, config.FeatureIntakeExtraction, disabled.ID)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("clear is idempotent", func(t *testing.T) {
		require.NoError(t, svc.ClearPreference(ctx, testOwner, config.FeatureBriefingNarrative))
		ref, err := svc.Preference(ctx, testOwner, config.FeatureBriefingNarrative)
		require.NoError(t, err)
		assert.Nil(t, ref)

		require.NoError(t, svc.ClearPreference(ctx, testOwner, config.FeatureBriefingNarrative))
	})
}

func TestCatalogService_CatalogEntry(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewCatalogService(client.Client)
	ctx := context.Background()
	require.NoError(t, svc.EnsureDefaults(ctx, config.BuiltinCatalog()))

	entry, err := svc.CatalogEntry(ctx, "openai", "gpt-4o-mini")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.True(t, entry.Enabled)
	require.NotNil(t, entry.InputPricePerMTok)
	assert.Equal(t, 0.15, *entry.InputPricePerMTok)

	missing, err := svc.CatalogEntry(ctx, "openai", "gpt-9")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCatalogService_Usage(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewCatalogService(client.Client)
	ctx := context.Background()

	record := func(status string, in, out int, cost float64) llm.UsageRecord {
		return llm.UsageRecord{
			OwnerID:          testOwner,
			Feature:          config.FeatureBriefingNarrative,
			Provider:         "openai",
			ModelID:          "gpt-4o-mini",
			Source:           "default",
			Status:           status,
			LatencyMs:        120,
			InputTokens:      intPtr(in),
			OutputTokens:     intPtr(out),
			EstimatedCostUSD: &cost,
		}
	}
	require.NoError(t, svc.InsertUsage(ctx, record("success", 800, 150, 0.0012)))
	require.NoError(t, svc.InsertUsage(ctx, record("success", 900, 180, 0.0015)))
	require.NoError(t, svc.InsertUsage(ctx, llm.UsageRecord{
		OwnerID:  testOwner,
		Feature:  config.FeatureBriefingNarrative,
		Provider: "openai",
		ModelID:  "gpt-4o-mini",
		Source:   "default",
		Status:   "error",
	}))

	summary, err := svc.Usage(ctx, testOwner, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Events)
	assert.Equal(t, 1700, summary.InputTokens)
	assert.Equal(t, 330, summary.OutputTokens)
	assert.InDelta(t, 0.0027, summary.CostUSD, 1e-9)
	assert.Equal(t, map[string]int{"success": 2, "error": 1}, summary.ByStatus)

	t.Run("prune drops old rows", func(t *testing.T) {
		n, err := svc.PruneUsage(ctx, time.Now().Add(time.Minute))
		require.NoError(t, err)
		assert.Equal(t, 3, n)

		summary, err := svc.Usage(ctx, testOwner, time.Now().Add(-time.Hour))
		require.NoError(t, err)
		assert.Zero(t, summary.Events)
	})
}
