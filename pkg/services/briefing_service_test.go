package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/missionctl/missionctl/ent"
	"github.com/missionctl/missionctl/ent/usageevent"
	"github.com/missionctl/missionctl/pkg/briefing"
	"github.com/missionctl/missionctl/pkg/calendar"
	"github.com/missionctl/missionctl/pkg/config"
	"github.com/missionctl/missionctl/pkg/llm"
	testdb "github.com/missionctl/missionctl/test/database"
)

func briefingFixture(t *testing.T, provider llm.Provider) (*BriefingService, *ent.Client) {
	t.Helper()
	client := testdb.NewTestClient(t)
	store := NewCatalogService(client.Client)
	llmCfg := config.DefaultLLMConfig()
	providers := map[string]llm.Provider{}
	if provider != nil {
		providers[provider.Name()] = provider
	}
	dispatcher := llm.NewDispatcherWithProviders(store, llmCfg, 0, providers)
	windowing := calendar.NewWindowing(time.UTC, 8*60, 18*60)
	return NewBriefingService(client.Client, windowing, dispatcher, store, llmCfg), client.Client
}

func TestBriefingService_GetBriefing(t *testing.T) {
	provider := &fakeProvider{
		name:   "openai",
		result: llm.ProviderResult{Text: "Your morning is clear. Start with the cutover checklist.", InputTokens: 400, OutputTokens: 40},
	}
	svc, client := briefingFixture(t, provider)
	tasks := NewTaskService(client)
	ctx := context.Background()

	_, err := tasks.Create(ctx, testOwner, CreateTaskInput{Title: "Cutover checklist"})
	require.NoError(t, err)
	done, err := tasks.Create(ctx, testOwner, CreateTaskInput{Title: "Yesterday's report"})
	require.NoError(t, err)
	_, err = tasks.Update(ctx, testOwner, done.ID, UpdateTaskInput{Status: strPtr("done")})
	require.NoError(t, err)

	date := time.Now().UTC().Format("2006-01-02")

	response, err := svc.GetBriefing(ctx, testOwner, date, "morning")
	require.NoError(t, err)
	assert.Equal(t, date, response.RequestedDate)
	assert.Equal(t, briefing.ModeMorning, response.Mode)
	assert.NotEmpty(t, response.Narrative)
	require.NotNil(t, response.LLM)
	assert.Equal(t, "openai", response.LLM.Provider)
	assert.Empty(t, response.LLM.CacheStatus)

	t.Run("repeat serves the cached narrative", func(t *testing.T) {
		again, err := svc.GetBriefing(ctx, testOwner, date, "morning")
		require.NoError(t, err)
		assert.Equal(t, response.Narrative, again.Narrative)
		require.NotNil(t, again.LLM)
		assert.Equal(t, "hit", again.LLM.CacheStatus)
		// No model call happened, so no latency to report.
		assert.Zero(t, again.LLM.LatencyMs)

		hits, err := client.UsageEvent.Query().
			Where(usageevent.StatusEQ(usageevent.StatusCacheHit)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, hits)
	})

	t.Run("empty date defaults to today", func(t *testing.T) {
		response, err := svc.GetBriefing(ctx, testOwner, "", "morning")
		require.NoError(t, err)
		assert.Equal(t, date, response.RequestedDate)
	})

	t.Run("validates input", func(t *testing.T) {
		_, err := svc.GetBriefing(ctx, testOwner, "someday", "morning")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))

		_, err = svc.GetBriefing(ctx, testOwner, date, "noon")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestBriefingService_Narrative(t *testing.T) {
	provider := &fakeProvider{
		name:   "openai",
		result: llm.ProviderResult{Text: "Quiet afternoon. Close out the contract review before standup.", InputTokens: 300, OutputTokens: 30},
	}
	svc, _ := briefingFixture(t, provider)
	ctx := context.Background()
	date := time.Now().UTC().Format("2006-01-02")

	composed := briefing.Compose(briefing.ComposeInput{
		RequestedDate: date,
		Mode:          briefing.ModeMidday,
		Now:           time.Now().UTC(),
		Location:      time.UTC,
	})

	result, err := svc.Narrative(ctx, testOwner, composed)
	require.NoError(t, err)
	assert.Equal(t, briefing.ModeMidday, result.Mode)
	assert.NotEmpty(t, result.Narrative)
	require.NotNil(t, result.LLM)
	assert.Equal(t, "openai", result.LLM.Provider)

	t.Run("repeat serves the cached narrative", func(t *testing.T) {
		again, err := svc.Narrative(ctx, testOwner, composed)
		require.NoError(t, err)
		assert.Equal(t, result.Narrative, again.Narrative)
		require.NotNil(t, again.LLM)
		assert.Equal(t, "hit", again.LLM.CacheStatus)
		assert.Zero(t, again.LLM.LatencyMs)
	})

	t.Run("validates the supplied briefing", func(t *testing.T) {
		bad := composed
		bad.RequestedDate = "someday"
		_, err := svc.Narrative(ctx, testOwner, bad)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))

		bad = composed
		bad.Mode = "noon"
		_, err = svc.Narrative(ctx, testOwner, bad)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestBriefingService_NarrativeRejected(t *testing.T) {
	provider := &fakeProvider{
		name:   "openai",
		result: llm.ProviderResult{Text: "- bullet one\n- bullet two"},
	}
	svc, client := briefingFixture(t, provider)
	ctx := context.Background()
	date := time.Now().UTC().Format("2006-01-02")

	// A rejected narrative degrades to the structured briefing alone and is
	// never cached.
	response, err := svc.GetBriefing(ctx, testOwner, date, "morning")
	require.NoError(t, err)
	assert.Empty(t, response.Narrative)
	assert.Nil(t, response.LLM)

	_, err = svc.GetBriefing(ctx, testOwner, date, "morning")
	require.NoError(t, err)
	hits, err := client.UsageEvent.Query().
		Where(usageevent.StatusEQ(usageevent.StatusCacheHit)).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, hits)
}

func TestBriefingService_NoModelConfigured(t *testing.T) {
	svc, _ := briefingFixture(t, nil)
	ctx := context.Background()

	response, err := svc.GetBriefing(ctx, testOwner, time.Now().UTC().Format("2006-01-02"), "midday")
	require.NoError(t, err)
	assert.Empty(t, response.Narrative)
	assert.Nil(t, response.LLM)
	assert.Equal(t, briefing.ModeMidday, response.Mode)
}
