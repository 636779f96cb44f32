package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/missionctl/missionctl/ent"
	"github.com/missionctl/missionctl/ent/inboxitem"
	"github.com/missionctl/missionctl/ent/ingestionevent"
	"github.com/missionctl/missionctl/ent/task"
	"github.com/missionctl/missionctl/pkg/config"
	"github.com/missionctl/missionctl/pkg/llm"
	"github.com/missionctl/missionctl/pkg/models"
	testdb "github.com/missionctl/missionctl/test/database"
)

// fakeProvider returns a canned response, standing in for a vendor SDK.
type fakeProvider struct {
	name   string
	result llm.ProviderResult
	err    error
}

func (p *fakeProvider) Name() string { return p.name }

func (p *fakeProvider) Generate(_ context.Context, _ llm.GenerateRequest) (llm.ProviderResult, error) {
	return p.result, p.err
}

// recordingProvider keeps the last request so tests can inspect the prompt.
type recordingProvider struct {
	fakeProvider
	lastRequest llm.GenerateRequest
}

func (p *recordingProvider) Generate(ctx context.Context, req llm.GenerateRequest) (llm.ProviderResult, error) {
	p.lastRequest = req
	return p.fakeProvider.Generate(ctx, req)
}

func intakeFixture(t *testing.T, provider llm.Provider) (*IntakeService, *ent.Client) {
	t.Helper()
	client := testdb.NewTestClient(t)
	store := NewCatalogService(client.Client)
	llmCfg := config.DefaultLLMConfig()
	providers := map[string]llm.Provider{}
	if provider != nil {
		providers[provider.Name()] = provider
	}
	dispatcher := llm.NewDispatcherWithProviders(store, llmCfg, 0, providers)
	return NewIntakeService(client.Client, dispatcher, llmCfg), client.Client
}

func sampleEmail() models.IntakeEmail {
	return models.IntakeEmail{
		Subject:     "Acme ERP cutover prep",
		FromEmail:   "nancy@example.com",
		FromName:    "Nancy",
		ReceivedAt:  time.Date(2026, 8, 26, 9, 30, 0, 0, time.UTC),
		MessageID:   "<msg-1@example.com>",
		BodySnippet: "Please line up the cutover checklist before Friday.",
	}
}

const extractionJSON = `{
	"title": "Prepare cutover checklist",
	"description": "Checklist for the ERP cutover rehearsal",
	"task_type": "follow_up",
	"estimated_minutes": 60,
	"due_guess_iso": "2026-08-28",
	"priority_score": 70,
	"stakeholder_mentions": ["Nancy"],
	"implementation_guess": "acme erp",
	"implementation_confidence": 0.9,
	"confidence": 0.92,
	"suggested_checklist": ["Confirm freeze window", "Draft rollback steps"]
}`

func TestIntakeService_ProcessEmail(t *testing.T) {
	provider := &fakeProvider{
		name:   "openai",
		result: llm.ProviderResult{Text: extractionJSON, InputTokens: 600, OutputTokens: 120},
	}
	svc, client := intakeFixture(t, provider)
	apps := NewApplicationService(client)
	ctx := context.Background()

	app, err := apps.Create(ctx, testOwner, CreateApplicationInput{Name: "Acme ERP"})
	require.NoError(t, err)

	result, err := svc.ProcessEmail(ctx, testOwner, sampleEmail())
	require.NoError(t, err)
	require.NotNil(t, result.Task)
	assert.False(t, result.Duplicate)

	t.Run("task carries the extraction", func(t *testing.T) {
		created := result.Task
		assert.Equal(t, "Prepare cutover checklist", created.Title)
		assert.Equal(t, task.TaskTypeFollowUp, created.TaskType)
		assert.Equal(t, task.SourceTypeEmail, created.SourceType)
		assert.Equal(t, task.EstimateSourceLlm, created.EstimateSource)
		assert.Equal(t, 60, created.EstimatedMinutes)
		assert.False(t, created.NeedsReview)
		require.NotNil(t, created.ApplicationID)
		assert.Equal(t, app.ID, *created.ApplicationID)
		require.NotNil(t, created.DueAt)
		assert.Equal(t, "2026-08-28", created.DueAt.UTC().Format("2006-01-02"))
		// Base 70 plus intake boosts, clipped to 100.
		assert.Greater(t, created.PriorityScore, 70.0)
		assert.LessOrEqual(t, created.PriorityScore, 100.0)

		items, err := client.ChecklistItem.Query().All(ctx)
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("inbox item is processed", func(t *testing.T) {
		item := result.InboxItem
		assert.Equal(t, inboxitem.TriageStateProcessed, item.TriageState)
		require.NotNil(t, item.ExtractionConfidence)
		assert.InDelta(t, 0.92, *item.ExtractionConfidence, 1e-9)
		require.NotNil(t, item.ExtractionModel)
		assert.Equal(t, "openai/gpt-4o-mini", *item.ExtractionModel)
		assert.Nil(t, item.ProcessingError)
	})

	t.Run("event trail", func(t *testing.T) {
		events, err := svc.Events(ctx, testOwner, result.InboxItem.ID)
		require.NoError(t, err)
		require.Len(t, events, 3)
		assert.Equal(t, ingestionevent.EventTypeReceived, events[0].EventType)
		assert.Equal(t, ingestionevent.EventTypeExtracted, events[1].EventType)
		assert.Equal(t, ingestionevent.EventTypeTaskCreated, events[2].EventType)
	})

	t.Run("duplicate short-circuits", func(t *testing.T) {
		dup, err := svc.ProcessEmail(ctx, testOwner, sampleEmail())
		require.NoError(t, err)
		assert.True(t, dup.Duplicate)
		assert.Nil(t, dup.Task)
		assert.Equal(t, result.InboxItem.ID, dup.InboxItem.ID)

		events, err := svc.Events(ctx, testOwner, result.InboxItem.ID)
		require.NoError(t, err)
		assert.Equal(t, ingestionevent.EventTypeDeduped, events[len(events)-1].EventType)

		count, err := client.Task.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("validates input", func(t *testing.T) {
		_, err := svc.ProcessEmail(ctx, testOwner, models.IntakeEmail{FromEmail: "a@b.c", ReceivedAt: time.Now()})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))

		_, err = svc.ProcessEmail(ctx, testOwner, models.IntakeEmail{Subject: "x", ReceivedAt: time.Now()})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))

		_, err = svc.ProcessEmail(ctx, testOwner, models.IntakeEmail{Subject: "x", FromEmail: "a@b.c"})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestIntakeService_LowConfidence(t *testing.T) {
	provider := &fakeProvider{
		name: "openai",
		result: llm.ProviderResult{Text: `{
			"title": "Maybe follow up with vendor",
			"implementation_guess": "acme erp",
			"implementation_confidence": 0.4,
			"confidence": 0.5
		}`},
	}
	svc, client := intakeFixture(t, provider)
	apps := NewApplicationService(client)
	ctx := context.Background()

	_, err := apps.Create(ctx, testOwner, CreateApplicationInput{Name: "Acme ERP"})
	require.NoError(t, err)

	result, err := svc.ProcessEmail(ctx, testOwner, sampleEmail())
	require.NoError(t, err)
	require.NotNil(t, result.Task)

	// Low extraction confidence flags the task; a weak implementation guess
	// never links an application.
	assert.True(t, result.Task.NeedsReview)
	assert.Nil(t, result.Task.ApplicationID)
	assert.Equal(t, task.TaskTypeTask, result.Task.TaskType)
}

// The extraction prompt names the owner's workstreams so implementation_guess
// can land on one of them.
func TestIntakeService_PromptCarriesWorkstreams(t *testing.T) {
	provider := &recordingProvider{fakeProvider: fakeProvider{
		name:   "openai",
		result: llm.ProviderResult{Text: extractionJSON},
	}}
	svc, client := intakeFixture(t, provider)
	apps := NewApplicationService(client)
	ctx := context.Background()

	_, err := apps.Create(ctx, testOwner, CreateApplicationInput{
		Name:     "Acme ERP",
		Keywords: []string{"erp", "cutover"},
	})
	require.NoError(t, err)
	_, err = apps.Create(ctx, testOwner, CreateApplicationInput{Name: "Billing Portal"})
	require.NoError(t, err)

	_, err = svc.ProcessEmail(ctx, testOwner, sampleEmail())
	require.NoError(t, err)

	prompt := provider.lastRequest.User
	assert.Contains(t, prompt, "Known workstreams:")
	assert.Contains(t, prompt, "Acme ERP")
	assert.Contains(t, prompt, "erp, cutover")
	assert.Contains(t, prompt, "Billing Portal")
}

func TestIntakeService_ExtractionFailure(t *testing.T) {
	ctx := context.Background()

	t.Run("model output rejected", func(t *testing.T) {
		provider := &fakeProvider{
			name:   "openai",
			result: llm.ProviderResult{Text: "I could not find a task in this email."},
		}
		svc, client := intakeFixture(t, provider)

		result, err := svc.ProcessEmail(ctx, testOwner, sampleEmail())
		require.NoError(t, err)
		assert.Nil(t, result.Task)
		assert.True(t, result.ExtractionFailed)
		assert.Equal(t, inboxitem.TriageStateError, result.InboxItem.TriageState)
		require.NotNil(t, result.InboxItem.ProcessingError)
		assert.Contains(t, *result.InboxItem.ProcessingError, "extraction output")

		events, err := svc.Events(ctx, testOwner, result.InboxItem.ID)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, ingestionevent.EventTypeError, events[1].EventType)

		count, err := client.Task.Query().Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("no provider configured", func(t *testing.T) {
		svc, _ := intakeFixture(t, nil)

		result, err := svc.ProcessEmail(ctx, testOwner, sampleEmail())
		require.NoError(t, err)
		assert.Nil(t, result.Task)
		assert.True(t, result.ExtractionFailed)
		assert.Equal(t, inboxitem.TriageStateError, result.InboxItem.TriageState)
		require.NotNil(t, result.InboxItem.ProcessingError)
		assert.Contains(t, *result.InboxItem.ProcessingError, "no extraction model")
	})
}

func TestIntakeService_Inbox(t *testing.T) {
	provider := &fakeProvider{
		name:   "openai",
		result: llm.ProviderResult{Text: `{"title": "One task", "confidence": 0.9}`},
	}
	svc, _ := intakeFixture(t, provider)
	ctx := context.Background()

	email := sampleEmail()
	_, err := svc.ProcessEmail(ctx, testOwner, email)
	require.NoError(t, err)
	email.MessageID = "<msg-2@example.com>"
	email.Subject = "Second email"
	_, err = svc.ProcessEmail(ctx, testOwner, email)
	require.NoError(t, err)

	items, err := svc.Inbox(ctx, testOwner, "", 0)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	processed, err := svc.Inbox(ctx, testOwner, "processed", 0)
	require.NoError(t, err)
	assert.Len(t, processed, 2)

	_, err = svc.Inbox(ctx, testOwner, "snoozed", 0)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}
