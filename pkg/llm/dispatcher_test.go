package llm

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/missionctl/missionctl/pkg/config"
)

type fakeStore struct {
	mu          sync.Mutex
	preferences map[string]config.ModelRef // feature → ref
	catalog     map[string]CatalogEntry    // provider|model → entry
	usage       []UsageRecord
	pruned      []time.Time
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		preferences: make(map[string]config.ModelRef),
		catalog:     make(map[string]CatalogEntry),
	}
}

func (s *fakeStore) addCatalog(entry CatalogEntry) {
	s.catalog[entry.Provider+"|"+entry.ModelID] = entry
}

func (s *fakeStore) Preference(_ context.Context, _, feature string) (*config.ModelRef, error) {
	if ref, ok := s.preferences[feature]; ok {
		return &ref, nil
	}
	return nil, nil
}

func (s *fakeStore) CatalogEntry(_ context.Context, provider, modelID string) (*CatalogEntry, error) {
	if entry, ok := s.catalog[provider+"|"+modelID]; ok {
		return &entry, nil
	}
	return nil, nil
}

func (s *fakeStore) InsertUsage(_ context.Context, record UsageRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.usage = append(s.usage, record)
	return nil
}

func (s *fakeStore) PruneUsage(_ context.Context, before time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pruned = append(s.pruned, before)
	return 0, nil
}

func (s *fakeStore) statuses() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.usage))
	for i, r := range s.usage {
		out[i] = r.Status
	}
	return out
}

type fakeProvider struct {
	name    string
	text    string
	err     error
	blockOn bool // block until ctx is cancelled
	calls   int
}

func (p *fakeProvider) Name() string { return p.name }

func (p *fakeProvider) Generate(ctx context.Context, _ GenerateRequest) (ProviderResult, error) {
	p.calls++
	if p.blockOn {
		<-ctx.Done()
		return ProviderResult{}, ctx.Err()
	}
	if p.err != nil {
		return ProviderResult{}, p.err
	}
	return ProviderResult{Text: p.text, InputTokens: 100, OutputTokens: 40}, nil
}

func testLLMConfig() *config.LLMConfig {
	return &config.LLMConfig{
		NarrativeTimeoutMs:  4500,
		ExtractionTimeoutMs: 12000,
		DefaultChains: map[string][]config.ModelRef{
			config.FeatureBriefingNarrative: {
				{Provider: config.ProviderOpenAI, ModelID: "gpt-4o-mini"},
				{Provider: config.ProviderAnthropic, ModelID: "claude-3-5-haiku-20241022"},
			},
			config.FeatureGlobalDefault: {
				{Provider: config.ProviderOpenAI, ModelID: "gpt-4o-mini"},
			},
		},
	}
}

func narrativeRequest() TextRequest {
	return TextRequest{
		Feature:            config.FeatureBriefingNarrative,
		SystemPrompt:       "system",
		UserPrompt:         "user",
		Temperature:        0.4,
		MaxTokens:          300,
		TimeoutMs:          2000,
		RequestFingerprint: "fp-1",
	}
}

func TestResolveCandidates(t *testing.T) {
	chain := []config.ModelRef{
		{Provider: "openai", ModelID: "gpt-4o-mini"},
		{Provider: "anthropic", ModelID: "claude-3-5-haiku-20241022"},
	}

	t.Run("no preferences", func(t *testing.T) {
		got := ResolveCandidates(nil, nil, chain)
		require.Len(t, got, 2)
		assert.Equal(t, SourceDefault, got[0].Source)
		assert.Equal(t, "gpt-4o-mini", got[0].ModelID)
	})

	t.Run("feature override first, chain deduplicated", func(t *testing.T) {
		pref := &config.ModelRef{Provider: "anthropic", ModelID: "claude-3-5-haiku-20241022"}
		got := ResolveCandidates(pref, nil, chain)
		require.Len(t, got, 2)
		assert.Equal(t, Candidate{Provider: "anthropic", ModelID: "claude-3-5-haiku-20241022", Source: SourceFeatureOverride}, got[0])
		assert.Equal(t, Candidate{Provider: "openai", ModelID: "gpt-4o-mini", Source: SourceDefault}, got[1])
	})

	t.Run("global default when no feature pref", func(t *testing.T) {
		global := &config.ModelRef{Provider: "openai", ModelID: "gpt-4o"}
		got := ResolveCandidates(nil, global, chain)
		require.Len(t, got, 3)
		assert.Equal(t, SourceGlobalDefault, got[0].Source)
		assert.Equal(t, "gpt-4o", got[0].ModelID)
	})

	t.Run("feature pref shadows global", func(t *testing.T) {
		pref := &config.ModelRef{Provider: "openai", ModelID: "gpt-4o"}
		global := &config.ModelRef{Provider: "anthropic", ModelID: "claude-sonnet-4-20250514"}
		got := ResolveCandidates(pref, global, chain)
		assert.Equal(t, SourceFeatureOverride, got[0].Source)
		for _, c := range got[1:] {
			assert.Equal(t, SourceDefault, c.Source)
		}
	})
}

func TestGenerateText_FirstCandidateSucceeds(t *testing.T) {
	store := newFakeStore()
	in, out := 0.15, 0.60
	store.addCatalog(CatalogEntry{
		Provider: "openai", ModelID: "gpt-4o-mini", Enabled: true,
		InputPricePerMTok: &in, OutputPricePerMTok: &out,
	})
	providers := map[string]Provider{
		"openai":    &fakeProvider{name: "openai", text: "  A   focused day.  "},
		"anthropic": &fakeProvider{name: "anthropic", text: "unused"},
	}
	d := NewDispatcherWithProviders(store, testLLMConfig(), 90*24*time.Hour, providers)

	result, err := d.GenerateText(context.Background(), "owner-1", narrativeRequest())
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "A focused day.", result.Text)
	assert.Equal(t, "openai", result.Meta.Provider)
	assert.Equal(t, SourceDefault, result.Meta.Source)
	require.NotNil(t, result.Meta.EstimatedCostUSD)
	// 100×0.15/1e6 + 40×0.60/1e6
	assert.InDelta(t, 0.000039, *result.Meta.EstimatedCostUSD, 1e-9)

	require.Len(t, store.usage, 1)
	assert.Equal(t, StatusSuccess, store.usage[0].Status)
	assert.Equal(t, "fp-1", store.usage[0].RequestFingerprint)
}

func TestGenerateText_FallsBackOnError(t *testing.T) {
	store := newFakeStore()
	providers := map[string]Provider{
		"openai":    &fakeProvider{name: "openai", err: errors.New("boom")},
		"anthropic": &fakeProvider{name: "anthropic", text: "From the fallback."},
	}
	d := NewDispatcherWithProviders(store, testLLMConfig(), 0, providers)

	result, err := d.GenerateText(context.Background(), "owner-1", narrativeRequest())
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "anthropic", result.Meta.Provider)
	assert.Equal(t, []string{StatusError, StatusSuccess}, store.statuses())
}

func TestGenerateText_TimeoutAdvancesChain(t *testing.T) {
	store := newFakeStore()
	providers := map[string]Provider{
		"openai":    &fakeProvider{name: "openai", blockOn: true},
		"anthropic": &fakeProvider{name: "anthropic", text: "Fallback text."},
	}
	d := NewDispatcherWithProviders(store, testLLMConfig(), 0, providers)

	req := narrativeRequest()
	req.TimeoutMs = MinTimeoutMs

	result, err := d.GenerateText(context.Background(), "owner-1", req)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, []string{StatusTimeout, StatusSuccess}, store.statuses())
}

func TestGenerateText_SkipsUnconfiguredProvider(t *testing.T) {
	store := newFakeStore()
	providers := map[string]Provider{
		// openai missing entirely: no API key.
		"anthropic": &fakeProvider{name: "anthropic", text: "Still works."},
	}
	d := NewDispatcherWithProviders(store, testLLMConfig(), 0, providers)

	result, err := d.GenerateText(context.Background(), "owner-1", narrativeRequest())
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, []string{StatusSkippedUnconfigured, StatusSuccess}, store.statuses())
}

func TestGenerateText_ExhaustedChainReturnsNil(t *testing.T) {
	store := newFakeStore()
	providers := map[string]Provider{
		"openai":    &fakeProvider{name: "openai", err: errors.New("boom")},
		"anthropic": &fakeProvider{name: "anthropic", err: errors.New("also boom")},
	}
	d := NewDispatcherWithProviders(store, testLLMConfig(), 0, providers)

	result, err := d.GenerateText(context.Background(), "owner-1", narrativeRequest())
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Equal(t, []string{StatusError, StatusError}, store.statuses())
}

func TestGenerateText_PreferenceRequiresEnabledCatalogRow(t *testing.T) {
	store := newFakeStore()
	store.preferences[config.FeatureBriefingNarrative] = config.ModelRef{Provider: "anthropic", ModelID: "claude-sonnet-4-20250514"}
	store.addCatalog(CatalogEntry{Provider: "anthropic", ModelID: "claude-sonnet-4-20250514", Enabled: false})

	providers := map[string]Provider{
		"openai":    &fakeProvider{name: "openai", text: "Default won."},
		"anthropic": &fakeProvider{name: "anthropic", text: "Preference won."},
	}
	d := NewDispatcherWithProviders(store, testLLMConfig(), 0, providers)

	result, err := d.GenerateText(context.Background(), "owner-1", narrativeRequest())
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "Default won.", result.Text)
	assert.Equal(t, SourceDefault, result.Meta.Source)
}

func TestGenerateText_EnabledPreferenceLeadsChain(t *testing.T) {
	store := newFakeStore()
	store.preferences[config.FeatureBriefingNarrative] = config.ModelRef{Provider: "anthropic", ModelID: "claude-sonnet-4-20250514"}
	store.addCatalog(CatalogEntry{Provider: "anthropic", ModelID: "claude-sonnet-4-20250514", Enabled: true})

	providers := map[string]Provider{
		"openai":    &fakeProvider{name: "openai", text: "Default."},
		"anthropic": &fakeProvider{name: "anthropic", text: "Preference."},
	}
	d := NewDispatcherWithProviders(store, testLLMConfig(), 0, providers)

	result, err := d.GenerateText(context.Background(), "owner-1", narrativeRequest())
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "Preference.", result.Text)
	assert.Equal(t, SourceFeatureOverride, result.Meta.Source)
	assert.Equal(t, "claude-sonnet-4-20250514", result.Meta.ModelID)
}

func TestGenerateText_CostNilWithoutPricing(t *testing.T) {
	store := newFakeStore()
	store.addCatalog(CatalogEntry{Provider: "openai", ModelID: "gpt-4o-mini", Enabled: true})
	providers := map[string]Provider{
		"openai": &fakeProvider{name: "openai", text: "No pricing."},
	}
	d := NewDispatcherWithProviders(store, testLLMConfig(), 0, providers)

	result, err := d.GenerateText(context.Background(), "owner-1", narrativeRequest())
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Nil(t, result.Meta.EstimatedCostUSD)
}

func TestGenerateText_PruneThrottledPerProcess(t *testing.T) {
	store := newFakeStore()
	providers := map[string]Provider{
		"openai": &fakeProvider{name: "openai", text: "ok"},
	}
	d := NewDispatcherWithProviders(store, testLLMConfig(), 90*24*time.Hour, providers)

	for range 3 {
		_, err := d.GenerateText(context.Background(), "owner-1", narrativeRequest())
		require.NoError(t, err)
	}
	assert.Len(t, store.pruned, 1)
}

func TestRecordCacheHit(t *testing.T) {
	store := newFakeStore()
	d := NewDispatcherWithProviders(store, testLLMConfig(), 0, nil)

	d.RecordCacheHit(context.Background(), "owner-1", narrativeRequest(), &Meta{
		Provider: "openai", ModelID: "gpt-4o-mini", Source: SourceDefault,
	})

	require.Len(t, store.usage, 1)
	assert.Equal(t, StatusCacheHit, store.usage[0].Status)
	assert.Equal(t, "hit", store.usage[0].CacheStatus)
	assert.Equal(t, 0, store.usage[0].LatencyMs)
}

func TestCollapseResult(t *testing.T) {
	assert.Equal(t, "one two", collapseResult("  one \t  two  "))
	assert.Equal(t, "- a\n- b", collapseResult("- a\n- b\n"))
}
