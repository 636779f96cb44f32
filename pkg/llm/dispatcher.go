package llm

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/missionctl/missionctl/pkg/config"
)

// Dispatch attempt statuses.
const (
	StatusSuccess             = "success"
	StatusTimeout             = "timeout"
	StatusError               = "error"
	StatusCacheHit            = "cache_hit"
	StatusSkippedUnconfigured = "skipped_unconfigured"
)

// Request bounds. Out-of-range values are clamped, not rejected.
const (
	MinMaxTokens = 32
	MaxMaxTokens = 4000
	MinTimeoutMs = 500
	MaxTimeoutMs = 30000
)

// pruneInterval bounds how often the dispatcher attempts a best-effort usage
// prune. Process-scoped; correctness does not depend on it.
const pruneInterval = 24 * time.Hour

// CatalogEntry is the dispatcher's view of one model catalog row.
type CatalogEntry struct {
	Provider           string
	ModelID            string
	Enabled            bool
	InputPricePerMTok  *float64
	OutputPricePerMTok *float64
}

// UsageRecord is one dispatch attempt to persist. Every attempt, including
// cache hits and skips, produces exactly one record.
type UsageRecord struct {
	OwnerID            string
	Feature            string
	Provider           string
	ModelID            string
	Source             string
	Status             string
	LatencyMs          int
	InputTokens        *int
	OutputTokens       *int
	TotalTokens        *int
	EstimatedCostUSD   *float64
	CacheStatus        string
	RequestFingerprint string
}

// Store is the persistence surface the dispatcher needs: preferences, the
// model catalog, and the usage log. Implemented by the services layer.
type Store interface {
	// Preference returns the user's model preference for a feature, or nil
	// when unset.
	Preference(ctx context.Context, ownerID, feature string) (*config.ModelRef, error)
	// CatalogEntry returns the catalog row for a model, or nil when absent.
	CatalogEntry(ctx context.Context, provider, modelID string) (*CatalogEntry, error)
	// InsertUsage appends one usage event.
	InsertUsage(ctx context.Context, record UsageRecord) error
	// PruneUsage deletes usage events created before the cutoff.
	PruneUsage(ctx context.Context, before time.Time) (int, error)
}

// TextRequest is one generateText call.
type TextRequest struct {
	Feature            string
	SystemPrompt       string
	UserPrompt         string
	Temperature        float64
	MaxTokens          int
	TimeoutMs          int
	RequestFingerprint string
}

// Meta describes the model invocation that produced a result.
type Meta struct {
	Provider         string   `json:"provider"`
	ModelID          string   `json:"modelId"`
	Source           string   `json:"source"`
	LatencyMs        int      `json:"latencyMs"`
	InputTokens      *int     `json:"inputTokens"`
	OutputTokens     *int     `json:"outputTokens"`
	EstimatedCostUSD *float64 `json:"estimatedCostUsd"`
	CacheStatus      string   `json:"cacheStatus,omitempty"`
}

// Result is a successful generation. A nil *Result means the whole candidate
// chain was exhausted.
type Result struct {
	Text string `json:"text"`
	Meta *Meta  `json:"meta"`
}

// Dispatcher resolves candidates and walks them until one succeeds.
type Dispatcher struct {
	store     Store
	cfg       *config.LLMConfig
	providers map[string]Provider
	retention time.Duration
	now       func() time.Time

	pruneMu   sync.Mutex
	lastPrune time.Time
}

// NewDispatcher builds a dispatcher. Providers are constructed only for
// vendors whose API key is configured; candidates for other vendors are
// skipped with status skipped_unconfigured.
func NewDispatcher(store Store, cfg *config.LLMConfig, retention time.Duration) *Dispatcher {
	providers := make(map[string]Provider)
	if p, err := NewOpenAIProvider(cfg.OpenAIAPIKey); err == nil {
		providers[p.Name()] = p
	}
	if p, err := NewAnthropicProvider(cfg.AnthropicAPIKey); err == nil {
		providers[p.Name()] = p
	}
	return &Dispatcher{
		store:     store,
		cfg:       cfg,
		providers: providers,
		retention: retention,
		now:       time.Now,
	}
}

// NewDispatcherWithProviders builds a dispatcher with explicit providers,
// used by tests.
func NewDispatcherWithProviders(store Store, cfg *config.LLMConfig, retention time.Duration, providers map[string]Provider) *Dispatcher {
	return &Dispatcher{
		store:     store,
		cfg:       cfg,
		providers: providers,
		retention: retention,
		now:       time.Now,
	}
}

// GenerateText walks the candidate chain for a feature until one model
// succeeds. Every attempt records a usage event. Returns (nil, nil) when the
// chain is exhausted; callers treat that as "no narrative / no extraction",
// not as an internal error.
func (d *Dispatcher) GenerateText(ctx context.Context, ownerID string, req TextRequest) (*Result, error) {
	if strings.TrimSpace(req.UserPrompt) == "" {
		return nil, errors.New("user prompt is required")
	}
	maxTokens := clampInt(req.MaxTokens, MinMaxTokens, MaxMaxTokens)
	timeout := time.Duration(clampInt(req.TimeoutMs, MinTimeoutMs, MaxTimeoutMs)) * time.Millisecond
	temperature := clampFloat(req.Temperature, 0, 1)

	candidates, err := d.resolveCandidates(ctx, ownerID, req.Feature)
	if err != nil {
		return nil, err
	}

	for _, candidate := range candidates {
		record := UsageRecord{
			OwnerID:            ownerID,
			Feature:            req.Feature,
			Provider:           candidate.Provider,
			ModelID:            candidate.ModelID,
			Source:             candidate.Source,
			RequestFingerprint: req.RequestFingerprint,
		}

		provider, ok := d.providers[candidate.Provider]
		if !ok {
			record.Status = StatusSkippedUnconfigured
			d.recordUsage(ctx, record)
			continue
		}

		attemptCtx, cancel := context.WithTimeout(ctx, timeout)
		start := d.now()
		result, genErr := provider.Generate(attemptCtx, GenerateRequest{
			Model:       candidate.ModelID,
			System:      req.SystemPrompt,
			User:        req.UserPrompt,
			Temperature: temperature,
			MaxTokens:   maxTokens,
		})
		cancel()
		record.LatencyMs = int(d.now().Sub(start) / time.Millisecond)

		if genErr != nil {
			record.Status = classifyFailure(attemptCtx, genErr)
			d.recordUsage(ctx, record)
			slog.Warn("LLM candidate failed",
				"feature", req.Feature,
				"provider", candidate.Provider,
				"model", candidate.ModelID,
				"status", record.Status,
				"error", genErr)
			continue
		}

		text := collapseResult(result.Text)
		total := result.InputTokens + result.OutputTokens
		record.Status = StatusSuccess
		record.InputTokens = &result.InputTokens
		record.OutputTokens = &result.OutputTokens
		record.TotalTokens = &total
		record.EstimatedCostUSD = d.estimateCost(ctx, candidate, result.InputTokens, result.OutputTokens)
		d.recordUsage(ctx, record)

		return &Result{
			Text: text,
			Meta: &Meta{
				Provider:         candidate.Provider,
				ModelID:          candidate.ModelID,
				Source:           candidate.Source,
				LatencyMs:        record.LatencyMs,
				InputTokens:      record.InputTokens,
				OutputTokens:     record.OutputTokens,
				EstimatedCostUSD: record.EstimatedCostUSD,
			},
		}, nil
	}

	return nil, nil
}

// RecordCacheHit logs a served-from-cache narrative as a zero-latency usage
// event against the model that originally produced it.
func (d *Dispatcher) RecordCacheHit(ctx context.Context, ownerID string, req TextRequest, meta *Meta) {
	record := UsageRecord{
		OwnerID:            ownerID,
		Feature:            req.Feature,
		Provider:           meta.Provider,
		ModelID:            meta.ModelID,
		Source:             meta.Source,
		Status:             StatusCacheHit,
		CacheStatus:        "hit",
		RequestFingerprint: req.RequestFingerprint,
	}
	d.recordUsage(ctx, record)
}

// resolveCandidates loads the user's preferences, checks them against the
// catalog, and folds in the built-in chain. Preference lookups that fail are
// treated as unset so dispatch still works without the preferences table.
func (d *Dispatcher) resolveCandidates(ctx context.Context, ownerID, feature string) ([]Candidate, error) {
	featurePref := d.enabledPreference(ctx, ownerID, feature)
	var globalPref *config.ModelRef
	if featurePref == nil {
		globalPref = d.enabledPreference(ctx, ownerID, config.FeatureGlobalDefault)
	}
	return ResolveCandidates(featurePref, globalPref, d.cfg.DefaultChain(feature)), nil
}

func (d *Dispatcher) enabledPreference(ctx context.Context, ownerID, feature string) *config.ModelRef {
	pref, err := d.store.Preference(ctx, ownerID, feature)
	if err != nil {
		slog.Warn("LLM preference lookup failed", "feature", feature, "error", err)
		return nil
	}
	if pref == nil {
		return nil
	}
	entry, err := d.store.CatalogEntry(ctx, pref.Provider, pref.ModelID)
	if err != nil || entry == nil || !entry.Enabled {
		return nil
	}
	return pref
}

// estimateCost computes inputTokens × input_price/1e6 + outputTokens ×
// output_price/1e6, nil when either price is unknown.
func (d *Dispatcher) estimateCost(ctx context.Context, candidate Candidate, inputTokens, outputTokens int) *float64 {
	entry, err := d.store.CatalogEntry(ctx, candidate.Provider, candidate.ModelID)
	if err != nil || entry == nil || entry.InputPricePerMTok == nil || entry.OutputPricePerMTok == nil {
		return nil
	}
	cost := float64(inputTokens)*(*entry.InputPricePerMTok)/1e6 + float64(outputTokens)*(*entry.OutputPricePerMTok)/1e6
	return &cost
}

// recordUsage appends a usage event and piggybacks the best-effort prune.
// Failures are logged, never surfaced.
func (d *Dispatcher) recordUsage(ctx context.Context, record UsageRecord) {
	if err := d.store.InsertUsage(ctx, record); err != nil {
		slog.Error("Failed to record LLM usage event",
			"feature", record.Feature,
			"provider", record.Provider,
			"error", err)
	}
	d.maybePrune(ctx)
}

func (d *Dispatcher) maybePrune(ctx context.Context) {
	if d.retention <= 0 {
		return
	}
	d.pruneMu.Lock()
	due := d.now().Sub(d.lastPrune) >= pruneInterval
	if due {
		d.lastPrune = d.now()
	}
	d.pruneMu.Unlock()
	if !due {
		return
	}

	count, err := d.store.PruneUsage(ctx, d.now().Add(-d.retention))
	if err != nil {
		slog.Warn("Usage event prune failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Pruned old usage events", "count", count)
	}
}

func classifyFailure(attemptCtx context.Context, err error) string {
	if errors.Is(attemptCtx.Err(), context.DeadlineExceeded) ||
		errors.Is(err, context.DeadlineExceeded) ||
		strings.Contains(strings.ToLower(err.Error()), "timeout") {
		return StatusTimeout
	}
	return StatusError
}

var horizontalWSRe = regexp.MustCompile(`[ \t]+`)

// collapseResult trims the model output and collapses runs of spaces and
// tabs. Newlines survive so downstream validation can still see them.
func collapseResult(text string) string {
	return strings.TrimSpace(horizontalWSRe.ReplaceAllString(text, " "))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
