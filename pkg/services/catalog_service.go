package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/missionctl/missionctl/ent"
	"github.com/missionctl/missionctl/ent/modelcatalogentry"
	"github.com/missionctl/missionctl/ent/modelpreference"
	"github.com/missionctl/missionctl/ent/usageevent"
	"github.com/missionctl/missionctl/pkg/config"
	"github.com/missionctl/missionctl/pkg/llm"
)

// CatalogService manages the model catalog, per-owner preferences, and the
// usage log. It implements llm.Store for the dispatcher.
type CatalogService struct {
	client *ent.Client
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(client *ent.Client) *CatalogService {
	if client == nil {
		panic("NewCatalogService: client must not be nil")
	}
	return &CatalogService{client: client}
}

// EnsureDefaults inserts the built-in catalog rows that are not present yet.
// Existing rows, including operator-edited pricing, are left alone.
func (s *CatalogService) EnsureDefaults(ctx context.Context, seeds []config.CatalogSeed) error {
	for _, seed := range seeds {
		exists, err := s.client.ModelCatalogEntry.Query().
			Where(
				modelcatalogentry.ProviderEQ(modelcatalogentry.Provider(seed.Provider)),
				modelcatalogentry.ModelID(seed.ModelID),
			).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("failed to check catalog entry: %w", err)
		}
		if exists {
			continue
		}

		builder := s.client.ModelCatalogEntry.Create().
			SetID(uuid.New().String()).
			SetProvider(modelcatalogentry.Provider(seed.Provider)).
			SetModelID(seed.ModelID).
			SetDisplayName(seed.DisplayName).
			SetPricingIsPlaceholder(seed.PricingIsPlaceholder).
			SetSortOrder(seed.SortOrder)
		if seed.InputPricePerMTok != nil {
			builder.SetInputPricePerMtok(*seed.InputPricePerMTok)
		}
		if seed.OutputPricePerMTok != nil {
			builder.SetOutputPricePerMtok(*seed.OutputPricePerMTok)
		}
		if seed.Tier != "" {
			builder.SetTier(modelcatalogentry.Tier(seed.Tier))
		}
		if _, err := builder.Save(ctx); err != nil {
			// Concurrent startup may have raced the insert; duplicates are fine.
			if ent.IsConstraintError(err) {
				continue
			}
			return fmt.Errorf("failed to seed catalog entry %s/%s: %w", seed.Provider, seed.ModelID, err)
		}
	}
	return nil
}

// ListModels returns enabled catalog rows in display order.
func (s *CatalogService) ListModels(ctx context.Context) ([]*ent.ModelCatalogEntry, error) {
	rows, err := s.client.ModelCatalogEntry.Query().
		Where(modelcatalogentry.Enabled(true)).
		Order(ent.Asc(modelcatalogentry.FieldSortOrder)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}
	return rows, nil
}

// Preferences returns the owner's preferences keyed by feature.
func (s *CatalogService) Preferences(ctx context.Context, ownerID string) (map[string]*ent.ModelCatalogEntry, error) {
	prefs, err := s.client.ModelPreference.Query().
		Where(modelpreference.OwnerID(ownerID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list preferences: %w", err)
	}

	out := make(map[string]*ent.ModelCatalogEntry, len(prefs))
	for _, pref := range prefs {
		entry, err := s.client.ModelCatalogEntry.Get(ctx, pref.CatalogID)
		if err != nil {
			if ent.IsNotFound(err) {
				continue
			}
			return nil, fmt.Errorf("failed to load catalog entry: %w", err)
		}
		out[pref.Feature.String()] = entry
	}
	return out, nil
}

// SetPreference upserts one (feature, catalog entry) preference. The catalog
// entry must exist and be enabled.
func (s *CatalogService) SetPreference(ctx context.Context, ownerID, feature, catalogID string) (*ent.ModelPreference, error) {
	if err := modelpreference.FeatureValidator(modelpreference.Feature(feature)); err != nil {
		return nil, NewValidationError("feature", fmt.Sprintf("invalid feature '%s'", feature))
	}
	entry, err := s.client.ModelCatalogEntry.Query().
		Where(modelcatalogentry.ID(catalogID), modelcatalogentry.Enabled(true)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NewValidationError("catalog_id",
				fmt.Sprintf("unknown or disabled catalog entry '%s'", catalogID))
		}
		return nil, fmt.Errorf("failed to check catalog entry: %w", err)
	}

	existing, err := s.client.ModelPreference.Query().
		Where(
			modelpreference.OwnerID(ownerID),
			modelpreference.FeatureEQ(modelpreference.Feature(feature)),
		).
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		pref, err := s.client.ModelPreference.Create().
			SetID(uuid.New().String()).
			SetOwnerID(ownerID).
			SetFeature(modelpreference.Feature(feature)).
			SetCatalogID(entry.ID).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create preference: %w", err)
		}
		return pref, nil
	case err != nil:
		return nil, fmt.Errorf("failed to look up preference: %w", err)
	default:
		pref, err := existing.Update().SetCatalogID(entry.ID).Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update preference: %w", err)
		}
		return pref, nil
	}
}

// ClearPreference removes one feature preference; clearing an unset
// preference is a no-op.
func (s *CatalogService) ClearPreference(ctx context.Context, ownerID, feature string) error {
	if err := modelpreference.FeatureValidator(modelpreference.Feature(feature)); err != nil {
		return NewValidationError("feature", fmt.Sprintf("invalid feature '%s'", feature))
	}
	_, err := s.client.ModelPreference.Delete().
		Where(
			modelpreference.OwnerID(ownerID),
			modelpreference.FeatureEQ(modelpreference.Feature(feature)),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to clear preference: %w", err)
	}
	return nil
}

// Preference implements llm.Store: the owner's model choice for a feature,
// nil when unset or when the chosen entry is gone.
func (s *CatalogService) Preference(ctx context.Context, ownerID, feature string) (*config.ModelRef, error) {
	pref, err := s.client.ModelPreference.Query().
		Where(
			modelpreference.OwnerID(ownerID),
			modelpreference.FeatureEQ(modelpreference.Feature(feature)),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load preference: %w", err)
	}
	entry, err := s.client.ModelCatalogEntry.Get(ctx, pref.CatalogID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load catalog entry: %w", err)
	}
	return &config.ModelRef{Provider: entry.Provider.String(), ModelID: entry.ModelID}, nil
}

// CatalogEntry implements llm.Store.
func (s *CatalogService) CatalogEntry(ctx context.Context, provider, modelID string) (*llm.CatalogEntry, error) {
	row, err := s.client.ModelCatalogEntry.Query().
		Where(
			modelcatalogentry.ProviderEQ(modelcatalogentry.Provider(provider)),
			modelcatalogentry.ModelID(modelID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load catalog entry: %w", err)
	}
	return &llm.CatalogEntry{
		Provider:           row.Provider.String(),
		ModelID:            row.ModelID,
		Enabled:            row.Enabled,
		InputPricePerMTok:  row.InputPricePerMtok,
		OutputPricePerMTok: row.OutputPricePerMtok,
	}, nil
}

// InsertUsage implements llm.Store.
func (s *CatalogService) InsertUsage(ctx context.Context, record llm.UsageRecord) error {
	builder := s.client.UsageEvent.Create().
		SetID(uuid.New().String()).
		SetOwnerID(record.OwnerID).
		SetFeature(record.Feature).
		SetProvider(record.Provider).
		SetModelID(record.ModelID).
		SetModelSource(usageevent.ModelSource(record.Source)).
		SetStatus(usageevent.Status(record.Status)).
		SetLatencyMs(record.LatencyMs)
	if record.InputTokens != nil {
		builder.SetInputTokens(*record.InputTokens)
	}
	if record.OutputTokens != nil {
		builder.SetOutputTokens(*record.OutputTokens)
	}
	if record.TotalTokens != nil {
		builder.SetTotalTokens(*record.TotalTokens)
	}
	if record.EstimatedCostUSD != nil {
		builder.SetEstimatedCostUsd(*record.EstimatedCostUSD)
	}
	if record.CacheStatus != "" {
		builder.SetCacheStatus(record.CacheStatus)
	}
	if record.RequestFingerprint != "" {
		builder.SetRequestFingerprint(record.RequestFingerprint)
	}
	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("failed to insert usage event: %w", err)
	}
	return nil
}

// PruneUsage implements llm.Store.
func (s *CatalogService) PruneUsage(ctx context.Context, before time.Time) (int, error) {
	n, err := s.client.UsageEvent.Delete().
		Where(usageevent.CreatedAtLT(before)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to prune usage events: %w", err)
	}
	return n, nil
}

// UsageSummary aggregates recent usage for one owner.
type UsageSummary struct {
	Events       int            `json:"events"`
	InputTokens  int            `json:"inputTokens"`
	OutputTokens int            `json:"outputTokens"`
	CostUSD      float64        `json:"costUsd"`
	ByStatus     map[string]int `json:"byStatus"`
}

// Usage summarizes the owner's usage events since a cutoff.
func (s *CatalogService) Usage(ctx context.Context, ownerID string, since time.Time) (*UsageSummary, error) {
	rows, err := s.client.UsageEvent.Query().
		Where(usageevent.OwnerID(ownerID), usageevent.CreatedAtGTE(since)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load usage events: %w", err)
	}

	summary := &UsageSummary{ByStatus: make(map[string]int)}
	for _, row := range rows {
		summary.Events++
		summary.ByStatus[row.Status.String()]++
		if row.InputTokens != nil {
			summary.InputTokens += *row.InputTokens
		}
		if row.OutputTokens != nil {
			summary.OutputTokens += *row.OutputTokens
		}
		if row.EstimatedCostUsd != nil {
			summary.CostUSD += *row.EstimatedCostUsd
		}
	}
	return summary, nil
}
