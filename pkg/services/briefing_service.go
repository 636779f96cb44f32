package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/missionctl/missionctl/ent"
	"github.com/missionctl/missionctl/ent/calendarevent"
	"github.com/missionctl/missionctl/ent/task"
	"github.com/missionctl/missionctl/pkg/briefing"
	"github.com/missionctl/missionctl/pkg/calendar"
	"github.com/missionctl/missionctl/pkg/config"
	"github.com/missionctl/missionctl/pkg/llm"
	"github.com/missionctl/missionctl/pkg/planner"
)

// BriefingResponse is the briefing payload plus its narrative. Narrative is
// empty and LLM nil when generation failed, was rejected, or no model is
// configured; the structured briefing always renders.
type BriefingResponse struct {
	briefing.Briefing
	Narrative string    `json:"narrative"`
	LLM       *llm.Meta `json:"llm"`
}

// BriefingService composes briefings and layers the cached LLM narrative on
// top.
type BriefingService struct {
	client     *ent.Client
	windowing  *calendar.Windowing
	dispatcher *llm.Dispatcher
	store      llm.Store
	cache      *briefing.NarrativeCache
	llmCfg     *config.LLMConfig
}

// NewBriefingService creates a new BriefingService.
func NewBriefingService(client *ent.Client, windowing *calendar.Windowing, dispatcher *llm.Dispatcher, store llm.Store, llmCfg *config.LLMConfig) *BriefingService {
	if client == nil {
		panic("NewBriefingService: client must not be nil")
	}
	if windowing == nil {
		panic("NewBriefingService: windowing must not be nil")
	}
	if dispatcher == nil {
		panic("NewBriefingService: dispatcher must not be nil")
	}
	if store == nil {
		panic("NewBriefingService: store must not be nil")
	}
	if llmCfg == nil {
		panic("NewBriefingService: llmCfg must not be nil")
	}
	return &BriefingService{
		client:     client,
		windowing:  windowing,
		dispatcher: dispatcher,
		store:      store,
		cache:      briefing.NewNarrativeCache(briefing.NarrativeTTL),
		llmCfg:     llmCfg,
	}
}

// GetBriefing composes the briefing for a date. An empty date means today in
// the workday timezone; an empty mode auto-detects from the local clock.
func (s *BriefingService) GetBriefing(ctx context.Context, ownerID, date, mode string) (*BriefingResponse, error) {
	now := time.Now().UTC()
	loc := s.windowing.Location()
	if date == "" {
		date = s.windowing.Today(now)
	}
	localDay, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return nil, NewValidationError("date", fmt.Sprintf("invalid date '%s'", date))
	}
	switch mode {
	case "", briefing.ModeAuto, briefing.ModeMorning, briefing.ModeMidday, briefing.ModeEOD:
	default:
		return nil, NewValidationError("mode", fmt.Sprintf("invalid mode '%s'", mode))
	}

	window := s.windowing.DayWindowFor(localDay)
	resolved := briefing.ResolveMode(mode, now, loc)

	// The three loads are independent; run them concurrently.
	var (
		todayEvents    []calendar.Event
		tomorrowEvents []calendar.Event
		tasks          []planner.Task
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		todayEvents, err = s.loadEvents(groupCtx, ownerID, localDay, loc)
		return err
	})
	if resolved == briefing.ModeEOD {
		group.Go(func() error {
			var err error
			tomorrowEvents, err = s.loadEvents(groupCtx, ownerID, localDay.AddDate(0, 0, 1), loc)
			return err
		})
	}
	group.Go(func() error {
		var err error
		tasks, err = s.loadTasks(groupCtx, ownerID, localDay, loc)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}
	busy := calendar.MergeBusy(todayEvents, window)

	input := briefing.ComposeInput{
		RequestedDate:  date,
		Mode:           mode,
		Now:            now,
		Location:       loc,
		TodayEvents:    todayEvents,
		TomorrowEvents: tomorrowEvents,
		Tasks:          tasks,
		TodayStats:     calendar.DayStatsFor(window, busy),
		TodayFocus:     calendar.FindFocusBlocks(window, busy, now),
		WorkdayMinutes: window.Minutes(),
	}

	composed := briefing.Compose(input)
	response := &BriefingResponse{Briefing: composed}
	s.attachNarrative(ctx, ownerID, response)
	return response, nil
}

// NarrativeResult is what the narrative endpoint returns for a caller-supplied
// briefing payload.
type NarrativeResult struct {
	Mode      string    `json:"mode"`
	Narrative string    `json:"narrative"`
	LLM       *llm.Meta `json:"llm"`
}

// Narrative generates, or serves from cache, the narrative for an
// already-composed briefing. The same validation, rejection, and caching
// rules as GetBriefing apply; a rejected or unavailable narrative comes back
// empty with a nil LLM.
func (s *BriefingService) Narrative(ctx context.Context, ownerID string, composed briefing.Briefing) (*NarrativeResult, error) {
	if _, err := time.Parse("2006-01-02", composed.RequestedDate); err != nil {
		return nil, NewValidationError("briefing", fmt.Sprintf("invalid requestedDate '%s'", composed.RequestedDate))
	}
	switch composed.Mode {
	case briefing.ModeMorning, briefing.ModeMidday, briefing.ModeEOD:
	default:
		return nil, NewValidationError("briefing", fmt.Sprintf("invalid mode '%s'", composed.Mode))
	}

	response := &BriefingResponse{Briefing: composed}
	s.attachNarrative(ctx, ownerID, response)
	return &NarrativeResult{
		Mode:      composed.Mode,
		Narrative: response.Narrative,
		LLM:       response.LLM,
	}, nil
}

// attachNarrative fills Narrative and LLM from cache or a fresh generation.
// All failure paths leave them zero-valued; the briefing never fails on the
// narrative.
func (s *BriefingService) attachNarrative(ctx context.Context, ownerID string, response *BriefingResponse) {
	narrativeCtx := briefing.NarrativeContext(response.Briefing)
	contextJSON, contextHash, err := briefing.ContextJSON(narrativeCtx)
	if err != nil {
		slog.Error("Failed to build narrative context", "error", err)
		return
	}

	now := time.Now().UTC()
	s.cache.Prune(now)

	key := briefing.CacheKey(ownerID, response.RequestedDate, response.Mode,
		s.modelScope(ctx, ownerID), contextHash)
	request := llm.TextRequest{
		Feature:            config.FeatureBriefingNarrative,
		SystemPrompt:       briefing.NarrativeSystemPrompt,
		UserPrompt:         contextJSON,
		Temperature:        0.4,
		MaxTokens:          220,
		TimeoutMs:          s.llmCfg.NarrativeTimeoutMs,
		RequestFingerprint: contextHash,
	}

	if text, meta, ok := s.cache.Get(key, now); ok {
		response.Narrative = text
		response.LLM = withCacheStatus(meta)
		s.dispatcher.RecordCacheHit(ctx, ownerID, request, meta)
		return
	}

	result, err := s.dispatcher.GenerateText(ctx, ownerID, request)
	if err != nil {
		slog.Warn("Narrative generation failed", "owner", ownerID, "error", err)
		return
	}
	if result == nil {
		return
	}
	if !briefing.ValidNarrative(result.Text) {
		slog.Warn("Narrative rejected by validation",
			"owner", ownerID,
			"provider", result.Meta.Provider,
			"model", result.Meta.ModelID)
		return
	}

	response.Narrative = result.Text
	response.LLM = result.Meta
	s.cache.Put(key, result.Text, result.Meta, now)
}

// modelScope keys the narrative cache by the model the owner would dispatch
// to, so switching preferences never serves a stale narrative.
func (s *BriefingService) modelScope(ctx context.Context, ownerID string) string {
	pref, err := s.store.Preference(ctx, ownerID, config.FeatureBriefingNarrative)
	if err != nil || pref == nil {
		pref, err = s.store.Preference(ctx, ownerID, config.FeatureGlobalDefault)
		if err != nil || pref == nil {
			return "default"
		}
	}
	return pref.Provider + "/" + pref.ModelID
}

func (s *BriefingService) loadEvents(ctx context.Context, ownerID string, localDay time.Time, loc *time.Location) ([]calendar.Event, error) {
	dayStart := localDay.In(loc)
	dayEnd := dayStart.AddDate(0, 0, 1)

	rows, err := s.client.CalendarEvent.Query().
		Where(
			calendarevent.OwnerID(ownerID),
			calendarevent.RemovedAtIsNil(),
			calendarevent.StartAtLT(dayEnd.UTC()),
			calendarevent.EndAtGT(dayStart.UTC()),
		).
		Order(ent.Asc(calendarevent.FieldStartAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load calendar events: %w", err)
	}

	events := make([]calendar.Event, 0, len(rows))
	for _, row := range rows {
		events = append(events, calendar.Event{
			ExternalEventID: row.ExternalEventID,
			StartAt:         row.StartAt,
			EndAt:           row.EndAt,
			Title:           row.Title,
			BodyPreview:     row.BodyPreview,
			IsAllDay:        row.IsAllDay,
			ContentHash:     row.ContentHash,
		})
	}
	return events, nil
}

// loadTasks returns all open tasks plus the tasks completed on the requested
// day, the set Compose partitions.
func (s *BriefingService) loadTasks(ctx context.Context, ownerID string, localDay time.Time, loc *time.Location) ([]planner.Task, error) {
	dayStart := localDay.In(loc)

	open, err := s.client.Task.Query().
		Where(task.OwnerID(ownerID), task.StatusNEQ(task.StatusDone)).
		Limit(planner.MaxTasks).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}
	done, err := s.client.Task.Query().
		Where(
			task.OwnerID(ownerID),
			task.StatusEQ(task.StatusDone),
			task.UpdatedAtGTE(dayStart.UTC()),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load completed tasks: %w", err)
	}
	return plannerTasks(append(open, done...)), nil
}

// withCacheStatus marks a cached narrative's metadata. A cache hit cost no
// model call, so the reported latency is zero, not the latency of the original
// generation.
func withCacheStatus(meta *llm.Meta) *llm.Meta {
	if meta == nil {
		return nil
	}
	copied := *meta
	copied.CacheStatus = "hit"
	copied.LatencyMs = 0
	return &copied
}
