package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/missionctl/missionctl/ent"
	"github.com/missionctl/missionctl/ent/calendarevent"
	"github.com/missionctl/missionctl/ent/calendarsnapshot"
	"github.com/missionctl/missionctl/pkg/calendar"
	"github.com/missionctl/missionctl/pkg/sanitize"
)

// MaxMeetingContextChars mirrors the column bound on meeting_context.
const MaxMeetingContextChars = 8000

// EventInput is one inbound calendar event before sanitization.
type EventInput struct {
	ExternalEventID string
	Title           string
	Body            string
	StartAt         time.Time
	EndAt           time.Time
	IsAllDay        bool
}

// IngestStats summarizes one ingest pass.
type IngestStats struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Removed int `json:"removed"`
}

// CalendarDay is one day of the range response.
type CalendarDay struct {
	Date        string                `json:"date"`
	Stats       calendar.DayStats     `json:"stats"`
	FocusBlocks []calendar.FocusBlock `json:"focusBlocks"`
}

// RangeResult is the full calendar range response.
type RangeResult struct {
	RangeStart string               `json:"rangeStart"`
	RangeEnd   string               `json:"rangeEnd"`
	Days       []CalendarDay        `json:"days"`
	Events     []*ent.CalendarEvent `json:"events"`
	Delta      *calendar.Delta      `json:"delta,omitempty"`
}

// CalendarService persists calendar events, serves range views, and keeps
// range snapshots for delta detection.
type CalendarService struct {
	client            *ent.Client
	windowing         *calendar.Windowing
	snapshotRetention time.Duration
}

// NewCalendarService creates a new CalendarService.
func NewCalendarService(client *ent.Client, windowing *calendar.Windowing, snapshotRetention time.Duration) *CalendarService {
	if client == nil {
		panic("NewCalendarService: client must not be nil")
	}
	if windowing == nil {
		panic("NewCalendarService: windowing must not be nil")
	}
	return &CalendarService{
		client:            client,
		windowing:         windowing,
		snapshotRetention: snapshotRetention,
	}
}

// IngestEvents upserts a batch for one source. Idempotent on (source,
// external id, start); a changed content hash updates the row in place.
// Events previously ingested in [rangeStart, rangeEnd] that are absent from
// the batch are soft-removed.
func (s *CalendarService) IngestEvents(ctx context.Context, ownerID, source string, events []EventInput, rangeStart, rangeEnd string) (IngestStats, error) {
	var stats IngestStats
	if err := calendarevent.SourceValidator(calendarevent.Source(source)); err != nil {
		return stats, NewValidationError("source", fmt.Sprintf("invalid source '%s'", source))
	}

	seen := make(map[string]bool, len(events))
	for _, in := range events {
		if in.ExternalEventID == "" {
			return stats, NewValidationError("external_event_id", "external_event_id is required")
		}
		if !in.EndAt.After(in.StartAt) {
			return stats, NewValidationError("end_at",
				fmt.Sprintf("event '%s' ends before it starts", in.ExternalEventID))
		}

		preview := sanitize.Sanitize(in.Body, sanitize.DefaultMaxChars)
		title := sanitize.Line(in.Title, 500)
		hash := calendar.ContentHash(title, in.StartAt, in.EndAt, preview)
		seen[in.ExternalEventID] = true

		existing, err := s.client.CalendarEvent.Query().
			Where(
				calendarevent.OwnerID(ownerID),
				calendarevent.SourceEQ(calendarevent.Source(source)),
				calendarevent.ExternalEventID(in.ExternalEventID),
				calendarevent.StartAt(in.StartAt.UTC()),
			).
			Only(ctx)
		switch {
		case ent.IsNotFound(err):
			_, err = s.client.CalendarEvent.Create().
				SetID(uuid.New().String()).
				SetOwnerID(ownerID).
				SetSource(calendarevent.Source(source)).
				SetExternalEventID(in.ExternalEventID).
				SetStartAt(in.StartAt.UTC()).
				SetEndAt(in.EndAt.UTC()).
				SetTitle(title).
				SetBodyPreview(preview).
				SetIsAllDay(in.IsAllDay).
				SetContentHash(hash).
				Save(ctx)
			if err != nil {
				return stats, fmt.Errorf("failed to create calendar event: %w", err)
			}
			stats.Created++
		case err != nil:
			return stats, fmt.Errorf("failed to look up calendar event: %w", err)
		default:
			changed := existing.ContentHash != hash || existing.RemovedAt != nil ||
				!existing.EndAt.Equal(in.EndAt.UTC())
			if !changed {
				continue
			}
			_, err = existing.Update().
				SetEndAt(in.EndAt.UTC()).
				SetTitle(title).
				SetBodyPreview(preview).
				SetIsAllDay(in.IsAllDay).
				SetContentHash(hash).
				ClearRemovedAt().
				Save(ctx)
			if err != nil {
				return stats, fmt.Errorf("failed to update calendar event: %w", err)
			}
			stats.Updated++
		}
	}

	if rangeStart != "" && rangeEnd != "" {
		removed, err := s.softRemoveMissing(ctx, ownerID, source, seen, rangeStart, rangeEnd)
		if err != nil {
			return stats, err
		}
		stats.Removed = removed
	}
	return stats, nil
}

// IngestICS parses an iCalendar payload and ingests it as the ical source.
func (s *CalendarService) IngestICS(ctx context.Context, ownerID, payload, rangeStart, rangeEnd string) (IngestStats, error) {
	parsed, err := calendar.ParseICS(payload, s.windowing.Location())
	if err != nil {
		return IngestStats{}, NewValidationError("payload", err.Error())
	}
	events := make([]EventInput, 0, len(parsed))
	for _, ev := range parsed {
		events = append(events, EventInput{
			ExternalEventID: ev.UID,
			Title:           ev.Summary,
			Body:            ev.Description,
			StartAt:         ev.StartAt,
			EndAt:           ev.EndAt,
			IsAllDay:        ev.IsAllDay,
		})
	}
	return s.IngestEvents(ctx, ownerID, calendarevent.SourceIcal.String(), events, rangeStart, rangeEnd)
}

// Range serves the per-day busy picture for an inclusive date range and the
// delta against the previous snapshot of the same range.
func (s *CalendarService) Range(ctx context.Context, ownerID, rangeStart, rangeEnd string) (*RangeResult, error) {
	windows, err := s.windowing.NormalizeRange(rangeStart, rangeEnd)
	if err != nil {
		return nil, NewValidationError("range", err.Error())
	}
	boundsStart, boundsEnd, err := s.windowing.RangeBoundsUTC(rangeStart, rangeEnd)
	if err != nil {
		return nil, NewValidationError("range", err.Error())
	}

	rows, err := s.client.CalendarEvent.Query().
		Where(
			calendarevent.OwnerID(ownerID),
			calendarevent.RemovedAtIsNil(),
			calendarevent.StartAtLT(boundsEnd),
			calendarevent.EndAtGT(boundsStart),
		).
		Order(ent.Asc(calendarevent.FieldStartAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load calendar events: %w", err)
	}

	engineEvents := make([]calendar.Event, 0, len(rows))
	for _, row := range rows {
		engineEvents = append(engineEvents, calendar.Event{
			ExternalEventID: row.ExternalEventID,
			StartAt:         row.StartAt,
			EndAt:           row.EndAt,
			Title:           row.Title,
			BodyPreview:     row.BodyPreview,
			IsAllDay:        row.IsAllDay,
			ContentHash:     row.ContentHash,
		})
	}

	now := time.Now().UTC()
	result := &RangeResult{
		RangeStart: rangeStart,
		RangeEnd:   rangeEnd,
		Events:     rows,
	}
	for _, window := range windows {
		busy := calendar.MergeBusy(engineEvents, window)
		stats := calendar.DayStatsFor(window, busy)
		result.Days = append(result.Days, CalendarDay{
			Date:        window.Date,
			Stats:       stats,
			FocusBlocks: calendar.FindFocusBlocks(window, busy, now),
		})
	}

	delta, err := s.snapshotAndDiff(ctx, ownerID, rangeStart, rangeEnd, engineEvents, now)
	if err != nil {
		return nil, err
	}
	result.Delta = delta
	return result, nil
}

// UpdateMeetingContext sets or clears the prep notes on one event.
func (s *CalendarService) UpdateMeetingContext(ctx context.Context, ownerID, eventID, meetingContext string) (*ent.CalendarEvent, error) {
	if len(meetingContext) > MaxMeetingContextChars {
		return nil, NewValidationError("meeting_context",
			fmt.Sprintf("meeting_context exceeds %d characters", MaxMeetingContextChars))
	}
	event, err := s.client.CalendarEvent.Query().
		Where(calendarevent.ID(eventID), calendarevent.OwnerID(ownerID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get calendar event: %w", err)
	}

	updater := event.Update()
	if meetingContext == "" {
		updater.ClearMeetingContext()
	} else {
		updater.SetMeetingContext(meetingContext)
	}
	updated, err := updater.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update meeting context: %w", err)
	}
	return updated, nil
}

func (s *CalendarService) softRemoveMissing(ctx context.Context, ownerID, source string, seen map[string]bool, rangeStart, rangeEnd string) (int, error) {
	boundsStart, boundsEnd, err := s.windowing.RangeBoundsUTC(rangeStart, rangeEnd)
	if err != nil {
		return 0, NewValidationError("range", err.Error())
	}

	rows, err := s.client.CalendarEvent.Query().
		Where(
			calendarevent.OwnerID(ownerID),
			calendarevent.SourceEQ(calendarevent.Source(source)),
			calendarevent.RemovedAtIsNil(),
			calendarevent.StartAtGTE(boundsStart),
			calendarevent.StartAtLT(boundsEnd),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load range events: %w", err)
	}

	removed := 0
	now := time.Now().UTC()
	for _, row := range rows {
		if seen[row.ExternalEventID] {
			continue
		}
		if _, err := row.Update().SetRemovedAt(now).Save(ctx); err != nil {
			return removed, fmt.Errorf("failed to soft-remove calendar event: %w", err)
		}
		removed++
	}
	return removed, nil
}

// snapshotAndDiff computes the delta against the latest stored snapshot of
// the same range, persists the new snapshot, and lazily prunes old ones. A
// first request for a range returns a nil delta.
func (s *CalendarService) snapshotAndDiff(ctx context.Context, ownerID, rangeStart, rangeEnd string, events []calendar.Event, now time.Time) (*calendar.Delta, error) {
	entries := calendar.BuildSnapshot(events)

	previous, err := s.client.CalendarSnapshot.Query().
		Where(
			calendarsnapshot.OwnerID(ownerID),
			calendarsnapshot.RangeStart(rangeStart),
			calendarsnapshot.RangeEnd(rangeEnd),
		).
		Order(ent.Desc(calendarsnapshot.FieldCreatedAt)).
		First(ctx)

	var delta *calendar.Delta
	switch {
	case ent.IsNotFound(err):
		// First sighting of this range; nothing to diff against.
	case err != nil:
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	default:
		prevEntries, decodeErr := decodeSnapshotPayload(previous.PayloadMin)
		if decodeErr != nil {
			slog.Warn("Discarding undecodable calendar snapshot", "snapshot", previous.ID, "error", decodeErr)
		} else {
			d := calendar.Diff(prevEntries, entries)
			delta = &d
		}
	}

	payload, err := encodeSnapshotPayload(entries)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if _, err := s.client.CalendarSnapshot.Create().
		SetID(uuid.New().String()).
		SetOwnerID(ownerID).
		SetRangeStart(rangeStart).
		SetRangeEnd(rangeEnd).
		SetPayloadMin(payload).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to save snapshot: %w", err)
	}

	s.pruneSnapshots(ctx, now)
	return delta, nil
}

// pruneSnapshots drops snapshots past the retention horizon. Best-effort;
// failures only log.
func (s *CalendarService) pruneSnapshots(ctx context.Context, now time.Time) {
	if s.snapshotRetention <= 0 {
		return
	}
	n, err := s.client.CalendarSnapshot.Delete().
		Where(calendarsnapshot.CreatedAtLT(now.Add(-s.snapshotRetention))).
		Exec(ctx)
	if err != nil {
		slog.Warn("Snapshot prune failed", "error", err)
		return
	}
	if n > 0 {
		slog.Info("Pruned old calendar snapshots", "count", n)
	}
}

func encodeSnapshotPayload(entries []calendar.SnapshotEntry) ([]map[string]interface{}, error) {
	data, err := json.Marshal(entries)
	if err != nil {
		return nil, err
	}
	var payload []map[string]interface{}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func decodeSnapshotPayload(payload []map[string]interface{}) ([]calendar.SnapshotEntry, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	var entries []calendar.SnapshotEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
