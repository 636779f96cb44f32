package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/missionctl/missionctl/pkg/calendar"
	testdb "github.com/missionctl/missionctl/test/database"
)

func calendarFixture(t *testing.T) *CalendarService {
	t.Helper()
	client := testdb.NewTestClient(t)
	windowing := calendar.NewWindowing(time.UTC, 8*60, 18*60)
	return NewCalendarService(client.Client, windowing, 14*24*time.Hour)
}

func dayEvent(id string, date string, startHour, endHour int, title string) EventInput {
	day, _ := time.Parse("2006-01-02", date)
	return EventInput{
		ExternalEventID: id,
		Title:           title,
		StartAt:         day.Add(time.Duration(startHour) * time.Hour),
		EndAt:           day.Add(time.Duration(endHour) * time.Hour),
	}
}

func TestCalendarService_IngestEvents(t *testing.T) {
	svc := calendarFixture(t)
	ctx := context.Background()
	const date = "2026-08-26"

	batch := []EventInput{
		dayEvent("ev-1", date, 9, 10, "Standup"),
		dayEvent("ev-2", date, 13, 14, "Vendor sync"),
	}

	t.Run("creates new events", func(t *testing.T) {
		stats, err := svc.IngestEvents(ctx, testOwner, "google", batch, date, date)
		require.NoError(t, err)
		assert.Equal(t, IngestStats{Created: 2}, stats)
	})

	t.Run("repeat ingest is a no-op", func(t *testing.T) {
		stats, err := svc.IngestEvents(ctx, testOwner, "google", batch, date, date)
		require.NoError(t, err)
		assert.Equal(t, IngestStats{}, stats)
	})

	t.Run("changed content updates in place", func(t *testing.T) {
		changed := []EventInput{
			dayEvent("ev-1", date, 9, 10, "Standup (moved rooms)"),
			dayEvent("ev-2", date, 13, 14, "Vendor sync"),
		}
		stats, err := svc.IngestEvents(ctx, testOwner, "google", changed, date, date)
		require.NoError(t, err)
		assert.Equal(t, IngestStats{Updated: 1}, stats)
	})

	t.Run("absent events are soft-removed", func(t *testing.T) {
		stats, err := svc.IngestEvents(ctx, testOwner, "google",
			[]EventInput{dayEvent("ev-1", date, 9, 10, "Standup (moved rooms)")}, date, date)
		require.NoError(t, err)
		assert.Equal(t, IngestStats{Removed: 1}, stats)

		// Re-appearing later revives the soft-removed row.
		stats, err = svc.IngestEvents(ctx, testOwner, "google",
			[]EventInput{dayEvent("ev-2", date, 13, 14, "Vendor sync")}, "", "")
		require.NoError(t, err)
		assert.Equal(t, IngestStats{Updated: 1}, stats)
	})

	t.Run("validates input", func(t *testing.T) {
		_, err := svc.IngestEvents(ctx, testOwner, "fax", batch, "", "")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))

		_, err = svc.IngestEvents(ctx, testOwner, "google",
			[]EventInput{{Title: "no id", StartAt: time.Now(), EndAt: time.Now().Add(time.Hour)}}, "", "")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))

		_, err = svc.IngestEvents(ctx, testOwner, "google",
			[]EventInput{dayEvent("bad", date, 10, 10, "zero length")}, "", "")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestCalendarService_IngestICS(t *testing.T) {
	svc := calendarFixture(t)
	ctx := context.Background()

	payload := strings.Join([]string{
		"BEGIN:VCALENDAR",
		"BEGIN:VEVENT",
		"UID:ics-1",
		"SUMMARY:Steering committee",
		"DTSTART:20260826T140000Z",
		"DTEND:20260826T150000Z",
		"END:VEVENT",
		"END:VCALENDAR",
	}, "\r\n")

	stats, err := svc.IngestICS(ctx, testOwner, payload, "", "")
	require.NoError(t, err)
	assert.Equal(t, IngestStats{Created: 1}, stats)

	bad := "BEGIN:VEVENT\r\nUID:ics-2\r\nDTSTART:tomorrow\r\nEND:VEVENT\r\n"
	_, err = svc.IngestICS(ctx, testOwner, bad, "", "")
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestCalendarService_Range(t *testing.T) {
	svc := calendarFixture(t)
	ctx := context.Background()
	const date = "2026-08-26"

	_, err := svc.IngestEvents(ctx, testOwner, "google", []EventInput{
		dayEvent("ev-1", date, 9, 10, "Standup"),
		dayEvent("ev-2", date, 13, 15, "Design review"),
	}, "", "")
	require.NoError(t, err)

	t.Run("first sighting has no delta", func(t *testing.T) {
		result, err := svc.Range(ctx, testOwner, date, date)
		require.NoError(t, err)
		require.Len(t, result.Days, 1)
		assert.Equal(t, date, result.Days[0].Date)
		assert.Equal(t, 180, result.Days[0].Stats.BusyMinutes)
		assert.Equal(t, 2, result.Days[0].Stats.Blocks)
		assert.Len(t, result.Events, 2)
		assert.Nil(t, result.Delta)
	})

	t.Run("second sighting diffs against the snapshot", func(t *testing.T) {
		_, err := svc.IngestEvents(ctx, testOwner, "google", []EventInput{
			dayEvent("ev-1", date, 9, 10, "Standup"),
			dayEvent("ev-3", date, 16, 17, "1:1"),
		}, date, date)
		require.NoError(t, err)

		result, err := svc.Range(ctx, testOwner, date, date)
		require.NoError(t, err)
		require.NotNil(t, result.Delta)
		assert.Equal(t, []string{"ev-3"}, result.Delta.Added)
		assert.Equal(t, []string{"ev-2"}, result.Delta.Removed)
		assert.Empty(t, result.Delta.Changed)
	})

	t.Run("rejects malformed ranges", func(t *testing.T) {
		_, err := svc.Range(ctx, testOwner, "2026-08-30", "2026-08-26")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))

		_, err = svc.Range(ctx, testOwner, "yesterday", date)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestCalendarService_UpdateMeetingContext(t *testing.T) {
	svc := calendarFixture(t)
	ctx := context.Background()
	const date = "2026-08-26"

	_, err := svc.IngestEvents(ctx, testOwner, "google",
		[]EventInput{dayEvent("ev-1", date, 9, 10, "Standup")}, "", "")
	require.NoError(t, err)
	result, err := svc.Range(ctx, testOwner, date, date)
	require.NoError(t, err)
	require.Len(t, result.Events, 1)
	eventID := result.Events[0].ID

	updated, err := svc.UpdateMeetingContext(ctx, testOwner, eventID, "Bring the cutover checklist")
	require.NoError(t, err)
	require.NotNil(t, updated.MeetingContext)
	assert.Equal(t, "Bring the cutover checklist", *updated.MeetingContext)

	t.Run("clears on empty", func(t *testing.T) {
		updated, err := svc.UpdateMeetingContext(ctx, testOwner, eventID, "")
		require.NoError(t, err)
		assert.Nil(t, updated.MeetingContext)
	})

	t.Run("bounds and scoping", func(t *testing.T) {
		_, err := svc.UpdateMeetingContext(ctx, testOwner, eventID, strings.Repeat("x", MaxMeetingContextChars+1))
		require.Error(t, err)
		assert.True(t, IsValidationError(err))

		_, err = svc.UpdateMeetingContext(ctx, "owner-2", eventID, "peek")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
