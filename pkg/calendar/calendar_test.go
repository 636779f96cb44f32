package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nyLoc(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	return loc
}

func testWindowing(t *testing.T) *Windowing {
	return NewWindowing(nyLoc(t), 8*60, 16*60+30) // 08:00–16:30
}

func utc(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func TestNormalizeRange(t *testing.T) {
	w := testWindowing(t)

	t.Run("single day", func(t *testing.T) {
		windows, err := w.NormalizeRange("2026-01-15", "2026-01-15")
		require.NoError(t, err)
		require.Len(t, windows, 1)
		assert.Equal(t, "2026-01-15", windows[0].Date)
		// EST is UTC-5: 08:00 local = 13:00Z, 16:30 local = 21:30Z.
		assert.Equal(t, utc(2026, 1, 15, 13, 0), windows[0].StartUTC)
		assert.Equal(t, utc(2026, 1, 15, 21, 30), windows[0].EndUTC)
		assert.Equal(t, 510, windows[0].Minutes())
	})

	t.Run("dst shift moves utc bounds", func(t *testing.T) {
		// 2026-03-08 is the spring-forward date; EDT is UTC-4 after it.
		windows, err := w.NormalizeRange("2026-03-09", "2026-03-09")
		require.NoError(t, err)
		assert.Equal(t, utc(2026, 3, 9, 12, 0), windows[0].StartUTC)
		assert.Equal(t, utc(2026, 3, 9, 20, 30), windows[0].EndUTC)
	})

	t.Run("multi day", func(t *testing.T) {
		windows, err := w.NormalizeRange("2026-01-15", "2026-01-17")
		require.NoError(t, err)
		require.Len(t, windows, 3)
		assert.Equal(t, "2026-01-16", windows[1].Date)
	})

	t.Run("inverted", func(t *testing.T) {
		_, err := w.NormalizeRange("2026-01-17", "2026-01-15")
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("too long", func(t *testing.T) {
		_, err := w.NormalizeRange("2026-01-01", "2026-02-15")
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := w.NormalizeRange("Jan 15", "2026-01-15")
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("max range accepted", func(t *testing.T) {
		windows, err := w.NormalizeRange("2026-01-01", "2026-01-31")
		require.NoError(t, err)
		assert.Len(t, windows, 31)
	})
}

func janWindow() DayWindow {
	return DayWindow{
		Date:     "2026-01-15",
		StartUTC: utc(2026, 1, 15, 13, 0),
		EndUTC:   utc(2026, 1, 15, 21, 30),
	}
}

func TestMergeBusy(t *testing.T) {
	window := janWindow()

	events := []Event{
		{ExternalEventID: "a", StartAt: utc(2026, 1, 15, 14, 0), EndAt: utc(2026, 1, 15, 15, 0)},
		{ExternalEventID: "b", StartAt: utc(2026, 1, 15, 14, 30), EndAt: utc(2026, 1, 15, 15, 30)}, // overlaps a
		{ExternalEventID: "c", StartAt: utc(2026, 1, 15, 15, 30), EndAt: utc(2026, 1, 15, 16, 0)},  // touches b
		{ExternalEventID: "d", StartAt: utc(2026, 1, 15, 18, 0), EndAt: utc(2026, 1, 15, 19, 0)},
		{ExternalEventID: "e", StartAt: utc(2026, 1, 15, 7, 0), EndAt: utc(2026, 1, 15, 8, 0)},   // fully before window
		{ExternalEventID: "f", StartAt: utc(2026, 1, 15, 21, 0), EndAt: utc(2026, 1, 15, 23, 0)}, // clipped at end
	}

	busy := MergeBusy(events, window)
	require.Len(t, busy, 3)
	assert.Equal(t, BusyBlock{StartAt: utc(2026, 1, 15, 14, 0), EndAt: utc(2026, 1, 15, 16, 0)}, busy[0])
	assert.Equal(t, BusyBlock{StartAt: utc(2026, 1, 15, 18, 0), EndAt: utc(2026, 1, 15, 19, 0)}, busy[1])
	assert.Equal(t, BusyBlock{StartAt: utc(2026, 1, 15, 21, 0), EndAt: utc(2026, 1, 15, 21, 30)}, busy[2])
}

func TestDayStatsFor(t *testing.T) {
	window := janWindow()
	busy := []BusyBlock{
		{StartAt: utc(2026, 1, 15, 14, 0), EndAt: utc(2026, 1, 15, 16, 0)},
		{StartAt: utc(2026, 1, 15, 18, 0), EndAt: utc(2026, 1, 15, 19, 0)},
	}

	stats := DayStatsFor(window, busy)
	assert.Equal(t, "2026-01-15", stats.Date)
	assert.Equal(t, 180, stats.BusyMinutes)
	assert.Equal(t, 2, stats.Blocks)
	// Gaps: 13:00–14:00 (60m), 16:00–18:00 (120m), 19:00–21:30 (150m).
	assert.Equal(t, 150, stats.LargestFocusBlockMinutes)
}

func TestDayStatsFor_EmptyDay(t *testing.T) {
	window := janWindow()
	stats := DayStatsFor(window, nil)
	assert.Equal(t, 0, stats.BusyMinutes)
	assert.Equal(t, 0, stats.Blocks)
	assert.Equal(t, 510, stats.LargestFocusBlockMinutes)
}

func TestFindFocusBlocks(t *testing.T) {
	window := janWindow()
	busy := []BusyBlock{
		{StartAt: utc(2026, 1, 15, 13, 30), EndAt: utc(2026, 1, 15, 14, 0)},  // 30m gap before
		{StartAt: utc(2026, 1, 15, 14, 15), EndAt: utc(2026, 1, 15, 16, 0)},  // 15m gap between
		{StartAt: utc(2026, 1, 15, 16, 5), EndAt: utc(2026, 1, 15, 21, 30)},  // 5m gap dropped
	}

	// now well before the window: nothing trimmed.
	blocks := FindFocusBlocks(window, busy, utc(2026, 1, 15, 1, 0))
	require.Len(t, blocks, 2)
	assert.Equal(t, FocusShallow, blocks[0].Kind)
	assert.Equal(t, 30, blocks[0].Minutes)
	assert.Equal(t, FocusPrep, blocks[1].Kind)
	assert.Equal(t, 15, blocks[1].Minutes)
}

func TestFindFocusBlocks_NowTrimsAndDiscards(t *testing.T) {
	window := janWindow()
	busy := []BusyBlock{
		{StartAt: utc(2026, 1, 15, 14, 0), EndAt: utc(2026, 1, 15, 15, 0)},
	}
	// Gaps: 13:00–14:00 and 15:00–21:30.

	now := utc(2026, 1, 15, 15, 30)
	blocks := FindFocusBlocks(window, busy, now)
	require.Len(t, blocks, 1)
	assert.Equal(t, now, blocks[0].StartAt)
	assert.Equal(t, 360, blocks[0].Minutes)
	assert.Equal(t, FocusDeep, blocks[0].Kind)
}

func TestKindForMinutes(t *testing.T) {
	assert.Equal(t, FocusDeep, KindForMinutes(45))
	assert.Equal(t, FocusShallow, KindForMinutes(44))
	assert.Equal(t, FocusShallow, KindForMinutes(20))
	assert.Equal(t, FocusPrep, KindForMinutes(19))
}

func TestContentHash(t *testing.T) {
	start := utc(2026, 1, 15, 14, 0)
	end := utc(2026, 1, 15, 15, 0)

	h1 := ContentHash("Standup", start, end, "daily sync")
	h2 := ContentHash("Standup", start, end, "daily sync")
	assert.Equal(t, h1, h2)
	assert.Len(t, h1, 64)

	assert.NotEqual(t, h1, ContentHash("Standup", start.Add(time.Hour), end.Add(time.Hour), "daily sync"))
	assert.NotEqual(t, h1, ContentHash("Standup", start, end, "agenda changed"))

	// Sub-second precision and zone representation do not matter.
	est := time.FixedZone("EST", -5*3600)
	h3 := ContentHash("Standup", start.In(est).Add(300*time.Millisecond), end.In(est), "daily sync")
	assert.Equal(t, h1, h3)
}

func TestBuildSnapshot_Ordering(t *testing.T) {
	events := []Event{
		{ExternalEventID: "b", StartAt: utc(2026, 1, 15, 14, 0), EndAt: utc(2026, 1, 15, 15, 0), ContentHash: "h2"},
		{ExternalEventID: "a", StartAt: utc(2026, 1, 15, 14, 0), EndAt: utc(2026, 1, 15, 14, 30), ContentHash: "h1"},
		{ExternalEventID: "c", StartAt: utc(2026, 1, 15, 13, 0), EndAt: utc(2026, 1, 15, 13, 30), ContentHash: "h3"},
	}
	snap := BuildSnapshot(events)
	require.Len(t, snap, 3)
	assert.Equal(t, "c", snap[0].ExternalEventID)
	assert.Equal(t, "a", snap[1].ExternalEventID)
	assert.Equal(t, "b", snap[2].ExternalEventID)
	assert.Equal(t, "2026-01-15T13:00:00Z", snap[0].StartAt)
}

func TestDiff(t *testing.T) {
	prev := []SnapshotEntry{
		{ExternalEventID: "stays", StartAt: "2026-01-15T14:00:00Z", EndAt: "2026-01-15T15:00:00Z", ContentHash: "h1"},
		{ExternalEventID: "moved", StartAt: "2026-01-15T09:00:00Z", EndAt: "2026-01-15T10:00:00Z", ContentHash: "h2"},
		{ExternalEventID: "gone", StartAt: "2026-01-15T11:00:00Z", EndAt: "2026-01-15T12:00:00Z", ContentHash: "h3"},
		{ExternalEventID: "edited", StartAt: "2026-01-15T16:00:00Z", EndAt: "2026-01-15T17:00:00Z", ContentHash: "h4"},
	}
	curr := []SnapshotEntry{
		{ExternalEventID: "stays", StartAt: "2026-01-15T14:00:00Z", EndAt: "2026-01-15T15:00:00Z", ContentHash: "h1"},
		{ExternalEventID: "moved", StartAt: "2026-01-15T09:30:00Z", EndAt: "2026-01-15T10:30:00Z", ContentHash: "h2b"},
		{ExternalEventID: "edited", StartAt: "2026-01-15T16:00:00Z", EndAt: "2026-01-15T17:00:00Z", ContentHash: "h4b"},
		{ExternalEventID: "new", StartAt: "2026-01-15T18:00:00Z", EndAt: "2026-01-15T18:30:00Z", ContentHash: "h5"},
	}

	delta := Diff(prev, curr)
	assert.Equal(t, []string{"new"}, delta.Added)
	assert.Equal(t, []string{"gone"}, delta.Removed)
	require.Len(t, delta.Changed, 2)
	assert.Equal(t, ChangedEvent{ExternalEventID: "edited", TimeChanged: false, ContentChanged: true}, delta.Changed[0])
	assert.Equal(t, ChangedEvent{ExternalEventID: "moved", TimeChanged: true, ContentChanged: true}, delta.Changed[1])
	assert.False(t, delta.Empty())
}

func TestDiff_NoChanges(t *testing.T) {
	snap := []SnapshotEntry{
		{ExternalEventID: "a", StartAt: "2026-01-15T14:00:00Z", EndAt: "2026-01-15T15:00:00Z", ContentHash: "h1"},
	}
	assert.True(t, Diff(snap, snap).Empty())
}

const sampleICS = "BEGIN:VCALENDAR\r\n" +
	"VERSION:2.0\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:evt-1@example.com\r\n" +
	"SUMMARY:Design review\\, part 2\r\n" +
	"DESCRIPTION:Agenda line one\\nline two\r\n" +
	"DTSTART:20260115T140000Z\r\n" +
	"DTEND:20260115T150000Z\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:evt-2@example.com\r\n" +
	"SUMMARY:Local meeting with a very long subject that the\r\n" +
	" generator folded onto a second line\r\n" +
	"DTSTART;TZID=America/New_York:20260115T100000\r\n" +
	"DTEND;TZID=America/New_York:20260115T110000\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:evt-3@example.com\r\n" +
	"SUMMARY:Company holiday\r\n" +
	"DTSTART;VALUE=DATE:20260116\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"SUMMARY:No UID\r\n" +
	"DTSTART:20260115T140000Z\r\n" +
	"DTEND:20260115T150000Z\r\n" +
	"END:VEVENT\r\n" +
	"END:VCALENDAR\r\n"

func TestParseICS(t *testing.T) {
	events, err := ParseICS(sampleICS, nyLoc(t))
	require.NoError(t, err)
	require.Len(t, events, 3)

	assert.Equal(t, "evt-1@example.com", events[0].UID)
	assert.Equal(t, "Design review, part 2", events[0].Summary)
	assert.Equal(t, "Agenda line one\nline two", events[0].Description)
	assert.Equal(t, utc(2026, 1, 15, 14, 0), events[0].StartAt)
	assert.False(t, events[0].IsAllDay)

	assert.Equal(t, "Local meeting with a very long subject that the generator folded onto a second line", events[1].Summary)
	// EST local 10:00 is 15:00Z.
	assert.Equal(t, utc(2026, 1, 15, 15, 0), events[1].StartAt)
	assert.Equal(t, utc(2026, 1, 15, 16, 0), events[1].EndAt)

	assert.True(t, events[2].IsAllDay)
	assert.Equal(t, 24*time.Hour, events[2].EndAt.Sub(events[2].StartAt))
}

func TestParseICS_BadTimestamp(t *testing.T) {
	_, err := ParseICS("BEGIN:VEVENT\nUID:x\nDTSTART:tomorrow\nEND:VEVENT\n", time.UTC)
	assert.Error(t, err)
}
