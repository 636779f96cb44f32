package calendar

import (
	"sort"
	"time"
)

// MergeBusy clips the given events to the day window, sorts them by start,
// and merges touching or overlapping intervals. The result is pairwise
// disjoint and ascending by start.
func MergeBusy(events []Event, window DayWindow) []BusyBlock {
	clipped := make([]BusyBlock, 0, len(events))
	for _, ev := range events {
		start, end := ev.StartAt, ev.EndAt
		if start.Before(window.StartUTC) {
			start = window.StartUTC
		}
		if end.After(window.EndUTC) {
			end = window.EndUTC
		}
		if !end.After(start) {
			continue // outside the window entirely
		}
		clipped = append(clipped, BusyBlock{StartAt: start, EndAt: end})
	}

	sort.Slice(clipped, func(i, j int) bool {
		return clipped[i].StartAt.Before(clipped[j].StartAt)
	})

	merged := make([]BusyBlock, 0, len(clipped))
	for _, b := range clipped {
		if n := len(merged); n > 0 && !merged[n-1].EndAt.Before(b.StartAt) {
			if b.EndAt.After(merged[n-1].EndAt) {
				merged[n-1].EndAt = b.EndAt
			}
			continue
		}
		merged = append(merged, b)
	}
	return merged
}

// DayStatsFor computes the day's aggregate busy picture from its merged
// blocks.
func DayStatsFor(window DayWindow, busy []BusyBlock) DayStats {
	stats := DayStats{
		Date:       window.Date,
		Blocks:     len(busy),
		BusyBlocks: busy,
	}
	for _, b := range busy {
		stats.BusyMinutes += b.Minutes()
	}
	for _, gap := range gaps(window, busy) {
		if minutes := gap.Minutes(); minutes >= MinFocusBlockMinutes && minutes > stats.LargestFocusBlockMinutes {
			stats.LargestFocusBlockMinutes = minutes
		}
	}
	return stats
}

// FindFocusBlocks returns the classified gaps of a day window. When now lies
// inside the window, blocks that end before now are discarded and a block
// containing now is trimmed to start at now.
func FindFocusBlocks(window DayWindow, busy []BusyBlock, now time.Time) []FocusBlock {
	var blocks []FocusBlock
	for _, gap := range gaps(window, busy) {
		start, end := gap.StartAt, gap.EndAt

		if now.After(window.StartUTC) && now.Before(window.EndUTC) {
			if !end.After(now) {
				continue
			}
			if start.Before(now) {
				start = now
			}
		}

		minutes := int(end.Sub(start) / time.Minute)
		if minutes < MinFocusBlockMinutes {
			continue
		}
		blocks = append(blocks, FocusBlock{
			StartAt: start,
			EndAt:   end,
			Minutes: minutes,
			Kind:    KindForMinutes(minutes),
		})
	}
	return blocks
}

// gaps returns the free intervals between merged busy blocks and the window
// edges. Assumes busy is disjoint and sorted.
func gaps(window DayWindow, busy []BusyBlock) []BusyBlock {
	var out []BusyBlock
	cursor := window.StartUTC
	for _, b := range busy {
		if b.StartAt.After(cursor) {
			out = append(out, BusyBlock{StartAt: cursor, EndAt: b.StartAt})
		}
		if b.EndAt.After(cursor) {
			cursor = b.EndAt
		}
	}
	if window.EndUTC.After(cursor) {
		out = append(out, BusyBlock{StartAt: cursor, EndAt: window.EndUTC})
	}
	return out
}
