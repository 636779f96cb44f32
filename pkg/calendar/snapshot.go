package calendar

import (
	"sort"
	"time"
)

// BuildSnapshot canonicalizes the given events into an ordered snapshot
// payload: ascending by start, then external event id for ties.
func BuildSnapshot(events []Event) []SnapshotEntry {
	entries := make([]SnapshotEntry, 0, len(events))
	for _, ev := range events {
		entries = append(entries, SnapshotEntry{
			ExternalEventID: ev.ExternalEventID,
			StartAt:         ev.StartAt.UTC().Format(time.RFC3339),
			EndAt:           ev.EndAt.UTC().Format(time.RFC3339),
			ContentHash:     ev.ContentHash,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].StartAt != entries[j].StartAt {
			return entries[i].StartAt < entries[j].StartAt
		}
		return entries[i].ExternalEventID < entries[j].ExternalEventID
	})
	return entries
}

// Diff compares two snapshots of the same range. An event counts as changed
// when its times moved (timeChanged) or its content hash differs
// (contentChanged); both flags may be set at once since the hash covers
// start/end.
func Diff(prev, curr []SnapshotEntry) Delta {
	prevByID := make(map[string]SnapshotEntry, len(prev))
	for _, e := range prev {
		prevByID[e.ExternalEventID] = e
	}
	currByID := make(map[string]SnapshotEntry, len(curr))
	for _, e := range curr {
		currByID[e.ExternalEventID] = e
	}

	var delta Delta
	for _, e := range curr {
		old, ok := prevByID[e.ExternalEventID]
		if !ok {
			delta.Added = append(delta.Added, e.ExternalEventID)
			continue
		}
		timeChanged := old.StartAt != e.StartAt || old.EndAt != e.EndAt
		contentChanged := old.ContentHash != e.ContentHash
		if timeChanged || contentChanged {
			delta.Changed = append(delta.Changed, ChangedEvent{
				ExternalEventID: e.ExternalEventID,
				TimeChanged:     timeChanged,
				ContentChanged:  contentChanged,
			})
		}
	}
	for _, e := range prev {
		if _, ok := currByID[e.ExternalEventID]; !ok {
			delta.Removed = append(delta.Removed, e.ExternalEventID)
		}
	}

	sort.Strings(delta.Added)
	sort.Strings(delta.Removed)
	sort.Slice(delta.Changed, func(i, j int) bool {
		return delta.Changed[i].ExternalEventID < delta.Changed[j].ExternalEventID
	})
	return delta
}
