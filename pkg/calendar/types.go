// Package calendar implements the calendar engine: workday windows, busy
// merging, focus-block discovery, canonical snapshots, and snapshot deltas.
// Everything in this package is deterministic CPU work; persistence lives in
// the services layer.
package calendar

import "time"

// Focus block classification thresholds, in minutes.
const (
	MinFocusBlockMinutes    = 10
	ShallowThresholdMinutes = 20
	DeepThresholdMinutes    = 45
)

// MaxRangeDays bounds a single range request.
const MaxRangeDays = 31

// Event is the engine's view of a calendar event. BodyPreview is already
// sanitized by the time it reaches the engine.
type Event struct {
	ExternalEventID string    `json:"external_event_id"`
	StartAt         time.Time `json:"start_at"`
	EndAt           time.Time `json:"end_at"`
	Title           string    `json:"title"`
	BodyPreview     string    `json:"body_preview,omitempty"`
	IsAllDay        bool      `json:"is_all_day"`
	ContentHash     string    `json:"content_hash"`
}

// DayWindow is one workday's UTC focus window.
type DayWindow struct {
	Date     string    `json:"date"` // YYYY-MM-DD in the workday timezone
	StartUTC time.Time `json:"start_utc"`
	EndUTC   time.Time `json:"end_utc"`
}

// Minutes returns the window length in minutes.
func (w DayWindow) Minutes() int {
	return int(w.EndUTC.Sub(w.StartUTC) / time.Minute)
}

// BusyBlock is a merged busy interval clipped to a day window.
type BusyBlock struct {
	StartAt time.Time `json:"start_at"`
	EndAt   time.Time `json:"end_at"`
}

// Minutes returns the block length in minutes.
func (b BusyBlock) Minutes() int {
	return int(b.EndAt.Sub(b.StartAt) / time.Minute)
}

// FocusBlockKind classifies a gap by how much uninterrupted work fits in it.
type FocusBlockKind string

// Focus block kinds.
const (
	FocusDeep    FocusBlockKind = "deep"
	FocusShallow FocusBlockKind = "shallow"
	FocusPrep    FocusBlockKind = "prep"
)

// KindForMinutes classifies a gap length.
func KindForMinutes(minutes int) FocusBlockKind {
	switch {
	case minutes >= DeepThresholdMinutes:
		return FocusDeep
	case minutes >= ShallowThresholdMinutes:
		return FocusShallow
	default:
		return FocusPrep
	}
}

// FocusBlock is a usable gap within a day window.
type FocusBlock struct {
	StartAt time.Time      `json:"start_at"`
	EndAt   time.Time      `json:"end_at"`
	Minutes int            `json:"minutes"`
	Kind    FocusBlockKind `json:"kind"`
}

// DayStats aggregates one day's busy picture.
type DayStats struct {
	Date                     string      `json:"date"`
	BusyMinutes              int         `json:"busyMinutes"`
	Blocks                   int         `json:"blocks"`
	LargestFocusBlockMinutes int         `json:"largestFocusBlockMinutes"`
	BusyBlocks               []BusyBlock `json:"busyBlocks"`
}

// SnapshotEntry is one canonicalized event row inside a snapshot payload.
type SnapshotEntry struct {
	ExternalEventID string `json:"external_event_id"`
	StartAt         string `json:"start_at"` // RFC3339 UTC
	EndAt           string `json:"end_at"`   // RFC3339 UTC
	ContentHash     string `json:"content_hash"`
}

// ChangedEvent describes one modified event in a delta. timeChanged and
// contentChanged are independent: a moved meeting with an unchanged body
// still gets contentChanged=true when the hash covers start/end.
type ChangedEvent struct {
	ExternalEventID string `json:"external_event_id"`
	TimeChanged     bool   `json:"timeChanged"`
	ContentChanged  bool   `json:"contentChanged"`
}

// Delta is the difference between two snapshots of the same range.
type Delta struct {
	Added   []string       `json:"added"`
	Removed []string       `json:"removed"`
	Changed []ChangedEvent `json:"changed"`
}

// Empty reports whether the delta carries no changes.
func (d Delta) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0 && len(d.Changed) == 0
}
