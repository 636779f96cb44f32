package calendar

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidRange is returned for malformed, inverted, or oversized ranges.
var ErrInvalidRange = errors.New("invalid calendar range")

// Windowing converts YYYY-MM-DD dates in the workday timezone into UTC focus
// windows.
type Windowing struct {
	loc        *time.Location
	startOfDay int // minutes since local midnight
	endOfDay   int
}

// NewWindowing builds a Windowing for the given location and focus window
// expressed as minutes since local midnight.
func NewWindowing(loc *time.Location, focusStart, focusEnd int) *Windowing {
	return &Windowing{loc: loc, startOfDay: focusStart, endOfDay: focusEnd}
}

// Location returns the workday timezone.
func (w *Windowing) Location() *time.Location {
	return w.loc
}

// Today returns today's date string in the workday timezone.
func (w *Windowing) Today(now time.Time) string {
	return now.In(w.loc).Format("2006-01-02")
}

// NormalizeRange validates rangeStart..rangeEnd (inclusive) and expands it to
// per-day windows. Both bounds are YYYY-MM-DD in the workday timezone; the
// span may not exceed MaxRangeDays.
func (w *Windowing) NormalizeRange(rangeStart, rangeEnd string) ([]DayWindow, error) {
	start, err := time.ParseInLocation("2006-01-02", rangeStart, w.loc)
	if err != nil {
		return nil, fmt.Errorf("%w: bad rangeStart %q", ErrInvalidRange, rangeStart)
	}
	end, err := time.ParseInLocation("2006-01-02", rangeEnd, w.loc)
	if err != nil {
		return nil, fmt.Errorf("%w: bad rangeEnd %q", ErrInvalidRange, rangeEnd)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: rangeEnd before rangeStart", ErrInvalidRange)
	}

	days := int(end.Sub(start).Hours()/24) + 1
	if days > MaxRangeDays {
		return nil, fmt.Errorf("%w: %d days exceeds %d-day maximum", ErrInvalidRange, days, MaxRangeDays)
	}

	windows := make([]DayWindow, 0, days)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		windows = append(windows, w.DayWindowFor(d))
	}
	return windows, nil
}

// DayWindowFor builds the UTC focus window for one local calendar day.
// Construction goes through the local wall clock so DST transitions shift
// the UTC bounds instead of the local ones.
func (w *Windowing) DayWindowFor(localDay time.Time) DayWindow {
	localDay = localDay.In(w.loc)
	y, m, d := localDay.Date()
	start := time.Date(y, m, d, w.startOfDay/60, w.startOfDay%60, 0, 0, w.loc)
	end := time.Date(y, m, d, w.endOfDay/60, w.endOfDay%60, 0, 0, w.loc)
	return DayWindow{
		Date:     localDay.Format("2006-01-02"),
		StartUTC: start.UTC(),
		EndUTC:   end.UTC(),
	}
}

// RangeBoundsUTC returns the UTC instant span covering the whole range, from
// local midnight of the first day to local midnight after the last day. Used
// to load events that touch the range at all, not only its focus windows.
func (w *Windowing) RangeBoundsUTC(rangeStart, rangeEnd string) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation("2006-01-02", rangeStart, w.loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: bad rangeStart %q", ErrInvalidRange, rangeStart)
	}
	end, err := time.ParseInLocation("2006-01-02", rangeEnd, w.loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: bad rangeEnd %q", ErrInvalidRange, rangeEnd)
	}
	return start.UTC(), end.AddDate(0, 0, 1).UTC(), nil
}
