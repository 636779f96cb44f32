package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// WorkdayConfig describes the user's local working window. The calendar
// engine converts it to UTC bounds per day; the briefing composer derives
// capacity from it.
type WorkdayConfig struct {
	// Timezone is the IANA workday timezone.
	Timezone string `yaml:"timezone"`

	// FocusStart and FocusEnd are local HH:MM bounds of the focus window.
	FocusStart string `yaml:"focus_start"`
	FocusEnd   string `yaml:"focus_end"`
}

// DefaultWorkdayConfig returns the built-in workday defaults.
func DefaultWorkdayConfig() *WorkdayConfig {
	return &WorkdayConfig{
		Timezone:   "America/New_York",
		FocusStart: "08:00",
		FocusEnd:   "16:30",
	}
}

// Location resolves the configured timezone.
func (w *WorkdayConfig) Location() (*time.Location, error) {
	return time.LoadLocation(w.Timezone)
}

// FocusMinutes returns the focus window as minutes-since-midnight local time.
func (w *WorkdayConfig) FocusMinutes() (start, end int, err error) {
	return w.focusWindow()
}

func (w *WorkdayConfig) focusWindow() (start, end int, err error) {
	start, err = parseClock(w.FocusStart)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid focus_start %q: %w", w.FocusStart, err)
	}
	end, err = parseClock(w.FocusEnd)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid focus_end %q: %w", w.FocusEnd, err)
	}
	if end <= start {
		return 0, 0, fmt.Errorf("focus window end %q must be after start %q", w.FocusEnd, w.FocusStart)
	}
	return start, end, nil
}

// parseClock converts "HH:MM" to minutes since midnight.
func parseClock(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("expected HH:MM")
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour %q", parts[0])
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute %q", parts[1])
	}
	return h*60 + m, nil
}
