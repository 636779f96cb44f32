package calendar

import (
	"bufio"
	"fmt"
	"strings"
	"time"
)

// ParsedEvent is one VEVENT pulled out of an iCalendar feed, before
// sanitization and hashing.
type ParsedEvent struct {
	UID         string
	Summary     string
	Description string
	StartAt     time.Time
	EndAt       time.Time
	IsAllDay    bool
}

// ParseICS extracts VEVENTs from an iCalendar payload. It understands the
// subset real feeds emit: folded lines, UTC and TZID-qualified timestamps,
// and all-day VALUE=DATE events. Events without a usable UID or time range
// are skipped; a malformed timestamp fails the whole parse so a bad feed is
// visible instead of silently thin.
func ParseICS(payload string, fallbackLoc *time.Location) ([]ParsedEvent, error) {
	if fallbackLoc == nil {
		fallbackLoc = time.UTC
	}

	var (
		events  []ParsedEvent
		current *ParsedEvent
		hasEnd  bool
	)
	for _, line := range unfoldLines(payload) {
		name, params, value := splitContentLine(line)
		switch name {
		case "BEGIN":
			if strings.EqualFold(value, "VEVENT") {
				current = &ParsedEvent{}
				hasEnd = false
			}
		case "END":
			if !strings.EqualFold(value, "VEVENT") || current == nil {
				continue
			}
			if current.IsAllDay && !hasEnd {
				current.EndAt = current.StartAt.Add(24 * time.Hour)
			}
			if current.UID != "" && !current.StartAt.IsZero() && current.EndAt.After(current.StartAt) {
				events = append(events, *current)
			}
			current = nil
		}
		if current == nil {
			continue
		}
		switch name {
		case "UID":
			current.UID = value
		case "SUMMARY":
			current.Summary = unescapeICS(value)
		case "DESCRIPTION":
			current.Description = unescapeICS(value)
		case "DTSTART":
			t, allDay, err := parseICSTime(value, params, fallbackLoc)
			if err != nil {
				return nil, fmt.Errorf("DTSTART: %w", err)
			}
			current.StartAt = t
			current.IsAllDay = allDay
		case "DTEND":
			t, _, err := parseICSTime(value, params, fallbackLoc)
			if err != nil {
				return nil, fmt.Errorf("DTEND: %w", err)
			}
			current.EndAt = t
			hasEnd = true
		}
	}
	return events, nil
}

// unfoldLines joins RFC 5545 folded lines: a line starting with a space or
// tab continues the previous one.
func unfoldLines(payload string) []string {
	var lines []string
	scanner := bufio.NewScanner(strings.NewReader(payload))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if len(line) > 0 && (line[0] == ' ' || line[0] == '\t') && len(lines) > 0 {
			lines[len(lines)-1] += line[1:]
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// splitContentLine breaks "NAME;PARAM=V;PARAM=V:value" into its parts. The
// property name is uppercased; parameter values keep their case (TZID names
// are case-sensitive).
func splitContentLine(line string) (name string, params map[string]string, value string) {
	idx := strings.Index(line, ":")
	if idx < 0 {
		return strings.ToUpper(strings.TrimSpace(line)), nil, ""
	}
	head, value := line[:idx], line[idx+1:]

	parts := strings.Split(head, ";")
	name = strings.ToUpper(strings.TrimSpace(parts[0]))
	if len(parts) > 1 {
		params = make(map[string]string, len(parts)-1)
		for _, p := range parts[1:] {
			if k, v, ok := strings.Cut(p, "="); ok {
				params[strings.ToUpper(strings.TrimSpace(k))] = strings.Trim(v, `"`)
			}
		}
	}
	return name, params, value
}

// parseICSTime handles the three timestamp shapes feeds use:
// 20260115T130000Z (UTC), 20260115T130000 with TZID or floating, and
// VALUE=DATE all-day 20260115.
func parseICSTime(value string, params map[string]string, fallbackLoc *time.Location) (time.Time, bool, error) {
	if params["VALUE"] == "DATE" || (len(value) == 8 && !strings.Contains(value, "T")) {
		t, err := time.ParseInLocation("20060102", value, fallbackLoc)
		if err != nil {
			return time.Time{}, false, fmt.Errorf("bad date %q", value)
		}
		return t.UTC(), true, nil
	}

	if strings.HasSuffix(value, "Z") {
		t, err := time.Parse("20060102T150405Z", value)
		if err != nil {
			return time.Time{}, false, fmt.Errorf("bad utc timestamp %q", value)
		}
		return t, false, nil
	}

	loc := fallbackLoc
	if tzid := params["TZID"]; tzid != "" {
		if l, err := time.LoadLocation(tzid); err == nil {
			loc = l
		}
	}
	t, err := time.ParseInLocation("20060102T150405", value, loc)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("bad timestamp %q", value)
	}
	return t.UTC(), false, nil
}

// unescapeICS reverses RFC 5545 text escaping.
func unescapeICS(s string) string {
	r := strings.NewReplacer(`\n`, "\n", `\N`, "\n", `\,`, ",", `\;`, ";", `\\`, `\`)
	return r.Replace(s)
}
