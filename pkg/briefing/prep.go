package briefing

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/missionctl/missionctl/pkg/calendar"
	"github.com/missionctl/missionctl/pkg/planner"
	"github.com/missionctl/missionctl/pkg/priority"
)

// prepStopwords are excluded from title matching: articles, connectives,
// and scheduling words that would match every meeting.
var prepStopwords = map[string]bool{
	"a": true, "an": true, "and": true, "at": true, "for": true, "from": true,
	"in": true, "of": true, "on": true, "or": true, "the": true, "to": true,
	"with": true,
	"call": true, "chat": true, "checkin": true, "daily": true, "meeting": true,
	"monthly": true, "prep": true, "review": true, "standup": true, "sync": true,
	"weekly": true,
}

// minTokenMatchRatio is the share of a task's tokens that must appear in an
// event title for a title match.
const minTokenMatchRatio = 0.3

// findPrepTasks flags open tasks that prepare for tomorrow: explicit
// meeting-prep tasks, tasks whose title overlaps a tomorrow event, and large
// tasks due tomorrow.
func findPrepTasks(tasks []planner.Task, tomorrowEvents []calendar.Event, date string, loc *time.Location) []PrepTask {
	_, todayEnd := localDayBounds(date, loc)
	tomorrowEnd := todayEnd.AddDate(0, 0, 1)

	eventTokens := make([][]string, len(tomorrowEvents))
	for i, ev := range tomorrowEvents {
		eventTokens[i] = tokenize(ev.Title)
	}

	var (
		prep []PrepTask
		seen = make(map[string]bool)
	)
	add := func(task planner.Task, reason string) {
		if seen[task.ID] {
			return
		}
		seen[task.ID] = true
		prep = append(prep, PrepTask{Task: summarize(task), Reason: reason})
	}

	for _, task := range tasks {
		if task.Status == priority.StatusDone {
			continue
		}

		if task.Type == "meeting_prep" {
			if title, ok := matchEvent(tokenize(task.Title), tomorrowEvents, eventTokens); ok {
				add(task, fmt.Sprintf("Prepares for %q", title))
			} else {
				add(task, "Meeting preparation task")
			}
			continue
		}

		if title, ok := matchEvent(tokenize(task.Title), tomorrowEvents, eventTokens); ok {
			add(task, fmt.Sprintf("Related to %q", title))
			continue
		}

		dueTomorrow := task.DueAt != nil &&
			!task.DueAt.Before(todayEnd) && task.DueAt.Before(tomorrowEnd)
		if dueTomorrow && task.EstimatedMinutes >= largePrepMinutes {
			add(task, "Large task due tomorrow")
		}
	}
	return prep
}

// matchEvent returns the first tomorrow event whose title shares at least
// one token with the task and covers ≥30% of the task's tokens.
func matchEvent(taskTokens []string, events []calendar.Event, eventTokens [][]string) (string, bool) {
	if len(taskTokens) == 0 {
		return "", false
	}
	for i, ev := range events {
		evSet := make(map[string]bool, len(eventTokens[i]))
		for _, tok := range eventTokens[i] {
			evSet[tok] = true
		}
		matched := 0
		for _, tok := range taskTokens {
			if evSet[tok] {
				matched++
			}
		}
		if matched >= 1 && float64(matched)/float64(len(taskTokens)) >= minTokenMatchRatio {
			return ev.Title, true
		}
	}
	return "", false
}

// tokenize lowercases, strips non-alphanumerics, and drops stopwords.
func tokenize(title string) []string {
	fields := strings.FieldsFunc(strings.ToLower(title), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if !prepStopwords[f] {
			tokens = append(tokens, f)
		}
	}
	return tokens
}
