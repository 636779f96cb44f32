package priority

import (
	"strings"
	"time"
)

// urgentTitleWords give a small nudge to tasks whose extracted title signals
// immediacy on its own.
var urgentTitleWords = []string{"urgent", "asap", "immediately", "eod", "today"}

// IntakeBoosts computes the deterministic boost applied to an extracted
// task's base priority before it is persisted: urgency from the due-date
// guess, the stakeholder boost, and a title keyword nudge. The caller clips
// the final value into [0, 100].
func IntakeBoosts(mentions []string, dueGuessISO, title string, now time.Time) float64 {
	var boost float64

	if dueGuessISO != "" {
		if due, err := time.Parse(time.RFC3339, dueGuessISO); err == nil {
			boost += urgencyBoost(&due, now)
		} else if due, err := time.Parse("2006-01-02", dueGuessISO); err == nil {
			// Date-only guesses mean "by end of that day" in UTC.
			endOfDay := due.Add(24*time.Hour - time.Second)
			boost += urgencyBoost(&endOfDay, now)
		}
	}

	boost += stakeholderBoost(mentions, DefaultHighPriorityStakeholders)

	lower := strings.ToLower(title)
	for _, word := range urgentTitleWords {
		if strings.Contains(lower, word) {
			boost += 5
			break
		}
	}

	return boost
}
