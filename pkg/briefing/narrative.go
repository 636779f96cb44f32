package briefing

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"regexp"
	"strings"
)

var bulletRe = regexp.MustCompile(`(?m)^\s*[-*•]`)
var sentenceSplitRe = regexp.MustCompile(`[.!?]+`)

// ValidNarrative reports whether model output is acceptable as a briefing
// narrative: non-empty, no bullets, no newlines, at most three sentences.
// Rejected narratives are returned to the client as "" and never cached.
func ValidNarrative(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	if bulletRe.MatchString(trimmed) {
		return false
	}
	if strings.Contains(trimmed, "\n") {
		return false
	}
	sentences := 0
	for _, part := range sentenceSplitRe.Split(trimmed, -1) {
		if strings.TrimSpace(part) != "" {
			sentences++
		}
	}
	return sentences <= 3
}

// NarrativeContext builds the per-mode context handed to the model. Only
// details present here may appear in the narrative.
func NarrativeContext(b Briefing) map[string]any {
	ctx := map[string]any{
		"date":          b.RequestedDate,
		"mode":          b.Mode,
		"currentTimeET": b.CurrentTimeET,
		"events":        b.Today.Events,
		"focusBlocks":   b.Today.FocusBlocks,
		"planned":       b.Today.Planned,
		"progress":      b.Today.Progress,
		"capacity":      b.Today.Capacity,
	}
	if b.Mode == ModeEOD && b.Tomorrow != nil {
		ctx["completed"] = b.Today.Completed
		ctx["tomorrowEvents"] = b.Tomorrow.Events
		ctx["prepTasks"] = b.Tomorrow.PrepTasks
		ctx["rolledOver"] = b.Tomorrow.RolledOver
	}
	return ctx
}

// ContextJSON marshals the narrative context deterministically and returns
// it with its SHA-256 hash, the cache key's last component.
func ContextJSON(ctx map[string]any) (string, string, error) {
	data, err := json.Marshal(ctx)
	if err != nil {
		return "", "", err
	}
	sum := sha256.Sum256(data)
	return string(data), hex.EncodeToString(sum[:]), nil
}

// CacheKey builds the narrative cache key.
func CacheKey(ownerID, requestedDate, mode, modelScope, contextHash string) string {
	return strings.Join([]string{ownerID, requestedDate, mode, modelScope, contextHash}, "|")
}
