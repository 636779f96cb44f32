package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExtraction(t *testing.T) {
	text := "```json\n" + `{
		"title": "Review Q3 contract",
		"task_type": "follow_up",
		"estimated_minutes": 45,
		"due_guess_iso": "2026-03-12T17:00:00Z",
		"priority_score": 60,
		"stakeholder_mentions": ["Nancy"],
		"implementation_guess": "Acme rollout",
		"implementation_confidence": 0.85,
		"confidence": 0.9,
		"suggested_checklist": ["Read redlines", "Reply to counsel"]
	}` + "\n```"

	result, err := ParseExtraction(text)
	require.NoError(t, err)
	assert.Equal(t, "Review Q3 contract", result.Title)
	assert.Equal(t, "follow_up", result.TaskType)
	assert.Equal(t, 45, result.EstimatedMinutes)
	assert.Equal(t, 0.9, result.Confidence)
	assert.Equal(t, []string{"Read redlines", "Reply to counsel"}, result.SuggestedChecklist)
}

func TestParseExtraction_ProseAroundJSON(t *testing.T) {
	result, err := ParseExtraction(`Here is the task: {"title": "Follow up", "confidence": 0.5} Hope that helps!`)
	require.NoError(t, err)
	assert.Equal(t, "Follow up", result.Title)
}

func TestParseExtraction_Rejections(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"no json", "I could not find a task in this email."},
		{"invalid json", `{"title": "x", "confidence":}`},
		{"missing title", `{"confidence": 0.5}`},
		{"missing confidence", `{"title": "x"}`},
		{"confidence out of range", `{"title": "x", "confidence": 1.5}`},
		{"bad task type", `{"title": "x", "confidence": 0.5, "task_type": "Chore"}`},
		{"estimate too large", `{"title": "x", "confidence": 0.5, "estimated_minutes": 999}`},
		{"blank title", `{"title": "   ", "confidence": 0.5}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseExtraction(tt.text)
			assert.Error(t, err)
		})
	}
}

func TestParseExtraction_NullOptionalsTolerated(t *testing.T) {
	result, err := ParseExtraction(`{
		"title": "Ping vendor",
		"description": null,
		"task_type": null,
		"estimated_minutes": null,
		"due_guess_iso": null,
		"priority_score": null,
		"stakeholder_mentions": null,
		"implementation_guess": null,
		"implementation_confidence": null,
		"confidence": 0.4,
		"needs_review": null,
		"suggested_checklist": null
	}`)
	require.NoError(t, err)
	assert.Equal(t, "Ping vendor", result.Title)
	assert.Empty(t, result.TaskType)
	assert.Zero(t, result.EstimatedMinutes)
}
