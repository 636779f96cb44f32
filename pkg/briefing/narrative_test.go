package briefing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/missionctl/missionctl/pkg/llm"
)

func TestValidNarrative(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"two sentences", "Your day starts with the Acme review at 10am. Three tasks remain.", true},
		{"three sentences", "One. Two. Three.", true},
		{"four sentences", "One. Two. Three. Four.", false},
		{"empty", "", false},
		{"whitespace only", "   ", false},
		{"bullets", "- point one - point two - point three", false},
		{"star bullet", "* leading star", false},
		{"unicode bullet", "• bullet", false},
		{"newline", "First line.\nSecond line.", false},
		{"exclamations count as sentences", "Go! Now! Do it! Again!", false},
		{"single sentence no terminator", "A quiet day with no meetings", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidNarrative(tt.text))
		})
	}
}

func TestContextJSONAndCacheKey(t *testing.T) {
	b := Briefing{
		RequestedDate: "2026-03-10",
		Mode:          ModeMorning,
		CurrentTimeET: "09:00",
	}
	ctx := NarrativeContext(b)
	_, hash1, err := ContextJSON(ctx)
	require.NoError(t, err)
	_, hash2, err := ContextJSON(NarrativeContext(b))
	require.NoError(t, err)
	assert.Equal(t, hash1, hash2, "same context must hash identically")

	b.Today.Progress.CompletedCount = 1
	_, hash3, err := ContextJSON(NarrativeContext(b))
	require.NoError(t, err)
	assert.NotEqual(t, hash1, hash3)

	key := CacheKey("owner-1", "2026-03-10", ModeMorning, "default", hash1)
	assert.Equal(t, "owner-1|2026-03-10|morning|default|"+hash1, key)
}

func TestNarrativeContext_EODIncludesTomorrow(t *testing.T) {
	b := Briefing{Mode: ModeEOD, Tomorrow: &Tomorrow{}}
	ctx := NarrativeContext(b)
	assert.Contains(t, ctx, "tomorrowEvents")
	assert.Contains(t, ctx, "rolledOver")

	morning := Briefing{Mode: ModeMorning}
	assert.NotContains(t, NarrativeContext(morning), "tomorrowEvents")
}

func TestNarrativeCache(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	cache := NewNarrativeCache(30 * time.Minute)
	meta := &llm.Meta{Provider: "openai", ModelID: "gpt-4o-mini"}

	_, _, ok := cache.Get("k", now)
	assert.False(t, ok)

	cache.Put("k", "A calm day.", meta, now)

	text, gotMeta, ok := cache.Get("k", now.Add(29*time.Minute))
	require.True(t, ok)
	assert.Equal(t, "A calm day.", text)
	assert.Equal(t, meta, gotMeta)

	_, _, ok = cache.Get("k", now.Add(31*time.Minute))
	assert.False(t, ok)

	// Opportunistic prune clears expired entries.
	assert.Equal(t, 1, cache.Len())
	assert.Equal(t, 1, cache.Prune(now.Add(31*time.Minute)))
	assert.Equal(t, 0, cache.Len())
}
