package sanitize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize_StripsStyleAndScriptBlocks(t *testing.T) {
	raw := `<style>.x{color:red}</style><p>Agenda</p><script>alert("x")</script>`
	got := Sanitize(raw, 0)

	assert.Equal(t, "Agenda", got)
	assert.NotContains(t, got, "color")
	assert.NotContains(t, got, "alert")
}

func TestSanitize_StructuralTagsBecomeNewlines(t *testing.T) {
	raw := `<div>First item</div><div>Second item</div>`
	got := Sanitize(raw, 0)

	assert.Equal(t, "First item\nSecond item", got)
}

func TestSanitize_DecodesEntities(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"named", "Fish &amp; Chips", "Fish & Chips"},
		{"nested amp", "&amp;amp;", "&"},
		{"numeric apostrophe", "It&#8217;s fine", "It's fine"},
		{"hex", "A&#x2D;B", "A-B"},
		{"nbsp", "a&nbsp;b", "a b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.raw, 0))
		})
	}
}

// Entity decoding must run before the scrub stage: an encoded address that is
// only visible after decoding still has to be removed.
func TestSanitize_EncodedEmailDoesNotLeak(t *testing.T) {
	raw := "Contact john&#64;example&#46;com now"
	got := Sanitize(raw, 0)

	assert.Equal(t, "Contact now", got)
	assert.NotContains(t, got, "@")
	assert.NotContains(t, got, "example")
}

func TestSanitize_NormalizesICalEscapes(t *testing.T) {
	raw := `Line one\nLine two\, with comma\; done`
	got := Sanitize(raw, 0)

	assert.Equal(t, "Line one\nLine two, with comma; done", got)
}

func TestSanitize_DeletesJoinBlocks(t *testing.T) {
	raw := strings.Join([]string{
		"Quarterly planning agenda",
		"Topics: hiring, budget",
		"________________",
		"Join Microsoft Teams Meeting",
		"Meeting ID: 987 654 321",
		"Passcode: hunter2",
		"________________",
	}, "\n")

	got := Sanitize(raw, 0)

	assert.Contains(t, got, "Quarterly planning agenda")
	assert.Contains(t, got, "Topics: hiring, budget")
	assert.NotContains(t, strings.ToLower(got), "join")
	assert.NotContains(t, strings.ToLower(got), "meeting id")
	assert.NotContains(t, strings.ToLower(got), "passcode")
}

func TestSanitize_ScrubsIdentifiers(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"https url", "See https://example.com/agenda?id=42 for details"},
		{"www url", "See www.example.com/agenda for details"},
		{"mailto", "Write to mailto:ops@example.com for details"},
		{"email", "Write to ops@example.com for details"},
		{"phone", "Call +1 (555) 123-4567 for details"},
		{"long numeric id", "Reference 9876543210 for details"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sanitize(tt.raw, 0)
			assert.NotContains(t, got, "example")
			assert.NotContains(t, got, "@")
			assert.NotContains(t, got, "555")
			assert.NotContains(t, got, "9876543210")
			assert.Contains(t, got, "for details")
		})
	}
}

func TestSanitize_CollapsesWhitespace(t *testing.T) {
	raw := "a   b\t\tc\n\n\n\nd"
	got := Sanitize(raw, 0)

	assert.Equal(t, "a b c\nd", got)
}

func TestSanitize_Truncates(t *testing.T) {
	raw := strings.Repeat("word ", 100)
	got := Sanitize(raw, 20)

	assert.LessOrEqual(t, len(got), 20)
	assert.Equal(t, strings.TrimRight(got, " \t\n"), got)
}

func TestSanitize_EmptyAndGarbageInputs(t *testing.T) {
	assert.Equal(t, "", Sanitize("", 100))
	assert.Equal(t, "", Sanitize("<p></p>", 100))
	assert.Equal(t, "", Sanitize("   \n\t  ", 100))
}

func TestSanitize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"<div>HTML <b>soup</b></div><style>x</style>",
		"Call +1 (555) 123-4567 or visit https://example.com",
		strings.Join([]string{
			"Agenda",
			"filler",
			"Join Zoom Meeting",
			"Meeting ID: 111 222 333",
			"tail",
			"more tail",
			"real content",
		}, "\n"),
		`iCal\nescapes\, here`,
		"It&#8217;s &amp; entity soup &lt;ok&gt;",
	}
	for _, in := range inputs {
		once := Sanitize(in, 0)
		twice := Sanitize(once, 0)
		assert.Equal(t, once, twice, "sanitize must be idempotent for %q", in)
	}
}

// Double-encoded markup decodes one layer per pass; none of it may survive as
// live markup, and the result must sanitize to itself.
func TestSanitize_DoubleEncodedMarkupIsStripped(t *testing.T) {
	raw := "&amp;lt;script&amp;gt;alert(1)&amp;lt;/script&amp;gt;"
	got := Sanitize(raw, 0)

	assert.NotContains(t, got, "<")
	assert.NotContains(t, got, ">")
	assert.NotContains(t, got, "&lt;")
	assert.NotContains(t, got, "&gt;")
	assert.Equal(t, got, Sanitize(got, 0))
}

func TestLine_SingleLine(t *testing.T) {
	got := Line("<div>First</div><div>Second</div>", 0)
	assert.Equal(t, "First Second", got)
	assert.NotContains(t, got, "\n")
}
