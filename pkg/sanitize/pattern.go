package sanitize

import (
	"regexp"
	"strings"
)

// Pre-compiled patterns for the scrub stages. Order of application is
// load-bearing: entities must already be decoded before these run, or
// encoded addresses survive the scrub.
var (
	styleBlockRe  = regexp.MustCompile(`(?is)<style\b[^>]*>.*?</style>`)
	scriptBlockRe = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`)

	// Structural tags that imply a line break in the rendered document.
	structuralTagRe = regexp.MustCompile(`(?i)<br\s*/?>|</p>|</div>|</li>|</h[1-6]>`)

	// Any tag left after structural conversion.
	tagRe = regexp.MustCompile(`<[^>]*>`)

	numericEntityRe = regexp.MustCompile(`&#(\d+);`)
	hexEntityRe     = regexp.MustCompile(`&#[xX]([0-9a-fA-F]+);`)

	urlRe        = regexp.MustCompile(`(?i)https?://[^\s<>"']+`)
	wwwRe        = regexp.MustCompile(`(?i)\bwww\.[^\s<>"']+`)
	mailtoRe     = regexp.MustCompile(`(?i)mailto:[^\s<>"']+`)
	emailRe      = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phoneRe      = regexp.MustCompile(`\+?\d[\d\s().-]{7,}\d`)
	longNumberRe = regexp.MustCompile(`\d{6,}`)

	spaceRunRe = regexp.MustCompile(`[ \t]+`)
	wsRunRe    = regexp.MustCompile(`\s+`)
)

// joinBlockMarkers are matched case-insensitively against each line; a hit
// deletes the line, the line before it, and the two lines after it. Meeting
// invitations bury dial-in noise in exactly this shape.
var joinBlockMarkers = []string{
	"join microsoft teams meeting",
	"click here to join",
	"meeting id",
	"passcode",
	"dial-in",
	"conference id",
	"join teams meeting",
	"join zoom meeting",
	"one tap mobile",
	"call in",
}

// entityReplacer decodes the fixed set of named entities in one deterministic
// left-to-right pass. Replacement text is not rescanned, so double-encoded
// input needs another pass; Sanitize loops decode-and-strip to a fixpoint.
var entityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&apos;", "'",
	"&#39;", "'",
	"&nbsp;", " ",
	"&ndash;", "-",
	"&mdash;", "-",
	"&rsquo;", "'",
	"&lsquo;", "'",
	"&rdquo;", `"`,
	"&ldquo;", `"`,
)

// residualEntityRe matches anything still entity-shaped when the decode loop
// hits its pass bound; only pathologically nested encoding ever gets there.
var residualEntityRe = regexp.MustCompile(`&#?[0-9a-zA-Z]+;`)
