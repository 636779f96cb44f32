// Package sanitize strips HTML, join-block noise, and PII-shaped content from
// untrusted meeting and email bodies before they are persisted or shown.
//
// The pipeline runs a fixed stage order; reordering it leaks content (for
// example, scrubbing before entity decoding misses encoded addresses). The
// result is always a plain-text preview; Sanitize never fails.
package sanitize

import (
	"strconv"
	"strings"
)

// DefaultMaxChars bounds calendar body previews.
const DefaultMaxChars = 2000

// maxDecodePasses bounds the decode-and-strip loop. Real mail settles in two
// or three passes; anything deeper is treated as hostile.
const maxDecodePasses = 10

// Sanitize converts raw HTML or text into a scrubbed plain-text preview of at
// most maxChars characters. maxChars <= 0 disables truncation. The function
// is idempotent: sanitizing its own output is a no-op.
func Sanitize(raw string, maxChars int) string {
	if raw == "" {
		return ""
	}

	s := raw

	// 1. Drop style/script blocks wholesale.
	s = styleBlockRe.ReplaceAllString(s, " ")
	s = scriptBlockRe.ReplaceAllString(s, " ")

	// 2. Structural tags become line breaks so join-block detection still
	// sees the original line structure.
	s = structuralTagRe.ReplaceAllString(s, "\n")

	// 3+4. Decode entities, then strip the tags decoding may have revealed.
	// Repeats until stable so double-encoded markup cannot slip through one
	// pass and decode into live markup on the next.
	for pass := 0; ; pass++ {
		next := tagRe.ReplaceAllString(decodeEntities(s), " ")
		if next == s {
			break
		}
		if pass == maxDecodePasses {
			// Still churning; drop whatever remains entity or tag
			// shaped instead of decoding it.
			next = residualEntityRe.ReplaceAllString(next, " ")
			s = tagRe.ReplaceAllString(next, " ")
			break
		}
		s = next
	}

	// 5. Normalize escaped iCal sequences.
	s = strings.ReplaceAll(s, `\n`, "\n")
	s = strings.ReplaceAll(s, `\,`, ",")
	s = strings.ReplaceAll(s, `\;`, ";")

	// 6. Delete join blocks with surrounding context.
	s = dropJoinBlocks(s)

	// 7. Scrub URLs, addresses, phones, and long numeric ids.
	s = scrubIdentifiers(s)

	// 8. Collapse whitespace but keep paragraph structure.
	s = collapseWhitespace(s)

	// 9. Truncate.
	if maxChars > 0 && len(s) > maxChars {
		s = strings.TrimRight(s[:maxChars], " \t\n")
	}

	return s
}

// Line sanitizes to a single line, for titles and one-line previews.
func Line(raw string, maxChars int) string {
	s := Sanitize(raw, 0)
	s = wsRunRe.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	if maxChars > 0 && len(s) > maxChars {
		s = strings.TrimRight(s[:maxChars], " ")
	}
	return s
}

func decodeEntities(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}
	s = entityReplacer.Replace(s)
	s = numericEntityRe.ReplaceAllStringFunc(s, func(m string) string {
		code, err := strconv.Atoi(m[2 : len(m)-1])
		if err != nil || code <= 0 || code > 0x10FFFF {
			return " "
		}
		return string(rune(code))
	})
	s = hexEntityRe.ReplaceAllStringFunc(s, func(m string) string {
		code, err := strconv.ParseInt(m[3:len(m)-1], 16, 32)
		if err != nil || code <= 0 || code > 0x10FFFF {
			return " "
		}
		return string(rune(code))
	})
	return s
}

// dropJoinBlocks removes every line containing a join-block marker along with
// the preceding line and the two following lines.
func dropJoinBlocks(s string) string {
	lines := strings.Split(s, "\n")
	drop := make([]bool, len(lines))

	for i, line := range lines {
		lower := strings.ToLower(line)
		for _, marker := range joinBlockMarkers {
			if strings.Contains(lower, marker) {
				if i > 0 {
					drop[i-1] = true
				}
				drop[i] = true
				if i+1 < len(lines) {
					drop[i+1] = true
				}
				if i+2 < len(lines) {
					drop[i+2] = true
				}
				break
			}
		}
	}

	kept := lines[:0]
	for i, line := range lines {
		if !drop[i] {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

func scrubIdentifiers(s string) string {
	s = urlRe.ReplaceAllString(s, " ")
	s = wwwRe.ReplaceAllString(s, " ")
	s = mailtoRe.ReplaceAllString(s, " ")
	s = emailRe.ReplaceAllString(s, " ")
	s = phoneRe.ReplaceAllString(s, " ")
	s = longNumberRe.ReplaceAllString(s, " ")
	return s
}

// collapseWhitespace squeezes horizontal whitespace runs, trims each line,
// and drops blank lines.
func collapseWhitespace(s string) string {
	s = spaceRunRe.ReplaceAllString(s, " ")

	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
