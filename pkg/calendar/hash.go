package calendar

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// ContentHash computes the canonical event fingerprint used for change
// detection: SHA-256 over title, UTC start/end, and the sanitized body
// preview. Timestamps are truncated to whole seconds so drivers that round
// sub-second precision do not produce phantom changes.
func ContentHash(title string, startAt, endAt time.Time, sanitizedBody string) string {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(title))
	b.WriteByte('|')
	b.WriteString(startAt.UTC().Truncate(time.Second).Format(time.RFC3339))
	b.WriteByte('|')
	b.WriteString(endAt.UTC().Truncate(time.Second).Format(time.RFC3339))
	b.WriteByte('|')
	b.WriteString(strings.TrimSpace(sanitizedBody))

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}
