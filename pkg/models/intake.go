// Package models holds the wire-facing domain types shared by the services
// and API layers.
package models

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// IntakeEmail is the inbound email metadata posted to the intake endpoint.
// BodySnippet is transient: it feeds the extractor and is never persisted.
type IntakeEmail struct {
	Subject     string    `json:"subject"`
	FromEmail   string    `json:"from_email"`
	FromName    string    `json:"from_name,omitempty"`
	ReceivedAt  time.Time `json:"received_at"`
	MessageID   string    `json:"message_id,omitempty"`
	SourceURL   string    `json:"source_url,omitempty"`
	BodySnippet string    `json:"body_snippet,omitempty"`
}

// DedupeKey computes the intake idempotency key: SHA-256 over owner and
// message id when present, else over the composite of subject, sender, and
// receive time. Two intakes sharing the composite are treated as duplicates
// even if they describe different events.
func (e IntakeEmail) DedupeKey(ownerID string) string {
	var payload string
	if id := strings.TrimSpace(e.MessageID); id != "" {
		payload = ownerID + "|" + id
	} else {
		payload = ownerID + "|" + e.Subject + "|" + e.FromEmail + "|" +
			e.ReceivedAt.UTC().Format(time.RFC3339)
	}
	sum := sha256.Sum256([]byte(payload))
	return hex.EncodeToString(sum[:])
}
