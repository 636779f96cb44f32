package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDedupeKey(t *testing.T) {
	received := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	withID := IntakeEmail{Subject: "A", FromEmail: "a@x.com", ReceivedAt: received, MessageID: "<abc@x>"}
	sameID := IntakeEmail{Subject: "B", FromEmail: "b@y.com", ReceivedAt: received.Add(time.Hour), MessageID: "<abc@x>"}
	otherID := IntakeEmail{Subject: "A", FromEmail: "a@x.com", ReceivedAt: received, MessageID: "<def@x>"}

	// Message id dominates: subject and sender do not matter.
	assert.Equal(t, withID.DedupeKey("owner-1"), sameID.DedupeKey("owner-1"))
	assert.NotEqual(t, withID.DedupeKey("owner-1"), otherID.DedupeKey("owner-1"))

	// Owner partitions the key space.
	assert.NotEqual(t, withID.DedupeKey("owner-1"), withID.DedupeKey("owner-2"))

	// Fallback composite when no message id.
	noID := IntakeEmail{Subject: "A", FromEmail: "a@x.com", ReceivedAt: received}
	sameComposite := IntakeEmail{Subject: "A", FromEmail: "a@x.com", ReceivedAt: received, BodySnippet: "different body"}
	otherTime := IntakeEmail{Subject: "A", FromEmail: "a@x.com", ReceivedAt: received.Add(time.Minute)}
	assert.Equal(t, noID.DedupeKey("owner-1"), sameComposite.DedupeKey("owner-1"))
	assert.NotEqual(t, noID.DedupeKey("owner-1"), otherTime.DedupeKey("owner-1"))

	// Blank message id falls back to the composite.
	blankID := IntakeEmail{Subject: "A", FromEmail: "a@x.com", ReceivedAt: received, MessageID: "   "}
	assert.Equal(t, noID.DedupeKey("owner-1"), blankID.DedupeKey("owner-1"))

	assert.Len(t, withID.DedupeKey("owner-1"), 64)
}
