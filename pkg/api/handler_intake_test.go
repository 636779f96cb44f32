package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/missionctl/missionctl/ent"
	"github.com/missionctl/missionctl/pkg/services"
)

func TestIntakeResponse_StatusMapping(t *testing.T) {
	item := &ent.InboxItem{ID: "inbox-1"}
	processingError := "extraction output rejected: not JSON"
	errored := &ent.InboxItem{ID: "inbox-2", ProcessingError: &processingError}

	t.Run("created", func(t *testing.T) {
		status, body := intakeResponse(&services.IntakeResult{
			InboxItem: item,
			Task:      &ent.Task{ID: "task-1"},
		})
		assert.Equal(t, http.StatusCreated, status)
		assert.Equal(t, "inbox-1", body.InboxItemID)
		assert.Empty(t, body.Message)
	})

	t.Run("duplicate", func(t *testing.T) {
		status, body := intakeResponse(&services.IntakeResult{
			InboxItem: item,
			Duplicate: true,
		})
		assert.Equal(t, http.StatusOK, status)
		assert.True(t, body.Duplicate)
		assert.Contains(t, body.Message, "Duplicate")
	})

	// A failed extraction is a server error, but the stored inbox item id
	// still reaches the caller.
	t.Run("extraction failed", func(t *testing.T) {
		status, body := intakeResponse(&services.IntakeResult{
			InboxItem:        errored,
			ExtractionFailed: true,
		})
		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, "inbox-2", body.InboxItemID)
		assert.Equal(t, processingError, body.Message)
		assert.Nil(t, body.Task)
	})
}
