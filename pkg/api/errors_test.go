package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/missionctl/missionctl/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{
			name:     "validation error maps to 400",
			err:      services.NewValidationError("title", "title is required"),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "wrapped validation error maps to 400",
			err:      wrap(services.NewValidationError("mode", "invalid mode")),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "not found maps to 404",
			err:      services.ErrNotFound,
			wantCode: http.StatusNotFound,
		},
		{
			name:     "already exists maps to 409",
			err:      services.ErrAlreadyExists,
			wantCode: http.StatusConflict,
		},
		{
			name:     "unknown error maps to 500",
			err:      errors.New("boom"),
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			he := mapServiceError(tt.err)
			assert.Equal(t, tt.wantCode, he.Code)
		})
	}
}

func wrap(err error) error {
	return errors.Join(errors.New("context"), err)
}
