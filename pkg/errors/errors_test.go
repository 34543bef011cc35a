package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAppError_UnwrapAndInspect(t *testing.T) {
	cause := fmt.Errorf("throttled")
	err := fmt.Errorf("get item: %w", NewDatabaseError("GetItem", cause))

	appErr := GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, ErrorTypeDatabase, appErr.Type)
	assert.ErrorIs(t, err, cause)
	assert.False(t, IsNotFound(err))
	assert.True(t, IsNotFound(NewNotFoundError("Item")))
	assert.True(t, IsValidation(fmt.Errorf("wrapped: %w", NewValidationError("bad"))))
}

func TestErrorHandler_Handle(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantType   string
		wantError  string
	}{
		{
			name:       "not found",
			err:        NewNotFoundError("Item"),
			wantStatus: http.StatusNotFound,
			wantType:   "NOT_FOUND",
			wantError:  "Item not found",
		},
		{
			name:       "forbidden",
			err:        NewForbiddenError("Unauthorized"),
			wantStatus: http.StatusForbidden,
			wantType:   "FORBIDDEN",
			wantError:  "Unauthorized",
		},
		{
			name:       "database error hides cause",
			err:        NewDatabaseError("Query", fmt.Errorf("boom")),
			wantStatus: http.StatusInternalServerError,
			wantType:   "DATABASE",
			wantError:  "database operation 'Query' failed",
		},
		{
			name:       "plain error",
			err:        fmt.Errorf("boom"),
			wantStatus: http.StatusInternalServerError,
			wantType:   "INTERNAL",
			wantError:  "An internal error occurred",
		},
	}

	h := NewErrorHandler(zap.NewNop(), false)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/items", nil)

			h.Handle(rec, req, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantType, body.Type)
			assert.Equal(t, tt.wantError, body.Error)
		})
	}
}

func TestErrorHandler_HandleStatus(t *testing.T) {
	h := NewErrorHandler(zap.NewNop(), false)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/prices", nil)

	h.HandleStatus(rec, req, http.StatusBadRequest, "itemId required")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"itemId required","type":"VALIDATION"}`, rec.Body.String())
}
