package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondErrorMapsSentinels(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		title  string
	}{
		{"validation", fmt.Errorf("%w: date required", ErrValidation), http.StatusBadRequest, "Bad Request"},
		{"not found", ErrNotFound, http.StatusNotFound, "Not Found"},
		{"method", ErrMethodNotAllowed, http.StatusMethodNotAllowed, "Method Not Allowed"},
		{"too large", ErrTooLarge, http.StatusRequestEntityTooLarge, "Request Entity Too Large"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "Internal Error"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			RespondError(rr, tc.err)

			assert.Equal(t, tc.status, rr.Code)
			assert.Equal(t, "application/problem+json", rr.Header().Get("Content-Type"))

			var body ProblemDetail
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
			assert.Equal(t, tc.title, body.Title)
			assert.Equal(t, tc.status, body.Status)
		})
	}
}

func TestRespondErrorHidesInternalDetail(t *testing.T) {
	rr := httptest.NewRecorder()
	RespondError(rr, errors.New("secret stack detail"))

	assert.NotContains(t, rr.Body.String(), "secret stack detail")
}
