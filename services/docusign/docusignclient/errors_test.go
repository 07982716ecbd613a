package docusignclient

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MarcGrol/signbackend/lib/myerrors"
)

func TestAPIErrorStatus(t *testing.T) {
	testCases := []struct {
		name       string
		in         *APIError
		httpStatus int
	}{
		{
			name:       "Provider rejection",
			in:         &APIError{StatusCode: http.StatusNotFound, Body: []byte(`{"errorCode":"ENVELOPE_DOES_NOT_EXIST"}`)},
			httpStatus: http.StatusNotFound,
		},
		{
			name:       "Provider outage",
			in:         &APIError{StatusCode: http.StatusServiceUnavailable},
			httpStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "Unexpected redirect",
			in:         &APIError{StatusCode: http.StatusFound},
			httpStatus: http.StatusBadRequest,
		},
		{
			name:       "Transport failure",
			in:         &APIError{Err: errors.New("connection refused")},
			httpStatus: http.StatusBadRequest,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.httpStatus, myerrors.GetHTTPStatus(tc.in))

			body, found := myerrors.GetRawResponse(tc.in)
			assert.Equal(t, len(tc.in.Body) > 0, found)
			assert.Equal(t, tc.in.Body, body)
		})
	}
}
