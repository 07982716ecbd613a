package docusignclient

import (
	"fmt"

	"github.com/MarcGrol/signbackend/lib/myerrors"
)

// APIError is a rejection by the eSignature REST API. RawResponse is the body as the provider sent it.
type APIError struct {
	StatusCode int
	ErrorCode  string
	Message    string
	Body       []byte
	Err        error
}

func (e *APIError) Error() string {
	if e.ErrorCode != "" {
		return fmt.Sprintf("docusign api error (status %d): %s: %s", e.StatusCode, e.ErrorCode, e.Message)
	}
	return fmt.Sprintf("docusign api error (status %d): %s", e.StatusCode, e.Err)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

func (e *APIError) upstream() *myerrors.UpstreamError {
	return myerrors.NewUpstreamError(e.StatusCode, e.Body, e.Err)
}

func (e *APIError) GetHTTPErrorCode() int {
	return e.upstream().GetHTTPErrorCode()
}

func (e *APIError) RawResponse() []byte {
	return e.upstream().RawResponse()
}
