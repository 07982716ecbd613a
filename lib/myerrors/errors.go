package myerrors

import (
	"errors"
	"fmt"
	"net/http"
)

type httpErrorCoder interface {
	error
	GetHTTPErrorCode() int
}

type rawResponder interface {
	RawResponse() []byte
}

type httpError struct {
	httpCode int
	err      error
}

func (e httpError) Error() string {
	return fmt.Sprintf("status: %d, err: %s", e.httpCode, e.err.Error())
}

func (e httpError) GetHTTPErrorCode() int {
	return e.httpCode
}

func (e httpError) Unwrap() error {
	return e.err
}

func newError(httpCode int, err error) *httpError {
	return &httpError{
		httpCode: httpCode,
		err:      err,
	}
}

func NewInvalidInputError(err error) *httpError {
	return newError(http.StatusBadRequest, err)
}

func NewInvalidInputErrorf(format string, args ...any) *httpError {
	return NewInvalidInputError(fmt.Errorf(format, args...))
}

func NewUnsupportedMediaTypeError(err error) *httpError {
	return newError(http.StatusUnsupportedMediaType, err)
}

func NewAuthenticationError(err error) *httpError {
	return newError(http.StatusForbidden, err)
}

func NewInternalError(err error) *httpError {
	return newError(http.StatusInternalServerError, err)
}

// UpstreamError is a failure reported by a remote party. The remote status and body are
// handed back to our own caller as-is.
type UpstreamError struct {
	StatusCode int
	Body       []byte
	Err        error
}

// NewUpstreamError uses 400 when the remote party did not provide a usable status.
func NewUpstreamError(statusCode int, body []byte, err error) *UpstreamError {
	if statusCode < 400 || statusCode > 599 {
		statusCode = http.StatusBadRequest
	}
	return &UpstreamError{
		StatusCode: statusCode,
		Body:       body,
		Err:        err,
	}
}

func (e UpstreamError) Error() string {
	return fmt.Sprintf("upstream status: %d, err: %s", e.StatusCode, e.Err.Error())
}

func (e UpstreamError) GetHTTPErrorCode() int {
	return e.StatusCode
}

func (e UpstreamError) RawResponse() []byte {
	return e.Body
}

func (e UpstreamError) Unwrap() error {
	return e.Err
}

func GetHTTPStatus(err error) int {
	var coder httpErrorCoder
	if err != nil && errors.As(err, &coder) {
		return coder.GetHTTPErrorCode()
	}
	return http.StatusInternalServerError
}

// GetRawResponse returns the untouched remote response body of the first error in the
// chain that carries one.
func GetRawResponse(err error) ([]byte, bool) {
	var responder rawResponder
	if err != nil && errors.As(err, &responder) {
		body := responder.RawResponse()
		return body, len(body) > 0
	}
	return nil, false
}
