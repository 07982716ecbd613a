package docusignauth

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MarcGrol/signbackend/lib/myerrors"
)

// ErrAuthentication matches every failure of the handshake, whatever step it failed in.
var ErrAuthentication = errors.New("docusign authentication failed")

type noTokenError struct{}

func (noTokenError) Error() string {
	return "no token was provided"
}

func (noTokenError) GetHTTPErrorCode() int {
	return http.StatusBadRequest
}

// ErrNoToken is returned before any network call when a provider call lacks an access token.
var ErrNoToken error = noTokenError{}

type AssertionError struct {
	Err error
}

func (e *AssertionError) Error() string {
	return fmt.Sprintf("error signing jwt assertion: %s", e.Err)
}

func (e *AssertionError) Unwrap() error {
	return e.Err
}

func (e *AssertionError) Is(target error) bool {
	return target == ErrAuthentication
}

func (e *AssertionError) GetHTTPErrorCode() int {
	return http.StatusInternalServerError
}

type TokenExchangeError struct {
	StatusCode  int
	Body        []byte
	ErrorCode   string
	Description string
	Err         error
}

func (e *TokenExchangeError) Error() string {
	if e.ErrorCode != "" {
		return fmt.Sprintf("error exchanging jwt assertion for token (status %d): %s %s", e.StatusCode, e.ErrorCode, e.Description)
	}
	return fmt.Sprintf("error exchanging jwt assertion for token (status %d): %s", e.StatusCode, e.Err)
}

func (e *TokenExchangeError) Unwrap() error {
	return e.Err
}

func (e *TokenExchangeError) Is(target error) bool {
	return target == ErrAuthentication
}

func (e *TokenExchangeError) upstream() *myerrors.UpstreamError {
	return myerrors.NewUpstreamError(e.StatusCode, e.Body, e.Err)
}

func (e *TokenExchangeError) GetHTTPErrorCode() int {
	return e.upstream().GetHTTPErrorCode()
}

func (e *TokenExchangeError) RawResponse() []byte {
	return e.upstream().RawResponse()
}

// ConsentRequired reports that the impersonated user has not yet granted consent; see AuthURI.
func (e *TokenExchangeError) ConsentRequired() bool {
	return e.ErrorCode == "consent_required"
}

type UserInfoError struct {
	StatusCode int
	Body       []byte
	Err        error
}

func (e *UserInfoError) Error() string {
	return fmt.Sprintf("error fetching user-info (status %d): %s", e.StatusCode, e.Err)
}

func (e *UserInfoError) Unwrap() error {
	return e.Err
}

func (e *UserInfoError) Is(target error) bool {
	return target == ErrAuthentication
}

func (e *UserInfoError) upstream() *myerrors.UpstreamError {
	return myerrors.NewUpstreamError(e.StatusCode, e.Body, e.Err)
}

func (e *UserInfoError) GetHTTPErrorCode() int {
	return e.upstream().GetHTTPErrorCode()
}

func (e *UserInfoError) RawResponse() []byte {
	return e.upstream().RawResponse()
}
