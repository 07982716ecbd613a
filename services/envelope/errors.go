package envelope

import (
	"fmt"

	"github.com/MarcGrol/signbackend/lib/myerrors"
)

// EnvelopeCreationError wraps a rejected envelope submission. The provider's answer is kept
// so it can be handed back to the caller unchanged.
type EnvelopeCreationError struct {
	Cause error
}

func (e *EnvelopeCreationError) Error() string {
	return fmt.Sprintf("error creating envelope: %s", e.Cause)
}

func (e *EnvelopeCreationError) Unwrap() error {
	return e.Cause
}

func (e *EnvelopeCreationError) RawResponse() []byte {
	body, _ := myerrors.GetRawResponse(e.Cause)
	return body
}

type EnvelopeLookupError struct {
	EnvelopeID string
	Cause      error
}

func (e *EnvelopeLookupError) Error() string {
	return fmt.Sprintf("error fetching envelope %s: %s", e.EnvelopeID, e.Cause)
}

func (e *EnvelopeLookupError) Unwrap() error {
	return e.Cause
}

func (e *EnvelopeLookupError) RawResponse() []byte {
	body, _ := myerrors.GetRawResponse(e.Cause)
	return body
}

type EnvelopeVoidError struct {
	EnvelopeID string
	Cause      error
}

func (e *EnvelopeVoidError) Error() string {
	return fmt.Sprintf("error voiding envelope %s: %s", e.EnvelopeID, e.Cause)
}

func (e *EnvelopeVoidError) Unwrap() error {
	return e.Cause
}

func (e *EnvelopeVoidError) RawResponse() []byte {
	body, _ := myerrors.GetRawResponse(e.Cause)
	return body
}
