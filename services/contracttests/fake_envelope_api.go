package contracttests

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	"github.com/MarcGrol/signbackend/lib/mytime"
	"github.com/MarcGrol/signbackend/lib/myuuid"
	"github.com/MarcGrol/signbackend/services/docusign/docusignauth"
	"github.com/MarcGrol/signbackend/services/docusign/docusignclient"
)

// FakeEnvelopeAPI mimics the envelope behaviour of the provider that our code relies upon.
type FakeEnvelopeAPI struct {
	sync.Mutex
	uuider    myuuid.UUIDer
	nower     mytime.Nower
	envelopes map[string]docusignclient.Envelope
}

func NewFakeEnvelopeAPI(uuider myuuid.UUIDer, nower mytime.Nower) *FakeEnvelopeAPI {
	return &FakeEnvelopeAPI{
		uuider:    uuider,
		nower:     nower,
		envelopes: map[string]docusignclient.Envelope{},
	}
}

func (f *FakeEnvelopeAPI) CreateEnvelope(c context.Context, acct docusignauth.AccountContext, def docusignclient.EnvelopeDefinition) (docusignclient.EnvelopeSummary, error) {
	if acct.Token.AccessToken == "" {
		return docusignclient.EnvelopeSummary{}, docusignauth.ErrNoToken
	}

	if len(def.Documents) == 0 || def.Recipients == nil || len(def.Recipients.Signers) == 0 {
		return docusignclient.EnvelopeSummary{}, apiError(http.StatusBadRequest, "ENVELOPE_IS_INCOMPLETE", "The Envelope is not Complete.")
	}
	for _, signer := range def.Recipients.Signers {
		if !strings.Contains(signer.Email, "@") {
			return docusignclient.EnvelopeSummary{}, apiError(http.StatusBadRequest, "INVALID_EMAIL_ADDRESS_FOR_RECIPIENT", "The email address for the recipient is invalid.")
		}
	}

	status := def.Status
	if status == "" {
		status = "created"
	}
	now := f.nower.Now().UTC().Format("2006-01-02T15:04:05.0000000Z")

	f.Lock()
	defer f.Unlock()

	envelopeID := f.uuider.Create()
	f.envelopes[key(acct.AccountID, envelopeID)] = docusignclient.Envelope{
		EnvelopeID:            envelopeID,
		Status:                status,
		EmailSubject:          def.EmailSubject,
		BrandID:               def.BrandID,
		CreatedDateTime:       now,
		SentDateTime:          now,
		StatusChangedDateTime: now,
		EnvelopeURI:           "/envelopes/" + envelopeID,
		Recipients:            def.Recipients,
	}

	return docusignclient.EnvelopeSummary{
		EnvelopeID:     envelopeID,
		Status:         status,
		StatusDateTime: now,
		URI:            "/envelopes/" + envelopeID,
	}, nil
}

func (f *FakeEnvelopeAPI) GetEnvelope(c context.Context, acct docusignauth.AccountContext, envelopeID string, opts docusignclient.GetEnvelopeOptions) (docusignclient.Envelope, error) {
	if acct.Token.AccessToken == "" {
		return docusignclient.Envelope{}, docusignauth.ErrNoToken
	}

	f.Lock()
	defer f.Unlock()

	envelope, exists := f.envelopes[key(acct.AccountID, envelopeID)]
	if !exists {
		return docusignclient.Envelope{}, apiError(http.StatusNotFound, "ENVELOPE_DOES_NOT_EXIST", "The envelope specified either does not exist or you have no rights to it.")
	}

	if !strings.Contains(opts.Include, "recipients") {
		envelope.Recipients = nil
	}
	return envelope, nil
}

func (f *FakeEnvelopeAPI) VoidEnvelope(c context.Context, acct docusignauth.AccountContext, envelopeID string, reason string) error {
	if acct.Token.AccessToken == "" {
		return docusignauth.ErrNoToken
	}

	f.Lock()
	defer f.Unlock()

	envelope, exists := f.envelopes[key(acct.AccountID, envelopeID)]
	if !exists {
		return apiError(http.StatusNotFound, "ENVELOPE_DOES_NOT_EXIST", "The envelope specified either does not exist or you have no rights to it.")
	}
	if envelope.Status != "sent" && envelope.Status != "delivered" {
		return apiError(http.StatusBadRequest, "ENVELOPE_CANNOT_VOID_INVALID_STATE", "Only envelopes in the 'Sent' or 'Delivered' states may be voided.")
	}

	now := f.nower.Now().UTC().Format("2006-01-02T15:04:05.0000000Z")
	envelope.Status = "voided"
	envelope.VoidedReason = reason
	envelope.VoidedDateTime = now
	envelope.StatusChangedDateTime = now
	f.envelopes[key(acct.AccountID, envelopeID)] = envelope

	return nil
}

func key(accountID string, envelopeID string) string {
	return accountID + "/" + envelopeID
}

func apiError(statusCode int, errorCode string, message string) *docusignclient.APIError {
	body, _ := json.Marshal(map[string]string{
		"errorCode": errorCode,
		"message":   message,
	})
	return &docusignclient.APIError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
		Body:       body,
	}
}
