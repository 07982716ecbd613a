package contracttests

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MarcGrol/signbackend/lib/myhttpclient"
	"github.com/MarcGrol/signbackend/lib/mytime"
	"github.com/MarcGrol/signbackend/lib/myuuid"
	"github.com/MarcGrol/signbackend/services/docusign/docusignauth"
	"github.com/MarcGrol/signbackend/services/docusign/docusignclient"
)

func TestInMemoryEnvelopeAPI(t *testing.T) {
	EnvelopeAPIContract{
		api: func(t *testing.T) (docusignclient.EnvelopeAPI, string) {
			return NewFakeEnvelopeAPI(myuuid.RealUUIDer{}, mytime.RealNower{}), "https://demo.docusign.net/restapi"
		},
	}.Test(t)
}

func TestHTTPEnvelopeAPI(t *testing.T) {
	EnvelopeAPIContract{
		api: func(t *testing.T) (docusignclient.EnvelopeAPI, string) {
			ts := httptest.NewServer(NewFakeProviderHandler(NewFakeEnvelopeAPI(myuuid.RealUUIDer{}, mytime.RealNower{})))
			t.Cleanup(ts.Close)
			return docusignclient.NewClient(myhttpclient.New()), ts.URL + "/restapi"
		},
	}.Test(t)
}

type EnvelopeAPIContract struct {
	api func(t *testing.T) (docusignclient.EnvelopeAPI, string)
}

func (c EnvelopeAPIContract) Test(t *testing.T) {
	t.Run("can create, get and void an envelope", func(t *testing.T) {
		var (
			sut, basePath = c.api(t)
			ctx           = context.Background()
			acct          = account(basePath)
		)

		summary, err := sut.CreateEnvelope(ctx, acct, validDefinition("alice@example.com"))
		assert.NoError(t, err)
		assert.NotEmpty(t, summary.EnvelopeID)
		assert.Equal(t, "sent", summary.Status)

		envelope, err := sut.GetEnvelope(ctx, acct, summary.EnvelopeID, docusignclient.GetEnvelopeOptions{Include: "recipients"})
		assert.NoError(t, err)
		assert.Equal(t, "sent", envelope.Status)
		assert.Equal(t, "brand-1", envelope.BrandID)
		assert.Equal(t, "alice@example.com", envelope.Recipients.Signers[0].Email)
		assert.Len(t, envelope.Recipients.Signers[0].Tabs.SignHereTabs, 1)

		err = sut.VoidEnvelope(ctx, acct, summary.EnvelopeID, "wrong contract")
		assert.NoError(t, err)

		envelope, err = sut.GetEnvelope(ctx, acct, summary.EnvelopeID, docusignclient.GetEnvelopeOptions{})
		assert.NoError(t, err)
		assert.Equal(t, "voided", envelope.Status)
		assert.Equal(t, "wrong contract", envelope.VoidedReason)
		assert.Nil(t, envelope.Recipients)
	})

	t.Run("envelopes are scoped to their account", func(t *testing.T) {
		var (
			sut, basePath = c.api(t)
			ctx           = context.Background()
			acct          = account(basePath)
			other         = account(basePath)
		)
		other.AccountID = "A2"

		summary, err := sut.CreateEnvelope(ctx, acct, validDefinition("alice@example.com"))
		assert.NoError(t, err)

		_, err = sut.GetEnvelope(ctx, other, summary.EnvelopeID, docusignclient.GetEnvelopeOptions{})
		assertAPIError(t, err, http.StatusNotFound, "ENVELOPE_DOES_NOT_EXIST")
	})

	t.Run("can recognize when an envelope does not exist", func(t *testing.T) {
		var (
			sut, basePath = c.api(t)
			ctx           = context.Background()
			acct          = account(basePath)
		)

		_, err := sut.GetEnvelope(ctx, acct, "123", docusignclient.GetEnvelopeOptions{})
		assertAPIError(t, err, http.StatusNotFound, "ENVELOPE_DOES_NOT_EXIST")

		err = sut.VoidEnvelope(ctx, acct, "123", "gone")
		assertAPIError(t, err, http.StatusNotFound, "ENVELOPE_DOES_NOT_EXIST")
	})

	t.Run("a voided envelope cannot be voided again", func(t *testing.T) {
		var (
			sut, basePath = c.api(t)
			ctx           = context.Background()
			acct          = account(basePath)
		)

		summary, err := sut.CreateEnvelope(ctx, acct, validDefinition("alice@example.com"))
		assert.NoError(t, err)
		assert.NoError(t, sut.VoidEnvelope(ctx, acct, summary.EnvelopeID, "first"))

		err = sut.VoidEnvelope(ctx, acct, summary.EnvelopeID, "second")
		assertAPIError(t, err, http.StatusBadRequest, "ENVELOPE_CANNOT_VOID_INVALID_STATE")
	})

	t.Run("rejects an invalid email address", func(t *testing.T) {
		var (
			sut, basePath = c.api(t)
			ctx           = context.Background()
		)

		_, err := sut.CreateEnvelope(ctx, account(basePath), validDefinition("not-an-email"))
		assertAPIError(t, err, http.StatusBadRequest, "INVALID_EMAIL_ADDRESS_FOR_RECIPIENT")
	})

	t.Run("rejects an envelope without documents", func(t *testing.T) {
		var (
			sut, basePath = c.api(t)
			ctx           = context.Background()
		)

		def := validDefinition("alice@example.com")
		def.Documents = nil

		_, err := sut.CreateEnvelope(ctx, account(basePath), def)
		assertAPIError(t, err, http.StatusBadRequest, "ENVELOPE_IS_INCOMPLETE")
	})

	t.Run("refuses to work without a token", func(t *testing.T) {
		var (
			sut, basePath = c.api(t)
			ctx           = context.Background()
			acct          = account(basePath)
		)
		acct.Token = docusignauth.AccessToken{}

		_, err := sut.GetEnvelope(ctx, acct, "123", docusignclient.GetEnvelopeOptions{})
		assert.True(t, errors.Is(err, docusignauth.ErrNoToken))
	})
}

func assertAPIError(t *testing.T, err error, statusCode int, errorCode string) {
	t.Helper()
	apiErr := &docusignclient.APIError{}
	assert.True(t, errors.As(err, &apiErr))
	assert.Equal(t, statusCode, apiErr.StatusCode)
	assert.Equal(t, errorCode, apiErr.ErrorCode)
}

func account(basePath string) docusignauth.AccountContext {
	return docusignauth.AccountContext{
		AccountID: "A1",
		BasePath:  basePath,
		Token: docusignauth.AccessToken{
			AccessToken: "tok",
			TokenType:   "Bearer",
		},
	}
}

func validDefinition(email string) docusignclient.EnvelopeDefinition {
	return docusignclient.EnvelopeDefinition{
		EmailSubject: "[[Signer _UserName]] Please sign this!",
		Status:       "sent",
		BrandID:      "brand-1",
		Documents:    []docusignclient.Document{{DocumentID: "1", Name: "nda", FileExtension: "pdf", DocumentBase64: "JVBERg=="}},
		Recipients: &docusignclient.Recipients{
			Signers: []docusignclient.Signer{{
				RecipientID: "1",
				Name:        "Alice",
				Email:       email,
				Tabs: &docusignclient.Tabs{SignHereTabs: []docusignclient.SignHere{
					{DocumentID: "1", RecipientID: "1", PageNumber: "1", XPosition: "10", YPosition: "20"},
				}},
			}},
		},
	}
}
