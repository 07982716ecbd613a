package envelope

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/signbackend/lib/myerrors"
	"github.com/MarcGrol/signbackend/services/docusign/docusignclient"
)

func TestBuildEnvelopeDefinition(t *testing.T) {
	t.Run("one document two signers, only first placed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		reader := NewMockDocumentReader(ctrl)
		reader.EXPECT().ReadDocument("contracts/nda.pdf").Return([]byte("%PDF-1.4"), nil)
		sut := envelopeBuilder{documentReader: reader, brandID: "brand-1"}

		// given
		req := parseRequest(t, `{
			"documents": {
				"1": {"url": "contracts/nda.pdf", "tabs": {"signatures": [{"signerIds": ["A"], "pageNumber": 1, "xPosition": "100", "yPosition": 200}]}}
			},
			"signers": {
				"A": {"name": "Alice", "email": "alice@example.com"},
				"B": {"name": "Bob", "email": "bob@example.com", "phone": "+31612345678"}
			}
		}`)

		// when
		def, err := sut.build(req)

		// then
		assert.NoError(t, err)
		assert.Equal(t, "[[Signer _UserName]] Please sign this!", def.EmailSubject)
		assert.Equal(t, "sent", def.Status)
		assert.Equal(t, "brand-1", def.BrandID)
		assert.Equal(t, []docusignclient.Document{
			{DocumentID: "1", Name: "nda", FileExtension: "pdf", DocumentBase64: "JVBERi0xLjQ="},
		}, def.Documents)

		assert.Len(t, def.Recipients.Signers, 2)
		alice := def.Recipients.Signers[0]
		assert.Equal(t, "A", alice.RecipientID)
		assert.Nil(t, alice.SMSAuthentication)
		assert.Equal(t, []docusignclient.SignHere{
			{DocumentID: "1", RecipientID: "A", PageNumber: "1", XPosition: "100", YPosition: "200"},
		}, alice.Tabs.SignHereTabs)

		bob := def.Recipients.Signers[1]
		assert.Equal(t, "B", bob.RecipientID)
		assert.Empty(t, bob.Tabs.SignHereTabs)
		assert.Equal(t, &docusignclient.RecipientSMSAuthentication{
			SenderProvidedNumbers: []string{"+31612345678"},
			RecipMayProvideNumber: "false",
		}, bob.SMSAuthentication)
		assert.Empty(t, def.Recipients.CarbonCopies)
	})

	t.Run("natural order with viewers in grouped shape", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		sut := envelopeBuilder{documentReader: NewMockDocumentReader(ctrl)}

		// given
		req := parseRequest(t, `{
			"documents": {
				"10": {"documentBase64": "JVBERg==", "name": "appendix", "fileExtension": ".docx",
					"tabs": {"signatures": [{"signerIds": ["1", "2"], "pageNumber": 3, "xPosition": 1, "yPosition": 2}]}},
				"2": {"documentBase64": "JVBERg==", "name": "contract",
					"tabs": {"signatures": [{"signerIds": ["2"], "pageNumber": 1, "xPosition": 5, "yPosition": 6}]}}
			},
			"recipients": {
				"signers": {
					"2": {"name": "Bob", "email": "bob@example.com"},
					"1": {"name": "Alice", "email": "alice@example.com"}
				},
				"viewers": [{"id": "3", "name": "Carol", "email": "carol@example.com"}]
			}
		}`)

		// when
		def, err := sut.build(req)

		// then
		assert.NoError(t, err)
		assert.Equal(t, "2", def.Documents[0].DocumentID)
		assert.Equal(t, "pdf", def.Documents[0].FileExtension)
		assert.Equal(t, "10", def.Documents[1].DocumentID)
		assert.Equal(t, "docx", def.Documents[1].FileExtension)

		assert.Equal(t, "1", def.Recipients.Signers[0].RecipientID)
		assert.Len(t, def.Recipients.Signers[0].Tabs.SignHereTabs, 1)
		assert.Equal(t, "2", def.Recipients.Signers[1].RecipientID)
		assert.Equal(t, []docusignclient.SignHere{
			{DocumentID: "2", RecipientID: "2", PageNumber: "1", XPosition: "5", YPosition: "6"},
			{DocumentID: "10", RecipientID: "2", PageNumber: "3", XPosition: "1", YPosition: "2"},
		}, def.Recipients.Signers[1].Tabs.SignHereTabs)

		assert.Equal(t, []docusignclient.CarbonCopy{
			{RecipientID: "3", Name: "Carol", Email: "carol@example.com"},
		}, def.Recipients.CarbonCopies)
	})

	t.Run("unreadable document", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		reader := NewMockDocumentReader(ctrl)
		reader.EXPECT().ReadDocument("missing.pdf").Return(nil, errors.New("file does not exist"))
		sut := envelopeBuilder{documentReader: reader}

		// when
		_, err := sut.build(parseRequest(t, `{
			"documents": {"1": {"url": "missing.pdf"}},
			"signers": {"1": {"name": "Alice", "email": "alice@example.com"}}
		}`))

		// then
		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, myerrors.GetHTTPStatus(err))
	})
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		request string
		errMsg  string
	}{
		{
			name:    "no documents",
			request: `{"signers": {"1": {"name": "Alice", "email": "alice@example.com"}}}`,
			errMsg:  "no documents",
		},
		{
			name:    "no signers",
			request: `{"documents": {"1": {"url": "a.pdf"}}}`,
			errMsg:  "no signers",
		},
		{
			name:    "signer without email",
			request: `{"documents": {"1": {"url": "a.pdf"}}, "signers": {"1": {"name": "Alice"}}}`,
			errMsg:  "signer 1 needs a name and an email",
		},
		{
			name:    "document without content",
			request: `{"documents": {"1": {"name": "a"}}, "signers": {"1": {"name": "Alice", "email": "a@example.com"}}}`,
			errMsg:  "document 1 has neither url nor documentBase64",
		},
		{
			name:    "invalid base64",
			request: `{"documents": {"1": {"documentBase64": "%%%"}}, "signers": {"1": {"name": "Alice", "email": "a@example.com"}}}`,
			errMsg:  "invalid base64",
		},
		{
			name: "unknown signer in placement",
			request: `{"documents": {"1": {"url": "a.pdf", "tabs": {"signatures": [{"signerIds": ["9"], "pageNumber": 1}]}}},
				"signers": {"1": {"name": "Alice", "email": "a@example.com"}}}`,
			errMsg: "unknown signer 9",
		},
		{
			name: "shared recipient id",
			request: `{"documents": {"1": {"url": "a.pdf"}}, "signers": {"1": {"name": "Alice", "email": "a@example.com"}},
				"viewers": [{"id": "1", "name": "Carol", "email": "c@example.com"}]}`,
			errMsg: "used by both a signer and a viewer",
		},
		{
			name: "viewer without email",
			request: `{"documents": {"1": {"url": "a.pdf"}}, "signers": {"1": {"name": "Alice", "email": "a@example.com"}},
				"viewers": [{"id": "2", "name": "Carol"}]}`,
			errMsg: "needs an id and an email",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validate(parseRequest(t, tc.request))
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tc.errMsg)
			assert.Equal(t, http.StatusBadRequest, myerrors.GetHTTPStatus(err))
		})
	}
}

func parseRequest(t *testing.T, body string) EnvelopeRequest {
	req := EnvelopeRequest{}
	err := json.Unmarshal([]byte(body), &req)
	assert.NoError(t, err)
	return req
}

func TestRequestShapes(t *testing.T) {
	t.Run("arrays with ids", func(t *testing.T) {
		req := parseRequest(t, `{
			"documents": [{"id": "7", "documentBase64": "JVBERg=="}, {"documentBase64": "JVBERg=="}],
			"signers": [{"id": "A", "name": "Alice", "email": "alice@example.com"}]
		}`)

		assert.Equal(t, []string{"2", "7"}, sortedKeys(req.Documents))
		signers, err := req.allSigners()
		assert.NoError(t, err)
		assert.Equal(t, "Alice", signers["A"].Name)
	})

	t.Run("positions start at one", func(t *testing.T) {
		req := parseRequest(t, `{
			"documents": [{"documentBase64": "JVBERg=="}, {"documentBase64": "JVBERg=="}],
			"signers": [{"name": "Alice", "email": "alice@example.com"}]
		}`)

		assert.Equal(t, []string{"1", "2"}, sortedKeys(req.Documents))
		assert.Equal(t, []string{"1"}, sortedKeys(req.Signers))
	})

	t.Run("duplicate ids in array", func(t *testing.T) {
		req := EnvelopeRequest{}
		err := json.Unmarshal([]byte(`{"signers": [{"id": "A"}, {"id": "A"}]}`), &req)
		assert.Error(t, err)
	})

	t.Run("duplicate ids in object", func(t *testing.T) {
		req := EnvelopeRequest{}
		err := json.Unmarshal([]byte(`{"documents": {"1": {"name": "first", "documentBase64": "JVBERg=="}, "1": {"name": "second", "documentBase64": "JVBERg=="}}}`), &req)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate id 1")
	})

	t.Run("object keeps every document", func(t *testing.T) {
		req := parseRequest(t, `{"documents": {"10": {"name": "ten"}, "2": {"name": "two"}}, "signers": null}`)

		assert.Equal(t, []string{"2", "10"}, sortedKeys(req.Documents))
		assert.Equal(t, "ten", req.Documents["10"].Name)
		assert.Nil(t, req.Signers)
	})

	t.Run("neither object nor array", func(t *testing.T) {
		req := EnvelopeRequest{}
		err := json.Unmarshal([]byte(`{"documents": "doc.pdf"}`), &req)
		assert.Error(t, err)
	})

	t.Run("same signer id flat and grouped", func(t *testing.T) {
		req := parseRequest(t, `{
			"documents": {"1": {"documentBase64": "JVBERg=="}},
			"signers": {"1": {"name": "Alice", "email": "alice@example.com"}},
			"recipients": {"signers": {"1": {"name": "Mallory", "email": "mallory@example.com"}}}
		}`)

		_, err := req.allSigners()
		assert.Error(t, err)

		err = validate(req)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "signer id 1 is used twice")
		assert.Equal(t, http.StatusBadRequest, myerrors.GetHTTPStatus(err))
	})

	t.Run("grouped and flat merged", func(t *testing.T) {
		req := parseRequest(t, `{
			"signers": {"1": {"name": "Alice", "email": "alice@example.com"}},
			"viewers": [{"id": "3", "email": "carol@example.com"}],
			"recipients": {"signers": {"2": {"name": "Bob", "email": "bob@example.com"}}, "viewers": [{"id": "4", "email": "dave@example.com"}]}
		}`)

		signers, err := req.allSigners()
		assert.NoError(t, err)
		assert.Equal(t, []string{"1", "2"}, sortedKeys(signers))
		assert.Equal(t, []string{"3", "4"}, viewerIDs(req.allViewers()))
	})
}
