package envelope

import (
	"encoding/base64"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MarcGrol/signbackend/lib/myerrors"
	"github.com/MarcGrol/signbackend/services/docusign/docusignclient"
)

const (
	emailSubject   = "[[Signer _UserName]] Please sign this!"
	statusSent     = "sent"
	defaultDocName = "Document"
	defaultDocExt  = "pdf"
)

type envelopeBuilder struct {
	documentReader DocumentReader
	brandID        string
}

func (b envelopeBuilder) build(req EnvelopeRequest) (docusignclient.EnvelopeDefinition, error) {
	err := validate(req)
	if err != nil {
		return docusignclient.EnvelopeDefinition{}, err
	}

	signers, err := req.allSigners()
	if err != nil {
		return docusignclient.EnvelopeDefinition{}, err
	}

	documents, err := b.buildDocuments(req.Documents)
	if err != nil {
		return docusignclient.EnvelopeDefinition{}, err
	}

	return docusignclient.EnvelopeDefinition{
		EmailSubject: emailSubject,
		Status:       statusSent,
		BrandID:      b.brandID,
		Documents:    documents,
		Recipients: &docusignclient.Recipients{
			Signers:      buildSigners(req.Documents, signers),
			CarbonCopies: buildCarbonCopies(req.allViewers()),
		},
	}, nil
}

func (b envelopeBuilder) buildDocuments(documentData map[string]DocumentRequest) ([]docusignclient.Document, error) {
	documents := []docusignclient.Document{}
	for _, documentID := range sortedKeys(documentData) {
		doc := documentData[documentID]

		content := doc.DocumentBase64
		if content == "" {
			data, err := b.documentReader.ReadDocument(doc.URL)
			if err != nil {
				return nil, myerrors.NewInvalidInputError(fmt.Errorf("document %s: %w", documentID, err))
			}
			content = base64.StdEncoding.EncodeToString(data)
		}

		documents = append(documents, docusignclient.Document{
			DocumentID:     documentID,
			Name:           documentName(documentID, doc),
			FileExtension:  fileExtension(doc),
			DocumentBase64: content,
		})
	}
	return documents, nil
}

func buildSigners(documentData map[string]DocumentRequest, signerData map[string]SignerRequest) []docusignclient.Signer {
	signers := []docusignclient.Signer{}
	for _, recipientID := range sortedKeys(signerData) {
		signer := signerData[recipientID]
		signers = append(signers, docusignclient.Signer{
			RecipientID:       recipientID,
			Name:              signer.Name,
			Email:             signer.Email,
			SMSAuthentication: smsAuthentication(signer.Phone),
			Tabs: &docusignclient.Tabs{
				SignHereTabs: buildSignHereTabs(recipientID, documentData),
			},
		})
	}
	return signers
}

// buildSignHereTabs emits one tab per placement on any document that lists the signer.
func buildSignHereTabs(recipientID string, documentData map[string]DocumentRequest) []docusignclient.SignHere {
	tabs := []docusignclient.SignHere{}
	for _, documentID := range sortedKeys(documentData) {
		for _, placement := range documentData[documentID].Tabs.Signatures {
			if !placement.isFor(recipientID) {
				continue
			}
			tabs = append(tabs, docusignclient.SignHere{
				DocumentID:  documentID,
				RecipientID: recipientID,
				PageNumber:  placement.PageNumber.String(),
				XPosition:   placement.XPosition.String(),
				YPosition:   placement.YPosition.String(),
			})
		}
	}
	return tabs
}

func smsAuthentication(phone string) *docusignclient.RecipientSMSAuthentication {
	if phone == "" {
		return nil
	}
	return &docusignclient.RecipientSMSAuthentication{
		SenderProvidedNumbers: []string{phone},
		RecipMayProvideNumber: "false",
	}
}

func buildCarbonCopies(viewers []ViewerRequest) []docusignclient.CarbonCopy {
	carbonCopies := []docusignclient.CarbonCopy{}
	for _, viewer := range viewers {
		carbonCopies = append(carbonCopies, docusignclient.CarbonCopy{
			RecipientID: viewer.ID,
			Name:        viewer.Name,
			Email:       viewer.Email,
		})
	}
	return carbonCopies
}

func documentName(documentID string, doc DocumentRequest) string {
	if doc.Name != "" {
		return doc.Name
	}
	if doc.URL != "" {
		return strings.TrimSuffix(filepath.Base(doc.URL), filepath.Ext(doc.URL))
	}
	return defaultDocName + " " + documentID
}

func fileExtension(doc DocumentRequest) string {
	if doc.FileExtension != "" {
		return strings.TrimPrefix(doc.FileExtension, ".")
	}
	if ext := filepath.Ext(doc.URL); ext != "" {
		return strings.TrimPrefix(ext, ".")
	}
	return defaultDocExt
}
