package envelope

import (
	"encoding/base64"

	"github.com/MarcGrol/signbackend/lib/myerrors"
)

func validate(req EnvelopeRequest) error {
	if len(req.Documents) == 0 {
		return myerrors.NewInvalidInputErrorf("envelope has no documents")
	}

	signers, err := req.allSigners()
	if err != nil {
		return err
	}
	if len(signers) == 0 {
		return myerrors.NewInvalidInputErrorf("envelope has no signers")
	}

	for _, recipientID := range sortedKeys(signers) {
		signer := signers[recipientID]
		if signer.Name == "" || signer.Email == "" {
			return myerrors.NewInvalidInputErrorf("signer %s needs a name and an email", recipientID)
		}
	}

	viewerIDs := map[string]bool{}
	for _, viewer := range req.allViewers() {
		if viewer.ID == "" || viewer.Email == "" {
			return myerrors.NewInvalidInputErrorf("viewer '%s' needs an id and an email", viewer.ID)
		}
		if _, found := signers[viewer.ID]; found {
			return myerrors.NewInvalidInputErrorf("recipient id %s is used by both a signer and a viewer", viewer.ID)
		}
		if viewerIDs[viewer.ID] {
			return myerrors.NewInvalidInputErrorf("viewer id %s is used twice", viewer.ID)
		}
		viewerIDs[viewer.ID] = true
	}

	for _, documentID := range sortedKeys(req.Documents) {
		doc := req.Documents[documentID]
		if doc.URL == "" && doc.DocumentBase64 == "" {
			return myerrors.NewInvalidInputErrorf("document %s has neither url nor documentBase64", documentID)
		}
		if doc.DocumentBase64 != "" {
			_, err := base64.StdEncoding.DecodeString(doc.DocumentBase64)
			if err != nil {
				return myerrors.NewInvalidInputErrorf("document %s has invalid base64 content: %s", documentID, err)
			}
		}
		for _, placement := range doc.Tabs.Signatures {
			if len(placement.SignerIDs) == 0 {
				return myerrors.NewInvalidInputErrorf("signature on document %s has no signerIds", documentID)
			}
			for _, signerID := range placement.SignerIDs {
				if _, found := signers[signerID]; !found {
					return myerrors.NewInvalidInputErrorf("signature on document %s refers to unknown signer %s", documentID, signerID)
				}
			}
		}
	}

	return nil
}
