package envelope

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/MarcGrol/signbackend/lib/myerrors"
)

// EnvelopeRequest describes the documents to sign and who signs them. Documents and signers
// are keyed by the id that is used towards the provider.
type EnvelopeRequest struct {
	Documents  DocumentSet        `json:"documents"`
	Signers    SignerSet          `json:"signers"`
	Viewers    []ViewerRequest    `json:"viewers"`
	Recipients *RecipientsRequest `json:"recipients,omitempty"`
}

// RecipientsRequest is the alternative shape where signers and viewers are grouped.
type RecipientsRequest struct {
	Signers SignerSet       `json:"signers"`
	Viewers []ViewerRequest `json:"viewers"`
}

// DocumentSet is keyed by document id. On the wire it is either an object keyed by id or an
// array, in which case the id field or else the position is used.
type DocumentSet map[string]DocumentRequest

func (s *DocumentSet) UnmarshalJSON(data []byte) error {
	set, err := unmarshalKeyed(data, func(d DocumentRequest) string { return d.ID })
	if err != nil {
		return err
	}
	*s = set
	return nil
}

// SignerSet is keyed by recipient id, with the same wire forms as DocumentSet.
type SignerSet map[string]SignerRequest

func (s *SignerSet) UnmarshalJSON(data []byte) error {
	set, err := unmarshalKeyed(data, func(r SignerRequest) string { return r.ID })
	if err != nil {
		return err
	}
	*s = set
	return nil
}

func unmarshalKeyed[V any](data []byte, idOf func(V) string) (map[string]V, error) {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		return nil, nil
	case len(data) > 0 && data[0] == '{':
		return unmarshalObject[V](data)
	case len(data) > 0 && data[0] == '[':
		return unmarshalList(data, idOf)
	default:
		return nil, fmt.Errorf("expected an object or an array, got %s", data)
	}
}

// unmarshalObject walks the object token by token, since decoding into a map silently keeps
// the last of two equal keys.
func unmarshalObject[V any](data []byte) (map[string]V, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	_, err := dec.Token()
	if err != nil {
		return nil, err
	}

	keyed := map[string]V{}
	for dec.More() {
		token, err := dec.Token()
		if err != nil {
			return nil, err
		}
		id := token.(string)
		if _, exists := keyed[id]; exists {
			return nil, fmt.Errorf("duplicate id %s", id)
		}

		var item V
		err = dec.Decode(&item)
		if err != nil {
			return nil, err
		}
		keyed[id] = item
	}

	_, err = dec.Token()
	if err != nil {
		return nil, err
	}
	return keyed, nil
}

// unmarshalList takes the id field of each item, else its 1-based position.
func unmarshalList[V any](data []byte, idOf func(V) string) (map[string]V, error) {
	list := []V{}
	err := json.Unmarshal(data, &list)
	if err != nil {
		return nil, err
	}

	keyed := map[string]V{}
	for idx, item := range list {
		id := idOf(item)
		if id == "" {
			id = strconv.Itoa(idx + 1)
		}
		if _, exists := keyed[id]; exists {
			return nil, fmt.Errorf("duplicate id %s", id)
		}
		keyed[id] = item
	}
	return keyed, nil
}

type DocumentRequest struct {
	ID             string      `json:"id,omitempty"`
	URL            string      `json:"url"`
	DocumentBase64 string      `json:"documentBase64"`
	Name           string      `json:"name"`
	FileExtension  string      `json:"fileExtension"`
	Tabs           TabsRequest `json:"tabs"`
}

type TabsRequest struct {
	Signatures []SignaturePlacement `json:"signatures"`
}

// SignaturePlacement positions a signature field; positions may be sent as numbers or strings.
type SignaturePlacement struct {
	SignerIDs  []string    `json:"signerIds"`
	PageNumber json.Number `json:"pageNumber"`
	XPosition  json.Number `json:"xPosition"`
	YPosition  json.Number `json:"yPosition"`
}

type SignerRequest struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type ViewerRequest struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type EnvelopeStatus struct {
	Status string `json:"status"`
}

type voidRequest struct {
	VoidedReason string `json:"voidedReason" form:"voidedReason"`
}

type getEnvelopeQuery struct {
	Include        string `form:"include"`
	AdvancedUpdate string `form:"advanced_update"`
}

// allSigners merges the flat and the grouped request shapes. An id may appear in only one of them.
func (r EnvelopeRequest) allSigners() (map[string]SignerRequest, error) {
	signers := map[string]SignerRequest{}
	maps.Copy(signers, r.Signers)
	if r.Recipients != nil {
		for _, recipientID := range sortedKeys(r.Recipients.Signers) {
			if _, exists := signers[recipientID]; exists {
				return nil, myerrors.NewInvalidInputErrorf("signer id %s is used twice", recipientID)
			}
			signers[recipientID] = r.Recipients.Signers[recipientID]
		}
	}
	return signers, nil
}

func (r EnvelopeRequest) allViewers() []ViewerRequest {
	viewers := slices.Clone(r.Viewers)
	if r.Recipients != nil {
		viewers = append(viewers, r.Recipients.Viewers...)
	}
	return viewers
}

func (p SignaturePlacement) isFor(signerID string) bool {
	return slices.Contains(p.SignerIDs, signerID)
}
