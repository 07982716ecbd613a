package envelope

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"strings"
)

// connectEvent is the JSON notification DocuSign Connect posts when an envelope changes.
type connectEvent struct {
	Event             string `json:"event"`
	APIVersion        string `json:"apiVersion"`
	URI               string `json:"uri"`
	GeneratedDateTime string `json:"generatedDateTime"`
	Data              struct {
		AccountID       string `json:"accountId"`
		UserID          string `json:"userId"`
		EnvelopeID      string `json:"envelopeId"`
		EnvelopeSummary *struct {
			Status string `json:"status"`
		} `json:"envelopeSummary,omitempty"`
	} `json:"data"`
}

// status prefers the summary, otherwise derives it from an event like "envelope-completed".
func (e connectEvent) status() string {
	if e.Data.EnvelopeSummary != nil && e.Data.EnvelopeSummary.Status != "" {
		return e.Data.EnvelopeSummary.Status
	}
	_, status, found := strings.Cut(e.Event, "-")
	if !found {
		return e.Event
	}
	return status
}

func computeHash(secret string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// validConnectSignature accepts any of the signature headers, Connect sends one per active key.
func validConnectSignature(secret string, payload []byte, headers http.Header) bool {
	expected := computeHash(secret, payload)
	for _, name := range []string{"X-DocuSign-Signature-1", "X-DocuSign-Signature-2"} {
		signature := headers.Get(name)
		if signature != "" && hmac.Equal([]byte(signature), []byte(expected)) {
			return true
		}
	}
	return false
}
