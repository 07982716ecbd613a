package docusignclient

// Wire types of the eSignature REST v2.1 envelope resources. Numbers and flags are
// strings on the wire.

type EnvelopeDefinition struct {
	EmailSubject string      `json:"emailSubject,omitempty"`
	EmailBlurb   string      `json:"emailBlurb,omitempty"`
	Status       string      `json:"status,omitempty"`
	BrandID      string      `json:"brandId,omitempty"`
	Documents    []Document  `json:"documents,omitempty"`
	Recipients   *Recipients `json:"recipients,omitempty"`
}

type Document struct {
	DocumentID     string `json:"documentId"`
	Name           string `json:"name"`
	FileExtension  string `json:"fileExtension,omitempty"`
	DocumentBase64 string `json:"documentBase64,omitempty"`
}

type Recipients struct {
	Signers      []Signer     `json:"signers,omitempty"`
	CarbonCopies []CarbonCopy `json:"carbonCopies,omitempty"`
}

type Signer struct {
	RecipientID       string                      `json:"recipientId"`
	Name              string                      `json:"name"`
	Email             string                      `json:"email"`
	RoutingOrder      string                      `json:"routingOrder,omitempty"`
	Status            string                      `json:"status,omitempty"`
	SMSAuthentication *RecipientSMSAuthentication `json:"smsAuthentication,omitempty"`
	Tabs              *Tabs                       `json:"tabs,omitempty"`
}

type CarbonCopy struct {
	RecipientID  string `json:"recipientId"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	RoutingOrder string `json:"routingOrder,omitempty"`
	Status       string `json:"status,omitempty"`
}

type RecipientSMSAuthentication struct {
	SenderProvidedNumbers []string `json:"senderProvidedNumbers"`
	RecipMayProvideNumber string   `json:"recipMayProvideNumber"`
}

type Tabs struct {
	SignHereTabs []SignHere `json:"signHereTabs,omitempty"`
}

type SignHere struct {
	DocumentID  string `json:"documentId"`
	RecipientID string `json:"recipientId"`
	PageNumber  string `json:"pageNumber"`
	XPosition   string `json:"xPosition"`
	YPosition   string `json:"yPosition"`
}

type EnvelopeSummary struct {
	EnvelopeID     string `json:"envelopeId"`
	Status         string `json:"status"`
	StatusDateTime string `json:"statusDateTime,omitempty"`
	URI            string `json:"uri,omitempty"`
}

type Envelope struct {
	EnvelopeID            string      `json:"envelopeId"`
	Status                string      `json:"status"`
	EmailSubject          string      `json:"emailSubject,omitempty"`
	BrandID               string      `json:"brandId,omitempty"`
	CreatedDateTime       string      `json:"createdDateTime,omitempty"`
	SentDateTime          string      `json:"sentDateTime,omitempty"`
	DeliveredDateTime     string      `json:"deliveredDateTime,omitempty"`
	CompletedDateTime     string      `json:"completedDateTime,omitempty"`
	VoidedDateTime        string      `json:"voidedDateTime,omitempty"`
	VoidedReason          string      `json:"voidedReason,omitempty"`
	StatusChangedDateTime string      `json:"statusChangedDateTime,omitempty"`
	EnvelopeURI           string      `json:"envelopeUri,omitempty"`
	Recipients            *Recipients `json:"recipients,omitempty"`
}

type GetEnvelopeOptions struct {
	Include        string
	AdvancedUpdate string
}

type envelopeUpdate struct {
	Status       string `json:"status"`
	VoidedReason string `json:"voidedReason"`
}

type errorDetails struct {
	ErrorCode string `json:"errorCode"`
	Message   string `json:"message"`
}
