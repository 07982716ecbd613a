package envelopeevents

const (
	TopicName                = "envelope"
	envelopeSentName         = TopicName + ".sent"
	envelopeVoidedName       = TopicName + ".voided"
	envelopeStatusChangeName = TopicName + ".statusChanged"
)

type EnvelopeSent struct {
	EnvelopeID  string
	AccountID   string
	Status      string
	DocumentIDs []string
	SignerIDs   []string
	ViewerIDs   []string
}

func (e EnvelopeSent) GetEventTypeName() string {
	return envelopeSentName
}

func (e EnvelopeSent) GetAggregateName() string {
	return e.EnvelopeID
}

type EnvelopeVoided struct {
	EnvelopeID   string
	AccountID    string
	VoidedReason string
}

func (e EnvelopeVoided) GetEventTypeName() string {
	return envelopeVoidedName
}

func (e EnvelopeVoided) GetAggregateName() string {
	return e.EnvelopeID
}

// EnvelopeStatusChanged is emitted for every status update the provider pushes to us.
type EnvelopeStatusChanged struct {
	EnvelopeID        string
	AccountID         string
	ProviderEvent     string
	Status            string
	GeneratedDateTime string
}

func (e EnvelopeStatusChanged) GetEventTypeName() string {
	return envelopeStatusChangeName
}

func (e EnvelopeStatusChanged) GetAggregateName() string {
	return e.EnvelopeID
}
