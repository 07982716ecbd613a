package docusignclient

import (
	"context"

	"github.com/MarcGrol/signbackend/services/docusign/docusignauth"
)

//go:generate mockgen -source=api.go -package docusignclient -destination envelope_api_mock.go EnvelopeAPI
type EnvelopeAPI interface {
	CreateEnvelope(c context.Context, acct docusignauth.AccountContext, def EnvelopeDefinition) (EnvelopeSummary, error)
	GetEnvelope(c context.Context, acct docusignauth.AccountContext, envelopeID string, opts GetEnvelopeOptions) (Envelope, error)
	VoidEnvelope(c context.Context, acct docusignauth.AccountContext, envelopeID string, reason string) error
}
