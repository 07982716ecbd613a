package envelope

import (
	"context"
	"fmt"

	"github.com/MarcGrol/signbackend/lib/mylog"
	"github.com/MarcGrol/signbackend/lib/mypubsub"
	"github.com/MarcGrol/signbackend/services/docusign/docusignauth"
	"github.com/MarcGrol/signbackend/services/docusign/docusignclient"
	"github.com/MarcGrol/signbackend/services/envelope/envelopeevents"
)

type service struct {
	logger      mylog.Logger
	envelopeAPI docusignclient.EnvelopeAPI
	builder     envelopeBuilder
	publisher   mypubsub.Publisher
}

func newService(logger mylog.Logger, envelopeAPI docusignclient.EnvelopeAPI, documentReader DocumentReader, brandID string, publisher mypubsub.Publisher) *service {
	return &service{
		logger:      logger,
		envelopeAPI: envelopeAPI,
		builder: envelopeBuilder{
			documentReader: documentReader,
			brandID:        brandID,
		},
		publisher: publisher,
	}
}

func (s *service) createTopic(c context.Context) error {
	err := s.publisher.CreateTopic(c, envelopeevents.TopicName)
	if err != nil {
		return fmt.Errorf("error creating topic %s: %s", envelopeevents.TopicName, err)
	}
	return nil
}

func (s *service) createEnvelope(c context.Context, acct docusignauth.AccountContext, req EnvelopeRequest) (docusignclient.EnvelopeSummary, error) {
	def, err := s.builder.build(req)
	if err != nil {
		return docusignclient.EnvelopeSummary{}, err
	}

	summary, err := s.envelopeAPI.CreateEnvelope(c, acct, def)
	if err != nil {
		return docusignclient.EnvelopeSummary{}, &EnvelopeCreationError{Cause: err}
	}

	s.publish(c, envelopeevents.EnvelopeSent{
		EnvelopeID:  summary.EnvelopeID,
		AccountID:   acct.AccountID,
		Status:      summary.Status,
		DocumentIDs: sortedKeys(req.Documents),
		SignerIDs:   signerIDs(def.Recipients.Signers),
		ViewerIDs:   viewerIDs(req.allViewers()),
	})

	return summary, nil
}

func (s *service) getEnvelope(c context.Context, acct docusignauth.AccountContext, envelopeID string, opts docusignclient.GetEnvelopeOptions) (docusignclient.Envelope, error) {
	envelope, err := s.envelopeAPI.GetEnvelope(c, acct, envelopeID, opts)
	if err != nil {
		return docusignclient.Envelope{}, &EnvelopeLookupError{EnvelopeID: envelopeID, Cause: err}
	}
	return envelope, nil
}

func (s *service) getStatus(c context.Context, acct docusignauth.AccountContext, envelopeID string) (EnvelopeStatus, error) {
	envelope, err := s.getEnvelope(c, acct, envelopeID, docusignclient.GetEnvelopeOptions{})
	if err != nil {
		return EnvelopeStatus{}, err
	}
	return EnvelopeStatus{Status: envelope.Status}, nil
}

func (s *service) voidEnvelope(c context.Context, acct docusignauth.AccountContext, envelopeID string, reason string) error {
	err := s.envelopeAPI.VoidEnvelope(c, acct, envelopeID, reason)
	if err != nil {
		return &EnvelopeVoidError{EnvelopeID: envelopeID, Cause: err}
	}

	s.publish(c, envelopeevents.EnvelopeVoided{
		EnvelopeID:   envelopeID,
		AccountID:    acct.AccountID,
		VoidedReason: reason,
	})

	return nil
}

func (s *service) onConnectEvent(c context.Context, event connectEvent) error {
	s.logger.Log(c, event.Data.EnvelopeID, mylog.SeverityInfo, "Envelope %s: %s (%s)", event.Data.EnvelopeID, event.Event, event.status())

	err := s.publisher.Publish(c, envelopeevents.TopicName, envelopeevents.EnvelopeStatusChanged{
		EnvelopeID:        event.Data.EnvelopeID,
		AccountID:         event.Data.AccountID,
		ProviderEvent:     event.Event,
		Status:            event.status(),
		GeneratedDateTime: event.GeneratedDateTime,
	})
	if err != nil {
		return fmt.Errorf("error publishing status change of envelope %s: %s", event.Data.EnvelopeID, err)
	}
	return nil
}

// publish does not fail the request: the envelope already exists at the provider.
func (s *service) publish(c context.Context, event mypubsub.Event) {
	err := s.publisher.Publish(c, envelopeevents.TopicName, event)
	if err != nil {
		s.logger.Log(c, event.GetAggregateName(), mylog.SeverityError, "Error publishing %s: %s", event.GetEventTypeName(), err)
	}
}

func signerIDs(signers []docusignclient.Signer) []string {
	ids := []string{}
	for _, signer := range signers {
		ids = append(ids, signer.RecipientID)
	}
	return ids
}

func viewerIDs(viewers []ViewerRequest) []string {
	ids := []string{}
	for _, v := range viewers {
		ids = append(ids, v.ID)
	}
	return ids
}
