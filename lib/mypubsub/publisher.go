package mypubsub

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MarcGrol/signbackend/lib/mytime"
	"github.com/MarcGrol/signbackend/lib/myuuid"
)

type enveloper struct {
	nower  mytime.Nower
	uuider myuuid.UUIDer
}

func (e enveloper) do(topic string, event Event) (EventEnvelope, error) {
	jsonPayload, err := json.Marshal(event)
	if err != nil {
		return EventEnvelope{}, fmt.Errorf("error marshalling event-payload: %s", err)
	}
	return EventEnvelope{
		UID:           e.uuider.Create(),
		CreatedAt:     e.nower.Now(),
		Topic:         topic,
		AggregateUID:  event.GetAggregateName(),
		EventTypeName: event.GetEventTypeName(),
		EventPayload:  string(jsonPayload),
	}, nil
}

type publisher struct {
	pubsub    PubSub
	enveloper enveloper
}

// NewPublisher wraps every event in an EventEnvelope before it is handed to the pubsub transport.
func NewPublisher(pubsub PubSub, nower mytime.Nower, uuider myuuid.UUIDer) Publisher {
	return &publisher{
		pubsub: pubsub,
		enveloper: enveloper{
			nower:  nower,
			uuider: uuider,
		},
	}
}

func (p *publisher) CreateTopic(c context.Context, topic string) error {
	return p.pubsub.CreateTopic(c, topic)
}

func (p *publisher) Publish(c context.Context, topic string, event Event) error {
	envelope, err := p.enveloper.do(topic, event)
	if err != nil {
		return err
	}

	envelopeBytes, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("error marshalling envelope %s: %s", envelope, err)
	}

	err = p.pubsub.Publish(c, topic, string(envelopeBytes))
	if err != nil {
		return fmt.Errorf("error publishing %s: %s", envelope, err)
	}

	return nil
}
