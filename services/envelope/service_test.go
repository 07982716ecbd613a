package envelope

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/signbackend/lib/myerrors"
	"github.com/MarcGrol/signbackend/lib/mylog"
	"github.com/MarcGrol/signbackend/lib/mypubsub"
	"github.com/MarcGrol/signbackend/services/docusign/docusignclient"
)

func TestServiceErrors(t *testing.T) {
	t.Run("void rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		envelopeAPI := docusignclient.NewMockEnvelopeAPI(ctrl)
		sut := newService(mylog.New("test"), envelopeAPI, nil, "", mypubsub.NewMockPublisher(ctrl))

		// given
		envelopeAPI.EXPECT().VoidEnvelope(gomock.Any(), testAccount, "e1", "duplicate").
			Return(&docusignclient.APIError{StatusCode: http.StatusBadRequest, ErrorCode: "ENVELOPE_CANNOT_VOID_INVALID_STATE", Body: []byte(`{"errorCode":"ENVELOPE_CANNOT_VOID_INVALID_STATE"}`)})

		// when
		err := sut.voidEnvelope(context.TODO(), testAccount, "e1", "duplicate")

		// then
		voidErr := &EnvelopeVoidError{}
		assert.True(t, errors.As(err, &voidErr))
		assert.Equal(t, "e1", voidErr.EnvelopeID)
		assert.Contains(t, err.Error(), "error voiding envelope e1")
		assert.Equal(t, http.StatusBadRequest, myerrors.GetHTTPStatus(err))
		body, found := myerrors.GetRawResponse(err)
		assert.True(t, found)
		assert.Equal(t, `{"errorCode":"ENVELOPE_CANNOT_VOID_INVALID_STATE"}`, string(body))
	})

	t.Run("lookup rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		envelopeAPI := docusignclient.NewMockEnvelopeAPI(ctrl)
		sut := newService(mylog.New("test"), envelopeAPI, nil, "", mypubsub.NewMockPublisher(ctrl))

		// given
		envelopeAPI.EXPECT().GetEnvelope(gomock.Any(), testAccount, "e1", docusignclient.GetEnvelopeOptions{}).
			Return(docusignclient.Envelope{}, &docusignclient.APIError{StatusCode: http.StatusNotFound})

		// when
		_, err := sut.getStatus(context.TODO(), testAccount, "e1")

		// then
		lookupErr := &EnvelopeLookupError{}
		assert.True(t, errors.As(err, &lookupErr))
		assert.Contains(t, err.Error(), "error fetching envelope e1")
		assert.Equal(t, http.StatusNotFound, myerrors.GetHTTPStatus(err))
	})
}
