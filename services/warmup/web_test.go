package warmup

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/signbackend/services/docusign/docusignauth"
)

func TestWarmup(t *testing.T) {
	t.Run("authenticated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		authenticator := docusignauth.NewMockAuthenticator(ctrl)
		router := mux.NewRouter()
		NewService(authenticator).RegisterEndpoints(context.TODO(), router)

		// given
		authenticator.EXPECT().Authenticate(gomock.Any()).Return(docusignauth.AccountContext{AccountID: "A1"}, nil)

		// when
		request, err := http.NewRequest(http.MethodGet, "/_ah/warmup", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, http.StatusOK, response.Code)
		assert.Contains(t, response.Body.String(), "A1")
	})

	t.Run("consent missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		authenticator := docusignauth.NewMockAuthenticator(ctrl)
		router := mux.NewRouter()
		NewService(authenticator).RegisterEndpoints(context.TODO(), router)

		// given
		authenticator.EXPECT().Authenticate(gomock.Any()).Return(docusignauth.AccountContext{}, &docusignauth.TokenExchangeError{
			StatusCode: http.StatusBadRequest,
			Body:       []byte(`{"error":"consent_required"}`),
			ErrorCode:  "consent_required",
		})

		// when
		request, err := http.NewRequest(http.MethodGet, "/_ah/warmup", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, http.StatusBadRequest, response.Code)
		assert.Equal(t, `{"error":"consent_required"}`, response.Body.String())
	})
}
