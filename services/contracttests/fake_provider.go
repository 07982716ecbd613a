package contracttests

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/signbackend/services/docusign/docusignauth"
	"github.com/MarcGrol/signbackend/services/docusign/docusignclient"
)

// NewFakeProviderHandler serves a FakeEnvelopeAPI over the eSignature REST paths below /restapi.
func NewFakeProviderHandler(api *FakeEnvelopeAPI) http.Handler {
	router := mux.NewRouter()
	sub := router.PathPrefix("/restapi/v2.1/accounts/{accountId}/envelopes").Subrouter()

	sub.HandleFunc("", func(w http.ResponseWriter, r *http.Request) {
		def := docusignclient.EnvelopeDefinition{}
		err := json.NewDecoder(r.Body).Decode(&def)
		if err != nil {
			writeProviderError(w, apiError(http.StatusBadRequest, "INVALID_REQUEST_BODY", err.Error()))
			return
		}

		summary, err := api.CreateEnvelope(r.Context(), accountFromRequest(r), def)
		if err != nil {
			writeProviderError(w, err)
			return
		}
		writeProviderResponse(w, http.StatusCreated, summary)
	}).Methods(http.MethodPost)

	sub.HandleFunc("/{envelopeId}", func(w http.ResponseWriter, r *http.Request) {
		envelope, err := api.GetEnvelope(r.Context(), accountFromRequest(r), mux.Vars(r)["envelopeId"], docusignclient.GetEnvelopeOptions{
			Include:        r.URL.Query().Get("include"),
			AdvancedUpdate: r.URL.Query().Get("advanced_update"),
		})
		if err != nil {
			writeProviderError(w, err)
			return
		}
		writeProviderResponse(w, http.StatusOK, envelope)
	}).Methods(http.MethodGet)

	sub.HandleFunc("/{envelopeId}", func(w http.ResponseWriter, r *http.Request) {
		update := struct {
			Status       string `json:"status"`
			VoidedReason string `json:"voidedReason"`
		}{}
		err := json.NewDecoder(r.Body).Decode(&update)
		if err != nil || update.Status != "voided" {
			writeProviderError(w, apiError(http.StatusBadRequest, "INVALID_REQUEST_BODY", "only voiding is supported"))
			return
		}

		envelopeID := mux.Vars(r)["envelopeId"]
		err = api.VoidEnvelope(r.Context(), accountFromRequest(r), envelopeID, update.VoidedReason)
		if err != nil {
			writeProviderError(w, err)
			return
		}
		writeProviderResponse(w, http.StatusOK, map[string]string{"envelopeId": envelopeID})
	}).Methods(http.MethodPut)

	return router
}

func accountFromRequest(r *http.Request) docusignauth.AccountContext {
	return docusignauth.AccountContext{
		AccountID: mux.Vars(r)["accountId"],
		Token: docusignauth.AccessToken{
			AccessToken: strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer "),
		},
	}
}

func writeProviderError(w http.ResponseWriter, err error) {
	apiErr := &docusignclient.APIError{}
	if !errors.As(err, &apiErr) {
		apiErr = apiError(http.StatusUnauthorized, "USER_AUTHENTICATION_FAILED", err.Error())
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apiErr.StatusCode)
	_, _ = w.Write(apiErr.Body)
}

func writeProviderResponse(w http.ResponseWriter, status int, resp any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
