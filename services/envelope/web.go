package envelope

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"

	formcodec "github.com/go-playground/form/v4"
	"github.com/gorilla/mux"

	"github.com/MarcGrol/signbackend/lib/mycontext"
	"github.com/MarcGrol/signbackend/lib/myerrors"
	"github.com/MarcGrol/signbackend/lib/myhttp"
	"github.com/MarcGrol/signbackend/lib/mylog"
	"github.com/MarcGrol/signbackend/lib/mypubsub"
	"github.com/MarcGrol/signbackend/services/docusign/docusignauth"
	"github.com/MarcGrol/signbackend/services/docusign/docusignclient"
)

type webService struct {
	logger         mylog.Logger
	authenticator  docusignauth.Authenticator
	connectHMACKey string
	service        *service
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewWebService(cfg Config, authenticator docusignauth.Authenticator, envelopeAPI docusignclient.EnvelopeAPI, documentReader DocumentReader, publisher mypubsub.Publisher) *webService {
	logger := mylog.New("envelope")
	return &webService{
		logger:         logger,
		authenticator:  authenticator,
		connectHMACKey: cfg.ConnectHMACKey,
		service:        newService(logger, envelopeAPI, documentReader, cfg.BrandID, publisher),
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	err := s.service.createTopic(c)
	if err != nil {
		return err
	}

	router.HandleFunc("/consent", s.consentPage()).Methods("GET")
	router.HandleFunc("/envelopes/connect", s.connectNotification()).Methods("POST")

	subRouter := router.PathPrefix("/envelopes").Subrouter()
	subRouter.Use(s.withAccount)
	subRouter.HandleFunc("", s.createEnvelope()).Methods("POST")
	subRouter.HandleFunc("/{envelopeId}", s.getEnvelope()).Methods("GET")
	subRouter.HandleFunc("/{envelopeId}/status", s.getStatus()).Methods("GET")
	subRouter.HandleFunc("/{envelopeId}/void", s.voidEnvelope()).Methods("PUT")

	if s.connectHMACKey == "" {
		s.logger.Log(c, "", mylog.SeverityWarn, "Connect notifications are accepted without signature verification")
	}

	return nil
}

// withAccount runs the provider handshake for every request and hands the outcome to the handler.
func (s *webService) withAccount(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		acct, err := s.authenticator.Authenticate(c)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(docusignauth.WithAccountContext(r.Context(), acct)))
	})
}

func (s *webService) consentPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, s.authenticator.AuthURI(), http.StatusSeeOther)
	}
}

func (s *webService) createEnvelope() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		acct, err := accountFromRequest(r)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		req := EnvelopeRequest{}
		err = decodeJSON(r, &req)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		summary, err := s.service.createEnvelope(c, acct, req)
		if err != nil {
			errorWriter.WriteError(c, w, 3, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, summary)
	}
}

func (s *webService) getEnvelope() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		acct, err := accountFromRequest(r)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		query := getEnvelopeQuery{}
		err = formcodec.NewDecoder().Decode(&query, r.URL.Query())
		if err != nil {
			errorWriter.WriteError(c, w, 2, myerrors.NewInvalidInputError(fmt.Errorf("error parsing query: %s", err)))
			return
		}

		envelope, err := s.service.getEnvelope(c, acct, mux.Vars(r)["envelopeId"], docusignclient.GetEnvelopeOptions{
			Include:        query.Include,
			AdvancedUpdate: query.AdvancedUpdate,
		})
		if err != nil {
			errorWriter.WriteError(c, w, 3, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, envelope)
	}
}

func (s *webService) getStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		acct, err := accountFromRequest(r)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		status, err := s.service.getStatus(c, acct, mux.Vars(r)["envelopeId"])
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, status)
	}
}

func (s *webService) voidEnvelope() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		acct, err := accountFromRequest(r)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		req, err := parseVoidRequest(r)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		envelopeID := mux.Vars(r)["envelopeId"]
		err = s.service.voidEnvelope(c, acct, envelopeID, req.VoidedReason)
		if err != nil {
			errorWriter.WriteError(c, w, 3, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, myhttp.SuccessResponse{
			Message: fmt.Sprintf("envelope %s voided", envelopeID),
		})
	}
}

func (s *webService) connectNotification() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		payload, err := io.ReadAll(r.Body)
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(fmt.Errorf("error reading notification: %s", err)))
			return
		}

		if s.connectHMACKey != "" && !validConnectSignature(s.connectHMACKey, payload, r.Header) {
			errorWriter.WriteError(c, w, 2, myerrors.NewAuthenticationError(fmt.Errorf("invalid connect signature")))
			return
		}

		event := connectEvent{}
		err = json.Unmarshal(payload, &event)
		if err != nil {
			errorWriter.WriteError(c, w, 3, myerrors.NewInvalidInputError(fmt.Errorf("error parsing notification: %s", err)))
			return
		}

		if event.Data.EnvelopeID == "" {
			errorWriter.WriteError(c, w, 4, myerrors.NewInvalidInputError(fmt.Errorf("notification without envelopeId")))
			return
		}

		err = s.service.onConnectEvent(c, event)
		if err != nil {
			errorWriter.WriteError(c, w, 5, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, myhttp.SuccessResponse{})
	}
}

func accountFromRequest(r *http.Request) (docusignauth.AccountContext, error) {
	acct, found := docusignauth.AccountContextFromContext(r.Context())
	if !found {
		return docusignauth.AccountContext{}, myerrors.NewInternalError(fmt.Errorf("request was not authenticated"))
	}
	return acct, nil
}

func decodeJSON(r *http.Request, dest any) error {
	contentType := r.Header.Get("Content-Type")
	if contentType != "" {
		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil || mediaType != "application/json" {
			return myerrors.NewUnsupportedMediaTypeError(fmt.Errorf("expected application/json, got '%s'", contentType))
		}
	}

	err := json.NewDecoder(r.Body).Decode(dest)
	if err != nil {
		return myerrors.NewInvalidInputError(fmt.Errorf("error parsing request body: %s", err))
	}
	return nil
}

// parseVoidRequest accepts both a json body and form values.
func parseVoidRequest(r *http.Request) (voidRequest, error) {
	req := voidRequest{}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		err := decodeJSON(r, &req)
		if err != nil {
			return voidRequest{}, err
		}
	} else {
		err := r.ParseForm()
		if err != nil {
			return voidRequest{}, myerrors.NewInvalidInputError(err)
		}
		err = formcodec.NewDecoder().Decode(&req, r.Form)
		if err != nil {
			return voidRequest{}, myerrors.NewInvalidInputError(fmt.Errorf("error decoding form: %s", err))
		}
	}

	if req.VoidedReason == "" {
		return voidRequest{}, myerrors.NewInvalidInputError(fmt.Errorf("missing voidedReason"))
	}
	return req, nil
}
