package warmup

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/signbackend/lib/mycontext"
	"github.com/MarcGrol/signbackend/lib/myhttp"
	"github.com/MarcGrol/signbackend/lib/mylog"
	"github.com/MarcGrol/signbackend/services/docusign/docusignauth"
)

type webService struct {
	logger        mylog.Logger
	authenticator docusignauth.Authenticator
}

// NewService checks on warmup that the integration can still authenticate, so a missing
// consent or a rotated key shows up before the first envelope is sent.
func NewService(authenticator docusignauth.Authenticator) *webService {
	return &webService{
		logger:        mylog.New("warmup"),
		authenticator: authenticator,
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) {
	router.HandleFunc("/_ah/warmup", s.warmupPage()).Methods("GET")
}

func (s *webService) warmupPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		acct, err := s.authenticator.Authenticate(c)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, myhttp.SuccessResponse{
			Message: "Successfully authenticated for account " + acct.AccountID,
		})
	}
}
