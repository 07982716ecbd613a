package docusignclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/MarcGrol/signbackend/lib/myhttpclient"
	"github.com/MarcGrol/signbackend/lib/mylog"
	"github.com/MarcGrol/signbackend/services/docusign/docusignauth"
)

type Client struct {
	httpSender myhttpclient.HTTPSender
	logger     mylog.Logger
}

func NewClient(httpSender myhttpclient.HTTPSender) *Client {
	return &Client{
		httpSender: httpSender,
		logger:     mylog.New("docusignclient"),
	}
}

func (cl *Client) CreateEnvelope(c context.Context, acct docusignauth.AccountContext, def EnvelopeDefinition) (EnvelopeSummary, error) {
	summary := EnvelopeSummary{}
	err := cl.call(c, acct, http.MethodPost, envelopesURL(acct), def, &summary)
	if err != nil {
		return EnvelopeSummary{}, err
	}

	cl.logger.Log(c, summary.EnvelopeID, mylog.SeverityInfo, "Created envelope %s with status %s", summary.EnvelopeID, summary.Status)

	return summary, nil
}

func (cl *Client) GetEnvelope(c context.Context, acct docusignauth.AccountContext, envelopeID string, opts GetEnvelopeOptions) (Envelope, error) {
	query := url.Values{}
	if opts.Include != "" {
		query.Set("include", opts.Include)
	}
	if opts.AdvancedUpdate != "" {
		query.Set("advanced_update", opts.AdvancedUpdate)
	}

	envelopeURL := envelopeURL(acct, envelopeID)
	if len(query) > 0 {
		envelopeURL += "?" + query.Encode()
	}

	envelope := Envelope{}
	err := cl.call(c, acct, http.MethodGet, envelopeURL, nil, &envelope)
	if err != nil {
		return Envelope{}, err
	}

	return envelope, nil
}

func (cl *Client) VoidEnvelope(c context.Context, acct docusignauth.AccountContext, envelopeID string, reason string) error {
	err := cl.call(c, acct, http.MethodPut, envelopeURL(acct, envelopeID), envelopeUpdate{
		Status:       "voided",
		VoidedReason: reason,
	}, nil)
	if err != nil {
		return err
	}

	cl.logger.Log(c, envelopeID, mylog.SeverityInfo, "Voided envelope %s: %s", envelopeID, reason)

	return nil
}

func (cl *Client) call(c context.Context, acct docusignauth.AccountContext, method string, url string, request any, response any) error {
	if acct.Token.AccessToken == "" {
		return docusignauth.ErrNoToken
	}

	headers := http.Header{}
	headers.Set("Authorization", acct.Token.AuthorizationHeader())

	var requestBody []byte
	if request != nil {
		var err error
		requestBody, err = json.Marshal(request)
		if err != nil {
			return fmt.Errorf("error marshalling request: %w", err)
		}
		headers.Set("Content-Type", "application/json")
	}

	httpRespCode, respBody, err := cl.httpSender.Send(c, method, url, headers, requestBody)
	if err != nil {
		return &APIError{Err: err}
	}

	if httpRespCode < 200 || httpRespCode > 299 {
		details := errorDetails{}
		_ = json.Unmarshal(respBody, &details)
		return &APIError{
			StatusCode: httpRespCode,
			ErrorCode:  details.ErrorCode,
			Message:    details.Message,
			Body:       respBody,
			Err:        fmt.Errorf("unexpected status %d", httpRespCode),
		}
	}

	if response == nil || len(respBody) == 0 {
		return nil
	}

	err = json.Unmarshal(respBody, response)
	if err != nil {
		return &APIError{
			StatusCode: httpRespCode,
			Body:       respBody,
			Err:        fmt.Errorf("error parsing response: %w", err),
		}
	}

	return nil
}

func envelopesURL(acct docusignauth.AccountContext) string {
	return fmt.Sprintf("%s/v2.1/accounts/%s/envelopes", acct.BasePath, url.PathEscape(acct.AccountID))
}

func envelopeURL(acct docusignauth.AccountContext, envelopeID string) string {
	return envelopesURL(acct) + "/" + url.PathEscape(envelopeID)
}
