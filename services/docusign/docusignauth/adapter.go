package docusignauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	formcodec "github.com/go-playground/form/v4"

	"github.com/MarcGrol/signbackend/lib/myhttpclient"
	"github.com/MarcGrol/signbackend/lib/mylog"
	"github.com/MarcGrol/signbackend/lib/mytime"
)

const jwtBearerGrantType = "urn:ietf:params:oauth:grant-type:jwt-bearer"

type jwtBearerGrant struct {
	GrantType string `form:"grant_type"`
	Assertion string `form:"assertion"`
}

// Adapter performs the jwt-bearer handshake. It keeps no per-request state so a single
// instance serves concurrent requests.
type Adapter struct {
	cfg        Config
	signer     *assertionSigner
	httpSender myhttpclient.HTTPSender
	nower      mytime.Nower
	logger     mylog.Logger
}

func NewAdapter(cfg Config, httpSender myhttpclient.HTTPSender, nower mytime.Nower) (*Adapter, error) {
	cfg = cfg.WithDefaults()

	signer, err := newAssertionSigner(cfg)
	if err != nil {
		return nil, err
	}

	return &Adapter{
		cfg:        cfg,
		signer:     signer,
		httpSender: httpSender,
		nower:      nower,
		logger:     mylog.New("docusignauth"),
	}, nil
}

// AuthURI is the page where the impersonated user grants consent to the integration.
func (a *Adapter) AuthURI() string {
	return a.cfg.AuthURI()
}

func (a *Adapter) Authenticate(c context.Context) (AccountContext, error) {
	now := a.nower.Now()

	assertion, err := a.signer.sign(now)
	if err != nil {
		a.logger.Log(c, "", mylog.SeverityError, "Error signing assertion: %s", err)
		return AccountContext{}, err
	}

	token, err := a.requestAccessToken(c, assertion, now)
	if err != nil {
		a.logger.Log(c, "", mylog.SeverityError, "Error requesting access token: %s", err)
		return AccountContext{}, err
	}

	userInfo, err := a.getUserInfo(c, token)
	if err != nil {
		a.logger.Log(c, "", mylog.SeverityError, "Error fetching user-info: %s", err)
		return AccountContext{}, err
	}

	account := userInfo.Accounts[0]
	accountContext := AccountContext{
		AccountID:   account.AccountID,
		AccountName: account.AccountName,
		BasePath:    a.basePath(account.BaseURI),
		Token:       token,
		UserInfo:    userInfo,
	}

	a.logger.Log(c, accountContext.AccountID, mylog.SeverityInfo, "Authenticated as %s on %s", a.cfg.ImpersonatedUser, accountContext.BasePath)

	return accountContext, nil
}

func (a *Adapter) requestAccessToken(c context.Context, assertion string, now time.Time) (AccessToken, error) {
	values, err := formcodec.NewEncoder().Encode(jwtBearerGrant{
		GrantType: jwtBearerGrantType,
		Assertion: assertion,
	})
	if err != nil {
		return AccessToken{}, &TokenExchangeError{Err: fmt.Errorf("error encoding form: %w", err)}
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/x-www-form-urlencoded")

	httpRespCode, respBody, err := a.httpSender.Send(c, http.MethodPost, a.cfg.oauthURL(a.cfg.OAuthTokenPath), headers, []byte(values.Encode()))
	if err != nil {
		return AccessToken{}, &TokenExchangeError{Err: err}
	}

	if httpRespCode < 200 || httpRespCode > 299 {
		oauthErr := oauthErrorResponse{}
		_ = json.Unmarshal(respBody, &oauthErr)
		return AccessToken{}, &TokenExchangeError{
			StatusCode:  httpRespCode,
			Body:        respBody,
			ErrorCode:   oauthErr.Error,
			Description: oauthErr.ErrorDescription,
			Err:         fmt.Errorf("unexpected status %d", httpRespCode),
		}
	}

	resp := tokenResponse{}
	err = json.Unmarshal(respBody, &resp)
	if err != nil {
		return AccessToken{}, &TokenExchangeError{
			StatusCode: httpRespCode,
			Body:       respBody,
			Err:        fmt.Errorf("error parsing response: %w", err),
		}
	}

	expiresIn := resp.ExpiresIn
	if expiresIn == 0 {
		expiresIn = a.cfg.TokenLifetime
	}

	return AccessToken{
		AccessToken: resp.AccessToken,
		TokenType:   resp.TokenType,
		ExpiresIn:   expiresIn,
		ExpiresAt:   now.Add(time.Duration(expiresIn) * time.Second),
	}, nil
}

func (a *Adapter) getUserInfo(c context.Context, token AccessToken) (UserInfo, error) {
	if token.AccessToken == "" {
		return UserInfo{}, ErrNoToken
	}

	headers := http.Header{}
	headers.Set("Authorization", token.AuthorizationHeader())

	httpRespCode, respBody, err := a.httpSender.Send(c, http.MethodGet, a.cfg.oauthURL(a.cfg.UserInfoPath), headers, nil)
	if err != nil {
		return UserInfo{}, &UserInfoError{Err: err}
	}

	if httpRespCode < 200 || httpRespCode > 299 {
		return UserInfo{}, &UserInfoError{
			StatusCode: httpRespCode,
			Body:       respBody,
			Err:        fmt.Errorf("unexpected status %d", httpRespCode),
		}
	}

	userInfo := UserInfo{}
	err = json.Unmarshal(respBody, &userInfo)
	if err != nil {
		return UserInfo{}, &UserInfoError{
			StatusCode: httpRespCode,
			Body:       respBody,
			Err:        fmt.Errorf("error parsing response: %w", err),
		}
	}

	if len(userInfo.Accounts) == 0 {
		return UserInfo{}, &UserInfoError{
			StatusCode: httpRespCode,
			Body:       respBody,
			Err:        fmt.Errorf("user %s has no accounts", userInfo.Sub),
		}
	}

	return userInfo, nil
}

// basePath turns "https://demo.docusign.net/restapi/v2" into "https://demo.docusign.net/restapi".
func (a *Adapter) basePath(baseURI string) string {
	if baseURI == "" {
		return a.cfg.RestBaseURL
	}
	host, _, _ := strings.Cut(baseURI, "/v2")
	host = strings.TrimSuffix(host, "/restapi")
	return host + "/restapi"
}
