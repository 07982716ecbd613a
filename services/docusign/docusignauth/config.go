package docusignauth

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/Netflix/go-env"
)

const (
	demoOAuthHost       = "account-d.docusign.com"
	productionOAuthHost = "account.docusign.com"
	demoRestBaseURL     = "https://demo.docusign.net/restapi"
	productionRestURL   = "https://www.docusign.net/restapi"
)

// Config is loaded once at startup and never modified afterwards.
type Config struct {
	IntegratorKey    string `env:"DOCUSIGN_CLIENT_ID"`
	ImpersonatedUser string `env:"DOCUSIGN_IMPERSONATED_USER_ID"`
	PrivateKeyPath   string `env:"DOCUSIGN_PRIVATE_KEY_PATH,default=config/integratorRSAKey.key"`
	PrivateKeyPEM    string `env:"DOCUSIGN_PRIVATE_KEY"`
	Production       bool   `env:"DOCUSIGN_PRODUCTION,default=false"`
	OAuthBaseURL     string `env:"DOCUSIGN_OAUTH_BASE_URL"`
	OAuthTokenPath   string `env:"DOCUSIGN_OAUTH_TOKEN_PATH,default=/oauth/token"`
	UserInfoPath     string `env:"DOCUSIGN_USERINFO_PATH,default=/oauth/userinfo"`
	RestBaseURL      string `env:"DOCUSIGN_REST_BASE_URL"`
	RedirectURI      string `env:"DOCUSIGN_REDIRECT_URI,default=https://www.docusign.com"`
	TokenLifetime    int    `env:"DOCUSIGN_TOKEN_LIFETIME,default=3600"`
}

func NewConfigFromEnvironment() (Config, error) {
	cfg := Config{}
	_, err := env.UnmarshalFromEnviron(&cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal environment variables: %w", err)
	}

	cfg = cfg.WithDefaults()

	err = cfg.Validate()
	if err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// WithDefaults fills in the hosts that belong to the demo or the production environment.
func (c Config) WithDefaults() Config {
	if c.OAuthBaseURL == "" {
		c.OAuthBaseURL = demoOAuthHost
		if c.Production {
			c.OAuthBaseURL = productionOAuthHost
		}
	}
	if c.RestBaseURL == "" {
		c.RestBaseURL = demoRestBaseURL
		if c.Production {
			c.RestBaseURL = productionRestURL
		}
	}
	if c.OAuthTokenPath == "" {
		c.OAuthTokenPath = "/oauth/token"
	}
	if c.UserInfoPath == "" {
		c.UserInfoPath = "/oauth/userinfo"
	}
	if c.TokenLifetime == 0 {
		c.TokenLifetime = 3600
	}
	return c
}

func (c Config) Validate() error {
	if c.IntegratorKey == "" {
		return fmt.Errorf("DOCUSIGN_CLIENT_ID not set")
	}
	if c.ImpersonatedUser == "" {
		return fmt.Errorf("DOCUSIGN_IMPERSONATED_USER_ID not set")
	}
	if c.PrivateKeyPEM == "" && c.PrivateKeyPath == "" {
		return fmt.Errorf("DOCUSIGN_PRIVATE_KEY_PATH not set")
	}
	if c.TokenLifetime < 1 || c.TokenLifetime > 3600 {
		return fmt.Errorf("DOCUSIGN_TOKEN_LIFETIME must be between 1 and 3600 seconds, got %d", c.TokenLifetime)
	}
	return nil
}

func (c Config) privateKey() ([]byte, error) {
	if c.PrivateKeyPEM != "" {
		return []byte(c.PrivateKeyPEM), nil
	}

	keyData, err := os.ReadFile(c.PrivateKeyPath)
	if err != nil {
		return nil, fmt.Errorf("error reading private key %s: %w", c.PrivateKeyPath, err)
	}
	return keyData, nil
}

// OAuthHost is the bare hostname, as used for the audience of the assertion.
func (c Config) OAuthHost() string {
	_, host, found := strings.Cut(c.OAuthBaseURL, "://")
	if !found {
		host = c.OAuthBaseURL
	}
	return strings.TrimSuffix(host, "/")
}

func (c Config) oauthScheme() string {
	scheme, _, found := strings.Cut(c.OAuthBaseURL, "://")
	if !found {
		return "https"
	}
	return scheme
}

func (c Config) oauthURL(path string) string {
	return c.oauthScheme() + "://" + c.OAuthHost() + path
}

// AuthURI needs no key material so consent can be granted before the key is deployed.
func (c Config) AuthURI() string {
	u := url.URL{
		Scheme: c.oauthScheme(),
		Host:   c.OAuthHost(),
		Path:   "/oauth/auth",
	}
	u.RawQuery = url.Values{
		"response_type": {"code"},
		"scope":         {impersonationScope},
		"client_id":     {c.IntegratorKey},
		"redirect_uri":  {c.RedirectURI},
	}.Encode()

	return u.String()
}
