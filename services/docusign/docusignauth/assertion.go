package docusignauth

import (
	"crypto/rsa"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
)

const impersonationScope = "signature impersonation"

type assertionSigner struct {
	integratorKey    string
	impersonatedUser string
	audience         string
	lifetime         time.Duration
	privateKey       *rsa.PrivateKey
}

func newAssertionSigner(cfg Config) (*assertionSigner, error) {
	keyData, err := cfg.privateKey()
	if err != nil {
		return nil, err
	}

	privateKey, err := jwt.ParseRSAPrivateKeyFromPEM(keyData)
	if err != nil {
		return nil, fmt.Errorf("error parsing private key: %w", err)
	}

	return &assertionSigner{
		integratorKey:    cfg.IntegratorKey,
		impersonatedUser: cfg.ImpersonatedUser,
		audience:         cfg.OAuthHost(),
		lifetime:         time.Duration(cfg.TokenLifetime) * time.Second,
		privateKey:       privateKey,
	}, nil
}

func (s assertionSigner) sign(now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"iss":   s.integratorKey,
		"sub":   s.impersonatedUser,
		"aud":   s.audience,
		"iat":   now.Unix(),
		"exp":   now.Add(s.lifetime).Unix(),
		"scope": impersonationScope,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(s.privateKey)
	if err != nil {
		return "", &AssertionError{Err: err}
	}
	return signed, nil
}
