package envelope

import (
	"fmt"

	"github.com/Netflix/go-env"
)

type Config struct {
	DocumentDir    string `env:"DOCUMENT_DIR,default=."`
	BrandID        string `env:"DOCUSIGN_BRAND_ID"`
	ConnectHMACKey string `env:"DOCUSIGN_CONNECT_HMAC_KEY"`
}

func NewConfigFromEnvironment() (Config, error) {
	cfg := Config{}
	_, err := env.UnmarshalFromEnviron(&cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal environment variables: %w", err)
	}
	return cfg, nil
}
