package docusignauth

import "time"

type AccessToken struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int
	ExpiresAt   time.Time
}

func (t AccessToken) AuthorizationHeader() string {
	return "Bearer " + t.AccessToken
}

type UserInfo struct {
	Sub      string    `json:"sub"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Accounts []Account `json:"accounts"`
}

type Account struct {
	AccountID   string `json:"account_id"`
	AccountName string `json:"account_name"`
	IsDefault   bool   `json:"is_default"`
	BaseURI     string `json:"base_uri"`
}

// AccountContext is the outcome of one authentication handshake. It belongs to a single
// inbound request and is passed explicitly to every provider call made on its behalf.
type AccountContext struct {
	AccountID   string
	AccountName string
	BasePath    string
	Token       AccessToken
	UserInfo    UserInfo
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type oauthErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}
