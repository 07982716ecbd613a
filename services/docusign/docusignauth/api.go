package docusignauth

import "context"

//go:generate mockgen -source=api.go -package docusignauth -destination authenticator_mock.go Authenticator
type Authenticator interface {
	AuthURI() string
	Authenticate(c context.Context) (AccountContext, error)
}
