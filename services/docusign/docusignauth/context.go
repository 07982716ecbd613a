package docusignauth

import "context"

type ctxAccountContext struct{}

func WithAccountContext(c context.Context, acct AccountContext) context.Context {
	return context.WithValue(c, ctxAccountContext{}, acct)
}

func AccountContextFromContext(c context.Context) (AccountContext, bool) {
	acct, found := c.Value(ctxAccountContext{}).(AccountContext)
	return acct, found
}
