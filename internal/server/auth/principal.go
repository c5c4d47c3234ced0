package auth

import "context"

// Principal is the verified identity attached to a request after the token
// gate has run. Family membership is deliberately absent: group scope is
// fetched fresh from the credential store by the operations that need it,
// never read back from the token.
type Principal struct {
	UserID string
}

type ctxKey int

const principalKey ctxKey = 1

// WithPrincipal returns a context carrying p.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// PrincipalFromContext extracts the Principal stored by the request gate.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	v := ctx.Value(principalKey)
	if v == nil {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}
