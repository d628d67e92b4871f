package client

import "context"

const (
	HeaderAuthorization = "Authorization"
	HeaderAuthToken     = "X-Auth-Token"
	HeaderRequestID     = "X-Request-ID"

	UserByUsernamePath = "/2/users/by/username/{username}"
	WhoAmIPath         = "/name"
	LoginPath          = "/login"

	PublicMetricsFields = "public_metrics"
)

// Auth is the pair of credentials attached to a metrics request. The
// static bearer token always goes into Authorization; UserCredential is
// added as X-Auth-Token only when non-empty. Neither is checked locally.
type Auth struct {
	BearerToken    string
	UserCredential string
}

type Client interface {
	Login(ctx context.Context, username, password string) (string, error)
	WhoAmI(ctx context.Context, credential string) (string, error)
	UserByUsername(ctx context.Context, username string, auth Auth) (*UserResponse, error)
}
