package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrijs2005/tweetstats/internal/logging"
	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

type HTTPClient struct {
	metrics *resty.Client
	auth    *resty.Client
	logger  logging.Logger
}

// NewHTTPClient builds a client for the metrics API at metricsBaseURL and
// the auth service at authBaseURL. timeout bounds every single request.
func NewHTTPClient(metricsBaseURL, authBaseURL string, timeout time.Duration, l logging.Logger) *HTTPClient {
	c := &HTTPClient{logger: l.With("module", "http_client")}
	c.metrics = c.newResty(metricsBaseURL, timeout).
		SetRedirectPolicy(resty.RedirectPolicyFunc(keepRedirect))
	c.auth = c.newResty(authBaseURL, timeout)
	return c
}

func (c *HTTPClient) newResty(baseURL string, timeout time.Duration) *resty.Client {
	r := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal).
		SetHeader("Accept", "application/json")

	r.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if req.Header.Get(HeaderRequestID) == "" {
			req.SetHeader(HeaderRequestID, uuid.NewString())
		}
		return nil
	})

	r.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		c.logger.Debug(resp.Request.Context(), "response",
			"method", resp.Request.Method,
			"url", resp.Request.URL,
			"status", resp.StatusCode(),
			"request_id", resp.Request.Header.Get(HeaderRequestID),
			"elapsed", resp.Time())
		return nil
	})

	return r
}

// keepRedirect hands a 3xx back as the response so a fetch never sends a
// second request.
func keepRedirect(*http.Request, []*http.Request) error {
	return http.ErrUseLastResponse
}

// UserByUsername fetches the public metrics of username. Any non-2xx status
// yields ErrFetchFailed.
func (c *HTTPClient) UserByUsername(ctx context.Context, username string, auth Auth) (*UserResponse, error) {
	req := c.metrics.R().
		SetContext(ctx).
		SetHeader(HeaderAuthorization, "Bearer "+auth.BearerToken).
		SetPathParam("username", username).
		SetQueryParam("user.fields", PublicMetricsFields)

	if auth.UserCredential != "" {
		req.SetHeader(HeaderAuthToken, auth.UserCredential)
	}

	resp, err := req.Get(UserByUsernamePath)
	if err != nil {
		return nil, c.transportError(ctx, err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("%w: status %d", ErrFetchFailed, resp.StatusCode())
	}

	out := &UserResponse{Raw: resp.Body()}
	if err := json.Unmarshal(out.Raw, out); err != nil {
		return nil, fmt.Errorf("%w: decode body: %v", ErrFetchFailed, err)
	}
	return out, nil
}

// WhoAmI asks the auth service for the display name behind credential.
func (c *HTTPClient) WhoAmI(ctx context.Context, credential string) (string, error) {
	var body whoAmIResponse

	resp, err := c.auth.R().
		SetContext(ctx).
		SetHeader(HeaderAuthorization, "Bearer "+credential).
		SetResult(&body).
		Get(WhoAmIPath)
	if err != nil {
		return "", c.transportError(ctx, err)
	}
	if err := c.statusError(resp); err != nil {
		return "", err
	}
	return body.Name, nil
}

// Login exchanges username and password for a credential.
func (c *HTTPClient) Login(ctx context.Context, username, password string) (string, error) {
	var body loginResponse

	resp, err := c.auth.R().
		SetContext(ctx).
		SetBody(loginRequest{Username: username, Password: password}).
		SetResult(&body).
		Post(LoginPath)
	if err != nil {
		return "", c.transportError(ctx, err)
	}
	if err := c.statusError(resp); err != nil {
		return "", err
	}
	if body.Token == "" {
		return "", fmt.Errorf("%w: empty token", ErrFetchFailed)
	}
	return body.Token, nil
}

func (c *HTTPClient) statusError(resp *resty.Response) error {
	switch code := resp.StatusCode(); {
	case resp.IsSuccess():
		return nil
	case code == http.StatusUnauthorized, code == http.StatusForbidden:
		return fmt.Errorf("%w: status %d", ErrUnauthorized, code)
	default:
		return fmt.Errorf("%w: status %d", ErrFetchFailed, code)
	}
}

func (c *HTTPClient) transportError(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}
