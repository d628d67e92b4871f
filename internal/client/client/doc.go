// Package client is the transport layer between the tweetstats client and
// the two HTTP services it talks to.
//
// # Overview
//
//  1. The Client interface is the contract the rest of the client depends
//     on: Login and WhoAmI against the application's auth service, and
//     UserByUsername against the third-party metrics API.
//  2. HTTPClient implements it on top of resty. Every outbound request gets
//     an X-Request-ID header and is logged at debug level together with the
//     response status.
//
// # Error Handling
//
// Failures are reported as sentinel errors matched with errors.Is:
// ErrUnavailable (transport failure), ErrUnauthorized (401/403 from the auth
// service), ErrFetchFailed (any other non-2xx status or an undecodable body).
// Context cancellation is returned as the context's own error.
//
// Usernames are sent exactly as given. They are path-escaped, so the
// decoded request path seen by the server contains them verbatim.
package client
