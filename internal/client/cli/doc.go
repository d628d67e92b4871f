// Package cli provides the interactive tweetstats command-line client.
//
// It wires configuration, the local credential store, the HTTP client and
// an interactive REPL. Typical flow: validate the stored credential, prompt
// for a login when there is none, then run user commands against the
// metrics view.
//
// Key features:
//   - Login / Logout
//   - Analyze a username and draw its public metrics
//   - Reverse arbitrary text
//   - Export the current chart as PNG to a directory or an S3 bucket
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
