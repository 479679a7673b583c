// Package google provides shared infrastructure for Google API connectors.
//
// This package contains common utilities used by the keep connector:
//   - Service factories for creating Google API clients
//   - Error handling for common Google API errors (401, 403, 404)
//
// # Usage
//
// Each Google connector uses this package to create authenticated API
// clients:
//
//	svc, err := google.NewKeepService(ctx, creds.TokenSource)
//
// # OAuth2 Scopes
//
// The keep connector uses a single restricted scope:
//   - https://www.googleapis.com/auth/keep.readonly
//
// The Keep API only grants this scope to service accounts with domain-wide
// delegation; user OAuth flows are not supported.
package google
