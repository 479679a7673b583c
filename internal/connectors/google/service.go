package google

import (
	"context"

	"golang.org/x/oauth2"
	keep "google.golang.org/api/keep/v1"
	"google.golang.org/api/option"
)

// NewKeepService creates a Google Keep API service using the provided TokenSource.
func NewKeepService(ctx context.Context, ts oauth2.TokenSource) (*keep.Service, error) {
	return keep.NewService(ctx, option.WithTokenSource(ts))
}
