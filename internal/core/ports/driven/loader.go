package driven

import (
	"context"

	"github.com/custodia-labs/notefetch/internal/core/domain"
)

// NoteLoader fetches notes from an external source and normalises them
// into documents. Each loader type implements this interface.
type NoteLoader interface {
	// Type returns the loader type identifier.
	Type() string

	// Load fetches each identifier in input order and returns the
	// normalised documents in the same order. A nil identifier slice is
	// rejected with domain.ErrInvalidInput; an empty slice yields an
	// empty result without any remote call.
	//
	// Loading is all-or-nothing: the first fetch failure aborts the
	// remaining fetches and no partial result is returned.
	Load(ctx context.Context, noteIDs []string) ([]domain.Document, error)
}
