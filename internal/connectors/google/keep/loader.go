package keep

import (
	"context"
	"fmt"

	keepapi "google.golang.org/api/keep/v1"

	"github.com/custodia-labs/notefetch/internal/connectors/google"
	"github.com/custodia-labs/notefetch/internal/core/domain"
	"github.com/custodia-labs/notefetch/internal/core/ports/driven"
)

// MetadataKeyNoteID is the metadata key carrying the originating note identifier.
const MetadataKeyNoteID = "note_id"

// Ensure Loader implements the port.
var _ driven.NoteLoader = (*Loader)(nil)

// NotesService is the single-method surface of the Keep API the loader
// depends on. Tests substitute a double.
type NotesService interface {
	// GetNote fetches one note by its resource name ("notes/{id}").
	GetNote(ctx context.Context, name string) (*keepapi.Note, error)
}

// ServiceFactory builds a NotesService bound to fresh credentials.
type ServiceFactory func(ctx context.Context) (NotesService, error)

// Loader fetches notes from Google Keep.
//
// Every fetch is stateless and self-contained: credentials are read from
// disk and a new API client is built per note. No retries, no caching,
// no shared state between calls.
type Loader struct {
	newService ServiceFactory
}

// New creates a Keep loader backed by the real Keep API.
func New() *Loader {
	return NewWithServiceFactory(NewNotesService)
}

// NewWithServiceFactory creates a Keep loader with a custom service
// factory. Used by tests to substitute a double.
func NewWithServiceFactory(factory ServiceFactory) *Loader {
	return &Loader{newService: factory}
}

// Type returns the loader type identifier.
func (l *Loader) Type() string {
	return "google-keep"
}

// Load fetches each note identifier in input order and returns one
// document per identifier, in the same order.
//
// A nil slice is rejected with domain.ErrInvalidInput before any remote
// call. The first fetch failure aborts the remaining fetches; no partial
// result is returned.
func (l *Loader) Load(ctx context.Context, noteIDs []string) ([]domain.Document, error) {
	if noteIDs == nil {
		return nil, fmt.Errorf("%w: note IDs must be provided", domain.ErrInvalidInput)
	}

	docs := make([]domain.Document, 0, len(noteIDs))
	for _, noteID := range noteIDs {
		text, err := l.FetchNote(ctx, noteID)
		if err != nil {
			return nil, err
		}
		docs = append(docs, domain.Document{
			URI:      NoteURI(noteID),
			Text:     text,
			Metadata: map[string]any{MetadataKeyNoteID: noteID},
		})
	}
	return docs, nil
}

// FetchNote fetches a single note and returns its normalised text.
func (l *Loader) FetchNote(ctx context.Context, noteID string) (string, error) {
	svc, err := l.newService(ctx)
	if err != nil {
		return "", err
	}

	note, err := svc.GetNote(ctx, NoteName(noteID))
	if err != nil {
		return "", fmt.Errorf("get note %s: %w", noteID, google.WrapError(err))
	}

	return NoteText(note)
}

// NewNotesService builds the production NotesService. Credentials are
// loaded from disk on every call; nothing is cached between fetches.
func NewNotesService(ctx context.Context) (NotesService, error) {
	creds, err := Credentials(ctx)
	if err != nil {
		return nil, err
	}

	svc, err := google.NewKeepService(ctx, creds.TokenSource)
	if err != nil {
		return nil, fmt.Errorf("create keep service: %w", err)
	}
	return &notesService{svc: svc}, nil
}

// notesService wraps the generated Keep client behind NotesService.
type notesService struct {
	svc *keepapi.Service
}

func (s *notesService) GetNote(ctx context.Context, name string) (*keepapi.Note, error) {
	return s.svc.Notes.Get(name).Context(ctx).Do()
}
