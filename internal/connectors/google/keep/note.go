package keep

import (
	"errors"
	"fmt"

	keepapi "google.golang.org/api/keep/v1"
)

// notePathPrefix is the resource path pattern for single-note reads.
const notePathPrefix = "notes/"

// noteURIPrefix is the provider URI scheme for loaded documents.
const noteURIPrefix = "gkeep://notes/"

// ErrNoTextContent indicates a note whose body carries no plain text.
// List and checklist notes are not supported.
var ErrNoTextContent = errors.New("keep: note has no plain-text body")

// NoteName builds the API resource name for a note identifier.
func NoteName(noteID string) string {
	return notePathPrefix + noteID
}

// NoteURI builds the provider URI stored on loaded documents.
func NoteURI(noteID string) string {
	return noteURIPrefix + noteID
}

// NoteText normalises a note into the canonical two-line text form:
//
//	Title: {title}
//	Body: {body text}
//
// Returns ErrNoTextContent when the note body holds list content instead
// of plain text.
func NoteText(note *keepapi.Note) (string, error) {
	if note.Body == nil || note.Body.Text == nil {
		return "", fmt.Errorf("%w: %s", ErrNoTextContent, note.Name)
	}
	return "Title: " + note.Title + "\n" + "Body: " + note.Body.Text.Text, nil
}
