package domain

// Document represents a normalised note record produced by a loader.
// Ownership passes entirely to the caller; the record is never mutated
// after creation.
type Document struct {
	// URI is the provider location of the note (e.g. "gkeep://notes/{id}").
	URI string

	// Text is the full normalised text content.
	Text string

	// Metadata contains loader-specific key-value pairs. It always carries
	// the originating note identifier under the loader's metadata key.
	Metadata map[string]any
}
