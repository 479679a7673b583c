package keep

import "strings"

// ResolveWebURL converts a Keep note URI to a web URL.
// gkeep://notes/{id} -> https://keep.google.com/#NOTE/{id}
func ResolveWebURL(uri string) string {
	if strings.HasPrefix(uri, noteURIPrefix) {
		noteID := strings.TrimPrefix(uri, noteURIPrefix)
		return "https://keep.google.com/#NOTE/" + noteID
	}
	return ""
}
