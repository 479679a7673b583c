// Package connectors provides implementations of the NoteLoader interface
// for external note sources. Each connector knows how to fetch and
// normalise notes from a specific provider.
package connectors
