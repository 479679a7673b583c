// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Driving adapters (the CLI) depend on these interfaces, and loader
// implementations provide them.
//
//   - NoteLoader: Fetches notes from an external source by identifier
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driven
