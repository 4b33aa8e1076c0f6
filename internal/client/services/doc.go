// Package services contains the application services of the credkeeper
// client.
//
// CredentialStore registers and authenticates users against the collection
// kept in the local store. SessionManager owns the single session marker.
// The two never call each other; the CLI composes them: a successful
// Authenticate is followed by Establish, logout calls Clear.
//
// Validation failures are returned as the sentinels in internal/common and
// leave the store untouched. Any other error comes from the storage layer.
package services
