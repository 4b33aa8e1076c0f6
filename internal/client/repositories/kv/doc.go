// Package kv provides the local key-value store that backs credkeeper.
//
// # Overview
//
// Store is the only durable medium of the application: every piece of state
// is a value under a string key. Two implementations exist:
//
//   - SQLiteStore keeps values in the `kv` table of a local SQLite file
//     (schema managed by goose, see internal/client/migrations);
//   - MemoryStore keeps values in a map and is used by tests and the
//     `memory` storage backend.
//
// # Contract
//
// Get returns (nil, nil) for an absent key. Delete of an absent key is not an
// error. Update performs a read-modify-write of a single key atomically: with
// SQLite inside one transaction, in memory under the store mutex. If the
// callback returns an error nothing is written and the error is returned
// unchanged.
package kv
