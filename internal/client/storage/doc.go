// Package storage bootstraps the local key-value store selected by the
// configuration.
//
// For the sqlite backend it opens (creating if needed) the database file
// with the pure-Go modernc.org/sqlite driver, applies the embedded goose
// migrations and returns a kv.SQLiteStore. For the memory backend it returns
// a fresh kv.MemoryStore whose contents vanish when the process exits.
package storage
