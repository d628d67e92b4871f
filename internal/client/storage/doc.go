// Package storage is the client's persistent key/value facility, the place
// where the session credential lives between runs.
//
// Store is the contract the rest of the client depends on. Two
// implementations are provided:
//
//   - SQLiteStore keeps entries in a local SQLite file (pure-Go modernc
//     driver) whose schema is managed by embedded goose migrations; see Open.
//   - MemoryStore keeps entries in a map and is meant for tests.
//
// A missing key is reported as ErrNotFound; callers match it with errors.Is.
package storage
