// Package sqlite persists built snapshots and the study list in a single
// SQLite file, ~/.kanji/data/kanji.db unless a data directory is given.
//
// The driver is modernc.org/sqlite, so the binary stays CGO-free. Queries are
// assembled with squirrel. [Store.SnapshotStore] and [Store.StudyStore] share
// one connection pool opened in WAL mode with foreign keys enforced, which
// lets a snapshot replace cascade to its character and stroke rows.
//
// Schema changes live in migrations/ as goose SQL files (NNN_name.sql with
// Up and Down sections). They are embedded at compile time and applied by
// pressly/goose when the store opens.
package sqlite
