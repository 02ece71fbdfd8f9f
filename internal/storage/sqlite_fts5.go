//go:build fts5 || sqlite_fts5

// FTS5 support in mattn/go-sqlite3 is gated behind build tags; build with
// -tags="fts5" (or "sqlite_fts5") when the SQLite backend is enabled.
// See github.com/mattn/go-sqlite3/sqlite3_opt_fts5.go.
package storage

import (
	_ "github.com/mattn/go-sqlite3"
)
