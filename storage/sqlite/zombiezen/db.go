package zombiezen

import (
	"context"
	_ "embed"
	"fmt"
	"runtime"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// busyTimeoutMillis bounds how long a connection waits on a locked database.
const busyTimeoutMillis = 5000

//go:embed sql/lexicon.sql
var lexiconSchema string

// NewPool opens a pool on the database file at dbPath, creating it if
// needed. Connections use WAL mode, the sqlitex default.
func NewPool(dbPath string) (*sqlitex.Pool, error) {
	pool, err := sqlitex.NewPool(dbPath, sqlitex.PoolOptions{
		PoolSize: runtime.NumCPU(),
		PrepareConn: func(conn *sqlite.Conn) error {
			return sqlitex.ExecuteTransient(conn, fmt.Sprintf("PRAGMA busy_timeout = %d;", busyTimeoutMillis), nil)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("open lexicon database %s: %w", dbPath, err)
	}
	return pool, nil
}

// CreateLexiconTables creates the lexicon table and its index if missing.
func CreateLexiconTables(pool *sqlitex.Pool) error {
	conn, err := pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer pool.Put(conn)

	if err := sqlitex.ExecuteScript(conn, lexiconSchema, nil); err != nil {
		return fmt.Errorf("create lexicon table: %w", err)
	}
	return nil
}
