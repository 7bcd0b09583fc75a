// Package sqlite owns the database connections and schema for the web
// server's persistence: session storage and the save-slot archive.
package sqlite

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/myrjola/alibi/internal/errors"
	"github.com/myrjola/alibi/internal/random"

	_ "embed"
	_ "github.com/mattn/go-sqlite3" // Enable sqlite3 driver
)

//go:embed schema.sql
var schemaDefinition string

// Database bundles the two SQLite connections. Writes go through the single
// ReadWrite connection; queries use the concurrent ReadOnly pool.
// This is a best practice mentioned in
// https://github.com/mattn/go-sqlite3/issues/1179#issuecomment-1638083995
type Database struct {
	ReadWrite *sqlx.DB
	ReadOnly  *sqlx.DB
}

// NewDatabase connects to the database at url and initializes the schema.
// Use ":memory:" for an in-memory database; each call then gets its own
// shared-cache database so parallel tests do not see each other's data.
func NewDatabase(ctx context.Context, url string, logger *slog.Logger) (*Database, error) {
	cacheConfig := "&cache=private"
	if url == ":memory:" {
		var dbNameLength uint = 20
		randomID, err := random.Letters(dbNameLength)
		if err != nil {
			return nil, errors.Wrap(err, "generate in-memory database name")
		}
		url = randomID
		cacheConfig = "&mode=memory&cache=shared"
	}

	// Options prefixed with underscore are SQLite pragmas, see
	// https://www.sqlite.org/pragma.html.
	commonConfig := "_journal_mode=wal&_busy_timeout=5000&_synchronous=normal&_foreign_keys=on"
	readWriteConfig := fmt.Sprintf("file:%s?_txlock=immediate&%s%s", url, commonConfig, cacheConfig)
	readConfig := fmt.Sprintf("file:%s?mode=ro&_txlock=deferred&%s%s", url, commonConfig, cacheConfig)

	readWriteDB, err := sqlx.ConnectContext(ctx, "sqlite3", readWriteConfig)
	if err != nil {
		return nil, errors.Wrap(err, "open read-write database")
	}
	readWriteDB.SetMaxOpenConns(1)
	readWriteDB.SetMaxIdleConns(1)
	readWriteDB.SetConnMaxLifetime(time.Hour)
	readWriteDB.SetConnMaxIdleTime(time.Hour)

	if _, err = readWriteDB.ExecContext(ctx, schemaDefinition); err != nil {
		return nil, errors.Wrap(err, "initialize schema")
	}

	readDB, err := sqlx.ConnectContext(ctx, "sqlite3", readConfig)
	if err != nil {
		return nil, errors.Wrap(err, "open read-only database")
	}
	maxReadConns := 10
	readDB.SetMaxOpenConns(maxReadConns)
	readDB.SetMaxIdleConns(maxReadConns)
	readDB.SetConnMaxLifetime(time.Hour)
	readDB.SetConnMaxIdleTime(time.Hour)

	logger.LogAttrs(ctx, slog.LevelInfo, "database ready", slog.String("url", url))

	return &Database{ReadWrite: readWriteDB, ReadOnly: readDB}, nil
}

// Close releases both connection pools.
func (db *Database) Close() error {
	if err := db.ReadOnly.Close(); err != nil {
		return errors.Wrap(err, "close read-only database")
	}
	if err := db.ReadWrite.Close(); err != nil {
		return errors.Wrap(err, "close read-write database")
	}
	return nil
}
