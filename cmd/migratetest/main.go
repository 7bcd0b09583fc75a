// Command migratetest verifies that the schema applies cleanly to the target
// database by writing and reading back a probe save slot.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/myrjola/alibi/internal/errors"
	"github.com/myrjola/alibi/internal/repositories"
	"github.com/myrjola/alibi/internal/sqlite"
	"github.com/myrjola/alibi/internal/testhelpers"
)

func main() {
	logger := testhelpers.NewLogger(os.Stdout)
	var (
		err       error
		start     = time.Now()
		ctx       context.Context
		sqliteURL string
		ok        bool
		cancel    context.CancelFunc
	)
	ctx = context.Background()
	ctx, cancel = context.WithTimeout(ctx, 5*time.Second) //nolint:mnd // 5 seconds

	if sqliteURL, ok = os.LookupEnv("ALIBI_SQLITE_URL"); !ok {
		logger.LogAttrs(ctx, slog.LevelError, "ALIBI_SQLITE_URL not set")
		os.Exit(1)
	}

	var db *sqlite.Database
	if db, err = sqlite.NewDatabase(ctx, sqliteURL, logger); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error creating database",
			slog.String("url", sqliteURL), errors.SlogError(err))
		os.Exit(1)
	}

	// Round-trip a probe row through the save slot table and clean it up.
	saves := repositories.NewSaveRepository(db, logger)
	const (
		probeSession = "migratetest"
		probeSlot    = "probe"
	)
	if err = saves.Put(ctx, probeSession, probeSlot, []byte(`{"probe":true}`)); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error writing probe save", errors.SlogError(err))
		os.Exit(1)
	}
	if _, err = saves.Get(ctx, probeSession, probeSlot); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error reading probe save", errors.SlogError(err))
		os.Exit(1)
	}
	if err = saves.Delete(ctx, probeSession, probeSlot); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error deleting probe save", errors.SlogError(err))
		os.Exit(1)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Migration test successful 🙌", slog.Duration("duration", time.Since(start)))
	cancel()
	os.Exit(0)
}
