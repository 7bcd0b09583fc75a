package main

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/joho/godotenv"
	"github.com/myrjola/alibi/internal/ai"
	"github.com/myrjola/alibi/internal/envstruct"
	"github.com/myrjola/alibi/internal/errors"
	"github.com/myrjola/alibi/internal/intent"
	"github.com/myrjola/alibi/internal/logging"
	"github.com/myrjola/alibi/internal/pprofserver"
	"github.com/myrjola/alibi/internal/repositories"
	"github.com/myrjola/alibi/internal/sqlite"
)

type config struct {
	// Addr is the address the server listens on, e.g. "localhost:4000".
	// Port 0 picks a free port, which the startup log line reports.
	Addr string `env:"ALIBI_ADDR" envDefault:"localhost:4000"`
	// PprofPort is the localhost port for the pprof server, e.g. ":6060".
	PprofPort string `env:"ALIBI_PPROF_PORT" envDefault:":6060"`
	// SQLiteURL is the database path, or ":memory:".
	SQLiteURL string `env:"ALIBI_SQLITE_URL" envDefault:"./alibi.sqlite"`
	// ScenarioDir holds authored scenario files for game resets.
	ScenarioDir string `env:"ALIBI_SCENARIO_DIR" envDefault:"./scenarios"`
	// AIIntent enables model-backed intent mapping when "true". The rule
	// mapper is always the fallback.
	AIIntent string `env:"ALIBI_AI_INTENT" envDefault:"false"`
}

type application struct {
	logger         *slog.Logger
	config         config
	sessionManager *scs.SessionManager
	saves          *repositories.SaveRepository
	intentMapper   intent.Mapper
	games          *gameStore
}

func main() {
	ctx := context.Background()
	logger := slog.New(logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: true,
	})))

	// Missing .env is fine, the defaults and real env carry it.
	_ = godotenv.Load()

	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "server failed", errors.SlogError(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	var cfg config
	if err := envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "read configuration")
	}

	// pprof listens on localhost only so it's not open to the world.
	pprofserver.Launch(cfg.PprofPort, logger)

	db, err := sqlite.NewDatabase(ctx, cfg.SQLiteURL, logger)
	if err != nil {
		return errors.Wrap(err, "connect database")
	}

	sessionManager := scs.New()
	sessionManager.Store = sqlite3store.NewWithCleanupInterval(db.ReadWrite.DB, 24*time.Hour)
	sessionManager.Lifetime = 12 * time.Hour

	var mapper intent.Mapper = intent.NewRuleMapper()
	if useAI, _ := strconv.ParseBool(cfg.AIIntent); useAI {
		client := ai.NewClient()
		mapper = intent.NewAIMapper(&client, logger)
	}

	app := application{
		logger:         logger,
		config:         cfg,
		sessionManager: sessionManager,
		saves:          repositories.NewSaveRepository(db, logger),
		intentMapper:   mapper,
		games:          newGameStore(),
	}

	return app.configureAndStartServer(ctx, cfg.Addr)
}
