package admin

import (
	"context"
	"os"

	"github.com/dmitrijs2005/catalogkeeper/internal/logging"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/config"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/services"
)

// PostgresOpener connects to the database configured in cfg. Image storage
// is not needed by any command and stays unset.
func PostgresOpener(cfg *config.Config) Opener {
	return func(ctx context.Context) (*Env, error) {
		db, err := repomanager.OpenPostgres(ctx, cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}

		logger := logging.New(os.Stderr, cfg.LogLevel)
		rm := repomanager.NewPostgresRepositoryManager()

		return &Env{
			Migrate:  func(ctx context.Context) error { return rm.RunMigrations(ctx, db) },
			Accounts: services.NewUserService(db, rm, nil, cfg, logger),
			Roster:   services.NewWelcomeService(db, rm, logger),
			Close:    db.Close,
		}, nil
	}
}
