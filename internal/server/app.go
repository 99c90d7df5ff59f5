// Package server wires the back office together and runs it until the
// process is told to stop.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/catalogkeeper/internal/logging"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/config"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/images"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/services"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/web"
	"golang.org/x/sync/errgroup"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	http   *web.HTTPServer
}

// NewApp connects to the database, applies migrations and builds the HTTP
// server.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.New(os.Stdout, c.LogLevel)

	db, err := repomanager.OpenPostgres(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}

	store, err := images.NewS3Store(ctx, c)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("image store: %w", err)
	}

	router := web.NewRouter(web.Deps{
		Config:        c,
		Logger:        logger,
		Accounts:      services.NewUserService(db, rm, store, c, logger),
		Welcome:       services.NewWelcomeService(db, rm, logger),
		Categories:    services.NewCategoryService(db, rm, store, logger),
		SubCategories: services.NewSubCategoryService(db, rm, store, logger),
		Products:      services.NewProductService(db, rm, store, logger),
		Images:        store,
	})

	return &App{
		config: c,
		logger: logger,
		db:     db,
		http:   web.NewHTTPServer(c.EndpointAddrHTTP, router, logger),
	}, nil
}

// Run serves until SIGINT, SIGTERM or SIGQUIT, then closes the database.
func (app *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	app.logger.Info(ctx, "Starting app...", "app", app.config.AppName)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return app.http.Run(ctx)
	})

	err := g.Wait()
	if cerr := app.db.Close(); cerr != nil {
		app.logger.Error(context.Background(), "db close", "error", cerr.Error())
	}
	if err != nil {
		app.logger.Error(context.Background(), "app stopped", "error", err.Error())
		return err
	}
	app.logger.Info(context.Background(), "app stopped")
	return nil
}
