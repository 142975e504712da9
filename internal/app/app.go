package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/Group-A-SPU-Advance-database-2024/SHOPEASE/config"
	"github.com/Group-A-SPU-Advance-database-2024/SHOPEASE/internal/adapter/httphandler"
	"github.com/Group-A-SPU-Advance-database-2024/SHOPEASE/internal/adapter/storage"
	"github.com/Group-A-SPU-Advance-database-2024/SHOPEASE/internal/core/service"
)

// App owns the adapters lifecycle: the SQL pool is opened at startup,
// injected into the repository and closed on shutdown.
type App struct {
	ctx        context.Context
	cfg        config.Config
	sqldb      storage.SQLDB
	service    service.Service
	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initStorage()
	app.initService()
	app.initHTTPServer()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initStorage() {
	const op = "App.initStorage"

	sqldb, err := storage.NewSQLDB(
		app.ctx, app.cfg.SQLDB.DSN, app.cfg.SQLDB.MaxOpenConns,
	)
	if err != nil {
		app.fallDown(op, err)
	}
	app.sqldb = sqldb
}

func (app *App) initService() {
	repository := storage.NewProductsRepository(app.sqldb)
	app.service = service.New(repository)
}

func (app *App) initHTTPServer() {
	mux := http.NewServeMux()
	httphandler.RegisterProducts(mux, app.service, app.service, app.service)

	handler := httphandler.AllowJSON(mux)
	handler = httphandler.WithLogging(handler)
	handler = httphandler.WithRequestID(handler)

	app.httpServer = httphandler.NewHTTPServer(app.cfg.HTTPServerAddr, handler)
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)

	slog.Info("application is running", "addr", app.cfg.HTTPServerAddr)
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	app.sqldb.Close()

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
