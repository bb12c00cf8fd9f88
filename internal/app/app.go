package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"repaircenter/internal/config"
	"repaircenter/internal/controller"
	"repaircenter/internal/diagnosis"
	"repaircenter/internal/repository"
	"repaircenter/internal/router"
	"repaircenter/internal/service"
)

type App struct {
	repo       *repository.Repository
	service    *service.Service
	analyzer   *diagnosis.Analyzer
	controller *controller.Controller
	log        *logrus.Logger
	stopSig    chan os.Signal
	cfg        *config.Config

	Done chan struct{}
}

type option func(*App)

func WithConfig(cfg *config.Config) option {
	return func(app *App) {
		app.cfg = cfg
	}
}

func NewApp(opts ...option) (*App, error) {
	app := &App{
		stopSig: make(chan os.Signal, 2),
		Done:    make(chan struct{}),
	}

	for _, opt := range opts {
		opt(app)
	}

	if app.cfg == nil {
		cfg, err := config.NewConfig()
		if err != nil {
			return nil, err
		}
		app.cfg = cfg
	}

	app.log = logrus.New()
	if level, err := logrus.ParseLevel(app.cfg.LogLevel); err == nil {
		app.log.SetLevel(level)
	}

	app.repo = repository.NewRepository()
	if app.cfg.SeedDemoData {
		app.repo.SeedDemoData(app.cfg.SeedRequests, app.cfg.SeedCustomers)
	}

	app.service = service.NewService(app.repo)
	app.analyzer = diagnosis.NewAnalyzer(&app.cfg.DiagnosisConfig, app.log)
	app.controller = controller.NewController(app.service, app.analyzer, app.log)

	return app, nil
}

func (app *App) Run() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		signal.Notify(app.stopSig, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
		sig := <-app.stopSig
		app.log.Infof("Received signal: %s", sig)
		cancel()
	}()

	server := http.Server{
		Addr:         app.cfg.ServerAddress,
		Handler:      router.NewRouter(app.controller),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			app.log.WithError(err).Error("Http server error")
		}
	}()

	app.log.Infof("Server started at %s, listening for connections...", app.cfg.ServerAddress)
	<-ctx.Done()

	timeout, tcancel := context.WithTimeout(context.Background(), time.Second*10)
	defer tcancel()
	app.log.Info("Shutting down http server...")
	server.Shutdown(timeout)

	app.log.Info("Closing repository...")
	if err := app.repo.Close(); err != nil {
		app.log.WithError(err).Error("Repository closing error")
	}

	close(app.Done)
	app.log.Info("Exiting app.")
}
