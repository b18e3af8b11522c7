package app

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SonnyAu/palate-website/config"
	"github.com/SonnyAu/palate-website/handlers"
	"github.com/SonnyAu/palate-website/server"
	"github.com/SonnyAu/palate-website/services/contact"
	"github.com/SonnyAu/palate-website/services/logging"
	"github.com/SonnyAu/palate-website/services/mail"
	"github.com/SonnyAu/palate-website/services/templates"
	"github.com/SonnyAu/palate-website/session"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

type App struct {
	fx     *fx.App
	logger *logging.Service
}

// New assembles the website: config, logging, sessions, mail, templates, the
// contact pipeline and the HTTP server, wired together with fx.
func New(cfg *config.Config) *App {
	app := &App{}

	app.fx = fx.New(
		config.NewProvider(cfg),
		logging.Module,
		session.Module,
		mail.Module,
		templates.Module,
		contact.Module,
		server.NewProvider(),
		fx.Provide(handlers.NewPageHandler),
		fx.Provide(handlers.NewContactHandler),
		fx.Invoke(func(srv *server.Server, logger *logging.Service, sessions *session.Manager, tmpl *templates.Service) {
			e := srv.Echo()
			e.Use(logging.RequestID())
			e.Use(logging.RequestLogger(logger))
			e.Use(echomw.Recover())
			e.Use(session.Middleware(sessions))
			srv.SetRenderer(tmpl.Renderer())
		}),
		fx.Invoke(handlers.RegisterRoutes),
		fx.Invoke(func(logger *logging.Service) {
			app.logger = logger
		}),
		fx.NopLogger,
	)

	return app
}

func (a *App) Start() error {
	return a.fx.Start(context.Background())
}

func (a *App) Run() {
	if err := a.Start(); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigChan
	if a.logger != nil {
		a.logger.Infof("Received signal %v, shutting down gracefully...", sig)
	} else {
		log.Printf("Received signal %v, shutting down gracefully...", sig)
	}

	a.Stop()
}

func (a *App) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := a.fx.Stop(ctx); err != nil {
		if a.logger != nil {
			a.logger.Errorf("Failed to stop application gracefully: %v", err)
		} else {
			log.Printf("Failed to stop application gracefully: %v", err)
		}
	}

	if a.logger != nil {
		_ = a.logger.Sync()
	}
}
