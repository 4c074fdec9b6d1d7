package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"

	"github.com/kit678/blaide-bolt/internal/admin"
	"github.com/kit678/blaide-bolt/internal/contact"
	"github.com/kit678/blaide-bolt/internal/web"
	"github.com/kit678/blaide-bolt/pkg/config"
	"github.com/kit678/blaide-bolt/pkg/email"
	"github.com/kit678/blaide-bolt/pkg/environment"
	"github.com/kit678/blaide-bolt/pkg/httpserver"
	"github.com/kit678/blaide-bolt/pkg/logger"
	"github.com/kit678/blaide-bolt/pkg/mongo"
	"github.com/kit678/blaide-bolt/pkg/requestid"
)

type appConfig struct {
	Environment string `env:"APP_ENV" envDefault:"development"`
	ServiceName string `env:"APP_NAME" envDefault:"blaide-site"`
	DevMailDir  string `env:"DEV_MAIL_DIR" envDefault:"./tmp/emails"`
}

func main() {
	var (
		appCfg   appConfig
		httpCfg  httpserver.Config
		mongoCfg mongo.Config
		emailCfg email.Config
	)
	config.MustLoad(&appCfg)
	config.MustLoad(&httpCfg)
	config.MustLoad(&mongoCfg)
	config.MustLoad(&emailCfg)

	log := logger.New(
		logger.WithEnvironment(appCfg.Environment, appCfg.ServiceName),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db, err := mongo.NewWithDatabase(ctx, mongoCfg)
	if err != nil {
		log.Error("Failed to connect to document store", logger.Error(err))
		os.Exit(1)
	}

	sender := newSender(appCfg, emailCfg, log)

	messages := contact.NewMessageStore(db)
	relay := contact.NewRelay(sender, emailCfg.AdminEmail, log)
	contactSvc := contact.NewService(messages, relay, log)
	contactHandler := contact.NewHandler(contactSvc, log)
	adminHandler := admin.NewHandler(messages, admin.NewSettingsStore(db), log)

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(web.Recoverer(log))
	r.NotFound(web.NotFound)
	r.MethodNotAllowed(web.MethodNotAllowed)

	r.Get("/healthz", httpserver.HealthCheckHandler(ctx, log))
	r.Get("/readyz", httpserver.HealthCheckHandler(ctx, log, mongo.Healthcheck(db.Client())))

	r.Route("/api", func(api chi.Router) {
		api.MethodNotAllowed(web.MethodNotAllowed)
		api.Mount("/admin", adminHandler.Routes())
		api.Mount("/", contactHandler.Routes())
	})

	// Local development alias matching the historical dev server paths.
	if appCfg.Environment != string(environment.Production) {
		r.Post("/sendEmail", contactHandler.HandleSendEmail)
	}

	srv := httpserver.NewFromConfig(httpCfg,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(l *slog.Logger) {
			l.Info("HTTP server listening", slog.String("addr", httpCfg.Addr))
		}),
		httpserver.WithStopHook(func(l *slog.Logger) {
			if err := db.Client().Disconnect(context.Background()); err != nil {
				l.Error("Failed to disconnect from document store", logger.Error(err))
			}
			l.Info("HTTP server stopped")
		}),
	)

	if err := srv.Run(ctx, r); err != nil {
		log.Error("HTTP server exited with error", logger.Error(err))
		os.Exit(1)
	}
}

// newSender picks the email backend. Production requires real Postmark
// credentials; development falls back to capturing emails on disk when the
// token is absent. A nil sender keeps the rest of the site serving while
// every dispatch fails with a configuration error.
func newSender(appCfg appConfig, emailCfg email.Config, log *slog.Logger) email.EmailSender {
	if emailCfg.PostmarkServerToken != "" {
		return email.MustNewPostmarkClient(emailCfg)
	}
	if appCfg.Environment != string(environment.Production) {
		log.Warn("Postmark token absent, capturing emails to disk",
			slog.String("dir", appCfg.DevMailDir))
		return email.NewDevSender(appCfg.DevMailDir)
	}
	log.Error("Postmark server token is not configured, email dispatch disabled")
	return nil
}
