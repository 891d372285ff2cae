package main

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/mycorp/alta-soporte/internal/config"
	"github.com/mycorp/alta-soporte/internal/infra/database"
	"github.com/mycorp/alta-soporte/internal/infra/http/handlers"
	"github.com/mycorp/alta-soporte/internal/infra/http/middleware"
	"github.com/mycorp/alta-soporte/internal/infra/integration/bravo"
	"github.com/mycorp/alta-soporte/internal/infra/integration/polizas"
	"github.com/mycorp/alta-soporte/internal/infra/integration/tarjetas"
	"github.com/mycorp/alta-soporte/internal/infra/integration/zendesk"
	"github.com/mycorp/alta-soporte/internal/infra/mail"
	"github.com/mycorp/alta-soporte/internal/infra/queue"
	"github.com/mycorp/alta-soporte/internal/logger"
	"github.com/mycorp/alta-soporte/internal/render"
	"github.com/mycorp/alta-soporte/internal/usecase"
)

func main() {
	godotenv.Load()
	cfg := config.Load()

	log := logger.New(cfg.LogLevel)
	defer log.Sync()

	// Reference data: the document-type table lives in Postgres; without a
	// configured database the static list serves the same ordered pairs.
	var docTypes usecase.DocumentTypeSource = database.NewStaticDocumentTypes()
	db, err := openDatabase(cfg)
	if err != nil {
		log.Fatal("error al conectar con la base de datos", zap.Error(err))
	}
	if db != nil {
		defer db.Close()
		docTypes = database.NewDocumentTypeRepository(db)
	}

	// Ticket-outcome events are optional infrastructure.
	var events usecase.EventProducer
	var rabbit *queue.RabbitMQ
	if cfg.RabbitURL != "" {
		rabbit, err = queue.NewRabbitMQ(cfg.RabbitURL)
		if err != nil {
			log.Fatal("error al conectar con RabbitMQ", zap.Error(err))
		}
		defer rabbit.Conn.Close()
		defer rabbit.Ch.Close()
		events = queue.NewProducer(rabbit.Ch)
	}

	cardClient := tarjetas.NewClient(cfg.TarjetasURL)
	policyClient := polizas.NewClient(cfg.PolizasURL)
	profileClient := bravo.NewClient(cfg.BravoURL)

	mailer := mail.NewSender(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass, cfg.MailFrom, cfg.MailTemplateDir)

	// One Zendesk connection per submission, closed by the pipeline.
	newTicketAPI := func() (usecase.TicketAPI, error) {
		return zendesk.NewClient(cfg.ZendeskURL, cfg.ZendeskUser, cfg.ZendeskToken), nil
	}

	createTicketUC := usecase.NewCreateTicketUseCase(
		cardClient, policyClient, profileClient, docTypes,
		render.New(cfg.RenderMode),
		newTicketAPI, mailer, events,
		cfg.TicketTemplate, cfg.ErrorMailTemplateID, cfg.ErrorMailTo,
		log,
	)

	altaHandler := handlers.NewAltaHandler(createTicketUC)

	var healthHandler *handlers.HealthHandler
	if rabbit != nil {
		healthHandler = handlers.NewHealthHandler(db, rabbit.Conn)
	} else {
		healthHandler = handlers.NewHealthHandler(db, nil)
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
	}))

	r.Post("/alta", altaHandler.Handle)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	addr := ":" + cfg.HTTPPort
	log.Info("servidor de altas escuchando", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal("servidor detenido", zap.Error(err))
	}
}

func openDatabase(cfg config.Config) (*sql.DB, error) {
	if cfg.DatabaseURL == "" {
		return nil, nil
	}
	return database.NewDBConnection(cfg.DatabaseURL)
}
