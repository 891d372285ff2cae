package config

import (
	"os"
	"strconv"
)

// DefaultTicketTemplate is substituted with requester name, requester email
// and the composed body, in that order, then parsed as the Zendesk ticket.
const DefaultTicketTemplate = `{"requester": {"name": "%s", "email": "%s"}, "subject": "Alta de cliente web", "comment": {"body": "%s"}}`

// Config aggregates the runtime configuration of the service. Everything is
// environment-sourced; godotenv fills the environment in development.
type Config struct {
	HTTPPort string
	LogLevel string

	// Zendesk
	ZendeskURL     string
	ZendeskUser    string
	ZendeskToken   string
	TicketTemplate string

	// Lookup services
	TarjetasURL string
	PolizasURL  string
	BravoURL    string

	// Fallback notification mail
	ErrorMailTemplateID int64
	ErrorMailTo         string
	MailHost            string
	MailPort            int
	MailUser            string
	MailPass            string
	MailFrom            string
	MailTemplateDir     string

	// Optional infrastructure
	DatabaseURL string
	RabbitURL   string

	// "template" or "plain"
	RenderMode string
}

func Load() Config {
	return Config{
		HTTPPort: getEnv("HTTP_PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		ZendeskURL:     os.Getenv("ZENDESK_URL"),
		ZendeskUser:    os.Getenv("ZENDESK_USER"),
		ZendeskToken:   os.Getenv("ZENDESK_TOKEN"),
		TicketTemplate: getEnv("ZENDESK_TICKET", DefaultTicketTemplate),

		TarjetasURL: os.Getenv("TARJETAS_GETDATOS"),
		PolizasURL:  os.Getenv("POLIZAS_URL"),
		BravoURL:    os.Getenv("CLIENTE_GETDATOS"),

		ErrorMailTemplateID: getEnvInt64("ZENDESK_ERROR_MAIL_FUNCIONALIDAD", 347),
		ErrorMailTo:         os.Getenv("ZENDESK_ERROR_DESTINATARIO"),
		MailHost:            os.Getenv("MAIL_HOST"),
		MailPort:            getEnvInt("MAIL_PORT", 587),
		MailUser:            os.Getenv("MAIL_USER"),
		MailPass:            os.Getenv("MAIL_PASS"),
		MailFrom:            getEnv("MAIL_FROM", "no-responder@mycorp.es"),
		MailTemplateDir:     getEnv("MAIL_TEMPLATE_DIR", "templates"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		RabbitURL:   os.Getenv("RABBITMQ_URL"),

		RenderMode: getEnv("RENDER_MODE", "template"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
