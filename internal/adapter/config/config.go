package config

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Database  *Database
	HTTP      *HTTP
	Auth      *Auth
	Cnpj      *Cnpj
	Storage   *Storage
	Kafka     *Kafka
	Telemetry *Telemetry
	App       *App
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string `env:"APP_MODE"`
}

// Database with an empty DSN selects the in-memory store.
type Database struct {
	DSN string `env:"DATABASE_URI"`
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
}

type Auth struct {
	TokenTTL time.Duration `env:"TOKEN_TTL"`
	// SymmetricKey is a hex encoded v4 local key. Empty means a random key per process.
	SymmetricKey string `env:"TOKEN_KEY"`
}

type Cnpj struct {
	BaseURL string        `env:"CNPJ_API_URL"`
	Timeout time.Duration `env:"CNPJ_API_TIMEOUT"`
}

type Storage struct {
	UploadDir    string `env:"UPLOAD_DIR"`
	PublicPath   string `env:"UPLOAD_PUBLIC_PATH"`
	MaxImageSize int64  `env:"MAX_IMAGE_SIZE"`
	MaxImages    int    `env:"MAX_IMAGES"`
}

// Kafka without brokers logs order events instead of publishing them.
type Kafka struct {
	Brokers []string `env:"KAFKA_BROKERS" envSeparator:","`
	Topic   string   `env:"KAFKA_TOPIC"`
}

// Telemetry without an endpoint keeps the no-op tracer.
type Telemetry struct {
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName  string `env:"OTEL_SERVICE_NAME"`
}

func NewConfig(args []string) (*Config, error) {
	var db Database
	var http HTTP
	var auth Auth
	var cnpj Cnpj
	var storage Storage
	var kafka Kafka
	var telemetry Telemetry
	var app App
	var brokers string

	fs := flag.NewFlagSet("orderdesk", flag.ContinueOnError)
	fs.StringVar(&db.DSN, "d", "", "Database string")
	fs.StringVar(&http.HostString, "a", `localhost:8080`, "HTTP server endpoint")
	fs.DurationVar(&auth.TokenTTL, "token-ttl", 24*time.Hour, "Access token lifetime")
	fs.StringVar(&auth.SymmetricKey, "token-key", "", "Hex encoded token key")
	fs.StringVar(&cnpj.BaseURL, "cnpj-url", `https://publica.cnpj.ws`, "CNPJ registry base URL")
	fs.DurationVar(&cnpj.Timeout, "cnpj-timeout", 10*time.Second, "CNPJ registry request timeout")
	fs.StringVar(&storage.UploadDir, "upload-dir", `uploads`, "Directory for product images")
	fs.StringVar(&storage.PublicPath, "upload-path", `/uploads`, "URL prefix of stored images")
	fs.Int64Var(&storage.MaxImageSize, "max-image-size", 5<<20, "Max size of one image in bytes")
	fs.IntVar(&storage.MaxImages, "max-images", 10, "Max images per upload")
	fs.StringVar(&brokers, "kafka-brokers", "", "Comma separated Kafka brokers")
	fs.StringVar(&kafka.Topic, "kafka-topic", `orders`, "Kafka topic for order events")
	fs.StringVar(&telemetry.OTLPEndpoint, "otlp-endpoint", "", "OTLP HTTP endpoint for traces")
	fs.StringVar(&telemetry.ServiceName, "service-name", `orderdesk`, "Service name reported in traces")
	fs.StringVar(&app.LogLevel, "l", `error`, "Log level")
	fs.StringVar(&app.Mode, "m", `DEV`, "PROD / DEV")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}
	kafka.Brokers = splitList(brokers)

	sections := []struct {
		name string
		v    any
	}{
		{"database", &db},
		{"http", &http},
		{"auth", &auth},
		{"cnpj", &cnpj},
		{"storage", &storage},
		{"kafka", &kafka},
		{"telemetry", &telemetry},
		{"app", &app},
	}
	for _, s := range sections {
		if err := env.Parse(s.v); err != nil {
			return nil, fmt.Errorf("error parsing env %s config: %w", s.name, err)
		}
	}

	if app.Mode != AppModeDevelop && app.Mode != AppModeProduction {
		return nil, fmt.Errorf("unknown app mode %q", app.Mode)
	}

	config := Config{
		Database:  &db,
		HTTP:      &http,
		Auth:      &auth,
		Cnpj:      &cnpj,
		Storage:   &storage,
		Kafka:     &kafka,
		Telemetry: &telemetry,
		App:       &app,
	}

	return &config, nil
}

func splitList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return r == ',' })
}
