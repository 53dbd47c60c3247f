package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Booking BookingConfig
	Redis   RedisConfig
	Kafka   KafkaConfig
	Tracing TracingConfig
}

type ServerConfig struct {
	Port            string        `envconfig:"PORT" required:"true"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"America/Argentina/Buenos_Aires"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Retry-After"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Argentina/Buenos_Aires"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-10800"` // -3*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"12h"`
}

type BookingConfig struct {
	TimeZone      string        `envconfig:"BOOKING_TIMEZONE" default:"America/Argentina/Buenos_Aires"`
	BufferMinutes int           `envconfig:"BOOKING_BUFFER_MINUTES" default:"10"`
	HoldMinutes   int           `envconfig:"BOOKING_HOLD_MINUTES" default:"10"`
	SweepSchedule string        `envconfig:"BOOKING_SWEEP_SCHEDULE" default:"*/5 * * * *"`
	SweepTimeout  time.Duration `envconfig:"BOOKING_SWEEP_TIMEOUT" default:"30s"`
	// Digits only, country code included. Empty leaves the wa.me link without a recipient.
	WhatsAppPhone string `envconfig:"BUSINESS_WHATSAPP_PHONE"`
}

type RedisConfig struct {
	Addr       string        `envconfig:"REDIS_ADDR"`
	Password   string        `envconfig:"REDIS_PASSWORD"`
	DB         int           `envconfig:"REDIS_DB" default:"0"`
	RateLimit  int           `envconfig:"BOOKING_RATE_LIMIT" default:"10"`
	RateWindow time.Duration `envconfig:"BOOKING_RATE_WINDOW" default:"1m"`
	FailOpen   bool          `envconfig:"BOOKING_RATE_FAIL_OPEN" default:"true"`
}

type KafkaConfig struct {
	Brokers   string        `envconfig:"KAFKA_BROKERS"`
	PollEvery time.Duration `envconfig:"OUTBOX_POLL_EVERY" default:"2s"`
	BatchSize int           `envconfig:"OUTBOX_BATCH_SIZE" default:"50"`
}

type TracingConfig struct {
	Enabled      bool    `envconfig:"OTEL_ENABLED" default:"false"`
	ServiceName  string  `envconfig:"OTEL_SERVICE_NAME" default:"esteticas-booking"`
	OTLPEndpoint string  `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT" default:"localhost:4317"`
	SampleRatio  float64 `envconfig:"OTEL_SAMPLING_RATIO" default:"1"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// Location resolves the business timezone used for slot generation and past-time checks.
func (c BookingConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid BOOKING_TIMEZONE %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

func (c BookingConfig) Buffer() time.Duration {
	return time.Duration(c.BufferMinutes) * time.Minute
}

func (c BookingConfig) Hold() time.Duration {
	return time.Duration(c.HoldMinutes) * time.Minute
}

func LoadConfig() (Config, error) {
	// .env is optional; real deployments inject the environment directly
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if cfg.Booking.BufferMinutes < 0 || cfg.Booking.HoldMinutes <= 0 {
		return Config{}, fmt.Errorf("invalid booking config: buffer=%d hold=%d", cfg.Booking.BufferMinutes, cfg.Booking.HoldMinutes)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:            "8889", // Test port
			ShutdownTimeout: 5 * time.Second,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		CORS: CORSConfig{
			AllowOrigins:  []string{"http://localhost:3000"},
			AllowMethods:  []string{"GET", "POST", "PATCH", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders: []string{"Retry-After"},
			MaxAge:        time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "America/Argentina/Buenos_Aires",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -10800,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Booking: BookingConfig{
			TimeZone:      "America/Argentina/Buenos_Aires",
			BufferMinutes: 10,
			HoldMinutes:   10,
			SweepSchedule: "*/5 * * * *",
			SweepTimeout:  5 * time.Second,
			WhatsAppPhone: "5491100000000",
		},
		Redis: RedisConfig{
			RateLimit:  1000,
			RateWindow: time.Minute,
			FailOpen:   true,
		},
		Kafka: KafkaConfig{
			PollEvery: time.Second,
			BatchSize: 10,
		},
		Tracing: TracingConfig{
			ServiceName: "esteticas-booking-test",
			SampleRatio: 1,
		},
	}
}
