package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, brokers, etc.)
// - default: Values common across all environments (timezone, slot grid, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server       ServerConfig
	CORS         CORSConfig
	Log          LogConfig
	Slots        SlotConfig
	Reservation  ReservationConfig
	Notification NotificationConfig
	Metrics      MetricsConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,X-Tenant-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Retry-After"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// SlotConfig describes the grid of FREE slots generated for a new flat.
type SlotConfig struct {
	StartHour     int `envconfig:"SLOT_START_HOUR" default:"10"`
	EndHour       int `envconfig:"SLOT_END_HOUR" default:"20"`
	WindowMinutes int `envconfig:"SLOT_WINDOW_MINUTES" default:"20"`
	HorizonDays   int `envconfig:"SLOT_HORIZON_DAYS" default:"7"`
}

type ReservationConfig struct {
	NoticePeriod time.Duration `envconfig:"RESERVATION_NOTICE_PERIOD" default:"24h"`
}

type NotificationConfig struct {
	Kafka KafkaConfig
}

type KafkaConfig struct {
	Enabled      bool          `envconfig:"NOTIFY_KAFKA_ENABLED" default:"false"`
	Brokers      []string      `envconfig:"NOTIFY_KAFKA_BROKERS" default:"localhost:9092"`
	Topic        string        `envconfig:"NOTIFY_KAFKA_TOPIC" default:"reservation-events"`
	WriteTimeout time.Duration `envconfig:"NOTIFY_KAFKA_WRITE_TIMEOUT" default:"5s"`
	// Async returns from Notify once the message is queued; delivery
	// failures are logged by the writer's completion callback.
	Async bool `envconfig:"NOTIFY_KAFKA_ASYNC" default:"true"`
}

type MetricsConfig struct {
	Enabled bool   `envconfig:"METRICS_ENABLED" default:"true"`
	Path    string `envconfig:"METRICS_PATH" default:"/metrics"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "X-Tenant-ID"},
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Slots: SlotConfig{
			StartHour:     10,
			EndHour:       20,
			WindowMinutes: 20,
			HorizonDays:   7,
		},
		Reservation: ReservationConfig{
			NoticePeriod: 24 * time.Hour,
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Path:    "/metrics",
		},
	}
}
