package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port), security settings
// - default: Values common across all environments (timings, timezone, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server       ServerConfig
	Store        StoreConfig
	Engine       EngineConfig
	Catalog      CatalogConfig
	Notification NotificationConfig
	CORS         CORSConfig
	Log          LogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type StoreConfig struct {
	Dir string `envconfig:"STORE_DIR" default:"./data"`
}

type EngineConfig struct {
	OrderPreparingDelay     time.Duration `envconfig:"ORDER_PREPARING_DELAY" default:"5s"`
	OrderReadyDelay         time.Duration `envconfig:"ORDER_READY_DELAY" default:"10s"`
	OrderReadyWindow        time.Duration `envconfig:"ORDER_READY_WINDOW" default:"15m"`
	ReservationConfirmDelay time.Duration `envconfig:"RESERVATION_CONFIRM_DELAY" default:"2s"`
	PointsPerCurrencyUnit   int           `envconfig:"POINTS_PER_CURRENCY_UNIT" default:"10"`
}

type CatalogConfig struct {
	// empty means the embedded default menu
	File string `envconfig:"CATALOG_FILE"`
}

type NotificationConfig struct {
	FeedSize int `envconfig:"NOTIFICATION_FEED_SIZE" default:"100"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:5173,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

var (
	ErrInvalidOrderTiming = errors.New("order delays must satisfy 0 < preparing < ready < ready window")
	ErrInvalidConfirm     = errors.New("reservation confirm delay must be positive")
	ErrInvalidPointsRate  = errors.New("points per currency unit cannot be negative")
)

func (c EngineConfig) Validate() error {
	if c.OrderPreparingDelay <= 0 ||
		c.OrderReadyDelay <= c.OrderPreparingDelay ||
		c.OrderReadyWindow <= c.OrderReadyDelay {
		return ErrInvalidOrderTiming
	}
	if c.ReservationConfirmDelay <= 0 {
		return ErrInvalidConfirm
	}
	if c.PointsPerCurrencyUnit < 0 {
		return ErrInvalidPointsRate
	}
	return nil
}

func LoadConfig() (Config, error) {
	// .env is optional; real environment variables win
	_ = godotenv.Load()

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Engine.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid engine config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Store: StoreConfig{
			Dir: "",
		},
		Engine: EngineConfig{
			OrderPreparingDelay:     5 * time.Second,
			OrderReadyDelay:         10 * time.Second,
			OrderReadyWindow:        15 * time.Minute,
			ReservationConfirmDelay: 2 * time.Second,
			PointsPerCurrencyUnit:   10,
		},
		Notification: NotificationConfig{
			FeedSize: 50,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:5173"},
			AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
			MaxAge:       12 * time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
	}
}
