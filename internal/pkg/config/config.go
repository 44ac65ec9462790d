package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, etc.)
// - default: Values common across all environments (currency, timeouts, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	CORS    CORSConfig
	Log     LogConfig
	Cart    CartConfig
	Storage StorageConfig
	Redis   RedisConfig
	DB      DBConfig
	Events  EventsConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,X-User-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Kolkata"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"19800"` // 5.5*60*60
}

type CartConfig struct {
	Currency     string `envconfig:"CART_CURRENCY" default:"INR"`
	StorageKey   string `envconfig:"CART_STORAGE_KEY" default:"ecommerce_cart"`
	DefaultOwner string `envconfig:"CART_DEFAULT_OWNER" default:"current-user-id"`
	// Live sessions at which idle owners without a cart are evicted
	SessionSweepAt int `envconfig:"CART_SESSION_SWEEP_AT" default:"1024"`
}

type StorageConfig struct {
	// memory | redis | postgres
	Driver          string        `envconfig:"STORAGE_DRIVER" default:"memory"`
	Timeout         time.Duration `envconfig:"STORAGE_TIMEOUT" default:"2s"`
	BreakerFailures uint32        `envconfig:"STORAGE_BREAKER_FAILURES" default:"5"`
	BreakerCooldown time.Duration `envconfig:"STORAGE_BREAKER_COOLDOWN" default:"30s"`
}

type RedisConfig struct {
	Addr        string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password    string        `envconfig:"REDIS_PASSWORD" default:""`
	DB          int           `envconfig:"REDIS_DB" default:"0"`
	SnapshotTTL time.Duration `envconfig:"REDIS_SNAPSHOT_TTL" default:"0s"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"cart"`
	Password string `envconfig:"DB_PASSWORD" default:""`
	DBName   string `envconfig:"DB_NAME" default:"cart"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
}

type EventsConfig struct {
	// none | log | kafka
	Driver  string   `envconfig:"EVENTS_DRIVER" default:"log"`
	Brokers []string `envconfig:"KAFKA_BROKERS" default:"localhost:9092"`
	Topic   string   `envconfig:"KAFKA_CART_TOPIC" default:"cart-events"`

	// Empty disables the consumer that clears carts after checkout.
	CheckoutTopic string `envconfig:"KAFKA_CHECKOUT_TOPIC" default:""`
	ConsumerGroup string `envconfig:"KAFKA_CONSUMER_GROUP" default:"cart-service-consumer"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
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
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Kolkata",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 19800,
		},
		Cart: CartConfig{
			Currency:       "INR",
			StorageKey:     "ecommerce_cart",
			DefaultOwner:   "current-user-id",
			SessionSweepAt: 1024,
		},
		Storage: StorageConfig{
			Driver:          "memory",
			Timeout:         2 * time.Second,
			BreakerFailures: 5,
			BreakerCooldown: 30 * time.Second,
		},
		Events: EventsConfig{
			Driver:        "none",
			Topic:         "cart-events",
			ConsumerGroup: "cart-service-consumer",
		},
	}
}
