package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

type Config struct {
	Env   string `validate:"required,oneof=development stage production"`
	Store string `validate:"required,oneof=postgres memory"`
	Http  Http

	Cors CORS `validate:"required"`

	Kafka Kafka

	Redis Redis

	Postgres Postgres

	Auth Auth `validate:"required"`

	Routing Routing `validate:"required"`

	Tracking Tracking

	Cache Cache
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,numeric"`
}

type Kafka struct {
	Enabled bool

	GroupID       string   `validate:"required"`
	Brokers       []string `validate:"required,min=1,dive,hostname_port"`
	LocationTopic string   `validate:"required"`
	EventsTopic   string   `validate:"required"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

type Redis struct {
	Enabled bool

	Addr     string `validate:"required,hostname_port"`
	Password string
	DB       int `validate:"gte=0"`

	IdempotencyTTL time.Duration `validate:"gt=0"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`

	// минимальный и максимальный интервал переподключения LISTEN
	ListenerMinReconnect time.Duration `validate:"gt=0"`
	ListenerMaxReconnect time.Duration `validate:"gtefield=ListenerMinReconnect"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

type Auth struct {
	JWTSecret string        `validate:"required,min=16"`
	TokenTTL  time.Duration `validate:"gt=0"`
}

type Routing struct {
	OSRMURL     string        `validate:"required,url"`
	GeocoderURL string        `validate:"required,url"`
	UserAgent   string        `validate:"required"`
	Timeout     time.Duration `validate:"gt=0"`
}

type Tracking struct {
	SimulationSteps    int           `validate:"gte=1"`
	SimulationInterval time.Duration `validate:"gt=0"`
}

type Cache struct {
	Capacity int           `validate:"gte=1"`
	TTL      time.Duration `validate:"gt=0"`
}

func New() Config {
	return Config{
		Env:   env("ENV", "development"),
		Store: env("STORE", StorePostgres),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Kafka: Kafka{
			Enabled:       envBool("KAFKA_ENABLED", true),
			GroupID:       env("KAFKA_GROUP_ID", "delivery-service"),
			Brokers:       strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),
			LocationTopic: env("KAFKA_LOCATION_TOPIC", "driver-locations"),
			EventsTopic:   env("KAFKA_EVENTS_TOPIC", "order-events"),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Redis: Redis{
			Enabled:  envBool("REDIS_ENABLED", true),
			Addr:     env("REDIS_ADDR", "localhost:6379"),
			Password: env("REDIS_PASSWORD", ""),
			DB:       envInt("REDIS_DB", 0),

			IdempotencyTTL: envDuration("IDEMPOTENCY_TTL", 24*time.Hour),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "delivery"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),

			ListenerMinReconnect: envDuration("POSTGRES_LISTENER_MIN_RECONNECT", 100*time.Millisecond),
			ListenerMaxReconnect: envDuration("POSTGRES_LISTENER_MAX_RECONNECT", 10*time.Second),
		},

		Auth: Auth{
			JWTSecret: env("JWT_SECRET", ""),
			TokenTTL:  envDuration("TOKEN_TTL", 7*24*time.Hour),
		},

		Routing: Routing{
			OSRMURL:     env("OSRM_URL", "http://router.project-osrm.org"),
			GeocoderURL: env("GEOCODER_URL", "https://nominatim.openstreetmap.org"),
			UserAgent:   env("GEOCODER_USER_AGENT", "food-delivery-service/1.0"),
			Timeout:     envDuration("ROUTING_TIMEOUT", 5*time.Second),
		},

		Tracking: Tracking{
			SimulationSteps:    envInt("SIMULATION_STEPS", 20),
			SimulationInterval: envDuration("SIMULATION_INTERVAL", 500*time.Millisecond),
		},

		Cache: Cache{
			Capacity: envInt("ROUTING_CACHE_CAPACITY", 1000),
			TTL:      envDuration("ROUTING_CACHE_TTL", 10*time.Minute),
		},
	}
}

// Validate checks the config. Sections of disabled backends are skipped.
func (c Config) Validate() error {
	validate := validator.New()

	var except []string
	if c.Store != StorePostgres {
		except = append(except, "Postgres")
	}
	if !c.Kafka.Enabled {
		except = append(except, "Kafka")
	}
	if !c.Redis.Enabled {
		except = append(except, "Redis")
	}

	if len(except) == 0 {
		return validate.Struct(c)
	}
	return validate.StructExcept(c, except...)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
