package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type HTTPServer struct {
	Addr string `yaml:"address" env:"HTTP_ADDRESS" env-default:":8080"`
}

// Database backs the delivery zone table when zones.source is "postgres".
type Database struct {
	Host            string        `yaml:"PG_HOST" env:"PG_HOST" env-default:"localhost"`
	Port            string        `yaml:"PG_PORT" env:"PG_PORT" env-default:"5432"`
	User            string        `yaml:"PG_USER" env:"PG_USER"`
	Password        string        `yaml:"PG_PASSWORD" env:"PG_PASSWORD"`
	Name            string        `yaml:"PG_DBNAME" env:"PG_DBNAME"`
	SSLMode         string        `yaml:"PG_SSLMODE" env:"PG_SSLMODE" env-default:"require"`
	MaxOpenConns    int           `yaml:"MAX_OPEN_CONNS" env:"PG_MAX_OPEN_CONNS" env-default:"10"`
	MaxIdleConns    int           `yaml:"MAX_IDLE_CONNS" env:"PG_MAX_IDLE_CONNS" env-default:"5"`
	ConnMaxLifetime time.Duration `yaml:"CONN_MAX_LIFETIME" env:"PG_CONN_MAX_LIFETIME" env-default:"30m"`
	ConnMaxIdleTime time.Duration `yaml:"CONN_MAX_IDLE_TIME" env:"PG_CONN_MAX_IDLE_TIME" env-default:"5m"`
}

type RedisConnect struct {
	Host     string `yaml:"REDIS_HOST" env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"REDIS_PORT" env:"REDIS_PORT" env-default:"6379"`
	Username string `yaml:"REDIS_USER" env:"REDIS_USER"`
	Password string `yaml:"REDIS_PASSWORD" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"REDIS_DB" env:"REDIS_DB" env-default:"0"`
}

// RateConfig bounds how often an OTP can be requested for one phone number.
type RateConfig struct {
	MaxAttempts int64         `yaml:"MAX_ATTEMPTS" env:"MAX_ATTEMPTS" env-default:"5"`
	WindowSize  time.Duration `yaml:"WINDOW_SIZE" env:"WINDOW_SIZE" env-default:"15m"`
}

type Security struct {
	JWTKey         string `yaml:"JWT_KEY" env:"JWT_KEY" env-required:"true"`
	JWTExpiryHours int    `yaml:"JWT_EXPIRY_HOURS" env:"JWT_EXPIRY_HOURS" env-default:"24"`
}

type Upstream struct {
	BaseURL string        `yaml:"BASE_URL" env:"UPSTREAM_BASE_URL" env-required:"true"`
	Timeout time.Duration `yaml:"TIMEOUT" env:"UPSTREAM_TIMEOUT" env-default:"10s"`

	// circuit breaker
	MaxHalfOpenRequests uint32        `yaml:"MAX_HALF_OPEN_REQUESTS" env:"UPSTREAM_MAX_HALF_OPEN_REQUESTS" env-default:"3"`
	FailureWindow       time.Duration `yaml:"FAILURE_WINDOW" env:"UPSTREAM_FAILURE_WINDOW" env-default:"30s"`
	OpenTimeout         time.Duration `yaml:"OPEN_TIMEOUT" env:"UPSTREAM_OPEN_TIMEOUT" env-default:"30s"`
	MinRequests         uint32        `yaml:"MIN_REQUESTS" env:"UPSTREAM_MIN_REQUESTS" env-default:"5"`
	FailureRatio        float64       `yaml:"FAILURE_RATIO" env:"UPSTREAM_FAILURE_RATIO" env-default:"0.6"`
}

type Geocoding struct {
	BaseURL  string        `yaml:"BASE_URL" env:"GEOCODING_BASE_URL" env-default:"https://maps.googleapis.com/maps/api/geocode/json"`
	APIKey   string        `yaml:"API_KEY" env:"GEOCODING_API_KEY"`
	Language string        `yaml:"LANGUAGE" env:"GEOCODING_LANGUAGE" env-default:"en"`
	Timeout  time.Duration `yaml:"TIMEOUT" env:"GEOCODING_TIMEOUT" env-default:"5s"`
}

// CacheConfig drives the catalog query cache. Entries older than StaleTime
// are refetched; entries older than GCTime are gone from Redis.
type CacheConfig struct {
	DefaultTTL time.Duration `yaml:"default_ttl" env:"CACHE_DEFAULT_TTL" env-default:"10m"`
	StaleTime  time.Duration `yaml:"stale_time" env:"CACHE_STALE_TIME" env-default:"1m"`
	GCTime     time.Duration `yaml:"gc_time" env:"CACHE_GC_TIME" env-default:"10m"`
}

type Session struct {
	TTL time.Duration `yaml:"TTL" env:"SESSION_TTL" env-default:"168h"`
}

type Zones struct {
	Source string `yaml:"SOURCE" env:"ZONES_SOURCE" env-default:"static"`
}

type Otel struct {
	Enabled          bool    `yaml:"ENABLED" env:"OTEL_ENABLED" env-default:"false"`
	ServiceName      string  `yaml:"SERVICE_NAME" env:"OTEL_SERVICE_NAME" env-default:"food-delivery-storefront"`
	ExporterEndpoint string  `yaml:"EXPORTER_ENDPOINT" env:"OTEL_EXPORTER_OTLP_ENDPOINT" env-default:"localhost:4318"`
	SamplerRatio     float64 `yaml:"SAMPLER_RATIO" env:"OTEL_SAMPLER_RATIO" env-default:"1.0"`
}

type Config struct {
	Env          string `yaml:"env" env:"ENV" env-required:"true"`
	HTTPServer   `yaml:"http_server"`
	Database     Database     `yaml:"database"`
	RedisConnect RedisConnect `yaml:"redis"`
	RateConfig   RateConfig   `yaml:"rateConfig"`
	Security     Security     `yaml:"security"`
	Upstream     Upstream     `yaml:"upstream"`
	Geocoding    Geocoding    `yaml:"geocoding"`
	Cache        CacheConfig  `yaml:"cache"`
	Session      Session      `yaml:"session"`
	Zones        Zones        `yaml:"zones"`
	Otel         Otel         `yaml:"otel"`
}

func MustLoad() *Config {

	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {

		flags := flag.String("config", "", "gets the config flag value")

		flag.Parse()

		configPath = *flags

		if configPath == "" {
			log.Fatal("Config path is not set")
		}

	}

	cfg, err := LoadConfigFromPath(configPath)
	if err != nil {
		log.Fatalf("can not read config file: %s", err.Error())
	}

	return cfg

}

func LoadConfigFromPath(configPath string) (*Config, error) {

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("reading config %s: %w", configPath, err)
	}

	if cfg.Zones.Source != "static" && cfg.Zones.Source != "postgres" {
		return nil, fmt.Errorf("unknown zones source %q", cfg.Zones.Source)
	}

	return &cfg, nil
}

func (d *Database) GetDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

func (r *RedisConnect) GetDSN() string {
	if r.Username == "" && r.Password == "" {
		return fmt.Sprintf("redis://%s:%s/%d", r.Host, r.Port, r.DB)
	}
	return fmt.Sprintf("redis://%s:%s@%s:%s/%d", r.Username, r.Password, r.Host, r.Port, r.DB)
}
