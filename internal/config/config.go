package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/spf13/pflag"
)

// DefaultSchedule - запуски в 6, 12, 18 и 23 часа
const DefaultSchedule = "0 6,12,18,23 * * *"

type Arguments struct {
	ListenAddr     string  `env:"SERVER_ADDRESS" envDefault:"localhost:8080"`
	LogLevel       string  `env:"LOG_LEVEL" envDefault:"info"`
	JWTSecret      string  `env:"JWT_SECRET" envDefault:""`
	APIKey         string  `env:"API_KEY" envDefault:""`
	APIBaseURL     string  `env:"API_BASE_URL" envDefault:"https://app.centraldofranqueado.com.br/api/v2"`
	RequestTimeout int     `env:"REQUEST_TIMEOUT" envDefault:"10"`
	APIRateLimit   float64 `env:"API_RATE_LIMIT" envDefault:"0"`
	BreakerTimeout int     `env:"API_BREAKER_TIMEOUT" envDefault:"1800"`
	BreakerFails   int     `env:"API_BREAKER_FAILURES" envDefault:"5"`
	DatabaseDSN    string  `env:"DATABASE_DSN" envDefault:""`
	DBHost         string  `env:"DB_HOST" envDefault:"localhost"`
	DBPort         int     `env:"DB_PORT" envDefault:"5432"`
	DBName         string  `env:"DB_NAME" envDefault:"pedidos"`
	DBUser         string  `env:"DB_USER" envDefault:"postgres"`
	DBPassword     string  `env:"DB_PASSWORD" envDefault:""`
	DBSSLMode      string  `env:"DB_SSLMODE" envDefault:"disable"`
	DBPoolMin      int     `env:"DB_POOL_MIN" envDefault:"1"`
	DBPoolMax      int     `env:"DB_POOL_MAX" envDefault:"5"`
	Period         string  `env:"PERIOD" envDefault:""`
	Timezone       string  `env:"TIMEZONE" envDefault:"America/Sao_Paulo"`
	RunSchedule    string  `env:"RUN_SCHEDULE" envDefault:"0 6,12,18,23 * * *"`
	RunOnce        bool    `env:"RUN_ONCE" envDefault:"false"`
}

// ServerConfig модель настроек HTTP обёртки
type ServerConfig struct {
	ListenAddr string
	LogLevel   string
	JWTSecret  string
}

// APIConfig модель настроек клиента API франчайзи
type APIConfig struct {
	BaseURL        string
	APIKey         string
	RequestTimeout time.Duration
	// запросов в секунду, 0 - без ограничения
	RateLimit float64
	// пауза после BreakerFailures неудачных загрузок подряд
	BreakerTimeout  time.Duration
	BreakerFailures uint32
}

// DatabaseConfig модель настроек подключения к БД
type DatabaseConfig struct {
	DSN      string
	Host     string
	Port     int
	Name     string
	User     string
	Password string
	SSLMode  string
	PoolMin  int
	PoolMax  int
}

// PipelineConfig модель настроек запуска загрузки заказов
type PipelineConfig struct {
	// период в формате YYYY-MM-DD, пустая строка - текущий день
	Period   string
	Timezone string
	// cron выражение из пяти полей, время в Timezone
	RunSchedule string
	RunOnce     bool
}

// Config модель настроек сервиса
type Config struct {
	Server   ServerConfig
	API      APIConfig
	Database DatabaseConfig
	Pipeline PipelineConfig
}

func NewConfig() Config {
	// .env необязателен, переменные окружения имеют приоритет
	_ = godotenv.Load()

	var args Arguments
	if err := env.Parse(&args); err != nil {
		panic(fmt.Sprintf("Failed to parse enviroment var: %s", err.Error()))
	}

	var (
		server   = pflag.StringP("server", "a", args.ListenAddr, "Server listen address in a form host:port.")
		logLevel = pflag.StringP("log_level", "l", args.LogLevel, "Log level.")
		dsn      = pflag.StringP("dsn", "d", args.DatabaseDSN, "Database DSN (overrides DB_* parts)")
		secret   = pflag.StringP("secret", "s", args.JWTSecret, "Secret to JWT for the trigger endpoint")
		baseURL  = pflag.StringP("api", "u", args.APIBaseURL, "Orders API base URL")
		period   = pflag.StringP("period", "p", args.Period, "Period to fetch in a form YYYY-MM-DD, empty for today")
		once     = pflag.BoolP("once", "o", args.RunOnce, "Run pipeline once and exit")
		schedule = pflag.String("schedule", args.RunSchedule, "Cron expression of scheduled runs")
	)
	pflag.Parse()

	cfg := Config{
		Server: ServerConfig{
			ListenAddr: *server,
			LogLevel:   *logLevel,
			JWTSecret:  *secret,
		},
		API: APIConfig{
			BaseURL:        *baseURL,
			APIKey:         args.APIKey,
			RequestTimeout: time.Duration(args.RequestTimeout) * time.Second,
			RateLimit:       args.APIRateLimit,
			BreakerTimeout:  time.Duration(args.BreakerTimeout) * time.Second,
			BreakerFailures: uint32(max(args.BreakerFails, 0)),
		},
		Database: DatabaseConfig{
			DSN:      *dsn,
			Host:     args.DBHost,
			Port:     args.DBPort,
			Name:     args.DBName,
			User:     args.DBUser,
			Password: args.DBPassword,
			SSLMode:  args.DBSSLMode,
			PoolMin:  args.DBPoolMin,
			PoolMax:  args.DBPoolMax,
		},
		Pipeline: PipelineConfig{
			Period:      *period,
			Timezone:    args.Timezone,
			RunSchedule: *schedule,
			RunOnce:     *once,
		},
	}
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("Invalid configuration: %s", err.Error()))
	}
	return cfg
}

func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			ListenAddr: "localhost:8080",
			LogLevel:   "info",
		},
		API: APIConfig{
			BaseURL:        "https://app.centraldofranqueado.com.br/api/v2",
			RequestTimeout:  10 * time.Second,
			BreakerTimeout:  30 * time.Minute,
			BreakerFailures: 5,
		},
		Database: DatabaseConfig{
			Host:    "localhost",
			Port:    5432,
			Name:    "pedidos",
			User:    "postgres",
			SSLMode: "disable",
			PoolMin: 1,
			PoolMax: 5,
		},
		Pipeline: PipelineConfig{
			Timezone:    "America/Sao_Paulo",
			RunSchedule: DefaultSchedule,
		},
	}
}

// Validate - проверка согласованности настроек
func (c Config) Validate() error {
	if c.API.RequestTimeout <= 0 {
		return errors.New("request timeout must be positive")
	}
	if c.API.RateLimit < 0 {
		return errors.New("api rate limit must not be negative")
	}
	if c.Database.PoolMax < 1 {
		return errors.New("pool max size must be at least 1")
	}
	if c.Database.PoolMin < 0 || c.Database.PoolMin > c.Database.PoolMax {
		return fmt.Errorf("pool min size %d out of range [0, %d]", c.Database.PoolMin, c.Database.PoolMax)
	}
	if c.Database.DSN == "" && (c.Database.Host == "" || c.Database.Name == "" || c.Database.User == "") {
		return errors.New("database config is incomplete")
	}
	if c.API.BreakerFailures < 1 {
		return errors.New("breaker failures must be at least 1")
	}
	if c.API.BreakerTimeout <= 0 {
		return errors.New("breaker timeout must be positive")
	}
	if _, err := cron.ParseStandard(c.Pipeline.RunSchedule); err != nil {
		return fmt.Errorf("invalid run schedule %q: %w", c.Pipeline.RunSchedule, err)
	}
	return nil
}

// ConnString - строка подключения к БД: DSN, если задан, иначе собирается из частей
func (d DatabaseConfig) ConnString() string {
	if d.DSN != "" {
		return d.DSN
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     "/" + d.Name,
		RawQuery: "sslmode=" + url.QueryEscape(d.SSLMode),
	}
	return u.String()
}
