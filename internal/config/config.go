package config

import (
	"errors"
	"fmt"
	"time"

	"ctchen222/Tic-Tac-Toe-AI/internal/bot"

	"github.com/ilyakaznacheev/cleanenv"
)

var ErrMissingSecret = errors.New("auth secret is empty")

type Config struct {
	LogLevel          string        `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPAddr          string        `yaml:"http-addr" env:"HTTP_ADDR" env-default:":8080"`
	WebDir            string        `yaml:"web-dir" env:"WEB_DIR" env-default:"./web"`
	DefaultDifficulty string        `yaml:"default-difficulty" env:"DEFAULT_DIFFICULTY" env-default:"easy"`
	AIThinkDelay      time.Duration `yaml:"ai-think-delay" env:"AI_THINK_DELAY" env-default:"150ms"`
	ReconnectGrace    time.Duration `yaml:"reconnect-grace" env:"RECONNECT_GRACE" env-default:"60s"`
	Auth              Auth          `yaml:"auth"`
	Redis             Redis         `yaml:"redis"`
	Telemetry         Telemetry     `yaml:"telemetry"`
}

type Auth struct {
	Secret   string        `yaml:"secret" env:"AUTH_SECRET" env-default:"change-me"`
	TokenTTL time.Duration `yaml:"token-ttl" env:"AUTH_TOKEN_TTL" env-default:"24h"`
}

// Redis is optional. An empty address turns event publishing off.
type Redis struct {
	Addr string `yaml:"addr" env:"REDIS_CONNSTRING"`
}

// Telemetry export is off when Endpoint is empty.
type Telemetry struct {
	Endpoint       string `yaml:"endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName    string `yaml:"service-name" env:"OTEL_SERVICE_NAME" env-default:"tic-tac-toe-ai"`
	ServiceVersion string `yaml:"service-version" env:"SERVICE_VERSION" env-default:"v0.1.0"`
	StdoutTraces   bool   `yaml:"stdout-traces" env:"OTEL_STDOUT_TRACES"`
}

// Load reads the YAML file at path, if any, and overlays environment variables.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, cfg)
	} else {
		err = cleanenv.ReadEnv(cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MustLoad - load configuration or panic.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Difficulty returns the parsed default difficulty.
func (c *Config) Difficulty() bot.Difficulty {
	d, err := bot.ParseDifficulty(c.DefaultDifficulty)
	if err != nil {
		return bot.DefaultDifficulty
	}
	return d
}

func (c *Config) validate() error {
	if _, err := bot.ParseDifficulty(c.DefaultDifficulty); err != nil {
		return fmt.Errorf("invalid default-difficulty: %w", err)
	}
	if c.Auth.Secret == "" {
		return ErrMissingSecret
	}
	if c.AIThinkDelay < 0 {
		return fmt.Errorf("ai-think-delay must not be negative, got %s", c.AIThinkDelay)
	}
	return nil
}

// Usage returns the environment variable help text.
func Usage() string {
	desc, err := cleanenv.GetDescription(&Config{}, nil)
	if err != nil {
		return ""
	}
	return desc
}
