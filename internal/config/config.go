// Package config loads runtime settings from configs/config.yml, an optional
// .env file and ENVADVISOR_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "ENVADVISOR"

// DefaultVersion is reported by GET /health unless app.version overrides it.
const DefaultVersion = "Free Rule-Based System"

type Config struct {
	Port    string
	Log     LogConfig
	HTTP    HTTPConfig
	App     AppConfig
	Auth    AuthConfig
	Metrics MetricsConfig
	Swagger SwaggerConfig
	WS      WSConfig
}

type LogConfig struct {
	Level  string
	Format string // console | json
}

type HTTPConfig struct {
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
}

type AppConfig struct {
	Version string
}

type AuthConfig struct {
	Enabled    bool
	SigningKey string
	TokenTTL   time.Duration
	Devices    map[string]string // device id -> bcrypt hash
}

type MetricsConfig struct {
	Enabled bool
}

type SwaggerConfig struct {
	Enabled bool
}

type WSConfig struct {
	MaxMessageBytes int64
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "3004")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("http.read_header_timeout", 10*time.Second)
	v.SetDefault("http.write_timeout", 10*time.Second)
	v.SetDefault("http.idle_timeout", 60*time.Second)
	v.SetDefault("app.version", DefaultVersion)
	v.SetDefault("auth.enabled", false)
	v.SetDefault("auth.signing_key", "")
	v.SetDefault("auth.token_ttl", time.Hour)
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("swagger.enabled", true)
	v.SetDefault("ws.max_message_bytes", 4096)
}

// Load reads config.yml from the given directories (default "configs" and
// "."). A missing file or .env is not an error; defaults apply.
func Load(paths ...string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{"configs", "."}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		Port: v.GetString("port"),
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		HTTP: HTTPConfig{
			ReadHeaderTimeout: v.GetDuration("http.read_header_timeout"),
			WriteTimeout:      v.GetDuration("http.write_timeout"),
			IdleTimeout:       v.GetDuration("http.idle_timeout"),
		},
		App: AppConfig{Version: v.GetString("app.version")},
		Auth: AuthConfig{
			Enabled:    v.GetBool("auth.enabled"),
			SigningKey: v.GetString("auth.signing_key"),
			TokenTTL:   v.GetDuration("auth.token_ttl"),
			Devices:    v.GetStringMapString("auth.devices"),
		},
		Metrics: MetricsConfig{Enabled: v.GetBool("metrics.enabled")},
		Swagger: SwaggerConfig{Enabled: v.GetBool("swagger.enabled")},
		WS:      WSConfig{MaxMessageBytes: v.GetInt64("ws.max_message_bytes")},
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return errors.New("port must not be empty")
	}
	if c.Auth.Enabled && strings.TrimSpace(c.Auth.SigningKey) == "" {
		return errors.New("auth.signing_key is required when auth.enabled is true")
	}
	if c.WS.MaxMessageBytes <= 0 {
		return fmt.Errorf("ws.max_message_bytes must be positive, got %d", c.WS.MaxMessageBytes)
	}
	return nil
}
