package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Fulfillment platforms
	Webhook WebhookConfig
	Alexa   AlexaConfig

	// Local tunnel discovery
	Ngrok NgrokConfig
}

type EnvironmentConfig struct {
	Name string `validate:"oneof=development staging production"`
}

type HTTPServerConfig struct {
	Port            int           `validate:"min=1,max=65535"`
	Mode            string        `validate:"oneof=debug release test"`
	ShutdownTimeout time.Duration `validate:"min=1s"`
}

type LoggerConfig struct {
	Level        string `validate:"oneof=debug info warn error dpanic panic fatal"`
	Mode         string `validate:"oneof=debug development production"`
	Encoding     string `validate:"oneof=console json"`
	ColorEnabled bool
}

type WebhookConfig struct {
	BasicAuthUsername       string
	BasicAuthHashedPassword string `validate:"required_with=BasicAuthUsername"`
	Secret                  string
	AllowedIPs              []string `validate:"dive,ip|cidr"`
	TrustedProxies          []string `validate:"dive,ip|cidr"`
	RateLimitPerMin         int      `validate:"min=0"`
}

type AlexaConfig struct {
	Enabled       bool
	ApplicationID string
}

type NgrokConfig struct {
	APIURL string `validate:"omitempty,url"`
}

// Load loads configuration using Viper.
// A .env file in the working directory is applied to the environment first.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return load(v)
}

// load reads every key from v, applies env overrides and validates.
func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = v.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Webhooks
	cfg.Webhook.BasicAuthUsername = v.GetString("webhook.basic_auth_username")
	cfg.Webhook.BasicAuthHashedPassword = v.GetString("webhook.basic_auth_hashed_password")
	cfg.Webhook.Secret = v.GetString("webhook.secret")
	cfg.Webhook.RateLimitPerMin = v.GetInt("webhook.rate_limit_per_min")
	// Env values arrive as one comma-separated string, YAML as a list.
	cfg.Webhook.AllowedIPs = splitList(v.GetStringSlice("webhook.allowed_ips"))
	cfg.Webhook.TrustedProxies = splitList(v.GetStringSlice("webhook.trusted_proxies"))

	// Alexa
	cfg.Alexa.Enabled = v.GetBool("alexa.enabled")
	cfg.Alexa.ApplicationID = v.GetString("alexa.application_id")

	cfg.Ngrok.APIURL = v.GetString("ngrok.api_url")

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.shutdown_timeout", "10s")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("webhook.rate_limit_per_min", 60)
	v.SetDefault("alexa.enabled", true)
}

func splitList(values []string) []string {
	var out []string
	for _, value := range values {
		for _, item := range strings.Split(value, ",") {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
	}
	return out
}
