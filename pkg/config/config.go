package config

import (
	"fmt"
	"net/url"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server        ServerConfig   `yaml:"server" json:"server" jsonschema:"description=HTTP control server configuration"`
	Store         StoreConfig    `yaml:"store" json:"store" jsonschema:"description=Feed store configuration"`
	Schedule      ScheduleConfig `yaml:"schedule" json:"schedule" jsonschema:"description=Scheduler configuration"`
	Telegram      TelegramConfig `yaml:"telegram" json:"telegram" jsonschema:"description=Telegram bot configuration"`
	Webhook       WebhookConfig  `yaml:"webhook" json:"webhook" jsonschema:"description=Webhook destinations"`
	DefaultSender string         `yaml:"default_sender" json:"default_sender" jsonschema:"default=log,enum=log,enum=telegram,enum=webhook,description=Sender for destinations without tg: or hook: prefix"`
}

// ServerConfig holds http server settings
type ServerConfig struct {
	Listen       string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
	Timeout      time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	AuthPassword string        `yaml:"auth_password" json:"auth_password" jsonschema:"description=Basic auth password for mutating api calls (user autofeed)"`
}

// StoreConfig holds feed store settings
type StoreConfig struct {
	Driver string `yaml:"driver" json:"driver" jsonschema:"default=json,enum=json,enum=sqlite,description=Store backend"`
	Path   string `yaml:"path" json:"path" jsonschema:"default=feeds.json,description=JSON document or sqlite file location"`
}

// ScheduleConfig holds scheduler settings
type ScheduleConfig struct {
	Unit            time.Duration `yaml:"unit" json:"unit" jsonschema:"default=1m,description=Duration of one interval minute (shorten for demos)"`
	DeliveryTimeout time.Duration `yaml:"delivery_timeout" json:"delivery_timeout" jsonschema:"default=30s,description=Timeout of a single delivery"`
}

// TelegramConfig holds telegram bot settings
type TelegramConfig struct {
	Token   string        `yaml:"token" json:"token" jsonschema:"description=Bot token (can use environment variable)"`
	OwnerID int64         `yaml:"owner_id" json:"owner_id" jsonschema:"description=Telegram user allowed to run mutating commands"`
	Rate    int           `yaml:"rate" json:"rate" jsonschema:"default=1,minimum=1,description=Maximum messages per second"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=Long poll timeout"`
}

// WebhookConfig holds named webhook urls
type WebhookConfig struct {
	Timeout time.Duration     `yaml:"timeout" json:"timeout" jsonschema:"default=10s,description=Webhook request timeout"`
	Hooks   map[string]string `yaml:"hooks" json:"hooks,omitempty" jsonschema:"description=Destination name to webhook url"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	setDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// Default returns configuration used when no config file is given
func Default() *Config {
	var cfg Config
	setDefaults(&cfg)
	return &cfg
}

func setDefaults(cfg *Config) {
	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// set defaults for store
	if cfg.Store.Driver == "" {
		cfg.Store.Driver = "json"
	}
	if cfg.Store.Path == "" {
		cfg.Store.Path = "feeds.json"
		if cfg.Store.Driver == "sqlite" {
			cfg.Store.Path = "autofeed.db"
		}
	}

	// set defaults for schedule
	if cfg.Schedule.Unit == 0 {
		cfg.Schedule.Unit = time.Minute
	}
	if cfg.Schedule.DeliveryTimeout == 0 {
		cfg.Schedule.DeliveryTimeout = 30 * time.Second
	}

	// set defaults for senders
	if cfg.Telegram.Rate == 0 {
		cfg.Telegram.Rate = 1
	}
	if cfg.Telegram.Timeout == 0 {
		cfg.Telegram.Timeout = 10 * time.Second
	}
	if cfg.Webhook.Timeout == 0 {
		cfg.Webhook.Timeout = 10 * time.Second
	}
	if cfg.DefaultSender == "" {
		cfg.DefaultSender = "log"
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	if cfg.Store.Driver != "json" && cfg.Store.Driver != "sqlite" {
		return fmt.Errorf("store.driver must be json or sqlite, got %q", cfg.Store.Driver)
	}

	if cfg.Schedule.Unit < time.Second {
		return fmt.Errorf("schedule.unit must be at least 1 second")
	}
	if cfg.Schedule.DeliveryTimeout < time.Second {
		return fmt.Errorf("schedule.delivery_timeout must be at least 1 second")
	}

	if cfg.Telegram.Rate < 1 {
		return fmt.Errorf("telegram.rate must be at least 1")
	}
	for _, name := range cfg.WebhookNames() {
		u, err := url.Parse(cfg.Webhook.Hooks[name])
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("webhook.hooks.%s must be an http(s) url", name)
		}
	}

	switch cfg.DefaultSender {
	case "log":
	case "telegram":
		if cfg.Telegram.Token == "" {
			return fmt.Errorf("telegram.token is required for telegram default sender")
		}
	case "webhook":
		if len(cfg.Webhook.Hooks) == 0 {
			return fmt.Errorf("webhook.hooks can't be empty for webhook default sender")
		}
	default:
		return fmt.Errorf("default_sender must be log, telegram or webhook, got %q", cfg.DefaultSender)
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// WebhookNames returns sorted names of configured webhooks
func (c *Config) WebhookNames() []string {
	res := make([]string, 0, len(c.Webhook.Hooks))
	for name := range c.Webhook.Hooks {
		res = append(res, name)
	}
	sort.Strings(res)
	return res
}

// GetAuthPassword returns basic auth password for mutating api calls, empty means no auth
func (c *Config) GetAuthPassword() string {
	return c.Server.AuthPassword
}
