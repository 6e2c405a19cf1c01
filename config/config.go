package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
)

const (
	StorageDriverFile   = "file"
	StorageDriverMemory = "memory"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Calendar Pro specifics
	Storage        StorageConfig
	Calendar       CalendarConfig
	Notify         NotifyConfig
	Reminder       ReminderConfig
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	RateLimitPerMin int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// StorageConfig selects where the four persisted keys live.
type StorageConfig struct {
	Driver    string // file | memory
	Dir       string
	Namespace string
	CacheSize int
}

type CalendarConfig struct {
	Timezone         string
	UpcomingDays     int
	MaxVisibleEvents int
	PendingTaskLimit int
}

type NotifyConfig struct {
	TTL      time.Duration
	Capacity int
}

type ReminderConfig struct {
	Enabled    bool
	Cron       string
	WindowDays int
}

// GoogleCalendarConfig enables publishing when CredentialsPath is set.
type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/calendar-pro/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/calendar-pro/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.RateLimitPerMin = v.GetInt("http_server.rate_limit_per_min")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Storage
	cfg.Storage.Driver = strings.ToLower(v.GetString("storage.driver"))
	cfg.Storage.Dir = v.GetString("storage.dir")
	cfg.Storage.Namespace = v.GetString("storage.namespace")
	cfg.Storage.CacheSize = v.GetInt("storage.cache_size")

	// Calendar
	cfg.Calendar.Timezone = v.GetString("calendar.timezone")
	cfg.Calendar.UpcomingDays = v.GetInt("calendar.upcoming_days")
	cfg.Calendar.MaxVisibleEvents = v.GetInt("calendar.max_visible_events")
	cfg.Calendar.PendingTaskLimit = v.GetInt("calendar.pending_task_limit")

	// Notifications & reminder
	cfg.Notify.TTL = v.GetDuration("notify.ttl")
	cfg.Notify.Capacity = v.GetInt("notify.capacity")
	cfg.Reminder.Enabled = v.GetBool("reminder.enabled")
	cfg.Reminder.Cron = v.GetString("reminder.cron")
	cfg.Reminder.WindowDays = v.GetInt("reminder.window_days")

	cfg.GoogleCalendar.CredentialsPath = v.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = v.GetString("google_calendar.calendar_id")
	if googleCreds := v.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.rate_limit_per_min", 120)
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("storage.driver", StorageDriverFile)
	v.SetDefault("storage.dir", "./data")
	v.SetDefault("storage.namespace", "calendar")
	v.SetDefault("storage.cache_size", 64)

	v.SetDefault("calendar.timezone", "Local")
	v.SetDefault("calendar.upcoming_days", 7)
	v.SetDefault("calendar.max_visible_events", 2)
	v.SetDefault("calendar.pending_task_limit", 5)

	v.SetDefault("notify.ttl", "3s")
	v.SetDefault("notify.capacity", 64)

	v.SetDefault("reminder.enabled", false)
	v.SetDefault("reminder.cron", "0 8 * * *")
	v.SetDefault("reminder.window_days", 7)

	v.SetDefault("google_calendar.credentials_path", "")
	v.SetDefault("google_calendar.calendar_id", "primary")
}

// Validate checks the values Load cannot default away.
func (c *Config) Validate() error {
	if c.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be positive, got %d", c.HTTPServer.Port)
	}
	if c.HTTPServer.RateLimitPerMin < 0 {
		return fmt.Errorf("http_server.rate_limit_per_min must not be negative")
	}

	switch c.Storage.Driver {
	case StorageDriverFile:
		if c.Storage.Dir == "" {
			return errors.New("storage.dir is required for the file driver")
		}
	case StorageDriverMemory:
	default:
		return fmt.Errorf("storage.driver must be %q or %q, got %q", StorageDriverFile, StorageDriverMemory, c.Storage.Driver)
	}
	if c.Storage.Namespace == "" {
		return errors.New("storage.namespace is required")
	}
	if c.Storage.CacheSize <= 0 {
		return errors.New("storage.cache_size must be positive")
	}

	if c.Calendar.UpcomingDays <= 0 || c.Calendar.MaxVisibleEvents <= 0 || c.Calendar.PendingTaskLimit <= 0 {
		return errors.New("calendar.upcoming_days, max_visible_events and pending_task_limit must be positive")
	}
	if c.Calendar.Timezone != "" {
		if _, err := time.LoadLocation(c.Calendar.Timezone); err != nil {
			return fmt.Errorf("calendar.timezone: %w", err)
		}
	}

	if c.Notify.TTL <= 0 || c.Notify.Capacity <= 0 {
		return errors.New("notify.ttl and notify.capacity must be positive")
	}

	if c.Reminder.Enabled {
		if _, err := cron.ParseStandard(c.Reminder.Cron); err != nil {
			return fmt.Errorf("reminder.cron: %w", err)
		}
		if c.Reminder.WindowDays <= 0 {
			return errors.New("reminder.window_days must be positive")
		}
	}
	return nil
}
