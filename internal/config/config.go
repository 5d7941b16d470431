package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	v *viper.Viper
}

// New creates a new configuration instance
func New() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("/etc/tacticus-code-watch/")
	v.AddConfigPath("$HOME/.tacticus-code-watch")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	// Set defaults
	setDefaults(v)

	// Environment variables
	v.AutomaticEnv()
	v.SetEnvPrefix("CODE_WATCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found, using defaults
	}

	return &Config{v: v}, nil
}

// NewFromViper creates a new configuration instance from an existing Viper instance
func NewFromViper(v *viper.Viper) *Config {
	return &Config{v: v}
}

// NewEmptyViper creates a new Viper instance with defaults
func NewEmptyViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	return v
}

// setDefaults sets the default configuration values
func setDefaults(v *viper.Viper) {
	// Reddit defaults
	v.SetDefault("reddit.client_id", "")
	v.SetDefault("reddit.client_secret", "")
	v.SetDefault("reddit.user_agent", "tacticus-code-watch/1.0")
	v.SetDefault("reddit.request_timeout", "15s")

	// Application defaults
	v.SetDefault("application.fetch_interval", "5m")
	v.SetDefault("application.post_limit", 25)
	v.SetDefault("application.max_body_size", 8192)

	// Notification defaults
	v.SetDefault("notifications.type", "ntfy")
	v.SetDefault("notifications.title", "New Tacticus Code!")
	v.SetDefault("notifications.timeout", "10s")
	v.SetDefault("notifications.ntfy.topic_url", "")
	v.SetDefault("notifications.smtp.addr", "localhost:587")
	v.SetDefault("notifications.smtp.from", "")
	v.SetDefault("notifications.smtp.to", []string{})
	v.SetDefault("notifications.smtp.username", "")
	v.SetDefault("notifications.smtp.password", "")

	// Ledger defaults
	v.SetDefault("ledger.type", "file")
	v.SetDefault("ledger.file_path", "notified_codes.txt")
	v.SetDefault("ledger.sqlite_path", "/data/notified_codes.db")
	v.SetDefault("ledger.mysql_dsn", "user:password@tcp(localhost:3306)/code_watch")

	// Filtering defaults
	v.SetDefault("filtering.trusted_users", []string{})
	v.SetDefault("filtering.ignored_words", defaultIgnoredWords)
	v.SetDefault("filtering.confirmation_threshold", 2)

	// Pattern defaults
	v.SetDefault("patterns.candidate_code", defaultCandidatePattern)
	v.SetDefault("patterns.referral_code", defaultReferralPattern)
	v.SetDefault("patterns.body_hints", defaultBodyHintPatterns)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.file", "")
}

// GetString gets a string value from the configuration
func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

// GetInt gets an integer value from the configuration
func (c *Config) GetInt(key string) int {
	return c.v.GetInt(key)
}

// GetBool gets a boolean value from the configuration
func (c *Config) GetBool(key string) bool {
	return c.v.GetBool(key)
}

// GetStringSlice gets a string slice value from the configuration
func (c *Config) GetStringSlice(key string) []string {
	return c.v.GetStringSlice(key)
}

// GetStringMap gets a string map value from the configuration
func (c *Config) GetStringMap(key string) map[string]interface{} {
	return c.v.GetStringMap(key)
}

// GetDuration gets a duration value from the configuration
func (c *Config) GetDuration(key string) (time.Duration, error) {
	return time.ParseDuration(c.GetString(key))
}

// GetViper returns the underlying Viper instance
func (c *Config) GetViper() *viper.Viper {
	return c.v
}
