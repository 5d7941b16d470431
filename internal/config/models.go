package config

import (
	"fmt"
	"time"
)

// RedditConfig represents the configuration for the Reddit transports
type RedditConfig struct {
	ClientID       string
	ClientSecret   string
	UserAgent      string
	RequestTimeout time.Duration
	Subreddits     map[string]SubredditConfig
}

// SubredditConfig represents the per-subreddit filtering rules
type SubredditConfig struct {
	AllowedFlairs []string `mapstructure:"allowed_flairs"`
}

// AppConfig represents the polling loop configuration
type AppConfig struct {
	FetchInterval time.Duration
	PostLimit     int
	MaxBodySize   int
}

// NotifyConfig represents the notification configuration
type NotifyConfig struct {
	Type    string
	Title   string
	Timeout time.Duration
	Ntfy    NtfyConfig
	SMTP    SMTPConfig
}

// NtfyConfig represents the ntfy.sh delivery channel
type NtfyConfig struct {
	TopicURL string
}

// SMTPConfig represents the SMTP delivery channel
type SMTPConfig struct {
	Addr     string
	From     string
	To       []string
	Username string
	Password string
}

// LedgerConfig represents the notified-code ledger configuration
type LedgerConfig struct {
	Type       string
	FilePath   string
	SQLitePath string
	MySQLDSN   string
}

// FilterConfig represents the trust and noise filtering configuration
type FilterConfig struct {
	TrustedUsers          []string
	IgnoredWords          []string
	ConfirmationThreshold int
}

// PatternsConfig represents the extraction pattern assets
type PatternsConfig struct {
	CandidateCode string
	ReferralCode  string
	BodyHints     []string
}

// GetReddit returns the Reddit configuration
func (c *Config) GetReddit() (RedditConfig, error) {
	timeout, err := c.GetDuration("reddit.request_timeout")
	if err != nil {
		return RedditConfig{}, fmt.Errorf("invalid reddit request timeout: %w", err)
	}

	subreddits := make(map[string]SubredditConfig)
	if err := c.v.UnmarshalKey("reddit.subreddits", &subreddits); err != nil {
		return RedditConfig{}, fmt.Errorf("invalid subreddit configuration: %w", err)
	}

	return RedditConfig{
		ClientID:       c.GetString("reddit.client_id"),
		ClientSecret:   c.GetString("reddit.client_secret"),
		UserAgent:      c.GetString("reddit.user_agent"),
		RequestTimeout: timeout,
		Subreddits:     subreddits,
	}, nil
}

// GetApp returns the polling loop configuration
func (c *Config) GetApp() (AppConfig, error) {
	interval, err := c.GetDuration("application.fetch_interval")
	if err != nil {
		return AppConfig{}, fmt.Errorf("invalid fetch interval: %w", err)
	}

	return AppConfig{
		FetchInterval: interval,
		PostLimit:     c.GetInt("application.post_limit"),
		MaxBodySize:   c.GetInt("application.max_body_size"),
	}, nil
}

// GetNotify returns the notification configuration
func (c *Config) GetNotify() (NotifyConfig, error) {
	timeout, err := c.GetDuration("notifications.timeout")
	if err != nil {
		return NotifyConfig{}, fmt.Errorf("invalid notification timeout: %w", err)
	}

	return NotifyConfig{
		Type:    c.GetString("notifications.type"),
		Title:   c.GetString("notifications.title"),
		Timeout: timeout,
		Ntfy: NtfyConfig{
			TopicURL: c.GetString("notifications.ntfy.topic_url"),
		},
		SMTP: SMTPConfig{
			Addr:     c.GetString("notifications.smtp.addr"),
			From:     c.GetString("notifications.smtp.from"),
			To:       c.GetStringSlice("notifications.smtp.to"),
			Username: c.GetString("notifications.smtp.username"),
			Password: c.GetString("notifications.smtp.password"),
		},
	}, nil
}

// GetLedger returns the ledger configuration
func (c *Config) GetLedger() LedgerConfig {
	return LedgerConfig{
		Type:       c.GetString("ledger.type"),
		FilePath:   c.GetString("ledger.file_path"),
		SQLitePath: c.GetString("ledger.sqlite_path"),
		MySQLDSN:   c.GetString("ledger.mysql_dsn"),
	}
}

// GetFilter returns the trust and noise filtering configuration
func (c *Config) GetFilter() FilterConfig {
	return FilterConfig{
		TrustedUsers:          c.GetStringSlice("filtering.trusted_users"),
		IgnoredWords:          c.GetStringSlice("filtering.ignored_words"),
		ConfirmationThreshold: c.GetInt("filtering.confirmation_threshold"),
	}
}

// GetPatterns returns the extraction pattern assets
func (c *Config) GetPatterns() PatternsConfig {
	return PatternsConfig{
		CandidateCode: c.GetString("patterns.candidate_code"),
		ReferralCode:  c.GetString("patterns.referral_code"),
		BodyHints:     c.GetStringSlice("patterns.body_hints"),
	}
}
