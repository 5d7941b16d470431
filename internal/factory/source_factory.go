package factory

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mikey/tacticus-code-watch/internal/adapters/reddit"
	"github.com/mikey/tacticus-code-watch/internal/config"
	"github.com/mikey/tacticus-code-watch/internal/core"
	"github.com/mikey/tacticus-code-watch/internal/utils"
)

// SourceFactory creates post sources
type SourceFactory struct {
	cfg    *config.Config
	logger *zap.Logger
	text   *utils.TextProcessor
}

// NewSourceFactory creates a new source factory
func NewSourceFactory(cfg *config.Config, logger *zap.Logger, text *utils.TextProcessor) *SourceFactory {
	return &SourceFactory{
		cfg:    cfg,
		logger: logger,
		text:   text,
	}
}

// CreateSource builds the post source: authenticated API transport with a
// public-listing fallback when credentials are configured, public listings
// alone otherwise.
func (f *SourceFactory) CreateSource() (core.PostSource, error) {
	redditCfg, err := f.cfg.GetReddit()
	if err != nil {
		return nil, err
	}
	appCfg, err := f.cfg.GetApp()
	if err != nil {
		return nil, err
	}

	subreddits := make([]string, 0, len(redditCfg.Subreddits))
	for name := range redditCfg.Subreddits {
		subreddits = append(subreddits, name)
	}
	if len(subreddits) == 0 {
		return nil, fmt.Errorf("no subreddits configured")
	}

	public, err := reddit.NewPublicSource(
		redditCfg.UserAgent,
		subreddits,
		appCfg.PostLimit,
		appCfg.MaxBodySize,
		redditCfg.RequestTimeout,
		f.text,
		f.logger,
	)
	if err != nil {
		return nil, err
	}

	if redditCfg.ClientID == "" || redditCfg.ClientSecret == "" {
		f.logger.Warn("Reddit API credentials not configured, using public listings only")
		return public, nil
	}

	api, err := reddit.NewAPISource(
		redditCfg.ClientID,
		redditCfg.ClientSecret,
		redditCfg.UserAgent,
		subreddits,
		appCfg.PostLimit,
		appCfg.MaxBodySize,
		redditCfg.RequestTimeout,
		f.text,
		f.logger,
	)
	if err != nil {
		return nil, err
	}

	return reddit.NewFallbackSource(api, public, f.logger), nil
}
