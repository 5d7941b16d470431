package di

import (
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/mikey/tacticus-code-watch/internal/adapters/poller"
	"github.com/mikey/tacticus-code-watch/internal/config"
	"github.com/mikey/tacticus-code-watch/internal/core"
	"github.com/mikey/tacticus-code-watch/internal/factory"
	"github.com/mikey/tacticus-code-watch/internal/logging"
	"github.com/mikey/tacticus-code-watch/internal/ports"
	"github.com/mikey/tacticus-code-watch/internal/trust"
	"github.com/mikey/tacticus-code-watch/internal/utils"
)

// BuildContainer creates and configures a dependency injection container
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	// Register configuration
	if err := container.Provide(config.New); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(logging.InitLogger); err != nil {
		return nil, err
	}

	// Register text processor
	if err := container.Provide(utils.NewTextProcessor); err != nil {
		return nil, err
	}

	// Register factories
	if err := container.Provide(factory.NewSourceFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewLedgerFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewNotifierFactory); err != nil {
		return nil, err
	}

	// Register post source
	if err := container.Provide(func(f *factory.SourceFactory) (core.PostSource, error) {
		return f.CreateSource()
	}); err != nil {
		return nil, err
	}

	// Register code ledger
	if err := container.Provide(func(f *factory.LedgerFactory) (core.CodeLedger, error) {
		return f.CreateLedger()
	}); err != nil {
		return nil, err
	}

	// Register notifier
	if err := container.Provide(func(f *factory.NotifierFactory) (core.Notifier, error) {
		return f.CreateNotifier()
	}); err != nil {
		return nil, err
	}

	// Register token extractor
	if err := container.Provide(func(cfg *config.Config, logger *zap.Logger) (*core.Extractor, error) {
		patterns := cfg.GetPatterns()
		return core.NewExtractor(patterns.CandidateCode, patterns.ReferralCode, cfg.GetFilter().IgnoredWords, logger)
	}); err != nil {
		return nil, err
	}

	// Register body hint classifier
	if err := container.Provide(func(cfg *config.Config, logger *zap.Logger) (*core.BodyHintClassifier, error) {
		return core.NewBodyHintClassifier(cfg.GetPatterns().BodyHints, logger)
	}); err != nil {
		return nil, err
	}

	// Register post filter
	if err := container.Provide(func(cfg *config.Config, logger *zap.Logger) (*core.PostFilter, error) {
		redditCfg, err := cfg.GetReddit()
		if err != nil {
			return nil, err
		}
		allowed := make(map[string][]string, len(redditCfg.Subreddits))
		for name, sub := range redditCfg.Subreddits {
			allowed[name] = sub.AllowedFlairs
		}
		return core.NewPostFilter(allowed, logger), nil
	}); err != nil {
		return nil, err
	}

	// Register trusted author checker
	if err := container.Provide(func(cfg *config.Config, logger *zap.Logger) core.TrustChecker {
		return trust.NewChecker(cfg.GetFilter().TrustedUsers, logger)
	}); err != nil {
		return nil, err
	}

	// Register confirmation threshold
	if err := container.Provide(func(cfg *config.Config) int {
		return cfg.GetFilter().ConfirmationThreshold
	}); err != nil {
		return nil, err
	}

	// Register watch service
	if err := container.Provide(core.NewWatchService); err != nil {
		return nil, err
	}

	// Register poll loop runner
	if err := container.Provide(func(svc *core.WatchService, cfg *config.Config, logger *zap.Logger) (ports.Runner, error) {
		appCfg, err := cfg.GetApp()
		if err != nil {
			return nil, err
		}
		return poller.New(svc, appCfg.FetchInterval, logger), nil
	}); err != nil {
		return nil, err
	}

	return container, nil
}
