package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/mikey/tacticus-code-watch/internal/config"
	"github.com/mikey/tacticus-code-watch/internal/core"
	"github.com/mikey/tacticus-code-watch/internal/di"
	"github.com/mikey/tacticus-code-watch/internal/ports"
)

func main() {
	// Build the dependency injection container
	container, err := di.BuildContainer()
	if err != nil {
		fmt.Printf("Failed to build dependency container: %v\n", err)
		os.Exit(1)
	}

	// Run the application
	if err := container.Invoke(run); err != nil {
		fmt.Printf("Application error: %v\n", err)
		os.Exit(1)
	}
}

// run is the main application function that gets all dependencies injected
func run(
	logger *zap.Logger,
	cfg *config.Config,
	runner ports.Runner,
	codeLedger core.CodeLedger,
) error {
	defer logger.Sync()

	logStartupSummary(logger, cfg)

	// Start the poll loop
	if err := runner.Start(); err != nil {
		logger.Fatal("Failed to start poller", zap.Error(err))
		return err
	}

	// Handle graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	<-sigCh
	logger.Info("Shutting down...")

	// Stop the poll loop, abandoning the in-flight cycle cleanly
	if err := runner.Stop(); err != nil {
		logger.Error("Failed to stop poller", zap.Error(err))
	}

	// Close the ledger if it holds resources
	if stopper, ok := codeLedger.(interface{ Stop() }); ok {
		stopper.Stop()
	}

	logger.Info("Shutdown complete")
	return nil
}

// logStartupSummary logs what is being monitored and under which rules
func logStartupSummary(logger *zap.Logger, cfg *config.Config) {
	logger.Info("Tacticus code watch started")

	redditCfg, err := cfg.GetReddit()
	if err != nil {
		logger.Warn("Could not summarize reddit configuration", zap.Error(err))
		return
	}

	for subreddit, sub := range redditCfg.Subreddits {
		if len(sub.AllowedFlairs) > 0 {
			logger.Info("Monitoring subreddit",
				zap.String("subreddit", subreddit),
				zap.Strings("allowed_flairs", sub.AllowedFlairs))
		} else {
			logger.Info("Monitoring subreddit, all flairs allowed",
				zap.String("subreddit", subreddit))
		}
	}

	if trusted := cfg.GetFilter().TrustedUsers; len(trusted) > 0 {
		logger.Info("Trusted users configured", zap.Strings("users", trusted))
	}
}
