package factory

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mikey/tacticus-code-watch/internal/adapters/notify"
	"github.com/mikey/tacticus-code-watch/internal/config"
	"github.com/mikey/tacticus-code-watch/internal/core"
)

// NotifierFactory creates notifiers based on configuration
type NotifierFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewNotifierFactory creates a new notifier factory
func NewNotifierFactory(cfg *config.Config, logger *zap.Logger) *NotifierFactory {
	return &NotifierFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateNotifier creates a notifier based on the configuration
func (f *NotifierFactory) CreateNotifier() (core.Notifier, error) {
	notifyCfg, err := f.cfg.GetNotify()
	if err != nil {
		return nil, err
	}

	switch notifyCfg.Type {
	case "ntfy":
		if notifyCfg.Ntfy.TopicURL == "" {
			return nil, fmt.Errorf("ntfy notifier requires notifications.ntfy.topic_url")
		}
		return notify.NewNtfyNotifier(notifyCfg.Ntfy.TopicURL, notifyCfg.Title, notifyCfg.Timeout, f.logger), nil
	case "smtp":
		return notify.NewSMTPNotifier(
			notifyCfg.SMTP.Addr,
			notifyCfg.SMTP.From,
			notifyCfg.SMTP.To,
			notifyCfg.SMTP.Username,
			notifyCfg.SMTP.Password,
			notifyCfg.Title,
			f.logger,
		)
	case "console":
		return notify.NewConsoleNotifier(f.logger), nil
	default:
		return nil, fmt.Errorf("unsupported notifier type: %s", notifyCfg.Type)
	}
}
