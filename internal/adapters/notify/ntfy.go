package notify

import (
	"context"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// NtfyNotifier delivers a one-line alert per code by posting it to an
// ntfy.sh topic
type NtfyNotifier struct {
	client   *resty.Client
	logger   *zap.Logger
	topicURL string
	title    string
}

// NewNtfyNotifier creates a new ntfy.sh notifier
func NewNtfyNotifier(topicURL, title string, timeout time.Duration, logger *zap.Logger) *NtfyNotifier {
	if !strings.HasPrefix(topicURL, "http://") && !strings.HasPrefix(topicURL, "https://") {
		topicURL = "https://" + topicURL
	}

	return &NtfyNotifier{
		client:   resty.New().SetTimeout(timeout),
		logger:   logger,
		topicURL: topicURL,
		title:    title,
	}
}

// Notify posts the code to the configured topic. Best effort: any failure
// is logged and reported as false.
func (n *NtfyNotifier) Notify(ctx context.Context, code string) bool {
	n.logger.Info("Sending ntfy notification",
		zap.String("code", code),
		zap.String("topic", n.topicURL))

	resp, err := n.client.R().
		SetContext(ctx).
		SetHeader("Title", n.title).
		SetBody(code).
		Post(n.topicURL)
	if err != nil {
		n.logger.Error("Failed to send ntfy notification",
			zap.String("code", code),
			zap.Error(err))
		return false
	}
	if resp.IsError() {
		n.logger.Error("Ntfy notification returned error status",
			zap.String("code", code),
			zap.Int("status", resp.StatusCode()))
		return false
	}

	n.logger.Info("Successfully notified",
		zap.String("code", code),
		zap.Int("status", resp.StatusCode()))
	return true
}
