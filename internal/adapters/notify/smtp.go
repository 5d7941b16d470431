package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	"go.uber.org/zap"
)

// SMTPNotifier delivers a one-line alert per code as an email
type SMTPNotifier struct {
	logger   *zap.Logger
	addr     string
	from     string
	to       []string
	username string
	password string
	subject  string
}

// NewSMTPNotifier creates a new SMTP notifier
func NewSMTPNotifier(addr, from string, to []string, username, password, subject string, logger *zap.Logger) (*SMTPNotifier, error) {
	if from == "" || len(to) == 0 {
		return nil, fmt.Errorf("smtp notifier requires from and to addresses")
	}

	return &SMTPNotifier{
		logger:   logger,
		addr:     addr,
		from:     from,
		to:       to,
		username: username,
		password: password,
		subject:  subject,
	}, nil
}

// Notify sends the code as a one-line email. Best effort: any failure is
// logged and reported as false.
func (n *SMTPNotifier) Notify(_ context.Context, code string) bool {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		n.from, strings.Join(n.to, ", "), n.subject, code)

	var auth sasl.Client
	if n.username != "" {
		auth = sasl.NewPlainClient("", n.username, n.password)
	}

	if err := smtp.SendMail(n.addr, auth, n.from, n.to, strings.NewReader(msg)); err != nil {
		n.logger.Error("Failed to send email notification",
			zap.String("code", code),
			zap.Error(err))
		return false
	}

	n.logger.Info("Successfully notified via email", zap.String("code", code))
	return true
}
