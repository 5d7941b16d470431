package notify

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// ConsoleNotifier prints confirmed codes to stdout. Used by the one-shot
// CLI binary where pushing a real notification would be noise.
type ConsoleNotifier struct {
	logger *zap.Logger
}

// NewConsoleNotifier creates a new console notifier
func NewConsoleNotifier(logger *zap.Logger) *ConsoleNotifier {
	return &ConsoleNotifier{logger: logger}
}

// Notify prints the code and always succeeds
func (n *ConsoleNotifier) Notify(_ context.Context, code string) bool {
	fmt.Printf("CONFIRMED: %s\n", code)
	return true
}
