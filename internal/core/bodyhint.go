package core

import (
	"fmt"
	"regexp"

	"go.uber.org/zap"
)

// BodyHintClassifier decides from a post title alone whether the post body
// should also be scanned for codes. Bodies are longer and noisier than
// titles, so the second pass only runs when the title uses a recognizable
// "code is elsewhere" phrasing.
type BodyHintClassifier struct {
	patterns []*regexp.Regexp
	logger   *zap.Logger
}

// NewBodyHintClassifier compiles the hint phrase patterns. Evaluation order
// follows the order given here.
func NewBodyHintClassifier(patterns []string, logger *zap.Logger) (*BodyHintClassifier, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid body hint pattern %q: %w", pattern, err)
		}
		compiled = append(compiled, re)
	}

	return &BodyHintClassifier{
		patterns: compiled,
		logger:   logger,
	}, nil
}

// ShouldScanBody reports whether the title hints that the code is stated in
// the post body. Short-circuits on the first matching pattern.
func (c *BodyHintClassifier) ShouldScanBody(title string) bool {
	if title == "" {
		return false
	}

	for _, pattern := range c.patterns {
		if pattern.MatchString(title) {
			c.logger.Debug("Title matches body hint pattern",
				zap.String("title", title),
				zap.String("pattern", pattern.String()))
			return true
		}
	}

	return false
}
