package reddit

import (
	"context"

	"go.uber.org/zap"

	"github.com/mikey/tacticus-code-watch/internal/core"
)

// FallbackSource tries a primary post source and falls back to a secondary
// one when the primary fails. Both sides expose the same normalized posts,
// so everything downstream is transport-agnostic.
type FallbackSource struct {
	primary   core.PostSource
	secondary core.PostSource
	logger    *zap.Logger
}

// NewFallbackSource creates a new fallback-chaining source
func NewFallbackSource(primary, secondary core.PostSource, logger *zap.Logger) *FallbackSource {
	return &FallbackSource{
		primary:   primary,
		secondary: secondary,
		logger:    logger,
	}
}

// Fetch returns posts from the primary source, or from the secondary source
// when the primary fails
func (s *FallbackSource) Fetch(ctx context.Context) ([]core.Post, error) {
	posts, err := s.primary.Fetch(ctx)
	if err == nil {
		return posts, nil
	}

	s.logger.Warn("Primary post source failed, falling back", zap.Error(err))
	return s.secondary.Fetch(ctx)
}
