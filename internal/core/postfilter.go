package core

import (
	"go.uber.org/zap"
)

// PostFilter accepts or rejects a post based on its subreddit flair against
// a per-subreddit allow-list. Posts from subreddits that are not configured
// are never processed.
type PostFilter struct {
	allowed map[string]map[string]struct{}
	logger  *zap.Logger
}

// NewPostFilter builds a filter from the per-subreddit allowed flair lists.
// An empty flair list means every flair is accepted for that subreddit.
func NewPostFilter(allowedFlairs map[string][]string, logger *zap.Logger) *PostFilter {
	allowed := make(map[string]map[string]struct{}, len(allowedFlairs))
	for subreddit, flairs := range allowedFlairs {
		set := make(map[string]struct{}, len(flairs))
		for _, flair := range flairs {
			set[flair] = struct{}{}
		}
		allowed[subreddit] = set
	}

	return &PostFilter{
		allowed: allowed,
		logger:  logger,
	}
}

// IsAccepted reports whether the post passes the flair allow-list
func (f *PostFilter) IsAccepted(post Post) bool {
	flairs, ok := f.allowed[post.Subreddit]
	if !ok {
		f.logger.Debug("Skipping post from unknown subreddit",
			zap.String("post_id", post.ID),
			zap.String("subreddit", post.Subreddit))
		return false
	}

	// Empty allow-list accepts every flair, including posts with none
	if len(flairs) == 0 {
		return true
	}

	if _, ok := flairs[post.Flair]; !ok {
		f.logger.Debug("Skipping post with disallowed flair",
			zap.String("post_id", post.ID),
			zap.String("subreddit", post.Subreddit),
			zap.String("flair", post.Flair))
		return false
	}

	return true
}
