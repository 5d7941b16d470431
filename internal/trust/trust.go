package trust

import (
	"strings"

	"go.uber.org/zap"
)

// Checker reports whether a post author is in the trusted set. Codes from
// trusted authors bypass the repetition-based confirmation requirement.
type Checker struct {
	authors map[string]struct{}
	logger  *zap.Logger
}

// NewChecker creates a new trusted-author checker
func NewChecker(authors []string, logger *zap.Logger) *Checker {
	normalized := make(map[string]struct{}, len(authors))
	for _, author := range authors {
		author = strings.TrimSpace(author)
		if author == "" {
			continue
		}
		normalized[author] = struct{}{}
	}

	if len(normalized) > 0 && logger != nil {
		names := make([]string, 0, len(normalized))
		for author := range normalized {
			names = append(names, author)
		}
		logger.Info("Initialized trusted author checker", zap.Strings("authors", names))
	}

	return &Checker{
		authors: normalized,
		logger:  logger,
	}
}

// IsTrusted checks if the author is in the trusted set
func (c *Checker) IsTrusted(author string) bool {
	if len(c.authors) == 0 {
		return false
	}

	_, ok := c.authors[author]
	if ok && c.logger != nil {
		c.logger.Debug("Author is trusted", zap.String("author", author))
	}
	return ok
}
