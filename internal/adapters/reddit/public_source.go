package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/mikey/tacticus-code-watch/internal/core"
	"github.com/mikey/tacticus-code-watch/internal/utils"
)

const publicBaseURL = "https://www.reddit.com"

// PublicSource fetches new posts through Reddit's unauthenticated public
// JSON listings. Subreddits are fetched one at a time; a failing subreddit
// is skipped as long as at least one of them yields posts.
type PublicSource struct {
	client      *resty.Client
	logger      *zap.Logger
	text        *utils.TextProcessor
	baseURL     string
	subreddits  []string
	postLimit   int
	maxBodySize int
}

// NewPublicSource creates a new public-listing source
func NewPublicSource(
	userAgent string,
	subreddits []string,
	postLimit int,
	maxBodySize int,
	timeout time.Duration,
	text *utils.TextProcessor,
	logger *zap.Logger,
) (*PublicSource, error) {
	if len(subreddits) == 0 {
		return nil, fmt.Errorf("no subreddits configured")
	}

	names := append([]string(nil), subreddits...)
	sort.Strings(names)

	client := resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", userAgent)

	return &PublicSource{
		client:      client,
		logger:      logger,
		text:        text,
		baseURL:     publicBaseURL,
		subreddits:  names,
		postLimit:   postLimit,
		maxBodySize: maxBodySize,
	}, nil
}

// SetBaseURL overrides the listing endpoint, used in tests
func (s *PublicSource) SetBaseURL(baseURL string) {
	s.baseURL = baseURL
}

// Fetch returns the newest posts from all monitored subreddits
func (s *PublicSource) Fetch(ctx context.Context) ([]core.Post, error) {
	var posts []core.Post

	for _, name := range s.subreddits {
		resp, err := s.client.R().
			SetContext(ctx).
			SetQueryParam("limit", strconv.Itoa(s.postLimit)).
			Get(s.baseURL + "/r/" + name + "/new.json")
		if err != nil {
			s.logger.Error("Failed to fetch subreddit listing",
				zap.String("subreddit", name),
				zap.Error(err))
			continue
		}
		if resp.StatusCode() != http.StatusOK {
			s.logger.Error("Subreddit listing returned non-OK status",
				zap.String("subreddit", name),
				zap.Int("status", resp.StatusCode()))
			continue
		}

		var l listing
		if err := json.Unmarshal(resp.Body(), &l); err != nil {
			s.logger.Error("Failed to decode subreddit listing",
				zap.String("subreddit", name),
				zap.Error(err))
			continue
		}

		subredditPosts := normalizePosts(&l, s.text, s.maxBodySize)
		posts = append(posts, subredditPosts...)
		s.logger.Debug("Fetched posts from subreddit",
			zap.String("subreddit", name),
			zap.Int("count", len(subredditPosts)))
	}

	if len(posts) == 0 {
		return nil, fmt.Errorf("failed to fetch posts from any subreddit")
	}

	s.logger.Info("Fetched posts via public listings", zap.Int("count", len(posts)))
	return posts, nil
}
