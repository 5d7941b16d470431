package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/mikey/tacticus-code-watch/internal/core"
	"github.com/mikey/tacticus-code-watch/internal/utils"
)

const (
	tokenURL   = "https://www.reddit.com/api/v1/access_token"
	apiBaseURL = "https://oauth.reddit.com"
)

// APISource fetches new posts through the authenticated Reddit API using
// the application-only OAuth flow. All monitored subreddits are fetched in
// one request by joining them into a multireddit.
type APISource struct {
	client       *resty.Client
	logger       *zap.Logger
	text         *utils.TextProcessor
	clientID     string
	clientSecret string
	subreddits   []string
	postLimit    int
	maxBodySize  int
	tokenURL     string
	baseURL      string

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

// NewAPISource creates a new authenticated Reddit API source
func NewAPISource(
	clientID string,
	clientSecret string,
	userAgent string,
	subreddits []string,
	postLimit int,
	maxBodySize int,
	timeout time.Duration,
	text *utils.TextProcessor,
	logger *zap.Logger,
) (*APISource, error) {
	if clientID == "" || clientSecret == "" {
		return nil, fmt.Errorf("reddit api credentials are not configured")
	}
	if len(subreddits) == 0 {
		return nil, fmt.Errorf("no subreddits configured")
	}

	// Deterministic multireddit order regardless of config map iteration
	names := append([]string(nil), subreddits...)
	sort.Strings(names)

	client := resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", userAgent)

	return &APISource{
		client:       client,
		logger:       logger,
		text:         text,
		clientID:     clientID,
		clientSecret: clientSecret,
		subreddits:   names,
		postLimit:    postLimit,
		maxBodySize:  maxBodySize,
		tokenURL:     tokenURL,
		baseURL:      apiBaseURL,
	}, nil
}

// SetEndpoints overrides the token and listing endpoints, used in tests
func (s *APISource) SetEndpoints(tokenURL, baseURL string) {
	s.tokenURL = tokenURL
	s.baseURL = baseURL
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// token returns a cached application-only access token, refreshing it when
// it is missing or about to expire
func (s *APISource) token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.accessToken != "" && time.Now().Before(s.tokenExpiry) {
		return s.accessToken, nil
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetBasicAuth(s.clientID, s.clientSecret).
		SetFormData(map[string]string{"grant_type": "client_credentials"}).
		Post(s.tokenURL)
	if err != nil {
		return "", fmt.Errorf("failed to request access token: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("access token request returned status %d", resp.StatusCode())
	}

	var token tokenResponse
	if err := json.Unmarshal(resp.Body(), &token); err != nil {
		return "", fmt.Errorf("failed to decode access token response: %w", err)
	}
	if token.AccessToken == "" {
		return "", fmt.Errorf("access token response contained no token")
	}

	s.accessToken = token.AccessToken
	// Refresh a minute early so an expiring token never rides a request
	s.tokenExpiry = time.Now().Add(time.Duration(token.ExpiresIn)*time.Second - time.Minute)
	s.logger.Debug("Obtained Reddit API access token",
		zap.Int("expires_in", token.ExpiresIn))

	return s.accessToken, nil
}

// Fetch returns the newest posts from all monitored subreddits
func (s *APISource) Fetch(ctx context.Context) ([]core.Post, error) {
	accessToken, err := s.token(ctx)
	if err != nil {
		return nil, err
	}

	multireddit := strings.Join(s.subreddits, "+")
	s.logger.Info("Fetching new posts via Reddit API",
		zap.String("multireddit", multireddit))

	resp, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetQueryParam("limit", strconv.Itoa(s.postLimit)).
		Get(s.baseURL + "/r/" + multireddit + "/new")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch posts via api: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("api listing request returned status %d", resp.StatusCode())
	}

	var l listing
	if err := json.Unmarshal(resp.Body(), &l); err != nil {
		return nil, fmt.Errorf("failed to decode api listing: %w", err)
	}

	posts := normalizePosts(&l, s.text, s.maxBodySize)
	s.logger.Info("Fetched posts from Reddit API", zap.Int("count", len(posts)))
	return posts, nil
}
