package core

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// TrustChecker reports whether a post author's codes bypass the
// repetition-based confirmation requirement
type TrustChecker interface {
	IsTrusted(author string) bool
}

// WatchService is the core service that turns one batch of fetched posts
// into notified, durably recorded codes
type WatchService struct {
	source    PostSource
	ledger    CodeLedger
	notifier  Notifier
	extractor *Extractor
	bodyHints *BodyHintClassifier
	filter    *PostFilter
	trusted   TrustChecker
	logger    *zap.Logger
	threshold int
	notified  map[string]struct{}
}

// NewWatchService creates a new watch service
func NewWatchService(
	source PostSource,
	ledger CodeLedger,
	notifier Notifier,
	extractor *Extractor,
	bodyHints *BodyHintClassifier,
	filter *PostFilter,
	trusted TrustChecker,
	logger *zap.Logger,
	threshold int,
) *WatchService {
	if threshold < 1 {
		threshold = 2
	}
	return &WatchService{
		source:    source,
		ledger:    ledger,
		notifier:  notifier,
		extractor: extractor,
		bodyHints: bodyHints,
		filter:    filter,
		trusted:   trusted,
		logger:    logger,
		threshold: threshold,
		notified:  make(map[string]struct{}),
	}
}

// LoadHistory loads the full set of already-notified codes from the ledger.
// Must be called once before the first cycle.
func (s *WatchService) LoadHistory(ctx context.Context) error {
	notified, err := s.ledger.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load notified codes: %w", err)
	}
	s.notified = notified
	s.logger.Info("Loaded previously notified codes", zap.Int("count", len(notified)))
	return nil
}

// NotifiedCodes returns a copy of the in-memory set of notified codes
func (s *WatchService) NotifiedCodes() map[string]struct{} {
	out := make(map[string]struct{}, len(s.notified))
	for code := range s.notified {
		out[code] = struct{}{}
	}
	return out
}

// extractFromPost returns the de-duplicated candidates for one post. The
// title is scanned first; the body is scanned only when the title yields
// nothing and the classifier recognizes a body-hint phrasing, so a given
// post contributes codes from its title or its body, never both.
func (s *WatchService) extractFromPost(post Post) []string {
	codes := s.extractor.Extract(post.Title)
	if len(codes) == 0 && s.bodyHints.ShouldScanBody(post.Title) {
		s.logger.Debug("Scanning post body due to title hint", zap.String("post_id", post.ID))
		codes = s.extractor.Extract(post.Body)
	}

	// A code repeated inside one post counts once: confirmation requires
	// corroboration from independent posts.
	seen := make(map[string]struct{}, len(codes))
	unique := codes[:0]
	for _, code := range codes {
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		unique = append(unique, code)
	}
	return unique
}

// Confirm aggregates candidates across all posts of one cycle and returns
// the codes newly confirmed this cycle, sorted ascending. It performs no
// I/O and does not mutate alreadyNotified.
func (s *WatchService) Confirm(posts []Post, alreadyNotified map[string]struct{}) []string {
	confirmed, _ := s.confirm(posts, alreadyNotified)
	return confirmed
}

func (s *WatchService) confirm(posts []Post, alreadyNotified map[string]struct{}) ([]string, int) {
	counter := NewCycleCounter()
	trustedCodes := make(map[string]struct{})
	accepted := 0

	for _, post := range posts {
		if post.Author == "" {
			post.Author = UnknownAuthor
		}
		if !s.filter.IsAccepted(post) {
			continue
		}
		accepted++

		for _, code := range s.extractFromPost(post) {
			if s.trusted.IsTrusted(post.Author) {
				s.logger.Debug("Code from trusted author",
					zap.String("code", code),
					zap.String("author", post.Author))
				trustedCodes[code] = struct{}{}
			} else {
				counter.Add(code)
			}
		}
	}

	confirmedSet := make(map[string]struct{})
	for code := range trustedCodes {
		if _, done := alreadyNotified[code]; done {
			s.logger.Debug("Trusted code already notified", zap.String("code", code))
			continue
		}
		s.logger.Info("Trusted code from reliable author", zap.String("code", code))
		confirmedSet[code] = struct{}{}
	}

	for _, code := range counter.Confirmed(s.threshold) {
		if _, done := alreadyNotified[code]; done {
			s.logger.Debug("Code already notified", zap.String("code", code))
			continue
		}
		s.logger.Info("Confirmed new code by repetition", zap.String("code", code))
		confirmedSet[code] = struct{}{}
	}

	confirmed := make([]string, 0, len(confirmedSet))
	for code := range confirmedSet {
		confirmed = append(confirmed, code)
	}
	sort.Strings(confirmed)
	return confirmed, accepted
}

// RunCycle runs one full polling cycle: fetch, filter, confirm, notify,
// persist. Only fully successful notify-then-record pairs are committed to
// the in-memory notified set.
func (s *WatchService) RunCycle(ctx context.Context) (*CycleResult, error) {
	posts, err := s.source.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch posts: %w", err)
	}

	confirmed, accepted := s.confirm(posts, s.notified)
	result := &CycleResult{
		FetchedPosts:   len(posts),
		AcceptedPosts:  accepted,
		ConfirmedCodes: confirmed,
	}
	s.logger.Info("Processed posts with allowed flairs",
		zap.Int("fetched", len(posts)),
		zap.Int("accepted", accepted))

	if len(confirmed) == 0 {
		s.logger.Info("No new codes found in the processed posts")
		return result, nil
	}

	for _, code := range confirmed {
		// Re-check membership right before notifying to close the race
		// between the confirmation decision and persistence.
		if _, done := s.notified[code]; done {
			continue
		}

		if !s.notifier.Notify(ctx, code) {
			s.logger.Warn("Notification failed, code will be re-attempted next cycle",
				zap.String("code", code))
			continue
		}

		if err := s.ledger.Record(ctx, code); err != nil {
			// The code stays out of the in-memory set and is retried next cycle.
			s.logger.Error("Failed to record notified code",
				zap.String("code", code),
				zap.Error(err))
			continue
		}

		s.notified[code] = struct{}{}
		result.NotifiedCodes = append(result.NotifiedCodes, code)
	}

	return result, nil
}
