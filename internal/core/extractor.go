package core

import (
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// Extractor turns raw post text into normalized candidate code tokens.
// All matching is done against an upper-cased copy of the input, so
// extraction and every downstream comparison is case-insensitive.
type Extractor struct {
	candidate *regexp.Regexp
	referral  *regexp.Regexp
	ignored   map[string]struct{}
	logger    *zap.Logger
}

// NewExtractor compiles the candidate and referral patterns and normalizes
// the ignored-word set
func NewExtractor(candidatePattern, referralPattern string, ignoredWords []string, logger *zap.Logger) (*Extractor, error) {
	candidate, err := regexp.Compile(candidatePattern)
	if err != nil {
		return nil, fmt.Errorf("invalid candidate code pattern: %w", err)
	}

	referral, err := regexp.Compile(referralPattern)
	if err != nil {
		return nil, fmt.Errorf("invalid referral code pattern: %w", err)
	}

	ignored := make(map[string]struct{}, len(ignoredWords))
	for _, word := range ignoredWords {
		ignored[strings.ToUpper(strings.TrimSpace(word))] = struct{}{}
	}

	return &Extractor{
		candidate: candidate,
		referral:  referral,
		ignored:   ignored,
		logger:    logger,
	}, nil
}

// Extract returns the candidate code tokens found in text. Output order is
// not significant; consumers de-duplicate per post and count across posts.
func (e *Extractor) Extract(text string) []string {
	if text == "" {
		return nil
	}

	words := e.candidate.FindAllString(strings.ToUpper(text), -1)

	var candidates []string
	for _, word := range words {
		// Pure-numeric runs are quantities (blackstone amounts, coin counts),
		// never codes.
		if !strings.ContainsAny(word, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
			e.logger.Debug("Ignoring numeric token", zap.String("token", word))
			continue
		}
		if e.referral.MatchString(word) {
			e.logger.Debug("Ignoring referral code", zap.String("token", word))
			continue
		}
		if _, ok := e.ignored[word]; ok {
			e.logger.Debug("Ignoring common word", zap.String("token", word))
			continue
		}
		candidates = append(candidates, word)
	}

	return candidates
}
