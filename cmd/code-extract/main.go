package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/mikey/tacticus-code-watch/internal/config"
	"github.com/mikey/tacticus-code-watch/internal/core"
	"github.com/mikey/tacticus-code-watch/internal/logging"
)

var (
	// Input flags
	inputFile = flag.String("file", "", "Input text file (use stdin if not specified)")
	title     = flag.String("title", "", "Treat the input as a post body with this title")

	// Pattern flags
	candidatePattern = flag.String("candidate-pattern", "", "Override the candidate code pattern")
	referralPattern  = flag.String("referral-pattern", "", "Override the referral code pattern")
	ignoredWords     = flag.String("ignored-words", "", "Comma-separated ignored words (overrides defaults)")

	// Output flags
	verbose = flag.Bool("verbose", false, "Enable verbose logging")
	jsonLog = flag.Bool("json-log", false, "Output logs in JSON format")
)

func main() {
	flag.Parse()

	// Initialize logger
	logger, err := logging.InitConsoleLogger(*verbose, *jsonLog)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Read input
	text, err := readInput(*inputFile)
	if err != nil {
		logger.Fatal("Failed to read input", zap.Error(err))
	}

	// Pattern assets come from the built-in defaults unless overridden
	cfg := config.NewFromViper(config.NewEmptyViper())
	patterns := cfg.GetPatterns()
	if *candidatePattern != "" {
		patterns.CandidateCode = *candidatePattern
	}
	if *referralPattern != "" {
		patterns.ReferralCode = *referralPattern
	}
	ignored := cfg.GetFilter().IgnoredWords
	if *ignoredWords != "" {
		ignored = strings.Split(*ignoredWords, ",")
	}

	extractor, err := core.NewExtractor(patterns.CandidateCode, patterns.ReferralCode, ignored, logger)
	if err != nil {
		logger.Fatal("Failed to build extractor", zap.Error(err))
	}
	classifier, err := core.NewBodyHintClassifier(patterns.BodyHints, logger)
	if err != nil {
		logger.Fatal("Failed to build body hint classifier", zap.Error(err))
	}

	codes := extract(extractor, classifier, *title, text)
	if len(codes) == 0 {
		fmt.Println("No candidate codes found.")
		return
	}

	for _, code := range codes {
		fmt.Println(code)
	}
}

// extract applies the same title-first, body-on-hint logic the daemon uses
// for a single post, or plain extraction when no title is given
func extract(extractor *core.Extractor, classifier *core.BodyHintClassifier, title, text string) []string {
	var codes []string
	if title != "" {
		codes = extractor.Extract(title)
		if len(codes) == 0 && classifier.ShouldScanBody(title) {
			codes = extractor.Extract(text)
		}
	} else {
		codes = extractor.Extract(text)
	}

	seen := make(map[string]struct{}, len(codes))
	unique := make([]string, 0, len(codes))
	for _, code := range codes {
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		unique = append(unique, code)
	}
	sort.Strings(unique)
	return unique
}

func readInput(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}
