package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testHintPatterns = []string{
	`(?i)^\s*(another|just a|one more|a new|some|more)\s+code\s*(!|\.|here|below|inside|for you)?\s*$`,
	`(?i)^\s*new\s+code\s*-\s*\d+.*blackstone.*`,
	`(?i)^\s*(new|latest|fresh|recent)\s+codes?\s*(!|\.)?\s*$`,
	`(?i)^\s*title\s*(says|has)\s*it\s*all\s*$`,
	`(?i)^\s*look\s*inside\s*$`,
}

func newTestClassifier(t *testing.T) *BodyHintClassifier {
	t.Helper()
	classifier, err := NewBodyHintClassifier(testHintPatterns, zap.NewNop())
	require.NoError(t, err)
	return classifier
}

func TestBodyHintMatches(t *testing.T) {
	classifier := newTestClassifier(t)

	tests := []struct {
		title string
		want  bool
	}{
		{"Just a code!", true},
		{"another code", true},
		{"NEW CODES!!", false}, // double exclamation is not covered by the phrasing list
		{"New codes!", true},
		{"New Code - 100 Blackstone & 2000 Coin", true},
		{"Title says it all", true},
		{"look inside", true},
		{"Random musings", false},
		{"My favourite units", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, classifier.ShouldScanBody(tt.title), "title: %q", tt.title)
	}
}

func TestBodyHintInvalidPattern(t *testing.T) {
	_, err := NewBodyHintClassifier([]string{"("}, zap.NewNop())
	assert.Error(t, err)
}
