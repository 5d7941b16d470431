package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestTruncateText(t *testing.T) {
	tp := NewTextProcessor(zap.NewNop())

	assert.Equal(t, "short", tp.TruncateText("short", 100))
	assert.Equal(t, "short", tp.TruncateText("short", 0), "zero means no limit")

	long := strings.Repeat("a", 100)
	got := tp.TruncateText(long, 10)
	assert.Len(t, got, 10)
	assert.NotContains(t, got, "[", "no truncation marker is appended")
}

func TestTruncateTextValidUTF8(t *testing.T) {
	tp := NewTextProcessor(zap.NewNop())

	// Cutting through a multi-byte rune backs off to a valid boundary
	text := "aaébb" // é is two bytes
	got := tp.TruncateText(text, 3)
	assert.True(t, len(got) <= 3)
	assert.Equal(t, "aa", got)
}

func TestSanitizeUTF8(t *testing.T) {
	tp := NewTextProcessor(zap.NewNop())

	assert.Equal(t, "clean", tp.SanitizeUTF8("clean"))
	assert.Equal(t, "ab", tp.SanitizeUTF8("a\xffb"))
}
