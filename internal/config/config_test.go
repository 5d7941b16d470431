package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := NewFromViper(NewEmptyViper())

	app, err := cfg.GetApp()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, app.FetchInterval)
	assert.Equal(t, 25, app.PostLimit)

	notify, err := cfg.GetNotify()
	require.NoError(t, err)
	assert.Equal(t, "ntfy", notify.Type)
	assert.Equal(t, "New Tacticus Code!", notify.Title)

	assert.Equal(t, "file", cfg.GetLedger().Type)
	assert.Equal(t, 2, cfg.GetFilter().ConfirmationThreshold)

	patterns := cfg.GetPatterns()
	assert.NotEmpty(t, patterns.CandidateCode)
	assert.NotEmpty(t, patterns.ReferralCode)
	assert.NotEmpty(t, patterns.BodyHints)
}

func TestSubredditUnmarshal(t *testing.T) {
	v := NewEmptyViper()
	v.Set("reddit.subreddits", map[string]interface{}{
		"WH40KTacticus": map[string]interface{}{
			"allowed_flairs": []string{"New Code"},
		},
		"TacticusCodes": map[string]interface{}{
			"allowed_flairs": []string{},
		},
	})
	cfg := NewFromViper(v)

	reddit, err := cfg.GetReddit()
	require.NoError(t, err)
	require.Len(t, reddit.Subreddits, 2)
	assert.Equal(t, []string{"New Code"}, reddit.Subreddits["WH40KTacticus"].AllowedFlairs)
	assert.Empty(t, reddit.Subreddits["TacticusCodes"].AllowedFlairs)
}

func TestDurationParsing(t *testing.T) {
	v := NewEmptyViper()
	v.Set("reddit.request_timeout", "not a duration")
	cfg := NewFromViper(v)

	_, err := cfg.GetReddit()
	assert.Error(t, err)
}
