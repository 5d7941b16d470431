package core

// UnknownAuthor is the sentinel author identity used when the origin of a
// post carries no author (deleted accounts, malformed listings).
const UnknownAuthor = "[deleted]"

// Post represents a forum post as seen by one polling cycle. Posts are
// constructed uniformly regardless of which transport fetched them and are
// never retained across cycles.
type Post struct {
	ID        string
	Title     string
	Body      string
	Flair     string // empty when the post has no flair
	Author    string
	Subreddit string
}

// CycleResult summarizes one polling cycle for logging and testing.
type CycleResult struct {
	FetchedPosts   int
	AcceptedPosts  int
	ConfirmedCodes []string
	NotifiedCodes  []string
}
